package spatial

// Mat3 is a 3x3 row-major matrix.
type Mat3 struct {
	// M holds the nine entries in row-major order.
	M [9]float64
}

// NewMat3 builds a Mat3 from its nine entries in row-major order.
func NewMat3(m00, m01, m02, m10, m11, m12, m20, m21, m22 float64) Mat3 {
	return Mat3{M: [9]float64{m00, m01, m02, m10, m11, m12, m20, m21, m22}}
}

// Identity3 is the 3x3 identity matrix.
var Identity3 = NewMat3(
	1, 0, 0,
	0, 1, 0,
	0, 0, 1,
)

// At returns the entry at row i, column j.
func (m Mat3) At(i, j int) float64 {
	return m.M[3*i+j]
}

// Column returns column j as a Vec3.
func (m Mat3) Column(j int) Vec3 {
	return Vec3{m.At(0, j), m.At(1, j), m.At(2, j)}
}

// Row returns row i as a Vec3.
func (m Mat3) Row(i int) Vec3 {
	return Vec3{m.At(i, 0), m.At(i, 1), m.At(i, 2)}
}

// Trace returns the sum of the diagonal entries.
func (m Mat3) Trace() float64 {
	return m.At(0, 0) + m.At(1, 1) + m.At(2, 2)
}

// Det returns the determinant of m.
func (m Mat3) Det() float64 {
	return m.At(0, 0)*(m.At(1, 1)*m.At(2, 2)-m.At(2, 1)*m.At(1, 2)) -
		m.At(0, 1)*(m.At(1, 0)*m.At(2, 2)-m.At(2, 0)*m.At(1, 2)) +
		m.At(0, 2)*(m.At(1, 0)*m.At(2, 1)-m.At(2, 0)*m.At(1, 1))
}

// Add returns the elementwise sum of m and other.
func (m Mat3) Add(other Mat3) Mat3 {
	var r Mat3
	for i := range m.M {
		r.M[i] = m.M[i] + other.M[i]
	}
	return r
}

// Mul returns the matrix product m * other.
func (m Mat3) Mul(other Mat3) Mat3 {
	entry := func(row, col int) float64 {
		return m.At(row, 0)*other.At(0, col) + m.At(row, 1)*other.At(1, col) + m.At(row, 2)*other.At(2, col)
	}
	return NewMat3(
		entry(0, 0), entry(0, 1), entry(0, 2),
		entry(1, 0), entry(1, 1), entry(1, 2),
		entry(2, 0), entry(2, 1), entry(2, 2),
	)
}

// MulVec3 returns m * v.
func (m Mat3) MulVec3(v Vec3) Vec3 {
	return Vec3{
		v.X*m.At(0, 0) + v.Y*m.At(0, 1) + v.Z*m.At(0, 2),
		v.X*m.At(1, 0) + v.Y*m.At(1, 1) + v.Z*m.At(1, 2),
		v.X*m.At(2, 0) + v.Y*m.At(2, 1) + v.Z*m.At(2, 2),
	}
}

// Scale returns m scaled by s.
func (m Mat3) Scale(s float64) Mat3 {
	var r Mat3
	for i := range m.M {
		r.M[i] = m.M[i] * s
	}
	return r
}

// Transpose returns the transpose of m. Use Transpose (not Inverse) when m is
// known to be orthogonal, e.g. a DCM.
func (m Mat3) Transpose() Mat3 {
	return NewMat3(
		m.At(0, 0), m.At(1, 0), m.At(2, 0),
		m.At(0, 1), m.At(1, 1), m.At(2, 1),
		m.At(0, 2), m.At(1, 2), m.At(2, 2),
	)
}

// Inverse returns the inverse of m. The caller must ensure m.Det() != 0.
func (m Mat3) Inverse() Mat3 {
	scalar := 1 / m.Det()
	res := NewMat3(
		m.At(1, 1)*m.At(2, 2)-m.At(1, 2)*m.At(2, 1), m.At(0, 2)*m.At(2, 1)-m.At(0, 1)*m.At(2, 2), m.At(0, 1)*m.At(1, 2)-m.At(0, 2)*m.At(1, 1),
		m.At(1, 2)*m.At(2, 0)-m.At(1, 0)*m.At(2, 2), m.At(0, 0)*m.At(2, 2)-m.At(0, 2)*m.At(2, 0), m.At(0, 2)*m.At(1, 0)-m.At(0, 0)*m.At(1, 2),
		m.At(1, 0)*m.At(2, 1)-m.At(1, 1)*m.At(2, 0), m.At(0, 1)*m.At(2, 0)-m.At(0, 0)*m.At(2, 1), m.At(0, 0)*m.At(1, 1)-m.At(0, 1)*m.At(1, 0),
	)
	return res.Scale(scalar)
}
