package spatial

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVec3_CrossAndDot(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	z := x.Cross(y)
	assert.InDelta(t, 0.0, z.X, 1e-12)
	assert.InDelta(t, 0.0, z.Y, 1e-12)
	assert.InDelta(t, 1.0, z.Z, 1e-12)
	assert.InDelta(t, 0.0, x.Dot(y), 1e-12)
}

func TestVec3_Magnitude(t *testing.T) {
	v := Vec3{3, 4, 0}
	require.InDelta(t, 5.0, v.Magnitude(), 1e-12)
	n := v.Normalize()
	require.InDelta(t, 1.0, n.Magnitude(), 1e-9)
}

func TestAngleUnit_ClampsNearAntiparallel(t *testing.T) {
	a := Vec3{1, 0, 0}
	b := Vec3{-1, 0, 0}
	got := AngleUnit(a, b)
	assert.InDelta(t, math.Pi, got, 1e-6)
}

func TestMat3_InverseRoundTrips(t *testing.T) {
	m := NewMat3(
		2, 0, 0,
		0, 3, 0,
		0, 0, 4,
	)
	inv := m.Inverse()
	id := m.Mul(inv)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			assert.InDelta(t, want, id.At(i, j), 1e-9)
		}
	}
}

func TestVec3_OuterMatchesElementwiseProducts(t *testing.T) {
	v := Vec3{1, 2, 3}
	w := Vec3{4, -5, 6}
	m := v.Outer(w)
	assert.InDelta(t, 4.0, m.At(0, 0), 1e-12)
	assert.InDelta(t, -5.0, m.At(0, 1), 1e-12)
	assert.InDelta(t, 6.0, m.At(0, 2), 1e-12)
	assert.InDelta(t, 8.0, m.At(1, 0), 1e-12)
	assert.InDelta(t, -10.0, m.At(1, 1), 1e-12)
	assert.InDelta(t, 12.0, m.At(1, 2), 1e-12)
	assert.InDelta(t, 12.0, m.At(2, 0), 1e-12)
	assert.InDelta(t, -15.0, m.At(2, 1), 1e-12)
	assert.InDelta(t, 18.0, m.At(2, 2), 1e-12)
}

func TestMat3_TransposeOrthogonal(t *testing.T) {
	q := NewAxisAngle(Vec3{0, 0, 1}, math.Pi/3)
	dcm := QuaternionToDCM(q)
	product := dcm.Mul(dcm.Transpose())
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			assert.InDelta(t, want, product.At(i, j), 1e-5)
		}
	}
}
