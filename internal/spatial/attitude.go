package spatial

// attitudeKind discriminates which internal representation an Attitude holds.
type attitudeKind int

const (
	attitudeNone attitudeKind = iota
	attitudeQuaternion
	attitudeDCM
)

// Attitude is an immutable orientation that stores either a Quaternion or a
// DCM, remembering which, and converts lazily on read. This avoids paying
// conversion cost for callers that only ever read the native form.
type Attitude struct {
	kind       attitudeKind
	quaternion Quaternion
	dcm        Mat3
}

// NewAttitudeFromQuaternion builds an Attitude backed by a quaternion.
func NewAttitudeFromQuaternion(q Quaternion) Attitude {
	return Attitude{kind: attitudeQuaternion, quaternion: q}
}

// NewAttitudeFromDCM builds an Attitude backed by a DCM.
func NewAttitudeFromDCM(m Mat3) Attitude {
	return Attitude{kind: attitudeDCM, dcm: m}
}

// GetQuaternion returns the Quaternion form of a, converting from a DCM if
// that is the native representation.
func (a Attitude) GetQuaternion() Quaternion {
	switch a.kind {
	case attitudeDCM:
		return DCMToQuaternion(a.dcm)
	default:
		return a.quaternion
	}
}

// GetDCM returns the DCM form of a, converting from a quaternion if that is
// the native representation.
func (a Attitude) GetDCM() Mat3 {
	switch a.kind {
	case attitudeQuaternion:
		return QuaternionToDCM(a.quaternion)
	default:
		return a.dcm
	}
}

// ToSpherical returns the EulerAngles of a.
func (a Attitude) ToSpherical() EulerAngles {
	switch a.kind {
	case attitudeDCM:
		return DCMToQuaternion(a.dcm).ToSpherical()
	default:
		return a.quaternion.ToSpherical()
	}
}

// Rotate rotates vec from the reference frame into a's body frame.
func (a Attitude) Rotate(vec Vec3) Vec3 {
	switch a.kind {
	case attitudeDCM:
		return a.dcm.MulVec3(vec)
	default:
		return a.quaternion.Rotate(vec)
	}
}
