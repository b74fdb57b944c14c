package mathutil

import "math"

// RotX returns a 3×3 rotation matrix around the X axis. Angle in radians.
func RotX(a float64) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	return Mat3{
		1, 0, 0,
		0, c, -s,
		0, s, c,
	}
}

// RotY returns a 3×3 rotation matrix around the Y axis.
func RotY(a float64) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	return Mat3{
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	}
}

// RotZ returns a 3×3 rotation matrix around the Z axis.
func RotZ(a float64) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	return Mat3{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	}
}

// RotAxis returns a rotation of a radians about an arbitrary axis.
// The principal axes take the exact RotX/RotY/RotZ path.
func RotAxis(axis Vec3, a float64) Mat3 {
	switch axis.Normalize() {
	case Vec3{1, 0, 0}:
		return RotX(a)
	case Vec3{0, 1, 0}:
		return RotY(a)
	case Vec3{0, 0, 1}:
		return RotZ(a)
	case Vec3{}:
		return Mat3Identity()
	}
	return QuatToMat3(AxisAngleToQuat(axis, a))
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180
}
