// Package pose defines the robot's named joints, their declared ranges and the
// Pose value that carries one angle per joint.
package pose

import (
	"fmt"

	"robot-rig/internal/mathutil"
)

// JointID identifies one animatable rotation.
type JointID int

const (
	// NoJoint marks a node whose rotation is a fixed design angle only.
	NoJoint JointID = iota - 1

	HipLeft
	HipRight
	KneeLeft
	KneeRight
	AnkleLeft
	AnkleRight
	Shoulder
	Elbow
	Gun
	Neck
	BodyYaw
	CannonSpin

	NumJoints int = iota - 1
)

var jointNames = [NumJoints]string{
	HipLeft:    "hip_left",
	HipRight:   "hip_right",
	KneeLeft:   "knee_left",
	KneeRight:  "knee_right",
	AnkleLeft:  "ankle_left",
	AnkleRight: "ankle_right",
	Shoulder:   "shoulder",
	Elbow:      "elbow",
	Gun:        "gun",
	Neck:       "neck",
	BodyYaw:    "body_yaw",
	CannonSpin: "cannon_spin",
}

func (j JointID) String() string {
	if j == NoJoint {
		return "none"
	}
	if j < 0 || int(j) >= NumJoints {
		return fmt.Sprintf("joint(%d)", int(j))
	}
	return jointNames[j]
}

// Valid reports whether j names a real joint.
func (j JointID) Valid() bool {
	return j >= 0 && int(j) < NumJoints
}

// ParseJoint maps a joint name back to its ID. The empty string and "none"
// map to NoJoint.
func ParseJoint(name string) (JointID, error) {
	if name == "" || name == "none" {
		return NoJoint, nil
	}
	for i, n := range jointNames {
		if n == name {
			return JointID(i), nil
		}
	}
	return NoJoint, fmt.Errorf("pose: unknown joint %q", name)
}

// Spec is the declared range of a joint. Wrap joints are reduced modulo 360;
// all others saturate at Min/Max.
type Spec struct {
	Min     float64
	Max     float64
	Wrap    bool
	Initial float64
}

// Limit clamps or wraps a requested angle into range.
func (s Spec) Limit(v float64) float64 {
	if s.Wrap {
		return mathutil.WrapDegrees(v)
	}
	return mathutil.Clamp(v, s.Min, s.Max)
}

// Limits holds one Spec per joint.
type Limits [NumJoints]Spec

// DefaultLimits returns the ranges the walking gait and manual controls are
// tuned for.
func DefaultLimits() Limits {
	var l Limits
	l[HipLeft] = Spec{Min: -30, Max: 30}
	l[HipRight] = Spec{Min: -30, Max: 30}
	l[KneeLeft] = Spec{Min: -15, Max: 15}
	l[KneeRight] = Spec{Min: -15, Max: 15}
	l[AnkleLeft] = Spec{Min: -10, Max: 10}
	l[AnkleRight] = Spec{Min: -10, Max: 10}
	l[Shoulder] = Spec{Min: -180, Max: 90}
	l[Elbow] = Spec{Min: -135, Max: 0}
	l[Gun] = Spec{Min: -45, Max: 45}
	l[Neck] = Spec{Min: -60, Max: 60}
	l[BodyYaw] = Spec{Min: -180, Max: 180}
	l[CannonSpin] = Spec{Min: 0, Max: 360, Wrap: true}
	return l
}

// Initial returns the rest pose for these limits.
func (l Limits) Initial() Pose {
	var p Pose
	for i, s := range l {
		p[i] = s.Limit(s.Initial)
	}
	return p
}

// Pose is the full set of joint angles in degrees at one instant. It is a
// value type; copying it takes a snapshot.
type Pose [NumJoints]float64

// Angle returns the angle of joint j, or 0 for NoJoint.
func (p Pose) Angle(j JointID) float64 {
	if !j.Valid() {
		return 0
	}
	return p[j]
}

// Map returns the pose keyed by joint name, for manifests and dumps.
func (p Pose) Map() map[string]float64 {
	m := make(map[string]float64, NumJoints)
	for i, v := range p {
		m[jointNames[i]] = v
	}
	return m
}
