// Package rig describes the robot as a data-driven tree of rigid parts and
// turns a pose into the ordered list of primitive draw calls that renders it.
package rig

import (
	"fmt"
	"image/color"

	"robot-rig/internal/mathutil"
	"robot-rig/internal/pose"
)

// Shape is the primitive drawn for a part.
type Shape int

const (
	ShapeNone Shape = iota
	ShapeCube
	ShapeCylinder
)

func (s Shape) String() string {
	switch s {
	case ShapeNone:
		return "none"
	case ShapeCube:
		return "cube"
	case ShapeCylinder:
		return "cylinder"
	}
	return fmt.Sprintf("shape(%d)", int(s))
}

// ParseShape maps a shape name to a Shape. The empty string is ShapeNone.
func ParseShape(s string) (Shape, error) {
	switch s {
	case "", "none":
		return ShapeNone, nil
	case "cube":
		return ShapeCube, nil
	case "cylinder":
		return ShapeCylinder, nil
	}
	return ShapeNone, fmt.Errorf("rig: unknown shape %q", s)
}

// Part is one rigid segment of the robot.
//
// Pivot is expressed in the parent's pivot frame. The node rotates by
// Angle + pose[Joint] degrees about Axis at its pivot. Center and Size place
// and scale the primitive relative to the pivot; they never affect children.
type Part struct {
	Name     string
	Parent   string
	Pivot    mathutil.Vec3
	Axis     mathutil.Vec3
	Joint    pose.JointID
	Angle    float64
	Shape    Shape
	Size     mathutil.Vec3
	Center   mathutil.Vec3
	Material string
}

// Local returns the parent-relative pivot transform for pose p:
// translate to the pivot, then rotate.
func (pt *Part) Local(p pose.Pose) mathutil.Mat4 {
	m := mathutil.Translate4(pt.Pivot)
	angle := pt.Angle + p.Angle(pt.Joint)
	if angle != 0 {
		m = mathutil.Mat4Mul(m, mathutil.Rotate4(pt.Axis, angle))
	}
	return m
}

// Visual returns the pivot-relative transform of the part's primitive.
func (pt *Part) Visual() mathutil.Mat4 {
	return mathutil.Mat4Mul(mathutil.Translate4(pt.Center), mathutil.Scale4(pt.Size))
}

// Material is the surface a primitive is drawn with.
type Material struct {
	Name     string
	Color    color.NRGBA
	Specular float64
	Texture  string
}
