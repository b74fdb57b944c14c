// Package viewmatrix holds the camera: a look-at view transform and a
// perspective projection to pixel coordinates.
package viewmatrix

import (
	"math"

	"robot-rig/internal/mathutil"
)

// DefaultFOV is the default vertical field of view in degrees.
const DefaultFOV = 60.0

// Camera describes a perspective camera in world space.
type Camera struct {
	Eye    mathutil.Vec3 `json:"eye" yaml:"eye,flow"`
	Target mathutil.Vec3 `json:"target" yaml:"target,flow"`
	Up     mathutil.Vec3 `json:"up" yaml:"up,flow"`
	FOV    float64       `json:"fov" yaml:"fov"`
	Near   float64       `json:"near" yaml:"near"`
}

// DefaultCamera looks at the robot from slightly above and in front.
func DefaultCamera() Camera {
	return Camera{
		Eye:    mathutil.Vec3{0, 6, 22},
		Target: mathutil.Vec3{0, 0, 0},
		Up:     mathutil.Vec3{0, 1, 0},
		FOV:    DefaultFOV,
		Near:   0.1,
	}
}

// Orbit returns the camera rotated deg degrees about the vertical axis
// through its target.
func (c Camera) Orbit(deg float64) Camera {
	off := c.Eye.Sub(c.Target)
	c.Eye = c.Target.Add(mathutil.RotY(mathutil.Deg2Rad(deg)).MulVec3(off))
	return c
}

// View returns the world-to-camera matrix (gluLookAt semantics: the camera
// looks down -Z, +Y up).
func (c Camera) View() mathutil.Mat4 {
	f := c.Target.Sub(c.Eye).Normalize()
	up := c.Up
	if up == (mathutil.Vec3{}) {
		up = mathutil.Vec3{0, 1, 0}
	}
	s := f.Cross(up).Normalize()
	u := s.Cross(f)
	return mathutil.Mat4{
		s[0], s[1], s[2], -s.Dot(c.Eye),
		u[0], u[1], u[2], -u.Dot(c.Eye),
		-f[0], -f[1], -f[2], f.Dot(c.Eye),
		0, 0, 0, 1,
	}
}

// Projector maps camera-space points to pixels for one viewport.
type Projector struct {
	fx, fy float64
	halfW  float64
	halfH  float64
	near   float64
	view   mathutil.Mat4
}

// NewProjector prepares the projection of c onto a width×height viewport.
func NewProjector(c Camera, width, height int) *Projector {
	fov := c.FOV
	if fov <= 0 {
		fov = DefaultFOV
	}
	near := c.Near
	if near <= 0 {
		near = 0.1
	}
	f := 1 / math.Tan(mathutil.Deg2Rad(fov)/2)
	aspect := float64(width) / float64(height)
	return &Projector{
		fx:    f / aspect,
		fy:    f,
		halfW: float64(width) / 2,
		halfH: float64(height) / 2,
		near:  near,
		view:  c.View(),
	}
}

// View returns the world-to-camera matrix in use.
func (p *Projector) View() mathutil.Mat4 { return p.view }

// Project transforms a world point to screen X, screen Y and depth. Depth is
// the camera-space Z, so larger values are closer. ok is false for points
// in front of the near plane.
func (p *Projector) Project(world mathutil.Vec3) (x, y, depth float64, ok bool) {
	v := p.view.MulPoint(world)
	w := -v[2]
	if w < p.near {
		return 0, 0, v[2], false
	}
	x = (p.fx*v[0]/w)*p.halfW + p.halfW
	y = -(p.fy*v[1]/w)*p.halfH + p.halfH
	return x, y, v[2], true
}
