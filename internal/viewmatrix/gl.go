package viewmatrix

import (
	"github.com/go-gl/mathgl/mgl64"
)

// DefaultFar is the far clip distance used for OpenGL projections.
const DefaultFar = 100.0

func vec3(v [3]float64) mgl64.Vec3 { return mgl64.Vec3{v[0], v[1], v[2]} }

// GLView returns the view matrix in OpenGL's column-major layout, ready for
// glLoadMatrixd.
func (c Camera) GLView() mgl64.Mat4 {
	up := c.Up
	if up == [3]float64{} {
		up = [3]float64{0, 1, 0}
	}
	return mgl64.LookAtV(vec3(c.Eye), vec3(c.Target), vec3(up))
}

// GLProjection returns the perspective projection for the given aspect
// ratio (width/height), column-major.
func (c Camera) GLProjection(aspect float64) mgl64.Mat4 {
	fov := c.FOV
	if fov <= 0 {
		fov = DefaultFOV
	}
	near := c.Near
	if near <= 0 {
		near = 0.1
	}
	if aspect <= 0 {
		aspect = 1
	}
	return mgl64.Perspective(mgl64.DegToRad(fov), aspect, near, DefaultFar)
}
