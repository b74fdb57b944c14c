package glview

import (
	"image/color"

	"github.com/go-gl/gl/v2.1/gl"

	"robot-rig/internal/mathutil"
	"robot-rig/internal/mesh"
	"robot-rig/internal/rig"
	"robot-rig/internal/viewmatrix"
)

var (
	light0Pos = [4]float32{-4, 8, 8, 1}
	light1Pos = [4]float32{4, 8, 8, 1}
	white     = [4]float32{1, 1, 1, 1}
	dimWhite  = [4]float32{0.5, 0.5, 0.5, 1}
)

func initGL(bg color.NRGBA) {
	gl.ClearColor(float32(bg.R)/255, float32(bg.G)/255, float32(bg.B)/255, 1)
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.NORMALIZE)
	gl.ShadeModel(gl.FLAT)

	gl.Enable(gl.LIGHTING)
	gl.Enable(gl.LIGHT0)
	gl.Enable(gl.LIGHT1)
	gl.Lightfv(gl.LIGHT0, gl.DIFFUSE, &white[0])
	gl.Lightfv(gl.LIGHT1, gl.DIFFUSE, &dimWhite[0])
	gl.Lightfv(gl.LIGHT0, gl.SPECULAR, &white[0])

	gl.Enable(gl.COLOR_MATERIAL)
	gl.ColorMaterial(gl.FRONT_AND_BACK, gl.AMBIENT_AND_DIFFUSE)
}

// setCamera loads projection and view, then places the lights in world
// space.
func setCamera(cam viewmatrix.Camera, width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))

	proj := cam.GLProjection(float64(width) / float64(max(height, 1)))
	gl.MatrixMode(gl.PROJECTION)
	gl.LoadMatrixd(&proj[0])

	view := cam.GLView()
	gl.MatrixMode(gl.MODELVIEW)
	gl.LoadMatrixd(&view[0])

	gl.Lightfv(gl.LIGHT0, gl.POSITION, &light0Pos[0])
	gl.Lightfv(gl.LIGHT1, gl.POSITION, &light1Pos[0])
}

// drawCalls draws every call on top of the current modelview, one
// push/multiply/pop per part.
func drawCalls(calls []rig.DrawCall, table *rig.Table) {
	for i := range calls {
		c := &calls[i]
		m := mesh.Unit(c.Shape)
		if m == nil {
			continue
		}
		mat, _ := table.Material(c.Material)
		setMaterial(mat)

		model := c.Model.ColumnMajor()
		gl.PushMatrix()
		gl.MultMatrixd(&model[0])
		drawMesh(m)
		gl.PopMatrix()
	}
}

func setMaterial(mat rig.Material) {
	gl.Color4ub(mat.Color.R, mat.Color.G, mat.Color.B, mat.Color.A)
	s := float32(mat.Specular)
	spec := [4]float32{s, s, s, 1}
	gl.Materialfv(gl.FRONT_AND_BACK, gl.SPECULAR, &spec[0])
	gl.Materialf(gl.FRONT_AND_BACK, gl.SHININESS, 8+56*s)
}

// drawMesh emits m in immediate mode with one normal per face.
func drawMesh(m *mesh.Mesh) {
	gl.Begin(gl.TRIANGLES)
	m.Faces(func(vi, _ [3]int) {
		a, b, c := vertex(m, vi[0]), vertex(m, vi[1]), vertex(m, vi[2])
		n := b.Sub(a).Cross(c.Sub(a)).Normalize()
		gl.Normal3d(n[0], n[1], n[2])
		gl.Vertex3d(a[0], a[1], a[2])
		gl.Vertex3d(b[0], b[1], b[2])
		gl.Vertex3d(c[0], c[1], c[2])
	})
	gl.End()
}

func vertex(m *mesh.Mesh, i int) mathutil.Vec3 {
	v := m.Verts[i]
	return mathutil.Vec3{float64(v[0]), float64(v[1]), float64(v[2])}
}
