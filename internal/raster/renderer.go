// Package raster is a software renderer for rig draw lists: flat-shaded,
// z-buffered triangles of the canonical primitives.
package raster

import (
	"image"
	"image/color"

	"robot-rig/internal/mathutil"
	"robot-rig/internal/mesh"
	"robot-rig/internal/rig"
	"robot-rig/internal/texture"
	"robot-rig/internal/viewmatrix"
)

// DefaultBackground is the 40% grey the robot has always been drawn on.
var DefaultBackground = color.NRGBA{R: 102, G: 102, B: 102, A: 255}

// Options controls one render.
type Options struct {
	Width       int
	Height      int
	Supersample int
	Camera      viewmatrix.Camera
	Background  color.NRGBA
	Light       *LightConfig
}

// Render draws calls into a new image of Width*Supersample by
// Height*Supersample pixels. Materials come from table; textures, when a
// material names one, come from resolver (nil disables textures).
func Render(calls []rig.DrawCall, table *rig.Table, resolver texture.Resolver, opts Options) *image.NRGBA {
	ss := opts.Supersample
	if ss < 1 {
		ss = 1
	}
	w, h := opts.Width*ss, opts.Height*ss

	lc := opts.Light
	if lc == nil {
		def := DefaultLightConfig()
		lc = &def
	}

	fb := NewFrameBuffer(w, h)
	fb.Clear(opts.Background)
	proj := viewmatrix.NewProjector(opts.Camera, w, h)

	// Scratch space reused across draw calls.
	var world []mathutil.Vec3
	var screen []Vertex
	var visible []bool

	for i := range calls {
		call := &calls[i]
		m := mesh.Unit(call.Shape)
		if m == nil {
			continue
		}
		mat, _ := table.Material(call.Material)

		surf := Surface{
			BaseR: mat.Color.R, BaseG: mat.Color.G, BaseB: mat.Color.B, BaseA: mat.Color.A,
		}
		if resolver != nil && mat.Texture != "" {
			surf.Tex = resolver.Resolve(mat.Texture)
		}

		world = world[:0]
		screen = screen[:0]
		visible = visible[:0]
		for vi, v := range m.Verts {
			p := call.Model.MulPoint(mathutil.Vec3{float64(v[0]), float64(v[1]), float64(v[2])})
			x, y, z, ok := proj.Project(p)
			uv := m.UVs[vi]
			world = append(world, p)
			screen = append(screen, Vertex{X: x, Y: y, Z: z, U: float64(uv[0]), V: float64(uv[1])})
			visible = append(visible, ok)
		}

		m.Faces(func(vi, _ [3]int) {
			if !visible[vi[0]] || !visible[vi[1]] || !visible[vi[2]] {
				return
			}
			// World-space face normal: flat shading survives any scale.
			n := world[vi[1]].Sub(world[vi[0]]).Cross(world[vi[2]].Sub(world[vi[0]]))
			if n.Len() < 1e-12 {
				return
			}
			surf.Shade = lc.ComputeShade(n.Normalize(), mat.Specular)
			RasterizeTriangle(fb, screen[vi[0]], screen[vi[1]], screen[vi[2]], &surf, lc)
		})
	}

	return fb.Image()
}
