package raster

import (
	"image"
	"image/color"
	"testing"

	"go.viam.com/test"

	"robot-rig/internal/pose"
	"robot-rig/internal/rig"
	"robot-rig/internal/viewmatrix"
)

func pixel(img *image.NRGBA, x, y int) color.NRGBA {
	return img.NRGBAAt(x, y)
}

func TestRasterizeDepth(t *testing.T) {
	lc := DefaultLightConfig()
	fb := NewFrameBuffer(16, 16)
	fb.Clear(color.NRGBA{A: 255})

	near := &Surface{BaseR: 255, BaseA: 255, Shade: 1}
	far := &Surface{BaseB: 255, BaseA: 255, Shade: 1}

	tri := func(z float64) (Vertex, Vertex, Vertex) {
		return Vertex{X: 0, Y: 0, Z: z}, Vertex{X: 16, Y: 0, Z: z}, Vertex{X: 0, Y: 16, Z: z}
	}

	a, b, c := tri(-5)
	RasterizeTriangle(fb, a, b, c, near, &lc)
	a, b, c = tri(-10)
	RasterizeTriangle(fb, a, b, c, far, &lc)

	img := fb.Image()
	px := pixel(img, 2, 2)
	test.That(t, px.R, test.ShouldBeGreaterThan, uint8(100))
	test.That(t, px.B, test.ShouldEqual, uint8(0))

	// Outside the triangle stays clear.
	test.That(t, pixel(img, 15, 15), test.ShouldResemble, color.NRGBA{A: 255})
}

func TestRasterizeTexture(t *testing.T) {
	lc := DefaultLightConfig()
	fb := NewFrameBuffer(8, 8)
	tex := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	tex.SetNRGBA(0, 0, color.NRGBA{G: 255, A: 255})

	s := &Surface{Tex: tex, BaseR: 255, BaseA: 255, Shade: 1}
	RasterizeTriangle(fb, Vertex{X: 0, Y: 0, Z: -1}, Vertex{X: 8, Y: 0, Z: -1, U: 1}, Vertex{X: 0, Y: 8, Z: -1, V: 1}, s, &lc)

	px := pixel(fb.Image(), 1, 1)
	test.That(t, px.G, test.ShouldBeGreaterThan, uint8(100))
	test.That(t, px.R, test.ShouldEqual, uint8(0))
}

func TestRenderRobot(t *testing.T) {
	table := rig.DefaultTable(rig.DefaultDimensions())
	calls := rig.NewBuilder(table).Build(pose.Pose{})

	opts := Options{
		Width:       80,
		Height:      60,
		Supersample: 2,
		Camera:      viewmatrix.DefaultCamera(),
		Background:  DefaultBackground,
	}
	img := Render(calls, table, nil, opts)
	test.That(t, img.Bounds().Dx(), test.ShouldEqual, 160)
	test.That(t, img.Bounds().Dy(), test.ShouldEqual, 120)

	// The torso fills the middle of the frame; the corners are clear.
	test.That(t, pixel(img, 80, 60), test.ShouldNotResemble, DefaultBackground)
	test.That(t, pixel(img, 0, 0), test.ShouldResemble, DefaultBackground)
	test.That(t, pixel(img, 159, 0), test.ShouldResemble, DefaultBackground)

	empty := Render(nil, table, nil, opts)
	test.That(t, pixel(empty, 80, 60), test.ShouldResemble, DefaultBackground)
}
