package postprocess

import (
	"image"
	"image/color"
	"testing"

	"go.viam.com/test"
)

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestDownsample(t *testing.T) {
	c := color.NRGBA{R: 200, G: 100, B: 50, A: 255}
	out := Downsample(solid(64, 48, c), 32, 24)
	test.That(t, out.Bounds(), test.ShouldResemble, image.Rect(0, 0, 32, 24))
	px := out.NRGBAAt(16, 12)
	for _, ch := range [][2]uint8{{px.R, c.R}, {px.G, c.G}, {px.B, c.B}, {px.A, c.A}} {
		test.That(t, int(ch[0]), test.ShouldAlmostEqual, int(ch[1]), 1)
	}

	t.Run("already small", func(t *testing.T) {
		in := solid(10, 10, c)
		test.That(t, Downsample(in, 20, 20), test.ShouldEqual, in)
		test.That(t, Downsample(in, 0, 5), test.ShouldEqual, in)
	})

	t.Run("no dark fringe", func(t *testing.T) {
		// Half transparent black, half opaque white: the edge must not
		// darken the white.
		in := solid(8, 8, color.NRGBA{})
		for y := 0; y < 8; y++ {
			for x := 4; x < 8; x++ {
				in.SetNRGBA(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
			}
		}
		out := Downsample(in, 4, 4)
		for y := 0; y < 4; y++ {
			px := out.NRGBAAt(2, y)
			if px.A > 0 {
				test.That(t, px.R, test.ShouldBeGreaterThan, uint8(240))
			}
		}
	})
}

func TestAnnotate(t *testing.T) {
	bg := color.NRGBA{R: 40, G: 40, B: 40, A: 255}
	img := solid(200, 60, bg)
	Annotate(img, []string{"tick 16", "", "gait WalkingBackward"})

	white := 0
	for y := 0; y < 60; y++ {
		for x := 0; x < 200; x++ {
			if img.NRGBAAt(x, y).R > 200 {
				white++
			}
		}
	}
	test.That(t, white, test.ShouldBeGreaterThan, 20)

	// Nothing is drawn right of the longest line.
	right := 6 + TextWidth("gait WalkingBackward") + 2
	for y := 0; y < 60; y++ {
		test.That(t, img.NRGBAAt(right, y), test.ShouldResemble, bg)
	}

	// Lines past the bottom edge are dropped without panicking.
	tiny := solid(20, 5, bg)
	Annotate(tiny, []string{"a", "b", "c"})
}
