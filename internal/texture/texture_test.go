package texture

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/ftrvxmtrx/tga"
	"go.viam.com/test"
)

func checker() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{G: 255, A: 255})
	img.SetNRGBA(0, 1, color.NRGBA{B: 255, A: 255})
	img.SetNRGBA(1, 1, color.NRGBA{R: 255, G: 255, B: 255, A: 128})
	return img
}

func writeFile(t *testing.T, name string, encode func(*bytes.Buffer) error) string {
	t.Helper()
	var buf bytes.Buffer
	test.That(t, encode(&buf), test.ShouldBeNil)
	path := filepath.Join(t.TempDir(), name)
	test.That(t, os.WriteFile(path, buf.Bytes(), 0644), test.ShouldBeNil)
	return path
}

func TestLoadTexture(t *testing.T) {
	want := checker()

	for _, tc := range []struct {
		name   string
		encode func(*bytes.Buffer) error
	}{
		{"tex.png", func(b *bytes.Buffer) error { return png.Encode(b, want) }},
		{"tex.tga", func(b *bytes.Buffer) error { return tga.Encode(b, want) }},
		{"TEX.TGA", func(b *bytes.Buffer) error { return tga.Encode(b, want) }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			img, err := LoadTexture(writeFile(t, tc.name, tc.encode))
			test.That(t, err, test.ShouldBeNil)
			test.That(t, img.Bounds(), test.ShouldResemble, want.Bounds())
			test.That(t, img.NRGBAAt(0, 0), test.ShouldResemble, want.NRGBAAt(0, 0))
			test.That(t, img.NRGBAAt(1, 0), test.ShouldResemble, want.NRGBAAt(1, 0))
			test.That(t, img.NRGBAAt(0, 1), test.ShouldResemble, want.NRGBAAt(0, 1))
		})
	}

	t.Run("missing", func(t *testing.T) {
		_, err := LoadTexture(filepath.Join(t.TempDir(), "nope.png"))
		test.That(t, err, test.ShouldNotBeNil)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := Decode([]byte("not an image"))
		test.That(t, err, test.ShouldNotBeNil)
	})
}

func TestToNRGBAOpaqueGray(t *testing.T) {
	g := image.NewGray(image.Rect(3, 3, 5, 5))
	g.SetGray(3, 3, color.Gray{Y: 77})
	n := toNRGBA(g)
	test.That(t, n.Bounds(), test.ShouldResemble, image.Rect(0, 0, 2, 2))
	test.That(t, n.NRGBAAt(0, 0), test.ShouldResemble, color.NRGBA{R: 77, G: 77, B: 77, A: 255})
}

func TestCache(t *testing.T) {
	path := writeFile(t, "tex.png", func(b *bytes.Buffer) error { return png.Encode(b, checker()) })

	c := NewCache(nil)
	first := c.Resolve(path)
	test.That(t, first, test.ShouldNotBeNil)
	test.That(t, c.Resolve(path), test.ShouldEqual, first)

	// Failures are remembered as nil.
	missing := filepath.Join(t.TempDir(), "missing.png")
	test.That(t, c.Resolve(missing), test.ShouldBeNil)
	test.That(t, c.Resolve(missing), test.ShouldBeNil)
	test.That(t, c.Len(), test.ShouldEqual, 2)

	test.That(t, c.Resolve(""), test.ShouldBeNil)
	test.That(t, c.Len(), test.ShouldEqual, 2)
}
