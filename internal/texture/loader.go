// Package texture loads and caches the optional flat textures materials can
// name. TGA, PNG and JPEG are supported.
package texture

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/ftrvxmtrx/tga"
	"github.com/pkg/errors"
)

// LoadTexture reads an image file and returns it as NRGBA. Files ending in
// .tga go straight to the TGA decoder; everything else is sniffed.
func LoadTexture(path string) (*image.NRGBA, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "texture: read %s", path)
	}
	if strings.EqualFold(filepath.Ext(path), ".tga") {
		return DecodeTGA(raw)
	}
	img, err := Decode(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "texture: %s", path)
	}
	return img, nil
}

var (
	pngMagic  = []byte("\x89PNG\r\n\x1a\n")
	jpegMagic = []byte{0xff, 0xd8}
)

// Decode decodes an in-memory PNG or JPEG image. Importing the TGA
// package registers a format with an empty magic string, so the image
// registry is bypassed and the codec picked from the header here.
func Decode(raw []byte) (*image.NRGBA, error) {
	var (
		img    image.Image
		format string
		err    error
	)
	switch {
	case bytes.HasPrefix(raw, pngMagic):
		format = "png"
		img, err = png.Decode(bytes.NewReader(raw))
	case bytes.HasPrefix(raw, jpegMagic):
		format = "jpeg"
		img, err = jpeg.Decode(bytes.NewReader(raw))
	default:
		return nil, errors.New("texture: unknown image format")
	}
	if err != nil {
		return nil, errors.Wrapf(err, "texture: decode %s", format)
	}
	if img.Bounds().Empty() {
		return nil, errors.Errorf("texture: empty %s image", format)
	}
	return toNRGBA(img), nil
}

// DecodeTGA decodes an in-memory TGA image. TGA has no magic number, so it is
// never left to format sniffing.
func DecodeTGA(raw []byte) (*image.NRGBA, error) {
	img, err := tga.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, errors.Wrap(err, "texture: decode tga")
	}
	if img.Bounds().Empty() {
		return nil, errors.New("texture: empty tga image")
	}
	return toNRGBA(img), nil
}

// toNRGBA converts any image to NRGBA format anchored at the origin.
func toNRGBA(src image.Image) *image.NRGBA {
	if n, ok := src.(*image.NRGBA); ok && n.Rect.Min == (image.Point{}) {
		return n
	}
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	switch src.(type) {
	case *image.YCbCr, *image.Gray:
		// No alpha: draw, then force opaque
		draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
		for i := 3; i < len(dst.Pix); i += 4 {
			dst.Pix[i] = 255
		}
	default:
		for y := 0; y < b.Dy(); y++ {
			for x := 0; x < b.Dx(); x++ {
				c := color.NRGBAModel.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
				i := dst.PixOffset(x, y)
				dst.Pix[i] = c.R
				dst.Pix[i+1] = c.G
				dst.Pix[i+2] = c.B
				dst.Pix[i+3] = c.A
			}
		}
	}
	return dst
}
