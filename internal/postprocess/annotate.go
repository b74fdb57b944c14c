package postprocess

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	hudMargin     = 6
	hudLineHeight = 15
)

var (
	hudInk    = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	hudShadow = color.NRGBA{R: 0, G: 0, B: 0, A: 200}
)

// Annotate draws lines of text into the top-left corner of img in place, one
// pixel of drop shadow under white 7x13 glyphs. Lines that fall off the
// bottom of the image are skipped.
func Annotate(img *image.NRGBA, lines []string) {
	face := basicfont.Face7x13
	ascent := face.Metrics().Ascent.Ceil()
	b := img.Bounds()

	for i, line := range lines {
		if line == "" {
			continue
		}
		baseline := b.Min.Y + hudMargin + ascent + i*hudLineHeight
		if baseline >= b.Max.Y {
			break
		}
		x := b.Min.X + hudMargin
		drawString(img, face, hudShadow, x+1, baseline+1, line)
		drawString(img, face, hudInk, x, baseline, line)
	}
}

func drawString(dst *image.NRGBA, face font.Face, c color.Color, x, y int, s string) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// TextWidth returns the advance of s in pixels with the HUD face.
func TextWidth(s string) int {
	return font.MeasureString(basicfont.Face7x13, s).Ceil()
}
