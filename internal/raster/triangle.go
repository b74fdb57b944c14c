package raster

import (
	"image"
	"math"
)

// Vertex is one projected triangle corner: screen position, camera depth
// (larger is closer) and texture coordinate.
type Vertex struct {
	X, Y, Z float64
	U, V    float64
}

// Surface is the per-face input that does not vary across the triangle.
type Surface struct {
	Tex                        *image.NRGBA
	BaseR, BaseG, BaseB, BaseA uint8
	Shade                      float64
}

// RasterizeTriangle rasterizes a single triangle with optional texture
// mapping, z-buffer, sRGB color space, flat lighting and ACES tone mapping.
//
// Hot path: nothing in the pixel loop allocates.
func RasterizeTriangle(fb *FrameBuffer, v0, v1, v2 Vertex, s *Surface, lc *LightConfig) {
	x0, y0, z0 := v0.X, v0.Y, v0.Z
	x1, y1, z1 := v1.X, v1.Y, v1.Z
	x2, y2, z2 := v2.X, v2.Y, v2.Z

	// Bounding box
	minX := int(math.Floor(math.Min(math.Min(x0, x1), x2)))
	maxX := int(math.Ceil(math.Max(math.Max(x0, x1), x2)))
	minY := int(math.Floor(math.Min(math.Min(y0, y1), y2)))
	maxY := int(math.Ceil(math.Max(math.Max(y0, y1), y2)))

	if minX < 0 {
		minX = 0
	}
	if maxX >= fb.Width {
		maxX = fb.Width - 1
	}
	if minY < 0 {
		minY = 0
	}
	if maxY >= fb.Height {
		maxY = fb.Height - 1
	}
	if minX > maxX || minY > maxY {
		return
	}

	// Barycentric setup
	det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if det > -1e-8 && det < 1e-8 {
		return
	}
	invDet := 1.0 / det

	// Precompute edge deltas
	dy12 := y1 - y2
	dx21 := x2 - x1
	dy20 := y2 - y0
	dx02 := x0 - x2

	hasUV := s.Tex != nil
	shade := s.Shade * lc.Exposure
	invGamma := lc.InvGamma

	// Samples at pixel centres.
	for sy := minY; sy <= maxY; sy++ {
		dsy := float64(sy) + 0.5 - y2
		rowOff := sy * fb.Width
		for sx := minX; sx <= maxX; sx++ {
			dsx := float64(sx) + 0.5 - x2
			w0 := (dy12*dsx + dx21*dsy) * invDet
			w1 := (dy20*dsx + dx02*dsy) * invDet
			w2 := 1.0 - w0 - w1

			if w0 < -0.001 || w1 < -0.001 || w2 < -0.001 {
				continue
			}

			z := w0*z0 + w1*z1 + w2*z2
			zIdx := rowOff + sx
			if z <= fb.ZBuf[zIdx] {
				continue
			}

			cr, cg, cb, ca := s.BaseR, s.BaseG, s.BaseB, s.BaseA
			if hasUV {
				u := w0*v0.U + w1*v1.U + w2*v2.U
				v := w0*v0.V + w1*v1.V + w2*v2.V
				cr, cg, cb, ca = SampleTexture(s.Tex, u, v)
			}

			// Skip transparent texels
			if ca < 8 {
				continue
			}
			fb.ZBuf[zIdx] = z

			// sRGB decode → linear (LUT), shade, tone map, re-encode
			fr := math.Pow(ACESTonemap(srgbToLinear[cr]*shade), invGamma)
			fg := math.Pow(ACESTonemap(srgbToLinear[cg]*shade), invGamma)
			ffb := math.Pow(ACESTonemap(srgbToLinear[cb]*shade), invGamma)

			pxIdx := zIdx * 4
			fb.Color[pxIdx] = clamp255(fr * 255)
			fb.Color[pxIdx+1] = clamp255(fg * 255)
			fb.Color[pxIdx+2] = clamp255(ffb * 255)
			fb.Color[pxIdx+3] = 255
		}
	}
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
