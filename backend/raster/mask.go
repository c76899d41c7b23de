package raster

import (
	"image"
	"image/draw"
	"math"
	"slices"

	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/clone"
	"golang.org/x/image/vector"

	"github.com/gogpu/canvas2d"
)

// subsamples is the per-axis supersampling factor of the even-odd filler.
const subsamples = 4

// fillPolygons returns the sub-paths as implicitly closed polygons.
func fillPolygons(subpaths []canvas2d.Subpath) [][]canvas2d.Point {
	polys := make([][]canvas2d.Point, 0, len(subpaths))
	for _, sp := range subpaths {
		if len(sp.Points) >= 3 {
			polys = append(polys, sp.Points)
		}
	}
	return polys
}

// coverage rasterizes polys into an alpha mask the size of the target.
func (b *Backend) coverage(polys [][]canvas2d.Point, rule canvas2d.FillRule) *image.Alpha {
	bounds := b.img.Bounds()
	if rule == canvas2d.FillRuleEvenOdd {
		return evenOddCoverage(polys, bounds.Dx(), bounds.Dy())
	}
	mask := image.NewAlpha(bounds)
	if len(polys) == 0 {
		return mask
	}
	r := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	r.DrawOp = draw.Src
	for _, poly := range polys {
		r.MoveTo(float32(poly[0].X), float32(poly[0].Y))
		for _, pt := range poly[1:] {
			r.LineTo(float32(pt.X), float32(pt.Y))
		}
		r.ClosePath()
	}
	r.Draw(mask, bounds, image.Opaque, image.Point{})
	return mask
}

// evenOddCoverage rasterizes polys with the even-odd rule by counting
// edge crossings on a subsamples x subsamples grid per pixel.
func evenOddCoverage(polys [][]canvas2d.Point, width, height int) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, width, height))
	if len(polys) == 0 {
		return mask
	}

	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, poly := range polys {
		for _, pt := range poly {
			minY = min(minY, pt.Y)
			maxY = max(maxY, pt.Y)
		}
	}
	y0 := max(0, int(math.Floor(minY)))
	y1 := min(height, int(math.Ceil(maxY)))

	hits := make([]int, width)
	limit := width * subsamples
	var xs []float64
	for y := y0; y < y1; y++ {
		clear(hits)
		for sy := 0; sy < subsamples; sy++ {
			fy := float64(y) + (float64(sy)+0.5)/subsamples
			xs = xs[:0]
			for _, poly := range polys {
				n := len(poly)
				for i, a := range poly {
					c := poly[(i+1)%n]
					if (a.Y <= fy) != (c.Y <= fy) {
						xs = append(xs, a.X+(fy-a.Y)*(c.X-a.X)/(c.Y-a.Y))
					}
				}
			}
			slices.Sort(xs)
			for i := 0; i+1 < len(xs); i += 2 {
				k0 := clampInt(int(math.Ceil(xs[i]*subsamples-0.5)), 0, limit)
				k1 := clampInt(int(math.Ceil(xs[i+1]*subsamples-0.5)), 0, limit)
				for k := k0; k < k1; k++ {
					hits[k/subsamples]++
				}
			}
		}
		row := mask.Pix[y*mask.Stride:]
		for x, h := range hits {
			row[x] = uint8(h * 255 / (subsamples * subsamples))
		}
	}
	return mask
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// shadowMask offsets and blurs mask according to s. Blur is a Gaussian
// with standard deviation s.Blur/2, as canvas defines it.
func shadowMask(mask *image.Alpha, s canvas2d.Shadow) *image.Alpha {
	shifted := offsetAlpha(mask, int(math.Round(s.OffsetX)), int(math.Round(s.OffsetY)))
	if s.Blur <= 0 {
		return shifted
	}
	img := blur.Gaussian(clone.AsRGBA(shifted), s.Blur/2)
	out := image.NewAlpha(mask.Bounds())
	for i := range out.Pix {
		out.Pix[i] = img.Pix[i*4+3]
	}
	return out
}

// offsetAlpha returns a copy of mask moved by (dx, dy) pixels; pixels
// shifted in from outside are transparent.
func offsetAlpha(mask *image.Alpha, dx, dy int) *image.Alpha {
	out := image.NewAlpha(mask.Bounds())
	w, h := mask.Rect.Dx(), mask.Rect.Dy()
	for y := 0; y < h; y++ {
		sy := y - dy
		if sy < 0 || sy >= h {
			continue
		}
		for x := 0; x < w; x++ {
			sx := x - dx
			if sx < 0 || sx >= w {
				continue
			}
			out.Pix[y*out.Stride+x] = mask.Pix[sy*mask.Stride+sx]
		}
	}
	return out
}
