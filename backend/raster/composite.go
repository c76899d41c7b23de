package raster

import (
	"image"

	"github.com/gogpu/canvas2d"
)

// blendFunc returns the Porter-Duff source and destination factors for
// premultiplied source alpha sa and destination alpha da.
type blendFunc func(sa, da float64) (fa, fb float64)

var blendModes = map[canvas2d.CompositeOperation]blendFunc{
	canvas2d.CompositeSourceOver:      func(sa, _ float64) (float64, float64) { return 1, 1 - sa },
	canvas2d.CompositeSourceIn:        func(_, da float64) (float64, float64) { return da, 0 },
	canvas2d.CompositeSourceOut:       func(_, da float64) (float64, float64) { return 1 - da, 0 },
	canvas2d.CompositeSourceAtop:      func(sa, da float64) (float64, float64) { return da, 1 - sa },
	canvas2d.CompositeDestinationOver: func(_, da float64) (float64, float64) { return 1 - da, 1 },
	canvas2d.CompositeDestinationIn:   func(sa, _ float64) (float64, float64) { return 0, sa },
	canvas2d.CompositeDestinationOut:  func(sa, _ float64) (float64, float64) { return 0, 1 - sa },
	canvas2d.CompositeDestinationAtop: func(sa, da float64) (float64, float64) { return 1 - da, sa },
	canvas2d.CompositeLighter:         func(_, _ float64) (float64, float64) { return 1, 1 },
	canvas2d.CompositeCopy:            func(_, _ float64) (float64, float64) { return 1, 0 },
	canvas2d.CompositeXor:             func(sa, da float64) (float64, float64) { return 1 - da, 1 - sa },
	canvas2d.CompositeClear:           func(_, _ float64) (float64, float64) { return 0, 0 },
}

// composite blends c into the target through mask. Pixels outside the
// mask are left untouched for every operation.
func (b *Backend) composite(mask *image.Alpha, c canvas2d.RGBA, op canvas2d.CompositeOperation) {
	blend, ok := blendModes[op]
	if !ok {
		blend = blendModes[canvas2d.CompositeSourceOver]
	}
	src := premultipliedFloat(c)
	bounds := b.img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		mrow := mask.Pix[mask.PixOffset(bounds.Min.X, y):]
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			cov := mrow[x-bounds.Min.X]
			if cov == 0 {
				continue
			}
			m := float64(cov) / 255
			px := b.img.Pix[b.img.PixOffset(x, y):]
			var dst [4]float64
			for i := range dst {
				dst[i] = float64(px[i]) / 255
			}
			fa, fb := blend(src[3], dst[3])
			for i := range dst {
				v := clamp01(src[i]*fa + dst[i]*fb)
				px[i] = to8(dst[i] + (v-dst[i])*m)
			}
		}
	}
}

func premultipliedFloat(c canvas2d.RGBA) [4]float64 {
	a := clamp01(c.A)
	return [4]float64{clamp01(c.R) * a, clamp01(c.G) * a, clamp01(c.B) * a, a}
}

func premultiply(c canvas2d.RGBA) [4]uint8 {
	f := premultipliedFloat(c)
	return [4]uint8{to8(f[0]), to8(f[1]), to8(f[2]), to8(f[3])}
}

func clamp01(v float64) float64 {
	return max(0, min(v, 1))
}

func to8(v float64) uint8 {
	return uint8(clamp01(v)*255 + 0.5)
}
