package marker

import (
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// kappa places cubic Bézier control points for a quarter-circle arc.
const kappa = 0.5522847498

// annulus is the set of points whose distance from (cx, cy) lies in
// [inner, outer]. inner <= 0 describes a filled disc.
type annulus struct {
	cx, cy       float64
	inner, outer float64
}

// hardMask covers every pixel whose center (x+0.5, y+0.5) lies inside a.
// Coverage is all or nothing.
func hardMask(size int, a annulus) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, size, size))
	outer2 := a.outer * a.outer
	inner2 := a.inner * a.inner
	if a.inner <= 0 {
		inner2 = -1
	}

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			fx := float64(x) + 0.5 - a.cx
			fy := float64(y) + 0.5 - a.cy
			d2 := fx*fx + fy*fy
			if d2 <= outer2 && d2 >= inner2 {
				mask.Pix[y*mask.Stride+x] = 0xff
			}
		}
	}
	return mask
}

// smoothMask rasterizes a with area coverage, so boundary pixels get
// partial alpha.
func smoothMask(size int, a annulus) *image.Alpha {
	z := vector.NewRasterizer(size, size)
	z.DrawOp = draw.Src

	circlePath(z, a.cx, a.cy, a.outer, false)
	if a.inner > 0 {
		// Opposite winding cancels the accumulated coverage inside the hole.
		circlePath(z, a.cx, a.cy, a.inner, true)
	}

	mask := image.NewAlpha(image.Rect(0, 0, size, size))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}

// circlePath appends a closed circle built from four cubic arcs, clockwise
// on screen unless reverse is set.
func circlePath(z *vector.Rasterizer, cx, cy, r float64, reverse bool) {
	x, y, rr := float32(cx), float32(cy), float32(r)
	k := float32(kappa * r)

	z.MoveTo(x+rr, y)
	if reverse {
		z.CubeTo(x+rr, y-k, x+k, y-rr, x, y-rr)
		z.CubeTo(x-k, y-rr, x-rr, y-k, x-rr, y)
		z.CubeTo(x-rr, y+k, x-k, y+rr, x, y+rr)
		z.CubeTo(x+k, y+rr, x+rr, y+k, x+rr, y)
	} else {
		z.CubeTo(x+rr, y+k, x+k, y+rr, x, y+rr)
		z.CubeTo(x-k, y+rr, x-rr, y+k, x-rr, y)
		z.CubeTo(x-rr, y-k, x-k, y-rr, x, y-rr)
		z.CubeTo(x+k, y-rr, x+rr, y-k, x+rr, y)
	}
	z.ClosePath()
}
