package render

import (
	"image"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"vivopaint/internal/state"
)

// Polyline strokes the point sequence onto dst as one continuous path, scaled
// from window-space units to dst pixels. The stroke is composited over
// whatever dst already holds. Fewer than two points produce no geometry.
func Polyline(dst *image.RGBA, pts state.Stroke, scale float32, sty Style) {
	if len(pts) < 2 {
		return
	}

	b := dst.Bounds()
	scanner := rasterx.NewScannerGV(b.Dx(), b.Dy(), dst, b)
	stroker := rasterx.NewStroker(b.Dx(), b.Dy(), scanner)
	stroker.SetColor(sty.Color)

	capFn, gapFn, join := sty.strokeFuncs()
	stroker.SetStroke(
		toFixed(sty.Width*float64(scale)),
		toFixed(sty.MiterLimit),
		capFn, capFn, gapFn, join,
	)

	stroker.Start(fixedPoint(pts[0], scale))
	for _, p := range pts[1:] {
		stroker.Line(fixedPoint(p, scale))
	}
	stroker.Stop(false)
	stroker.Draw()
}

func fixedPoint(p state.Point, scale float32) fixed.Point26_6 {
	return rasterx.ToFixedP(float64(p.X)*float64(scale), float64(p.Y)*float64(scale))
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func (s Style) strokeFuncs() (rasterx.CapFunc, rasterx.GapFunc, rasterx.JoinMode) {
	capFn := rasterx.ButtCap
	switch s.Cap {
	case LineCapRound:
		capFn = rasterx.RoundCap
	case LineCapSquare:
		capFn = rasterx.SquareCap
	}

	gapFn, join := rasterx.FlatGap, rasterx.Miter
	switch s.Join {
	case LineJoinRound:
		gapFn, join = rasterx.RoundGap, rasterx.Round
	case LineJoinBevel:
		join = rasterx.Bevel
	}
	return capFn, gapFn, join
}
