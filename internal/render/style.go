// Package render turns the accumulated stroke into rasterized frames for the
// widget to display, memoizing the frame between stroke mutations.
package render

import "image/color"

// LineCap specifies the shape of stroke endpoints.
type LineCap int

const (
	// LineCapButt ends the stroke flat at the final point.
	LineCapButt LineCap = iota
	// LineCapRound ends the stroke with a half disc.
	LineCapRound
	// LineCapSquare ends the stroke with a half square.
	LineCapSquare
)

// LineJoin specifies the shape of joins between stroke segments.
type LineJoin int

const (
	// LineJoinMiter joins segments with a sharp corner.
	LineJoinMiter LineJoin = iota
	// LineJoinRound joins segments with a circular arc.
	LineJoinRound
	// LineJoinBevel joins segments with a flat corner.
	LineJoinBevel
)

// Style describes how the stroke is painted.
type Style struct {
	// Width is the stroke width in window-space units.
	Width float64

	// Cap is the shape of the stroke endpoints.
	Cap LineCap

	// Join is the shape of segment joins.
	Join LineJoin

	// MiterLimit bounds miter joins before they fall back to bevels.
	MiterLimit float64

	// Color is the stroke color, alpha included.
	Color color.NRGBA
}

// DefaultStyle returns the fixed visual style of the demo: a 10 unit wide,
// round-capped, round-joined, half-transparent red stroke.
func DefaultStyle() Style {
	return Style{
		Width:      10,
		Cap:        LineCapRound,
		Join:       LineJoinRound,
		MiterLimit: 4,
		Color:      color.NRGBA{R: 255, A: 128},
	}
}
