// Package state holds the drawing model: the accumulated stroke and the
// intent-driven state machine that mutates it.
package state

// Point is a 2D coordinate in window-space units.
type Point struct{ X, Y float32 }

// Stroke is an ordered point sequence. Insertion order defines the traversal
// order of the rendered path.
type Stroke []Point

// Clone returns an independent copy of the stroke.
func (s Stroke) Clone() Stroke {
	if s == nil {
		return nil
	}
	out := make(Stroke, len(s))
	copy(out, s)
	return out
}
