// Package input classifies raw toolkit events into painter intents.
package input

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"vivopaint/internal/state"
)

// Key bindings.
const (
	KeyQuit  = fyne.KeyEscape
	KeyClear = fyne.KeyR
)

// PointerDown maps a primary-button press to a stroke-start intent at the
// press position. Presses with any other button are not consumed.
func PointerDown(ev *desktop.MouseEvent) (state.Intent, bool) {
	if ev.Button != desktop.MouseButtonPrimary {
		return state.Intent{}, false
	}
	return state.StrokeStart(pointOf(ev.Position)), true
}

// PointerUp maps a primary-button release to a stroke-end intent. Releases of
// any other button are not consumed.
func PointerUp(ev *desktop.MouseEvent) (state.Intent, bool) {
	if ev.Button != desktop.MouseButtonPrimary {
		return state.Intent{}, false
	}
	return state.StrokeEnd(), true
}

// PointerDragged maps pointer movement to a stroke-extend intent. Drag events
// carry no button identity, so extension with no active stroke is left to the
// painter to drop.
func PointerDragged(ev *fyne.DragEvent) (state.Intent, bool) {
	return state.StrokeExtend(pointOf(ev.Position)), true
}

// TypedKey maps the quit and clear keys. Any other key is not consumed.
func TypedKey(ev *fyne.KeyEvent) (state.Intent, bool) {
	switch ev.Name {
	case KeyQuit:
		return state.Quit(), true
	case KeyClear:
		return state.Clear(), true
	default:
		return state.Intent{}, false
	}
}

func pointOf(pos fyne.Position) state.Point {
	return state.Point{X: pos.X, Y: pos.Y}
}
