package ui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"vivopaint/internal/input"
	"vivopaint/internal/render"
	"vivopaint/internal/state"
)

// PainterWidget is the single interactive surface of the window. It forwards
// pointer and key events to the input classifier, applies the resulting
// intents to the painter and repaints from the frame cache whenever the
// stroke actually changed.
type PainterWidget struct {
	widget.BaseWidget
	painter *state.Painter
	style   render.Style
	cache   render.Cache
	raster  *canvas.Raster
}

var _ fyne.Widget = (*PainterWidget)(nil)
var _ fyne.Draggable = (*PainterWidget)(nil)
var _ fyne.Focusable = (*PainterWidget)(nil)
var _ desktop.Mouseable = (*PainterWidget)(nil)
var _ desktop.Hoverable = (*PainterWidget)(nil)

func NewPainterWidget(p *state.Painter, sty render.Style) *PainterWidget {
	w := &PainterWidget{
		painter: p,
		style:   sty,
	}
	w.raster = canvas.NewRaster(w.frame)
	w.ExtendBaseWidget(w)
	return w
}

// frame is the raster generator. Width and height arrive in device pixels
// while the stroke is recorded in window-space units, so the ratio between
// the two goes to the cache as the scale.
func (w *PainterWidget) frame(pw, ph int) image.Image {
	pts, rev := w.painter.Snapshot()
	scale := float32(1)
	if size := w.Size(); size.Width > 0 {
		scale = float32(pw) / size.Width
	}
	return w.cache.Frame(pts, rev, pw, ph, scale, w.style)
}

func (w *PainterWidget) apply(it state.Intent) {
	if w.painter.Apply(it) {
		w.Refresh()
	}
}

func (w *PainterWidget) MouseDown(e *desktop.MouseEvent) {
	if it, ok := input.PointerDown(e); ok {
		w.apply(it)
	}
}

func (w *PainterWidget) MouseUp(e *desktop.MouseEvent) {
	if it, ok := input.PointerUp(e); ok {
		w.apply(it)
	}
}

func (w *PainterWidget) Dragged(e *fyne.DragEvent) {
	if it, ok := input.PointerDragged(e); ok {
		w.apply(it)
	}
}

func (w *PainterWidget) TypedKey(e *fyne.KeyEvent) {
	if it, ok := input.TypedKey(e); ok {
		w.apply(it)
	}
}

func (w *PainterWidget) CreateRenderer() fyne.WidgetRenderer {
	return &painterWidgetRenderer{widget: w}
}

type painterWidgetRenderer struct {
	widget *PainterWidget
}

func (r *painterWidgetRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.widget.raster}
}

func (r *painterWidgetRenderer) Refresh() {
	r.widget.raster.Refresh()
}

func (w *PainterWidget) MouseIn(*desktop.MouseEvent)    {}
func (w *PainterWidget) MouseOut()                      {}
func (w *PainterWidget) MouseMoved(*desktop.MouseEvent) {}
func (w *PainterWidget) DragEnd()                       {}
func (w *PainterWidget) TypedRune(rune)                 {}
func (w *PainterWidget) FocusGained()                   {}
func (w *PainterWidget) FocusLost()                     {}
func (r *painterWidgetRenderer) Destroy()               {}
func (r *painterWidgetRenderer) Layout(size fyne.Size)  { r.widget.raster.Resize(size) }
func (r *painterWidgetRenderer) MinSize() fyne.Size     { return fyne.NewSize(300, 300) }
