package state

import (
	"log/slog"
	"os"
	"sync"

	"github.com/google/uuid"
)

// Painter owns the accumulated stroke and the drawing flag. All mutation goes
// through Apply on the UI event loop; the render path reads through Snapshot
// and Rev and never writes.
type Painter struct {
	mu      sync.RWMutex
	points  Stroke
	drawing bool
	rev     uint64

	session string
	gesture string
	log     *slog.Logger

	// OnQuit runs when a quit intent is applied. The default terminates the
	// process immediately with exit code 0.
	OnQuit func()
}

// NewPainter creates an idle painter with an empty stroke. A nil logger
// disables intent tracing.
func NewPainter(log *slog.Logger) *Painter {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	session := uuid.NewString()
	return &Painter{
		session: session,
		log:     log.With("session", shortID(session)),
		OnQuit:  func() { os.Exit(0) },
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// Apply runs one intent through the state machine and reports whether the
// stroke mutated. Callers repaint only when it did. Unknown kinds are
// ignored.
func (p *Painter) Apply(it Intent) bool {
	switch it.Kind {
	case IntentStrokeStart:
		return p.strokeStart(it.Pos)
	case IntentStrokeExtend:
		return p.strokeExtend(it.Pos)
	case IntentStrokeEnd:
		return p.strokeEnd()
	case IntentClear:
		return p.clear()
	case IntentQuit:
		p.quit()
		return false
	default:
		return false
	}
}

func (p *Painter) strokeStart(pos Point) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.drawing = true
	p.gesture = uuid.NewString()
	p.points = append(p.points, pos)
	p.rev++
	p.log.Debug("stroke started", "gesture", shortID(p.gesture), "x", pos.X, "y", pos.Y)
	return true
}

func (p *Painter) strokeExtend(pos Point) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.drawing {
		// Pointer moved without an active stroke; nothing to extend.
		return false
	}
	p.points = append(p.points, pos)
	p.rev++
	p.log.Debug("stroke extended", "gesture", shortID(p.gesture), "points", len(p.points))
	return true
}

func (p *Painter) strokeEnd() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.drawing {
		p.log.Debug("stroke finished", "gesture", shortID(p.gesture), "points", len(p.points))
	}
	// Ending while already idle just leaves the flag down.
	p.drawing = false
	return false
}

func (p *Painter) clear() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.points = nil
	p.drawing = false
	p.rev++
	p.log.Info("canvas cleared")
	return true
}

func (p *Painter) quit() {
	p.log.Info("quit requested")
	if fn := p.OnQuit; fn != nil {
		fn()
	}
}

// Snapshot returns a copy of the stroke together with the revision it
// belongs to.
func (p *Painter) Snapshot() (Stroke, uint64) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.points.Clone(), p.rev
}

// Points returns a copy of the accumulated stroke.
func (p *Painter) Points() Stroke {
	s, _ := p.Snapshot()
	return s
}

// Rev returns the stroke revision. It increases on every mutation and keys
// the render cache.
func (p *Painter) Rev() uint64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.rev
}

// Drawing reports whether a stroke is currently active.
func (p *Painter) Drawing() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.drawing
}
