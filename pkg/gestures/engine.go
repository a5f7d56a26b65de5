package gestures

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Engine owns the set of gesture definitions and targets for one
// application surface. It is the allocation root: gestures and targets
// borrowed by a Tracker live exactly as long as the Engine does.
//
// An Engine is read-only from the moment its first event is delivered to
// any Tracker built on top of it: gesture definitions must not change
// while a tracker is recognizing against them, since a tracker's progress
// records are indexed positionally against Engine.Gestures(). Builder
// calls that add a gesture, target or action after that point panic rather
// than silently growing a gesture or the target set out from under a live
// tracker; Action setters instead return a contract error. Builder calls
// made before that point are unsynchronized and expected to come from a
// single setup-time goroutine, matching the single-threaded cooperative
// model in the package doc.
type Engine struct {
	ID uuid.UUID

	// Logger receives structured debug traces of recognition state
	// transitions. Nil-safe: a nil Logger (the zero value) emits nothing.
	Logger *logrus.Entry

	mu       sync.Mutex
	gestures []*Gesture
	targets  []*Target
	locked   atomic.Bool
}

// NewEngine creates an empty engine.
func NewEngine() *Engine {
	return &Engine{ID: uuid.New()}
}

// CreateTarget registers a rectangular region and returns it. Panics if the
// engine has already delivered an event to a tracker: growing the target
// set past that point is a contract violation, not a runtime condition a
// caller can recover from.
func (e *Engine) CreateTarget(x, y, w, h float64) *Target {
	if e.isLocked() {
		panic("gestures: CreateTarget called on a locked engine")
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	t := newTarget(x, y, w, h)
	e.targets = append(e.targets, t)
	return t
}

// CreateGesture registers a new, initially empty gesture. Panics if the
// engine has already delivered an event to a tracker, for the same reason
// as CreateTarget.
func (e *Engine) CreateGesture() *Gesture {
	if e.isLocked() {
		panic("gestures: CreateGesture called on a locked engine")
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	g := newGesture(e)
	e.gestures = append(e.gestures, g)
	return g
}

// Gestures returns the engine's gesture definitions in registration order.
func (e *Engine) Gestures() []*Gesture {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]*Gesture, len(e.gestures))
	copy(out, e.gestures)
	return out
}

// SetMoveTolerance broadcasts a move tolerance to every action of every
// gesture owned by the engine.
func (e *Engine) SetMoveTolerance(tolerance float64) error {
	var firstErr error
	for _, g := range e.Gestures() {
		if err := g.SetMoveTolerance(tolerance); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// isLocked reports whether any tracker bound to this engine has already
// received an event.
func (e *Engine) isLocked() bool {
	return e.locked.Load()
}

// lock marks the engine immutable. Called once, by the first event
// delivered to any tracker bound to this engine.
func (e *Engine) lock() {
	e.locked.Store(true)
}

func (e *Engine) logger() *logrus.Entry {
	if e.Logger != nil {
		return e.Logger
	}
	l := logrus.New()
	l.SetOutput(discardWriter{})
	return logrus.NewEntry(l)
}

// discardWriter silently drops all writes, used as the default logger
// sink so Engine.Logger is nil-safe without branching at every call site.
type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }
