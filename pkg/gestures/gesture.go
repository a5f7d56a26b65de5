package gestures

import "github.com/google/uuid"

// Gesture is an ordered sequence of actions, owned by the Engine that
// created it. A gesture starts empty; one that still has no actions when
// events arrive never progresses or drains. A Gesture (and its actions) becomes immutable
// once its owning Engine has delivered its first event to any Tracker.
//
// # Threshold and duration units
//
//	Kind    Threshold meaning                      Duration meaning
//	Touch   number of contacts to reach             max gap since prev action
//	Move    positional units (e.g. % of screen)     max gap since prev action
//	Rotate  degrees of rotation                     max gap since prev action
//	Pinch   target scale x 100 (percent)            max gap since prev action
//	Delay   unused                                  minimum dwell (must be > 0)
type Gesture struct {
	ID      uuid.UUID
	Actions []*Action

	engine *Engine
}

func newGesture(e *Engine) *Gesture {
	return &Gesture{ID: uuid.New(), engine: e}
}

// append adds a newly built action to the gesture. Panics if the owning
// engine is already locked: an Add* call reaching this after a tracker has
// started recognizing against the gesture would grow Actions out from
// under every live ProgressRecord.CompletedActions index for it.
func (g *Gesture) append(a *Action) *Action {
	if g.engine != nil && g.engine.isLocked() {
		panic("gestures: gesture modified after the engine delivered its first event")
	}
	g.Actions = append(g.Actions, a)
	return a
}

// AddTouch appends a touch action reacting to mode (TouchDown, TouchUp, or
// TouchDown|TouchUp for either).
func (g *Gesture) AddTouch(mode TouchMode) *Action {
	a := newAction(g, ActionTouch)
	a.TouchMode = mode
	return g.append(a)
}

// AddMove appends a directional move action. dir permits travel along the
// given axes/signs; an axis with neither sign set must stay stationary.
func (g *Gesture) AddMove(dir Direction) *Action {
	a := newAction(g, ActionMove)
	a.MoveDirection = dir
	return g.append(a)
}

// AddRotate appends a rotation action reacting to dir.
func (g *Gesture) AddRotate(dir RotateDir) *Action {
	a := newAction(g, ActionRotate)
	a.RotateDirection = dir
	return g.append(a)
}

// AddPinch appends a pinch-scale action reacting to dir.
func (g *Gesture) AddPinch(dir PinchDir) *Action {
	a := newAction(g, ActionPinch)
	a.PinchDirection = dir
	return g.append(a)
}

// AddDelay appends a dwell action requiring durationMS of stillness.
func (g *Gesture) AddDelay(durationMS int64) *Action {
	a := newAction(g, ActionDelay)
	a.DurationMS = durationMS
	return g.append(a)
}

// SetMoveTolerance broadcasts a move tolerance to every action in the
// gesture. Every action is tried; the first error from an individual
// action (e.g. a locked gesture) is returned, and a non-nil return means at
// least one action rejected the value.
func (g *Gesture) SetMoveTolerance(tolerance float64) error {
	var firstErr error
	for _, a := range g.Actions {
		if err := a.SetMoveTolerance(tolerance); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
