package gestures

import (
	"github.com/google/uuid"

	"github.com/go-touch/libtouch/pkg/gerrors"
)

// ActionKind identifies the tagged variant of an Action.
type ActionKind int

const (
	// ActionTouch advances on a finger press or release.
	ActionTouch ActionKind = iota
	// ActionMove advances on directional drag of the contact centroid.
	ActionMove
	// ActionRotate advances on rotation of the contact group.
	ActionRotate
	// ActionPinch advances on scale change of the contact group.
	ActionPinch
	// ActionDelay advances purely by elapsed dwell time.
	ActionDelay
)

func (k ActionKind) String() string {
	switch k {
	case ActionTouch:
		return "touch"
	case ActionMove:
		return "move"
	case ActionRotate:
		return "rotate"
	case ActionPinch:
		return "pinch"
	case ActionDelay:
		return "delay"
	default:
		return "unknown"
	}
}

// TouchMode is a bitmask over the touch events an ActionTouch reacts to.
type TouchMode uint8

const (
	TouchDown TouchMode = 1 << iota
	TouchUp
)

// Action is one step of a Gesture: a tagged variant with a common header
// (threshold, duration, tolerance, optional target) and kind-specific
// parameters. Actions are owned by their Gesture and, through it, by the
// Engine; they must not be mutated once the owning Engine has delivered
// its first event to any Tracker.
type Action struct {
	ID   uuid.UUID
	Kind ActionKind

	// gesture is the owning gesture, used to find the owning engine for
	// the mutation-after-first-event check.
	gesture *Gesture

	Threshold     int
	DurationMS    int64
	MoveTolerance float64
	Target        *Target

	// TouchMode applies only to ActionTouch.
	TouchMode TouchMode
	// MoveDirection applies only to ActionMove.
	MoveDirection Direction
	// RotateDirection applies only to ActionRotate.
	RotateDirection RotateDir
	// PinchDirection applies only to ActionPinch.
	PinchDirection PinchDir
}

func newAction(g *Gesture, kind ActionKind) *Action {
	return &Action{ID: uuid.New(), Kind: kind, gesture: g}
}

func (a *Action) locked() bool {
	return a.gesture != nil && a.gesture.engine != nil && a.gesture.engine.isLocked()
}

// SetThreshold sets the action's completion threshold. Units depend on the
// action kind (see the package-level threshold unit table in the Gesture
// doc comment). A zero threshold on anything but ActionTouch is a contract
// violation: only ActionTouch gives threshold 0 a meaning of its own ("any
// single touch completes the action"); a zero-threshold Move, Rotate, or
// Pinch action would never progress past gating and would silently stall
// forever, and ActionDelay carries its requirement in duration instead.
// Setting a threshold on a Move action that already has a Target is
// rejected too, mirroring SetTarget's own check: the two completion
// strategies are mutually exclusive for Move regardless of call order.
func (a *Action) SetThreshold(threshold int) error {
	if a.locked() {
		return gerrors.New("Action.SetThreshold", gerrors.KindContract, "gesture is locked: events already delivered")
	}
	if threshold == 0 && a.Kind != ActionTouch {
		return gerrors.New("Action.SetThreshold", gerrors.KindContract, "zero threshold is only meaningful on a touch action, got %s", a.Kind)
	}
	if a.Kind == ActionMove && a.Target != nil {
		return gerrors.New("Action.SetThreshold", gerrors.KindContract, "move action already has a target; target and threshold are mutually exclusive")
	}
	a.Threshold = threshold
	return nil
}

// SetTarget sets the region an ActionTouch or ActionMove must hit to
// complete. Any other kind rejects a target. Setting a target on an
// ActionMove that already has a non-zero threshold is rejected too: the
// two completion strategies are mutually exclusive for Move.
func (a *Action) SetTarget(t *Target) error {
	if a.locked() {
		return gerrors.New("Action.SetTarget", gerrors.KindContract, "gesture is locked: events already delivered")
	}
	if a.Kind != ActionTouch && a.Kind != ActionMove {
		return gerrors.New("Action.SetTarget", gerrors.KindContract, "target only applies to touch and move actions, got %s", a.Kind)
	}
	if a.Kind == ActionMove && a.Threshold != 0 {
		return gerrors.New("Action.SetTarget", gerrors.KindContract, "move action already has a threshold; target and threshold are mutually exclusive")
	}
	a.Target = t
	return nil
}

// SetDuration sets the action's duration. For ActionDelay this is the
// minimum dwell and must be positive. For every other kind it is an upper
// bound on elapsed time since the previous completed action; zero means
// "no bound".
func (a *Action) SetDuration(ms int64) error {
	if a.locked() {
		return gerrors.New("Action.SetDuration", gerrors.KindContract, "gesture is locked: events already delivered")
	}
	if a.Kind == ActionDelay && ms <= 0 {
		return gerrors.New("Action.SetDuration", gerrors.KindContract, "delay actions require a positive dwell duration")
	}
	a.DurationMS = ms
	return nil
}

// SetMoveTolerance sets the maximum off-axis or spurious displacement
// tolerated before the action's progress record resets.
func (a *Action) SetMoveTolerance(tolerance float64) error {
	if a.locked() {
		return gerrors.New("Action.SetMoveTolerance", gerrors.KindContract, "gesture is locked: events already delivered")
	}
	a.MoveTolerance = tolerance
	return nil
}
