package gestures

import (
	"context"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// RegisterTouch informs the tracker of a press or release event: mode is
// exactly one of TouchDown or TouchUp, slot identifies the finger, and
// (x, y) is its position. Every progress record is advanced independently
// and in parallel; one record's state change never affects another, so
// the update is fanned out across an errgroup rather than looped
// sequentially.
func (t *Tracker) RegisterTouch(timestamp int64, slot int, mode TouchMode, x, y float64) error {
	t.Engine.lock()
	g, _ := errgroup.WithContext(context.Background())
	for _, r := range t.records {
		r := r
		g.Go(func() error {
			t.advanceTouch(r, timestamp, slot, mode, x, y)
			return nil
		})
	}
	return g.Wait()
}

// RegisterMove informs the tracker that the contact at slot moved by
// (dx, dy). Per-record updates are fanned out the same way as
// RegisterTouch.
func (t *Tracker) RegisterMove(timestamp int64, slot int, dx, dy float64) error {
	t.Engine.lock()
	g, _ := errgroup.WithContext(context.Background())
	for _, r := range t.records {
		r := r
		g.Go(func() error {
			t.advanceMove(r, timestamp, slot, dx, dy)
			return nil
		})
	}
	return g.Wait()
}

func (t *Tracker) recordLogger(r *ProgressRecord) *logrus.Entry {
	return t.logger().WithFields(logrus.Fields{
		"gesture":      r.Gesture.ID.String(),
		"action_index": r.CompletedActions,
		"record_state": recordState(r),
	})
}

func recordState(r *ProgressRecord) string {
	switch {
	case r.CompletedActions >= len(r.Gesture.Actions):
		return "eligible"
	case r.CompletedActions == 0 && r.contacts.len() == 0:
		return "idle"
	default:
		return "in_progress"
	}
}

// advanceTouch implements spec section 4.5.1 for a single progress
// record.
func (t *Tracker) advanceTouch(r *ProgressRecord, timestamp int64, slot int, mode TouchMode, x, y float64) {
	if len(r.Gesture.Actions) == 0 {
		// An empty gesture is rejected at first event: there is nothing
		// to recognize, so it can never progress or drain.
		return
	}
	a := r.CurrentAction()
	if a == nil {
		return // already eligible, waiting to be drained
	}

	if a.Kind == ActionDelay {
		t.tickDelay(r, a, timestamp)
		return
	}

	if a.Kind != ActionTouch {
		t.recordLogger(r).Debug("touch event while non-touch action active, resetting")
		r.Reset()
		return
	}

	if !gatingOK(r, a, timestamp) || a.TouchMode&mode == 0 || (a.Target != nil && !a.Target.Contains(x, y)) {
		t.recordLogger(r).Debug("touch gating predicate failed, resetting")
		r.Reset()
		return
	}

	if a.Threshold == 0 {
		r.ActionProgress = 1 // "any single touch" completes the action
	} else {
		r.ActionProgress += 1.0 / float64(a.Threshold)
	}

	switch mode {
	case TouchDown:
		r.contacts.insert(&Contact{Slot: slot, Start: Point{X: x, Y: y}, Current: Point{X: x, Y: y}})
	case TouchUp:
		r.contacts.remove(slot)
	}

	if r.ActionProgress > drainThreshold {
		r.commit(timestamp)
		t.recordLogger(r).Debug("touch action committed")
	}
}

// gatingOK checks the first bullet of the 4.5.1 gating predicate: either
// this is the gesture's first action, or not enough time has passed since
// the previous one completed.
func gatingOK(r *ProgressRecord, a *Action, timestamp int64) bool {
	if r.CompletedActions == 0 {
		return true
	}
	if a.DurationMS <= 0 {
		return true
	}
	return timestamp-r.LastActionTimestamp < a.DurationMS
}

// tickDelay handles a non-move event (touch or, via advanceMove, the
// periodic tick implied by a later move) arriving while a Delay action is
// current: it synthesizes dwell completion once enough time has passed,
// without requiring a dedicated clock-driven tick. Contacts are left
// untouched; the engine does not own the notion of which contacts are
// "part of" a delay beyond the tolerance check RegisterMove performs.
func (t *Tracker) tickDelay(r *ProgressRecord, a *Action, timestamp int64) {
	if r.CompletedActions > 0 && timestamp-r.LastActionTimestamp >= a.DurationMS {
		r.commit(timestamp)
		t.recordLogger(r).Debug("delay action committed")
	} else if r.CompletedActions == 0 {
		// A delay can only be the gesture's first action if duration has
		// already elapsed against a never-set timestamp, which cannot
		// happen; nothing to do but wait for a qualifying event.
		return
	}
}

// advanceMove implements spec section 4.5.2 for a single progress record.
func (t *Tracker) advanceMove(r *ProgressRecord, timestamp int64, slot int, dx, dy float64) {
	if len(r.Gesture.Actions) == 0 {
		return
	}
	contact, ok := r.contacts.get(slot)
	if !ok {
		return // unknown slot: ignored for this record
	}
	contact.Current.X += dx
	contact.Current.Y += dy

	a := r.CurrentAction()
	if a == nil {
		return
	}

	// A Delay's duration is a minimum dwell, not an upper bound, so it is
	// never a timeout here; tickDelay below handles it.
	if a.Kind != ActionDelay && a.DurationMS > 0 && timestamp-r.LastActionTimestamp > a.DurationMS {
		t.recordLogger(r).Debug("move action timed out, resetting")
		r.Reset()
		return
	}

	switch a.Kind {
	case ActionTouch, ActionDelay:
		if DragDistance(contact.Start, contact.Current) > a.MoveTolerance {
			t.recordLogger(r).Debug("contact exceeded tolerance, resetting")
			r.Reset()
			return
		}
		if a.Kind == ActionDelay {
			t.tickDelay(r, a, timestamp)
		}
	case ActionMove:
		t.advanceMoveAction(r, a, timestamp)
	case ActionRotate:
		t.advanceRotateAction(r, a, timestamp)
	case ActionPinch:
		t.advancePinchAction(r, a, timestamp)
	}
}

func (t *Tracker) advanceMoveAction(r *ProgressRecord, a *Action, timestamp int64) {
	contacts := r.contacts.slice()
	centroid := Centroid(contacts)

	if a.Target != nil {
		if a.Target.ContainsPoint(centroid.Current) {
			r.commit(timestamp)
			t.recordLogger(r).Debug("move action reached target, committed")
		}
		return
	}

	d := DragDistance(centroid.Start, centroid.Current)
	w := IncorrectDragDistance(centroid.Start, centroid.Current, a.MoveDirection)
	if w > a.MoveTolerance {
		t.recordLogger(r).Debug("move action drifted off-axis, resetting")
		r.Reset()
		return
	}
	if a.Threshold <= 0 {
		return
	}
	progress := (d - w) / float64(a.Threshold)
	if progress > r.ActionProgress {
		r.ActionProgress = progress
	}
	if progress > 1 {
		r.commit(timestamp)
		t.recordLogger(r).Debug("move action committed")
	}
}

func (t *Tracker) advanceRotateAction(r *ProgressRecord, a *Action, timestamp int64) {
	contacts := r.contacts.slice()
	centroid := Centroid(contacts)
	if DragDistance(centroid.Start, centroid.Current) > a.MoveTolerance {
		t.recordLogger(r).Debug("rotate action translated, resetting")
		r.Reset()
		return
	}
	if a.Threshold <= 0 {
		return
	}
	theta := RotateAngle(contacts)
	wantCW := a.RotateDirection&RotateClockwise != 0
	wantCCW := a.RotateDirection&RotateAnticlockwise != 0
	matches := (wantCW && theta < 0) || (wantCCW && theta > 0)
	if !matches {
		return
	}
	progress := absf(theta) / float64(a.Threshold)
	if progress > r.ActionProgress {
		r.ActionProgress = progress
	}
	if absf(theta) > float64(a.Threshold) {
		r.commit(timestamp)
		t.recordLogger(r).Debug("rotate action committed")
	}
}

func (t *Tracker) advancePinchAction(r *ProgressRecord, a *Action, timestamp int64) {
	contacts := r.contacts.slice()
	centroid := Centroid(contacts)
	if DragDistance(centroid.Start, centroid.Current) > a.MoveTolerance {
		t.recordLogger(r).Debug("pinch action translated, resetting")
		r.Reset()
		return
	}
	scale, ok := PinchScale(contacts)
	if !ok {
		// Zero start-radius mean: undefined scale, treated as no progress
		// for this event rather than a reset.
		return
	}
	if a.Threshold <= 0 {
		return
	}
	ratioThreshold := float64(a.Threshold) / 100.0
	wantOut := a.PinchDirection&PinchOut != 0
	wantIn := a.PinchDirection&PinchIn != 0

	switch {
	case wantOut && scale > 1:
		progress := (scale - 1) / maxf(ratioThreshold-1, epsilon)
		if progress > r.ActionProgress {
			r.ActionProgress = progress
		}
		if scale > ratioThreshold {
			r.commit(timestamp)
			t.recordLogger(r).Debug("pinch-out action committed")
		}
	case wantIn && scale < 1 && scale > 0:
		shrinkTarget := 1 / maxf(ratioThreshold, epsilon)
		progress := (1 - scale) / maxf(1-shrinkTarget, epsilon)
		if progress > r.ActionProgress {
			r.ActionProgress = progress
		}
		if scale < shrinkTarget {
			r.commit(timestamp)
			t.recordLogger(r).Debug("pinch-in action committed")
		}
	}
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
