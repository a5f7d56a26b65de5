package gestures

import (
	"sort"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// drainThreshold is the fractional gesture progress above which a record
// is considered complete and eligible for draining. Using ">0.9" rather
// than "==1.0" means "at or past the last whole action increment" without
// requiring exact equality on floating-point accumulation.
const drainThreshold = 0.9

// ProgressRecord is the per-(tracker, gesture) recognition state: how many
// actions have completed, fractional progress toward the current one, the
// timestamp of the last completed action, and the set of contacts the
// current action is tracking.
type ProgressRecord struct {
	Gesture             *Gesture
	CompletedActions    int
	ActionProgress      float64
	LastActionTimestamp int64

	contacts *contactSet
}

func newProgressRecord(g *Gesture) *ProgressRecord {
	return &ProgressRecord{Gesture: g, contacts: newContactSet()}
}

// Reset returns the record to its initial state: no contacts, no
// completed actions, no progress. LastActionTimestamp is left as-is; it
// is only meaningful once at least one action has completed.
func (r *ProgressRecord) Reset() {
	r.contacts.reset()
	r.CompletedActions = 0
	r.ActionProgress = 0
}

// GestureProgress returns the record's overall progress in [0, 1]:
// (completed actions + fractional progress) / total actions.
func (r *ProgressRecord) GestureProgress() float64 {
	n := len(r.Gesture.Actions)
	if n == 0 {
		return 0
	}
	return (float64(r.CompletedActions) + r.ActionProgress) / float64(n)
}

// CurrentAction returns the action this record is working toward, or nil
// if every action has already completed.
func (r *ProgressRecord) CurrentAction() *Action {
	if r.CompletedActions >= len(r.Gesture.Actions) {
		return nil
	}
	return r.Gesture.Actions[r.CompletedActions]
}

func (r *ProgressRecord) commit(timestamp int64) {
	r.CompletedActions++
	r.ActionProgress = 0
	r.LastActionTimestamp = timestamp
}

// Tracker owns one ProgressRecord per gesture defined on its Engine,
// snapshotted at construction time. Per the engine's concurrency model, a
// single Tracker must only be driven by one logical caller; RegisterTouch
// and RegisterMove fan the independent per-record work out internally,
// but that is an implementation detail, not an invitation to call a
// tracker's entry points from multiple goroutines concurrently.
type Tracker struct {
	ID     uuid.UUID
	Engine *Engine
	Logger *logrus.Entry

	records []*ProgressRecord
}

// NewTracker snapshots engine's gesture list and allocates one progress
// record per gesture.
func NewTracker(engine *Engine) *Tracker {
	gestures := engine.Gestures()
	records := make([]*ProgressRecord, len(gestures))
	for i, g := range gestures {
		records[i] = newProgressRecord(g)
	}
	return &Tracker{ID: uuid.New(), Engine: engine, records: records}
}

func (t *Tracker) logger() *logrus.Entry {
	if t.Logger != nil {
		return t.Logger
	}
	return t.Engine.logger()
}

// GestureProgress returns the progress, in [0, 1], of the gesture at
// index (in engine registration order), and whether index was valid.
func (t *Tracker) GestureProgress(index int) (float64, bool) {
	if index < 0 || index >= len(t.records) {
		return 0, false
	}
	return t.records[index].GestureProgress(), true
}

// CurrentAction returns the action the gesture at index is currently
// working toward, or nil if it has already completed every action.
func (t *Tracker) CurrentAction(index int) (*Action, bool) {
	if index < 0 || index >= len(t.records) {
		return nil, false
	}
	return t.records[index].CurrentAction(), true
}

// ActionProgress reports the fractional progress, in [0, 1], toward a
// specific action, looked up by the action's handle, as opposed to
// GestureProgress which folds it into the gesture-wide fraction.
func (t *Tracker) ActionProgress(actionID uuid.UUID) (float64, bool) {
	for _, r := range t.records {
		if a := r.CurrentAction(); a != nil && a.ID == actionID {
			return r.ActionProgress, true
		}
	}
	return 0, false
}

// GestureProgressEntry is one row of a ProgressSnapshot.
type GestureProgressEntry struct {
	Gesture  *Gesture
	Progress float64
}

// ProgressSnapshot returns every tracked gesture's progress, sorted
// descending by progress. It is the Go equivalent of the original
// implementation's libtouch_fill_progress_array, without the caller
// pre-sizing a buffer.
func (t *Tracker) ProgressSnapshot() []GestureProgressEntry {
	out := make([]GestureProgressEntry, len(t.records))
	for i, r := range t.records {
		out[i] = GestureProgressEntry{Gesture: r.Gesture, Progress: r.GestureProgress()}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Progress > out[j].Progress })
	return out
}

// DrainCompleted scans records in engine registration order and, on the
// first one whose progress exceeds drainThreshold, resets it and returns
// its gesture. Callers drain repeatedly to collect every completion from
// a single event; once no record qualifies, DrainCompleted returns
// (nil, false) and is idempotent.
func (t *Tracker) DrainCompleted() (*Gesture, bool) {
	for _, r := range t.records {
		if r.GestureProgress() > drainThreshold {
			g := r.Gesture
			r.Reset()
			t.logger().WithFields(logrus.Fields{
				"gesture": g.ID.String(),
			}).Debug("gesture drained")
			return g, true
		}
	}
	return nil, false
}
