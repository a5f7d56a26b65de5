package gestures

import "testing"

func buildOneFingerTapEngine(t *testing.T) (*Engine, *Gesture) {
	t.Helper()
	engine := NewEngine()
	gesture := engine.CreateGesture()
	down := gesture.AddTouch(TouchDown)
	if err := down.SetThreshold(1); err != nil {
		t.Fatalf("SetThreshold: %v", err)
	}
	return engine, gesture
}

func TestTracker_ProgressRecordsOneToOneWithGestures(t *testing.T) {
	engine := NewEngine()
	engine.CreateGesture()
	engine.CreateGesture()
	tracker := NewTracker(engine)
	if len(tracker.records) != 2 {
		t.Fatalf("len(records) = %d, want 2", len(tracker.records))
	}
	for i, r := range tracker.records {
		if r.CompletedActions != 0 || r.ActionProgress != 0 {
			t.Errorf("record %d not zeroed at construction", i)
		}
	}
}

func TestTracker_DrainCompleted_IsIdempotent(t *testing.T) {
	engine, _ := buildOneFingerTapEngine(t)
	tracker := NewTracker(engine)

	if err := tracker.RegisterTouch(0, 0, TouchDown, 10, 10); err != nil {
		t.Fatalf("RegisterTouch: %v", err)
	}

	g, ok := tracker.DrainCompleted()
	if !ok || g == nil {
		t.Fatal("expected a completed gesture to drain")
	}
	if _, ok := tracker.DrainCompleted(); ok {
		t.Error("DrainCompleted should return false once nothing qualifies")
	}
	if _, ok := tracker.DrainCompleted(); ok {
		t.Error("DrainCompleted must stay idempotent across repeated calls")
	}
}

func TestTracker_DrainResetsTheRecord(t *testing.T) {
	engine, _ := buildOneFingerTapEngine(t)
	tracker := NewTracker(engine)
	_ = tracker.RegisterTouch(0, 0, TouchDown, 10, 10)
	tracker.DrainCompleted()

	progress, ok := tracker.GestureProgress(0)
	if !ok {
		t.Fatal("GestureProgress(0) reported an invalid index")
	}
	if progress != 0 {
		t.Errorf("progress after drain = %v, want 0", progress)
	}
}

func TestTracker_ProgressSnapshotSortedDescending(t *testing.T) {
	engine := NewEngine()
	a := engine.CreateGesture()
	_ = a.AddTouch(TouchDown).SetThreshold(2)
	b := engine.CreateGesture()
	_ = b.AddTouch(TouchDown).SetThreshold(1)

	tracker := NewTracker(engine)
	_ = tracker.RegisterTouch(0, 0, TouchDown, 1, 1)

	snapshot := tracker.ProgressSnapshot()
	if len(snapshot) != 2 {
		t.Fatalf("len(snapshot) = %d, want 2", len(snapshot))
	}
	if snapshot[0].Progress < snapshot[1].Progress {
		t.Errorf("snapshot not sorted descending: %+v", snapshot)
	}
}
