package gestures

import "testing"

// Scenario 1: two-finger tap.
func TestScenario_TwoFingerTap(t *testing.T) {
	engine := NewEngine()
	gesture := engine.CreateGesture()
	down := gesture.AddTouch(TouchDown)
	_ = down.SetThreshold(2)
	up := gesture.AddTouch(TouchUp)
	_ = up.SetThreshold(2)
	_ = up.SetDuration(500)

	tracker := NewTracker(engine)
	must(t, tracker.RegisterTouch(0, 0, TouchDown, 10, 10))
	must(t, tracker.RegisterTouch(5, 1, TouchDown, 12, 11))
	must(t, tracker.RegisterTouch(100, 0, TouchUp, 10, 10))
	must(t, tracker.RegisterTouch(110, 1, TouchUp, 12, 11))

	g, ok := tracker.DrainCompleted()
	if !ok || g != gesture {
		t.Fatal("expected the two-finger tap to drain")
	}
}

// Scenario 2: left-edge swipe, one finger.
func TestScenario_LeftEdgeSwipe(t *testing.T) {
	engine := NewEngine()
	left := engine.CreateTarget(0, 0, 5, 100)
	gesture := engine.CreateGesture()
	down := gesture.AddTouch(TouchDown)
	_ = down.SetTarget(left)
	_ = down.SetThreshold(1)
	move := gesture.AddMove(DirPosX)
	_ = move.SetThreshold(50)
	_ = move.SetMoveTolerance(10)

	tracker := NewTracker(engine)
	must(t, tracker.RegisterTouch(0, 0, TouchDown, 1, 50))
	must(t, tracker.RegisterMove(1, 0, 5, 0))
	must(t, tracker.RegisterMove(2, 0, 20, 0))
	must(t, tracker.RegisterMove(3, 0, 30, 0))

	g, ok := tracker.DrainCompleted()
	if !ok || g != gesture {
		t.Fatal("expected the left-edge swipe to complete")
	}
}

// Scenario 3: off-axis rejection of the same gesture as scenario 2.
func TestScenario_OffAxisRejection(t *testing.T) {
	engine := NewEngine()
	left := engine.CreateTarget(0, 0, 5, 100)
	gesture := engine.CreateGesture()
	down := gesture.AddTouch(TouchDown)
	_ = down.SetTarget(left)
	_ = down.SetThreshold(1)
	move := gesture.AddMove(DirPosX)
	_ = move.SetThreshold(50)
	_ = move.SetMoveTolerance(10)

	tracker := NewTracker(engine)
	must(t, tracker.RegisterTouch(0, 0, TouchDown, 1, 50))
	must(t, tracker.RegisterMove(1, 0, 10, 0))
	must(t, tracker.RegisterMove(2, 0, 0, 20))

	progress, _ := tracker.GestureProgress(0)
	if progress != 0 {
		t.Errorf("progress after off-axis rejection = %v, want 0 (record reset)", progress)
	}
	if _, ok := tracker.DrainCompleted(); ok {
		t.Error("gesture should not complete after off-axis rejection")
	}
}

// Scenario 4: pinch out.
func TestScenario_PinchOut(t *testing.T) {
	engine := NewEngine()
	gesture := engine.CreateGesture()
	down := gesture.AddTouch(TouchDown)
	_ = down.SetThreshold(2)
	pinch := gesture.AddPinch(PinchOut)
	_ = pinch.SetThreshold(150)
	_ = pinch.SetMoveTolerance(5)

	tracker := NewTracker(engine)
	must(t, tracker.RegisterTouch(0, 0, TouchDown, 40, 50))
	must(t, tracker.RegisterTouch(1, 1, TouchDown, 60, 50))
	must(t, tracker.RegisterMove(2, 0, -10, 0)) // (40,50) -> (30,50)
	must(t, tracker.RegisterMove(3, 1, 10, 0))  // (60,50) -> (70,50)

	g, ok := tracker.DrainCompleted()
	if !ok || g != gesture {
		t.Fatal("expected the pinch-out gesture to complete")
	}
}

// Scenario 5: timeout abandonment.
func TestScenario_TimeoutAbandonment(t *testing.T) {
	engine := NewEngine()
	gesture := engine.CreateGesture()
	down := gesture.AddTouch(TouchDown)
	_ = down.SetThreshold(1)
	_ = down.SetDuration(100)
	up := gesture.AddTouch(TouchUp)
	_ = up.SetThreshold(1)
	_ = up.SetDuration(100)

	tracker := NewTracker(engine)
	must(t, tracker.RegisterTouch(0, 0, TouchDown, 0, 0))
	must(t, tracker.RegisterTouch(500, 0, TouchUp, 0, 0))

	if _, ok := tracker.DrainCompleted(); ok {
		t.Error("gesture should have timed out and not completed")
	}
}

// Scenario 6: rotate with translation rejected.
func TestScenario_RotateWithTranslationRejected(t *testing.T) {
	engine := NewEngine()
	gesture := engine.CreateGesture()
	down := gesture.AddTouch(TouchDown)
	_ = down.SetThreshold(2)
	rotate := gesture.AddRotate(RotateAnticlockwise)
	_ = rotate.SetThreshold(30)
	_ = rotate.SetMoveTolerance(5)

	tracker := NewTracker(engine)
	must(t, tracker.RegisterTouch(0, 0, TouchDown, 10, 0))
	must(t, tracker.RegisterTouch(1, 1, TouchDown, -10, 0))
	// Rotate 90 degrees anticlockwise around the origin AND translate the
	// centroid by (10, 10): (10,0)->(0,10)+10 offset, (-10,0)->(0,-10)+10 offset.
	must(t, tracker.RegisterMove(2, 0, -10+10, 10+10))
	must(t, tracker.RegisterMove(3, 1, 10+10, -10+10))

	if _, ok := tracker.DrainCompleted(); ok {
		t.Error("gesture should not complete when the centroid translates beyond tolerance")
	}
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
