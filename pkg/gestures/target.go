package gestures

import "github.com/google/uuid"

// Target is an axis-aligned rectangular region in caller-defined
// coordinates, owned by the Engine that created it. Targets are immutable
// after creation.
type Target struct {
	ID uuid.UUID

	X float64
	Y float64
	W float64
	H float64
}

// newTarget constructs a target. Width and height are expected to be
// non-negative; the engine trusts the caller for this invariant rather
// than validating it, matching the builder API's fail-free contract.
func newTarget(x, y, w, h float64) *Target {
	return &Target{ID: uuid.New(), X: x, Y: y, W: w, H: h}
}

// Contains reports whether (x, y) falls within the target, with all four
// edges included: x <= px <= x+w and y <= py <= y+h.
func (t *Target) Contains(x, y float64) bool {
	return x >= t.X && x <= t.X+t.W && y >= t.Y && y <= t.Y+t.H
}

// ContainsPoint is a convenience wrapper around Contains for a Point.
func (t *Target) ContainsPoint(p Point) bool {
	return t.Contains(p.X, p.Y)
}
