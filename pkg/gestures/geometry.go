package gestures

import "math"

// Point is a 2D coordinate in caller-defined units (typically normalized
// 0..100 "percent of screen" for portability, but the engine never
// interprets units itself).
type Point struct {
	X float64
	Y float64
}

// Direction is a bitmask over the axes a Move action may travel along.
// A mask with both bits of an axis set permits either sign on that axis;
// a mask with neither bit set on an axis requires the contact group stay
// stationary on that axis.
type Direction uint8

const (
	DirPosX Direction = 1 << iota
	DirNegX
	DirPosY
	DirNegY
)

// RotateDir is a bitmask over the senses a Rotate action may turn in.
type RotateDir uint8

const (
	RotateClockwise RotateDir = 1 << iota
	RotateAnticlockwise
)

// PinchDir is a bitmask over the senses a Pinch action may scale in.
type PinchDir uint8

const (
	PinchIn PinchDir = 1 << iota
	PinchOut
)

// centroidFrame holds the mean start and current position over a set of
// contacts. DragDistance, DirectionDragged, and IncorrectDragDistance all
// operate on a single start/current pair, whether that pair belongs to one
// contact or to the centroid of several.
type centroidFrame struct {
	Start   Point
	Current Point
}

// Centroid returns the arithmetic mean of start and current coordinates
// over contacts. Centroid of an empty set is the zero value; callers must
// guard on len(contacts) == 0 themselves, same as the rest of the kernel.
func Centroid(contacts []*Contact) centroidFrame {
	var c centroidFrame
	if len(contacts) == 0 {
		return c
	}
	n := float64(len(contacts))
	for _, p := range contacts {
		c.Start.X += p.Start.X
		c.Start.Y += p.Start.Y
		c.Current.X += p.Current.X
		c.Current.Y += p.Current.Y
	}
	c.Start.X /= n
	c.Start.Y /= n
	c.Current.X /= n
	c.Current.Y /= n
	return c
}

// DragDistance returns the straight-line distance between start and
// current.
func DragDistance(start, current Point) float64 {
	dx := current.X - start.X
	dy := current.Y - start.Y
	return math.Hypot(dx, dy)
}

// DirectionDragged returns a bitmask of the axes current has moved away
// from start along; neither bit of an axis is set when the coordinate on
// that axis is unchanged.
func DirectionDragged(start, current Point) Direction {
	var d Direction
	switch {
	case current.X > start.X:
		d |= DirPosX
	case current.X < start.X:
		d |= DirNegX
	}
	switch {
	case current.Y > start.Y:
		d |= DirPosY
	case current.Y < start.Y:
		d |= DirNegY
	}
	return d
}

// IncorrectDragDistance accumulates the squared off-axis displacement that
// violates mask, then returns its square root. A mask with both bits set
// on an axis permits either sign on that axis (no contribution); a mask
// with neither bit set on an axis requires the group stay put on that axis
// (any displacement contributes); a mask with exactly one bit set on an
// axis permits only that sign (movement the other way contributes).
func IncorrectDragDistance(start, current Point, mask Direction) float64 {
	var sumSq float64

	dx := current.X - start.X
	hasPosX := mask&DirPosX != 0
	hasNegX := mask&DirNegX != 0
	switch {
	case hasPosX && hasNegX:
		// either sign permitted on X
	case hasPosX:
		if dx < 0 {
			sumSq += dx * dx
		}
	case hasNegX:
		if dx > 0 {
			sumSq += dx * dx
		}
	default:
		sumSq += dx * dx
	}

	dy := current.Y - start.Y
	hasPosY := mask&DirPosY != 0
	hasNegY := mask&DirNegY != 0
	switch {
	case hasPosY && hasNegY:
		// either sign permitted on Y
	case hasPosY:
		if dy < 0 {
			sumSq += dy * dy
		}
	case hasNegY:
		if dy > 0 {
			sumSq += dy * dy
		}
	default:
		sumSq += dy * dy
	}

	return math.Sqrt(sumSq)
}

// PinchScale returns the ratio of the mean current distance from the
// centroid to the mean start distance from the centroid. ok is false when
// the start-radius mean is (numerically) zero, in which case the scale is
// undefined and callers must treat the event as "no scale progress" rather
// than resetting, per the engine's numerical edge case handling.
func PinchScale(contacts []*Contact) (scale float64, ok bool) {
	if len(contacts) == 0 {
		return 0, false
	}
	c := Centroid(contacts)
	var startSum, curSum float64
	for _, p := range contacts {
		startSum += DragDistance(c.Start, p.Start)
		curSum += DragDistance(c.Current, p.Current)
	}
	n := float64(len(contacts))
	startMean := startSum / n
	if startMean <= epsilon {
		return 0, false
	}
	return (curSum / n) / startMean, true
}

// RotateAngle returns the mean, in degrees, of each contact's change in
// angle relative to the centroid between the start and current frames.
// Each contact's change is wrapped into (-180, 180] before averaging, so a
// contact crossing the ±180 seam of atan2 is not counted as turning the
// long way round. Positive values indicate anticlockwise rotation
// (standard atan2 convention); negative values indicate clockwise rotation.
func RotateAngle(contacts []*Contact) float64 {
	if len(contacts) == 0 {
		return 0
	}
	c := Centroid(contacts)
	n := float64(len(contacts))
	var sum float64
	for _, p := range contacts {
		start := math.Atan2(p.Start.Y-c.Start.Y, p.Start.X-c.Start.X)
		cur := math.Atan2(p.Current.Y-c.Current.Y, p.Current.X-c.Current.X)
		d := cur - start
		if d > math.Pi {
			d -= 2 * math.Pi
		} else if d <= -math.Pi {
			d += 2 * math.Pi
		}
		sum += d
	}
	delta := sum / n
	return delta * 180 / math.Pi
}

// epsilon is the tolerance used for floating-point comparisons against
// zero in the geometry kernel (e.g. PinchScale's start-radius guard).
const epsilon = 1e-6
