// Package spatial provides angle, distance and collision queries over objects.
//
// World space has Y growing upward. Collision boxes are normalized to the
// object's absolute size and count Y down from the object's top edge.
package spatial

import (
	"math"

	"github.com/younwookim/room/internal/domain/object"
)

// Rect is an axis-aligned rectangle in world space.
type Rect struct {
	Left, Right float64
	Bottom, Top float64
}

// Overlaps reports whether two rectangles share at least one point.
// Touching edges count as overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.Left <= o.Right && o.Left <= r.Right &&
		r.Bottom <= o.Top && o.Bottom <= r.Top
}

// Contains reports whether (x, y) lies inside r, edges included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left && x <= r.Right && y >= r.Bottom && y <= r.Top
}

// Angle returns the angle from (x2, y2) to (x1, y1) in radians with the
// engine's historical convention: atan of the slope when x1 < x2, offset by
// π otherwise. The result is undefined when x1 == x2; use Heading for a
// total function.
func Angle(x1, y1, x2, y2 float64) float64 {
	if x1 < x2 {
		return math.Atan((y1 - y2) / (x1 - x2))
	}
	return math.Atan((y1-y2)/(x1-x2)) + math.Pi
}

// Heading returns atan2(y1-y2, x1-x2), defined everywhere.
func Heading(x1, y1, x2, y2 float64) float64 {
	return math.Atan2(y1-y2, x1-x2)
}

// AngleBetween applies Angle to the positions of two objects.
func AngleBetween(a, b object.Body) float64 {
	ax, ay := a.Position()
	bx, by := b.Position()
	return Angle(ax, ay, bx, by)
}

// Distance is the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Sqrt(DistanceSquared(x1, y1, x2, y2))
}

// DistanceSquared avoids the square root when only comparisons are needed.
func DistanceSquared(x1, y1, x2, y2 float64) float64 {
	dx, dy := x1-x2, y1-y2
	return dx*dx + dy*dy
}

// DistanceBetween is the distance between two object positions.
func DistanceBetween(a, b object.Body) float64 {
	ax, ay := a.Position()
	bx, by := b.Position()
	return Distance(ax, ay, bx, by)
}

// DistanceBetweenSquared is the squared distance between two object positions.
func DistanceBetweenSquared(a, b object.Body) float64 {
	ax, ay := a.Position()
	bx, by := b.Position()
	return DistanceSquared(ax, ay, bx, by)
}

// WorldRect converts a collision box of ob to world space. ok is false for
// invalid boxes.
func WorldRect(ob object.Body, box object.Box) (r Rect, ok bool) {
	if !box.Valid() {
		return Rect{}, false
	}
	x, y := ob.Position()
	w, h := ob.Size()
	w, h = math.Abs(w), math.Abs(h)
	left := x - w/2
	top := y + h/2
	return Rect{
		Left:   left + box.X0*w,
		Right:  left + box.X1*w,
		Top:    top - box.Y0*h,
		Bottom: top - box.Y1*h,
	}, true
}

// radius is the half diagonal of the object's absolute size: every
// collision box lies within it.
func radius(ob object.Body) float64 {
	w, h := ob.Size()
	return math.Hypot(w, h) / 2
}

// CheckCollision reports whether any collision box of a overlaps any
// collision box of b. A bounding-circle test rejects distant pairs first.
// The result is symmetric in a and b.
func CheckCollision(a, b object.Body) bool {
	if DistanceBetween(a, b) > radius(a)+radius(b) {
		return false
	}
	for _, ba := range a.Boxes() {
		ra, ok := WorldRect(a, ba)
		if !ok {
			continue
		}
		for _, bb := range b.Boxes() {
			rb, ok := WorldRect(b, bb)
			if ok && ra.Overlaps(rb) {
				return true
			}
		}
	}
	return false
}

// ObjectAt reports whether (x, y) lies inside any collision box of ob.
func ObjectAt(ob object.Body, x, y float64) bool {
	for _, box := range ob.Boxes() {
		if r, ok := WorldRect(ob, box); ok && r.Contains(x, y) {
			return true
		}
	}
	return false
}
