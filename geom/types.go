package geom

import "math"

// Point is an ordered pair of IEEE-754 doubles. No invariants beyond
// finiteness are enforced here; callers at the parsing boundary are
// responsible for rejecting NaN/Inf coordinates.
type Point struct {
	X, Y float64
}

// Box is an axis-aligned bounding rectangle, carried as a (Min, Max) pair.
// A well-formed, non-empty Box satisfies Min.X <= Max.X and Min.Y <= Max.Y.
type Box struct {
	Min, Max Point
}

// EmptyBox returns the sentinel empty box: Min = (+Inf, +Inf),
// Max = (-Inf, -Inf). Extending an empty box with any finite point makes
// that point both the new Min and the new Max, so repeated calls to
// Extend starting from EmptyBox() are idempotent and order-independent.
func EmptyBox() Box {
	return Box{
		Min: Point{X: math.Inf(1), Y: math.Inf(1)},
		Max: Point{X: math.Inf(-1), Y: math.Inf(-1)},
	}
}

// Extend grows b in place so it covers p, taking the componentwise min
// for Min and componentwise max for Max. Starting from EmptyBox(), a
// sequence of Extend calls computes the bounding box of the extended
// points regardless of order.
func (b *Box) Extend(p Point) {
	if p.X < b.Min.X {
		b.Min.X = p.X
	}
	if p.Y < b.Min.Y {
		b.Min.Y = p.Y
	}
	if p.X > b.Max.X {
		b.Max.X = p.X
	}
	if p.Y > b.Max.Y {
		b.Max.Y = p.Y
	}
}

// BoxesOverlap reports whether p and q share at least one point.
// Touching boxes (shared edge or corner) count as overlapping; only
// boxes strictly separated along x or y are rejected.
func BoxesOverlap(p, q Box) bool {
	if p.Min.X > q.Max.X || q.Min.X > p.Max.X {
		return false
	}
	if p.Min.Y > q.Max.Y || q.Min.Y > p.Max.Y {
		return false
	}
	return true
}
