package convex

import "math"

// SegmentsIntersect checks whether the closed segments a0a1 and b0b1
// share a point. It solves the two parametric line equations; when the
// denominator vanishes within Epsilon the segments are parallel and
// reported as non-intersecting, even if they overlap along a line.
// Collinear overlap never decides a hull query on its own: some other
// edge pair crosses properly, or the containment fallback answers.
func SegmentsIntersect(a0, a1, b0, b1 Point) bool {
	denom := float64(a0.X)*float64(b1.Y-b0.Y) +
		float64(a1.X)*float64(b0.Y-b1.Y) +
		float64(b1.X)*float64(a1.Y-a0.Y) +
		float64(b0.X)*float64(a0.Y-a1.Y)
	if math.Abs(denom) < Epsilon {
		return false
	}

	sNum := float64(a0.X)*float64(b1.Y-b0.Y) +
		float64(b0.X)*float64(a0.Y-b1.Y) +
		float64(b1.X)*float64(b0.Y-a0.Y)
	tNum := -(float64(a0.X)*float64(b0.Y-a1.Y) +
		float64(a1.X)*float64(a0.Y-b0.Y) +
		float64(b0.X)*float64(a1.Y-a0.Y))

	sp := sNum / denom
	tp := tNum / denom
	return 0 <= sp && sp <= 1 && 0 <= tp && tp <= 1
}

// Contains checks whether p lies inside or on the computed hull. The
// outline runs counterclockwise, so containment means p is left of or
// on every edge. Querying a dirty set panics.
func (s *PointSet) Contains(p Point) bool {
	if s.dirty {
		fatalf("containment query on a dirty point set; call ComputeHull first")
	}
	n := len(s.boundary)
	for i := 0; i < n; i++ {
		if !leftOn(s.boundaryPoint(i), s.boundaryPoint((i+1)%n), p) {
			return false
		}
	}
	return true
}

// Intersects checks whether two computed hulls overlap. Both hulls
// must be current; querying while either is dirty panics.
//
// The edge walk advances a cursor around each hull. At every step the
// current edge pair is tested for a crossing, then the lagging cursor
// moves on: the sign of the cross product between the two edge
// directions, plus which hull's edge head lies strictly left of the
// other's edge, identify the cursor that cannot be part of a crossing
// yet. The walk ends when either cursor has gone a full lap. If no
// edges cross, the hulls either nest or are disjoint, and one vertex
// containment probe in each direction settles which.
func (s *PointSet) Intersects(other *PointSet) bool {
	if s.dirty || other.dirty {
		fatalf("intersection query on a dirty point set; call ComputeHull first")
	}

	na := len(s.boundary)
	nb := len(other.boundary)
	ia, ib := 0, 0
	for {
		a0 := s.boundaryPoint(ia % na)
		a1 := s.boundaryPoint((ia + 1) % na)
		b0 := other.boundaryPoint(ib % nb)
		b1 := other.boundaryPoint((ib + 1) % nb)

		if SegmentsIntersect(a0, a1, b0, b1) {
			return true
		}

		cross := float64(a1.X-a0.X)*float64(b1.Y-b0.Y) -
			float64(a1.Y-a0.Y)*float64(b1.X-b0.X)
		aHeadLeft := left(b0, b1, a1)
		bHeadLeft := left(a0, a1, b1)
		if cross < -Epsilon {
			if aHeadLeft {
				ib++
			} else {
				ia++
			}
		} else {
			if bHeadLeft {
				ia++
			} else {
				ib++
			}
		}
		if ia >= na || ib >= nb {
			break
		}
	}

	if other.Contains(s.boundaryPoint(0)) {
		return true
	}
	return s.Contains(other.boundaryPoint(0))
}
