package convex

import "sort"

// Boundary ordering happens in two passes. First the records after the
// pivot are sorted by polar angle around it with a pure comparator, so
// sort.Slice sees a total order with no side effects. Then one linear
// walk over the sorted boundary marks every angle-tied record except
// the one farthest from the pivot for removal. Keeping the marking out
// of the comparator means two records always compare the same way no
// matter which sorting algorithm looks at them, and the survivor of a
// tie group is decided once, between neighbors, instead of depending
// on which pairs the sort happened to visit.

// lessPolar orders two boundary records by angle around origin,
// sweeping counterclockwise from the bottom edge. Angle ties order the
// record nearer the origin first, judged per axis within Epsilon, and
// exact ties fall back to ascending point index so the order is
// deterministic.
func (s *PointSet) lessPolar(origin Point, a, b FlaggedIndex) bool {
	if a.PointIndex == b.PointIndex {
		return false
	}
	pa := s.points[a.PointIndex]
	pb := s.points[b.PointIndex]
	switch areaSign(origin, pa, pb) {
	case 1:
		return true
	case -1:
		return false
	}
	dx := absf(pa.X-origin.X) - absf(pb.X-origin.X)
	dy := absf(pa.Y-origin.Y) - absf(pb.Y-origin.Y)
	switch {
	case dx < -Epsilon || dy < -Epsilon:
		return true
	case dx > Epsilon || dy > Epsilon:
		return false
	default:
		return a.PointIndex < b.PointIndex
	}
}

// sortBoundary swaps the lowest record into position 0 and sorts the
// rest of the boundary by angle around it.
func (s *PointSet) sortBoundary() {
	s.boundary[0], s.boundary[s.lowest] = s.boundary[s.lowest], s.boundary[0]
	s.lowest = 0
	origin := s.points[s.boundary[0].PointIndex]
	rest := s.boundary[1:]
	sort.Slice(rest, func(i, j int) bool {
		return s.lessPolar(origin, rest[i], rest[j])
	})
}

// markRedundant walks the sorted boundary and flags all but one record
// of every angle-tied run. The ladder mirrors lessPolar: the nearer of
// an adjacent pair is dropped, so the farthest record of each run
// survives; a pair at the same displacement keeps the smaller point
// index. Records that duplicate the pivot have a zero displacement,
// sort to the front of their run, and are dropped here like any other
// near record.
func (s *PointSet) markRedundant() {
	origin := s.points[s.boundary[0].PointIndex]
	keep := 1
	for i := 2; i < len(s.boundary); i++ {
		a := &s.boundary[keep]
		b := &s.boundary[i]
		if a.PointIndex == b.PointIndex {
			b.Remove = true
			continue
		}
		pa := s.points[a.PointIndex]
		pb := s.points[b.PointIndex]
		if !collinear(origin, pa, pb) {
			keep = i
			continue
		}
		dx := absf(pa.X-origin.X) - absf(pb.X-origin.X)
		dy := absf(pa.Y-origin.Y) - absf(pb.Y-origin.Y)
		switch {
		case dx < -Epsilon || dy < -Epsilon:
			a.Remove = true
			keep = i
		case dx > Epsilon || dy > Epsilon:
			b.Remove = true
		default:
			if a.PointIndex > b.PointIndex {
				a.Remove = true
				keep = i
			} else {
				b.Remove = true
			}
		}
	}
}

// compactBoundary discards marked records in place, preserving order.
// The pivot at position 0 is never marked, so lowest stays 0.
func (s *PointSet) compactBoundary() {
	kept := s.boundary[:0]
	for _, rec := range s.boundary {
		if !rec.Remove {
			kept = append(kept, rec)
		}
	}
	s.boundary = kept
}
