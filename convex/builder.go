package convex

import "github.com/pkg/errors"

// ErrTooFewPoints is returned by ComputeHull when fewer than three
// usable points remain, either because the set itself is too small or
// because collinear duplicates collapsed the boundary below a
// triangle.
var ErrTooFewPoints = errors.New("fewer than 3 usable points")

// ComputeHull shrinks the boundary down to the convex hull outline,
// counterclockwise from the lowest point. It needs a scratch stack at
// least as large as the set's point capacity; the stack is cleared on
// entry and left empty on return, so one stack can serve many sets in
// turn.
//
// On a set that is already current this is a no-op. On failure the
// set stays dirty: the boundary holds the sorted, deduplicated
// remainder, and the caller can add more points and try again, or
// Reset. Handing in a nil or undersized stack panics.
func (s *PointSet) ComputeHull(scratch *Stack[FlaggedIndex]) error {
	if !s.dirty {
		return nil
	}
	if scratch == nil {
		fatalf("hull computation needs a scratch stack")
	}
	if scratch.Cap() < s.Cap() {
		fatalf("scratch stack capacity %d cannot cover point capacity %d",
			scratch.Cap(), s.Cap())
	}
	if len(s.boundary) < 3 {
		return ErrTooFewPoints
	}

	s.sortBoundary()
	s.markRedundant()
	s.compactBoundary()
	if len(s.boundary) < 3 {
		return errors.Wrap(ErrTooFewPoints, "input is collinear")
	}

	s.scan(scratch)
	s.unloadScan(scratch)
	s.dirty = false
	return nil
}

// scan walks the sorted boundary with the classic stack discipline:
// a candidate that sits strictly left of the line through the top two
// records extends the hull and is pushed; otherwise the top record is
// popped as interior and the candidate is retried. When pops leave
// fewer than two records, the candidate is pushed outright. The first
// two records are seeded unevaluated; the closing edge back to the
// pivot needs no pass of its own because every survivor was already
// checked against the pivot by the polar sort.
func (s *PointSet) scan(scratch *Stack[FlaggedIndex]) {
	scratch.Clear()
	s.mustPush(scratch, s.boundary[0])
	s.mustPush(scratch, s.boundary[1])
	for i := 2; i < len(s.boundary); {
		candidate := s.boundary[i]
		if scratch.Len() < 2 {
			s.mustPush(scratch, candidate)
			i++
			continue
		}
		below, _ := scratch.Peek(1)
		top, _ := scratch.Peek(0)
		if left(s.points[below.PointIndex], s.points[top.PointIndex], s.points[candidate.PointIndex]) {
			s.mustPush(scratch, candidate)
			i++
		} else {
			scratch.Pop()
		}
	}
}

// unloadScan copies the stack back into the boundary, bottom record
// first. The scan pushes a subset of the boundary it read, so the
// result always fits.
func (s *PointSet) unloadScan(scratch *Stack[FlaggedIndex]) {
	n := scratch.Len()
	s.boundary = s.boundary[:n]
	for i := n - 1; i >= 0; i-- {
		rec, ok := scratch.Pop()
		if !ok {
			fatalf("scan stack drained early: %d records missing", i+1)
		}
		s.boundary[i] = rec
	}
}

func (s *PointSet) mustPush(scratch *Stack[FlaggedIndex], rec FlaggedIndex) {
	if err := scratch.Push(rec); err != nil {
		fatalf("scan stack overflowed at %d records", scratch.Len())
	}
}
