package convex

import "github.com/pkg/errors"

// ErrCapacity is returned by Add and AddPoints when appending would
// exceed the set's point capacity. The check happens before anything
// is written, so a failed append leaves the set untouched.
var ErrCapacity = errors.New("point capacity exceeded")

// A PointSet accumulates samples and computes their convex hull in
// place. The boundary starts as a mirror of the sample list, one
// record per point in insertion order, and ComputeHull sorts and
// shrinks it down to the hull outline. Appending a point marks the
// set dirty again; the outline accessors refuse to serve a dirty set.
//
// A PointSet is not safe for concurrent use.
type PointSet struct {
	points   []Point
	boundary []FlaggedIndex

	// lowest is the position in boundary of the record whose point has
	// the minimum y coordinate, ties broken toward maximum x. It is
	// maintained incrementally on every append so that ComputeHull can
	// pick its pivot without another scan. Only meaningful while the
	// boundary is nonempty.
	lowest int

	dirty bool
}

// NewPointSet creates an empty set that can hold up to capacity
// points. Most callers pass DefaultCapacity.
func NewPointSet(capacity int) *PointSet {
	if capacity < 1 {
		fatalf("point set capacity must be positive, got %d", capacity)
	}
	return &PointSet{
		points:   make([]Point, 0, capacity),
		boundary: make([]FlaggedIndex, 0, capacity),
		dirty:    true,
	}
}

// Reset empties the set for reuse. Storage is retained.
func (s *PointSet) Reset() {
	s.points = s.points[:0]
	s.boundary = s.boundary[:0]
	s.lowest = 0
	s.dirty = true
}

// Add appends one sample, or returns ErrCapacity if the set is full.
func (s *PointSet) Add(p Point) error {
	if len(s.points) == cap(s.points) {
		return ErrCapacity
	}
	s.append(p)
	s.dirty = true
	return nil
}

// AddPoints appends a batch of samples. If the batch does not fit, it
// returns ErrCapacity and appends none of it.
func (s *PointSet) AddPoints(points ...Point) error {
	if len(s.points)+len(points) > cap(s.points) {
		return ErrCapacity
	}
	if len(points) == 0 {
		return nil
	}
	for _, p := range points {
		s.append(p)
	}
	s.dirty = true
	return nil
}

// append adds the point, mirrors it into the boundary, and keeps the
// lowest-point cursor current. A new point takes over as lowest when
// its y is strictly smaller, or when y ties within Epsilon and its x
// is larger. The tie rule means the hull origin is always the
// rightmost of the bottom points, which makes the first sweep of the
// polar sort start against the hull's bottom edge.
func (s *PointSet) append(p Point) {
	s.points = append(s.points, p)
	s.boundary = append(s.boundary, FlaggedIndex{PointIndex: len(s.points) - 1})
	if len(s.boundary) == 1 {
		s.lowest = 0
		return
	}
	low := s.points[s.boundary[s.lowest].PointIndex]
	if p.Y < low.Y || (equalf(p.Y, low.Y) && p.X > low.X) {
		s.lowest = len(s.boundary) - 1
	}
}

// Len returns the number of samples in the set.
func (s *PointSet) Len() int {
	return len(s.points)
}

// Cap returns the fixed point capacity.
func (s *PointSet) Cap() int {
	return cap(s.points)
}

// Dirty reports whether the boundary is out of date. A fresh or Reset
// set is dirty, every append makes the set dirty, and only a
// successful ComputeHull clears it.
func (s *PointSet) Dirty() bool {
	return s.dirty
}

// Points returns every sample in insertion order. The slice is a view
// into the set's storage: it stays valid until the next Add, AddPoints
// or Reset, and the caller must not modify it.
func (s *PointSet) Points() []Point {
	return s.points
}

// Boundary returns the hull outline as points in counterclockwise
// order, starting at the lowest point. The hull must be current;
// asking a dirty set for its boundary is a bug in the caller and
// panics.
func (s *PointSet) Boundary() []Point {
	if s.dirty {
		fatalf("boundary requested from a dirty point set; call ComputeHull first")
	}
	outline := make([]Point, len(s.boundary))
	for i := range s.boundary {
		outline[i] = s.boundaryPoint(i)
	}
	return outline
}

// BoundaryLen returns the number of boundary records without
// resolving them to points.
func (s *PointSet) BoundaryLen() int {
	return len(s.boundary)
}

func (s *PointSet) boundaryPoint(i int) Point {
	return s.points[s.boundary[i].PointIndex]
}
