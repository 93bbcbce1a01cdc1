package convex

// DefaultCapacity is the point capacity used when a caller has no
// better bound. Hulls here are built over small groups of samples, a
// few hundred points at most, and 2048 leaves generous headroom.
const DefaultCapacity = 2048

// A Point is one input sample. Coordinates are stored in single
// precision to keep large point sets compact. Every numerically
// sensitive comparison widens the coordinate differences to float64
// before multiplying (see areaSign), so storage precision bounds
// memory, not the arithmetic.
type Point struct {
	X, Y float32
}

// A FlaggedIndex is one boundary record: an index into a PointSet's
// sample slice, plus a mark set while angle-tied duplicates are being
// squeezed out of the sorted boundary. Records refer to points by
// index so that sorting and compaction shuffle two ints, not
// coordinates.
type FlaggedIndex struct {
	PointIndex int
	Remove     bool
}
