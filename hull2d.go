// A small convex hull engine for bounded 2D point sets.
//
// This package lets you collect batches of points, reduce each batch to
// its convex hull, and ask whether two hulls overlap. It is built for
// repeated use over small sets: storage is allocated up front, hulls
// are computed in place, and a scratch stack can be shared across many
// computations.
package hull2d

import "github.com/geomlib/hull2d/convex"

type Point = convex.Point
type PointSet = convex.PointSet

// ConvexHull reduces points to their convex hull in one shot and
// returns the outline in counterclockwise order, starting from the
// lowest point. At least three non-collinear points are required.
//
// Callers that build hulls repeatedly should use a PointSet and a
// shared scratch stack directly instead; this helper allocates both
// per call.
func ConvexHull(points []Point) (outline []Point, err error) {
	defer func() {
		recoveredErr := convex.HandleHullPanicRecover(recover())
		if recoveredErr != nil {
			outline = nil
			err = recoveredErr
		}
	}()
	if len(points) < 3 {
		return nil, convex.ErrTooFewPoints
	}
	set := convex.NewPointSet(len(points))
	if err := set.AddPoints(points...); err != nil {
		return nil, err
	}
	if err := set.ComputeHull(convex.NewScanStack(set.Cap())); err != nil {
		return nil, err
	}
	return set.Boundary(), nil
}

// Intersects reports whether the convex hulls of two point sets
// overlap, sharing any area, edge or point. Both hulls must have been
// computed; unlike the methods on PointSet, querying a dirty set here
// returns an error instead of panicking.
func Intersects(a, b *PointSet) (hit bool, err error) {
	defer func() {
		recoveredErr := convex.HandleHullPanicRecover(recover())
		if recoveredErr != nil {
			hit = false
			err = recoveredErr
		}
	}()
	return a.Intersects(b), nil
}
