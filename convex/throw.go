package convex

import "github.com/pkg/errors"

// Misuse of the engine, like querying a hull that was never computed or
// handing ComputeHull an undersized scratch stack, is a bug in the
// caller rather than a runtime condition. Threading error returns for
// those through every geometric helper would bury the algorithms, so
// they panic instead, and the public API recovers to convert to an
// error.

type HullError error

// Panic with a HullError.
func fatalf(format string, args ...interface{}) {
	panic(errors.Errorf(format, args...))
}

func HandleHullPanicRecover(r interface{}) error {
	if r != nil {
		if hullError, ok := r.(HullError); ok {
			return hullError
		}
		panic(r)
	}
	return nil
}
