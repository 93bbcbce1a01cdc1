package dbg

import (
	"reflect"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
)

// Debug output full of raw pointer strings is nearly impossible to
// eyeball. Name hands every distinct object a short readable name
// instead, memoized for the life of the process, so the same hull
// stays recognizable across a long trace. The memo leaks by intent;
// names are only generated on demand, so it costs nothing unless
// debugging output is actually being printed.

var (
	memoMu sync.Mutex
	memo   map[interface{}]string
)

func init() {
	memo = make(map[interface{}]string)
	// Since the names are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't
	// refer to the same thing between runs.
	petname.NonDeterministicMode()
}

// Name returns the memoized readable name for obj, or Ø for nil.
func Name(obj interface{}) string {
	if obj == nil || reflect.ValueOf(obj).IsNil() {
		return "Ø"
	}

	memoMu.Lock()
	defer memoMu.Unlock()
	if r, ok := memo[obj]; ok {
		return r
	}
	r := strings.Title(petname.Adjective()) + strings.Title(petname.Name())
	memo[obj] = r
	return r
}
