package dbg

import (
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
)

// Readable names for values in debug output, like "brave-otter". Shapes are
// plain values, so the names are keyed by value: equal shapes share a name.
// Names are handed out on demand and never forgotten.

const nilName = "Ø"

var (
	memoLock sync.Mutex
	memo     = make(map[interface{}]string)
)

func init() {
	// Names depend on the order of demand anyway, so don't pretend they are
	// stable between runs.
	petname.NonDeterministicMode()
}

// Name a value. The value must be comparable.
func Name(obj interface{}) string {
	if obj == nil {
		return nilName
	}

	memoLock.Lock()
	defer memoLock.Unlock()
	if name, ok := memo[obj]; ok {
		return name
	}
	name := petname.Generate(2, "-")
	memo[obj] = name
	return name
}

// Forget all names handed out so far.
func Reset() {
	memoLock.Lock()
	defer memoLock.Unlock()
	memo = make(map[interface{}]string)
}
