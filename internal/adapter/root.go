package adapter

import "sync/atomic"

// rootInUse guards the process-wide root console. The console library
// keeps global terminal state, so only one adapter may own it at a time.
var rootInUse atomic.Bool

func acquireRoot() bool {
	return rootInUse.CompareAndSwap(false, true)
}

func releaseRoot() {
	rootInUse.Store(false)
}

// RootInUse reports whether an adapter currently owns the root console.
func RootInUse() bool {
	return rootInUse.Load()
}
