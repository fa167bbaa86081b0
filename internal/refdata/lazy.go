package refdata

import (
	"fmt"
	"sync/atomic"
)

// Lazy is a value loaded at most once. The first Get starts the load; every
// concurrent or later caller waits on the same completion and observes the
// same value and error.
type Lazy[T any] struct {
	load     func() (T, error)
	inFlight atomic.Bool
	done     chan struct{}

	// written once before done is closed
	val T
	err error
}

// NewLazy wraps load. load is not called until the first Get.
func NewLazy[T any](load func() (T, error)) *Lazy[T] {
	return &Lazy[T]{load: load, done: make(chan struct{})}
}

// Get returns the loaded value, loading it on first use.
func (l *Lazy[T]) Get() (T, error) {
	if l.inFlight.CompareAndSwap(false, true) {
		l.run()
	}
	<-l.done
	return l.val, l.err
}

// run calls load and always releases waiters; a panic becomes the error.
func (l *Lazy[T]) run() {
	defer close(l.done)
	defer func() {
		if r := recover(); r != nil {
			var zero T
			l.val, l.err = zero, fmt.Errorf("refdata: load panicked: %v", r)
		}
	}()
	l.val, l.err = l.load()
}

// Loaded reports whether the load has completed.
func (l *Lazy[T]) Loaded() bool {
	select {
	case <-l.done:
		return true
	default:
		return false
	}
}
