package refdata

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestLazyLoadsOnceUnderConcurrency(t *testing.T) {
	var calls atomic.Int32
	gate := make(chan struct{})
	l := NewLazy(func() (int, error) {
		calls.Add(1)
		<-gate
		return 42, nil
	})

	const workers = 64
	var wg sync.WaitGroup
	results := make([]int, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := l.Get()
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			results[i] = v
		}(i)
	}
	close(gate)
	wg.Wait()

	if got := calls.Load(); got != 1 {
		t.Fatalf("load called %d times, want 1", got)
	}
	for i, v := range results {
		if v != 42 {
			t.Fatalf("worker %d got %d", i, v)
		}
	}
	if !l.Loaded() {
		t.Fatalf("expected Loaded after Get")
	}
}

func TestLazyErrorIsShared(t *testing.T) {
	boom := errors.New("boom")
	var calls int
	l := NewLazy(func() (string, error) {
		calls++
		return "", boom
	})

	if l.Loaded() {
		t.Fatalf("expected not loaded before Get")
	}
	for i := 0; i < 3; i++ {
		if _, err := l.Get(); !errors.Is(err, boom) {
			t.Fatalf("call %d: expected boom, got %v", i, err)
		}
	}
	if calls != 1 {
		t.Fatalf("load called %d times, want 1", calls)
	}
}

func TestLazyPanicBecomesError(t *testing.T) {
	l := NewLazy(func() (int, error) {
		panic("corrupt table")
	})

	if _, err := l.Get(); err == nil {
		t.Fatalf("expected error from panicking load")
	}

	done := make(chan error, 1)
	go func() {
		_, err := l.Get()
		done <- err
	}()
	select {
	case err := <-done:
		if err == nil {
			t.Fatalf("expected the same error on the second Get")
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("second Get blocked after a panicking load")
	}
	if !l.Loaded() {
		t.Fatalf("expected Loaded after a panicking load")
	}
}
