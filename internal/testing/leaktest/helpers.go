// Package leaktest checks that code under test does not leave goroutines
// behind, such as worker loops or HTTP transports that were never stopped.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const (
	settleTimeout  = 500 * time.Millisecond
	settleInterval = 10 * time.Millisecond
)

// GoroutineChecker records the goroutine count at creation and compares
// against it in Check.
type GoroutineChecker struct {
	before int
	t      testing.TB
}

func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	runtime.Gosched()
	return &GoroutineChecker{before: runtime.NumGoroutine(), t: t}
}

// Check polls until at most tolerance extra goroutines remain, failing the
// test if that does not happen within the settle timeout.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	deadline := time.Now().Add(settleTimeout)
	after := runtime.NumGoroutine()
	for after-g.before > tolerance && time.Now().Before(deadline) {
		runtime.GC()
		time.Sleep(settleInterval)
		after = runtime.NumGoroutine()
	}

	if leaked := after - g.before; leaked > tolerance {
		g.t.Errorf("goroutine leak: before=%d after=%d leaked=%d tolerance=%d",
			g.before, after, leaked, tolerance)
	}
}

// CheckNoGoroutineLeak runs fn and fails t if any goroutine outlives it.
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()
	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}
