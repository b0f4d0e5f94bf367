// Package leaktest provides goroutine and heap growth checks for tests that
// exercise concurrent readers or bounded caches.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const (
	settleDelay = 10 * time.Millisecond
	drainDelay  = 50 * time.Millisecond
	bytesPerMB  = 1024 * 1024
)

// settle gives exiting goroutines a chance to finish and runs a collection
func settle(delay time.Duration) {
	runtime.Gosched()
	runtime.GC()
	time.Sleep(delay)
}

// GoroutineChecker compares goroutine counts before and after a test body
type GoroutineChecker struct {
	before int
	t      testing.TB
}

// NewGoroutineChecker records the current goroutine count
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	settle(settleDelay)
	return &GoroutineChecker{before: runtime.NumGoroutine(), t: t}
}

// Check fails the test when more than tolerance goroutines outlived the body.
// The count is polled until it drops or the drain window closes.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	deadline := time.Now().Add(4 * drainDelay)
	after := runtime.NumGoroutine()
	for after-g.before > tolerance && time.Now().Before(deadline) {
		settle(settleDelay)
		after = runtime.NumGoroutine()
	}

	if leaked := after - g.before; leaked > tolerance {
		g.t.Errorf("Potential goroutine leak: before=%d, after=%d, leaked=%d (tolerance=%d)",
			g.before, after, leaked, tolerance)
	}
}

// HeapChecker compares live heap bytes before and after a test body
type HeapChecker struct {
	before uint64
	t      testing.TB
}

// NewHeapChecker records the live heap after a collection
func NewHeapChecker(t testing.TB) *HeapChecker {
	t.Helper()
	settle(settleDelay)

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return &HeapChecker{before: m.HeapAlloc, t: t}
}

// Check fails the test when the live heap grew by more than maxGrowthMB
func (h *HeapChecker) Check(maxGrowthMB float64) {
	h.t.Helper()
	settle(drainDelay)

	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	growthMB := (float64(m.HeapAlloc) - float64(h.before)) / bytesPerMB
	if growthMB > maxGrowthMB {
		h.t.Errorf("Potential memory leak: before=%.2fMB, after=%.2fMB, growth=%.2fMB (max=%.2fMB)",
			float64(h.before)/bytesPerMB, float64(m.HeapAlloc)/bytesPerMB, growthMB, maxGrowthMB)
	}
}

// CheckNoGoroutineLeak runs fn and fails if any goroutine it started is still running
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()
	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}

// CheckBoundedHeap runs fn and fails if it retained more than maxGrowthMB of heap.
// Keep references fn needs afterwards outside of it, or they count as growth.
func CheckBoundedHeap(t testing.TB, maxGrowthMB float64, fn func()) {
	t.Helper()
	checker := NewHeapChecker(t)
	fn()
	checker.Check(maxGrowthMB)
}
