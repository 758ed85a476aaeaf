package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Solver hooks
	s := NoopSolverHooks{}
	s.OnSolveStart(ctx, 3)
	s.OnMove(ctx, 1, 0, 0, 2)
	s.OnSolveComplete(ctx, 3, 7, time.Millisecond, nil)

	// Cache hooks
	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "solution")
	c.OnCacheMiss(ctx, "solution")
	c.OnCacheSet(ctx, "solution", 1024)

	// HTTP hooks
	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "GET", "/v1/solve/3")
	h.OnResponse(ctx, "GET", "/v1/solve/3", 200, time.Millisecond)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Solver().(NoopSolverHooks); !ok {
		t.Error("Solver() should return NoopSolverHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	customSolver := &testSolverHooks{}
	SetSolverHooks(customSolver)
	if Solver() != customSolver {
		t.Error("SetSolverHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	customHTTP := &testHTTPHooks{}
	SetHTTPHooks(customHTTP)
	if HTTP() != customHTTP {
		t.Error("SetHTTPHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Solver().(NoopSolverHooks); !ok {
		t.Error("Reset() should restore NoopSolverHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testSolverHooks{}
	SetSolverHooks(custom)

	// Setting nil should be ignored
	SetSolverHooks(nil)

	if Solver() != custom {
		t.Error("SetSolverHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testSolverHooks struct{ NoopSolverHooks }
type testCacheHooks struct{ NoopCacheHooks }
type testHTTPHooks struct{ NoopHTTPHooks }
