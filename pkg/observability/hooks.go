// Package observability lets a binary attach metrics or tracing to hanoi
// without the libraries importing any backend.
//
// The solver reports each solve and every move, the pipeline reports cache
// hits, misses and writes, and the server reports requests. Each category
// has an interface, a no-op default, and a setter meant to be called once
// from main.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetSolverHooks(&mySolverHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Solver().OnSolveStart(ctx, disks)
//	// ... solve ...
//	observability.Solver().OnSolveComplete(ctx, disks, moves, duration, err)
package observability

import (
	"context"
	"sync/atomic"
	"time"
)

// =============================================================================
// Solver Hooks
// =============================================================================

// SolverHooks receives events from the recursive solver.
type SolverHooks interface {
	OnSolveStart(ctx context.Context, disks int)
	OnMove(ctx context.Context, step, disk, from, to int)
	OnSolveComplete(ctx context.Context, disks, moves int, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from the HTTP server.
type HTTPHooks interface {
	// OnRequest records an incoming HTTP request.
	OnRequest(ctx context.Context, method, path string)

	// OnResponse records a completed HTTP response.
	OnResponse(ctx context.Context, method, path string, statusCode int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopSolverHooks is a no-op implementation of SolverHooks.
type NoopSolverHooks struct{}

func (NoopSolverHooks) OnSolveStart(context.Context, int)                               {}
func (NoopSolverHooks) OnMove(context.Context, int, int, int, int)                      {}
func (NoopSolverHooks) OnSolveComplete(context.Context, int, int, time.Duration, error) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

// =============================================================================
// Registry
// =============================================================================

// slot holds the hooks registered for one event category. Reads are
// lock-free, so the solver can consult it on every move.
type slot[T any] struct {
	noop T
	cur  atomic.Pointer[T]
}

func (s *slot[T]) get() T {
	if h := s.cur.Load(); h != nil {
		return *h
	}
	return s.noop
}

// set installs h; a nil h is ignored.
func (s *slot[T]) set(h T) {
	if any(h) != nil {
		s.cur.Store(&h)
	}
}

var (
	solverSlot = slot[SolverHooks]{noop: NoopSolverHooks{}}
	cacheSlot  = slot[CacheHooks]{noop: NoopCacheHooks{}}
	httpSlot   = slot[HTTPHooks]{noop: NoopHTTPHooks{}}
)

// SetSolverHooks registers solver hooks. Call it at startup, before solving.
func SetSolverHooks(h SolverHooks) { solverSlot.set(h) }

// SetCacheHooks registers cache hooks.
func SetCacheHooks(h CacheHooks) { cacheSlot.set(h) }

// SetHTTPHooks registers HTTP hooks. Call it before serving.
func SetHTTPHooks(h HTTPHooks) { httpSlot.set(h) }

// Solver returns the registered solver hooks.
func Solver() SolverHooks { return solverSlot.get() }

// Cache returns the registered cache hooks.
func Cache() CacheHooks { return cacheSlot.get() }

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks { return httpSlot.get() }

// Reset restores the no-op hooks. Tests use it to undo registrations.
func Reset() {
	solverSlot.cur.Store(nil)
	cacheSlot.cur.Store(nil)
	httpSlot.cur.Store(nil)
}
