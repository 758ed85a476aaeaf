package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/hanoi/pkg/cache"
	"github.com/matzehuels/hanoi/pkg/errors"
	"github.com/matzehuels/hanoi/pkg/hanoi"
	hio "github.com/matzehuels/hanoi/pkg/io"
	"github.com/matzehuels/hanoi/pkg/observability"
	"github.com/matzehuels/hanoi/pkg/render"
)

// Runner records solutions and renders boards with caching.
//
// Runner holds no per-request state; it is safe to share between goroutines
// as long as its Cache is.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
	TTL    time.Duration
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
		TTL:    DefaultTTL,
	}
}

// SolveWithCacheInfo returns the transcript for opts.Disks and whether it
// came from the cache. A miss records a fresh solve and stores it.
func (r *Runner) SolveWithCacheInfo(ctx context.Context, opts Options) (*hio.Transcript, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}
	key := r.Keyer.SolutionKey(opts.Disks)

	if !opts.Refresh {
		if data, hit := r.get(ctx, key, KeyTypeSolution); hit {
			t, err := cachedTranscript(data, opts.Disks)
			if err == nil {
				return t, true, nil
			}
			r.Logger.Warn("discarding corrupt cache entry", "disks", opts.Disks, "err", err)
		}
	}

	start := time.Now()
	moves, b, err := hanoi.Record(ctx, opts.Disks)
	if err != nil {
		return nil, false, err
	}
	t := hio.NewTranscript(opts.Disks, moves, b)
	r.Logger.Debug("recorded solution", "disks", opts.Disks, "moves", len(moves), "duration", time.Since(start))

	var buf bytes.Buffer
	if err := hio.WriteJSON(t, &buf); err == nil {
		r.set(ctx, key, KeyTypeSolution, buf.Bytes())
	}
	return t, false, nil
}

// cachedTranscript decodes a stored transcript and accepts it only if it is
// the complete solution for n disks: the right move count, every move legal,
// and a solved final board.
func cachedTranscript(data []byte, n int) (*hio.Transcript, error) {
	t, err := hio.ReadJSON(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if t.Disks != n {
		return nil, fmt.Errorf("entry holds %d disks", t.Disks)
	}
	if want := TotalMoves(n); len(t.Moves) != want {
		return nil, fmt.Errorf("entry holds %d moves, want %d", len(t.Moves), want)
	}
	b, err := hio.Replay(t)
	if err != nil {
		return nil, err
	}
	if !b.Solved() {
		return nil, fmt.Errorf("entry does not end solved")
	}
	return t, nil
}

// Solve is SolveWithCacheInfo without the cache hit info.
func (r *Runner) Solve(ctx context.Context, opts Options) (*hio.Transcript, error) {
	t, _, err := r.SolveWithCacheInfo(ctx, opts)
	return t, err
}

// BoardWithCacheInfo renders the board after opts.Step moves of the solution
// and reports whether the rendering came from the cache.
func (r *Runner) BoardWithCacheInfo(ctx context.Context, opts Options) (string, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return "", false, err
	}
	key := r.Keyer.BoardKey(opts.Disks, opts.Step, opts.Glyphs())

	if !opts.Refresh {
		if data, hit := r.get(ctx, key, KeyTypeBoard); hit {
			return string(data), true, nil
		}
	}

	b, err := r.BoardAt(ctx, opts)
	if err != nil {
		return "", false, err
	}
	grid := render.Text(b, opts.RenderOptions()...)
	r.set(ctx, key, KeyTypeBoard, []byte(grid))
	return grid, false, nil
}

// BoardAt returns a board with the first opts.Step solution moves applied.
func (r *Runner) BoardAt(ctx context.Context, opts Options) (*hanoi.Board, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	t, _, err := r.SolveWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, err
	}
	if opts.Step > len(t.Moves) {
		return nil, errors.New(errors.ErrCodeInternal, "solution for %d disks has %d moves, need %d", opts.Disks, len(t.Moves), opts.Step)
	}
	b := hanoi.New(opts.Disks)
	for _, m := range t.Moves[:opts.Step] {
		if err := b.Move(m.From, m.To); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (r *Runner) get(ctx context.Context, key, keyType string) ([]byte, bool) {
	var (
		data []byte
		hit  bool
	)
	err := cache.RetryWithBackoff(ctx, func() error {
		var err error
		data, hit, err = r.Cache.Get(ctx, key)
		return err
	})
	if err != nil {
		r.Logger.Warn("cache read failed", "type", keyType, "err", err)
		return nil, false
	}
	if hit {
		observability.Cache().OnCacheHit(ctx, keyType)
	} else {
		observability.Cache().OnCacheMiss(ctx, keyType)
	}
	return data, hit
}

func (r *Runner) set(ctx context.Context, key, keyType string, data []byte) {
	err := cache.RetryWithBackoff(ctx, func() error {
		return r.Cache.Set(ctx, key, data, r.TTL)
	})
	if err != nil {
		r.Logger.Warn("cache write failed", "type", keyType, "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyType, len(data))
}
