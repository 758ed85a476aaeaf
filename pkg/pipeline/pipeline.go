// Package pipeline runs solves and board renders behind a cache.
//
// The CLI and the HTTP server both go through a [Runner] so that a transcript
// recorded by one is served from cache by the other.
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	t, hit, err := runner.SolveWithCacheInfo(ctx, pipeline.Options{Disks: 5})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(len(t.Moves), hit) // 31 false
//
// Render the board part way through the solve:
//
//	grid, _, err := runner.BoardWithCacheInfo(ctx, pipeline.Options{Disks: 5, Step: 7})
package pipeline

import (
	"time"
	"unicode/utf8"

	"github.com/matzehuels/hanoi/pkg/errors"
	"github.com/matzehuels/hanoi/pkg/render"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultMaxDisks bounds Options.Disks when MaxDisks is unset.
	DefaultMaxDisks = 20

	// DefaultTTL is how long solved transcripts stay cached.
	DefaultTTL = 24 * time.Hour
)

// Cache key types reported to the observability hooks.
const (
	KeyTypeSolution = "solution"
	KeyTypeBoard    = "board"
)

// =============================================================================
// Options
// =============================================================================

// Options describes one solve or board request.
type Options struct {
	Disks    int    `json:"disks"`
	Step     int    `json:"step,omitempty"` // moves applied before rendering a board
	Fill     string `json:"fill,omitempty"`
	Base     string `json:"base,omitempty"`
	MaxDisks int    `json:"max_disks,omitempty"`
	Refresh  bool   `json:"refresh,omitempty"` // skip cache reads

	validated bool
}

// ValidateAndSetDefaults checks the disk count, step and glyphs and fills in
// defaults. Calling it again is a no-op.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.MaxDisks <= 0 {
		o.MaxDisks = DefaultMaxDisks
	}
	if err := errors.ValidateDiskCount(o.Disks, o.MaxDisks); err != nil {
		return err
	}
	if total := TotalMoves(o.Disks); o.Step < 0 || o.Step > total {
		return errors.New(errors.ErrCodeInvalidInput, "step %d out of range [0, %d]", o.Step, total)
	}
	if o.Fill == "" {
		o.Fill = string(render.DefaultFill)
	}
	if o.Base == "" {
		o.Base = string(render.DefaultBase)
	}
	if utf8.RuneCountInString(o.Fill) != 1 || utf8.RuneCountInString(o.Base) != 1 {
		return errors.New(errors.ErrCodeInvalidInput, "fill and base must be single characters")
	}
	o.validated = true
	return nil
}

// Glyphs returns the fill and base characters as one string for cache keys.
func (o Options) Glyphs() string {
	return o.Fill + o.Base
}

// RenderOptions converts the glyph settings to renderer options.
func (o Options) RenderOptions() []render.Option {
	fill, _ := utf8.DecodeRuneInString(o.Fill)
	base, _ := utf8.DecodeRuneInString(o.Base)
	return []render.Option{render.WithFill(fill), render.WithBase(base)}
}

// TotalMoves returns 2^n - 1, the length of the solution for n disks.
func TotalMoves(n int) int {
	if n <= 0 {
		return 0
	}
	return 1<<n - 1
}
