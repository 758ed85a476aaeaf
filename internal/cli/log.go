// Package cli implements the hanoi command-line interface.
//
// The CLI is built using cobra and logs with charmbracelet/log. Boards and
// moves go to standard output; logs, prompts for correction and errors go to
// standard error.
//
// # Commands
//
// The main commands are:
//   - solve: Solve the puzzle, printing every move and board (the default)
//   - render: Draw the board, optionally part way through the solve
//   - moves: List the moves as a table
//   - play: Animate the solve in the terminal
//   - verify: Replay a JSON transcript and check it
//   - tree: Draw the solver's recursion as DOT or SVG
//   - serve: Run the HTTP API
//   - cache: Manage the solution cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress times one command step. Intermediate checkpoints go to the debug
// log, the final line to info, each with the time since the step began.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

func (p *progress) elapsed() time.Duration {
	return time.Since(p.start).Round(time.Millisecond)
}

// step logs a checkpoint at debug level.
func (p *progress) step(msg string, keyvals ...any) {
	p.logger.Debug(msg, append(keyvals, "after", p.elapsed())...)
}

// done logs the result, e.g. "14:32:01.45 INFO solved disks=10 moves=1023 elapsed=3ms".
func (p *progress) done(msg string, keyvals ...any) {
	p.logger.Info(msg, append(keyvals, "elapsed", p.elapsed())...)
}

type ctxKey struct{}

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// loggerFromContext returns the logger set by withLogger, or one that
// discards everything.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*log.Logger); ok {
		return l
	}
	return log.New(io.Discard)
}
