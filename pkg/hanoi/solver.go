package hanoi

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/hanoi/pkg/observability"
)

// Move describes a move applied by the solver. Step counts from 1.
type Move struct {
	Step int
	Disk Disk
	From Rod
	To   Rod
}

func (m Move) String() string {
	return fmt.Sprintf("move %d: disk %d from rod %d to rod %d", m.Step, m.Disk, m.From, m.To)
}

// MoveHandler is called after every successful move with the updated board.
// Returning an error aborts the solve.
type MoveHandler func(m Move, b *Board) error

// SolverOption configures a [Solver].
type SolverOption func(*Solver)

// WithMoveHandler registers fn to observe each applied move.
func WithMoveHandler(fn MoveHandler) SolverOption {
	return func(s *Solver) { s.onMove = fn }
}

// WithLogger sets the logger used for solve lifecycle messages.
func WithLogger(l *log.Logger) SolverOption {
	return func(s *Solver) {
		if l != nil {
			s.logger = l
		}
	}
}

// Solver applies the recursive Hanoi algorithm to a board.
type Solver struct {
	board  *Board
	onMove MoveHandler
	logger *log.Logger
	step   int
}

// NewSolver returns a solver for b.
func NewSolver(b *Board, opts ...SolverOption) *Solver {
	s := &Solver{
		board:  b,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Board returns the board the solver mutates.
func (s *Solver) Board() *Board {
	return s.board
}

// Solve moves all disks from rod 0 to rod 2 using rod 1 as auxiliary.
// Move steps are numbered from 1 on every call.
func (s *Solver) Solve(ctx context.Context) error {
	s.step = 0
	return s.SolveFrom(ctx, s.board.Disks(), Left, Right, Middle)
}

// SolveFrom moves the top count disks of src to dst using aux as scratch.
// Move steps continue from the solver's previous moves, so several calls
// can be chained into one numbered sequence. The first move error stops the
// recursion and is returned unchanged.
func (s *Solver) SolveFrom(ctx context.Context, count int, src, dst, aux Rod) error {
	hooks := observability.Solver()
	hooks.OnSolveStart(ctx, count)
	s.logger.Debug("solving", "disks", count, "from", src, "to", dst, "via", aux)

	start := time.Now()
	first := s.step
	err := s.solve(ctx, count, src, dst, aux)
	elapsed := time.Since(start)

	hooks.OnSolveComplete(ctx, count, s.step-first, elapsed, err)
	if err != nil {
		s.logger.Debug("solve aborted", "step", s.step+1, "err", err)
		return err
	}
	s.logger.Debug("solved", "disks", count, "elapsed", elapsed)
	return nil
}

func (s *Solver) solve(ctx context.Context, count int, src, dst, aux Rod) error {
	if count <= 0 {
		return nil
	}
	if err := s.solve(ctx, count-1, src, aux, dst); err != nil {
		return err
	}
	if err := s.apply(ctx, src, dst); err != nil {
		return err
	}
	return s.solve(ctx, count-1, aux, dst, src)
}

func (s *Solver) apply(ctx context.Context, from, to Rod) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	disk, _ := s.board.Top(from)
	if err := s.board.Move(from, to); err != nil {
		return err
	}
	s.step++
	m := Move{Step: s.step, Disk: disk, From: from, To: to}
	observability.Solver().OnMove(ctx, m.Step, int(m.Disk), int(m.From), int(m.To))
	if s.onMove != nil {
		return s.onMove(m, s.board)
	}
	return nil
}

// Record solves a fresh n-disk board and returns the moves in order
// together with the final board.
func Record(ctx context.Context, n int) ([]Move, *Board, error) {
	b := New(n)
	var moves []Move
	s := NewSolver(b, WithMoveHandler(func(m Move, _ *Board) error {
		moves = append(moves, m)
		return nil
	}))
	if err := s.Solve(ctx); err != nil {
		return moves, b, err
	}
	return moves, b, nil
}
