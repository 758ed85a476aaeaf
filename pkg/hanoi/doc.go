// Package hanoi models the Tower of Hanoi puzzle: a board of three rods, a
// validated single-disk move, and a recursive solver.
//
// # Board
//
// A [Board] is created with N disks stacked on rod 0, largest (N-1) at the
// bottom and smallest (0) on top. The only way to change it is [Board.Move],
// which relocates the top disk of one rod onto another:
//
//	b := hanoi.New(3)
//	if err := b.Move(hanoi.Left, hanoi.Right); err != nil {
//	    // *EmptySourceError or *IllegalPlacementError
//	}
//
// A rejected move never changes the board. No disk ever rests on a smaller
// one, and the set of disks on the board is always exactly {0, ..., N-1}.
//
// # Solver
//
// [Solver] moves every disk from rod 0 to rod 2 using rod 1 as auxiliary
// space. It uses the classic divide-and-conquer recursion and performs
// 2^N - 1 moves on a board in its initial state:
//
//	s := hanoi.NewSolver(b, hanoi.WithMoveHandler(func(m hanoi.Move, b *hanoi.Board) error {
//	    fmt.Println(m)
//	    return nil
//	}))
//	err := s.Solve(ctx)
//
// The first failing move aborts the solve and its error is returned as is.
// Moves already applied stay applied.
//
// A Board is not safe for concurrent use.
package hanoi
