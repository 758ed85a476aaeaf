// Package pkg provides the libraries behind the hanoi command.
//
// # Overview
//
// hanoi solves the Tower of Hanoi: three rods, N disks of distinct sizes, and
// the rule that a disk may never rest on a smaller one. The pkg directory is
// organized into these areas:
//
//  1. [hanoi] - The board, the move rule and the recursive solver
//  2. [render] - Text and terminal drawings of a board, plus the solver's
//     call tree as DOT or SVG ([render/calltree])
//  3. [io] - JSON transcripts of a solve and their replay
//  4. [pipeline] - Cached solving and board rendering
//  5. [server] - The HTTP API on top of [pipeline]
//
// Supporting packages are [cache], [config], [errors], [httputil],
// [observability] and [buildinfo].
//
// # Data Flow
//
//	disk count
//	     ↓
//	[hanoi] (New board, Solver applies 2^N - 1 moves)
//	     ↓
//	[io] (record moves as a Transcript)  or  [render] (draw each board)
//	     ↓
//	stdout / JSON file / HTTP response
//
// # Quick Start
//
//	import (
//	    "context"
//	    "fmt"
//
//	    "github.com/matzehuels/hanoi/pkg/hanoi"
//	    "github.com/matzehuels/hanoi/pkg/render"
//	)
//
//	b := hanoi.New(3)
//	s := hanoi.NewSolver(b, hanoi.WithMoveHandler(func(m hanoi.Move, b *hanoi.Board) error {
//	    fmt.Println(m)
//	    fmt.Print(render.Text(b))
//	    return nil
//	}))
//	if err := s.Solve(context.Background()); err != nil {
//	    return err
//	}
//
// # Caching
//
// [pipeline.Runner] stores transcripts and rendered boards in a [cache.Cache].
// The CLI uses a file cache under $XDG_CACHE_HOME/hanoi; the server can share
// a Redis cache between instances.
//
// [hanoi]: github.com/matzehuels/hanoi/pkg/hanoi
// [render]: github.com/matzehuels/hanoi/pkg/render
// [render/calltree]: github.com/matzehuels/hanoi/pkg/render/calltree
// [io]: github.com/matzehuels/hanoi/pkg/io
// [pipeline]: github.com/matzehuels/hanoi/pkg/pipeline
// [pipeline.Runner]: github.com/matzehuels/hanoi/pkg/pipeline#Runner
// [server]: github.com/matzehuels/hanoi/pkg/server
// [cache]: github.com/matzehuels/hanoi/pkg/cache
// [cache.Cache]: github.com/matzehuels/hanoi/pkg/cache#Cache
// [config]: github.com/matzehuels/hanoi/pkg/config
// [errors]: github.com/matzehuels/hanoi/pkg/errors
// [httputil]: github.com/matzehuels/hanoi/pkg/httputil
// [observability]: github.com/matzehuels/hanoi/pkg/observability
// [buildinfo]: github.com/matzehuels/hanoi/pkg/buildinfo
package pkg
