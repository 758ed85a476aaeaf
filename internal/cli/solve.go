package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/hanoi/pkg/hanoi"
	hio "github.com/matzehuels/hanoi/pkg/io"
	"github.com/matzehuels/hanoi/pkg/pipeline"
)

const (
	formatText = "text"
	formatJSON = "json"
)

// solveOpts holds the command-line flags for the solve command.
type solveOpts struct {
	quiet   bool   // print moves without boards
	format  string // "text" or "json"
	output  string // transcript file for --format json
	noCache bool   // bypass the solution cache
	refresh bool   // recompute and overwrite the cached solution
}

// solveCommand creates the solve command.
func (c *CLI) solveCommand() *cobra.Command {
	var opts solveOpts

	cmd := &cobra.Command{
		Use:   "solve [disks]",
		Short: "Solve the puzzle and print every move",
		Long: `Solve moves all disks from rod 0 to rod 2 and prints the board before the
first move and after every move.

With --format json the solve is recorded as a transcript instead, served from
the cache when possible. The transcript can be checked with "hanoi verify".`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSolve(cmd, args, opts)
		},
	}
	addSolveFlags(cmd, &opts)
	return cmd
}

func addSolveFlags(cmd *cobra.Command, opts *solveOpts) {
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "print only the moves")
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatText, "output format: text, json")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the JSON transcript to a file")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the solution cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore cached solutions")
}

func (c *CLI) runSolve(cmd *cobra.Command, args []string, opts solveOpts) error {
	if opts.format != formatText && opts.format != formatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", opts.format)
	}
	n, err := c.diskCount(cmd, args)
	if err != nil {
		return err
	}
	if opts.format == formatJSON {
		return c.solveJSON(cmd, n, opts)
	}
	return c.solveText(cmd, n, opts)
}

// solveText drives the solver directly, printing as each move is applied.
func (c *CLI) solveText(cmd *cobra.Command, n int, opts solveOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	out := cmd.OutOrStdout()

	b := hanoi.New(n)
	if !opts.quiet {
		fmt.Fprint(out, c.drawBoard(b))
	}

	prog := newProgress(logger)
	s := hanoi.NewSolver(b,
		hanoi.WithLogger(logger),
		hanoi.WithMoveHandler(func(m hanoi.Move, b *hanoi.Board) error {
			fmt.Fprintln(out, m)
			if !opts.quiet {
				fmt.Fprint(out, c.drawBoard(b))
			}
			return nil
		}))
	if err := s.Solve(ctx); err != nil {
		return err
	}
	prog.done("solved", "disks", n, "moves", pipeline.TotalMoves(n))
	return nil
}

// solveJSON prints or exports the cached transcript for n disks.
func (c *CLI) solveJSON(cmd *cobra.Command, n int, opts solveOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Cache.Close()

	popts := c.pipelineOptions(n)
	popts.Refresh = opts.refresh

	prog := newProgress(logger)
	t, hit, err := runner.SolveWithCacheInfo(ctx, popts)
	if err != nil {
		return err
	}
	prog.done("recorded transcript", "disks", n, "moves", len(t.Moves), "cached", hit)

	if opts.output == "" {
		return hio.WriteJSON(t, cmd.OutOrStdout())
	}
	if err := hio.ExportJSON(t, opts.output); err != nil {
		return err
	}
	printSuccess(cmd.ErrOrStderr(), "Transcript saved")
	printFile(cmd.ErrOrStderr(), opts.output)
	return nil
}
