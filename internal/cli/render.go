package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/hanoi/pkg/hanoi"
)

// renderCommand creates the render command for drawing a single board.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		step    int
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "render [disks]",
		Short: "Draw the board without solving",
		Long: `Render draws the board for the given disk count. With --step it draws the
board after that many moves of the solution (0 is the initial board).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := c.diskCount(cmd, args)
			if err != nil {
				return err
			}
			if step == 0 {
				fmt.Fprint(cmd.OutOrStdout(), c.drawBoard(hanoi.New(n)))
				return nil
			}

			runner, err := c.newRunner(cmd.Context(), noCache)
			if err != nil {
				return err
			}
			defer runner.Cache.Close()

			opts := c.pipelineOptions(n)
			opts.Step = step
			b, err := runner.BoardAt(cmd.Context(), opts)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), c.drawBoard(b))
			return nil
		},
	}

	cmd.Flags().IntVarP(&step, "step", "s", 0, "number of solution moves to apply first")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the solution cache")
	return cmd
}
