package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/hanoi/pkg/errors"
	hio "github.com/matzehuels/hanoi/pkg/io"
)

// verifyCommand creates the verify command, which replays a JSON transcript.
func (c *CLI) verifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "verify FILE",
		Short: "Check that a transcript is a legal, complete solve",
		Long: `Verify replays the moves of a transcript written by "hanoi solve --format json"
on a fresh board. It fails on the first illegal move or if the board does not
end in the recorded final state.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prog := newProgress(loggerFromContext(cmd.Context()))

			t, err := hio.ImportJSON(args[0])
			if err != nil {
				return err
			}
			if err := errors.ValidateDiskCount(t.Disks, c.Config.MaxDisks); err != nil {
				return err
			}
			prog.step("loaded transcript", "path", args[0], "disks", t.Disks)

			b, err := hio.Replay(t)
			if err != nil {
				return err
			}
			prog.done("replayed transcript", "id", t.ID, "moves", len(t.Moves))

			out := cmd.OutOrStdout()
			printSuccess(out, "Valid transcript: %d disks, %d moves", t.Disks, len(t.Moves))
			if !b.Solved() {
				printWarning(out, "The transcript stops before the puzzle is solved")
			}
			return nil
		},
	}
}
