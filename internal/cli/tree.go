package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/hanoi/pkg/errors"
	"github.com/matzehuels/hanoi/pkg/render/calltree"
)

const (
	formatDOT = "dot"
	formatSVG = "svg"

	// treeMaxDisks bounds the call tree, which has 2^n - 1 nodes.
	treeMaxDisks = 10
)

// treeOpts holds the command-line flags for the tree command.
type treeOpts struct {
	output   string // output file path, stdout when empty
	format   string // "dot" or "svg"
	detailed bool   // add each call's move to its label
}

// treeCommand creates the tree command, which draws the solver's recursion.
func (c *CLI) treeCommand() *cobra.Command {
	opts := treeOpts{format: formatDOT}

	cmd := &cobra.Command{
		Use:   "tree [disks]",
		Short: "Draw the solver's recursion tree",
		Long: `Tree draws one node per recursive call of the solver: "solve(n, a→b via c)"
moves n disks from rod a to rod b using rod c. Leaves move a single disk.

Output is Graphviz DOT by default or SVG with --format svg.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.format != formatDOT && opts.format != formatSVG {
				return fmt.Errorf("invalid format: %s (must be 'dot' or 'svg')", opts.format)
			}
			n, err := c.diskCount(cmd, args)
			if err != nil {
				return err
			}
			if err := errors.ValidateDiskCount(n, treeMaxDisks); err != nil {
				return err
			}
			return c.runTree(cmd, n, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: dot, svg")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "label every call with its move")
	return cmd
}

func (c *CLI) runTree(cmd *cobra.Command, n int, opts treeOpts) error {
	logger := loggerFromContext(cmd.Context())
	root := calltree.Build(n)
	data := []byte(calltree.ToDOT(root, calltree.Options{Detailed: opts.detailed}))
	logger.Debug("built call tree", "disks", n, "calls", root.Size())

	if opts.format == formatSVG {
		spinner := newSpinner(cmd.Context(), cmd.ErrOrStderr(), "Rendering SVG...")
		spinner.Start()
		svg, err := calltree.RenderSVG(string(data))
		spinner.Stop()
		if err != nil {
			return err
		}
		data = svg
	}

	if opts.output == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(opts.output, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}
	printSuccess(cmd.ErrOrStderr(), "Call tree saved")
	printFile(cmd.ErrOrStderr(), opts.output)
	return nil
}
