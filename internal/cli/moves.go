package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/hanoi/pkg/hanoi"
)

// movesCommand creates the moves command, which lists the solution as a table.
func (c *CLI) movesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "moves [disks]",
		Short: "List the solution moves as a table",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := c.diskCount(cmd, args)
			if err != nil {
				return err
			}
			moves, _, err := hanoi.Record(cmd.Context(), n)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), movesTable(moves))
			return nil
		},
	}
}

// movesTable renders moves with one row per move.
func movesTable(moves []hanoi.Move) string {
	rows := make([][]string, len(moves))
	for i, m := range moves {
		rows[i] = []string{
			strconv.Itoa(m.Step),
			strconv.Itoa(int(m.Disk)),
			strconv.Itoa(int(m.From)),
			strconv.Itoa(int(m.To)),
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Step", "Disk", "From", "To").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader.Padding(0, 1)
			}
			style := lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
			if col == 1 {
				return style.Foreground(colorCyan)
			}
			return style
		})
	return t.Render()
}
