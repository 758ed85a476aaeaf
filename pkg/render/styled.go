package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/hanoi/pkg/hanoi"
)

// diskColors cycles by disk size, smallest first.
var diskColors = []lipgloss.Color{
	lipgloss.Color("36"),  // teal
	lipgloss.Color("35"),  // green
	lipgloss.Color("220"), // amber
	lipgloss.Color("167"), // soft red
	lipgloss.Color("75"),  // light blue
	lipgloss.Color("141"), // violet
}

var (
	styleRod  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	styleBase = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// DiskStyle returns the style used to draw disk d.
func DiskStyle(d hanoi.Disk) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(diskColors[int(d)%len(diskColors)])
}

// Styled renders b like [Text] but colors disks, rods and the base for a
// terminal. Without color support lipgloss emits the plain grid.
func Styled(b *hanoi.Board, opts ...Option) string {
	o := newOptions(opts)
	width := ColumnWidth(b.Disks())

	var sb strings.Builder
	for _, row := range grid(b) {
		for r, c := range row {
			if r > 0 {
				sb.WriteByte(' ')
			}
			if c.empty {
				sb.WriteString(center(styleRod.Render(string(o.empty)), 1, width))
				continue
			}
			w := 2*int(c.disk) + 1
			run := DiskStyle(c.disk).Render(strings.Repeat(string(o.fill), w))
			sb.WriteString(center(run, w, width))
		}
		sb.WriteByte('\n')
	}
	writeBase(&sb, string(o.base), width, func(s string) string { return styleBase.Render(s) })
	return sb.String()
}
