package render

import (
	"strings"

	"github.com/matzehuels/hanoi/pkg/hanoi"
)

// Default glyphs used by [Text].
const (
	DefaultFill  = '#'
	DefaultBase  = '='
	DefaultEmpty = '|'
)

type options struct {
	fill  rune
	base  rune
	empty rune
}

// Option customizes the glyphs of a rendered grid.
type Option func(*options)

// WithFill sets the character disks are drawn with.
func WithFill(r rune) Option { return func(o *options) { o.fill = r } }

// WithBase sets the character of the closing base row.
func WithBase(r rune) Option { return func(o *options) { o.base = r } }

// WithEmpty sets the placeholder for an empty level.
func WithEmpty(r rune) Option { return func(o *options) { o.empty = r } }

func newOptions(opts []Option) options {
	o := options{fill: DefaultFill, base: DefaultBase, empty: DefaultEmpty}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// cell is one rod at one level: either a disk or the empty placeholder.
type cell struct {
	disk  hanoi.Disk
	empty bool
}

// grid lays out the board top level first, one cell per rod.
func grid(b *hanoi.Board) [][hanoi.NumRods]cell {
	n := b.Disks()
	rods := b.Snapshot()
	rows := make([][hanoi.NumRods]cell, 0, n)
	for level := n - 1; level >= 0; level-- {
		var row [hanoi.NumRods]cell
		for r, rod := range rods {
			if level < len(rod) {
				row[r] = cell{disk: rod[level]}
			} else {
				row[r] = cell{empty: true}
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// ColumnWidth returns the width of one rod column for an n-disk board.
func ColumnWidth(n int) int {
	return 2*max(n, 0) + 1
}

// center pads s (of visible width w) to width with spaces on both sides.
// An odd leftover goes to the right.
func center(s string, w, width int) string {
	left := (width - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-w-left)
}

// Text renders b as a plain-text grid. Every line ends with a newline.
func Text(b *hanoi.Board, opts ...Option) string {
	o := newOptions(opts)
	width := ColumnWidth(b.Disks())

	var sb strings.Builder
	for _, row := range grid(b) {
		for r, c := range row {
			if r > 0 {
				sb.WriteByte(' ')
			}
			if c.empty {
				sb.WriteString(center(string(o.empty), 1, width))
				continue
			}
			w := 2*int(c.disk) + 1
			sb.WriteString(center(strings.Repeat(string(o.fill), w), w, width))
		}
		sb.WriteByte('\n')
	}
	writeBase(&sb, string(o.base), width, nil)
	return sb.String()
}

func writeBase(sb *strings.Builder, base string, width int, style func(string) string) {
	for r := 0; r < hanoi.NumRods; r++ {
		if r > 0 {
			sb.WriteByte(' ')
		}
		s := strings.Repeat(base, width)
		if style != nil {
			s = style(s)
		}
		sb.WriteString(s)
	}
	sb.WriteByte('\n')
}

// Step renders the move m followed by the grid of b.
func Step(m hanoi.Move, b *hanoi.Board, opts ...Option) string {
	return m.String() + "\n" + Text(b, opts...)
}
