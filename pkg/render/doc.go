// Package render turns a Hanoi board into text.
//
// # Overview
//
// [Text] draws the board as a fixed-width grid: one column per rod, one row
// per disk level from top to bottom, and a closing row of base markers. A
// disk d is a centered run of 2d+1 fill characters; an empty level shows a
// vertical bar. Columns are 2N+1 characters wide, where N is the board's disk
// count, and are separated by a single space. The initial 3-disk board is:
//
//	   #       |       |
//	  ###      |       |
//	 #####     |       |
//	======= ======= =======
//
// [Styled] draws the same grid with lipgloss colors for terminals, and
// [Step] prefixes a grid with the move that produced it.
//
// Rendering never changes the board.
//
// # Call Trees
//
// The [calltree] subpackage renders the solver's recursion as a Graphviz
// diagram.
//
// [calltree]: github.com/matzehuels/hanoi/pkg/render/calltree
package render
