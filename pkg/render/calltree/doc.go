// Package calltree renders the recursion performed by the Hanoi solver as a
// Graphviz diagram.
//
// Each node is one call solve(count, from, to, via); its children are the two
// recursive calls on count-1 disks, and the node carries the single move it
// makes between them. Calls on zero disks make no move and are omitted.
//
//	root := calltree.Build(3)
//	dot := calltree.ToDOT(root, calltree.Options{Detailed: true})
//	svg, err := calltree.RenderSVG(dot)
//
// The tree for N disks has 2^N - 1 nodes, one per move, so diagrams beyond
// about 8 disks become unreadable.
package calltree
