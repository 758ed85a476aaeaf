package calltree

import (
	"fmt"

	"github.com/matzehuels/hanoi/pkg/hanoi"
)

// Node is one recursive solver call.
type Node struct {
	Count int
	From  hanoi.Rod
	To    hanoi.Rod
	Via   hanoi.Rod

	// Move is the disk move made between the two sub-calls.
	Move hanoi.Move

	// Before moves Count-1 disks out of the way, After moves them back on top.
	Before *Node
	After  *Node
}

// Build returns the call tree for solving n disks from rod 0 to rod 2.
// It returns nil for n <= 0.
func Build(n int) *Node {
	step := 0
	return build(n, hanoi.Left, hanoi.Right, hanoi.Middle, &step)
}

func build(count int, from, to, via hanoi.Rod, step *int) *Node {
	if count <= 0 {
		return nil
	}
	n := &Node{Count: count, From: from, To: to, Via: via}
	n.Before = build(count-1, from, via, to, step)
	*step++
	// The disk moved by a call on count disks is always disk count-1.
	n.Move = hanoi.Move{Step: *step, Disk: hanoi.Disk(count - 1), From: from, To: to}
	n.After = build(count-1, via, to, from, step)
	return n
}

// Label returns the call signature, e.g. "solve(3, 0→2 via 1)".
func (n *Node) Label() string {
	return fmt.Sprintf("solve(%d, %d→%d via %d)", n.Count, n.From, n.To, n.Via)
}

// Walk visits the tree in move order: Before, the node itself, After.
func (n *Node) Walk(fn func(*Node)) {
	if n == nil {
		return
	}
	n.Before.Walk(fn)
	fn(n)
	n.After.Walk(fn)
}

// Size returns the number of calls in the tree.
func (n *Node) Size() int {
	count := 0
	n.Walk(func(*Node) { count++ })
	return count
}
