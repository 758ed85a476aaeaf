package hanoi

import (
	"fmt"
	"slices"
)

// Disk identifies a disk. A larger value is a larger disk.
type Disk uint32

// Rod identifies one of the three rods.
type Rod int

// The three rods of the board.
const (
	Left   Rod = 0
	Middle Rod = 1
	Right  Rod = 2
)

// NumRods is the fixed number of rods on a board.
const NumRods = 3

// Valid reports whether r names one of the three rods.
func (r Rod) Valid() bool {
	return r >= Left && r <= Right
}

// Board holds three rods of disks. Each rod is stored bottom first.
type Board struct {
	rods  [NumRods][]Disk
	disks int
}

// New creates a board with n disks stacked on rod 0 (largest at the bottom).
// A negative n is treated as zero.
func New(n int) *Board {
	if n < 0 {
		n = 0
	}
	b := &Board{disks: n}
	b.rods[Left] = make([]Disk, 0, n)
	for d := n - 1; d >= 0; d-- {
		b.rods[Left] = append(b.rods[Left], Disk(d))
	}
	b.rods[Middle] = make([]Disk, 0, n)
	b.rods[Right] = make([]Disk, 0, n)
	return b
}

// Disks returns the number of disks fixed at construction.
func (b *Board) Disks() int {
	return b.disks
}

// Rod returns a copy of the disks on r, bottom first.
// It returns nil for an invalid rod.
func (b *Board) Rod(r Rod) []Disk {
	if !r.Valid() {
		return nil
	}
	return slices.Clone(b.rods[r])
}

// Height returns the number of disks on r.
func (b *Board) Height(r Rod) int {
	if !r.Valid() {
		return 0
	}
	return len(b.rods[r])
}

// Top returns the top disk of r, or false if r is empty or invalid.
func (b *Board) Top(r Rod) (Disk, bool) {
	if !r.Valid() || len(b.rods[r]) == 0 {
		return 0, false
	}
	rod := b.rods[r]
	return rod[len(rod)-1], true
}

// Snapshot returns a deep copy of all three rods.
func (b *Board) Snapshot() [NumRods][]Disk {
	var s [NumRods][]Disk
	for i := range b.rods {
		s[i] = slices.Clone(b.rods[i])
		if s[i] == nil {
			s[i] = []Disk{}
		}
	}
	return s
}

// Solved reports whether every disk sits on rod 2.
func (b *Board) Solved() bool {
	return len(b.rods[Right]) == b.disks
}

// Move relocates the top disk of from onto to.
//
// It fails with *EmptySourceError when from holds no disk and with
// *IllegalPlacementError when the top disk of to is smaller than the moving
// disk. On failure the board is left untouched. Moving a disk onto the rod it
// already sits on is a no-op.
func (b *Board) Move(from, to Rod) error {
	if !from.Valid() {
		return &RodError{Rod: from}
	}
	if !to.Valid() {
		return &RodError{Rod: to}
	}
	disk, ok := b.Top(from)
	if !ok {
		return &EmptySourceError{Rod: from}
	}
	if from == to {
		return nil
	}
	if top, ok := b.Top(to); ok && top < disk {
		return &IllegalPlacementError{Disk: disk, Onto: top}
	}
	b.rods[from] = b.rods[from][:len(b.rods[from])-1]
	b.rods[to] = append(b.rods[to], disk)
	return nil
}

// String returns a compact form such as "[2 1 0] [] []".
func (b *Board) String() string {
	return fmt.Sprintf("%v %v %v", b.rods[Left], b.rods[Middle], b.rods[Right])
}
