package hanoi

import (
	"errors"
	"slices"
	"testing"

	hanoierrors "github.com/matzehuels/hanoi/pkg/errors"
)

func descending(n int) []Disk {
	out := []Disk{}
	for d := n - 1; d >= 0; d-- {
		out = append(out, Disk(d))
	}
	return out
}

func assertRods(t *testing.T, b *Board, want [NumRods][]Disk) {
	t.Helper()
	got := b.Snapshot()
	for r := range got {
		if !slices.Equal(got[r], want[r]) {
			t.Errorf("rod %d = %v, want %v", r, got[r], want[r])
		}
	}
}

// assertInvariant checks the ordering rule on every rod and that the board
// holds exactly the disks 0..n-1.
func assertInvariant(t *testing.T, b *Board) {
	t.Helper()
	seen := make(map[Disk]bool)
	for r, rod := range b.Snapshot() {
		for i, d := range rod {
			if i > 0 && rod[i-1] <= d {
				t.Errorf("rod %d: disk %d rests on smaller disk %d", r, d, rod[i-1])
			}
			if seen[d] {
				t.Errorf("disk %d appears twice", d)
			}
			seen[d] = true
		}
	}
	if len(seen) != b.Disks() {
		t.Errorf("board holds %d disks, want %d", len(seen), b.Disks())
	}
	for d := 0; d < b.Disks(); d++ {
		if !seen[Disk(d)] {
			t.Errorf("disk %d missing", d)
		}
	}
}

func TestNew(t *testing.T) {
	for _, n := range []int{0, 1, 3, 5, 10} {
		b := New(n)
		if b.Disks() != n {
			t.Errorf("New(%d).Disks() = %d", n, b.Disks())
		}
		assertRods(t, b, [NumRods][]Disk{descending(n), {}, {}})
		assertInvariant(t, b)
	}
}

func TestNewThreeDisks(t *testing.T) {
	b := New(3)
	assertRods(t, b, [NumRods][]Disk{{2, 1, 0}, {}, {}})
	if top, ok := b.Top(Left); !ok || top != 0 {
		t.Errorf("Top(Left) = %d, %v; want 0, true", top, ok)
	}
}

func TestNewFiveDisks(t *testing.T) {
	b := New(5)
	assertRods(t, b, [NumRods][]Disk{{4, 3, 2, 1, 0}, {}, {}})
}

func TestNewNegative(t *testing.T) {
	b := New(-4)
	if b.Disks() != 0 {
		t.Errorf("Disks() = %d, want 0", b.Disks())
	}
	if !b.Solved() {
		t.Error("empty board should count as solved")
	}
}

func TestMoveLegal(t *testing.T) {
	b := New(3)
	if err := b.Move(Left, Middle); err != nil {
		t.Fatalf("Move(0, 1) error = %v", err)
	}
	assertRods(t, b, [NumRods][]Disk{{2, 1}, {0}, {}})
	assertInvariant(t, b)

	if err := b.Move(Left, Right); err != nil {
		t.Fatalf("Move(0, 2) error = %v", err)
	}
	if err := b.Move(Middle, Right); err != nil {
		t.Fatalf("Move(1, 2) error = %v", err)
	}
	assertRods(t, b, [NumRods][]Disk{{2}, {}, {1, 0}})
	assertInvariant(t, b)
}

func TestMoveEmptySource(t *testing.T) {
	b := New(3)
	before := b.Snapshot()

	err := b.Move(Middle, Left)

	var empty *EmptySourceError
	if !errors.As(err, &empty) {
		t.Fatalf("Move(1, 0) error = %v, want *EmptySourceError", err)
	}
	if empty.Rod != Middle {
		t.Errorf("EmptySourceError.Rod = %d, want %d", empty.Rod, Middle)
	}
	if err.Error() != "no disk to move from rod 1" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !hanoierrors.Is(err, hanoierrors.ErrCodeEmptySource) {
		t.Errorf("code = %v, want %v", hanoierrors.GetCode(err), hanoierrors.ErrCodeEmptySource)
	}
	assertRods(t, b, before)
}

func TestMoveIllegalPlacement(t *testing.T) {
	b := New(3)
	if err := b.Move(Left, Middle); err != nil {
		t.Fatal(err)
	}
	before := b.Snapshot()

	err := b.Move(Left, Middle)

	var illegal *IllegalPlacementError
	if !errors.As(err, &illegal) {
		t.Fatalf("Move(0, 1) error = %v, want *IllegalPlacementError", err)
	}
	if illegal.Disk != 1 || illegal.Onto != 0 {
		t.Errorf("IllegalPlacementError = {%d, %d}, want {1, 0}", illegal.Disk, illegal.Onto)
	}
	if err.Error() != "disk 1 is bigger than disk 0" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !hanoierrors.Is(err, hanoierrors.ErrCodeIllegalPlacement) {
		t.Errorf("code = %v, want %v", hanoierrors.GetCode(err), hanoierrors.ErrCodeIllegalPlacement)
	}
	assertRods(t, b, before)
	assertInvariant(t, b)
}

func TestMoveIllegalTwiceIsIdentical(t *testing.T) {
	b := New(3)
	if err := b.Move(Left, Right); err != nil {
		t.Fatal(err)
	}

	err1 := b.Move(Left, Right)
	snap1 := b.Snapshot()
	err2 := b.Move(Left, Right)
	snap2 := b.Snapshot()

	if err1 == nil || err2 == nil {
		t.Fatalf("expected both moves to fail, got %v and %v", err1, err2)
	}
	if err1.Error() != err2.Error() {
		t.Errorf("errors differ: %q vs %q", err1, err2)
	}
	for r := range snap1 {
		if !slices.Equal(snap1[r], snap2[r]) {
			t.Errorf("rod %d changed between attempts: %v vs %v", r, snap1[r], snap2[r])
		}
	}

	b2 := New(0)
	e1, e2 := b2.Move(Left, Right), b2.Move(Left, Right)
	if e1 == nil || e1.Error() != e2.Error() {
		t.Errorf("empty-source errors differ: %v vs %v", e1, e2)
	}
}

func TestMoveSameRod(t *testing.T) {
	b := New(3)
	if err := b.Move(Left, Left); err != nil {
		t.Errorf("Move(0, 0) on non-empty rod error = %v, want nil", err)
	}
	assertRods(t, b, [NumRods][]Disk{{2, 1, 0}, {}, {}})

	var empty *EmptySourceError
	if err := b.Move(Right, Right); !errors.As(err, &empty) {
		t.Errorf("Move(2, 2) on empty rod error = %v, want *EmptySourceError", err)
	}
}

func TestMoveInvalidRod(t *testing.T) {
	tests := []struct {
		name     string
		from, to Rod
		bad      Rod
	}{
		{"negative source", -1, Right, -1},
		{"source too large", 3, Right, 3},
		{"destination too large", Left, 7, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(2)
			err := b.Move(tt.from, tt.to)
			var rodErr *RodError
			if !errors.As(err, &rodErr) {
				t.Fatalf("error = %v, want *RodError", err)
			}
			if rodErr.Rod != tt.bad {
				t.Errorf("RodError.Rod = %d, want %d", rodErr.Rod, tt.bad)
			}
			if !hanoierrors.Is(err, hanoierrors.ErrCodeInvalidRod) {
				t.Errorf("code = %v", hanoierrors.GetCode(err))
			}
			assertRods(t, b, [NumRods][]Disk{{1, 0}, {}, {}})
		})
	}
}

func TestRodAccessorsCopy(t *testing.T) {
	b := New(3)
	rod := b.Rod(Left)
	rod[0] = 99
	if got := b.Rod(Left); got[0] != 2 {
		t.Errorf("Rod() returned shared storage: %v", got)
	}
	if b.Rod(5) != nil {
		t.Error("Rod(5) should be nil")
	}
	if b.Height(Left) != 3 || b.Height(Middle) != 0 || b.Height(9) != 0 {
		t.Errorf("Height() = %d, %d, %d", b.Height(Left), b.Height(Middle), b.Height(9))
	}
	if _, ok := b.Top(Right); ok {
		t.Error("Top(Right) on empty rod should report false")
	}
}

func TestBoardString(t *testing.T) {
	b := New(3)
	if got, want := b.String(), "[2 1 0] [] []"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
