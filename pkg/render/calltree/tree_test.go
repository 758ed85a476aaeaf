package calltree

import (
	"context"
	"testing"

	"github.com/matzehuels/hanoi/pkg/hanoi"
)

func TestBuildEmpty(t *testing.T) {
	if Build(0) != nil {
		t.Error("Build(0) should be nil")
	}
	if Build(-1).Size() != 0 {
		t.Error("Build(-1).Size() should be 0")
	}
}

func TestBuildSize(t *testing.T) {
	for n := 1; n <= 8; n++ {
		if got, want := Build(n).Size(), (1<<n)-1; got != want {
			t.Errorf("Build(%d).Size() = %d, want %d", n, got, want)
		}
	}
}

func TestBuildMatchesSolver(t *testing.T) {
	for _, n := range []int{1, 3, 5} {
		moves, _, err := hanoi.Record(context.Background(), n)
		if err != nil {
			t.Fatal(err)
		}
		var got []hanoi.Move
		Build(n).Walk(func(node *Node) { got = append(got, node.Move) })

		if len(got) != len(moves) {
			t.Fatalf("n=%d: tree has %d moves, solver made %d", n, len(got), len(moves))
		}
		for i := range moves {
			if got[i] != moves[i] {
				t.Errorf("n=%d move %d: tree %+v, solver %+v", n, i+1, got[i], moves[i])
			}
		}
	}
}

func TestBuildRoot(t *testing.T) {
	root := Build(3)
	if root.Count != 3 || root.From != hanoi.Left || root.To != hanoi.Right || root.Via != hanoi.Middle {
		t.Errorf("root = %+v", root)
	}
	if root.Move.Step != 4 || root.Move.Disk != 2 {
		t.Errorf("root move = %+v, want step 4 disk 2", root.Move)
	}
	if got, want := root.Label(), "solve(3, 0→2 via 1)"; got != want {
		t.Errorf("Label() = %q, want %q", got, want)
	}
	if root.Before.To != hanoi.Middle || root.After.From != hanoi.Middle {
		t.Errorf("children use wrong rods: before %s, after %s", root.Before.Label(), root.After.Label())
	}
}
