package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/matzehuels/hanoi/pkg/errors"
	"github.com/matzehuels/hanoi/pkg/hanoi"
)

// ReadJSON decodes a transcript from r. It does not check that the moves are
// legal; use [Replay] for that. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*Transcript, error) {
	var t Transcript
	if err := json.NewDecoder(r).Decode(&t); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidTranscript, err, "decode transcript")
	}
	if t.Disks < 0 {
		return nil, errors.New(errors.ErrCodeInvalidTranscript, "negative disk count %d", t.Disks)
	}
	return &t, nil
}

// ImportJSON reads a JSON file at path and returns the decoded transcript.
func ImportJSON(path string) (*Transcript, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}

// Replay applies the moves of t to a fresh board and checks that each
// recorded disk matches the disk actually moved and that the board ends in
// the recorded final state. The first illegal move is returned wrapped in an
// INVALID_TRANSCRIPT error; errors.As still finds the underlying move error.
func Replay(t *Transcript) (*hanoi.Board, error) {
	b := hanoi.New(t.Disks)
	for i, m := range t.Moves {
		top, ok := b.Top(m.From)
		if ok && top != m.Disk {
			return b, errors.New(errors.ErrCodeInvalidTranscript,
				"move %d: recorded disk %d but rod %d holds disk %d on top", i+1, m.Disk, m.From, top)
		}
		if err := b.Move(m.From, m.To); err != nil {
			return b, errors.Wrap(errors.ErrCodeInvalidTranscript, err, "move %d", i+1)
		}
	}

	got := b.Snapshot()
	for r := range got {
		want := t.Final[r]
		if want == nil {
			want = []hanoi.Disk{}
		}
		if !slices.Equal(got[r], want) {
			return b, errors.New(errors.ErrCodeInvalidTranscript,
				"rod %d ends as %v, transcript records %v", r, got[r], want)
		}
	}
	return b, nil
}
