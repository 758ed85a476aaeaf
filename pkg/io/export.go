package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/hanoi/pkg/hanoi"
)

// Transcript is the serializable record of one solve.
type Transcript struct {
	ID        string                     `json:"id"`
	Disks     int                        `json:"disks"`
	CreatedAt time.Time                  `json:"created_at"`
	Moves     []MoveRecord               `json:"moves"`
	Final     [hanoi.NumRods][]hanoi.Disk `json:"final"`
}

// MoveRecord is the JSON form of a [hanoi.Move].
type MoveRecord struct {
	Step int        `json:"step"`
	Disk hanoi.Disk `json:"disk"`
	From hanoi.Rod  `json:"from"`
	To   hanoi.Rod  `json:"to"`
}

// NewTranscript builds a transcript for moves applied to a board of n disks
// that ended in state b. It is assigned a fresh random ID.
func NewTranscript(n int, moves []hanoi.Move, b *hanoi.Board) *Transcript {
	t := &Transcript{
		ID:        uuid.NewString(),
		Disks:     n,
		CreatedAt: time.Now().UTC(),
		Moves:     make([]MoveRecord, len(moves)),
		Final:     b.Snapshot(),
	}
	for i, m := range moves {
		t.Moves[i] = MoveRecord{Step: m.Step, Disk: m.Disk, From: m.From, To: m.To}
	}
	return t
}

// HanoiMoves converts the records back to [hanoi.Move] values.
func (t *Transcript) HanoiMoves() []hanoi.Move {
	out := make([]hanoi.Move, len(t.Moves))
	for i, m := range t.Moves {
		out[i] = hanoi.Move{Step: m.Step, Disk: m.Disk, From: m.From, To: m.To}
	}
	return out
}

// WriteJSON encodes t as indented JSON and writes it to w.
// The output can be re-imported with [ReadJSON].
func WriteJSON(t *Transcript, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(t); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes a transcript to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(t *Transcript, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(t, f)
}
