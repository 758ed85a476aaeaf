package cli

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"strings"
	"testing"

	"github.com/matzehuels/hanoi/pkg/errors"
	"github.com/matzehuels/hanoi/pkg/hanoi"
)

func TestErrorMessage(t *testing.T) {
	moveErr := hanoi.New(2).Move(hanoi.Middle, hanoi.Right)

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "plain error",
			err:  stderrors.New("boom"),
			want: "boom",
		},
		{
			name: "coded error",
			err:  errors.New(errors.ErrCodeInvalidInput, "invalid disk amount: x"),
			want: "invalid disk amount: x",
		},
		{
			name: "uncoded cause is dropped",
			err:  errors.Wrap(errors.ErrCodeInternal, fmt.Errorf("open /tmp/x: denied"), "write cache"),
			want: "write cache",
		},
		{
			name: "coded cause is kept",
			err:  errors.Wrap(errors.ErrCodeInvalidTranscript, moveErr, "move 1"),
			want: "move 1: no disk to move from rod 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errorMessage(tt.err); got != tt.want {
				t.Errorf("errorMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	PrintError(&buf, errors.New(errors.ErrCodeInvalidDiskCount, "disk count 40 exceeds maximum of 20"))
	if !strings.Contains(buf.String(), "disk count 40 exceeds maximum of 20") {
		t.Errorf("PrintError() wrote %q", buf.String())
	}
}
