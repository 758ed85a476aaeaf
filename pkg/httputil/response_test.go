package httputil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/matzehuels/hanoi/pkg/errors"
	"github.com/matzehuels/hanoi/pkg/hanoi"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid input", errors.New(errors.ErrCodeInvalidInput, "x"), http.StatusBadRequest},
		{"disk count", errors.New(errors.ErrCodeInvalidDiskCount, "x"), http.StatusBadRequest},
		{"rod", &hanoi.RodError{Rod: 5}, http.StatusBadRequest},
		{"transcript", errors.New(errors.ErrCodeInvalidTranscript, "x"), http.StatusUnprocessableEntity},
		{"empty source", &hanoi.EmptySourceError{Rod: 1}, http.StatusUnprocessableEntity},
		{"placement", &hanoi.IllegalPlacementError{Disk: 2, Onto: 0}, http.StatusUnprocessableEntity},
		{"not found", errors.New(errors.ErrCodeNotFound, "x"), http.StatusNotFound},
		{"wrapped", fmt.Errorf("solve: %w", errors.New(errors.ErrCodeInvalidInput, "x")), http.StatusBadRequest},
		{"plain", fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusFor(tt.err); got != tt.want {
				t.Errorf("StatusFor() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestBody(t *testing.T) {
	err := errors.Wrap(errors.ErrCodeInvalidTranscript, &hanoi.IllegalPlacementError{Disk: 2, Onto: 0}, "move 3")
	got := Body(err)
	if got.Code != errors.ErrCodeInvalidTranscript {
		t.Errorf("Code = %s", got.Code)
	}
	if want := "move 3: disk 2 is bigger than disk 0"; got.Message != want {
		t.Errorf("Message = %q, want %q", got.Message, want)
	}
}

func TestBodyHidesInternalErrors(t *testing.T) {
	got := Body(fmt.Errorf("dial tcp 10.0.0.1:6379: refused"))
	if got.Code != errors.ErrCodeInternal || got.Message != "internal server error" {
		t.Errorf("Body() = %+v", got)
	}
}

func TestBodyDropsUncodedCause(t *testing.T) {
	_, err := errors.ParseDiskCount("abc")
	if got := Body(err).Message; got != "invalid disk amount: abc" {
		t.Errorf("Message = %q", got)
	}
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	if err := WriteError(rec, errors.New(errors.ErrCodeInvalidDiskCount, "too many")); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	var body ErrorBody
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.Code != errors.ErrCodeInvalidDiskCount || body.Message != "too many" {
		t.Errorf("body = %+v", body)
	}
}
