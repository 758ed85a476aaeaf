package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const spinnerInterval = 80 * time.Millisecond

// Spinner animates a status line on w while a slow step runs, such as a
// Graphviz render. It shows the time elapsed so far and stops on its own
// when its context ends.
type Spinner struct {
	ctx     context.Context
	w       io.Writer
	message string

	stop     chan struct{}
	finished chan struct{}
	once     sync.Once
	width    int // length of the last frame written
}

// newSpinner creates a spinner on w. Call Start to show it.
func newSpinner(ctx context.Context, w io.Writer, message string) *Spinner {
	return &Spinner{
		ctx:      ctx,
		w:        w,
		message:  message,
		stop:     make(chan struct{}),
		finished: make(chan struct{}),
	}
}

// Start begins the animation in a goroutine.
func (s *Spinner) Start() {
	go s.run(time.Now())
}

func (s *Spinner) run(start time.Time) {
	defer close(s.finished)
	defer s.clear()

	ticker := time.NewTicker(spinnerInterval)
	defer ticker.Stop()

	for i := 0; ; i++ {
		select {
		case <-s.ctx.Done():
			return
		case <-s.stop:
			return
		case <-ticker.C:
			elapsed := time.Since(start).Truncate(100 * time.Millisecond)
			line := fmt.Sprintf("%s %s %s", spinnerFrames[i%len(spinnerFrames)], s.message, elapsed)
			s.width = len(line)
			fmt.Fprintf(s.w, "\r%s %s %s",
				styleIconSpinner.Render(spinnerFrames[i%len(spinnerFrames)]),
				StyleDim.Render(s.message),
				StyleNumber.Render(elapsed.String()))
		}
	}
}

// clear blanks the status line. Only the spinner goroutine writes to it.
func (s *Spinner) clear() {
	if s.width > 0 {
		fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", s.width))
	}
}

// Stop ends the animation and waits until the line is cleared. Calling it
// more than once is safe; it must follow Start.
func (s *Spinner) Stop() {
	s.once.Do(func() { close(s.stop) })
	<-s.finished
}

// StopWithSuccess stops the spinner and prints a success line.
func (s *Spinner) StopWithSuccess(message string) {
	s.Stop()
	printSuccess(s.w, "%s", message)
}

// StopWithError stops the spinner and prints an error line.
func (s *Spinner) StopWithError(message string) {
	s.Stop()
	printError(s.w, "%s", message)
}

// Cancelled reports whether the spinner's context ended, as opposed to a
// regular Stop.
func (s *Spinner) Cancelled() bool {
	return s.ctx.Err() != nil
}
