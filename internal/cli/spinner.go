package cli

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/briandowns/spinner"
)

// Spinner shows progress on a terminal and stops when its context is
// canceled. On a non-terminal writer it prints nothing.
type Spinner struct {
	spin   *spinner.Spinner
	w      io.Writer
	parent context.Context
	done   chan struct{}
	once   sync.Once
}

func newSpinner(ctx context.Context, w io.Writer, message string) *Spinner {
	return &Spinner{
		spin: spinner.New(spinner.CharSets[14], 80*time.Millisecond,
			spinner.WithWriter(w),
			spinner.WithSuffix(" "+StyleDim.Render(message)),
			spinner.WithColor("cyan"),
		),
		w:      w,
		parent: ctx,
		done:   make(chan struct{}),
	}
}

// Start begins the animation.
func (s *Spinner) Start() {
	s.spin.Start()
	go func() {
		select {
		case <-s.parent.Done():
			s.spin.Stop()
		case <-s.done:
		}
	}()
}

// Stop ends the animation and clears the line. It may be called more than
// once.
func (s *Spinner) Stop() {
	s.once.Do(func() {
		close(s.done)
		s.spin.Stop()
	})
}

// StopWithSuccess stops the spinner and prints a success line.
func (s *Spinner) StopWithSuccess(format string, args ...any) {
	s.Stop()
	printSuccess(s.w, format, args...)
}

// StopWithError stops the spinner and prints an error line.
func (s *Spinner) StopWithError(format string, args ...any) {
	s.Stop()
	printError(s.w, format, args...)
}

// Cancelled reports whether the spinner's context was canceled.
func (s *Spinner) Cancelled() bool {
	return s.parent.Err() != nil
}
