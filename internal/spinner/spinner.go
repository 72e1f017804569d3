package spinner

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/javoire/githelper/internal/ui"
)

// Enabled controls whether spinners are displayed (disabled in verbose mode
// and when output is not a terminal)
var Enabled = true

// Spinner represents a loading spinner
type Spinner struct {
	message      string
	frames       []string
	interval     time.Duration
	writer       io.Writer
	stopChan     chan struct{}
	done         chan struct{}
	stopped      bool
	mu           sync.Mutex
	hideWhenDone bool
}

var defaultFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// New creates a new spinner writing to w with the given message
func New(w io.Writer, message string) *Spinner {
	return &Spinner{
		message:  message,
		frames:   defaultFrames,
		interval: 80 * time.Millisecond,
		writer:   w,
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// HideWhenDone sets whether to hide the spinner line when done
func (s *Spinner) HideWhenDone() *Spinner {
	s.hideWhenDone = true
	return s
}

// Start starts the spinner
func (s *Spinner) Start() *Spinner {
	if Enabled {
		go s.run()
	} else {
		close(s.done)
	}
	return s
}

// Stop stops the spinner and optionally shows a final message
func (s *Spinner) Stop(finalMessage string) {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	close(s.stopChan)
	s.mu.Unlock()

	<-s.done

	if Enabled {
		// Clear the line
		fmt.Fprint(s.writer, "\r\033[K")
	}

	if !s.hideWhenDone && finalMessage != "" {
		fmt.Fprintln(s.writer, finalMessage)
	}
}

func (s *Spinner) run() {
	defer close(s.done)
	frameIdx := 0
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.mu.Lock()
			frame := s.frames[frameIdx%len(s.frames)]
			fmt.Fprintf(s.writer, "\r%s %s", frame, s.message)
			s.mu.Unlock()
			frameIdx++
		}
	}
}

// Wrap runs a function with a spinner
func Wrap(w io.Writer, message string, fn func() error) error {
	if !Enabled {
		return fn()
	}
	sp := New(w, message).HideWhenDone().Start()
	err := fn()
	sp.Stop("")
	return err
}

// WrapWithSuccess runs a function with a spinner and shows a success message.
// Errors are returned to the caller, which prints git's diagnostic.
func WrapWithSuccess(w io.Writer, message, successMessage string, fn func() error) error {
	if !Enabled {
		// When disabled, print message and run
		fmt.Fprintln(w, message)
		err := fn()
		if err == nil {
			fmt.Fprintln(w, ui.Success(successMessage))
		}
		return err
	}
	sp := New(w, message).Start()
	err := fn()
	if err != nil {
		sp.Stop("")
		return err
	}
	sp.Stop(ui.Success(successMessage))
	return nil
}
