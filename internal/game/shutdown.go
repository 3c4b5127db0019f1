package game

import (
	"log/slog"
	"sync"
	"time"
)

// closeRequester is the part of *glfw.Window a signal handler may touch.
type closeRequester interface {
	SetShouldClose(bool)
}

// Shutdown lets a signal handler on another goroutine stop the frame loop
// and wait for the main thread to finish cleanup.
type Shutdown struct {
	mu        sync.Mutex
	target    closeRequester
	requested bool
	wake      func()
	done      chan struct{}
	once      sync.Once
	timeout   time.Duration
}

// NewShutdown returns a Shutdown with no window attached. wake unblocks the
// event loop (glfw.PostEmptyEvent) and may be nil.
func NewShutdown(wake func(), timeout time.Duration) *Shutdown {
	return &Shutdown{
		wake:    wake,
		done:    make(chan struct{}),
		timeout: timeout,
	}
}

// Attach makes target the window Request closes. A request that arrived
// before Attach is applied immediately.
func (s *Shutdown) Attach(target closeRequester) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.target = target
	if s.requested {
		target.SetShouldClose(true)
	}
}

// Request asks the loop to stop and blocks until Finished or the timeout.
func (s *Shutdown) Request() {
	s.mu.Lock()
	s.requested = true
	if s.target != nil {
		slog.Info("shutdown requested")
		s.target.SetShouldClose(true)
		if s.wake != nil {
			s.wake()
		}
	}
	s.mu.Unlock()

	select {
	case <-s.done:
	case <-time.After(s.timeout):
		slog.Warn("shutdown timed out waiting for the frame loop", "timeout", s.timeout)
	}
}

// Detach stops Request from touching the window. Call before destroying it.
func (s *Shutdown) Detach() {
	s.mu.Lock()
	s.target = nil
	s.mu.Unlock()
}

// Finished releases any pending Request.
func (s *Shutdown) Finished() {
	s.once.Do(func() { close(s.done) })
}
