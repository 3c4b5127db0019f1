package game

import (
	"testing"
	"time"
)

type fakeWindow struct {
	shouldClose bool
}

func (f *fakeWindow) SetShouldClose(v bool) { f.shouldClose = v }

func TestShutdownRequestWaitsForFinish(t *testing.T) {
	w := &fakeWindow{}
	woke := false
	s := NewShutdown(func() { woke = true }, time.Second)
	s.Attach(w)

	returned := make(chan struct{})
	go func() {
		s.Request()
		close(returned)
	}()

	select {
	case <-returned:
		t.Fatalf("Expected Request to block until Finished")
	case <-time.After(20 * time.Millisecond):
	}

	s.Finished()
	select {
	case <-returned:
	case <-time.After(time.Second):
		t.Fatalf("Expected Request to return after Finished")
	}

	if !w.shouldClose || !woke {
		t.Errorf("Expected close request and wake, got close=%v wake=%v", w.shouldClose, woke)
	}
}

func TestShutdownAfterDetach(t *testing.T) {
	w := &fakeWindow{}
	s := NewShutdown(nil, time.Second)
	s.Attach(w)
	s.Detach()
	s.Finished()
	s.Finished()

	s.Request()
	if w.shouldClose {
		t.Errorf("Expected detached window not to be touched")
	}
}

func TestShutdownTimeout(t *testing.T) {
	s := NewShutdown(nil, 10*time.Millisecond)
	s.Attach(&fakeWindow{})
	start := time.Now()
	s.Request()
	if time.Since(start) < 10*time.Millisecond {
		t.Errorf("Expected Request to wait for the timeout")
	}
}

func TestShutdownRequestBeforeAttach(t *testing.T) {
	s := NewShutdown(nil, 10*time.Millisecond)
	s.Request()

	w := &fakeWindow{}
	s.Attach(w)
	if !w.shouldClose {
		t.Errorf("Expected early request to close the window on attach")
	}
}
