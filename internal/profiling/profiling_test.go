package profiling

import (
	"testing"
	"time"
)

func seed(values map[string]time.Duration) {
	ResetFrame()
	mu.Lock()
	for k, v := range values {
		frameTotals[k] = v
	}
	mu.Unlock()
}

func TestTrackAccumulates(t *testing.T) {
	ResetFrame()
	stop := Track("a")
	time.Sleep(time.Millisecond)
	stop()
	Track("a")()

	ss := Snapshot()
	if ss["a"] < time.Millisecond {
		t.Errorf("Expected at least 1ms tracked, got %v", ss["a"])
	}

	ResetFrame()
	if len(Snapshot()) != 0 {
		t.Errorf("Expected empty snapshot after reset")
	}
}

func TestTopOrdersLargestFirst(t *testing.T) {
	seed(map[string]time.Duration{
		"render": 4 * time.Millisecond,
		"update": time.Millisecond,
		"poll":   2 * time.Millisecond,
	})

	top := Top(2)
	if len(top) != 2 {
		t.Fatalf("Expected 2 buckets, got %d", len(top))
	}
	if top[0].Name != "render" || top[1].Name != "poll" {
		t.Errorf("Expected render, poll; got %s, %s", top[0].Name, top[1].Name)
	}
	if len(Top(10)) != 3 {
		t.Errorf("Expected Top to cap at bucket count")
	}
	if len(Top(-1)) != 0 {
		t.Errorf("Expected no buckets for negative n")
	}
}

func TestTopN(t *testing.T) {
	seed(map[string]time.Duration{
		"renderer.Render": 4200 * time.Microsecond,
		"game.update":     3 * time.Millisecond,
	})

	got := TopN(2)
	want := "renderer.Render:4.2ms, game.update:3ms"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestFormatMs(t *testing.T) {
	cases := map[time.Duration]string{
		0:                       "0ms",
		1500 * time.Microsecond: "1.5ms",
		16 * time.Millisecond:   "16ms",
	}
	for d, want := range cases {
		if got := FormatMs(d); got != want {
			t.Errorf("FormatMs(%v): expected %q, got %q", d, want, got)
		}
	}
}

func TestLogValue(t *testing.T) {
	v := LogValue([]Bucket{{Name: "render", Duration: time.Millisecond}})
	attrs := v.Group()
	if len(attrs) != 1 || attrs[0].Key != "render" || attrs[0].Value.Duration() != time.Millisecond {
		t.Errorf("Expected one render=1ms attribute, got %v", attrs)
	}
}
