package overlay

import (
	"strings"
	"testing"
	"time"

	"blockworld/internal/camera"

	"github.com/go-gl/mathgl/mgl32"
)

func TestFrameStatsRollingAverage(t *testing.T) {
	f := NewFrameStats(3)
	if f.Average() != 0 || f.FPS() != 0 {
		t.Errorf("Expected zero stats when empty")
	}

	f.Add(10 * time.Millisecond)
	f.Add(20 * time.Millisecond)
	if f.Average() != 15*time.Millisecond {
		t.Errorf("Expected 15ms, got %v", f.Average())
	}

	f.Add(30 * time.Millisecond)
	f.Add(40 * time.Millisecond) // evicts 10ms
	if f.Average() != 30*time.Millisecond {
		t.Errorf("Expected 30ms, got %v", f.Average())
	}
}

func TestFrameStatsFPS(t *testing.T) {
	f := NewFrameStats(4)
	for range 4 {
		f.Add(time.Second / 50)
	}
	if fps := f.FPS(); fps < 49.9 || fps > 50.1 {
		t.Errorf("Expected 50 fps, got %v", fps)
	}
}

func TestLines(t *testing.T) {
	pose := camera.Pose{Position: mgl32.Vec3{1, 2, 3}, Heading: 45, Pitch: -10}
	lines := Lines(pose, 60, 16*time.Millisecond, true, "")
	if len(lines) != 4 {
		t.Fatalf("Expected 4 lines, got %d", len(lines))
	}
	if lines[0] != "FPS: 60 (16ms)" {
		t.Errorf("Expected fps line, got %q", lines[0])
	}
	if lines[1] != "Pos: 1.00, 2.00, 3.00" {
		t.Errorf("Expected position line, got %q", lines[1])
	}
	if lines[2] != "HPR: 45.0, -10.0, 0.0" {
		t.Errorf("Expected hpr line, got %q", lines[2])
	}
	if lines[3] != "Mouse: captured" {
		t.Errorf("Expected capture line, got %q", lines[3])
	}

	lines = Lines(pose, 60, 0, false, "renderer.Render:1ms")
	if len(lines) != 5 || !strings.HasPrefix(lines[4], "Top: ") {
		t.Errorf("Expected top bucket line, got %v", lines)
	}
	if lines[3] != "Mouse: released" {
		t.Errorf("Expected released, got %q", lines[3])
	}
}

func TestOverlayToggle(t *testing.T) {
	o := NewOverlay(false, 100, 100, nil)
	o.Toggle()
	if !o.Visible() {
		t.Errorf("Expected overlay visible after toggle")
	}
	o.Toggle()
	if o.Visible() {
		t.Errorf("Expected overlay hidden after second toggle")
	}
}
