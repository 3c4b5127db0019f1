package game

import (
	"testing"
	"time"
)

func TestFPSLimiterDisabled(t *testing.T) {
	f := NewFPSLimiter(0)
	start := time.Now()
	for range 100 {
		f.Wait()
	}
	if time.Since(start) > 50*time.Millisecond {
		t.Errorf("Expected disabled limiter not to block, took %v", time.Since(start))
	}
}

func TestFPSLimiterPaces(t *testing.T) {
	f := NewFPSLimiter(100)
	start := time.Now()
	for range 5 {
		f.Wait()
	}
	if elapsed := time.Since(start); elapsed < 40*time.Millisecond {
		t.Errorf("Expected at least 40ms for 5 frames at 100fps, got %v", elapsed)
	}
}
