package profiling

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"
)

// Per-frame CPU timing buckets. The frame loop resets them each tick and
// reports the largest ones when a frame runs long.

var (
	mu          sync.Mutex
	frameTotals = make(map[string]time.Duration)
)

// Track returns a stop function that adds the elapsed time to name.
// Usage: defer profiling.Track("renderer.Render")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		mu.Lock()
		frameTotals[name] += d
		mu.Unlock()
	}
}

// ResetFrame clears the totals. Call at the start of each frame.
func ResetFrame() {
	mu.Lock()
	clear(frameTotals)
	mu.Unlock()
}

// Snapshot returns a copy of the current totals.
func Snapshot() map[string]time.Duration {
	mu.Lock()
	defer mu.Unlock()
	return maps.Clone(frameTotals)
}

// Bucket is one named total.
type Bucket struct {
	Name     string
	Duration time.Duration
}

// Top returns the n largest buckets, largest first. Ties sort by name.
func Top(n int) []Bucket {
	ss := Snapshot()
	list := make([]Bucket, 0, len(ss))
	for k, v := range ss {
		list = append(list, Bucket{Name: k, Duration: v})
	}
	slices.SortFunc(list, func(a, b Bucket) int {
		if a.Duration != b.Duration {
			if a.Duration > b.Duration {
				return -1
			}
			return 1
		}
		return strings.Compare(a.Name, b.Name)
	})
	return list[:min(max(n, 0), len(list))]
}

// TopN formats the n largest buckets, e.g. "renderer.Render:4.2ms, game.update:0.1ms".
func TopN(n int) string {
	top := Top(n)
	parts := make([]string, 0, len(top))
	for _, b := range top {
		parts = append(parts, b.Name+":"+FormatMs(b.Duration))
	}
	return strings.Join(parts, ", ")
}

// FormatMs renders d in milliseconds with one decimal, dropping ".0".
func FormatMs(d time.Duration) string {
	s := fmt.Sprintf("%.1f", float64(d.Microseconds())/1000.0)
	return strings.TrimSuffix(s, ".0") + "ms"
}

// LogValue lets a bucket list be logged as a group of name=duration attributes.
func LogValue(buckets []Bucket) slog.Value {
	attrs := make([]slog.Attr, 0, len(buckets))
	for _, b := range buckets {
		attrs = append(attrs, slog.Duration(b.Name, b.Duration))
	}
	return slog.GroupValue(attrs...)
}
