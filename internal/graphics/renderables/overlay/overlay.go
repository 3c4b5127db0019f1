// Package overlay draws a toggleable debug readout in the top-left corner.
package overlay

import (
	"fmt"
	"time"

	"blockworld/internal/camera"
	"blockworld/internal/graphics"
	renderer "blockworld/internal/graphics/renderer"
	"blockworld/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	fontPixels  = 16
	margin      = 10
	historySize = 60
	topBuckets  = 3
)

// FrameStats keeps a rolling window of frame times.
type FrameStats struct {
	history []time.Duration
	next    int
	total   time.Duration
}

func NewFrameStats(size int) *FrameStats {
	return &FrameStats{history: make([]time.Duration, 0, max(size, 1))}
}

func (f *FrameStats) Add(d time.Duration) {
	if len(f.history) < cap(f.history) {
		f.history = append(f.history, d)
		f.total += d
		return
	}
	f.total += d - f.history[f.next]
	f.history[f.next] = d
	f.next = (f.next + 1) % len(f.history)
}

// Average is the mean frame time in the window, 0 when empty.
func (f *FrameStats) Average() time.Duration {
	if len(f.history) == 0 {
		return 0
	}
	return f.total / time.Duration(len(f.history))
}

// FPS is derived from Average.
func (f *FrameStats) FPS() float64 {
	avg := f.Average()
	if avg <= 0 {
		return 0
	}
	return float64(time.Second) / float64(avg)
}

// Lines formats the readout.
func Lines(pose camera.Pose, fps float64, frame time.Duration, captured bool, top string) []string {
	mouse := "released"
	if captured {
		mouse = "captured"
	}
	lines := []string{
		fmt.Sprintf("FPS: %.0f (%s)", fps, profiling.FormatMs(frame)),
		fmt.Sprintf("Pos: %.2f, %.2f, %.2f", pose.Position.X(), pose.Position.Y(), pose.Position.Z()),
		fmt.Sprintf("HPR: %.1f, %.1f, %.1f", pose.Heading, pose.Pitch, pose.Roll),
		"Mouse: " + mouse,
	}
	if top != "" {
		lines = append(lines, "Top: "+top)
	}
	return lines
}

// Overlay is a renderable that is hidden until toggled.
type Overlay struct {
	visible  bool
	captured func() bool
	stats    *FrameStats
	atlas    *graphics.FontAtlas
	font     *graphics.FontRenderer
	width    int
	height   int
}

// NewOverlay creates the overlay. captured reports the mouse capture state.
func NewOverlay(visible bool, width, height int, captured func() bool) *Overlay {
	return &Overlay{
		visible:  visible,
		captured: captured,
		stats:    NewFrameStats(historySize),
		width:    width,
		height:   height,
	}
}

func (o *Overlay) Init() error {
	atlas, err := graphics.BakeFontAtlas(graphics.DefaultFont(), fontPixels)
	if err != nil {
		return fmt.Errorf("overlay font: %w", err)
	}
	atlas.Upload()
	o.atlas = atlas

	o.font, err = graphics.NewFontRenderer(atlas, o.width, o.height)
	if err != nil {
		atlas.Dispose()
		return err
	}
	return nil
}

func (o *Overlay) Toggle() {
	o.visible = !o.visible
}

func (o *Overlay) Visible() bool {
	return o.visible
}

func (o *Overlay) Render(ctx renderer.RenderContext) {
	o.stats.Add(time.Duration(ctx.DT * float64(time.Second)))
	if !o.visible {
		return
	}
	defer profiling.Track("renderer.renderOverlay")()

	captured := o.captured != nil && o.captured()
	lines := Lines(ctx.Pose, o.stats.FPS(), o.stats.Average(), captured, profiling.TopN(topBuckets))
	y := margin + o.font.LineHeight(1)
	o.font.RenderLines(lines, margin, y, 1, mgl32.Vec3{1, 1, 1})
}

func (o *Overlay) Dispose() {
	if o.font != nil {
		o.font.Dispose()
	}
	if o.atlas != nil {
		o.atlas.Dispose()
	}
}

func (o *Overlay) SetViewport(width, height int) {
	o.width, o.height = width, height
	if o.font != nil {
		o.font.SetViewport(width, height)
	}
}
