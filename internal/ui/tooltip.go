// internal/ui/tooltip.go
package ui

import (
	"go-anatomy-viewer/internal/config"
	"go-anatomy-viewer/internal/utils"
)

// Measurer reports the pixel size of a string in the tooltip font.
type Measurer interface {
	Measure(text string) (width, height float32)
}

// Rect is an axis-aligned screen rectangle.
type Rect struct {
	X, Y, Width, Height float32
}

// Tooltip is the floating label shown next to a hovered hotspot.
// X, Y is the anchor in surface pixels; the box is drawn centered above it.
type Tooltip struct {
	Text    string
	X, Y    float32
	Visible bool

	opacity float32
	target  float32
}

// Show makes the tooltip visible at the anchor with the given text.
// Opacity fades in over config.TooltipFade seconds.
func (t *Tooltip) Show(text string, x, y float32) {
	t.Text = text
	t.X, t.Y = x, y
	t.Visible = true
	t.target = 1
}

// Hide starts the fade out. Visible drops immediately so no input or
// layout treats a fading tooltip as present.
func (t *Tooltip) Hide() {
	t.Visible = false
	t.target = 0
}

// Reset hides the tooltip with no fade.
func (t *Tooltip) Reset() {
	*t = Tooltip{}
}

// Update advances the fade by dt seconds.
func (t *Tooltip) Update(dt float32) {
	if t.opacity == t.target {
		return
	}
	step := float32(1)
	if config.TooltipFade > 0 {
		step = dt / config.TooltipFade
	}
	t.opacity = utils.Approach(t.opacity, t.target, step)
}

// Opacity is the current alpha in [0, 1].
func (t *Tooltip) Opacity() float32 {
	return t.opacity
}

// Drawn reports whether any part of the tooltip is on screen.
func (t *Tooltip) Drawn() bool {
	return t.opacity > 0 && t.Text != ""
}

// Bounds returns the box around the text. The box is centered on the
// anchor horizontally and raised so its bottom clears the hotspot.
func (t *Tooltip) Bounds(m Measurer) Rect {
	w, h := m.Measure(t.Text)
	w += 2 * config.TooltipPaddingX
	h += 2 * config.TooltipPaddingY
	return Rect{
		X:      t.X - w/2,
		Y:      t.Y - h*config.TooltipLift,
		Width:  w,
		Height: h,
	}
}
