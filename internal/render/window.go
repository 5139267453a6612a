// internal/render/window.go
package render

import (
	"go-anatomy-viewer/internal/config"
	"go-anatomy-viewer/internal/event"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Window is the raylib window as an engine surface. Poll turns raylib's
// polled input into queued events once per frame.
type Window struct {
	events *event.Dispatcher

	last      rl.Vector2
	pressed   bool
	dragging  bool
	travel    float32
	onScreen  bool
	threshold float32
}

// OpenWindow creates the window and GL context.
func OpenWindow(settings config.Settings) *Window {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(settings.Width), int32(settings.Height), config.WindowTitle)
	rl.SetTargetFPS(int32(settings.TargetFPS))
	rl.EnableBackfaceCulling()
	return &Window{
		events:    event.NewDispatcher(),
		last:      rl.GetMousePosition(),
		threshold: config.ClickDragThreshold,
	}
}

// Size is the current drawable size.
func (w *Window) Size() (int, int) {
	return rl.GetScreenWidth(), rl.GetScreenHeight()
}

// Events is the input queue the engine drains.
func (w *Window) Events() *event.Dispatcher {
	return w.events
}

// ShouldClose reports a close request from the window system or Escape.
func (w *Window) ShouldClose() bool {
	return rl.WindowShouldClose()
}

// FrameTime is the length of the last frame in seconds.
func (w *Window) FrameTime() float32 {
	return rl.GetFrameTime()
}

// Poll posts this frame's input. A press that travels less than the click
// threshold before release is a click; longer travel orbits the camera.
func (w *Window) Poll() {
	if rl.IsWindowResized() {
		w.events.Post(event.Event{Type: event.SurfaceResized, Data: event.Size{Width: rl.GetScreenWidth(), Height: rl.GetScreenHeight()}})
	}

	on := rl.IsCursorOnScreen()
	if w.onScreen && !on {
		w.events.Post(event.Event{Type: event.PointerLeft})
	}
	w.onScreen = on

	pos := rl.GetMousePosition()
	if pos != w.last {
		dx, dy := pos.X-w.last.X, pos.Y-w.last.Y
		w.last = pos
		if on {
			w.events.Post(event.Event{Type: event.PointerMoved, Data: event.Pointer{X: pos.X, Y: pos.Y}})
		}
		if w.pressed {
			w.travel += rl.Vector2Length(rl.NewVector2(dx, dy))
			if w.travel > w.threshold {
				w.dragging = true
			}
			if w.dragging {
				w.events.Post(event.Event{Type: event.PointerDragged, Data: event.Drag{DX: dx, DY: dy}})
			}
		}
	}

	switch {
	case rl.IsMouseButtonPressed(rl.MouseLeftButton):
		w.pressed, w.dragging, w.travel = true, false, 0
	case rl.IsMouseButtonReleased(rl.MouseLeftButton):
		if w.pressed && !w.dragging {
			w.events.Post(event.Event{Type: event.PointerClicked, Data: event.Pointer{X: pos.X, Y: pos.Y}})
		}
		w.pressed, w.dragging = false, false
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		w.events.Post(event.Event{Type: event.WheelScrolled, Data: wheel})
	}
}

// SnapshotRequested reports an F12 press this frame.
func (w *Window) SnapshotRequested() bool {
	return rl.IsKeyPressed(rl.KeyF12)
}

// Close destroys the window. Call after the renderer is released.
func (w *Window) Close() {
	rl.CloseWindow()
}
