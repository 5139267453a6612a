// internal/engine/listeners.go
package engine

import (
	"log/slog"

	"go-anatomy-viewer/internal/event"
)

// callbackCell is the single place the selection hook lives, so it can be
// swapped while listeners stay registered.
type callbackCell struct {
	callbacks Callbacks
}

func (c *callbackCell) set(cb Callbacks) {
	c.callbacks = cb
}

func (c *callbackCell) selectBodyPart(label string) {
	if fn := c.callbacks.OnSelectBodyPart; fn != nil {
		fn(label)
	}
}

// selectionListener forwards BodyPartSelected from the scene bus to the
// embedding application.
type selectionListener struct {
	cell   *callbackCell
	logger *slog.Logger
}

func (l *selectionListener) OnEvent(e event.Event) {
	label, ok := e.Data.(string)
	if !ok {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			l.logger.Error("selection callback panicked", "label", label, "panic", r)
		}
	}()
	l.cell.selectBodyPart(label)
}

// inputListener applies surface input to the camera and the hover machine.
type inputListener struct {
	engine *Engine

	// last pointer position in surface pixels
	pointer    event.Pointer
	hasPointer bool
}

var inputEvents = []event.EventType{
	event.PointerMoved,
	event.PointerClicked,
	event.PointerDragged,
	event.PointerLeft,
	event.WheelScrolled,
	event.SurfaceResized,
}

func (e *Engine) subscribeInput() {
	l := &inputListener{engine: e}
	for _, t := range inputEvents {
		e.subscribe(e.surface.Events(), t, l)
	}
}

func (l *inputListener) OnEvent(ev event.Event) {
	e := l.engine
	if e.torn {
		return
	}
	ctrl := e.controller
	switch ev.Type {
	case event.PointerMoved:
		if p, ok := ev.Data.(event.Pointer); ok {
			l.pointer, l.hasPointer = p, true
			vp := ctrl.Viewport()
			e.machine.PointerMove(vp.ToNDC(p.X, p.Y), ctrl.Camera(), vp)
		}
	case event.PointerClicked:
		if p, ok := ev.Data.(event.Pointer); ok {
			if label, hit := e.machine.Click(ctrl.Viewport().ToNDC(p.X, p.Y), ctrl.Camera()); hit {
				e.logger.Debug("body part selected", "label", label)
			}
		}
	case event.PointerDragged:
		if d, ok := ev.Data.(event.Drag); ok {
			ctrl.Rotate(d.DX, d.DY)
		}
	case event.PointerLeft:
		l.hasPointer = false
		e.machine.Leave()
	case event.WheelScrolled:
		if delta, ok := ev.Data.(float32); ok {
			ctrl.Zoom(delta)
		}
	case event.SurfaceResized:
		if s, ok := ev.Data.(event.Size); ok {
			ctrl.Resize(s.Width, s.Height)
			// the pointer keeps its pixel position, so its NDC changes
			if l.hasPointer {
				vp := ctrl.Viewport()
				e.machine.PointerMove(vp.ToNDC(l.pointer.X, l.pointer.Y), ctrl.Camera(), vp)
			}
			e.logger.Debug("surface resized", "width", s.Width, "height", s.Height)
		}
	}
}
