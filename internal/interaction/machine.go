// internal/interaction/machine.go
package interaction

import (
	"go-anatomy-viewer/internal/camera"
	"go-anatomy-viewer/internal/event"
	"go-anatomy-viewer/internal/hotspot"
	"go-anatomy-viewer/internal/picking"
	"go-anatomy-viewer/internal/ui"

	"github.com/go-gl/mathgl/mgl32"
)

// Cursor is the pointer shape the host should show.
type Cursor int

const (
	CursorDefault Cursor = iota
	CursorPointer
)

// Machine tracks which hotspot is under the pointer and turns clicks into
// selection events. Selection is not a state: the external UI keeps it.
type Machine struct {
	registry   *hotspot.Registry
	tooltip    *ui.Tooltip
	bus        *event.Dispatcher
	radius   float32

	current State

	// last pointer position in NDC; hover is recomputed from it when the
	// camera moves under a still pointer
	pointer    mgl32.Vec2
	hasPointer bool
}

// NewMachine starts in the idle state.
func NewMachine(registry *hotspot.Registry, tooltip *ui.Tooltip, bus *event.Dispatcher, radius float32) *Machine {
	m := &Machine{
		registry: registry,
		tooltip:  tooltip,
		bus:      bus,
		radius:   radius,
	}
	m.setState(idleState{})
	return m
}

func (m *Machine) setState(newState State) {
	if m.current != nil {
		m.current.Exit()
	}
	m.current = newState
	if m.current != nil {
		m.current.Enter()
	}
}

// PointerMove re-runs the hit test at ndc and moves between idle and
// hovering when the result changes. While the same hotspot stays hovered
// the tooltip follows it.
func (m *Machine) PointerMove(ndc mgl32.Vec2, cam camera.Camera, vp camera.Viewport) {
	m.pointer, m.hasPointer = ndc, true
	h, hit := picking.HitTest(ndc, cam, m.registry.All(), m.radius)
	cur, hovering := m.current.Hovered()

	switch {
	case !hit && !hovering:
		return
	case !hit:
		m.setState(idleState{})
	case hovering && cur == h:
		m.anchor(cam, vp)
	default:
		m.setState(&hoverState{m: m, handle: h, cam: cam, vp: vp})
	}
}

// Click hit-tests at ndc and, on a hit, dispatches BodyPartSelected with the
// hotspot label. A miss does nothing.
func (m *Machine) Click(ndc mgl32.Vec2, cam camera.Camera) (string, bool) {
	h, hit := picking.HitTest(ndc, cam, m.registry.All(), m.radius)
	if !hit {
		return "", false
	}
	label := m.registry.Get(h).Label
	m.bus.Dispatch(event.Event{Type: event.BodyPartSelected, Data: label})
	return label, true
}

// Leave drops any hover, as when the pointer leaves the surface.
func (m *Machine) Leave() {
	m.hasPointer = false
	if _, hovering := m.current.Hovered(); hovering {
		m.setState(idleState{})
	}
}

// Refresh re-runs the hit test at the last pointer position against the
// given camera, for frames where the camera moved without pointer input.
// Without a pointer on the surface it does nothing.
func (m *Machine) Refresh(cam camera.Camera, vp camera.Viewport) {
	if m.hasPointer {
		m.PointerMove(m.pointer, cam, vp)
	}
}

func (m *Machine) anchor(cam camera.Camera, vp camera.Viewport) {
	hs, ok := m.current.(*hoverState)
	if !ok {
		return
	}
	hs.cam, hs.vp = cam, vp
	m.showTooltip(m.registry.Get(hs.handle), cam, vp)
}

// Hovered returns the hovered hotspot, if any.
func (m *Machine) Hovered() (hotspot.Handle, bool) {
	return m.current.Hovered()
}

// Cursor is the pointer hint for the current state.
func (m *Machine) Cursor() Cursor {
	if _, hovering := m.current.Hovered(); hovering {
		return CursorPointer
	}
	return CursorDefault
}

// Reset returns to idle without a fade and restores the hotspot state.
func (m *Machine) Reset() {
	m.hasPointer = false
	m.setState(idleState{})
	m.tooltip.Reset()
}
