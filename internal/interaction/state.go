// internal/interaction/state.go
package interaction

import (
	"go-anatomy-viewer/internal/camera"
	"go-anatomy-viewer/internal/event"
	"go-anatomy-viewer/internal/hotspot"
	"go-anatomy-viewer/internal/projection"
)

// State is one node of the hover machine.
type State interface {
	Enter()
	Exit()
	Hovered() (hotspot.Handle, bool)
}

// idleState: nothing under the pointer.
type idleState struct{}

func (idleState) Enter()                          {}
func (idleState) Exit()                           {}
func (idleState) Hovered() (hotspot.Handle, bool) { return -1, false }

// hoverState holds one hotspot enlarged with its tooltip shown.
type hoverState struct {
	m      *Machine
	handle hotspot.Handle
	cam    camera.Camera
	vp     camera.Viewport
}

func (s *hoverState) Enter() {
	h := s.m.registry.Get(s.handle)
	// scale follows from the state on the next pulse update
	s.m.registry.SetState(s.handle, hotspot.Hovered)
	s.m.showTooltip(h, s.cam, s.vp)
	s.m.bus.Dispatch(event.Event{Type: event.HotspotEntered, Data: h.Label})
}

func (s *hoverState) Exit() {
	h := s.m.registry.Get(s.handle)
	s.m.registry.SetState(s.handle, hotspot.Idle)
	s.m.tooltip.Hide()
	s.m.bus.Dispatch(event.Event{Type: event.HotspotLeft, Data: h.Label})
}

func (s *hoverState) Hovered() (hotspot.Handle, bool) { return s.handle, true }

// showTooltip anchors the tooltip at the projected hotspot using the same
// camera snapshot the hit test used.
func (m *Machine) showTooltip(h hotspot.Hotspot, cam camera.Camera, vp camera.Viewport) {
	x, y, ok := projection.Project(h.Position, cam, vp)
	if !ok {
		m.tooltip.Hide()
		return
	}
	m.tooltip.Show(h.Label, x, y)
}
