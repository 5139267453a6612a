// internal/hotspot/registry.go
package hotspot

import (
	"fmt"

	"go-anatomy-viewer/internal/config"
	"go-anatomy-viewer/internal/defs"

	"github.com/go-gl/mathgl/mgl32"
)

// Handle is a stable index into the registry.
type Handle int

// State decides which formula owns a hotspot's scale.
type State int

const (
	Idle    State = iota // scale follows the pulse animation
	Hovered              // scale is held at the hover constant
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Hovered:
		return "Hovered"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Hotspot is a labeled marker on the body surface.
type Hotspot struct {
	Label        string
	Position     mgl32.Vec3
	BaseScale    float32
	CurrentScale float32
	State        State
}

// Registry is the fixed, ordered set of hotspots for one scene.
// Hotspots cannot be added or removed after construction.
type Registry struct {
	hotspots []Hotspot
	byLabel  map[string]Handle
}

// NewRegistry builds a registry from definitions, in order.
func NewRegistry(hotspotDefs []defs.HotspotDefinition) (*Registry, error) {
	if err := defs.Validate(hotspotDefs); err != nil {
		return nil, fmt.Errorf("hotspot: %w", err)
	}
	r := &Registry{
		hotspots: make([]Hotspot, len(hotspotDefs)),
		byLabel:  make(map[string]Handle, len(hotspotDefs)),
	}
	for i, def := range hotspotDefs {
		r.hotspots[i] = Hotspot{
			Label:        def.Label,
			Position:     mgl32.Vec3(def.Position),
			BaseScale:    config.HotspotBase,
			CurrentScale: config.HotspotBase,
		}
		r.byLabel[def.Label] = Handle(i)
	}
	return r, nil
}

// All returns a copy of every hotspot in registry order; index i is Handle(i).
func (r *Registry) All() []Hotspot {
	return append([]Hotspot(nil), r.hotspots...)
}

// Len returns the number of hotspots.
func (r *Registry) Len() int {
	return len(r.hotspots)
}

// Valid reports whether h refers to a hotspot.
func (r *Registry) Valid(h Handle) bool {
	return h >= 0 && int(h) < len(r.hotspots)
}

// Get returns the hotspot for h. It panics on an invalid handle.
func (r *Registry) Get(h Handle) Hotspot {
	return r.hotspots[h]
}

// Lookup finds a hotspot by label.
func (r *Registry) Lookup(label string) (Handle, bool) {
	h, ok := r.byLabel[label]
	return h, ok
}

// SetScale sets the current scale of h. Invalid handles are ignored.
func (r *Registry) SetScale(h Handle, value float32) {
	if r.Valid(h) {
		r.hotspots[h].CurrentScale = value
	}
}

// SetState sets the interaction state of h. Invalid handles are ignored.
func (r *Registry) SetState(h Handle, s State) {
	if r.Valid(h) {
		r.hotspots[h].State = s
	}
}
