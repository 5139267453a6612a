// internal/animation/pulse.go
package animation

import (
	"math"

	"go-anatomy-viewer/internal/hotspot"
)

// Pulse drives the idle breathing of hotspot markers. It reads each
// hotspot's state once per tick and is the only writer of scale.
type Pulse struct {
	Registry   *hotspot.Registry
	Amplitude  float32
	Rate       float32 // radians per second
	HoverScale float32
}

// Scale returns the idle scale of the hotspot at index i at time elapsed.
// The index offsets the phase so markers do not pulse in unison.
func (p *Pulse) Scale(base float32, i int, elapsed float32) float32 {
	phase := float64(elapsed*p.Rate) + float64(i)
	return base + p.Amplitude*float32(math.Sin(phase))
}

func (p *Pulse) Update(_, elapsed float32) {
	for i, h := range p.Registry.All() {
		switch h.State {
		case hotspot.Hovered:
			p.Registry.SetScale(hotspot.Handle(i), p.HoverScale)
		default:
			p.Registry.SetScale(hotspot.Handle(i), p.Scale(h.BaseScale, i, elapsed))
		}
	}
}
