// internal/animation/driver.go
package animation

import "go-anatomy-viewer/internal/config"

// Updater is advanced once per tick with the tick length and total running time.
type Updater interface {
	Update(dt, elapsed float32)
}

// UpdaterFunc adapts a function to Updater.
type UpdaterFunc func(dt, elapsed float32)

func (f UpdaterFunc) Update(dt, elapsed float32) { f(dt, elapsed) }

// Driver is the frame loop body. The host calls Tick once per presented
// frame; after Stop every Tick is a no-op, so a host that keeps calling
// after teardown does no work on released state.
type Driver struct {
	updaters []Updater
	render   func()
	running  bool
	elapsed  float32
	frames   uint64
}

// NewDriver runs updaters in order and then render on every tick.
func NewDriver(render func(), updaters ...Updater) *Driver {
	return &Driver{updaters: updaters, render: render}
}

// Start arms the driver.
func (d *Driver) Start() {
	d.running = true
}

// Stop disarms the driver. It is safe to call more than once.
func (d *Driver) Stop() {
	d.running = false
}

// Running reports whether ticks do work.
func (d *Driver) Running() bool {
	return d.running
}

// Tick advances by dt seconds. Large gaps such as a dragged window are
// clamped to config.MaxDeltaTime. It returns false when stopped.
func (d *Driver) Tick(dt float32) bool {
	if !d.running {
		return false
	}
	if dt < 0 {
		dt = 0
	}
	if dt > config.MaxDeltaTime {
		dt = config.MaxDeltaTime
	}
	d.elapsed += dt
	d.frames++
	for _, u := range d.updaters {
		u.Update(dt, d.elapsed)
		if !d.running {
			return false
		}
	}
	if d.render != nil {
		d.render()
	}
	return true
}

// Elapsed is the total clamped time ticked so far.
func (d *Driver) Elapsed() float32 {
	return d.elapsed
}

// Frames is the number of ticks that did work.
func (d *Driver) Frames() uint64 {
	return d.frames
}
