// internal/engine/engine.go
package engine

import (
	"context"
	"fmt"
	"log/slog"

	"go-anatomy-viewer/internal/animation"
	"go-anatomy-viewer/internal/assets"
	"go-anatomy-viewer/internal/camera"
	"go-anatomy-viewer/internal/config"
	"go-anatomy-viewer/internal/defs"
	"go-anatomy-viewer/internal/event"
	"go-anatomy-viewer/internal/hotspot"
	"go-anatomy-viewer/internal/interaction"
	"go-anatomy-viewer/internal/ui"

	"github.com/go-gl/mathgl/mgl32"
)

// Surface is the host drawing area. Size is read once at start; later
// changes arrive as SurfaceResized events. The host posts input events to
// the dispatcher and the engine drains it at the start of every tick.
type Surface interface {
	Size() (width, height int)
	Events() *event.Dispatcher
}

// Renderer draws frames and owns every GPU-side resource.
type Renderer interface {
	AttachModel(asset *assets.Asset, transform ModelTransform) error
	Render(frame Frame)
	Release()
}

// ModelTransform places the body mesh in the scene.
type ModelTransform struct {
	Scale    float32
	Position mgl32.Vec3
}

// Frame is everything the renderer needs for one picture.
type Frame struct {
	Camera   camera.Camera
	Viewport camera.Viewport
	Hotspots []hotspot.Hotspot
	Radius   float32
	Tooltip  ui.Tooltip
	Cursor   interaction.Cursor
}

// Callbacks are the outbound hooks to the embedding application.
type Callbacks struct {
	// OnSelectBodyPart runs synchronously inside event handling when a click
	// hits a hotspot. It must not block.
	OnSelectBodyPart func(label string)
}

// Options configure Start. Zero values pick defaults.
type Options struct {
	Settings config.Settings
	Hotspots []defs.HotspotDefinition // nil: load Settings.HotspotsFile or the built-in map
	Logger   *slog.Logger
	Fetcher  assets.Fetcher
	Context  context.Context
}

// Engine is one running hotspot scene.
type Engine struct {
	surface  Surface
	renderer Renderer
	logger   *slog.Logger
	settings config.Settings

	controller *camera.Controller
	registry   *hotspot.Registry
	tooltip    *ui.Tooltip
	machine    *interaction.Machine
	pulse      *animation.Pulse
	driver     *animation.Driver
	loader     *assets.Loader
	asset      *assets.Asset
	bus        *event.Dispatcher

	callbacks *callbackCell
	subs      []subscription
	torn      bool
}

type subscription struct {
	dispatcher *event.Dispatcher
	eventType  event.EventType
	listener   event.Listener
}

// Start builds the scene on surface, subscribes to its input events, starts
// the body mesh load and arms the frame driver.
func Start(surface Surface, renderer Renderer, callbacks Callbacks, opts Options) (*Engine, error) {
	settings := opts.Settings
	settings.Resolve(config.Flags{})

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	hotspotDefs := opts.Hotspots
	if hotspotDefs == nil {
		var err error
		hotspotDefs, err = defs.LoadHotspotDefinitions(settings.HotspotsFile)
		if err != nil {
			return nil, fmt.Errorf("engine: %w", err)
		}
	}
	registry, err := hotspot.NewRegistry(hotspotDefs)
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}

	width, height := surface.Size()
	e := &Engine{
		surface:    surface,
		renderer:   renderer,
		logger:     logger,
		settings:   settings,
		controller: camera.NewController(settings.Camera, width, height, settings.TargetFPS),
		registry:   registry,
		tooltip:    &ui.Tooltip{},
		loader:     assets.NewLoader(opts.Fetcher, logger),
		bus:        event.NewDispatcher(),
		callbacks:  &callbackCell{callbacks: callbacks},
	}
	e.machine = interaction.NewMachine(registry, e.tooltip, e.bus, settings.Hotspot.Radius)

	e.pulse = &animation.Pulse{
		Registry:   registry,
		Amplitude:  settings.Hotspot.PulseAmplitude,
		Rate:       settings.Hotspot.PulseRate,
		HoverScale: settings.Hotspot.HoverScale,
	}
	e.driver = animation.NewDriver(e.render,
		animation.UpdaterFunc(e.updateCamera),
		e.pulse,
		animation.UpdaterFunc(func(dt, _ float32) { e.tooltip.Update(dt) }),
	)

	e.subscribeInput()
	e.subscribe(e.bus, event.BodyPartSelected, &selectionListener{cell: e.callbacks, logger: logger})

	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	if err := e.loader.Load(ctx, settings.AssetPath); err != nil {
		e.Teardown()
		return nil, fmt.Errorf("engine: %w", err)
	}
	e.driver.Start()
	logger.Info("engine started", "hotspots", registry.Len(), "asset", settings.AssetPath, "width", width, "height", height)
	return e, nil
}

func (e *Engine) subscribe(d *event.Dispatcher, t event.EventType, l event.Listener) {
	d.Subscribe(t, l)
	e.subs = append(e.subs, subscription{dispatcher: d, eventType: t, listener: l})
}

// Tick runs one frame: queued input, a finished asset load, then the
// driver. It returns false once the engine is torn down.
func (e *Engine) Tick(dt float32) bool {
	if e.torn {
		return false
	}
	e.surface.Events().Flush()
	if e.torn {
		return false
	}
	e.pollAsset()
	return e.driver.Tick(dt)
}

func (e *Engine) pollAsset() {
	r, ok := e.loader.Poll()
	if !ok {
		return
	}
	if r.Err != nil {
		// the mesh is decoration: hotspots and camera keep working
		e.logger.Warn("body mesh unavailable", "uri", e.settings.AssetPath, "err", r.Err)
		e.bus.Dispatch(event.Event{Type: event.AssetFailed, Data: r.Err})
		return
	}
	transform := ModelTransform{Scale: e.settings.Model.Scale, Position: mgl32.Vec3(e.settings.Model.Position)}
	if err := e.renderer.AttachModel(r.Asset, transform); err != nil {
		r.Asset.Release()
		e.logger.Warn("body mesh rejected by renderer", "uri", r.Asset.URI, "err", err)
		e.bus.Dispatch(event.Event{Type: event.AssetFailed, Data: err})
		return
	}
	e.asset = r.Asset
	nodes, meshes, _ := r.Asset.Counts()
	e.logger.Info("body mesh loaded", "uri", r.Asset.URI, "nodes", nodes, "meshes", meshes)
	e.bus.Dispatch(event.Event{Type: event.AssetLoaded, Data: r.Asset.URI})
}

func (e *Engine) updateCamera(_, _ float32) {
	if e.controller.Settled() {
		return
	}
	e.controller.Update()
	e.machine.Refresh(e.controller.Camera(), e.controller.Viewport())
}

func (e *Engine) render() {
	e.renderer.Render(e.Frame())
}

// Frame snapshots the current scene.
func (e *Engine) Frame() Frame {
	return Frame{
		Camera:   e.controller.Camera(),
		Viewport: e.controller.Viewport(),
		Hotspots: e.registry.All(),
		Radius:   e.settings.Hotspot.Radius,
		Tooltip:  *e.tooltip,
		Cursor:   e.machine.Cursor(),
	}
}

// SetCallbacks swaps the outbound hooks without touching any listener.
func (e *Engine) SetCallbacks(c Callbacks) {
	e.callbacks.set(c)
}

// Events is the scene bus: hover, selection and asset events.
func (e *Engine) Events() *event.Dispatcher {
	return e.bus
}

// Registry exposes the hotspot set.
func (e *Engine) Registry() *hotspot.Registry {
	return e.registry
}

// Camera returns the camera controller.
func (e *Engine) Camera() *camera.Controller {
	return e.controller
}

// Interaction returns the hover machine.
func (e *Engine) Interaction() *interaction.Machine {
	return e.machine
}

// Asset returns the attached body mesh, or nil before the load completes.
func (e *Engine) Asset() *assets.Asset {
	return e.asset
}

// Running reports whether the engine still ticks.
func (e *Engine) Running() bool {
	return !e.torn && e.driver.Running()
}

// Teardown removes every listener, stops the driver, cancels a pending load
// and releases the mesh and renderer. It may be called at any time, more
// than once, including before the load finished.
func (e *Engine) Teardown() {
	if e.torn {
		return
	}
	e.torn = true

	e.machine.Reset()
	for _, s := range e.subs {
		s.dispatcher.Unsubscribe(s.eventType, s.listener)
	}
	e.subs = nil
	e.driver.Stop()
	e.loader.Close()
	if e.asset != nil {
		e.asset.Release()
		e.asset = nil
	}
	e.renderer.Release()
	e.logger.Info("engine stopped")
}
