package engine

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"go-anatomy-viewer/internal/assets"
	"go-anatomy-viewer/internal/config"
	"go-anatomy-viewer/internal/event"
	"go-anatomy-viewer/internal/hotspot"
	"go-anatomy-viewer/internal/interaction"
	"go-anatomy-viewer/internal/picking"
	"go-anatomy-viewer/internal/projection"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSurface struct {
	w, h   int
	events *event.Dispatcher
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{w: 800, h: 400, events: event.NewDispatcher()}
}

func (s *fakeSurface) Size() (int, int)          { return s.w, s.h }
func (s *fakeSurface) Events() *event.Dispatcher { return s.events }

type fakeRenderer struct {
	attached   []*assets.Asset
	transforms []ModelTransform
	frames     []Frame
	released   int
	reject     error
}

func (r *fakeRenderer) AttachModel(a *assets.Asset, t ModelTransform) error {
	if r.reject != nil {
		return r.reject
	}
	r.attached = append(r.attached, a)
	r.transforms = append(r.transforms, t)
	return nil
}

func (r *fakeRenderer) Render(f Frame) { r.frames = append(r.frames, f) }
func (r *fakeRenderer) Release()       { r.released++ }

type recorder struct{ events []event.Event }

func (r *recorder) OnEvent(e event.Event) { r.events = append(r.events, e) }

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

func missingFetcher() assets.Fetcher {
	return assets.FetcherFunc(func(context.Context, string) (string, func(), error) {
		return "", nil, &assets.LoadError{Kind: assets.ErrMissing, URI: "body.glb"}
	})
}

func start(t *testing.T, f assets.Fetcher, cb Callbacks) (*Engine, *fakeSurface, *fakeRenderer) {
	t.Helper()
	s := newFakeSurface()
	r := &fakeRenderer{}
	e, err := Start(s, r, cb, Options{Logger: quiet, Fetcher: f})
	require.NoError(t, err)
	t.Cleanup(e.Teardown)
	return e, s, r
}

// pixelOf projects a hotspot with the engine's current camera.
func pixelOf(t *testing.T, e *Engine, label string) event.Pointer {
	t.Helper()
	h, ok := e.Registry().Lookup(label)
	require.True(t, ok)
	x, y, ok := projection.Project(e.Registry().Get(h).Position, e.Camera().Camera(), e.Camera().Viewport())
	require.True(t, ok)
	return event.Pointer{X: x, Y: y}
}

func TestTeardownRightAfterStart(t *testing.T) {
	unblock := make(chan struct{})
	slow := assets.FetcherFunc(func(ctx context.Context, uri string) (string, func(), error) {
		<-unblock
		return "", nil, errors.New("too late")
	})

	s := newFakeSurface()
	r := &fakeRenderer{}
	e, err := Start(s, r, Callbacks{}, Options{Logger: quiet, Fetcher: slow})
	require.NoError(t, err)
	assert.NotZero(t, s.Events().ListenerCount())

	assert.NotPanics(t, e.Teardown)
	assert.Zero(t, s.Events().ListenerCount())
	assert.Zero(t, e.Events().ListenerCount())
	assert.Equal(t, 1, r.released)
	assert.False(t, e.Running())
	assert.False(t, e.Tick(0.016))

	// the load finishes after teardown and must not reach the renderer
	close(unblock)
	e.loader.Wait()
	assert.False(t, e.Tick(0.016))
	assert.Empty(t, r.attached)
	assert.Nil(t, e.Asset())

	e.Teardown()
	assert.Equal(t, 1, r.released, "teardown is idempotent")
}

func TestClickSelectsBodyPart(t *testing.T) {
	var got []string
	e, s, _ := start(t, missingFetcher(), Callbacks{OnSelectBodyPart: func(label string) { got = append(got, label) }})

	s.Events().Post(event.Event{Type: event.PointerClicked, Data: event.Pointer{X: 5, Y: 5}})
	require.True(t, e.Tick(0.016))
	assert.Empty(t, got, "a miss never calls back")

	s.Events().Post(event.Event{Type: event.PointerClicked, Data: pixelOf(t, e, "Đầu & Não")})
	require.True(t, e.Tick(0.016))
	assert.Equal(t, []string{"Đầu & Não"}, got)
}

func TestSetCallbacksSwapsTarget(t *testing.T) {
	var first, second int
	e, s, _ := start(t, missingFetcher(), Callbacks{OnSelectBodyPart: func(string) { first++ }})
	listeners := s.Events().ListenerCount()

	click := event.Event{Type: event.PointerClicked, Data: pixelOf(t, e, "Mắt")}
	s.Events().Post(click)
	e.Tick(0.016)

	e.SetCallbacks(Callbacks{OnSelectBodyPart: func(string) { second++ }})
	assert.Equal(t, listeners, s.Events().ListenerCount(), "no re-registration")
	s.Events().Post(click)
	e.Tick(0.016)

	e.SetCallbacks(Callbacks{})
	s.Events().Post(click)
	e.Tick(0.016)

	assert.Equal(t, 1, first)
	assert.Equal(t, 1, second)
}

func TestCallbackPanicIsContained(t *testing.T) {
	e, s, _ := start(t, missingFetcher(), Callbacks{OnSelectBodyPart: func(string) { panic("ui bug") }})
	s.Events().Post(event.Event{Type: event.PointerClicked, Data: pixelOf(t, e, "Tay trái")})
	assert.NotPanics(t, func() { e.Tick(0.016) })
	assert.True(t, e.Running())
}

func TestHoverDrivesScaleAndCursor(t *testing.T) {
	e, s, r := start(t, missingFetcher(), Callbacks{})
	h, _ := e.Registry().Lookup("Tay phải")

	s.Events().Post(event.Event{Type: event.PointerMoved, Data: pixelOf(t, e, "Tay phải")})
	require.True(t, e.Tick(0.016))
	assert.Equal(t, hotspot.Hovered, e.Registry().Get(h).State)
	assert.Equal(t, float32(config.HoverScale), e.Registry().Get(h).CurrentScale)

	last := r.frames[len(r.frames)-1]
	assert.Equal(t, interaction.CursorPointer, last.Cursor)
	assert.True(t, last.Tooltip.Visible)
	assert.Equal(t, "Tay phải", last.Tooltip.Text)
	assert.Len(t, last.Hotspots, e.Registry().Len())

	s.Events().Post(event.Event{Type: event.PointerLeft})
	require.True(t, e.Tick(0.016))
	assert.Equal(t, hotspot.Idle, e.Registry().Get(h).State)
	hs := e.Registry().Get(h)
	assert.InDelta(t, e.pulse.Scale(hs.BaseScale, int(h), e.driver.Elapsed()), hs.CurrentScale, 1e-6)
	assert.Equal(t, interaction.CursorDefault, r.frames[len(r.frames)-1].Cursor)
}

func TestHoverFollowsCameraUnderStillPointer(t *testing.T) {
	e, s, r := start(t, missingFetcher(), Callbacks{})
	right, _ := e.Registry().Lookup("Tay phải")
	p := pixelOf(t, e, "Tay phải")

	s.Events().Post(event.Event{Type: event.PointerMoved, Data: p})
	require.True(t, e.Tick(0.016))
	got, ok := e.Interaction().Hovered()
	require.True(t, ok)
	require.Equal(t, right, got)

	s.Events().Post(event.Event{Type: event.PointerDragged, Data: event.Drag{DX: 200}})
	for i := 0; i < 600 && !e.Camera().Settled(); i++ {
		require.True(t, e.Tick(0.016))
	}
	require.True(t, e.Camera().Settled())

	vp := e.Camera().Viewport()
	want, wantOK := picking.HitTest(vp.ToNDC(p.X, p.Y), e.Camera().Camera(), e.Registry().All(), config.HotspotRadius)
	got, ok = e.Interaction().Hovered()
	assert.Equal(t, wantOK, ok)
	assert.False(t, ok && got == right, "the orbit moved the hotspot away from the pointer")

	last := r.frames[len(r.frames)-1]
	if wantOK {
		assert.Equal(t, want, got)
		assert.Equal(t, e.Registry().Get(want).Label, last.Tooltip.Text)
		assert.Equal(t, hotspot.Hovered, e.Registry().Get(want).State)
	} else {
		assert.False(t, last.Tooltip.Visible)
	}
	assert.Equal(t, hotspot.Idle, e.Registry().Get(right).State)
}

func TestResizeScalesProjection(t *testing.T) {
	e, s, _ := start(t, missingFetcher(), Callbacks{})
	before := pixelOf(t, e, "Chân trái")

	s.Events().Post(event.Event{Type: event.SurfaceResized, Data: event.Size{Width: 1600, Height: 800}})
	e.Tick(0.016)

	after := pixelOf(t, e, "Chân trái")
	assert.InDelta(t, 2*before.X, after.X, 1e-2)
	assert.InDelta(t, 2*before.Y, after.Y, 1e-2)
	assert.Equal(t, float32(2), e.Camera().Camera().Aspect)
}

func TestDragAndWheelMoveCamera(t *testing.T) {
	e, s, _ := start(t, missingFetcher(), Callbacks{})
	pos := e.Camera().Camera().Position
	dist := e.Camera().Distance()

	s.Events().Post(event.Event{Type: event.PointerDragged, Data: event.Drag{DX: 40}})
	s.Events().Post(event.Event{Type: event.WheelScrolled, Data: float32(2)})
	e.Tick(0.016)

	assert.Less(t, e.Camera().Distance(), dist)
	assert.NotEqual(t, pos, e.Camera().Camera().Position)
}

func TestAssetFailureKeepsSceneInteractive(t *testing.T) {
	var selected []string
	e, s, r := start(t, missingFetcher(), Callbacks{OnSelectBodyPart: func(l string) { selected = append(selected, l) }})
	rec := &recorder{}
	e.Events().Subscribe(event.AssetFailed, rec)

	e.loader.Wait()
	require.True(t, e.Tick(0.016))
	require.Len(t, rec.events, 1)
	assert.ErrorIs(t, rec.events[0].Data.(error), assets.ErrMissing)
	assert.Empty(t, r.attached)

	s.Events().Post(event.Event{Type: event.PointerClicked, Data: pixelOf(t, e, "Gan – Mật")})
	e.Tick(0.016)
	assert.Equal(t, []string{"Gan – Mật"}, selected)
	e.Events().Unsubscribe(event.AssetFailed, rec)
}

const bodyGLTF = `{"asset":{"version":"2.0"},"scene":0,"scenes":[{"nodes":[0]}],"nodes":[{"name":"Body"}]}`

func TestAssetAttachedAndReleased(t *testing.T) {
	p := filepath.Join(t.TempDir(), "body.gltf")
	require.NoError(t, os.WriteFile(p, []byte(bodyGLTF), 0o644))
	released := false
	f := assets.FetcherFunc(func(context.Context, string) (string, func(), error) {
		return p, func() { released = true }, nil
	})

	e, _, r := start(t, f, Callbacks{})
	e.loader.Wait()
	e.Tick(0.016)

	require.Len(t, r.attached, 1)
	assert.Equal(t, []int{0}, r.attached[0].Roots)
	assert.Equal(t, float32(config.ModelScale), r.transforms[0].Scale)
	assert.Equal(t, float32(1.5), r.transforms[0].Position.Y())
	assert.Same(t, r.attached[0], e.Asset())

	e.Teardown()
	assert.True(t, released)
	assert.Nil(t, e.Asset())
}

func TestRendererRejectsModel(t *testing.T) {
	p := filepath.Join(t.TempDir(), "body.gltf")
	require.NoError(t, os.WriteFile(p, []byte(bodyGLTF), 0o644))

	s := newFakeSurface()
	r := &fakeRenderer{reject: errors.New("no GPU")}
	e, err := Start(s, r, Callbacks{}, Options{Logger: quiet, Settings: config.Settings{AssetPath: p}})
	require.NoError(t, err)
	defer e.Teardown()

	e.loader.Wait()
	assert.True(t, e.Tick(0.016))
	assert.Nil(t, e.Asset())
}

func TestStartRejectsBadHotspots(t *testing.T) {
	_, err := Start(newFakeSurface(), &fakeRenderer{}, Callbacks{}, Options{
		Logger:   quiet,
		Settings: config.Settings{HotspotsFile: filepath.Join(t.TempDir(), "missing.json")},
	})
	assert.Error(t, err)
}
