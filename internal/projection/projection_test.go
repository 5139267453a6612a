package projection

import (
	"testing"

	"go-anatomy-viewer/internal/camera"
	"go-anatomy-viewer/internal/config"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestProjectTargetIsCentered(t *testing.T) {
	ctrl := camera.NewController(config.Default().Camera, 960, 500, 60)
	x, y, ok := Project(ctrl.Camera().Target, ctrl.Camera(), ctrl.Viewport())
	assert.True(t, ok)
	assert.InDelta(t, 480, x, 1e-3)
	assert.InDelta(t, 250, y, 1e-3)
}

func TestProjectRoundTripsNDC(t *testing.T) {
	ctrl := camera.NewController(config.Default().Camera, 960, 500, 60)
	cam, vp := ctrl.Camera(), ctrl.Viewport()
	p := mgl32.Vec3{0.3, 1.3, 0.04}

	x, y, ok := Project(p, cam, vp)
	assert.True(t, ok)

	// above and to the right of center
	assert.Greater(t, x, float32(480))
	assert.Less(t, y, float32(250))

	ndc := vp.ToNDC(x, y)
	want := mgl32.TransformCoordinate(p, cam.ViewProjection())
	assert.InDelta(t, want.X(), ndc.X(), 1e-4)
	assert.InDelta(t, want.Y(), ndc.Y(), 1e-4)
}

func TestProjectScalesWithViewport(t *testing.T) {
	ctrl := camera.NewController(config.Default().Camera, 800, 400, 60)
	p := mgl32.Vec3{-0.15, 0.6, 0.14}
	x1, y1, _ := Project(p, ctrl.Camera(), ctrl.Viewport())

	// same aspect, doubled size
	ctrl.Resize(1600, 800)
	x2, y2, _ := Project(p, ctrl.Camera(), ctrl.Viewport())
	assert.InDelta(t, 2*x1, x2, 1e-2)
	assert.InDelta(t, 2*y1, y2, 1e-2)
}

func TestProjectBehindCamera(t *testing.T) {
	ctrl := camera.NewController(config.Default().Camera, 800, 400, 60)
	cam := ctrl.Camera()
	behind := cam.Position.Add(cam.Position.Sub(cam.Target))

	_, _, ok := Project(behind, cam, ctrl.Viewport())
	assert.False(t, ok)

	x, _, ok := Project(cam.Target, cam, ctrl.Viewport())
	assert.True(t, ok)
	assert.InDelta(t, 400, x, 1e-3)
}
