package camera

import (
	"testing"

	"go-anatomy-viewer/internal/config"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestController() *Controller {
	return NewController(config.Default().Camera, 800, 400, 60)
}

func settle(c *Controller) {
	for i := 0; i < 600 && !c.Settled(); i++ {
		c.Update()
	}
}

func TestViewportToNDC(t *testing.T) {
	vp := NewViewport(800, 400)
	assert.Equal(t, mgl32.Vec2{-1, 1}, vp.ToNDC(0, 0))
	assert.Equal(t, mgl32.Vec2{0, 0}, vp.ToNDC(400, 200))
	assert.Equal(t, mgl32.Vec2{1, -1}, vp.ToNDC(800, 400))
	assert.Equal(t, float32(2), vp.Aspect())

	assert.Equal(t, mgl32.Vec2{}, Viewport{}.ToNDC(1, 1))
	assert.Equal(t, float32(1), Viewport{}.Aspect())
}

func TestNewControllerKeepsStartPose(t *testing.T) {
	c := newTestController()
	cam := c.Camera()

	assert.Equal(t, mgl32.Vec3{0, 1.5, 3}, cam.Position)
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, cam.Target)
	assert.Equal(t, float32(2), cam.Aspect)

	c.Update()
	assert.True(t, c.Camera().Position.ApproxEqualThreshold(mgl32.Vec3{0, 1.5, 3}, 1e-4),
		"an update without input must not move the camera")
	assert.True(t, c.Settled())
}

func TestResizeUpdatesAspect(t *testing.T) {
	c := newTestController()
	c.Resize(300, 600)
	assert.Equal(t, float32(0.5), c.Camera().Aspect)
	assert.Equal(t, Viewport{Width: 300, Height: 600}, c.Viewport())

	c.Resize(0, 100)
	assert.Equal(t, float32(0.5), c.Camera().Aspect, "degenerate sizes are ignored")
}

func TestRotateEasesTowardGoal(t *testing.T) {
	c := newTestController()
	start := c.Camera().Position

	// a quarter of the viewport height is a quarter turn
	c.Rotate(-100, 0)
	c.Update()
	mid := c.Camera().Position
	assert.False(t, c.Settled())
	assert.NotEqual(t, start, mid)

	settle(c)
	require.True(t, c.Settled())
	end := c.Camera().Position
	dist := end.Sub(c.Camera().Target).Len()
	assert.InDelta(t, start.Sub(c.Camera().Target).Len(), dist, 1e-3, "orbit keeps distance")
	assert.InDelta(t, 1.5, end.Y(), 1e-3, "horizontal drag keeps height")
	assert.Greater(t, end.X(), float32(2.9))
}

func TestRotateClampsPolarAngle(t *testing.T) {
	c := newTestController()
	c.Rotate(0, 10000)
	settle(c)

	pos := c.Camera().Position
	offset := pos.Sub(c.Camera().Target)
	assert.Greater(t, offset.Y(), float32(0), "polar angle is clamped short of the pole")
	assert.False(t, offset.X() != offset.X(), "no NaN")
}

func TestZoomClampsDistance(t *testing.T) {
	c := newTestController()
	before := c.Distance()

	c.Zoom(1)
	assert.Less(t, c.Distance(), before)

	c.Zoom(1000)
	assert.Equal(t, float32(config.CameraMinDistance), c.Distance())
	c.Zoom(-1000)
	assert.Equal(t, float32(config.CameraMaxDistance), c.Distance())

	settle(c)
	got := c.Camera().Position.Sub(c.Camera().Target).Len()
	assert.InDelta(t, config.CameraMaxDistance, got, 1e-3)
}

func TestProjectionUsesAspect(t *testing.T) {
	cam := newTestController().Camera()
	p := cam.Projection()
	// m[0] = f/aspect, m[5] = f
	assert.InDelta(t, p.At(1, 1)/2, p.At(0, 0), 1e-5)

	vp := cam.ViewProjection()
	clip := vp.Mul4x1(cam.Target.Vec4(1))
	ndc := clip.Vec3().Mul(1 / clip.W())
	assert.InDelta(t, 0, ndc.X(), 1e-5)
	assert.InDelta(t, 0, ndc.Y(), 1e-5)
}
