// internal/camera/orbit.go
package camera

import (
	"math"

	"go-anatomy-viewer/internal/config"
	"go-anatomy-viewer/internal/utils"

	"github.com/charmbracelet/harmonica"
	"github.com/go-gl/mathgl/mgl32"
)

// polar angle is kept this far away from the poles
const polarEpsilon = 1e-3

// axis is one spring-driven spherical coordinate.
type axis struct {
	pos, vel, goal float64
}

func (a *axis) step(s harmonica.Spring) {
	a.pos, a.vel = s.Update(a.pos, a.vel, a.goal)
}

func (a *axis) settled() bool {
	return math.Abs(a.pos-a.goal) < 1e-4 && math.Abs(a.vel) < 1e-4
}

// Controller owns the camera and viewport. User drag orbits the camera
// around a fixed target and the wheel changes distance; there is no pan.
// Input only moves the goal; Update eases the camera toward it.
type Controller struct {
	cam      Camera
	viewport Viewport

	rotateSpeed float32
	zoomSpeed   float32
	minDistance float64
	maxDistance float64

	theta  axis // azimuth around +Y, from +Z
	phi    axis // polar angle from +Y
	radius axis

	spring harmonica.Spring
}

// NewController places the camera as described by s on a width x height
// surface. fps is the tick rate the spring is tuned for.
func NewController(s config.CameraSettings, width, height, fps int) *Controller {
	if fps <= 0 {
		fps = config.TargetFPS
	}
	c := &Controller{
		cam: Camera{
			Position: mgl32.Vec3(s.Position),
			Target:   mgl32.Vec3(s.Target),
			Up:       mgl32.Vec3{0, 1, 0},
			Fovy:     s.Fovy,
			Near:     s.Near,
			Far:      s.Far,
		},
		rotateSpeed: s.RotateSpeed,
		zoomSpeed:   s.ZoomSpeed,
		minDistance: float64(s.MinDistance),
		maxDistance: float64(s.MaxDistance),
		spring:      harmonica.NewSpring(harmonica.FPS(fps), s.SpringFrequency, s.DampingRatio),
	}
	c.Resize(width, height)

	offset := c.cam.Position.Sub(c.cam.Target)
	r := float64(offset.Len())
	if r == 0 {
		r = c.minDistance
	}
	theta := math.Atan2(float64(offset.X()), float64(offset.Z()))
	phi := math.Acos(utils.Clamp(float64(offset.Y())/r, -1, 1))
	c.theta = axis{pos: theta, goal: theta}
	c.phi = axis{pos: phi, goal: phi}
	c.radius = axis{pos: r, goal: r}
	return c
}

// Camera returns a snapshot of the current camera.
func (c *Controller) Camera() Camera {
	return c.cam
}

// Viewport returns the current viewport.
func (c *Controller) Viewport() Viewport {
	return c.viewport
}

// Resize updates the viewport and the camera aspect ratio.
// Non-positive sizes are ignored.
func (c *Controller) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.viewport = NewViewport(width, height)
	c.cam.Aspect = c.viewport.Aspect()
}

// Rotate orbits by a pointer drag of dx, dy pixels. A drag across the full
// viewport height turns the camera one full revolution at rotate speed 1.
func (c *Controller) Rotate(dx, dy float32) {
	h := c.viewport.Height
	if h <= 0 {
		return
	}
	c.theta.goal -= 2 * math.Pi * float64(dx/h*c.rotateSpeed)
	c.phi.goal -= 2 * math.Pi * float64(dy/h*c.rotateSpeed)
	c.phi.goal = utils.Clamp(c.phi.goal, polarEpsilon, math.Pi-polarEpsilon)
}

// Zoom dollies toward the target for positive wheel delta and away for negative.
func (c *Controller) Zoom(delta float32) {
	if delta == 0 {
		return
	}
	scale := math.Pow(0.95, float64(c.zoomSpeed*delta))
	c.radius.goal = utils.Clamp(c.radius.goal*scale, c.minDistance, c.maxDistance)
}

// Update advances the easing by one tick and recomputes the camera position.
func (c *Controller) Update() {
	c.theta.step(c.spring)
	c.phi.step(c.spring)
	c.radius.step(c.spring)

	phi := utils.Clamp(c.phi.pos, polarEpsilon, math.Pi-polarEpsilon)
	r := math.Max(c.radius.pos, 1e-6)
	sinPhi := math.Sin(phi)
	offset := mgl32.Vec3{
		float32(r * sinPhi * math.Sin(c.theta.pos)),
		float32(r * math.Cos(phi)),
		float32(r * sinPhi * math.Cos(c.theta.pos)),
	}
	c.cam.Position = c.cam.Target.Add(offset)
}

// Settled reports whether the camera has reached its goal.
func (c *Controller) Settled() bool {
	return c.theta.settled() && c.phi.settled() && c.radius.settled()
}

// Distance returns the current camera-to-target distance goal.
func (c *Controller) Distance() float32 {
	return float32(c.radius.goal)
}
