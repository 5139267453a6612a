// internal/camera/camera.go
package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Camera is a perspective camera. It is a value type: hit testing and
// projection take a copy so both see the exact parameters of one frame.
type Camera struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3
	Up       mgl32.Vec3
	Fovy     float32 // vertical field of view, degrees
	Aspect   float32
	Near     float32
	Far      float32
}

// View returns the world-to-camera matrix.
func (c Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Target, c.Up)
}

// Projection returns the camera-to-clip matrix.
func (c Camera) Projection() mgl32.Mat4 {
	aspect := c.Aspect
	if aspect <= 0 {
		aspect = 1
	}
	return mgl32.Perspective(mgl32.DegToRad(c.Fovy), aspect, c.Near, c.Far)
}

// ViewProjection returns Projection * View.
func (c Camera) ViewProjection() mgl32.Mat4 {
	return c.Projection().Mul4(c.View())
}

// Viewport is the drawable area of the surface in pixels.
type Viewport struct {
	Width  float32
	Height float32
}

// NewViewport builds a viewport from integer surface dimensions.
func NewViewport(width, height int) Viewport {
	return Viewport{Width: float32(width), Height: float32(height)}
}

// Aspect returns width/height, or 1 for a degenerate viewport.
func (v Viewport) Aspect() float32 {
	if v.Width <= 0 || v.Height <= 0 {
		return 1
	}
	return v.Width / v.Height
}

// ToNDC converts surface-local pixels to normalized device coordinates,
// x right and y up, both in [-1, 1] inside the viewport.
func (v Viewport) ToNDC(x, y float32) mgl32.Vec2 {
	if v.Width <= 0 || v.Height <= 0 {
		return mgl32.Vec2{}
	}
	return mgl32.Vec2{
		x/v.Width*2 - 1,
		-(y/v.Height)*2 + 1,
	}
}
