// internal/projection/projection.go
package projection

import (
	"go-anatomy-viewer/internal/camera"

	"github.com/go-gl/mathgl/mgl32"
)

// Project maps a world point to surface-local pixels, origin top-left,
// y down. ok is false for points at or behind the camera plane; the
// returned coordinates are then meaningless. Points outside the frustum
// sides still project, off-surface.
func Project(p mgl32.Vec3, cam camera.Camera, vp camera.Viewport) (x, y float32, ok bool) {
	clip := cam.ViewProjection().Mul4x1(p.Vec4(1))
	if clip.W() <= 0 {
		return 0, 0, false
	}
	ndcX := clip.X() / clip.W()
	ndcY := clip.Y() / clip.W()
	x = (ndcX*0.5 + 0.5) * vp.Width
	y = (-ndcY*0.5 + 0.5) * vp.Height
	return x, y, true
}
