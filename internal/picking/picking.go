// internal/picking/picking.go
package picking

import (
	"go-anatomy-viewer/internal/camera"
	"go-anatomy-viewer/internal/hotspot"
	"go-anatomy-viewer/pkg/geom"

	"github.com/go-gl/mathgl/mgl32"
)

// Hit is the result of a successful pick.
type Hit struct {
	Handle   hotspot.Handle
	Distance float32 // ray parameter from the camera position
}

// RayFromNDC builds the world-space ray through an NDC point.
// The ray starts at the camera position so hotspots between the camera and
// the near plane are still pickable.
func RayFromNDC(ndc mgl32.Vec2, cam camera.Camera) geom.Ray {
	inv := cam.ViewProjection().Inv()
	far := mgl32.TransformCoordinate(mgl32.Vec3{ndc.X(), ndc.Y(), 1}, inv)
	return geom.NewRay(cam.Position, far.Sub(cam.Position))
}

// Pick returns the hotspot nearest along the ray through ndc.
// Every hotspot is treated as a sphere of the given radius at its position.
// On an exact distance tie the earlier hotspot in the slice wins.
func Pick(ndc mgl32.Vec2, cam camera.Camera, hotspots []hotspot.Hotspot, radius float32) (Hit, bool) {
	ray := RayFromNDC(ndc, cam)

	best := Hit{Handle: -1}
	found := false
	for i := range hotspots {
		t, ok := ray.IntersectSphere(geom.Sphere{Center: hotspots[i].Position, Radius: radius})
		if !ok {
			continue
		}
		if !found || t < best.Distance {
			best = Hit{Handle: hotspot.Handle(i), Distance: t}
			found = true
		}
	}
	return best, found
}

// HitTest is Pick without the distance.
func HitTest(ndc mgl32.Vec2, cam camera.Camera, hotspots []hotspot.Hotspot, radius float32) (hotspot.Handle, bool) {
	hit, ok := Pick(ndc, cam, hotspots, radius)
	return hit.Handle, ok
}
