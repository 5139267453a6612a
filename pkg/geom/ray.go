// pkg/geom/ray.go
package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Ray is a half-line with a unit-length Direction.
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

// NewRay normalizes dir. A zero dir yields a zero Direction that hits nothing.
func NewRay(origin, dir mgl32.Vec3) Ray {
	if dir.Len() == 0 {
		return Ray{Origin: origin}
	}
	return Ray{Origin: origin, Direction: dir.Normalize()}
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Sphere is a bounding sphere.
type Sphere struct {
	Center mgl32.Vec3
	Radius float32
}

// IntersectSphere returns the ray parameter of the first intersection with s.
// When the origin is inside the sphere the exit point is returned.
// Spheres entirely behind the origin do not intersect.
func (r Ray) IntersectSphere(s Sphere) (float32, bool) {
	if r.Direction == (mgl32.Vec3{}) || s.Radius <= 0 {
		return 0, false
	}
	toCenter := s.Center.Sub(r.Origin)
	tca := toCenter.Dot(r.Direction)
	d2 := toCenter.Dot(toCenter) - tca*tca
	r2 := s.Radius * s.Radius
	if d2 > r2 {
		return 0, false
	}
	thc := float32(math.Sqrt(float64(r2 - d2)))
	t0 := tca - thc
	t1 := tca + thc
	if t1 < 0 {
		return 0, false
	}
	if t0 < 0 {
		return t1, true
	}
	return t0, true
}
