package geometry

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Plane is the infinite object space xz plane with normal +y
type Plane struct {
	Base
}

// NewPlane creates a new plane with identity transform and default material
func NewPlane() *Plane {
	return &Plane{Base: NewBase()}
}

// LocalIntersect returns the single crossing of the y = 0 plane. Parallel
// rays miss, including rays lying inside the plane.
func (p *Plane) LocalIntersect(localRay core.Ray) Intersections {
	if math.Abs(localRay.Direction.Y) < core.Epsilon {
		return nil
	}

	t := -localRay.Origin.Y / localRay.Direction.Y
	return Intersections{NewIntersection(t, p)}
}

// LocalNormal is +y everywhere
func (p *Plane) LocalNormal(localPoint core.Tuple) core.Tuple {
	return core.Vector(0, 1, 0)
}
