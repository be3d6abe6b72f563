package geometry

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Sphere is a unit sphere centered at the object space origin
type Sphere struct {
	Base
}

// NewSphere creates a new unit sphere with identity transform and default material
func NewSphere() *Sphere {
	return &Sphere{Base: NewBase()}
}

// LocalIntersect solves |O + tD|^2 = 1 for t
func (s *Sphere) LocalIntersect(localRay core.Ray) Intersections {
	// Vector from sphere center to ray origin
	sphereToRay := localRay.Origin.Subtract(core.Point(0, 0, 0))

	// Quadratic equation coefficients: at² + bt + c = 0
	a := localRay.Direction.Dot(localRay.Direction)
	b := 2 * localRay.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}

	sqrtD := math.Sqrt(discriminant)
	return Intersections{
		NewIntersection((-b-sqrtD)/(2*a), s),
		NewIntersection((-b+sqrtD)/(2*a), s),
	}
}

// LocalNormal points from the center through the surface point
func (s *Sphere) LocalNormal(localPoint core.Tuple) core.Tuple {
	return localPoint.Subtract(core.Point(0, 0, 0))
}
