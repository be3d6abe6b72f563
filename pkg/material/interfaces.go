package material

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Object is the view of a shape that shading needs: its world to object
// space transform. Patterns are evaluated in object space.
type Object interface {
	InverseTransform() core.Matrix
}

// Pattern provides spatially-varying colors for materials
type Pattern interface {
	// ColorAt returns the color at a point given in pattern space
	ColorAt(point core.Tuple) core.Tuple

	Transform() core.Matrix
	InverseTransform() core.Matrix
	SetTransform(m core.Matrix) error
}
