package core

import (
	"fmt"
	"math"
)

// Epsilon is the tolerance used for every floating point comparison in the
// tracer. It also sizes the offset applied to shading points to avoid acne.
const Epsilon = 1e-4

// Equal reports whether two floats are equal within Epsilon
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Tuple is a homogeneous 4-component value. W == 1 marks a point, W == 0 a
// vector. Colors reuse X, Y, Z as red, green, blue with W == 0.
type Tuple struct {
	X, Y, Z, W float64
}

// NewTuple creates a tuple from raw components
func NewTuple(x, y, z, w float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: w}
}

// Point creates a tuple with w = 1
func Point(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 1}
}

// Vector creates a tuple with w = 0
func Vector(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 0}
}

// NewColor creates a color tuple
func NewColor(r, g, b float64) Tuple {
	return Tuple{X: r, Y: g, Z: b, W: 0}
}

// Common colors
var (
	Black = NewColor(0, 0, 0)
	White = NewColor(1, 1, 1)
)

// IsPoint reports whether the tuple is a point
func (t Tuple) IsPoint() bool {
	return Equal(t.W, 1)
}

// IsVector reports whether the tuple is a vector
func (t Tuple) IsVector() bool {
	return Equal(t.W, 0)
}

func (t Tuple) Red() float64   { return t.X }
func (t Tuple) Green() float64 { return t.Y }
func (t Tuple) Blue() float64  { return t.Z }

// Add returns the component-wise sum
func (t Tuple) Add(other Tuple) Tuple {
	return Tuple{t.X + other.X, t.Y + other.Y, t.Z + other.Z, t.W + other.W}
}

// Subtract returns the component-wise difference
func (t Tuple) Subtract(other Tuple) Tuple {
	return Tuple{t.X - other.X, t.Y - other.Y, t.Z - other.Z, t.W - other.W}
}

// Multiply returns the tuple scaled by a scalar
func (t Tuple) Multiply(scalar float64) Tuple {
	return Tuple{t.X * scalar, t.Y * scalar, t.Z * scalar, t.W * scalar}
}

// Divide returns the tuple divided by a scalar. Dividing by zero is a caller error.
func (t Tuple) Divide(scalar float64) Tuple {
	return Tuple{t.X / scalar, t.Y / scalar, t.Z / scalar, t.W / scalar}
}

// MultiplyTuple returns the component-wise (Hadamard) product, used to blend colors
func (t Tuple) MultiplyTuple(other Tuple) Tuple {
	return Tuple{t.X * other.X, t.Y * other.Y, t.Z * other.Z, t.W * other.W}
}

// Negate returns the negative of the tuple
func (t Tuple) Negate() Tuple {
	return Tuple{-t.X, -t.Y, -t.Z, -t.W}
}

// Magnitude returns the length over all four components
func (t Tuple) Magnitude() float64 {
	return math.Sqrt(t.X*t.X + t.Y*t.Y + t.Z*t.Z + t.W*t.W)
}

// Normalize returns a unit tuple in the same direction.
// A zero-magnitude tuple yields NaN components.
func (t Tuple) Normalize() Tuple {
	return t.Divide(t.Magnitude())
}

// Dot returns the dot product over all four components
func (t Tuple) Dot(other Tuple) float64 {
	return t.X*other.X + t.Y*other.Y + t.Z*other.Z + t.W*other.W
}

// Cross returns the cross product of two vectors; w is ignored and the result is a vector
func (t Tuple) Cross(other Tuple) Tuple {
	return Vector(
		t.Y*other.Z-t.Z*other.Y,
		t.Z*other.X-t.X*other.Z,
		t.X*other.Y-t.Y*other.X,
	)
}

// Reflect reflects the incoming vector about normal
func (t Tuple) Reflect(normal Tuple) Tuple {
	// r = v - 2*dot(v,n)*n
	return t.Subtract(normal.Multiply(2 * t.Dot(normal)))
}

// Equals reports whether every component is equal within Epsilon
func (t Tuple) Equals(other Tuple) bool {
	return Equal(t.X, other.X) &&
		Equal(t.Y, other.Y) &&
		Equal(t.Z, other.Z) &&
		Equal(t.W, other.W)
}

func (t Tuple) String() string {
	return fmt.Sprintf("(%.5f, %.5f, %.5f, %.5f)", t.X, t.Y, t.Z, t.W)
}
