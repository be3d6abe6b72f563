package core

import "math"

// Translation moves points by (x, y, z). Vectors are unaffected.
func Translation(x, y, z float64) Matrix {
	m := Identity()
	m.set(0, 3, x)
	m.set(1, 3, y)
	m.set(2, 3, z)
	return m
}

// Scaling scales each axis independently
func Scaling(x, y, z float64) Matrix {
	m := Identity()
	m.set(0, 0, x)
	m.set(1, 1, y)
	m.set(2, 2, z)
	return m
}

// RotationX rotates around the x axis by radians (left-handed)
func RotationX(radians float64) Matrix {
	cos, sin := math.Cos(radians), math.Sin(radians)
	m := Identity()
	m.set(1, 1, cos)
	m.set(1, 2, -sin)
	m.set(2, 1, sin)
	m.set(2, 2, cos)
	return m
}

// RotationY rotates around the y axis by radians
func RotationY(radians float64) Matrix {
	cos, sin := math.Cos(radians), math.Sin(radians)
	m := Identity()
	m.set(0, 0, cos)
	m.set(0, 2, sin)
	m.set(2, 0, -sin)
	m.set(2, 2, cos)
	return m
}

// RotationZ rotates around the z axis by radians
func RotationZ(radians float64) Matrix {
	cos, sin := math.Cos(radians), math.Sin(radians)
	m := Identity()
	m.set(0, 0, cos)
	m.set(0, 1, -sin)
	m.set(1, 0, sin)
	m.set(1, 1, cos)
	return m
}

// Shearing moves each component in proportion to the other two.
// xy reads "x in proportion to y".
func Shearing(xy, xz, yx, yz, zx, zy float64) Matrix {
	m := Identity()
	m.set(0, 1, xy)
	m.set(0, 2, xz)
	m.set(1, 0, yx)
	m.set(1, 2, yz)
	m.set(2, 0, zx)
	m.set(2, 1, zy)
	return m
}

// ViewTransform orients the world relative to an eye at from looking at to.
func ViewTransform(from, to, up Tuple) Matrix {
	forward := to.Subtract(from).Normalize()
	left := forward.Cross(up.Normalize())
	trueUp := left.Cross(forward)

	orientation := MustMatrix(
		[]float64{left.X, left.Y, left.Z, 0},
		[]float64{trueUp.X, trueUp.Y, trueUp.Z, 0},
		[]float64{-forward.X, -forward.Y, -forward.Z, 0},
		[]float64{0, 0, 0, 1},
	)
	return orientation.Multiply(Translation(-from.X, -from.Y, -from.Z))
}

// The fluent builders below apply a transform after m, so the last call in a
// chain ends up as the leftmost factor: Identity().RotateX(a).Translate(x, y, z)
// equals Translation(x, y, z) x RotationX(a).

// Translate applies a translation after m
func (m Matrix) Translate(x, y, z float64) Matrix {
	return Translation(x, y, z).Multiply(m)
}

// Scale applies a scaling after m
func (m Matrix) Scale(x, y, z float64) Matrix {
	return Scaling(x, y, z).Multiply(m)
}

// RotateX applies an x rotation after m
func (m Matrix) RotateX(radians float64) Matrix {
	return RotationX(radians).Multiply(m)
}

// RotateY applies a y rotation after m
func (m Matrix) RotateY(radians float64) Matrix {
	return RotationY(radians).Multiply(m)
}

// RotateZ applies a z rotation after m
func (m Matrix) RotateZ(radians float64) Matrix {
	return RotationZ(radians).Multiply(m)
}

// Shear applies a shearing after m
func (m Matrix) Shear(xy, xz, yx, yz, zx, zy float64) Matrix {
	return Shearing(xy, xz, yx, yz, zx, zy).Multiply(m)
}

// Then applies each transform after m in order
func (m Matrix) Then(transforms ...Matrix) Matrix {
	result := m
	for _, t := range transforms {
		result = t.Multiply(result)
	}
	return result
}
