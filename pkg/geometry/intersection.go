package geometry

import "sort"

// Intersection records where along a ray a shape was crossed. Object is a
// reference into the world's shape collection, not a copy.
type Intersection struct {
	T      float64 // Parameter t along the ray
	Object Shape
}

// NewIntersection creates a new intersection
func NewIntersection(t float64, object Shape) Intersection {
	return Intersection{T: t, Object: object}
}

// Intersections is a set of intersections, usually sorted by ascending T
type Intersections []Intersection

// NewIntersections returns the given intersections sorted by ascending T
func NewIntersections(xs ...Intersection) Intersections {
	result := make(Intersections, len(xs))
	copy(result, xs)
	result.Sort()
	return result
}

// Sort orders the intersections by ascending T
func (xs Intersections) Sort() {
	sort.SliceStable(xs, func(i, j int) bool {
		return xs[i].T < xs[j].T
	})
}

// Hit returns the intersection with the lowest non-negative T. Intersections
// behind the ray origin are never visible. The slice need not be sorted.
func (xs Intersections) Hit() (Intersection, bool) {
	var hit Intersection
	found := false

	for _, x := range xs {
		if x.T < 0 {
			continue
		}
		if !found || x.T < hit.T {
			hit = x
			found = true
		}
	}

	return hit, found
}
