package scene

import (
	"math"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
)

func mustTransform(t *testing.T, s geometry.Shape, m core.Matrix) {
	t.Helper()
	if err := s.SetTransform(m); err != nil {
		t.Fatal(err)
	}
}

func TestWorld_New(t *testing.T) {
	w := NewWorld()
	if !w.Empty() || w.Light != nil {
		t.Errorf("Expected an empty world without light, got %+v", w)
	}

	s := geometry.NewSphere()
	w.Add(s)
	if w.Empty() || !w.Contains(s) {
		t.Errorf("Expected the world to contain the added sphere")
	}
	if w.Contains(geometry.NewSphere()) {
		t.Errorf("Contains must compare shape identity")
	}
}

func TestDefaultWorld(t *testing.T) {
	w := DefaultWorld()

	if w.Light == nil || !w.Light.Equals(lights.NewPointLight(core.Point(-10, 10, -10), core.White)) {
		t.Fatalf("Unexpected light %+v", w.Light)
	}
	if len(w.Shapes) != 2 {
		t.Fatalf("Expected 2 shapes, got %d", len(w.Shapes))
	}

	outer := w.Shapes[0].Material()
	if !outer.Color.Equals(core.NewColor(0.8, 1.0, 0.6)) || outer.Diffuse != 0.7 || outer.Specular != 0.2 {
		t.Errorf("Unexpected outer material %+v", *outer)
	}
	if !w.Shapes[1].Transform().Equals(core.Scaling(0.5, 0.5, 0.5)) {
		t.Errorf("Unexpected inner transform\n%v", w.Shapes[1].Transform())
	}
}

func TestWorld_Intersect(t *testing.T) {
	ray := core.NewRay(core.Point(0, 0, -5), core.Vector(0, 0, 1))

	xs := DefaultWorld().Intersect(ray)
	expected := []float64{4, 4.5, 5.5, 6}
	if len(xs) != len(expected) {
		t.Fatalf("Expected %d intersections, got %d", len(expected), len(xs))
	}
	for i, want := range expected {
		if !core.Equal(xs[i].T, want) {
			t.Errorf("Intersection %d: expected t=%f, got t=%f", i, want, xs[i].T)
		}
	}

	if xs := NewWorld().Intersect(ray); xs != nil {
		t.Errorf("Expected nil for an empty world, got %v", xs)
	}
}

func TestWorld_ShadeHit(t *testing.T) {
	t.Run("outside", func(t *testing.T) {
		w := DefaultWorld()
		ray := core.NewRay(core.Point(0, 0, -5), core.Vector(0, 0, 1))
		comps := geometry.NewIntersection(4, w.Shapes[0]).Compute(ray)

		got := w.ShadeHit(comps, MaxReflectionDepth)
		if want := core.NewColor(0.38066, 0.47583, 0.2855); !got.Equals(want) {
			t.Errorf("Expected %v, got %v", want, got)
		}
	})

	t.Run("inside", func(t *testing.T) {
		w := DefaultWorld()
		w.Light = lights.NewPointLight(core.Point(0, 0.25, 0), core.White)
		ray := core.NewRay(core.Point(0, 0, 0), core.Vector(0, 0, 1))
		comps := geometry.NewIntersection(0.5, w.Shapes[1]).Compute(ray)

		got := w.ShadeHit(comps, MaxReflectionDepth)
		if want := core.NewColor(0.90498, 0.90498, 0.90498); !got.Equals(want) {
			t.Errorf("Expected %v, got %v", want, got)
		}
	})

	t.Run("in shadow", func(t *testing.T) {
		w := NewWorld()
		w.Light = lights.NewPointLight(core.Point(0, 0, -10), core.White)
		front := geometry.NewSphere()
		back := geometry.NewSphere()
		mustTransform(t, back, core.Translation(0, 0, 10))
		w.Add(front, back)

		ray := core.NewRay(core.Point(0, 0, 5), core.Vector(0, 0, 1))
		comps := geometry.NewIntersection(4, back).Compute(ray)

		got := w.ShadeHit(comps, MaxReflectionDepth)
		if want := core.NewColor(0.1, 0.1, 0.1); !got.Equals(want) {
			t.Errorf("Expected %v, got %v", want, got)
		}
	})

	t.Run("no light", func(t *testing.T) {
		w := DefaultWorld()
		w.Light = nil
		ray := core.NewRay(core.Point(0, 0, -5), core.Vector(0, 0, 1))
		comps := geometry.NewIntersection(4, w.Shapes[0]).Compute(ray)

		if got := w.ShadeHit(comps, MaxReflectionDepth); !got.Equals(core.Black) {
			t.Errorf("Expected black without a light, got %v", got)
		}
	})
}

func TestWorld_ColorAt(t *testing.T) {
	t.Run("ray misses", func(t *testing.T) {
		ray := core.NewRay(core.Point(0, 0, -5), core.Vector(0, 1, 0))
		if got := DefaultWorld().ColorAt(ray, MaxReflectionDepth); !got.Equals(core.Black) {
			t.Errorf("Expected black, got %v", got)
		}
	})

	t.Run("ray hits", func(t *testing.T) {
		ray := core.NewRay(core.Point(0, 0, -5), core.Vector(0, 0, 1))
		got := DefaultWorld().ColorAt(ray, MaxReflectionDepth)
		if want := core.NewColor(0.38066, 0.47583, 0.2855); !got.Equals(want) {
			t.Errorf("Expected %v, got %v", want, got)
		}
	})

	t.Run("intersection behind the ray", func(t *testing.T) {
		w := DefaultWorld()
		w.Shapes[0].Material().Ambient = 1
		w.Shapes[1].Material().Ambient = 1

		ray := core.NewRay(core.Point(0, 0, 0.75), core.Vector(0, 0, -1))
		got := w.ColorAt(ray, MaxReflectionDepth)
		if want := w.Shapes[1].Material().Color; !got.Equals(want) {
			t.Errorf("Expected the inner sphere color %v, got %v", want, got)
		}
	})

	t.Run("empty world", func(t *testing.T) {
		ray := core.NewRay(core.Point(0, 0, -5), core.Vector(0, 0, 1))
		if got := NewWorld().ColorAt(ray, MaxReflectionDepth); !got.Equals(core.Black) {
			t.Errorf("Expected black, got %v", got)
		}
	})
}

func TestWorld_IsShadowed(t *testing.T) {
	tests := []struct {
		name     string
		point    core.Tuple
		shadowed bool
	}{
		{"nothing collinear", core.Point(0, 10, 0), false},
		{"object between point and light", core.Point(10, -10, 10), true},
		{"object behind the light", core.Point(-20, 20, -20), false},
		{"object behind the point", core.Point(-2, 2, -2), false},
	}

	w := DefaultWorld()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := w.IsShadowed(tt.point); got != tt.shadowed {
				t.Errorf("Expected shadowed=%v, got %v", tt.shadowed, got)
			}
		})
	}

	t.Run("no light", func(t *testing.T) {
		w := DefaultWorld()
		w.Light = nil
		if !w.IsShadowed(core.Point(0, 10, 0)) {
			t.Errorf("Every point is shadowed without a light")
		}
	})
}

// withMirrorFloor adds a half reflective plane one unit below the default world
func withMirrorFloor(t *testing.T, w *World) geometry.Shape {
	t.Helper()
	floor := geometry.NewPlane()
	floor.Material().Reflective = 0.5
	mustTransform(t, floor, core.Translation(0, -1, 0))
	w.Add(floor)
	return floor
}

func TestWorld_ReflectedColor(t *testing.T) {
	half := math.Sqrt2 / 2

	t.Run("nonreflective material", func(t *testing.T) {
		w := DefaultWorld()
		w.Shapes[1].Material().Ambient = 1
		ray := core.NewRay(core.Point(0, 0, 0), core.Vector(0, 0, 1))
		comps := geometry.NewIntersection(1, w.Shapes[1]).Compute(ray)

		if got := w.ReflectedColor(comps, MaxReflectionDepth); !got.Equals(core.Black) {
			t.Errorf("Expected black, got %v", got)
		}
	})

	t.Run("reflective material", func(t *testing.T) {
		w := DefaultWorld()
		floor := withMirrorFloor(t, w)
		ray := core.NewRay(core.Point(0, 0, -3), core.Vector(0, -half, half))
		comps := geometry.NewIntersection(math.Sqrt2, floor).Compute(ray)

		got := w.ReflectedColor(comps, MaxReflectionDepth)
		if want := core.NewColor(0.19032, 0.2379, 0.14274); !got.Equals(want) {
			t.Errorf("Expected %v, got %v", want, got)
		}
	})

	t.Run("shade hit adds reflection", func(t *testing.T) {
		w := DefaultWorld()
		floor := withMirrorFloor(t, w)
		ray := core.NewRay(core.Point(0, 0, -3), core.Vector(0, -half, half))
		comps := geometry.NewIntersection(math.Sqrt2, floor).Compute(ray)

		got := w.ShadeHit(comps, MaxReflectionDepth)
		if want := core.NewColor(0.87677, 0.92436, 0.82918); !got.Equals(want) {
			t.Errorf("Expected %v, got %v", want, got)
		}
	})

	t.Run("depth exhausted", func(t *testing.T) {
		w := DefaultWorld()
		floor := withMirrorFloor(t, w)
		ray := core.NewRay(core.Point(0, 0, -3), core.Vector(0, -half, half))
		comps := geometry.NewIntersection(math.Sqrt2, floor).Compute(ray)

		if got := w.ReflectedColor(comps, 0); !got.Equals(core.Black) {
			t.Errorf("Expected black at depth 0, got %v", got)
		}
	})
}

func TestWorld_MutuallyReflectiveSurfacesTerminate(t *testing.T) {
	w := NewWorld()
	w.Light = lights.NewPointLight(core.Point(0, 0, 0), core.White)

	lower := geometry.NewPlane()
	lower.Material().Reflective = 1
	mustTransform(t, lower, core.Translation(0, -1, 0))

	upper := geometry.NewPlane()
	upper.Material().Reflective = 1
	mustTransform(t, upper, core.Translation(0, 1, 0))
	w.Add(lower, upper)

	ray := core.NewRay(core.Point(0, 0, 0), core.Vector(0, 1, 0))
	got := w.ColorAt(ray, MaxReflectionDepth)

	// every bounce adds the same lit color, so the depth bound caps the sum
	if got.Red() <= 0 || math.IsInf(got.Red(), 0) || math.IsNaN(got.Red()) {
		t.Errorf("Expected a finite positive color, got %v", got)
	}
	if deeper := w.ColorAt(ray, MaxReflectionDepth+3); deeper.Red() <= got.Red() {
		t.Errorf("More depth should add more light: %v vs %v", deeper, got)
	}
}
