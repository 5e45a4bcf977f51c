package physics

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

type ShapeKind int

const (
	ShapeBox ShapeKind = iota
	// ShapePlane is an infinite horizontal plane facing +Y at the body's height.
	ShapePlane
)

type Shape struct {
	Kind        ShapeKind
	HalfExtents mgl64.Vec3 // Box only
}

func NewBox(halfExtents mgl64.Vec3) Shape {
	return Shape{Kind: ShapeBox, HalfExtents: halfExtents}
}

func NewPlane() Shape {
	return Shape{Kind: ShapePlane}
}

func (s Shape) validate() error {
	switch s.Kind {
	case ShapeBox:
		for i := 0; i < 3; i++ {
			h := s.HalfExtents[i]
			if !(h > 0) || math.IsInf(h, 0) {
				return fmt.Errorf("%w: box half extent %d is %v", ErrConfiguration, i, h)
			}
		}
	case ShapePlane:
	default:
		return fmt.Errorf("%w: unknown shape kind %d", ErrConfiguration, s.Kind)
	}
	return nil
}

// AABB is an axis-aligned bounding box in world space.
type AABB struct {
	Min, Max mgl64.Vec3
}

// Overlaps reports whether the boxes intersect by more than tol on every axis.
// A negative tol also counts boxes within |tol| of each other.
func (a AABB) Overlaps(b AABB, tol float64) bool {
	for i := 0; i < 3; i++ {
		if a.Min[i] >= b.Max[i]-tol || a.Max[i] <= b.Min[i]+tol {
			return false
		}
	}
	return true
}

// overlapsExcept checks every axis except skip.
func (a AABB) overlapsExcept(b AABB, skip int, tol float64) bool {
	for i := 0; i < 3; i++ {
		if i == skip {
			continue
		}
		if a.Min[i] >= b.Max[i]-tol || a.Max[i] <= b.Min[i]+tol {
			return false
		}
	}
	return true
}
