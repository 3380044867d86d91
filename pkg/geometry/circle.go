package geometry

import (
	"math"

	"github.com/zrygan/go-raycaster/pkg/core"
)

// Discriminants closer to zero than this are collapsed to a single
// tangential root so a grazing ray is not counted as two hits.
const tangentEpsilon = 1e-9

// Circle represents a circular shape in the scene plane
type Circle struct {
	Center core.Vec2
	Radius float64
}

// NewCircle creates a new circle
func NewCircle(center core.Vec2, radius float64) *Circle {
	return &Circle{Center: center, Radius: radius}
}

// Hit tests if a ray intersects with the circle within [tMin, tMax].
// It returns the smallest root in range; for a ray starting inside the
// circle that is the exit point.
func (c *Circle) Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool) {
	// Vector from circle center to ray origin
	oc := ray.Origin.Subtract(c.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	if a == 0 {
		return nil, false
	}
	halfB := oc.Dot(ray.Direction)
	cc := oc.Dot(oc) - c.Radius*c.Radius

	discriminant := halfB*halfB - a*cc
	if discriminant < 0 {
		return nil, false
	}
	if discriminant < tangentEpsilon {
		discriminant = 0
	}
	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return nil, false
		}
	}

	hit := &HitRecord{
		T:     root,
		Point: ray.At(root),
	}
	hit.Normal = hit.Point.Subtract(c.Center).Multiply(1.0 / c.Radius)

	return hit, true
}

// Contains reports whether p lies inside or on the circle
func (c *Circle) Contains(p core.Vec2) bool {
	return p.Subtract(c.Center).LengthSquared() <= c.Radius*c.Radius
}
