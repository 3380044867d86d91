package tracer

import (
	"math"

	"github.com/zrygan/go-raycaster/pkg/core"
	"github.com/zrygan/go-raycaster/pkg/object"
)

// GenerateRays produces the sample rays for an emitter from its current
// state. Rays are built fresh every frame; nothing is cached across moves
// or angle changes. Non-emitters yield nil.
func GenerateRays(o *object.Object) []core.Ray {
	switch o.Kind {
	case object.KindIsotropic:
		return isotropicRays(o.Pos, o.RayCount)
	case object.KindCollimated:
		return collimatedRays(o.Pos, o.Angle, o.BeamWidth, o.RayCount)
	case object.KindSpotlight:
		return spotlightRays(o.Pos, o.Angle, o.HalfAngle, o.RayCount)
	default:
		return nil
	}
}

// isotropicRays spaces n rays uniformly over the full circle, the first
// at angle 0
func isotropicRays(origin core.Vec2, n int) []core.Ray {
	rays := make([]core.Ray, 0, n)
	for k := 0; k < n; k++ {
		angle := 2 * math.Pi * float64(k) / float64(n)
		rays = append(rays, core.NewRay(origin, core.VecFromAngle(angle)))
	}
	return rays
}

// collimatedRays emits n parallel rays along angle, with origins offset
// along the beam's perpendicular so the beam has visible width
func collimatedRays(origin core.Vec2, angle, beamWidth float64, n int) []core.Ray {
	dir := core.VecFromAngle(angle)
	perp := dir.Perpendicular()

	rays := make([]core.Ray, 0, n)
	for _, offset := range linspace(-beamWidth/2, beamWidth/2, n) {
		rays = append(rays, core.NewRay(origin.Add(perp.Multiply(offset)), dir))
	}
	return rays
}

// spotlightRays spaces n rays uniformly across the cone
// [direction-halfAngle, direction+halfAngle]. A single ray degenerates
// to the central direction.
func spotlightRays(origin core.Vec2, direction, halfAngle float64, n int) []core.Ray {
	rays := make([]core.Ray, 0, n)
	for _, angle := range linspace(direction-halfAngle, direction+halfAngle, n) {
		rays = append(rays, core.NewRay(origin, core.VecFromAngle(angle)))
	}
	return rays
}

// linspace returns n evenly spaced values from x1 to x2 inclusive.
// n == 1 yields the midpoint, n <= 0 yields nil.
func linspace(x1, x2 float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{(x1 + x2) / 2}
	}

	step := (x2 - x1) / float64(n-1)
	points := make([]float64, 0, n)
	for k := 0; k < n; k++ {
		points = append(points, x1+float64(k)*step)
	}
	return points
}
