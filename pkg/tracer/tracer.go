package tracer

import (
	"github.com/zrygan/go-raycaster/pkg/core"
	"github.com/zrygan/go-raycaster/pkg/geometry"
	"github.com/zrygan/go-raycaster/pkg/object"
)

// TracedRay pairs one generated ray's visible segment with its source
// emitter and the ray's index within that emitter's fan
type TracedRay struct {
	EmitterID int
	Index     int
	Segment   core.Segment
	Hit       bool
}

// Tracer computes visible ray segments for a frame. It only reads the
// objects it is handed; all mutation belongs to the scene.
type Tracer struct {
	// MaxDistance clips unbounded rays so they stay renderable.
	// The rendering collaborator supplies it, typically the viewport
	// diagonal.
	MaxDistance float64
}

// New creates a tracer with the given boundary clip distance
func New(maxDistance float64) *Tracer {
	return &Tracer{MaxDistance: maxDistance}
}

// TraceFrame generates rays for every emitter and intersects each against
// every absorber, keeping the nearest hit. O(rays × absorbers), which is
// fine at interactive scene sizes.
func (t *Tracer) TraceFrame(objects []*object.Object) []TracedRay {
	shapes := absorberShapes(objects)

	var traced []TracedRay
	for _, o := range objects {
		if !o.IsEmitter() {
			continue
		}
		for i, ray := range GenerateRays(o) {
			segment, hit := t.traceRay(ray, shapes)
			traced = append(traced, TracedRay{
				EmitterID: o.ID,
				Index:     i,
				Segment:   segment,
				Hit:       hit,
			})
		}
	}
	return traced
}

// traceRay finds the nearest absorber hit along the ray. Without a hit
// the segment is clipped at MaxDistance (or the ray's own bound if
// shorter).
func (t *Tracer) traceRay(ray core.Ray, shapes []geometry.Shape) (core.Segment, bool) {
	closest := t.MaxDistance
	if ray.MaxLength > 0 && ray.MaxLength < closest {
		closest = ray.MaxLength
	}

	hitAnything := false
	for _, shape := range shapes {
		if hit, ok := shape.Hit(ray, 0, closest); ok {
			closest = hit.T
			hitAnything = true
		}
	}

	return core.Segment{Start: ray.Origin, End: ray.At(closest)}, hitAnything
}

// absorberShapes collects the intersection geometry of every absorbing
// object in the scene
func absorberShapes(objects []*object.Object) []geometry.Shape {
	var shapes []geometry.Shape
	for _, o := range objects {
		if o.IsAbsorber() {
			shapes = append(shapes, geometry.NewCircle(o.Pos, o.Radius))
		}
	}
	return shapes
}
