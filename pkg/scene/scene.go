package scene

import (
	"errors"
	"strings"

	"github.com/zrygan/go-raycaster/pkg/core"
	"github.com/zrygan/go-raycaster/pkg/object"
	"github.com/zrygan/go-raycaster/pkg/tracer"
)

// ErrInvalidKind is returned by Add when the object kind is not recognized
var ErrInvalidKind = errors.New("scene: unrecognized object kind")

// Scene owns the mutable object collection and drives the per-frame
// trace pass. It is single-owner, single-threaded state: callers apply
// a frame's mutations, then trace.
type Scene struct {
	objects []*object.Object
	nextID  int
	tracer  *tracer.Tracer
}

// New creates an empty scene whose untouched rays are clipped at
// maxTraceDistance
func New(maxTraceDistance float64) *Scene {
	return &Scene{tracer: tracer.New(maxTraceDistance)}
}

// Add inserts a new object of the given kind at pos with default
// parameters and returns its id. Unrecognized kinds fail with
// ErrInvalidKind.
func (s *Scene) Add(kind object.Kind, pos core.Vec2) (int, error) {
	switch kind {
	case object.KindCircle, object.KindIsotropic, object.KindCollimated,
		object.KindSpotlight, object.KindAbsorber:
	default:
		return 0, ErrInvalidKind
	}

	id := s.nextID
	s.nextID++
	s.objects = append(s.objects, object.New(id, kind, pos))
	return id, nil
}

// Move updates an object's position in place. An absent id is a no-op:
// mutations arrive from positionally driven input that may miss.
func (s *Scene) Move(id int, pos core.Vec2) {
	if o := s.find(id); o != nil {
		o.Pos = pos
	}
}

// Rotate adjusts a directional emitter's angle by delta radians.
// Absent ids and non-directional targets are no-ops.
func (s *Scene) Rotate(id int, delta float64) {
	if o := s.find(id); o != nil {
		o.RotateBy(delta)
	}
}

// Resize scales an object's radius by factor. Absent ids and objects
// without a radius are no-ops.
func (s *Scene) Resize(id int, factor float64) {
	if o := s.find(id); o != nil {
		o.Scale(factor)
	}
}

// DeleteAt removes the object whose pick region contains pos and returns
// its id. When pick regions overlap, the most recently created object
// wins. Returns false if nothing is under pos.
func (s *Scene) DeleteAt(pos core.Vec2) (int, bool) {
	for i := len(s.objects) - 1; i >= 0; i-- {
		if s.objects[i].Contains(pos) {
			id := s.objects[i].ID
			s.objects = append(s.objects[:i], s.objects[i+1:]...)
			return id, true
		}
	}
	return 0, false
}

// ObjectAt returns the object whose pick region contains pos, most
// recently created first, or nil
func (s *Scene) ObjectAt(pos core.Vec2) *object.Object {
	for i := len(s.objects) - 1; i >= 0; i-- {
		if s.objects[i].Contains(pos) {
			return s.objects[i]
		}
	}
	return nil
}

// Objects returns a snapshot of the object collection in creation order.
// The slice is the caller's; the objects are live and must be treated as
// read-only.
func (s *Scene) Objects() []*object.Object {
	snapshot := make([]*object.Object, len(s.objects))
	copy(snapshot, s.objects)
	return snapshot
}

// TraceFrame runs the trace pass over the current object state
func (s *Scene) TraceFrame() []tracer.TracedRay {
	return s.tracer.TraceFrame(s.objects)
}

// DebugDump formats every object in the scene, one per line, for the
// debug overlay
func (s *Scene) DebugDump() string {
	var b strings.Builder
	for _, o := range s.objects {
		b.WriteString(o.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// find returns the object with the given id, or nil. Linear scan: the
// collection stays at tens of objects.
func (s *Scene) find(id int) *object.Object {
	for _, o := range s.objects {
		if o.ID == id {
			return o
		}
	}
	return nil
}
