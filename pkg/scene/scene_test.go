package scene

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/zrygan/go-raycaster/pkg/core"
	"github.com/zrygan/go-raycaster/pkg/object"
)

func TestScene_Add(t *testing.T) {
	s := New(1000)

	id, err := s.Add(object.KindIsotropic, core.NewVec2(10, 20))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	objects := s.Objects()
	if len(objects) != 1 {
		t.Fatalf("Expected 1 object, got %d", len(objects))
	}
	if objects[0].ID != id {
		t.Errorf("Expected id %d, got %d", id, objects[0].ID)
	}
	if objects[0].Pos != core.NewVec2(10, 20) {
		t.Errorf("Expected position (10, 20), got %v", objects[0].Pos)
	}
	if objects[0].RayCount != object.DefaultRayCount {
		t.Errorf("Expected default ray count %d, got %d", object.DefaultRayCount, objects[0].RayCount)
	}
}

func TestScene_Add_InvalidKind(t *testing.T) {
	s := New(1000)

	_, err := s.Add(object.Kind(42), core.NewVec2(0, 0))
	if !errors.Is(err, ErrInvalidKind) {
		t.Errorf("Expected ErrInvalidKind, got %v", err)
	}
	if len(s.Objects()) != 0 {
		t.Errorf("Expected no objects after failed add, got %d", len(s.Objects()))
	}
}

func TestScene_IDsNeverReused(t *testing.T) {
	s := New(1000)

	first, _ := s.Add(object.KindCircle, core.NewVec2(0, 0))
	s.DeleteAt(core.NewVec2(0, 0))
	second, _ := s.Add(object.KindCircle, core.NewVec2(0, 0))

	if second <= first {
		t.Errorf("Expected monotonically increasing ids, got %d then %d", first, second)
	}
}

func TestScene_Move(t *testing.T) {
	s := New(1000)
	id, _ := s.Add(object.KindAbsorber, core.NewVec2(0, 0))

	target := core.NewVec2(50, -30)
	s.Move(id, target)

	if got := s.Objects()[0].Pos; got != target {
		t.Errorf("Expected position %v, got %v", target, got)
	}

	// Absent id is a no-op
	s.Move(id+100, core.NewVec2(1, 1))
	if got := s.Objects()[0].Pos; got != target {
		t.Errorf("Expected position unchanged at %v, got %v", target, got)
	}
}

func TestScene_Rotate(t *testing.T) {
	s := New(1000)
	collimated, _ := s.Add(object.KindCollimated, core.NewVec2(0, 0))
	absorber, _ := s.Add(object.KindAbsorber, core.NewVec2(200, 200))

	s.Rotate(collimated, math.Pi/2)
	s.Rotate(collimated, -math.Pi/2)
	if angle := s.Objects()[0].Angle; math.Abs(angle) > 1e-9 {
		t.Errorf("Expected angle restored to 0, got %f", angle)
	}

	// Rotation on a non-directional target is a no-op, not an error
	s.Rotate(absorber, math.Pi)
	if angle := s.Objects()[1].Angle; angle != 0 {
		t.Errorf("Expected absorber angle to stay 0, got %f", angle)
	}
}

func TestScene_DeleteAt(t *testing.T) {
	s := New(1000)
	id, _ := s.Add(object.KindCircle, core.NewVec2(100, 100))

	removed, ok := s.DeleteAt(core.NewVec2(110, 100))
	if !ok {
		t.Fatal("Expected deletion to find the circle")
	}
	if removed != id {
		t.Errorf("Expected removed id %d, got %d", id, removed)
	}
	if len(s.Objects()) != 0 {
		t.Errorf("Expected empty scene, got %d objects", len(s.Objects()))
	}

	// Nothing under the cursor
	if _, ok := s.DeleteAt(core.NewVec2(0, 0)); ok {
		t.Error("Expected no deletion on empty space")
	}
}

func TestScene_DeleteAt_MostRecentWins(t *testing.T) {
	s := New(1000)
	older, _ := s.Add(object.KindCircle, core.NewVec2(100, 100))
	newer, _ := s.Add(object.KindCircle, core.NewVec2(110, 100))

	// Pick regions overlap; the most recently created object goes first
	removed, ok := s.DeleteAt(core.NewVec2(105, 100))
	if !ok {
		t.Fatal("Expected deletion")
	}
	if removed != newer {
		t.Errorf("Expected most recent id %d removed, got %d", newer, removed)
	}

	removed, ok = s.DeleteAt(core.NewVec2(105, 100))
	if !ok || removed != older {
		t.Errorf("Expected remaining id %d removed, got %d (ok=%t)", older, removed, ok)
	}
}

func TestScene_TraceFrame(t *testing.T) {
	s := New(1000)
	emitterID, _ := s.Add(object.KindIsotropic, core.NewVec2(0, 0))
	s.Add(object.KindAbsorber, core.NewVec2(200, 0))

	traced := s.TraceFrame()
	if len(traced) != object.DefaultRayCount {
		t.Fatalf("Expected %d traced rays, got %d", object.DefaultRayCount, len(traced))
	}
	for _, tr := range traced {
		if tr.EmitterID != emitterID {
			t.Errorf("Expected emitter id %d, got %d", emitterID, tr.EmitterID)
		}
	}

	// Rays regenerate from current state: after moving the emitter all
	// segments start at the new position
	s.Move(emitterID, core.NewVec2(5, 5))
	for _, tr := range s.TraceFrame() {
		if tr.Segment.Start != core.NewVec2(5, 5) {
			t.Errorf("Expected segment start (5, 5), got %v", tr.Segment.Start)
		}
	}
}

func TestScene_DebugDump(t *testing.T) {
	s := New(1000)
	s.Add(object.KindSpotlight, core.NewVec2(1, 2))
	s.Add(object.KindAbsorber, core.NewVec2(3, 4))

	dump := s.DebugDump()
	lines := strings.Split(strings.TrimRight(dump, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 dump lines, got %d: %q", len(lines), dump)
	}
	if !strings.Contains(lines[0], "spotlight") || !strings.Contains(lines[1], "absorber") {
		t.Errorf("Expected kinds in dump, got %q", dump)
	}
}
