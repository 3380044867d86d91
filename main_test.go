package main

import (
	"os"
	"testing"

	"github.com/zrygan/go-raycaster/pkg/object"
	"github.com/zrygan/go-raycaster/pkg/scene"
)

func TestNewGame(t *testing.T) {
	g := NewGame(800, 600)

	if g.dragID != -1 {
		t.Errorf("Expected no drag target, got id %d", g.dragID)
	}
	if len(g.scene.Objects()) != 0 {
		t.Errorf("Expected empty scene, got %d objects", len(g.scene.Objects()))
	}

	w, h := g.Layout(800, 600)
	if w != 800 || h != 600 {
		t.Errorf("Expected layout 800x600, got %dx%d", w, h)
	}
}

func TestKeyActions_CoverAllCreateKinds(t *testing.T) {
	kinds := map[scene.Action]object.Kind{
		scene.ActionCreateCircle:     object.KindCircle,
		scene.ActionCreateIsotropic:  object.KindIsotropic,
		scene.ActionCreateCollimated: object.KindCollimated,
		scene.ActionCreateSpotlight:  object.KindSpotlight,
		scene.ActionCreateAbsorber:   object.KindAbsorber,
	}

	bound := make(map[scene.Action]bool)
	for _, action := range keyActions {
		bound[action] = true
	}
	for action, kind := range kinds {
		if !bound[action] {
			t.Errorf("No key bound for creating %s", kind)
		}
	}
}

func TestEnvInt(t *testing.T) {
	const key = "RAYCASTER_TEST_VALUE"

	os.Unsetenv(key)
	if got := envInt(key, 42); got != 42 {
		t.Errorf("Expected fallback 42, got %d", got)
	}

	os.Setenv(key, "77")
	defer os.Unsetenv(key)
	if got := envInt(key, 42); got != 77 {
		t.Errorf("Expected 77, got %d", got)
	}

	os.Setenv(key, "not a number")
	if got := envInt(key, 42); got != 42 {
		t.Errorf("Expected fallback on bad value, got %d", got)
	}
}
