package scene

import (
	"fmt"
	"math"

	"github.com/zrygan/go-raycaster/pkg/core"
	"github.com/zrygan/go-raycaster/pkg/object"
)

// Action identifies a scene-editing command issued at a cursor position
type Action int

const (
	ActionCreateCircle Action = iota
	ActionCreateIsotropic
	ActionCreateCollimated
	ActionCreateSpotlight
	ActionCreateAbsorber
	ActionDeleteAtCursor
	ActionRotateCW
	ActionRotateCCW
	ActionGrow
	ActionShrink
)

// Per-keypress adjustment steps
const (
	RotateStep = math.Pi / 36 // 5 degrees
	ScaleStep  = 1.1
)

var actionNames = map[string]Action{
	"create-circle":     ActionCreateCircle,
	"create-isotropic":  ActionCreateIsotropic,
	"create-collimated": ActionCreateCollimated,
	"create-spotlight":  ActionCreateSpotlight,
	"create-absorber":   ActionCreateAbsorber,
	"delete":            ActionDeleteAtCursor,
	"rotate-cw":         ActionRotateCW,
	"rotate-ccw":        ActionRotateCCW,
	"grow":              ActionGrow,
	"shrink":            ActionShrink,
}

// ParseAction maps an action name from the wire to an Action
func ParseAction(name string) (Action, error) {
	if a, ok := actionNames[name]; ok {
		return a, nil
	}
	return 0, fmt.Errorf("scene: unknown action %q", name)
}

// HandleAction applies a user action at the cursor position. Actions that
// target an object under the cursor silently do nothing when the cursor
// misses; only creation with a bad kind can fail.
//
// Screen coordinates have y pointing down, so clockwise on screen is a
// positive angle delta.
func (s *Scene) HandleAction(a Action, cursor core.Vec2) error {
	switch a {
	case ActionCreateCircle:
		_, err := s.Add(object.KindCircle, cursor)
		return err
	case ActionCreateIsotropic:
		_, err := s.Add(object.KindIsotropic, cursor)
		return err
	case ActionCreateCollimated:
		_, err := s.Add(object.KindCollimated, cursor)
		return err
	case ActionCreateSpotlight:
		_, err := s.Add(object.KindSpotlight, cursor)
		return err
	case ActionCreateAbsorber:
		_, err := s.Add(object.KindAbsorber, cursor)
		return err
	case ActionDeleteAtCursor:
		s.DeleteAt(cursor)
		return nil
	case ActionRotateCW:
		s.rotateAt(cursor, RotateStep)
		return nil
	case ActionRotateCCW:
		s.rotateAt(cursor, -RotateStep)
		return nil
	case ActionGrow:
		s.resizeAt(cursor, ScaleStep)
		return nil
	case ActionShrink:
		s.resizeAt(cursor, 1/ScaleStep)
		return nil
	default:
		return fmt.Errorf("scene: unknown action %d", a)
	}
}

func (s *Scene) rotateAt(cursor core.Vec2, delta float64) {
	if o := s.ObjectAt(cursor); o != nil {
		o.RotateBy(delta)
	}
}

func (s *Scene) resizeAt(cursor core.Vec2, factor float64) {
	if o := s.ObjectAt(cursor); o != nil {
		o.Scale(factor)
	}
}
