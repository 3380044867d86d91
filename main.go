package main

import (
	"flag"
	"image/color"
	"log"
	"math"
	"os"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/joho/godotenv"

	"github.com/zrygan/go-raycaster/pkg/core"
	"github.com/zrygan/go-raycaster/pkg/scene"
)

const (
	defaultWidth  = 800
	defaultHeight = 600
	windowTitle   = "Raycaster"
)

// Palette
var (
	rayColor      = color.RGBA{255, 87, 51, 255}
	absorberColor = color.RGBA{255, 87, 51, 255}
	emitterColor  = color.RGBA{255, 214, 102, 255}
)

// Keybindings: object creation happens at the cursor, the remaining
// actions target the object under the cursor
var keyActions = map[ebiten.Key]scene.Action{
	ebiten.KeyS:     scene.ActionCreateCircle,
	ebiten.KeyP:     scene.ActionCreateIsotropic,
	ebiten.KeyC:     scene.ActionCreateCollimated,
	ebiten.KeyO:     scene.ActionCreateSpotlight,
	ebiten.KeyA:     scene.ActionCreateAbsorber,
	ebiten.KeyX:     scene.ActionDeleteAtCursor,
	ebiten.KeyE:     scene.ActionRotateCW,
	ebiten.KeyQ:     scene.ActionRotateCCW,
	ebiten.KeyEqual: scene.ActionGrow,
	ebiten.KeyMinus: scene.ActionShrink,
}

// Game drives the scene from input events and draws the traced frame
type Game struct {
	scene       *scene.Scene
	dragID      int // id of the object being dragged, -1 when none
	showOverlay bool
}

// NewGame creates a game with an empty scene clipped at the viewport
// diagonal
func NewGame(width, height int) *Game {
	maxDist := math.Hypot(float64(width), float64(height))
	return &Game{
		scene:  scene.New(maxDist),
		dragID: -1,
	}
}

// Update applies this tick's input to the scene. All mutations land
// before Draw traces the frame.
func (g *Game) Update() error {
	x, y := ebiten.CursorPosition()
	cursor := core.NewVec2(float64(x), float64(y))

	for key, action := range keyActions {
		if inpututil.IsKeyJustPressed(key) {
			if err := g.scene.HandleAction(action, cursor); err != nil {
				log.Printf("Action failed: %v", err)
			}
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		log.Print("Scene dump:\n" + g.scene.DebugDump())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.showOverlay = !g.showOverlay
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	// Left mouse drags the object under the cursor
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		if o := g.scene.ObjectAt(cursor); o != nil {
			g.dragID = o.ID
		}
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) && g.dragID >= 0:
		g.scene.Move(g.dragID, cursor)
	default:
		g.dragID = -1
	}

	return nil
}

// Draw traces the frame and renders segments and objects
func (g *Game) Draw(screen *ebiten.Image) {
	for _, tr := range g.scene.TraceFrame() {
		vector.StrokeLine(screen,
			float32(tr.Segment.Start.X), float32(tr.Segment.Start.Y),
			float32(tr.Segment.End.X), float32(tr.Segment.End.Y),
			1, rayColor, true)
	}

	for _, o := range g.scene.Objects() {
		if o.IsAbsorber() {
			vector.DrawFilledCircle(screen,
				float32(o.Pos.X), float32(o.Pos.Y), float32(o.Radius),
				absorberColor, true)
		} else {
			vector.DrawFilledCircle(screen,
				float32(o.Pos.X), float32(o.Pos.Y), 5,
				emitterColor, true)
		}
	}

	if g.showOverlay {
		ebitenutil.DebugPrint(screen, g.scene.DebugDump())
	}
}

// Layout implements ebiten.Game
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func main() {
	// Optional .env file for window settings
	_ = godotenv.Load()

	width := flag.Int("width", envInt("RAYCASTER_WIDTH", defaultWidth), "Window width in pixels")
	height := flag.Int("height", envInt("RAYCASTER_HEIGHT", defaultHeight), "Window height in pixels")
	flag.Parse()

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle(windowTitle)

	log.Printf("Starting %s (%dx%d)", windowTitle, *width, *height)
	log.Print("Keys: S circle, P isotropic, C collimated, O spotlight, A absorber, " +
		"X delete, Q/E rotate, -/= resize, D dump, Tab overlay, Esc quit")

	if err := ebiten.RunGame(NewGame(*width, *height)); err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}

// envInt reads an integer environment variable, falling back to def
func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
