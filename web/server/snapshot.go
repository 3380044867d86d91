package server

import (
	"image"
	"image/color"
	"image/png"
	"math"
	"net/http"

	"github.com/zrygan/go-raycaster/pkg/core"
)

// Snapshot palette, matching the windowed front-end
var (
	backgroundColor = color.RGBA{0, 0, 0, 255}
	rayColor        = color.RGBA{255, 87, 51, 255}
	objectColor     = color.RGBA{255, 87, 51, 255}
	emitterColor    = color.RGBA{255, 214, 102, 255}
)

// handleSnapshot renders the current frame to a PNG image
func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	traced := s.scene.TraceFrame()
	objects := s.scene.Objects()
	s.mu.Unlock()

	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			img.SetRGBA(x, y, backgroundColor)
		}
	}

	for _, tr := range traced {
		drawLine(img, tr.Segment, rayColor)
	}
	for _, o := range objects {
		if o.IsAbsorber() {
			drawCircle(img, o.Pos, o.Radius, objectColor)
		} else {
			drawCircle(img, o.Pos, 5, emitterColor)
		}
	}

	w.Header().Set("Content-Type", "image/png")
	if err := png.Encode(w, img); err != nil {
		s.logger.Printf("Error encoding snapshot: %v\n", err)
	}
}

// drawLine plots a segment by stepping one pixel at a time along its
// longer axis
func drawLine(img *image.RGBA, seg core.Segment, c color.RGBA) {
	delta := seg.End.Subtract(seg.Start)
	steps := int(math.Max(math.Abs(delta.X), math.Abs(delta.Y)))
	if steps == 0 {
		img.SetRGBA(int(seg.Start.X), int(seg.Start.Y), c)
		return
	}

	step := delta.Multiply(1.0 / float64(steps))
	p := seg.Start
	for i := 0; i <= steps; i++ {
		img.SetRGBA(int(math.Round(p.X)), int(math.Round(p.Y)), c)
		p = p.Add(step)
	}
}

// drawCircle fills a circle by scanning its bounding box
func drawCircle(img *image.RGBA, center core.Vec2, radius float64, c color.RGBA) {
	minX, maxX := int(center.X-radius), int(center.X+radius)
	minY, maxY := int(center.Y-radius), int(center.Y+radius)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			dx := float64(x) - center.X
			dy := float64(y) - center.Y
			if dx*dx+dy*dy <= radius*radius {
				img.SetRGBA(x, y, c)
			}
		}
	}
}
