package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/meghashyamc/raycast2d/geometry"
)

// ebitenSurface draws world coordinates (centred, y up) onto an ebiten
// image (top-left origin, y down).
type ebitenSurface struct {
	screen   *ebiten.Image
	viewport geometry.Rect
}

func newEbitenSurface(screen *ebiten.Image, viewport geometry.Rect) *ebitenSurface {
	return &ebitenSurface{
		screen:   screen,
		viewport: viewport,
	}
}

func (s *ebitenSurface) toScreen(x, y float64) (float32, float32) {
	return float32(x - s.viewport.MinX), float32(s.viewport.MaxY - y)
}

func (s *ebitenSurface) Fill(c color.Color) {
	s.screen.Fill(c)
}

func (s *ebitenSurface) FillRect(cx, cy, width, height float64, c color.Color) {
	if width <= 0 || height <= 0 {
		return
	}
	left, top := s.toScreen(cx-width/2, cy+height/2)
	vector.FillRect(s.screen, left, top, float32(width), float32(height), c, false)
}

func (s *ebitenSurface) StrokeLine(x0, y0, x1, y1, width float64, c color.Color) {
	sx0, sy0 := s.toScreen(x0, y0)
	sx1, sy1 := s.toScreen(x1, y1)
	vector.StrokeLine(s.screen, sx0, sy0, sx1, sy1, float32(width), c, true)
}

func (s *ebitenSurface) FillCircle(cx, cy, radius float64, c color.Color) {
	sx, sy := s.toScreen(cx, cy)
	vector.FillCircle(s.screen, sx, sy, float32(radius), c, true)
}
