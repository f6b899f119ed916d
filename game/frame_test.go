package game

import (
	"image/color"
	"testing"

	"github.com/meghashyamc/raycast2d/geometry"
	"github.com/meghashyamc/raycast2d/raycast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rect struct {
	cx, cy, w, h float64
	c            color.Color
}

type line struct {
	x0, y0, x1, y1, w float64
	c                 color.Color
}

type circle struct {
	cx, cy, r float64
	c         color.Color
}

// recordingSurface remembers every primitive it was asked to draw.
type recordingSurface struct {
	fills   []color.Color
	rects   []rect
	lines   []line
	circles []circle
}

func (s *recordingSurface) Fill(c color.Color) {
	s.fills = append(s.fills, c)
}

func (s *recordingSurface) FillRect(cx, cy, w, h float64, c color.Color) {
	s.rects = append(s.rects, rect{cx, cy, w, h, c})
}

func (s *recordingSurface) StrokeLine(x0, y0, x1, y1, w float64, c color.Color) {
	s.lines = append(s.lines, line{x0, y0, x1, y1, w, c})
}

func (s *recordingSurface) FillCircle(cx, cy, r float64, c color.Color) {
	s.circles = append(s.circles, circle{cx, cy, r, c})
}

func newTestWorld(t *testing.T) World {
	t.Helper()
	world, err := NewWorld(geometry.CenteredRect(200, 100))
	require.NoError(t, err)
	return world
}

func TestNewWorld_Degenerate(t *testing.T) {
	_, err := NewWorld(geometry.CenteredRect(0, 100))
	assert.ErrorIs(t, err, geometry.ErrDegenerateBoundary)
}

func TestRender_Projected(t *testing.T) {
	world := newTestWorld(t)
	state := NewFrameState(ModeProjected)
	surface := &recordingSurface{}
	s := raycast.DefaultSettings()

	stats := Render(state, world, surface, s)

	assert.Equal(t, FrameStats{Columns: 40, Hits: 40}, stats)
	assert.Equal(t, []color.Color{backgroundColor}, surface.fills)
	assert.Empty(t, surface.lines)
	assert.Empty(t, surface.circles)
	require.Len(t, surface.rects, 40)

	// The centre column looks straight at the right wall 100 units away.
	centre := surface.rects[20]
	assert.Equal(t, 0.0, centre.cx)
	assert.Equal(t, 0.0, centre.cy)
	assert.Equal(t, 5.0, centre.w)
	assert.InDelta(t, 1000, centre.h, 1e-6)

	// Luminosity at 100 is far above the ceiling, so the wall is drawn at
	// the ceiling shade and fully opaque.
	assert.Equal(t, color.NRGBA{R: 229, G: 229, B: 229, A: 255}, centre.c)
}

func TestRender_ProjectedNoHitHasZeroHeight(t *testing.T) {
	world := World{Viewport: geometry.CenteredRect(200, 100)}
	state := NewFrameState(ModeProjected)
	surface := &recordingSurface{}

	stats := Render(state, world, surface, raycast.DefaultSettings())

	assert.Equal(t, 0, stats.Hits)
	require.NotEmpty(t, surface.rects)
	for _, r := range surface.rects {
		assert.Equal(t, 0.0, r.h)
		assert.Equal(t, uint8(0), r.c.(color.NRGBA).A)
	}
}

func TestRender_Overhead(t *testing.T) {
	world := newTestWorld(t)
	state := NewFrameState(ModeOverhead)
	surface := &recordingSurface{}

	stats := Render(state, world, surface, raycast.DefaultSettings())

	assert.Empty(t, surface.rects)
	// One line per ray, one per boundary, one for the facing marker.
	require.Len(t, surface.lines, stats.Columns+len(world.Boundaries)+1)

	centreRay := surface.lines[20]
	assert.Equal(t, rayWidth, centreRay.w)
	assert.InDelta(t, 100, centreRay.x1, 1e-9)
	assert.InDelta(t, 0, centreRay.y1, 1e-9)

	for _, l := range surface.lines[stats.Columns : stats.Columns+4] {
		assert.Equal(t, boundaryWidth, l.w)
		assert.Equal(t, boundaryColor, l.c)
	}

	facing := surface.lines[len(surface.lines)-1]
	assert.Equal(t, line{0, 0, 50, 0, facingWidth, facingColor}, facing)
	assert.Equal(t, []circle{{0, 0, playerRadius, playerColor}}, surface.circles)
}

func TestRender_OverheadNoHitIsUnbounded(t *testing.T) {
	world := World{Viewport: geometry.CenteredRect(200, 100)}
	state := NewFrameState(ModeOverhead)
	surface := &recordingSurface{}

	Render(state, world, surface, raycast.DefaultSettings())

	centreRay := surface.lines[20]
	assert.InDelta(t, unboundedRayLength, centreRay.x1, 1e-9)
	assert.InDelta(t, 0, centreRay.y1, 1e-9)
}

func TestUpdate_MovesPlayer(t *testing.T) {
	state := NewFrameState(ModeProjected)
	state.Moves.Set(ActionForward, true)

	Update(state, DefaultMovementSettings())
	Update(state, DefaultMovementSettings())

	assert.InDelta(t, 5, state.Player.Pos.X, epsilon)
	assert.True(t, state.Moves.Up, "intents persist across ticks")
}

func TestShadeColor_Clamps(t *testing.T) {
	assert.Equal(t, color.NRGBA{A: 0}, shadeColor(0, -0.3))
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, shadeColor(1.4, 1.2))
}
