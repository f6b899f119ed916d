package game

import (
	"fmt"

	"github.com/meghashyamc/raycast2d/geometry"
	"github.com/meghashyamc/raycast2d/raycast"
)

// World is the static arena geometry. Boundaries are never modified after
// NewWorld returns.
type World struct {
	Viewport   geometry.Rect
	Boundaries []geometry.Boundary
}

// NewWorld walls in the viewport with its four edges.
func NewWorld(viewport geometry.Rect) (World, error) {
	boundaries, err := geometry.BoundariesFromRect(viewport)
	if err != nil {
		return World{}, fmt.Errorf("failed to build world: %w", err)
	}

	return World{
		Viewport:   viewport,
		Boundaries: boundaries,
	}, nil
}

// FrameState is everything that changes between ticks. It is owned by the
// update loop and handed by pointer to Update and Render.
type FrameState struct {
	Player Player
	Moves  Moves
	Mode   RenderMode
}

func NewFrameState(mode RenderMode) *FrameState {
	return &FrameState{
		Player: NewPlayer(),
		Mode:   mode,
	}
}

// FrameStats summarises the rays cast for one frame.
type FrameStats struct {
	Columns int
	Hits    int
}

// Update applies the held intents to the player.
func Update(state *FrameState, s MovementSettings) {
	state.Moves.Apply(&state.Player, s)
}

// Render casts one ray per column and draws the frame in the current mode.
func Render(state *FrameState, world World, surface Surface, s raycast.Settings) FrameStats {
	surface.Fill(backgroundColor)

	columns := raycast.Cast(state.Player.Pos, state.Player.LookDir, world.Boundaries, world.Viewport, s)

	switch state.Mode {
	case ModeOverhead:
		drawOverhead(surface, columns, world, state.Player)
	default:
		drawProjected(surface, columns, s)
	}

	stats := FrameStats{Columns: len(columns)}
	for _, c := range columns {
		if c.OK {
			stats.Hits++
		}
	}

	return stats
}

func drawProjected(surface Surface, columns []raycast.Column, s raycast.Settings) {
	for _, c := range columns {
		shade := c.Shade(s.ShadeCeiling)
		surface.FillRect(c.X, 0, float64(s.Resolution), c.Height(s.Projection), shadeColor(shade, s.Alpha(shade)))
	}
}

func drawOverhead(surface Surface, columns []raycast.Column, world World, player Player) {
	for _, c := range columns {
		drawRay(surface, c.Result)
	}

	for _, boundary := range world.Boundaries {
		drawBoundary(surface, boundary)
	}

	drawPlayer(surface, player)
}

func drawRay(surface Surface, r raycast.Result) {
	end := r.Ray.Origin.Add(r.Ray.Dir.Scale(unboundedRayLength))
	if r.OK {
		end = r.Hit.Point
	}
	surface.StrokeLine(r.Ray.Origin.X, r.Ray.Origin.Y, end.X, end.Y, rayWidth, rayColor)
}

func drawBoundary(surface Surface, b geometry.Boundary) {
	start, end := b.Origin(), b.End()
	surface.StrokeLine(start.X, start.Y, end.X, end.Y, boundaryWidth, boundaryColor)
}

func drawPlayer(surface Surface, p Player) {
	surface.FillCircle(p.Pos.X, p.Pos.Y, playerRadius, playerColor)

	tip := p.Pos.Add(p.LookDir.Scale(facingLength))
	surface.StrokeLine(p.Pos.X, p.Pos.Y, tip.X, tip.Y, facingWidth, facingColor)
}
