package game

import (
	"math"
	"testing"

	"github.com/meghashyamc/raycast2d/geometry"
	"github.com/stretchr/testify/assert"
)

const epsilon = 1e-9

func TestMoves_ForwardOneTick(t *testing.T) {
	p := NewPlayer()
	moves := Moves{}
	moves.Set(ActionForward, true)

	moves.Apply(&p, DefaultMovementSettings())

	assert.Equal(t, geometry.Vector{X: 2.5, Y: 0}, p.Pos)
	assert.Equal(t, geometry.Vector{X: 1, Y: 0}, p.LookDir)
}

func TestMoves_Delta(t *testing.T) {
	look := geometry.Vector{X: 0, Y: 1}
	s := DefaultMovementSettings()

	tests := []struct {
		name      string
		moves     Moves
		wantVel   geometry.Vector
		wantTheta float64
	}{
		{"idle", Moves{}, geometry.Vector{}, 0},
		{"forward", Moves{Up: true}, geometry.Vector{X: 0, Y: 2.5}, 0},
		{"back", Moves{Down: true}, geometry.Vector{X: 0, Y: -2.5}, 0},
		// perp of (0,1) is (-1,0)
		{"strafe left", Moves{Left: true}, geometry.Vector{X: 2.5, Y: 0}, 0},
		{"strafe right", Moves{Right: true}, geometry.Vector{X: -2.5, Y: 0}, 0},
		{"clockwise", Moves{Clock: true}, geometry.Vector{}, 0.05},
		{"counter clockwise", Moves{AntiClock: true}, geometry.Vector{}, -0.05},
		{"forward and back cancel", Moves{Up: true, Down: true}, geometry.Vector{}, 0},
		{"strafes cancel", Moves{Left: true, Right: true}, geometry.Vector{}, 0},
		{"turns cancel", Moves{Clock: true, AntiClock: true}, geometry.Vector{}, 0},
		{"everything cancels", Moves{true, true, true, true, true, true}, geometry.Vector{}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			vel, theta := tc.moves.Delta(look, s)
			assert.InDelta(t, tc.wantVel.X, vel.X, epsilon)
			assert.InDelta(t, tc.wantVel.Y, vel.Y, epsilon)
			assert.InDelta(t, tc.wantTheta, theta, epsilon)
		})
	}
}

func TestMoves_SetPressAndRelease(t *testing.T) {
	var moves Moves

	moves.Set(ActionRotateClockwise, true)
	moves.Set(ActionStrafeLeft, true)
	assert.Equal(t, Moves{Left: true, Clock: true}, moves)

	moves.Set(ActionRotateClockwise, false)
	assert.Equal(t, Moves{Left: true}, moves)

	// Unknown actions change nothing.
	moves.Set(Action(99), true)
	assert.Equal(t, Moves{Left: true}, moves)
}

func TestPlayer_LookDirStaysUnit(t *testing.T) {
	p := NewPlayer()
	p.LookDir = geometry.Vector{X: 0.6, Y: 0.8}

	for i := 0; i < 10000; i++ {
		theta := 0.05
		if i%7 == 0 {
			theta = -0.31
		}
		p.Turn(theta)
		assert.InDelta(t, 1, p.LookDir.Magnitude(), 1e-12)
	}
}

func TestPlayer_TurnQuarter(t *testing.T) {
	p := NewPlayer()
	for i := 0; i < 10; i++ {
		p.Turn(math.Pi / 20)
	}

	assert.InDelta(t, 0, p.LookDir.X, 1e-9)
	assert.InDelta(t, 1, p.LookDir.Y, 1e-9)
}
