package game

import (
	"github.com/meghashyamc/raycast2d/geometry"
)

// Action is a logical movement input, independent of the physical key.
type Action int

const (
	ActionForward Action = iota
	ActionBack
	ActionStrafeLeft
	ActionStrafeRight
	ActionRotateClockwise
	ActionRotateCounterClockwise
)

type MovementSettings struct {
	// Step is the translation per tick along the look direction.
	Step float64
	// RotationStep is the turn per tick in radians.
	RotationStep float64
}

func DefaultMovementSettings() MovementSettings {
	return MovementSettings{
		Step:         2.5,
		RotationStep: 0.05,
	}
}

// Moves holds the six held-down intents. Each flag stays set from press to
// release, across any number of ticks.
type Moves struct {
	Up        bool
	Down      bool
	Left      bool
	Right     bool
	Clock     bool
	AntiClock bool
}

// Set records a press or release. Unknown actions are ignored.
func (m *Moves) Set(action Action, pressed bool) {
	switch action {
	case ActionForward:
		m.Up = pressed
	case ActionBack:
		m.Down = pressed
	case ActionStrafeLeft:
		m.Left = pressed
	case ActionStrafeRight:
		m.Right = pressed
	case ActionRotateClockwise:
		m.Clock = pressed
	case ActionRotateCounterClockwise:
		m.AntiClock = pressed
	}
}

// Delta sums every active intent into one translation and one turn, so
// opposing intents cancel out.
func (m Moves) Delta(lookDir geometry.Vector, s MovementSettings) (geometry.Vector, float64) {
	var velocity geometry.Vector
	var theta float64

	forward := lookDir.Scale(s.Step)
	sideways := lookDir.Perp().Scale(s.Step)

	if m.Up {
		velocity = velocity.Add(forward)
	}
	if m.Down {
		velocity = velocity.Sub(forward)
	}
	if m.Left {
		velocity = velocity.Sub(sideways)
	}
	if m.Right {
		velocity = velocity.Add(sideways)
	}
	if m.Clock {
		theta += s.RotationStep
	}
	if m.AntiClock {
		theta -= s.RotationStep
	}

	return velocity, theta
}

// Apply moves the player by one tick's worth of input.
func (m Moves) Apply(p *Player, s MovementSettings) {
	velocity, theta := m.Delta(p.LookDir, s)
	p.Translate(velocity)
	p.Turn(theta)
}
