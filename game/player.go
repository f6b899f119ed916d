package game

import (
	"github.com/meghashyamc/raycast2d/geometry"
)

// Player is the camera: an eye position and a unit look direction.
type Player struct {
	Pos     geometry.Vector
	LookDir geometry.Vector
}

func NewPlayer() Player {
	return Player{
		Pos:     geometry.Vector{X: 0, Y: 0},
		LookDir: geometry.Vector{X: 1, Y: 0},
	}
}

func (p *Player) Translate(velocity geometry.Vector) {
	p.Pos = p.Pos.Add(velocity)
}

// Turn rotates the look direction and renormalizes it so repeated turns
// don't drift off unit length.
func (p *Player) Turn(theta float64) {
	p.LookDir = p.LookDir.Rotate(theta).Normalize()
}
