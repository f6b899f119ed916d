package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	toggleModeKey = ebiten.KeyTab
	snapshotKey   = ebiten.KeyC
)

// keyMap binds physical keys to movement actions. Keys that are not in the
// map are ignored.
type keyMap map[ebiten.Key]Action

func defaultKeyMap() keyMap {
	return keyMap{
		ebiten.KeyW:          ActionForward,
		ebiten.KeyS:          ActionBack,
		ebiten.KeyA:          ActionStrafeLeft,
		ebiten.KeyD:          ActionStrafeRight,
		ebiten.KeyArrowRight: ActionRotateClockwise,
		ebiten.KeyArrowLeft:  ActionRotateCounterClockwise,
	}
}
