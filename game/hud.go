package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/meghashyamc/raycast2d/assets"
)

const (
	hudMarginX    = 12
	hudMarginY    = 10
	hudLineHeight = 20
)

func hudLines(state *FrameState, stats FrameStats, tps float64) []string {
	return []string{
		fmt.Sprintf("Mode: %s (Tab to switch)", state.Mode),
		fmt.Sprintf("Pos: %.1f, %.1f  Look: %.2f, %.2f",
			state.Player.Pos.X, state.Player.Pos.Y, state.Player.LookDir.X, state.Player.LookDir.Y),
		fmt.Sprintf("Rays: %d  Hits: %d  TPS: %.0f", stats.Columns, stats.Hits, tps),
	}
}

func drawHUD(screen *ebiten.Image, lines []string) {
	for i, line := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(hudMarginX, hudMarginY+float64(i*hudLineHeight))
		op.ColorScale.ScaleWithColor(color.Black)
		text.Draw(screen, line, assets.HUDFont, op)
	}
}
