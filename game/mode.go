package game

import (
	"errors"
	"fmt"
	"strings"
)

type RenderMode int

const (
	// ModeProjected draws the pseudo-3D column strip.
	ModeProjected RenderMode = iota
	// ModeOverhead draws the 2D wireframe of rays, walls and player.
	ModeOverhead
)

var ErrUnknownRenderMode = errors.New("unknown render mode")

func (m RenderMode) Toggle() RenderMode {
	if m == ModeOverhead {
		return ModeProjected
	}
	return ModeOverhead
}

func (m RenderMode) String() string {
	switch m {
	case ModeOverhead:
		return "overhead"
	default:
		return "projected"
	}
}

func ParseRenderMode(value string) (RenderMode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "projected", "3d":
		return ModeProjected, nil
	case "overhead", "2d":
		return ModeOverhead, nil
	}
	return ModeProjected, fmt.Errorf("parse render mode %q: %w", value, ErrUnknownRenderMode)
}
