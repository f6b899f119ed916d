package game

import (
	"testing"

	"github.com/meghashyamc/raycast2d/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestSnapshot_YAML(t *testing.T) {
	state := NewFrameState(ModeOverhead)
	state.Player.Pos = geometry.Vector{X: 12.5, Y: -3}

	out, err := NewSnapshot(state, FrameStats{Columns: 240, Hits: 238}).YAML()
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))

	assert.Equal(t, "overhead", decoded["mode"])
	assert.Equal(t, 240, decoded["columns"])
	assert.Equal(t, 238, decoded["hits"])
	assert.Equal(t, map[string]any{"x": 12.5, "y": -3}, decoded["position"])
}
