package game

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

type SnapshotPoint struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Snapshot is a copyable description of the current pose, handy for
// reproducing a view.
type Snapshot struct {
	Position SnapshotPoint `yaml:"position"`
	LookDir  SnapshotPoint `yaml:"look_dir"`
	Mode     string        `yaml:"mode"`
	Columns  int           `yaml:"columns"`
	Hits     int           `yaml:"hits"`
}

func NewSnapshot(state *FrameState, stats FrameStats) Snapshot {
	return Snapshot{
		Position: SnapshotPoint{X: state.Player.Pos.X, Y: state.Player.Pos.Y},
		LookDir:  SnapshotPoint{X: state.Player.LookDir.X, Y: state.Player.LookDir.Y},
		Mode:     state.Mode.String(),
		Columns:  stats.Columns,
		Hits:     stats.Hits,
	}
}

func (s Snapshot) YAML() (string, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	return string(data), nil
}
