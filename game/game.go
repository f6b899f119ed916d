package game

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/meghashyamc/raycast2d/config"
	"github.com/meghashyamc/raycast2d/geometry"
	"github.com/meghashyamc/raycast2d/logger"
	"github.com/meghashyamc/raycast2d/raycast"
)

// Settings gathers everything the frame loop needs from configuration.
type Settings struct {
	Raycast     raycast.Settings
	Movement    MovementSettings
	InitialMode RenderMode
	ShowHUD     bool
	// StatsInterval is how often frame stats are logged. Zero disables it.
	StatsInterval time.Duration
}

func SettingsFromConfig(cfg *config.Config) (Settings, error) {
	mode, err := ParseRenderMode(cfg.GetRenderMode())
	if err != nil {
		return Settings{}, err
	}

	return Settings{
		Raycast: raycast.Settings{
			Resolution:   cfg.GetResolution(),
			FOVDegrees:   cfg.GetFOVDegrees(),
			Projection:   cfg.GetProjection(),
			ShadeCeiling: cfg.GetShadeCeiling(),
			Lighting: raycast.LuminosityModel{
				Scale:   cfg.GetLightingScale(),
				Divisor: cfg.GetLightingDivisor(),
				Ambient: cfg.GetLightingAmbient(),
			},
		},
		Movement: MovementSettings{
			Step:         cfg.GetMovementStep(),
			RotationStep: cfg.GetRotationStep(),
		},
		InitialMode:   mode,
		ShowHUD:       cfg.GetShowHUD(),
		StatsInterval: time.Duration(cfg.GetStatsIntervalSeconds()) * time.Second,
	}, nil
}

// Game is the ebiten host around the frame loop: it turns key events into
// intents, runs Update once per tick and Render once per draw.
type Game struct {
	cfg        *config.Config
	settings   Settings
	world      World
	state      *FrameState
	keys       keyMap
	lastStats  FrameStats
	statsTimer *Timer
	keyBuffer  []ebiten.Key
	copyText   func(string) error
	logger     logger.Logger
}

func NewGame(cfg *config.Config, log logger.Logger) (*Game, error) {
	settings, err := SettingsFromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to read game settings: %w", err)
	}

	viewport := geometry.CenteredRect(float64(cfg.GetWindowWidth()), float64(cfg.GetWindowHeight()))
	world, err := NewWorld(viewport)
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:        cfg,
		settings:   settings,
		world:      world,
		state:      NewFrameState(settings.InitialMode),
		keys:       defaultKeyMap(),
		statsTimer: NewTimer(settings.StatsInterval, time.Second/time.Duration(ebiten.DefaultTPS)),
		copyText:   clipboard.WriteAll,
		logger:     log,
	}

	g.logger.Info("game initialized",
		"boundaries", len(world.Boundaries),
		"resolution", settings.Raycast.Resolution,
		"fov_degrees", settings.Raycast.FOVDegrees,
		"mode", settings.InitialMode.String(),
	)
	return g, nil
}

func (g *Game) Run() error {
	g.logger.Info("starting game")
	g.setupWindow()

	// Running the game calls Update() on every 'tick'
	return ebiten.RunGame(g)
}

func (g *Game) setupWindow() {
	ebiten.SetWindowSize(g.cfg.GetWindowWidth(), g.cfg.GetWindowHeight())
	ebiten.SetWindowTitle(g.cfg.GetWindowTitle())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
}

func (g *Game) Update() error {
	g.keyBuffer = inpututil.AppendJustPressedKeys(g.keyBuffer[:0])
	for _, key := range g.keyBuffer {
		g.handleKey(key, true)
	}

	g.keyBuffer = inpututil.AppendJustReleasedKeys(g.keyBuffer[:0])
	for _, key := range g.keyBuffer {
		g.handleKey(key, false)
	}

	Update(g.state, g.settings.Movement)

	g.statsTimer.Update()
	if g.statsTimer.IsReady() {
		g.logger.Debug("frame stats",
			"columns", g.lastStats.Columns,
			"hits", g.lastStats.Hits,
			"pos", g.state.Player.Pos,
			"look_dir", g.state.Player.LookDir,
		)
		g.statsTimer.Reset()
	}

	return nil
}

func (g *Game) handleKey(key ebiten.Key, pressed bool) {
	if action, ok := g.keys[key]; ok {
		g.state.Moves.Set(action, pressed)
		return
	}

	if !pressed {
		return
	}

	switch key {
	case toggleModeKey:
		g.state.Mode = g.state.Mode.Toggle()
		g.logger.Debug("render mode switched", "mode", g.state.Mode.String())
	case snapshotKey:
		g.copySnapshot()
	}
}

func (g *Game) copySnapshot() {
	snapshot, err := NewSnapshot(g.state, g.lastStats).YAML()
	if err != nil {
		g.logger.Error("failed to build snapshot", "err", err)
		return
	}

	if err := g.copyText(snapshot); err != nil {
		g.logger.Warn("failed to copy snapshot to clipboard", "err", err)
		return
	}
	g.logger.Info("snapshot copied to clipboard")
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.lastStats = Render(g.state, g.world, newEbitenSurface(screen, g.world.Viewport), g.settings.Raycast)

	if g.settings.ShowHUD {
		drawHUD(screen, hudLines(g.state, g.lastStats, ebiten.ActualTPS()))
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.cfg.GetWindowWidth(), g.cfg.GetWindowHeight()
}
