package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const keyEnv = "ENV"
const envLocal = "local"

const (
	defaultWindowWidth          = 1200
	defaultWindowHeight         = 800
	defaultWindowTitle          = "raycast2d"
	defaultResolution           = 5
	defaultFOVDegrees           = 60.0
	defaultRenderMode           = "projected"
	defaultProjection           = 100000.0
	defaultShadeCeiling         = 0.9
	defaultLightingScale        = 5000.0
	defaultLightingDivisor      = 5.0
	defaultLightingAmbient      = 0.2
	defaultMovementStep         = 2.5
	defaultRotationStep         = 0.05
	defaultLogLevel             = "info"
	defaultStatsIntervalSeconds = 5
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	config *viper.Viper
}

func Load(env string) (*Config, error) {

	if len(env) == 0 {
		if env = os.Getenv(keyEnv); len(env) == 0 {
			env = envLocal
		}
	}

	configPath, err := getConfigPath(env)

	viperConfig := viper.New()
	if err == nil {
		viperConfig.SetConfigFile(configPath)
		if err := viperConfig.ReadInConfig(); err != nil {
			slog.Warn(fmt.Sprintf("error reading config file, %s", err))
		}
	}
	viperConfig.AutomaticEnv()

	return New(viperConfig), nil
}

// New wraps an already populated viper instance.
func New(v *viper.Viper) *Config {
	return &Config{
		config: v,
	}
}

// Validate rejects settings the renderer cannot work with.
func (c *Config) Validate() error {
	if c.GetWindowWidth() <= 0 || c.GetWindowHeight() <= 0 {
		return fmt.Errorf("window size %dx%d: %w", c.GetWindowWidth(), c.GetWindowHeight(), ErrInvalidConfig)
	}
	if c.GetResolution() <= 0 {
		return fmt.Errorf("render resolution %d: %w", c.GetResolution(), ErrInvalidConfig)
	}
	if fov := c.GetFOVDegrees(); fov <= 0 || fov >= 180 {
		return fmt.Errorf("field of view %g degrees: %w", fov, ErrInvalidConfig)
	}
	if c.GetLightingDivisor() == 0 {
		return fmt.Errorf("lighting divisor 0: %w", ErrInvalidConfig)
	}

	return nil
}

func (c *Config) GetWindowWidth() int {
	return c.getInt("WINDOW_WIDTH", "window.width", defaultWindowWidth)
}

func (c *Config) GetWindowHeight() int {
	return c.getInt("WINDOW_HEIGHT", "window.height", defaultWindowHeight)
}

func (c *Config) GetWindowTitle() string {
	return c.getString("WINDOW_TITLE", "window.title", defaultWindowTitle)
}

// GetResolution is the width of one projected column in pixels.
func (c *Config) GetResolution() int {
	return c.getInt("RENDER_RESOLUTION", "render.resolution", defaultResolution)
}

func (c *Config) GetFOVDegrees() float64 {
	return c.getFloat("RENDER_FOV_DEGREES", "render.fov_degrees", defaultFOVDegrees)
}

// GetRenderMode is the mode the game starts in, "projected" or "overhead".
func (c *Config) GetRenderMode() string {
	return c.getString("RENDER_MODE", "render.mode", defaultRenderMode)
}

func (c *Config) GetProjection() float64 {
	return c.getFloat("RENDER_PROJECTION", "render.projection", defaultProjection)
}

func (c *Config) GetShadeCeiling() float64 {
	return c.getFloat("RENDER_SHADE_CEILING", "render.shade_ceiling", defaultShadeCeiling)
}

func (c *Config) GetLightingScale() float64 {
	return c.getFloat("LIGHTING_SCALE", "lighting.scale", defaultLightingScale)
}

func (c *Config) GetLightingDivisor() float64 {
	return c.getFloat("LIGHTING_DIVISOR", "lighting.divisor", defaultLightingDivisor)
}

func (c *Config) GetLightingAmbient() float64 {
	return c.getFloat("LIGHTING_AMBIENT", "lighting.ambient", defaultLightingAmbient)
}

func (c *Config) GetMovementStep() float64 {
	return c.getFloat("MOVEMENT_STEP", "movement.step", defaultMovementStep)
}

func (c *Config) GetRotationStep() float64 {
	return c.getFloat("MOVEMENT_ROTATION_STEP", "movement.rotation_step", defaultRotationStep)
}

func (c *Config) GetLogLevel() string {
	return c.getString("LOG_LEVEL", "log.level", defaultLogLevel)
}

func (c *Config) GetShowHUD() bool {
	return c.config.GetBool("DEBUG_HUD") || c.config.GetBool("debug.hud")
}

func (c *Config) GetStatsIntervalSeconds() int {
	return c.getInt("DEBUG_STATS_INTERVAL_SECONDS", "debug.stats_interval_seconds", defaultStatsIntervalSeconds)
}

// Env key first, then file key, then fallback. An explicit 0 counts as set.
func (c *Config) getInt(envKey, fileKey string, fallback int) int {
	switch {
	case c.config.IsSet(envKey):
		return c.config.GetInt(envKey)
	case c.config.IsSet(fileKey):
		return c.config.GetInt(fileKey)
	}
	return fallback
}

func (c *Config) getFloat(envKey, fileKey string, fallback float64) float64 {
	switch {
	case c.config.IsSet(envKey):
		return c.config.GetFloat64(envKey)
	case c.config.IsSet(fileKey):
		return c.config.GetFloat64(fileKey)
	}
	return fallback
}

func (c *Config) getString(envKey, fileKey string, fallback string) string {
	value := c.config.GetString(envKey)
	if len(value) == 0 {
		value = c.config.GetString(fileKey)
	}
	if len(value) == 0 {
		value = fallback
	}

	return value
}

func getProjectRoot() (string, error) {
	currentDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}

	for {
		configDir := filepath.Join(currentDir, "config")
		if info, err := os.Stat(configDir); err == nil && info.IsDir() {
			return currentDir, nil
		}

		parent := filepath.Dir(currentDir)

		if parent == currentDir {
			break
		}

		currentDir = parent
	}

	return "", fmt.Errorf("could not find project root (directory containing 'config' folder)")
}

func getConfigPath(env string) (string, error) {
	configFile := fmt.Sprintf("config.%s.yaml", env)

	projectRoot, err := getProjectRoot()
	if err != nil {
		slog.Warn("failed to find project root with config directory, will use environment variables instead", "err", err.Error())
		return "", fmt.Errorf("failed to find project root: %w", err)
	}
	configPath := filepath.Join(projectRoot, "config", configFile)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		slog.Warn("failed to find config file within config directory, will use environment variables instead", "err", err.Error())
		return "", fmt.Errorf("config file does not exist: %s", configPath)
	}

	return configPath, nil
}
