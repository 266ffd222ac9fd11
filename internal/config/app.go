package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/vovakirdan/touch-arcade/internal/core"
)

// AppConfig holds process-wide settings. Every field can be set from an
// optional YAML file and overridden by ARCADE_* environment variables.
type AppConfig struct {
	LogLevel     string  `yaml:"log-level" env:"ARCADE_LOG_LEVEL" env-default:"info"`
	FPS          int     `yaml:"fps" env:"ARCADE_FPS" env-default:"30"`
	Seed         int64   `yaml:"seed" env:"ARCADE_SEED" env-default:"0"`
	Display      Display `yaml:"display"`
	ConsoleLines int     `yaml:"console-lines" env:"ARCADE_CONSOLE_LINES" env-default:"6"`
}

// Display describes the panel.
type Display struct {
	Width  int `yaml:"width" env:"ARCADE_DISPLAY_WIDTH" env-default:"240"`
	Height int `yaml:"height" env:"ARCADE_DISPLAY_HEIGHT" env-default:"320"`
	Scale  int `yaml:"scale" env:"ARCADE_DISPLAY_SCALE" env-default:"10"`
}

// LoadApp reads application settings from path (optional) and the environment.
func LoadApp(path string) (*AppConfig, error) {
	cfg := &AppConfig{}

	var err error
	if path != "" {
		err = cleanenv.ReadConfig(path, cfg)
	} else {
		err = cleanenv.ReadEnv(cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to load app config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings.
func (c *AppConfig) Validate() error {
	d := c.Display
	if d.Scale <= 0 || d.Width < d.Scale || d.Height < d.Scale {
		return fmt.Errorf("%w: display %dx%d scale %d", ErrInvalidConfig, d.Width, d.Height, d.Scale)
	}
	if d.Width%d.Scale != 0 || d.Height%d.Scale != 0 {
		return fmt.Errorf("%w: display %dx%d is not a whole number of %d px cells", ErrInvalidConfig, d.Width, d.Height, d.Scale)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("%w: fps %d", ErrInvalidConfig, c.FPS)
	}
	return nil
}

// Runtime returns the run configuration described by the settings.
func (c *AppConfig) Runtime() core.RuntimeConfig {
	return core.RuntimeConfig{
		DisplayW: c.Display.Width,
		DisplayH: c.Display.Height,
		Scale:    c.Display.Scale,
		TickRate: c.FPS,
		Seed:     c.Seed,
	}
}
