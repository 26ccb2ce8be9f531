package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/KirkDiggler/tenzies/internal/services/messaging"
)

// Config is the process configuration, read from the environment
type Config struct {
	MaxRolls       int           `env:"TENZIES_MAX_ROLLS"       envDefault:"10"`
	AnimationSteps int           `env:"TENZIES_ANIMATION_STEPS" envDefault:"10"`
	AnimationDelay time.Duration `env:"TENZIES_ANIMATION_DELAY" envDefault:"100ms"`

	// Seed fixes the dice and message variants; zero seeds from the clock
	Seed int64 `env:"TENZIES_SEED"`

	MessageTone string `env:"TENZIES_MESSAGE_TONE" envDefault:"neutral"`

	// FacesFile is a builtin theme name or a path to a YAML theme
	FacesFile string `env:"TENZIES_FACES_FILE" envDefault:"unicode"`

	Sound   bool   `env:"TENZIES_SOUND"    envDefault:"true"`
	LogFile string `env:"TENZIES_LOG_FILE" envDefault:"tenzies.log"`
}

// Load reads the optional dotenv files, ".env" when none are given, and
// then parses the environment. Variables already set win over the files.
func Load(dotenvFiles ...string) (*Config, error) {
	if err := godotenv.Load(dotenvFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load dotenv: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the values are usable
func (c *Config) Validate() error {
	if c.MaxRolls < 1 {
		return fmt.Errorf("TENZIES_MAX_ROLLS must be at least 1, got %d", c.MaxRolls)
	}
	if c.AnimationSteps < 1 {
		return fmt.Errorf("TENZIES_ANIMATION_STEPS must be at least 1, got %d", c.AnimationSteps)
	}
	if c.AnimationDelay <= 0 {
		return fmt.Errorf("TENZIES_ANIMATION_DELAY must be positive, got %s", c.AnimationDelay)
	}
	if _, err := messaging.ParseTone(c.MessageTone); err != nil {
		return fmt.Errorf("TENZIES_MESSAGE_TONE: %w", err)
	}
	if c.FacesFile == "" {
		return errors.New("TENZIES_FACES_FILE cannot be empty")
	}
	return nil
}
