package internal

import (
	"fmt"
	"time"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	StyleBox   = "box"
	StyleTable = "table"
)

type Config struct {
	LogLevel        string        `env:"LOG_LEVEL,default=WARN"`
	NameSeparator   string        `env:"NAME_SEPARATOR"`
	RenderStyle     string        `env:"RENDER_STYLE,default=box" validate:"oneof=box table"`
	Colours         bool          `env:"COLOURS,default=true"`
	SpinnerDuration time.Duration `env:"SPINNER_DURATION,default=700ms" validate:"gte=0"`
	BoxWidth        int           `env:"BOX_WIDTH,default=28" validate:"gte=12,lte=120"`
	Seed            *int64        `env:"SEED"`
}

// LoadConfig reads an optional .env file, then the process environment.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// SeedValue returns the configured seed, or nil when the shuffle should be random.
func (c Config) SeedValue() *uint64 {
	if c.Seed == nil {
		return nil
	}
	seed := uint64(*c.Seed)
	return &seed
}
