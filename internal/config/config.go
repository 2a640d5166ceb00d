package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"golang.org/x/crypto/bcrypt"
)

// Config carries every tunable the service needs. It is built once at
// startup and handed to constructors explicitly; nothing reads the
// environment after Load returns.
type Config struct {
	AppPort string `env:"APP_PORT" envDefault:"3000"`

	DatabaseDSN string `env:"DATABASE_DSN,required"`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	// SessionDuration is the fixed session window. Kept short so a
	// leaked token has a bounded useful lifetime.
	SessionDuration time.Duration `env:"SESSION_DURATION" envDefault:"5m"`

	// BcryptCost controls how expensive password hashing is. Zero
	// falls back to the bcrypt default.
	BcryptCost int `env:"BCRYPT_COST"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}

	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = bcrypt.DefaultCost
	}

	return cfg, nil
}
