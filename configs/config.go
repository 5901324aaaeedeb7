package configs

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type DatabaseConfig struct {
	// Driver selects the persistence backend: "sqlite" is the local
	// single-process store, "postgres" the shared multi-user store.
	Driver string `env:"DB_DRIVER" envDefault:"sqlite"`
	DSN    string `env:"DB_DSN" envDefault:"shift_service.db"`
}

type AppConfig struct {
	Host     string         `env:"HOST" envDefault:""`
	Port     string         `env:"PORT" envDefault:"8081"`
	CacheDir string         `env:"CACHE_DIR" envDefault:"/tmp/shift_service_cache"`
	Database DatabaseConfig `envPrefix:""`
}

func NewAppConfig() (*AppConfig, error) {
	cfg := AppConfig{}
	err := env.Parse(&cfg)
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}

// NewDatabase builds the injected persistence strategy. The dialector is
// chosen once at process start and handed to every service explicitly.
func NewDatabase(cfg *AppConfig) (*gorm.DB, error) {
	var dial gorm.Dialector

	switch cfg.Database.Driver {
	case "sqlite":
		dial = sqlite.Open(cfg.Database.DSN)
	case "postgres":
		dial = postgres.Open(cfg.Database.DSN)
	default:
		return nil, fmt.Errorf("unknown database driver %s", cfg.Database.Driver)
	}

	return gorm.Open(dial, &gorm.Config{
		TranslateError: true,
	})
}
