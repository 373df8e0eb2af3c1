package config

import (
	"context"
	"fmt"

	"github.com/caarlos0/env/v10"
)

// App holds core runtime configuration shared across services.
type App struct {
	Name     string `env:"APP_NAME" envDefault:"complit"`
	Env      string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	Data Data
}

// Data locates the file-backed stores.
type Data struct {
	Dir          string `env:"DATA_DIR" envDefault:"."`
	UsersFile    string `env:"USERS_FILE" envDefault:"users.json"`
	ProgressFile string `env:"PROGRESS_FILE" envDefault:"progress.json"`
}

// Load parses environment variables into App config.
func Load(ctx context.Context) (*App, error) {
	cfg := &App{}
	if err := env.ParseWithOptions(cfg, env.Options{RequiredIfNoDef: true}); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
