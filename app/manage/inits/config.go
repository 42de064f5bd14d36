package inits

import (
	"errors"
	"fmt"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"io/fs"
	"recipe-app-api/app/manage/config"
	"strings"
)

func Config() (*config.Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load env file: %w", err)
	}

	var cfg config.Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg.IsProd = strings.HasPrefix(strings.ToLower(cfg.Mode), "p")

	if cfg.WaitInterval <= 0 {
		return nil, fmt.Errorf("WAIT_INTERVAL should be a positive duration")
	}

	return &cfg, nil
}
