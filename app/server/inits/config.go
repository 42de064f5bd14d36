package inits

import (
	"errors"
	"fmt"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"io/fs"
	"recipe-app-api/app/server/config"
	"strings"
)

func Config(envFiles ...string) (*config.Config, error) {
	// 先尝试加载 .env 文件，不存在也没关系，已经设置的环境变量不会被覆盖
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load env file %s: %w", f, err)
		}
	}

	// 从环境变量映射配置
	var cfg config.Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	cfg.System.IsProd = strings.HasPrefix(strings.ToLower(cfg.System.Mode), "p")

	return &cfg, nil
}
