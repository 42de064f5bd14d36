package handlers

import (
	"go.uber.org/zap"
	"gorm.io/gorm"
	"recipe-app-api/app/manage/config"
	"recipe-app-api/app/server/account"
)

type App struct {
	cfg *config.Config
	l   *zap.Logger

	dialector   func() gorm.Dialector // 每次连接都需要新的 dialector
	accountOpts []account.Option
}

func NewApp(cfg *config.Config, l *zap.Logger, dialector func() gorm.Dialector, accountOpts ...account.Option) *App {
	return &App{
		cfg:         cfg,
		l:           l,
		dialector:   dialector,
		accountOpts: accountOpts,
	}
}
