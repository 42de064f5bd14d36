package handlers

import (
	"context"
	"fmt"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"time"
)

// WaitDB 按固定间隔尝试连接数据库，直到成功或超时
func (a *App) WaitDB(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, a.cfg.WaitTimeout)
	defer cancel()

	ticker := time.NewTicker(a.cfg.WaitInterval)
	defer ticker.Stop()

	for attempt := 1; ; attempt++ {
		err := a.ping(ctx)
		if err == nil {
			a.l.Info("database available", zap.Int("attempts", attempt))
			return nil
		}
		a.l.Info("database unavailable, waiting", zap.Int("attempt", attempt), zap.Error(err))

		select {
		case <-ticker.C:
		case <-ctx.Done():
			return fmt.Errorf("database unavailable after %d attempts: %w", attempt, ctx.Err())
		}
	}
}

func (a *App) ping(ctx context.Context) error {
	db, err := gorm.Open(a.dialector(), &gorm.Config{
		Logger: logger.Discard,
	})
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	return sqlDB.PingContext(ctx)
}
