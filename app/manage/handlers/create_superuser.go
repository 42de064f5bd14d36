package handlers

import (
	"context"
	"fmt"
	"go.uber.org/zap"
	"recipe-app-api/app/server/account"
	"recipe-app-api/app/server/inits"
)

// CreateSuperuser 连接数据库（会先执行迁移）并创建管理员账户
func (a *App) CreateSuperuser(ctx context.Context, email, password string) error {
	db, err := inits.OpenDB(a.dialector())
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	user, err := account.New(a.l.Named("account"), db, nil, a.accountOpts...).CreateSuperuser(ctx, email, password)
	if err != nil {
		return fmt.Errorf("create superuser: %w", err)
	}

	a.l.Info("superuser created", zap.Uint("id", user.ID), zap.String("email", user.Email))

	return nil
}
