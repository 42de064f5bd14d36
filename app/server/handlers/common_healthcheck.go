package handlers

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
)

func (a *App) HealthCheck(c echo.Context) error {
	// 确认数据库可用
	sqlDB, err := a.db.DB()
	if err != nil {
		a.l.Error("failed to get sql db", zap.Error(err))
		return c.NoContent(http.StatusServiceUnavailable)
	}
	if err = sqlDB.PingContext(c.Request().Context()); err != nil {
		a.l.Error("failed to ping database", zap.Error(err))
		return c.NoContent(http.StatusServiceUnavailable)
	}

	return c.NoContent(http.StatusOK)
}
