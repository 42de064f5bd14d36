package handlers

import (
	"fmt"
	"github.com/labstack/echo/v4"
	"recipe-app-api/app/server/middlewares"
	"recipe-app-api/app/server/types"
)

// currentUser 取出认证中间件写入的用户 ID
func (a *App) currentUser(c echo.Context) (uint, error) {
	userID, ok := middlewares.UserID(c)
	if !ok {
		return 0, fmt.Errorf("no user in context: %w", types.ErrAuthentication)
	}
	return userID, nil
}
