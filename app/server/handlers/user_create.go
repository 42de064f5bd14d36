package handlers

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
)

func (a *App) UserCreate(c echo.Context) error {
	rctx := c.Request().Context()

	// 绑定请求体
	var req UserCreateRequest
	if err := a.bind(c, &req); err != nil {
		return a.fail(c, err)
	}

	// 创建用户
	user, err := a.accounts.CreateUser(rctx, req.Email, req.Password, req.Name)
	if err != nil {
		a.l.Debug("failed to create user", zap.Error(err))
		return a.fail(c, err)
	}

	// 不返回密码
	return c.JSON(http.StatusCreated, &UserInfo{
		Email: user.Email,
		Name:  user.Name,
	})
}
