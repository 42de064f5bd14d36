package handlers

import (
	"errors"
	"github.com/labstack/echo/v4"
	"net/http"
	"recipe-app-api/app/server/types"
)

func (a *App) UserToken(c echo.Context) error {
	rctx := c.Request().Context()

	// 绑定请求体，没有写邮箱或密码时直接返回 400
	var req TokenRequest
	if err := a.bind(c, &req); err != nil {
		return a.fail(c, err)
	}

	token, err := a.accounts.Authenticate(rctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, types.ErrAuthentication) {
			// 登录失败属于请求错误，不是 401
			return a.fail(c, types.NewValidationError("non_field_errors", "unable to authenticate with provided credentials"))
		}
		return a.fail(c, err)
	}

	// 返回
	return c.JSON(http.StatusOK, &LoginToken{
		Token: token,
	})
}
