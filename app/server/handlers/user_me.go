package handlers

import (
	"github.com/labstack/echo/v4"
	"net/http"
	"recipe-app-api/app/server/account"
)

func (a *App) UserInfoGetSelf(c echo.Context) error {
	userID, err := a.currentUser(c)
	if err != nil {
		return a.fail(c, err)
	}

	rctx := c.Request().Context()

	// 从数据库中获得当前用户
	user, err := a.accounts.GetProfile(rctx, userID)
	if err != nil {
		return a.fail(c, err)
	}

	return c.JSON(http.StatusOK, &UserInfo{
		Email: user.Email,
		Name:  user.Name,
	})
}

func (a *App) UserInfoUpdateSelf(c echo.Context) error {
	userID, err := a.currentUser(c)
	if err != nil {
		return a.fail(c, err)
	}

	rctx := c.Request().Context()

	// 绑定请求体
	var req UserUpdateRequest
	if err = a.bind(c, &req); err != nil {
		return a.fail(c, err)
	}

	// 更新用户信息
	user, err := a.accounts.UpdateProfile(rctx, userID, account.ProfileUpdate{
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		return a.fail(c, err)
	}

	return c.JSON(http.StatusOK, &UserInfo{
		Email: user.Email,
		Name:  user.Name,
	})
}
