package middlewares

import (
	"context"
	"errors"
	"fmt"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
	"recipe-app-api/app/server/constants"
	"recipe-app-api/app/server/types"
	"recipe-app-api/app/server/utils"
	"strings"
)

type TokenResolver interface {
	ResolveToken(ctx context.Context, token string) (uint, error)
}

// ParseAuthHeader 支持 "Token <key>" 与 "Bearer <key>" 两种写法
func ParseAuthHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", fmt.Errorf("missing auth token")
	}

	splits := strings.Fields(authHeader)
	if len(splits) != 2 {
		return "", fmt.Errorf("invalid auth header: %s", authHeader)
	}

	switch strings.ToLower(splits[0]) {
	case "token", "bearer":
		return splits[1], nil
	default:
		return "", fmt.Errorf("unknown auth method: %s", splits[0])
	}
}

func unauthorized(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Token")
	return c.JSON(http.StatusUnauthorized, &types.ErrorMessage{
		Message: utils.P("Authentication credentials were not provided or are invalid."),
	})
}

func TokenAuth(resolver TokenResolver, l *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// 提取 token
			token, err := ParseAuthHeader(c.Request().Header.Get(echo.HeaderAuthorization))
			if err != nil {
				return unauthorized(c)
			}

			// 查询所属用户
			userID, err := resolver.ResolveToken(c.Request().Context(), token)
			if err != nil {
				if errors.Is(err, types.ErrAuthentication) {
					return unauthorized(c)
				}
				l.Error("failed to resolve auth token", zap.Error(err))
				return c.JSON(http.StatusInternalServerError, &types.ErrorMessage{
					Message: utils.P(http.StatusText(http.StatusInternalServerError)),
				})
			}

			// 设置 context
			c.Set(constants.ContextKeyUserID, userID)

			// 继续处理
			return next(c)
		}
	}
}

// UserID 读取 TokenAuth 写入的用户 ID
func UserID(c echo.Context) (uint, bool) {
	userID, ok := c.Get(constants.ContextKeyUserID).(uint)
	return userID, ok
}
