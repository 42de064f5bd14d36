package handlers

import (
	"errors"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
	"recipe-app-api/app/server/types"
	"recipe-app-api/app/server/utils"
)

func (a *App) er(c echo.Context, statusCode int) error {
	return c.JSON(statusCode, &types.ErrorMessage{
		Message: utils.P(http.StatusText(statusCode)),
	})
}

// fail 根据错误分类返回对应的状态码
func (a *App) fail(c echo.Context, err error) error {
	var ve *types.ValidationError
	switch {
	case errors.As(err, &ve):
		return c.JSON(http.StatusBadRequest, &types.ErrorMessage{
			Message: utils.P(http.StatusText(http.StatusBadRequest)),
			Fields:  ve.Fields,
		})
	case errors.Is(err, types.ErrValidation):
		return a.er(c, http.StatusBadRequest)
	case errors.Is(err, types.ErrAuthentication):
		return a.er(c, http.StatusUnauthorized)
	case errors.Is(err, types.ErrNotFound):
		return a.er(c, http.StatusNotFound)
	case errors.Is(err, types.ErrMethodNotAllowed):
		return a.er(c, http.StatusMethodNotAllowed)
	default:
		a.l.Error("unexpected error", zap.String("path", c.Path()), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}
}

// HTTPErrorHandler 路由层面的错误（ 404 、 405 等）也使用统一的格式
func (a *App) HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	statusCode := http.StatusInternalServerError
	var he *echo.HTTPError
	if errors.As(err, &he) {
		statusCode = he.Code
	} else {
		a.l.Error("unhandled error", zap.String("path", c.Path()), zap.Error(err))
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(statusCode)
	} else {
		err = a.er(c, statusCode)
	}
	if err != nil {
		a.l.Error("failed to write error response", zap.Error(err))
	}
}
