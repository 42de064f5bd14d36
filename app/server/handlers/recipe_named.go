package handlers

import (
	"github.com/labstack/echo/v4"
	"net/http"
	"recipe-app-api/app/server/catalog"
	"strconv"
)

// named 只有名字的模型（标签、配料）
type named[M any] interface {
	catalog.Owned[M]
	GetName() string
	SetName(name string)
}

// namedHandlers 标签与配料共用的列表与创建逻辑
// 方法不能有类型形参，所以这里用泛型结构体而不是 (a *App)
type namedHandlers[M any, P named[M]] struct {
	a            *App
	cat          *catalog.Catalog[M, P]
	assignedOnly catalog.Filter
}

func newNamedHandlers[M any, P named[M]](a *App, cat *catalog.Catalog[M, P], assignedOnly catalog.Filter) *namedHandlers[M, P] {
	return &namedHandlers[M, P]{
		a:            a,
		cat:          cat,
		assignedOnly: assignedOnly,
	}
}

// isTruthy 查询参数中 1 / true 视为开启
func isTruthy(s string) bool {
	if s == "" {
		return false
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n != 0
	}
	b, err := strconv.ParseBool(s)
	return err == nil && b
}

func (h *namedHandlers[M, P]) List(c echo.Context) error {
	userID, err := h.a.currentUser(c)
	if err != nil {
		return h.a.fail(c, err)
	}

	rctx := c.Request().Context()

	var filters []catalog.Filter
	if isTruthy(c.QueryParam("assigned_only")) {
		filters = append(filters, h.assignedOnly)
	}

	list, err := h.cat.List(rctx, userID, filters...)
	if err != nil {
		return h.a.fail(c, err)
	}

	res := make([]NamedInfoWithID, 0, len(list))
	for i := range list {
		res = append(res, namedInfo[M](P(&list[i])))
	}

	return c.JSON(http.StatusOK, res)
}

func (h *namedHandlers[M, P]) Create(c echo.Context) error {
	userID, err := h.a.currentUser(c)
	if err != nil {
		return h.a.fail(c, err)
	}

	rctx := c.Request().Context()

	// 绑定请求体
	var req NamedInfoInput
	if err = h.a.bind(c, &req); err != nil {
		return h.a.fail(c, err)
	}

	// 创建，所属用户总是当前用户
	m := P(new(M))
	m.SetName(req.Name)
	if err = h.cat.Create(rctx, userID, m); err != nil {
		return h.a.fail(c, err)
	}

	return c.JSON(http.StatusCreated, namedInfo[M](m))
}

func namedInfo[M any, P named[M]](m P) NamedInfoWithID {
	return NamedInfoWithID{
		ID:   m.GetID(),
		Name: m.GetName(),
	}
}
