package handlers

import (
	"github.com/labstack/echo/v4"
	"recipe-app-api/app/server/catalog"
	"recipe-app-api/app/server/middlewares"
)

// Register 绑定全部路由
// 认证中间件挂在具体路由上而不是分组上，这样不支持的方法会直接得到 405
func (a *App) Register(e *echo.Echo) {
	e.Validator = NewValidator()
	e.HTTPErrorHandler = a.HTTPErrorHandler

	auth := middlewares.TokenAuth(a.accounts, a.l)

	api := e.Group("/api")
	api.GET("/healthcheck", a.HealthCheck)

	// 用户
	user := api.Group("/user")
	user.POST("/create", a.UserCreate)
	user.POST("/token", a.UserToken)
	user.GET("/me", a.UserInfoGetSelf, auth)
	user.PATCH("/me", a.UserInfoUpdateSelf, auth)

	// 标签、配料与菜谱
	tags := newNamedHandlers(a, a.tags, catalog.TagsAssignedOnly())
	ingredients := newNamedHandlers(a, a.ingredients, catalog.IngredientsAssignedOnly())

	recipe := api.Group("/recipe")
	recipe.GET("/tags", tags.List, auth)
	recipe.POST("/tags", tags.Create, auth)
	recipe.GET("/ingredients", ingredients.List, auth)
	recipe.POST("/ingredients", ingredients.Create, auth)
	recipe.GET("/recipes", a.RecipeList, auth)
	recipe.POST("/recipes", a.RecipeCreate, auth)
	recipe.GET("/recipes/:id", a.RecipeInfoGet, auth)
	recipe.PATCH("/recipes/:id", a.RecipeInfoUpdate, auth)
	recipe.DELETE("/recipes/:id", a.RecipeDelete, auth)
	recipe.POST("/recipes/:id/upload-image", a.RecipeImageUpload, auth)
}
