package handlers

import (
	"fmt"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"net/http"
	"recipe-app-api/app/server/catalog"
	"recipe-app-api/app/server/models"
	"recipe-app-api/app/server/types"
	"recipe-app-api/app/server/utils"
	"strconv"
)

type recipeAction int

const (
	recipeActionList recipeAction = iota
	recipeActionCreate
	recipeActionRetrieve
	recipeActionUpdate
)

// recipeViews 每种操作使用的响应格式：只有详情展开标签与配料
var recipeViews = map[recipeAction]func(a *App, r *models.Recipe) any{
	recipeActionList:     (*App).recipeInfo,
	recipeActionCreate:   (*App).recipeInfo,
	recipeActionRetrieve: (*App).recipeDetail,
	recipeActionUpdate:   (*App).recipeInfo,
}

func (a *App) recipeView(action recipeAction, r *models.Recipe) any {
	return recipeViews[action](a, r)
}

func (a *App) recipeInfo(r *models.Recipe) any {
	return &RecipeInfo{
		ID:          r.ID,
		Title:       r.Title,
		Tags:        r.TagIDs(),
		Ingredients: r.IngredientIDs(),
		TimeMinutes: r.TimeMinutes,
		Price:       r.Price.StringFixed(2),
		Link:        r.Link,
	}
}

func (a *App) recipeDetail(r *models.Recipe) any {
	tags := make([]NamedInfoWithID, 0, len(r.Tags))
	for i := range r.Tags {
		tags = append(tags, namedInfo[models.Tag](&r.Tags[i]))
	}
	ingredients := make([]NamedInfoWithID, 0, len(r.Ingredients))
	for i := range r.Ingredients {
		ingredients = append(ingredients, namedInfo[models.Ingredient](&r.Ingredients[i]))
	}

	return &RecipeDetail{
		ID:          r.ID,
		Title:       r.Title,
		Tags:        tags,
		Ingredients: ingredients,
		TimeMinutes: r.TimeMinutes,
		Price:       r.Price.StringFixed(2),
		Link:        r.Link,
		Image:       a.imageURL(r.Image),
	}
}

func (a *App) imageURL(key *string) *string {
	if key == nil {
		return nil
	}
	if a.images == nil {
		return key
	}
	return utils.P(a.images.URL(*key))
}

var maxPrice = decimal.NewFromInt(1000)

// validatePrice 价格最多 5 位数字，其中 2 位小数
func validatePrice(price decimal.Decimal) error {
	if !price.Equal(price.Round(2)) {
		return types.NewValidationError("price", "ensure that there are no more than 2 decimal places")
	}
	if price.Abs().GreaterThanOrEqual(maxPrice) {
		return types.NewValidationError("price", "ensure that there are no more than 5 digits in total")
	}
	return nil
}

// recipeID 解析路径中的 id ，无法解析时视为不存在
func recipeID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("recipe id %q: %w", c.Param("id"), types.ErrNotFound)
	}
	return uint(id), nil
}

func (a *App) RecipeList(c echo.Context) error {
	userID, err := a.currentUser(c)
	if err != nil {
		return a.fail(c, err)
	}

	rctx := c.Request().Context()

	// 按标签、配料筛选
	var filters []catalog.Filter
	if tagIDs, err := utils.ParseUintList(c.QueryParam("tags")); err != nil {
		return a.fail(c, types.NewValidationError("tags", err.Error()))
	} else if len(tagIDs) > 0 {
		filters = append(filters, catalog.WithTags(tagIDs))
	}
	if ingredientIDs, err := utils.ParseUintList(c.QueryParam("ingredients")); err != nil {
		return a.fail(c, types.NewValidationError("ingredients", err.Error()))
	} else if len(ingredientIDs) > 0 {
		filters = append(filters, catalog.WithIngredients(ingredientIDs))
	}

	recipes, err := a.recipes.List(rctx, userID, filters...)
	if err != nil {
		return a.fail(c, err)
	}

	res := make([]any, 0, len(recipes))
	for i := range recipes {
		res = append(res, a.recipeView(recipeActionList, &recipes[i]))
	}

	return c.JSON(http.StatusOK, res)
}

func (a *App) RecipeCreate(c echo.Context) error {
	userID, err := a.currentUser(c)
	if err != nil {
		return a.fail(c, err)
	}

	rctx := c.Request().Context()

	// 绑定请求体
	var req RecipeCreateRequest
	if err = a.bind(c, &req); err != nil {
		return a.fail(c, err)
	}
	if err = validatePrice(*req.Price); err != nil {
		return a.fail(c, err)
	}

	// 创建，请求体中的用户字段会被忽略
	recipe, err := a.recipes.CreateRecipe(rctx, userID, &models.Recipe{
		Title:       req.Title,
		TimeMinutes: *req.TimeMinutes,
		Price:       *req.Price,
		Link:        req.Link,
	}, catalog.RecipeRelations{
		TagIDs:        req.Tags,
		IngredientIDs: req.Ingredients,
	})
	if err != nil {
		return a.fail(c, err)
	}

	return c.JSON(http.StatusCreated, a.recipeView(recipeActionCreate, recipe))
}

func (a *App) RecipeInfoGet(c echo.Context) error {
	userID, err := a.currentUser(c)
	if err != nil {
		return a.fail(c, err)
	}

	id, err := recipeID(c)
	if err != nil {
		return a.fail(c, err)
	}

	rctx := c.Request().Context()

	// 从数据库中获得，别人的菜谱同样返回 404
	recipe, err := a.recipes.Retrieve(rctx, userID, id)
	if err != nil {
		return a.fail(c, err)
	}

	return c.JSON(http.StatusOK, a.recipeView(recipeActionRetrieve, recipe))
}

func (a *App) RecipeInfoUpdate(c echo.Context) error {
	userID, err := a.currentUser(c)
	if err != nil {
		return a.fail(c, err)
	}

	id, err := recipeID(c)
	if err != nil {
		return a.fail(c, err)
	}

	rctx := c.Request().Context()

	// 绑定请求体
	var req RecipeUpdateRequest
	if err = a.bind(c, &req); err != nil {
		return a.fail(c, err)
	}
	if req.Price != nil {
		if err = validatePrice(*req.Price); err != nil {
			return a.fail(c, err)
		}
	}

	// 映射字段
	patch := catalog.RecipePatch{
		Title:       req.Title,
		TimeMinutes: req.TimeMinutes,
		Price:       req.Price,
		Link:        req.Link,
	}
	if req.Tags != nil {
		patch.TagIDs = append([]uint{}, *req.Tags...)
	}
	if req.Ingredients != nil {
		patch.IngredientIDs = append([]uint{}, *req.Ingredients...)
	}

	// 更新信息
	recipe, err := a.recipes.UpdateRecipe(rctx, userID, id, patch)
	if err != nil {
		return a.fail(c, err)
	}

	return c.JSON(http.StatusOK, a.recipeView(recipeActionUpdate, recipe))
}

func (a *App) RecipeDelete(c echo.Context) error {
	userID, err := a.currentUser(c)
	if err != nil {
		return a.fail(c, err)
	}

	id, err := recipeID(c)
	if err != nil {
		return a.fail(c, err)
	}

	rctx := c.Request().Context()

	// 删除
	image, err := a.recipes.DeleteRecipe(rctx, userID, id)
	if err != nil {
		return a.fail(c, err)
	}

	// 清理图片，失败不影响结果
	if image != nil && a.images != nil {
		if err = a.images.Remove(rctx, *image); err != nil {
			a.l.Warn("failed to remove image of deleted recipe", zap.String("key", *image), zap.Error(err))
		}
	}

	return c.NoContent(http.StatusNoContent)
}
