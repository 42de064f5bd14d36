package handlers

import (
	"errors"
	"fmt"
	"github.com/gabriel-vasile/mimetype"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"io"
	"net/http"
	"recipe-app-api/app/server/constants"
	"recipe-app-api/app/server/storage"
	"recipe-app-api/app/server/types"
	"strings"
)

func (a *App) RecipeImageUpload(c echo.Context) error {
	userID, err := a.currentUser(c)
	if err != nil {
		return a.fail(c, err)
	}

	id, err := recipeID(c)
	if err != nil {
		return a.fail(c, err)
	}

	if a.images == nil {
		return a.er(c, http.StatusServiceUnavailable)
	}

	rctx := c.Request().Context()

	// 先确认菜谱属于当前用户，再处理文件
	if _, err = a.recipes.Retrieve(rctx, userID, id); err != nil {
		return a.fail(c, err)
	}

	// 提取文件
	fileHeader, err := c.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return a.fail(c, types.NewValidationError("image", "no file was submitted"))
		}
		return a.fail(c, types.NewValidationError("image", "the submitted data was not a file"))
	}
	if fileHeader.Size > constants.RecipeImageMaxSize {
		return a.fail(c, types.NewValidationError("image", fmt.Sprintf("file is larger than %d bytes", constants.RecipeImageMaxSize)))
	}

	file, err := fileHeader.Open()
	if err != nil {
		a.l.Error("failed to open uploaded file", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}
	defer file.Close()

	// 检查是否为图片
	mime, err := mimetype.DetectReader(file)
	if err != nil {
		a.l.Error("failed to detect file type", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}
	if !strings.HasPrefix(mime.String(), "image/") {
		return a.fail(c, types.NewValidationError("image", "upload a valid image"))
	}
	if _, err = file.Seek(0, io.SeekStart); err != nil {
		a.l.Error("failed to rewind uploaded file", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	// 写入对象存储
	key := storage.RecipeImageKey(fileHeader.Filename)
	if err = a.images.Put(rctx, key, file, fileHeader.Size, mime.String()); err != nil {
		a.l.Error("failed to store recipe image", zap.Uint("recipeID", id), zap.String("key", key), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	// 记录路径
	recipe, previous, err := a.recipes.SetImage(rctx, userID, id, key)
	if err != nil {
		// 数据库没有记录，清理刚写入的文件
		if rmErr := a.images.Remove(rctx, key); rmErr != nil {
			a.l.Error("failed to remove orphan image", zap.String("key", key), zap.Error(rmErr))
		}
		return a.fail(c, err)
	}

	// 清理旧图片，失败不影响结果
	if previous != nil && *previous != key {
		if err = a.images.Remove(rctx, *previous); err != nil {
			a.l.Warn("failed to remove previous image", zap.String("key", *previous), zap.Error(err))
		}
	}

	return c.JSON(http.StatusOK, &RecipeImage{
		ID:    recipe.ID,
		Image: a.imageURL(recipe.Image),
	})
}
