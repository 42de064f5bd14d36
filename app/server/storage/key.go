package storage

import (
	"github.com/google/uuid"
	"path"
	"recipe-app-api/app/server/constants"
	"strings"
)

// RecipeImageKey 生成图片的存储路径，原文件名只保留扩展名
func RecipeImageKey(filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return constants.RecipeImagePathPrefix + uuid.NewString() + ext
}
