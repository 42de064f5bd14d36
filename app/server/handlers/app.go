package handlers

import (
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"recipe-app-api/app/server/account"
	"recipe-app-api/app/server/catalog"
	"recipe-app-api/app/server/storage"
)

type App struct {
	l           *zap.Logger          // 日志
	db          *gorm.DB             // 数据库，仅用于健康检查
	accounts    *account.Service     // 用户与令牌
	tags        *catalog.Tags        // 标签
	ingredients *catalog.Ingredients // 配料
	recipes     *catalog.Recipes     // 菜谱
	images      storage.ImageStore   // 菜谱图片，为 nil 时不支持上传
}

func NewApp(l *zap.Logger, db *gorm.DB, rdb *redis.Client, images storage.ImageStore, strictRelationOwnership bool, accountOpts ...account.Option) *App {
	return &App{
		l:           l,
		db:          db,
		accounts:    account.New(l.Named("account"), db, rdb, accountOpts...),
		tags:        catalog.NewTags(db),
		ingredients: catalog.NewIngredients(db),
		recipes:     catalog.NewRecipes(db, strictRelationOwnership),
		images:      images,
	}
}
