package main

import (
	"context"
	"fmt"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"log"
	"recipe-app-api/app/server/apidocs"
	"recipe-app-api/app/server/handlers"
	"recipe-app-api/app/server/inits"
	"recipe-app-api/app/server/storage"
)

func main() {
	// 初始化配置
	cfg, err := inits.Config()
	if err != nil {
		log.Fatal(fmt.Errorf("error loading config: %w", err))
	}

	// 初始化日志
	l, err := inits.Logger(!cfg.System.IsProd, "server")
	if err != nil {
		log.Fatal(fmt.Errorf("error initializing logger: %w", err))
	}

	// 切换日志系统
	l.Debug("logger initialized")

	// 初始化数据库连接
	db, err := inits.DB(cfg.System.DBConnectionString)
	if err != nil {
		l.Fatal("error initializing DB connection", zap.Error(err))
	}

	// 初始化 redis 连接
	rdb, err := inits.Redis(cfg.System.RedisConnectionString)
	if err != nil {
		l.Fatal("error initializing Redis connection", zap.Error(err))
	}

	// 初始化对象存储，失败时图片上传不可用，其他接口照常工作
	var images storage.ImageStore
	if m, err := inits.Storage(context.Background(), cfg); err != nil {
		l.Warn("object storage unavailable, image upload disabled", zap.Error(err))
	} else {
		images = m
	}

	// 准备 handler app
	handlerApp := handlers.NewApp(l, db, rdb, images, cfg.Security.StrictRelationOwnership)

	// 准备 echo 服务
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			l.Info("request",
				zap.String("method", v.Method),
				zap.String("URI", v.URI),
				zap.Int("status", v.Status),
			)

			return nil
		},
	}))
	e.Use(middleware.Recover())

	// 绑定 echo 服务
	handlerApp.Register(e)

	// 添加 API 文档
	if !cfg.System.IsProd {
		if doc, err := apidocs.Spec(context.Background()); err != nil {
			l.Error("error loading api document", zap.Error(err))
		} else if docs, err := apidocs.Doc("/api/docs", doc); err != nil {
			l.Error("error initializing api docs", zap.Error(err))
		} else {
			e.Pre(docs)
		}
	}

	// 启动 echo 服务
	if err := e.Start(cfg.System.Listen); err != nil {
		l.Fatal("shutting down the server", zap.Error(err))
	}
}
