package inits

import (
	"fmt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"recipe-app-api/app/server/models"
)

func DB(conn string) (db *gorm.DB, err error) {
	return OpenDB(postgres.Open(conn))
}

// OpenDB 打开连接并迁移，测试中可以传入其他 dialector
func OpenDB(dialector gorm.Dialector) (db *gorm.DB, err error) {
	// 打开连接，唯一索引冲突等错误会被转换成 gorm 的通用错误
	if db, err = gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
	}); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// 迁移
	if err = mig(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	// 返回
	return db, nil
}

func mig(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.AuthToken{},
		&models.Tag{},
		&models.Ingredient{},
		&models.Recipe{},
	)
}
