package catalog

import (
	"fmt"
	"gorm.io/gorm"
	"recipe-app-api/app/server/models"
	"recipe-app-api/app/server/types"
)

// 方法不能有类型形参，所以这个不能挂在 Recipes 上
// owner 为 nil 时只检查记录是否存在，不检查归属
func validateIDs[M models.Tag | models.Ingredient](db *gorm.DB, field string, ids []uint, owner *uint) error {
	if len(ids) == 0 {
		return nil
	}

	// 去重，避免重复 id 导致数量对不上
	unique := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		unique[id] = struct{}{}
	}

	var (
		count int64
		model M
	)
	q := db.Model(&model).Where("id IN ?", ids)
	if owner != nil {
		q = q.Where("user_id = ?", *owner)
	}
	if err := q.Count(&count).Error; err != nil {
		// 查询失败
		return fmt.Errorf("count %s: %w", field, err)
	} else if int(count) != len(unique) {
		// 数量对不上
		return types.NewValidationError(field, "invalid pk - object does not exist")
	}

	return nil
}
