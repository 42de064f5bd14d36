package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// 关联表名，筛选时需要直接查询
const (
	RecipeTagsTable        = "recipe_tags"
	RecipeIngredientsTable = "recipe_ingredients"
)

type Recipe struct {
	gorm.Model

	// 基础信息
	Title       string          `gorm:"column:title;size:255;not null"` // 标题
	TimeMinutes int             `gorm:"column:time_minutes"`            // 准备时间（分钟）
	Price       decimal.Decimal `gorm:"column:price;type:numeric(5,2)"` // 价格，最多 5 位数字，2 位小数
	Link        string          `gorm:"column:link;size:255"`           // 外部链接，可为空
	Image       *string         `gorm:"column:image;size:255"`          // 图片在对象存储中的路径， NULL 表示没有图片
	UserID      uint            `gorm:"column:user_id;index"`           // 所属用户

	// 连接模型时使用
	User        *User        `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Tags        []Tag        `gorm:"many2many:recipe_tags;"`        // 标签
	Ingredients []Ingredient `gorm:"many2many:recipe_ingredients;"` // 配料
}

func (r Recipe) String() string {
	return r.Title
}

func (r *Recipe) GetID() uint          { return r.ID }
func (r *Recipe) SetOwner(userID uint) { r.UserID = userID }
func (r *Recipe) OwnerID() uint        { return r.UserID }

func (r *Recipe) TagIDs() []uint {
	ids := make([]uint, 0, len(r.Tags))
	for _, t := range r.Tags {
		ids = append(ids, t.ID)
	}
	return ids
}

func (r *Recipe) IngredientIDs() []uint {
	ids := make([]uint, 0, len(r.Ingredients))
	for _, i := range r.Ingredients {
		ids = append(ids, i.ID)
	}
	return ids
}
