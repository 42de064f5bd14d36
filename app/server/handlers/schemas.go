package handlers

import "github.com/shopspring/decimal"

// 用户

type UserCreateRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email,max=255"`
	Password string `json:"password" form:"password" validate:"required,min=5"`
	Name     string `json:"name" form:"name" validate:"max=255"`
}

type UserUpdateRequest struct {
	Name     *string `json:"name" form:"name" validate:"omitempty,max=255"`
	Password *string `json:"password" form:"password" validate:"omitempty,min=5"`
}

type UserInfo struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type TokenRequest struct {
	Email    string `json:"email" form:"email" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

type LoginToken struct {
	Token string `json:"token"`
}

// 标签与配料

type NamedInfoInput struct {
	Name string `json:"name" form:"name" validate:"required,max=255"`
}

type NamedInfoWithID struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// 菜谱

type RecipeCreateRequest struct {
	Title       string           `json:"title" validate:"required,max=255"`
	TimeMinutes *int             `json:"time_minutes" validate:"required,gte=0"`
	Price       *decimal.Decimal `json:"price" validate:"required"`
	Link        string           `json:"link" validate:"max=255"`
	Tags        []uint           `json:"tags"`
	Ingredients []uint           `json:"ingredients"`
}

type RecipeUpdateRequest struct {
	Title       *string          `json:"title" validate:"omitempty,min=1,max=255"`
	TimeMinutes *int             `json:"time_minutes" validate:"omitempty,gte=0"`
	Price       *decimal.Decimal `json:"price"`
	Link        *string          `json:"link" validate:"omitempty,max=255"`
	Tags        *[]uint          `json:"tags"`
	Ingredients *[]uint          `json:"ingredients"`
}

// RecipeInfo 列表与创建时的格式，关联只返回 id
type RecipeInfo struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Tags        []uint `json:"tags"`
	Ingredients []uint `json:"ingredients"`
	TimeMinutes int    `json:"time_minutes"`
	Price       string `json:"price"`
	Link        string `json:"link"`
}

// RecipeDetail 详情格式，关联展开为完整对象
type RecipeDetail struct {
	ID          uint              `json:"id"`
	Title       string            `json:"title"`
	Tags        []NamedInfoWithID `json:"tags"`
	Ingredients []NamedInfoWithID `json:"ingredients"`
	TimeMinutes int               `json:"time_minutes"`
	Price       string            `json:"price"`
	Link        string            `json:"link"`
	Image       *string           `json:"image"`
}

type RecipeImage struct {
	ID    uint    `json:"id"`
	Image *string `json:"image"`
}
