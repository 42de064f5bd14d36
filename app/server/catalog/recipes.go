package catalog

import (
	"context"
	"fmt"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"recipe-app-api/app/server/models"
)

type (
	Tags        = Catalog[models.Tag, *models.Tag]
	Ingredients = Catalog[models.Ingredient, *models.Ingredient]
)

func NewTags(db *gorm.DB) *Tags {
	return New[models.Tag](db, WithOrder("name DESC"))
}

func NewIngredients(db *gorm.DB) *Ingredients {
	return New[models.Ingredient](db, WithOrder("name DESC"))
}

// Recipes 在通用的按用户隔离能力之上，处理标签与配料的多对多关联
type Recipes struct {
	*Catalog[models.Recipe, *models.Recipe]

	// 为 true 时，关联的标签与配料必须属于调用者
	// 为 false 时只检查存在，不检查归属
	strictOwnership bool
}

func NewRecipes(db *gorm.DB, strictOwnership bool) *Recipes {
	return &Recipes{
		Catalog:         New[models.Recipe](db, WithPreload("Tags", "Ingredients")),
		strictOwnership: strictOwnership,
	}
}

// RecipeRelations 创建或更新时传入的关联 id ，为 nil 表示不修改
type RecipeRelations struct {
	TagIDs        []uint
	IngredientIDs []uint
}

// RecipePatch 部分更新，为 nil 的字段保持不变
type RecipePatch struct {
	Title       *string
	TimeMinutes *int
	Price       *decimal.Decimal
	Link        *string
	RecipeRelations
}

func (r *Recipes) validateRelations(ctx context.Context, owner uint, rel RecipeRelations) error {
	var ownerFilter *uint
	if r.strictOwnership {
		ownerFilter = &owner
	}

	db := r.db.WithContext(ctx)
	if err := validateIDs[models.Tag](db, "tags", rel.TagIDs, ownerFilter); err != nil {
		return err
	}
	if err := validateIDs[models.Ingredient](db, "ingredients", rel.IngredientIDs, ownerFilter); err != nil {
		return err
	}
	return nil
}

func tagRefs(ids []uint) []models.Tag {
	tags := make([]models.Tag, 0, len(ids))
	for _, id := range ids {
		tags = append(tags, models.Tag{Model: gorm.Model{ID: id}})
	}
	return tags
}

func ingredientRefs(ids []uint) []models.Ingredient {
	ingredients := make([]models.Ingredient, 0, len(ids))
	for _, id := range ids {
		ingredients = append(ingredients, models.Ingredient{Model: gorm.Model{ID: id}})
	}
	return ingredients
}

// CreateRecipe 写入菜谱与关联，返回时已加载完整的标签与配料
func (r *Recipes) CreateRecipe(ctx context.Context, owner uint, recipe *models.Recipe, rel RecipeRelations) (*models.Recipe, error) {
	if err := r.validateRelations(ctx, owner, rel); err != nil {
		return nil, err
	}

	recipe.Tags = tagRefs(rel.TagIDs)
	recipe.Ingredients = ingredientRefs(rel.IngredientIDs)

	// 菜谱本身与关联表由 gorm 在同一个事务里写入
	if err := r.Create(ctx, owner, recipe); err != nil {
		return nil, err
	}

	return r.Retrieve(ctx, owner, recipe.ID)
}

func (r *Recipes) UpdateRecipe(ctx context.Context, owner uint, id uint, patch RecipePatch) (*models.Recipe, error) {
	recipe, err := r.Retrieve(ctx, owner, id)
	if err != nil {
		return nil, err
	}

	if err := r.validateRelations(ctx, owner, patch.RecipeRelations); err != nil {
		return nil, err
	}

	// 映射字段
	changes := map[string]any{}
	if patch.Title != nil {
		changes["title"] = *patch.Title
	}
	if patch.TimeMinutes != nil {
		changes["time_minutes"] = *patch.TimeMinutes
	}
	if patch.Price != nil {
		changes["price"] = *patch.Price
	}
	if patch.Link != nil {
		changes["link"] = *patch.Link
	}

	if err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(changes) > 0 {
			if err := tx.Model(recipe).Omit("Tags", "Ingredients").Updates(changes).Error; err != nil {
				return fmt.Errorf("update recipe %d: %w", id, err)
			}
		}
		if patch.TagIDs != nil {
			if err := tx.Model(recipe).Omit("Tags.*").Association("Tags").Replace(tagRefs(patch.TagIDs)); err != nil {
				return fmt.Errorf("replace tags of recipe %d: %w", id, err)
			}
		}
		if patch.IngredientIDs != nil {
			if err := tx.Model(recipe).Omit("Ingredients.*").Association("Ingredients").Replace(ingredientRefs(patch.IngredientIDs)); err != nil {
				return fmt.Errorf("replace ingredients of recipe %d: %w", id, err)
			}
		}
		return nil
	}); err != nil {
		return nil, err
	}

	return r.Retrieve(ctx, owner, id)
}

// SetImage 记录图片在对象存储中的路径，返回之前的路径（没有则为 nil）
func (r *Recipes) SetImage(ctx context.Context, owner uint, id uint, key string) (*models.Recipe, *string, error) {
	recipe, err := r.Retrieve(ctx, owner, id)
	if err != nil {
		return nil, nil, err
	}
	previous := recipe.Image

	if err := r.db.WithContext(ctx).Model(recipe).Omit("Tags", "Ingredients").Update("image", key).Error; err != nil {
		return nil, nil, fmt.Errorf("set image of recipe %d: %w", id, err)
	}
	recipe.Image = &key

	return recipe, previous, nil
}

// DeleteRecipe 删除菜谱以及关联表中的记录，返回菜谱原有的图片路径（没有则为 nil）
func (r *Recipes) DeleteRecipe(ctx context.Context, owner uint, id uint) (*string, error) {
	recipe, err := r.Retrieve(ctx, owner, id)
	if err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Select("Tags", "Ingredients").Delete(recipe).Error; err != nil {
		return nil, fmt.Errorf("delete recipe %d: %w", id, err)
	}

	return recipe.Image, nil
}

// WithTags 只保留关联了任意一个给定标签的菜谱
func WithTags(ids []uint) Filter {
	return relatedTo(models.RecipeTagsTable, "tag_id", ids)
}

// WithIngredients 只保留关联了任意一个给定配料的菜谱
func WithIngredients(ids []uint) Filter {
	return relatedTo(models.RecipeIngredientsTable, "ingredient_id", ids)
}

func relatedTo(joinTable, column string, ids []uint) Filter {
	return func(db *gorm.DB) *gorm.DB {
		if len(ids) == 0 {
			return db
		}
		sub := db.Session(&gorm.Session{NewDB: true}).Table(joinTable).Select("recipe_id").Where(column+" IN ?", ids)
		return db.Where("id IN (?)", sub)
	}
}

// TagsAssignedOnly 只保留至少被一个菜谱使用的标签
func TagsAssignedOnly() Filter {
	return AssignedOnly(models.RecipeTagsTable, "tag_id")
}

// IngredientsAssignedOnly 只保留至少被一个菜谱使用的配料
func IngredientsAssignedOnly() Filter {
	return AssignedOnly(models.RecipeIngredientsTable, "ingredient_id")
}
