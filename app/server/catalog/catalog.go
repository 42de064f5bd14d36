// Package catalog implements per-user collections: every query is filtered by
// the owning user before anything else happens, and created records are
// always assigned to the caller.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"gorm.io/gorm"
	"recipe-app-api/app/server/types"
)

// Owned 是可以按用户隔离的模型指针
type Owned[M any] interface {
	*M
	GetID() uint
	SetOwner(userID uint)
	OwnerID() uint
}

// Filter 用于在列表查询上追加条件
type Filter func(db *gorm.DB) *gorm.DB

type Catalog[M any, P Owned[M]] struct {
	db      *gorm.DB
	order   string   // 列表排序，为空时按插入顺序
	preload []string // 查询时需要一起加载的关联
	omit    []string // 创建时不写入的关联（只写关联表）
}

type CatalogOption func(*catalogOptions)

type catalogOptions struct {
	order   string
	preload []string
	omit    []string
}

func WithOrder(order string) CatalogOption {
	return func(o *catalogOptions) { o.order = order }
}

func WithPreload(associations ...string) CatalogOption {
	return func(o *catalogOptions) {
		o.preload = append(o.preload, associations...)
		for _, a := range associations {
			o.omit = append(o.omit, a+".*")
		}
	}
}

func New[M any, P Owned[M]](db *gorm.DB, opts ...CatalogOption) *Catalog[M, P] {
	var o catalogOptions
	for _, opt := range opts {
		opt(&o)
	}
	return &Catalog[M, P]{
		db:      db,
		order:   o.order,
		preload: o.preload,
		omit:    o.omit,
	}
}

// scoped 返回只包含 owner 记录的查询
func (c *Catalog[M, P]) scoped(ctx context.Context, owner uint) *gorm.DB {
	q := c.db.WithContext(ctx).Where("user_id = ?", owner)
	for _, a := range c.preload {
		q = q.Preload(a)
	}
	return q
}

func (c *Catalog[M, P]) List(ctx context.Context, owner uint, filters ...Filter) ([]M, error) {
	q := c.scoped(ctx, owner)
	for _, f := range filters {
		q = f(q)
	}
	if c.order != "" {
		q = q.Order(c.order)
	} else {
		q = q.Order("id ASC")
	}

	list := []M{}
	if err := q.Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}
	return list, nil
}

// Create 无论传入的记录写了什么 owner ，都会被替换为调用者
func (c *Catalog[M, P]) Create(ctx context.Context, owner uint, m P) error {
	m.SetOwner(owner)

	q := c.db.WithContext(ctx)
	if len(c.omit) > 0 {
		q = q.Omit(c.omit...)
	}
	if err := q.Create(m).Error; err != nil {
		return fmt.Errorf("create: %w", err)
	}
	return nil
}

// Retrieve 先按 owner 过滤再查找，别人的记录与不存在的记录一样返回 ErrNotFound
func (c *Catalog[M, P]) Retrieve(ctx context.Context, owner uint, id uint) (P, error) {
	m := P(new(M))
	if err := c.scoped(ctx, owner).First(m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("id %d: %w", id, types.ErrNotFound)
		}
		return nil, fmt.Errorf("retrieve %d: %w", id, err)
	}
	return m, nil
}

func (c *Catalog[M, P]) Delete(ctx context.Context, owner uint, id uint) error {
	res := c.db.WithContext(ctx).Where("user_id = ?", owner).Delete(P(new(M)), id)
	if res.Error != nil {
		return fmt.Errorf("delete %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("id %d: %w", id, types.ErrNotFound)
	}
	return nil
}

// AssignedOnly 只保留出现在关联表 joinTable 中的记录， column 为关联表里指向本表的列
func AssignedOnly(joinTable, column string) Filter {
	return func(db *gorm.DB) *gorm.DB {
		sub := db.Session(&gorm.Session{NewDB: true}).Table(joinTable).Select(column)
		return db.Where("id IN (?)", sub)
	}
}
