package models

import "gorm.io/gorm"

type User struct {
	gorm.Model

	// 基础信息
	Email string `gorm:"column:email;size:255;uniqueIndex;not null"` // 邮箱，全局唯一，域名部分统一小写
	Name  string `gorm:"column:name;size:255"`                       // 显示名称

	// 状态与权限
	IsActive    bool `gorm:"column:is_active"`    // 是否启用，未启用的用户不能登录
	IsStaff     bool `gorm:"column:is_staff"`     // 是否可以进入管理后台
	IsSuperuser bool `gorm:"column:is_superuser"` // 是否拥有全部权限

	// 登录与授权认证相关
	Password string `gorm:"column:password"` // 密码，使用 argon2id 储存，为空表示不可用密码
}

func (u User) String() string {
	return u.Email
}
