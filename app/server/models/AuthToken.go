package models

import (
	"github.com/google/uuid"
	"time"
)

// AuthToken 与用户一一对应的不透明令牌，没有过期时间
type AuthToken struct {
	Token     uuid.UUID `gorm:"column:token;type:uuid;primaryKey"` // 令牌本身，不携带任何声明
	UserID    uint      `gorm:"column:user_id;uniqueIndex"`        // 所属用户
	CreatedAt time.Time `gorm:"column:created_at"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (t AuthToken) String() string {
	return t.Token.String()
}
