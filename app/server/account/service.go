// Package account manages users identified by email and the opaque tokens
// they authenticate with.
package account

import (
	"github.com/alexedwards/argon2id"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service struct {
	l      *zap.Logger      // 日志
	db     *gorm.DB         // 数据库
	rdb    *redis.Client    // Redis ，用于缓存令牌，为 nil 时不使用缓存
	params *argon2id.Params // 密码 hash 参数
}

type Option func(*Service)

// WithHashParams 替换默认的 argon2id 参数，测试中用来降低计算开销
func WithHashParams(params *argon2id.Params) Option {
	return func(s *Service) {
		s.params = params
	}
}

func New(l *zap.Logger, db *gorm.DB, rdb *redis.Client, opts ...Option) *Service {
	s := &Service{
		l:      l,
		db:     db,
		rdb:    rdb,
		params: argon2id.DefaultParams,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
