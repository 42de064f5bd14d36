package account

import (
	"context"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"recipe-app-api/app/server/constants"
	"recipe-app-api/app/server/models"
	"recipe-app-api/app/server/types"
	"strconv"
)

// Authenticate 校验邮箱与密码，成功时返回该用户的令牌（已有则复用）
func (s *Service) Authenticate(ctx context.Context, email, password string) (string, error) {
	// 没有写邮箱或密码
	if email == "" || password == "" {
		return "", fmt.Errorf("missing credentials: %w", types.ErrAuthentication)
	}

	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "email = ?", NormalizeEmail(email)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", fmt.Errorf("no such user: %w", types.ErrAuthentication)
		}
		return "", fmt.Errorf("find user: %w", err)
	}

	if !user.IsActive {
		return "", fmt.Errorf("user %d is inactive: %w", user.ID, types.ErrAuthentication)
	}

	// 提取密码 hash 并进行校验
	if match, err := s.checkPassword(password, user.Password); err != nil {
		return "", err
	} else if !match {
		return "", fmt.Errorf("password mismatch: %w", types.ErrAuthentication)
	}

	// 每个用户只有一个令牌，已存在就直接返回
	token := models.AuthToken{UserID: user.ID}
	if err := s.db.WithContext(ctx).
		Where(models.AuthToken{UserID: user.ID}).
		Attrs(models.AuthToken{Token: uuid.New()}).
		FirstOrCreate(&token).Error; err != nil {
		return "", fmt.Errorf("issue token for user %d: %w", user.ID, err)
	}

	return token.Token.String(), nil
}

// ResolveToken 将令牌映射回用户 ID ，优先查询缓存
func (s *Service) ResolveToken(ctx context.Context, tokenString string) (uint, error) {
	// 格式化 UUID
	token, err := uuid.Parse(tokenString)
	if err != nil {
		return 0, fmt.Errorf("invalid token %q: %w", tokenString, types.ErrAuthentication)
	}

	// 查询缓存
	cacheKey := fmt.Sprintf(constants.CacheKeyAuthToken, token.String())
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err != nil {
			if !errors.Is(err, redis.Nil) {
				s.l.Error("failed to query cache for auth token", zap.Error(err))
			}
		} else if userID, err := strconv.ParseUint(cached, 10, 64); err != nil {
			s.l.Error("failed to parse cached user id", zap.String("cached", cached), zap.Error(err))
			// 可能是无效的缓存，清理掉
			s.rdb.Del(ctx, cacheKey)
		} else {
			return uint(userID), nil
		}
	}

	// 查询数据库，只认可启用中的用户
	var authToken models.AuthToken
	if err := s.db.WithContext(ctx).
		Joins("User").
		Where(`"User"."is_active" = ?`, true).
		First(&authToken, "auth_tokens.token = ?", token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, fmt.Errorf("unknown token: %w", types.ErrAuthentication)
		}
		return 0, fmt.Errorf("find token: %w", err)
	}

	// 加入缓存，方便下一次查询
	if s.rdb != nil {
		if err := s.rdb.Set(ctx, cacheKey, strconv.FormatUint(uint64(authToken.UserID), 10), constants.CacheExpireAuthToken).Err(); err != nil {
			s.l.Error("failed to cache auth token", zap.Uint("userID", authToken.UserID), zap.Error(err))
		}
	}

	return authToken.UserID, nil
}
