package account

import (
	"context"
	"errors"
	"fmt"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"recipe-app-api/app/server/constants"
	"recipe-app-api/app/server/models"
	"recipe-app-api/app/server/types"
)

// ProfileUpdate 部分更新，为 nil 的字段保持不变
type ProfileUpdate struct {
	Name     *string
	Password *string
}

func (s *Service) CreateUser(ctx context.Context, email, password, name string) (*models.User, error) {
	return s.createUser(ctx, &models.User{
		Email:    email,
		Name:     name,
		IsActive: true,
	}, password)
}

func (s *Service) CreateSuperuser(ctx context.Context, email, password string) (*models.User, error) {
	return s.createUser(ctx, &models.User{
		Email:       email,
		IsActive:    true,
		IsStaff:     true,
		IsSuperuser: true,
	}, password)
}

func (s *Service) createUser(ctx context.Context, user *models.User, password string) (*models.User, error) {
	// 没有邮箱的用户不允许创建
	if user.Email == "" {
		return nil, types.NewValidationError("email", "users must have an email address")
	}
	user.Email = NormalizeEmail(user.Email)

	// 检查是否已经存在
	var counter int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).Where("email = ?", user.Email).Count(&counter).Error; err != nil {
		return nil, fmt.Errorf("count users by email: %w", err)
	} else if counter > 0 {
		return nil, types.NewValidationError("email", "user with this email already exists")
	}

	// 处理密码
	hash, err := s.hashPassword(password)
	if err != nil {
		return nil, err
	}
	user.Password = hash

	// 插入记录
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// 并发注册时由唯一索引兜底
			return nil, types.NewValidationError("email", "user with this email already exists")
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.l.Debug("user created", zap.Uint("id", user.ID), zap.Bool("superuser", user.IsSuperuser))

	return user, nil
}

func (s *Service) GetProfile(ctx context.Context, userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// 令牌有效但用户已不存在，按未认证处理
			return nil, fmt.Errorf("user %d: %w", userID, types.ErrAuthentication)
		}
		return nil, fmt.Errorf("get user %d: %w", userID, err)
	}
	return &user, nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID uint, upd ProfileUpdate) (*models.User, error) {
	if upd.Password != nil && len([]rune(*upd.Password)) < constants.PasswordMinLength {
		return nil, types.NewValidationError("password", fmt.Sprintf("ensure this field has at least %d characters", constants.PasswordMinLength))
	}

	user, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	// 映射字段
	changes := map[string]any{}
	if upd.Name != nil {
		user.Name = *upd.Name
		changes["name"] = user.Name
	}
	if upd.Password != nil {
		hash, err := s.hashPassword(*upd.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hash
		changes["password"] = user.Password
	}

	if len(changes) == 0 {
		return user, nil
	}

	// 更新用户信息
	if err := s.db.WithContext(ctx).Model(user).Updates(changes).Error; err != nil {
		return nil, fmt.Errorf("update user %d: %w", userID, err)
	}

	return user, nil
}
