package account

import (
	"fmt"
	"github.com/alexedwards/argon2id"
)

func (s *Service) hashPassword(password string) (string, error) {
	// 空密码表示不可用密码，任何输入都无法通过校验
	if password == "" {
		return "", nil
	}

	hash, err := argon2id.CreateHash(password, s.params)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return hash, nil
}

func (s *Service) checkPassword(password, hash string) (bool, error) {
	if password == "" || hash == "" {
		return false, nil
	}

	match, _, err := argon2id.CheckHash(password, hash)
	if err != nil {
		return false, fmt.Errorf("check password: %w", err)
	}
	return match, nil
}
