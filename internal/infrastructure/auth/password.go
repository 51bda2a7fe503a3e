package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Стоимость bcrypt. Фиксируем десятку явно, чтобы хеши
// не менялись при смене дефолта библиотеки.
const bcryptCost = 10

type PasswordManager struct {
	cost int
}

func NewPasswordManager() *PasswordManager {
	return &PasswordManager{
		cost: bcryptCost,
	}
}

// HashPassword превращает пароль в соленый односторонний хеш
func (m *PasswordManager) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), m.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword сравнивает пароль с хешем из хранилища
func (m *PasswordManager) VerifyPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
