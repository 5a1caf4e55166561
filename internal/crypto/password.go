package crypto

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordMismatch пароль не совпадает с хешем
var ErrPasswordMismatch = errors.New("password does not match")

// PasswordCost стоимость bcrypt для новых хешей
var PasswordCost = bcrypt.DefaultCost

var (
	dummyOnce sync.Once
	dummyHash string
)

// DummyHash returns a bcrypt hash of a fixed password, generated once with
// PasswordCost. Сравнение с ним уравнивает время ответа, когда пользователь
// не найден.
func DummyHash() string {
	dummyOnce.Do(func() {
		hash, err := bcrypt.GenerateFromPassword([]byte("budgetkeeper-dummy-password"), PasswordCost)
		if err == nil {
			dummyHash = string(hash)
		}
	})
	return dummyHash
}

// HashPassword хеширует пароль с использованием bcrypt
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hash), nil
}

// CheckPassword сравнивает пароль с сохраненным bcrypt хешем.
// Возвращает ErrPasswordMismatch при несовпадении.
func CheckPassword(hash, password string) error {
	if hash == "" {
		return fmt.Errorf("hash cannot be empty")
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrPasswordMismatch
	}
	if err != nil {
		return fmt.Errorf("failed to compare password: %w", err)
	}

	return nil
}
