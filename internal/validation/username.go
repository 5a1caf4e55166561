package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// UsernamePattern определяет допустимый формат username
// Первый символ - латинская буква, далее буквы, цифры, "_" и "-"
// Длина: 8-32 символа
var UsernamePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]{7,31}$`)

const (
	// MinUsernameLen минимальная длина username
	MinUsernameLen = 8
	// MaxUsernameLen максимальная длина username
	MaxUsernameLen = 32

	// MinPasswordLen минимальная длина пароля
	MinPasswordLen = 12
	// MaxPasswordLen максимальная длина пароля (bcrypt все равно режет до 72 байт)
	MaxPasswordLen = 256
)

// ValidateUsername проверяет, что username соответствует требованиям
func ValidateUsername(username string) error {
	if username == "" {
		return fmt.Errorf("username cannot be empty")
	}

	if len(username) < MinUsernameLen {
		return fmt.Errorf("username must be at least %d characters long", MinUsernameLen)
	}

	if len(username) > MaxUsernameLen {
		return fmt.Errorf("username must not exceed %d characters", MaxUsernameLen)
	}

	if !UsernamePattern.MatchString(username) {
		return fmt.Errorf("username must start with a letter and contain only letters, numbers, underscores and hyphens")
	}

	return nil
}

// ValidatePassword проверяет требования к паролю: 12-256 символов
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	if len(password) < MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters long", MinPasswordLen)
	}

	if len(password) > MaxPasswordLen {
		return fmt.Errorf("password must not exceed %d characters", MaxPasswordLen)
	}

	return nil
}

// NormalizeEmail приводит email к каноническому виду (trim + lower case)
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateEmail проверяет формат email после нормализации
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email cannot be empty")
	}
	if err := Var(email, "email"); err != nil {
		return fmt.Errorf("email is not valid")
	}
	return nil
}
