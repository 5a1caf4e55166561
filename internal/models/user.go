package models

import "time"

// User представляет пользователя в системе
type User struct {
	CreatedAt    time.Time `json:"created_at"`    // время создания
	UpdatedAt    time.Time `json:"updated_at"`    // время последнего обновления
	UUID         string    `json:"uuid"`          // стабильный идентификатор пользователя
	Username     string    `json:"username"`      // username (формат см. validation.ValidateUsername)
	Email        string    `json:"email"`         // уникальный email, в нижнем регистре
	PasswordHash string    `json:"-"`             // bcrypt хеш пароля, никогда не сериализуется
	ID           int64     `json:"id"`            // id записи в хранилище
}

// UserPatch содержит изменяемые поля профиля.
// Пустое значение означает "не менять".
type UserPatch struct {
	Username string
	Email    string
	Password string
}

// RefreshTokenRecord - запись whitelist: одна активная refresh-сессия на пользователя
type RefreshTokenRecord struct {
	ExpireAt       time.Time `json:"expire_at"`       // время истечения записи
	UserUUID       string    `json:"user_uuid"`       // UUID пользователя (уникален)
	SequenceNumber int64     `json:"sequence_number"` // число выданных refresh токенов
}

// IsExpired reports whether the record expired before now
func (r *RefreshTokenRecord) IsExpired(now time.Time) bool {
	return r.ExpireAt.Before(now)
}
