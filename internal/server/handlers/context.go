package handlers

import "context"

// contextKey тип ключей контекста, чтобы не пересекаться с чужими пакетами
type contextKey string

// UserUUIDKey ключ UUID аутентифицированного пользователя
const UserUUIDKey contextKey = "user_uuid"

// WithUserUUID кладет UUID пользователя в контекст
func WithUserUUID(ctx context.Context, userUUID string) context.Context {
	return context.WithValue(ctx, UserUUIDKey, userUUID)
}

// UserUUID извлекает UUID пользователя из контекста
func UserUUID(ctx context.Context) (string, bool) {
	userUUID, ok := ctx.Value(UserUUIDKey).(string)
	return userUUID, ok && userUUID != ""
}
