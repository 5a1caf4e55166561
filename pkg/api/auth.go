package api

// RegisterRequest представляет запрос на регистрацию нового пользователя
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=8,max=32"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=12,max=256"`
}

// LoginRequest представляет запрос на аутентификацию
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateUserRequest частичное обновление профиля, пустые поля не меняются
type UpdateUserRequest struct {
	Username string `json:"username" validate:"omitempty,min=8,max=32"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" validate:"omitempty,min=12,max=256"`
}

// UserResponse публичное представление пользователя
type UserResponse struct {
	UUID     string `json:"uuid"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// TokenResponse представляет ответ с токенами доступа
type TokenResponse struct {
	AccessToken  string `json:"accessToken"`  // JWT access token
	RefreshToken string `json:"refreshToken"` // JWT refresh token с номером в последовательности
	ExpiresIn    int64  `json:"expiresIn"`    // время жизни access token в секундах
}

// LoginResponse представляет ответ на успешный вход
type LoginResponse struct {
	User UserResponse `json:"user"`
	TokenResponse
}
