// Package users is the credential store: registration, password checks and
// profile changes.
package users

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/iudanet/budgetkeeper/internal/apperr"
	"github.com/iudanet/budgetkeeper/internal/crypto"
	"github.com/iudanet/budgetkeeper/internal/models"
	"github.com/iudanet/budgetkeeper/internal/server/storage"
	"github.com/iudanet/budgetkeeper/internal/validation"
)

// Service manages user accounts
type Service struct {
	store  storage.UserStorage
	logger *slog.Logger
}

// NewService creates a users service
func NewService(store storage.UserStorage, logger *slog.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Register creates a user with a bcrypt hashed password
func (s *Service) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	const origin = "UserService.Register"

	email = validation.NormalizeEmail(email)
	if err := validateCredentials(username, email, password, origin); err != nil {
		return nil, err
	}

	hash, err := crypto.HashPassword(password)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Failed to register user.", err, origin)
	}

	user := &models.User{
		UUID:         uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}

	if err := s.store.CreateUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, apperr.Wrap(apperr.Conflict, "User already exists.", err, origin)
		}
		return nil, apperr.Wrap(apperr.Internal, "Failed to register user.", err, origin)
	}

	s.logger.InfoContext(ctx, "user registered", slog.String("user_uuid", user.UUID))
	return user, nil
}

// checkPassword подменяется в тестах
var checkPassword = crypto.CheckPassword

// Authenticate returns the user whose email and password match.
// Unknown email and wrong password yield the same error.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	const origin = "UserService.Authenticate"

	user, err := s.store.GetUserByEmail(ctx, validation.NormalizeEmail(email))
	if errors.Is(err, storage.ErrNotFound) {
		// bcrypt выполняется в любом случае, иначе по времени видно, что email не существует
		_ = checkPassword(crypto.DummyHash(), password)
		return nil, apperr.Wrap(apperr.Unauthorized, "Invalid credentials.", err, origin)
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "Failed to authenticate user.", err, origin)
	}

	if err := checkPassword(user.PasswordHash, password); err != nil {
		if errors.Is(err, crypto.ErrPasswordMismatch) {
			return nil, apperr.Wrap(apperr.Unauthorized, "Invalid credentials.", err, origin)
		}
		return nil, apperr.Wrap(apperr.Internal, "Failed to authenticate user.", err, origin)
	}

	return user, nil
}

// GetByUUID returns a user by UUID
func (s *Service) GetByUUID(ctx context.Context, userUUID string) (*models.User, error) {
	user, err := s.store.GetUserByUUID(ctx, userUUID)
	if err != nil {
		return nil, notFoundOrInternal(err, "UserService.GetByUUID")
	}
	return user, nil
}

// Update applies the non-empty fields of patch. The password is re-hashed
// only when a new one is given.
func (s *Service) Update(ctx context.Context, userUUID string, patch models.UserPatch) (*models.User, error) {
	const origin = "UserService.Update"

	user, err := s.store.GetUserByUUID(ctx, userUUID)
	if err != nil {
		return nil, notFoundOrInternal(err, origin)
	}

	if patch.Username != "" {
		if err := validation.ValidateUsername(patch.Username); err != nil {
			return nil, apperr.Wrap(apperr.InvalidArgument, err.Error(), err, origin)
		}
		user.Username = patch.Username
	}

	if patch.Email != "" {
		email := validation.NormalizeEmail(patch.Email)
		if err := validation.ValidateEmail(email); err != nil {
			return nil, apperr.Wrap(apperr.InvalidArgument, err.Error(), err, origin)
		}
		user.Email = email
	}

	if patch.Password != "" {
		if err := validation.ValidatePassword(patch.Password); err != nil {
			return nil, apperr.Wrap(apperr.InvalidArgument, err.Error(), err, origin)
		}
		hash, err := crypto.HashPassword(patch.Password)
		if err != nil {
			return nil, apperr.Wrap(apperr.Internal, "Failed to update user.", err, origin)
		}
		user.PasswordHash = hash
	}

	if err := s.store.UpdateUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, apperr.Wrap(apperr.Conflict, "User already exists.", err, origin)
		}
		return nil, notFoundOrInternal(err, origin)
	}

	s.logger.InfoContext(ctx, "user updated", slog.String("user_uuid", userUUID))
	return user, nil
}

// Delete removes a user. Budgets and sessions of the user are left as they are.
func (s *Service) Delete(ctx context.Context, userUUID string) error {
	const origin = "UserService.Delete"

	if userUUID == "" {
		return apperr.New(apperr.NotFound, "User does not exist.", origin)
	}

	if err := s.store.DeleteUser(ctx, userUUID); err != nil {
		return notFoundOrInternal(err, origin)
	}

	s.logger.InfoContext(ctx, "user deleted", slog.String("user_uuid", userUUID))
	return nil
}

func validateCredentials(username, email, password, origin string) error {
	if err := validation.ValidateUsername(username); err != nil {
		return apperr.Wrap(apperr.InvalidArgument, err.Error(), err, origin)
	}
	if err := validation.ValidateEmail(email); err != nil {
		return apperr.Wrap(apperr.InvalidArgument, err.Error(), err, origin)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return apperr.Wrap(apperr.InvalidArgument, err.Error(), err, origin)
	}
	return nil
}

func notFoundOrInternal(err error, origin string) error {
	if errors.Is(err, storage.ErrNotFound) {
		return apperr.Wrap(apperr.NotFound, "User does not exist.", err, origin)
	}
	return apperr.Wrap(apperr.Internal, "Failed to access user.", err, origin)
}
