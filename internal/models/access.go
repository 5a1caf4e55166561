package models

import "github.com/google/uuid"

// AccessLevel is a role a user holds on a budget
type AccessLevel string

const (
	AccessOwner AccessLevel = "owner"
	AccessRead  AccessLevel = "read"
	AccessWrite AccessLevel = "write"
)

// UUIDLength длина строкового UUID (8-4-4-4-12)
const UUIDLength = 36

// UserAccess grants one user a role on a budget
type UserAccess struct {
	UserUUID    string      `json:"userUUID"`
	AccessLevel AccessLevel `json:"accessLevel"`
}

// IsUUID reports whether s is a hyphenated RFC 4122 UUID.
// uuid.Parse также принимает urn: и {} формы, их отсекает проверка длины.
func IsUUID(s string) bool {
	if len(s) != UUIDLength {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// NewUserAccess validates a single access entry
func NewUserAccess(userUUID string, level AccessLevel) (*UserAccess, error) {
	const origin = "UserAccess constructor"

	if userUUID == "" {
		return nil, invalid("User UUID is required.", origin)
	}
	if !IsUUID(userUUID) {
		return nil, invalid("User UUID must be a valid UUID.", origin)
	}

	switch level {
	case "":
		return nil, invalid("Access level is required.", origin)
	case AccessOwner, AccessRead, AccessWrite:
	default:
		return nil, invalid("Access level must be one of the following: owner, read, write.", origin)
	}

	return &UserAccess{UserUUID: userUUID, AccessLevel: level}, nil
}
