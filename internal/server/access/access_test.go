package access

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iudanet/budgetkeeper/internal/apperr"
	"github.com/iudanet/budgetkeeper/internal/models"
)

const (
	ownerID  = "11111111-1111-4111-8111-111111111111"
	readerID = "22222222-2222-4222-8222-222222222222"
	writerID = "33333333-3333-4333-8333-333333333333"
	strayID  = "44444444-4444-4444-8444-444444444444"
)

func TestCheckAccess(t *testing.T) {
	budget := &models.Budget{
		OwnerUUID: ownerID,
		UserAccess: []models.UserAccess{
			{UserUUID: ownerID, AccessLevel: models.AccessOwner},
			{UserUUID: readerID, AccessLevel: models.AccessRead},
			{UserUUID: writerID, AccessLevel: models.AccessWrite},
		},
	}

	tests := []struct {
		name     string
		user     string
		required Level
		allowed  bool
	}{
		{name: "owner reads", user: ownerID, required: Read, allowed: true},
		{name: "owner writes", user: ownerID, required: Write, allowed: true},
		{name: "reader reads", user: readerID, required: Read, allowed: true},
		{name: "reader writes", user: readerID, required: Write, allowed: false},
		{name: "writer reads", user: writerID, required: Read, allowed: true},
		{name: "writer writes", user: writerID, required: Write, allowed: true},
		{name: "stranger reads", user: strayID, required: Read, allowed: false},
		{name: "stranger writes", user: strayID, required: Write, allowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckAccess(budget, tt.user, tt.required)
			if tt.allowed {
				assert.NoError(t, err)
				return
			}
			assert.True(t, apperr.IsKind(err, apperr.Forbidden))
			assert.Equal(t, "User does not have access to the budget.", err.Error())
		})
	}
}

func TestCheckAccess_OwnerIgnoresAccessList(t *testing.T) {
	// владелец проходит даже с пустым списком доступа
	budget := &models.Budget{OwnerUUID: ownerID}

	assert.NoError(t, CheckAccess(budget, ownerID, Read))
	assert.NoError(t, CheckAccess(budget, ownerID, Write))
}

func TestCheckAccess_OwnerEntryForOtherUser(t *testing.T) {
	budget := &models.Budget{
		OwnerUUID:  ownerID,
		UserAccess: []models.UserAccess{{UserUUID: readerID, AccessLevel: models.AccessOwner}},
	}

	assert.NoError(t, CheckAccess(budget, readerID, Write))
}

func TestLevel_String(t *testing.T) {
	assert.Equal(t, "read", Read.String())
	assert.Equal(t, "write", Write.String())
}
