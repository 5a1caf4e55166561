package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email string  `json:"email" validate:"required,email"`
	Name  string  `json:"name" validate:"required,max=5"`
	Limit float64 `json:"limit" validate:"gt=0"`
}

func TestStruct(t *testing.T) {
	tests := []struct {
		req     sampleRequest
		name    string
		wantMsg string
	}{
		{
			name: "valid",
			req:  sampleRequest{Email: "a@b.io", Name: "abc", Limit: 1},
		},
		{
			name:    "missing email uses json name",
			req:     sampleRequest{Name: "abc", Limit: 1},
			wantMsg: "email: This field is required",
		},
		{
			name:    "name too long",
			req:     sampleRequest{Email: "a@b.io", Name: "abcdef", Limit: 1},
			wantMsg: "name: Must be at most 5 characters",
		},
		{
			name:    "limit not positive",
			req:     sampleRequest{Email: "a@b.io", Name: "abc"},
			wantMsg: "limit: Must be greater than 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(tt.req)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}
