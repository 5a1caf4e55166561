package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/iudanet/budgetkeeper/internal/crypto"
)

func TestMain(m *testing.M) {
	crypto.PasswordCost = bcrypt.MinCost
	os.Exit(m.Run())
}

func TestRun_Success(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test_success.db")

	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)

	args := []string{"-username", "budgeteer", "-email", "budgeteer@example.com", "-password", "correct horse battery", "-db", dbPath}
	err := run(context.Background(), args, new(bytes.Buffer), stdout, stderr)
	require.NoError(t, err)

	assert.Contains(t, stdout.String(), "User budgeteer created successfully")
}

func TestRun_Prompts(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test_prompt.db")

	stdin := strings.NewReader("budgeteer\nbudgeteer@example.com\ncorrect horse battery\n")
	stdout := new(bytes.Buffer)

	err := run(context.Background(), []string{"-db", dbPath}, stdin, stdout, new(bytes.Buffer))
	require.NoError(t, err)

	output := stdout.String()
	assert.Contains(t, output, "Username: ")
	assert.Contains(t, output, "Email: ")
	assert.Contains(t, output, "Password: ")
	assert.Contains(t, output, "created successfully")
}

func TestRun_DuplicateUser(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test_duplicate.db")
	args := []string{"-username", "budgeteer", "-email", "budgeteer@example.com", "-password", "correct horse battery", "-db", dbPath}

	err := run(context.Background(), args, new(bytes.Buffer), new(bytes.Buffer), new(bytes.Buffer))
	require.NoError(t, err, "first run should succeed")

	err = run(context.Background(), args, new(bytes.Buffer), new(bytes.Buffer), new(bytes.Buffer))
	require.Error(t, err)
	assert.Equal(t, "User already exists.", err.Error())
}

func TestRun_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "short password", args: []string{"-username", "budgeteer", "-email", "b@example.com", "-password", "short"}},
		{name: "bad email", args: []string{"-username", "budgeteer", "-email", "not-an-email", "-password", "correct horse battery"}},
		{name: "short username", args: []string{"-username", "bob", "-email", "b@example.com", "-password", "correct horse battery"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append(tt.args, "-db", filepath.Join(t.TempDir(), "invalid.db"))
			err := run(context.Background(), args, new(bytes.Buffer), new(bytes.Buffer), new(bytes.Buffer))
			assert.Error(t, err)
		})
	}
}

func TestRun_EmptyStdin(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test_empty.db")

	err := run(context.Background(), []string{"-db", dbPath}, new(bytes.Buffer), new(bytes.Buffer), new(bytes.Buffer))
	assert.Error(t, err)
}

func TestRun_UnknownFlag(t *testing.T) {
	err := run(context.Background(), []string{"-user", "x"}, new(bytes.Buffer), new(bytes.Buffer), new(bytes.Buffer))
	assert.Error(t, err)
}
