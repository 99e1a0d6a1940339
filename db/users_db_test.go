package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adamspd/LogicQuiz/models"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	database, err := InitDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database
}

func registration(email string) models.RegisterRequest {
	return models.RegisterRequest{
		Name:            "Ana",
		Email:           email,
		Password:        "secret1",
		ConfirmPassword: "secret1",
	}
}

func TestCreateUser(t *testing.T) {
	database := newTestDB(t)
	ctx := context.Background()

	user, err := database.CreateUser(ctx, registration(" Ana@Example.com "))
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", user.Email)
	assert.Equal(t, "Ana", user.Name)
	assert.NotEqual(t, "secret1", user.PasswordHash)
	assert.False(t, user.CreatedAt.IsZero())

	stored, err := database.GetUserByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.Email, stored.Email)
	assert.True(t, user.CreatedAt.Equal(stored.CreatedAt))
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	database := newTestDB(t)
	ctx := context.Background()

	_, err := database.CreateUser(ctx, registration("ana@example.com"))
	require.NoError(t, err)

	_, err = database.CreateUser(ctx, registration("ANA@example.com"))
	assert.ErrorIs(t, err, models.ErrEmailTaken)
}

func TestCreateUser_InvalidForm(t *testing.T) {
	database := newTestDB(t)

	req := registration("ana@example.com")
	req.ConfirmPassword = "different"
	_, err := database.CreateUser(context.Background(), req)
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	_, err = database.GetUserByEmail(context.Background(), "ana@example.com")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestAuthenticateUser(t *testing.T) {
	database := newTestDB(t)
	ctx := context.Background()

	_, err := database.CreateUser(ctx, registration("ana@example.com"))
	require.NoError(t, err)

	user, err := database.AuthenticateUser(ctx, "ana@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", user.Email)

	_, err = database.AuthenticateUser(ctx, "ana@example.com", "wrong-secret")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)

	_, err = database.AuthenticateUser(ctx, "bob@example.com", "secret1")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
}
