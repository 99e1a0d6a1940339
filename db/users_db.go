package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mattn/go-sqlite3"

	"github.com/adamspd/LogicQuiz/models"
	"github.com/adamspd/LogicQuiz/utils"
)

// CreateUser validates a registration form, hashes the secret and stores the account.
func (db *DB) CreateUser(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	if err := utils.ValidateRegisterRequest(&req); err != nil {
		return nil, err
	}

	email := utils.NormalizeEmail(req.Email)
	utils.LogDB("Creating user: %s", email)
	start := time.Now()

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.LogError("Failed to hash password: %v", err)
		return nil, err
	}

	user := &models.User{
		Email:        email,
		Name:         req.Name,
		PasswordHash: hashedPassword,
		CreatedAt:    time.Now().UTC().Truncate(time.Second),
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO users (email, name, password_hash, created_at)
		VALUES (?, ?, ?, ?)
	`, user.Email, user.Name, user.PasswordHash, user.CreatedAt)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey {
			utils.LogDB("CreateUser rejected duplicate email %s", email)
			return nil, fmt.Errorf("%s: %w", email, models.ErrEmailTaken)
		}
		utils.LogError("CreateUser failed: %v (%v)", err, time.Since(start))
		return nil, err
	}

	utils.LogDB("User %s created in %v", email, time.Since(start))
	return user, nil
}

// GetUserByEmail returns models.ErrNotFound for unknown accounts.
func (db *DB) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	email = utils.NormalizeEmail(email)
	utils.LogDB("Getting user by email: %s", email)

	var user models.User
	err := db.QueryRowContext(ctx, `
		SELECT email, name, password_hash, created_at
		FROM users WHERE email = ?
	`, email).Scan(&user.Email, &user.Name, &user.PasswordHash, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			utils.LogDB("User with email %s not found", email)
			return nil, fmt.Errorf("user %s: %w", email, models.ErrNotFound)
		}
		utils.LogError("GetUserByEmail(%s) failed: %v", email, err)
		return nil, err
	}

	return &user, nil
}

// AuthenticateUser verifies the secret and returns the account.
func (db *DB) AuthenticateUser(ctx context.Context, email, password string) (*models.User, error) {
	utils.LogDB("Authenticating user: %s", email)

	user, err := db.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.CheckPassword(user.PasswordHash, password) {
		utils.LogDB("Authentication failed: invalid password for user %s", user.Email)
		return nil, models.ErrInvalidCredentials
	}

	utils.LogDB("User %s authenticated successfully", user.Email)
	return user, nil
}
