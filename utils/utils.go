package utils

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/adamspd/LogicQuiz/models"
)

// Environment utilities
func GetEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func GetEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
		LogError("Ignoring non-integer %s=%q, using %d", key, value, defaultValue)
	}
	return defaultValue
}

func GetEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		LogError("Ignoring invalid duration %s=%q, using %v", key, value, defaultValue)
	}
	return defaultValue
}

// NormalizeEmail lowercases and trims an e-mail handle.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateRegisterRequest checks a registration form. Errors wrap models.ErrInvalidInput.
func ValidateRegisterRequest(req *models.RegisterRequest) error {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" ||
		req.Password == "" || req.ConfirmPassword == "" {
		return fmt.Errorf("%w: all fields are required", models.ErrInvalidInput)
	}

	if !strings.Contains(req.Email, "@") {
		return fmt.Errorf("%w: email is not valid", models.ErrInvalidInput)
	}

	if req.Password != req.ConfirmPassword {
		return fmt.Errorf("%w: passwords do not match", models.ErrInvalidInput)
	}

	if len(req.Password) < MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", models.ErrInvalidInput, MinPasswordLength)
	}

	return nil
}
