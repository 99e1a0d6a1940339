package config

import (
	"time"

	"github.com/joho/godotenv"

	"github.com/adamspd/LogicQuiz/auth"
	"github.com/adamspd/LogicQuiz/db"
	"github.com/adamspd/LogicQuiz/models"
	"github.com/adamspd/LogicQuiz/utils"
)

type Config struct {
	Port            string
	DBPath          string
	QuestionsFile   string // empty selects the embedded catalog
	SessionTTL      time.Duration
	ShutdownTimeout time.Duration
	RedisURL        string // empty disables the job queue
	LogMode         string
	Email           *models.EmailConfig
}

// Load reads .env (if present) and the process environment.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:            utils.GetEnvOrDefault("PORT", "8043"),
		DBPath:          utils.GetEnvOrDefault("DB_PATH", db.MemoryPath),
		QuestionsFile:   utils.GetEnvOrDefault("QUESTIONS_FILE", ""),
		SessionTTL:      utils.GetEnvDuration("SESSION_TTL", auth.DefaultSessionTTL),
		ShutdownTimeout: utils.GetEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		RedisURL:        utils.GetEnvOrDefault("REDIS_URL", ""),
		LogMode:         utils.GetEnvOrDefault("LOG_MODE", "development"),
		Email:           LoadEmailConfig(),
	}
}

// LoadEmailConfig loads SMTP settings from the environment
func LoadEmailConfig() *models.EmailConfig {
	return &models.EmailConfig{
		SMTPHost:    utils.GetEnvOrDefault("SMTP_HOST", "localhost"),
		SMTPPort:    utils.GetEnvInt("SMTP_PORT", 465),
		Username:    utils.GetEnvOrDefault("SMTP_USERNAME", ""),
		Password:    utils.GetEnvOrDefault("SMTP_PASSWORD", ""),
		FromAddress: utils.GetEnvOrDefault("FROM_EMAIL", "noreply@localhost"),
		FromName:    utils.GetEnvOrDefault("FROM_NAME", "Logic Quiz"),
		BaseURL:     utils.GetEnvOrDefault("BASE_URL", "http://localhost:8043"),
	}
}
