package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// Mode — режим развёртывания, определяется один раз при старте.
type Mode string

const (
	ModeDevelopment Mode = "development"
	ModeProduction  Mode = "production"
)

const (
	defaultSMTPPort        = 587
	defaultServerPort      = "8080"
	defaultDatabasePath    = "applications.db"
	productionDatabasePath = "/var/data/applications.db"
)

type SMTPConfig struct {
	Server   string
	Port     int
	Username string
	Password string
	ToEmail  string
}

type Config struct {
	Mode              Mode
	SecretKey         string
	ServerPort        string
	DatabasePath      string
	AdminPasswordHash string
	SMTP              SMTPConfig
}

// Load читает настройки из окружения (и .env, если он есть).
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Mode:       loadMode(),
		ServerPort: os.Getenv("SERVER_PORT"),
		SMTP: SMTPConfig{
			Server:   strings.TrimSpace(os.Getenv("SMTP_SERVER")),
			Port:     loadSMTPPort(),
			Username: strings.TrimSpace(os.Getenv("EMAIL_USER")),
			Password: strings.TrimSpace(os.Getenv("EMAIL_PASSWORD")),
			ToEmail:  strings.TrimSpace(os.Getenv("TO_EMAIL")),
		},
	}

	if cfg.ServerPort == "" {
		cfg.ServerPort = defaultServerPort
	}

	cfg.SecretKey = os.Getenv("SECRET_KEY")
	if cfg.SecretKey == "" {
		if cfg.Mode == ModeProduction {
			return nil, errors.New("SECRET_KEY must be set in production")
		}
		// в разработке живём со случайным ключом, сессии не переживают рестарт
		cfg.SecretKey = randomKey()
		log.Warn("SECRET_KEY is not set, generated a temporary key")
	}

	cfg.DatabasePath = os.Getenv("DATABASE_PATH")
	if cfg.DatabasePath == "" {
		if cfg.Mode == ModeProduction {
			cfg.DatabasePath = productionDatabasePath
		} else {
			cfg.DatabasePath = defaultDatabasePath
		}
	}

	// храним только bcrypt-хэш, не сам пароль
	if adminPassword := os.Getenv("ADMIN_PASSWORD"); adminPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		cfg.AdminPasswordHash = string(hash)
	}

	log.Infof("mode: %s", cfg.Mode)
	log.Infof("database: %s", cfg.DatabasePath)
	log.Infof("smtp configured: %v (user=%s password=%s)",
		cfg.SMTPConfigured(), Mask(cfg.SMTP.Username), Mask(cfg.SMTP.Password))

	return cfg, nil
}

func loadMode() Mode {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = os.Getenv("FLASK_ENV")
	}
	if env == "production" {
		return ModeProduction
	}
	return ModeDevelopment
}

func loadSMTPPort() int {
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil || port <= 0 {
		return defaultSMTPPort
	}
	return port
}

// SMTPConfigured — заданы ли учётные данные для отправки почты.
func (c *Config) SMTPConfigured() bool {
	return c.SMTP.Username != "" && c.SMTP.Password != ""
}

// Mask скрывает секрет в диагностическом выводе.
func Mask(s string) string {
	if s == "" {
		return ""
	}
	return "***masked***"
}

func randomKey() string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		log.Fatalf("failed to generate secret key: %v", err)
	}
	return hex.EncodeToString(buf)
}
