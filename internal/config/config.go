package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type DatabaseDriver string

const (
	MySQL    DatabaseDriver = "mysql"
	Postgres DatabaseDriver = "postgres"
	SQLite   DatabaseDriver = "sqlite"
)

// DatabaseConfig holds the static connection parameters for the dados table.
type DatabaseConfig struct {
	Driver   DatabaseDriver
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	// SQLite config
	SQLitePath string
	// QueryTimeout bounds every query; zero disables the bound.
	QueryTimeout time.Duration
}

type Config struct {
	Database  DatabaseConfig
	Port      string
	LogLevel  string
	LogFormat string
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env file: %w", err)
	}

	driver := DatabaseDriver(getEnv("DB_DRIVER", string(MySQL)))

	defaultPort := "3306"
	if driver == Postgres {
		defaultPort = "5432"
	}
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", defaultPort))
	if err != nil {
		return nil, fmt.Errorf("DB_PORT is not a number: %w", err)
	}

	var queryTimeout time.Duration
	if raw := os.Getenv("QUERY_TIMEOUT"); raw != "" {
		queryTimeout, err = time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("QUERY_TIMEOUT is not a duration: %w", err)
		}
		if queryTimeout < 0 {
			return nil, fmt.Errorf("QUERY_TIMEOUT must not be negative")
		}
	}

	config := &Config{
		Database: DatabaseConfig{
			Driver:       driver,
			Host:         getEnv("DB_HOST", "localhost"),
			Port:         dbPort,
			User:         os.Getenv("DB_USER"),
			Password:     os.Getenv("DB_PASSWORD"),
			Name:         getEnv("DB_NAME", "dados_dashboard"),
			QueryTimeout: queryTimeout,
		},
		Port:      getEnv("PORT", "5000"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),
	}

	switch driver {
	case MySQL, Postgres:
	case SQLite:
		sqlitePath := os.Getenv("SQLITE_PATH")
		if sqlitePath == "" {
			// Default to a data directory in the current directory
			sqlitePath = filepath.Join("data", fmt.Sprintf("%s.db", config.Database.Name))
		}
		config.Database.SQLitePath = sqlitePath
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER: %s", driver)
	}

	if config.LogFormat != "text" && config.LogFormat != "json" {
		return nil, fmt.Errorf("unsupported LOG_FORMAT: %s", config.LogFormat)
	}

	return config, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
