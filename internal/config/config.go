// Package config provides configuration for the application
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Supported database drivers
const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

// Config holds all configuration for the application
type Config struct {
	Database    DatabaseConfig
	Server      ServerConfig
	Logging     LoggingConfig
	CORS        CORSConfig
	RateLimit   RateLimitConfig
	Practice    PracticeConfig
	Maintenance MaintenanceConfig
}

// DatabaseConfig holds database connection settings
//
// Path is used by the sqlite driver, the remaining fields by the mysql driver.
type DatabaseConfig struct {
	Driver   string
	Path     string
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}

// ServerConfig holds server settings
type ServerConfig struct {
	Port int
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level string
}

// CORSConfig holds CORS settings
type CORSConfig struct {
	AllowedOrigins []string
}

// RateLimitConfig holds request rate limiting settings
type RateLimitConfig struct {
	RequestsPerMinute int
}

// PracticeConfig holds session generation settings
type PracticeConfig struct {
	// RandomSeed makes session generation reproducible when set
	RandomSeed *uint64
}

// MaintenanceConfig holds background database maintenance settings
type MaintenanceConfig struct {
	// Schedule is a standard five-field cron expression, empty disables maintenance
	Schedule string
}

// DefaultMaintenanceSchedule runs database maintenance daily at 04:00
const DefaultMaintenanceSchedule = "0 4 * * *"

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (optional)
	godotenv.Load()

	cfg := &Config{}

	// Database configuration
	driver := os.Getenv("DB_DRIVER")
	if driver == "" {
		driver = DriverSQLite // default embedded store
	}
	cfg.Database.Driver = driver

	switch driver {
	case DriverSQLite:
		dbPath := os.Getenv("DB_PATH")
		if dbPath == "" {
			dbPath = "barista.db"
		}
		cfg.Database.Path = dbPath
	case DriverMySQL:
		if err := loadMySQL(&cfg.Database); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("invalid DB_DRIVER: %s, must be 'sqlite' or 'mysql'", driver)
	}

	// Server configuration
	serverPortStr := os.Getenv("SERVER_PORT")
	if serverPortStr == "" {
		serverPortStr = "8080" // default port
	}
	serverPort, err := strconv.Atoi(serverPortStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
	}
	cfg.Server.Port = serverPort

	// Logging configuration
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info" // default level
	}
	cfg.Logging.Level = logLevel

	// CORS configuration
	corsOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
	if corsOrigins == "" {
		// Default to allow all origins if not specified (for development)
		cfg.CORS.AllowedOrigins = []string{"*"}
	} else {
		origins := strings.Split(corsOrigins, ",")
		cfg.CORS.AllowedOrigins = make([]string, 0, len(origins))
		for _, origin := range origins {
			origin = strings.TrimSpace(origin)
			if origin != "" {
				cfg.CORS.AllowedOrigins = append(cfg.CORS.AllowedOrigins, origin)
			}
		}
		if len(cfg.CORS.AllowedOrigins) == 0 {
			cfg.CORS.AllowedOrigins = []string{"*"}
		}
	}

	// Rate limit configuration
	rateLimitStr := os.Getenv("RATE_LIMIT_PER_MINUTE")
	if rateLimitStr == "" {
		rateLimitStr = "100"
	}
	rateLimit, err := strconv.Atoi(rateLimitStr)
	if err != nil || rateLimit <= 0 {
		return nil, fmt.Errorf("invalid RATE_LIMIT_PER_MINUTE: %s", rateLimitStr)
	}
	cfg.RateLimit.RequestsPerMinute = rateLimit

	// Practice configuration
	if seedStr := os.Getenv("RANDOM_SEED"); seedStr != "" {
		seed, err := strconv.ParseUint(seedStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid RANDOM_SEED: %w", err)
		}
		cfg.Practice.RandomSeed = &seed
	}

	// Maintenance configuration
	schedule, ok := os.LookupEnv("DB_MAINTENANCE_SCHEDULE")
	switch {
	case !ok || strings.TrimSpace(schedule) == "":
		cfg.Maintenance.Schedule = DefaultMaintenanceSchedule
	case schedule == "off":
		cfg.Maintenance.Schedule = ""
	default:
		cfg.Maintenance.Schedule = strings.TrimSpace(schedule)
	}

	return cfg, nil
}

// loadMySQL reads the MySQL connection settings, all of them are required
func loadMySQL(db *DatabaseConfig) error {
	dbHost := os.Getenv("DB_HOST")
	if dbHost == "" {
		return fmt.Errorf("DB_HOST is required")
	}
	db.Host = dbHost

	dbPortStr := os.Getenv("DB_PORT")
	if dbPortStr == "" {
		return fmt.Errorf("DB_PORT is required")
	}
	dbPort, err := strconv.Atoi(dbPortStr)
	if err != nil {
		return fmt.Errorf("invalid DB_PORT: %w", err)
	}
	db.Port = dbPort

	dbUser := os.Getenv("DB_USER")
	if dbUser == "" {
		return fmt.Errorf("DB_USER is required")
	}
	db.User = dbUser

	dbPassword := os.Getenv("DB_PASSWORD")
	if dbPassword == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	db.Password = dbPassword

	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		return fmt.Errorf("DB_NAME is required")
	}
	db.DBName = dbName

	return nil
}

// DSN returns the database connection string for the configured driver
func (c *Config) DSN() string {
	if c.Database.Driver == DriverMySQL {
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4&multiStatements=true&clientFoundRows=true",
			c.Database.User,
			c.Database.Password,
			c.Database.Host,
			c.Database.Port,
			c.Database.DBName,
		)
	}
	return c.Database.Path
}
