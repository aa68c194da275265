package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// LoadTestConfig loads the configuration for integration tests from the .env file or environment variables.
//
// Tests run against an SQLite database in dir unless TEST_DB_PATH is set.
func LoadTestConfig(dir string) *Config {
	// Try to load .env file (ignore error if file doesn't exist - it's optional)
	_ = godotenv.Load("./../../.env")
	_ = godotenv.Load()

	cfg := &Config{}
	cfg.Database.Driver = DriverSQLite
	cfg.Logging.Level = "debug"
	cfg.CORS.AllowedOrigins = []string{"*"}
	cfg.RateLimit.RequestsPerMinute = 1000

	dbPath := os.Getenv("TEST_DB_PATH")
	if dbPath == "" {
		dbPath = filepath.Join(dir, "barista_test.db")
	}
	cfg.Database.Path = dbPath

	return cfg
}
