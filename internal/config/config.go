package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"

	applog "github.com/RSABuilds/Salary-OT-Calculator/internal/log"
	"github.com/RSABuilds/Salary-OT-Calculator/internal/store"
)

const appDir = "salaryot"

type Config struct {
	// Storage
	Backend string
	DBPath  string

	// Export
	ExportDir string

	// UI
	SyncDelay time.Duration

	// Logging
	LogLevel string
	LogFile  string
}

// Load reads configuration from the environment, after loading a .env file
// from the working directory when one exists.
func Load() *Config {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv reads configuration from the environment only.
func FromEnv() *Config {
	return &Config{
		Backend:   getEnv("SALARYOT_BACKEND", "sqlite"),
		DBPath:    getEnv("SALARYOT_DB_PATH", defaultDBPath()),
		ExportDir: getEnv("SALARYOT_EXPORT_DIR", defaultExportDir()),
		SyncDelay: getEnvDuration("SALARYOT_SYNC_DELAY", 600*time.Millisecond),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFile:   getEnv("LOG_FILE", defaultPath("salaryot.log")),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	validBackends := []string{"memory", "sqlite"}
	isValidBackend := false
	for _, b := range validBackends {
		if c.Backend == b {
			isValidBackend = true
			break
		}
	}
	if !isValidBackend {
		errors = append(errors, fmt.Sprintf("invalid backend '%s': must be one of %v", c.Backend, validBackends))
	}

	if c.Backend == "sqlite" && c.DBPath == "" {
		errors = append(errors, "database path cannot be empty when using sqlite backend")
	}

	if c.ExportDir == "" {
		errors = append(errors, "export directory cannot be empty")
	} else if info, err := os.Stat(c.ExportDir); err == nil && !info.IsDir() {
		errors = append(errors, fmt.Sprintf("export path '%s' is not a directory", c.ExportDir))
	}

	if c.SyncDelay < 0 {
		errors = append(errors, fmt.Sprintf("invalid sync delay %v: must not be negative", c.SyncDelay))
	} else if c.SyncDelay > 10*time.Second {
		errors = append(errors, fmt.Sprintf("invalid sync delay %v: must be at most 10 seconds", c.SyncDelay))
	}

	if _, err := applog.ParseLevel(c.LogLevel); err != nil {
		errors = append(errors, err.Error())
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}
	return nil
}

func defaultDBPath() string {
	path, err := store.DefaultDBPath()
	if err != nil {
		return filepath.Join(".", appDir, "salaryot.db")
	}
	return path
}

func defaultPath(name string) string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", appDir, name)
	}
	return filepath.Join(dir, appDir, name)
}

func defaultExportDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
