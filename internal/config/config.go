package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"geninv/internal/logger"
)

const appName = "geninv"

type Config struct {
	// OpenAI Configuration
	OpenAIAPIKey string
	OpenAIModel  string

	// Local state
	DBFile    string
	OutputDir string

	// Logging Configuration
	LogLevel      string
	LogFormat     string
	LogTimeFormat string
	LogOutput     string
}

// SettingsFile returns the path of the persisted settings file,
// ~/.config/geninv/config.env.
func SettingsFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "config.env")
	}
	return filepath.Join(home, ".config", appName, "config.env")
}

func defaultDBFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return appName + ".db"
	}
	return filepath.Join(home, ".local", "share", appName, appName+".db")
}

func defaultOutputDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return appName
	}
	return filepath.Join(home, "Downloads", appName)
}

// Load builds the configuration from the environment. The settings file and
// any local .env should be loaded into the environment before calling it.
func Load() *Config {
	return &Config{
		OpenAIAPIKey:  getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:   getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		DBFile:        getEnv("GENINV_DB_FILE", defaultDBFile()),
		OutputDir:     getEnv("GENINV_OUTPUT_DIR", defaultOutputDir()),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "console"),
		LogTimeFormat: getEnv("LOG_TIME_FORMAT", "2006-01-02T15:04:05Z07:00"),
		LogOutput:     getEnv("LOG_OUTPUT", "stderr"),
	}
}

// RequireAPIKey returns an error when no API key is configured. Generation
// commands call this up front; listing and database commands do not need it.
func (c *Config) RequireAPIKey() error {
	if c.OpenAIAPIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required: set it in the environment or in %s", SettingsFile())
	}
	return nil
}

// Settings returns the key/value pairs persisted by `settings --save` and
// shown by `settings --list`.
func (c *Config) Settings() map[string]string {
	return map[string]string{
		"OPENAI_API_KEY":    c.OpenAIAPIKey,
		"OPENAI_MODEL":      c.OpenAIModel,
		"GENINV_DB_FILE":    c.DBFile,
		"GENINV_OUTPUT_DIR": c.OutputDir,
	}
}

// GetLoggerConfig returns a logger configuration from the main config
func (c *Config) GetLoggerConfig() logger.LogConfig {
	return logger.LogConfig{
		Level:      c.LogLevel,
		Format:     c.LogFormat,
		TimeFormat: c.LogTimeFormat,
		Output:     c.LogOutput,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// Save writes the settings file, creating its directory when needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	if err := godotenv.Write(c.Settings(), path); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}
