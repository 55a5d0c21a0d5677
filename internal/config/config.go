package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"
)

// CoverageRule declares one recurring staffing expectation used by the
// coverage-gap report
type CoverageRule struct {
	Name     string `yaml:"name" validate:"required"`
	RRule    string `yaml:"rrule" validate:"required"`
	Location string `yaml:"location" validate:"required"`
	Type     string `yaml:"type" validate:"required,oneof=DAY NIGHT"`
}

// Config represents the application configuration
type Config struct {
	DatabaseURL   string         `yaml:"databaseURL" validate:"required"`
	HospitalID    string         `yaml:"hospitalID" validate:"required"`
	Timezone      string         `yaml:"timezone,omitempty"`
	GmailUserID   string         `yaml:"gmailUserID,omitempty" validate:"omitempty,email"`
	GmailSender   string         `yaml:"gmailSender,omitempty"`
	CoverageRules []CoverageRule `yaml:"coverageRules,omitempty" validate:"dive"`
}

// Location resolves the configured timezone, defaulting to UTC
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(c.Timezone)
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from roster_config.yaml
// It looks for the config file in the current directory first, then in the user's home directory
func Load() (*Config, error) {
	return LoadWithEnv("")
}

// LoadWithEnv loads and validates the configuration with an environment
// suffix. For example, env="test" will look for "roster_config.test.yaml".
func LoadWithEnv(env string) (*Config, error) {
	configPath, err := findConfigFile(env)
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct, the timezone, and the
// rrule syntax of every coverage rule
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if cfg.Timezone != "" {
		if _, err := time.LoadLocation(cfg.Timezone); err != nil {
			return fmt.Errorf("invalid timezone %q: %w", cfg.Timezone, err)
		}
	}

	for i, rule := range cfg.CoverageRules {
		if _, err := rrule.StrToRRule(rule.RRule); err != nil {
			return fmt.Errorf("invalid rrule in coverageRules[%d]: %w", i, err)
		}
	}

	return nil
}

// findConfigFile searches for roster_config.yaml in current directory and home directory
// If env is provided, it adds it as an extension (e.g., "roster_config.test.yaml")
func findConfigFile(env string) (string, error) {
	configFileName := "roster_config.yaml"
	if env != "" {
		configFileName = "roster_config." + env + ".yaml"
	}

	// Check current directory
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	// Check home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}
