package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

// Config represents the application configuration
type Config struct {
	Jira   JiraConfig   `yaml:"jira"`
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
}

// JiraConfig represents Jira API configuration
type JiraConfig struct {
	BaseURL    string `yaml:"base_url"`
	Username   string `yaml:"username"`
	APIToken   string `yaml:"api_token"`
	ProjectKey string `yaml:"project_key"`
	Timeout    int    `yaml:"timeout_seconds"`
}

// OutputConfig controls where rendered markdown documents are saved
type OutputConfig struct {
	Dir        string `yaml:"dir"`
	MaxResults int    `yaml:"max_results"`
}

// LogConfig controls diagnostic logging
type LogConfig struct {
	Level string `yaml:"level"`
}

// LoadConfig loads configuration from a YAML file, then lets environment
// variables override credentials. A .env file next to the working directory
// is honored when present.
func LoadConfig(configPath string) (*Config, error) {
	// Missing .env is fine; explicit env vars still apply.
	_ = godotenv.Load()

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	config.applyEnv()
	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("JIRA_BASE_URL"); v != "" {
		c.Jira.BaseURL = v
	}
	if v := os.Getenv("JIRA_USERNAME"); v != "" {
		c.Jira.Username = v
	}
	if v := os.Getenv("JIRA_API_TOKEN"); v != "" {
		c.Jira.APIToken = v
	}
	if v := os.Getenv("JIRA_PROJECT_KEY"); v != "" {
		c.Jira.ProjectKey = v
	}
}

func (c *Config) applyDefaults() {
	if c.Jira.Timeout == 0 {
		c.Jira.Timeout = 30
	}
	if c.Output.Dir == "" {
		c.Output.Dir = "./output"
	}
	if c.Output.MaxResults == 0 {
		c.Output.MaxResults = 50
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Jira.BaseURL == "" {
		return fmt.Errorf("jira base URL is required")
	}

	if c.Jira.Username == "" {
		return fmt.Errorf("jira username is required")
	}

	if c.Jira.APIToken == "" {
		return fmt.Errorf("jira API token is required")
	}

	return nil
}

// Sample returns a starter configuration for the init command
func Sample() *Config {
	return &Config{
		Jira: JiraConfig{
			BaseURL:    "https://your-domain.atlassian.net",
			Username:   "your-email@example.com",
			APIToken:   "your-jira-api-token",
			ProjectKey: "PROJ",
			Timeout:    30,
		},
		Output: OutputConfig{
			Dir:        "./output",
			MaxResults: 50,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
