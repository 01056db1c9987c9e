package conf

import (
	"os"
	"path/filepath"
	"strconv"
)

// Config represents application configuration
type Config struct {
	// LINE configuration
	Line LineConfig

	// OpenAI configuration
	OpenAI OpenAIConfig

	// HTTP server configuration
	Server ServerConfig

	// Translation history configuration
	History HistoryConfig

	// Speech link toggle
	SpeechLinks bool

	// Prompts configuration (loaded from YAML)
	Prompts *PromptsConfig

	// Debug mode
	Debug bool
}

// LineConfig contains LINE Messaging API configuration
type LineConfig struct {
	ChannelSecret      string
	ChannelAccessToken string
}

// OpenAIConfig contains completion service configuration
type OpenAIConfig struct {
	APIKey string
	Model  string
}

// ServerConfig contains webhook server configuration
type ServerConfig struct {
	Port int
}

// HistoryConfig contains translation history configuration
type HistoryConfig struct {
	DBPath        string
	RetentionDays int
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() *Config {
	// Webhook port
	port := 8080
	if val := os.Getenv("PORT"); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			port = parsed
		}
	}

	// History DB path
	historyDBPath := os.Getenv("HISTORY_DB_PATH")
	if historyDBPath == "" {
		homeDir, _ := os.UserHomeDir()
		historyDBPath = filepath.Join(homeDir, ".line-translator", "history.db")
	}

	// History retention
	retentionDays := 30
	if val := os.Getenv("HISTORY_RETENTION_DAYS"); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			retentionDays = parsed
		}
	}

	// Load prompts from YAML
	promptsConfigPath := os.Getenv("PROMPTS_CONFIG_PATH")
	promptsConfig, _ := LoadPromptsConfig(promptsConfigPath)
	if promptsConfig == nil {
		promptsConfig = DefaultPromptsConfig()
	}

	return &Config{
		Line: LineConfig{
			ChannelSecret:      os.Getenv("LINE_CHANNEL_SECRET"),
			ChannelAccessToken: os.Getenv("LINE_CHANNEL_ACCESS_TOKEN"),
		},
		OpenAI: OpenAIConfig{
			APIKey: os.Getenv("OPENAI_API_KEY"),
			Model:  os.Getenv("OPENAI_MODEL"),
		},
		Server: ServerConfig{
			Port: port,
		},
		History: HistoryConfig{
			DBPath:        historyDBPath,
			RetentionDays: retentionDays,
		},
		SpeechLinks: os.Getenv("DISABLE_SPEECH_LINKS") != "true",
		Prompts:     promptsConfig,
		Debug:       os.Getenv("DEBUG") == "true",
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Line.ChannelSecret == "" || c.Line.ChannelAccessToken == "" {
		return &ConfigError{Field: "LINE_CHANNEL_SECRET/LINE_CHANNEL_ACCESS_TOKEN", Message: "required"}
	}
	if c.OpenAI.APIKey == "" {
		return &ConfigError{Field: "OPENAI_API_KEY", Message: "required"}
	}
	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
