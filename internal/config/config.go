package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all configuration for the lead chat service
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Chat      ChatConfig      `mapstructure:"chat"`
	Anthropic AnthropicConfig `mapstructure:"anthropic"`
	Email     EmailConfig     `mapstructure:"email"`
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// ChatConfig holds conversation pipeline configuration
type ChatConfig struct {
	AllowedOrigin string `mapstructure:"allowed_origin"`
	MaxMessages   int    `mapstructure:"max_messages"`
	IPSalt        string `mapstructure:"ip_salt"`
}

// AnthropicConfig holds completion API configuration
type AnthropicConfig struct {
	APIKey    string `mapstructure:"api_key"`
	BaseURL   string `mapstructure:"base_url"`
	Model     string `mapstructure:"model"`
	MaxTokens int    `mapstructure:"max_tokens"`
}

// EmailConfig holds lead notification configuration
type EmailConfig struct {
	ResendAPIKey      string `mapstructure:"resend_api_key"`
	NotificationEmail string `mapstructure:"notification_email"`
	FromEmail         string `mapstructure:"from_email"`
	FromName          string `mapstructure:"from_name"`
}

// Load loads configuration from file and environment
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix("LEADCHAT")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found, use defaults
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)

	v.SetDefault("database.path", "./data/leadchat.db")

	v.SetDefault("chat.allowed_origin", "https://vibes.run")
	v.SetDefault("chat.max_messages", 20)
	v.SetDefault("chat.ip_salt", "vibes-salt")

	v.SetDefault("anthropic.api_key", "")
	v.SetDefault("anthropic.base_url", "https://api.anthropic.com")
	v.SetDefault("anthropic.model", "claude-sonnet-4-20250514")
	v.SetDefault("anthropic.max_tokens", 1024)

	v.SetDefault("email.resend_api_key", "")
	v.SetDefault("email.notification_email", "")
	v.SetDefault("email.from_email", "leads@vibes.run")
	v.SetDefault("email.from_name", "Vibes Lead Bot")
}

// Address returns the server address
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
