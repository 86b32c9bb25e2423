package config

import (
	"errors"
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Redis    RedisConfig
	SMTP     SMTPConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port           int `mapstructure:"port" default:"8080"`
	TimeoutSeconds int `mapstructure:"timeoutSeconds" default:"30"`
	RateLimitRPS   int `mapstructure:"rateLimitRps" default:"100"`
	RateLimitBurst int `mapstructure:"rateLimitBurst" default:"200"`
}

type DatabaseConfig struct {
	Host         string `mapstructure:"host" default:"localhost"`
	Port         int    `mapstructure:"port" default:"5432"`
	User         string `mapstructure:"user" default:"postgres"`
	Password     string `mapstructure:"password"`
	Name         string `mapstructure:"name" default:"hospital"`
	SSLMode      string `mapstructure:"sslmode" default:"disable"`
	MaxOpenConns int    `mapstructure:"maxOpenConns" default:"10"`
}

type JWTConfig struct {
	Secret      string `mapstructure:"secret"`
	ExpiryHours int    `mapstructure:"expiry_hours" default:"24"`
}

// RedisConfig is optional; with no URL the session store is skipped
// and tokens are bounded by their expiry alone.
type RedisConfig struct {
	URL string `mapstructure:"url"`
}

// SMTPConfig is optional; with no host payment receipts are not sent.
type SMTPConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port" default:"587"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" default:"info"`
	Pretty bool   `mapstructure:"pretty"`
}

// LoadConfig reads config.yaml with env overrides, falling back to
// environment variables alone (HMS_ prefix) when no file is present.
func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.AutomaticEnv()

	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.timeoutSeconds", 30)
	viper.SetDefault("server.rateLimitRps", 100)
	viper.SetDefault("server.rateLimitBurst", 200)
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 5432)
	viper.SetDefault("database.user", "postgres")
	viper.SetDefault("database.name", "hospital")
	viper.SetDefault("database.sslmode", "disable")
	viper.SetDefault("database.maxOpenConns", 10)
	viper.SetDefault("jwt.expiry_hours", 24)
	viper.SetDefault("smtp.port", 587)
	viper.SetDefault("log.level", "info")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		var config Config
		if err := envconfig.Process("hms", &config); err != nil {
			return nil, fmt.Errorf("failed to load config from environment: %w", err)
		}
		return &config, nil
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}
