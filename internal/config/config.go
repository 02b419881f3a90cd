// Package config manages application configuration from defaults, an
// optional config.yaml file, and KIRIM_* environment variables.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config defines the configuration for both the intake API server and the
// chat bot. Values can be set via config.yaml or environment variables
// prefixed with KIRIM_ (e.g. KIRIM_DATABASE_HOST).
type Config struct {
	Log       LogConfig       `mapstructure:"log"`
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Intake    IntakeConfig    `mapstructure:"intake"`
	Telegram  TelegramConfig  `mapstructure:"telegram"`
	Gemini    GeminiConfig    `mapstructure:"gemini"`
	Admin     AdminConfig     `mapstructure:"admin"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
}

// LogConfig controls structured logging output.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	JSON  bool   `mapstructure:"json"`
}

// ServerConfig holds intake API server settings.
type ServerConfig struct {
	ListenAddr string `mapstructure:"listen_addr" validate:"required"`
}

// DatabaseConfig holds connection settings for the customers database.
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"     validate:"required"`
	Port            int           `mapstructure:"port"     validate:"required,gt=0"`
	User            string        `mapstructure:"user"     validate:"required"`
	Password        string        `mapstructure:"password"`
	Name            string        `mapstructure:"name"     validate:"required"`
	SSLMode         string        `mapstructure:"ssl_mode" validate:"required"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"    validate:"gt=0"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"    validate:"gt=0"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime" validate:"gt=0"`
}

// DSN returns the postgres connection string for the configured database.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode)
}

// IntakeConfig holds settings for the bot-side intake API client.
type IntakeConfig struct {
	BaseURL string        `mapstructure:"base_url" validate:"required,url"`
	Timeout time.Duration `mapstructure:"timeout"  validate:"required,min=1s,max=1m"`
}

// TelegramConfig holds the chat transport settings. The token is only
// required by the bot binary, which checks it at startup.
type TelegramConfig struct {
	Token string `mapstructure:"token"`
}

// GeminiConfig holds settings for the free-text assistant.
type GeminiConfig struct {
	APIKey      string        `mapstructure:"api_key"`
	Model       string        `mapstructure:"model"       validate:"required"`
	Temperature float32       `mapstructure:"temperature" validate:"min=0,max=2"`
	Instruction string        `mapstructure:"instruction" validate:"required"`
	Timeout     time.Duration `mapstructure:"timeout"     validate:"required,min=1s,max=10m"`
}

// AdminConfig holds the static admin secret used by the bot's admin login.
type AdminConfig struct {
	Password string `mapstructure:"password" validate:"required"`
}

// SchedulerConfig configures scheduled background tasks by name.
type SchedulerConfig struct {
	Tasks map[string]TaskConfig `mapstructure:"tasks"`
}

// TaskConfig enables a named task and sets its cron schedule
// (six-field cron expression with seconds).
type TaskConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Schedule string `mapstructure:"schedule"`
}

// Load loads and validates configuration from:
// 1. Default values
// 2. config.yaml file
// 3. KIRIM_* environment variables
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("KIRIM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Allow missing config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", true)

	v.SetDefault("server.listen_addr", ":8000")

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "kirimbot")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "kirimbot")
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", time.Hour)

	v.SetDefault("intake.base_url", "http://127.0.0.1:8000")
	v.SetDefault("intake.timeout", 5*time.Second)

	// Secrets default to empty so AutomaticEnv picks up the KIRIM_* keys.
	v.SetDefault("telegram.token", "")
	v.SetDefault("gemini.api_key", "")

	v.SetDefault("gemini.model", "gemini-2.0-flash")
	v.SetDefault("gemini.temperature", 1.0)
	v.SetDefault("gemini.instruction",
		"Kamu adalah asisten layanan pelanggan. Balas singkat dan jelas.")
	v.SetDefault("gemini.timeout", 2*time.Minute)

	v.SetDefault("admin.password", "admin123")

	v.SetDefault("scheduler.tasks", map[string]TaskConfig{
		"summary_report": {Enabled: true, Schedule: "0 0 6 * * *"},
	})
}
