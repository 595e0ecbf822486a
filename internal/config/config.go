package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config конфигурация сервиса
// Порядок применения: значения по умолчанию -> config.toml -> переменные окружения (.env тоже)
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Auth      AuthConfig      `toml:"auth"`
	WhatsApp  WhatsAppConfig  `toml:"whatsapp"`
	Reminders RemindersConfig `toml:"reminders"`
	Time      TimeConfig      `toml:"time"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port" env:"SERVER_HTTP_PORT"`
	ReadTimeout     int `toml:"read_timeout" env:"SERVER_READ_TIMEOUT"`
	WriteTimeout    int `toml:"write_timeout" env:"SERVER_WRITE_TIMEOUT"`
	IdleTimeout     int `toml:"idle_timeout" env:"SERVER_IDLE_TIMEOUT"`
	ShutdownTimeout int `toml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT"`
}

type DatabaseConfig struct {
	Host            string `toml:"host" env:"DB_HOST"`
	Port            int    `toml:"port" env:"DB_PORT"`
	User            string `toml:"user" env:"DB_USER"`
	Password        string `toml:"password" env:"DB_PASSWORD"`
	DBName          string `toml:"dbname" env:"DB_NAME"`
	SSLMode         string `toml:"sslmode" env:"DB_SSLMODE"`
	MaxOpenConns    int    `toml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
	MaxIdleConns    int    `toml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type LogsConfig struct {
	Level string `toml:"level" env:"LOG_LEVEL"`
	File  string `toml:"file" env:"LOG_FILE"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled" env:"METRICS_ENABLED"`
	Path        string `toml:"path" env:"METRICS_PATH"`
	ServiceName string `toml:"service_name" env:"METRICS_SERVICE_NAME"`
}

type AuthConfig struct {
	JWTSecret string `toml:"jwt_secret" env:"AUTH_JWT_SECRET"`
	Issuer    string `toml:"issuer" env:"AUTH_ISSUER"`
}

type WhatsAppConfig struct {
	// RatePerSecond лимит исходящих сообщений на процесс
	RatePerSecond float64 `toml:"rate_per_second" env:"WHATSAPP_RATE_PER_SECOND"`
	Burst         int     `toml:"burst" env:"WHATSAPP_BURST"`
	Timeout       int     `toml:"timeout" env:"WHATSAPP_TIMEOUT"`
}

type RemindersConfig struct {
	// Schedule cron выражение для cmd/reminders
	Schedule string `toml:"schedule" env:"REMINDERS_SCHEDULE"`
}

type TimeConfig struct {
	Location string `toml:"location" env:"TIME_LOCATION"`
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "barber-service",
		},
		WhatsApp: WhatsAppConfig{
			RatePerSecond: 1,
			Burst:         5,
			Timeout:       10,
		},
		Reminders: RemindersConfig{
			Schedule: "*/10 * * * *",
		},
		Time: TimeConfig{
			Location: "America/Sao_Paulo",
		},
	}
}

// Load читает конфигурацию из TOML файла и переменных окружения
// Отсутствующий файл не ошибка: сервис можно настроить только через окружение
func Load(path string) (*Config, error) {
	cfg := defaults()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, cfg); err != nil {
				return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to stat config file %s: %w", path, err)
		}
	}

	// .env только для локальной разработки
	_ = godotenv.Load()

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	if c.Database.Host == "" {
		return errors.New("config: database.host is required")
	}
	if c.Database.DBName == "" {
		return errors.New("config: database.dbname is required")
	}
	if c.Auth.JWTSecret == "" {
		return errors.New("config: auth.jwt_secret is required")
	}
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("config: invalid server.http_port %d", c.Server.HTTPPort)
	}
	if c.WhatsApp.RatePerSecond <= 0 {
		return errors.New("config: whatsapp.rate_per_second must be positive")
	}
	return nil
}
