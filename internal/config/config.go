// Package config — конфигурация cloudctl из переменных окружения.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// DefaultCloudURL — адрес API по умолчанию.
const DefaultCloudURL = "https://release.api.golem.cloud"

// Config — настройки одного запуска.
type Config struct {
	CloudURL   string `env:"CLOUD_URL" envDefault:"https://release.api.golem.cloud"`
	GatewayURL string `env:"CLOUD_GATEWAY_URL"` // пусто — CloudURL

	TokenSecret string `env:"CLOUD_TOKEN_SECRET"`
	TokenFile   string `env:"CLOUD_TOKEN_FILE"`

	HTTPTimeout time.Duration `env:"CLOUD_HTTP_TIMEOUT" envDefault:"30s"`

	// MetricsTextfile — файл для метрик в формате node_exporter textfile.
	MetricsTextfile string `env:"CLOUD_METRICS_TEXTFILE"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"WARN"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
}

// ParseEnv заполняет target из переменных окружения.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load читает Config из окружения процесса и проверяет его.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFrom читает Config из переданного набора переменных.
func LoadFrom(environ map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// GatewayBaseURL возвращает адрес gateway; без CLOUD_GATEWAY_URL — CloudURL.
func (c Config) GatewayBaseURL() string {
	if c.GatewayURL == "" {
		return c.CloudURL
	}
	return c.GatewayURL
}

// Validate проверяет значения и нормализует адреса.
func (c *Config) Validate() error {
	c.CloudURL = strings.TrimRight(c.CloudURL, "/")
	if c.CloudURL == "" {
		return fmt.Errorf("CLOUD_URL must not be empty")
	}
	c.GatewayURL = strings.TrimRight(c.GatewayURL, "/")
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("CLOUD_HTTP_TIMEOUT must be positive, got %s", c.HTTPTimeout)
	}
	if c.TokenSecret != "" && c.TokenFile != "" {
		return fmt.Errorf("CLOUD_TOKEN_SECRET and CLOUD_TOKEN_FILE are mutually exclusive")
	}
	return nil
}
