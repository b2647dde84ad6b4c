package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/annel0/maleghast-vtt/internal/logging"
)

// Config корневая структура конфигурации просмотрщика поля.
// Приоритет: значения по умолчанию -> YAML-файл -> переменные окружения.
type Config struct {
	Board     BoardConfig     `yaml:"board" envPrefix:"BOARD_"`
	Render    RenderConfig    `yaml:"render" envPrefix:"RENDER_"`
	Metrics   MetricsConfig   `yaml:"metrics" envPrefix:"METRICS_"`
	Telemetry TelemetryConfig `yaml:"telemetry" envPrefix:"TELEMETRY_"`
	Logging   LoggingConfig   `yaml:"logging" envPrefix:"LOG_"`
}

type BoardConfig struct {
	MapFile string `yaml:"map_file" env:"MAP_FILE"` // пусто: встроенная карта
	MapName string `yaml:"map_name" env:"MAP_NAME"` // пусто: первая карта каталога
}

type RenderConfig struct {
	DedupeAssets bool `yaml:"dedupe_assets" env:"DEDUPE_ASSETS"`
	ANSIColor    bool `yaml:"ansi_color" env:"ANSI_COLOR"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled" env:"ENABLED"`
	Port    int  `yaml:"port" env:"PORT"`
}

type TelemetryConfig struct {
	Enabled     bool   `yaml:"enabled" env:"ENABLED"`
	ServiceName string `yaml:"service_name" env:"SERVICE_NAME"`
}

type LoggingConfig struct {
	Level      string            `yaml:"level" env:"LEVEL"`
	Dir        string            `yaml:"dir" env:"DIR"` // пусто: только stdout
	Components map[string]string `yaml:"components"`    // уровень по имени компонента
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	return &Config{
		Render: RenderConfig{
			ANSIColor: true,
		},
		Metrics: MetricsConfig{
			Port: 2112,
		},
		Telemetry: TelemetryConfig{
			ServiceName: "maleghast-vtt",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// MetricsAddr возвращает адрес HTTP-эндпоинта метрик
func (m MetricsConfig) MetricsAddr() string {
	return fmt.Sprintf(":%d", m.Port)
}

// Load читает YAML файл конфигурации и применяет переменные окружения с префиксом GAME_.
// Если path == "", берётся ENV GAME_CONFIG; если и он пуст: только дефолты и окружение.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("GAME_CONFIG")
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: "GAME_"}); err != nil {
		return nil, fmt.Errorf("config: env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет согласованность значений
func (c *Config) Validate() error {
	if c.Metrics.Enabled && (c.Metrics.Port <= 0 || c.Metrics.Port > 65535) {
		return fmt.Errorf("config: metrics.port %d out of range", c.Metrics.Port)
	}
	for component, level := range c.Logging.Components {
		if _, err := logging.ParseLevel(level); err != nil {
			return fmt.Errorf("config: logging.components.%s: %w", component, err)
		}
	}
	if c.Board.MapName != "" && c.Board.MapFile == "" {
		return fmt.Errorf("config: board.map_name %q requires board.map_file", c.Board.MapName)
	}
	return nil
}
