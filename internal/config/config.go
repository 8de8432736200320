package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-VideoLinkService/pkg/types"
)

// ErrInvalidConfig возвращается при некорректной конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server            ServerConfig       `toml:"server"`
	Database          DatabaseConfig     `toml:"database"`
	Logs              LogsConfig         `toml:"logs"`
	Metrics           MetricsConfig      `toml:"metrics"`
	LocationsService  ServiceConfig      `toml:"locations_service"`
	ActivitiesService ServiceConfig      `toml:"activities_service"`
	Availability      AvailabilityConfig `toml:"availability"`
	Jobs              JobsConfig         `toml:"jobs"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig настройки Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// ServiceConfig настройки внешнего HTTP сервиса
type ServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// AvailabilityConfig настройки поиска свободных комнат
type AvailabilityConfig struct {
	DefaultStartOfDay types.TimeString `toml:"default_start_of_day"`
	DefaultEndOfDay   types.TimeString `toml:"default_end_of_day"`
	SlotStepMinutes   int              `toml:"slot_step_minutes"`
	MaxAlternatives   int              `toml:"max_alternatives"` // 0 = без ограничений
}

// JobsConfig настройки фоновых задач
type JobsConfig struct {
	ReactivationEnabled  bool   `toml:"reactivation_enabled"`
	ReactivationSchedule string `toml:"reactivation_schedule"` // cron-выражение
	ReactivationTimeout  int    `toml:"reactivation_timeout"`  // секунды
}

// Load загружает конфигурацию из TOML файла
// Перед разбором подгружается .env (если есть); DB_PASSWORD, DB_HOST и
// LOCATIONS_SERVICE_URL переопределяют значения из файла
func Load(path string) (*Config, error) {
	// .env необязателен
	_ = godotenv.Load()

	cfg := defaults()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
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
			ServiceName: "videolink-service",
		},
		LocationsService:  ServiceConfig{Timeout: 5},
		ActivitiesService: ServiceConfig{Timeout: 5},
		Availability: AvailabilityConfig{
			DefaultStartOfDay: "08:00",
			DefaultEndOfDay:   "18:00",
			SlotStepMinutes:   15,
		},
		Jobs: JobsConfig{
			ReactivationSchedule: "5 0 * * *",
			ReactivationTimeout:  60,
		},
	}
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("DB_HOST"); v != "" {
		cfg.Database.Host = v
	}
	if v := os.Getenv("DB_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Database.Port = port
		}
	}
	if v := os.Getenv("LOCATIONS_SERVICE_URL"); v != "" {
		cfg.LocationsService.URL = v
	}
	if v := os.Getenv("ACTIVITIES_SERVICE_URL"); v != "" {
		cfg.ActivitiesService.URL = v
	}
}

// Validate проверяет обязательные значения
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port %d", ErrInvalidConfig, c.Server.HTTPPort)
	}

	if c.Database.Host == "" || c.Database.DBName == "" || c.Database.User == "" {
		return fmt.Errorf("%w: database host, dbname and user are required", ErrInvalidConfig)
	}

	if c.LocationsService.URL == "" {
		return fmt.Errorf("%w: locations_service.url is required", ErrInvalidConfig)
	}

	if c.ActivitiesService.URL == "" {
		return fmt.Errorf("%w: activities_service.url is required", ErrInvalidConfig)
	}

	start, err := types.NewTimeStringFromString(string(c.Availability.DefaultStartOfDay))
	if err != nil {
		return fmt.Errorf("%w: availability.default_start_of_day: %v", ErrInvalidConfig, err)
	}
	end, err := types.NewTimeStringFromString(string(c.Availability.DefaultEndOfDay))
	if err != nil {
		return fmt.Errorf("%w: availability.default_end_of_day: %v", ErrInvalidConfig, err)
	}
	if !start.IsBefore(end) {
		return fmt.Errorf("%w: availability day must start before it ends", ErrInvalidConfig)
	}
	c.Availability.DefaultStartOfDay = start
	c.Availability.DefaultEndOfDay = end

	if c.Availability.SlotStepMinutes <= 0 || c.Availability.SlotStepMinutes > 60 {
		return fmt.Errorf("%w: availability.slot_step_minutes must be between 1 and 60", ErrInvalidConfig)
	}

	if c.Availability.MaxAlternatives < 0 {
		return fmt.Errorf("%w: availability.max_alternatives must not be negative", ErrInvalidConfig)
	}

	if c.Jobs.ReactivationEnabled && c.Jobs.ReactivationSchedule == "" {
		return fmt.Errorf("%w: jobs.reactivation_schedule is required", ErrInvalidConfig)
	}

	return nil
}
