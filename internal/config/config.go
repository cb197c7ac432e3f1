package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMP-BookingService/internal/domain"
)

// Config конфигурация сервиса, загружается из TOML файла
type Config struct {
	Server          ServerConfig          `toml:"server"`
	Database        DatabaseConfig        `toml:"database"`
	Logs            LogsConfig            `toml:"logs"`
	Metrics         MetricsConfig         `toml:"metrics"`
	IdentityService IdentityServiceConfig `toml:"identity_service"`
	Worker          WorkerConfig          `toml:"worker"`
	Booking         BookingConfig         `toml:"booking"`
}

// ServerConfig настройки HTTP сервера
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
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения к PostgreSQL
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// IdentityServiceConfig настройки клиента IdentityService (проверка KYC)
type IdentityServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

// WorkerConfig настройки фоновых задач
type WorkerConfig struct {
	SweepIntervalSeconds int `toml:"sweep_interval_seconds"`
}

// BookingConfig бизнес-константы движка бронирования
type BookingConfig struct {
	SlotStepMinutes            int `toml:"slot_step_minutes"`
	MinBookingNoticeMinutes    int `toml:"min_booking_notice_minutes"`
	AdvanceBookingDays         int `toml:"advance_booking_days"`
	PendingResponseWindowHours int `toml:"pending_response_window_hours"`
	LateCancelThresholdHours   int `toml:"late_cancel_threshold_hours"`
}

// Policy конвертирует секцию booking в доменную политику,
// подставляя дефолты для незаполненных значений
func (c *BookingConfig) Policy() domain.BookingPolicy {
	policy := domain.DefaultBookingPolicy()
	if c.SlotStepMinutes > 0 {
		policy.SlotStepMinutes = c.SlotStepMinutes
	}
	if c.MinBookingNoticeMinutes > 0 {
		policy.MinBookingNoticeMinutes = c.MinBookingNoticeMinutes
	}
	if c.AdvanceBookingDays > 0 {
		policy.AdvanceBookingDays = c.AdvanceBookingDays
	}
	if c.PendingResponseWindowHours > 0 {
		policy.PendingResponseWindowHours = c.PendingResponseWindowHours
	}
	if c.LateCancelThresholdHours > 0 {
		policy.LateCancelThresholdHours = c.LateCancelThresholdHours
	}
	return policy
}

// Load загружает конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 10
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 10
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = 60
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 15
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 25
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 300
	}
	if cfg.Logs.Level == "" {
		cfg.Logs.Level = "info"
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Metrics.ServiceName == "" {
		cfg.Metrics.ServiceName = "booking-engine"
	}
	if cfg.IdentityService.Timeout == 0 {
		cfg.IdentityService.Timeout = 5
	}
	if cfg.Worker.SweepIntervalSeconds == 0 {
		cfg.Worker.SweepIntervalSeconds = 60
	}
}

func validate(cfg *Config) error {
	if cfg.Database.Host == "" {
		return fmt.Errorf("database.host is required")
	}
	if cfg.Database.User == "" {
		return fmt.Errorf("database.user is required")
	}
	if cfg.Database.DBName == "" {
		return fmt.Errorf("database.dbname is required")
	}
	if cfg.IdentityService.URL == "" {
		return fmt.Errorf("identity_service.url is required")
	}
	booking := cfg.Booking
	if booking.SlotStepMinutes < 0 || booking.SlotStepMinutes > domain.MinutesPerDay {
		return fmt.Errorf("booking.slot_step_minutes out of range")
	}
	return nil
}
