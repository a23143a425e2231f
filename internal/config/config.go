package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrInvalidConfig возвращается, когда конфигурация не проходит валидацию
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server       ServerConfig       `toml:"server"`
	Database     DatabaseConfig     `toml:"database"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
	StoreService StoreServiceConfig `toml:"store_service"`
	Redis        RedisConfig        `toml:"redis"`
	Kafka        KafkaConfig        `toml:"kafka"`
	Availability AvailabilityConfig `toml:"availability"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int     `toml:"http_port"`
	ReadTimeout     int     `toml:"read_timeout"`
	WriteTimeout    int     `toml:"write_timeout"`
	IdleTimeout     int     `toml:"idle_timeout"`
	ShutdownTimeout int     `toml:"shutdown_timeout"`
	RateLimitRPS    float64 `toml:"rate_limit_rps"` // запросов в секунду на IP, 0 = без ограничения
	RateLimitBurst  int     `toml:"rate_limit_burst"`
}

// DatabaseConfig настройки PostgreSQL
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

// DSN возвращает строку подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig настройки prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// StoreServiceConfig клиент каталога магазинов/филиалов/услуг
type StoreServiceConfig struct {
	URL             string `toml:"url"`
	Timeout         int    `toml:"timeout"`          // секунды
	BreakerFailures uint32 `toml:"breaker_failures"` // подряд идущих сбоев до размыкания
	BreakerTimeout  int    `toml:"breaker_timeout"`  // секунды в разомкнутом состоянии
}

// RedisConfig кэш настроек филиалов и услуг
type RedisConfig struct {
	Enabled  bool   `toml:"enabled"`
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	TTL      int    `toml:"ttl"` // секунды
}

// Addr возвращает host:port
func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// KafkaConfig публикация событий о бронированиях
// Пустой Brokers отключает публикацию
type KafkaConfig struct {
	Brokers string `toml:"brokers"`
	Topic   string `toml:"topic"`
}

// BrokerList возвращает список брокеров без пустых элементов
func (c KafkaConfig) BrokerList() []string {
	var brokers []string
	for _, b := range strings.Split(c.Brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

// AvailabilityConfig значения по умолчанию для расчета доступности
type AvailabilityConfig struct {
	// DefaultAnchorOffsetHours начало бизнес-дня для филиалов без собственной настройки
	DefaultAnchorOffsetHours int `toml:"default_anchor_offset_hours"`
	ClosingSoonMinutes       int `toml:"closing_soon_minutes"`
}

// Load загружает конфигурацию из TOML файла, применяет значения по умолчанию и валидирует
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
			RateLimitRPS:    20,
			RateLimitBurst:  40,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
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
			ServiceName: "smc_reservation_service",
		},
		StoreService: StoreServiceConfig{
			Timeout:         5,
			BreakerFailures: 5,
			BreakerTimeout:  30,
		},
		Redis: RedisConfig{
			Host: "localhost",
			Port: 6379,
			TTL:  60,
		},
		Kafka: KafkaConfig{
			Topic: "reservations",
		},
		Availability: AvailabilityConfig{
			DefaultAnchorOffsetHours: 3,
			ClosingSoonMinutes:       60,
		},
	}
}

// Validate проверяет обязательные поля и диапазоны
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535", ErrInvalidConfig)
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("%w: database.dbname is required", ErrInvalidConfig)
	}
	if c.StoreService.URL == "" {
		return fmt.Errorf("%w: store_service.url is required", ErrInvalidConfig)
	}
	if a := c.Availability.DefaultAnchorOffsetHours; a < 0 || a > 23 {
		return fmt.Errorf("%w: availability.default_anchor_offset_hours must be in 0..23", ErrInvalidConfig)
	}
	if c.Availability.ClosingSoonMinutes < 0 {
		return fmt.Errorf("%w: availability.closing_soon_minutes must not be negative", ErrInvalidConfig)
	}
	if c.Server.RateLimitRPS < 0 || (c.Server.RateLimitRPS > 0 && c.Server.RateLimitBurst <= 0) {
		return fmt.Errorf("%w: server.rate_limit_burst must be positive when rate limiting is on", ErrInvalidConfig)
	}
	if c.Redis.Enabled && c.Redis.TTL <= 0 {
		return fmt.Errorf("%w: redis.ttl must be positive when redis is enabled", ErrInvalidConfig)
	}
	return nil
}
