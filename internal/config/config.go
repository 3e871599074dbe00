package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Config - конфигурация сервиса, загружается один раз при старте
type Config struct {
	Server        ServerConfig        `toml:"server"`
	Database      DatabaseConfig      `toml:"database"`
	Redis         RedisConfig         `toml:"redis"`
	RateLimit     RateLimitConfig     `toml:"rate_limit"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
	BusinessHours BusinessHoursConfig `toml:"business_hours"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

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

// DSN собирает строку подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// RedisConfig - подключение к Redis; пустой address отключает кеш
type RedisConfig struct {
	Address  string `toml:"address"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	CacheTTL int    `toml:"cache_ttl"` // секунды
}

type RateLimitConfig struct {
	Enabled bool    `toml:"enabled"`
	RPS     float64 `toml:"rps"`
	Burst   int     `toml:"burst"`
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// BusinessHoursConfig - рабочие часы по дням недели в формате "9:00-17:00".
// Пустая строка означает выходной день.
type BusinessHoursConfig struct {
	Monday    string `toml:"monday"`
	Tuesday   string `toml:"tuesday"`
	Wednesday string `toml:"wednesday"`
	Thursday  string `toml:"thursday"`
	Friday    string `toml:"friday"`
	Saturday  string `toml:"saturday"`
	Sunday    string `toml:"sunday"`
}

// ByWeekday возвращает окна в порядке time.Weekday
func (b BusinessHoursConfig) ByWeekday() map[time.Weekday]string {
	return map[time.Weekday]string{
		time.Monday:    b.Monday,
		time.Tuesday:   b.Tuesday,
		time.Wednesday: b.Wednesday,
		time.Thursday:  b.Thursday,
		time.Friday:    b.Friday,
		time.Saturday:  b.Saturday,
		time.Sunday:    b.Sunday,
	}
}

func (b BusinessHoursConfig) isEmpty() bool {
	return b.Monday == "" && b.Tuesday == "" && b.Wednesday == "" &&
		b.Thursday == "" && b.Friday == "" && b.Saturday == "" && b.Sunday == ""
}

// Load читает конфигурацию из TOML файла и применяет переопределения
// из окружения (POSTGRES_PASSWORD).
func Load(path string) (*Config, error) {
	var cfg Config

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: Load - decode %s: %w", path, err)
	}

	if password := os.Getenv("POSTGRES_PASSWORD"); password != "" {
		cfg.Database.Password = password
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}

	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 25
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}

	if c.Redis.Address != "" && c.Redis.CacheTTL == 0 {
		c.Redis.CacheTTL = 300
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}

	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "smc-deadline-service"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}

	if c.RateLimit.Enabled {
		if c.RateLimit.RPS == 0 {
			c.RateLimit.RPS = 50
		}
		if c.RateLimit.Burst == 0 {
			c.RateLimit.Burst = 100
		}
	}

	// Если секция рабочих часов не заполнена - стандартная рабочая неделя
	if c.BusinessHours.isEmpty() {
		c.BusinessHours = BusinessHoursConfig{
			Monday:    "9:00-17:00",
			Tuesday:   "9:00-17:00",
			Wednesday: "9:00-17:00",
			Thursday:  "9:00-17:00",
			Friday:    "9:00-17:00",
		}
	}
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("config: validate - server.http_port is required")
	}
	if c.Database.Host == "" {
		return fmt.Errorf("config: validate - database.host is required")
	}
	if c.Database.Port <= 0 {
		return fmt.Errorf("config: validate - database.port is required")
	}
	if c.Database.User == "" {
		return fmt.Errorf("config: validate - database.user is required")
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("config: validate - database.dbname is required")
	}
	return nil
}
