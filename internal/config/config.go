package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Backends BackendsConfig
	Database DatabaseConfig
	FetchLog FetchLogConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port               int
	RateLimitPerMinute int
	WriteTimeout       time.Duration
	ShutdownTimeout    time.Duration
}

// BackendsConfig selects the host of each API group.
type BackendsConfig struct {
	BaseA   string
	BaseB   string
	Timeout time.Duration
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type FetchLogConfig struct {
	Enabled bool
}

type LogConfig struct {
	Level string
}

// Load reads the environment, and the YAML file named by CONFIG_FILE when set.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SERVER_PORT", 3000)
	v.SetDefault("RATE_LIMIT_PER_MINUTE", 300)
	v.SetDefault("SERVER_WRITE_TIMEOUT", "30s")
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", "10s")
	v.SetDefault("API_BASE_A", "http://localhost:8080/api")
	v.SetDefault("API_BASE_B", "http://localhost:8081/api")
	v.SetDefault("HTTP_CLIENT_TIMEOUT", "10s")
	v.SetDefault("FETCHLOG_ENABLED", false)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 3306)
	v.SetDefault("DB_USER", "multiservicios")
	v.SetDefault("DB_PASSWORD", "secret")
	v.SetDefault("DB_NAME", "dashboard")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 2)
	v.SetDefault("DB_CONN_MAX_LIFETIME", "5m")
	v.SetDefault("LOG_LEVEL", "info")

	if file := v.GetString("CONFIG_FILE"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	clientTimeout, err := time.ParseDuration(v.GetString("HTTP_CLIENT_TIMEOUT"))
	if err != nil {
		return nil, fmt.Errorf("parsing HTTP_CLIENT_TIMEOUT: %w", err)
	}

	writeTimeout, err := time.ParseDuration(v.GetString("SERVER_WRITE_TIMEOUT"))
	if err != nil {
		return nil, fmt.Errorf("parsing SERVER_WRITE_TIMEOUT: %w", err)
	}

	shutdownTimeout, err := time.ParseDuration(v.GetString("SERVER_SHUTDOWN_TIMEOUT"))
	if err != nil {
		return nil, fmt.Errorf("parsing SERVER_SHUTDOWN_TIMEOUT: %w", err)
	}

	connMaxLifetime, err := time.ParseDuration(v.GetString("DB_CONN_MAX_LIFETIME"))
	if err != nil {
		return nil, fmt.Errorf("parsing DB_CONN_MAX_LIFETIME: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:               v.GetInt("SERVER_PORT"),
			RateLimitPerMinute: v.GetInt("RATE_LIMIT_PER_MINUTE"),
			WriteTimeout:       writeTimeout,
			ShutdownTimeout:    shutdownTimeout,
		},
		Backends: BackendsConfig{
			BaseA:   strings.TrimRight(v.GetString("API_BASE_A"), "/"),
			BaseB:   strings.TrimRight(v.GetString("API_BASE_B"), "/"),
			Timeout: clientTimeout,
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			Name:            v.GetString("DB_NAME"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: connMaxLifetime,
		},
		FetchLog: FetchLogConfig{
			Enabled: v.GetBool("FETCHLOG_ENABLED"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
	}

	if cfg.Backends.BaseA == "" || cfg.Backends.BaseB == "" {
		return nil, fmt.Errorf("API_BASE_A and API_BASE_B must not be empty")
	}

	return cfg, nil
}
