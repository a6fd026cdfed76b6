package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"dog-registry/internal/domain/dogs"
	"dog-registry/internal/platform/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type Config struct {
	Server   ServerConfig
	Storage  StorageConfig
	Registry RegistryConfig
	Log      LogConfig
	Tracing  TracingConfig
	Metrics  MetricsConfig
}

type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	RequestTimeout  time.Duration // 0 = sin timeout por request
	ShutdownTimeout time.Duration
	StaticDir       string
	Docs            bool
}

type StorageConfig struct {
	Driver     string
	SQLitePath string
	DSN        string
}

type RegistryConfig struct {
	Locale string
	Seed   bool
}

type LogConfig struct {
	Level  string
	Format string
	App    string
}

type TracingConfig struct {
	Exporter string
}

type MetricsConfig struct {
	Exporter string
	Interval time.Duration
}

// envKeys mapea cada key de viper a su variable de entorno.
var envKeys = map[string]string{
	"server.port":             "PORT",
	"server.read_timeout":     "SERVER_READ_TIMEOUT",
	"server.write_timeout":    "SERVER_WRITE_TIMEOUT",
	"server.request_timeout":  "SERVER_REQUEST_TIMEOUT",
	"server.shutdown_timeout": "SERVER_SHUTDOWN_TIMEOUT",
	"server.static_dir":       "STATIC_DIR",
	"server.docs":             "SERVER_DOCS",
	"storage.driver":          "STORAGE_DRIVER",
	"storage.sqlite_path":     "SQLITE_PATH",
	"storage.dsn":             "DB_DSN",
	"registry.locale":         "REGISTRY_LOCALE",
	"registry.seed":           "REGISTRY_SEED",
	"log.level":               "LOG_LEVEL",
	"log.format":              "LOG_FORMAT",
	"app.name":                "APP_NAME",
	"tracing.exporter":        "TRACING_EXPORTER",
	"metrics.exporter":        "METRICS_EXPORTER",
	"metrics.interval":        "METRICS_INTERVAL",
}

// SetDefaults registra defaults y bindings de env en v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "3000")
	v.SetDefault("server.read_timeout", 5*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)
	v.SetDefault("server.request_timeout", time.Duration(0))
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("server.static_dir", "./public")
	v.SetDefault("server.docs", true)
	v.SetDefault("storage.driver", DriverSQLite)
	v.SetDefault("storage.sqlite_path", "dogs.db")
	v.SetDefault("storage.dsn", "")
	v.SetDefault("registry.locale", dogs.DefaultLocale)
	v.SetDefault("registry.seed", true)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", string(logger.FormatText))
	v.SetDefault("app.name", logger.DefaultApp)
	v.SetDefault("tracing.exporter", "none")
	v.SetDefault("metrics.exporter", "none")
	v.SetDefault("metrics.interval", time.Minute)

	for key, env := range envKeys {
		_ = v.BindEnv(key, env)
	}
}

// LoadDotEnv carga .env si existe. Las variables ya seteadas ganan.
func LoadDotEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

// Load lee la configuración desde v (defaults, env y flags ya bindeados).
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            strings.TrimSpace(v.GetString("server.port")),
			ReadTimeout:     v.GetDuration("server.read_timeout"),
			WriteTimeout:    v.GetDuration("server.write_timeout"),
			RequestTimeout:  v.GetDuration("server.request_timeout"),
			ShutdownTimeout: v.GetDuration("server.shutdown_timeout"),
			StaticDir:       v.GetString("server.static_dir"),
			Docs:            v.GetBool("server.docs"),
		},
		Storage: StorageConfig{
			Driver:     strings.ToLower(strings.TrimSpace(v.GetString("storage.driver"))),
			SQLitePath: strings.TrimSpace(v.GetString("storage.sqlite_path")),
			DSN:        strings.TrimSpace(v.GetString("storage.dsn")),
		},
		Registry: RegistryConfig{
			Locale: strings.TrimSpace(v.GetString("registry.locale")),
			Seed:   v.GetBool("registry.seed"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			App:    v.GetString("app.name"),
		},
		Tracing: TracingConfig{
			Exporter: strings.ToLower(strings.TrimSpace(v.GetString("tracing.exporter"))),
		},
		Metrics: MetricsConfig{
			Exporter: strings.ToLower(strings.TrimSpace(v.GetString("metrics.exporter"))),
			Interval: v.GetDuration("metrics.interval"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if c.Server.RequestTimeout < 0 {
		return fmt.Errorf("SERVER_REQUEST_TIMEOUT must not be negative")
	}

	switch c.Storage.Driver {
	case DriverSQLite:
		if c.Storage.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is required for sqlite driver")
		}
	case DriverPostgres:
		if c.Storage.DSN == "" {
			return fmt.Errorf("DB_DSN is required for postgres driver")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unsupported STORAGE_DRIVER %q", c.Storage.Driver)
	}

	if _, err := dogs.ParseLocale(c.Registry.Locale); err != nil {
		return fmt.Errorf("invalid REGISTRY_LOCALE: %w", err)
	}

	switch c.Tracing.Exporter {
	case "none", "", "stdout":
	default:
		return fmt.Errorf("unsupported TRACING_EXPORTER %q", c.Tracing.Exporter)
	}

	switch c.Metrics.Exporter {
	case "none", "", "stdout":
	default:
		return fmt.Errorf("unsupported METRICS_EXPORTER %q", c.Metrics.Exporter)
	}
	if c.Metrics.Interval <= 0 {
		return fmt.Errorf("METRICS_INTERVAL must be positive")
	}
	return nil
}

// Addr devuelve la dirección de escucha (":3000").
func (c *Config) Addr() string {
	return ":" + c.Server.Port
}

// Logger es el único constructor del logger del proceso.
// out nil => stdout.
func (c *Config) Logger(out io.Writer) logger.Logger {
	return logger.New(logger.Options{
		Level:  logger.ParseLevel(c.Log.Level),
		Format: logger.ParseFormat(c.Log.Format),
		App:    c.Log.App,
		Output: out,
	})
}
