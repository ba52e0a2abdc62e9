package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/yungbote/agrinet/internal/platform/envutil"
)

const (
	EngineMock      = "mock"
	EngineTFServing = "tfserving"

	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	s := strings.TrimSpace(value.Value)
	if s == "" || s == "null" || s == "~" {
		d.Duration = 0
		return nil
	}
	if value.Tag == "!!int" {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return err
		}
		d.Duration = time.Duration(n)
		return nil
	}
	dd, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("duration must be a string like \"5s\" or an int nanoseconds: %w", err)
	}
	d.Duration = dd
	return nil
}

func (d Duration) MarshalYAML() (interface{}, error) {
	return d.Duration.String(), nil
}

func Default() *Config {
	return &Config{
		Env: "development",
		HTTP: HTTPConfig{
			Addr:              ":8000",
			ReadHeaderTimeout: Duration{Duration: 5 * time.Second},
			IdleTimeout:       Duration{Duration: 2 * time.Minute},
			ShutdownTimeout:   Duration{Duration: 15 * time.Second},
			MaxUploadBytes:    10 << 20,
			AllowOrigins:      []string{"http://localhost:3000"},
		},
		Model: ModelConfig{
			Engine:    EngineMock,
			Name:      "vgg19",
			Timeout:   Duration{Duration: 30 * time.Second},
			InputSize: 224,
		},
		Database: DatabaseConfig{
			Driver: DriverSQLite,
			DSN:    "agrinet.db",
		},
		Redis: RedisConfig{
			TTL: Duration{Duration: 24 * time.Hour},
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Path:    "/metrics",
		},
	}
}

// Load reads the YAML file named by AGRINET_CONFIG_PATH (or ./config/config.yaml when
// present) over the defaults, then applies env overrides and validates.
func Load() (*Config, error) {
	cfg := Default()

	cfgPath := strings.TrimSpace(os.Getenv("AGRINET_CONFIG_PATH"))
	if cfgPath == "" {
		if wd, err := os.Getwd(); err == nil {
			p := filepath.Join(wd, "config", "config.yaml")
			if _, err := os.Stat(p); err == nil {
				cfgPath = p
			}
		}
	}
	if cfgPath != "" {
		b, err := os.ReadFile(cfgPath)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", cfgPath, err)
		}
	}

	applyEnv(cfg)

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv("LOG_MODE")); v != "" {
		cfg.Env = v
	}
	if v := strings.TrimSpace(os.Getenv("PORT")); v != "" {
		cfg.HTTP.Addr = ":" + v
	}
	cfg.HTTP.Addr = envutil.String("AGRINET_HTTP_ADDR", cfg.HTTP.Addr)
	if origins := envutil.List("AGRINET_ALLOW_ORIGINS"); len(origins) > 0 {
		cfg.HTTP.AllowOrigins = origins
	}
	cfg.Model.Engine = envutil.String("AGRINET_MODEL_ENGINE", cfg.Model.Engine)
	cfg.Model.BaseURL = envutil.String("AGRINET_MODEL_URL", cfg.Model.BaseURL)
	cfg.Model.Name = envutil.String("AGRINET_MODEL_NAME", cfg.Model.Name)
	cfg.Database.Driver = envutil.String("AGRINET_DATABASE_DRIVER", cfg.Database.Driver)
	cfg.Database.DSN = envutil.String("AGRINET_DATABASE_DSN", cfg.Database.DSN)
	cfg.Redis.Addr = envutil.String("REDIS_ADDR", cfg.Redis.Addr)
	cfg.Redis.Password = envutil.String("REDIS_PASSWORD", cfg.Redis.Password)
	cfg.Redis.DB = envutil.Int("REDIS_DB", cfg.Redis.DB)
	cfg.Metrics.Enabled = envutil.Bool("AGRINET_METRICS_ENABLED", cfg.Metrics.Enabled)
}

// NormalizeEngine maps an engine name or alias onto EngineMock or EngineTFServing.
// An empty name selects the mock engine.
func NormalizeEngine(name string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", EngineMock:
		return EngineMock, nil
	case "tf_serving", "tensorflow_serving", "tensorflow-serving", EngineTFServing:
		return EngineTFServing, nil
	default:
		return "", fmt.Errorf("unsupported engine %q", name)
	}
}

func (cfg *Config) normalize() error {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "development"
	}
	if strings.TrimSpace(cfg.HTTP.Addr) == "" {
		cfg.HTTP.Addr = ":8000"
	}
	if cfg.HTTP.MaxUploadBytes <= 0 {
		cfg.HTTP.MaxUploadBytes = 10 << 20
	}
	if cfg.HTTP.ShutdownTimeout.Duration <= 0 {
		cfg.HTTP.ShutdownTimeout = Duration{Duration: 15 * time.Second}
	}

	m := &cfg.Model
	m.BaseURL = strings.TrimRight(strings.TrimSpace(m.BaseURL), "/")
	m.Name = strings.TrimSpace(m.Name)
	engine, err := NormalizeEngine(m.Engine)
	if err != nil {
		return fmt.Errorf("model.engine: %w", err)
	}
	m.Engine = engine
	if m.Engine == EngineTFServing {
		if m.BaseURL == "" {
			return errors.New("model.base_url is required for the tfserving engine")
		}
		if m.Name == "" {
			return errors.New("model.name is required for the tfserving engine")
		}
	}
	if m.InputSize == 0 {
		m.InputSize = 224
	}
	if m.InputSize < 0 {
		return fmt.Errorf("invalid model.input_size %d", m.InputSize)
	}
	if m.Timeout.Duration <= 0 {
		m.Timeout = Duration{Duration: 30 * time.Second}
	}

	d := &cfg.Database
	d.Driver = strings.ToLower(strings.TrimSpace(d.Driver))
	switch d.Driver {
	case "", DriverSQLite, "sqlite3":
		d.Driver = DriverSQLite
		if strings.TrimSpace(d.DSN) == "" {
			d.DSN = "agrinet.db"
		}
	case DriverPostgres, "postgresql", "pg":
		d.Driver = DriverPostgres
		if strings.TrimSpace(d.DSN) == "" {
			return errors.New("database.dsn is required for postgres")
		}
	default:
		return fmt.Errorf("unsupported database.driver %q", d.Driver)
	}

	if cfg.Redis.TTL.Duration <= 0 {
		cfg.Redis.TTL = Duration{Duration: 24 * time.Hour}
	}
	if strings.TrimSpace(cfg.Metrics.Path) == "" {
		cfg.Metrics.Path = "/metrics"
	}
	return nil
}
