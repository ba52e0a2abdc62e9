package config

import "time"

type Duration struct {
	Duration time.Duration
}

type HTTPConfig struct {
	Addr              string   `yaml:"addr"`
	ReadHeaderTimeout Duration `yaml:"read_header_timeout"`
	IdleTimeout       Duration `yaml:"idle_timeout"`
	ShutdownTimeout   Duration `yaml:"shutdown_timeout"`

	// MaxUploadBytes caps the multipart body accepted by /predict.
	MaxUploadBytes int64 `yaml:"max_upload_bytes"`

	AllowOrigins []string `yaml:"allow_origins"`
}

type ModelConfig struct {
	// Engine is "mock" or "tfserving".
	Engine string `yaml:"engine"`

	// Name is the model name on the serving side (tfserving: /v1/models/{name}:predict).
	Name string `yaml:"name"`

	BaseURL string   `yaml:"base_url,omitempty"`
	Timeout Duration `yaml:"timeout,omitempty"`

	// InputSize is the square edge the upload is resized to before inference.
	InputSize int `yaml:"input_size"`
}

type DatabaseConfig struct {
	// Driver is "sqlite" or "postgres".
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
}

type RedisConfig struct {
	// Addr empty disables the prediction cache.
	Addr     string   `yaml:"addr,omitempty"`
	Password string   `yaml:"password,omitempty"`
	DB       int      `yaml:"db,omitempty"`
	TTL      Duration `yaml:"ttl,omitempty"`
}

type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

type Config struct {
	Env      string         `yaml:"env"`
	HTTP     HTTPConfig     `yaml:"http"`
	Model    ModelConfig    `yaml:"model"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}
