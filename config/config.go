package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ConfigFileEnv names the environment variable pointing at an optional YAML file.
const ConfigFileEnv = "MARKETPLACE_CONFIG"

// Config holds all application configuration. Values come from defaults,
// then the optional YAML file, then environment variables (.env included).
type Config struct {
	HTTP      HTTPConfig      `yaml:"http"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Metrics   MetricsConfig   `yaml:"metrics"`
	Logging   LoggingConfig   `yaml:"logging"`

	// Set by Load; not configurable.
	DotEnvLoaded bool   `yaml:"-"`
	File         string `yaml:"-"`
}

// HTTPConfig contains listener settings.
type HTTPConfig struct {
	Addr            string        `yaml:"addr"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// CORSConfig lists the allowed origins; "*" allows any origin.
type CORSConfig struct {
	AllowOrigins []string `yaml:"allow_origins"`
}

// RateLimitConfig configures the optional global token bucket. RPS 0 disables it.
type RateLimitConfig struct {
	RPS   float64 `yaml:"rps"`
	Burst int     `yaml:"burst"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	Format     string `yaml:"format"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Addr:            "0.0.0.0:8000",
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    10 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		CORS:    CORSConfig{AllowOrigins: []string{"*"}},
		Metrics: MetricsConfig{Enabled: true},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "text",
			MaxSizeMB:  50,
			MaxAgeDays: 7,
		},
	}
}

// Load reads the .env file, the optional YAML file and the environment,
// and returns a validated Config.
func Load() (*Config, error) {
	cfg := Default()
	cfg.DotEnvLoaded = godotenv.Load() == nil

	if path := os.Getenv(ConfigFileEnv); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("config: parse %q: %w", path, err)
	}
	c.File = path
	return nil
}

func (c *Config) applyEnv() error {
	setString("HTTP_ADDR", &c.HTTP.Addr)
	setString("LOG_LEVEL", &c.Logging.Level)
	setString("LOG_FORMAT", &c.Logging.Format)
	setString("LOG_FILE", &c.Logging.File)

	if val := os.Getenv("CORS_ALLOW_ORIGINS"); val != "" {
		c.CORS.AllowOrigins = splitList(val)
	}

	return errors.Join(
		setDuration("HTTP_READ_TIMEOUT", &c.HTTP.ReadTimeout),
		setDuration("HTTP_WRITE_TIMEOUT", &c.HTTP.WriteTimeout),
		setDuration("HTTP_IDLE_TIMEOUT", &c.HTTP.IdleTimeout),
		setDuration("SHUTDOWN_TIMEOUT", &c.HTTP.ShutdownTimeout),
		setFloat("RATE_LIMIT_RPS", &c.RateLimit.RPS),
		setInt("RATE_LIMIT_BURST", &c.RateLimit.Burst),
		setBool("METRICS_ENABLED", &c.Metrics.Enabled),
		setInt("LOG_MAX_SIZE_MB", &c.Logging.MaxSizeMB),
		setInt("LOG_MAX_AGE_DAYS", &c.Logging.MaxAgeDays),
	)
}

// Validate rejects settings the server cannot run with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.HTTP.Addr) == "" {
		return errors.New("config: http addr is empty")
	}
	if c.HTTP.ReadTimeout < 0 || c.HTTP.WriteTimeout < 0 || c.HTTP.IdleTimeout < 0 || c.HTTP.ShutdownTimeout < 0 {
		return errors.New("config: http timeouts must be >= 0")
	}
	if c.RateLimit.RPS < 0 || c.RateLimit.Burst < 0 {
		return errors.New("config: rate limit values must be >= 0")
	}
	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("config: unknown log format %q", c.Logging.Format)
	}
	for _, o := range c.CORS.AllowOrigins {
		if o != "*" && !strings.HasPrefix(o, "http://") && !strings.HasPrefix(o, "https://") {
			return fmt.Errorf("config: cors origin %q must be \"*\" or start with http:// or https://", o)
		}
	}
	return nil
}

func setString(key string, dst *string) {
	if val := os.Getenv(key); val != "" {
		*dst = val
	}
}

func setInt(key string, dst *int) error {
	val := os.Getenv(key)
	if val == "" {
		return nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return fmt.Errorf("config: %s: %w", key, err)
	}
	*dst = n
	return nil
}

func setFloat(key string, dst *float64) error {
	val := os.Getenv(key)
	if val == "" {
		return nil
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return fmt.Errorf("config: %s: %w", key, err)
	}
	*dst = f
	return nil
}

func setBool(key string, dst *bool) error {
	val := os.Getenv(key)
	if val == "" {
		return nil
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return fmt.Errorf("config: %s: %w", key, err)
	}
	*dst = b
	return nil
}

func setDuration(key string, dst *time.Duration) error {
	val := os.Getenv(key)
	if val == "" {
		return nil
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return fmt.Errorf("config: %s: %w", key, err)
	}
	*dst = d
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
