package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"gopkg.in/yaml.v3"
)

const (
	SinkNone       = "none"
	SinkKafka      = "kafka"
	SinkClickHouse = "clickhouse"

	RateLimitMemory = "memory"
	RateLimitRedis  = "redis"
)

// identifierPattern matches a bare SQL identifier. The ClickHouse table name
// is written into DDL and INSERT statements.
var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

type Config struct {
	Environment string `yaml:"environment" default:"development"`
	Server      struct {
		Host            string        `yaml:"host" default:"0.0.0.0"`
		Port            int           `yaml:"port" default:"3000"`
		ReadTimeout     time.Duration `yaml:"read_timeout" default:"15s"`
		WriteTimeout    time.Duration `yaml:"write_timeout" default:"30s"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"10s"`
		CORS            bool          `yaml:"cors" default:"true"`
	} `yaml:"server"`
	Log struct {
		Level  string `yaml:"level" default:"info"`
		Format string `yaml:"format" default:"console"`
		Output string `yaml:"output" default:"stdout"`
	} `yaml:"log"`
	Metrics struct {
		Enabled bool   `yaml:"enabled" default:"true"`
		Path    string `yaml:"path" default:"/metrics"`
	} `yaml:"metrics"`
	Backend struct {
		BaseURL string `yaml:"base_url" default:"http://localhost:8000"`
		// Timeout bounds a single backend call at the transport level. Zero means none.
		Timeout time.Duration `yaml:"timeout" default:"0s"`
	} `yaml:"backend"`
	UI struct {
		Locale string `yaml:"locale" default:"id"`
	} `yaml:"ui"`
	Dashboard struct {
		KPI struct {
			TotalCustomers     int     `yaml:"total_customers" default:"45211"`
			OverallSuccessRate float64 `yaml:"overall_success_rate" default:"11.7"`
			AvgCallDuration    int     `yaml:"avg_call_duration" default:"263"`
			AvgCustomerAge     int     `yaml:"avg_customer_age" default:"41"`
		} `yaml:"kpi"`
	} `yaml:"dashboard"`
	RateLimit struct {
		Enabled bool          `yaml:"enabled" default:"true"`
		Backend string        `yaml:"backend" default:"memory"`
		Limit   int           `yaml:"limit" default:"30"`
		Window  time.Duration `yaml:"window" default:"1m"`
	} `yaml:"ratelimit"`
	Redis struct {
		Host     string `yaml:"host" default:"localhost"`
		Port     int    `yaml:"port" default:"6379"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
		Prefix   string `yaml:"prefix" default:"securebank"`
	} `yaml:"redis"`
	Events struct {
		Sink  string `yaml:"sink" default:"none"`
		Kafka struct {
			Brokers      []string      `yaml:"brokers"`
			Topic        string        `yaml:"topic" default:"securebank.predictions"`
			RequiredAcks int           `yaml:"required_acks" default:"-1"`
			Compression  string        `yaml:"compression" default:"gzip"`
			MaxAttempts  int           `yaml:"max_attempts" default:"3"`
			Linger       time.Duration `yaml:"linger" default:"500ms"`
			WriteTimeout time.Duration `yaml:"write_timeout" default:"10s"`
			Async        bool          `yaml:"async" default:"true"`
		} `yaml:"kafka"`
		ClickHouse struct {
			Host         string        `yaml:"host" default:"localhost"`
			Port         int           `yaml:"port" default:"9000"`
			Database     string        `yaml:"database" default:"securebank"`
			Table        string        `yaml:"table" default:"prediction_events"`
			User         string        `yaml:"user" default:"default"`
			Password     string        `yaml:"password"`
			UseHTTP      bool          `yaml:"use_http"`
			AsyncInsert  bool          `yaml:"async_insert" default:"true"`
			DialTimeout  time.Duration `yaml:"dial_timeout" default:"5s"`
			ReadTimeout  time.Duration `yaml:"read_timeout" default:"10s"`
			WriteTimeout time.Duration `yaml:"write_timeout" default:"10s"`
		} `yaml:"clickhouse"`
	} `yaml:"events"`
}

// Default returns a config populated only from struct defaults.
func Default() *Config {
	var c Config
	if err := defaults.Set(&c); err != nil {
		// defaults only fails on malformed tags
		panic(fmt.Sprintf("config defaults: %v", err))
	}
	return &c
}

// Load reads and parses a YAML configuration file on top of the defaults.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	c := Default()

	b, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(b, c); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}
	if err := c.ApplyEnv(os.Getenv); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return c, nil
}

// ApplyEnv overrides fields from the environment looked up through getenv.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	// legacy name used by the Next.js deployment
	if v := getenv("NEXT_PUBLIC_BACKEND_API_URL"); v != "" {
		c.Backend.BaseURL = v
	}
	if v := getenv("BACKEND_API_URL"); v != "" {
		c.Backend.BaseURL = v
	}
	if v := getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("PORT: %w", err)
		}
		c.Server.Port = port
	}
	if v := getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := getenv("UI_LOCALE"); v != "" {
		c.UI.Locale = v
	}
	if v := getenv("EVENTS_SINK"); v != "" {
		c.Events.Sink = v
	}
	if v := getenv("KAFKA_BROKERS"); v != "" {
		c.Events.Kafka.Brokers = strings.Split(v, ",")
	}
	if v := getenv("REDIS_ADDR"); v != "" {
		host, port, found := strings.Cut(v, ":")
		c.Redis.Host = host
		if found {
			p, err := strconv.Atoi(port)
			if err != nil {
				return fmt.Errorf("REDIS_ADDR: %w", err)
			}
			c.Redis.Port = p
		}
	}
	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535, got %d", c.Server.Port)
	}
	u, err := url.Parse(c.Backend.BaseURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("backend.base_url must be an absolute http(s) URL, got '%s'", c.Backend.BaseURL)
	}
	if c.UI.Locale != "id" && c.UI.Locale != "en" {
		return fmt.Errorf("ui.locale must be 'id' or 'en', got '%s'", c.UI.Locale)
	}
	switch c.Events.Sink {
	case SinkNone:
	case SinkKafka:
		if len(c.Events.Kafka.Brokers) == 0 {
			return fmt.Errorf("events.kafka.brokers cannot be empty when events.sink is kafka")
		}
		if c.Events.Kafka.Topic == "" {
			return fmt.Errorf("events.kafka.topic is required")
		}
	case SinkClickHouse:
		if c.Events.ClickHouse.Host == "" {
			return fmt.Errorf("events.clickhouse.host is required when events.sink is clickhouse")
		}
		if !identifierPattern.MatchString(c.Events.ClickHouse.Table) {
			return fmt.Errorf("events.clickhouse.table must be a plain identifier, got '%s'", c.Events.ClickHouse.Table)
		}
	default:
		return fmt.Errorf("events.sink must be 'none', 'kafka' or 'clickhouse', got '%s'", c.Events.Sink)
	}
	if c.RateLimit.Enabled {
		if c.RateLimit.Backend != RateLimitMemory && c.RateLimit.Backend != RateLimitRedis {
			return fmt.Errorf("ratelimit.backend must be 'memory' or 'redis', got '%s'", c.RateLimit.Backend)
		}
		if c.RateLimit.Limit <= 0 || c.RateLimit.Window <= 0 {
			return fmt.Errorf("ratelimit.limit and ratelimit.window must be positive")
		}
	}
	return nil
}

// BackendURL joins the backend base URL and path.
func (c *Config) BackendURL(path string) string {
	return strings.TrimRight(c.Backend.BaseURL, "/") + path
}
