package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Transport modes.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// Config defines server configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	DB      DBConfig      `yaml:"db"`
	Log     LogConfig     `yaml:"log"`
	Project ProjectConfig `yaml:"project"`
	User    UserConfig    `yaml:"user"`
	Auth    AuthConfig    `yaml:"auth"`
}

type ServerConfig struct {
	Host            string        `yaml:"host" env:"STORYBOARD_SERVER_HOST"`
	Port            int           `yaml:"port" env:"STORYBOARD_SERVER_PORT"`
	Transport       string        `yaml:"transport" env:"STORYBOARD_TRANSPORT"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"STORYBOARD_SHUTDOWN_TIMEOUT"`
}

// DBConfig locates the asset catalog and activity log database.
type DBConfig struct {
	Path string `yaml:"path" env:"STORYBOARD_DB_PATH"`
}

type LogConfig struct {
	Level string `yaml:"level" env:"STORYBOARD_LOG_LEVEL"`
	// Path, when set, sends logs to a size-capped file instead of the console.
	Path string `yaml:"path" env:"STORYBOARD_LOG_PATH"`
}

// ProjectConfig seeds the project a session starts with.
type ProjectConfig struct {
	Title       string `yaml:"title" env:"STORYBOARD_PROJECT_TITLE"`
	Description string `yaml:"description" env:"STORYBOARD_PROJECT_DESCRIPTION"`
}

type UserConfig struct {
	Tier string `yaml:"tier" env:"STORYBOARD_USER_TIER"`
}

// AuthConfig protects the HTTP transport. An empty token disables auth.
type AuthConfig struct {
	Token string `yaml:"token" env:"STORYBOARD_AUTH_TOKEN"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			Transport:       TransportStdio,
			ShutdownTimeout: 5 * time.Second,
		},
		DB: DBConfig{
			Path: ":memory:",
		},
		Log: LogConfig{
			Level: "info",
		},
		Project: ProjectConfig{
			Title:       "My Storyboard",
			Description: "A new creative project",
		},
		User: UserConfig{
			Tier: "pro",
		},
	}
}

// Load reads configuration from defaults, an optional YAML file named by
// STORYBOARD_CONFIG_PATH, then environment variables, in that order.
func Load() (Config, error) {
	cfg := Default()

	if path := os.Getenv("STORYBOARD_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every invalid setting.
func (c Config) Validate() error {
	var errs []error
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server port %d out of range", c.Server.Port))
	}
	switch c.Server.Transport {
	case TransportStdio, TransportHTTP:
	default:
		errs = append(errs, fmt.Errorf("unknown transport %q", c.Server.Transport))
	}
	if c.Server.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("shutdown timeout must be positive"))
	}
	if strings.TrimSpace(c.DB.Path) == "" {
		errs = append(errs, errors.New("db path is required"))
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		errs = append(errs, err)
	}
	if strings.TrimSpace(c.Project.Title) == "" {
		errs = append(errs, errors.New("project title is required"))
	}
	switch c.User.Tier {
	case "free", "pro", "enterprise":
	default:
		errs = append(errs, fmt.Errorf("unknown user tier %q", c.User.Tier))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// SlogLevel parses the configured level name.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("invalid log level %q", l.Level)
	}
	return level, nil
}

// Addr returns the HTTP listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
