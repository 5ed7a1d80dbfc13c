package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment variables that override the config file.
const (
	EnvHome     = "STOREFRONT_HOME"
	EnvAPIURL   = "STOREFRONT_API_URL"
	EnvToken    = "STOREFRONT_TOKEN"
	EnvLogLevel = "STOREFRONT_LOG_LEVEL"
)

// Defaults applied by DefaultConfig.
const (
	DefaultBaseURL        = "http://localhost:5000/api/v1"
	DefaultTimeoutSeconds = 15
	DefaultPageSize       = 12
	DefaultOrdersPageSize = 5
	DefaultPopularWindow  = 3
	DefaultOutputFormat   = "table"
	configFileName        = "config.yaml"
	configDirName         = ".storefront"
	maxPageSize           = 100
)

// Validation errors.
var (
	ErrInvalidBaseURL  = errors.New("api.base_url must be an absolute http(s) URL")
	ErrInvalidTimeout  = errors.New("api.timeout_seconds must be > 0")
	ErrInvalidPageSize = errors.New("page size must be between 1 and 100")
	ErrInvalidFormat   = errors.New("output.default_format must be table, json or yaml")
	ErrUnknownKey      = errors.New("unknown config key")
)

// Config is the storefront client configuration.
type Config struct {
	API     APIConfig     `yaml:"api"`
	Catalog CatalogConfig `yaml:"catalog"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`

	configPath string
}

// APIConfig points the client at the storefront backend.
type APIConfig struct {
	BaseURL        string `yaml:"base_url"`
	Token          string `yaml:"token,omitempty"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// CatalogConfig controls how lists are paged.
type CatalogConfig struct {
	PageSize       int `yaml:"page_size"`
	OrdersPageSize int `yaml:"orders_page_size"`
	PopularWindow  int `yaml:"popular_window"`
}

// OutputConfig controls non-interactive output.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format"`
}

// LoggingConfig controls the zerolog logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file,omitempty"`
}

// DefaultConfig returns a Config with every default applied.
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:        DefaultBaseURL,
			TimeoutSeconds: DefaultTimeoutSeconds,
		},
		Catalog: CatalogConfig{
			PageSize:       DefaultPageSize,
			OrdersPageSize: DefaultOrdersPageSize,
			PopularWindow:  DefaultPopularWindow,
		},
		Output: OutputConfig{DefaultFormat: DefaultOutputFormat},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		configPath: filepath.Join(HomeDir(), configFileName),
	}
}

// HomeDir returns the storefront directory: $STOREFRONT_HOME or ~/.storefront.
func HomeDir() string {
	if dir := os.Getenv(EnvHome); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return configDirName
	}
	return filepath.Join(home, configDirName)
}

// New loads the config file (if present) over the defaults and applies
// environment overrides. A broken config file falls back to defaults.
func New() *Config {
	cfg := DefaultConfig()
	_ = cfg.Load(cfg.configPath)
	cfg.ApplyEnv()
	return cfg
}

// Path returns the file the config is loaded from and saved to.
func (c *Config) Path() string {
	return c.configPath
}

// SetPath changes the file the config is saved to.
func (c *Config) SetPath(path string) {
	c.configPath = path
}

// Load reads path over the current values. A missing file is not an error.
func (c *Config) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	if err = yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

// Save writes the config to its path, creating the directory if needed.
// The API token is never written to disk.
func (c *Config) Save() error {
	if err := os.MkdirAll(filepath.Dir(c.configPath), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	onDisk := *c
	onDisk.API.Token = ""
	data, err := yaml.Marshal(&onDisk)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err = os.WriteFile(c.configPath, data, 0o600); err != nil {
		return fmt.Errorf("writing config %s: %w", c.configPath, err)
	}
	return nil
}

// ApplyEnv applies STOREFRONT_* environment overrides.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvAPIURL); v != "" {
		c.API.BaseURL = v
	}
	if v := os.Getenv(EnvToken); v != "" {
		c.API.Token = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
}

// Validate checks the config for values the client cannot work with.
func (c *Config) Validate() error {
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidBaseURL, c.API.BaseURL)
	}
	if c.API.TimeoutSeconds <= 0 {
		return ErrInvalidTimeout
	}
	for _, size := range []int{c.Catalog.PageSize, c.Catalog.OrdersPageSize, c.Catalog.PopularWindow} {
		if size < 1 || size > maxPageSize {
			return fmt.Errorf("%w: got %d", ErrInvalidPageSize, size)
		}
	}
	switch c.Output.DefaultFormat {
	case "table", "json", "yaml":
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidFormat, c.Output.DefaultFormat)
	}
	return nil
}

// keys lists the dotted keys understood by Get and Set, in display order.
//
//nolint:gochecknoglobals // Compile-time constant lookup table.
var keys = []string{
	"api.base_url",
	"api.timeout_seconds",
	"catalog.page_size",
	"catalog.orders_page_size",
	"catalog.popular_window",
	"output.default_format",
	"logging.level",
	"logging.format",
	"logging.file",
}

// Keys returns the dotted keys understood by Get and Set.
func Keys() []string {
	out := make([]string, len(keys))
	copy(out, keys)
	return out
}

// Get returns the value of a dotted key such as "catalog.page_size".
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "api.base_url":
		return c.API.BaseURL, nil
	case "api.timeout_seconds":
		return strconv.Itoa(c.API.TimeoutSeconds), nil
	case "catalog.page_size":
		return strconv.Itoa(c.Catalog.PageSize), nil
	case "catalog.orders_page_size":
		return strconv.Itoa(c.Catalog.OrdersPageSize), nil
	case "catalog.popular_window":
		return strconv.Itoa(c.Catalog.PopularWindow), nil
	case "output.default_format":
		return c.Output.DefaultFormat, nil
	case "logging.level":
		return c.Logging.Level, nil
	case "logging.format":
		return c.Logging.Format, nil
	case "logging.file":
		return c.Logging.File, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set assigns a dotted key from its string form and validates the result.
// On validation failure the previous value is restored.
func (c *Config) Set(key, value string) error {
	previous := *c
	if err := c.set(key, strings.TrimSpace(value)); err != nil {
		*c = previous
		return err
	}
	if err := c.Validate(); err != nil {
		*c = previous
		return err
	}
	return nil
}

func (c *Config) set(key, value string) error {
	atoi := func() (int, error) {
		n, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("%s: %q is not a number", key, value)
		}
		return n, nil
	}

	var err error
	switch key {
	case "api.base_url":
		c.API.BaseURL = value
	case "api.timeout_seconds":
		c.API.TimeoutSeconds, err = atoi()
	case "catalog.page_size":
		c.Catalog.PageSize, err = atoi()
	case "catalog.orders_page_size":
		c.Catalog.OrdersPageSize, err = atoi()
	case "catalog.popular_window":
		c.Catalog.PopularWindow, err = atoi()
	case "output.default_format":
		c.Output.DefaultFormat = strings.ToLower(value)
	case "logging.level":
		c.Logging.Level = strings.ToLower(value)
	case "logging.format":
		c.Logging.Format = strings.ToLower(value)
	case "logging.file":
		c.Logging.File = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return err
}
