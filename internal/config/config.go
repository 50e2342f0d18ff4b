// Package config loads and validates octofit configuration.
//
// Configuration is resolved in layers: built-in defaults, the global file
// (~/.octofit/config.yaml), an optional project overlay, environment
// variables and finally CLI flags applied by the caller.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Default values.
const (
	DefaultDomain      = "app.github.dev"
	DefaultPort        = 8000
	DefaultTimeout     = 30 * time.Second
	DefaultMaxPages    = 10
	DefaultPageRate    = 5.0
	DefaultLocale      = "en-US"
	DefaultOutput      = "table"
	DefaultLogLevel    = "warn"
	DefaultLogFormat   = "json"
	DefaultServiceName = "octofit"

	configFileName = "config.yaml"
)

// Environment variables read by Load.
const (
	EnvHome          = "OCTOFIT_HOME"
	EnvWorkspace     = "OCTOFIT_WORKSPACE"
	EnvCodespaceName = "CODESPACE_NAME"
	EnvBaseURL       = "OCTOFIT_BASE_URL"
	EnvLogLevel      = "OCTOFIT_LOG_LEVEL"
	EnvLogFormat     = "OCTOFIT_LOG_FORMAT"
	EnvOTLPEndpoint  = "OTEL_EXPORTER_OTLP_ENDPOINT"
	EnvProjectDir    = "OCTOFIT_PROJECT_DIR"
)

// Validation errors.
var (
	ErrMissingWorkspace = errors.New("api.workspace is required (set --workspace, OCTOFIT_WORKSPACE or CODESPACE_NAME) unless api.base_url is set")
	ErrInvalidBaseURL   = errors.New("api.base_url must be an absolute http(s) URL")
	ErrInvalidPort      = errors.New("api.port must be between 1 and 65535")
	ErrInvalidTimeout   = errors.New("api.timeout must be positive")
	ErrInvalidMaxPages  = errors.New("api.max_pages must be >= 1")
	ErrInvalidPageRate  = errors.New("api.page_rate must be positive")
	ErrInvalidOutput    = errors.New("display.output must be one of table, json, ndjson")
	ErrInvalidLogFormat = errors.New("logging.format must be console or json")
)

// Config is the root configuration document.
type Config struct {
	API     APIConfig     `yaml:"api"`
	Display DisplayConfig `yaml:"display"`
	Logging LoggingConfig `yaml:"logging"`
	Tracing TracingConfig `yaml:"tracing"`

	configPath string
}

// APIConfig describes how to reach the backend.
type APIConfig struct {
	// Workspace is the Codespace/session identifier that prefixes the host name.
	Workspace string `yaml:"workspace"`
	Domain    string `yaml:"domain"`
	Port      int    `yaml:"port"`
	// BaseURL replaces the derived https://{workspace}-{port}.{domain}/api root.
	BaseURL string        `yaml:"base_url,omitempty"`
	Timeout time.Duration `yaml:"timeout"`
	// FollowPages makes the client follow envelope "next" links.
	FollowPages bool    `yaml:"follow_pages"`
	MaxPages    int     `yaml:"max_pages"`
	PageRate    float64 `yaml:"page_rate"`
}

// DisplayConfig controls rendering.
type DisplayConfig struct {
	Locale  string `yaml:"locale"`
	Output  string `yaml:"output"`
	Plain   bool   `yaml:"plain"`
	NoColor bool   `yaml:"no_color"`
}

// LoggingConfig controls log level, format and destination.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file,omitempty"`
}

// TracingConfig enables OTLP span export when Endpoint is set.
type TracingConfig struct {
	Endpoint    string `yaml:"endpoint,omitempty"`
	ServiceName string `yaml:"service_name"`
	Insecure    bool   `yaml:"insecure"`
}

// Default returns a Config populated with built-in defaults only.
func Default() *Config {
	cfg := &Config{
		API: APIConfig{
			Domain:   DefaultDomain,
			Port:     DefaultPort,
			Timeout:  DefaultTimeout,
			MaxPages: DefaultMaxPages,
			PageRate: DefaultPageRate,
		},
		Display: DisplayConfig{
			Locale: DefaultLocale,
			Output: DefaultOutput,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
		Tracing: TracingConfig{
			ServiceName: DefaultServiceName,
		},
	}
	if dir, err := GetConfigDir(); err == nil {
		cfg.configPath = filepath.Join(dir, configFileName)
	}
	return cfg
}

// New returns the defaults overlaid with the global config file (if present)
// and environment variables. Load errors are ignored; use Load to surface them.
func New() *Config {
	cfg, err := Load("")
	if err != nil {
		cfg = Default()
		cfg.ApplyEnv(os.LookupEnv)
	}
	return cfg
}

// Load reads the config file at path (or the global default when path is
// empty) over the defaults and applies environment overrides. A missing file
// is not an error.
func Load(path string) (*Config, error) {
	cfg, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv(os.LookupEnv)
	return cfg, nil
}

// LoadFile reads the config file at path (or the global default when path
// is empty) over the defaults without consulting the environment. Commands
// that write the file back use it so env overrides are not persisted.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		cfg.configPath = path
	}
	if cfg.configPath == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(cfg.configPath)
	switch {
	case err == nil:
		if uerr := yaml.Unmarshal(data, cfg); uerr != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", cfg.configPath, uerr)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("reading config file %s: %w", cfg.configPath, err)
	}
	return cfg, nil
}

// ApplyEnv overlays environment variables onto cfg.
func (c *Config) ApplyEnv(lookupEnv func(string) (string, bool)) {
	if v, ok := lookupEnv(EnvWorkspace); ok && v != "" {
		c.API.Workspace = v
	} else if v, ok := lookupEnv(EnvCodespaceName); ok && v != "" && c.API.Workspace == "" {
		c.API.Workspace = v
	}
	if v, ok := lookupEnv(EnvBaseURL); ok && v != "" {
		c.API.BaseURL = v
	}
	if v, ok := lookupEnv(EnvLogLevel); ok && v != "" {
		c.Logging.Level = v
	}
	if v, ok := lookupEnv(EnvLogFormat); ok && v != "" {
		c.Logging.Format = v
	}
	if v, ok := lookupEnv(EnvOTLPEndpoint); ok && v != "" {
		c.Tracing.Endpoint = v
	}
}

// ConfigPath returns the file this config is loaded from and saved to.
func (c *Config) ConfigPath() string {
	return c.configPath
}

// SetConfigPath changes the file used by Save.
func (c *Config) SetConfigPath(path string) {
	c.configPath = path
}

// Save writes the config as YAML to ConfigPath.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.New("config path is not set")
	}
	if err := os.MkdirAll(filepath.Dir(c.configPath), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err = os.WriteFile(c.configPath, data, 0o600); err != nil {
		return fmt.Errorf("writing config file %s: %w", c.configPath, err)
	}
	return nil
}

// Validate checks the whole configuration and reports every problem found.
func (c *Config) Validate() error {
	var errs []error
	if err := c.API.Validate(); err != nil {
		errs = append(errs, err)
	}
	switch strings.ToLower(c.Display.Output) {
	case "table", "json", "ndjson":
	default:
		errs = append(errs, fmt.Errorf("%w, got %q", ErrInvalidOutput, c.Display.Output))
	}
	switch strings.ToLower(c.Logging.Format) {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("%w, got %q", ErrInvalidLogFormat, c.Logging.Format))
	}
	return errors.Join(errs...)
}

// Validate checks that a base URL can be built. The workspace is only
// required when no explicit base URL is configured.
func (a APIConfig) Validate() error {
	var errs []error
	if a.BaseURL != "" {
		u, err := url.Parse(a.BaseURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errs = append(errs, fmt.Errorf("%w, got %q", ErrInvalidBaseURL, a.BaseURL))
		}
	} else {
		if strings.TrimSpace(a.Workspace) == "" {
			errs = append(errs, ErrMissingWorkspace)
		}
		if a.Port < 1 || a.Port > 65535 {
			errs = append(errs, fmt.Errorf("%w, got %d", ErrInvalidPort, a.Port))
		}
	}
	if a.Timeout <= 0 {
		errs = append(errs, ErrInvalidTimeout)
	}
	if a.MaxPages < 1 {
		errs = append(errs, ErrInvalidMaxPages)
	}
	if a.PageRate <= 0 {
		errs = append(errs, ErrInvalidPageRate)
	}
	return errors.Join(errs...)
}

// APIBase returns the API root, e.g. https://ws-8000.app.github.dev/api.
// It does not validate; call Validate first.
func (a APIConfig) APIBase() string {
	if a.BaseURL != "" {
		return strings.TrimRight(a.BaseURL, "/")
	}
	domain := strings.Trim(a.Domain, ".")
	if domain == "" {
		domain = DefaultDomain
	}
	return "https://" + a.Workspace + "-" + strconv.Itoa(a.Port) + "." + domain + "/api"
}

// Endpoint returns the collection URL for resource, with a trailing slash.
func (a APIConfig) Endpoint(resource string) string {
	return a.APIBase() + "/" + strings.Trim(resource, "/") + "/"
}
