package config

import (
	"embed"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

// EnvAPIURL overrides api_url from the config file.
const EnvAPIURL = "BLOGDECK_API_URL"

const DefaultAPIURL = "http://localhost:5000/api"

type Config struct {
	APIURL         string `yaml:"api_url"`
	RequestTimeout string `yaml:"request_timeout,omitempty"`
	MarkdownStyle  string `yaml:"markdown_style,omitempty"` // auto, dark, light, notty
	Colors         *bool  `yaml:"colors,omitempty"`
	LogFile        string `yaml:"log_file,omitempty"`
	ExportDir      string `yaml:"export_dir,omitempty"`
	CacheFile      string `yaml:"cache_file,omitempty"`
}

// ResolvedAPIURL returns the base URL with env override applied and any
// trailing slash removed.
func (c *Config) ResolvedAPIURL() string {
	u := c.APIURL
	if v := strings.TrimSpace(os.Getenv(EnvAPIURL)); v != "" {
		u = v
	}
	if u == "" {
		u = DefaultAPIURL
	}
	return NormalizeAPIURL(u)
}

// NormalizeAPIURL trims spaces and trailing slashes so paths can be
// appended directly.
func NormalizeAPIURL(u string) string {
	return strings.TrimRight(strings.TrimSpace(u), "/")
}

// Timeout bounds each API call. Zero means no limit, which is the default:
// generating a batch can take minutes.
func (c *Config) Timeout() time.Duration {
	if c.RequestTimeout == "" {
		return 0
	}
	d, err := time.ParseDuration(c.RequestTimeout)
	if err != nil || d < 0 {
		return 0
	}
	return d
}

func (c *Config) GetMarkdownStyle() string {
	switch c.MarkdownStyle {
	case "dark", "light", "notty":
		return c.MarkdownStyle
	default:
		return "auto"
	}
}

// ColorsEnabled defaults to true when unset.
func (c *Config) ColorsEnabled() bool {
	if c.Colors == nil {
		return true
	}
	return *c.Colors
}

func (c *Config) LogPath() string {
	if c.LogFile != "" {
		return c.LogFile
	}
	return filepath.Join(xdg.StateHome, "blogdeck", "blogdeck.log")
}

// ExportPath is where exported HTML articles are written.
func (c *Config) ExportPath() string {
	if c.ExportDir != "" {
		return expandHome(c.ExportDir)
	}
	return filepath.Join(xdg.DataHome, "blogdeck", "exports")
}

func expandHome(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		return filepath.Join(xdg.Home, strings.TrimPrefix(p, "~"))
	}
	return p
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "blogdeck", "config.yaml")
}

// CachePath is the sqlite snapshot of the last fetched article list.
func (c *Config) CachePath() string {
	if c.CacheFile != "" {
		return expandHome(c.CacheFile)
	}
	return DefaultCachePath()
}

func DefaultCachePath() string {
	return filepath.Join(xdg.CacheHome, "blogdeck", "articles.db")
}

func loadDefaults() (*Config, error) {
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}
	return &cfg, nil
}

func Load(path string) (*Config, error) {
	defaults, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Non-fatal: embedded defaults still apply if the write fails
			_ = writeDefaults(path)
			return defaults, validate(defaults)
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := *defaults
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func writeDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, _ := defaultConfigFS.ReadFile("default_config.yaml")
	return os.WriteFile(path, data, 0o644)
}

// CheckAPIURL reports whether raw can serve as the API base URL.
func CheckAPIURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("missing host in %q", raw)
	}
	return nil
}

func validate(cfg *Config) error {
	if err := CheckAPIURL(cfg.ResolvedAPIURL()); err != nil {
		return fmt.Errorf("api_url: %w", err)
	}
	if cfg.RequestTimeout != "" {
		if _, err := time.ParseDuration(cfg.RequestTimeout); err != nil {
			return fmt.Errorf("request_timeout: %w", err)
		}
	}
	return nil
}
