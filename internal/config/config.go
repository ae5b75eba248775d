// Package config loads the formcheck configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	theme "github.com/goliatone/go-theme"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formcheck/pkg/render"
)

// ErrInvalid wraps every validation failure reported by Validate.
var ErrInvalid = errors.New("config: invalid")

// Config holds all formcheck configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Form    FormConfig    `yaml:"form"`
	Logging LoggingConfig `yaml:"logging"`
	Theme   ThemeConfig   `yaml:"theme"`
}

// ServerConfig configures the HTTP boundary.
type ServerConfig struct {
	Addr          string        `yaml:"addr"`
	ShutdownGrace time.Duration `yaml:"shutdown_grace"`
	ReadTimeout   time.Duration `yaml:"read_timeout"`
	CSRF          CSRFConfig    `yaml:"csrf"`
	Metrics       bool          `yaml:"metrics"`
}

// CSRFConfig enables double-submit CSRF protection on form posts.
type CSRFConfig struct {
	Enabled      bool   `yaml:"enabled"`
	CookieName   string `yaml:"cookie_name"`
	CookieSecure bool   `yaml:"cookie_secure"`
}

// FormConfig selects the form document and submission behaviour.
type FormConfig struct {
	// Document is an OpenAPI file; empty uses the embedded signup document.
	Document    string `yaml:"document"`
	OperationID string `yaml:"operation_id"`
	Title       string `yaml:"title"`

	// The success banner shows SuccessMessage for SuccessTTL. Zero keeps it
	// until the next interaction.
	SuccessMessage       string        `yaml:"success_message"`
	SuccessTTL           time.Duration `yaml:"success_ttl"`
	RevalidateDependents bool          `yaml:"revalidate_dependents"`
}

// LoggingConfig configures zap.
type LoggingConfig struct {
	Level       string `yaml:"level"` // debug, info, warn, error
	Development bool   `yaml:"development"`
}

// ThemeConfig describes an inline theme manifest and the selected variant.
type ThemeConfig struct {
	Name     string                  `yaml:"name"`
	Variant  string                  `yaml:"variant"`
	Tokens   map[string]string       `yaml:"tokens"`
	Assets   ThemeAssets             `yaml:"assets"`
	Variants map[string]ThemeVariant `yaml:"variants"`
}

// ThemeAssets maps asset keys (vanilla.stylesheet, vanilla.script) to files
// under Prefix.
type ThemeAssets struct {
	Prefix string            `yaml:"prefix"`
	Files  map[string]string `yaml:"files"`
}

// ThemeVariant overrides tokens and assets of the base theme.
type ThemeVariant struct {
	Tokens map[string]string `yaml:"tokens"`
	Assets ThemeAssets       `yaml:"assets"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:          ":8383",
			ShutdownGrace: 10 * time.Second,
			ReadTimeout:   15 * time.Second,
			CSRF: CSRFConfig{
				CookieName: "_csrf",
			},
			Metrics: true,
		},
		Form: FormConfig{
			Title:                "Sign up",
			SuccessMessage:       render.DefaultSuccessMessage,
			SuccessTTL:           render.DefaultSuccessTTL,
			RevalidateDependents: true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads a YAML file over the defaults. An empty path or a missing file
// yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data, cfg)
}

// Parse decodes data over base (Default when nil) and validates the result.
func Parse(data []byte, base *Config) (*Config, error) {
	cfg := base
	if cfg == nil {
		cfg = Default()
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var validLevels = []string{"debug", "info", "warn", "error"}

// Validate checks durations, the listen address and the log level.
func (c *Config) Validate() error {
	var problems []string
	if strings.TrimSpace(c.Server.Addr) == "" {
		problems = append(problems, "server.addr is required")
	}
	for name, d := range map[string]time.Duration{
		"server.shutdown_grace": c.Server.ShutdownGrace,
		"server.read_timeout":   c.Server.ReadTimeout,
		"form.success_ttl":      c.Form.SuccessTTL,
	} {
		if d < 0 {
			problems = append(problems, fmt.Sprintf("%s: negative duration %s", name, d))
		}
	}
	if !contains(validLevels, strings.ToLower(c.Logging.Level)) {
		problems = append(problems, fmt.Sprintf("logging.level %q (valid: %s)", c.Logging.Level, strings.Join(validLevels, ", ")))
	}
	if c.Theme.Variant != "" && c.Theme.Name == "" {
		problems = append(problems, "theme.variant requires theme.name")
	}
	if c.Theme.Variant != "" {
		if _, ok := c.Theme.Variants[c.Theme.Variant]; !ok {
			problems = append(problems, fmt.Sprintf("theme.variant %q is not declared", c.Theme.Variant))
		}
	}
	if len(problems) == 0 {
		return nil
	}
	sort.Strings(problems)
	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
}

// Success returns the success indicator for accepted submissions.
func (c *Config) Success() *render.Success {
	return render.NewSuccess(c.Form.SuccessMessage, c.Form.SuccessTTL)
}

// ThemeSelection converts the inline theme into a go-theme selection. It
// returns nil when no theme is configured.
func (c *Config) ThemeSelection() *theme.Selection {
	t := c.Theme
	if strings.TrimSpace(t.Name) == "" {
		return nil
	}
	manifest := &theme.Manifest{
		Name:   t.Name,
		Tokens: t.Tokens,
		Assets: theme.Assets{Prefix: t.Assets.Prefix, Files: t.Assets.Files},
	}
	if len(t.Variants) > 0 {
		manifest.Variants = make(map[string]theme.Variant, len(t.Variants))
		for name, v := range t.Variants {
			manifest.Variants[name] = theme.Variant{
				Tokens: v.Tokens,
				Assets: theme.Assets{Prefix: v.Assets.Prefix, Files: v.Assets.Files},
			}
		}
	}
	return &theme.Selection{Theme: t.Name, Variant: t.Variant, Manifest: manifest}
}

// RendererTheme resolves the configured theme for renderers.
func (c *Config) RendererTheme() *theme.RendererConfig {
	return render.ThemeConfig(c.ThemeSelection())
}

func contains(values []string, value string) bool {
	for _, candidate := range values {
		if candidate == value {
			return true
		}
	}
	return false
}
