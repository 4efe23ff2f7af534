package config

import (
	"fmt"
	"os"

	"github.com/gobwas/glob"
	"gopkg.in/yaml.v3"
)

// Config holds the settings for a browser automation session.
// Zero values are filled in by Default / applyDefaults, so a partial
// YAML file (or an empty one) is always usable.
type Config struct {
	// Headless controls whether the browser runs without a visible window.
	// Automation environments have no display, so this defaults to true.
	Headless *bool `yaml:"headless"`

	// Viewport is the fixed page size for the session.
	Viewport Viewport `yaml:"viewport"`

	// UserAgent is the identification string presented to sites. A
	// realistic desktop Chrome string avoids trivial bot blocking.
	UserAgent string `yaml:"user_agent"`

	// ExecutablePath overrides browser executable discovery when set.
	ExecutablePath string `yaml:"executable_path"`

	// WaitUntil is the navigation completion condition:
	// "load", "domcontentloaded", or "networkidle".
	WaitUntil string `yaml:"wait_until"`

	// ActionTimeout is the default driver timeout for page operations,
	// in milliseconds.
	ActionTimeout float64 `yaml:"action_timeout"`

	// AllowedHosts restricts navigation to hosts matching any of these
	// glob patterns (e.g. "*.example.com"). Empty means all hosts are
	// allowed.
	AllowedHosts []string `yaml:"allowed_hosts"`
}

// Viewport represents the browser viewport dimensions.
type Viewport struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Default values for session configuration.
const (
	DefaultViewportWidth  = 1280
	DefaultViewportHeight = 720
	DefaultWaitUntil      = "load"
	DefaultActionTimeout  = 30000.0 // 30 seconds in milliseconds

	// DefaultUserAgent is a current desktop Chrome identification string.
	DefaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36"
)

// Default returns a configuration with all defaults applied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads a YAML configuration file, applies defaults for unset
// fields, and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Headless == nil {
		headless := true
		c.Headless = &headless
	}
	if c.Viewport.Width == 0 {
		c.Viewport.Width = DefaultViewportWidth
	}
	if c.Viewport.Height == 0 {
		c.Viewport.Height = DefaultViewportHeight
	}
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}
	if c.WaitUntil == "" {
		c.WaitUntil = DefaultWaitUntil
	}
	if c.ActionTimeout == 0 {
		c.ActionTimeout = DefaultActionTimeout
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Viewport.Width < 100 || c.Viewport.Width > 5000 {
		return fmt.Errorf("viewport width must be between 100 and 5000 pixels")
	}
	if c.Viewport.Height < 100 || c.Viewport.Height > 5000 {
		return fmt.Errorf("viewport height must be between 100 and 5000 pixels")
	}

	switch c.WaitUntil {
	case "load", "domcontentloaded", "networkidle":
	default:
		return fmt.Errorf("invalid wait_until value: %s (must be 'load', 'domcontentloaded', or 'networkidle')", c.WaitUntil)
	}

	if c.ActionTimeout < 0 || c.ActionTimeout > 300000 {
		return fmt.Errorf("action_timeout must be between 0 and 300000 milliseconds (5 minutes)")
	}

	if _, err := c.CompileAllowedHosts(); err != nil {
		return err
	}
	return nil
}

// CompileAllowedHosts compiles the allowed-host patterns. A nil slice is
// returned when no restrictions are configured.
func (c *Config) CompileAllowedHosts() ([]glob.Glob, error) {
	if len(c.AllowedHosts) == 0 {
		return nil, nil
	}

	globs := make([]glob.Glob, 0, len(c.AllowedHosts))
	for _, pattern := range c.AllowedHosts {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid allowed_hosts pattern %q: %w", pattern, err)
		}
		globs = append(globs, g)
	}
	return globs, nil
}

// IsHeadless reports whether the browser should run headless.
func (c *Config) IsHeadless() bool {
	return c.Headless == nil || *c.Headless
}
