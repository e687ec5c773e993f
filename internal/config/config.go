// Package config loads the server settings from an optional YAML file
// overlaid with PORTFOLIO_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"tperticaro.dev/internal/i18n"
	"tperticaro.dev/internal/services"
	"tperticaro.dev/internal/ui"
)

// EnvPrefix prefixes every environment override. Nested keys are separated
// by a double underscore: PORTFOLIO_NAV__BREAKPOINT sets nav.breakpoint.
const EnvPrefix = "PORTFOLIO_"

// Config holds all application configuration
type Config struct {
	Server        ServerConfig        `koanf:"server"`
	Catalog       CatalogConfig       `koanf:"catalog"`
	Contact       ContactConfig       `koanf:"contact"`
	Nav           NavConfig           `koanf:"nav"`
	Modal         ModalConfig         `koanf:"modal"`
	Notifications NotificationsConfig `koanf:"notifications"`
	Particles     ParticlesConfig     `koanf:"particles"`
	Session       SessionConfig       `koanf:"session"`
	Lang          LangConfig          `koanf:"lang"`
	Log           LogConfig           `koanf:"log"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Addr            string `koanf:"addr"`
	StaticDir       string `koanf:"static_dir"`
	AllowAllOrigins bool   `koanf:"allow_all_origins"`
}

// CatalogConfig points at the project catalog. An empty path uses the
// catalog built into the binary.
type CatalogConfig struct {
	Path string `koanf:"path"`
}

type ContactConfig struct {
	Recipient string `koanf:"recipient"`
	Subject   string `koanf:"subject"`
}

type NavConfig struct {
	Breakpoint      int           `koanf:"breakpoint"`
	CloseDelay      time.Duration `koanf:"close_delay"`
	ScrollThreshold int           `koanf:"scroll_threshold"`
}

type ModalConfig struct {
	CloseDelay time.Duration `koanf:"close_delay"`
}

type NotificationsConfig struct {
	TTL  time.Duration `koanf:"ttl"`
	Exit time.Duration `koanf:"exit"`
}

// ParticlesConfig sizes the hero particle layer. Seed 0 draws a fresh
// layout for every visitor.
type ParticlesConfig struct {
	Count int    `koanf:"count"`
	Seed  uint64 `koanf:"seed"`
}

type SessionConfig struct {
	TTL    time.Duration `koanf:"ttl"`
	Cookie string        `koanf:"cookie"`
}

type LangConfig struct {
	Default string `koanf:"default"`
}

type LogConfig struct {
	Level string `koanf:"level"`
}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:      ":8080",
			StaticDir: "static",
		},
		Contact: ContactConfig{
			Recipient: services.DefaultRecipient,
			Subject:   services.DefaultSubject,
		},
		Nav: NavConfig{
			Breakpoint:      ui.DefaultBreakpoint,
			CloseDelay:      ui.DefaultNavCloseDelay,
			ScrollThreshold: ui.DefaultScrollThreshold,
		},
		Modal: ModalConfig{CloseDelay: ui.DefaultModalCloseDelay},
		Notifications: NotificationsConfig{
			TTL:  ui.DefaultNotificationTTL,
			Exit: ui.DefaultNotificationExit,
		},
		Particles: ParticlesConfig{Count: services.DefaultParticleCount},
		Session: SessionConfig{
			TTL:    30 * time.Minute,
			Cookie: "portfolio_session",
		},
		Lang: LangConfig{Default: i18n.Default().String()},
		Log:  LogConfig{Level: "info"},
	}
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	// SERVER_ADDR predates the prefixed variables and is still honoured.
	if addr := os.Getenv("SERVER_ADDR"); addr != "" && !k.Exists("server.addr") {
		cfg.Server.Addr = addr
	}

	return cfg, nil
}

func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}

// Validate checks that the configuration contains usable values.
func (c *Config) Validate() error {
	var errs []error
	if c.Server.Addr == "" {
		errs = append(errs, errors.New("server.addr is required"))
	}
	if c.Nav.Breakpoint <= 0 {
		errs = append(errs, fmt.Errorf("nav.breakpoint must be positive, got %d", c.Nav.Breakpoint))
	}
	if c.Nav.ScrollThreshold < 0 {
		errs = append(errs, fmt.Errorf("nav.scroll_threshold must be non-negative, got %d", c.Nav.ScrollThreshold))
	}
	for name, d := range map[string]time.Duration{
		"nav.close_delay":    c.Nav.CloseDelay,
		"modal.close_delay":  c.Modal.CloseDelay,
		"notifications.ttl":  c.Notifications.TTL,
		"notifications.exit": c.Notifications.Exit,
		"session.ttl":        c.Session.TTL,
	} {
		if d <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %s", name, d))
		}
	}
	if c.Particles.Count < 0 {
		errs = append(errs, fmt.Errorf("particles.count must be non-negative, got %d", c.Particles.Count))
	}
	if c.Session.Cookie == "" {
		errs = append(errs, errors.New("session.cookie is required"))
	}
	if c.Contact.Recipient == "" {
		errs = append(errs, errors.New("contact.recipient is required"))
	}
	if _, ok := i18n.Parse(c.Lang.Default); !ok {
		errs = append(errs, fmt.Errorf("invalid lang.default %q", c.Lang.Default))
	}
	return errors.Join(errs...)
}
