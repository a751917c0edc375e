package envbadge

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/envbadge/pkg/dom"
	"github.com/dmitrymomot/envbadge/pkg/environment"
	"github.com/dmitrymomot/envbadge/pkg/logger"
)

// DefaultElementID identifies the badge element when no per-instance id is
// configured. Hosting a single badge per page is the intended usage; use
// WithUniqueElementID when multiple instances must coexist.
const DefaultElementID = "envbadge-indicator"

// Option configures the indicator.
type Option func(*config)

type config struct {
	colors     map[environment.Environment]string
	labels     map[environment.Environment]string
	position   Position
	size       Size
	autoDetect bool
	override   environment.Environment
	enabled    bool
	debug      bool
	elementID  string

	window  dom.Window
	environ map[string]string
	log     *slog.Logger
}

// defaultConfig returns a fully resolved configuration; options merge over
// it, they never leave a field unset.
func defaultConfig() *config {
	return &config{
		colors:     maps.Clone(defaultColors),
		labels:     maps.Clone(defaultLabels),
		position:   BottomRight,
		size:       SizeMedium,
		autoDetect: true,
		enabled:    true,
		elementID:  DefaultElementID,
	}
}

// WithColor sets the badge background color for one environment.
func WithColor(env environment.Environment, color string) Option {
	if !env.Valid() {
		panic(fmt.Errorf("WithColor: unknown environment %q", env))
	}
	return func(c *config) {
		if color != "" {
			c.colors[env] = color
		}
	}
}

// WithLabel sets the badge text for one environment.
func WithLabel(env environment.Environment, label string) Option {
	if !env.Valid() {
		panic(fmt.Errorf("WithLabel: unknown environment %q", env))
	}
	return func(c *config) {
		if label != "" {
			c.labels[env] = label
		}
	}
}

// WithPosition pins the badge to the given screen corner.
func WithPosition(p Position) Option {
	if !p.Valid() {
		panic(fmt.Errorf("WithPosition: unknown position %q", p))
	}
	return func(c *config) { c.position = p }
}

// WithSize sets the badge size category.
func WithSize(s Size) Option {
	if !s.Valid() {
		panic(fmt.Errorf("WithSize: unknown size %q", s))
	}
	return func(c *config) { c.size = s }
}

// WithAutoDetect toggles the detection pipeline. When disabled and no
// override is set, the environment resolves to development.
func WithAutoDetect(enabled bool) Option {
	return func(c *config) { c.autoDetect = enabled }
}

// WithOverride forces environment resolution to env, bypassing detection.
func WithOverride(env environment.Environment) Option {
	if !env.Valid() {
		panic(fmt.Errorf("WithOverride: unknown environment %q", env))
	}
	return func(c *config) { c.override = env }
}

// WithEnabled toggles the badge. A disabled indicator skips rendering
// entirely while CurrentEnvironment keeps working.
func WithEnabled(enabled bool) Option {
	return func(c *config) { c.enabled = enabled }
}

// WithDebug enables the debug logging side channel.
func WithDebug(enabled bool) Option {
	return func(c *config) { c.debug = enabled }
}

// WithWindow injects the host surface the badge renders into. Without a
// window the indicator treats the host as non-renderable and Init no-ops.
func WithWindow(w dom.Window) Option {
	return func(c *config) { c.window = w }
}

// WithEnviron injects the variable map consulted by detection instead of the
// process environment. Primarily for tests.
func WithEnviron(environ map[string]string) Option {
	return func(c *config) { c.environ = maps.Clone(environ) }
}

// WithLogger supplies the logger used for the debug side channel.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.log = l
		}
	}
}

// WithElementID overrides the badge element identifier.
func WithElementID(id string) Option {
	if id == "" {
		panic(errors.New("WithElementID: id cannot be empty"))
	}
	return func(c *config) { c.elementID = id }
}

// WithUniqueElementID gives the badge a random per-instance identifier so
// multiple indicators can coexist in one document.
func WithUniqueElementID() Option {
	return func(c *config) { c.elementID = "envbadge-" + uuid.NewString() }
}

// WithTheme overlays the theme's colors and labels onto the configuration.
func WithTheme(t Theme) Option {
	return func(c *config) {
		for env, entry := range t.Environments {
			if entry.Color != "" {
				c.colors[env] = entry.Color
			}
			if entry.Label != "" {
				c.labels[env] = entry.Label
			}
		}
	}
}

// environMap returns the variable map detection reads from, falling back to
// the process environment.
func (c *config) environMap() map[string]string {
	if c.environ != nil {
		return c.environ
	}
	return env.ToMap(os.Environ())
}

// hostname returns the host location's hostname, or "" without a window.
func (c *config) hostname() string {
	if c.window == nil {
		return ""
	}
	return c.window.Location().Hostname()
}

// userAgent returns the host user agent, or "" without a window. Read for
// diagnostics only, never for detection.
func (c *config) userAgent() string {
	if c.window == nil {
		return ""
	}
	return c.window.Navigator().UserAgent()
}

// debugLogger returns the debug side channel: the configured logger when
// debug is on, a discarding logger otherwise.
func (c *config) debugLogger() *slog.Logger {
	if !c.debug {
		return logger.Noop()
	}
	if c.log != nil {
		return c.log
	}
	return logger.New(logger.WithDevelopment("envbadge"))
}

// envConfig maps ENVBADGE_* variables onto indicator options.
type envConfig struct {
	Position    string `env:"ENVBADGE_POSITION"`
	Size        string `env:"ENVBADGE_SIZE"`
	Environment string `env:"ENVBADGE_ENVIRONMENT"`
	AutoDetect  *bool  `env:"ENVBADGE_AUTO_DETECT"`
	Enabled     *bool  `env:"ENVBADGE_ENABLED"`
	Debug       *bool  `env:"ENVBADGE_DEBUG"`
}

// FromEnv builds indicator options from ENVBADGE_* environment variables,
// loading a .env file first when one is present. Unset variables produce no
// options, so defaults and explicit options stay in effect.
func FromEnv() ([]Option, error) {
	// The .env file might not exist and that's ok.
	_ = godotenv.Load()

	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		return nil, errors.Join(ErrParsingConfig, err)
	}

	var opts []Option
	if ec.Position != "" {
		p := Position(ec.Position)
		if !p.Valid() {
			return nil, fmt.Errorf("%w: position %q", ErrInvalidConfig, ec.Position)
		}
		opts = append(opts, WithPosition(p))
	}
	if ec.Size != "" {
		s := Size(ec.Size)
		if !s.Valid() {
			return nil, fmt.Errorf("%w: size %q", ErrInvalidConfig, ec.Size)
		}
		opts = append(opts, WithSize(s))
	}
	if ec.Environment != "" {
		override, ok := environment.Parse(ec.Environment)
		if !ok {
			return nil, fmt.Errorf("%w: environment %q", ErrInvalidConfig, ec.Environment)
		}
		opts = append(opts, WithOverride(override))
	}
	if ec.AutoDetect != nil {
		opts = append(opts, WithAutoDetect(*ec.AutoDetect))
	}
	if ec.Enabled != nil {
		opts = append(opts, WithEnabled(*ec.Enabled))
	}
	if ec.Debug != nil {
		opts = append(opts, WithDebug(*ec.Debug))
	}
	return opts, nil
}
