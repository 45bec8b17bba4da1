// Package app provides the application context and dependency management
// for the brainzgap CLI. It centralizes configuration, logging, and
// scanner construction so commands stay thin.
package app

import (
	"github.com/rs/zerolog"

	"github.com/quaverlabs/brainzgap"
	"github.com/quaverlabs/brainzgap/pkg/errors"
)

// App represents the brainzgap application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger
}

// New creates a new App instance with the given version information.
// The app loads configuration from files, environment, and .env files;
// cobra flags override it later during Execute.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, errors.NewConfigError("app", "failed to load configuration", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// Scanner builds a scanner from the current configuration. Each call
// constructs a fresh instance so flag changes between commands in
// tests take effect.
func (a *App) Scanner(opts ...brainzgap.Option) (*brainzgap.Scanner, error) {
	base := []brainzgap.Option{
		brainzgap.WithCategory(a.config.Category),
		brainzgap.WithLanguage(a.config.Language),
		brainzgap.WithProperty(a.config.Property),
		brainzgap.WithPause(a.config.Pause),
		brainzgap.WithLogger(a.logger),
	}
	if a.config.UserAgent != "" {
		base = append(base, brainzgap.WithUserAgent(a.config.UserAgent))
	}
	if a.config.Timeout > 0 {
		base = append(base, brainzgap.WithTimeout(a.config.Timeout))
	}

	scanner, err := brainzgap.New(append(base, opts...)...)
	if err != nil {
		return nil, errors.NewConfigError("scanner", "invalid scan configuration", err)
	}
	return scanner, nil
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}
