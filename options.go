package mainframer

import (
	"github.com/ntsk/mainframer/config"

	"go.uber.org/fx"
)

// Options holds configuration settings for the application.
type Options struct {
	Modules   []fx.Option
	LogLevel  string
	LogFormat string
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithModules adds Fx modules to the application.
func WithModules(modules ...fx.Option) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, modules...)
	}
}

// WithConfigFile adds the config module for the given file path, making the
// loaded *config.Intermediate available to every other module. The file is
// read and validated during startup; a bad config file fails the whole
// application start.
func WithConfigFile(path string) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, config.NewModule(path))
	}
}

// WithLogLevel sets the log level for the application.
// Valid levels are: "debug", "info", "warn", "error".
// If not set or invalid, defaults to "info".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}

// WithLogFormat sets the log output format for the application.
// Valid formats are: "text" and "json".
// If not set or invalid, defaults to "text".
func WithLogFormat(format string) Option {
	return func(opts *Options) {
		opts.LogFormat = format
	}
}
