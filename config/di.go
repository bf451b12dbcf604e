package config

import (
	"log/slog"

	"go.uber.org/fx"
)

// NewModule creates an Fx module that loads the config file at path and
// provides the resulting *Intermediate to the application graph.
//
// Loading happens when the container instantiates the value, so an invalid
// config file surfaces as a provide error during startup rather than at
// first use.
func NewModule(path string) fx.Option {
	return fx.Module("config",
		fx.Provide(func() (*Intermediate, error) {
			cfg, err := Load(path)
			if err != nil {
				return nil, err
			}

			slog.Debug("config file loaded", slog.String("path", path))

			return cfg, nil
		}),
	)
}
