package cli

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/app"
	"github.com/thenoetrevino/kanban/internal/config"
)

type contextKey string

const (
	appKey    contextKey = "app"
	configKey contextKey = "config"
)

// WithApp makes GetCLIFromContext reuse a, typically an App over a test database
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// WithConfig stores the loaded configuration for subcommands
func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// ConfigFromContext returns the configuration stored by WithConfig, or the
// result of config.Load when there is none.
func ConfigFromContext(ctx context.Context) (*config.Config, error) {
	if cfg, ok := ctx.Value(configKey).(*config.Config); ok && cfg != nil {
		return cfg, nil
	}
	return config.Load()
}

// GetCLIFromContext returns a CLI over the injected App if there is one,
// otherwise it opens the configured database.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	cfg, err := ConfigFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if a, ok := ctx.Value(appKey).(*app.App); ok && a != nil {
		return &CLI{App: a, Config: cfg}, nil
	}
	return NewCLI(ctx, cfg)
}

// Open returns the CLI for cmd and a func that closes it. Initialization
// failures are reported through f before they are returned.
func Open(cmd *cobra.Command, f *OutputFormatter) (*CLI, func(), error) {
	cliInstance, err := GetCLIFromContext(cmd.Context())
	if err != nil {
		f.report("INITIALIZATION_ERROR", err.Error(), "")
		return nil, nil, &CodeError{Code: ExitError, Err: err}
	}
	return cliInstance, func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("failed to close CLI", "error", err)
		}
	}, nil
}
