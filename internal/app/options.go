package app

import (
	"log/slog"

	"github.com/thenoetrevino/kanban/internal/events"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	eventClient events.Publisher
	logger      *slog.Logger
}

// WithEventPublisher sets where committed mutations are announced.
// Without it the services publish nothing.
func WithEventPublisher(ec events.Publisher) Option {
	return func(cfg *appConfig) {
		cfg.eventClient = ec
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}
