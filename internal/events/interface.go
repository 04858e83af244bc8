package events

import (
	"context"

	"github.com/thenoetrevino/kanban/internal/types"
)

// Publisher is the one thing services need: a way to announce a change.
// Both the socket Client and the in-process daemon implement it.
type Publisher interface {
	SendEvent(event Event) error
}

// EventPublisher defines the interface for sending and receiving events.
// This interface allows for loose coupling and easier testing by depending
// on behavior rather than concrete implementation.
type EventPublisher interface {
	Publisher

	// Connect establishes a connection to the daemon socket
	Connect(ctx context.Context) error

	// Listen starts listening for events from the daemon
	Listen(ctx context.Context) (<-chan Event, error)

	// Subscribe changes the subscription to a specific project
	Subscribe(projectID types.ProjectID) error

	// Close closes the connection to the daemon and stops all goroutines
	Close() error
}

// Compile-time verification that *Client implements EventPublisher
var _ EventPublisher = (*Client)(nil)
