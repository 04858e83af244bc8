package events

import (
	"time"

	"github.com/thenoetrevino/kanban/internal/types"
)

// ProtocolVersion is bumped when the wire format changes
const ProtocolVersion = 1

// EventType indicates what kind of change occurred
type EventType string

const (
	EventDatabaseChanged EventType = "db_changed"
	EventPing            EventType = "ping"
	EventPong            EventType = "pong"
)

// Event represents a database change notification
type Event struct {
	Type       EventType       `json:"type"`
	ProjectID  types.ProjectID `json:"projectId,omitempty"` // empty = all projects
	Op         string          `json:"op,omitempty"`        // e.g. "board.moved"; empty when several ops were batched
	Timestamp  time.Time       `json:"timestamp"`
	SequenceID int64           `json:"sequenceId,omitempty"` // assigned by the daemon
}

// Changed builds a db_changed event for one project
func Changed(projectID types.ProjectID, op string) Event {
	return Event{
		Type:      EventDatabaseChanged,
		ProjectID: projectID,
		Op:        op,
		Timestamp: time.Now(),
	}
}

// Matches reports whether a subscriber to projectID should see the event
func (e Event) Matches(projectID types.ProjectID) bool {
	return e.ProjectID == "" || projectID == "" || e.ProjectID == projectID
}

// SubscribeMessage is sent by clients to subscribe to specific project updates
type SubscribeMessage struct {
	ProjectID types.ProjectID `json:"projectId,omitempty"` // empty = all projects
}

// Message wraps events and control messages for wire protocol
type Message struct {
	Version   int               `json:"version,omitempty"`
	Type      string            `json:"type"` // "event", "subscribe", "ping", "pong"
	Event     *Event            `json:"event,omitempty"`
	Subscribe *SubscribeMessage `json:"subscribe,omitempty"`
}
