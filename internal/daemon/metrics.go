package daemon

import (
	"sync/atomic"
	"time"
)

// Metrics counts hub traffic; every field is safe for concurrent use
type Metrics struct {
	eventsSent       atomic.Int64
	eventsReceived   atomic.Int64
	eventsDropped    atomic.Int64
	broadcasts       atomic.Int64
	connectedClients atomic.Int32
	startTime        time.Time
}

// NewMetrics starts the uptime clock
func NewMetrics() *Metrics {
	return &Metrics{startTime: time.Now()}
}

// IncEventsSent counts one message queued for a subscriber
func (m *Metrics) IncEventsSent() { m.eventsSent.Add(1) }

// IncEventsReceived counts one event published over the socket
func (m *Metrics) IncEventsReceived() { m.eventsReceived.Add(1) }

// IncEventsDropped counts one event lost to a full queue
func (m *Metrics) IncEventsDropped() { m.eventsDropped.Add(1) }

// IncBroadcasts counts one event fanned out to subscribers
func (m *Metrics) IncBroadcasts() { m.broadcasts.Add(1) }

// SetConnectedClients records the current subscriber count
func (m *Metrics) SetConnectedClients(count int32) { m.connectedClients.Store(count) }

// MetricsSnapshot is served as JSON on GET /metrics
type MetricsSnapshot struct {
	EventsSent       int64     `json:"eventsSent"`
	EventsReceived   int64     `json:"eventsReceived"`
	EventsDropped    int64     `json:"eventsDropped"`
	Broadcasts       int64     `json:"broadcasts"`
	ConnectedClients int32     `json:"connectedClients"`
	StartTime        time.Time `json:"startTime"`
	Uptime           string    `json:"uptime"`
}

// GetSnapshot copies the current counters
func (m *Metrics) GetSnapshot() MetricsSnapshot {
	return MetricsSnapshot{
		EventsSent:       m.eventsSent.Load(),
		EventsReceived:   m.eventsReceived.Load(),
		EventsDropped:    m.eventsDropped.Load(),
		Broadcasts:       m.broadcasts.Load(),
		ConnectedClients: m.connectedClients.Load(),
		StartTime:        m.startTime,
		Uptime:           time.Since(m.startTime).Round(time.Second).String(),
	}
}
