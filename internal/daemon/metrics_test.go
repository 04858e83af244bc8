package daemon

import (
	"encoding/json"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestNewMetrics(t *testing.T) {
	snap := NewMetrics().GetSnapshot()

	if snap.EventsSent != 0 || snap.EventsReceived != 0 || snap.EventsDropped != 0 || snap.Broadcasts != 0 {
		t.Errorf("Expected zero counters, got %+v", snap)
	}
	if snap.ConnectedClients != 0 {
		t.Errorf("Expected no clients, got %d", snap.ConnectedClients)
	}
	if time.Since(snap.StartTime) > time.Second {
		t.Errorf("Expected StartTime to be recent, got %v", snap.StartTime)
	}
}

func TestMetrics_Counters(t *testing.T) {
	m := NewMetrics()

	m.IncEventsSent()
	m.IncEventsSent()
	m.IncEventsReceived()
	m.IncEventsDropped()
	m.IncBroadcasts()
	m.IncBroadcasts()
	m.IncBroadcasts()
	m.SetConnectedClients(4)
	m.SetConnectedClients(2)

	snap := m.GetSnapshot()
	if snap.EventsSent != 2 {
		t.Errorf("Expected EventsSent 2, got %d", snap.EventsSent)
	}
	if snap.EventsReceived != 1 {
		t.Errorf("Expected EventsReceived 1, got %d", snap.EventsReceived)
	}
	if snap.EventsDropped != 1 {
		t.Errorf("Expected EventsDropped 1, got %d", snap.EventsDropped)
	}
	if snap.Broadcasts != 3 {
		t.Errorf("Expected Broadcasts 3, got %d", snap.Broadcasts)
	}
	if snap.ConnectedClients != 2 {
		t.Errorf("Expected ConnectedClients to hold the last value 2, got %d", snap.ConnectedClients)
	}
}

func TestMetricsSnapshot_IsACopy(t *testing.T) {
	m := NewMetrics()
	m.IncEventsSent()
	snap := m.GetSnapshot()

	m.IncEventsSent()
	if snap.EventsSent != 1 {
		t.Errorf("Snapshot changed after later increments: %d", snap.EventsSent)
	}
}

func TestMetricsSnapshot_JSON(t *testing.T) {
	data, err := json.Marshal(NewMetrics().GetSnapshot())
	if err != nil {
		t.Fatalf("Failed to marshal snapshot: %v", err)
	}
	for _, key := range []string{"eventsSent", "eventsReceived", "eventsDropped", "broadcasts", "connectedClients", "startTime", "uptime"} {
		if !strings.Contains(string(data), `"`+key+`"`) {
			t.Errorf("Expected key %q in %s", key, data)
		}
	}
}

func TestMetrics_Concurrent(t *testing.T) {
	m := NewMetrics()
	const workers, perWorker = 50, 200

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(n int32) {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				m.IncEventsSent()
				m.IncBroadcasts()
				m.SetConnectedClients(n)
				_ = m.GetSnapshot()
			}
		}(int32(i))
	}
	wg.Wait()

	snap := m.GetSnapshot()
	want := int64(workers * perWorker)
	if snap.EventsSent != want || snap.Broadcasts != want {
		t.Errorf("Expected %d sends and broadcasts, got %d and %d", want, snap.EventsSent, snap.Broadcasts)
	}
	if snap.ConnectedClients < 0 || snap.ConnectedClients >= workers {
		t.Errorf("ConnectedClients out of range: %d", snap.ConnectedClients)
	}
}
