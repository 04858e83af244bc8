package ordering

import (
	"context"
	"errors"
	"sync"
)

// memTable is a Table backed by a slice, using Apply for every write.
type memTable struct {
	mu      sync.Mutex
	rows    []Node[string, string]
	failOn  *Step
	history []Result[string, string]
}

func (m *memTable) insert(group, id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows = append(m.rows, Node[string, string]{ID: id, Group: group})
}

func (m *memTable) Get(_ context.Context, id string) (Node[string, string], error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, n := range m.rows {
		if n.ID == id {
			return n, nil
		}
	}
	return Node[string, string]{}, ErrNodeNotFound
}

func (m *memTable) Members(_ context.Context, group string) ([]Node[string, string], error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Node[string, string]
	for _, n := range m.rows {
		if n.Group == group {
			out = append(out, n)
		}
	}
	return out, nil
}

var errInjected = errors.New("injected store failure")

func (m *memTable) Exec(_ context.Context, w Write[string, string]) (Outcome, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failOn != nil && *m.failOn == w.Step {
		return Failed, errInjected
	}
	rows, results := Apply(m.rows, []Write[string, string]{w})
	m.rows = rows
	m.history = append(m.history, results...)
	return results[0].Outcome, nil
}

// order returns the ids of group in chain order
func (m *memTable) order(group string) ([]string, error) {
	rows, _ := m.Members(context.Background(), group)
	ordered, err := Reconstruct(rows)
	return IDs(ordered), err
}

// build creates a table whose group holds ids in display order
func build(group string, ids ...string) *memTable {
	m := &memTable{}
	for i, id := range ids {
		n := Node[string, string]{ID: id, Group: group}
		if i+1 < len(ids) {
			n.Next = ptr(ids[i+1])
		}
		m.rows = append(m.rows, n)
	}
	return m
}
