package watch

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/kanban/internal/events"
	"github.com/thenoetrevino/kanban/internal/testutil"
	"github.com/thenoetrevino/kanban/internal/types"
)

func feed(evs ...events.Event) <-chan events.Event {
	ch := make(chan events.Event, len(evs))
	for _, ev := range evs {
		ch <- ev
	}
	close(ch)
	return ch
}

func TestStream_HumanReadable(t *testing.T) {
	project := types.NewProjectID()
	ev := events.Changed(project, "board.moved")
	ev.SequenceID = 7

	var out bytes.Buffer
	require.NoError(t, Stream(context.Background(), feed(ev), &out, false))

	line := out.String()
	assert.Contains(t, line, "#7")
	assert.Contains(t, line, "board.moved")
	assert.Contains(t, line, project.String())
}

func TestStream_BatchedEventShowsType(t *testing.T) {
	ev := events.Event{Type: events.EventDatabaseChanged, Timestamp: time.Now(), SequenceID: 1}

	var out bytes.Buffer
	require.NoError(t, Stream(context.Background(), feed(ev), &out, false))

	assert.Contains(t, out.String(), "db_changed")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out.String()), "*"))
}

func TestStream_JSONLines(t *testing.T) {
	a := events.Changed(types.NewProjectID(), "column.created")
	b := events.Changed(types.NewProjectID(), "column.deleted")

	var out bytes.Buffer
	require.NoError(t, Stream(context.Background(), feed(a, b), &out, true))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)

	var got events.Event
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &got))
	assert.Equal(t, "column.deleted", got.Op)
	assert.Equal(t, b.ProjectID, got.ProjectID)
}

func TestStream_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := Stream(ctx, make(chan events.Event), &out, false)
	assert.NoError(t, err)
	assert.Empty(t, out.String())
}

// lockedBuffer lets the test read what Follow writes from another goroutine
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestFollow_StreamsHubEvents(t *testing.T) {
	server, socket := testutil.SetupTestDaemon(t)
	client := testutil.SetupTestClient(t, socket)
	require.True(t, testutil.WaitForCondition(t, func() bool {
		return server.ClientCount() == 1
	}, 2*time.Second, "client connected"))

	project := types.NewProjectID()
	ctx, cancel := context.WithCancel(context.Background())
	var out lockedBuffer
	done := make(chan error, 1)
	go func() { done <- Follow(ctx, client, project, &out, true) }()

	ok := testutil.WaitForCondition(t, func() bool {
		require.NoError(t, server.SendEvent(events.Changed(project, "board.moved")))
		return strings.Contains(out.String(), "board.moved")
	}, 2*time.Second, "event streamed")
	require.True(t, ok)

	line := strings.SplitN(out.String(), "\n", 2)[0]
	var ev events.Event
	require.NoError(t, json.Unmarshal([]byte(line), &ev))
	assert.Equal(t, project, ev.ProjectID)
	assert.Positive(t, ev.SequenceID)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Follow did not return after cancel")
	}
}
