package daemon

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/thenoetrevino/kanban/internal/events"
)

// ErrServerClosed is returned by SendEvent once Shutdown has run
var ErrServerClosed = errors.New("event hub closed")

// subscriber is one connected watcher
type subscriber struct {
	conn         net.Conn
	send         chan events.Message
	subscription events.SubscribeMessage
	lastPong     time.Time
	mu           sync.Mutex // protects subscription and lastPong
	closeOnce    sync.Once
}

func (c *subscriber) wants(e events.Event) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return e.Matches(c.subscription.ProjectID)
}

func (c *subscriber) sinceLastPong(now time.Time) time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return now.Sub(c.lastPong)
}

// Server is the change notification hub.
// Mutations committed by the RPC server or the CLI arrive through SendEvent or
// the socket, get a sequence id and fan out to every matching subscriber.
type Server struct {
	socketPath string
	listener   net.Listener
	logger     *slog.Logger

	clients map[*subscriber]bool
	mu      sync.RWMutex

	ctx    context.Context
	cancel context.CancelFunc

	broadcast        chan events.Event
	broadcastBuffer  int
	clientBufferSize int
	pingInterval     time.Duration
	staleAfter       time.Duration

	metrics         *Metrics
	sequenceCounter atomic.Int64
	shutdownOnce    sync.Once
}

// Option configures a Server
type Option func(*Server)

// WithLogger sets the hub logger
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithBuffers sets the broadcast queue and per-subscriber queue sizes.
// Non-positive values keep the defaults.
func WithBuffers(broadcast, client int) Option {
	return func(s *Server) {
		if broadcast > 0 {
			s.broadcastBuffer = broadcast
		}
		if client > 0 {
			s.clientBufferSize = client
		}
	}
}

// WithHealthCheck sets how often subscribers are pinged and how long a
// subscriber may stay silent before it is dropped.
func WithHealthCheck(ping, staleAfter time.Duration) Option {
	return func(s *Server) {
		if ping > 0 {
			s.pingInterval = ping
		}
		if staleAfter > 0 {
			s.staleAfter = staleAfter
		}
	}
}

// NewServer creates the hub and starts listening on socketPath.
// A stale socket file left by a crashed server is removed first.
func NewServer(socketPath string, opts ...Option) (*Server, error) {
	if dir := filepath.Dir(socketPath); dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("failed to create socket directory: %w", err)
		}
	}

	if _, err := os.Stat(socketPath); err == nil {
		if err := os.Remove(socketPath); err != nil {
			return nil, fmt.Errorf("failed to remove stale socket: %w", err)
		}
	}

	lc := net.ListenConfig{}
	listener, err := lc.Listen(context.Background(), "unix", socketPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create socket listener: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &Server{
		socketPath:       socketPath,
		listener:         listener,
		logger:           slog.Default(),
		clients:          make(map[*subscriber]bool),
		ctx:              ctx,
		cancel:           cancel,
		broadcastBuffer:  100,
		clientBufferSize: 10,
		pingInterval:     30 * time.Second,
		staleAfter:       90 * time.Second,
		metrics:          NewMetrics(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.broadcast = make(chan events.Event, s.broadcastBuffer)
	s.logger = s.logger.With("component", "hub")

	return s, nil
}

// SocketPath returns the path subscribers dial
func (s *Server) SocketPath() string {
	return s.socketPath
}

// Start runs the accept, broadcast and health loops until ctx is done or
// Shutdown is called, then shuts the hub down.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("event hub listening", "socket", s.socketPath)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-s.ctx.Done():
			cancel()
		case <-runCtx.Done():
		}
	}()

	acceptErr := make(chan error, 1)
	go func() { acceptErr <- s.acceptLoop(runCtx) }()
	go s.broadcastLoop(runCtx)
	go s.monitorHealth(runCtx)

	select {
	case <-runCtx.Done():
	case err := <-acceptErr:
		if err != nil {
			s.logger.Error("accept loop stopped", "error", err)
		}
	}

	return s.Shutdown()
}

func (s *Server) acceptLoop(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		// wake up periodically to notice cancellation
		if ul, ok := s.listener.(*net.UnixListener); ok {
			if err := ul.SetDeadline(time.Now().Add(time.Second)); err != nil {
				s.logger.Debug("failed to set listener deadline", "error", err)
			}
		}

		conn, err := s.listener.Accept()
		if err != nil {
			var netErr net.Error
			if errors.As(err, &netErr) && netErr.Timeout() {
				continue
			}
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return nil
			}
			return fmt.Errorf("accept error: %w", err)
		}

		c := &subscriber{
			conn:     conn,
			send:     make(chan events.Message, s.clientBufferSize),
			lastPong: time.Now(),
		}

		s.mu.Lock()
		s.clients[c] = true
		s.mu.Unlock()
		s.updateClientCount()

		s.logger.Debug("subscriber connected", "clients", s.ClientCount())

		go s.handleClient(c)
		go s.clientWriter(c)
	}
}

func (s *Server) broadcastLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return

		case event := <-s.broadcast:
			event.SequenceID = s.sequenceCounter.Add(1)
			s.metrics.IncBroadcasts()

			msg := events.Message{
				Version: events.ProtocolVersion,
				Type:    "event",
				Event:   &event,
			}

			s.mu.RLock()
			for c := range s.clients {
				if !c.wants(event) {
					continue
				}
				if !s.sendToClient(c, msg) {
					s.metrics.IncEventsDropped()
					s.logger.Warn("subscriber queue full, event dropped",
						"project_id", event.ProjectID,
						"sequence", event.SequenceID)
				}
			}
			s.mu.RUnlock()
		}
	}
}

func (s *Server) handleClient(c *subscriber) {
	defer func() {
		s.removeClient(c)
		s.logger.Debug("subscriber disconnected", "clients", s.ClientCount())
	}()

	decoder := json.NewDecoder(c.conn)
	for {
		var msg events.Message
		if err := decoder.Decode(&msg); err != nil {
			return
		}

		if msg.Version != 0 && msg.Version != events.ProtocolVersion {
			s.logger.Warn("protocol version mismatch", "got", msg.Version, "want", events.ProtocolVersion)
		}

		switch msg.Type {
		case "event":
			if msg.Event == nil {
				continue
			}
			s.metrics.IncEventsReceived()
			if err := s.SendEvent(*msg.Event); err != nil {
				s.logger.Warn("failed to queue event from subscriber", "error", err)
			}

		case "subscribe":
			if msg.Subscribe != nil {
				c.mu.Lock()
				c.subscription = *msg.Subscribe
				c.mu.Unlock()
				s.logger.Debug("subscriber filter changed", "project_id", msg.Subscribe.ProjectID)
			}

		case "pong":
			c.mu.Lock()
			c.lastPong = time.Now()
			c.mu.Unlock()
		}
	}
}

func (s *Server) clientWriter(c *subscriber) {
	encoder := json.NewEncoder(c.conn)
	for msg := range c.send {
		if err := encoder.Encode(msg); err != nil {
			return
		}
	}
}

// monitorHealth pings subscribers and drops the ones that stopped answering
func (s *Server) monitorHealth(ctx context.Context) {
	pingTicker := time.NewTicker(s.pingInterval)
	defer pingTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case now := <-pingTicker.C:
			var stale []*subscriber
			ping := events.Message{Version: events.ProtocolVersion, Type: "ping"}

			s.mu.RLock()
			for c := range s.clients {
				if c.sinceLastPong(now) > s.staleAfter {
					stale = append(stale, c)
					continue
				}
				if !s.sendToClient(c, ping) {
					s.logger.Debug("failed to queue ping, subscriber queue full")
				}
			}
			s.mu.RUnlock()

			// removal takes the write lock
			for _, c := range stale {
				s.logger.Info("dropping stale subscriber", "silent_for", c.sinceLastPong(now).Round(time.Second))
				s.removeClient(c)
			}
		}
	}
}

// SendEvent queues an event for fan-out without blocking.
// It lets the server process publish in-process, like an events.Client would.
func (s *Server) SendEvent(event events.Event) error {
	if s.ctx.Err() != nil {
		return ErrServerClosed
	}
	if event.Type == "" {
		event.Type = events.EventDatabaseChanged
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	select {
	case s.broadcast <- event:
		return nil
	default:
		s.metrics.IncEventsDropped()
		return fmt.Errorf("broadcast queue full")
	}
}

// Metrics returns a point-in-time copy of the hub counters
func (s *Server) Metrics() MetricsSnapshot {
	return s.metrics.GetSnapshot()
}

// Shutdown stops the loops, disconnects every subscriber and removes the
// socket file. It is safe to call more than once.
func (s *Server) Shutdown() error {
	s.shutdownOnce.Do(func() {
		s.logger.Info("event hub shutting down")
		s.cancel()

		if err := s.listener.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
			s.logger.Debug("error closing listener", "error", err)
		}

		s.mu.Lock()
		clients := s.clients
		s.clients = make(map[*subscriber]bool)
		s.mu.Unlock()

		for c := range clients {
			s.closeClient(c)
		}
		s.updateClientCount()

		if err := os.Remove(s.socketPath); err != nil && !os.IsNotExist(err) {
			s.logger.Warn("failed to remove socket file", "error", err)
		}
	})
	return nil
}

// ClientCount returns the number of connected subscribers
func (s *Server) ClientCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

func (s *Server) updateClientCount() {
	s.metrics.SetConnectedClients(int32(s.ClientCount()))
}

func (s *Server) removeClient(c *subscriber) {
	s.mu.Lock()
	delete(s.clients, c)
	s.mu.Unlock()

	s.closeClient(c)
	s.updateClientCount()
}

// closeClient closes the connection and the send queue exactly once.
// c must already be gone from s.clients.
func (s *Server) closeClient(c *subscriber) {
	c.closeOnce.Do(func() {
		if err := c.conn.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
			s.logger.Debug("error closing subscriber connection", "error", err)
		}
		close(c.send)
	})
}

// sendToClient queues msg for c without blocking; false means the queue is full
// Callers hold s.mu, so c is still registered and its queue is open.
func (s *Server) sendToClient(c *subscriber, msg events.Message) bool {
	select {
	case c.send <- msg:
		s.metrics.IncEventsSent()
		return true
	default:
		return false
	}
}
