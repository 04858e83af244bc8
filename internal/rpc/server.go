// Package rpc exposes the project, column and board services over HTTP.
//
// Every operation is a POST to /kanban.v1.KanbanService/<Method> with a flat
// camelCase JSON body, the same shape the Connect JSON protocol uses, so the
// browser client can call it without generated stubs.
package rpc

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/thenoetrevino/kanban/internal/app"
	"github.com/thenoetrevino/kanban/internal/daemon"
)

// ServicePath prefixes every RPC route
const ServicePath = "/kanban.v1.KanbanService/"

// HubStats is the part of the event hub the server reports on
type HubStats interface {
	Metrics() daemon.MetricsSnapshot
}

// Server routes RPC calls to the application services
type Server struct {
	app     *app.App
	hub     HubStats
	logger  *slog.Logger
	origins []string
}

// Option configures a Server
type Option func(*Server)

// WithHub enables GET /metrics
func WithHub(h HubStats) Option {
	return func(s *Server) {
		s.hub = h
	}
}

// WithLogger sets the request logger
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithAllowedOrigins enables CORS for browser clients served from origins
func WithAllowedOrigins(origins []string) Option {
	return func(s *Server) {
		s.origins = origins
	}
}

// New creates a server over the services of a
func New(a *app.App, opts ...Option) *Server {
	s := &Server{
		app:    a,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("component", "rpc")
	return s
}

// Handler builds the gin engine with every route registered
func (s *Server) Handler() http.Handler {
	r := gin.New()
	r.Use(requestLogger(s.logger), recovery(s.logger))
	if len(s.origins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:  s.origins,
			AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowHeaders:  []string{"Content-Type", "Connect-Protocol-Version", "Connect-Timeout-Ms"},
			ExposeHeaders: []string{"Content-Length"},
			MaxAge:        12 * time.Hour,
		}))
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", s.metrics)

	svc := r.Group(ServicePath)
	{
		svc.POST("CreateProject", handle(s, s.createProject))
		svc.POST("GetProject", handle(s, s.getProject))
		svc.POST("ListProjects", handle(s, s.listProjects))
		svc.POST("UpdateProject", handle(s, s.updateProject))
		svc.POST("DeleteProject", handle(s, s.deleteProject))
		svc.POST("Tree", handle(s, s.tree))

		svc.POST("CreateColumn", handle(s, s.createColumn))
		svc.POST("GetColumn", handle(s, s.getColumn))
		svc.POST("ListColumns", handle(s, s.listColumns))
		svc.POST("ListOrderedColumns", handle(s, s.listOrderedColumns))
		svc.POST("ReorderColumn", handle(s, s.reorderColumn))
		svc.POST("UpdateColumn", handle(s, s.updateColumn))
		svc.POST("DeleteColumn", handle(s, s.deleteColumn))

		svc.POST("CreateBoard", handle(s, s.createBoard))
		svc.POST("GetBoard", handle(s, s.getBoard))
		svc.POST("ListBoards", handle(s, s.listBoards))
		svc.POST("ListOrderedBoards", handle(s, s.listOrderedBoards))
		svc.POST("ReorderBoard", handle(s, s.reorderBoard))
		svc.POST("UpdateBoard", handle(s, s.updateBoard))
		svc.POST("DeleteBoard", handle(s, s.deleteBoard))
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, Status{Code: CodeNotFound, Message: "no such method: " + c.Request.URL.Path})
	})
	return r
}

func (s *Server) metrics(c *gin.Context) {
	if s.hub == nil {
		c.JSON(http.StatusServiceUnavailable, Status{Code: CodeUnavailable, Message: "event hub not running"})
		return
	}
	c.JSON(http.StatusOK, s.hub.Metrics())
}
