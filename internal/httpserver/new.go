package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"task-intelligence/internal/assistant"
	"task-intelligence/internal/middleware"
	"task-intelligence/pkg/log"
)

const defaultShutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	host            string
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration
	storage         Pinger

	// Assistant domain
	assistantUC assistant.UseCase
	middleware  middleware.Config
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Host            string
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	// Storage is pinged by /ready. Nil skips the check.
	Storage Pinger

	// Assistant domain
	AssistantUC assistant.UseCase
	Middleware  middleware.Config
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		host:            cfg.Host,
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		storage:         cfg.Storage,
		assistantUC:     cfg.AssistantUC,
		middleware:      cfg.Middleware,
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = defaultShutdownTimeout
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.assistantUC == nil {
		return errors.New("assistant usecase is required")
	}
	return nil
}
