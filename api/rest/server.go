// Package rest provides the HTTP API over the expression calculator.
package rest

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberrecover "github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"yqhp/calculator/internal/config"
	"yqhp/calculator/internal/expression"
	"yqhp/calculator/pkg/jsonutil"
	"yqhp/calculator/pkg/logger"
)

// Server represents the REST API server.
type Server struct {
	app    *fiber.App
	calc   expression.Calculator
	config config.ServerConfig
	logger *zap.Logger
	stats  *Stats
}

// NewServer creates a new REST API server. A nil calculator uses the default
// pipeline and a nil logger discards everything.
func NewServer(calc expression.Calculator, cfg config.ServerConfig, log *zap.Logger) *Server {
	if calc == nil {
		calc = expression.NewCalculator()
	}
	if log == nil {
		log = zap.NewNop()
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:           cfg.ReadTimeout,
		WriteTimeout:          cfg.WriteTimeout,
		BodyLimit:             cfg.BodyLimit,
		ErrorHandler:          customErrorHandler,
		AppName:               "Calculator API",
		DisableStartupMessage: true,
		JSONEncoder:           jsonutil.Marshal,
		JSONDecoder:           jsonutil.Unmarshal,
	})

	server := &Server{
		app:    app,
		calc:   calc,
		config: cfg,
		logger: log,
		stats:  NewStats(),
	}

	server.setupMiddleware()
	server.setupRoutes()

	return server
}

// setupMiddleware configures middleware for the server.
func (s *Server) setupMiddleware() {
	// 捕获 handler 中的 panic
	s.app.Use(fiberrecover.New(fiberrecover.Config{
		EnableStackTrace: true,
	}))

	s.app.Use(logger.Middleware(s.logger))

	if s.config.EnableCORS {
		s.app.Use(cors.New(cors.Config{
			AllowOrigins:     "*",
			AllowMethods:     "GET,POST,OPTIONS",
			AllowHeaders:     "Origin,Content-Type,Accept",
			AllowCredentials: false,
			MaxAge:           86400,
		}))
	}
}

// setupRoutes configures the API routes.
func (s *Server) setupRoutes() {
	s.app.Get("/health", s.healthCheck)

	api := s.app.Group("/api/v1")
	api.Get("/health", s.healthCheck)
	api.Post("/evaluate", s.evaluate)
	api.Get("/stats", s.getStats)
}

// Start starts the REST API server.
func (s *Server) Start() error {
	return s.app.Listen(s.config.Address)
}

// StartWithContext starts the REST API server and shuts it down when ctx is
// cancelled.
func (s *Server) StartWithContext(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		errCh <- s.app.Listen(s.config.Address)
	}()

	select {
	case <-ctx.Done():
		return s.Shutdown()
	case err := <-errCh:
		return err
	}
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// ShutdownWithTimeout gracefully shuts down the server with a timeout.
func (s *Server) ShutdownWithTimeout(timeout time.Duration) error {
	return s.app.ShutdownWithTimeout(timeout)
}

// App returns the underlying Fiber app.
func (s *Server) App() *fiber.App {
	return s.app
}

// Stats returns the evaluation statistics collected so far.
func (s *Server) Stats() *Stats {
	return s.stats
}

// customErrorHandler handles errors returned by handlers.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := MsgServerError

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(Response{
		Code:    code,
		Message: message,
	})
}
