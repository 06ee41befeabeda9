package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/do"
	"github.com/sirupsen/logrus"
	"github.com/zhulik/tally/internal/core"
)

const (
	ReadHeaderTimeout = 5 * time.Second
	ShutdownTimeout   = 10 * time.Second
)

type Server struct {
	Router *gin.Engine
	Logger logrus.FieldLogger

	server http.Server
}

func NewServer(injector *do.Injector, component string) (*Server, error) {
	config, err := do.Invoke[core.Config](injector)
	if err != nil {
		return nil, err
	}

	logger, err := do.Invoke[logrus.FieldLogger](injector)
	if err != nil {
		return nil, err
	}

	return New(logger.WithField("component", component), config.HTTPPort()), nil
}

func New(logger logrus.FieldLogger, port int) *Server {
	defer logger.Info("Server created.")

	gin.SetMode(gin.ReleaseMode)

	router := NewRouter(logger)

	return &Server{
		Router: router,
		Logger: logger,
		server: http.Server{
			Addr:              fmt.Sprintf("0.0.0.0:%d", port),
			ReadHeaderTimeout: ReadHeaderTimeout,
			Handler:           router,
		},
	}
}

func (s *Server) HealthCheck() error {
	s.Logger.Debug("Server health check.")

	return nil
}

func (s *Server) Shutdown() error {
	s.Logger.Info("Server shutting down...")
	defer s.Logger.Info("Server shut down.")

	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	return s.server.Shutdown(ctx) //nolint:wrapcheck
}

// Run starts the HTTP server and blocks until it is shut down.
func (s *Server) Run() error {
	s.Logger.WithField("addr", s.server.Addr).Info("Starting server")

	err := s.server.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err //nolint:wrapcheck
	}

	return nil
}
