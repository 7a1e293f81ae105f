package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Server serves the monitoring endpoints alongside a pipeline run.
type Server struct {
	httpServer *http.Server
	logger     *zap.Logger
}

func NewServer(addr string, h http.Handler, l *zap.Logger) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      h,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		logger: l,
	}
}

// Start serves in the background. A listen failure is logged, never fatal:
// monitoring must not abort a run.
func (s *Server) Start() {
	go func() {
		s.logger.Info("monitoring server listening", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("monitoring server failed", zap.Error(err))
		}
	}()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
