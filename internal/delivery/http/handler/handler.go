package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/user/listing-harvester/internal/delivery/http/response"
)

const pingTimeout = 2 * time.Second

// Pinger is a backing service the health check probes.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingerFunc adapts a function to Pinger.
type PingerFunc func(ctx context.Context) error

func (f PingerFunc) Ping(ctx context.Context) error { return f(ctx) }

type Handler struct {
	pingers map[string]Pinger
	logger  *zap.Logger
}

// NewHandler creates a handler. pingers may be empty when no backing
// services are configured.
func NewHandler(pingers map[string]Pinger, l *zap.Logger) *Handler {
	return &Handler{pingers: pingers, logger: l}
}

func (h *Handler) HandleHealthCheck(w http.ResponseWriter, r *http.Request) {
	resp := response.HealthResponse{Status: "ok"}
	status := http.StatusOK

	if len(h.pingers) > 0 {
		resp.Checks = make(map[string]string, len(h.pingers))
	}
	for name, p := range h.pingers {
		ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
		err := p.Ping(ctx)
		cancel()
		if err != nil {
			h.logger.Warn("health check failed", zap.String("service", name), zap.Error(err))
			resp.Checks[name] = err.Error()
			resp.Status = "degraded"
			status = http.StatusServiceUnavailable
			continue
		}
		resp.Checks[name] = "ok"
	}

	h.writeJSON(w, status, resp)
}

func (h *Handler) HandleNotFound(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusNotFound, response.ErrorResponse{Error: "not found"})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
