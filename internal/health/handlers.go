package health

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// Pinger probes a single dependency for readiness.
type Pinger func(ctx context.Context) error

// Handler exposes HTTP handlers for health endpoints. Nil pingers mean the
// dependency is not wired and is skipped.
type Handler struct {
	PingDB    Pinger
	PingRedis Pinger
	Timeout   time.Duration
}

// Live reports liveness status.
func (h Handler) Live(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// Ready reports readiness based on wired dependency probes.
func (h Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout())
	defer cancel()

	status := map[string]string{}
	healthy := true
	if h.PingDB != nil {
		status["db"] = "ok"
		if err := h.PingDB(ctx); err != nil {
			status["db"] = err.Error()
			healthy = false
		}
	}
	if h.PingRedis != nil {
		status["redis"] = "ok"
		if err := h.PingRedis(ctx); err != nil {
			status["redis"] = err.Error()
			healthy = false
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if !healthy {
		w.WriteHeader(http.StatusServiceUnavailable)
	} else {
		w.WriteHeader(http.StatusOK)
	}
	_ = json.NewEncoder(w).Encode(status)
}

func (h Handler) timeout() time.Duration {
	if h.Timeout <= 0 {
		return 500 * time.Millisecond
	}
	return h.Timeout
}
