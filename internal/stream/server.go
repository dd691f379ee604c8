package stream

import (
	"context"
	"net/http"
	"time"

	"ecosim/internal/sims/ecosim"
)

// NewMux routes the streaming endpoints:
//
//	GET /stream    WebSocket feed of snapshots
//	GET /snapshot  most recent snapshot as JSON
//	GET /healthz   liveness probe
func NewMux(h *Hub) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/stream", h)
	mux.HandleFunc("/snapshot", h.handleSnapshot)
	mux.HandleFunc("/healthz", handleHealth)
	return mux
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Hub) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	data, ok := h.Latest()
	if !ok {
		http.Error(w, "no snapshot published yet", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// Pump publishes the initial state of world, then steps it once per
// interval until it is done or ctx ends. observe, when set, sees every
// step's statistics before the snapshot goes out.
func (h *Hub) Pump(ctx context.Context, world *ecosim.World, interval time.Duration, observe func(ecosim.StepStats)) error {
	if err := h.Publish(ctx, world.Snapshot()); err != nil {
		return err
	}
	if interval <= 0 {
		interval = time.Millisecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for !world.Done() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
		st := world.Step()
		if observe != nil {
			observe(st)
		}
		if err := h.Publish(ctx, world.Snapshot()); err != nil {
			return err
		}
	}
	return nil
}
