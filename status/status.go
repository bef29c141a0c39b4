package status

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"

	"github.com/golangdaddy/crossroads/game"
	"github.com/golangdaddy/crossroads/models"
	"github.com/golangdaddy/crossroads/road"
)

// LightState is the JSON view of one approach light.
type LightState struct {
	ID        int    `json:"id"`
	Direction string `json:"direction"`
	Status    string `json:"status"`
}

// Snapshot is the state published after each tick.
type Snapshot struct {
	Tick     int            `json:"tick"`
	Green    string         `json:"green,omitempty"`
	Capacity map[string]int `json:"capacity"`
	Lights   []LightState   `json:"lights"`
	Active   int            `json:"active"`
	Stats    models.Stats   `json:"stats"`
}

// Capture copies the observable state of sim. It must be called from the
// goroutine that drives the simulation.
func Capture(sim *game.Simulation) Snapshot {
	capacity := sim.Capacity()
	snap := Snapshot{
		Tick:     sim.TickCount(),
		Capacity: make(map[string]int, road.DirectionCount),
		Stats:    sim.Stats(),
	}
	if green, ok := sim.Green(); ok {
		snap.Green = green.String()
	}
	for _, d := range road.Priority {
		snap.Capacity[d.String()] = capacity.Get(d)
	}
	for _, l := range sim.Lights() {
		snap.Lights = append(snap.Lights, LightState{
			ID:        l.ID,
			Direction: l.Direction.String(),
			Status:    l.Status.String(),
		})
	}
	for _, v := range sim.Vehicles() {
		if v.Active {
			snap.Active++
		}
	}
	return snap
}

// Board holds the latest snapshot for readers on other goroutines.
type Board struct {
	mu   sync.RWMutex
	snap Snapshot
}

// NewBoard creates an empty board.
func NewBoard() *Board {
	return &Board{}
}

// Publish replaces the current snapshot.
func (b *Board) Publish(s Snapshot) {
	b.mu.Lock()
	b.snap = s
	b.mu.Unlock()
}

// Current returns the latest snapshot.
func (b *Board) Current() Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.snap
}

// Handler serves the board over HTTP.
type Handler struct {
	board *Board
}

// NewHandler creates a handler reading from board.
func NewHandler(board *Board) *Handler {
	return &Handler{board: board}
}

// RegisterRoutes adds the status routes to router.
func (h *Handler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/state", h.State).Methods("GET")
	router.HandleFunc("/health", h.Health).Methods("GET")
}

// State writes the latest snapshot as JSON.
func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(h.board.Current()); err != nil {
		log.Printf("status: failed to encode state: %v", err)
	}
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
}

// NewRouter returns a router with the status routes registered.
func NewRouter(board *Board) *mux.Router {
	r := mux.NewRouter()
	NewHandler(board).RegisterRoutes(r)
	return r
}

// Serve runs the status server until ctx is cancelled.
func Serve(ctx context.Context, addr string, board *Board) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           NewRouter(board),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	log.Printf("status server listening on %s", addr)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("status server: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
