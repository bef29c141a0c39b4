package models

import (
	"encoding/json"
	"os"
	"time"

	"github.com/golangdaddy/crossroads/road"
)

// Session summarises a finished simulation run.
type Session struct {
	Seed      int64          `json:"seed"`
	StartedAt time.Time      `json:"started_at"`
	EndedAt   time.Time      `json:"ended_at"`
	Ticks     int            `json:"ticks"`
	Stats     Stats          `json:"stats"`
	Waiting   map[string]int `json:"waiting"` // Queued vehicles per approach at the end
}

// NewSession starts a session record for seed.
func NewSession(seed int64) *Session {
	return &Session{
		Seed:      seed,
		StartedAt: time.Now(),
		Waiting:   make(map[string]int),
	}
}

// Finish records the final tick count, totals and queues.
func (s *Session) Finish(ticks int, stats Stats, capacity Capacity) {
	s.EndedAt = time.Now()
	s.Ticks = ticks
	s.Stats = stats
	for _, d := range road.Priority {
		s.Waiting[d.String()] = capacity.Get(d)
	}
}

// Duration returns the wall-clock length of the session.
func (s *Session) Duration() time.Duration {
	if s.EndedAt.IsZero() {
		return time.Since(s.StartedAt)
	}
	return s.EndedAt.Sub(s.StartedAt)
}

// SaveToFile saves the session to a JSON file
func (s *Session) SaveToFile(filename string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filename, data, 0644)
}

// LoadSession loads a session from a JSON file
func LoadSession(filename string) (*Session, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}

	return &s, nil
}
