package health

import (
	"context"
	"sync"

	"github.com/Jrokz2315/SecureID/internal/log"
)

// Ping is the contract a monitored resource must satisfy.
type Ping func(ctx context.Context) error

// Status keeps a registry of named pingers and reports whether each of them
// is reachable.
type Status struct {
	mx      sync.RWMutex
	pingers map[string]Ping
}

// New returns a Status instance with the given monitored resources.
func New(pingers map[string]Ping) *Status {
	if pingers == nil {
		pingers = make(map[string]Ping)
	}
	return &Status{pingers: pingers}
}

// Add registers a new pinger under name.
func (s *Status) Add(name string, p Ping) {
	s.mx.Lock()
	defer s.mx.Unlock()
	s.pingers[name] = p
}

// Status returns whether each monitored resource is up.
func (s *Status) Status(ctx context.Context) map[string]bool {
	s.mx.RLock()
	defer s.mx.RUnlock()

	m := make(map[string]bool, len(s.pingers))
	for name, ping := range s.pingers {
		m[name] = true
		if err := ping(ctx); err != nil {
			log.Warn(ctx, "health ping failed", "name", name, "err", err)
			m[name] = false
		}
	}
	return m
}
