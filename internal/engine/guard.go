package engine

import (
	"sync"

	"github.com/pverhoeven/tubelens/internal/tube"
)

// Guard issues session tokens so callers can recognize stale asynchronous
// results. Each Issue supersedes every earlier token; a result arriving for
// a superseded token must be discarded rather than applied over newer state.
// This is a stale-response race guard, not a hard cancellation.
type Guard struct {
	idGen  tube.IDGenerator
	mu     sync.Mutex
	latest string
}

// NewGuard builds a Guard over the given token generator.
func NewGuard(idGen tube.IDGenerator) *Guard {
	return &Guard{idGen: idGen}
}

// Issue mints a new token and makes it the latest generation.
func (g *Guard) Issue() (string, error) {
	token, err := g.idGen.NewID()
	if err != nil {
		return "", err
	}
	g.mu.Lock()
	g.latest = token
	g.mu.Unlock()
	return token, nil
}

// Valid reports whether token is still the latest generation.
func (g *Guard) Valid(token string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return token != "" && token == g.latest
}
