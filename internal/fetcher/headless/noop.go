package headless

import (
	"context"
	"errors"

	"github.com/pverhoeven/tubelens/internal/tube"
)

// ErrDisabled indicates headless rendering is not available in this build or
// configuration.
var ErrDisabled = errors.New("headless renderer disabled")

// Noop implements tube.Renderer but always reports that rendering is
// unavailable, so the engine falls back to the static document.
type Noop struct{}

// NewNoop creates a new Noop renderer.
func NewNoop() *Noop {
	return &Noop{}
}

// Render returns ErrDisabled.
func (Noop) Render(_ context.Context, _ string, _ tube.Locale) (tube.Page, error) {
	return tube.Page{}, ErrDisabled
}

// Close is a no-op.
func (Noop) Close(_ context.Context) error {
	return nil
}
