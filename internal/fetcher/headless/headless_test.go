package headless

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pverhoeven/tubelens/internal/tube"
)

func TestNewLimiterValidation(t *testing.T) {
	t.Parallel()

	if _, err := New(Config{MaxParallel: -1}); err == nil {
		t.Fatal("expected error for negative max parallel")
	}
	r, err := New(Config{MaxParallel: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer func() { _ = r.Close(context.Background()) }()
	if cap(r.limiter) != 2 {
		t.Fatalf("expected limiter capacity 2, got %d", cap(r.limiter))
	}
	if r.cfg.NavigationTimeout != 30*time.Second {
		t.Fatalf("expected default nav timeout, got %v", r.cfg.NavigationTimeout)
	}
}

func TestNoopRenderer(t *testing.T) {
	t.Parallel()

	n := NewNoop()
	if _, err := n.Render(context.Background(), "https://example.com", tube.Locale{}); !errors.Is(err, ErrDisabled) {
		t.Fatalf("expected ErrDisabled, got %v", err)
	}
	if err := n.Close(context.Background()); err != nil {
		t.Fatalf("close: %v", err)
	}
}
