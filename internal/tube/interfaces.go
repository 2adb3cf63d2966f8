package tube

import (
	"context"
	"time"
)

// PageFetcher retrieves a single page with locale-pinned headers. It performs
// exactly one GET; retry policy belongs to the caller.
type PageFetcher interface {
	Fetch(ctx context.Context, url string, locale Locale) (Page, error)
}

// Renderer produces a DOM snapshot of a page after JavaScript execution.
// Used only when the static document withholds the embedded data blob.
type Renderer interface {
	Render(ctx context.Context, url string, locale Locale) (Page, error)
	Close(ctx context.Context) error
}

// RenderDetector decides whether a fetched page needs a headless render.
type RenderDetector interface {
	NeedsRender(page Page) bool
}

// Clock returns the current time (useful for testing).
type Clock interface {
	Now() time.Time
}

// IDGenerator produces session tokens.
type IDGenerator interface {
	NewID() (string, error)
}
