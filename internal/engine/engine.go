// Package engine orchestrates the extraction pipeline: cache lookup, page
// fetch (with optional headless promotion), blob location, schema walking,
// normalization, optional enrichment, and the cache write-back.
package engine

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/pverhoeven/tubelens/internal/cache"
	"github.com/pverhoeven/tubelens/internal/extract"
	"github.com/pverhoeven/tubelens/internal/metrics"
	"github.com/pverhoeven/tubelens/internal/normalize"
	"github.com/pverhoeven/tubelens/internal/tube"
)

// Enricher fills authoritative fields from the official API. Implementations
// must return a new value and never mutate their input.
type Enricher interface {
	Video(ctx context.Context, v tube.Video) tube.Video
	Channel(ctx context.Context, c tube.Channel) tube.Channel
	Playlist(ctx context.Context, p tube.Playlist) tube.Playlist
}

// ShortFormClassifier tags short-form content after normalization.
type ShortFormClassifier interface {
	IsShortForm(v tube.Video) bool
}

// Config governs pipeline behavior.
type Config struct {
	BaseURL       string
	Fanout        int
	EntityTTL     time.Duration
	SearchTTL     time.Duration
	DefaultLocale tube.Locale
}

// Deps collects the engine's collaborators. Renderer, Detector, Enricher and
// Classifier are optional; the pipeline degrades without them.
type Deps struct {
	Fetcher    tube.PageFetcher
	Renderer   tube.Renderer
	Detector   tube.RenderDetector
	Cache      *cache.Cache
	Clock      tube.Clock
	Logger     *zap.Logger
	Enricher   Enricher
	Classifier ShortFormClassifier
}

// Engine resolves entities on demand. It holds no request state of its own;
// the cache is the only shared mutable resource.
type Engine struct {
	cfg  Config
	deps Deps
}

// New constructs an Engine.
func New(cfg Config, deps Deps) *Engine {
	if cfg.Fanout <= 0 {
		cfg.Fanout = 4
	}
	if cfg.EntityTTL <= 0 {
		cfg.EntityTTL = 30 * time.Minute
	}
	if cfg.SearchTTL <= 0 {
		cfg.SearchTTL = 10 * time.Minute
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	return &Engine{cfg: cfg, deps: deps}
}

func (e *Engine) locale(loc tube.Locale) tube.Locale {
	if loc.Hl == "" && loc.Gl == "" {
		if e.cfg.DefaultLocale.Hl != "" || e.cfg.DefaultLocale.Gl != "" {
			return e.cfg.DefaultLocale
		}
		return tube.DefaultLocale
	}
	return loc
}

// Video resolves one video by id. A nil error guarantees a non-empty ID;
// every other field may be empty, meaning unknown.
func (e *Engine) Video(ctx context.Context, id string, loc tube.Locale) (*tube.Video, error) {
	loc = e.locale(loc)
	key := tube.CacheKey(tube.KindVideo, id, loc)
	if v, ok := cacheGet[tube.Video](ctx, e, key, tube.KindVideo); ok {
		return &v, nil
	}

	page, err := e.loadPage(ctx, tube.KindVideo, watchURL(e.cfg.BaseURL, id), loc)
	if err != nil {
		return nil, err
	}
	trees := e.locate(page, extract.MarkerInitialData, extract.MarkerPlayerResponse)

	v := extract.VideoFrom(page.Body, trees...)
	if v == nil {
		metrics.ObserveExtraction(string(tube.KindVideo), "not_found")
		return nil, tube.NotFoundError(tube.KindVideo, id)
	}
	metrics.ObserveExtraction(string(tube.KindVideo), "ok")
	e.finalizeVideo(v)
	if e.deps.Enricher != nil {
		*v = e.deps.Enricher.Video(ctx, *v)
	}
	e.cacheSet(ctx, key, *v, e.cfg.EntityTTL)
	return v, nil
}

// Channel resolves one channel by canonical id or @handle.
func (e *Engine) Channel(ctx context.Context, id string, loc tube.Locale) (*tube.Channel, error) {
	loc = e.locale(loc)
	key := tube.CacheKey(tube.KindChannel, id, loc)
	if c, ok := cacheGet[tube.Channel](ctx, e, key, tube.KindChannel); ok {
		return &c, nil
	}

	page, err := e.loadPage(ctx, tube.KindChannel, channelURL(e.cfg.BaseURL, id), loc)
	if err != nil {
		return nil, err
	}
	trees := e.locate(page, extract.MarkerInitialData)

	c := extract.ChannelFrom(page.Body, trees...)
	if c == nil {
		metrics.ObserveExtraction(string(tube.KindChannel), "not_found")
		return nil, tube.NotFoundError(tube.KindChannel, id)
	}
	metrics.ObserveExtraction(string(tube.KindChannel), "ok")
	if e.deps.Enricher != nil {
		*c = e.deps.Enricher.Channel(ctx, *c)
	}
	e.cacheSet(ctx, key, *c, e.cfg.EntityTTL)
	return c, nil
}

// Playlist resolves playlist metadata by id (without items; see
// PlaylistItems).
func (e *Engine) Playlist(ctx context.Context, id string, loc tube.Locale) (*tube.Playlist, error) {
	loc = e.locale(loc)
	key := tube.CacheKey(tube.KindPlaylist, id, loc)
	if p, ok := cacheGet[tube.Playlist](ctx, e, key, tube.KindPlaylist); ok {
		return &p, nil
	}

	page, err := e.loadPage(ctx, tube.KindPlaylist, playlistURL(e.cfg.BaseURL, id), loc)
	if err != nil {
		return nil, err
	}
	trees := e.locate(page, extract.MarkerInitialData)

	p := extract.PlaylistFrom(page.Body, trees...)
	if p == nil {
		metrics.ObserveExtraction(string(tube.KindPlaylist), "not_found")
		return nil, tube.NotFoundError(tube.KindPlaylist, id)
	}
	metrics.ObserveExtraction(string(tube.KindPlaylist), "ok")
	if e.deps.Enricher != nil {
		*p = e.deps.Enricher.Playlist(ctx, *p)
	}
	e.cacheSet(ctx, key, *p, e.cfg.EntityTTL)
	return p, nil
}

// PlaylistItems resolves up to limit item cards of a playlist.
func (e *Engine) PlaylistItems(ctx context.Context, id string, loc tube.Locale, limit int) ([]tube.Video, error) {
	if limit <= 0 {
		limit = 100
	}
	loc = e.locale(loc)
	key := tube.CacheKey(tube.KindPlaylist, itemsKey(id, limit), loc)
	if items, ok := cacheGet[[]tube.Video](ctx, e, key, tube.KindPlaylist); ok {
		return items, nil
	}

	page, err := e.loadPage(ctx, tube.KindPlaylist, playlistURL(e.cfg.BaseURL, id), loc)
	if err != nil {
		return nil, err
	}
	trees := e.locate(page, extract.MarkerInitialData)

	var items []tube.Video
	for _, t := range trees {
		items = extract.PlaylistItems(t, limit)
		if len(items) > 0 {
			break
		}
	}
	for i := range items {
		e.finalizeVideo(&items[i])
	}
	e.cacheSet(ctx, key, items, e.cfg.SearchTTL)
	return items, nil
}

// Search resolves up to limit video cards for a query. An empty result is a
// valid outcome, not an error.
func (e *Engine) Search(ctx context.Context, query string, loc tube.Locale, limit int) ([]tube.Video, error) {
	if limit <= 0 {
		limit = 20
	}
	loc = e.locale(loc)
	key := tube.CacheKey(tube.KindSearch, itemsKey(query, limit), loc)
	if results, ok := cacheGet[[]tube.Video](ctx, e, key, tube.KindSearch); ok {
		return results, nil
	}

	page, err := e.loadPage(ctx, tube.KindSearch, searchURL(e.cfg.BaseURL, query), loc)
	if err != nil {
		return nil, err
	}
	trees := e.locate(page, extract.MarkerInitialData)

	var results []tube.Video
	for _, t := range trees {
		results = extract.SearchResults(t, limit)
		if len(results) > 0 {
			break
		}
	}
	for i := range results {
		e.finalizeVideo(&results[i])
	}
	e.cacheSet(ctx, key, results, e.cfg.SearchTTL)
	return results, nil
}

// Close releases the cache and the renderer.
func (e *Engine) Close(ctx context.Context) error {
	if e.deps.Renderer != nil {
		if err := e.deps.Renderer.Close(ctx); err != nil {
			e.deps.Logger.Warn("close renderer", zap.Error(err))
		}
	}
	return e.deps.Cache.Close()
}

// loadPage fetches the page and promotes it to a headless render when the
// detector says the static document will not yield the data blob.
func (e *Engine) loadPage(ctx context.Context, kind tube.Kind, url string, loc tube.Locale) (tube.Page, error) {
	start := time.Now()
	page, err := e.deps.Fetcher.Fetch(ctx, url, loc)
	if err != nil {
		metrics.ObservePageFetch(string(kind), "error", time.Since(start))
		return tube.Page{}, err
	}
	metrics.ObservePageFetch(string(kind), "ok", time.Since(start))

	if e.deps.Detector != nil && e.deps.Renderer != nil && e.deps.Detector.NeedsRender(page) {
		metrics.ObserveHeadlessPromotion()
		rendered, rerr := e.deps.Renderer.Render(ctx, url, loc)
		if rerr != nil {
			// Best effort: keep the static page rather than failing.
			e.deps.Logger.Debug("headless render failed", zap.String("url", url), zap.Error(rerr))
		} else {
			page = rendered
		}
	}
	return page, nil
}

// locate extracts and parses every data blob found under the given markers.
// Multiple trees feed the walker's per-field merge.
func (e *Engine) locate(page tube.Page, markers ...string) []extract.Tree {
	trees := make([]extract.Tree, 0, len(markers))
	for _, marker := range markers {
		span := extract.FindJSON(page.Body, marker)
		if span == nil {
			continue
		}
		tree, err := extract.ParseTree(span)
		if err != nil {
			e.deps.Logger.Debug("located span did not parse",
				zap.String("marker", marker), zap.Error(err))
			continue
		}
		trees = append(trees, tree)
	}
	return trees
}

func (e *Engine) finalizeVideo(v *tube.Video) {
	v.ViewCount = normalize.ViewCount(v.ViewCount)
	display, iso := normalize.PublishedAt(v.Published, v.PublishedISO, e.deps.Clock.Now())
	v.Published = display
	v.PublishedISO = iso
	if v.DurationSeconds == nil {
		v.DurationSeconds = normalize.DurationSeconds(v.Duration)
	}
	if v.Duration == "" && v.DurationSeconds != nil {
		v.Duration = normalize.FormatDuration(*v.DurationSeconds)
	}
	if e.deps.Classifier != nil {
		v.ShortForm = e.deps.Classifier.IsShortForm(*v)
	}
}

func cacheGet[T any](ctx context.Context, e *Engine, key string, kind tube.Kind) (T, bool) {
	v, ok, err := cache.Get[T](ctx, e.deps.Cache, key)
	if err != nil {
		e.deps.Logger.Warn("cache read", zap.String("key", key), zap.Error(err))
	}
	metrics.ObserveCacheLookup(string(kind), ok)
	return v, ok
}

func (e *Engine) cacheSet(ctx context.Context, key string, value any, ttl time.Duration) {
	if err := cache.Set(ctx, e.deps.Cache, key, value, ttl); err != nil {
		e.deps.Logger.Warn("cache write", zap.String("key", key), zap.Error(err))
	}
}
