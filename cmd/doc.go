// Package cmd defines and implements the CLI commands for the tubelens
// executable.
//
// Architecture overview:
//   - HTTP API: internal/api.Server exposes health, metrics, and entity
//     endpoints. The desktop UI process talks to this surface only; it never
//     touches the extraction pipeline directly.
//   - Extraction pipeline: internal/engine resolves an entity by fetching its
//     public page via the Colly-based fetcher, optionally promoting to a
//     headless Chromedp render when the heuristic detector deems it
//     necessary, locating the embedded JSON blob, walking its known renderer
//     shapes with a first-found-wins merge, and normalizing display text.
//   - Persistence: normalized entities live in a TTL cache backed by either
//     an embedded SQLite database or an in-memory store. The cache key pins
//     the entity kind, id, and locale.
//   - Enrichment: when an official API key is configured, authoritative
//     counters replace scraped approximations after extraction. Enrichment
//     failures degrade silently to the scraped values.
//   - Configuration & plumbing: Viper populates config from env/files and
//     hot-reloads the short-form classifier tuning; zap provides structured
//     logging; Prometheus metrics are exported via /metrics.
package cmd
