// Package tube defines core types shared across subsystems.
package tube

import (
	"fmt"
	"time"
)

// Kind identifies the entity type a caller is asking for.
type Kind string

// Entity kinds understood by the extraction engine.
const (
	KindVideo    Kind = "video"
	KindChannel  Kind = "channel"
	KindPlaylist Kind = "playlist"
	KindSearch   Kind = "search"
)

// Locale pins the language and region used for a page fetch. Entities cached
// under different locales are never comparable, so the locale is part of
// every cache key.
type Locale struct {
	Hl string `json:"hl"`
	Gl string `json:"gl"`
}

// DefaultLocale is used when the caller does not specify one.
var DefaultLocale = Locale{Hl: "en", Gl: "US"}

// String renders the locale in cache-key form.
func (l Locale) String() string {
	hl := l.Hl
	if hl == "" {
		hl = DefaultLocale.Hl
	}
	gl := l.Gl
	if gl == "" {
		gl = DefaultLocale.Gl
	}
	return hl + "-" + gl
}

// Video is the canonical record extracted for a single video. ID is never
// empty on a successfully returned value; every other field may be empty,
// which callers must read as "unknown", not as an error.
type Video struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	ChannelID       string `json:"channel_id,omitempty"`
	ChannelName     string `json:"channel_name,omitempty"`
	Thumbnail       string `json:"thumbnail,omitempty"`
	ViewCount       string `json:"view_count,omitempty"`
	Published       string `json:"published,omitempty"`
	PublishedISO    string `json:"published_iso,omitempty"`
	Duration        string `json:"duration,omitempty"`
	DurationSeconds *int   `json:"duration_seconds,omitempty"`
	Description     string `json:"description,omitempty"`
	Live            bool   `json:"live,omitempty"`
	ShortForm       bool   `json:"short_form,omitempty"`
}

// Channel is the canonical record extracted for a channel page.
type Channel struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Handle      string `json:"handle,omitempty"`
	Avatar      string `json:"avatar,omitempty"`
	Banner      string `json:"banner,omitempty"`
	Description string `json:"description,omitempty"`
	Subscribers string `json:"subscribers,omitempty"`
	VideoCount  string `json:"video_count,omitempty"`
}

// Playlist is the canonical record extracted for a playlist page. Videos is
// populated only by collection fetches and bounded by the caller's limit.
type Playlist struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	ChannelID   string  `json:"channel_id,omitempty"`
	ChannelName string  `json:"channel_name,omitempty"`
	Thumbnail   string  `json:"thumbnail,omitempty"`
	ItemCount   string  `json:"item_count,omitempty"`
	Videos      []Video `json:"videos,omitempty"`
}

// CacheKey builds the deterministic lookup key for an entity fetch.
func CacheKey(kind Kind, id string, locale Locale) string {
	return fmt.Sprintf("%s:%s:%s", kind, id, locale)
}

// Page is a fetched document body plus the locale it was requested with.
// Pages are ephemeral and discarded once the data blob has been parsed.
type Page struct {
	URL        string
	FinalURL   string
	StatusCode int
	Body       []byte
	Locale     Locale
	FetchedAt  time.Time
	Rendered   bool
}
