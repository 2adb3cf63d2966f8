// Package collyfetcher implements the document fetcher using gocolly.
package collyfetcher

import (
	"context"
	"fmt"
	"net/url"
	"time"
	"unicode/utf8"

	"github.com/gocolly/colly/v2"

	"github.com/pverhoeven/tubelens/internal/tube"
)

// DefaultUserAgent is a fixed desktop UA so the site serves the stable
// desktop page templates the locator knows.
const DefaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Config controls collector behavior.
type Config struct {
	UserAgent string
	Timeout   time.Duration
}

// Fetcher performs one locale-pinned HTTP GET per call. No retries live
// here; retry policy belongs to callers.
type Fetcher struct {
	cfg  Config
	base *colly.Collector
}

// New builds a Fetcher.
func New(cfg Config) *Fetcher {
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	c := colly.NewCollector(colly.Async(false))
	// Browser-equivalent read access to ordinary pages.
	c.IgnoreRobotsTxt = true
	return &Fetcher{cfg: cfg, base: c}
}

// Fetch executes a single GET with the locale pinned in both the query
// string and the Accept-Language header, so UI locale settings cannot
// silently change cache semantics.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string, locale tube.Locale) (tube.Page, error) {
	target, err := withLocaleParams(rawURL, locale)
	if err != nil {
		return tube.Page{}, tube.NetworkError("parse url", err)
	}

	collector := f.base.Clone()
	collector.UserAgent = f.cfg.UserAgent
	collector.SetRequestTimeout(f.cfg.Timeout)

	var (
		page     tube.Page
		fetchErr error
	)
	collector.OnRequest(func(r *colly.Request) {
		select {
		case <-ctx.Done():
			fetchErr = tube.NetworkError("fetch canceled", ctx.Err())
			r.Abort()
			return
		default:
		}
		r.Headers.Set("Accept-Language", acceptLanguage(locale))
	})
	collector.OnResponse(func(r *colly.Response) {
		page = tube.Page{
			URL:        rawURL,
			FinalURL:   r.Request.URL.String(),
			StatusCode: r.StatusCode,
			Body:       r.Body,
			Locale:     locale,
			FetchedAt:  time.Now().UTC(),
		}
	})
	collector.OnError(func(r *colly.Response, err error) {
		if r != nil && r.StatusCode > 0 {
			fetchErr = tube.StatusError("fetch "+rawURL, r.StatusCode)
			return
		}
		fetchErr = tube.NetworkError("fetch "+rawURL, err)
	})

	if err := collector.Visit(target); err != nil {
		return tube.Page{}, tube.NetworkError("visit "+rawURL, err)
	}
	collector.Wait()

	if fetchErr != nil {
		return tube.Page{}, fetchErr
	}
	if page.StatusCode < 200 || page.StatusCode > 299 {
		return tube.Page{}, tube.StatusError("fetch "+rawURL, page.StatusCode)
	}
	if !utf8.Valid(page.Body) {
		return tube.Page{}, tube.DecodeError("fetch "+rawURL, fmt.Errorf("body is not valid text"))
	}
	return page, nil
}

// withLocaleParams appends the hl/gl query parameters used for read access.
func withLocaleParams(rawURL string, locale tube.Locale) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	q := u.Query()
	if locale.Hl != "" {
		q.Set("hl", locale.Hl)
	}
	if locale.Gl != "" {
		q.Set("gl", locale.Gl)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func acceptLanguage(locale tube.Locale) string {
	hl := locale.Hl
	if hl == "" {
		hl = tube.DefaultLocale.Hl
	}
	gl := locale.Gl
	if gl == "" {
		gl = tube.DefaultLocale.Gl
	}
	return fmt.Sprintf("%s-%s,%s;q=0.9", hl, gl, hl)
}
