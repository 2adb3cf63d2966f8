package normalize

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

var relativePhrase = regexp.MustCompile(`(?i)(\d+)\s+(second|minute|hour|day|week|month|year)s?\s+ago`)

// Prefixes the source prepends to date text on some surfaces.
var datePrefixes = []string{"Streamed live on ", "Streamed ", "Premiered ", "Published on ", "Joined "}

// PublishedAt resolves a published-date display string into canonical form.
// When isoHint is supplied (e.g. a microformat publishDate) it is trusted
// over the display text. Otherwise relative phrases ("3 days ago") are
// resolved against now, then absolute dates are parsed. Unresolvable input
// returns the original text with an empty ISO value; this never fails.
func PublishedAt(raw, isoHint string, now time.Time) (display, iso string) {
	raw = strings.TrimSpace(raw)

	if isoHint != "" {
		if t, ok := parseAbsolute(isoHint); ok {
			if raw == "" {
				raw = t.Format("Jan 2, 2006")
			}
			return raw, t.UTC().Format(time.RFC3339)
		}
	}
	if raw == "" {
		return "", ""
	}

	stripped := raw
	for _, p := range datePrefixes {
		stripped = strings.TrimPrefix(stripped, p)
	}

	if t, ok := resolveRelative(stripped, now); ok {
		return raw, t.UTC().Format(time.RFC3339)
	}
	if t, ok := parseAbsolute(stripped); ok {
		return raw, t.UTC().Format(time.RFC3339)
	}
	return raw, ""
}

func resolveRelative(raw string, now time.Time) (time.Time, bool) {
	m := relativePhrase.FindStringSubmatch(raw)
	if m == nil {
		return time.Time{}, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return time.Time{}, false
	}
	switch strings.ToLower(m[2]) {
	case "second":
		return now.Add(-time.Duration(n) * time.Second), true
	case "minute":
		return now.Add(-time.Duration(n) * time.Minute), true
	case "hour":
		return now.Add(-time.Duration(n) * time.Hour), true
	case "day":
		return now.AddDate(0, 0, -n), true
	case "week":
		return now.AddDate(0, 0, -7*n), true
	case "month":
		return now.AddDate(0, -n, 0), true
	case "year":
		return now.AddDate(-n, 0, 0), true
	}
	return time.Time{}, false
}

func parseAbsolute(raw string) (time.Time, bool) {
	t, err := dateparse.ParseAny(raw)
	if err != nil || t.IsZero() {
		return time.Time{}, false
	}
	return t, true
}
