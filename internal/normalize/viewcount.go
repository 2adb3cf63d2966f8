// Package normalize converts locale-specific display strings into canonical
// display text plus, where derivable, machine-readable values. Pure
// functions, no I/O; unparseable input passes through unchanged.
package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	countToken  = regexp.MustCompile(`([0-9][0-9.,\x{00a0}\s]*)([KMB])?`)
	noViewWords = []string{"no views", "no view"}
)

// ViewCount returns one stable display label for a view-count string. The
// input may be abbreviated ("1.2M views"), grouped ("1,234,567 views"), or a
// placeholder ("No views"); anything unparseable is returned unchanged.
func ViewCount(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	n, ok := ParseCount(raw)
	if !ok {
		return raw
	}
	switch n {
	case 0:
		return "No views"
	case 1:
		return "1 view"
	default:
		return compactCount(n) + " views"
	}
}

// ParseCount extracts the integer value of a count display string. The bool
// reports whether the input was recognizable at all.
func ParseCount(raw string) (int64, bool) {
	lower := strings.ToLower(strings.TrimSpace(raw))
	if lower == "" {
		return 0, false
	}
	for _, w := range noViewWords {
		if lower == w {
			return 0, true
		}
	}

	m := countToken.FindStringSubmatch(raw)
	if m == nil {
		return 0, false
	}
	num := strings.Map(func(r rune) rune {
		switch r {
		case ',', ' ', '\u00a0':
			return -1
		}
		return r
	}, strings.TrimSpace(m[1]))
	if num == "" {
		return 0, false
	}

	if m[2] != "" {
		f, err := strconv.ParseFloat(num, 64)
		if err != nil {
			return 0, false
		}
		switch m[2] {
		case "K":
			f *= 1e3
		case "M":
			f *= 1e6
		case "B":
			f *= 1e9
		}
		return int64(f), true
	}

	// Grouped or plain integers only; a trailing ".5" with no suffix is not
	// a count.
	if strings.Contains(num, ".") {
		return 0, false
	}
	n, err := strconv.ParseInt(num, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// compactCount renders n the way result cards abbreviate it.
func compactCount(n int64) string {
	switch {
	case n >= 1e9:
		return trimZero(fmt.Sprintf("%.1f", float64(n)/1e9)) + "B"
	case n >= 1e6:
		return trimZero(fmt.Sprintf("%.1f", float64(n)/1e6)) + "M"
	case n >= 1e3:
		return trimZero(fmt.Sprintf("%.1f", float64(n)/1e3)) + "K"
	default:
		return strconv.FormatInt(n, 10)
	}
}

func trimZero(s string) string {
	return strings.TrimSuffix(s, ".0")
}
