package normalize

import (
	"fmt"
	"strconv"
	"strings"
)

// DurationSeconds converts duration display text ("12:34", "1:02:03") into
// integer seconds. Absent or unparseable input yields nil, which is distinct
// from a zero duration: zero is a valid value for some live-content edge
// cases and must not be conflated with "unknown".
func DurationSeconds(raw string) *int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return nil
	}
	total := 0
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 0 {
			return nil
		}
		total = total*60 + n
	}
	return &total
}

// FormatDuration renders seconds the way duration badges display it.
func FormatDuration(seconds int) string {
	if seconds < 0 {
		return ""
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
