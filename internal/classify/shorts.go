// Package classify tags short-form content. The heuristics are approximate
// and locale-specific, so keyword lists and thresholds come from
// configuration and may be swapped at runtime; nothing here is a correctness
// invariant of extraction.
package classify

import (
	"strings"
	"sync"

	"github.com/pverhoeven/tubelens/internal/tube"
)

// Classifier decides whether a video is short-form.
type Classifier struct {
	mu          sync.RWMutex
	keywords    []string
	maxDuration int
}

// New builds a Classifier from the initial keyword list and duration
// threshold (seconds). A non-positive threshold disables the duration rule.
func New(keywords []string, maxDurationSeconds int) *Classifier {
	c := &Classifier{}
	c.Update(keywords, maxDurationSeconds)
	return c
}

// Update swaps the rule set; used by config hot reload.
func (c *Classifier) Update(keywords []string, maxDurationSeconds int) {
	lowered := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" {
			lowered = append(lowered, kw)
		}
	}
	c.mu.Lock()
	c.keywords = lowered
	c.maxDuration = maxDurationSeconds
	c.mu.Unlock()
}

// IsShortForm reports whether the video looks like short-form content:
// a tagged title/description, or a duration at or under the threshold.
// Live content is never short-form.
func (c *Classifier) IsShortForm(v tube.Video) bool {
	if c == nil || v.Live {
		return false
	}
	c.mu.RLock()
	keywords := c.keywords
	maxDuration := c.maxDuration
	c.mu.RUnlock()

	haystack := strings.ToLower(v.Title + "\n" + v.Description)
	for _, kw := range keywords {
		if strings.Contains(haystack, kw) {
			return true
		}
	}
	if maxDuration > 0 && v.DurationSeconds != nil {
		secs := *v.DurationSeconds
		if secs > 0 && secs <= maxDuration {
			return true
		}
	}
	return false
}
