// Package detect decides whether a fetched page needs a headless render
// before the locator can find the embedded data blob.
package detect

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pverhoeven/tubelens/internal/tube"
)

// HeuristicDetector promotes a page to headless rendering on simple HTML
// signals: the data marker is absent, a consent interstitial keyword is
// present, or the body is implausibly small for a content page.
type HeuristicDetector struct {
	minHTMLBytes int
	markers      [][]byte
	keywords     [][]byte
	selectors    []string
}

// NewHeuristicDetector constructs a detector with the configured thresholds.
func NewHeuristicDetector(minBytes int, markers, keywords, selectors []string) *HeuristicDetector {
	toLower := func(in []string) [][]byte {
		out := make([][]byte, 0, len(in))
		for _, s := range in {
			s = strings.TrimSpace(s)
			if s == "" {
				continue
			}
			out = append(out, bytes.ToLower([]byte(s)))
		}
		return out
	}
	return &HeuristicDetector{
		minHTMLBytes: minBytes,
		markers:      toLower(markers),
		keywords:     toLower(keywords),
		selectors:    selectors,
	}
}

// NeedsRender inspects the page for signals that the static document will
// not yield the data blob.
func (d *HeuristicDetector) NeedsRender(page tube.Page) bool {
	if d == nil {
		return false
	}
	if page.Rendered {
		return false
	}
	switch {
	case d.bodyBelowThreshold(page.Body):
		return true
	case d.containsKeywords(page.Body):
		return true
	case d.missingMarkers(page.Body):
		return true
	default:
		return d.missingSelectors(page.Body)
	}
}

func (d *HeuristicDetector) bodyBelowThreshold(body []byte) bool {
	return d.minHTMLBytes > 0 && len(body) < d.minHTMLBytes
}

func (d *HeuristicDetector) containsKeywords(body []byte) bool {
	if len(body) == 0 || len(d.keywords) == 0 {
		return false
	}
	lowerBody := bytes.ToLower(body)
	for _, kw := range d.keywords {
		if bytes.Contains(lowerBody, kw) {
			return true
		}
	}
	return false
}

// missingMarkers is the strongest signal: a content page without any known
// data marker cannot be parsed statically at all.
func (d *HeuristicDetector) missingMarkers(body []byte) bool {
	if len(d.markers) == 0 || len(body) == 0 {
		return false
	}
	lowerBody := bytes.ToLower(body)
	for _, m := range d.markers {
		if bytes.Contains(lowerBody, m) {
			return false
		}
	}
	return true
}

func (d *HeuristicDetector) missingSelectors(body []byte) bool {
	if len(d.selectors) == 0 || len(body) == 0 {
		return false
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return true
	}
	for _, sel := range d.selectors {
		if sel == "" {
			continue
		}
		if doc.Find(sel).Length() == 0 {
			return true
		}
	}
	return false
}
