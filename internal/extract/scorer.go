package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// ImageRole names the slot an ambiguous image URL is being chosen for.
type ImageRole string

// Image roles with distinct scoring heuristics.
const (
	RoleAvatar    ImageRole = "avatar"
	RoleBanner    ImageRole = "banner"
	RoleThumbnail ImageRole = "thumbnail"
)

const (
	baselineScore    = 10
	widthScoreCap    = 200
	roleKeywordBonus = 500
	smallSizePenalty = 1000
)

// Width and square-size tokens embedded in source image URLs, e.g. "=w1060-"
// or "=s88-c".
var (
	widthToken = regexp.MustCompile(`[=?&-]w(\d{2,5})\b`)
	sizeToken  = regexp.MustCompile(`[=?&-]s(\d{2,5})\b`)
)

// Keywords strongly correlated with each role.
var roleKeywords = map[ImageRole][]string{
	RoleBanner: {"banner"},
	RoleAvatar: {"avatar", "photo"},
}

// Square-size tokens below this edge length mark avatar-only crops that must
// never win a banner slot.
const bannerMinEdge = 320

// BestImage ranks candidate URLs for the given role and returns the single
// best one, or "" when no candidate survives. Deterministic: ties are broken
// by first-seen order.
func BestImage(candidates []string, role ImageRole) string {
	best := ""
	bestScore := 0
	for _, url := range candidates {
		if url == "" {
			continue
		}
		score, ok := scoreImage(url, role)
		if !ok {
			continue
		}
		if best == "" || score > bestScore {
			best = url
			bestScore = score
		}
	}
	return best
}

func scoreImage(url string, role ImageRole) (int, bool) {
	score := baselineScore

	width := largestDimension(url)
	if width > 0 {
		points := width / 10
		if points > widthScoreCap {
			points = widthScoreCap
		}
		score += points
	}

	lower := strings.ToLower(url)
	for _, kw := range roleKeywords[role] {
		if strings.Contains(lower, kw) {
			score += roleKeywordBonus
			break
		}
	}

	if role == RoleBanner {
		if edge := squareEdge(url); edge > 0 && edge < bannerMinEdge {
			score -= smallSizePenalty
		}
	}
	// A banner crop must never fill the avatar slot.
	if role == RoleAvatar && strings.Contains(lower, "banner") {
		score -= smallSizePenalty
	}
	if score <= 0 {
		return 0, false
	}
	return score, true
}

func largestDimension(url string) int {
	best := 0
	for _, m := range widthToken.FindAllStringSubmatch(url, -1) {
		if n, err := strconv.Atoi(m[1]); err == nil && n > best {
			best = n
		}
	}
	if edge := squareEdge(url); edge > best {
		best = edge
	}
	return best
}

func squareEdge(url string) int {
	best := 0
	for _, m := range sizeToken.FindAllStringSubmatch(url, -1) {
		if n, err := strconv.Atoi(m[1]); err == nil && n > best {
			best = n
		}
	}
	return best
}
