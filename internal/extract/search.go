package extract

import "github.com/pverhoeven/tubelens/internal/tube"

// Card keys that wrap a video in list surfaces, tried in document order.
var searchCardKeys = []string{"videoRenderer", "compactVideoRenderer", "gridVideoRenderer"}

// SearchResults collects video cards from a results page, bounded by limit.
// Cards missing a video id are skipped, never invented.
func SearchResults(tree Tree, limit int) []tube.Video {
	if limit <= 0 {
		limit = 20
	}
	out := make([]tube.Video, 0, limit)
	seen := make(map[string]struct{}, limit)
	for _, key := range searchCardKeys {
		for _, node := range tree.FindAll(key, limit*2) {
			v := VideoFromCard(node)
			if v == nil {
				continue
			}
			if _, dup := seen[v.ID]; dup {
				continue
			}
			seen[v.ID] = struct{}{}
			out = append(out, *v)
			if len(out) >= limit {
				return out
			}
		}
	}
	return out
}
