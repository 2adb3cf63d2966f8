package engine

import (
	"fmt"
	"net/url"
	"strings"
)

func watchURL(base, id string) string {
	return base + "/watch?v=" + url.QueryEscape(id)
}

// channelURL accepts a canonical UC id, an @handle, or a bare handle.
func channelURL(base, id string) string {
	switch {
	case strings.HasPrefix(id, "UC"):
		return base + "/channel/" + url.PathEscape(id)
	case strings.HasPrefix(id, "@"):
		return base + "/" + url.PathEscape(id)
	default:
		return base + "/@" + url.PathEscape(id)
	}
}

func playlistURL(base, id string) string {
	return base + "/playlist?list=" + url.QueryEscape(id)
}

func searchURL(base, query string) string {
	return base + "/results?search_query=" + url.QueryEscape(query)
}

// itemsKey makes the limit part of a collection cache key, so requests with
// different bounds never alias.
func itemsKey(id string, limit int) string {
	return fmt.Sprintf("%s#%d", id, limit)
}
