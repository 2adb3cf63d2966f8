package extract

import "strings"

// setStr fills dst only when it is still empty: the walker merges strategy
// output per field, first-found-wins, so partial results from divergent
// renderer shapes combine into one entity instead of overwriting each other.
func setStr(dst *string, val string) {
	if *dst != "" {
		return
	}
	val = strings.TrimSpace(val)
	if val != "" {
		*dst = val
	}
}

func setInt(dst **int, val int64, ok bool) {
	if *dst != nil || !ok {
		return
	}
	n := int(val)
	*dst = &n
}

// thumbs collects every thumbnail URL under node at path, largest shapes
// included; the scorer picks the winner.
func thumbs(node Tree, path ...any) []string {
	items := node.List(append(path, "thumbnails")...)
	urls := make([]string, 0, len(items))
	for _, item := range items {
		if u := item.Str("url"); u != "" {
			urls = append(urls, normalizeURL(u))
		}
	}
	return urls
}

// normalizeURL upgrades protocol-relative URLs the source sometimes emits.
func normalizeURL(u string) string {
	if strings.HasPrefix(u, "//") {
		return "https:" + u
	}
	return u
}

// handleFromURL pulls an "@handle" out of a vanity or canonical channel URL.
func handleFromURL(u string) string {
	at := strings.Index(u, "@")
	if at < 0 {
		return ""
	}
	handle := u[at:]
	if slash := strings.IndexByte(handle, '/'); slash >= 0 {
		handle = handle[:slash]
	}
	return handle
}

// channelIDFromURL pulls a canonical channel id out of a /channel/UC... URL.
func channelIDFromURL(u string) string {
	const prefix = "/channel/"
	at := strings.Index(u, prefix)
	if at < 0 {
		return ""
	}
	id := u[at+len(prefix):]
	if slash := strings.IndexByte(id, '/'); slash >= 0 {
		id = id[:slash]
	}
	if strings.HasPrefix(id, "UC") {
		return id
	}
	return ""
}

// playlistIDFromURL pulls the list parameter out of a canonical playlist URL.
func playlistIDFromURL(u string) string {
	const param = "list="
	at := strings.Index(u, param)
	if at < 0 {
		return ""
	}
	id := u[at+len(param):]
	if amp := strings.IndexByte(id, '&'); amp >= 0 {
		id = id[:amp]
	}
	return id
}

// browseID extracts the channel id from a navigation endpoint node.
func browseID(node Tree, path ...any) string {
	id := node.Str(append(path, "navigationEndpoint", "browseEndpoint", "browseId")...)
	if strings.HasPrefix(id, "UC") {
		return id
	}
	return ""
}
