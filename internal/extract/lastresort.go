package extract

import "regexp"

// Last-resort raw-text scans. These run only after every structured strategy
// has been exhausted, so their cost is paid on genuinely degraded input only.
var (
	hostedImageURL = regexp.MustCompile(`https://(?:yt3\.ggpht\.com|yt3\.googleusercontent\.com|i\.ytimg\.com)/[A-Za-z0-9_\-./=%]+`)
	channelIDField = regexp.MustCompile(`"(?:channelId|externalId|externalChannelId)"\s*:\s*"(UC[A-Za-z0-9_-]{22})"`)
	videoIDField   = regexp.MustCompile(`"videoId"\s*:\s*"([A-Za-z0-9_-]{11})"`)
	playlistIDRe   = regexp.MustCompile(`"playlistId"\s*:\s*"((?:PL|UU|LL|OL|RD)[A-Za-z0-9_-]+)"`)
)

// rawImageScan collects every hosted image URL in the document and lets the
// scorer pick the one most plausible for the role. Empty when nothing
// recognizable exists.
func rawImageScan(raw []byte, role ImageRole) string {
	if len(raw) == 0 {
		return ""
	}
	matches := hostedImageURL.FindAll(raw, 64)
	candidates := make([]string, 0, len(matches))
	for _, m := range matches {
		candidates = append(candidates, string(m))
	}
	return BestImage(candidates, role)
}

func rawChannelIDScan(raw []byte) string {
	return firstGroup(channelIDField, raw)
}

func rawVideoIDScan(raw []byte) string {
	return firstGroup(videoIDField, raw)
}

func rawPlaylistIDScan(raw []byte) string {
	return firstGroup(playlistIDRe, raw)
}

func firstGroup(re *regexp.Regexp, raw []byte) string {
	if len(raw) == 0 {
		return ""
	}
	m := re.FindSubmatch(raw)
	if len(m) < 2 {
		return ""
	}
	return string(m[1])
}
