package extract

import "github.com/pverhoeven/tubelens/internal/tube"

type videoStrategy struct {
	key   string
	apply func(node Tree, v *tube.Video)
}

// Watch pages carry up to three divergent encodings of the same video: the
// primary/secondary info renderers in the browse graph, the player response
// videoDetails block, and its microformat sibling. Result cards use a fourth
// (videoRenderer). All are merged first-found-wins.
var videoStrategies = []videoStrategy{
	{"videoPrimaryInfoRenderer", applyVideoPrimaryInfo},
	{"videoSecondaryInfoRenderer", applyVideoSecondaryInfo},
	{"videoDetails", applyVideoDetails},
	{"playerMicroformatRenderer", applyPlayerMicroformat},
	{"videoRenderer", applyVideoCard},
}

// VideoFrom walks the parsed trees through every known video renderer shape.
// Returns nil when no strategy produced a video id.
func VideoFrom(raw []byte, trees ...Tree) *tube.Video {
	v := &tube.Video{}
	for _, strat := range videoStrategies {
		for _, t := range trees {
			node := t.Find(strat.key)
			if node.IsNil() {
				continue
			}
			strat.apply(node, v)
		}
	}

	if v.Thumbnail == "" {
		v.Thumbnail = rawImageScan(raw, RoleThumbnail)
	}
	if v.ID == "" {
		v.ID = rawVideoIDScan(raw)
	}
	if v.ID == "" {
		return nil
	}
	return v
}

// VideoFromCard resolves a single result-card node (videoRenderer and
// friends) without any raw-document fallback.
func VideoFromCard(node Tree) *tube.Video {
	v := &tube.Video{}
	applyVideoCard(node, v)
	if v.ID == "" {
		return nil
	}
	return v
}

func applyVideoPrimaryInfo(node Tree, v *tube.Video) {
	setStr(&v.Title, node.Text("title"))
	setStr(&v.ViewCount, node.Text("viewCount", "videoViewCountRenderer", "viewCount"))
	setStr(&v.Published, node.Text("dateText"))
}

func applyVideoSecondaryInfo(node Tree, v *tube.Video) {
	owner := node.At("owner", "videoOwnerRenderer")
	setStr(&v.ChannelName, owner.Text("title"))
	setStr(&v.ChannelID, browseID(owner.At("title", "runs", 0)))
	setStr(&v.ChannelID, owner.Str("navigationEndpoint", "browseEndpoint", "browseId"))
	setStr(&v.Description, node.Text("description"))
}

func applyVideoDetails(node Tree, v *tube.Video) {
	setStr(&v.ID, node.Str("videoId"))
	setStr(&v.Title, node.Str("title"))
	setStr(&v.ChannelID, node.Str("channelId"))
	setStr(&v.ChannelName, node.Str("author"))
	setStr(&v.Description, node.Str("shortDescription"))
	setStr(&v.ViewCount, node.Str("viewCount"))
	setStr(&v.Thumbnail, BestImage(thumbs(node, "thumbnail"), RoleThumbnail))
	if secs := node.Int("lengthSeconds"); secs > 0 {
		setInt(&v.DurationSeconds, secs, true)
	}
	if node.Bool("isLiveContent") {
		v.Live = true
	}
}

func applyPlayerMicroformat(node Tree, v *tube.Video) {
	setStr(&v.Title, node.Text("title"))
	setStr(&v.ChannelID, node.Str("externalChannelId"))
	setStr(&v.ChannelName, node.Str("ownerChannelName"))
	setStr(&v.ViewCount, node.Str("viewCount"))
	setStr(&v.PublishedISO, node.Str("publishDate"))
	setStr(&v.Thumbnail, BestImage(thumbs(node, "thumbnail"), RoleThumbnail))
}

func applyVideoCard(node Tree, v *tube.Video) {
	setStr(&v.ID, node.Str("videoId"))
	setStr(&v.Title, node.Text("title"))
	setStr(&v.ChannelName, node.Text("ownerText"))
	setStr(&v.ChannelName, node.Text("longBylineText"))
	setStr(&v.ChannelID, browseID(node.At("ownerText", "runs", 0)))
	setStr(&v.ChannelID, browseID(node.At("longBylineText", "runs", 0)))
	setStr(&v.Thumbnail, BestImage(thumbs(node, "thumbnail"), RoleThumbnail))
	setStr(&v.ViewCount, node.Text("viewCountText"))
	setStr(&v.Published, node.Text("publishedTimeText"))
	setStr(&v.Duration, node.Text("lengthText"))
}
