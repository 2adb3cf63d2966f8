package extract

import "github.com/pverhoeven/tubelens/internal/tube"

type playlistStrategy struct {
	key   string
	apply func(node Tree, p *tube.Playlist)
}

var playlistStrategies = []playlistStrategy{
	{"playlistHeaderRenderer", applyPlaylistHeader},
	{"playlistSidebarPrimaryInfoRenderer", applyPlaylistSidebar},
	{"playlistMetadataRenderer", applyPlaylistMetadata},
	{"microformatDataRenderer", applyPlaylistMicroformat},
}

// PlaylistFrom walks the parsed trees through every known playlist renderer
// shape. Returns nil when no strategy produced a playlist id.
func PlaylistFrom(raw []byte, trees ...Tree) *tube.Playlist {
	p := &tube.Playlist{}
	for _, strat := range playlistStrategies {
		for _, t := range trees {
			node := t.Find(strat.key)
			if node.IsNil() {
				continue
			}
			strat.apply(node, p)
		}
	}

	if p.Thumbnail == "" {
		p.Thumbnail = rawImageScan(raw, RoleThumbnail)
	}
	if p.ID == "" {
		p.ID = rawPlaylistIDScan(raw)
	}
	if p.ID == "" {
		return nil
	}
	return p
}

// PlaylistItems collects the item cards of a playlist page, bounded by limit.
func PlaylistItems(tree Tree, limit int) []tube.Video {
	nodes := tree.FindAll("playlistVideoRenderer", limit)
	items := make([]tube.Video, 0, len(nodes))
	for _, node := range nodes {
		v := tube.Video{}
		setStr(&v.ID, node.Str("videoId"))
		if v.ID == "" {
			continue
		}
		setStr(&v.Title, node.Text("title"))
		setStr(&v.ChannelName, node.Text("shortBylineText"))
		setStr(&v.ChannelID, browseID(node.At("shortBylineText", "runs", 0)))
		setStr(&v.Thumbnail, BestImage(thumbs(node, "thumbnail"), RoleThumbnail))
		setStr(&v.Duration, node.Text("lengthText"))
		if secs := node.Int("lengthSeconds"); secs > 0 {
			setInt(&v.DurationSeconds, secs, true)
		}
		items = append(items, v)
	}
	return items
}

func applyPlaylistHeader(node Tree, p *tube.Playlist) {
	setStr(&p.ID, node.Str("playlistId"))
	setStr(&p.Title, node.Text("title"))
	setStr(&p.ItemCount, node.Text("numVideosText"))
	setStr(&p.ChannelName, node.Text("ownerText"))
	setStr(&p.ChannelID, browseID(node.At("ownerText", "runs", 0)))
	setStr(&p.Thumbnail, BestImage(thumbs(node.At("playlistHeaderBanner", "heroPlaylistThumbnailRenderer"), "thumbnail"), RoleThumbnail))
}

func applyPlaylistSidebar(node Tree, p *tube.Playlist) {
	setStr(&p.Title, node.Text("title"))
	stats := node.List("stats")
	if len(stats) > 0 {
		setStr(&p.ItemCount, stats[0].Text())
	}
	setStr(&p.Thumbnail, BestImage(thumbs(node.At("thumbnailRenderer", "playlistVideoThumbnailRenderer"), "thumbnail"), RoleThumbnail))
}

func applyPlaylistMetadata(node Tree, p *tube.Playlist) {
	setStr(&p.Title, node.Str("title"))
}

func applyPlaylistMicroformat(node Tree, p *tube.Playlist) {
	setStr(&p.Title, node.Str("title"))
	setStr(&p.ID, playlistIDFromURL(node.Str("urlCanonical")))
	setStr(&p.Thumbnail, BestImage(thumbs(node, "thumbnail"), RoleThumbnail))
}
