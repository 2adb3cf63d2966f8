package extract

import "github.com/pverhoeven/tubelens/internal/tube"

// channelStrategy resolves fields for one known channel renderer shape.
// Strategies run in rollout-likelihood order; apply must only fill fields
// that are still empty (setStr enforces this).
type channelStrategy struct {
	key   string
	apply func(node Tree, c *tube.Channel)
}

var channelStrategies = []channelStrategy{
	{"c4TabbedHeaderRenderer", applyC4TabbedHeader},
	{"channelHeaderRenderer", applyChannelHeader},
	{"channelMetadataRenderer", applyChannelMetadata},
	{"microformatDataRenderer", applyChannelMicroformat},
}

// ChannelFrom walks the parsed trees through every known channel renderer
// shape and merges the results per field. The raw document is consulted as a
// last resort for image URLs the structured strategies could not supply.
// Returns nil when no strategy produced a channel id.
func ChannelFrom(raw []byte, trees ...Tree) *tube.Channel {
	c := &tube.Channel{}
	for _, strat := range channelStrategies {
		for _, t := range trees {
			node := t.Find(strat.key)
			if node.IsNil() {
				continue
			}
			strat.apply(node, c)
		}
	}

	if c.Avatar == "" {
		c.Avatar = rawImageScan(raw, RoleAvatar)
	}
	if c.Banner == "" {
		c.Banner = rawImageScan(raw, RoleBanner)
	}
	if c.ID == "" {
		c.ID = rawChannelIDScan(raw)
	}
	if c.ID == "" {
		return nil
	}
	return c
}

func applyC4TabbedHeader(node Tree, c *tube.Channel) {
	setStr(&c.ID, node.Str("channelId"))
	setStr(&c.Title, node.Text("title"))
	setStr(&c.Handle, node.Text("channelHandleText"))
	setStr(&c.Avatar, BestImage(thumbs(node, "avatar"), RoleAvatar))
	setStr(&c.Banner, BestImage(thumbs(node, "banner"), RoleBanner))
	setStr(&c.Subscribers, node.Text("subscriberCountText"))
	setStr(&c.VideoCount, node.Text("videosCountText"))
}

func applyChannelHeader(node Tree, c *tube.Channel) {
	setStr(&c.ID, node.Str("channelId"))
	setStr(&c.Title, node.Text("title"))
	setStr(&c.Avatar, BestImage(thumbs(node, "avatar"), RoleAvatar))
	setStr(&c.Banner, BestImage(thumbs(node, "banner"), RoleBanner))
	setStr(&c.Subscribers, node.Text("subscriberCountText"))
}

func applyChannelMetadata(node Tree, c *tube.Channel) {
	setStr(&c.ID, node.Str("externalId"))
	setStr(&c.Title, node.Str("title"))
	setStr(&c.Description, node.Str("description"))
	setStr(&c.Avatar, BestImage(thumbs(node, "avatar"), RoleAvatar))
	setStr(&c.Handle, handleFromURL(node.Str("vanityChannelUrl")))
}

func applyChannelMicroformat(node Tree, c *tube.Channel) {
	setStr(&c.ID, channelIDFromURL(node.Str("urlCanonical")))
	setStr(&c.Title, node.Str("title"))
	setStr(&c.Description, node.Str("description"))
	setStr(&c.Avatar, BestImage(thumbs(node, "thumbnail"), RoleAvatar))
}
