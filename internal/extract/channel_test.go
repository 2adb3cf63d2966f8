package extract

import "testing"

func TestChannelFromMergesFragments(t *testing.T) {
	t.Parallel()

	// Neither fragment alone is complete: the header carries the avatar, the
	// metadata block carries the id. The merge keeps the first value found per
	// field, in strategy order.
	header := mustTree(t, `{
		"header": {"c4TabbedHeaderRenderer": {
			"title": "Workshop Clips",
			"avatar": {"thumbnails": [
				{"url": "//yt3.ggpht.com/avatar=s88-c"},
				{"url": "//yt3.ggpht.com/avatar=s176-c"}
			]}
		}}
	}`)
	metadata := mustTree(t, `{
		"metadata": {"channelMetadataRenderer": {
			"externalId": "UCworkshop0123456789abcd",
			"title": "Workshop Clips Official",
			"description": "Weekly builds.",
			"vanityChannelUrl": "http://www.youtube.com/@workshopclips"
		}}
	}`)

	c := ChannelFrom(nil, header, metadata)
	if c == nil {
		t.Fatal("expected channel")
	}
	if c.ID != "UCworkshop0123456789abcd" {
		t.Fatalf("ID = %q", c.ID)
	}
	// Header ran first, so its title wins over the metadata variant.
	if c.Title != "Workshop Clips" {
		t.Fatalf("Title = %q", c.Title)
	}
	if c.Avatar != "https://yt3.ggpht.com/avatar=s176-c" {
		t.Fatalf("Avatar = %q", c.Avatar)
	}
	if c.Handle != "@workshopclips" {
		t.Fatalf("Handle = %q", c.Handle)
	}
	if c.Description != "Weekly builds." {
		t.Fatalf("Description = %q", c.Description)
	}
}

func TestChannelFromEndToEnd(t *testing.T) {
	t.Parallel()

	body := []byte(`<html><script>var ytInitialData = {
		"header": {"channelHeaderRenderer": {
			"channelId": "UCacme0123456789abcdefgh",
			"title": {"simpleText": "Acme"},
			"banner": {"thumbnails": [{"url": "https://yt3.googleusercontent.com/banner=w1060-x"}]},
			"subscriberCountText": {"simpleText": "12K subscribers"}
		}}
	};</script></html>`)

	span := FindJSON(body, MarkerInitialData)
	if span == nil {
		t.Fatal("locator found nothing")
	}
	tree, err := ParseTree(span)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	c := ChannelFrom(body, tree)
	if c == nil {
		t.Fatal("expected channel")
	}
	if c.ID != "UCacme0123456789abcdefgh" || c.Title != "Acme" {
		t.Fatalf("unexpected identity: %+v", c)
	}
	if c.Banner != "https://yt3.googleusercontent.com/banner=w1060-x" {
		t.Fatalf("Banner = %q", c.Banner)
	}
	if c.Subscribers != "12K subscribers" {
		t.Fatalf("Subscribers = %q", c.Subscribers)
	}
	// The only hosted image in the document is a banner crop, which must not
	// fill the avatar slot; absence stays absence.
	if c.Avatar != "" {
		t.Fatalf("Avatar = %q", c.Avatar)
	}
}

func TestChannelFromRawFallbacks(t *testing.T) {
	t.Parallel()

	raw := []byte(`<html>"externalChannelId":"UCfallback123456789abcde"
		<img src="https://yt3.ggpht.com/photo=s240-c"></html>`)
	c := ChannelFrom(raw, mustTree(t, `{}`))
	if c == nil {
		t.Fatal("expected channel from raw scan")
	}
	if c.ID != "UCfallback123456789abcde" {
		t.Fatalf("ID = %q", c.ID)
	}
	if c.Avatar != "https://yt3.ggpht.com/photo=s240-c" {
		t.Fatalf("Avatar = %q", c.Avatar)
	}
}

func TestChannelFromAbsence(t *testing.T) {
	t.Parallel()

	if c := ChannelFrom([]byte("<html>nothing here</html>"), mustTree(t, `{"other": 1}`)); c != nil {
		t.Fatalf("expected nil channel, got %+v", c)
	}
}
