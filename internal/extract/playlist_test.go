package extract

import "testing"

func TestPlaylistFromHeader(t *testing.T) {
	t.Parallel()

	tree := mustTree(t, `{
		"header": {"playlistHeaderRenderer": {
			"playlistId": "PLrestorations001",
			"title": {"simpleText": "Machine restorations"},
			"numVideosText": {"runs": [{"text": "24 videos"}]},
			"ownerText": {"runs": [{"text": "Workshop Clips", "navigationEndpoint": {"browseEndpoint": {"browseId": "UCworkshop0123456789abcd"}}}]},
			"playlistHeaderBanner": {"heroPlaylistThumbnailRenderer": {
				"thumbnail": {"thumbnails": [{"url": "https://i.ytimg.com/vi/abcDEF12345/hq720.jpg"}]}
			}}
		}}
	}`)

	p := PlaylistFrom(nil, tree)
	if p == nil {
		t.Fatal("expected playlist")
	}
	if p.ID != "PLrestorations001" || p.Title != "Machine restorations" {
		t.Fatalf("identity: %+v", p)
	}
	if p.ItemCount != "24 videos" || p.ChannelID != "UCworkshop0123456789abcd" {
		t.Fatalf("metadata: %+v", p)
	}
	if p.Thumbnail != "https://i.ytimg.com/vi/abcDEF12345/hq720.jpg" {
		t.Fatalf("Thumbnail = %q", p.Thumbnail)
	}
}

func TestPlaylistFromMicroformatFallback(t *testing.T) {
	t.Parallel()

	tree := mustTree(t, `{
		"microformat": {"microformatDataRenderer": {
			"title": "Machine restorations",
			"urlCanonical": "https://www.youtube.com/playlist?list=PLrestorations001"
		}}
	}`)
	p := PlaylistFrom(nil, tree)
	if p == nil || p.ID != "PLrestorations001" {
		t.Fatalf("expected microformat id, got %+v", p)
	}
}

func TestPlaylistFromAbsence(t *testing.T) {
	t.Parallel()

	if p := PlaylistFrom([]byte("<html></html>"), mustTree(t, `{}`)); p != nil {
		t.Fatalf("expected nil playlist, got %+v", p)
	}
}

func TestPlaylistItems(t *testing.T) {
	t.Parallel()

	tree := mustTree(t, `{
		"contents": [
			{"playlistVideoRenderer": {
				"videoId": "abcDEF12345",
				"title": {"runs": [{"text": "Part one"}]},
				"lengthSeconds": "601",
				"lengthText": {"simpleText": "10:01"}
			}},
			{"playlistVideoRenderer": {"title": {"simpleText": "deleted video, no id"}}},
			{"playlistVideoRenderer": {
				"videoId": "xyzGHI67890",
				"title": {"simpleText": "Part two"}
			}}
		]
	}`)

	items := PlaylistItems(tree, 10)
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].ID != "abcDEF12345" || items[1].ID != "xyzGHI67890" {
		t.Fatalf("unexpected order: %+v", items)
	}
	if items[0].DurationSeconds == nil || *items[0].DurationSeconds != 601 {
		t.Fatalf("DurationSeconds = %v", items[0].DurationSeconds)
	}
	if items[1].DurationSeconds != nil {
		t.Fatalf("expected nil duration for item without lengthSeconds")
	}

	if got := len(PlaylistItems(tree, 1)); got != 1 {
		t.Fatalf("limit ignored: %d", got)
	}
}
