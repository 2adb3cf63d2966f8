package extract

import "testing"

func TestVideoFromMergesPlayerAndBrowseGraphs(t *testing.T) {
	t.Parallel()

	browse := mustTree(t, `{
		"contents": {
			"videoPrimaryInfoRenderer": {
				"title": {"runs": [{"text": "Restoring a "}, {"text": "lathe"}]},
				"viewCount": {"videoViewCountRenderer": {"viewCount": {"simpleText": "1,204 views"}}},
				"dateText": {"simpleText": "3 days ago"}
			},
			"videoSecondaryInfoRenderer": {
				"owner": {"videoOwnerRenderer": {
					"title": {"runs": [{"text": "Workshop Clips", "navigationEndpoint": {"browseEndpoint": {"browseId": "UCworkshop0123456789abcd"}}}]}
				}},
				"description": {"runs": [{"text": "Part one."}]}
			}
		}
	}`)
	player := mustTree(t, `{
		"videoDetails": {
			"videoId": "dQw4w9WgXcQ",
			"title": "Restoring a lathe (player title)",
			"author": "Workshop Clips",
			"lengthSeconds": "754",
			"isLiveContent": false,
			"thumbnail": {"thumbnails": [{"url": "https://i.ytimg.com/vi/dQw4w9WgXcQ/hqdefault.jpg"}]}
		},
		"microformat": {"playerMicroformatRenderer": {"publishDate": "2026-08-28"}}
	}`)

	v := VideoFrom(nil, browse, player)
	if v == nil {
		t.Fatal("expected video")
	}
	if v.ID != "dQw4w9WgXcQ" {
		t.Fatalf("ID = %q", v.ID)
	}
	// The browse graph ran first, so its run-joined title wins.
	if v.Title != "Restoring a lathe" {
		t.Fatalf("Title = %q", v.Title)
	}
	if v.ChannelID != "UCworkshop0123456789abcd" || v.ChannelName != "Workshop Clips" {
		t.Fatalf("owner = %q / %q", v.ChannelID, v.ChannelName)
	}
	if v.ViewCount != "1,204 views" {
		t.Fatalf("ViewCount = %q", v.ViewCount)
	}
	if v.Published != "3 days ago" || v.PublishedISO != "2026-08-28" {
		t.Fatalf("published = %q / %q", v.Published, v.PublishedISO)
	}
	if v.DurationSeconds == nil || *v.DurationSeconds != 754 {
		t.Fatalf("DurationSeconds = %v", v.DurationSeconds)
	}
	if v.Live {
		t.Fatal("Live = true")
	}
}

func TestVideoFromRawIDFallback(t *testing.T) {
	t.Parallel()

	raw := []byte(`<html>"videoId":"abcDEF12345" more text</html>`)
	v := VideoFrom(raw, mustTree(t, `{}`))
	if v == nil || v.ID != "abcDEF12345" {
		t.Fatalf("expected raw id fallback, got %+v", v)
	}
}

func TestVideoFromAbsence(t *testing.T) {
	t.Parallel()

	if v := VideoFrom([]byte("<html></html>"), mustTree(t, `{"unrelated": true}`)); v != nil {
		t.Fatalf("expected nil video, got %+v", v)
	}
}

func TestVideoFromCard(t *testing.T) {
	t.Parallel()

	node := mustTree(t, `{
		"videoId": "abcDEF12345",
		"title": {"runs": [{"text": "Shop tour"}]},
		"ownerText": {"runs": [{"text": "Workshop Clips", "navigationEndpoint": {"browseEndpoint": {"browseId": "UCworkshop0123456789abcd"}}}]},
		"thumbnail": {"thumbnails": [{"url": "https://i.ytimg.com/vi/abcDEF12345/hq720.jpg"}]},
		"viewCountText": {"simpleText": "88 views"},
		"publishedTimeText": {"simpleText": "2 weeks ago"},
		"lengthText": {"simpleText": "10:31"}
	}`)

	v := VideoFromCard(node)
	if v == nil {
		t.Fatal("expected video")
	}
	if v.ID != "abcDEF12345" || v.Title != "Shop tour" || v.Duration != "10:31" {
		t.Fatalf("unexpected card: %+v", v)
	}
	if v.ChannelID != "UCworkshop0123456789abcd" {
		t.Fatalf("ChannelID = %q", v.ChannelID)
	}

	if v := VideoFromCard(mustTree(t, `{"title": {"simpleText": "no id"}}`)); v != nil {
		t.Fatalf("expected nil for card without id, got %+v", v)
	}
}
