package engine

import "testing"

func TestChannelURLForms(t *testing.T) {
	t.Parallel()

	const base = "https://www.youtube.com"
	tests := []struct {
		in   string
		want string
	}{
		{"UCworkshop0123456789abcd", base + "/channel/UCworkshop0123456789abcd"},
		{"@workshopclips", base + "/@workshopclips"},
		{"workshopclips", base + "/@workshopclips"},
	}
	for _, tc := range tests {
		if got := channelURL(base, tc.in); got != tc.want {
			t.Fatalf("channelURL(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSearchURLEscapesQuery(t *testing.T) {
	t.Parallel()

	got := searchURL("https://www.youtube.com", "lathe restoration & repair")
	want := "https://www.youtube.com/results?search_query=lathe+restoration+%26+repair"
	if got != want {
		t.Fatalf("searchURL = %q, want %q", got, want)
	}
}

func TestItemsKeyIncludesLimit(t *testing.T) {
	t.Parallel()

	if itemsKey("PLx", 50) == itemsKey("PLx", 100) {
		t.Fatal("different limits must not alias the same cache key")
	}
}
