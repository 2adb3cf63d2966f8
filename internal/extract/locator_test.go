package extract

import (
	"bytes"
	"errors"
	"testing"

	"github.com/pverhoeven/tubelens/internal/tube"
)

func TestFindJSONAnchored(t *testing.T) {
	t.Parallel()

	body := []byte(`<html><script>var ytInitialData = {"a":{"b":1}};</script></html>`)
	span := FindJSON(body, MarkerInitialData)
	if want := `{"a":{"b":1}}`; string(span) != want {
		t.Fatalf("expected %s, got %s", want, span)
	}
}

func TestFindJSONBalancedRecoversFromTrickyStrings(t *testing.T) {
	t.Parallel()

	// The title contains "};" and an escaped quote, which defeats both
	// anchored terminators; the balanced scan must still close correctly.
	payload := `{"title":"end};</script> \" not here","n":2}`
	body := []byte(`<script>var ytInitialData = ` + payload + ` ;var other = 1;</script>`)
	span := FindJSON(body, MarkerInitialData)
	if string(span) != payload {
		t.Fatalf("expected %s, got %s", payload, span)
	}
}

func TestFindJSONFallbackMarkers(t *testing.T) {
	t.Parallel()

	body := []byte(`<script>window["ytInitialData"] = {"ok":true};</script>`)
	span := FindJSON(body, MarkerInitialData)
	if string(span) != `{"ok":true}` {
		t.Fatalf("unexpected span: %s", span)
	}
}

func TestFindJSONAbsent(t *testing.T) {
	t.Parallel()

	cases := [][]byte{
		nil,
		[]byte(""),
		[]byte("<html><body>static page</body></html>"),
		[]byte("var ytInitialData = not an object;"),
	}
	for _, body := range cases {
		if span := FindJSON(body, MarkerInitialData); span != nil {
			t.Fatalf("expected nil span for %q, got %s", body, span)
		}
	}
}

func TestFindJSONAnchoredAndBalancedAgree(t *testing.T) {
	t.Parallel()

	payload := []byte(`{"x":[1,2,{"y":"z"}],"w":"v"}`)
	anchored := FindJSON(append(append([]byte("var ytInitialData = "), payload...), []byte(";</script>")...), MarkerInitialData)
	balanced := FindJSON(append(append([]byte("var ytInitialData = "), payload...), []byte("\nwindow.more()")...), MarkerInitialData)
	if !bytes.Equal(anchored, balanced) {
		t.Fatalf("anchored %s != balanced %s", anchored, balanced)
	}
	if !bytes.Equal(anchored, payload) {
		t.Fatalf("expected %s, got %s", payload, anchored)
	}
}

func TestParseTreeMalformed(t *testing.T) {
	t.Parallel()

	_, err := ParseTree([]byte(`{"unterminated":`))
	if !errors.Is(err, tube.ErrMalformedData) {
		t.Fatalf("expected malformed-data error, got %v", err)
	}
	tree, err := ParseTree([]byte(`{"a":1}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := tree.Int("a"); got != 1 {
		t.Fatalf("expected 1, got %d", got)
	}
}
