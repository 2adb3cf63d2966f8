package detect

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pverhoeven/tubelens/internal/tube"
)

func fullPage() []byte {
	var b bytes.Buffer
	b.WriteString(`<html><body><ytd-app></ytd-app><script>var ytInitialData = {"a":1};</script>`)
	b.Write(bytes.Repeat([]byte("<p>filler</p>"), 400))
	b.WriteString(`</body></html>`)
	return b.Bytes()
}

func newDetector() *HeuristicDetector {
	return NewHeuristicDetector(
		2048,
		[]string{"var ytInitialData = "},
		[]string{"consent.youtube.com", "enable javascript"},
		[]string{"ytd-app"},
	)
}

func TestNeedsRenderSignals(t *testing.T) {
	t.Parallel()

	d := newDetector()

	assert.False(t, d.NeedsRender(tube.Page{Body: fullPage()}), "complete page must not promote")

	assert.True(t, d.NeedsRender(tube.Page{Body: []byte("<html>tiny</html>")}), "small body promotes")

	consent := append(fullPage(), []byte(`<a href="https://consent.youtube.com/x">accept</a>`)...)
	assert.True(t, d.NeedsRender(tube.Page{Body: consent}), "consent interstitial promotes")

	noMarker := bytes.ReplaceAll(fullPage(), []byte("ytInitialData"), []byte("somethingElse"))
	assert.True(t, d.NeedsRender(tube.Page{Body: noMarker}), "missing marker promotes")
}

func TestNeedsRenderSkipsRenderedPages(t *testing.T) {
	t.Parallel()

	d := newDetector()
	// A page the renderer already produced never promotes again, no matter
	// how degraded it looks.
	assert.False(t, d.NeedsRender(tube.Page{Body: []byte("x"), Rendered: true}))
}

func TestNeedsRenderMissingSelector(t *testing.T) {
	t.Parallel()

	d := newDetector()
	noShell := bytes.ReplaceAll(fullPage(), []byte("ytd-app"), []byte("div-app"))
	assert.True(t, d.NeedsRender(tube.Page{Body: noShell}), "missing app shell promotes")
}

func TestNilDetectorNeverPromotes(t *testing.T) {
	t.Parallel()

	var d *HeuristicDetector
	assert.False(t, d.NeedsRender(tube.Page{Body: []byte("x")}))
}
