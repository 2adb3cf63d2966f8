package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pverhoeven/tubelens/internal/tube"
)

func secs(n int) *int { return &n }

func TestIsShortFormKeywords(t *testing.T) {
	t.Parallel()

	c := New([]string{"#shorts", "#ytshorts"}, 65)

	assert.True(t, c.IsShortForm(tube.Video{Title: "Quick tip #Shorts"}))
	assert.True(t, c.IsShortForm(tube.Video{Title: "Quick tip", Description: "tagged #ytshorts here"}))
	assert.False(t, c.IsShortForm(tube.Video{Title: "Full restoration, part one"}))
}

func TestIsShortFormDuration(t *testing.T) {
	t.Parallel()

	c := New(nil, 65)

	assert.True(t, c.IsShortForm(tube.Video{Title: "clip", DurationSeconds: secs(45)}))
	assert.True(t, c.IsShortForm(tube.Video{Title: "clip", DurationSeconds: secs(65)}))
	assert.False(t, c.IsShortForm(tube.Video{Title: "clip", DurationSeconds: secs(66)}))
	// Unknown duration is not evidence either way.
	assert.False(t, c.IsShortForm(tube.Video{Title: "clip"}))
	// Zero length is a live/premiere artifact, not a short.
	assert.False(t, c.IsShortForm(tube.Video{Title: "clip", DurationSeconds: secs(0)}))
}

func TestIsShortFormLiveNever(t *testing.T) {
	t.Parallel()

	c := New([]string{"#shorts"}, 65)
	assert.False(t, c.IsShortForm(tube.Video{Title: "stream #shorts", Live: true, DurationSeconds: secs(30)}))
}

func TestUpdateSwapsRules(t *testing.T) {
	t.Parallel()

	c := New([]string{"#shorts"}, 65)
	v := tube.Video{Title: "clip #kurzvideo"}

	assert.False(t, c.IsShortForm(v))
	c.Update([]string{"#kurzvideo"}, 65)
	assert.True(t, c.IsShortForm(v))

	// A non-positive threshold disables the duration rule.
	c.Update(nil, 0)
	assert.False(t, c.IsShortForm(tube.Video{Title: "clip", DurationSeconds: secs(10)}))
}

func TestNilClassifier(t *testing.T) {
	t.Parallel()

	var c *Classifier
	assert.False(t, c.IsShortForm(tube.Video{Title: "#shorts"}))
}
