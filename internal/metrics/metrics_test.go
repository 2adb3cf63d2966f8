package metrics

import (
	"net/http/httptest"
	"testing"
	"time"
)

func TestObserversAreSafeBeforeInit(t *testing.T) {
	// Deliberately not parallel: exercises the uninitialized path before any
	// other test calls Init.
	ObservePageFetch("video", "ok", time.Second)
	ObserveCacheLookup("video", true)
	ObserveExtraction("video", "ok")
	ObserveHeadlessPromotion()
}

func TestInitIsIdempotent(t *testing.T) {
	Init()
	Init()

	ObservePageFetch("video", "ok", 200*time.Millisecond)
	ObservePageFetch("video", "error", time.Second)
	ObserveCacheLookup("channel", false)
	ObserveExtraction("playlist", "not_found")
	ObserveHeadlessPromotion()

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	if rec.Code != 200 {
		t.Fatalf("scrape status = %d", rec.Code)
	}
	if rec.Body.Len() == 0 {
		t.Fatal("empty scrape body")
	}
}
