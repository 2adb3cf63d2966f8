package extract

import (
	"encoding/json"
	"testing"
)

func mustTree(t *testing.T, raw string) Tree {
	t.Helper()
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		t.Fatalf("bad fixture: %v", err)
	}
	return NewTree(v)
}

func TestTreeAccessors(t *testing.T) {
	t.Parallel()

	tree := mustTree(t, `{
		"meta": {"id": "UCabc", "count": 42, "countText": "42", "live": true},
		"items": [{"name": "first"}, {"name": "second"}]
	}`)

	if got := tree.Str("meta", "id"); got != "UCabc" {
		t.Fatalf("Str = %q", got)
	}
	if got := tree.Int("meta", "count"); got != 42 {
		t.Fatalf("Int = %d", got)
	}
	if got := tree.Int("meta", "countText"); got != 42 {
		t.Fatalf("Int over numeric string = %d", got)
	}
	if !tree.Bool("meta", "live") {
		t.Fatal("Bool = false")
	}
	if got := tree.Str("items", 1, "name"); got != "second" {
		t.Fatalf("indexed Str = %q", got)
	}
	if got := len(tree.List("items")); got != 2 {
		t.Fatalf("List len = %d", got)
	}
}

func TestTreeMissingPathsYieldZeroValues(t *testing.T) {
	t.Parallel()

	tree := mustTree(t, `{"a": {"b": 1}}`)
	if got := tree.Str("a", "missing", "deeper"); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
	if got := tree.Int("a", 0); got != 0 {
		t.Fatalf("expected 0 for wrong step type, got %d", got)
	}
	if !tree.At("nope").IsNil() {
		t.Fatal("expected nil node")
	}
	if got := tree.List("a", "b"); got != nil {
		t.Fatalf("expected nil list, got %v", got)
	}
}

func TestTreeTextCoalescing(t *testing.T) {
	t.Parallel()

	tree := mustTree(t, `{
		"plain": "direct",
		"simple": {"simpleText": "labeled"},
		"runs": {"runs": [{"text": "one "}, {"text": "two"}]}
	}`)

	tests := []struct {
		path string
		want string
	}{
		{"plain", "direct"},
		{"simple", "labeled"},
		{"runs", "one two"},
		{"absent", ""},
	}
	for _, tc := range tests {
		if got := tree.Text(tc.path); got != tc.want {
			t.Fatalf("Text(%s) = %q, want %q", tc.path, got, tc.want)
		}
	}
}

func TestTreeFindIsDeterministic(t *testing.T) {
	t.Parallel()

	// Two hits for the same key under sibling branches: sorted-key traversal
	// must always surface the one under the lexically smaller branch first.
	tree := mustTree(t, `{
		"zeta": {"target": {"origin": "zeta"}},
		"alpha": {"target": {"origin": "alpha"}}
	}`)
	for i := 0; i < 50; i++ {
		if got := tree.Find("target").Str("origin"); got != "alpha" {
			t.Fatalf("iteration %d: Find returned branch %q", i, got)
		}
	}

	all := tree.FindAll("target", 0)
	if len(all) != 2 {
		t.Fatalf("FindAll len = %d", len(all))
	}
	if all[0].Str("origin") != "alpha" || all[1].Str("origin") != "zeta" {
		t.Fatalf("unexpected order: %q, %q", all[0].Str("origin"), all[1].Str("origin"))
	}
}

func TestTreeFindAllRespectsMax(t *testing.T) {
	t.Parallel()

	tree := mustTree(t, `{"list": [{"card": 1}, {"card": 2}, {"card": 3}]}`)
	if got := len(tree.FindAll("card", 2)); got != 2 {
		t.Fatalf("FindAll(max=2) len = %d", got)
	}
}
