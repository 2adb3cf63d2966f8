// Package extract locates the embedded data graph inside fetched pages and
// resolves entities out of it through ordered schema strategies.
package extract

import (
	"sort"
	"strconv"
)

// Tree is a read-only accessor over a generic JSON value. Every lookup on a
// missing or mismatched node yields a zero value, never a panic, so schema
// strategies can probe freely for shapes the page may not carry.
type Tree struct {
	v any
}

// NewTree wraps a decoded JSON value.
func NewTree(v any) Tree {
	return Tree{v: v}
}

// IsNil reports whether the node is absent.
func (t Tree) IsNil() bool {
	return t.v == nil
}

// At descends through map keys (string) and slice indexes (int). Any step
// that does not match returns the nil tree.
func (t Tree) At(path ...any) Tree {
	cur := t.v
	for _, step := range path {
		switch key := step.(type) {
		case string:
			m, ok := cur.(map[string]any)
			if !ok {
				return Tree{}
			}
			cur = m[key]
		case int:
			s, ok := cur.([]any)
			if !ok || key < 0 || key >= len(s) {
				return Tree{}
			}
			cur = s[key]
		default:
			return Tree{}
		}
	}
	return Tree{v: cur}
}

// Str returns the string at path, or "".
func (t Tree) Str(path ...any) string {
	s, _ := t.At(path...).v.(string)
	return s
}

// Int returns the integer at path. JSON numbers and numeric strings both
// qualify; anything else yields 0.
func (t Tree) Int(path ...any) int64 {
	switch v := t.At(path...).v.(type) {
	case float64:
		return int64(v)
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

// Bool returns the boolean at path, or false.
func (t Tree) Bool(path ...any) bool {
	b, _ := t.At(path...).v.(bool)
	return b
}

// List returns the elements of the slice at path, or nil.
func (t Tree) List(path ...any) []Tree {
	s, ok := t.At(path...).v.([]any)
	if !ok {
		return nil
	}
	out := make([]Tree, len(s))
	for i, v := range s {
		out[i] = Tree{v: v}
	}
	return out
}

// Keys returns the map keys at path, or nil.
func (t Tree) Keys(path ...any) []string {
	m, ok := t.At(path...).v.(map[string]any)
	if !ok {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// Text coalesces the two ways the source encodes display strings: a plain
// string, a {"simpleText": ...} node, or a {"runs": [{"text": ...}, ...]}
// node whose fragments are concatenated.
func (t Tree) Text(path ...any) string {
	node := t.At(path...)
	if s, ok := node.v.(string); ok {
		return s
	}
	if s := node.Str("simpleText"); s != "" {
		return s
	}
	var joined string
	for _, run := range node.List("runs") {
		joined += run.Str("text")
	}
	return joined
}

// Find returns the first node stored under key anywhere in the tree,
// depth-first. Used to locate renderer shapes whose nesting moves around
// between layout rollouts.
func (t Tree) Find(key string) Tree {
	found := t.FindAll(key, 1)
	if len(found) == 0 {
		return Tree{}
	}
	return found[0]
}

// FindAll collects up to max nodes stored under key anywhere in the tree,
// in depth-first document order. max <= 0 means unbounded.
func (t Tree) FindAll(key string, max int) []Tree {
	var out []Tree
	t.findAll(key, max, &out)
	return out
}

func (t Tree) findAll(key string, max int, out *[]Tree) {
	if max > 0 && len(*out) >= max {
		return
	}
	switch v := t.v.(type) {
	case map[string]any:
		if hit, ok := v[key]; ok {
			*out = append(*out, Tree{v: hit})
			if max > 0 && len(*out) >= max {
				return
			}
		}
		// Sorted keys keep traversal order deterministic across runs.
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			(Tree{v: v[k]}).findAll(key, max, out)
			if max > 0 && len(*out) >= max {
				return
			}
		}
	case []any:
		for _, child := range v {
			(Tree{v: child}).findAll(key, max, out)
			if max > 0 && len(*out) >= max {
				return
			}
		}
	}
}
