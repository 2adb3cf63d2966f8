package extract

import (
	"bytes"
	"encoding/json"

	"github.com/pverhoeven/tubelens/internal/tube"
)

// Markers that precede the embedded data object across known page templates.
// The anchored scan tries the caller's marker first; the balanced scan walks
// these in order as a fallback.
var candidateMarkers = []string{
	"var ytInitialData = ",
	`window["ytInitialData"] = `,
	"ytInitialData = ",
}

// MarkerInitialData is the marker for the browse/watch data graph.
const MarkerInitialData = "var ytInitialData = "

// MarkerPlayerResponse is the marker for the player data graph on watch pages.
const MarkerPlayerResponse = "var ytInitialPlayerResponse = "

// Terminators that close the assignment on stable page templates, tried in
// order by the anchored scan.
var anchoredTerminators = [][]byte{
	[]byte(";</script>"),
	[]byte("};"),
}

// FindJSON extracts the JSON object that follows marker in the page body.
// The anchored scan is the fast path; when it fails or yields an invalid
// span, a balanced-delimiter scan recovers the object by brace counting.
// Returns nil when no object can be found; absence is a common outcome and
// never an error.
func FindJSON(body []byte, marker string) []byte {
	if len(body) == 0 {
		return nil
	}
	if span := anchoredScan(body, []byte(marker)); span != nil {
		return span
	}
	markers := append([]string{marker}, candidateMarkers...)
	for _, m := range markers {
		if span := balancedScan(body, []byte(m)); span != nil {
			return span
		}
	}
	return nil
}

// ParseTree decodes a located span into a generic tree.
func ParseTree(span []byte) (Tree, error) {
	var v any
	if err := json.Unmarshal(span, &v); err != nil {
		return Tree{}, tube.MalformedDataError(err)
	}
	return NewTree(v), nil
}

func anchoredScan(body, marker []byte) []byte {
	at := bytes.Index(body, marker)
	if at < 0 {
		return nil
	}
	rest := body[at+len(marker):]
	open := bytes.IndexByte(rest, '{')
	if open < 0 {
		return nil
	}
	rest = rest[open:]
	for _, term := range anchoredTerminators {
		end := bytes.Index(rest, term)
		if end < 0 {
			continue
		}
		// "};?" terminators include the closing brace itself.
		if term[0] == '}' {
			end++
		}
		span := rest[:end]
		if json.Valid(span) {
			return span
		}
	}
	return nil
}

// balancedScan finds the first '{' after marker and walks forward counting
// nested braces, honoring string literals and backslash escapes, until the
// matching close brace.
func balancedScan(body, marker []byte) []byte {
	at := bytes.Index(body, marker)
	if at < 0 {
		return nil
	}
	rest := body[at+len(marker):]
	open := bytes.IndexByte(rest, '{')
	if open < 0 {
		return nil
	}
	span := balancedSpan(rest[open:])
	if span == nil || !json.Valid(span) {
		return nil
	}
	return span
}

func balancedSpan(data []byte) []byte {
	depth := 0
	inString := false
	escaped := false
	for i, c := range data {
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return data[:i+1]
			}
		}
	}
	return nil
}
