// Package parsing converts raw model completions into strictly typed results.
//
// Every shape is parsed JSON-first; when the completion is not JSON of the
// expected shape, a line-based heuristic extractor takes over.
package parsing

import (
	"encoding/json"
	"strings"

	"github.com/jonathan/resume-studio/internal/llm"
	"github.com/jonathan/resume-studio/internal/schemas"
)

const (
	shapeQuestions = "questions"
	shapeFeedback  = "feedback"
)

// decodeStrict unmarshals the completion and validates it against the named schema.
// A fenced block is unwrapped first; if the whole text still does not parse,
// the outermost span between the opening and closing delimiters is tried, but
// only when that span occupies whole lines. A fragment inside a line of prose
// is left to the heuristic extractors.
func decodeStrict(raw, shape string, schema schemas.Name, opening, closing byte) ([]byte, error) {
	text := llm.CleanJSONBlock(raw)

	candidates := []string{text}
	start, end := strings.IndexByte(text, opening), strings.LastIndexByte(text, closing)
	if start >= 0 && end > start && text[start:end+1] != text && ownsLines(text, start, end) {
		candidates = append(candidates, text[start:end+1])
	}

	var lastErr error
	for _, candidate := range candidates {
		var value any
		if err := json.Unmarshal([]byte(candidate), &value); err != nil {
			lastErr = &ParseError{Shape: shape, Message: "invalid JSON", Cause: err}
			continue
		}
		if err := schemas.Validate(schema, value); err != nil {
			lastErr = &ParseError{Shape: shape, Message: "unexpected shape", Cause: err}
			continue
		}
		return []byte(candidate), nil
	}
	return nil, lastErr
}

// ownsLines reports whether text[start:end+1] has only whitespace between it
// and the surrounding line breaks.
func ownsLines(text string, start, end int) bool {
	lineStart := strings.LastIndexByte(text[:start], '\n') + 1
	if strings.TrimSpace(text[lineStart:start]) != "" {
		return false
	}

	rest := text[end+1:]
	if i := strings.IndexByte(rest, '\n'); i >= 0 {
		rest = rest[:i]
	}
	return strings.TrimSpace(rest) == ""
}

// nonBlank drops entries that contain only whitespace.
func nonBlank(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(item) != "" {
			out = append(out, item)
		}
	}
	return out
}
