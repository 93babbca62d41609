package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	thinkBlockPattern = regexp.MustCompile(`(?s)<think>.*?</think>`)
	jsonFencePattern  = regexp.MustCompile("(?i)```json")
)

// SanitizeModelOutput removes reasoning traces and markdown code fences from
// generated text and trims the result. The stripping is repeated until the
// text stops changing, so sanitizing an already sanitized string is a no-op.
func SanitizeModelOutput(raw string) string {
	text := raw
	for {
		next := thinkBlockPattern.ReplaceAllString(text, "")
		next = jsonFencePattern.ReplaceAllString(next, "")
		next = strings.ReplaceAll(next, "```", "")
		next = strings.TrimSpace(next)
		if next == text {
			return next
		}
		text = next
	}
}

// DecodeModelJSON sanitizes raw model output and decodes it into v. When the
// sanitized text is not valid JSON on its own (prose around the payload, for
// instance) each balanced object or array in it is tried in order of
// appearance until one decodes. Every failure wraps ErrMalformedResponse.
func DecodeModelJSON(raw string, v any) error {
	text := SanitizeModelOutput(raw)
	if text == "" {
		return fmt.Errorf("%w: empty response", ErrMalformedResponse)
	}

	err := json.Unmarshal([]byte(text), v)
	if err == nil {
		return nil
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) && decodeEmbeddedJSON(text, v) {
		return nil
	}

	return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
}

// decodeEmbeddedJSON decodes the first balanced, well-formed object or array
// in s that fits v.
func decodeEmbeddedJSON(s string, v any) bool {
	for start := 0; start < len(s); start++ {
		var end int
		switch s[start] {
		case '{':
			end = findClosing(s, start, '{', '}')
		case '[':
			end = findClosing(s, start, '[', ']')
		default:
			continue
		}
		if end == -1 {
			continue
		}

		candidate := []byte(s[start : end+1])
		if len(candidate) == len(s) || !json.Valid(candidate) {
			continue
		}
		if json.Unmarshal(candidate, v) == nil {
			return true
		}
	}
	return false
}

// findClosing returns the index of the delimiter closing the one at start,
// skipping over string literals, or -1.
func findClosing(s string, start int, open, close byte) int {
	if start >= len(s) || s[start] != open {
		return -1
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		char := s[i]

		if escaped {
			escaped = false
			continue
		}
		if char == '\\' && inString {
			escaped = true
			continue
		}
		if char == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch char {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}
