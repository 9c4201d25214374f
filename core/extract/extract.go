package extract

import (
	"encoding/json"
	"errors"
	"strings"
)

// ErrNoJSON reports that no parseable JSON was found in the input. It is a
// legitimate "this text is not structured" signal, not a failure of the
// extractor itself.
var ErrNoJSON = errors.New("no parseable JSON found in text")

// Extract returns the first candidate JSON substring found in text.
// Strategies are attempted in order, first success wins:
//
//  1. The whole trimmed text parses as JSON.
//  2. A fenced code block (triple backtick, optional "json" tag) whose
//     contents parse as JSON.
//  3. A string-aware brace walk from the first '{' to its balancing '}'.
//
// There is deliberately no loose regex fallback: a regex that ignores string
// literal boundaries matches braces embedded in quoted text. The brace walk
// supersedes it.
//
// When ok is true the returned candidate is itself syntactically valid JSON,
// so Extract(candidate) returns the candidate unchanged.
func Extract(text string) (candidate string, ok bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", false
	}

	if json.Valid([]byte(trimmed)) {
		return trimmed, true
	}

	if fenced, found := fencedBlock(trimmed); found {
		if json.Valid([]byte(fenced)) {
			return fenced, true
		}
	}

	if walked, found := braceWalk(trimmed); found {
		if json.Valid([]byte(walked)) {
			return walked, true
		}
	}

	return "", false
}

// fencedBlock returns the trimmed contents of the first triple-backtick code
// block in s. An optional language tag after the opening fence is skipped.
func fencedBlock(s string) (string, bool) {
	const fence = "```"

	start := strings.Index(s, fence)
	if start < 0 {
		return "", false
	}
	body := s[start+len(fence):]

	// Skip the language tag, if any, up to the first newline.
	if nl := strings.IndexByte(body, '\n'); nl >= 0 {
		tag := strings.TrimSpace(body[:nl])
		if tag == "" || isFenceTag(tag) {
			body = body[nl+1:]
		}
	}

	end := strings.Index(body, fence)
	if end < 0 {
		return "", false
	}
	return strings.TrimSpace(body[:end]), true
}

func isFenceTag(tag string) bool {
	for i := 0; i < len(tag); i++ {
		c := tag[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}

// braceWalk scans from the first '{' tracking brace depth while respecting
// string literals: an unescaped '"' toggles the in-string flag and a '\'
// consumes exactly the one following byte. Depth returning to zero closes the
// candidate.
func braceWalk(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		c := s[i]

		if escaped {
			escaped = false
			continue
		}

		if inString {
			switch c {
			case '\\':
				escaped = true
			case '"':
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
				return s[start : i+1], true
			}
		}
	}

	return "", false
}
