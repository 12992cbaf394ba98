package properties

import (
	"bufio"
	"bytes"
	"strings"
)

// KeyFacts holds everything the source records about one distinct key.
type KeyFacts struct {
	// Key is the key name.
	Key string
	// RawValues are all assigned values in source order, duplicates included.
	RawValues []string
	// DocComment is the comment block immediately preceding the key's first
	// occurrence, lines joined with \n. Empty when the key has no
	// documentation.
	DocComment string
	// Position is the index of the key's first appearance across the whole
	// source.
	Position int
}

// Diagnostic records one recoverable parsing anomaly.
type Diagnostic struct {
	// Line is the 1-based source line number.
	Line int
	// Text is the offending line, trimmed.
	Text string
	// Reason describes why the line was skipped.
	Reason string
}

// Source is the parse result: per-key facts, the canonical key order, and any
// diagnostics. It is immutable once returned by [Parse].
type Source struct {
	keys  []string
	facts map[string]*KeyFacts
	diags []Diagnostic
}

// Parse reads a properties source and derives its key facts. It never fails;
// malformed lines become diagnostics.
func Parse(data []byte) *Source {
	src := &Source{
		facts: make(map[string]*KeyFacts),
	}

	var comment []string

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "":
			// Blank lines keep an in-progress comment block alive.

		case strings.HasPrefix(line, "#"):
			text := strings.TrimSpace(strings.TrimPrefix(line, "#"))
			if text != "" {
				comment = append(comment, text)
			}

		case strings.Contains(line, "="):
			key, value, _ := strings.Cut(line, "=")
			key = strings.TrimSpace(key)
			value = strings.TrimSpace(value)

			// An empty-key assignment is skipped but leaves the
			// in-progress comment block alive for the next key.
			if key == "" {
				src.diags = append(src.diags, Diagnostic{
					Line:   lineNo,
					Text:   line,
					Reason: "assignment with empty key",
				})

				continue
			}

			facts, seen := src.facts[key]
			if !seen {
				facts = &KeyFacts{
					Key:        key,
					DocComment: strings.Join(comment, "\n"),
					Position:   len(src.keys),
				}
				src.facts[key] = facts
				src.keys = append(src.keys, key)
			}

			facts.RawValues = append(facts.RawValues, value)
			comment = nil

		default:
			src.diags = append(src.diags, Diagnostic{
				Line:   lineNo,
				Text:   line,
				Reason: "not a comment, blank, or assignment",
			})

			comment = nil
		}
	}

	return src
}

// Facts returns the facts for key, if the key appears in the source.
func (s *Source) Facts(key string) (*KeyFacts, bool) {
	f, ok := s.facts[key]

	return f, ok
}

// Keys returns every distinct key in canonical (first-appearance) order.
func (s *Source) Keys() []string {
	out := make([]string, len(s.keys))
	copy(out, s.keys)

	return out
}

// Len returns the number of distinct keys.
func (s *Source) Len() int {
	return len(s.keys)
}

// Position returns the canonical position of key, or false when the key does
// not appear in the source.
func (s *Source) Position(key string) (int, bool) {
	f, ok := s.facts[key]
	if !ok {
		return 0, false
	}

	return f.Position, true
}

// Diagnostics returns the recoverable anomalies encountered while parsing.
func (s *Source) Diagnostics() []Diagnostic {
	out := make([]Diagnostic, len(s.diags))
	copy(out, s.diags)

	return out
}
