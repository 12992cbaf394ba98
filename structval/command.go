package structval

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCommandEntry indicates a raw value that does not yield the
// required command-palette attributes.
var ErrInvalidCommandEntry = errors.New("invalid command entry")

// CommandEntry is a parsed command-palette entry.
type CommandEntry struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Action      string `json:"action"`
}

// ParseCommandEntry parses a comma-separated attribute list of the form
// `title:"...",description:"...",action:"..."`.
//
// A value is either a double-quoted literal (terminated by the next `"`, no
// escape handling) or an unquoted run extending to the next comma, so an
// unquoted value containing `:` (such as `csi:0m`) is captured whole. The
// attribute name/value separator is only the first `:` after each comma
// boundary. description is optional; unrecognized attribute names are
// ignored. Missing title or action is a failure.
func ParseCommandEntry(value string) (CommandEntry, error) {
	s := strings.TrimSpace(value)
	if s == "" {
		return CommandEntry{}, fmt.Errorf("%w: empty value", ErrInvalidCommandEntry)
	}

	var (
		entry               CommandEntry
		hasTitle, hasAction bool
	)

	i := 0
	for i < len(s) {
		// Skip attribute separators and surrounding whitespace.
		for i < len(s) && (s[i] == ',' || s[i] == ' ' || s[i] == '\t') {
			i++
		}

		if i >= len(s) {
			break
		}

		start := i
		for i < len(s) && isWordByte(s[i]) {
			i++
		}

		name := s[start:i]

		if name == "" || i >= len(s) || s[i] != ':' {
			// Malformed segment; skip to the next comma boundary.
			for i < len(s) && s[i] != ',' {
				i++
			}

			continue
		}

		i++ // consume ':'

		var val string

		if i < len(s) && s[i] == '"' {
			i++

			end := strings.IndexByte(s[i:], '"')
			if end < 0 {
				val = s[i:]
				i = len(s)
			} else {
				val = s[i : i+end]
				i += end + 1
			}
		} else {
			end := strings.IndexByte(s[i:], ',')
			if end < 0 {
				val = s[i:]
				i = len(s)
			} else {
				val = s[i : i+end]
				i += end
			}
		}

		val = strings.TrimSpace(val)

		switch name {
		case "title":
			entry.Title = val
			hasTitle = true
		case "description":
			entry.Description = val
		case "action":
			entry.Action = val
			hasAction = true
		}
	}

	if !hasTitle || !hasAction {
		return CommandEntry{}, fmt.Errorf("%w: missing title or action in %q", ErrInvalidCommandEntry, value)
	}

	return entry, nil
}

// isWordByte reports whether b can appear in an attribute name.
func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' ||
		b >= 'A' && b <= 'Z' ||
		b >= '0' && b <= '9' ||
		b == '_'
}
