package structval

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidKeybinding indicates a raw value that does not match the
// `combo=action` keybinding grammar.
var ErrInvalidKeybinding = errors.New("invalid keybinding")

// KeyCombo is a parsed key combination: zero or more modifiers in
// left-to-right order, then the key itself.
type KeyCombo struct {
	Modifiers []string `json:"modifiers"`
	Key       string   `json:"key"`
}

// KeybindingEntry is a parsed keybinding assignment. Action is the unparsed
// remainder after the first `=`; it may itself contain `:` or `=` and is not
// decomposed further at this layer.
type KeybindingEntry struct {
	KeyCombo KeyCombo `json:"keyCombo"`
	Action   string   `json:"action"`
}

// ParseKeyCombo splits a combo on `+`: the last token is the key, everything
// before it is a modifier.
func ParseKeyCombo(combo string) KeyCombo {
	parts := strings.Split(combo, "+")

	return KeyCombo{
		Modifiers: append([]string{}, parts[:len(parts)-1]...),
		Key:       parts[len(parts)-1],
	}
}

// ParseKeybinding parses a raw `combo=action` value. The split is on the
// FIRST `=` only. It fails when the separator is absent or either side trims
// to empty.
func ParseKeybinding(value string) (KeybindingEntry, error) {
	combo, action, found := strings.Cut(strings.TrimSpace(value), "=")
	if !found {
		return KeybindingEntry{}, fmt.Errorf("%w: missing %q separator in %q", ErrInvalidKeybinding, "=", value)
	}

	combo = strings.TrimSpace(combo)
	action = strings.TrimSpace(action)

	if combo == "" || action == "" {
		return KeybindingEntry{}, fmt.Errorf("%w: empty combo or action in %q", ErrInvalidKeybinding, value)
	}

	return KeybindingEntry{
		KeyCombo: ParseKeyCombo(combo),
		Action:   action,
	}, nil
}
