package properties_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/confschema/confschema/properties"
	"github.com/confschema/confschema/stringtest"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input          string
		key            string
		wantRawValues  []string
		wantDocComment string
		wantPosition   int
	}{
		"plain assignment": {
			input: stringtest.JoinLF(
				"font-size = 13",
			),
			key:           "font-size",
			wantRawValues: []string{"13"},
		},
		"comment block precedes key": {
			input: stringtest.JoinLF(
				"# The font size to use.",
				"# Fractional values are rounded.",
				"font-size = 13",
			),
			key:            "font-size",
			wantRawValues:  []string{"13"},
			wantDocComment: "The font size to use.\nFractional values are rounded.",
		},
		"blank line keeps comment block alive": {
			input: stringtest.JoinLF(
				"# The font size to use.",
				"",
				"font-size = 13",
			),
			key:            "font-size",
			wantRawValues:  []string{"13"},
			wantDocComment: "The font size to use.",
		},
		"empty comment line contributes nothing": {
			input: stringtest.JoinLF(
				"# The font size to use.",
				"#",
				"# Fractional values are rounded.",
				"font-size = 13",
			),
			key:            "font-size",
			wantRawValues:  []string{"13"},
			wantDocComment: "The font size to use.\nFractional values are rounded.",
		},
		"empty key assignment keeps comment block alive": {
			input: stringtest.JoinLF(
				"# The font size to use.",
				"=orphan",
				"font-size = 13",
			),
			key:            "font-size",
			wantRawValues:  []string{"13"},
			wantDocComment: "The font size to use.",
		},
		"junk line discards comment block": {
			input: stringtest.JoinLF(
				"# The font size to use.",
				"!!! not a config line",
				"font-size = 13",
			),
			key:           "font-size",
			wantRawValues: []string{"13"},
		},
		"duplicate keys accumulate raw values": {
			input: stringtest.JoinLF(
				"# Bind a key.",
				"keybind = ctrl+a=select_all",
				"keybind = ctrl+c=copy",
			),
			key:            "keybind",
			wantRawValues:  []string{"ctrl+a=select_all", "ctrl+c=copy"},
			wantDocComment: "Bind a key.",
		},
		"first occurrence comment wins": {
			input: stringtest.JoinLF(
				"# First comment.",
				"theme = dark",
				"# Second comment.",
				"theme = light",
			),
			key:            "theme",
			wantRawValues:  []string{"dark", "light"},
			wantDocComment: "First comment.",
		},
		"empty value is preserved": {
			input: stringtest.JoinLF(
				"title = ",
			),
			key:           "title",
			wantRawValues: []string{""},
		},
		"value containing equals splits on first": {
			input: stringtest.JoinLF(
				"keybind = ctrl+shift+v=paste",
			),
			key:           "keybind",
			wantRawValues: []string{"ctrl+shift+v=paste"},
		},
		"position counts distinct keys": {
			input: stringtest.JoinLF(
				"first = 1",
				"second = 2",
				"first = 3",
				"third = 4",
			),
			key:           "third",
			wantRawValues: []string{"4"},
			wantPosition:  2,
		},
		"crlf line endings": {
			input: stringtest.JoinCRLF(
				"# The font size to use.",
				"font-size = 13",
			),
			key:            "font-size",
			wantRawValues:  []string{"13"},
			wantDocComment: "The font size to use.",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			src := properties.Parse([]byte(tc.input))

			facts, ok := src.Facts(tc.key)
			require.True(t, ok)

			assert.Equal(t, tc.key, facts.Key)
			assert.Equal(t, tc.wantRawValues, facts.RawValues)
			assert.Equal(t, tc.wantDocComment, facts.DocComment)
			assert.Equal(t, tc.wantPosition, facts.Position)
		})
	}
}

func TestParseDiagnostics(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input     string
		wantLines []int
	}{
		"no anomalies": {
			input: stringtest.JoinLF(
				"# Comment.",
				"key = value",
			),
			wantLines: nil,
		},
		"junk line": {
			input: stringtest.JoinLF(
				"key = value",
				"garbage without assignment",
			),
			wantLines: []int{2},
		},
		"empty key assignment": {
			input: stringtest.JoinLF(
				"= orphaned value",
				"key = value",
			),
			wantLines: []int{1},
		},
		"multiple anomalies": {
			input: stringtest.JoinLF(
				"garbage",
				"key = value",
				"more garbage",
			),
			wantLines: []int{1, 3},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			src := properties.Parse([]byte(tc.input))

			diags := src.Diagnostics()

			var lines []int
			for _, d := range diags {
				lines = append(lines, d.Line)
			}

			assert.Equal(t, tc.wantLines, lines)
		})
	}
}

func TestSourceKeys(t *testing.T) {
	t.Parallel()

	src := properties.Parse([]byte(stringtest.JoinLF(
		"beta = 2",
		"alpha = 1",
		"beta = 3",
		"gamma = 4",
	)))

	assert.Equal(t, []string{"beta", "alpha", "gamma"}, src.Keys())
	assert.Equal(t, 3, src.Len())

	pos, ok := src.Position("gamma")
	require.True(t, ok)
	assert.Equal(t, 2, pos)

	_, ok = src.Position("missing")
	assert.False(t, ok)
}

func TestSourceKeysCopy(t *testing.T) {
	t.Parallel()

	src := properties.Parse([]byte("alpha = 1\nbeta = 2"))

	keys := src.Keys()
	keys[0] = "mutated"

	assert.Equal(t, []string{"alpha", "beta"}, src.Keys())
}
