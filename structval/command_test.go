package structval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/confschema/confschema/structval"
)

func TestParseCommandEntry(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input       string
		want        structval.CommandEntry
		expectError bool
	}{
		"all attributes quoted": {
			input: `title:"Copy",description:"Copy the selection",action:"copy_to_clipboard"`,
			want: structval.CommandEntry{
				Title:       "Copy",
				Description: "Copy the selection",
				Action:      "copy_to_clipboard",
			},
		},
		"description optional": {
			input: `title:"Paste",action:"paste_from_clipboard"`,
			want: structval.CommandEntry{
				Title:  "Paste",
				Action: "paste_from_clipboard",
			},
		},
		"unquoted value with colon captured whole": {
			input: `title:"Reset styles",action:csi:0m`,
			want: structval.CommandEntry{
				Title:  "Reset styles",
				Action: "csi:0m",
			},
		},
		"quoted value may contain commas": {
			input: `title:"Split right, focused",action:"new_split:right"`,
			want: structval.CommandEntry{
				Title:  "Split right, focused",
				Action: "new_split:right",
			},
		},
		"whitespace between attributes": {
			input: `title:"Zoom", action:"toggle_split_zoom"`,
			want: structval.CommandEntry{
				Title:  "Zoom",
				Action: "toggle_split_zoom",
			},
		},
		"unrecognized attribute ignored": {
			input: `title:"Quit",icon:"power",action:"quit"`,
			want: structval.CommandEntry{
				Title:  "Quit",
				Action: "quit",
			},
		},
		"malformed segment skipped": {
			input: `title:"Quit",???,action:"quit"`,
			want: structval.CommandEntry{
				Title:  "Quit",
				Action: "quit",
			},
		},
		"unterminated quote runs to end": {
			input: `title:"Quit",action:"quit`,
			want: structval.CommandEntry{
				Title:  "Quit",
				Action: "quit",
			},
		},
		"missing action": {
			input:       `title:"Copy"`,
			expectError: true,
		},
		"missing title": {
			input:       `action:"copy_to_clipboard"`,
			expectError: true,
		},
		"empty value": {
			input:       "",
			expectError: true,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			entry, err := structval.ParseCommandEntry(tc.input)
			if tc.expectError {
				require.Error(t, err)
				require.ErrorIs(t, err, structval.ErrInvalidCommandEntry)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, entry)
		})
	}
}
