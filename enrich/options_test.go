package enrich_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/confschema/confschema/enrich"
	"github.com/confschema/confschema/schema"
)

func TestOptions(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		key       string
		valueType schema.ValueType
		want      map[string]any
	}{
		"opacity slider bounds": {
			key:       "cursor-opacity",
			valueType: schema.TypeOpacity,
			want:      map[string]any{"min": 0, "max": 1, "step": 0.01},
		},
		"enum default has empty values": {
			key:       "unlisted-enum",
			valueType: schema.TypeEnum,
			want:      map[string]any{"allowCustom": false, "multiselect": false, "values": []any{}},
		},
		"color type default": {
			key:       "background",
			valueType: schema.TypeColor,
			want:      map[string]any{"format": "hex", "alpha": false},
		},
		"padding labels": {
			key:       "window-padding-x",
			valueType: schema.TypePadding,
			want:      map[string]any{"allowPair": true, "labels": []string{"Left", "Right"}},
		},
		"adjustment default unit": {
			key:       "adjust-cell-height",
			valueType: schema.TypeAdjustment,
			want:      map[string]any{"defaultUnit": "px"},
		},
		"no table for boolean": {
			key:       "window-vsync",
			valueType: schema.TypeBoolean,
			want:      nil,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, enrich.Options(tc.key, tc.valueType))
		})
	}
}

func TestOptionsEnumValues(t *testing.T) {
	t.Parallel()

	opts := enrich.Options("cursor-style", schema.TypeEnum)
	require.NotNil(t, opts)

	values, ok := opts["values"].([]any)
	require.True(t, ok)
	require.Len(t, values, 4)

	first, ok := values[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "block", first["value"])
	assert.Equal(t, "Block cursor", first["description"])
}

func TestOptionsReturnsCopies(t *testing.T) {
	t.Parallel()

	first := enrich.Options("cursor-style", schema.TypeEnum)
	require.NotNil(t, first)

	values, ok := first["values"].([]any)
	require.True(t, ok)

	entry, ok := values[0].(map[string]any)
	require.True(t, ok)

	entry["value"] = "mutated"

	second := enrich.Options("cursor-style", schema.TypeEnum)
	secondValues, ok := second["values"].([]any)
	require.True(t, ok)

	secondEntry, ok := secondValues[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "block", secondEntry["value"])
}
