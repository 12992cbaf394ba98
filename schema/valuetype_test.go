package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/confschema/confschema/schema"
)

func TestValueTypeValid(t *testing.T) {
	t.Parallel()

	for _, vt := range schema.ValueTypes() {
		assert.True(t, vt.Valid(), "value type %q", vt)
	}

	assert.False(t, schema.ValueType("").Valid())
	assert.False(t, schema.ValueType("mystery").Valid())
	assert.False(t, schema.ValueType("Text").Valid())
}

func TestValueTypeInherentlyRepeatable(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		valueType schema.ValueType
		want      bool
	}{
		"repeatable-text":    {valueType: schema.TypeRepeatableText, want: true},
		"keybinding":         {valueType: schema.TypeKeybinding, want: true},
		"command is not":     {valueType: schema.TypeCommand, want: false},
		"text is not":        {valueType: schema.TypeText, want: false},
		"font-family is not": {valueType: schema.TypeFontFamily, want: false},
		"unknown is not":     {valueType: schema.ValueType("mystery"), want: false},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, tc.valueType.InherentlyRepeatable())
		})
	}
}

func TestPlatformValid(t *testing.T) {
	t.Parallel()

	for _, p := range schema.Platforms() {
		assert.True(t, p.Valid(), "platform %q", p)
	}

	assert.False(t, schema.Platform("").Valid())
	assert.False(t, schema.Platform("beos").Valid())
	assert.False(t, schema.Platform("MacOS").Valid())
}
