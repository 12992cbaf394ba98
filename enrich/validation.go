package enrich

import "github.com/confschema/confschema/schema"

// validationRules maps each value type to its validation rule table. Keys
// absent from both layers of a table carry no validation. Exact-key entries
// are written fully expanded because they replace, not extend, the type
// default.
var validationRules = map[schema.ValueType]ruleSet{
	schema.TypeNumber: {
		byKey: map[string]map[string]any{
			"font-size":                     {"min": 1, "max": 500, "positive": true, "unit": "pt"},
			"font-thicken-strength":         {"min": 0, "max": 255, "integer": true, "unit": ""},
			"abnormal-command-exit-runtime": {"min": 0, "integer": true, "unit": "ms"},
			"scrollback-limit":              {"min": 0, "integer": true, "unit": "bytes"},
			"window-height":                 {"min": 0, "integer": true, "unit": "cells"},
			"window-width":                  {"min": 0, "integer": true, "unit": "cells"},
			"window-position-x":             {"integer": true, "unit": "px"},
			"window-position-y":             {"integer": true, "unit": "px"},
			"minimum-contrast":              {"min": 1, "max": 21},
		},
	},

	schema.TypeOpacity: {
		byKey: map[string]map[string]any{
			"cursor-opacity":     {"min": 0, "max": 1},
			"background-opacity": {"min": 0, "max": 1},
			// Background image opacity may exceed 1.
			"background-image-opacity": {"min": 0},
			"unfocused-split-opacity":  {"min": 0.15, "max": 1},
		},
	},

	schema.TypeEnum: {
		defaults: map[string]any{"caseSensitive": false},
		byKey: map[string]map[string]any{
			"font-synthetic-style": {"caseSensitive": false, "allowNegation": true, "separator": ","},
			"font-shaping-break":   {"caseSensitive": false, "allowNegation": true, "separator": ","},
			"freetype-load-flags":  {"caseSensitive": false, "allowNegation": true, "separator": ","},
			"mouse-scroll-multiplier": {
				"caseSensitive": false,
				"customPattern": `^(precision:|discrete:)?[\d.]+$`,
			},
		},
	},

	schema.TypeColor: {
		byKey: map[string]map[string]any{
			"selection-foreground": {"allowSpecialValues": []string{"cell-foreground", "cell-background"}},
			"selection-background": {"allowSpecialValues": []string{"cell-foreground", "cell-background"}},
			"cursor-color":         {"allowSpecialValues": []string{"cell-foreground", "cell-background"}},
			"cursor-text":          {"allowSpecialValues": []string{"cell-foreground", "cell-background"}},
		},
	},

	schema.TypeText: {
		byKey: map[string]map[string]any{
			"theme": {"pattern": `^(light:.+,dark:.+|.+)$`},
			"class": {"pattern": `^[a-zA-Z][a-zA-Z0-9_.-]*$`},
		},
	},

	schema.TypeFilepath: {
		byKey: map[string]map[string]any{
			"background-image": {"extensions": []string{".png", ".jpg", ".jpeg"}},
		},
	},

	schema.TypeAdjustment: {
		defaults: map[string]any{
			"allowPercentage": true,
			"allowInteger":    true,
			"minPercentage":   -100,
			"maxPercentage":   100,
		},
	},

	schema.TypePadding: {
		defaults: map[string]any{"allowPair": true, "min": 0},
	},

	schema.TypeFontStyle: {
		defaults: map[string]any{"allowDisable": true, "allowDefault": true},
	},

	schema.TypeRepeatableText: {
		defaults: map[string]any{"allowEmpty": true},
		byKey: map[string]map[string]any{
			"font-feature":               {"format": "plain", "allowEmpty": true},
			"font-variation":             {"format": "key-value", "allowEmpty": true},
			"font-variation-bold":        {"format": "key-value", "allowEmpty": true},
			"font-variation-italic":      {"format": "key-value", "allowEmpty": true},
			"font-variation-bold-italic": {"format": "key-value", "allowEmpty": true},
			"font-codepoint-map":         {"format": "assignment", "allowEmpty": true},
			"env":                        {"format": "key-value", "allowEmpty": true},
		},
	},

	schema.TypeKeybinding: {
		defaults: map[string]any{
			"requireModifier": false,
			"allowSequences":  true,
			"allowPrefixes":   []string{"global:", "all:", "unconsumed:", "performable:"},
		},
	},

	schema.TypeCommand: {
		defaults: map[string]any{
			"allowPrefixes": []string{"direct:", "shell:"},
		},
	},
}

// Validation returns the validation rules for (key, valueType), or nil when
// the key carries none. The result is a fresh copy on every call.
func Validation(key string, valueType schema.ValueType) map[string]any {
	rules, ok := validationRules[valueType]
	if !ok {
		return nil
	}

	return rules.lookup(key)
}
