package enrich

import "github.com/confschema/confschema/schema"

// choice builds one selectable enumeration entry. Every entry carries a
// value; the description is optional.
func choice(value, description string) map[string]any {
	entry := map[string]any{"value": value}
	if description != "" {
		entry["description"] = description
	}

	return entry
}

// optionsRules maps each value type to its UI-option rule table, an
// independent namespace from the validation tables. Enumeration value lists
// are ordered.
var optionsRules = map[schema.ValueType]ruleSet{
	schema.TypeNumber: {
		byKey: map[string]map[string]any{
			"font-size":             {"step": 0.5, "showUnit": true},
			"font-thicken-strength": {"step": 1, "showUnit": false},
		},
	},

	schema.TypeOpacity: {
		byKey: map[string]map[string]any{
			"cursor-opacity":           {"min": 0, "max": 1, "step": 0.01},
			"background-opacity":       {"min": 0, "max": 1, "step": 0.01},
			"background-image-opacity": {"min": 0, "max": 2, "step": 0.01},
			"unfocused-split-opacity":  {"min": 0.15, "max": 1, "step": 0.01},
		},
	},

	schema.TypeEnum: {
		defaults: map[string]any{"allowCustom": false, "multiselect": false, "values": []any{}},
		byKey: map[string]map[string]any{
			"font-synthetic-style": {
				"allowCustom": false,
				"multiselect": true,
				"values": []any{
					choice("bold", "Synthesize bold style"),
					choice("italic", "Synthesize italic style"),
					choice("bold-italic", "Synthesize bold italic style"),
				},
			},
			"font-shaping-break": {
				"allowCustom": false,
				"multiselect": true,
				"values": []any{
					choice("cursor", "Break runs under the cursor"),
				},
			},
			"freetype-load-flags": {
				"allowCustom": false,
				"multiselect": true,
				"values": []any{
					choice("hinting", "Enable font hinting"),
					choice("force-autohint", "Always use FreeType auto-hinter"),
					choice("monochrome", "1-bit monochrome rendering"),
					choice("autohint", "Enable auto-hinter"),
				},
			},
			"alpha-blending": {
				"allowCustom": false,
				"multiselect": false,
				"values": []any{
					choice("native", "Use native color space (Display P3 on macOS, sRGB on Linux)"),
					choice("linear", "Linear space blending (eliminates darkening artifacts)"),
					choice("linear-corrected", "Linear with correction for text"),
				},
			},
			"cursor-style": {
				"allowCustom": false,
				"multiselect": false,
				"values": []any{
					choice("block", "Block cursor"),
					choice("bar", "Bar cursor"),
					choice("underline", "Underline cursor"),
					choice("block_hollow", "Hollow block cursor"),
				},
			},
			"cursor-style-blink": {
				"allowCustom": true,
				"multiselect": false,
				"values": []any{
					choice("", "Default (blink enabled, respects DEC mode 12)"),
					choice("true", "Always blink"),
					choice("false", "Never blink"),
				},
			},
			"scroll-to-bottom": {
				"allowCustom": false,
				"multiselect": true,
				"values": []any{
					choice("keystroke", "Scroll on keystroke"),
					choice("output", "Scroll on output"),
				},
			},
			"mouse-shift-capture": {
				"allowCustom": false,
				"multiselect": false,
				"values": []any{
					choice("false", "Shift extends selection (can be overridden)"),
					choice("true", "Shift sent to program (can be overridden)"),
					choice("never", "Always extend selection"),
					choice("always", "Always send to program"),
				},
			},
			"link-previews": {
				"allowCustom": false,
				"multiselect": false,
				"values": []any{
					choice("true", "Show previews for all links"),
					choice("false", "Never show previews"),
					choice("osc8", "Only show for OSC 8 hyperlinks"),
				},
			},
			"window-padding-color": {
				"allowCustom": false,
				"multiselect": false,
				"values": []any{
					choice("background", "Use background color"),
					choice("extend", "Extend nearest grid cell color"),
					choice("extend-always", "Always extend (no heuristics)"),
				},
			},
			"window-decoration": {
				"allowCustom": false,
				"multiselect": false,
				"values": []any{
					choice("auto", "Automatic (native look)"),
					choice("none", "No decorations"),
					choice("client", "Client-side decorations"),
					choice("server", "Server-side decorations"),
				},
			},
			"window-subtitle": {
				"allowCustom": false,
				"multiselect": false,
				"values": []any{
					choice("false", "No subtitle"),
					choice("working-directory", "Show working directory"),
				},
			},
			"window-theme": {
				"allowCustom": false,
				"multiselect": false,
				"values": []any{
					choice("auto", "Auto-detect from background color"),
					choice("system", "Use system theme"),
					choice("light", "Always use light theme"),
					choice("dark", "Always use dark theme"),
					choice("ghostty", "Use Ghostty config colors (Linux only)"),
				},
			},
			"window-colorspace": {
				"allowCustom": false,
				"multiselect": false,
				"values": []any{
					choice("srgb", "sRGB color space"),
					choice("display-p3", "Display P3 color space"),
				},
			},
			"background-image-position": {
				"allowCustom": false,
				"multiselect": false,
				"values": []any{
					choice("top-left", ""), choice("top-center", ""), choice("top-right", ""),
					choice("center-left", ""), choice("center", ""), choice("center-right", ""),
					choice("bottom-left", ""), choice("bottom-center", ""), choice("bottom-right", ""),
				},
			},
			"background-image-fit": {
				"allowCustom": false,
				"multiselect": false,
				"values": []any{
					choice("contain", "Scale to fit (preserves aspect ratio)"),
					choice("cover", "Scale to fill (may clip)"),
					choice("stretch", "Stretch to fill (ignores aspect ratio)"),
					choice("none", "No scaling"),
				},
			},
			"grapheme-width-method": {
				"allowCustom": false,
				"multiselect": false,
				"values": []any{
					choice("unicode", "Use Unicode standard"),
					choice("legacy", "Use legacy method (wcswidth)"),
				},
			},
			"working-directory": {
				"allowCustom": true,
				"multiselect": false,
				"values": []any{
					choice("home", "User home directory"),
					choice("inherit", "Inherit from launching process"),
				},
			},
			"mouse-scroll-multiplier": {
				"allowCustom": true,
				"multiselect": false,
				"values": []any{
					choice("precision:1,discrete:3", "Default (1x precision, 3x discrete)"),
				},
			},
			"background-blur": {
				"allowCustom": true,
				"multiselect": false,
				"values": []any{
					choice("false", "No blur"),
					choice("true", "Default blur (intensity 20)"),
					choice("20", "Blur intensity 20"),
				},
			},
		},
	},

	schema.TypeFilepath: {
		byKey: map[string]map[string]any{
			"background-image":  {"fileType": "image", "dialogTitle": "Select Background Image"},
			"working-directory": {"fileType": "directory", "dialogTitle": "Select Working Directory"},
		},
	},

	schema.TypeColor: {
		defaults: map[string]any{"format": "hex", "alpha": false},
	},

	schema.TypePadding: {
		byKey: map[string]map[string]any{
			"window-padding-x": {"allowPair": true, "labels": []string{"Left", "Right"}},
			"window-padding-y": {"allowPair": true, "labels": []string{"Top", "Bottom"}},
		},
	},

	schema.TypeFontStyle: {
		defaults: map[string]any{"allowDisable": true},
	},

	schema.TypeRepeatableText: {
		byKey: map[string]map[string]any{
			"font-family":                {"placeholder": "Font family name", "format": "plain", "allowEmpty": true},
			"font-family-bold":           {"placeholder": "Font family name", "format": "plain", "allowEmpty": true},
			"font-family-italic":         {"placeholder": "Font family name", "format": "plain", "allowEmpty": true},
			"font-family-bold-italic":    {"placeholder": "Font family name", "format": "plain", "allowEmpty": true},
			"font-feature":               {"placeholder": "e.g., -calt, +liga", "format": "plain"},
			"font-variation":             {"placeholder": "e.g., wght=400", "format": "key-value"},
			"font-variation-bold":        {"placeholder": "e.g., wght=400", "format": "key-value"},
			"font-variation-italic":      {"placeholder": "e.g., wght=400", "format": "key-value"},
			"font-variation-bold-italic": {"placeholder": "e.g., wght=400", "format": "key-value"},
			"font-codepoint-map":         {"placeholder": "e.g., U+E0A0-U+E0A3=Font Name", "format": "assignment"},
			"env":                        {"placeholder": "KEY=VALUE", "format": "key-value"},
		},
	},

	schema.TypeKeybinding: {
		defaults: map[string]any{"showPrefixes": true, "showSequences": true},
	},

	schema.TypeCommand: {
		defaults: map[string]any{"showPrefixes": true},
	},

	schema.TypeAdjustment: {
		defaults: map[string]any{"defaultUnit": "px"},
	},

	schema.TypeSpecialNumber: {
		byKey: map[string]map[string]any{
			"mouse-scroll-multiplier": {
				"specialFormats": []string{"precision:N,discrete:N"},
				"allowBoolean":   false,
			},
			"background-blur": {
				"specialFormats": []string{},
				"allowBoolean":   true,
			},
		},
	},

	schema.TypeFontFamily: {
		defaults: map[string]any{"allowSystemDefault": true},
	},

	schema.TypeText: {
		byKey: map[string]map[string]any{
			"title":             {"placeholder": "Window title"},
			"theme":             {"placeholder": "Theme name or light:X,dark:Y"},
			"class":             {"placeholder": "com.example.app"},
			"x11-instance-name": {"placeholder": "ghostty"},
		},
	},
}

// Options returns the UI rendering options for (key, valueType), or nil when
// the key carries none. The result is a fresh copy on every call.
func Options(key string, valueType schema.ValueType) map[string]any {
	rules, ok := optionsRules[valueType]
	if !ok {
		return nil
	}

	return rules.lookup(key)
}
