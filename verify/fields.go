package verify

import "github.com/confschema/confschema/schema"

// fieldSet is an allowed-field table entry.
type fieldSet map[string]bool

// validationFields is the schema-of-schema for the validation namespace:
// which field names are legal under `validation` for each value type. Value
// types absent from the table allow no validation fields at all.
var validationFields = map[schema.ValueType]fieldSet{
	schema.TypeText: {
		"pattern": true, "minLength": true, "maxLength": true, "format": true,
	},
	schema.TypeNumber: {
		"min": true, "max": true, "integer": true, "positive": true,
		"multipleOf": true, "unit": true,
	},
	schema.TypeEnum: {
		"customPattern": true, "minItems": true, "maxItems": true,
		"caseSensitive": true, "allowNegation": true, "separator": true,
	},
	schema.TypeOpacity: {
		"min": true, "max": true, "snapToStep": true, "logarithmic": true,
	},
	schema.TypeFilepath: {
		"mustExist": true, "mustBeReadable": true, "maxSizeKB": true,
		"allowedPaths": true, "extensions": true,
	},
	schema.TypeColor: {
		"allowTransparent": true, "paletteOnly": true, "allowSpecialValues": true,
	},
	schema.TypeKeybinding: {
		"forbiddenKeys": true, "requireModifier": true, "allowSequences": true,
		"allowPrefixes": true,
	},
	schema.TypeCommand: {
		"allowedCommands": true, "pattern": true, "allowPrefixes": true,
	},
	schema.TypeAdjustment: {
		"allowPercentage": true, "allowInteger": true, "minInteger": true,
		"maxInteger": true, "minPercentage": true, "maxPercentage": true,
	},
	schema.TypePadding: {
		"allowPair": true, "min": true, "max": true,
	},
	schema.TypeFontStyle: {
		"allowDisable": true, "allowDefault": true, "styleNames": true,
	},
	schema.TypeRepeatableText: {
		"pattern": true, "minLength": true, "maxLength": true, "format": true,
		"allowEmpty": true,
	},
	schema.TypeSpecialNumber: {
		"min": true, "max": true, "integer": true, "positive": true,
		"multipleOf": true, "unit": true,
	},
}

// optionsFields is the schema-of-schema for the options namespace. It is
// independent from validationFields; the two must never be checked against
// each other.
var optionsFields = map[schema.ValueType]fieldSet{
	schema.TypeText: {
		"placeholder": true, "multiline": true,
	},
	schema.TypeNumber: {
		"step": true, "showUnit": true,
	},
	schema.TypeBoolean: {},
	schema.TypeEnum: {
		"allowCustom": true, "multiselect": true, "values": true,
	},
	schema.TypeOpacity: {
		"min": true, "max": true, "step": true,
	},
	schema.TypeFilepath: {
		"fileType": true, "dialogTitle": true,
	},
	schema.TypeColor: {
		"format": true, "alpha": true,
	},
	schema.TypeKeybinding: {
		"showPrefixes": true, "showSequences": true,
	},
	schema.TypeCommand: {
		"showPrefixes": true,
	},
	schema.TypeAdjustment: {
		"defaultUnit": true,
	},
	schema.TypePadding: {
		"allowPair": true, "labels": true,
	},
	schema.TypeFontStyle: {
		"allowDisable": true,
	},
	schema.TypeRepeatableText: {
		"placeholder": true, "format": true, "allowEmpty": true,
	},
	schema.TypeSpecialNumber: {
		"specialFormats": true, "allowBoolean": true,
	},
	schema.TypeFontFamily: {
		"allowSystemDefault": true,
	},
}
