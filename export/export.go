package export

import (
	"encoding/json"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/confschema/confschema/schema"
)

// JSON Schema type names used by the exporter.
const (
	typeObject  = "object"
	typeArray   = "array"
	typeString  = "string"
	typeNumber  = "number"
	typeBoolean = "boolean"
)

// Exporter converts a compiled [schema.Document] into a JSON Schema
// (Draft 7) object.
type Exporter struct {
	title       string
	description string
	id          string
	strict      bool
}

// Option configures an [Exporter].
type Option func(*Exporter)

// WithTitle sets the root schema title.
func WithTitle(title string) Option {
	return func(e *Exporter) {
		e.title = title
	}
}

// WithDescription sets the root schema description.
func WithDescription(description string) Option {
	return func(e *Exporter) {
		e.description = description
	}
}

// WithID sets the root schema $id.
func WithID(id string) Option {
	return func(e *Exporter) {
		e.id = id
	}
}

// WithStrict makes the root schema reject unknown properties.
func WithStrict(strict bool) Option {
	return func(e *Exporter) {
		e.strict = strict
	}
}

// New creates a new [Exporter] with the given options.
func New(opts ...Option) *Exporter {
	e := &Exporter{}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Export renders doc as a flat JSON Schema object with one property per
// configuration key, in document order. Comment nodes immediately
// preceding a key contribute to that key's description when the key
// itself has none.
func (e *Exporter) Export(doc *schema.Document) *jsonschema.Schema {
	root := &jsonschema.Schema{
		Schema:     "http://json-schema.org/draft-07/schema#",
		Type:       typeObject,
		Properties: map[string]*jsonschema.Schema{},
	}

	if e.title != "" {
		root.Title = e.title
	}

	if e.description != "" {
		root.Description = e.description
	}

	if e.id != "" {
		root.ID = e.id
	}

	if e.strict {
		root.AdditionalProperties = falseSchema()
	} else {
		root.AdditionalProperties = trueSchema()
	}

	var order []string

	for ti := range doc.Tabs {
		for si := range doc.Tabs[ti].Sections {
			comment := ""

			for _, node := range doc.Tabs[ti].Sections[si].Keys {
				switch n := node.(type) {
				case schema.CommentNode:
					comment = n.Content
				case schema.ConfigNode:
					if _, ok := root.Properties[n.Property.Key]; ok {
						comment = ""

						continue
					}

					root.Properties[n.Property.Key] = propertySchema(&n.Property, comment)
					order = append(order, n.Property.Key)
					comment = ""
				}
			}
		}
	}

	root.PropertyOrder = order

	return root
}

// propertySchema builds the JSON Schema for a single configuration key.
func propertySchema(prop *schema.ConfigProperty, comment string) *jsonschema.Schema {
	s := &jsonschema.Schema{
		Title:      prop.Label,
		Deprecated: prop.Deprecated,
	}

	if prop.Description != "" {
		s.Description = prop.Description
	} else if comment != "" {
		s.Description = comment
	}

	item := scalarSchema(prop)
	if prop.Repeatable {
		s.Type = typeArray
		s.Items = item
	} else {
		s.Type = item.Type
		s.Enum = item.Enum
		s.Minimum = item.Minimum
		s.Maximum = item.Maximum
	}

	if prop.DefaultValue != nil {
		s.Default = defaultValue(prop.DefaultValue)
	}

	return s
}

// scalarSchema builds the schema for one value of the key, ignoring
// repeatability.
func scalarSchema(prop *schema.ConfigProperty) *jsonschema.Schema {
	s := &jsonschema.Schema{Type: scalarType(prop.ValueType)}

	if prop.ValueType == schema.TypeEnum {
		if allow, ok := prop.Options["allowCustom"].(bool); !ok || !allow {
			s.Enum = enumValues(prop.Options)
		}
	}

	if min, ok := toFloat(prop.Validation["min"]); ok {
		s.Minimum = jsonschema.Ptr(min)
	}

	if max, ok := toFloat(prop.Validation["max"]); ok {
		s.Maximum = jsonschema.Ptr(max)
	}

	return s
}

// scalarType maps a value type to its JSON Schema type name. Structured
// types (keybinding, command) export as objects since their shaped
// defaults are entry objects; numeric types export as numbers; everything
// else is a string.
func scalarType(vt schema.ValueType) string {
	switch vt {
	case schema.TypeNumber, schema.TypeOpacity:
		return typeNumber
	case schema.TypeBoolean:
		return typeBoolean
	case schema.TypeKeybinding, schema.TypeCommand:
		return typeObject
	default:
		return typeString
	}
}

// enumValues extracts the legal values from an enum key's options. Returns
// nil if the options carry no value entries.
func enumValues(options map[string]any) []any {
	entries, ok := options["values"].([]any)
	if !ok {
		return nil
	}

	values := make([]any, 0, len(entries))

	for _, entry := range entries {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}

		if v, ok := m["value"]; ok {
			values = append(values, v)
		}
	}

	if len(values) == 0 {
		return nil
	}

	return values
}

// defaultValue converts a shaped default to a [json.RawMessage]. Returns
// nil if marshaling fails.
func defaultValue(v any) json.RawMessage {
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}

	return json.RawMessage(b)
}

// toFloat coerces the numeric JSON representations that appear in
// validation rule tables.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

// trueSchema returns a schema that validates everything (marshals to JSON
// true).
func trueSchema() *jsonschema.Schema {
	return &jsonschema.Schema{}
}

// falseSchema returns a schema that validates nothing (marshals to JSON
// false).
func falseSchema() *jsonschema.Schema {
	return &jsonschema.Schema{Not: &jsonschema.Schema{}}
}
