package assemble

import (
	"github.com/confschema/confschema/enrich"
	"github.com/confschema/confschema/properties"
	"github.com/confschema/confschema/schema"
	"github.com/confschema/confschema/structval"
)

// DefaultDocumentVersion is the schema document format version stamped on
// compiled output unless overridden.
const DefaultDocumentVersion = "1.0.0"

// Assembler compiles categorization trees and properties sources into schema
// documents.
//
// Create instances with [New].
type Assembler struct {
	version    string
	appVersion string
	reorder    bool
}

// Option configures an [Assembler].
type Option func(*Assembler)

// New creates an [Assembler] with the given options. Key-order
// reconciliation is enabled by default.
func New(opts ...Option) *Assembler {
	a := &Assembler{
		version: DefaultDocumentVersion,
		reorder: true,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// WithVersion sets the document format version.
func WithVersion(version string) Option {
	return func(a *Assembler) {
		a.version = version
	}
}

// WithAppVersion sets the target application version recorded on the
// document.
func WithAppVersion(appVersion string) Option {
	return func(a *Assembler) {
		a.appVersion = appVersion
	}
}

// WithReorder enables or disables the key-order reconciliation pass.
func WithReorder(reorder bool) Option {
	return func(a *Assembler) {
		a.reorder = reorder
	}
}

// Diagnostic records one raw value that failed structured parsing during
// assembly. The value is reported and excluded; the run continues.
type Diagnostic struct {
	Key      string
	RawValue string
	Err      error
}

// Assemble compiles the tree and source into a document. It always returns a
// best-effort document; recoverable problems come back as diagnostics.
func (a *Assembler) Assemble(cat *schema.Categorization, src *properties.Source) (*schema.Document, []Diagnostic) {
	doc := &schema.Document{
		Version:    a.version,
		AppVersion: a.appVersion,
		Tabs:       make([]schema.Tab, 0, len(cat.Tabs)),
	}

	var diags []Diagnostic

	for _, tab := range cat.Tabs {
		newTab := schema.Tab{
			ID:       tab.ID,
			Label:    tab.Label,
			Icon:     tab.Icon,
			Sections: make([]schema.Section, 0, len(tab.Sections)),
		}

		for _, section := range tab.Sections {
			newSection := schema.Section{
				ID:    section.ID,
				Label: section.Label,
			}

			for _, ref := range section.Keys {
				facts, _ := src.Facts(ref.Key)

				if facts != nil && facts.DocComment != "" {
					newSection.Keys = append(newSection.Keys, schema.CommentNode{Content: facts.DocComment})
				}

				prop, propDiags := a.buildProperty(ref, facts)
				diags = append(diags, propDiags...)

				newSection.Keys = append(newSection.Keys, schema.ConfigNode{Property: prop})
			}

			newTab.Sections = append(newTab.Sections, newSection)
		}

		doc.Tabs = append(doc.Tabs, newTab)
	}

	if a.reorder {
		ReconcileDocument(doc, src.Position)
	}

	return doc, diags
}

// buildProperty constructs one enriched config property. facts is nil when
// the key never appears in the documentation source; such keys get no
// default value, which is not an error at this stage.
func (a *Assembler) buildProperty(ref schema.KeyRef, facts *properties.KeyFacts) (schema.ConfigProperty, []Diagnostic) {
	prop := schema.ConfigProperty{
		Key:       ref.Key,
		ValueType: ref.ValueType,
		// No key is mandatory in this format.
		Required:   false,
		Repeatable: ref.ValueType.InherentlyRepeatable() || (facts != nil && len(facts.RawValues) > 1),
		Label:      enrich.Label(ref.Key),
		Validation: enrich.Validation(ref.Key, ref.ValueType),
		Options:    enrich.Options(ref.Key, ref.ValueType),
	}

	var diags []Diagnostic

	if facts != nil {
		prop.DefaultValue, diags = a.shapeDefault(ref, facts)
	}

	prop.Platforms = inferPlatforms(ref.Key, facts)

	return prop, diags
}

// shapeDefault normalizes a key's raw values into its default value.
// Repeatable keys keep every value as an ordered sequence; non-repeatable
// keys take the LAST raw value so that an accidental duplicate assignment
// wins over earlier ones. Keybinding and command values are parsed into
// structured records.
func (a *Assembler) shapeDefault(ref schema.KeyRef, facts *properties.KeyFacts) (any, []Diagnostic) {
	repeatable := ref.ValueType.InherentlyRepeatable() || len(facts.RawValues) > 1

	if !repeatable {
		raw := facts.RawValues[len(facts.RawValues)-1]

		if ref.ValueType == schema.TypeCommand {
			entry, err := structval.ParseCommandEntry(raw)
			if err != nil {
				// Keep the raw value; the failure is still surfaced.
				return raw, []Diagnostic{{Key: ref.Key, RawValue: raw, Err: err}}
			}

			return entry, nil
		}

		return raw, nil
	}

	switch ref.ValueType {
	case schema.TypeKeybinding:
		return parseStructured(ref.Key, facts.RawValues, func(raw string) (any, error) {
			entry, err := structval.ParseKeybinding(raw)

			return entry, err
		})

	case schema.TypeCommand:
		return parseStructured(ref.Key, facts.RawValues, func(raw string) (any, error) {
			entry, err := structval.ParseCommandEntry(raw)

			return entry, err
		})

	default:
		return append([]string(nil), facts.RawValues...), nil
	}
}

// parseStructured converts raw values to structured records, excluding
// values that fail to parse and reporting each failure as a diagnostic.
func parseStructured(key string, raws []string, parse func(string) (any, error)) (any, []Diagnostic) {
	entries := make([]any, 0, len(raws))

	var diags []Diagnostic

	for _, raw := range raws {
		entry, err := parse(raw)
		if err != nil {
			diags = append(diags, Diagnostic{Key: key, RawValue: raw, Err: err})

			continue
		}

		entries = append(entries, entry)
	}

	return entries, diags
}

// inferPlatforms resolves a key's platform restriction. The key-name prefix
// table is deterministic and wins; the documentation comment scan is the
// fallback.
func inferPlatforms(key string, facts *properties.KeyFacts) []schema.Platform {
	if platforms := enrich.PlatformsFromKey(key); platforms != nil {
		return platforms
	}

	if facts == nil || facts.DocComment == "" {
		return nil
	}

	return enrich.PlatformsFromComment(facts.DocComment)
}
