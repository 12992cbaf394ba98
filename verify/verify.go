package verify

import (
	"fmt"
	"sort"

	"github.com/confschema/confschema/properties"
	"github.com/confschema/confschema/schema"
)

// Check identifies which verification check produced a finding.
type Check string

// The four independent checks.
const (
	CheckCoverage     Check = "coverage"
	CheckCompleteness Check = "completeness"
	CheckFieldSets    Check = "field-sets"
	CheckPlatforms    Check = "platforms"
)

// Finding is one verification failure. Location is tab/section/key for
// config-level findings and empty for document-level ones.
type Finding struct {
	Check    Check
	Location string
	Message  string
}

// Report is the accumulated outcome of a verification run.
type Report struct {
	Findings     []Finding
	ConfigCount  int
	CommentCount int
}

// OK reports whether verification produced no findings.
func (r *Report) OK() bool {
	return len(r.Findings) == 0
}

// Run executes all four checks against the document and returns the combined
// report. The document is never mutated; checks accumulate findings rather
// than aborting on the first failure.
func Run(doc *schema.Document, src *properties.Source) *Report {
	report := &Report{}

	for _, tab := range doc.Tabs {
		for _, sec := range tab.Sections {
			for _, node := range sec.Keys {
				switch node.(type) {
				case schema.CommentNode:
					report.CommentCount++
				case schema.ConfigNode:
					report.ConfigCount++
				}
			}
		}
	}

	report.Findings = append(report.Findings, Coverage(doc, src)...)
	report.Findings = append(report.Findings, Completeness(doc)...)
	report.Findings = append(report.Findings, FieldSets(doc)...)
	report.Findings = append(report.Findings, PlatformLegality(doc)...)

	return report
}

// Coverage checks that the documentation source's key set equals, with
// multiplicity ignored, the set of keys present exactly once in the compiled
// tree.
func Coverage(doc *schema.Document, src *properties.Source) []Finding {
	var findings []Finding

	seen := make(map[string]int)
	location := make(map[string]string)

	doc.EachConfig(func(tabID, sectionID string, prop *schema.ConfigProperty) {
		seen[prop.Key]++

		loc := fmt.Sprintf("%s/%s/%s", tabID, sectionID, prop.Key)
		if seen[prop.Key] > 1 {
			findings = append(findings, Finding{
				Check:    CheckCoverage,
				Location: loc,
				Message:  fmt.Sprintf("key %q appears more than once (also at %s)", prop.Key, location[prop.Key]),
			})
		} else {
			location[prop.Key] = loc
		}
	})

	for _, key := range src.Keys() {
		if seen[key] == 0 {
			findings = append(findings, Finding{
				Check:   CheckCoverage,
				Message: fmt.Sprintf("key %q from the documentation source is missing from the schema", key),
			})
		}
	}

	var extra []string

	for key := range seen {
		if _, ok := src.Facts(key); !ok {
			extra = append(extra, key)
		}
	}

	sort.Strings(extra)

	for _, key := range extra {
		findings = append(findings, Finding{
			Check:    CheckCoverage,
			Location: location[key],
			Message:  fmt.Sprintf("key %q is not present in the documentation source", key),
		})
	}

	return findings
}

// Completeness checks that every config node carries its mandatory fields:
// key, a recognized valueType, required, repeatable, a defaultValue, and a
// non-empty label.
func Completeness(doc *schema.Document) []Finding {
	var findings []Finding

	doc.EachConfig(func(tabID, sectionID string, prop *schema.ConfigProperty) {
		loc := fmt.Sprintf("%s/%s/%s", tabID, sectionID, prop.Key)

		if prop.Key == "" {
			findings = append(findings, Finding{
				Check:    CheckCompleteness,
				Location: loc,
				Message:  "missing required field key",
			})
		}

		if !prop.ValueType.Valid() {
			findings = append(findings, Finding{
				Check:    CheckCompleteness,
				Location: loc,
				Message:  fmt.Sprintf("unknown valueType %q", prop.ValueType),
			})
		}

		for _, name := range prop.MissingFields() {
			findings = append(findings, Finding{
				Check:    CheckCompleteness,
				Location: loc,
				Message:  fmt.Sprintf("missing required field %s", name),
			})
		}

		if prop.DefaultValue == nil {
			findings = append(findings, Finding{
				Check:    CheckCompleteness,
				Location: loc,
				Message:  "missing required field defaultValue",
			})
		}

		if prop.Label == "" {
			findings = append(findings, Finding{
				Check:    CheckCompleteness,
				Location: loc,
				Message:  "missing required field label",
			})
		}
	})

	return findings
}

// FieldSets checks every validation and options field name against the
// allowed set for the property's value type, and that every enumeration
// options.values entry carries a value field.
func FieldSets(doc *schema.Document) []Finding {
	var findings []Finding

	doc.EachConfig(func(tabID, sectionID string, prop *schema.ConfigProperty) {
		loc := fmt.Sprintf("%s/%s/%s", tabID, sectionID, prop.Key)

		findings = append(findings,
			checkFields(loc, "validation", prop.Validation, validationFields[prop.ValueType])...)
		findings = append(findings,
			checkFields(loc, "options", prop.Options, optionsFields[prop.ValueType])...)

		if prop.ValueType == schema.TypeEnum && prop.Options != nil {
			findings = append(findings, checkEnumValues(loc, prop.Options)...)
		}
	})

	return findings
}

// checkFields reports every field of got that is outside the allowed set.
func checkFields(loc, namespace string, got map[string]any, allowed fieldSet) []Finding {
	if len(got) == 0 {
		return nil
	}

	var unknown []string

	for name := range got {
		if !allowed[name] {
			unknown = append(unknown, name)
		}
	}

	sort.Strings(unknown)

	findings := make([]Finding, 0, len(unknown))

	for _, name := range unknown {
		findings = append(findings, Finding{
			Check:    CheckFieldSets,
			Location: loc,
			Message:  fmt.Sprintf("field %q is not allowed under %s for this value type", name, namespace),
		})
	}

	return findings
}

// checkEnumValues verifies the shape of an enumeration's selectable values.
func checkEnumValues(loc string, options map[string]any) []Finding {
	raw, ok := options["values"]
	if !ok {
		return nil
	}

	values, ok := raw.([]any)
	if !ok {
		return []Finding{{
			Check:    CheckFieldSets,
			Location: loc,
			Message:  "options.values must be an ordered list",
		}}
	}

	var findings []Finding

	for i, v := range values {
		entry, ok := v.(map[string]any)
		if !ok {
			findings = append(findings, Finding{
				Check:    CheckFieldSets,
				Location: loc,
				Message:  fmt.Sprintf("options.values[%d] is not an object", i),
			})

			continue
		}

		if _, ok := entry["value"]; !ok {
			findings = append(findings, Finding{
				Check:    CheckFieldSets,
				Location: loc,
				Message:  fmt.Sprintf("options.values[%d] is missing its value field", i),
			})
		}
	}

	return findings
}

// PlatformLegality checks that platforms, when present, is a non-empty
// subset of macos/linux/windows.
func PlatformLegality(doc *schema.Document) []Finding {
	var findings []Finding

	doc.EachConfig(func(tabID, sectionID string, prop *schema.ConfigProperty) {
		if prop.Platforms == nil {
			return
		}

		loc := fmt.Sprintf("%s/%s/%s", tabID, sectionID, prop.Key)

		if len(prop.Platforms) == 0 {
			findings = append(findings, Finding{
				Check:    CheckPlatforms,
				Location: loc,
				Message:  "platforms is present but empty",
			})

			return
		}

		for _, p := range prop.Platforms {
			if !p.Valid() {
				findings = append(findings, Finding{
					Check:    CheckPlatforms,
					Location: loc,
					Message:  fmt.Sprintf("unknown platform %q", p),
				})
			}
		}
	})

	return findings
}
