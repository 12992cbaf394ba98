package schema

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidDocument indicates a document that could not be decoded.
var ErrInvalidDocument = errors.New("invalid document")

// Document is the compiled schema artifact: grouped, ordered, enriched
// configuration metadata ready for serialization.
type Document struct {
	Version    string `json:"version"`
	AppVersion string `json:"appVersion,omitempty"`
	Tabs       []Tab  `json:"tabs"`
}

// Tab is a top-level grouping of sections, as authored in the categorization
// tree.
type Tab struct {
	ID       string    `json:"id"`
	Label    string    `json:"label"`
	Icon     string    `json:"icon,omitempty"`
	Sections []Section `json:"sections"`
}

// Section groups related keys within a tab. Keys interleaves comment and
// config nodes in render order.
type Section struct {
	ID    string   `json:"id"`
	Label string   `json:"label"`
	Keys  NodeList `json:"keys"`
}

// LoadDocument decodes a compiled document from JSON.
func LoadDocument(data []byte) (*Document, error) {
	var doc Document

	err := json.Unmarshal(data, &doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	return &doc, nil
}

// ConfigKeys returns the key of every config node in the section, in order,
// skipping comment nodes.
func (s *Section) ConfigKeys() []string {
	var keys []string

	for _, node := range s.Keys {
		if cfg, ok := node.(ConfigNode); ok {
			keys = append(keys, cfg.Property.Key)
		}
	}

	return keys
}

// EachConfig calls fn for every config node in the document, in document
// order, together with the IDs of the enclosing tab and section. fn receives
// a copy of the property; mutations do not reach the document.
func (d *Document) EachConfig(fn func(tabID, sectionID string, prop *ConfigProperty)) {
	for ti := range d.Tabs {
		tab := &d.Tabs[ti]

		for si := range tab.Sections {
			sec := &tab.Sections[si]

			for ni := range sec.Keys {
				if cfg, ok := sec.Keys[ni].(ConfigNode); ok {
					prop := cfg.Property
					fn(tab.ID, sec.ID, &prop)
				}
			}
		}
	}
}
