package schema

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// ErrInvalidCategorization indicates a categorization tree that could not be
// decoded or is structurally unusable.
var ErrInvalidCategorization = errors.New("invalid categorization")

// Categorization is the externally authored grouping tree: tabs containing
// sections containing key memberships with a declared value type per key.
// The tree carries no defaults or documentation; those come from the
// properties source.
type Categorization struct {
	Tabs []CategorizationTab `yaml:"tabs" json:"tabs"`
}

// CategorizationTab mirrors [Tab] without compiled content.
type CategorizationTab struct {
	ID       string                  `yaml:"id" json:"id"`
	Label    string                  `yaml:"label" json:"label"`
	Icon     string                  `yaml:"icon" json:"icon,omitempty"`
	Sections []CategorizationSection `yaml:"sections" json:"sections"`
}

// CategorizationSection lists the member keys of one section, in authored
// order.
type CategorizationSection struct {
	ID    string   `yaml:"id" json:"id"`
	Label string   `yaml:"label" json:"label"`
	Keys  []KeyRef `yaml:"keys" json:"keys"`
}

// KeyRef names one configuration key and declares its value type.
type KeyRef struct {
	Key       string    `yaml:"key" json:"key"`
	ValueType ValueType `yaml:"valueType" json:"valueType"`
}

// LoadCategorization decodes a categorization tree from YAML or JSON.
func LoadCategorization(data []byte) (*Categorization, error) {
	var cat Categorization

	err := yaml.Unmarshal(data, &cat)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCategorization, err)
	}

	if len(cat.Tabs) == 0 {
		return nil, fmt.Errorf("%w: no tabs", ErrInvalidCategorization)
	}

	return &cat, nil
}
