package schema

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidNode indicates a section entry that is not a recognized node
// variant.
var ErrInvalidNode = errors.New("invalid node")

// Node is one entry in a section's key list: either a documentation comment
// or a configuration property. Consumers type-switch over [CommentNode] and
// [ConfigNode]; there are no other variants.
type Node interface {
	isNode()
}

// CommentNode carries the documentation block that precedes a configuration
// key in the properties source.
type CommentNode struct {
	Content string
}

func (CommentNode) isNode() {}

// ConfigNode wraps a single configuration property.
type ConfigNode struct {
	Property ConfigProperty
}

func (ConfigNode) isNode() {}

// ConfigProperty is the enriched description of one configuration key.
//
// DefaultValue is shaped by repeatability: a single value when Repeatable is
// false, an ordered sequence when it is true. For keybinding and command
// keys the sequence elements are structured records rather than raw strings.
// A nil DefaultValue means the key never appeared in the documentation
// source.
type ConfigProperty struct {
	Key          string         `json:"key"`
	ValueType    ValueType      `json:"valueType"`
	Required     bool           `json:"required"`
	Repeatable   bool           `json:"repeatable"`
	DefaultValue any            `json:"defaultValue,omitempty"`
	Label        string         `json:"label,omitempty"`
	Description  string         `json:"description,omitempty"`
	Validation   map[string]any `json:"validation,omitempty"`
	Options      map[string]any `json:"options,omitempty"`
	Platforms    []Platform     `json:"platforms,omitempty"`
	Deprecated   bool           `json:"deprecated,omitempty"`

	missing []string
}

// MissingFields lists the mandatory boolean wire fields (required,
// repeatable) that were absent when the property was decoded from JSON. An
// absent field and an explicit false are indistinguishable after
// unmarshaling, so absence is recorded at decode time. Always empty for
// properties built by the assembler.
func (p *ConfigProperty) MissingFields() []string {
	return p.missing
}

// Node type discriminator values used on the wire.
const (
	nodeTypeComment = "comment"
	nodeTypeConfig  = "config"
)

// NodeList is an ordered sequence of section entries. It implements the JSON
// envelope codec for the node union.
type NodeList []Node

// commentEnvelope is the wire form of a [CommentNode].
type commentEnvelope struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// configEnvelope is the wire form of a [ConfigNode]; the property fields are
// inlined next to the discriminator.
type configEnvelope struct {
	Type string `json:"type"`
	ConfigProperty
}

// MarshalJSON implements [json.Marshaler].
func (l NodeList) MarshalJSON() ([]byte, error) {
	out := make([]any, 0, len(l))

	for i, node := range l {
		switch n := node.(type) {
		case CommentNode:
			out = append(out, commentEnvelope{Type: nodeTypeComment, Content: n.Content})
		case ConfigNode:
			out = append(out, configEnvelope{Type: nodeTypeConfig, ConfigProperty: n.Property})
		default:
			return nil, fmt.Errorf("%w: entry %d has unknown variant %T", ErrInvalidNode, i, node)
		}
	}

	b, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("marshaling node list: %w", err)
	}

	return b, nil
}

// UnmarshalJSON implements [json.Unmarshaler].
func (l *NodeList) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage

	err := json.Unmarshal(data, &raw)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidNode, err)
	}

	nodes := make(NodeList, 0, len(raw))

	for i, entry := range raw {
		var probe struct {
			Type string `json:"type"`
		}

		err := json.Unmarshal(entry, &probe)
		if err != nil {
			return fmt.Errorf("%w: entry %d: %w", ErrInvalidNode, i, err)
		}

		switch probe.Type {
		case nodeTypeComment:
			var env commentEnvelope

			err := json.Unmarshal(entry, &env)
			if err != nil {
				return fmt.Errorf("%w: entry %d: %w", ErrInvalidNode, i, err)
			}

			nodes = append(nodes, CommentNode{Content: env.Content})

		case nodeTypeConfig:
			var env configEnvelope

			err := json.Unmarshal(entry, &env)
			if err != nil {
				return fmt.Errorf("%w: entry %d: %w", ErrInvalidNode, i, err)
			}

			env.ConfigProperty.missing = missingBoolFields(entry)

			nodes = append(nodes, ConfigNode{Property: env.ConfigProperty})

		default:
			return fmt.Errorf("%w: entry %d has unknown type %q", ErrInvalidNode, i, probe.Type)
		}
	}

	*l = nodes

	return nil
}

// missingBoolFields probes a config envelope's raw JSON for the mandatory
// boolean fields that unmarshaling cannot distinguish from false.
func missingBoolFields(entry json.RawMessage) []string {
	var raw map[string]json.RawMessage

	err := json.Unmarshal(entry, &raw)
	if err != nil {
		return nil
	}

	var missing []string

	for _, name := range []string{"required", "repeatable"} {
		if _, ok := raw[name]; !ok {
			missing = append(missing, name)
		}
	}

	return missing
}
