package document

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultStart is the stage walks begin at when a document names none.
	DefaultStart = "seed"
	// DefaultTarget is the stage walks end at when a document names none.
	DefaultTarget = "location"
)

// File represents the root of an almanac document.
type File struct {
	// Version of the document schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Seeds are the raw seed numbers; their meaning depends on the mode.
	Seeds []uint64 `yaml:"seeds,flow"`

	// Start is the stage walks begin at.
	Start string `yaml:"start,omitempty"`

	// Target is the stage walks end at.
	Target string `yaml:"target,omitempty"`

	// Maps lists the stage transitions in document order.
	Maps []StageMap `yaml:"maps"`
}

// StageMap is one "<from>-to-<to> map:" block.
type StageMap struct {
	From  string     `yaml:"from"`
	To    string     `yaml:"to"`
	Rules []RuleSpec `yaml:"rules"`

	// Line is where the block starts in the source document (0 if unknown).
	Line int `yaml:"-"`
}

// RuleSpec is one "destination source length" rule as written in a document.
type RuleSpec struct {
	Destination uint64 `yaml:"destination"`
	Source      uint64 `yaml:"source"`
	Length      uint64 `yaml:"length"`

	// Line is where the rule appears in the source document (0 if unknown).
	Line int `yaml:"-"`
}

// Name returns "from-to-to".
func (m StageMap) Name() string {
	return m.From + "-to-" + m.To
}

// UnmarshalYAML implements custom YAML unmarshaling for StageMap so that the
// block and rule positions are kept for diagnostics.
func (m *StageMap) UnmarshalYAML(node *yaml.Node) error {
	type plain StageMap

	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}

	*m = StageMap(p)
	m.Line = node.Line

	return nil
}

// UnmarshalYAML implements custom YAML unmarshaling for RuleSpec.
// Accepts:
//   - Mapping: {destination: 50, source: 98, length: 2}
//   - Sequence: [50, 98, 2]
func (r *RuleSpec) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.MappingNode:
		type plain RuleSpec

		var p plain
		if err := node.Decode(&p); err != nil {
			return err
		}

		*r = RuleSpec(p)

	case yaml.SequenceNode:
		var triple []uint64
		if err := node.Decode(&triple); err != nil {
			return err
		}

		if len(triple) != 3 {
			return fmt.Errorf("line %d: rule needs 3 numbers (destination source length), got %d",
				node.Line, len(triple))
		}

		*r = RuleSpec{Destination: triple[0], Source: triple[1], Length: triple[2]}

	default:
		return fmt.Errorf("line %d: expected rule mapping or sequence, got %v", node.Line, node.Kind)
	}

	r.Line = node.Line

	return nil
}

// MarshalYAML implements custom YAML marshaling for RuleSpec.
// Outputs the compact [destination, source, length] flow sequence.
func (r RuleSpec) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}

	for _, v := range []uint64{r.Destination, r.Source, r.Length} {
		node.Content = append(node.Content, &yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   "!!int",
			Value: fmt.Sprintf("%d", v),
		})
	}

	return node, nil
}

// Triple returns the rule as [destination, source, length].
func (r RuleSpec) Triple() [3]uint64 {
	return [3]uint64{r.Destination, r.Source, r.Length}
}
