// SPDX-License-Identifier: MIT

package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Pair is a (source, target) external id pair. In YAML it is either a
// two-element sequence `[1, 5]` or a mapping `{source: 1, target: 5}`.
type Pair struct {
	Source int `yaml:"source"`
	Target int `yaml:"target"`
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *Pair) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var ids []int
		if err := node.Decode(&ids); err != nil {
			return err
		}
		if len(ids) != 2 {
			return fmt.Errorf("line %d: pair needs 2 ids, got %d", node.Line, len(ids))
		}
		p.Source, p.Target = ids[0], ids[1]
		return nil
	case yaml.MappingNode:
		type plain Pair
		var v plain
		if err := node.Decode(&v); err != nil {
			return err
		}
		*p = Pair(v)
		return nil
	default:
		return fmt.Errorf("line %d: pair must be [source, target] or {source, target}", node.Line)
	}
}
