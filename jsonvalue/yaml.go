package jsonvalue

import (
	"strings"

	"go.yaml.in/yaml/v4"
)

// MarshalYAML implements yaml.Marshaler, rendering v as a node tree that
// keeps object key order.
func (v *Value) MarshalYAML() (any, error) {
	return v.Node(), nil
}

// Node converts v into a yaml.Node.
func (v *Value) Node() *yaml.Node {
	switch v.Kind() {
	case KindBool:
		val := "false"
		if v.b {
			val = "true"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: val}
	case KindNumber:
		tag := "!!int"
		if strings.ContainsAny(string(v.num), ".eE") {
			tag = "!!float"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: string(v.num)}
	case KindString:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v.str}
	case KindArray:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range v.arr {
			n.Content = append(n.Content, item.Node())
		}
		return n
	case KindObject:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for key, member := range v.obj.All() {
			n.Content = append(n.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
				member.Node(),
			)
		}
		return n
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
}
