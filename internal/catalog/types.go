package catalog

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document is a catalog file declaring extra components.
type Document struct {
	Version    string          `yaml:"version" validate:"required,oneof=1"`
	Components []ComponentSpec `yaml:"components" validate:"required,min=1,dive"`
}

// ComponentSpec declares one component and its variant table.
type ComponentSpec struct {
	Name        string            `yaml:"name" validate:"required,component_name"`
	Element     string            `yaml:"element,omitempty" validate:"omitempty,html_element"`
	Description string            `yaml:"description,omitempty"`
	Base        string            `yaml:"base,omitempty"`
	Merge       bool              `yaml:"merge,omitempty"`
	Defaults    map[string]string `yaml:"defaults,omitempty"`
	Variants    Variants          `yaml:"variants,omitempty"`

	line int
}

// UnmarshalYAML records the component's line for error reporting.
func (c *ComponentSpec) UnmarshalYAML(value *yaml.Node) error {
	type plain ComponentSpec
	var decoded plain
	if err := value.Decode(&decoded); err != nil {
		return err
	}
	*c = ComponentSpec(decoded)
	c.line = value.Line
	return nil
}

// Line returns the line the component starts on, or 0 when unknown.
func (c ComponentSpec) Line() int {
	return c.line
}

// Variants keeps axes in the order they appear in the document.
type Variants []VariantSpec

// VariantSpec is one axis: option keys in document order mapped to classes.
type VariantSpec struct {
	Axis    string
	Options []OptionSpec
}

// OptionSpec is one option of an axis.
type OptionSpec struct {
	Key     string
	Classes string
}

// UnmarshalYAML decodes a mapping of axis -> (option -> classes). Classes may
// be a string or a list of strings.
func (v *Variants) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: variants must be a mapping", value.Line)
	}

	out := make(Variants, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		axisNode, optionsNode := value.Content[i], value.Content[i+1]
		if optionsNode.Kind != yaml.MappingNode {
			return fmt.Errorf("line %d: options of axis %q must be a mapping", optionsNode.Line, axisNode.Value)
		}

		spec := VariantSpec{Axis: axisNode.Value}
		for j := 0; j+1 < len(optionsNode.Content); j += 2 {
			keyNode, classNode := optionsNode.Content[j], optionsNode.Content[j+1]
			classes, err := decodeClasses(classNode)
			if err != nil {
				return err
			}
			spec.Options = append(spec.Options, OptionSpec{Key: keyNode.Value, Classes: classes})
		}
		out = append(out, spec)
	}

	*v = out
	return nil
}

func decodeClasses(node *yaml.Node) (string, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		return node.Value, nil
	case yaml.SequenceNode:
		var parts []string
		if err := node.Decode(&parts); err != nil {
			return "", err
		}
		return strings.Join(parts, " "), nil
	default:
		return "", fmt.Errorf("line %d: classes must be a string or a list of strings", node.Line)
	}
}
