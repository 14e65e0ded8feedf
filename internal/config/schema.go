package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Definition is the root of a definition file.
type Definition struct {
	Version     string       `yaml:"version,omitempty"`
	Fields      []FieldDef   `yaml:"fields,omitempty"      validate:"dive"`
	Processing  []StepDef    `yaml:"processing,omitempty"  validate:"dive"`
	Validations []StepDef    `yaml:"validations,omitempty" validate:"dive"`
	Disable     StringOrList `yaml:"disable,omitempty"     validate:"dive,required"`
}

// FieldDef declares a field of a catalog kind.
type FieldDef struct {
	Name    string         `yaml:"name"              validate:"required"`
	Kind    string         `yaml:"kind,omitempty"`
	Options map[string]any `yaml:"options,omitempty"`
}

// StepDef is an expression run for the fields it targets.
type StepDef struct {
	// Field lists the target field names.
	Field StringOrList `yaml:"field,omitempty" validate:"excluded_with=When,dive,required"`
	// When is a trigger expression selecting the target fields.
	When string `yaml:"when,omitempty"`
	Expr string `yaml:"expr"           validate:"required"`
}

// StringOrList is written in YAML as one string or as a list of strings.
type StringOrList []string

func (s *StringOrList) UnmarshalYAML(node *yaml.Node) error {
	var names []string

	switch node.Kind {
	case yaml.SequenceNode:
		if err := node.Decode(&names); err != nil {
			return err
		}
	case yaml.ScalarNode:
		if node.Value != "" {
			names = []string{node.Value}
		}
	default:
		return fmt.Errorf("line %d: expected a string or a list of strings", node.Line)
	}

	*s = append(StringOrList{}, names...)

	return nil
}
