package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile loads, parses and validates a definition file.
func LoadFile(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definition file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses and validates YAML data into a Definition.
func Parse(data []byte) (*Definition, error) {
	var def Definition

	err := yaml.Unmarshal(data, &def)
	if err != nil {
		return nil, fmt.Errorf("failed to parse definition YAML: %w", err)
	}

	applyDefaults(&def)

	if err := Validate(&def); err != nil {
		return nil, err
	}

	return &def, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(def *Definition) {
	if def.Version == "" {
		def.Version = "1"
	}

	for i := range def.Fields {
		if def.Fields[i].Kind == "" {
			def.Fields[i].Kind = "generic"
		}
	}
}

// LoadInput reads a YAML mapping of field names to raw values.
func LoadInput(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file %s: %w", path, err)
	}

	return ParseInput(data)
}

// ParseInput parses a YAML mapping of field names to raw values. An empty
// document is an empty input.
func ParseInput(data []byte) (map[string]any, error) {
	input := map[string]any{}

	err := yaml.Unmarshal(data, &input)
	if err != nil {
		return nil, fmt.Errorf("failed to parse input YAML: %w", err)
	}

	if input == nil {
		input = map[string]any{}
	}

	return input, nil
}
