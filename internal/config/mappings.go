package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Mappings translate internal business-unit and counterparty codes to the
// external codes expected by the FIS upload.
type Mappings struct {
	BusinessUnits  map[string]string `yaml:"business_units"`
	Counterparties map[string]string `yaml:"counterparties"`
}

// LoadMappings reads the code mappings from a YAML file. An empty path
// yields empty mappings: unmapped codes are rendered blank downstream, so
// running without mappings is allowed.
func LoadMappings(path string) (*Mappings, error) {
	mappings := &Mappings{
		BusinessUnits:  map[string]string{},
		Counterparties: map[string]string{},
	}
	if path == "" {
		return mappings, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read mappings file: %w", err)
	}
	if err := yaml.Unmarshal(data, mappings); err != nil {
		return nil, fmt.Errorf("failed to parse mappings file: %w", err)
	}
	if mappings.BusinessUnits == nil {
		mappings.BusinessUnits = map[string]string{}
	}
	if mappings.Counterparties == nil {
		mappings.Counterparties = map[string]string{}
	}
	return mappings, nil
}
