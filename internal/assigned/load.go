package assigned

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type overlay struct {
	ADTypes            map[byte]string   `yaml:"ad_types"`
	ServiceUUIDs16     map[uint16]string `yaml:"service_uuids16"`
	CompanyIdentifiers map[uint16]string `yaml:"company_identifiers"`
}

// Load reads a YAML overlay and merges it on top of the built-in tables.
// Keys may be written in hex (0x004C) or decimal.
//
//	company_identifiers:
//	  0x004C: Apple, Inc.
func Load(path string) (*Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read assigned numbers %s: %w", path, err)
	}
	return Parse(data)
}

// Parse merges a YAML overlay document on top of the built-in tables.
func Parse(data []byte) (*Tables, error) {
	var o overlay
	if err := yaml.Unmarshal(data, &o); err != nil {
		return nil, fmt.Errorf("parse assigned numbers: %w", err)
	}
	return Default().merge(o), nil
}
