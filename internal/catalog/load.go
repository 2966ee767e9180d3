package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type file struct {
	Rules     Rules      `yaml:"rules"`
	Questions []Question `yaml:"questions"`
}

// Load reads a catalog definition from a YAML file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML catalog of the form
//
//	rules:
//	  sleep_quality: physical_3
//	  nutrition: physical_5
//	questions:
//	  - id: energetic_1
//	    category: energetic
//	    prompt: ...
//	    options: [{value: 1, label: ...}, ...]
func Parse(data []byte) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	// An omitted rules block means the default ids, which then have to exist.
	return NewWithRules(f.Questions, f.Rules)
}
