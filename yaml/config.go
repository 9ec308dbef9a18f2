// Package yaml loads selector configuration from YAML files.
package yaml

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/reviewlens/revlens"
)

// LoadSelectorConfig reads a selector configuration from a YAML file.
func LoadSelectorConfig(path string) (*revlens.SelectorConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read selector config: %w", err)
	}
	return ParseSelectorConfig(data)
}

// ParseSelectorConfig decodes and validates YAML selector configuration.
// Selector lists left empty fall back to the built-in defaults.
func ParseSelectorConfig(data []byte) (*revlens.SelectorConfig, error) {
	var cfg revlens.SelectorConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, revlens.Errorf(revlens.EINVALID, "invalid selector config: %v", err)
	}

	defaults := revlens.DefaultSelectorConfig()
	if len(cfg.ReviewSelectors) == 0 {
		cfg.ReviewSelectors = defaults.ReviewSelectors
	}
	if len(cfg.TitleSelectors) == 0 {
		cfg.TitleSelectors = defaults.TitleSelectors
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
