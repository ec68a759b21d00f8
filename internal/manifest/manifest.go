// Package manifest models the declared feature surface of the project: the
// closed feature list, per-feature defaults, and the convenience group that
// enables everything at once. The build tags in internal/features decide what
// a binary actually contains; the manifest is the human-readable declaration
// the features command checks against.
package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"luckyprint/internal/features"
)

// Entry declares one feature.
type Entry struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Default     bool   `yaml:"default"`
}

// Group names a convenience switch that enables several features together.
type Group struct {
	Name     string   `yaml:"name"`
	Features []string `yaml:"features"`
}

// Manifest is the declared feature surface.
type Manifest struct {
	Features []Entry `yaml:"features"`
	Groups   []Group `yaml:"groups,omitempty"`
}

// Default returns the manifest matching the switches compiled into this
// repository's binaries, including the default policy the binary was built
// under.
func Default() Manifest {
	return Manifest{
		Features: []Entry{
			{
				Name:        string(features.FeaturePrint42),
				Description: "print 42 instead of the hello headline",
				Default:     false,
			},
			{
				Name:        string(features.FeatureLucky),
				Description: "append a lucky number in [1, 100]",
				Default:     features.DefaultPolicy() == features.PolicyLuckyOn,
			},
		},
		Groups: []Group{
			{
				Name: "allfeatures",
				Features: []string{
					string(features.FeaturePrint42),
					string(features.FeatureLucky),
				},
			},
		},
	}
}

// Load reads and validates a manifest from path.
func Load(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("failed to read manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("failed to parse manifest: %w", err)
	}
	if err := m.Validate(); err != nil {
		return Manifest{}, err
	}
	return m, nil
}

// Save writes the manifest to path as YAML.
func (m Manifest) Save(path string) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}

// Validate rejects manifests that disagree with the closed feature set:
// unknown names, duplicate entries, or a group referencing an undeclared
// feature.
func (m Manifest) Validate() error {
	known := make(map[string]bool, len(features.Known()))
	for _, f := range features.Known() {
		known[string(f)] = true
	}

	declared := make(map[string]bool, len(m.Features))
	for _, e := range m.Features {
		if !known[e.Name] {
			return fmt.Errorf("unknown feature %q", e.Name)
		}
		if declared[e.Name] {
			return fmt.Errorf("duplicate feature %q", e.Name)
		}
		declared[e.Name] = true
	}

	for _, g := range m.Groups {
		for _, name := range g.Features {
			if !declared[name] {
				return fmt.Errorf("group %q references undeclared feature %q", g.Name, name)
			}
		}
	}
	return nil
}
