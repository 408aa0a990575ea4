package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"laudos/internal"
)

type seedFile struct {
	Entries []internal.CatalogEntry `yaml:"entries"`
}

// LoadSeed reads a YAML catalog seed file. A configured seed replaces the
// built-in tables entirely; there is no merging.
func LoadSeed(path string) ([]internal.CatalogEntry, error) {
	blob, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var seed seedFile
	if err := yaml.Unmarshal(blob, &seed); err != nil {
		return nil, fmt.Errorf("parse catalog seed %s: %w", path, err)
	}
	if len(seed.Entries) == 0 {
		return nil, fmt.Errorf("catalog seed %s has no entries", path)
	}
	return seed.Entries, nil
}

// LoadEntries returns the seed file entries when a path is configured, the
// built-in tables otherwise.
func LoadEntries(seedPath string) ([]internal.CatalogEntry, error) {
	if seedPath == "" {
		return DefaultEntries(), nil
	}
	return LoadSeed(seedPath)
}
