// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

var (
	ErrEmptyLabel     = errors.New("hotspot label is empty")
	ErrDuplicateLabel = errors.New("duplicate hotspot label")
	ErrNoHotspots     = errors.New("no hotspot definitions")
)

// LoadHotspotDefinitions reads a JSON array of hotspot definitions.
// An empty path yields DefaultHotspots.
func LoadHotspotDefinitions(path string) ([]HotspotDefinition, error) {
	if path == "" {
		return append([]HotspotDefinition(nil), DefaultHotspots...), nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read hotspot definitions file: %w", err)
	}

	var hotspotDefs []HotspotDefinition
	if err := json.Unmarshal(file, &hotspotDefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal hotspot definitions: %w", err)
	}
	if err := Validate(hotspotDefs); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return hotspotDefs, nil
}

// Validate checks that the set is non-empty and every label is present and unique.
func Validate(hotspotDefs []HotspotDefinition) error {
	if len(hotspotDefs) == 0 {
		return ErrNoHotspots
	}
	seen := make(map[string]int, len(hotspotDefs))
	for i, def := range hotspotDefs {
		if strings.TrimSpace(def.Label) == "" {
			return fmt.Errorf("entry %d: %w", i, ErrEmptyLabel)
		}
		if j, ok := seen[def.Label]; ok {
			return fmt.Errorf("entries %d and %d (%q): %w", j, i, def.Label, ErrDuplicateLabel)
		}
		seen[def.Label] = i
	}
	return nil
}
