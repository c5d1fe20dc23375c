// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
)

// LoadWaveDefinitions reads a wave file and returns the table keyed by wave
// number. Entries are listed in order; the first one is wave 1.
func LoadWaveDefinitions(path string) (map[int]WaveDefinition, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read wave definitions file: %w", err)
	}

	var waveDefs []WaveDefinition
	if err := json.Unmarshal(file, &waveDefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal wave definitions: %w", err)
	}
	if len(waveDefs) == 0 {
		return nil, fmt.Errorf("wave definitions file %s is empty", path)
	}

	patterns := make(map[int]WaveDefinition, len(waveDefs))
	for i, def := range waveDefs {
		if def.Count <= 0 {
			return nil, fmt.Errorf("wave %d: count must be positive, got %d", i+1, def.Count)
		}
		for _, kw := range def.Kinds {
			if _, ok := PursuerDefs[kw.Kind]; !ok {
				return nil, fmt.Errorf("wave %d: unknown pursuer kind %q", i+1, kw.Kind)
			}
		}
		patterns[i+1] = def
	}

	slog.Info("Loaded wave definitions", "count", len(patterns), "path", path)
	return patterns, nil
}
