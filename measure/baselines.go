package measure

// This file contains baseline loading functionality for reading
// persisted baseline documents from a directory of JSON files.

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/benchgate/benchgate/model"
)

// FromJSONFiles loads every baseline JSON document directly under dir,
// keyed by file path. Unreadable or malformed files are errors, not
// skips: a corrupted baseline must surface rather than silently
// narrow the comparison.
func FromJSONFiles(dir string) (map[string]model.Baseline, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read baseline directory: %w", err)
	}

	baselines := make(map[string]model.Baseline)
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read baseline %s: %w", path, err)
		}

		var baseline model.Baseline
		if err := json.Unmarshal(data, &baseline); err != nil {
			return nil, fmt.Errorf("failed to parse baseline %s: %w", path, err)
		}
		baselines[path] = baseline
	}

	return baselines, nil
}
