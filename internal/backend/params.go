package backend

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadParams reads extra request parameters from a JSON file. An empty path
// yields nil params.
func LoadParams(path string) (map[string]any, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read params %s: %w", path, err)
	}

	var params map[string]any
	if err := json.Unmarshal(data, &params); err != nil {
		return nil, fmt.Errorf("parse params %s: %w", path, err)
	}
	return params, nil
}

// mergeParams folds overlay into base: keys absent from base are added,
// nested objects present on both sides are merged recursively, and existing
// non-object base values win.
func mergeParams(base, overlay map[string]any) {
	for key, value := range overlay {
		existing, ok := base[key]
		if !ok {
			base[key] = value
			continue
		}
		baseObj, baseOK := existing.(map[string]any)
		overlayObj, overlayOK := value.(map[string]any)
		if baseOK && overlayOK {
			mergeParams(baseObj, overlayObj)
		}
	}
}
