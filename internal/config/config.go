package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Wrap holds the header and footer applied verbatim around every emitted
// part. Both fields are mandatory; no defaults are substituted.
type Wrap struct {
	Header string
	Footer string
}

// rawWrap uses pointers so a missing field is distinguishable from an
// explicitly empty one.
type rawWrap struct {
	Header *string `json:"header" yaml:"header"`
	Footer *string `json:"footer" yaml:"footer"`
}

// Load reads the wrap configuration from path. The format is chosen by
// extension: .yaml/.yml is parsed as YAML, anything else as JSON (the
// original format of these config files).
func Load(path string) (*Wrap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var raw rawWrap
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if raw.Header == nil {
		return nil, fmt.Errorf("config %s: header is required", path)
	}
	if raw.Footer == nil {
		return nil, fmt.Errorf("config %s: footer is required", path)
	}

	return &Wrap{Header: *raw.Header, Footer: *raw.Footer}, nil
}
