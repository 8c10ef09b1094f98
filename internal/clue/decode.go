package clue

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadRecord reads a single clue record from a JSON or YAML file,
// selected by extension.
func LoadRecord(path string) (Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Record{}, fmt.Errorf("reading clue file: %w", err)
	}

	switch ext := filepath.Ext(path); ext {
	case ".json":
		return DecodeJSON(data)
	case ".yaml", ".yml":
		return DecodeYAML(data)
	default:
		return Record{}, fmt.Errorf("unsupported clue file type %q (want .json, .yaml, or .yml)", ext)
	}
}

// DecodeJSON decodes one clue record from JSON.
func DecodeJSON(data []byte) (Record, error) {
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return Record{}, fmt.Errorf("decoding clue JSON: %w", err)
	}
	if strings.TrimSpace(r.Answer) == "" {
		return Record{}, fmt.Errorf("clue record has no answer")
	}
	return r, nil
}

// DecodeYAML decodes one clue record from YAML.
func DecodeYAML(data []byte) (Record, error) {
	var r Record
	if err := yaml.Unmarshal(data, &r); err != nil {
		return Record{}, fmt.Errorf("decoding clue YAML: %w", err)
	}
	if strings.TrimSpace(r.Answer) == "" {
		return Record{}, fmt.Errorf("clue record has no answer")
	}
	return r, nil
}
