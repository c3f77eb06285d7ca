package presets

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Load decodes a JSON file from the embedded filesystem. Unknown fields are
// rejected so a misspelled parameter cannot silently fall back to a default.
func Load[T any](filename string) (T, error) {
	var result T

	content, err := dataFS.ReadFile(filename)
	if err != nil {
		return result, fmt.Errorf("failed to read embedded file %s: %w", filename, err)
	}

	dec := json.NewDecoder(bytes.NewReader(content))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&result); err != nil {
		return result, fmt.Errorf("failed to parse JSON from %s: %w", filename, err)
	}
	if dec.More() {
		return result, fmt.Errorf("failed to parse JSON from %s: trailing data", filename)
	}

	return result, nil
}
