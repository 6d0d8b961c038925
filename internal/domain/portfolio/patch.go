package portfolio

import (
	"encoding/json"
	"errors"
	"fmt"
)

var ErrInvalidPatch = errors.New("patch must be a JSON object")

// MergePatch overlays the top-level keys of patch onto current, the same
// shallow merge as spreading a partial object over a record. Nested objects
// are replaced, not merged. An explicit null resets a field to its zero value.
func MergePatch[T any](current T, patch []byte) (T, error) {
	var zero T

	var overlay map[string]json.RawMessage
	if err := json.Unmarshal(patch, &overlay); err != nil {
		return zero, fmt.Errorf("%w: %v", ErrInvalidPatch, err)
	}
	if overlay == nil {
		return zero, ErrInvalidPatch
	}

	base, err := json.Marshal(current)
	if err != nil {
		return zero, fmt.Errorf("encode current value: %w", err)
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(base, &fields); err != nil {
		return zero, fmt.Errorf("decode current value: %w", err)
	}
	for k, v := range overlay {
		fields[k] = v
	}

	merged, err := json.Marshal(fields)
	if err != nil {
		return zero, fmt.Errorf("encode merged value: %w", err)
	}
	var out T
	if err := json.Unmarshal(merged, &out); err != nil {
		return zero, fmt.Errorf("%w: %v", ErrInvalidPatch, err)
	}
	return out, nil
}
