// File: lixenwraith/envconf/helper.go
package envconf

import (
	"fmt"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// envKey derives the source key for a field: upper(join("_", prefix, name)).
// A trailing underscore on the prefix is not doubled.
func envKey(prefix, name string) string {
	prefix = strings.TrimRight(prefix, "_")
	if prefix == "" {
		return strings.ToUpper(name)
	}
	return strings.ToUpper(prefix + "_" + name)
}

// isValidName checks an accessor identifier: [A-Za-z_][A-Za-z0-9_]*.
func isValidName(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i, r := range s {
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		isDigit := r >= '0' && r <= '9'
		if !(isLetter || r == '_' || (isDigit && i > 0)) {
			return false
		}
	}
	return true
}

// isValidKey accepts the same alphabet as names; leading digits are allowed
// since keys are external.
func isValidKey(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, r := range s {
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		isDigit := r >= '0' && r <= '9'
		if !(isLetter || isDigit || r == '_') {
			return false
		}
	}
	return true
}

// flattenMap converts a nested document into flat upper-case keys joined by
// underscores. Leaves are rendered back to source strings.
func flattenMap(nested map[string]any, prefix string, flat MapSource) error {
	for key, value := range nested {
		newKey := strings.ToUpper(key)
		if prefix != "" {
			newKey = prefix + "_" + newKey
		}

		if nestedMap, isMap := value.(map[string]any); isMap {
			if err := flattenMap(nestedMap, newKey, flat); err != nil {
				return err
			}
			continue
		}

		s, err := renderValue(value)
		if err != nil {
			return fmt.Errorf("key %s: %w", newKey, err)
		}
		flat[newKey] = s
	}
	return nil
}

// renderValue turns a decoded file value into the string an environment
// variable would carry. Scalar lists join with commas; anything composite is
// re-encoded as JSON.
func renderValue(v any) (string, error) {
	switch val := v.(type) {
	case nil:
		return "", nil
	case string:
		return val, nil
	case time.Time:
		return val.Format(time.RFC3339Nano), nil
	case []any:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			if !isScalar(item) {
				return renderJSON(val)
			}
			s, _ := renderValue(item)
			parts = append(parts, s)
		}
		return strings.Join(parts, ","), nil
	default:
		if isScalar(val) {
			return fmt.Sprint(val), nil
		}
		return renderJSON(val)
	}
}

func isScalar(v any) bool {
	switch v.(type) {
	case nil, string, bool, json.Number,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	}
	return false
}

func renderJSON(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("cannot encode value as JSON: %w", err)
	}
	return string(b), nil
}
