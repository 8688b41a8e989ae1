// FILE: lixenwraith/envconf/coerce.go
package envconf

import (
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

// Literal sets recognised by the bool and int coercions. Matching is case-sensitive.
var (
	boolTrue  = map[string]bool{"yes": true, "true": true, "1": true}
	intFalsey = map[string]bool{"no": true, "false": true}
)

// Coerce converts raw into the Go value described by t.
// Absence is not represented here: accessors substitute the field default
// before coercion is ever reached.
func Coerce(t Type, raw string) (any, error) {
	return coerce("", t, raw)
}

// coerce is Coerce with the field key attached to any failure.
func coerce(key string, t Type, raw string) (any, error) {
	switch t.Kind() {
	case KindString:
		return raw, nil

	case KindBool:
		return boolTrue[raw], nil

	case KindInt:
		if intFalsey[raw] {
			return nil, nil
		}
		// Base 0 accepts 0x, 0o and 0b prefixes and digit underscores
		i, err := strconv.ParseInt(strings.TrimSpace(raw), 0, 64)
		if err != nil {
			return nil, &CoercionError{Key: key, Type: t, Err: err}
		}
		return i, nil

	case KindFloat:
		f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, &CoercionError{Key: key, Type: t, Err: err}
		}
		return f, nil

	case KindDecimal:
		d, err := decimal.NewFromString(strings.TrimSpace(raw))
		if err != nil {
			return nil, &CoercionError{Key: key, Type: t, Err: err}
		}
		return d, nil

	case KindAtom:
		return NewAtom(raw), nil

	case KindArray:
		return coerceArray(key, t.Elem(), raw)

	case KindJSON:
		var doc any
		if err := json.Unmarshal([]byte(raw), &doc); err != nil {
			return nil, &CoercionError{Key: key, Type: t, Err: err}
		}
		return doc, nil
	}

	return nil, &CoercionError{Key: key, Type: t, Err: ErrTypeMismatch}
}

// coerceArray splits on a comma followed by any run of spaces and coerces
// each non-empty token in order.
func coerceArray(key string, elem Type, raw string) ([]any, error) {
	parts := strings.Split(raw, ",")
	out := make([]any, 0, len(parts))
	for i, part := range parts {
		if i > 0 {
			part = strings.TrimLeft(part, " ")
		}
		if part == "" {
			continue
		}
		v, err := coerce(key, elem, part)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
