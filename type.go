// File: lixenwraith/envconf/type.go
package envconf

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// GetString retrieves a value as a string.
// Attempts conversion from common types if the resolved value isn't already a string.
func (c *Config) GetString(name string) (string, error) {
	val, err := c.Get(name)
	if err != nil {
		return "", err
	}
	if val == nil {
		return "", nil // Treat nil as empty string for convenience
	}

	switch v := val.(type) {
	case string:
		return v, nil
	case AtomValue:
		return v.String(), nil
	case decimal.Decimal:
		return v.String(), nil
	case int, int8, int16, int32, int64:
		return strconv.FormatInt(reflect.ValueOf(val).Int(), 10), nil
	case uint, uint8, uint16, uint32, uint64:
		return strconv.FormatUint(reflect.ValueOf(val).Uint(), 10), nil
	case float32, float64:
		return strconv.FormatFloat(reflect.ValueOf(val).Float(), 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(v), nil
	case fmt.Stringer:
		return v.String(), nil
	default:
		return "", fmt.Errorf("%w: cannot convert %T to string for %s", ErrTypeMismatch, val, name)
	}
}

// GetInt64 retrieves a value as an int64.
// Attempts conversion from numeric types and parsable strings.
func (c *Config) GetInt64(name string) (int64, error) {
	val, err := c.Get(name)
	if err != nil {
		return 0, err
	}
	if val == nil {
		return 0, fmt.Errorf("%w: %s", ErrNoValue, name)
	}

	if d, ok := val.(decimal.Decimal); ok {
		return d.IntPart(), nil
	}

	v := reflect.ValueOf(val)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := v.Uint()
		// Check for potential overflow converting uint64 to int64
		maxInt64 := int64(^uint64(0) >> 1)
		if u > uint64(maxInt64) {
			return 0, fmt.Errorf("%w: %d overflows int64 for %s", ErrTypeMismatch, u, name)
		}
		return int64(u), nil
	case reflect.Float32, reflect.Float64:
		// Truncate float to int
		return int64(v.Float()), nil
	case reflect.String:
		i, perr := strconv.ParseInt(v.String(), 0, 64)
		if perr != nil {
			return 0, fmt.Errorf("%w: %s is not an integer", ErrTypeMismatch, name)
		}
		return i, nil
	}

	return 0, fmt.Errorf("%w: cannot convert %T to int64 for %s", ErrTypeMismatch, val, name)
}

// GetFloat64 retrieves a value as a float64.
func (c *Config) GetFloat64(name string) (float64, error) {
	val, err := c.Get(name)
	if err != nil {
		return 0, err
	}
	if val == nil {
		return 0, fmt.Errorf("%w: %s", ErrNoValue, name)
	}

	if d, ok := val.(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f, nil
	}

	v := reflect.ValueOf(val)
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		return v.Float(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint()), nil
	case reflect.String:
		f, perr := strconv.ParseFloat(v.String(), 64)
		if perr != nil {
			return 0, fmt.Errorf("%w: %s is not a float", ErrTypeMismatch, name)
		}
		return f, nil
	}

	return 0, fmt.Errorf("%w: cannot convert %T to float64 for %s", ErrTypeMismatch, val, name)
}

// GetBool retrieves a predicate. The "?" suffix of bool fields is optional.
// An unset value without default reads as false.
func (c *Config) GetBool(name string) (bool, error) {
	if !c.Has(name) && !strings.HasSuffix(name, "?") && c.Has(name+"?") {
		name += "?"
	}
	val, err := c.Get(name)
	if err != nil {
		return false, err
	}

	switch v := val.(type) {
	case nil:
		return false, nil
	case bool:
		return v, nil
	case string:
		return boolTrue[v], nil
	}

	return false, fmt.Errorf("%w: cannot convert %T to bool for %s", ErrTypeMismatch, val, name)
}

// GetDecimal retrieves an arbitrary-precision decimal.
func (c *Config) GetDecimal(name string) (decimal.Decimal, error) {
	val, err := c.Get(name)
	if err != nil {
		return decimal.Zero, err
	}

	switch v := val.(type) {
	case nil:
		return decimal.Zero, fmt.Errorf("%w: %s", ErrNoValue, name)
	case decimal.Decimal:
		return v, nil
	case string:
		d, perr := decimal.NewFromString(v)
		if perr != nil {
			return decimal.Zero, fmt.Errorf("%w: %s is not a decimal", ErrTypeMismatch, name)
		}
		return d, nil
	case int64:
		return decimal.NewFromInt(v), nil
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case float64:
		return decimal.NewFromFloat(v), nil
	}

	return decimal.Zero, fmt.Errorf("%w: cannot convert %T to decimal for %s", ErrTypeMismatch, val, name)
}

// GetAtom retrieves an interned identifier.
func (c *Config) GetAtom(name string) (AtomValue, error) {
	val, err := c.Get(name)
	if err != nil {
		return AtomValue{}, err
	}

	switch v := val.(type) {
	case nil:
		return AtomValue{}, fmt.Errorf("%w: %s", ErrNoValue, name)
	case AtomValue:
		return v, nil
	case string:
		return NewAtom(v), nil
	}

	return AtomValue{}, fmt.Errorf("%w: cannot convert %T to atom for %s", ErrTypeMismatch, val, name)
}

// GetSlice retrieves an array value. Nil reads as an empty slice.
func (c *Config) GetSlice(name string) ([]any, error) {
	val, err := c.Get(name)
	if err != nil {
		return nil, err
	}
	if val == nil {
		return nil, nil
	}

	if s, ok := val.([]any); ok {
		return s, nil
	}

	v := reflect.ValueOf(val)
	if v.Kind() == reflect.Slice || v.Kind() == reflect.Array {
		out := make([]any, v.Len())
		for i := range out {
			out[i] = v.Index(i).Interface()
		}
		return out, nil
	}

	return nil, fmt.Errorf("%w: cannot convert %T to slice for %s", ErrTypeMismatch, val, name)
}
