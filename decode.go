// FILE: lixenwraith/envconf/decode.go
package envconf

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/shopspring/decimal"
)

// structValidator is shared; validator caches struct metadata internally.
var structValidator = validator.New(validator.WithRequiredStructEnabled())

// Verify resolves every field accessor and returns all coercion failures
// joined. Properties and credentials are not evaluated.
func (c *Config) Verify() error {
	var errs []error
	for _, f := range c.Fields() {
		if _, err := c.Get(f.Accessor()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Scan decodes resolved field values into target, a non-nil struct or map
// pointer. Struct fields match by the "env" tag or by name, ignoring case and
// underscores, so DatabaseURL matches database_url. Struct targets are then
// checked against their "validate" tags.
func (c *Config) Scan(target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("scan target must be non-nil pointer, got %T", target)
	}

	values := make(map[string]any, len(c.fields))
	for _, f := range c.Fields() {
		v, err := c.Get(f.Accessor())
		if err != nil {
			return err
		}
		if v != nil {
			values[f.Name] = v
		}
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "env",
		WeaklyTypedInput: true,
		MatchName:        matchFieldName,
		DecodeHook:       c.getDecodeHook(),
	})
	if err != nil {
		return fmt.Errorf("decoder creation failed: %w", err)
	}

	if err := decoder.Decode(values); err != nil {
		return fmt.Errorf("decode failed: %w", err)
	}

	if rv.Elem().Kind() == reflect.Struct {
		if err := structValidator.Struct(target); err != nil {
			return fmt.Errorf("configuration validation failed: %w", err)
		}
	}
	return nil
}

// getDecodeHook returns the composite decode hook for all type conversions
func (c *Config) getDecodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		atomToStringHookFunc(),
		stringToDecimalHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)
}

// atomToStringHookFunc lets atoms land in string fields
func atomToStringHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		a, ok := data.(AtomValue)
		if !ok || t.Kind() != reflect.String {
			return data, nil
		}
		return a.String(), nil
	}
}

// stringToDecimalHookFunc handles decimal defaults declared as strings
func stringToDecimalHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || t != reflect.TypeOf(decimal.Decimal{}) {
			return data, nil
		}
		d, err := decimal.NewFromString(data.(string))
		if err != nil {
			return nil, fmt.Errorf("invalid decimal: %w", err)
		}
		return d, nil
	}
}

func matchFieldName(mapKey, fieldName string) bool {
	norm := func(s string) string { return strings.ToLower(strings.ReplaceAll(s, "_", "")) }
	return norm(mapKey) == norm(fieldName)
}
