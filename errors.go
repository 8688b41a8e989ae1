// FILE: lixenwraith/envconf/errors.go
package envconf

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingCallable is returned when a property is declared without a producer.
	ErrMissingCallable = errors.New("property requires a non-nil producer")

	// ErrMissingEnvironmentVariable matches every ValidationError.
	ErrMissingEnvironmentVariable = errors.New("missing environment variable")

	// ErrCoercion matches every CoercionError.
	ErrCoercion = errors.New("coercion failed")

	ErrInvalidName        = errors.New("invalid accessor name")
	ErrUnknownAccessor    = errors.New("unknown accessor")
	ErrNoValue            = errors.New("value is not set")
	ErrTypeMismatch       = errors.New("type mismatch")
	ErrCredentialNotFound = errors.New("credential not found")
	ErrNoCredentialStore  = errors.New("no credential store configured")
	ErrFileNotFound       = errors.New("configuration file not found")
)

// SchemaError reports a declaration that cannot be registered.
type SchemaError struct {
	Name string
	Err  error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema declaration %q: %v", e.Name, e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }

// ValidationError reports a required key absent from the source.
type ValidationError struct {
	Key         string
	Description string
}

// Error renders "KEY (description) is not defined.".
func (e *ValidationError) Error() string {
	msg := e.Key
	if e.Description != "" {
		msg += " (" + e.Description + ")"
	}
	return msg + " is not defined."
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrMissingEnvironmentVariable
}

// CoercionError reports a raw value that does not parse as its declared type.
// The message names the key but never the raw value.
type CoercionError struct {
	Key  string
	Type Type
	Err  error
}

func (e *CoercionError) Error() string {
	key := e.Key
	if key == "" {
		key = "value"
	}
	if e.Type.Kind() == KindJSON {
		return fmt.Sprintf("%s is not valid JSON", key)
	}
	return fmt.Sprintf("%s is not a valid %s", key, e.Type)
}

func (e *CoercionError) Unwrap() error { return e.Err }

func (e *CoercionError) Is(target error) bool {
	return target == ErrCoercion
}
