// FILE: lixenwraith/envconf/credential.go
package envconf

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// CredentialStore fetches secrets by name. Fetch fails with
// ErrCredentialNotFound when the name is absent.
type CredentialStore interface {
	Fetch(ctx context.Context, name string) (string, error)
}

// MapCredentials is an in-memory CredentialStore.
type MapCredentials map[string]string

func (m MapCredentials) Fetch(_ context.Context, name string) (string, error) {
	v, ok := m[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrCredentialNotFound, name)
	}
	return v, nil
}

// Credential binds name to a secret from the configured CredentialStore.
// The secret is fetched on first access and memoized; transform, when
// non-nil, converts the raw secret before it is stored.
func (s *Schema) Credential(name string, transform func(string) (any, error), opts ...FieldOption) {
	if s.err != nil {
		return
	}
	if !isValidName(name) {
		s.err = &SchemaError{Name: name, Err: ErrInvalidName}
		return
	}
	store := s.cfg.opts.Credentials
	if store == nil {
		s.err = &SchemaError{Name: name, Err: ErrNoCredentialStore}
		return
	}

	produce := func() (any, error) {
		raw, err := store.Fetch(context.Background(), name)
		if err != nil {
			return nil, fmt.Errorf("credential %s: %w", name, err)
		}
		if transform == nil {
			return raw, nil
		}
		return transform(raw)
	}

	d := collect(opts)
	d.cache = true
	s.bindProducer(name, produce, d)

	s.cfg.logger.Debug("credential declared", zap.String("name", name))
}
