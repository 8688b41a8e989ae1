// FILE: lixenwraith/envconf/credential_test.go
package envconf_test

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/lixenwraith/envconf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingStore records how often each credential is fetched
type countingStore struct {
	envconf.MapCredentials
	fetches atomic.Int32
}

func (s *countingStore) Fetch(ctx context.Context, name string) (string, error) {
	s.fetches.Add(1)
	return s.MapCredentials.Fetch(ctx, name)
}

func credentialOptions(store envconf.CredentialStore) envconf.Options {
	opts := envconf.DefaultOptions()
	opts.Source = envconf.MapSource{}
	opts.Credentials = store
	return opts
}

func TestCredential(t *testing.T) {
	store := &countingStore{MapCredentials: envconf.MapCredentials{"api_key": "s3cret", "signing_key": "abc"}}

	cfg, err := envconf.New(credentialOptions(store), func(s *envconf.Schema) {
		s.Credential("api_key", nil, envconf.Aliases("token"))
		s.Credential("signing_key", func(raw string) (any, error) {
			return strings.ToUpper(raw), nil
		})
	})
	require.NoError(t, err)
	assert.Equal(t, int32(0), store.fetches.Load(), "credentials are fetched on first access")

	assert.Equal(t, "s3cret", cfg.MustGet("api_key"))
	assert.Equal(t, "s3cret", cfg.MustGet("token"))
	assert.Equal(t, "s3cret", cfg.MustGet("api_key"))
	assert.Equal(t, int32(1), store.fetches.Load(), "credentials are memoized")

	assert.Equal(t, "ABC", cfg.MustGet("signing_key"))
	assert.Equal(t, int32(2), store.fetches.Load())

	props := cfg.Properties()
	require.Len(t, props, 2)
	assert.Equal(t, "api_key", props[0].Name)
	assert.True(t, props[0].Cache)
}

func TestCredentialErrors(t *testing.T) {
	t.Run("NoStore", func(t *testing.T) {
		opts := envconf.DefaultOptions()
		opts.Source = envconf.MapSource{}
		_, err := envconf.New(opts, func(s *envconf.Schema) {
			s.Credential("api_key", nil)
		})
		assert.ErrorIs(t, err, envconf.ErrNoCredentialStore)

		var schemaErr *envconf.SchemaError
		require.ErrorAs(t, err, &schemaErr)
		assert.Equal(t, "api_key", schemaErr.Name)
	})

	t.Run("InvalidName", func(t *testing.T) {
		_, err := envconf.New(credentialOptions(envconf.MapCredentials{}), func(s *envconf.Schema) {
			s.Credential("api-key", nil)
		})
		assert.ErrorIs(t, err, envconf.ErrInvalidName)
	})

	t.Run("NotFoundIsNotCached", func(t *testing.T) {
		store := &countingStore{MapCredentials: envconf.MapCredentials{}}
		cfg, err := envconf.New(credentialOptions(store), func(s *envconf.Schema) {
			s.Credential("api_key", nil)
		})
		require.NoError(t, err)

		_, err = cfg.Get("api_key")
		assert.ErrorIs(t, err, envconf.ErrCredentialNotFound)
		_, err = cfg.Get("api_key")
		assert.ErrorIs(t, err, envconf.ErrCredentialNotFound)
		assert.Equal(t, int32(2), store.fetches.Load())
	})

	t.Run("TransformFailure", func(t *testing.T) {
		errShort := errors.New("key too short")
		cfg, err := envconf.New(credentialOptions(envconf.MapCredentials{"signing_key": "a"}), func(s *envconf.Schema) {
			s.Credential("signing_key", func(raw string) (any, error) {
				if len(raw) < 8 {
					return nil, errShort
				}
				return raw, nil
			})
		})
		require.NoError(t, err)

		_, err = cfg.Get("signing_key")
		assert.ErrorIs(t, err, errShort)
	})
}
