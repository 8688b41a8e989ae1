// FILE: lixenwraith/envconf/source_test.go
package envconf_test

import (
	"testing"

	"github.com/lixenwraith/envconf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapSource(t *testing.T) {
	src := envconf.MapSource{"EMPTY": "", "SET": "v"}

	v, ok := src.Lookup("SET")
	assert.True(t, ok)
	assert.Equal(t, "v", v)

	v, ok = src.Lookup("EMPTY")
	assert.True(t, ok, "empty values still exist")
	assert.Equal(t, "", v)

	_, ok = src.Lookup("MISSING")
	assert.False(t, ok)
}

func TestOSEnv(t *testing.T) {
	t.Setenv("ENVCONF_TEST_HOST", "env-host")

	v, ok := envconf.OSEnv().Lookup("ENVCONF_TEST_HOST")
	assert.True(t, ok)
	assert.Equal(t, "env-host", v)

	_, ok = envconf.OSEnv().Lookup("ENVCONF_TEST_NOT_SET_ANYWHERE")
	assert.False(t, ok)
}

func TestDefaultSourceIsEnvironment(t *testing.T) {
	t.Setenv("ENVCONF_TEST_PORT", "9999")

	cfg, err := envconf.New(envconf.DefaultOptions(), func(s *envconf.Schema) {
		s.Mandatory("envconf_test_port", envconf.Int())
	})
	require.NoError(t, err)
	assert.Equal(t, int64(9999), cfg.MustGet("envconf_test_port"))
}

func TestChain(t *testing.T) {
	high := envconf.MapSource{"PORT": "1"}
	low := envconf.MapSource{"PORT": "2", "HOST": "low"}
	src := envconf.Chain(high, nil, low)

	v, _ := src.Lookup("PORT")
	assert.Equal(t, "1", v)

	v, _ = src.Lookup("HOST")
	assert.Equal(t, "low", v)

	_, ok := src.Lookup("NONE")
	assert.False(t, ok)
}

func TestArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want envconf.MapSource
	}{
		{"SpaceSeparated", []string{"--port", "9090"}, envconf.MapSource{"PORT": "9090"}},
		{"EqualsSign", []string{"--port=9090"}, envconf.MapSource{"PORT": "9090"}},
		{"BooleanFlag", []string{"--force-ssl", "--debug"}, envconf.MapSource{"FORCE_SSL": "true", "DEBUG": "true"}},
		{"DottedKey", []string{"--database.url=postgres://x"}, envconf.MapSource{"DATABASE_URL": "postgres://x"}},
		{"SkipsPositional", []string{"serve", "--port", "1", "extra"}, envconf.MapSource{"PORT": "1"}},
		{"Separator", []string{"--", "--port=2"}, envconf.MapSource{"PORT": "2"}},
		{"EmptyValue", []string{"--name="}, envconf.MapSource{"NAME": ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := envconf.Args(tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("InvalidKey", func(t *testing.T) {
		_, err := envconf.Args([]string{"--bad!key=1"})
		assert.Error(t, err)
	})
}
