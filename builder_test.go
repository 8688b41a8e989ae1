// FILE: lixenwraith/envconf/builder_test.go
package envconf_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/envconf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderLayering(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "app.toml", `
host = "file-host"
port = 1000
log_level = "warn"
`)
	writeFile(t, dir, ".env", "HOST=dotenv-host\nPORT=2000\nLOG_LEVEL=debug\nREGION=eu\n")

	cfg, err := envconf.NewBuilder().
		WithSource(envconf.MapSource{"HOST": "env-host"}).
		WithFile(file).
		WithDotenv(dir, "").
		WithArgs([]string{"--port", "3000"}).
		WithSchema(func(s *envconf.Schema) {
			s.Mandatory("host", envconf.String())
			s.Mandatory("port", envconf.Int())
			s.Mandatory("log_level", envconf.String())
			s.Mandatory("region", envconf.String())
		}).
		Build()
	require.NoError(t, err)

	assert.Equal(t, "env-host", cfg.MustGet("host"), "source beats file")
	assert.Equal(t, int64(3000), cfg.MustGet("port"), "args beat everything")
	assert.Equal(t, "warn", cfg.MustGet("log_level"), "file beats dotenv")
	assert.Equal(t, "eu", cfg.MustGet("region"), "dotenv fills the rest")
}

func TestBuilderMultipleSchemas(t *testing.T) {
	cfg, err := envconf.NewBuilder().
		WithSource(envconf.MapSource{"APP_HOST": "h"}).
		WithPrefix("app").
		WithSchema(func(s *envconf.Schema) { s.Mandatory("host", envconf.String()) }).
		WithSchema(func(s *envconf.Schema) { s.Optional("port", envconf.Int(), 80) }).
		Build()
	require.NoError(t, err)
	assert.Equal(t, []string{"host", "port"}, cfg.Names())
}

func TestBuilderHardFail(t *testing.T) {
	_, err := envconf.NewBuilder().
		WithSource(envconf.MapSource{}).
		WithSchema(func(s *envconf.Schema) { s.Mandatory("database_url", envconf.String()) }).
		Build()
	assert.ErrorIs(t, err, envconf.ErrMissingEnvironmentVariable)

	sink := &ttyBuffer{}
	cfg, err := envconf.NewBuilder().
		WithSource(envconf.MapSource{}).
		WithHardFail(false).
		WithSink(sink).
		WithTag("APP").
		WithSchema(func(s *envconf.Schema) { s.Mandatory("database_url", envconf.String()) }).
		Build()
	require.NoError(t, err)
	assert.False(t, cfg.Ready())
	assert.Equal(t, "\x1b[31m[APP] DATABASE_URL is not defined.\x1b[0m\n", sink.String())
}

func TestBuilderValidators(t *testing.T) {
	errPort := errors.New("port must be above 1024")

	var order []string
	_, err := envconf.NewBuilder().
		WithSource(envconf.MapSource{"PORT": "80"}).
		WithSchema(func(s *envconf.Schema) { s.Mandatory("port", envconf.Int()) }).
		WithValidator(func(c *envconf.Config) error {
			order = append(order, "first")
			return nil
		}).
		WithValidator(func(c *envconf.Config) error {
			order = append(order, "second")
			port, err := c.GetInt64("port")
			if err != nil {
				return err
			}
			if port <= 1024 {
				return errPort
			}
			return nil
		}).
		Build()

	assert.ErrorIs(t, err, errPort)
	assert.Contains(t, err.Error(), "configuration validation failed")
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestBuilderStickyError(t *testing.T) {
	b := envconf.NewBuilder().
		WithFile(filepath.Join(t.TempDir(), "missing.yaml")).
		WithArgs([]string{"--port", "1"})

	_, err := b.Build()
	assert.ErrorIs(t, err, envconf.ErrFileNotFound)

	assert.Panics(t, func() { b.MustBuild() })
}

func TestBuilderInvalidArgs(t *testing.T) {
	_, err := envconf.NewBuilder().WithArgs([]string{"--bad$key", "1"}).Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse CLI args")
}

func TestBuilderCredentials(t *testing.T) {
	cfg := envconf.NewBuilder().
		WithSource(envconf.MapSource{}).
		WithCredentials(envconf.MapCredentials{"api_key": "s3cret"}).
		WithSchema(func(s *envconf.Schema) { s.Credential("api_key", nil) }).
		MustBuild()
	assert.Equal(t, "s3cret", cfg.MustGet("api_key"))
}

func TestBuildAndScan(t *testing.T) {
	var target struct {
		Host string
		Port int
	}

	cfg, err := envconf.NewBuilder().
		WithSource(envconf.MapSource{"HOST": "localhost", "PORT": "8080"}).
		WithSchema(func(s *envconf.Schema) {
			s.Mandatory("host", envconf.String())
			s.Mandatory("port", envconf.Int())
		}).
		BuildAndScan(&target)
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, "localhost", target.Host)
	assert.Equal(t, 8080, target.Port)

	_, err = envconf.NewBuilder().
		WithSource(envconf.MapSource{}).
		BuildAndScan(target)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to scan")
}
