package envconf_test

import (
	"testing"

	"github.com/lixenwraith/envconf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDotenvPrecedence(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".env", "A=env\nB=env\nC=env\nD=env\n")
	writeFile(t, dir, ".env.test", "A=env.test\nB=env.test\nC=env.test\n")
	writeFile(t, dir, ".env.local", "A=env.local\nB=env.local\n")
	writeFile(t, dir, ".env.local.test", "A=env.local.test\n")

	got, err := envconf.LoadDotenv(dir, "test")
	require.NoError(t, err)
	assert.Equal(t, envconf.MapSource{
		"A": "env.local.test",
		"B": "env.local",
		"C": "env.test",
		"D": "env",
	}, got)
}

func TestLoadDotenvMissingFiles(t *testing.T) {
	got, err := envconf.LoadDotenv(t.TempDir(), "production")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLoadDotenvIgnoresOtherEnvironments(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".env", "PORT=1\n")
	writeFile(t, dir, ".env.production", "PORT=2\n")

	got, err := envconf.LoadDotenv(dir, "development")
	require.NoError(t, err)
	assert.Equal(t, "1", got["PORT"])
}

func TestDotenvEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("GO_ENV", "")
	assert.Equal(t, "development", envconf.DotenvEnvironment())

	t.Setenv("GO_ENV", "staging")
	assert.Equal(t, "staging", envconf.DotenvEnvironment())

	t.Setenv("APP_ENV", "test")
	assert.Equal(t, "test", envconf.DotenvEnvironment())
}

func TestDotenvEnvironmentWins(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".env", "ENVCONF_DOTENV_HOST=file\nENVCONF_DOTENV_PORT=80\n")
	t.Setenv("ENVCONF_DOTENV_HOST", "exported")

	src, err := envconf.Dotenv(dir, "")
	require.NoError(t, err)

	v, _ := src.Lookup("ENVCONF_DOTENV_HOST")
	assert.Equal(t, "exported", v)
	v, _ = src.Lookup("ENVCONF_DOTENV_PORT")
	assert.Equal(t, "80", v)
}
