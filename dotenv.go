package envconf

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// DotenvEnvironment names the environment used to pick dotenv files:
// APP_ENV, then GO_ENV, else "development".
func DotenvEnvironment() string {
	for _, name := range []string{"APP_ENV", "GO_ENV"} {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return "development"
}

// dotenvFiles lists candidate files, highest precedence first.
func dotenvFiles(env string) []string {
	files := []string{".env.local." + env, ".env.local", ".env." + env, ".env"}
	if env == "" {
		files = []string{".env.local", ".env"}
	}
	return files
}

// LoadDotenv reads the dotenv files of dir for env. Earlier files win over
// later ones: .env.local.<env>, .env.local, .env.<env>, .env.
// Missing files are skipped.
func LoadDotenv(dir, env string) (MapSource, error) {
	merged := make(MapSource)
	for _, name := range dotenvFiles(env) {
		path := filepath.Join(dir, name)
		values, err := godotenv.Read(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("failed to read dotenv file '%s': %w", path, err)
		}
		for k, v := range values {
			if _, exists := merged[k]; !exists {
				merged[k] = v
			}
		}
	}
	return merged, nil
}

// Dotenv layers the process environment over the dotenv files of dir, so an
// exported variable always beats a file value.
func Dotenv(dir, env string) (Source, error) {
	files, err := LoadDotenv(dir, env)
	if err != nil {
		return nil, err
	}
	return Chain(OSEnv(), files), nil
}
