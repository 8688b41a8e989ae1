// FILE: lixenwraith/envconf/source.go
package envconf

import (
	"fmt"
	"os"
	"strings"
)

// Source is the read-only key/value snapshot a schema is evaluated against.
type Source interface {
	// Lookup returns the raw value for key and whether the key exists.
	Lookup(key string) (string, bool)
}

// MapSource is an in-memory Source.
type MapSource map[string]string

func (m MapSource) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

type osEnv struct{}

func (osEnv) Lookup(key string) (string, bool) { return os.LookupEnv(key) }

// OSEnv returns a Source backed by the process environment.
func OSEnv() Source { return osEnv{} }

type chain []Source

func (c chain) Lookup(key string) (string, bool) {
	for _, s := range c {
		if s == nil {
			continue
		}
		if v, ok := s.Lookup(key); ok {
			return v, true
		}
	}
	return "", false
}

// Chain layers sources by precedence: the first source holding a key wins.
func Chain(sources ...Source) Source {
	return chain(sources)
}

// Args parses command-line arguments into a MapSource.
// Accepts "--key value", "--key=value" and bare "--flag" (stored as "true").
// Dots and dashes in keys become underscores and keys are uppercased, so
// "--database.url" and "--database-url" both set DATABASE_URL.
func Args(args []string) (MapSource, error) {
	result := make(MapSource)
	i := 0
	for i < len(args) {
		arg := args[i]
		if !strings.HasPrefix(arg, "--") {
			i++
			continue
		}

		content := strings.TrimPrefix(arg, "--")
		if content == "" {
			// "--" separator
			i++
			continue
		}

		var name, value string
		if k, v, found := strings.Cut(content, "="); found {
			name, value = k, v
			i++
		} else {
			name = content
			if i+1 >= len(args) || strings.HasPrefix(args[i+1], "--") {
				value = "true"
				i++
			} else {
				value = args[i+1]
				i += 2
			}
		}

		if name == "" {
			continue
		}

		key := argKey(name)
		if !isValidKey(key) {
			return nil, fmt.Errorf("invalid command-line key %q", name)
		}
		result[key] = value
	}

	return result, nil
}

func argKey(name string) string {
	r := strings.NewReplacer(".", "_", "-", "_")
	return strings.ToUpper(r.Replace(name))
}
