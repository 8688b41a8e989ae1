// File: lixenwraith/envconf/convenience.go
package envconf

import (
	"fmt"
)

// Quick builds a hard-fail Config from the process environment layered over
// the dotenv files of the working directory.
// This is the recommended way to initialize configuration for most applications
func Quick(prefix string, declare func(s *Schema)) (*Config, error) {
	return NewBuilder().
		WithDotenv(".", DotenvEnvironment()).
		WithPrefix(prefix).
		WithSchema(declare).
		Build()
}

// MustQuick is like Quick but panics on error
func MustQuick(prefix string, declare func(s *Schema)) *Config {
	cfg, err := Quick(prefix, declare)
	if err != nil {
		panic(fmt.Sprintf("config initialization failed: %v", err))
	}
	return cfg
}

// Ready reports whether every mandatory key is present in the source.
// It is only meaningful in soft mode; hard-fail construction guarantees it.
func (c *Config) Ready() bool {
	for _, f := range c.fields {
		if !f.Required {
			continue
		}
		if _, ok := c.lookup(f.Key); !ok {
			return false
		}
	}
	return true
}
