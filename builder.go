// File: lixenwraith/envconf/builder.go
package envconf

import (
	"fmt"

	"go.uber.org/zap"
)

// ValidatorFunc checks a fully built Config. It runs after every declaration
// has been registered and should return an error if validation fails.
type ValidatorFunc func(c *Config) error

// Builder provides a fluent interface for building configurations
type Builder struct {
	opts       Options
	declares   []func(*Schema)
	validators []ValidatorFunc
	err        error
}

// NewBuilder creates a builder starting from DefaultOptions
func NewBuilder() *Builder {
	return &Builder{
		opts:       DefaultOptions(),
		validators: make([]ValidatorFunc, 0),
	}
}

// WithSource replaces the source
func (b *Builder) WithSource(src Source) *Builder {
	if src != nil {
		b.opts.Source = src
	}
	return b
}

// WithFile layers a TOML, YAML or JSON file below the current source
func (b *Builder) WithFile(path string) *Builder {
	if b.err != nil || path == "" {
		return b
	}
	values, err := LoadFile(path)
	if err != nil {
		b.err = err
		return b
	}
	b.opts.Source = Chain(b.opts.Source, values)
	return b
}

// WithDotenv layers the dotenv files of dir below the current source
func (b *Builder) WithDotenv(dir, env string) *Builder {
	if b.err != nil {
		return b
	}
	values, err := LoadDotenv(dir, env)
	if err != nil {
		b.err = err
		return b
	}
	b.opts.Source = Chain(b.opts.Source, values)
	return b
}

// WithArgs layers command-line arguments above the current source
func (b *Builder) WithArgs(args []string) *Builder {
	if b.err != nil {
		return b
	}
	values, err := Args(args)
	if err != nil {
		b.err = fmt.Errorf("failed to parse CLI args: %w", err)
		return b
	}
	b.opts.Source = Chain(values, b.opts.Source)
	return b
}

// WithPrefix sets the key namespace
func (b *Builder) WithPrefix(prefix string) *Builder {
	b.opts.Prefix = prefix
	return b
}

// WithHardFail selects between aborting and logging on missing required keys
func (b *Builder) WithHardFail(hardFail bool) *Builder {
	b.opts.HardFail = hardFail
	return b
}

// WithSink sets the diagnostic sink used in soft mode
func (b *Builder) WithSink(sink Sink) *Builder {
	if sink != nil {
		b.opts.Sink = sink
	}
	return b
}

// WithTag sets the diagnostic tag
func (b *Builder) WithTag(tag string) *Builder {
	b.opts.Tag = tag
	return b
}

// WithCredentials sets the store backing Credential declarations
func (b *Builder) WithCredentials(store CredentialStore) *Builder {
	b.opts.Credentials = store
	return b
}

// WithLogger sets the construction logger
func (b *Builder) WithLogger(logger *zap.Logger) *Builder {
	b.opts.Logger = logger
	return b
}

// WithSchema adds declarations. Multiple schemas run in the order they are added
func (b *Builder) WithSchema(declare func(s *Schema)) *Builder {
	if declare != nil {
		b.declares = append(b.declares, declare)
	}
	return b
}

// WithValidator adds a validation function that runs at the end of the build process
// Multiple validators can be added and are executed in the order they are added
func (b *Builder) WithValidator(fn ValidatorFunc) *Builder {
	if fn != nil {
		b.validators = append(b.validators, fn)
	}
	return b
}

// Build creates the Config instance with all specified options
func (b *Builder) Build() (*Config, error) {
	if b.err != nil {
		return nil, b.err
	}

	cfg, err := New(b.opts, func(s *Schema) {
		for _, declare := range b.declares {
			declare(s)
		}
	})
	if err != nil {
		return nil, err
	}

	for _, validator := range b.validators {
		if err := validator(cfg); err != nil {
			return nil, fmt.Errorf("configuration validation failed: %w", err)
		}
	}

	return cfg, nil
}

// MustBuild is like Build but panics on error
func (b *Builder) MustBuild() *Config {
	cfg, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("config build failed: %v", err))
	}
	return cfg
}

// BuildAndScan builds and decodes the resolved fields into the provided target struct pointer
func (b *Builder) BuildAndScan(target any) (*Config, error) {
	cfg, err := b.Build()
	if err != nil {
		return nil, err
	}

	if err := cfg.Scan(target); err != nil {
		return nil, fmt.Errorf("failed to scan final config into target: %w", err)
	}

	return cfg, nil
}
