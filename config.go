// FILE: lixenwraith/envconf/config.go
package envconf

import (
	"fmt"
	"sort"

	"go.uber.org/zap"
)

// DefaultTag prefixes soft-mode diagnostics.
const DefaultTag = "ENVCONF"

// Options configures construction.
type Options struct {
	// Source is the key/value snapshot. Default: process environment.
	Source Source

	// Prefix namespaces every derived key, e.g. "app" turns field "port" into APP_PORT.
	Prefix string

	// HardFail aborts construction on the first missing required key.
	// When false the miss is written to Sink and construction continues.
	// The zero value is soft; DefaultOptions enables it.
	HardFail bool

	// Sink receives soft-mode diagnostics. Default: standard error.
	Sink Sink

	// Tag labels soft-mode diagnostics. Default: DefaultTag.
	Tag string

	// Credentials backs Schema.Credential declarations.
	Credentials CredentialStore

	// Logger receives construction events. Default: no-op.
	Logger *zap.Logger
}

// DefaultOptions returns hard-fail options reading the process environment.
func DefaultOptions() Options {
	return Options{
		Source:   OSEnv(),
		HardFail: true,
		Sink:     Stderr(),
		Tag:      DefaultTag,
	}
}

// resolver produces an accessor's current value.
type resolver func() (any, error)

// binding is one named accessor. Aliases carry a target instead of a resolver
// and are resolved through the target's binding at call time.
type binding struct {
	resolve resolver
	target  string
}

// Config is the bound accessor surface produced by New.
// It is safe for concurrent use once construction returns.
type Config struct {
	source Source
	opts   Options
	logger *zap.Logger

	fields     map[string]FieldSpec // by key
	properties map[string]PropertySpec
	bindings   map[string]binding
}

// New evaluates declare against a fresh Config. In hard-fail mode the first
// missing required key aborts construction and no Config is returned.
func New(opts Options, declare func(s *Schema)) (*Config, error) {
	if opts.Source == nil {
		opts.Source = OSEnv()
	}
	if opts.Sink == nil {
		opts.Sink = Stderr()
	}
	if opts.Tag == "" {
		opts.Tag = DefaultTag
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	c := &Config{
		source:     opts.Source,
		opts:       opts,
		logger:     opts.Logger,
		fields:     make(map[string]FieldSpec),
		properties: make(map[string]PropertySpec),
		bindings:   make(map[string]binding),
	}

	s := &Schema{cfg: c}
	if declare != nil {
		declare(s)
	}
	if s.err != nil {
		c.logger.Error("configuration schema rejected", zap.Error(s.err))
		return nil, s.err
	}

	c.logger.Info("configuration built",
		zap.Int("fields", len(c.fields)),
		zap.Int("properties", len(c.properties)),
		zap.Bool("hard_fail", opts.HardFail),
	)
	return c, nil
}

// Get resolves an accessor by name: a field (bool fields end in "?"), an
// alias, a property or a credential.
func (c *Config) Get(name string) (any, error) {
	b, ok := c.bindings[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAccessor, name)
	}
	if b.target != "" {
		tb, ok := c.bindings[b.target]
		if !ok || tb.resolve == nil {
			return nil, fmt.Errorf("%w: alias %s targets %s", ErrUnknownAccessor, name, b.target)
		}
		return tb.resolve()
	}
	return b.resolve()
}

// MustGet is like Get but panics on error.
func (c *Config) MustGet(name string) any {
	v, err := c.Get(name)
	if err != nil {
		panic(fmt.Sprintf("envconf: %v", err))
	}
	return v
}

// Has reports whether name is a bound accessor.
func (c *Config) Has(name string) bool {
	_, ok := c.bindings[name]
	return ok
}

// Names returns every accessor name, sorted.
func (c *Config) Names() []string {
	names := make([]string, 0, len(c.bindings))
	for name := range c.bindings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Fields returns the declared field specs sorted by key.
func (c *Config) Fields() []FieldSpec {
	specs := make([]FieldSpec, 0, len(c.fields))
	for _, f := range c.fields {
		specs = append(specs, f)
	}
	sort.Slice(specs, func(i, j int) bool { return specs[i].Key < specs[j].Key })
	return specs
}

// Field returns the spec declared under name, matched by field name or key.
func (c *Config) Field(name string) (FieldSpec, bool) {
	if f, ok := c.fields[name]; ok {
		return f, true
	}
	for _, f := range c.fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldSpec{}, false
}

// Properties returns the declared properties sorted by name.
func (c *Config) Properties() []PropertySpec {
	props := make([]PropertySpec, 0, len(c.properties))
	for _, p := range c.properties {
		props = append(props, p)
	}
	sort.Slice(props, func(i, j int) bool { return props[i].Name < props[j].Name })
	return props
}

// String never renders values so a Config can be printed without leaking secrets.
func (c Config) String() string { return "#<envconf.Config>" }

func (c Config) GoString() string { return c.String() }

// lookup reads the raw value for key from the source.
func (c *Config) lookup(key string) (string, bool) {
	return c.source.Lookup(key)
}
