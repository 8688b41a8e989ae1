// FILE: lixenwraith/envconf/register.go
package envconf

import (
	"go.uber.org/zap"
)

// FieldSpec is the immutable description of one declared field.
type FieldSpec struct {
	Name        string
	Key         string
	Type        Type
	Default     any
	Required    bool
	Aliases     []string
	Description string
}

// Accessor returns the canonical accessor name. Bool fields are predicates
// and carry a "?" suffix.
func (f FieldSpec) Accessor() string {
	if f.Type.Kind() == KindBool {
		return f.Name + "?"
	}
	return f.Name
}

// FieldOption adjusts a single declaration.
type FieldOption func(*declaration)

type declaration struct {
	aliases     []string
	description string
	cache       bool
}

// Aliases binds additional accessor names that resolve through the canonical one.
func Aliases(names ...string) FieldOption {
	return func(d *declaration) { d.aliases = append(d.aliases, names...) }
}

// Description is appended to missing-key messages.
func Description(text string) FieldOption {
	return func(d *declaration) { d.description = text }
}

// Cache controls property memoization. Properties are cached unless disabled.
func Cache(enabled bool) FieldOption {
	return func(d *declaration) { d.cache = enabled }
}

func collect(opts []FieldOption) declaration {
	d := declaration{cache: true}
	for _, opt := range opts {
		if opt != nil {
			opt(&d)
		}
	}
	return d
}

// Schema is the declaration surface passed to New. After the first error every
// further declaration is ignored and New returns that error.
type Schema struct {
	cfg *Config
	err error
}

// Config returns the Config under construction. Producers may capture it to
// read other accessors lazily; it must not be read during declaration.
func (s *Schema) Config() *Config { return s.cfg }

// Err returns the first declaration error, if any.
func (s *Schema) Err() error { return s.err }

// Mandatory declares a required field with no default.
func (s *Schema) Mandatory(name string, t Type, opts ...FieldOption) {
	s.Set(name, t, nil, true, opts...)
}

// Optional declares a field that falls back to def when its key is absent.
func (s *Schema) Optional(name string, t Type, def any, opts ...FieldOption) {
	s.Set(name, t, def, false, opts...)
}

// Set declares a field: it derives the key, validates presence when required,
// and binds the canonical accessor and its aliases.
func (s *Schema) Set(name string, t Type, def any, required bool, opts ...FieldOption) {
	if s.err != nil {
		return
	}
	if !isValidName(name) {
		s.err = &SchemaError{Name: name, Err: ErrInvalidName}
		return
	}
	d := collect(opts)
	for _, alias := range d.aliases {
		if !isValidName(alias) {
			s.err = &SchemaError{Name: alias, Err: ErrInvalidName}
			return
		}
	}

	c := s.cfg
	spec := FieldSpec{
		Name:        name,
		Key:         envKey(c.opts.Prefix, name),
		Type:        t,
		Default:     def,
		Required:    required,
		Aliases:     append([]string(nil), d.aliases...),
		Description: d.description,
	}

	if err := s.validate(spec.Key, required, spec.Description); err != nil {
		s.err = err
		return
	}

	// A redeclaration under another type may change the canonical name.
	if prev, ok := c.fields[spec.Key]; ok && prev.Accessor() != spec.Accessor() {
		delete(c.bindings, prev.Accessor())
	}
	c.fields[spec.Key] = spec

	key, typ := spec.Key, spec.Type
	c.bindings[spec.Accessor()] = binding{resolve: func() (any, error) {
		raw, ok := c.lookup(key)
		if !ok {
			return def, nil
		}
		return coerce(key, typ, raw)
	}}
	s.bindAliases(spec.Accessor(), d.aliases)

	c.logger.Debug("field declared",
		zap.String("name", spec.Accessor()),
		zap.String("key", spec.Key),
		zap.Stringer("type", spec.Type),
		zap.Bool("required", required),
		zap.Strings("aliases", spec.Aliases),
	)
}

// bindAliases points each alias at the canonical accessor by name, so an
// alias always observes the canonical accessor's current binding.
func (s *Schema) bindAliases(canonical string, aliases []string) {
	for _, alias := range aliases {
		if alias == canonical {
			continue
		}
		s.cfg.bindings[alias] = binding{target: canonical}
	}
}
