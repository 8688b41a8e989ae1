// FILE: lixenwraith/envconf/property.go
package envconf

import (
	"sync"

	"go.uber.org/zap"
)

// Producer supplies a computed property value.
type Producer func() (any, error)

// Func adapts an infallible function into a Producer.
func Func(fn func() any) Producer {
	if fn == nil {
		return nil
	}
	return func() (any, error) { return fn(), nil }
}

// PropertySpec describes a declared property or credential.
type PropertySpec struct {
	Name        string
	Cache       bool
	Description string
}

// memo holds one cached property value. The producer runs under the lock so
// concurrent first accesses fill the cell exactly once. Failed productions
// leave the cell empty.
type memo struct {
	mu    sync.Mutex
	done  bool
	value any
}

func (m *memo) get(produce Producer) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.done {
		return m.value, nil
	}
	v, err := produce()
	if err != nil {
		return nil, err
	}
	m.value, m.done = v, true
	return v, nil
}

// Property binds a named producer. Nothing runs until the accessor is first
// invoked; with Cache(false) the producer runs on every access.
func (s *Schema) Property(name string, produce Producer, opts ...FieldOption) {
	if s.err != nil {
		return
	}
	if produce == nil {
		s.err = &SchemaError{Name: name, Err: ErrMissingCallable}
		return
	}
	if !isValidName(name) {
		s.err = &SchemaError{Name: name, Err: ErrInvalidName}
		return
	}
	d := collect(opts)
	s.bindProducer(name, produce, d)

	s.cfg.logger.Debug("property declared",
		zap.String("name", name),
		zap.Bool("cache", d.cache),
	)
}

func (s *Schema) bindProducer(name string, produce Producer, d declaration) {
	c := s.cfg
	c.properties[name] = PropertySpec{Name: name, Cache: d.cache, Description: d.description}

	if d.cache {
		cell := &memo{}
		c.bindings[name] = binding{resolve: func() (any, error) { return cell.get(produce) }}
	} else {
		c.bindings[name] = binding{resolve: resolver(produce)}
	}
	s.bindAliases(name, d.aliases)
}
