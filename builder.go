// File: configstore/builder.go
package configstore

import "fmt"

// ValidatorFunc validates a fully-constructed Store. It receives the loaded
// *Store and should return an error if validation fails.
type ValidatorFunc func(s *Store) error

// Builder provides a fluent interface for constructing a Store.
type Builder struct {
	path       string
	defaults   map[string]any
	autoSave   bool
	warn       WarnFunc
	shared     bool
	validators []ValidatorFunc
}

// NewBuilder creates a builder with auto-save enabled.
func NewBuilder() *Builder {
	return &Builder{
		autoSave:   true,
		validators: make([]ValidatorFunc, 0),
	}
}

// WithFile sets the configuration file path bound at build time.
func (b *Builder) WithFile(path string) *Builder {
	b.path = path
	return b
}

// WithDefaults sets the default tree merged or written by CreateOrLoad.
func (b *Builder) WithDefaults(defaults map[string]any) *Builder {
	b.defaults = defaults
	return b
}

// WithAutoSave controls immediate persistence of mutations.
func (b *Builder) WithAutoSave(enabled bool) *Builder {
	b.autoSave = enabled
	return b
}

// WithWarnFunc replaces the default warning sink.
func (b *Builder) WithWarnFunc(warn WarnFunc) *Builder {
	b.warn = warn
	return b
}

// WithShared makes Build return the process-wide Store instead of a
// standalone instance.
func (b *Builder) WithShared() *Builder {
	b.shared = true
	return b
}

// WithValidator adds a validation function that runs at the end of the
// build. Multiple validators execute in the order added.
func (b *Builder) WithValidator(fn ValidatorFunc) *Builder {
	if fn != nil {
		b.validators = append(b.validators, fn)
	}
	return b
}

// Build constructs the Store, binds the file if one was given, and runs the
// validators.
func (b *Builder) Build() (*Store, error) {
	opts := []Option{WithAutoSave(b.autoSave), WithDefaults(b.defaults)}
	if b.warn != nil {
		opts = append(opts, WithWarnFunc(b.warn))
	}

	var store *Store
	if b.shared {
		var err error
		if store, err = Shared(b.path, opts...); err != nil {
			return nil, err
		}
	} else {
		store = New(opts...)
		if b.path != "" {
			if err := store.CreateOrLoad(b.path, b.defaults); err != nil {
				return nil, err
			}
		}
	}

	for _, validator := range b.validators {
		if err := validator(store); err != nil {
			return nil, fmt.Errorf("configuration validation failed: %w", err)
		}
	}

	return store, nil
}

// MustBuild is like Build but panics on error.
func (b *Builder) MustBuild() *Store {
	store, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("config build failed: %v", err))
	}
	return store
}
