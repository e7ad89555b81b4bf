// File: configstore/convenience.go
package configstore

import "fmt"

// Quick returns the process-wide Store bound to path, creating the file
// from defaults or merging defaults into an existing one. This is the
// recommended single call for application startup.
func Quick(path string, defaults map[string]any) (*Store, error) {
	return Shared(path, WithDefaults(defaults))
}

// MustQuick is like Quick but panics on error.
func MustQuick(path string, defaults map[string]any) *Store {
	store, err := Quick(path, defaults)
	if err != nil {
		panic(fmt.Sprintf("config initialization failed: %v", err))
	}
	return store
}
