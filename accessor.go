// File: configstore/accessor.go
package configstore

import (
	"fmt"
	"strings"
)

// optSection unwraps the optional trailing section argument shared by the
// accessor methods.
func optSection(section []string) string {
	if len(section) > 0 {
		return section[0]
	}
	return ""
}

// Get retrieves a value by key, optionally scoped to a section. Lookup is
// case-insensitive. Without a section the top level is checked first, then
// every section is scanned and the first match wins. For JSON stores a
// dotted key traverses nested mappings, and the section name "general"
// aliases the top level. The boolean reports whether the key was found.
func (s *Store) Get(key string, section ...string) (any, bool) {
	s.dataMu.RLock()
	defer s.dataMu.RUnlock()
	return s.lookupLocked(key, optSection(section))
}

// GetDefault is Get with a fallback value for missing keys.
func (s *Store) GetDefault(key string, def any, section ...string) any {
	if value, found := s.Get(key, section...); found {
		return value
	}
	return def
}

// lookupLocked resolves a key per the store's format. The caller must hold
// dataMu (read or write).
func (s *Store) lookupLocked(key, section string) (any, bool) {
	tree := s.tree

	if s.format == FormatINI {
		if section != "" {
			_, value, found := lookupFold(tree, section)
			if !found {
				return nil, false
			}
			sectionMap, isMap := value.(map[string]any)
			if !isMap {
				return nil, false
			}
			_, v, found := lookupFold(sectionMap, key)
			return v, found
		}
		return lookupScan(tree, key)
	}

	// JSON (or unbound) store.
	if section != "" {
		sectionMap := tree
		if !strings.EqualFold(section, generalSection) {
			_, value, found := lookupFold(tree, section)
			if !found {
				return nil, false
			}
			var isMap bool
			sectionMap, isMap = value.(map[string]any)
			if !isMap {
				return nil, false
			}
		}
		_, v, found := lookupFold(sectionMap, key)
		return v, found
	}

	if strings.Contains(key, ".") {
		return lookupPathFold(tree, key)
	}
	return lookupScan(tree, key)
}

// lookupScan checks the top level for key, then scans every nested mapping.
// First match wins; the order across sections is unspecified.
func lookupScan(tree map[string]any, key string) (any, bool) {
	if _, value, found := lookupFold(tree, key); found {
		return value, true
	}
	for _, sectionValue := range tree {
		if sectionMap, isMap := sectionValue.(map[string]any); isMap {
			if _, value, found := lookupFold(sectionMap, key); found {
				return value, true
			}
		}
	}
	return nil, false
}

// Has reports whether a key exists, using the same case-insensitive
// resolution as Get. It never fails.
func (s *Store) Has(key string, section ...string) bool {
	_, found := s.Get(key, section...)
	return found
}

// Set stores a value. For INI stores a section is mandatory and the value
// is stringified; the exact key is used, with no case folding. For JSON
// stores the key supports dot-separated path notation, creating
// intermediate mappings as needed, and a section (if given) prefixes the
// path. With auto-save enabled the tree is persisted immediately; if that
// persist fails the in-memory mutation is not rolled back.
func (s *Store) Set(key string, value any, section ...string) error {
	persist := s.autoSave.Load()
	if persist {
		s.fileMu.Lock()
		defer s.fileMu.Unlock()
	}

	s.dataMu.Lock()
	defer s.dataMu.Unlock()

	sec := optSection(section)
	if s.format == FormatINI {
		if sec == "" {
			return fmt.Errorf("%w: cannot set key %q", ErrMissingSection, key)
		}
		sectionMap, isMap := s.tree[sec].(map[string]any)
		if !isMap {
			sectionMap = make(map[string]any)
			s.tree[sec] = sectionMap
		}
		sectionMap[key] = stringify(value)
	} else {
		path := key
		if sec != "" {
			path = sec + "." + key
		}
		setNestedValue(s.tree, path, value)
	}

	if persist && s.path != "" {
		return s.saveLocked()
	}
	return nil
}

// Delete removes a key and reports whether it existed. Unlike Get and Has,
// the match is exact: deleting "Port" does not remove "port". For INI
// stores a section is mandatory; for JSON stores the key is a dot path and
// a section (if given) prefixes it.
func (s *Store) Delete(key string, section ...string) (bool, error) {
	persist := s.autoSave.Load()
	if persist {
		s.fileMu.Lock()
		defer s.fileMu.Unlock()
	}

	s.dataMu.Lock()
	defer s.dataMu.Unlock()

	sec := optSection(section)
	var removed bool

	if s.format == FormatINI {
		if sec == "" {
			return false, fmt.Errorf("%w: cannot delete key %q", ErrMissingSection, key)
		}
		if sectionMap, isMap := s.tree[sec].(map[string]any); isMap {
			if _, exists := sectionMap[key]; exists {
				delete(sectionMap, key)
				removed = true
			}
		}
	} else {
		path := key
		if sec != "" {
			path = sec + "." + key
		}
		if parent, leaf, ok := navigateToParent(s.tree, path); ok {
			if _, exists := parent[leaf]; exists {
				delete(parent, leaf)
				removed = true
			}
		}
	}

	if removed && persist && s.path != "" {
		return true, s.saveLocked()
	}
	return removed, nil
}

// Section returns a deep copy of the named section's mapping, or an empty
// mapping if the section is absent or not a mapping. Mutating the returned
// copy never affects the store.
func (s *Store) Section(name string) map[string]any {
	s.dataMu.RLock()
	defer s.dataMu.RUnlock()

	if sectionMap, isMap := s.tree[name].(map[string]any); isMap {
		return deepCopyTree(sectionMap)
	}
	return make(map[string]any)
}

// All returns a deep copy of the entire configuration tree.
func (s *Store) All() map[string]any {
	s.dataMu.RLock()
	defer s.dataMu.RUnlock()
	return deepCopyTree(s.tree)
}
