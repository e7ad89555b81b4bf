// File: configstore/merge.go
package configstore

import "strings"

// mergeDefaults populates tree with keys from defaults that are missing,
// mutating tree in place. Matching is case-insensitive so a default
// "Timeout" never duplicates an existing "timeout"; existing values are
// never overwritten or renamed, and keys added by the merge are stored
// lower-cased. In directAdd mode scalars are added at the current level;
// otherwise a top-level scalar default is routed into the general section
// (created if absent). The merge is idempotent. Reports whether any key
// was added.
func mergeDefaults(tree, defaults map[string]any, directAdd bool) bool {
	changed := false

	for key, value := range defaults {
		nested, isMap := value.(map[string]any)

		switch {
		case isMap:
			stored, existing, found := lookupFold(tree, key)
			if !found {
				stored = strings.ToLower(key)
				existing = make(map[string]any)
				tree[stored] = existing
				changed = true
			}
			section, ok := existing.(map[string]any)
			if !ok {
				// An existing scalar occupies this name; the user's value
				// stays and the section defaults are dropped.
				continue
			}
			if mergeDefaults(section, nested, true) {
				changed = true
			}

		case directAdd:
			if _, _, found := lookupFold(tree, key); !found {
				tree[strings.ToLower(key)] = value
				changed = true
			}

		default:
			// Scalar default at the top level: route into the general
			// section, since INI files keep all keys under a section. A key
			// already present at the top level counts as existing, which
			// keeps the merge idempotent when the tree was seeded directly
			// from these defaults.
			if _, _, found := lookupFold(tree, key); found {
				continue
			}
			stored, existing, found := lookupFold(tree, generalSection)
			if !found {
				stored = generalSection
				existing = make(map[string]any)
				tree[stored] = existing
				changed = true
			}
			general, ok := existing.(map[string]any)
			if !ok {
				continue
			}
			if _, _, found := lookupFold(general, key); !found {
				general[strings.ToLower(key)] = value
				changed = true
			}
		}
	}

	return changed
}
