// File: configstore/helper.go
package configstore

import "strings"

// lookupFold finds a key in a map by case-insensitive comparison.
// It returns the stored key's original casing alongside the value.
func lookupFold(m map[string]any, key string) (string, any, bool) {
	if value, ok := m[key]; ok {
		return key, value, true
	}
	for stored, value := range m {
		if strings.EqualFold(stored, key) {
			return stored, value, true
		}
	}
	return "", nil, false
}

// lookupPathFold traverses a dot-notation path, matching each segment
// case-insensitively. Returns the leaf value if every segment resolves.
func lookupPathFold(tree map[string]any, path string) (any, bool) {
	segments := strings.Split(path, ".")
	current := any(tree)

	for _, segment := range segments {
		currentMap, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		_, value, found := lookupFold(currentMap, segment)
		if !found {
			return nil, false
		}
		current = value
	}
	return current, true
}

// setNestedValue sets a value in a nested map using a dot-notation path.
// Intermediate maps are created as needed; a non-map value in the way is
// replaced by a new map.
func setNestedValue(tree map[string]any, path string, value any) {
	segments := strings.Split(path, ".")
	current := tree

	for i := 0; i < len(segments)-1; i++ {
		segment := segments[i]
		next, exists := current[segment]
		if !exists {
			newMap := make(map[string]any)
			current[segment] = newMap
			current = newMap
			continue
		}
		if nextMap, isMap := next.(map[string]any); isMap {
			current = nextMap
		} else {
			newMap := make(map[string]any)
			current[segment] = newMap
			current = newMap
		}
	}

	current[segments[len(segments)-1]] = value
}

// navigateToParent follows a dot-notation path down to the parent of the
// final segment using exact key matching. Returns the parent map and the
// final segment.
func navigateToParent(tree map[string]any, path string) (map[string]any, string, bool) {
	segments := strings.Split(path, ".")
	current := tree

	for i := 0; i < len(segments)-1; i++ {
		next, exists := current[segments[i]]
		if !exists {
			return nil, "", false
		}
		nextMap, isMap := next.(map[string]any)
		if !isMap {
			return nil, "", false
		}
		current = nextMap
	}
	return current, segments[len(segments)-1], true
}

// deepCopyTree returns a copy of the tree that shares no maps with the
// original. Scalar values are shared (they are immutable to callers).
func deepCopyTree(tree map[string]any) map[string]any {
	copied := make(map[string]any, len(tree))
	for key, value := range tree {
		if nested, isMap := value.(map[string]any); isMap {
			copied[key] = deepCopyTree(nested)
		} else {
			copied[key] = value
		}
	}
	return copied
}
