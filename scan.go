// File: configstore/scan.go
package configstore

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// Scan decodes the named section (or the whole tree if section is "") into
// the target struct or map pointer. Decoding is weakly typed: INI string
// values convert to the target field types, durations parse from strings,
// comma-separated strings split into slices, and booleans accept the same
// lenient forms as Bool. Field names map through `json` tags.
func (s *Store) Scan(section string, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("scan target must be a non-nil pointer, got %T", target)
	}

	s.dataMu.RLock()
	var source map[string]any
	if section == "" {
		source = deepCopyTree(s.tree)
	} else {
		_, value, found := lookupFold(s.tree, section)
		if !found {
			source = make(map[string]any)
		} else if sectionMap, isMap := value.(map[string]any); isMap {
			source = deepCopyTree(sectionMap)
		} else {
			s.dataMu.RUnlock()
			return fmt.Errorf("section %q refers to a non-mapping value (type %T)", section, value)
		}
	}
	s.dataMu.RUnlock()

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "json",
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			lenientBoolHookFunc(),
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}

	if err := decoder.Decode(source); err != nil {
		return fmt.Errorf("failed to decode section %q: %w", section, err)
	}
	return nil
}

// lenientBoolHookFunc converts string-kinded values (including json.Number)
// targeting bool fields using the store's lenient parser, so "Yes" and "0"
// decode the same way through Scan as through Bool.
func lenientBoolHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || t.Kind() != reflect.Bool {
			return data, nil
		}
		str := reflect.ValueOf(data).String()
		b, ok := parseLenientBool(str)
		if !ok {
			return nil, fmt.Errorf("cannot parse %q as bool", str)
		}
		return b, nil
	}
}
