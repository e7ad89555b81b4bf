// File: configstore/format.go
package configstore

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/ini.v1"
)

// Format identifies the on-disk encoding of a configuration file.
type Format string

const (
	// FormatJSON stores the tree as an indented UTF-8 JSON object.
	FormatJSON Format = "json"
	// FormatINI stores the tree as section-delimited key = value text.
	// All values are strings on disk.
	FormatINI Format = "ini"
)

// generalSection holds scalar top-level values when serializing to INI,
// since INI requires every key to live under some section.
const generalSection = "general"

// detectFormat determines the format from the file extension.
func detectFormat(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		return FormatJSON, nil
	case ".cfg", ".ini":
		return FormatINI, nil
	default:
		return "", fmt.Errorf("%w: %q (supported: .json, .cfg, .ini)", ErrUnsupportedFormat, ext)
	}
}

// parseTree decodes file bytes into a configuration tree.
func parseTree(data []byte, format Format) (map[string]any, error) {
	switch format {
	case FormatINI:
		return parseINI(data)
	default:
		return parseJSON(data)
	}
}

// serializeTree encodes a configuration tree into file bytes.
func serializeTree(tree map[string]any, format Format) ([]byte, error) {
	switch format {
	case FormatINI:
		return serializeINI(tree)
	default:
		return serializeJSON(tree)
	}
}

// parseJSON decodes a JSON object tree. Numbers are preserved as json.Number
// to avoid precision loss on round trips.
func parseJSON(data []byte) (map[string]any, error) {
	tree := make(map[string]any)
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	if err := decoder.Decode(&tree); err != nil {
		return nil, fmt.Errorf("failed to parse JSON configuration: %w", err)
	}
	return tree, nil
}

// serializeJSON encodes the tree as indented JSON with non-ASCII characters
// left unescaped.
func serializeJSON(tree map[string]any) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "    ")
	if err := encoder.Encode(tree); err != nil {
		return nil, fmt.Errorf("failed to marshal JSON configuration: %w", err)
	}
	return buf.Bytes(), nil
}

// parseINI decodes INI/CFG text into a tree of sections of string values.
// Key casing from the file is preserved; lookups fold case in memory.
func parseINI(data []byte) (map[string]any, error) {
	file, err := ini.LoadSources(ini.LoadOptions{}, data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse INI configuration: %w", err)
	}

	tree := make(map[string]any)
	for _, section := range file.Sections() {
		keys := section.Keys()
		if section.Name() == ini.DefaultSection && len(keys) == 0 {
			continue
		}
		values := make(map[string]any, len(keys))
		for _, key := range keys {
			values[key.Name()] = key.Value()
		}
		tree[section.Name()] = values
	}
	return tree, nil
}

// serializeINI encodes the tree as section-delimited key = value text.
// Scalar top-level values are folded into the general section. Sections and
// keys are emitted in sorted order for deterministic output.
func serializeINI(tree map[string]any) ([]byte, error) {
	file := ini.Empty()

	names := make([]string, 0, len(tree))
	for name := range tree {
		names = append(names, name)
	}
	sort.Strings(names)

	var general *ini.Section
	for _, name := range names {
		switch value := tree[name].(type) {
		case map[string]any:
			section, err := file.NewSection(name)
			if err != nil {
				return nil, fmt.Errorf("failed to create INI section %q: %w", name, err)
			}
			keys := make([]string, 0, len(value))
			for key := range value {
				keys = append(keys, key)
			}
			sort.Strings(keys)
			for _, key := range keys {
				if _, err := section.NewKey(key, stringify(value[key])); err != nil {
					return nil, fmt.Errorf("failed to set INI key %q in section %q: %w", key, name, err)
				}
			}
		default:
			if general == nil {
				var err error
				if general, err = file.NewSection(generalSection); err != nil {
					return nil, fmt.Errorf("failed to create INI section %q: %w", generalSection, err)
				}
			}
			if _, err := general.NewKey(name, stringify(value)); err != nil {
				return nil, fmt.Errorf("failed to set INI key %q in section %q: %w", name, generalSection, err)
			}
		}
	}

	var buf bytes.Buffer
	if _, err := file.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to marshal INI configuration: %w", err)
	}
	return buf.Bytes(), nil
}

// stringify renders a value the way it is stored in INI files.
func stringify(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", value)
}
