// File: configstore/convert.go
package configstore

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// String retrieves a value converted to string, or def if the key is
// absent. Conversion from common scalar types is attempted; failure wraps
// ErrConversion.
func (s *Store) String(key, def string, section ...string) (string, error) {
	val, found := s.Get(key, section...)
	if !found || val == nil {
		return def, nil
	}

	switch v := val.(type) {
	case string:
		return v, nil
	case json.Number:
		return v.String(), nil
	case fmt.Stringer:
		return v.String(), nil
	case []byte:
		return string(v), nil
	case bool:
		return strconv.FormatBool(v), nil
	case int, int8, int16, int32, int64:
		return strconv.FormatInt(reflect.ValueOf(val).Int(), 10), nil
	case uint, uint8, uint16, uint32, uint64:
		return strconv.FormatUint(reflect.ValueOf(val).Uint(), 10), nil
	case float32, float64:
		return strconv.FormatFloat(reflect.ValueOf(val).Float(), 'f', -1, 64), nil
	default:
		return def, fmt.Errorf("%w: cannot convert %v (%T) for key %q to string", ErrConversion, val, val, key)
	}
}

// Int64 retrieves a value converted to int64, or def if the key is absent.
// Numeric types are converted directly, strings are parsed (base auto-
// detected, floats truncated), booleans map to 0/1. Failure wraps
// ErrConversion.
func (s *Store) Int64(key string, def int64, section ...string) (int64, error) {
	val, found := s.Get(key, section...)
	if !found || val == nil {
		return def, nil
	}

	v := reflect.ValueOf(val)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := v.Uint()
		if u > uint64(^uint64(0)>>1) {
			return def, fmt.Errorf("%w: unsigned value %d for key %q overflows int64", ErrConversion, u, key)
		}
		return int64(u), nil
	case reflect.Float32, reflect.Float64:
		return int64(v.Float()), nil
	case reflect.String:
		// Covers both plain strings and json.Number.
		str := v.String()
		if i, err := strconv.ParseInt(str, 0, 64); err == nil {
			return i, nil
		}
		if f, err := strconv.ParseFloat(str, 64); err == nil {
			return int64(f), nil
		}
		return def, fmt.Errorf("%w: cannot convert %q for key %q to int64", ErrConversion, str, key)
	case reflect.Bool:
		if v.Bool() {
			return 1, nil
		}
		return 0, nil
	}

	return def, fmt.Errorf("%w: cannot convert %v (%T) for key %q to int64", ErrConversion, val, val, key)
}

// Float64 retrieves a value converted to float64, or def if the key is
// absent. Failure wraps ErrConversion.
func (s *Store) Float64(key string, def float64, section ...string) (float64, error) {
	val, found := s.Get(key, section...)
	if !found || val == nil {
		return def, nil
	}

	v := reflect.ValueOf(val)
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		return v.Float(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint()), nil
	case reflect.String:
		str := v.String()
		if f, err := strconv.ParseFloat(str, 64); err == nil {
			return f, nil
		}
		return def, fmt.Errorf("%w: cannot convert %q for key %q to float64", ErrConversion, str, key)
	case reflect.Bool:
		if v.Bool() {
			return 1.0, nil
		}
		return 0.0, nil
	}

	return def, fmt.Errorf("%w: cannot convert %v (%T) for key %q to float64", ErrConversion, val, val, key)
}

// Bool retrieves a value converted to bool, or def if the key is absent.
// Strings go through the lenient parser: true/1/yes/y/t and
// false/0/no/n/f, case-insensitive and trimmed. Numbers are false at zero.
// Failure wraps ErrConversion.
func (s *Store) Bool(key string, def bool, section ...string) (bool, error) {
	val, found := s.Get(key, section...)
	if !found || val == nil {
		return def, nil
	}

	if n, isNumber := val.(json.Number); isNumber {
		f, err := n.Float64()
		if err != nil {
			return def, fmt.Errorf("%w: cannot convert %q for key %q to bool", ErrConversion, n.String(), key)
		}
		return f != 0, nil
	}

	v := reflect.ValueOf(val)
	switch v.Kind() {
	case reflect.Bool:
		return v.Bool(), nil
	case reflect.String:
		b, ok := parseLenientBool(v.String())
		if !ok {
			return def, fmt.Errorf("%w: cannot convert %q for key %q to bool", ErrConversion, v.String(), key)
		}
		return b, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() != 0, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() != 0, nil
	case reflect.Float32, reflect.Float64:
		return v.Float() != 0, nil
	}

	return def, fmt.Errorf("%w: cannot convert %v (%T) for key %q to bool", ErrConversion, val, val, key)
}

// parseLenientBool parses the string forms accepted for boolean values.
func parseLenientBool(s string) (value, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "y", "t":
		return true, true
	case "false", "0", "no", "n", "f":
		return false, true
	}
	return false, false
}
