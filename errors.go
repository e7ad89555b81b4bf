// File: configstore/errors.go
package configstore

import "errors"

// Sentinel errors returned by Store operations. Callers should test with
// errors.Is; wrapped variants carry the offending path or key.
var (
	// ErrNotFound indicates the target of a Load does not exist on disk.
	ErrNotFound = errors.New("configuration file not found")

	// ErrAlreadyExists indicates Create was called without force on an
	// existing file.
	ErrAlreadyExists = errors.New("configuration file already exists")

	// ErrUnsupportedFormat indicates a file extension outside the supported
	// set (.json, .cfg, .ini).
	ErrUnsupportedFormat = errors.New("unsupported configuration format")

	// ErrMissingSection indicates Set or Delete on an INI store without a
	// section.
	ErrMissingSection = errors.New("section is required for INI configurations")

	// ErrNoFile indicates Reload was called with no file bound, or the bound
	// file has disappeared.
	ErrNoFile = errors.New("no configuration file to reload")

	// ErrConversion indicates a typed accessor could not convert the stored
	// value to the requested type.
	ErrConversion = errors.New("conversion failed")
)
