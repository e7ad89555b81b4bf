// File: configstore/doc.go

// Package configstore provides a thread-safe, process-wide configuration
// store backed by a JSON or INI/CFG file, with typed read/write access by
// key (optionally scoped to a section) and immediate persistence of
// mutations.
//
// Features:
//   - Single shared instance per process with race-free lazy creation
//   - JSON and INI/CFG files, detected by extension
//   - Case-insensitive lookups with on-disk key casing preserved
//   - Recursive default merging that never overwrites existing values
//   - Dot-notation paths for nested JSON keys
//   - Typed accessors with lenient boolean parsing
//   - Struct decoding of sections via mapstructure
//   - Atomic file writes (temp file + rename)
//
// Quick Start:
//
//	cfg, err := configstore.Quick("app.json", map[string]any{
//	    "server": map[string]any{
//	        "host": "localhost",
//	        "port": 8080,
//	    },
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	port, _ := cfg.Int64("port", 0, "server")
//	cfg.Set("server.host", "example.com")
//
// Existing files win: CreateOrLoad merges defaults into a file that is
// already present, adding only keys that are missing (matched
// case-insensitively), so user edits survive restarts.
//
// Thread Safety:
// All operations are safe for concurrent use. A file mutex serializes disk
// I/O and a read-write data mutex guards the in-memory tree; operations
// that persist acquire the file lock first, then the data lock.
package configstore
