// File: configstore/lifecycle.go
package configstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Load reads the file at path and replaces the in-memory tree wholesale.
// It fails with ErrNotFound if the file is absent and ErrUnsupportedFormat
// for an unrecognized extension.
func (s *Store) Load(path string) error {
	s.fileMu.Lock()
	defer s.fileMu.Unlock()

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return fmt.Errorf("failed to stat config file '%s': %w", path, err)
	}

	format, err := detectFormat(path)
	if err != nil {
		return err
	}

	tree, err := readTreeLocked(path, format)
	if err != nil {
		return err
	}

	s.dataMu.Lock()
	defer s.dataMu.Unlock()

	s.tree = tree
	s.path = path
	s.format = format
	return nil
}

// Create writes a new configuration file at path with the given initial
// tree (or an empty one), creating parent directories as needed. It fails
// with ErrAlreadyExists if the file exists and force is false.
func (s *Store) Create(path string, initial map[string]any, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s (use force to overwrite)", ErrAlreadyExists, path)
		}
	}

	format, err := detectFormat(path)
	if err != nil {
		return err
	}

	s.fileMu.Lock()
	defer s.fileMu.Unlock()
	s.dataMu.Lock()
	defer s.dataMu.Unlock()

	if s.path != "" && s.path != path {
		s.warn(fmt.Sprintf("switching configuration file from %s to %s", s.path, path))
	}

	if initial == nil {
		s.tree = make(map[string]any)
	} else {
		s.tree = deepCopyTree(initial)
	}
	s.path = path
	s.format = format

	return s.saveLocked()
}

// CreateOrLoad binds the store to path: if the file exists it is loaded and
// the defaults are merged in (existing values win, matching is
// case-insensitive); otherwise the file is created from the defaults.
// The file is persisted when it is newly created or when the merge added
// at least one key.
func (s *Store) CreateOrLoad(path string, defaults map[string]any) error {
	format, err := detectFormat(path)
	if err != nil {
		return err
	}

	s.fileMu.Lock()
	defer s.fileMu.Unlock()
	s.dataMu.Lock()
	defer s.dataMu.Unlock()

	if s.path != "" && s.path != path {
		s.warn(fmt.Sprintf("switching configuration file from %s to %s", s.path, path))
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory for '%s': %w", path, err)
	}

	if _, err := os.Stat(path); err == nil {
		tree, err := readTreeLocked(path, format)
		if err != nil {
			return err
		}
		s.tree = tree
		s.path = path
		s.format = format

		if len(defaults) > 0 && mergeDefaults(s.tree, defaults, false) {
			return s.saveLocked()
		}
		return nil
	}

	if defaults == nil {
		s.tree = make(map[string]any)
	} else {
		s.tree = deepCopyTree(defaults)
	}
	s.path = path
	s.format = format

	return s.saveLocked()
}

// Reload re-parses the bound file, replacing the tree wholesale. Defaults
// are not re-merged. It fails with ErrNoFile if no path is bound or the
// file no longer exists.
func (s *Store) Reload() error {
	s.dataMu.RLock()
	path, format := s.path, s.format
	s.dataMu.RUnlock()

	if path == "" {
		return ErrNoFile
	}

	s.fileMu.Lock()
	defer s.fileMu.Unlock()

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNoFile, path)
		}
		return fmt.Errorf("failed to stat config file '%s': %w", path, err)
	}

	tree, err := readTreeLocked(path, format)
	if err != nil {
		return err
	}

	s.dataMu.Lock()
	defer s.dataMu.Unlock()

	s.tree = tree
	return nil
}

// Save persists the current tree to the bound file. It fails with ErrNoFile
// if no file is bound.
func (s *Store) Save() error {
	s.fileMu.Lock()
	defer s.fileMu.Unlock()
	s.dataMu.RLock()
	defer s.dataMu.RUnlock()

	return s.saveLocked()
}

// readTreeLocked reads and parses a configuration file. The caller must
// hold fileMu.
func readTreeLocked(path string, format Format) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}
	return parseTree(data, format)
}

// saveLocked serializes the tree and writes it to the bound path. The
// caller must hold fileMu and dataMu (read or write).
func (s *Store) saveLocked() error {
	if s.path == "" {
		return fmt.Errorf("%w: no path bound, use Load, Create, or CreateOrLoad first", ErrNoFile)
	}

	data, err := serializeTree(s.tree, s.format)
	if err != nil {
		return err
	}
	return atomicWriteFile(s.path, data)
}

// atomicWriteFile writes data through a temporary file in the target
// directory and renames it into place, so a crashed or concurrent write
// never leaves a torn file behind.
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory '%s': %w", dir, err)
	}

	tempFile, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}

	tempPath := tempFile.Name()
	defer os.Remove(tempPath) // Clean up on any error

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := tempFile.Sync(); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to sync temporary file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file: %w", err)
	}

	if err := os.Chmod(tempPath, 0644); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}
