package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// JSONFileName is the name of the JSON store file inside the data directory.
const JSONFileName = "gastos.json"

// FileKV keeps the key space as a single JSON object on disk. Every write
// rewrites the file atomically via a temp file and rename.
type FileKV struct {
	path string
	data map[string]string
}

// NewFileKV opens the JSON-file-backed namespace under dir, creating the
// directory as needed. A missing store file reads as an empty namespace.
func NewFileKV(dir string) (*FileKV, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	kv := &FileKV{
		path: filepath.Join(dir, JSONFileName),
		data: make(map[string]string),
	}
	if err := kv.load(); err != nil {
		return nil, err
	}

	return kv, nil
}

// load reads the store file into memory.
func (f *FileKV) load() error {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read store file: %w", err)
	}
	if err := json.Unmarshal(raw, &f.data); err != nil {
		return fmt.Errorf("failed to parse store file: %w", err)
	}
	return nil
}

// flush writes the in-memory map back to disk atomically.
func (f *FileKV) flush() error {
	raw, err := json.MarshalIndent(f.data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal store: %w", err)
	}
	raw = append(raw, '\n')

	dir := filepath.Dir(f.path)
	tmpFile, err := os.CreateTemp(dir, "gastos-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer os.Remove(tmpPath) // Clean up on error

	if _, err := tmpFile.Write(raw); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to write store: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, f.path); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}

// Get retrieves the value stored under key.
func (f *FileKV) Get(key string) (string, bool, error) {
	value, ok := f.data[key]
	return value, ok, nil
}

// Set stores value under key, overwriting any previous value.
func (f *FileKV) Set(key, value string) error {
	f.data[key] = value
	return f.flush()
}

// Delete removes key from the namespace. Absent keys are a no-op.
func (f *FileKV) Delete(key string) error {
	if _, ok := f.data[key]; !ok {
		return nil
	}
	delete(f.data, key)
	return f.flush()
}

// Path returns the store file path.
func (f *FileKV) Path() string {
	return f.path
}

// Close releases resources. The file store holds no open handles.
func (f *FileKV) Close() error {
	return nil
}
