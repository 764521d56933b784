package todo

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Load reads, validates and parses the storage file at path.
func Load(path string) (*List, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tasks file: %w", err)
	}

	violations, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validate tasks file: %w", err)
	}
	if len(violations) > 0 {
		return nil, &CorruptError{Path: path, Errors: violations}
	}

	l := New()
	if err := json.Unmarshal(data, l); err != nil {
		return nil, &CorruptError{Path: path, Errors: []error{err}}
	}
	if l.Tasks == nil {
		l.Tasks = []Task{}
	}
	return l, nil
}

// LoadOrCreate loads the storage file at path, first writing an empty
// list there if the file does not exist. created reports whether the
// file was written.
func LoadOrCreate(path string) (l *List, created bool, err error) {
	if _, err := os.Stat(path); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, false, fmt.Errorf("stat tasks file: %w", err)
		}
		if err := New().Save(path); err != nil {
			return nil, false, fmt.Errorf("create tasks file: %w", err)
		}
		created = true
	}

	l, err = Load(path)
	if err != nil {
		return nil, created, err
	}
	return l, created, nil
}

// Save overwrites path with the list, using 2-space indentation.
func (l *List) Save(path string) error {
	out := l
	if l.Tasks == nil {
		out = New()
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal tasks file: %w", err)
	}

	// Add trailing newline
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write tasks file: %w", err)
	}

	return nil
}
