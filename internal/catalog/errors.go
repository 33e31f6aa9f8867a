package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the catalog file (or every file of a pattern) is absent.
	ErrNotFound = errors.New("catalog file not found")
	// ErrMalformed indicates the catalog could not be decoded.
	ErrMalformed = errors.New("malformed catalog data")
	// ErrMissingField indicates a record lacks a required field.
	ErrMissingField = errors.New("missing required field")
)

// ConfigError reports a catalog that cannot be used. It is always fatal for the caller.
type ConfigError struct {
	Path   string
	Record int // index of the offending record within Path, -1 when not record specific
	Field  string
	Err    error
}

func (e *ConfigError) Error() string {
	switch {
	case e.Record >= 0 && e.Field != "":
		return fmt.Sprintf("catalog %s: record %d: %v %q", e.Path, e.Record, e.Err, e.Field)
	case e.Record >= 0:
		return fmt.Sprintf("catalog %s: record %d: %v", e.Path, e.Record, e.Err)
	default:
		return fmt.Sprintf("catalog %s: %v", e.Path, e.Err)
	}
}

func (e *ConfigError) Unwrap() error { return e.Err }

func fileError(path string, err error) *ConfigError {
	return &ConfigError{Path: path, Record: -1, Err: err}
}
