package content

import (
	"errors"
	"fmt"
	"io/fs"
)

// Load error kinds. Each maps to a distinct message in LoadError.
var (
	// ErrSourceNotFound indicates that no source file exists.
	ErrSourceNotFound = errors.New("source not found")
	// ErrSourceUnreadable indicates that a source exists but could not be read.
	ErrSourceUnreadable = errors.New("source unreadable")
	// ErrNoContent indicates that parsing left no usable records.
	ErrNoContent = errors.New("no content")
)

// LoadError describes a fatal failure to load a question or answer file.
type LoadError struct {
	Role   string
	Source string
	Kind   error
	Err    error
}

// Error returns the user-facing message for the failure.
func (e *LoadError) Error() string {
	switch e.Kind {
	case ErrSourceNotFound:
		return fmt.Sprintf("%s file not found: %s", e.Role, e.Source)
	case ErrSourceUnreadable:
		if e.Err != nil {
			return fmt.Sprintf("cannot read %s file %s: %v", e.Role, e.Source, e.Err)
		}
		return fmt.Sprintf("cannot read %s file %s", e.Role, e.Source)
	case ErrNoContent:
		return fmt.Sprintf("%s file %s is empty: no valid records found", e.Role, e.Source)
	default:
		return fmt.Sprintf("load %s file %s: %v", e.Role, e.Source, e.Err)
	}
}

// Unwrap exposes both the kind and the underlying cause to errors.Is.
func (e *LoadError) Unwrap() []error {
	errs := []error{e.Kind}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// loadError classifies err into a LoadError for the given source.
func loadError(role, source string, err error) *LoadError {
	kind := ErrSourceUnreadable
	switch {
	case errors.Is(err, ErrNoContent):
		return &LoadError{Role: role, Source: source, Kind: ErrNoContent}
	case errors.Is(err, fs.ErrNotExist):
		kind = ErrSourceNotFound
	}
	return &LoadError{Role: role, Source: source, Kind: kind, Err: err}
}
