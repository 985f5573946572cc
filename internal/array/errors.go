package array

import "errors"

// Domain errors for array loading and transformation.
var (
	// ErrNotFound indicates the source path does not exist.
	ErrNotFound = errors.New("array: source path does not exist")

	// ErrFormat indicates content that does not parse as a numeric array.
	ErrFormat = errors.New("array: content does not parse as a numeric array")

	// ErrShape indicates a rank or dimension mismatch for the requested
	// operation (e.g. a 1D array passed to the heatmap path).
	ErrShape = errors.New("array: rank mismatch for requested operation")

	// ErrDomain indicates a value outside the domain of a transform
	// (e.g. log scaling applied to a non-positive value).
	ErrDomain = errors.New("array: value outside transform domain")
)

// LoadError wraps an error with the source path that produced it.
type LoadError struct {
	Path    string
	Wrapped error
}

func (e *LoadError) Error() string {
	return e.Path + ": " + e.Wrapped.Error()
}

func (e *LoadError) Unwrap() error {
	return e.Wrapped
}
