package estimator

import (
	"errors"
	"fmt"
)

// ErrInvalidDataset matches every *InvalidDatasetError via errors.Is.
var ErrInvalidDataset = errors.New("invalid dataset")

// InvalidDatasetError reports a dataset that breaks the contract the estimator relies on,
// such as a missing fallback key. It is a configuration error, never a user-input error.
type InvalidDatasetError struct {
	Field   string
	Key     string
	Message string
}

func (e *InvalidDatasetError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("invalid dataset: %s: missing required key %q", e.Field, e.Key)
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid dataset: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("invalid dataset: %s", e.Message)
}

// Is reports whether target is ErrInvalidDataset.
func (e *InvalidDatasetError) Is(target error) bool {
	return target == ErrInvalidDataset
}
