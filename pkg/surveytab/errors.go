package surveytab

import (
	"errors"
	"fmt"
)

// ErrNoMAGroups indicates an MA-dependent view was requested on a table
// with no detected MA groups. Callers usually surface it as an
// informational message rather than a failure.
var ErrNoMAGroups = errors.New("no MA groups detected; column names need the \"Question - Option\" form")

// TabulateError represents an error during one tabulation request.
type TabulateError struct {
	Mode     string // "sa", "ma", "sa_x_sa", "sa_x_ma"
	Question string
	Err      error
}

func (e *TabulateError) Error() string {
	return fmt.Sprintf("tabulation error for %q (%s): %v", e.Question, e.Mode, e.Err)
}

func (e *TabulateError) Unwrap() error {
	return e.Err
}

// NewTabulateError creates a new TabulateError.
func NewTabulateError(mode, question string, err error) *TabulateError {
	return &TabulateError{
		Mode:     mode,
		Question: question,
		Err:      err,
	}
}
