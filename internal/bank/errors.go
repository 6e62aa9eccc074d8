package bank

import (
	"fmt"
	"strings"

	"github.com/jfarleigh/certrun/internal/bias"
)

// ErrValidation collects every intake problem found in one pass so
// authors fix a submission once instead of resubmitting per field.
type ErrValidation struct {
	Problems []string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("invalid input: %s", strings.Join(e.Problems, "; "))
}

// ErrConflict indicates a unique-name collision: exam names globally,
// topic names within an exam.
type ErrConflict struct {
	Kind string
	Name string
}

func (e *ErrConflict) Error() string {
	return fmt.Sprintf("%s %q already exists", e.Kind, e.Name)
}

// ErrNotFound indicates an unknown entity id, usually a caller bug or
// a stale reference.
type ErrNotFound struct {
	Kind string
	ID   string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

// ErrBiased rejects an option set that failed the bias gate. The full
// report rides along so callers can render the findings and metrics.
type ErrBiased struct {
	Report bias.Report
}

func (e *ErrBiased) Error() string {
	return bias.FormatReport(e.Report)
}

// ErrInvalidImport wraps an import file rejected before any write:
// unreadable JSON or a schema violation.
type ErrInvalidImport struct {
	Err error
}

func (e *ErrInvalidImport) Error() string {
	return fmt.Sprintf("invalid import file: %v", e.Err)
}

func (e *ErrInvalidImport) Unwrap() error { return e.Err }

// ErrStorage wraps a persistence failure. The operation aborted with
// no partial mutation.
type ErrStorage struct {
	Op  string
	Err error
}

func (e *ErrStorage) Error() string {
	return fmt.Sprintf("storage failure (%s): %v", e.Op, e.Err)
}

func (e *ErrStorage) Unwrap() error { return e.Err }
