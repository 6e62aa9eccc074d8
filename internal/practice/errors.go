package practice

import "fmt"

// ErrEmptyPool indicates no questions matched the session filters.
// User-correctable: loosen the topic filter or add questions.
type ErrEmptyPool struct {
	ExamID  string
	TopicID string
}

func (e *ErrEmptyPool) Error() string {
	if e.TopicID != "" {
		return fmt.Sprintf("no questions in exam %s for topic %s", e.ExamID, e.TopicID)
	}
	return fmt.Sprintf("no questions in exam %s", e.ExamID)
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

// ErrSessionClosed indicates an operation against a session already in
// a terminal status. Recoverable by starting a new session.
type ErrSessionClosed struct {
	SessionID string
	Status    string
}

func (e *ErrSessionClosed) Error() string {
	return fmt.Sprintf("session %s is %s", e.SessionID, e.Status)
}

// ErrOutOfOrder indicates an answer submitted for a question other
// than the expected next one. The attempt is rejected, never silently
// remapped, because it signals a desynced client.
type ErrOutOfOrder struct {
	SessionID string
	Expected  string
	Got       string
}

func (e *ErrOutOfOrder) Error() string {
	return fmt.Sprintf("session %s expects an answer for question %s, got %s", e.SessionID, e.Expected, e.Got)
}

// ErrBusy indicates the per-session lock was not acquired within the
// wait bound. Safe for the caller to retry.
type ErrBusy struct {
	SessionID string
}

func (e *ErrBusy) Error() string {
	return fmt.Sprintf("session %s is busy with another write", e.SessionID)
}

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
