package practice

import (
	"github.com/jfarleigh/certrun/internal/store"
)

// State represents a session's lifecycle position.
type State int

const (
	StateCreated    State = iota // frozen list stored, nothing answered yet
	StateInProgress              // at least one attempt recorded
	StateCompleted               // every frozen id answered
	StateAbandoned               // ended early by explicit learner action
)

func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateInProgress:
		return "in_progress"
	case StateCompleted:
		return "completed"
	case StateAbandoned:
		return "abandoned"
	default:
		return "unknown"
	}
}

// Progress is a pure projection of a session's frozen question list
// over its attempt log. It carries no cursor of its own: any process
// can rebuild it from those two persisted pieces and land exactly
// where the previous process left off.
type Progress struct {
	frozen   []string
	answered map[string]bool
	status   string
}

// NewProgress projects the attempt log onto the session's frozen list.
// Attempts for ids outside the frozen list are ignored.
func NewProgress(sess *store.Session, attempts []*store.Attempt) *Progress {
	answered := make(map[string]bool, len(attempts))
	for _, a := range attempts {
		answered[a.QuestionID] = true
	}
	return &Progress{
		frozen:   sess.Questions,
		answered: answered,
		status:   sess.Status,
	}
}

// NextID returns the first frozen id with no recorded attempt, in
// frozen order. ok is false when every id has been answered.
func (p *Progress) NextID() (string, bool) {
	for _, id := range p.frozen {
		if !p.answered[id] {
			return id, true
		}
	}
	return "", false
}

// Total returns the frozen list length.
func (p *Progress) Total() int {
	return len(p.frozen)
}

// AnsweredCount returns how many frozen ids have a recorded attempt.
func (p *Progress) AnsweredCount() int {
	n := 0
	for _, id := range p.frozen {
		if p.answered[id] {
			n++
		}
	}
	return n
}

// Remaining returns how many frozen ids still lack an attempt.
func (p *Progress) Remaining() int {
	return p.Total() - p.AnsweredCount()
}

// Answered reports whether the given id already has an attempt in
// this session.
func (p *Progress) Answered(id string) bool {
	return p.answered[id]
}

// Terminal reports whether the session row is in a terminal status.
func (p *Progress) Terminal() bool {
	return p.status != store.SessionActive
}

// State derives the lifecycle position. Created and InProgress share
// the persisted "active" status and differ only in whether any
// attempt exists yet.
func (p *Progress) State() State {
	switch p.status {
	case store.SessionCompleted:
		return StateCompleted
	case store.SessionAbandoned:
		return StateAbandoned
	}
	if p.AnsweredCount() == 0 {
		return StateCreated
	}
	return StateInProgress
}
