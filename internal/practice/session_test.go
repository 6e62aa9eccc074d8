package practice

import (
	"testing"

	"github.com/jfarleigh/certrun/internal/store"
)

func activeSession(questions ...string) *store.Session {
	return &store.Session{
		ID:        "sess-1",
		ExamID:    "exam-1",
		Mode:      store.ModePractice,
		Status:    store.SessionActive,
		Questions: questions,
	}
}

func attemptFor(questionID string) *store.Attempt {
	return &store.Attempt{SessionID: "sess-1", QuestionID: questionID}
}

func TestProgress_NextIDWalksFrozenOrder(t *testing.T) {
	sess := activeSession("q-2", "q-3", "q-1")

	prog := NewProgress(sess, nil)
	if id, ok := prog.NextID(); !ok || id != "q-2" {
		t.Errorf("NextID() = %q, %v, want q-2 first", id, ok)
	}

	prog = NewProgress(sess, []*store.Attempt{attemptFor("q-2")})
	if id, ok := prog.NextID(); !ok || id != "q-3" {
		t.Errorf("NextID() after one attempt = %q, %v, want q-3", id, ok)
	}

	prog = NewProgress(sess, []*store.Attempt{
		attemptFor("q-2"), attemptFor("q-3"), attemptFor("q-1"),
	})
	if id, ok := prog.NextID(); ok {
		t.Errorf("NextID() on finished list = %q, want none", id)
	}
}

func TestProgress_IgnoresAttemptsOutsideFrozenList(t *testing.T) {
	sess := activeSession("q-1", "q-2")

	prog := NewProgress(sess, []*store.Attempt{attemptFor("q-99")})
	if got := prog.AnsweredCount(); got != 0 {
		t.Errorf("AnsweredCount() = %d, want 0 for foreign attempt", got)
	}
	if id, ok := prog.NextID(); !ok || id != "q-1" {
		t.Errorf("NextID() = %q, %v, want q-1 untouched", id, ok)
	}
}

func TestProgress_Counters(t *testing.T) {
	sess := activeSession("q-1", "q-2", "q-3")
	prog := NewProgress(sess, []*store.Attempt{attemptFor("q-1"), attemptFor("q-2")})

	if got := prog.Total(); got != 3 {
		t.Errorf("Total() = %d, want 3", got)
	}
	if got := prog.AnsweredCount(); got != 2 {
		t.Errorf("AnsweredCount() = %d, want 2", got)
	}
	if got := prog.Remaining(); got != 1 {
		t.Errorf("Remaining() = %d, want 1", got)
	}
	if !prog.Answered("q-1") || prog.Answered("q-3") {
		t.Error("Answered() flags wrong questions")
	}
}

func TestProgress_StateDerivation(t *testing.T) {
	tests := []struct {
		name     string
		status   string
		attempts []*store.Attempt
		want     State
	}{
		{"fresh active", store.SessionActive, nil, StateCreated},
		{"active with attempts", store.SessionActive, []*store.Attempt{attemptFor("q-1")}, StateInProgress},
		{"completed", store.SessionCompleted, []*store.Attempt{attemptFor("q-1"), attemptFor("q-2")}, StateCompleted},
		{"abandoned", store.SessionAbandoned, []*store.Attempt{attemptFor("q-1")}, StateAbandoned},
	}
	for _, tt := range tests {
		sess := activeSession("q-1", "q-2")
		sess.Status = tt.status
		got := NewProgress(sess, tt.attempts).State()
		if got != tt.want {
			t.Errorf("%s: State() = %s, want %s", tt.name, got, tt.want)
		}
	}
}

func TestProgress_TerminalFollowsStatus(t *testing.T) {
	sess := activeSession("q-1")
	if NewProgress(sess, nil).Terminal() {
		t.Error("active session reported terminal")
	}
	sess.Status = store.SessionCompleted
	if !NewProgress(sess, nil).Terminal() {
		t.Error("completed session not reported terminal")
	}
}

func TestState_String(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateCreated, "created"},
		{StateInProgress, "in_progress"},
		{StateCompleted, "completed"},
		{StateAbandoned, "abandoned"},
		{State(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}
