package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func TestCreateSessionFreezesQuestionList(t *testing.T) {
	s := openTestStore(t)
	bank := s.BankRepo()
	sessions := s.SessionRepo()
	ctx := context.Background()

	exam := mustCreateExam(t, ctx, bank, "freeze exam")
	q1 := mustCreateQuestion(t, ctx, bank, exam.ID, "one")
	q2 := mustCreateQuestion(t, ctx, bank, exam.ID, "two")
	q3 := mustCreateQuestion(t, ctx, bank, exam.ID, "three")

	// Deliberately not creation order: the stored list is whatever the
	// selector froze, and it must come back byte for byte.
	frozen := []string{q2.ID, q3.ID, q1.ID}
	created, err := sessions.CreateSession(ctx, Session{
		ExamID:        exam.ID,
		Mode:          ModeSpeedrun,
		Questions:     frozen,
		SelectionSeed: 424242,
	})
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected generated session id")
	}
	if created.Status != SessionActive {
		t.Errorf("status = %q, want active", created.Status)
	}

	got, err := sessions.SessionByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("SessionByID: %v", err)
	}
	if got == nil {
		t.Fatal("SessionByID returned nil for stored session")
	}
	if len(got.Questions) != 3 {
		t.Fatalf("len(questions) = %d, want 3", len(got.Questions))
	}
	for i, id := range frozen {
		if got.Questions[i] != id {
			t.Errorf("questions[%d] = %s, want %s", i, got.Questions[i], id)
		}
	}
	if got.SelectionSeed != 424242 {
		t.Errorf("selection seed = %d, want 424242", got.SelectionSeed)
	}
	if got.Mode != ModeSpeedrun {
		t.Errorf("mode = %q, want speedrun", got.Mode)
	}
	if got.StartedAt.IsZero() {
		t.Error("started_at not set")
	}
	if got.EndedAt != nil {
		t.Errorf("ended_at = %v on active session, want nil", got.EndedAt)
	}
}

func TestSessionByIDMissingReturnsNil(t *testing.T) {
	s := openTestStore(t)

	got, err := s.SessionRepo().SessionByID(context.Background(), "no-such-session")
	if err != nil {
		t.Fatalf("SessionByID: %v", err)
	}
	if got != nil {
		t.Errorf("SessionByID = %+v, want nil", got)
	}
}

func TestEndSessionIdempotent(t *testing.T) {
	s := openTestStore(t)
	bank := s.BankRepo()
	sessions := s.SessionRepo()
	ctx := context.Background()

	exam := mustCreateExam(t, ctx, bank, "end exam")
	q := mustCreateQuestion(t, ctx, bank, exam.ID, "only")
	sess := mustCreateSession(t, ctx, sessions, exam.ID, q.ID)

	ended, err := sessions.EndSession(ctx, sess.ID, SessionAbandoned, time.Now().UTC())
	if err != nil {
		t.Fatalf("EndSession: %v", err)
	}
	if !ended {
		t.Fatal("EndSession = false on active session, want true")
	}

	got, err := sessions.SessionByID(ctx, sess.ID)
	if err != nil {
		t.Fatalf("SessionByID: %v", err)
	}
	if got.Status != SessionAbandoned {
		t.Errorf("status = %q, want abandoned", got.Status)
	}
	if got.EndedAt == nil {
		t.Error("ended_at not set")
	}

	// A second end is a no-op and must not change the recorded status.
	again, err := sessions.EndSession(ctx, sess.ID, SessionCompleted, time.Now().UTC())
	if err != nil {
		t.Fatalf("EndSession (again): %v", err)
	}
	if again {
		t.Error("EndSession = true on terminal session, want false")
	}
	reread, err := sessions.SessionByID(ctx, sess.ID)
	if err != nil {
		t.Fatalf("SessionByID (reread): %v", err)
	}
	if reread.Status != SessionAbandoned {
		t.Errorf("status after second end = %q, want abandoned unchanged", reread.Status)
	}
}

func TestRecentSessionsNewestFirst(t *testing.T) {
	s := openTestStore(t)
	bank := s.BankRepo()
	sessions := s.SessionRepo()
	ctx := context.Background()

	exam := mustCreateExam(t, ctx, bank, "recent exam")
	other := mustCreateExam(t, ctx, bank, "recent other")
	q := mustCreateQuestion(t, ctx, bank, exam.ID, "shared")

	first := mustCreateSession(t, ctx, sessions, exam.ID, q.ID)
	second := mustCreateSession(t, ctx, sessions, exam.ID, q.ID)
	third := mustCreateSession(t, ctx, sessions, exam.ID, q.ID)
	mustCreateSession(t, ctx, sessions, other.ID, q.ID)

	recent, err := sessions.RecentSessions(ctx, exam.ID, 2)
	if err != nil {
		t.Fatalf("RecentSessions: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("len(recent) = %d, want 2", len(recent))
	}
	if recent[0].ID != third.ID || recent[1].ID != second.ID {
		t.Errorf("recent order = [%s %s], want newest first", recent[0].ID, recent[1].ID)
	}

	all, err := sessions.RecentSessions(ctx, exam.ID, 0)
	if err != nil {
		t.Fatalf("RecentSessions (no limit): %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("len(all) = %d, want 3", len(all))
	}
	if all[2].ID != first.ID {
		t.Errorf("oldest = %s, want %s", all[2].ID, first.ID)
	}
}

func TestSessionSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "certrun.db")
	ctx := context.Background()

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open file store: %v", err)
	}

	// File-backed databases really get WAL, unlike the in-memory ones
	// used elsewhere in this package.
	var mode string
	if err := s.DB().QueryRow("PRAGMA journal_mode").Scan(&mode); err != nil {
		t.Fatalf("PRAGMA journal_mode: %v", err)
	}
	if mode != "wal" {
		t.Errorf("journal_mode = %q, want wal", mode)
	}

	bank := s.BankRepo()
	exam := mustCreateExam(t, ctx, bank, "durable exam")
	q1 := mustCreateQuestion(t, ctx, bank, exam.ID, "one")
	q2 := mustCreateQuestion(t, ctx, bank, exam.ID, "two")

	sess, err := s.SessionRepo().CreateSession(ctx, Session{
		ExamID:        exam.ID,
		Mode:          ModePractice,
		Questions:     []string{q2.ID, q1.ID},
		SelectionSeed: 7,
	})
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	if _, err := s.HistoryRepo().RecordAttempt(ctx, RecordAttemptInput{
		SessionID:  sess.ID,
		QuestionID: q2.ID,
		IsCorrect:  true,
	}); err != nil {
		t.Fatalf("RecordAttempt: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen file store: %v", err)
	}
	t.Cleanup(func() { reopened.Close() })

	got, err := reopened.SessionRepo().SessionByID(ctx, sess.ID)
	if err != nil {
		t.Fatalf("SessionByID after reopen: %v", err)
	}
	if got == nil {
		t.Fatal("session lost across reopen")
	}
	if len(got.Questions) != 2 || got.Questions[0] != q2.ID || got.Questions[1] != q1.ID {
		t.Errorf("frozen list after reopen = %v, want [%s %s]", got.Questions, q2.ID, q1.ID)
	}
	if got.SelectionSeed != 7 {
		t.Errorf("selection seed after reopen = %d, want 7", got.SelectionSeed)
	}
	if got.Status != SessionActive {
		t.Errorf("status after reopen = %q, want still active", got.Status)
	}

	attempts, err := reopened.HistoryRepo().AttemptsBySession(ctx, sess.ID)
	if err != nil {
		t.Fatalf("AttemptsBySession after reopen: %v", err)
	}
	if len(attempts) != 1 || attempts[0].QuestionID != q2.ID {
		t.Errorf("attempts after reopen = %v, want the one recorded before close", attempts)
	}
}
