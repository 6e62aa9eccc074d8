package store

import (
	"context"
	"testing"
)

func mustCreateSession(t *testing.T, ctx context.Context, sessions SessionRepo, examID string, questionIDs ...string) *Session {
	t.Helper()
	sess, err := sessions.CreateSession(ctx, Session{
		ExamID:    examID,
		Mode:      ModePractice,
		Questions: questionIDs,
	})
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	return sess
}

func TestStatAbsentReturnsNil(t *testing.T) {
	s := openTestStore(t)
	history := s.HistoryRepo()

	stat, err := history.Stat(context.Background(), "never-attempted")
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if stat != nil {
		t.Errorf("Stat = %+v, want nil for unattempted question", stat)
	}
}

func TestRecordAttemptCreatesThenUpdatesStat(t *testing.T) {
	s := openTestStore(t)
	bank := s.BankRepo()
	history := s.HistoryRepo()
	sessions := s.SessionRepo()
	ctx := context.Background()

	exam := mustCreateExam(t, ctx, bank, "stat exam")
	q := mustCreateQuestion(t, ctx, bank, exam.ID, "tracked")
	s1 := mustCreateSession(t, ctx, sessions, exam.ID, q.ID)
	s2 := mustCreateSession(t, ctx, sessions, exam.ID, q.ID)

	first, err := history.RecordAttempt(ctx, RecordAttemptInput{
		SessionID:      s1.ID,
		QuestionID:     q.ID,
		IsCorrect:      true,
		ElapsedSeconds: 12.5,
	})
	if err != nil {
		t.Fatalf("RecordAttempt (first): %v", err)
	}
	if first.AttemptCount != 1 || first.CorrectCount != 1 {
		t.Errorf("first stat = %d/%d, want 1/1", first.CorrectCount, first.AttemptCount)
	}
	if first.TotalElapsedSeconds != 12.5 {
		t.Errorf("elapsed = %v, want 12.5", first.TotalElapsedSeconds)
	}
	if first.LastAttemptedAt == nil {
		t.Error("last_attempted_at not set on first attempt")
	}

	second, err := history.RecordAttempt(ctx, RecordAttemptInput{
		SessionID:      s2.ID,
		QuestionID:     q.ID,
		IsCorrect:      false,
		ElapsedSeconds: 7.5,
	})
	if err != nil {
		t.Fatalf("RecordAttempt (second): %v", err)
	}
	if second.AttemptCount != 2 || second.CorrectCount != 1 {
		t.Errorf("second stat = %d/%d, want 1/2", second.CorrectCount, second.AttemptCount)
	}
	if second.TotalElapsedSeconds != 20.0 {
		t.Errorf("elapsed = %v, want 20.0", second.TotalElapsedSeconds)
	}
	if second.CorrectCount > second.AttemptCount {
		t.Error("correct count exceeds attempt count")
	}
}

func TestRecordAttemptRejectsDuplicateForSessionQuestion(t *testing.T) {
	s := openTestStore(t)
	bank := s.BankRepo()
	history := s.HistoryRepo()
	sessions := s.SessionRepo()
	ctx := context.Background()

	exam := mustCreateExam(t, ctx, bank, "dup exam")
	q := mustCreateQuestion(t, ctx, bank, exam.ID, "once only")
	sess := mustCreateSession(t, ctx, sessions, exam.ID, q.ID)

	if _, err := history.RecordAttempt(ctx, RecordAttemptInput{
		SessionID:  sess.ID,
		QuestionID: q.ID,
		IsCorrect:  true,
	}); err != nil {
		t.Fatalf("RecordAttempt: %v", err)
	}

	if _, err := history.RecordAttempt(ctx, RecordAttemptInput{
		SessionID:  sess.ID,
		QuestionID: q.ID,
		IsCorrect:  false,
	}); err == nil {
		t.Fatal("second attempt for same session and question accepted, want unique violation")
	}

	// The rejected write must not leak into the stat.
	stat, err := history.Stat(ctx, q.ID)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if stat.AttemptCount != 1 || stat.CorrectCount != 1 {
		t.Errorf("stat after rejected duplicate = %d/%d, want 1/1", stat.CorrectCount, stat.AttemptCount)
	}
}

func TestRecordAttemptCompletesSession(t *testing.T) {
	s := openTestStore(t)
	bank := s.BankRepo()
	history := s.HistoryRepo()
	sessions := s.SessionRepo()
	ctx := context.Background()

	exam := mustCreateExam(t, ctx, bank, "complete exam")
	q := mustCreateQuestion(t, ctx, bank, exam.ID, "last one")
	sess := mustCreateSession(t, ctx, sessions, exam.ID, q.ID)

	if _, err := history.RecordAttempt(ctx, RecordAttemptInput{
		SessionID:       sess.ID,
		QuestionID:      q.ID,
		IsCorrect:       true,
		CompleteSession: true,
	}); err != nil {
		t.Fatalf("RecordAttempt: %v", err)
	}

	got, err := sessions.SessionByID(ctx, sess.ID)
	if err != nil {
		t.Fatalf("SessionByID: %v", err)
	}
	if got.Status != SessionCompleted {
		t.Errorf("status = %q, want completed", got.Status)
	}
	if got.EndedAt == nil {
		t.Error("ended_at not set on completion")
	}
}

func TestRecordAttemptStoresSubmittedOptionsInOrder(t *testing.T) {
	s := openTestStore(t)
	bank := s.BankRepo()
	history := s.HistoryRepo()
	sessions := s.SessionRepo()
	ctx := context.Background()

	exam := mustCreateExam(t, ctx, bank, "attempt log exam")
	q1 := mustCreateQuestion(t, ctx, bank, exam.ID, "one")
	q2 := mustCreateQuestion(t, ctx, bank, exam.ID, "two")
	q3 := mustCreateQuestion(t, ctx, bank, exam.ID, "three")
	sess := mustCreateSession(t, ctx, sessions, exam.ID, q1.ID, q2.ID, q3.ID)

	picks := [][]string{
		{q1.Options[0].ID},
		{q2.Options[1].ID, q2.Options[2].ID},
		{q3.Options[3].ID},
	}
	for i, q := range []*Question{q1, q2, q3} {
		if _, err := history.RecordAttempt(ctx, RecordAttemptInput{
			SessionID:        sess.ID,
			QuestionID:       q.ID,
			IsCorrect:        i == 0,
			SubmittedOptions: picks[i],
		}); err != nil {
			t.Fatalf("RecordAttempt %d: %v", i, err)
		}
	}

	attempts, err := history.AttemptsBySession(ctx, sess.ID)
	if err != nil {
		t.Fatalf("AttemptsBySession: %v", err)
	}
	if len(attempts) != 3 {
		t.Fatalf("len(attempts) = %d, want 3", len(attempts))
	}
	wantOrder := []string{q1.ID, q2.ID, q3.ID}
	for i, a := range attempts {
		if a.QuestionID != wantOrder[i] {
			t.Errorf("attempt %d question = %s, want %s", i, a.QuestionID, wantOrder[i])
		}
		if a.AnsweredAt.IsZero() {
			t.Errorf("attempt %d missing answered_at", i)
		}
	}
	if len(attempts[1].SubmittedOptions) != 2 {
		t.Errorf("attempt 1 submitted options = %v, want both picks", attempts[1].SubmittedOptions)
	}
	if attempts[1].SubmittedOptions[0] != q2.Options[1].ID {
		t.Error("submitted options lost their order")
	}
	if attempts[0].IsCorrect != true || attempts[1].IsCorrect != false {
		t.Error("is_correct flags did not round-trip")
	}
}

func TestStatsSkipsUnattemptedQuestions(t *testing.T) {
	s := openTestStore(t)
	bank := s.BankRepo()
	history := s.HistoryRepo()
	sessions := s.SessionRepo()
	ctx := context.Background()

	exam := mustCreateExam(t, ctx, bank, "stats map exam")
	attempted := mustCreateQuestion(t, ctx, bank, exam.ID, "attempted")
	fresh := mustCreateQuestion(t, ctx, bank, exam.ID, "fresh")
	sess := mustCreateSession(t, ctx, sessions, exam.ID, attempted.ID)

	if _, err := history.RecordAttempt(ctx, RecordAttemptInput{
		SessionID:  sess.ID,
		QuestionID: attempted.ID,
		IsCorrect:  false,
	}); err != nil {
		t.Fatalf("RecordAttempt: %v", err)
	}

	stats, err := history.Stats(ctx, []string{attempted.ID, fresh.ID})
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if len(stats) != 1 {
		t.Fatalf("len(stats) = %d, want 1", len(stats))
	}
	if _, ok := stats[fresh.ID]; ok {
		t.Error("unattempted question present in stats map")
	}
	if got := stats[attempted.ID]; got == nil || got.AttemptCount != 1 {
		t.Errorf("stats[attempted] = %+v, want one attempt", got)
	}

	empty, err := history.Stats(ctx, nil)
	if err != nil {
		t.Fatalf("Stats (empty input): %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("Stats(nil) = %v, want empty map", empty)
	}
}

func TestRebuildStatsMatchesIncremental(t *testing.T) {
	s := openTestStore(t)
	bank := s.BankRepo()
	history := s.HistoryRepo()
	sessions := s.SessionRepo()
	ctx := context.Background()

	exam := mustCreateExam(t, ctx, bank, "rebuild exam")
	q1 := mustCreateQuestion(t, ctx, bank, exam.ID, "alpha")
	q2 := mustCreateQuestion(t, ctx, bank, exam.ID, "beta")

	plan := []struct {
		question *Question
		correct  bool
		elapsed  float64
	}{
		{q1, true, 10},
		{q2, false, 20},
		{q1, false, 5},
		{q2, false, 15},
		{q1, true, 2.5},
	}
	for i, step := range plan {
		sess := mustCreateSession(t, ctx, sessions, exam.ID, step.question.ID)
		if _, err := history.RecordAttempt(ctx, RecordAttemptInput{
			SessionID:      sess.ID,
			QuestionID:     step.question.ID,
			IsCorrect:      step.correct,
			ElapsedSeconds: step.elapsed,
		}); err != nil {
			t.Fatalf("RecordAttempt %d: %v", i, err)
		}
	}

	before, err := history.Stats(ctx, []string{q1.ID, q2.ID})
	if err != nil {
		t.Fatalf("Stats (before): %v", err)
	}

	if err := history.RebuildStats(ctx); err != nil {
		t.Fatalf("RebuildStats: %v", err)
	}

	after, err := history.Stats(ctx, []string{q1.ID, q2.ID})
	if err != nil {
		t.Fatalf("Stats (after): %v", err)
	}
	if len(after) != len(before) {
		t.Fatalf("len(after) = %d, want %d", len(after), len(before))
	}
	for qid, b := range before {
		a := after[qid]
		if a == nil {
			t.Errorf("question %s missing after rebuild", qid)
			continue
		}
		if a.AttemptCount != b.AttemptCount || a.CorrectCount != b.CorrectCount {
			t.Errorf("question %s counts = %d/%d, want %d/%d",
				qid, a.CorrectCount, a.AttemptCount, b.CorrectCount, b.AttemptCount)
		}
		if a.TotalElapsedSeconds != b.TotalElapsedSeconds {
			t.Errorf("question %s elapsed = %v, want %v", qid, a.TotalElapsedSeconds, b.TotalElapsedSeconds)
		}
		if a.LastAttemptedAt == nil {
			t.Errorf("question %s lost last_attempted_at in rebuild", qid)
		}
	}
}

func TestTopicAccuracyWeakestFirstUnattemptedLast(t *testing.T) {
	s := openTestStore(t)
	bank := s.BankRepo()
	history := s.HistoryRepo()
	sessions := s.SessionRepo()
	ctx := context.Background()

	exam := mustCreateExam(t, ctx, bank, "report exam")
	weak := mustCreateTopic(t, ctx, bank, exam.ID, "weak topic")
	strong := mustCreateTopic(t, ctx, bank, exam.ID, "strong topic")
	untouched := mustCreateTopic(t, ctx, bank, exam.ID, "untouched topic")

	qWeak := mustCreateQuestion(t, ctx, bank, exam.ID, "weak q", weak.ID)
	qStrong := mustCreateQuestion(t, ctx, bank, exam.ID, "strong q", strong.ID)
	mustCreateQuestion(t, ctx, bank, exam.ID, "untouched q", untouched.ID)

	steps := []struct {
		question *Question
		correct  bool
	}{
		{qWeak, false},
		{qWeak, false},
		{qStrong, true},
		{qStrong, true},
	}
	for i, step := range steps {
		sess := mustCreateSession(t, ctx, sessions, exam.ID, step.question.ID)
		if _, err := history.RecordAttempt(ctx, RecordAttemptInput{
			SessionID:  sess.ID,
			QuestionID: step.question.ID,
			IsCorrect:  step.correct,
		}); err != nil {
			t.Fatalf("RecordAttempt %d: %v", i, err)
		}
	}

	report, err := history.TopicAccuracy(ctx, exam.ID)
	if err != nil {
		t.Fatalf("TopicAccuracy: %v", err)
	}
	if len(report) != 3 {
		t.Fatalf("len(report) = %d, want 3", len(report))
	}
	if report[0].TopicID != weak.ID {
		t.Errorf("report[0] = %s, want weakest topic first", report[0].TopicName)
	}
	if report[1].TopicID != strong.ID {
		t.Errorf("report[1] = %s, want strong topic second", report[1].TopicName)
	}
	if report[2].TopicID != untouched.ID {
		t.Errorf("report[2] = %s, want unattempted topic last", report[2].TopicName)
	}
	if got := report[0].Accuracy(); got != 0 {
		t.Errorf("weak accuracy = %v, want 0", got)
	}
	if got := report[1].Accuracy(); got != 1 {
		t.Errorf("strong accuracy = %v, want 1", got)
	}
	if report[0].QuestionCount != 1 || report[0].AttemptCount != 2 {
		t.Errorf("weak topic counts = %d questions / %d attempts, want 1/2",
			report[0].QuestionCount, report[0].AttemptCount)
	}
	if report[2].AttemptCount != 0 {
		t.Errorf("untouched attempt count = %d, want 0", report[2].AttemptCount)
	}
}

func TestWeakestQuestionsOrderAndLimit(t *testing.T) {
	s := openTestStore(t)
	bank := s.BankRepo()
	history := s.HistoryRepo()
	sessions := s.SessionRepo()
	ctx := context.Background()

	exam := mustCreateExam(t, ctx, bank, "weakest exam")
	bad := mustCreateQuestion(t, ctx, bank, exam.ID, "mostly wrong")
	mid := mustCreateQuestion(t, ctx, bank, exam.ID, "half right")
	good := mustCreateQuestion(t, ctx, bank, exam.ID, "always right")
	mustCreateQuestion(t, ctx, bank, exam.ID, "never attempted")

	steps := []struct {
		question *Question
		correct  bool
	}{
		{bad, false}, {bad, false}, {bad, true},
		{mid, true}, {mid, false},
		{good, true}, {good, true},
	}
	for i, step := range steps {
		sess := mustCreateSession(t, ctx, sessions, exam.ID, step.question.ID)
		if _, err := history.RecordAttempt(ctx, RecordAttemptInput{
			SessionID:  sess.ID,
			QuestionID: step.question.ID,
			IsCorrect:  step.correct,
		}); err != nil {
			t.Fatalf("RecordAttempt %d: %v", i, err)
		}
	}

	all, err := history.WeakestQuestions(ctx, exam.ID, 10)
	if err != nil {
		t.Fatalf("WeakestQuestions: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("len(weakest) = %d, want 3 attempted questions", len(all))
	}
	wantOrder := []string{bad.ID, mid.ID, good.ID}
	for i, qa := range all {
		if qa.QuestionID != wantOrder[i] {
			t.Errorf("weakest[%d] = %s, want %s", i, qa.QuestionID, wantOrder[i])
		}
	}
	if all[0].Accuracy < 0.33 || all[0].Accuracy > 0.34 {
		t.Errorf("weakest accuracy = %v, want 1/3", all[0].Accuracy)
	}

	top, err := history.WeakestQuestions(ctx, exam.ID, 1)
	if err != nil {
		t.Fatalf("WeakestQuestions (limit): %v", err)
	}
	if len(top) != 1 || top[0].QuestionID != bad.ID {
		t.Errorf("limited result = %v, want only the weakest", top)
	}
}
