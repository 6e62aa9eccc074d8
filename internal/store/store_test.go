package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func mustCreateExam(t *testing.T, ctx context.Context, bank BankRepo, name string) *Exam {
	t.Helper()
	exam, err := bank.CreateExam(ctx, Exam{Name: name, Vendor: "acme", Description: "test exam"})
	if err != nil {
		t.Fatalf("create exam %q: %v", name, err)
	}
	return exam
}

func mustCreateTopic(t *testing.T, ctx context.Context, bank BankRepo, examID, name string) *Topic {
	t.Helper()
	topic, err := bank.CreateTopic(ctx, Topic{ExamID: examID, Name: name, WeightPercent: 10})
	if err != nil {
		t.Fatalf("create topic %q: %v", name, err)
	}
	return topic
}

// mustCreateQuestion inserts a single-answer question with four options, the
// first of which is correct.
func mustCreateQuestion(t *testing.T, ctx context.Context, bank BankRepo, examID, text string, topicIDs ...string) *Question {
	t.Helper()
	q := Question{
		ExamID:       examID,
		Text:         text,
		QuestionType: QuestionSingle,
		Difficulty:   DifficultyMedium,
		Explanation:  "the first option matches the scenario constraints",
		TopicIDs:     topicIDs,
		Options: []AnswerOption{
			{Text: "the correct answer", IsCorrect: true},
			{Text: "plausible wrong one", DistractorReason: "confuses scope with scale"},
			{Text: "plausible wrong two", DistractorReason: "right service, wrong tier"},
			{Text: "plausible wrong three", DistractorReason: "approach deprecated by vendor"},
		},
	}
	created, err := bank.CreateQuestion(ctx, q)
	if err != nil {
		t.Fatalf("create question %q: %v", text, err)
	}
	return created
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
	if s.DB() == nil {
		t.Fatal("expected non-nil sql.DB")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tables := []string{
		"exams",
		"topics",
		"questions",
		"answer_options",
		"question_topics",
		"question_stats",
		"practice_sessions",
		"question_attempts",
	}
	for _, table := range tables {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %q missing: %v", table, err)
			continue
		}
		if name != table {
			t.Errorf("table name = %q, want %q", name, table)
		}
	}
}

func TestForeignKeysEnforced(t *testing.T) {
	s := openTestStore(t)

	_, err := s.DB().Exec(
		"INSERT INTO answer_options (id, created_at, question_id, text, is_correct, distractor_reason, position) VALUES ('opt-x', datetime('now'), 'no-such-question', 'orphan', 0, '', 0)",
	)
	if err == nil {
		t.Error("insert with dangling question_id succeeded, want foreign key error")
	}
}
