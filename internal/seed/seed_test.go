package seed

import (
	"context"
	"testing"

	"github.com/jfarleigh/certrun/internal/bank"
	"github.com/jfarleigh/certrun/internal/bias"
	"github.com/jfarleigh/certrun/internal/store"
)

// seedRepo is the minimal BankRepo that Run reaches: the import path
// checks ExamByName, then writes through ImportBundle.
type seedRepo struct {
	exams   []*store.Exam
	bundles []store.Bundle
}

func (r *seedRepo) ExamByName(_ context.Context, name string) (*store.Exam, error) {
	for _, e := range r.exams {
		if e.Name == name {
			return e, nil
		}
	}
	return nil, nil
}

func (r *seedRepo) ImportBundle(_ context.Context, b store.Bundle) (*store.Exam, error) {
	e := b.Exam
	e.ID = "exam-1"
	e.QuestionCount = len(b.Questions)
	r.exams = append(r.exams, &e)
	r.bundles = append(r.bundles, b)
	return &e, nil
}

func (r *seedRepo) CreateExam(context.Context, store.Exam) (*store.Exam, error) { return nil, nil }
func (r *seedRepo) ExamByID(context.Context, string) (*store.Exam, error)       { return nil, nil }
func (r *seedRepo) Exams(context.Context) ([]*store.Exam, error)                { return nil, nil }
func (r *seedRepo) CreateTopic(context.Context, store.Topic) (*store.Topic, error) {
	return nil, nil
}
func (r *seedRepo) TopicByID(context.Context, string) (*store.Topic, error) { return nil, nil }
func (r *seedRepo) Topics(context.Context, string) ([]*store.Topic, error)  { return nil, nil }
func (r *seedRepo) CreateQuestion(context.Context, store.Question) (*store.Question, error) {
	return nil, nil
}
func (r *seedRepo) QuestionByID(context.Context, string) (*store.Question, error) { return nil, nil }
func (r *seedRepo) Questions(context.Context, store.QuestionFilter) ([]*store.Question, error) {
	return nil, nil
}
func (r *seedRepo) UpdateQuestion(context.Context, store.QuestionUpdate) (*store.Question, error) {
	return nil, nil
}
func (r *seedRepo) UpdateOptions(context.Context, string, []store.OptionUpdate) error { return nil }
func (r *seedRepo) DeleteQuestion(context.Context, string) (bool, error)              { return false, nil }
func (r *seedRepo) SearchQuestions(context.Context, string, string, int) ([]*store.Question, error) {
	return nil, nil
}

func TestRunImportsSampleExam(t *testing.T) {
	repo := &seedRepo{}
	svc := bank.NewService(repo)

	exam, created, err := Run(context.Background(), svc)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !created {
		t.Fatal("created = false on an empty bank")
	}
	if exam.Name != "AWS Solutions Architect Associate" {
		t.Errorf("exam name = %q", exam.Name)
	}
	if exam.QuestionCount != 8 {
		t.Errorf("question count = %d, want 8", exam.QuestionCount)
	}

	if len(repo.bundles) != 1 {
		t.Fatalf("bundles written = %d, want 1", len(repo.bundles))
	}
	b := repo.bundles[0]
	if len(b.Topics) != 5 {
		t.Errorf("topics = %d, want 5", len(b.Topics))
	}
	for _, q := range b.Questions {
		if q.QuestionType != store.QuestionSingle {
			t.Errorf("question %q type = %q, want single", q.Text, q.QuestionType)
		}
		if len(q.Options) != 4 {
			t.Errorf("question %q has %d options, want 4", q.Text, len(q.Options))
		}
		if len(q.TopicNames) == 0 {
			t.Errorf("question %q has no topic links", q.Text)
		}
	}
}

func TestRunSkipsExistingExam(t *testing.T) {
	repo := &seedRepo{exams: []*store.Exam{
		{ID: "exam-0", Name: "AWS Solutions Architect Associate"},
	}}
	svc := bank.NewService(repo)

	exam, created, err := Run(context.Background(), svc)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if created {
		t.Error("created = true with the sample exam already present")
	}
	if exam != nil {
		t.Errorf("exam = %+v, want nil on skip", exam)
	}
	if len(repo.bundles) != 0 {
		t.Error("bundle written on skip")
	}
}

// The bundled file must clear the same gate as user imports, so a
// data edit that unbalances an answer set fails here first.
func TestSampleDataPassesBiasGate(t *testing.T) {
	f, err := bank.ParseImport(sampleJSON)
	if err != nil {
		t.Fatalf("ParseImport: %v", err)
	}
	if len(f.Topics) != 5 {
		t.Errorf("topics = %d, want 5", len(f.Topics))
	}
	if len(f.Questions) != 8 {
		t.Errorf("questions = %d, want 8", len(f.Questions))
	}

	thresholds := bias.DefaultThresholds()
	for i, q := range f.Questions {
		opts := make([]bias.Option, len(q.Options))
		for j, o := range q.Options {
			opts[j] = bias.Option{
				Text:             o.Text,
				IsCorrect:        o.Correct,
				DistractorReason: o.DistractorReason,
			}
		}
		report := bias.Analyze(opts, thresholds)
		if !report.Valid {
			t.Errorf("question %d flagged: %+v", i+1, report.Issues)
		}
	}
}
