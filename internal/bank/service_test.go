package bank

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/jfarleigh/certrun/internal/store"
)

var fixedNow = time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)

// mockRepo is an in-memory BankRepo. Reads hand back copies, the way
// the real store hands back fresh rows, so a caller mutating a result
// can never corrupt stored state.
type mockRepo struct {
	exams     []*store.Exam
	topics    []*store.Topic
	questions []*store.Question
	nextID    int

	failOp string // operation forced to fail
}

func newMockRepo() *mockRepo { return &mockRepo{} }

func (m *mockRepo) id(prefix string) string {
	m.nextID++
	return fmt.Sprintf("%s-%d", prefix, m.nextID)
}

func (m *mockRepo) fail(op string) error {
	if m.failOp == op {
		return errors.New("forced failure")
	}
	return nil
}

func copyExam(e *store.Exam) *store.Exam {
	c := *e
	return &c
}

func copyQuestion(q *store.Question, withOptions bool) *store.Question {
	c := *q
	c.PatternTags = append([]string(nil), q.PatternTags...)
	c.TopicIDs = append([]string(nil), q.TopicIDs...)
	if withOptions {
		c.Options = append([]store.AnswerOption(nil), q.Options...)
	} else {
		c.Options = nil
	}
	return &c
}

func (m *mockRepo) CreateExam(_ context.Context, e store.Exam) (*store.Exam, error) {
	if err := m.fail("create exam"); err != nil {
		return nil, err
	}
	e.ID = m.id("exam")
	e.CreatedAt = fixedNow
	m.exams = append(m.exams, &e)
	return copyExam(&e), nil
}

func (m *mockRepo) ExamByID(_ context.Context, id string) (*store.Exam, error) {
	if err := m.fail("exam by id"); err != nil {
		return nil, err
	}
	for _, e := range m.exams {
		if e.ID == id {
			out := copyExam(e)
			out.QuestionCount = m.countQuestions(id)
			return out, nil
		}
	}
	return nil, nil
}

func (m *mockRepo) ExamByName(_ context.Context, name string) (*store.Exam, error) {
	if err := m.fail("exam by name"); err != nil {
		return nil, err
	}
	for _, e := range m.exams {
		if e.Name == name {
			return copyExam(e), nil
		}
	}
	return nil, nil
}

func (m *mockRepo) Exams(_ context.Context) ([]*store.Exam, error) {
	out := make([]*store.Exam, 0, len(m.exams))
	for _, e := range m.exams {
		c := copyExam(e)
		c.QuestionCount = m.countQuestions(e.ID)
		out = append(out, c)
	}
	return out, nil
}

func (m *mockRepo) countQuestions(examID string) int {
	n := 0
	for _, q := range m.questions {
		if q.ExamID == examID {
			n++
		}
	}
	return n
}

func (m *mockRepo) CreateTopic(_ context.Context, t store.Topic) (*store.Topic, error) {
	t.ID = m.id("topic")
	t.CreatedAt = fixedNow
	m.topics = append(m.topics, &t)
	c := t
	return &c, nil
}

func (m *mockRepo) TopicByID(_ context.Context, id string) (*store.Topic, error) {
	for _, t := range m.topics {
		if t.ID == id {
			c := *t
			return &c, nil
		}
	}
	return nil, nil
}

func (m *mockRepo) Topics(_ context.Context, examID string) ([]*store.Topic, error) {
	var out []*store.Topic
	for _, t := range m.topics {
		if t.ExamID == examID {
			c := *t
			out = append(out, &c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].WeightPercent != out[j].WeightPercent {
			return out[i].WeightPercent > out[j].WeightPercent
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (m *mockRepo) CreateQuestion(_ context.Context, q store.Question) (*store.Question, error) {
	if err := m.fail("create question"); err != nil {
		return nil, err
	}
	q.ID = m.id("q")
	q.CreatedAt = fixedNow
	for i := range q.Options {
		q.Options[i].ID = m.id("opt")
		q.Options[i].QuestionID = q.ID
		q.Options[i].Position = i
	}
	m.questions = append(m.questions, &q)
	return copyQuestion(&q, true), nil
}

func (m *mockRepo) QuestionByID(_ context.Context, id string) (*store.Question, error) {
	if err := m.fail("question by id"); err != nil {
		return nil, err
	}
	for _, q := range m.questions {
		if q.ID == id {
			return copyQuestion(q, true), nil
		}
	}
	return nil, nil
}

func (m *mockRepo) Questions(_ context.Context, f store.QuestionFilter) ([]*store.Question, error) {
	if err := m.fail("list questions"); err != nil {
		return nil, err
	}
	var out []*store.Question
	for _, q := range m.questions {
		if f.ExamID != "" && q.ExamID != f.ExamID {
			continue
		}
		if f.TopicID != "" && !containsString(q.TopicIDs, f.TopicID) {
			continue
		}
		if f.Difficulty != "" && q.Difficulty != f.Difficulty {
			continue
		}
		if f.QuestionType != "" && q.QuestionType != f.QuestionType {
			continue
		}
		out = append(out, copyQuestion(q, f.WithOptions))
	}
	if f.Offset > 0 {
		if f.Offset >= len(out) {
			return nil, nil
		}
		out = out[f.Offset:]
	}
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func (m *mockRepo) UpdateQuestion(_ context.Context, u store.QuestionUpdate) (*store.Question, error) {
	for _, q := range m.questions {
		if q.ID != u.ID {
			continue
		}
		if u.Text != nil {
			q.Text = *u.Text
		}
		if u.Explanation != nil {
			q.Explanation = *u.Explanation
		}
		if u.Difficulty != nil {
			q.Difficulty = *u.Difficulty
		}
		if u.Source != nil {
			q.Source = *u.Source
		}
		if u.PatternTags != nil {
			q.PatternTags = append([]string(nil), (*u.PatternTags)...)
		}
		return copyQuestion(q, true), nil
	}
	return nil, nil
}

func (m *mockRepo) UpdateOptions(_ context.Context, questionID string, updates []store.OptionUpdate) error {
	if err := m.fail("update options"); err != nil {
		return err
	}
	var target *store.Question
	for _, q := range m.questions {
		if q.ID == questionID {
			target = q
			break
		}
	}
	if target == nil {
		return fmt.Errorf("question %s not found", questionID)
	}
	for _, up := range updates {
		found := false
		for i := range target.Options {
			if target.Options[i].ID != up.ID {
				continue
			}
			found = true
			if up.Text != nil {
				target.Options[i].Text = *up.Text
			}
			if up.IsCorrect != nil {
				target.Options[i].IsCorrect = *up.IsCorrect
			}
			if up.DistractorReason != nil {
				target.Options[i].DistractorReason = *up.DistractorReason
			}
		}
		if !found {
			return fmt.Errorf("option %s does not belong to question %s", up.ID, questionID)
		}
	}
	return nil
}

func (m *mockRepo) DeleteQuestion(_ context.Context, id string) (bool, error) {
	if err := m.fail("delete question"); err != nil {
		return false, err
	}
	for i, q := range m.questions {
		if q.ID == id {
			m.questions = append(m.questions[:i], m.questions[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (m *mockRepo) SearchQuestions(_ context.Context, examID, query string, limit int) ([]*store.Question, error) {
	needle := strings.ToLower(query)
	var out []*store.Question
	for _, q := range m.questions {
		if examID != "" && q.ExamID != examID {
			continue
		}
		if !strings.Contains(strings.ToLower(q.Text), needle) &&
			!strings.Contains(strings.ToLower(q.Explanation), needle) {
			continue
		}
		out = append(out, copyQuestion(q, true))
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (m *mockRepo) ImportBundle(_ context.Context, b store.Bundle) (*store.Exam, error) {
	if err := m.fail("import"); err != nil {
		return nil, err
	}
	exam := b.Exam
	exam.ID = m.id("exam")
	exam.CreatedAt = fixedNow
	m.exams = append(m.exams, &exam)

	names := make(map[string]string, len(b.Topics))
	for _, t := range b.Topics {
		t.ExamID = exam.ID
		t.ID = m.id("topic")
		t.CreatedAt = fixedNow
		tc := t
		m.topics = append(m.topics, &tc)
		names[t.Name] = t.ID
	}
	for i := range b.Questions {
		q := b.Questions[i].Question
		q.ExamID = exam.ID
		q.ID = m.id("q")
		q.CreatedAt = fixedNow
		for _, name := range b.Questions[i].TopicNames {
			id, ok := names[name]
			if !ok {
				return nil, fmt.Errorf("import question %d: unknown topic %q", i, name)
			}
			q.TopicIDs = append(q.TopicIDs, id)
		}
		for j := range q.Options {
			q.Options[j].ID = m.id("opt")
			q.Options[j].QuestionID = q.ID
			q.Options[j].Position = j
		}
		qc := q
		m.questions = append(m.questions, &qc)
	}

	out := exam
	out.QuestionCount = len(b.Questions)
	return &out, nil
}

func containsString(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}

func newTestService() (*Service, *mockRepo) {
	repo := newMockRepo()
	return NewService(repo), repo
}

func mustExam(t *testing.T, svc *Service) *store.Exam {
	t.Helper()
	exam, err := svc.CreateExam(context.Background(), CreateExamInput{
		Name:         "AWS Solutions Architect Associate",
		Vendor:       "AWS",
		ExamCode:     "SAA-C03",
		PassingScore: 72,
	})
	if err != nil {
		t.Fatalf("CreateExam: %v", err)
	}
	return exam
}

// balancedInputs passes the bias gate: even lengths, reasons past the
// minimum, one correct answer.
func balancedInputs() []OptionInput {
	return []OptionInput{
		{Text: "Use Amazon S3 for object storage", IsCorrect: true},
		{Text: "Use Amazon EBS for block storage", DistractorReason: "EBS volumes attach to one instance"},
		{Text: "Use Amazon EFS for shared files", DistractorReason: "EFS is shared POSIX file storage"},
		{Text: "Use Amazon FSx for Windows files", DistractorReason: "FSx targets Windows file workloads"},
	}
}

// biasedInputs fails the gate: the correct answer dwarfs the
// distractors, tripping both the ratio and the variance checks.
func biasedInputs() []OptionInput {
	return []OptionInput{
		{Text: "Use Amazon S3 with cross-region replication and lifecycle rules for durable archival", IsCorrect: true},
		{Text: "Use local disk"},
		{Text: "Use tape drives"},
		{Text: "Use a USB stick"},
	}
}

func mustQuestion(t *testing.T, svc *Service, examID string, topicIDs ...string) *store.Question {
	t.Helper()
	q, err := svc.CreateQuestion(context.Background(), CreateQuestionInput{
		ExamID:       examID,
		Text:         "Which service stores objects durably?",
		QuestionType: store.QuestionSingle,
		TopicIDs:     topicIDs,
		Options:      balancedInputs(),
	})
	if err != nil {
		t.Fatalf("CreateQuestion: %v", err)
	}
	return q
}

func TestCreateExamRoundTrip(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created := mustExam(t, svc)
	if created.ID == "" {
		t.Fatal("created exam has no id")
	}
	if created.ExamCode != "SAA-C03" || created.PassingScore != 72 {
		t.Errorf("metadata = %q/%d, want SAA-C03/72", created.ExamCode, created.PassingScore)
	}

	got, err := svc.Exam(ctx, created.ID)
	if err != nil {
		t.Fatalf("Exam: %v", err)
	}
	if got.Name != created.Name {
		t.Errorf("Name = %q, want %q", got.Name, created.Name)
	}

	all, err := svc.Exams(ctx)
	if err != nil {
		t.Fatalf("Exams: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("len(Exams) = %d, want 1", len(all))
	}
}

func TestCreateExamDuplicateName(t *testing.T) {
	svc, _ := newTestService()
	mustExam(t, svc)

	_, err := svc.CreateExam(context.Background(), CreateExamInput{Name: "AWS Solutions Architect Associate"})
	var conflict *ErrConflict
	if !errors.As(err, &conflict) {
		t.Fatalf("err = %v, want ErrConflict", err)
	}
	if conflict.Kind != "exam" {
		t.Errorf("Kind = %q, want exam", conflict.Kind)
	}
}

func TestCreateExamCollectsProblems(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.CreateExam(context.Background(), CreateExamInput{Name: "  ", PassingScore: 130})
	var verr *ErrValidation
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
	if len(verr.Problems) != 2 {
		t.Errorf("Problems = %v, want 2 entries", verr.Problems)
	}
}

func TestExamNotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Exam(context.Background(), "nope")
	var nf *ErrNotFound
	if !errors.As(err, &nf) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if nf.Kind != "exam" || nf.ID != "nope" {
		t.Errorf("ErrNotFound = %s/%s, want exam/nope", nf.Kind, nf.ID)
	}
}

func TestCreateTopicUniquePerExam(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	exam := mustExam(t, svc)

	if _, err := svc.CreateTopic(ctx, CreateTopicInput{ExamID: exam.ID, Name: "Storage", WeightPercent: 30}); err != nil {
		t.Fatalf("CreateTopic: %v", err)
	}

	_, err := svc.CreateTopic(ctx, CreateTopicInput{ExamID: exam.ID, Name: "Storage"})
	var conflict *ErrConflict
	if !errors.As(err, &conflict) {
		t.Fatalf("duplicate topic err = %v, want ErrConflict", err)
	}

	// The same name under another exam is fine.
	other, err := svc.CreateExam(ctx, CreateExamInput{Name: "Azure Fundamentals", Vendor: "Microsoft"})
	if err != nil {
		t.Fatalf("CreateExam: %v", err)
	}
	if _, err := svc.CreateTopic(ctx, CreateTopicInput{ExamID: other.ID, Name: "Storage"}); err != nil {
		t.Errorf("same topic name under another exam: %v", err)
	}
}

func TestCreateTopicUnknownExam(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.CreateTopic(context.Background(), CreateTopicInput{ExamID: "ghost", Name: "Storage"})
	var nf *ErrNotFound
	if !errors.As(err, &nf) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestTopicsRequireExam(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Topics(context.Background(), "ghost")
	var nf *ErrNotFound
	if !errors.As(err, &nf) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestCreateQuestionStoresOptionsInOrder(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	exam := mustExam(t, svc)
	topic, err := svc.CreateTopic(ctx, CreateTopicInput{ExamID: exam.ID, Name: "Storage", WeightPercent: 30})
	if err != nil {
		t.Fatalf("CreateTopic: %v", err)
	}

	q := mustQuestion(t, svc, exam.ID, topic.ID)
	if q.Difficulty != store.DifficultyMedium {
		t.Errorf("Difficulty = %q, want default medium", q.Difficulty)
	}
	if len(q.Options) != 4 {
		t.Fatalf("len(Options) = %d, want 4", len(q.Options))
	}
	for i, opt := range q.Options {
		if opt.Position != i {
			t.Errorf("option %d Position = %d", i, opt.Position)
		}
	}
	if !q.Options[0].IsCorrect {
		t.Error("first option should have stayed correct")
	}
	if len(q.TopicIDs) != 1 || q.TopicIDs[0] != topic.ID {
		t.Errorf("TopicIDs = %v, want [%s]", q.TopicIDs, topic.ID)
	}
}

func TestCreateQuestionRejectsBiasedSet(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	exam := mustExam(t, svc)

	_, err := svc.CreateQuestion(ctx, CreateQuestionInput{
		ExamID:       exam.ID,
		Text:         "Where should archives go?",
		QuestionType: store.QuestionSingle,
		Options:      biasedInputs(),
	})
	var biased *ErrBiased
	if !errors.As(err, &biased) {
		t.Fatalf("err = %v, want ErrBiased", err)
	}
	if len(biased.Report.Issues) == 0 {
		t.Error("ErrBiased carries no issues")
	}

	// The same set stores when the caller accepts the bias.
	q, err := svc.CreateQuestion(ctx, CreateQuestionInput{
		ExamID:       exam.ID,
		Text:         "Where should archives go?",
		QuestionType: store.QuestionSingle,
		Options:      biasedInputs(),
		AllowBiased:  true,
	})
	if err != nil {
		t.Fatalf("CreateQuestion with AllowBiased: %v", err)
	}
	if q.ID == "" {
		t.Error("stored question has no id")
	}
}

func TestCreateQuestionCollectsStructuralProblems(t *testing.T) {
	svc, _ := newTestService()
	exam := mustExam(t, svc)

	_, err := svc.CreateQuestion(context.Background(), CreateQuestionInput{
		ExamID:       exam.ID,
		Text:         "",
		QuestionType: store.QuestionSingle,
		Options: []OptionInput{
			{Text: "Use Amazon S3 for object storage", IsCorrect: true},
			{Text: "Use Amazon EBS for block storage", IsCorrect: true},
		},
	})
	var verr *ErrValidation
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
	joined := strings.Join(verr.Problems, "; ")
	if !strings.Contains(joined, "text is required") {
		t.Errorf("problems %v missing text check", verr.Problems)
	}
	if !strings.Contains(joined, "exactly 1 correct") {
		t.Errorf("problems %v missing correct-count check", verr.Problems)
	}
}

func TestCreateQuestionTopicOwnership(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	exam := mustExam(t, svc)
	other, err := svc.CreateExam(ctx, CreateExamInput{Name: "Azure Fundamentals"})
	if err != nil {
		t.Fatalf("CreateExam: %v", err)
	}
	foreign, err := svc.CreateTopic(ctx, CreateTopicInput{ExamID: other.ID, Name: "Identity"})
	if err != nil {
		t.Fatalf("CreateTopic: %v", err)
	}

	_, err = svc.CreateQuestion(ctx, CreateQuestionInput{
		ExamID:       exam.ID,
		Text:         "Which service stores objects durably?",
		QuestionType: store.QuestionSingle,
		TopicIDs:     []string{foreign.ID, "ghost-topic"},
		Options:      balancedInputs(),
	})
	var verr *ErrValidation
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
	joined := strings.Join(verr.Problems, "; ")
	if !strings.Contains(joined, "different exam") {
		t.Errorf("problems %v missing ownership check", verr.Problems)
	}
	if !strings.Contains(joined, "not found") {
		t.Errorf("problems %v missing unknown-topic check", verr.Problems)
	}
}

func TestCreateQuestionClearsChooseCountForOtherTypes(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	exam := mustExam(t, svc)

	q, err := svc.CreateQuestion(ctx, CreateQuestionInput{
		ExamID:       exam.ID,
		Text:         "Select everything that stores data.",
		QuestionType: store.QuestionSelectAll,
		ChooseCount:  3,
		Options: []OptionInput{
			{Text: "Use Amazon S3 for object storage", IsCorrect: true},
			{Text: "Use Amazon EBS for block storage", IsCorrect: true},
			{Text: "Use Amazon EFS for shared files", IsCorrect: true},
			{Text: "Use Amazon SQS for queue buffers", DistractorReason: "SQS moves messages, it stores nothing durably"},
		},
	})
	if err != nil {
		t.Fatalf("CreateQuestion: %v", err)
	}
	if q.ChooseCount != 0 {
		t.Errorf("ChooseCount = %d, want 0 for select_all", q.ChooseCount)
	}
}

func TestQuestionsLimitBounds(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	exam := mustExam(t, svc)
	mustQuestion(t, svc, exam.ID)

	// Zero limit falls back to the default.
	qs, err := svc.Questions(ctx, store.QuestionFilter{ExamID: exam.ID})
	if err != nil {
		t.Fatalf("Questions: %v", err)
	}
	if len(qs) != 1 {
		t.Fatalf("len = %d, want 1", len(qs))
	}

	if _, err := svc.Questions(ctx, store.QuestionFilter{Limit: MaxListLimit + 1}); err == nil {
		t.Error("limit above cap accepted")
	}
	if _, err := svc.Questions(ctx, store.QuestionFilter{Offset: -1}); err == nil {
		t.Error("negative offset accepted")
	}
	if _, err := svc.Questions(ctx, store.QuestionFilter{Difficulty: "impossible"}); err == nil {
		t.Error("unknown difficulty accepted")
	}
}

func TestUpdateQuestionRequiresAField(t *testing.T) {
	svc, _ := newTestService()
	exam := mustExam(t, svc)
	q := mustQuestion(t, svc, exam.ID)

	_, err := svc.UpdateQuestion(context.Background(), store.QuestionUpdate{ID: q.ID})
	var verr *ErrValidation
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
}

func TestUpdateQuestionAppliesEdit(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	exam := mustExam(t, svc)
	q := mustQuestion(t, svc, exam.ID)

	hard := store.DifficultyHard
	updated, err := svc.UpdateQuestion(ctx, store.QuestionUpdate{ID: q.ID, Difficulty: &hard})
	if err != nil {
		t.Fatalf("UpdateQuestion: %v", err)
	}
	if updated.Difficulty != store.DifficultyHard {
		t.Errorf("Difficulty = %q, want hard", updated.Difficulty)
	}

	bad := "impossible"
	if _, err := svc.UpdateQuestion(ctx, store.QuestionUpdate{ID: q.ID, Difficulty: &bad}); err == nil {
		t.Error("unknown difficulty accepted")
	}

	_, err = svc.UpdateQuestion(ctx, store.QuestionUpdate{ID: "ghost", Difficulty: &hard})
	var nf *ErrNotFound
	if !errors.As(err, &nf) {
		t.Fatalf("unknown id err = %v, want ErrNotFound", err)
	}
}

func TestUpdateOptionsReturnsFreshReport(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	exam := mustExam(t, svc)

	q, err := svc.CreateQuestion(ctx, CreateQuestionInput{
		ExamID:       exam.ID,
		Text:         "Where should archives go?",
		QuestionType: store.QuestionSingle,
		Options:      biasedInputs(),
		AllowBiased:  true,
	})
	if err != nil {
		t.Fatalf("CreateQuestion: %v", err)
	}

	// Rebalance every option to even lengths.
	balanced := balancedInputs()
	updates := make([]store.OptionUpdate, 0, len(q.Options))
	for i := range q.Options {
		text := balanced[i].Text
		reason := balanced[i].DistractorReason
		updates = append(updates, store.OptionUpdate{
			ID:               q.Options[i].ID,
			Text:             &text,
			DistractorReason: &reason,
		})
	}

	res, err := svc.UpdateOptions(ctx, q.ID, updates)
	if err != nil {
		t.Fatalf("UpdateOptions: %v", err)
	}
	if !res.Report.Valid {
		t.Errorf("rebalanced report still invalid: %+v", res.Report.Issues)
	}
	if res.Question.Options[0].Text != balanced[0].Text {
		t.Errorf("option text = %q, want %q", res.Question.Options[0].Text, balanced[0].Text)
	}
}

func TestUpdateOptionsRejectsBreakingAnswerSet(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	exam := mustExam(t, svc)
	q := mustQuestion(t, svc, exam.ID)

	// Flipping a distractor to correct would give a single-choice
	// question two correct options.
	yes := true
	_, err := svc.UpdateOptions(ctx, q.ID, []store.OptionUpdate{
		{ID: q.Options[1].ID, IsCorrect: &yes},
	})
	var verr *ErrValidation
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}

	stored, _ := repo.QuestionByID(ctx, q.ID)
	if stored.Options[1].IsCorrect {
		t.Error("rejected edit reached the store")
	}
}

func TestUpdateOptionsForeignOption(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	exam := mustExam(t, svc)
	first := mustQuestion(t, svc, exam.ID)
	second, err := svc.CreateQuestion(ctx, CreateQuestionInput{
		ExamID:       exam.ID,
		Text:         "Which service serves shared file systems?",
		QuestionType: store.QuestionSingle,
		Options:      balancedInputs(),
	})
	if err != nil {
		t.Fatalf("CreateQuestion: %v", err)
	}

	text := "Rewritten"
	_, err = svc.UpdateOptions(ctx, first.ID, []store.OptionUpdate{
		{ID: second.Options[0].ID, Text: &text},
	})
	var verr *ErrValidation
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
	if !strings.Contains(strings.Join(verr.Problems, "; "), "does not belong") {
		t.Errorf("problems = %v, want ownership message", verr.Problems)
	}
}

func TestDeleteQuestion(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	exam := mustExam(t, svc)
	q := mustQuestion(t, svc, exam.ID)

	if err := svc.DeleteQuestion(ctx, q.ID); err != nil {
		t.Fatalf("DeleteQuestion: %v", err)
	}

	err := svc.DeleteQuestion(ctx, q.ID)
	var nf *ErrNotFound
	if !errors.As(err, &nf) {
		t.Fatalf("second delete err = %v, want ErrNotFound", err)
	}
}

func TestStorageFailuresWrapped(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	exam := mustExam(t, svc)

	repo.failOp = "create question"
	_, err := svc.CreateQuestion(ctx, CreateQuestionInput{
		ExamID:       exam.ID,
		Text:         "Which service stores objects durably?",
		QuestionType: store.QuestionSingle,
		Options:      balancedInputs(),
	})
	var serr *ErrStorage
	if !errors.As(err, &serr) {
		t.Fatalf("err = %v, want ErrStorage", err)
	}
}
