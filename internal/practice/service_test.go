package practice

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jfarleigh/certrun/internal/store"
)

const (
	testExamID  = "exam-1"
	testTopicID = "topic-1"
)

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// mockBankRepo serves a fixed question list in creation order.
type mockBankRepo struct {
	exams     map[string]*store.Exam
	topics    map[string]*store.Topic
	questions []*store.Question
}

func (m *mockBankRepo) CreateExam(_ context.Context, _ store.Exam) (*store.Exam, error) {
	return nil, nil
}

func (m *mockBankRepo) ExamByID(_ context.Context, id string) (*store.Exam, error) {
	return m.exams[id], nil
}

func (m *mockBankRepo) ExamByName(_ context.Context, _ string) (*store.Exam, error) {
	return nil, nil
}

func (m *mockBankRepo) Exams(_ context.Context) ([]*store.Exam, error) {
	return nil, nil
}

func (m *mockBankRepo) CreateTopic(_ context.Context, _ store.Topic) (*store.Topic, error) {
	return nil, nil
}

func (m *mockBankRepo) TopicByID(_ context.Context, id string) (*store.Topic, error) {
	return m.topics[id], nil
}

func (m *mockBankRepo) Topics(_ context.Context, _ string) ([]*store.Topic, error) {
	return nil, nil
}

func (m *mockBankRepo) CreateQuestion(_ context.Context, _ store.Question) (*store.Question, error) {
	return nil, nil
}

func (m *mockBankRepo) QuestionByID(_ context.Context, id string) (*store.Question, error) {
	for _, q := range m.questions {
		if q.ID == id {
			return q, nil
		}
	}
	return nil, nil
}

func (m *mockBankRepo) Questions(_ context.Context, f store.QuestionFilter) ([]*store.Question, error) {
	var out []*store.Question
	for _, q := range m.questions {
		if f.ExamID != "" && q.ExamID != f.ExamID {
			continue
		}
		if f.TopicID != "" && !containsID(q.TopicIDs, f.TopicID) {
			continue
		}
		out = append(out, q)
	}
	return out, nil
}

func (m *mockBankRepo) UpdateQuestion(_ context.Context, _ store.QuestionUpdate) (*store.Question, error) {
	return nil, nil
}

func (m *mockBankRepo) UpdateOptions(_ context.Context, _ string, _ []store.OptionUpdate) error {
	return nil
}

func (m *mockBankRepo) DeleteQuestion(_ context.Context, _ string) (bool, error) {
	return false, nil
}

func (m *mockBankRepo) SearchQuestions(_ context.Context, _, _ string, _ int) ([]*store.Question, error) {
	return nil, nil
}

func (m *mockBankRepo) ImportBundle(_ context.Context, _ store.Bundle) (*store.Exam, error) {
	return nil, nil
}

// mockHistoryRepo folds attempts into stats in memory, mirroring the
// transactional coupling of the real store: a CompleteSession write
// flips the session row as part of the same call.
type mockHistoryRepo struct {
	stats     map[string]*store.Stat
	attempts  []*store.Attempt
	sessions  *mockSessionRepo
	recordErr error

	topicAccuracy []*store.TopicAccuracy
	weakest       []*store.QuestionAccuracy
	weakestLimit  int
}

func (m *mockHistoryRepo) Stat(_ context.Context, questionID string) (*store.Stat, error) {
	return m.stats[questionID], nil
}

func (m *mockHistoryRepo) Stats(_ context.Context, questionIDs []string) (map[string]*store.Stat, error) {
	out := make(map[string]*store.Stat)
	for _, id := range questionIDs {
		if st := m.stats[id]; st != nil {
			out[id] = st
		}
	}
	return out, nil
}

func (m *mockHistoryRepo) RecordAttempt(_ context.Context, in store.RecordAttemptInput) (*store.Stat, error) {
	if m.recordErr != nil {
		return nil, m.recordErr
	}
	m.attempts = append(m.attempts, &store.Attempt{
		ID:               fmt.Sprintf("att-%d", len(m.attempts)+1),
		SessionID:        in.SessionID,
		QuestionID:       in.QuestionID,
		IsCorrect:        in.IsCorrect,
		ElapsedSeconds:   in.ElapsedSeconds,
		SubmittedOptions: in.SubmittedOptions,
		AnsweredAt:       fixedNow,
	})

	st := m.stats[in.QuestionID]
	if st == nil {
		st = &store.Stat{QuestionID: in.QuestionID}
		m.stats[in.QuestionID] = st
	}
	st.AttemptCount++
	if in.IsCorrect {
		st.CorrectCount++
	}
	st.TotalElapsedSeconds += in.ElapsedSeconds
	last := fixedNow
	st.LastAttemptedAt = &last

	if in.CompleteSession && m.sessions != nil {
		if sess := m.sessions.sessions[in.SessionID]; sess != nil && sess.Status == store.SessionActive {
			sess.Status = store.SessionCompleted
			end := fixedNow
			sess.EndedAt = &end
		}
	}

	out := *st
	return &out, nil
}

func (m *mockHistoryRepo) AttemptsBySession(_ context.Context, sessionID string) ([]*store.Attempt, error) {
	var out []*store.Attempt
	for _, a := range m.attempts {
		if a.SessionID == sessionID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *mockHistoryRepo) TopicAccuracy(_ context.Context, _ string) ([]*store.TopicAccuracy, error) {
	return m.topicAccuracy, nil
}

func (m *mockHistoryRepo) WeakestQuestions(_ context.Context, _ string, limit int) ([]*store.QuestionAccuracy, error) {
	m.weakestLimit = limit
	return m.weakest, nil
}

func (m *mockHistoryRepo) RebuildStats(_ context.Context) error {
	return nil
}

// mockSessionRepo stores sessions in memory in creation order.
type mockSessionRepo struct {
	seq      int
	sessions map[string]*store.Session
	order    []string
}

func (m *mockSessionRepo) CreateSession(_ context.Context, s store.Session) (*store.Session, error) {
	m.seq++
	s.ID = fmt.Sprintf("sess-%d", m.seq)
	s.Status = store.SessionActive
	s.StartedAt = fixedNow
	stored := s
	m.sessions[s.ID] = &stored
	m.order = append(m.order, s.ID)
	return &stored, nil
}

func (m *mockSessionRepo) SessionByID(_ context.Context, id string) (*store.Session, error) {
	return m.sessions[id], nil
}

func (m *mockSessionRepo) EndSession(_ context.Context, id, status string, at time.Time) (bool, error) {
	sess := m.sessions[id]
	if sess == nil || sess.Status != store.SessionActive {
		return false, nil
	}
	sess.Status = status
	ended := at
	sess.EndedAt = &ended
	return true, nil
}

func (m *mockSessionRepo) RecentSessions(_ context.Context, examID string, limit int) ([]*store.Session, error) {
	var out []*store.Session
	for i := len(m.order) - 1; i >= 0; i-- {
		sess := m.sessions[m.order[i]]
		if examID != "" && sess.ExamID != examID {
			continue
		}
		out = append(out, sess)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

type fixture struct {
	bank     *mockBankRepo
	history  *mockHistoryRepo
	sessions *mockSessionRepo
	svc      *Service
}

// newFixture builds a service over mocks with questionCount questions
// named q-01, q-02, ... Each has four options, the first correct; the
// first two questions carry the test topic.
func newFixture(questionCount int) *fixture {
	bank := &mockBankRepo{
		exams: map[string]*store.Exam{
			testExamID: {ID: testExamID, Name: "Test Exam"},
		},
		topics: map[string]*store.Topic{
			testTopicID: {ID: testTopicID, ExamID: testExamID, Name: "first topic"},
		},
	}
	for i := 0; i < questionCount; i++ {
		id := fmt.Sprintf("q-%02d", i+1)
		q := &store.Question{
			ID:           id,
			ExamID:       testExamID,
			Text:         "question " + id,
			QuestionType: store.QuestionSingle,
			Explanation:  "explanation " + id,
			Options: []store.AnswerOption{
				{ID: id + "-a", QuestionID: id, Text: "right", IsCorrect: true, Position: 0},
				{ID: id + "-b", QuestionID: id, Text: "wrong b", Position: 1},
				{ID: id + "-c", QuestionID: id, Text: "wrong c", Position: 2},
				{ID: id + "-d", QuestionID: id, Text: "wrong d", Position: 3},
			},
		}
		if i < 2 {
			q.TopicIDs = []string{testTopicID}
		}
		bank.questions = append(bank.questions, q)
	}

	sessions := &mockSessionRepo{sessions: make(map[string]*store.Session)}
	history := &mockHistoryRepo{stats: make(map[string]*store.Stat), sessions: sessions}

	svc := NewService(bank, history, sessions)
	svc.seed = func() int64 { return 1 }
	svc.now = func() time.Time { return fixedNow }
	svc.lockWait = 50 * time.Millisecond

	return &fixture{bank: bank, history: history, sessions: sessions, svc: svc}
}

func (f *fixture) start(t *testing.T, in StartInput) *store.Session {
	t.Helper()
	sess, err := f.svc.Start(context.Background(), in)
	if err != nil {
		t.Fatalf("Start(%+v): %v", in, err)
	}
	return sess
}

func TestStart_UnknownExam(t *testing.T) {
	f := newFixture(3)

	_, err := f.svc.Start(context.Background(), StartInput{ExamID: "ghost"})
	var nf *ErrNotFound
	if !errors.As(err, &nf) {
		t.Fatalf("Start error = %v, want ErrNotFound", err)
	}
	if nf.Kind != "exam" || nf.ID != "ghost" {
		t.Errorf("not found = %s %s, want exam ghost", nf.Kind, nf.ID)
	}
}

func TestStart_UnknownTopic(t *testing.T) {
	f := newFixture(3)
	f.bank.topics["topic-foreign"] = &store.Topic{ID: "topic-foreign", ExamID: "exam-2"}

	for _, topicID := range []string{"ghost", "topic-foreign"} {
		_, err := f.svc.Start(context.Background(), StartInput{ExamID: testExamID, TopicID: topicID})
		var nf *ErrNotFound
		if !errors.As(err, &nf) {
			t.Fatalf("Start(topic %s) error = %v, want ErrNotFound", topicID, err)
		}
		if nf.Kind != "topic" {
			t.Errorf("not found kind = %s, want topic", nf.Kind)
		}
	}
}

func TestStart_EmptyPool(t *testing.T) {
	f := newFixture(0)

	_, err := f.svc.Start(context.Background(), StartInput{ExamID: testExamID})
	var empty *ErrEmptyPool
	if !errors.As(err, &empty) {
		t.Fatalf("Start error = %v, want ErrEmptyPool", err)
	}
	if empty.ExamID != testExamID {
		t.Errorf("empty pool exam = %s, want %s", empty.ExamID, testExamID)
	}
}

func TestStart_EmptyPoolWithTopicFilter(t *testing.T) {
	f := newFixture(3)
	f.bank.topics["topic-bare"] = &store.Topic{ID: "topic-bare", ExamID: testExamID}

	_, err := f.svc.Start(context.Background(), StartInput{ExamID: testExamID, TopicID: "topic-bare"})
	var empty *ErrEmptyPool
	if !errors.As(err, &empty) {
		t.Fatalf("Start error = %v, want ErrEmptyPool", err)
	}
	if empty.TopicID != "topic-bare" {
		t.Errorf("empty pool topic = %s, want topic-bare", empty.TopicID)
	}
}

func TestStart_RejectsUnknownMode(t *testing.T) {
	f := newFixture(3)

	_, err := f.svc.Start(context.Background(), StartInput{ExamID: testExamID, Mode: "exam-cram"})
	if err == nil {
		t.Fatal("unknown mode accepted")
	}
	if len(f.sessions.order) != 0 {
		t.Error("session row created despite rejected mode")
	}
}

func TestStart_PracticeModeFreezesCreationOrder(t *testing.T) {
	f := newFixture(5)

	sess := f.start(t, StartInput{ExamID: testExamID, Mode: store.ModePractice, Size: 3})
	want := []string{"q-01", "q-02", "q-03"}
	if len(sess.Questions) != len(want) {
		t.Fatalf("len(frozen) = %d, want %d", len(sess.Questions), len(want))
	}
	for i, id := range want {
		if sess.Questions[i] != id {
			t.Errorf("frozen[%d] = %s, want %s", i, sess.Questions[i], id)
		}
	}
	if sess.Mode != store.ModePractice {
		t.Errorf("mode = %s, want practice", sess.Mode)
	}
	if sess.SelectionSeed != 1 {
		t.Errorf("selection seed = %d, want the injected 1", sess.SelectionSeed)
	}
}

func TestStart_DefaultsToPracticeModeAndTwentyQuestions(t *testing.T) {
	f := newFixture(25)

	sess := f.start(t, StartInput{ExamID: testExamID})
	if sess.Mode != store.ModePractice {
		t.Errorf("mode = %s, want practice default", sess.Mode)
	}
	if len(sess.Questions) != DefaultSessionSize {
		t.Errorf("len(frozen) = %d, want %d", len(sess.Questions), DefaultSessionSize)
	}
}

func TestStart_TopicFilterNarrowsPool(t *testing.T) {
	f := newFixture(5)

	sess := f.start(t, StartInput{ExamID: testExamID, TopicID: testTopicID, Size: 10})
	if len(sess.Questions) != 2 {
		t.Fatalf("len(frozen) = %d, want the 2 topic questions", len(sess.Questions))
	}
	if sess.Questions[0] != "q-01" || sess.Questions[1] != "q-02" {
		t.Errorf("frozen = %v, want [q-01 q-02]", sess.Questions)
	}
	if sess.TopicID != testTopicID {
		t.Errorf("session topic = %s, want %s", sess.TopicID, testTopicID)
	}
}

func TestStart_SpeedrunExhaustsSmallPool(t *testing.T) {
	f := newFixture(3)

	sess := f.start(t, StartInput{ExamID: testExamID, Mode: store.ModeSpeedrun, Size: 3})
	if len(sess.Questions) != 3 {
		t.Fatalf("len(frozen) = %d, want all 3", len(sess.Questions))
	}
	seen := make(map[string]bool)
	for _, id := range sess.Questions {
		if seen[id] {
			t.Errorf("duplicate id %s in frozen list", id)
		}
		seen[id] = true
	}
	for _, id := range []string{"q-01", "q-02", "q-03"} {
		if !seen[id] {
			t.Errorf("frozen list missing %s", id)
		}
	}
}

func TestStart_SpeedrunCapsAtPoolSize(t *testing.T) {
	f := newFixture(4)

	sess := f.start(t, StartInput{ExamID: testExamID, Mode: store.ModeSpeedrun, Size: 10})
	if len(sess.Questions) != 4 {
		t.Errorf("len(frozen) = %d, want pool size 4", len(sess.Questions))
	}
}

func TestStart_SpeedrunSameSeedSameList(t *testing.T) {
	f := newFixture(8)
	last := fixedNow.Add(-48 * time.Hour)
	f.history.stats["q-03"] = &store.Stat{QuestionID: "q-03", AttemptCount: 10, CorrectCount: 2, LastAttemptedAt: &last}
	f.history.stats["q-05"] = &store.Stat{QuestionID: "q-05", AttemptCount: 4, CorrectCount: 4, LastAttemptedAt: &last}
	f.svc.seed = func() int64 { return 99 }

	first := f.start(t, StartInput{ExamID: testExamID, Mode: store.ModeSpeedrun, Size: 5})
	second := f.start(t, StartInput{ExamID: testExamID, Mode: store.ModeSpeedrun, Size: 5})

	if len(first.Questions) != len(second.Questions) {
		t.Fatalf("lengths differ: %d vs %d", len(first.Questions), len(second.Questions))
	}
	for i := range first.Questions {
		if first.Questions[i] != second.Questions[i] {
			t.Fatalf("draws diverge at %d: %v vs %v", i, first.Questions, second.Questions)
		}
	}
}

func TestStart_SpeedrunPrefersWeakQuestions(t *testing.T) {
	f := newFixture(2)
	last := fixedNow
	f.history.stats["q-01"] = &store.Stat{QuestionID: "q-01", AttemptCount: 10, CorrectCount: 9, LastAttemptedAt: &last}
	f.history.stats["q-02"] = &store.Stat{QuestionID: "q-02", AttemptCount: 10, CorrectCount: 2, LastAttemptedAt: &last}

	weakFirst := 0
	for i := 0; i < 300; i++ {
		seed := int64(i)
		f.svc.seed = func() int64 { return seed }
		sess := f.start(t, StartInput{ExamID: testExamID, Mode: store.ModeSpeedrun, Size: 1})
		if sess.Questions[0] == "q-02" {
			weakFirst++
		}
	}
	if weakFirst <= 150 {
		t.Errorf("weak question drawn first %d/300 times, want a clear majority", weakFirst)
	}
}

func TestNext_ServesFrozenOrderWithoutAdvancing(t *testing.T) {
	f := newFixture(3)
	ctx := context.Background()
	sess := f.start(t, StartInput{ExamID: testExamID, Size: 3})

	first, err := f.svc.Next(ctx, sess.ID)
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if first.Question.ID != "q-01" || first.Position != 1 || first.Total != 3 {
		t.Errorf("Next = %s at %d/%d, want q-01 at 1/3", first.Question.ID, first.Position, first.Total)
	}

	// Next is a read; asking again without recording must not advance.
	again, err := f.svc.Next(ctx, sess.ID)
	if err != nil {
		t.Fatalf("Next (again): %v", err)
	}
	if again.Question.ID != "q-01" {
		t.Errorf("repeated Next = %s, want q-01 unchanged", again.Question.ID)
	}

	if _, err := f.svc.Record(ctx, RecordInput{
		SessionID:        sess.ID,
		QuestionID:       "q-01",
		SubmittedOptions: []string{"q-01-a"},
	}); err != nil {
		t.Fatalf("Record: %v", err)
	}

	after, err := f.svc.Next(ctx, sess.ID)
	if err != nil {
		t.Fatalf("Next (after record): %v", err)
	}
	if after.Question.ID != "q-02" || after.Position != 2 {
		t.Errorf("Next after record = %s at %d, want q-02 at 2", after.Question.ID, after.Position)
	}
}

func TestNext_UnknownSession(t *testing.T) {
	f := newFixture(1)

	_, err := f.svc.Next(context.Background(), "ghost")
	var nf *ErrNotFound
	if !errors.As(err, &nf) {
		t.Fatalf("Next error = %v, want ErrNotFound", err)
	}
	if nf.Kind != "session" {
		t.Errorf("not found kind = %s, want session", nf.Kind)
	}
}

func TestNext_CompletedSession(t *testing.T) {
	f := newFixture(1)
	ctx := context.Background()
	sess := f.start(t, StartInput{ExamID: testExamID, Size: 1})

	result, err := f.svc.Record(ctx, RecordInput{
		SessionID:        sess.ID,
		QuestionID:       "q-01",
		SubmittedOptions: []string{"q-01-a"},
	})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if !result.SessionComplete {
		t.Fatal("final answer did not complete the session")
	}

	_, err = f.svc.Next(ctx, sess.ID)
	var closed *ErrSessionClosed
	if !errors.As(err, &closed) {
		t.Fatalf("Next on completed session = %v, want ErrSessionClosed", err)
	}
	if closed.Status != store.SessionCompleted {
		t.Errorf("closed status = %s, want completed", closed.Status)
	}
}

func TestNext_AbandonedSession(t *testing.T) {
	f := newFixture(2)
	ctx := context.Background()
	sess := f.start(t, StartInput{ExamID: testExamID, Size: 2})

	if _, err := f.svc.End(ctx, sess.ID, store.SessionAbandoned); err != nil {
		t.Fatalf("End: %v", err)
	}

	_, err := f.svc.Next(ctx, sess.ID)
	var closed *ErrSessionClosed
	if !errors.As(err, &closed) {
		t.Fatalf("Next on abandoned session = %v, want ErrSessionClosed", err)
	}
	if closed.Status != store.SessionAbandoned {
		t.Errorf("closed status = %s, want abandoned", closed.Status)
	}
}

func TestRecord_GradesBySetEquality(t *testing.T) {
	f := newFixture(1)
	ctx := context.Background()

	// Rework the fixture question into a choose-2 with options a and b
	// correct.
	q := f.bank.questions[0]
	q.QuestionType = store.QuestionChooseN
	q.ChooseCount = 2
	q.Options[1].IsCorrect = true

	tests := []struct {
		name      string
		submitted []string
		want      bool
	}{
		{"both correct in order", []string{"q-01-a", "q-01-b"}, true},
		{"both correct reversed", []string{"q-01-b", "q-01-a"}, true},
		{"only one of two", []string{"q-01-a"}, false},
		{"correct plus extra", []string{"q-01-a", "q-01-b", "q-01-c"}, false},
		{"nothing submitted", nil, false},
	}
	for _, tt := range tests {
		sess := f.start(t, StartInput{ExamID: testExamID, Size: 1})
		result, err := f.svc.Record(ctx, RecordInput{
			SessionID:        sess.ID,
			QuestionID:       "q-01",
			SubmittedOptions: tt.submitted,
		})
		if err != nil {
			t.Fatalf("%s: Record: %v", tt.name, err)
		}
		if result.IsCorrect != tt.want {
			t.Errorf("%s: IsCorrect = %v, want %v", tt.name, result.IsCorrect, tt.want)
		}
	}
}

func TestRecord_ResultCarriesGradingAndStat(t *testing.T) {
	f := newFixture(1)
	ctx := context.Background()
	sess := f.start(t, StartInput{ExamID: testExamID, Size: 1})

	result, err := f.svc.Record(ctx, RecordInput{
		SessionID:        sess.ID,
		QuestionID:       "q-01",
		SubmittedOptions: []string{"q-01-a"},
		ElapsedSeconds:   30,
	})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if !result.IsCorrect {
		t.Error("correct submission graded wrong")
	}
	if len(result.CorrectOptionIDs) != 1 || result.CorrectOptionIDs[0] != "q-01-a" {
		t.Errorf("correct option ids = %v, want [q-01-a]", result.CorrectOptionIDs)
	}
	if result.Explanation != "explanation q-01" {
		t.Errorf("explanation = %q, want the question's", result.Explanation)
	}
	if result.Stat == nil || result.Stat.AttemptCount != 1 || result.Stat.CorrectCount != 1 {
		t.Errorf("stat = %+v, want 1 attempt 1 correct", result.Stat)
	}
	if result.Stat.TotalElapsedSeconds != 30 {
		t.Errorf("stat elapsed = %v, want 30", result.Stat.TotalElapsedSeconds)
	}

	stored := f.sessions.sessions[sess.ID]
	if stored.Status != store.SessionCompleted {
		t.Errorf("session status = %s, want completed after final answer", stored.Status)
	}
	if stored.EndedAt == nil {
		t.Error("ended_at not set on completion")
	}
}

func TestRecord_WrongAnswer(t *testing.T) {
	f := newFixture(2)
	ctx := context.Background()
	sess := f.start(t, StartInput{ExamID: testExamID, Size: 2})

	result, err := f.svc.Record(ctx, RecordInput{
		SessionID:        sess.ID,
		QuestionID:       "q-01",
		SubmittedOptions: []string{"q-01-c"},
	})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if result.IsCorrect {
		t.Error("wrong submission graded correct")
	}
	if result.SessionComplete {
		t.Error("session completed with one of two answered")
	}
	if st := f.history.stats["q-01"]; st.AttemptCount != 1 || st.CorrectCount != 0 {
		t.Errorf("stat = %d/%d, want 0/1", st.CorrectCount, st.AttemptCount)
	}
}

func TestRecord_OutOfOrder(t *testing.T) {
	f := newFixture(3)
	sess := f.start(t, StartInput{ExamID: testExamID, Size: 3})

	_, err := f.svc.Record(context.Background(), RecordInput{
		SessionID:        sess.ID,
		QuestionID:       "q-02",
		SubmittedOptions: []string{"q-02-a"},
	})
	var ooo *ErrOutOfOrder
	if !errors.As(err, &ooo) {
		t.Fatalf("Record error = %v, want ErrOutOfOrder", err)
	}
	if ooo.Expected != "q-01" || ooo.Got != "q-02" {
		t.Errorf("out of order = expected %s got %s, want expected q-01 got q-02", ooo.Expected, ooo.Got)
	}
	if len(f.history.attempts) != 0 {
		t.Errorf("%d attempts appended on rejected submission, want 0", len(f.history.attempts))
	}
	if len(f.history.stats) != 0 {
		t.Error("stat mutated on rejected submission")
	}
}

func TestRecord_ClosedSession(t *testing.T) {
	f := newFixture(2)
	ctx := context.Background()
	sess := f.start(t, StartInput{ExamID: testExamID, Size: 2})

	if _, err := f.svc.End(ctx, sess.ID, store.SessionAbandoned); err != nil {
		t.Fatalf("End: %v", err)
	}

	_, err := f.svc.Record(ctx, RecordInput{
		SessionID:        sess.ID,
		QuestionID:       "q-01",
		SubmittedOptions: []string{"q-01-a"},
	})
	var closed *ErrSessionClosed
	if !errors.As(err, &closed) {
		t.Fatalf("Record on abandoned session = %v, want ErrSessionClosed", err)
	}
	if len(f.history.attempts) != 0 {
		t.Error("attempt appended to terminal session")
	}
}

func TestRecord_UnknownSession(t *testing.T) {
	f := newFixture(1)

	_, err := f.svc.Record(context.Background(), RecordInput{SessionID: "ghost", QuestionID: "q-01"})
	var nf *ErrNotFound
	if !errors.As(err, &nf) {
		t.Fatalf("Record error = %v, want ErrNotFound", err)
	}
}

func TestRecord_BusyWhenLockHeld(t *testing.T) {
	f := newFixture(1)
	ctx := context.Background()
	sess := f.start(t, StartInput{ExamID: testExamID, Size: 1})

	release, err := f.svc.locks.acquire(ctx, sess.ID, time.Second)
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	defer release()

	_, err = f.svc.Record(ctx, RecordInput{
		SessionID:        sess.ID,
		QuestionID:       "q-01",
		SubmittedOptions: []string{"q-01-a"},
	})
	var busy *ErrBusy
	if !errors.As(err, &busy) {
		t.Fatalf("Record under held lock = %v, want ErrBusy", err)
	}
	if len(f.history.attempts) != 0 {
		t.Error("attempt appended despite busy lock")
	}
}

func TestRecord_StorageFailurePropagates(t *testing.T) {
	f := newFixture(1)
	sess := f.start(t, StartInput{ExamID: testExamID, Size: 1})

	cause := errors.New("disk full")
	f.history.recordErr = cause

	_, err := f.svc.Record(context.Background(), RecordInput{
		SessionID:        sess.ID,
		QuestionID:       "q-01",
		SubmittedOptions: []string{"q-01-a"},
	})
	var storage *ErrStorage
	if !errors.As(err, &storage) {
		t.Fatalf("Record error = %v, want ErrStorage", err)
	}
	if !errors.Is(err, cause) {
		t.Error("ErrStorage does not unwrap to the underlying cause")
	}
}

func TestEnd_Idempotent(t *testing.T) {
	f := newFixture(2)
	ctx := context.Background()
	sess := f.start(t, StartInput{ExamID: testExamID, Size: 2})

	first, err := f.svc.End(ctx, sess.ID, store.SessionAbandoned)
	if err != nil {
		t.Fatalf("End: %v", err)
	}
	if first.Status != store.SessionAbandoned {
		t.Errorf("status = %s, want abandoned", first.Status)
	}
	if first.EndedAt == nil {
		t.Error("ended_at not set")
	}

	// Ending again, even with a different reason, is a no-op.
	second, err := f.svc.End(ctx, sess.ID, store.SessionCompleted)
	if err != nil {
		t.Fatalf("End (again): %v", err)
	}
	if second.Status != store.SessionAbandoned {
		t.Errorf("status after second end = %s, want abandoned unchanged", second.Status)
	}
}

func TestEnd_RejectsUnknownReason(t *testing.T) {
	f := newFixture(1)
	sess := f.start(t, StartInput{ExamID: testExamID, Size: 1})

	if _, err := f.svc.End(context.Background(), sess.ID, "rage-quit"); err == nil {
		t.Error("unknown end reason accepted")
	}
}

func TestEnd_UnknownSession(t *testing.T) {
	f := newFixture(1)

	_, err := f.svc.End(context.Background(), "ghost", store.SessionAbandoned)
	var nf *ErrNotFound
	if !errors.As(err, &nf) {
		t.Fatalf("End error = %v, want ErrNotFound", err)
	}
}

func TestResume_FreshProcessServesSameNext(t *testing.T) {
	f := newFixture(3)
	ctx := context.Background()
	sess := f.start(t, StartInput{ExamID: testExamID, Size: 3})

	if _, err := f.svc.Record(ctx, RecordInput{
		SessionID:        sess.ID,
		QuestionID:       "q-01",
		SubmittedOptions: []string{"q-01-a"},
	}); err != nil {
		t.Fatalf("Record: %v", err)
	}

	before, err := f.svc.Next(ctx, sess.ID)
	if err != nil {
		t.Fatalf("Next (before restart): %v", err)
	}

	// A new service over the same durable state is a process restart:
	// no in-memory carryover, locks and rng included.
	restarted := NewService(f.bank, f.history, f.sessions)
	after, err := restarted.Next(ctx, sess.ID)
	if err != nil {
		t.Fatalf("Next (after restart): %v", err)
	}

	if after.Question.ID != before.Question.ID {
		t.Errorf("restart changed next question: %s vs %s", after.Question.ID, before.Question.ID)
	}
	if after.Position != before.Position || after.Total != before.Total {
		t.Errorf("restart changed progress: %d/%d vs %d/%d",
			after.Position, after.Total, before.Position, before.Total)
	}
}

func TestResults_SummaryInFrozenOrder(t *testing.T) {
	f := newFixture(3)
	ctx := context.Background()
	sess := f.start(t, StartInput{ExamID: testExamID, Size: 3})

	if _, err := f.svc.Record(ctx, RecordInput{
		SessionID:        sess.ID,
		QuestionID:       "q-01",
		SubmittedOptions: []string{"q-01-a"},
		ElapsedSeconds:   10,
	}); err != nil {
		t.Fatalf("Record q-01: %v", err)
	}
	if _, err := f.svc.Record(ctx, RecordInput{
		SessionID:        sess.ID,
		QuestionID:       "q-02",
		SubmittedOptions: []string{"q-02-d"},
		ElapsedSeconds:   20,
	}); err != nil {
		t.Fatalf("Record q-02: %v", err)
	}

	summary, err := f.svc.Results(ctx, sess.ID)
	if err != nil {
		t.Fatalf("Results: %v", err)
	}
	if summary.Total != 3 || summary.Answered != 2 || summary.Correct != 1 {
		t.Errorf("summary = %d answered %d correct of %d, want 2/1/3",
			summary.Answered, summary.Correct, summary.Total)
	}
	if summary.TotalElapsedSeconds != 30 {
		t.Errorf("total elapsed = %v, want 30", summary.TotalElapsedSeconds)
	}
	if summary.State != StateInProgress {
		t.Errorf("state = %s, want in_progress", summary.State)
	}

	if len(summary.Results) != 3 {
		t.Fatalf("len(results) = %d, want 3", len(summary.Results))
	}
	r := summary.Results
	if r[0].QuestionID != "q-01" || !r[0].Answered || !r[0].IsCorrect {
		t.Errorf("results[0] = %+v, want answered correct q-01", r[0])
	}
	if r[1].QuestionID != "q-02" || !r[1].Answered || r[1].IsCorrect {
		t.Errorf("results[1] = %+v, want answered wrong q-02", r[1])
	}
	if r[2].QuestionID != "q-03" || r[2].Answered {
		t.Errorf("results[2] = %+v, want unanswered q-03", r[2])
	}
	if r[0].Text != "question q-01" {
		t.Errorf("results[0] text = %q, want question text", r[0].Text)
	}
}

func TestSessions_NewestFirst(t *testing.T) {
	f := newFixture(2)

	f.start(t, StartInput{ExamID: testExamID, Size: 1})
	second := f.start(t, StartInput{ExamID: testExamID, Size: 1})
	third := f.start(t, StartInput{ExamID: testExamID, Size: 1})

	recent, err := f.svc.Sessions(context.Background(), testExamID, 2)
	if err != nil {
		t.Fatalf("Sessions: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("len(recent) = %d, want 2", len(recent))
	}
	if recent[0].ID != third.ID || recent[1].ID != second.ID {
		t.Errorf("recent = [%s %s], want newest first", recent[0].ID, recent[1].ID)
	}
}

func TestStats_AggregatesHistory(t *testing.T) {
	f := newFixture(3)
	f.history.topicAccuracy = []*store.TopicAccuracy{
		{TopicID: testTopicID, TopicName: "first topic", QuestionCount: 2, AttemptCount: 4, CorrectCount: 1},
	}
	f.history.weakest = []*store.QuestionAccuracy{
		{QuestionID: "q-01", Text: "question q-01", AttemptCount: 4, CorrectCount: 1, Accuracy: 0.25},
	}

	stats, err := f.svc.Stats(context.Background(), testExamID, 0)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.Exam.ID != testExamID {
		t.Errorf("exam = %q, want %q", stats.Exam.ID, testExamID)
	}
	if len(stats.Topics) != 1 || stats.Topics[0].TopicName != "first topic" {
		t.Errorf("topics = %+v, want the seeded row", stats.Topics)
	}
	if len(stats.Weakest) != 1 || stats.Weakest[0].QuestionID != "q-01" {
		t.Errorf("weakest = %+v, want q-01", stats.Weakest)
	}
	if f.history.weakestLimit != DefaultWeakestLimit {
		t.Errorf("weakest limit = %d, want default %d", f.history.weakestLimit, DefaultWeakestLimit)
	}
}

func TestStats_UnknownExam(t *testing.T) {
	f := newFixture(1)

	_, err := f.svc.Stats(context.Background(), "ghost", 0)
	var notFound *ErrNotFound
	if !errors.As(err, &notFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if notFound.Kind != "exam" {
		t.Errorf("kind = %q, want exam", notFound.Kind)
	}
}
