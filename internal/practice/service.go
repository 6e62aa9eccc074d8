package practice

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/jfarleigh/certrun/internal/selection"
	"github.com/jfarleigh/certrun/internal/store"
)

// DefaultSessionSize is the frozen-list length used when the caller
// does not request a size.
const DefaultSessionSize = 20

// DefaultLockWait bounds how long a mutating call waits for its
// session lock before failing busy.
const DefaultLockWait = 2 * time.Second

// Service is the session orchestrator. It freezes a session's question
// list once at start, serves questions strictly in frozen order, and
// records answers together with their stat updates. All progress is a
// projection of durable state, so any process can pick up any session.
type Service struct {
	bank     store.BankRepo
	history  store.HistoryRepo
	sessions store.SessionRepo

	weights  selection.Config
	locks    *sessionLocks
	lockWait time.Duration
	seed     func() int64
	now      func() time.Time
}

// NewService wires the orchestrator over the store repositories.
func NewService(bank store.BankRepo, history store.HistoryRepo, sessions store.SessionRepo) *Service {
	return &Service{
		bank:     bank,
		history:  history,
		sessions: sessions,
		weights:  selection.DefaultConfig(),
		locks:    newSessionLocks(),
		lockWait: DefaultLockWait,
		seed:     func() int64 { return time.Now().UnixNano() },
		now:      time.Now,
	}
}

// StartInput describes a new practice run.
type StartInput struct {
	ExamID  string
	TopicID string
	Mode    string
	Size    int
}

// Start builds the topic-filtered pool, freezes the question list and
// inserts the session row. The list is frozen here, never lazily per
// request, so resuming after a restart can never redraw a different
// sequence.
func (s *Service) Start(ctx context.Context, in StartInput) (*store.Session, error) {
	mode := in.Mode
	if mode == "" {
		mode = store.ModePractice
	}
	if mode != store.ModePractice && mode != store.ModeSpeedrun {
		return nil, fmt.Errorf("unknown session mode %q", mode)
	}

	exam, err := s.bank.ExamByID(ctx, in.ExamID)
	if err != nil {
		return nil, &ErrStorage{Op: "load exam", Err: err}
	}
	if exam == nil {
		return nil, &ErrNotFound{Kind: "exam", ID: in.ExamID}
	}

	if in.TopicID != "" {
		topic, err := s.bank.TopicByID(ctx, in.TopicID)
		if err != nil {
			return nil, &ErrStorage{Op: "load topic", Err: err}
		}
		if topic == nil || topic.ExamID != in.ExamID {
			return nil, &ErrNotFound{Kind: "topic", ID: in.TopicID}
		}
	}

	pool, err := s.bank.Questions(ctx, store.QuestionFilter{ExamID: in.ExamID, TopicID: in.TopicID})
	if err != nil {
		return nil, &ErrStorage{Op: "load question pool", Err: err}
	}
	if len(pool) == 0 {
		return nil, &ErrEmptyPool{ExamID: in.ExamID, TopicID: in.TopicID}
	}

	size := in.Size
	if size <= 0 {
		size = DefaultSessionSize
	}

	seed := s.seed()
	frozen, err := s.freeze(ctx, pool, mode, size, seed)
	if err != nil {
		return nil, err
	}

	created, err := s.sessions.CreateSession(ctx, store.Session{
		ExamID:        in.ExamID,
		TopicID:       in.TopicID,
		Mode:          mode,
		Questions:     frozen,
		SelectionSeed: seed,
	})
	if err != nil {
		return nil, &ErrStorage{Op: "create session", Err: err}
	}
	return created, nil
}

// freeze runs the selector over the pool. Practice mode walks the pool
// in creation order for full unbiased coverage; speedrun draws without
// replacement, weighted toward weak and stale questions. The seed is
// persisted on the session so any draw can be replayed.
func (s *Service) freeze(ctx context.Context, pool []*store.Question, mode string, size int, seed int64) ([]string, error) {
	candidates := make([]selection.Candidate, len(pool))
	for i, q := range pool {
		candidates[i] = selection.Candidate{ID: q.ID}
	}
	if mode == store.ModePractice {
		return selection.SequentialIDs(candidates, size), nil
	}

	ids := make([]string, len(pool))
	for i, q := range pool {
		ids[i] = q.ID
	}
	stats, err := s.history.Stats(ctx, ids)
	if err != nil {
		return nil, &ErrStorage{Op: "load stats", Err: err}
	}

	now := s.now()
	for i := range candidates {
		var st *selection.Stat
		if row := stats[candidates[i].ID]; row != nil {
			st = &selection.Stat{
				AttemptCount: row.AttemptCount,
				CorrectCount: row.CorrectCount,
			}
			if row.LastAttemptedAt != nil {
				st.LastAttempted = *row.LastAttemptedAt
			}
		}
		candidates[i].Weight = selection.Weight(st, now, s.weights)
	}

	rng := rand.New(rand.NewSource(seed))
	return selection.DrawSequence(candidates, size, rng), nil
}

// NextQuestion is the learner's next item plus progress counters.
type NextQuestion struct {
	Question *store.Question
	Position int // 1-based index into the frozen list
	Total    int
}

// Next returns the first frozen question with no recorded attempt.
// Repeated calls without an intervening Record return the same
// question; progress only advances through recorded attempts.
func (s *Service) Next(ctx context.Context, sessionID string) (*NextQuestion, error) {
	prog, sess, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if prog.Terminal() {
		return nil, &ErrSessionClosed{SessionID: sessionID, Status: sess.Status}
	}

	id, ok := prog.NextID()
	if !ok {
		// Completion is written in the same transaction as the final
		// attempt, so an active row with nothing left should not
		// exist. Report it as closed rather than inventing an item.
		return nil, &ErrSessionClosed{SessionID: sessionID, Status: store.SessionCompleted}
	}

	q, err := s.bank.QuestionByID(ctx, id)
	if err != nil {
		return nil, &ErrStorage{Op: "load question", Err: err}
	}
	if q == nil {
		return nil, &ErrNotFound{Kind: "question", ID: id}
	}

	return &NextQuestion{
		Question: q,
		Position: prog.AnsweredCount() + 1,
		Total:    prog.Total(),
	}, nil
}

// RecordInput is one submitted answer.
type RecordInput struct {
	SessionID        string
	QuestionID       string
	SubmittedOptions []string
	ElapsedSeconds   float64
}

// AnswerResult reports grading for one attempt plus the stat after
// the update.
type AnswerResult struct {
	IsCorrect        bool
	CorrectOptionIDs []string
	Explanation      string
	Stat             *store.Stat
	SessionComplete  bool
}

// Record grades a submission against the expected next question and
// persists the attempt, the stat update and any completion transition
// in one transaction. Answers must arrive in frozen order; anything
// else is a desynced client and is rejected outright.
func (s *Service) Record(ctx context.Context, in RecordInput) (*AnswerResult, error) {
	release, err := s.locks.acquire(ctx, in.SessionID, s.lockWait)
	if err != nil {
		return nil, err
	}
	defer release()

	prog, sess, err := s.load(ctx, in.SessionID)
	if err != nil {
		return nil, err
	}
	if prog.Terminal() {
		return nil, &ErrSessionClosed{SessionID: in.SessionID, Status: sess.Status}
	}

	expected, ok := prog.NextID()
	if !ok {
		return nil, &ErrSessionClosed{SessionID: in.SessionID, Status: store.SessionCompleted}
	}
	if in.QuestionID != expected {
		return nil, &ErrOutOfOrder{SessionID: in.SessionID, Expected: expected, Got: in.QuestionID}
	}

	q, err := s.bank.QuestionByID(ctx, in.QuestionID)
	if err != nil {
		return nil, &ErrStorage{Op: "load question", Err: err}
	}
	if q == nil {
		return nil, &ErrNotFound{Kind: "question", ID: in.QuestionID}
	}

	correctIDs := correctOptionIDs(q)
	isCorrect := sameIDSet(in.SubmittedOptions, correctIDs)
	last := prog.Remaining() == 1

	stat, err := s.history.RecordAttempt(ctx, store.RecordAttemptInput{
		SessionID:        in.SessionID,
		QuestionID:       in.QuestionID,
		IsCorrect:        isCorrect,
		ElapsedSeconds:   in.ElapsedSeconds,
		SubmittedOptions: in.SubmittedOptions,
		CompleteSession:  last,
	})
	if err != nil {
		return nil, &ErrStorage{Op: "record attempt", Err: err}
	}

	return &AnswerResult{
		IsCorrect:        isCorrect,
		CorrectOptionIDs: correctIDs,
		Explanation:      q.Explanation,
		Stat:             stat,
		SessionComplete:  last,
	}, nil
}

// End moves a session to a terminal status. Ending an already-terminal
// session is a no-op returning the session as it stands, so retries
// and double-clicks are harmless.
func (s *Service) End(ctx context.Context, sessionID, reason string) (*store.Session, error) {
	if reason != store.SessionCompleted && reason != store.SessionAbandoned {
		return nil, fmt.Errorf("unknown end reason %q", reason)
	}

	release, err := s.locks.acquire(ctx, sessionID, s.lockWait)
	if err != nil {
		return nil, err
	}
	defer release()

	sess, err := s.sessions.SessionByID(ctx, sessionID)
	if err != nil {
		return nil, &ErrStorage{Op: "load session", Err: err}
	}
	if sess == nil {
		return nil, &ErrNotFound{Kind: "session", ID: sessionID}
	}
	if sess.Status != store.SessionActive {
		return sess, nil
	}

	if _, err := s.sessions.EndSession(ctx, sessionID, reason, s.now().UTC()); err != nil {
		return nil, &ErrStorage{Op: "end session", Err: err}
	}

	ended, err := s.sessions.SessionByID(ctx, sessionID)
	if err != nil {
		return nil, &ErrStorage{Op: "load session", Err: err}
	}
	return ended, nil
}

// QuestionResult is one graded line of a session summary, in frozen
// order.
type QuestionResult struct {
	QuestionID     string
	Text           string
	Answered       bool
	IsCorrect      bool
	ElapsedSeconds float64
}

// Summary is the whole-session report.
type Summary struct {
	Session             *store.Session
	State               State
	Total               int
	Answered            int
	Correct             int
	TotalElapsedSeconds float64
	Results             []QuestionResult
}

// Results builds the per-question summary of a session, resumable or
// terminal, in frozen order.
func (s *Service) Results(ctx context.Context, sessionID string) (*Summary, error) {
	sess, err := s.sessions.SessionByID(ctx, sessionID)
	if err != nil {
		return nil, &ErrStorage{Op: "load session", Err: err}
	}
	if sess == nil {
		return nil, &ErrNotFound{Kind: "session", ID: sessionID}
	}

	attempts, err := s.history.AttemptsBySession(ctx, sessionID)
	if err != nil {
		return nil, &ErrStorage{Op: "load attempts", Err: err}
	}
	byQuestion := make(map[string]*store.Attempt, len(attempts))
	for _, a := range attempts {
		byQuestion[a.QuestionID] = a
	}

	questions, err := s.bank.Questions(ctx, store.QuestionFilter{ExamID: sess.ExamID})
	if err != nil {
		return nil, &ErrStorage{Op: "load questions", Err: err}
	}
	textByID := make(map[string]string, len(questions))
	for _, q := range questions {
		textByID[q.ID] = q.Text
	}

	summary := &Summary{
		Session: sess,
		State:   NewProgress(sess, attempts).State(),
		Total:   len(sess.Questions),
		Results: make([]QuestionResult, 0, len(sess.Questions)),
	}
	for _, id := range sess.Questions {
		r := QuestionResult{QuestionID: id, Text: textByID[id]}
		if a := byQuestion[id]; a != nil {
			r.Answered = true
			r.IsCorrect = a.IsCorrect
			r.ElapsedSeconds = a.ElapsedSeconds
			summary.Answered++
			if a.IsCorrect {
				summary.Correct++
			}
			summary.TotalElapsedSeconds += a.ElapsedSeconds
		}
		summary.Results = append(summary.Results, r)
	}
	return summary, nil
}

// Sessions lists an exam's sessions, newest first. An empty examID
// lists across all exams.
func (s *Service) Sessions(ctx context.Context, examID string, limit int) ([]*store.Session, error) {
	sessions, err := s.sessions.RecentSessions(ctx, examID, limit)
	if err != nil {
		return nil, &ErrStorage{Op: "list sessions", Err: err}
	}
	return sessions, nil
}

// DefaultWeakestLimit caps the weakest-question list when the caller
// does not ask for a size.
const DefaultWeakestLimit = 10

// ExamStats is the performance report for one exam: per-topic accuracy
// with the weakest topics first, plus the lowest-accuracy questions.
type ExamStats struct {
	Exam    *store.Exam
	Topics  []*store.TopicAccuracy
	Weakest []*store.QuestionAccuracy
}

// Stats aggregates attempt history for an exam. Only attempted
// questions appear in the weakest list.
func (s *Service) Stats(ctx context.Context, examID string, weakestLimit int) (*ExamStats, error) {
	exam, err := s.bank.ExamByID(ctx, examID)
	if err != nil {
		return nil, &ErrStorage{Op: "load exam", Err: err}
	}
	if exam == nil {
		return nil, &ErrNotFound{Kind: "exam", ID: examID}
	}

	if weakestLimit <= 0 {
		weakestLimit = DefaultWeakestLimit
	}

	topics, err := s.history.TopicAccuracy(ctx, examID)
	if err != nil {
		return nil, &ErrStorage{Op: "load topic accuracy", Err: err}
	}
	weakest, err := s.history.WeakestQuestions(ctx, examID, weakestLimit)
	if err != nil {
		return nil, &ErrStorage{Op: "load weakest questions", Err: err}
	}

	return &ExamStats{Exam: exam, Topics: topics, Weakest: weakest}, nil
}

// load rebuilds a session's progress projection from durable state.
func (s *Service) load(ctx context.Context, sessionID string) (*Progress, *store.Session, error) {
	sess, err := s.sessions.SessionByID(ctx, sessionID)
	if err != nil {
		return nil, nil, &ErrStorage{Op: "load session", Err: err}
	}
	if sess == nil {
		return nil, nil, &ErrNotFound{Kind: "session", ID: sessionID}
	}

	attempts, err := s.history.AttemptsBySession(ctx, sessionID)
	if err != nil {
		return nil, nil, &ErrStorage{Op: "load attempts", Err: err}
	}
	return NewProgress(sess, attempts), sess, nil
}

// correctOptionIDs returns the ids of a question's correct options in
// authoring order.
func correctOptionIDs(q *store.Question) []string {
	var ids []string
	for _, opt := range q.Options {
		if opt.IsCorrect {
			ids = append(ids, opt.ID)
		}
	}
	return ids
}

// sameIDSet compares two id collections as sets, ignoring order and
// repeated ids.
func sameIDSet(a, b []string) bool {
	set := make(map[string]bool, len(a))
	for _, id := range a {
		set[id] = true
	}
	if len(set) != len(b) {
		return false
	}
	for _, id := range b {
		if !set[id] {
			return false
		}
	}
	return true
}
