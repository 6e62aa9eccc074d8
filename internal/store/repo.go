package store

import (
	"context"
	"time"
)

// Exam is a certification exam in the bank. PassingScore and
// TimeLimitMinutes are 0 when unknown.
type Exam struct {
	ID               string
	Name             string
	Vendor           string
	ExamCode         string
	Description      string
	PassingScore     int
	TimeLimitMinutes int
	QuestionCount    int
	CreatedAt        time.Time
}

// Topic is a blueprint domain within an exam.
type Topic struct {
	ID            string
	ExamID        string
	Name          string
	Description   string
	WeightPercent int
	CreatedAt     time.Time
}

// Question is a bank item. Options and TopicIDs are populated by
// QuestionByID and SearchQuestions; listing leaves them empty.
type Question struct {
	ID           string
	ExamID       string
	Text         string
	QuestionType string
	ChooseCount  int
	Difficulty   string
	Explanation  string
	Source       string
	PatternTags  []string
	TopicIDs     []string
	Options      []AnswerOption
	CreatedAt    time.Time
}

// AnswerOption is one choice attached to a question.
type AnswerOption struct {
	ID               string
	QuestionID       string
	Text             string
	IsCorrect        bool
	DistractorReason string
	Position         int
}

// Stat aggregates one question's attempt history. Derived from the
// attempt log and rebuildable from it at any time.
type Stat struct {
	QuestionID          string
	AttemptCount        int
	CorrectCount        int
	TotalElapsedSeconds float64
	LastAttemptedAt     *time.Time
}

// Session is one practice run. Questions holds the frozen ordered id
// list set at creation; it round-trips exactly and never changes.
type Session struct {
	ID            string
	ExamID        string
	TopicID       string
	Mode          string
	Status        string
	Questions     []string
	SelectionSeed int64
	StartedAt     time.Time
	EndedAt       *time.Time
}

// Attempt is one answered question within a session. Append-only.
type Attempt struct {
	ID               string
	SessionID        string
	QuestionID       string
	IsCorrect        bool
	ElapsedSeconds   float64
	SubmittedOptions []string
	AnsweredAt       time.Time
}

// QuestionFilter narrows question listings. Zero values mean no
// filtering on that dimension. WithOptions additionally loads each
// question's options in authoring order.
type QuestionFilter struct {
	ExamID       string
	TopicID      string
	Difficulty   string
	QuestionType string
	WithOptions  bool
	Limit        int
	Offset       int
}

// QuestionUpdate carries a partial question edit. Nil fields are left
// unchanged.
type QuestionUpdate struct {
	ID          string
	Text        *string
	Explanation *string
	Difficulty  *string
	Source      *string
	PatternTags *[]string
}

// OptionUpdate carries a partial answer-option edit. Nil fields are
// left unchanged.
type OptionUpdate struct {
	ID               string
	Text             *string
	IsCorrect        *bool
	DistractorReason *string
}

// Bundle is a whole exam intake: the exam, its topics and its
// questions, written in a single transaction. Question topic
// references use topic names, resolved against the bundle's topics.
type Bundle struct {
	Exam      Exam
	Topics    []Topic
	Questions []BundleQuestion
}

// BundleQuestion is a question within a Bundle, its topics referenced
// by name instead of id.
type BundleQuestion struct {
	Question
	TopicNames []string
}

// RecordAttemptInput is the full write for one answered question.
// When CompleteSession is set the session row is closed in the same
// transaction as the attempt insert and stat update.
type RecordAttemptInput struct {
	SessionID        string
	QuestionID       string
	IsCorrect        bool
	ElapsedSeconds   float64
	SubmittedOptions []string
	CompleteSession  bool
}

// TopicAccuracy is one row of the per-topic performance report.
type TopicAccuracy struct {
	TopicID       string
	TopicName     string
	QuestionCount int
	AttemptCount  int
	CorrectCount  int
}

// Accuracy returns the topic's correct fraction, 0 when unattempted.
func (a *TopicAccuracy) Accuracy() float64 {
	if a.AttemptCount == 0 {
		return 0
	}
	return float64(a.CorrectCount) / float64(a.AttemptCount)
}

// QuestionAccuracy is one row of the weakest-questions report.
type QuestionAccuracy struct {
	QuestionID   string
	Text         string
	AttemptCount int
	CorrectCount int
	Accuracy     float64
}

// BankRepo manages exams, topics, questions and their options.
type BankRepo interface {
	// CreateExam inserts an exam and returns it with id and timestamp set.
	CreateExam(ctx context.Context, e Exam) (*Exam, error)

	// ExamByID returns the exam, or nil if it does not exist.
	ExamByID(ctx context.Context, id string) (*Exam, error)

	// ExamByName returns the exam with the given name, or nil.
	ExamByName(ctx context.Context, name string) (*Exam, error)

	// Exams lists all exams in creation order with question counts.
	Exams(ctx context.Context) ([]*Exam, error)

	// CreateTopic inserts a topic and returns it with id set.
	CreateTopic(ctx context.Context, t Topic) (*Topic, error)

	// TopicByID returns the topic, or nil if it does not exist.
	TopicByID(ctx context.Context, id string) (*Topic, error)

	// Topics lists an exam's topics by blueprint weight, heaviest
	// first, then name. Unweighted topics sort last.
	Topics(ctx context.Context, examID string) ([]*Topic, error)

	// CreateQuestion inserts a question with its options and topic
	// links in one transaction and returns the stored question.
	CreateQuestion(ctx context.Context, q Question) (*Question, error)

	// QuestionByID returns the question with options in authoring
	// order and topic ids, or nil if it does not exist.
	QuestionByID(ctx context.Context, id string) (*Question, error)

	// Questions lists matching questions ordered by creation time then
	// id. Options are loaded only when the filter asks for them.
	Questions(ctx context.Context, f QuestionFilter) ([]*Question, error)

	// UpdateQuestion applies a partial edit. Returns the updated
	// question, or nil if it does not exist.
	UpdateQuestion(ctx context.Context, u QuestionUpdate) (*Question, error)

	// UpdateOptions applies partial edits to a question's options in
	// one transaction.
	UpdateOptions(ctx context.Context, questionID string, updates []OptionUpdate) error

	// DeleteQuestion removes a question, its options (cascade), its
	// stat row and its attempts. Returns false if it did not exist.
	DeleteQuestion(ctx context.Context, id string) (bool, error)

	// SearchQuestions matches the query case-insensitively against
	// question text and explanation. An empty examID searches every
	// exam.
	SearchQuestions(ctx context.Context, examID, query string, limit int) ([]*Question, error)

	// ImportBundle inserts an exam with all its topics and questions
	// in one transaction. Nothing is written if any row fails.
	ImportBundle(ctx context.Context, b Bundle) (*Exam, error)
}

// HistoryRepo reads and writes the attempt log and its derived stats.
type HistoryRepo interface {
	// Stat returns the question's stat row, or nil if it has never
	// been attempted.
	Stat(ctx context.Context, questionID string) (*Stat, error)

	// Stats returns stat rows for the given questions, keyed by
	// question id. Never-attempted questions are absent from the map.
	Stats(ctx context.Context, questionIDs []string) (map[string]*Stat, error)

	// RecordAttempt appends an attempt, updates the question's stat
	// and optionally closes the session, all in one transaction.
	// Returns the updated stat.
	RecordAttempt(ctx context.Context, in RecordAttemptInput) (*Stat, error)

	// AttemptsBySession returns a session's attempts in answered order.
	AttemptsBySession(ctx context.Context, sessionID string) ([]*Attempt, error)

	// TopicAccuracy aggregates attempt history per topic for an exam.
	TopicAccuracy(ctx context.Context, examID string) ([]*TopicAccuracy, error)

	// WeakestQuestions returns the lowest-accuracy attempted questions
	// for an exam, weakest first.
	WeakestQuestions(ctx context.Context, examID string, limit int) ([]*QuestionAccuracy, error)

	// RebuildStats refolds every stat row from the attempt log,
	// replacing the derived cache wholesale.
	RebuildStats(ctx context.Context) error
}

// SessionRepo manages practice session rows.
type SessionRepo interface {
	// CreateSession inserts a session with its frozen question list
	// and selection seed, returning it with id and timestamp set.
	CreateSession(ctx context.Context, s Session) (*Session, error)

	// SessionByID returns the session, or nil if it does not exist.
	SessionByID(ctx context.Context, id string) (*Session, error)

	// EndSession moves an active session to the given terminal status.
	// Returns false without error when the session is already
	// terminal, making session ending idempotent for callers.
	EndSession(ctx context.Context, id, status string, at time.Time) (bool, error)

	// RecentSessions lists an exam's sessions, newest first.
	RecentSessions(ctx context.Context, examID string, limit int) ([]*Session, error)
}
