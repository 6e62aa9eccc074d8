package bank

import (
	"context"
	"fmt"
	"strings"

	"github.com/jfarleigh/certrun/internal/bias"
	"github.com/jfarleigh/certrun/internal/store"
)

// Question listing bounds, mirrored by the HTTP layer.
const (
	DefaultListLimit = 50
	MaxListLimit     = 500
)

// Service is the authoring surface of the question bank. Every write
// passes structural validation, and question intake additionally
// passes the answer bias gate unless the caller explicitly accepts a
// biased set.
type Service struct {
	repo       store.BankRepo
	thresholds bias.Thresholds
}

// NewService wires the bank over its repository with the default bias
// thresholds.
func NewService(repo store.BankRepo) *Service {
	return &Service{repo: repo, thresholds: bias.DefaultThresholds()}
}

// CreateExamInput describes a new exam. PassingScore and
// TimeLimitMinutes are optional metadata, 0 when unknown.
type CreateExamInput struct {
	Name             string
	Vendor           string
	ExamCode         string
	Description      string
	PassingScore     int
	TimeLimitMinutes int
}

// CreateExam inserts an exam after checking the name is free. Exam
// names are unique so imports and seeds can address an exam by name.
func (s *Service) CreateExam(ctx context.Context, in CreateExamInput) (*store.Exam, error) {
	var problems []string
	if strings.TrimSpace(in.Name) == "" {
		problems = append(problems, "exam name is required")
	}
	if in.PassingScore < 0 || in.PassingScore > 100 {
		problems = append(problems, "passing_score must be between 0 and 100")
	}
	if in.TimeLimitMinutes < 0 {
		problems = append(problems, "time_limit_minutes must not be negative")
	}
	if len(problems) > 0 {
		return nil, &ErrValidation{Problems: problems}
	}

	existing, err := s.repo.ExamByName(ctx, in.Name)
	if err != nil {
		return nil, &ErrStorage{Op: "check exam name", Err: err}
	}
	if existing != nil {
		return nil, &ErrConflict{Kind: "exam", Name: in.Name}
	}

	exam, err := s.repo.CreateExam(ctx, store.Exam{
		Name:             in.Name,
		Vendor:           in.Vendor,
		ExamCode:         in.ExamCode,
		Description:      in.Description,
		PassingScore:     in.PassingScore,
		TimeLimitMinutes: in.TimeLimitMinutes,
	})
	if err != nil {
		return nil, &ErrStorage{Op: "create exam", Err: err}
	}
	return exam, nil
}

// Exam returns one exam by id.
func (s *Service) Exam(ctx context.Context, id string) (*store.Exam, error) {
	exam, err := s.repo.ExamByID(ctx, id)
	if err != nil {
		return nil, &ErrStorage{Op: "load exam", Err: err}
	}
	if exam == nil {
		return nil, &ErrNotFound{Kind: "exam", ID: id}
	}
	return exam, nil
}

// Exams lists every exam with its question count.
func (s *Service) Exams(ctx context.Context) ([]*store.Exam, error) {
	exams, err := s.repo.Exams(ctx)
	if err != nil {
		return nil, &ErrStorage{Op: "list exams", Err: err}
	}
	return exams, nil
}

// CreateTopicInput describes a new blueprint topic under an exam.
// WeightPercent is the topic's share of the exam blueprint.
type CreateTopicInput struct {
	ExamID        string
	Name          string
	Description   string
	WeightPercent int
}

// CreateTopic inserts a topic. Topic names are unique within their
// exam.
func (s *Service) CreateTopic(ctx context.Context, in CreateTopicInput) (*store.Topic, error) {
	var problems []string
	if strings.TrimSpace(in.Name) == "" {
		problems = append(problems, "topic name is required")
	}
	if in.WeightPercent < 0 || in.WeightPercent > 100 {
		problems = append(problems, "weight_percent must be between 0 and 100")
	}
	if len(problems) > 0 {
		return nil, &ErrValidation{Problems: problems}
	}

	if _, err := s.Exam(ctx, in.ExamID); err != nil {
		return nil, err
	}
	topics, err := s.repo.Topics(ctx, in.ExamID)
	if err != nil {
		return nil, &ErrStorage{Op: "list topics", Err: err}
	}
	for _, t := range topics {
		if t.Name == in.Name {
			return nil, &ErrConflict{Kind: "topic", Name: in.Name}
		}
	}

	topic, err := s.repo.CreateTopic(ctx, store.Topic{
		ExamID:        in.ExamID,
		Name:          in.Name,
		Description:   in.Description,
		WeightPercent: in.WeightPercent,
	})
	if err != nil {
		return nil, &ErrStorage{Op: "create topic", Err: err}
	}
	return topic, nil
}

// Topics lists an exam's topics, heaviest blueprint share first.
func (s *Service) Topics(ctx context.Context, examID string) ([]*store.Topic, error) {
	if _, err := s.Exam(ctx, examID); err != nil {
		return nil, err
	}
	topics, err := s.repo.Topics(ctx, examID)
	if err != nil {
		return nil, &ErrStorage{Op: "list topics", Err: err}
	}
	return topics, nil
}

// OptionInput is one proposed answer option.
type OptionInput struct {
	Text             string
	IsCorrect        bool
	DistractorReason string
}

// CreateQuestionInput describes a new question. AllowBiased stores the
// question even when its option set fails the bias gate.
type CreateQuestionInput struct {
	ExamID       string
	Text         string
	QuestionType string
	ChooseCount  int
	Difficulty   string
	Explanation  string
	Source       string
	PatternTags  []string
	TopicIDs     []string
	Options      []OptionInput
	AllowBiased  bool
}

// CreateQuestion validates and stores a question with its options.
// Difficulty defaults to medium. Options are stored in authoring
// order; shuffling happens at serving time, never at rest, so grading
// always works against stable option ids.
func (s *Service) CreateQuestion(ctx context.Context, in CreateQuestionInput) (*store.Question, error) {
	if _, err := s.Exam(ctx, in.ExamID); err != nil {
		return nil, err
	}

	difficulty := in.Difficulty
	if difficulty == "" {
		difficulty = store.DifficultyMedium
	}

	problems := validateQuestion(in.Text, in.QuestionType, difficulty, in.ChooseCount, in.Options)
	for _, id := range in.TopicIDs {
		t, err := s.repo.TopicByID(ctx, id)
		if err != nil {
			return nil, &ErrStorage{Op: "load topic", Err: err}
		}
		switch {
		case t == nil:
			problems = append(problems, fmt.Sprintf("topic %s not found", id))
		case t.ExamID != in.ExamID:
			problems = append(problems, fmt.Sprintf("topic %s belongs to a different exam", id))
		}
	}
	if len(problems) > 0 {
		return nil, &ErrValidation{Problems: problems}
	}

	report := bias.Analyze(proposedBiasOptions(in.Options), s.thresholds)
	if !report.Valid && !in.AllowBiased {
		return nil, &ErrBiased{Report: report}
	}

	chooseCount := in.ChooseCount
	if in.QuestionType != store.QuestionChooseN {
		// Persisted only where it means something.
		chooseCount = 0
	}

	q := store.Question{
		ExamID:       in.ExamID,
		Text:         in.Text,
		QuestionType: in.QuestionType,
		ChooseCount:  chooseCount,
		Difficulty:   difficulty,
		Explanation:  in.Explanation,
		Source:       in.Source,
		PatternTags:  in.PatternTags,
		TopicIDs:     in.TopicIDs,
	}
	for _, opt := range in.Options {
		q.Options = append(q.Options, store.AnswerOption{
			Text:             opt.Text,
			IsCorrect:        opt.IsCorrect,
			DistractorReason: opt.DistractorReason,
		})
	}

	created, err := s.repo.CreateQuestion(ctx, q)
	if err != nil {
		return nil, &ErrStorage{Op: "create question", Err: err}
	}
	return created, nil
}

// Question returns one question with options in authoring order and
// topic ids.
func (s *Service) Question(ctx context.Context, id string) (*store.Question, error) {
	q, err := s.repo.QuestionByID(ctx, id)
	if err != nil {
		return nil, &ErrStorage{Op: "load question", Err: err}
	}
	if q == nil {
		return nil, &ErrNotFound{Kind: "question", ID: id}
	}
	return q, nil
}

// Questions lists questions matching the filter. The limit defaults to
// DefaultListLimit and is capped at MaxListLimit.
func (s *Service) Questions(ctx context.Context, f store.QuestionFilter) ([]*store.Question, error) {
	if f.Limit == 0 {
		f.Limit = DefaultListLimit
	}

	var problems []string
	if f.Limit < 0 || f.Limit > MaxListLimit {
		problems = append(problems, fmt.Sprintf("limit must be between 1 and %d", MaxListLimit))
	}
	if f.Offset < 0 {
		problems = append(problems, "offset must not be negative")
	}
	if f.Difficulty != "" && !validDifficulty(f.Difficulty) {
		problems = append(problems, fmt.Sprintf("unknown difficulty %q", f.Difficulty))
	}
	if f.QuestionType != "" && !validQuestionType(f.QuestionType) {
		problems = append(problems, fmt.Sprintf("unknown question type %q", f.QuestionType))
	}
	if len(problems) > 0 {
		return nil, &ErrValidation{Problems: problems}
	}

	questions, err := s.repo.Questions(ctx, f)
	if err != nil {
		return nil, &ErrStorage{Op: "list questions", Err: err}
	}
	return questions, nil
}

// UpdateQuestion applies a partial edit. At least one field must be
// set; cleared text stays rejected so a question can never lose its
// prompt.
func (s *Service) UpdateQuestion(ctx context.Context, u store.QuestionUpdate) (*store.Question, error) {
	if u.Text == nil && u.Explanation == nil && u.Difficulty == nil && u.Source == nil && u.PatternTags == nil {
		return nil, &ErrValidation{Problems: []string{"at least one field must be provided"}}
	}

	var problems []string
	if u.Text != nil && strings.TrimSpace(*u.Text) == "" {
		problems = append(problems, "question text is required")
	}
	if u.Difficulty != nil && !validDifficulty(*u.Difficulty) {
		problems = append(problems, fmt.Sprintf("unknown difficulty %q", *u.Difficulty))
	}
	if len(problems) > 0 {
		return nil, &ErrValidation{Problems: problems}
	}

	q, err := s.repo.UpdateQuestion(ctx, u)
	if err != nil {
		return nil, &ErrStorage{Op: "update question", Err: err}
	}
	if q == nil {
		return nil, &ErrNotFound{Kind: "question", ID: u.ID}
	}
	return q, nil
}

// OptionsResult carries a question after an option edit together with
// its fresh bias analysis, so an author can iterate on a rebalance
// without a second round trip.
type OptionsResult struct {
	Question *store.Question
	Report   bias.Report
}

// UpdateOptions applies partial edits to a question's options and
// re-analyzes the result. The edits are applied to an in-memory copy
// first: flipping correctness flags must not leave, say, a single
// choice question with two correct options on disk.
func (s *Service) UpdateOptions(ctx context.Context, questionID string, updates []store.OptionUpdate) (*OptionsResult, error) {
	if len(updates) == 0 {
		return nil, &ErrValidation{Problems: []string{"at least one option update must be provided"}}
	}

	q, err := s.Question(ctx, questionID)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*store.AnswerOption, len(q.Options))
	for i := range q.Options {
		byID[q.Options[i].ID] = &q.Options[i]
	}

	var problems []string
	for _, up := range updates {
		opt, ok := byID[up.ID]
		if !ok {
			problems = append(problems, fmt.Sprintf("option %s does not belong to question %s", up.ID, questionID))
			continue
		}
		if up.Text == nil && up.IsCorrect == nil && up.DistractorReason == nil {
			problems = append(problems, fmt.Sprintf("option %s update has no fields", up.ID))
			continue
		}
		if up.Text != nil {
			if strings.TrimSpace(*up.Text) == "" {
				problems = append(problems, fmt.Sprintf("option %s text is required", up.ID))
			}
			opt.Text = *up.Text
		}
		if up.IsCorrect != nil {
			opt.IsCorrect = *up.IsCorrect
		}
		if up.DistractorReason != nil {
			opt.DistractorReason = *up.DistractorReason
		}
	}
	if len(problems) == 0 {
		correct := 0
		for _, o := range q.Options {
			if o.IsCorrect {
				correct++
			}
		}
		problems = validateAnswerSet(q.QuestionType, q.ChooseCount, len(q.Options), correct)
	}
	if len(problems) > 0 {
		return nil, &ErrValidation{Problems: problems}
	}

	if err := s.repo.UpdateOptions(ctx, questionID, updates); err != nil {
		return nil, &ErrStorage{Op: "update options", Err: err}
	}

	updated, err := s.Question(ctx, questionID)
	if err != nil {
		return nil, err
	}
	return &OptionsResult{
		Question: updated,
		Report:   bias.Analyze(storedBiasOptions(updated.Options), s.thresholds),
	}, nil
}

// DeleteQuestion removes a question together with its options, stat
// row and attempt log entries.
func (s *Service) DeleteQuestion(ctx context.Context, id string) error {
	deleted, err := s.repo.DeleteQuestion(ctx, id)
	if err != nil {
		return &ErrStorage{Op: "delete question", Err: err}
	}
	if !deleted {
		return &ErrNotFound{Kind: "question", ID: id}
	}
	return nil
}

// proposedBiasOptions converts intake options for bias analysis.
func proposedBiasOptions(options []OptionInput) []bias.Option {
	out := make([]bias.Option, 0, len(options))
	for _, o := range options {
		out = append(out, bias.Option{
			Text:             o.Text,
			IsCorrect:        o.IsCorrect,
			DistractorReason: o.DistractorReason,
		})
	}
	return out
}

// storedBiasOptions converts persisted options for bias analysis.
func storedBiasOptions(options []store.AnswerOption) []bias.Option {
	out := make([]bias.Option, 0, len(options))
	for _, o := range options {
		out = append(out, bias.Option{
			Text:             o.Text,
			IsCorrect:        o.IsCorrect,
			DistractorReason: o.DistractorReason,
		})
	}
	return out
}
