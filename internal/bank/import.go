package bank

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jfarleigh/certrun/internal/bias"
	"github.com/jfarleigh/certrun/internal/store"
)

// ImportFile is the JSON shape of a bank file: one exam with its
// topics and questions. Question topic references use topic names,
// resolved within the file.
type ImportFile struct {
	Exam      ImportExam       `json:"exam"`
	Topics    []ImportTopic    `json:"topics,omitempty"`
	Questions []ImportQuestion `json:"questions"`
}

type ImportExam struct {
	Name             string `json:"name"`
	Vendor           string `json:"vendor,omitempty"`
	ExamCode         string `json:"exam_code,omitempty"`
	Description      string `json:"description,omitempty"`
	PassingScore     int    `json:"passing_score,omitempty"`
	TimeLimitMinutes int    `json:"time_limit_minutes,omitempty"`
}

type ImportTopic struct {
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	WeightPercent int    `json:"weight_percent,omitempty"`
}

type ImportQuestion struct {
	Text        string         `json:"text"`
	Type        string         `json:"type"`
	ChooseCount int            `json:"choose_count,omitempty"`
	Difficulty  string         `json:"difficulty,omitempty"`
	Explanation string         `json:"explanation,omitempty"`
	Source      string         `json:"source,omitempty"`
	PatternTags []string       `json:"pattern_tags,omitempty"`
	Topics      []string       `json:"topics,omitempty"`
	Options     []ImportOption `json:"options"`
}

type ImportOption struct {
	Text             string `json:"text"`
	Correct          bool   `json:"correct"`
	DistractorReason string `json:"distractor_reason,omitempty"`
}

// ParseImport checks raw JSON against the import schema and decodes
// it. A rejected file never touches the database.
func ParseImport(raw []byte) (*ImportFile, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, &ErrInvalidImport{Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	schema, err := compiledImportSchema()
	if err != nil {
		return nil, fmt.Errorf("compile import schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, &ErrInvalidImport{Err: fmt.Errorf("schema validation failed: %w", err)}
	}

	var file ImportFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, &ErrInvalidImport{Err: fmt.Errorf("decode import file: %w", err)}
	}
	return &file, nil
}

// Bundle converts the decoded file into the store's transactional
// intake shape, applying the same defaults as single-question intake.
func (f *ImportFile) Bundle() store.Bundle {
	b := store.Bundle{
		Exam: store.Exam{
			Name:             f.Exam.Name,
			Vendor:           f.Exam.Vendor,
			ExamCode:         f.Exam.ExamCode,
			Description:      f.Exam.Description,
			PassingScore:     f.Exam.PassingScore,
			TimeLimitMinutes: f.Exam.TimeLimitMinutes,
		},
	}
	for _, t := range f.Topics {
		b.Topics = append(b.Topics, store.Topic{
			Name:          t.Name,
			Description:   t.Description,
			WeightPercent: t.WeightPercent,
		})
	}
	for _, q := range f.Questions {
		difficulty := q.Difficulty
		if difficulty == "" {
			difficulty = store.DifficultyMedium
		}
		chooseCount := q.ChooseCount
		if q.Type != store.QuestionChooseN {
			chooseCount = 0
		}

		bq := store.BundleQuestion{
			Question: store.Question{
				Text:         q.Text,
				QuestionType: q.Type,
				ChooseCount:  chooseCount,
				Difficulty:   difficulty,
				Explanation:  q.Explanation,
				Source:       q.Source,
				PatternTags:  q.PatternTags,
			},
			TopicNames: q.Topics,
		}
		for _, o := range q.Options {
			bq.Options = append(bq.Options, store.AnswerOption{
				Text:             o.Text,
				IsCorrect:        o.Correct,
				DistractorReason: o.DistractorReason,
			})
		}
		b.Questions = append(b.Questions, bq)
	}
	return b
}

// Import stores a whole exam bundle in one transaction. Every
// question passes the same structural validation and bias gate as
// single-question intake; allowBiased waives only the bias gate,
// never the structural rules.
func (s *Service) Import(ctx context.Context, raw []byte, allowBiased bool) (*store.Exam, error) {
	file, err := ParseImport(raw)
	if err != nil {
		return nil, err
	}

	if problems := s.validateImport(file, allowBiased); len(problems) > 0 {
		return nil, &ErrValidation{Problems: problems}
	}

	existing, err := s.repo.ExamByName(ctx, file.Exam.Name)
	if err != nil {
		return nil, &ErrStorage{Op: "check exam name", Err: err}
	}
	if existing != nil {
		return nil, &ErrConflict{Kind: "exam", Name: file.Exam.Name}
	}

	exam, err := s.repo.ImportBundle(ctx, file.Bundle())
	if err != nil {
		return nil, &ErrStorage{Op: "import bundle", Err: err}
	}
	return exam, nil
}

// validateImport applies the rules the schema cannot express. All
// problems come back together, keyed by 1-based position, so a large
// file is fixed in one editing pass instead of one upload per flaw.
func (s *Service) validateImport(file *ImportFile, allowBiased bool) []string {
	var problems []string
	if strings.TrimSpace(file.Exam.Name) == "" {
		problems = append(problems, "exam name is required")
	}

	topicNames := make(map[string]bool, len(file.Topics))
	for _, t := range file.Topics {
		if topicNames[t.Name] {
			problems = append(problems, fmt.Sprintf("topic %q appears twice", t.Name))
		}
		topicNames[t.Name] = true
	}

	for i, q := range file.Questions {
		difficulty := q.Difficulty
		if difficulty == "" {
			difficulty = store.DifficultyMedium
		}
		options := importOptionInputs(q.Options)
		for _, p := range validateQuestion(q.Text, q.Type, difficulty, q.ChooseCount, options) {
			problems = append(problems, fmt.Sprintf("question %d: %s", i+1, p))
		}
		for _, name := range q.Topics {
			if !topicNames[name] {
				problems = append(problems, fmt.Sprintf("question %d: unknown topic %q", i+1, name))
			}
		}
		if !allowBiased {
			report := bias.Analyze(proposedBiasOptions(options), s.thresholds)
			for _, f := range report.Issues {
				problems = append(problems, fmt.Sprintf("question %d: %s", i+1, f.Message))
			}
		}
	}
	return problems
}

func importOptionInputs(options []ImportOption) []OptionInput {
	out := make([]OptionInput, 0, len(options))
	for _, o := range options {
		out = append(out, OptionInput{
			Text:             o.Text,
			IsCorrect:        o.Correct,
			DistractorReason: o.DistractorReason,
		})
	}
	return out
}
