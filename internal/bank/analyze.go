package bank

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jfarleigh/certrun/internal/bias"
	"github.com/jfarleigh/certrun/internal/store"
)

// Preview lengths in the quality breakdown, in runes.
const (
	questionPreviewRunes = 100
	optionPreviewRunes   = 50
)

// ProposalInput is an option set to check before its question exists.
type ProposalInput struct {
	QuestionType string
	ChooseCount  int
	Options      []OptionInput
}

// ProposalResult reports on a proposed option set. Structure comes
// first: when the set breaks the answer-set rules the bias report is
// omitted, since length metrics over a malformed set would mislead.
type ProposalResult struct {
	Valid              bool         `json:"valid"`
	StructuralProblems []string     `json:"structural_problems,omitempty"`
	Report             *bias.Report `json:"report,omitempty"`
	Recommendation     string       `json:"recommendation"`
}

// AnalyzeProposal checks a proposed option set without storing
// anything, so authors can iterate until the set passes and only then
// create the question. The checks are the same ones CreateQuestion
// runs, making the result a faithful preview.
func (s *Service) AnalyzeProposal(in ProposalInput) *ProposalResult {
	var problems []string
	if len(in.Options) < minOptions {
		problems = append(problems, fmt.Sprintf("questions must have at least %d answer options", minOptions))
	}
	for i, opt := range in.Options {
		if strings.TrimSpace(opt.Text) == "" {
			problems = append(problems, fmt.Sprintf("option %d text is required", i+1))
		}
	}
	problems = append(problems, validateAnswerSet(in.QuestionType, in.ChooseCount, len(in.Options), countCorrect(in.Options))...)
	if len(problems) > 0 {
		return &ProposalResult{
			StructuralProblems: problems,
			Recommendation:     "Fix the structural problems before analyzing answer balance.",
		}
	}

	report := bias.Analyze(proposedBiasOptions(in.Options), s.thresholds)
	rec := "Address the issues above before creating the question."
	if report.Valid {
		rec = "Answers pass validation. Proceed with creating the question."
	}
	return &ProposalResult{Valid: report.Valid, Report: &report, Recommendation: rec}
}

// QualityOption is one option in a quality breakdown.
type QualityOption struct {
	ID                  string `json:"id"`
	Preview             string `json:"preview"`
	Length              int    `json:"length"`
	IsCorrect           bool   `json:"is_correct"`
	HasDistractorReason bool   `json:"has_distractor_reason"`
}

// QualityResult is one stored question's bias standing with a
// per-option breakdown, enough to see which option to rebalance.
type QualityResult struct {
	QuestionID string          `json:"question_id"`
	Preview    string          `json:"preview"`
	Report     bias.Report     `json:"report"`
	Options    []QualityOption `json:"options"`
}

// QuestionQuality re-analyzes a stored question's options.
func (s *Service) QuestionQuality(ctx context.Context, questionID string) (*QualityResult, error) {
	q, err := s.Question(ctx, questionID)
	if err != nil {
		return nil, err
	}

	res := &QualityResult{
		QuestionID: q.ID,
		Preview:    preview(q.Text, questionPreviewRunes),
		Report:     bias.Analyze(storedBiasOptions(q.Options), s.thresholds),
	}
	for _, o := range q.Options {
		res.Options = append(res.Options, QualityOption{
			ID:                  o.ID,
			Preview:             preview(o.Text, optionPreviewRunes),
			Length:              utf8.RuneCountInString(o.Text),
			IsCorrect:           o.IsCorrect,
			HasDistractorReason: o.DistractorReason != "",
		})
	}
	return res, nil
}

// ExamQuality is the bank-wide bias report for one exam.
type ExamQuality struct {
	Exam   *store.Exam     `json:"exam"`
	Report bias.ExamReport `json:"report"`
}

// ExamBiasReport analyzes every question in an exam and aggregates the
// findings. The repository is queried directly, without the listing
// cap, because a partial bank scan would misstate the totals.
func (s *Service) ExamBiasReport(ctx context.Context, examID string) (*ExamQuality, error) {
	exam, err := s.Exam(ctx, examID)
	if err != nil {
		return nil, err
	}

	questions, err := s.repo.Questions(ctx, store.QuestionFilter{ExamID: examID, WithOptions: true})
	if err != nil {
		return nil, &ErrStorage{Op: "list questions", Err: err}
	}

	sets := make([]bias.QuestionOptions, 0, len(questions))
	for _, q := range questions {
		sets = append(sets, bias.QuestionOptions{
			QuestionID: q.ID,
			Text:       q.Text,
			Options:    storedBiasOptions(q.Options),
		})
	}
	return &ExamQuality{Exam: exam, Report: bias.BuildExamReport(sets, s.thresholds)}, nil
}

// Guidelines returns the length guidance matching the gate this bank
// enforces.
func (s *Service) Guidelines(numAnswers, targetLength int) bias.LengthGuidelines {
	return bias.Guidelines(numAnswers, targetLength, s.thresholds)
}

// preview cuts text to limit runes, marking the cut with an ellipsis.
func preview(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}
