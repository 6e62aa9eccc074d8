package bias

import (
	"fmt"
	"math"
	"unicode/utf8"
)

// Option is one answer option as seen by the analyzer. Lengths are
// measured in runes so multi-byte text is not over-counted.
type Option struct {
	Text             string
	IsCorrect        bool
	DistractorReason string
}

// Code identifies one detectable bias pattern.
type Code string

const (
	CodeLengthVarianceHigh       Code = "length_variance_high"
	CodeCorrectTooLong           Code = "correct_too_long"
	CodeCorrectTooShort          Code = "correct_too_short"
	CodeAnswerTooShort           Code = "answer_too_short"
	CodeMissingDistractorReason  Code = "missing_distractor_reason"
	CodeDistractorReasonTooShort Code = "distractor_reason_too_short"
)

// Severity splits findings into intake-blocking errors and advisory
// warnings.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Finding is one detected bias pattern. Per-option checks emit one
// finding per offending option; the message names the option by its
// 1-based position.
type Finding struct {
	Code     Code     `json:"code"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// Thresholds tunes the detector. Zero values disable nothing by
// themselves; use DefaultThresholds and override fields as needed.
type Thresholds struct {
	// MaxLengthVariancePercent caps how far any single option may
	// deviate from the mean length, as a percent of the mean.
	MaxLengthVariancePercent float64
	// MinCorrectDistractorRatio and MaxCorrectDistractorRatio bound
	// the mean-correct to mean-distractor length ratio.
	MinCorrectDistractorRatio float64
	MaxCorrectDistractorRatio float64
	// MinAnswerLength is the minimum rune count for any option text.
	MinAnswerLength int
	// RequireDistractorReason upgrades a missing distractor_reason
	// from ignored to an error finding.
	RequireDistractorReason bool
	// MinDistractorReasonLength is the minimum rune count for a
	// distractor_reason when one is present.
	MinDistractorReasonLength int
}

// DefaultThresholds returns the standard detector tuning.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MaxLengthVariancePercent:  50.0,
		MinCorrectDistractorRatio: 0.7,
		MaxCorrectDistractorRatio: 1.3,
		MinAnswerLength:           10,
		RequireDistractorReason:   false,
		MinDistractorReasonLength: 20,
	}
}

// OptionLength is the per-option slice of the length metrics.
type OptionLength struct {
	Preview          string  `json:"preview"`
	Length           int     `json:"length"`
	IsCorrect        bool    `json:"is_correct"`
	DeviationPercent float64 `json:"deviation_percent"`
}

// Metrics summarizes option text lengths for one question.
// CorrectDistractorRatio is 1.0 when there are no distractors to
// compare against.
type Metrics struct {
	MeanLength             float64        `json:"mean_length"`
	MinLength              int            `json:"min_length"`
	MaxLength              int            `json:"max_length"`
	CorrectAvgLength       float64        `json:"correct_avg_length"`
	DistractorAvgLength    float64        `json:"distractor_avg_length"`
	CorrectDistractorRatio float64        `json:"correct_distractor_ratio"`
	LengthVariancePercent  float64        `json:"length_variance_percent"`
	Lengths                []OptionLength `json:"lengths"`
}

const previewRunes = 50

// AnalyzeLengths computes length statistics for an option set. An
// empty set yields zero metrics with a neutral ratio of 1.0.
func AnalyzeLengths(options []Option) Metrics {
	m := Metrics{CorrectDistractorRatio: 1.0, Lengths: []OptionLength{}}
	if len(options) == 0 {
		return m
	}

	lengths := make([]int, len(options))
	total, correctTotal, distractorTotal := 0, 0, 0
	correctN, distractorN := 0, 0
	m.MinLength = math.MaxInt
	for i, opt := range options {
		n := utf8.RuneCountInString(opt.Text)
		lengths[i] = n
		total += n
		if n < m.MinLength {
			m.MinLength = n
		}
		if n > m.MaxLength {
			m.MaxLength = n
		}
		if opt.IsCorrect {
			correctTotal += n
			correctN++
		} else {
			distractorTotal += n
			distractorN++
		}
	}

	m.MeanLength = float64(total) / float64(len(options))
	if correctN > 0 {
		m.CorrectAvgLength = float64(correctTotal) / float64(correctN)
	}
	if distractorN > 0 {
		m.DistractorAvgLength = float64(distractorTotal) / float64(distractorN)
		m.CorrectDistractorRatio = m.CorrectAvgLength / m.DistractorAvgLength
	}
	if m.MeanLength > 0 {
		maxDev := 0.0
		for _, n := range lengths {
			if d := math.Abs(float64(n) - m.MeanLength); d > maxDev {
				maxDev = d
			}
		}
		m.LengthVariancePercent = maxDev / m.MeanLength * 100
	}

	for i, opt := range options {
		ol := OptionLength{
			Preview:   truncate(opt.Text, previewRunes),
			Length:    lengths[i],
			IsCorrect: opt.IsCorrect,
		}
		if m.MeanLength > 0 {
			ol.DeviationPercent = (float64(lengths[i]) - m.MeanLength) / m.MeanLength * 100
		}
		m.Lengths = append(m.Lengths, ol)
	}
	return m
}

func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}

// Report is the full analysis of one option set. Valid means no
// error-severity findings; warnings never invalidate a question.
type Report struct {
	Valid    bool      `json:"valid"`
	Issues   []Finding `json:"issues"`
	Warnings []Finding `json:"warnings"`
	Metrics  Metrics   `json:"metrics"`
	Score    float64   `json:"score"`
	Grade    string    `json:"grade"`
}

// Analyze runs every bias check over the option set and scores the
// result. Pure; safe for concurrent use.
func Analyze(options []Option, t Thresholds) Report {
	m := AnalyzeLengths(options)
	issues := []Finding{}
	warnings := []Finding{}

	if m.LengthVariancePercent > t.MaxLengthVariancePercent {
		issues = append(issues, Finding{
			Code:     CodeLengthVarianceHigh,
			Severity: SeverityError,
			Message: fmt.Sprintf("answer lengths vary too much (%.1f%% from mean); keep every option within %.0f%% of the mean",
				m.LengthVariancePercent, t.MaxLengthVariancePercent),
		})
	}

	if m.CorrectDistractorRatio > t.MaxCorrectDistractorRatio {
		issues = append(issues, Finding{
			Code:     CodeCorrectTooLong,
			Severity: SeverityError,
			Message: fmt.Sprintf("correct answers are %.2fx longer than distractors; target ratio between %.1f and %.1f",
				m.CorrectDistractorRatio, t.MinCorrectDistractorRatio, t.MaxCorrectDistractorRatio),
		})
	}

	if m.CorrectDistractorRatio < t.MinCorrectDistractorRatio {
		warnings = append(warnings, Finding{
			Code:     CodeCorrectTooShort,
			Severity: SeverityWarning,
			Message: fmt.Sprintf("correct answers are %.2fx the length of distractors; consider expanding them",
				m.CorrectDistractorRatio),
		})
	}

	for i, opt := range options {
		if n := utf8.RuneCountInString(opt.Text); n < t.MinAnswerLength {
			issues = append(issues, Finding{
				Code:     CodeAnswerTooShort,
				Severity: SeverityError,
				Message:  fmt.Sprintf("option %d is too short (%d chars); minimum %d", i+1, n, t.MinAnswerLength),
			})
		}
	}

	for i, opt := range options {
		if opt.IsCorrect {
			continue
		}
		switch n := utf8.RuneCountInString(opt.DistractorReason); {
		case n == 0:
			if t.RequireDistractorReason {
				issues = append(issues, Finding{
					Code:     CodeMissingDistractorReason,
					Severity: SeverityError,
					Message:  fmt.Sprintf("option %d is a distractor with no distractor_reason; explain why it is tempting", i+1),
				})
			}
		case n < t.MinDistractorReasonLength:
			warnings = append(warnings, Finding{
				Code:     CodeDistractorReasonTooShort,
				Severity: SeverityWarning,
				Message:  fmt.Sprintf("option %d distractor_reason is too brief (%d chars); minimum %d", i+1, n, t.MinDistractorReasonLength),
			})
		}
	}

	score := scoreFor(m, len(issues), len(warnings), t)
	return Report{
		Valid:    len(issues) == 0,
		Issues:   issues,
		Warnings: warnings,
		Metrics:  m,
		Score:    score,
		Grade:    Grade(score),
	}
}

// Scoring weights. Variance and ratio scale with how badly the
// thresholds are overrun; findings charge a flat penalty each.
const (
	varianceWeight = 0.30
	ratioWeight    = 0.40
	issuePenalty   = 0.15
	warningPenalty = 0.05
)

func scoreFor(m Metrics, issues, warnings int, t Thresholds) float64 {
	score := 1.0

	if t.MaxLengthVariancePercent > 0 {
		varianceScore := math.Max(0, 1-m.LengthVariancePercent/t.MaxLengthVariancePercent)
		score -= varianceWeight * (1 - varianceScore)
	}

	maxDeviation := math.Max(1-t.MinCorrectDistractorRatio, t.MaxCorrectDistractorRatio-1)
	if maxDeviation > 0 {
		ratioScore := math.Max(0, 1-math.Abs(m.CorrectDistractorRatio-1)/maxDeviation)
		score -= ratioWeight * (1 - ratioScore)
	}

	score -= float64(issues) * issuePenalty
	score -= float64(warnings) * warningPenalty
	return math.Max(0, math.Min(1, score))
}

// Grade converts a [0,1] quality score to a letter grade.
func Grade(score float64) string {
	switch {
	case score >= 0.9:
		return "A"
	case score >= 0.8:
		return "B"
	case score >= 0.7:
		return "C"
	case score >= 0.6:
		return "D"
	default:
		return "F"
	}
}
