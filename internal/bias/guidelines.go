package bias

import "fmt"

// DefaultTargetLength is the typical certification-exam answer length
// the guidance is built around, in runes.
const DefaultTargetLength = 80

// LengthGuidelines is authoring guidance for writing balanced option
// sets, served verbatim over the API.
type LengthGuidelines struct {
	TargetLength int      `json:"target_length"`
	MinLength    int      `json:"min_length"`
	MaxLength    int      `json:"max_length"`
	Constraints  []string `json:"constraints"`
	AntiPatterns []string `json:"anti_patterns"`
	Tips         []string `json:"tips"`
}

// Guidelines derives length targets from the thresholds around
// targetLength (DefaultTargetLength when non-positive) for a question
// with numAnswers options (4 when non-positive).
func Guidelines(numAnswers, targetLength int, t Thresholds) LengthGuidelines {
	if numAnswers <= 0 {
		numAnswers = 4
	}
	if targetLength <= 0 {
		targetLength = DefaultTargetLength
	}
	minLen := int(float64(targetLength) * (1 - t.MaxLengthVariancePercent/100))
	maxLen := int(float64(targetLength) * (1 + t.MaxLengthVariancePercent/100))
	if minLen < t.MinAnswerLength {
		minLen = t.MinAnswerLength
	}
	return LengthGuidelines{
		TargetLength: targetLength,
		MinLength:    minLen,
		MaxLength:    maxLen,
		Constraints: []string{
			fmt.Sprintf("Keep all %d answers within %.0f%% of each other in length.", numAnswers, t.MaxLengthVariancePercent),
			"Correct answers should not be noticeably longer than incorrect ones.",
			"Each distractor must be a plausible answer someone could reasonably choose.",
		},
		AntiPatterns: []string{
			"Making correct answers more detailed or comprehensive than distractors",
			"Using vague, obviously wrong distractors like 'None of the above'",
			"Starting correct answers with more specific technical terms",
			"Including hedging language only in incorrect answers",
			"Making only the correct answer grammatically complete",
		},
		Tips: []string{
			"Write all answers first, then check that lengths match",
			"Add context or detail to short distractors",
			"Trim overly detailed correct answers",
			"Each distractor should represent a common misconception",
		},
	}
}
