package bank

import (
	"fmt"
	"strings"

	"github.com/jfarleigh/certrun/internal/store"
)

// minOptions is the floor on answer options per question. Below two
// there is nothing to choose between.
const minOptions = 2

// validateQuestion runs every structural check on a question
// submission and reports all failures together, so a rejected
// submission can be fixed in one pass.
func validateQuestion(text, questionType, difficulty string, chooseCount int, options []OptionInput) []string {
	var problems []string
	if strings.TrimSpace(text) == "" {
		problems = append(problems, "question text is required")
	}
	if difficulty != "" && !validDifficulty(difficulty) {
		problems = append(problems, fmt.Sprintf("unknown difficulty %q", difficulty))
	}
	if len(options) < minOptions {
		problems = append(problems, fmt.Sprintf("questions must have at least %d answer options", minOptions))
	}
	for i, opt := range options {
		if strings.TrimSpace(opt.Text) == "" {
			problems = append(problems, fmt.Sprintf("option %d text is required", i+1))
		}
	}
	return append(problems, validateAnswerSet(questionType, chooseCount, len(options), countCorrect(options))...)
}

// validateAnswerSet applies the per-type correctness rules. Only the
// counts matter: how many options exist and how many are correct.
func validateAnswerSet(questionType string, chooseCount, optionCount, correctCount int) []string {
	var problems []string
	switch questionType {
	case store.QuestionSingle:
		if correctCount != 1 {
			problems = append(problems, fmt.Sprintf("single choice questions must have exactly 1 correct option, found %d", correctCount))
		}
	case store.QuestionChooseN:
		if chooseCount <= 0 {
			problems = append(problems, "choose_count is required for choose_n questions")
			break
		}
		if correctCount != chooseCount {
			problems = append(problems, fmt.Sprintf("choose %d questions must have exactly %d correct options, found %d", chooseCount, chooseCount, correctCount))
		}
		if chooseCount >= optionCount {
			problems = append(problems, fmt.Sprintf("choose_count (%d) must be less than the number of options (%d)", chooseCount, optionCount))
		}
	case store.QuestionSelectAll:
		if correctCount < 1 {
			problems = append(problems, "select_all questions must have at least 1 correct option")
		}
	default:
		problems = append(problems, fmt.Sprintf("unknown question type %q", questionType))
	}
	return problems
}

func validDifficulty(d string) bool {
	return d == store.DifficultyEasy || d == store.DifficultyMedium || d == store.DifficultyHard
}

func validQuestionType(t string) bool {
	return t == store.QuestionSingle || t == store.QuestionChooseN || t == store.QuestionSelectAll
}

func countCorrect(options []OptionInput) int {
	n := 0
	for _, o := range options {
		if o.IsCorrect {
			n++
		}
	}
	return n
}
