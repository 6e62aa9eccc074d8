package bank

import (
	"strings"
	"testing"

	"github.com/jfarleigh/certrun/internal/store"
)

func TestValidateAnswerSet(t *testing.T) {
	tests := []struct {
		name         string
		questionType string
		chooseCount  int
		options      int
		correct      int
		wantProblem  string // empty means valid
	}{
		{"single with one correct", store.QuestionSingle, 0, 4, 1, ""},
		{"single with none correct", store.QuestionSingle, 0, 4, 0, "exactly 1 correct"},
		{"single with two correct", store.QuestionSingle, 0, 4, 2, "exactly 1 correct"},
		{"choose_n matching", store.QuestionChooseN, 2, 4, 2, ""},
		{"choose_n missing count", store.QuestionChooseN, 0, 4, 2, "choose_count is required"},
		{"choose_n mismatch", store.QuestionChooseN, 3, 4, 2, "exactly 3 correct"},
		{"choose_n count too high", store.QuestionChooseN, 4, 4, 4, "less than the number of options"},
		{"select_all with several", store.QuestionSelectAll, 0, 4, 3, ""},
		{"select_all with none", store.QuestionSelectAll, 0, 4, 0, "at least 1 correct"},
		{"unknown type", "essay", 0, 4, 1, "unknown question type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			problems := validateAnswerSet(tt.questionType, tt.chooseCount, tt.options, tt.correct)
			if tt.wantProblem == "" {
				if len(problems) != 0 {
					t.Fatalf("problems = %v, want none", problems)
				}
				return
			}
			if !strings.Contains(strings.Join(problems, "; "), tt.wantProblem) {
				t.Errorf("problems = %v, want mention of %q", problems, tt.wantProblem)
			}
		})
	}
}

func TestValidateQuestionCollectsEverything(t *testing.T) {
	problems := validateQuestion("", "essay", "impossible", 0, []OptionInput{{Text: " "}})

	joined := strings.Join(problems, "; ")
	for _, want := range []string{
		"question text is required",
		`unknown difficulty "impossible"`,
		"at least 2 answer options",
		"option 1 text is required",
		`unknown question type "essay"`,
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("problems %v missing %q", problems, want)
		}
	}
}

func TestValidateQuestionCleanSet(t *testing.T) {
	problems := validateQuestion("Which service stores objects durably?", store.QuestionSingle, store.DifficultyMedium, 0, balancedInputs())
	if len(problems) != 0 {
		t.Errorf("problems = %v, want none", problems)
	}
}
