package bias

import (
	"strings"
	"testing"
)

func TestBuildExamReport_Aggregates(t *testing.T) {
	questions := []QuestionOptions{
		{QuestionID: "q-clean", Text: "Which storage service fits?", Options: balancedOptions()},
		{QuestionID: "q-biased", Text: "Which answer gives itself away?", Options: []Option{
			correct("This is a very long correct answer with extensive detail"),
			distractor("Short", ""),
			distractor("Short", ""),
			distractor("Short", ""),
		}},
		{QuestionID: "q-warned", Text: "Which reasons are thin?", Options: []Option{
			correct("Correct answer here"),
			distractor("Wrong answer A here", "Bad"),
			distractor("Wrong answer B here", "Meh"),
			distractor("Wrong answer C here", "Eh."),
		}},
	}

	r := BuildExamReport(questions, DefaultThresholds())

	if r.QuestionCount != 3 {
		t.Errorf("QuestionCount = %d, want 3", r.QuestionCount)
	}
	if len(r.FlaggedIDs) != 1 || r.FlaggedIDs[0] != "q-biased" {
		t.Errorf("FlaggedIDs = %v, want [q-biased]", r.FlaggedIDs)
	}
	if got := r.CountsByCode[CodeAnswerTooShort]; got != 3 {
		t.Errorf("CountsByCode[answer_too_short] = %d, want 3", got)
	}
	if got := r.CountsByCode[CodeDistractorReasonTooShort]; got != 3 {
		t.Errorf("CountsByCode[distractor_reason_too_short] = %d, want 3", got)
	}
	if got := r.CountsByCode[CodeCorrectTooLong]; got != 1 {
		t.Errorf("CountsByCode[correct_too_long] = %d, want 1", got)
	}

	graded := 0
	for _, n := range r.GradeCounts {
		graded += n
	}
	if graded != 3 {
		t.Errorf("grade counts sum to %d, want 3", graded)
	}
	if r.GradeCounts["F"] != 1 {
		t.Errorf("GradeCounts[F] = %d, want 1 for the biased question", r.GradeCounts["F"])
	}
	if r.MeanScore <= 0 || r.MeanScore >= 1 {
		t.Errorf("MeanScore = %v, want strictly between 0 and 1", r.MeanScore)
	}

	if len(r.WorstOffenders) != 1 {
		t.Fatalf("WorstOffenders = %+v, want just the F-graded question", r.WorstOffenders)
	}
	off := r.WorstOffenders[0]
	if off.QuestionID != "q-biased" || off.Grade != "F" {
		t.Errorf("offender = %s grade %s, want q-biased grade F", off.QuestionID, off.Grade)
	}
	if off.Preview == "" || len(off.Issues) == 0 || len(off.Issues) > 3 {
		t.Errorf("offender detail = %+v, want preview and 1..3 issues", off)
	}
	if len(r.Recommendations) == 0 {
		t.Error("expected a recommendation for the failing question")
	}
}

func TestBuildExamReport_WorstOffendersSortedWorstFirst(t *testing.T) {
	questions := []QuestionOptions{
		// High variance only: scores 0.55, grade F.
		{QuestionID: "q-mild", Text: "mild", Options: []Option{
			distractor(strings.Repeat("a", 10), ""),
			correct(strings.Repeat("b", 30)),
			distractor(strings.Repeat("c", 30), ""),
			distractor(strings.Repeat("d", 50), ""),
		}},
		// Every check fires: score bottoms out at 0.
		{QuestionID: "q-awful", Text: "awful", Options: []Option{
			correct("This is a very long correct answer with truly extensive and exhaustive detail"),
			distractor("Short", ""),
			distractor("Short", ""),
			distractor("Short", ""),
		}},
	}

	r := BuildExamReport(questions, DefaultThresholds())

	if len(r.WorstOffenders) != 2 {
		t.Fatalf("WorstOffenders = %+v, want both questions", r.WorstOffenders)
	}
	if r.WorstOffenders[0].QuestionID != "q-awful" {
		t.Errorf("worst first = %s (score %v), want q-awful",
			r.WorstOffenders[0].QuestionID, r.WorstOffenders[0].Score)
	}
	if r.WorstOffenders[0].Score >= r.WorstOffenders[1].Score {
		t.Errorf("offenders not sorted by score: %v >= %v",
			r.WorstOffenders[0].Score, r.WorstOffenders[1].Score)
	}
}

func TestBuildExamReport_Empty(t *testing.T) {
	r := BuildExamReport(nil, DefaultThresholds())

	if r.QuestionCount != 0 || r.MeanScore != 0 {
		t.Errorf("empty report = %d questions, mean %v, want zeros", r.QuestionCount, r.MeanScore)
	}
	if len(r.FlaggedIDs) != 0 || len(r.CountsByCode) != 0 || len(r.GradeCounts) != 0 {
		t.Errorf("empty report carries aggregates: %+v", r)
	}
}

func TestFormatReport_ListsIssuesAndMetrics(t *testing.T) {
	r := Analyze([]Option{
		correct("Very long correct answer with lots and lots of details"),
		distractor("Short A", "Bad"),
		distractor("Short B", ""),
		distractor("Short C", ""),
	}, DefaultThresholds())
	out := FormatReport(r)

	if !strings.Contains(out, "validation failed") {
		t.Errorf("output missing failure header:\n%s", out)
	}
	if !strings.Contains(out, "1. ") {
		t.Errorf("output missing numbered issues:\n%s", out)
	}
	for _, f := range r.Issues {
		if !strings.Contains(out, f.Message) {
			t.Errorf("output missing issue %q", f.Message)
		}
	}
	if !strings.Contains(out, "Warnings:") {
		t.Errorf("output missing warnings section:\n%s", out)
	}
	if !strings.Contains(out, "Mean answer length") {
		t.Errorf("output missing metrics block:\n%s", out)
	}
	if !strings.Contains(out, "Rewrite answers") {
		t.Errorf("output missing closing instruction:\n%s", out)
	}
}
