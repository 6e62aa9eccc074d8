package bias

import (
	"fmt"
	"sort"
	"strings"
)

// QuestionOptions pairs a question with its option set for exam-wide
// analysis. Callers fetch the data; the analyzer stays free of
// storage concerns.
type QuestionOptions struct {
	QuestionID string
	Text       string
	Options    []Option
}

// Offender is one low-grade question surfaced by the exam report,
// carrying at most three issue messages.
type Offender struct {
	QuestionID string   `json:"question_id"`
	Preview    string   `json:"preview"`
	Grade      string   `json:"grade"`
	Score      float64  `json:"score"`
	Issues     []string `json:"issues"`
}

// ExamReport aggregates per-question analyses across an exam.
// FlaggedIDs lists the invalid questions in input order;
// WorstOffenders lists D and F graded questions worst first.
type ExamReport struct {
	QuestionCount   int            `json:"question_count"`
	FlaggedIDs      []string       `json:"flagged_question_ids"`
	CountsByCode    map[Code]int   `json:"counts_by_code"`
	MeanScore       float64        `json:"mean_score"`
	GradeCounts     map[string]int `json:"grade_counts"`
	WorstOffenders  []Offender     `json:"worst_offenders"`
	Recommendations []string       `json:"recommendations"`
}

const (
	offenderPreviewRunes = 80
	maxWorstOffenders    = 10
	maxOffenderIssues    = 3
)

// BuildExamReport analyzes every question and folds the results into
// one exam-wide view.
func BuildExamReport(questions []QuestionOptions, t Thresholds) ExamReport {
	r := ExamReport{
		QuestionCount:   len(questions),
		FlaggedIDs:      []string{},
		CountsByCode:    map[Code]int{},
		GradeCounts:     map[string]int{},
		WorstOffenders:  []Offender{},
		Recommendations: []string{},
	}
	total := 0.0
	for _, q := range questions {
		rep := Analyze(q.Options, t)
		total += rep.Score
		r.GradeCounts[rep.Grade]++
		for _, f := range rep.Issues {
			r.CountsByCode[f.Code]++
		}
		for _, f := range rep.Warnings {
			r.CountsByCode[f.Code]++
		}
		if !rep.Valid {
			r.FlaggedIDs = append(r.FlaggedIDs, q.QuestionID)
		}
		if rep.Grade == "D" || rep.Grade == "F" {
			o := Offender{
				QuestionID: q.QuestionID,
				Preview:    truncate(q.Text, offenderPreviewRunes),
				Grade:      rep.Grade,
				Score:      rep.Score,
				Issues:     []string{},
			}
			for _, f := range rep.Issues {
				if len(o.Issues) == maxOffenderIssues {
					break
				}
				o.Issues = append(o.Issues, f.Message)
			}
			r.WorstOffenders = append(r.WorstOffenders, o)
		}
	}
	if len(questions) > 0 {
		r.MeanScore = total / float64(len(questions))
	}

	sort.SliceStable(r.WorstOffenders, func(i, j int) bool {
		return r.WorstOffenders[i].Score < r.WorstOffenders[j].Score
	})
	if len(r.WorstOffenders) > maxWorstOffenders {
		r.WorstOffenders = r.WorstOffenders[:maxWorstOffenders]
	}

	if n := r.GradeCounts["F"]; n > 0 {
		r.Recommendations = append(r.Recommendations,
			fmt.Sprintf("%d questions have failing grades and need immediate attention.", n))
	}
	if n := r.GradeCounts["D"]; n > 0 {
		r.Recommendations = append(r.Recommendations,
			fmt.Sprintf("%d questions have D grades and should be reviewed.", n))
	}
	if r.QuestionCount > 0 && r.MeanScore < 0.7 {
		r.Recommendations = append(r.Recommendations,
			"Overall quality is below target; review answer length balance.")
	}
	return r
}

// FormatReport renders a failed analysis as a plain-text block for
// CLI output and rejection messages.
func FormatReport(r Report) string {
	var b strings.Builder
	b.WriteString("Answer bias validation failed:\n\n")
	for i, f := range r.Issues {
		fmt.Fprintf(&b, "%d. %s\n\n", i+1, f.Message)
	}
	if len(r.Warnings) > 0 {
		b.WriteString("Warnings:\n")
		for _, f := range r.Warnings {
			fmt.Fprintf(&b, "  - %s\n", f.Message)
		}
		b.WriteString("\n")
	}
	b.WriteString("Current metrics:\n")
	fmt.Fprintf(&b, "  - Mean answer length: %.0f chars\n", r.Metrics.MeanLength)
	fmt.Fprintf(&b, "  - Correct avg: %.0f chars\n", r.Metrics.CorrectAvgLength)
	fmt.Fprintf(&b, "  - Distractor avg: %.0f chars\n", r.Metrics.DistractorAvgLength)
	fmt.Fprintf(&b, "  - Correct/distractor ratio: %.2fx\n\n", r.Metrics.CorrectDistractorRatio)
	b.WriteString("Rewrite answers to address these issues before retrying.")
	return b.String()
}
