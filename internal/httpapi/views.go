package httpapi

import (
	"math/rand"
	"time"

	"github.com/jfarleigh/certrun/internal/practice"
	"github.com/jfarleigh/certrun/internal/store"
)

type examView struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Vendor           string    `json:"vendor,omitempty"`
	ExamCode         string    `json:"exam_code,omitempty"`
	Description      string    `json:"description,omitempty"`
	PassingScore     int       `json:"passing_score"`
	TimeLimitMinutes int       `json:"time_limit_minutes"`
	QuestionCount    int       `json:"question_count"`
	CreatedAt        time.Time `json:"created_at"`
}

func toExamView(e *store.Exam) examView {
	return examView{
		ID:               e.ID,
		Name:             e.Name,
		Vendor:           e.Vendor,
		ExamCode:         e.ExamCode,
		Description:      e.Description,
		PassingScore:     e.PassingScore,
		TimeLimitMinutes: e.TimeLimitMinutes,
		QuestionCount:    e.QuestionCount,
		CreatedAt:        e.CreatedAt,
	}
}

type topicView struct {
	ID            string `json:"id"`
	ExamID        string `json:"exam_id"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	WeightPercent int    `json:"weight_percent"`
}

func toTopicView(t *store.Topic) topicView {
	return topicView{
		ID:            t.ID,
		ExamID:        t.ExamID,
		Name:          t.Name,
		Description:   t.Description,
		WeightPercent: t.WeightPercent,
	}
}

// optionView is the authoring representation of an answer option,
// correctness included. Never served inside a practice session.
type optionView struct {
	ID               string `json:"id"`
	Text             string `json:"text"`
	IsCorrect        bool   `json:"is_correct"`
	DistractorReason string `json:"distractor_reason,omitempty"`
	Position         int    `json:"position"`
}

type questionView struct {
	ID           string       `json:"id"`
	ExamID       string       `json:"exam_id"`
	Text         string       `json:"text"`
	QuestionType string       `json:"question_type"`
	ChooseCount  int          `json:"choose_count,omitempty"`
	Difficulty   string       `json:"difficulty"`
	Explanation  string       `json:"explanation,omitempty"`
	Source       string       `json:"source,omitempty"`
	PatternTags  []string     `json:"pattern_tags,omitempty"`
	TopicIDs     []string     `json:"topic_ids,omitempty"`
	Options      []optionView `json:"options,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
}

func toQuestionView(q *store.Question) questionView {
	v := questionView{
		ID:           q.ID,
		ExamID:       q.ExamID,
		Text:         q.Text,
		QuestionType: q.QuestionType,
		ChooseCount:  q.ChooseCount,
		Difficulty:   q.Difficulty,
		Explanation:  q.Explanation,
		Source:       q.Source,
		PatternTags:  q.PatternTags,
		TopicIDs:     q.TopicIDs,
		CreatedAt:    q.CreatedAt,
	}
	for _, o := range q.Options {
		v.Options = append(v.Options, optionView{
			ID:               o.ID,
			Text:             o.Text,
			IsCorrect:        o.IsCorrect,
			DistractorReason: o.DistractorReason,
			Position:         o.Position,
		})
	}
	return v
}

func toQuestionViews(questions []*store.Question) []questionView {
	out := make([]questionView, 0, len(questions))
	for _, q := range questions {
		out = append(out, toQuestionView(q))
	}
	return out
}

// displayOptionView is the learner-facing option: id for grading,
// letter and text for display, nothing that gives the answer away.
type displayOptionView struct {
	ID     string `json:"id"`
	Letter string `json:"letter"`
	Text   string `json:"text"`
}

type displayQuestionView struct {
	ID           string              `json:"id"`
	Text         string              `json:"text"`
	QuestionType string              `json:"question_type"`
	ChooseCount  int                 `json:"choose_count,omitempty"`
	Difficulty   string              `json:"difficulty"`
	Options      []displayOptionView `json:"options"`
}

// toDisplayQuestionView shuffles the options and assigns display
// letters after the shuffle. Grading works on option ids, so the
// order served here never matters to correctness.
func toDisplayQuestionView(q *store.Question) displayQuestionView {
	shuffled := make([]store.AnswerOption, len(q.Options))
	copy(shuffled, q.Options)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	options := make([]displayOptionView, len(shuffled))
	for i, o := range shuffled {
		options[i] = displayOptionView{
			ID:     o.ID,
			Letter: string(rune('A' + i)),
			Text:   o.Text,
		}
	}
	return displayQuestionView{
		ID:           q.ID,
		Text:         q.Text,
		QuestionType: q.QuestionType,
		ChooseCount:  q.ChooseCount,
		Difficulty:   q.Difficulty,
		Options:      options,
	}
}

type nextQuestionView struct {
	Position int                 `json:"position"`
	Total    int                 `json:"total"`
	Question displayQuestionView `json:"question"`
}

type sessionView struct {
	ID            string     `json:"id"`
	ExamID        string     `json:"exam_id"`
	TopicID       string     `json:"topic_id,omitempty"`
	Mode          string     `json:"mode"`
	Status        string     `json:"status"`
	QuestionCount int        `json:"question_count"`
	StartedAt     time.Time  `json:"started_at"`
	EndedAt       *time.Time `json:"ended_at,omitempty"`
}

func toSessionView(sess *store.Session) sessionView {
	return sessionView{
		ID:            sess.ID,
		ExamID:        sess.ExamID,
		TopicID:       sess.TopicID,
		Mode:          sess.Mode,
		Status:        sess.Status,
		QuestionCount: len(sess.Questions),
		StartedAt:     sess.StartedAt,
		EndedAt:       sess.EndedAt,
	}
}

type statView struct {
	QuestionID          string     `json:"question_id"`
	AttemptCount        int        `json:"attempt_count"`
	CorrectCount        int        `json:"correct_count"`
	TotalElapsedSeconds float64    `json:"total_elapsed_seconds"`
	LastAttemptedAt     *time.Time `json:"last_attempted_at,omitempty"`
}

func toStatView(st *store.Stat) statView {
	return statView{
		QuestionID:          st.QuestionID,
		AttemptCount:        st.AttemptCount,
		CorrectCount:        st.CorrectCount,
		TotalElapsedSeconds: st.TotalElapsedSeconds,
		LastAttemptedAt:     st.LastAttemptedAt,
	}
}

type answerResultView struct {
	IsCorrect        bool     `json:"is_correct"`
	CorrectOptionIDs []string `json:"correct_option_ids"`
	Explanation      string   `json:"explanation,omitempty"`
	Stat             statView `json:"stat"`
	SessionComplete  bool     `json:"session_complete"`
}

type questionResultView struct {
	QuestionID     string  `json:"question_id"`
	Text           string  `json:"text"`
	Answered       bool    `json:"answered"`
	IsCorrect      bool    `json:"is_correct"`
	ElapsedSeconds float64 `json:"elapsed_seconds"`
}

type summaryView struct {
	Session             sessionView          `json:"session"`
	State               string               `json:"state"`
	Total               int                  `json:"total"`
	Answered            int                  `json:"answered"`
	Correct             int                  `json:"correct"`
	Accuracy            float64              `json:"accuracy"`
	TotalElapsedSeconds float64              `json:"total_elapsed_seconds"`
	Results             []questionResultView `json:"results"`
}

func toSummaryView(sum *practice.Summary) summaryView {
	v := summaryView{
		Session:             toSessionView(sum.Session),
		State:               sum.State.String(),
		Total:               sum.Total,
		Answered:            sum.Answered,
		Correct:             sum.Correct,
		TotalElapsedSeconds: sum.TotalElapsedSeconds,
		Results:             make([]questionResultView, 0, len(sum.Results)),
	}
	if sum.Answered > 0 {
		v.Accuracy = float64(sum.Correct) / float64(sum.Answered)
	}
	for _, r := range sum.Results {
		v.Results = append(v.Results, questionResultView{
			QuestionID:     r.QuestionID,
			Text:           r.Text,
			Answered:       r.Answered,
			IsCorrect:      r.IsCorrect,
			ElapsedSeconds: r.ElapsedSeconds,
		})
	}
	return v
}

type topicAccuracyView struct {
	TopicID       string  `json:"topic_id"`
	TopicName     string  `json:"topic_name"`
	QuestionCount int     `json:"question_count"`
	AttemptCount  int     `json:"attempt_count"`
	CorrectCount  int     `json:"correct_count"`
	Accuracy      float64 `json:"accuracy"`
}

type questionAccuracyView struct {
	QuestionID   string  `json:"question_id"`
	Text         string  `json:"text"`
	AttemptCount int     `json:"attempt_count"`
	CorrectCount int     `json:"correct_count"`
	Accuracy     float64 `json:"accuracy"`
}

type examStatsView struct {
	Exam    examView               `json:"exam"`
	Topics  []topicAccuracyView    `json:"topics"`
	Weakest []questionAccuracyView `json:"weakest_questions"`
}

func toExamStatsView(st *practice.ExamStats) examStatsView {
	v := examStatsView{
		Exam:    toExamView(st.Exam),
		Topics:  make([]topicAccuracyView, 0, len(st.Topics)),
		Weakest: make([]questionAccuracyView, 0, len(st.Weakest)),
	}
	for _, t := range st.Topics {
		v.Topics = append(v.Topics, topicAccuracyView{
			TopicID:       t.TopicID,
			TopicName:     t.TopicName,
			QuestionCount: t.QuestionCount,
			AttemptCount:  t.AttemptCount,
			CorrectCount:  t.CorrectCount,
			Accuracy:      t.Accuracy(),
		})
	}
	for _, q := range st.Weakest {
		v.Weakest = append(v.Weakest, questionAccuracyView{
			QuestionID:   q.QuestionID,
			Text:         q.Text,
			AttemptCount: q.AttemptCount,
			CorrectCount: q.CorrectCount,
			Accuracy:     q.Accuracy,
		})
	}
	return v
}

type searchResultView struct {
	Question questionView `json:"question"`
	Snippet  string       `json:"snippet"`
}
