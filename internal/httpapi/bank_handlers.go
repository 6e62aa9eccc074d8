package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jfarleigh/certrun/internal/bank"
	"github.com/jfarleigh/certrun/internal/bias"
	"github.com/jfarleigh/certrun/internal/store"
)

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("invalid JSON body")
	}
	return nil
}

// queryInt parses an optional integer query parameter. ok is false
// when the parameter is absent.
func queryInt(r *http.Request, key string) (n int, ok bool, err error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, false, nil
	}
	n, err = strconv.Atoi(raw)
	if err != nil {
		return 0, false, fmt.Errorf("%s must be an integer", key)
	}
	return n, true, nil
}

func (s *Server) handleCreateExam(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name             string `json:"name"`
		Vendor           string `json:"vendor"`
		ExamCode         string `json:"exam_code"`
		Description      string `json:"description"`
		PassingScore     int    `json:"passing_score"`
		TimeLimitMinutes int    `json:"time_limit_minutes"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	exam, err := s.bank.CreateExam(r.Context(), bank.CreateExamInput{
		Name:             req.Name,
		Vendor:           req.Vendor,
		ExamCode:         req.ExamCode,
		Description:      req.Description,
		PassingScore:     req.PassingScore,
		TimeLimitMinutes: req.TimeLimitMinutes,
	})
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, toExamView(exam))
}

func (s *Server) handleListExams(w http.ResponseWriter, r *http.Request) {
	exams, err := s.bank.Exams(r.Context())
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	out := make([]examView, 0, len(exams))
	for _, e := range exams {
		out = append(out, toExamView(e))
	}
	respondJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetExam(w http.ResponseWriter, r *http.Request) {
	exam, err := s.bank.Exam(r.Context(), chi.URLParam(r, "examID"))
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toExamView(exam))
}

func (s *Server) handleCreateTopic(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name          string `json:"name"`
		Description   string `json:"description"`
		WeightPercent int    `json:"weight_percent"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	topic, err := s.bank.CreateTopic(r.Context(), bank.CreateTopicInput{
		ExamID:        chi.URLParam(r, "examID"),
		Name:          req.Name,
		Description:   req.Description,
		WeightPercent: req.WeightPercent,
	})
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, toTopicView(topic))
}

func (s *Server) handleListTopics(w http.ResponseWriter, r *http.Request) {
	topics, err := s.bank.Topics(r.Context(), chi.URLParam(r, "examID"))
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	out := make([]topicView, 0, len(topics))
	for _, t := range topics {
		out = append(out, toTopicView(t))
	}
	respondJSON(w, http.StatusOK, out)
}

type optionPayload struct {
	Text             string `json:"text"`
	IsCorrect        bool   `json:"is_correct"`
	DistractorReason string `json:"distractor_reason"`
}

func toOptionInputs(payload []optionPayload) []bank.OptionInput {
	out := make([]bank.OptionInput, len(payload))
	for i, o := range payload {
		out[i] = bank.OptionInput{
			Text:             o.Text,
			IsCorrect:        o.IsCorrect,
			DistractorReason: o.DistractorReason,
		}
	}
	return out
}

func (s *Server) handleCreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ExamID       string          `json:"exam_id"`
		Text         string          `json:"text"`
		QuestionType string          `json:"question_type"`
		ChooseCount  int             `json:"choose_count"`
		Difficulty   string          `json:"difficulty"`
		Explanation  string          `json:"explanation"`
		Source       string          `json:"source"`
		PatternTags  []string        `json:"pattern_tags"`
		TopicIDs     []string        `json:"topic_ids"`
		Options      []optionPayload `json:"options"`
		AllowBiased  bool            `json:"allow_biased"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	q, err := s.bank.CreateQuestion(r.Context(), bank.CreateQuestionInput{
		ExamID:       req.ExamID,
		Text:         req.Text,
		QuestionType: req.QuestionType,
		ChooseCount:  req.ChooseCount,
		Difficulty:   req.Difficulty,
		Explanation:  req.Explanation,
		Source:       req.Source,
		PatternTags:  req.PatternTags,
		TopicIDs:     req.TopicIDs,
		Options:      toOptionInputs(req.Options),
		AllowBiased:  req.AllowBiased,
	})
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, toQuestionView(q))
}

func (s *Server) handleListQuestions(w http.ResponseWriter, r *http.Request) {
	f := store.QuestionFilter{
		ExamID:       r.URL.Query().Get("exam_id"),
		TopicID:      r.URL.Query().Get("topic_id"),
		Difficulty:   r.URL.Query().Get("difficulty"),
		QuestionType: r.URL.Query().Get("type"),
		WithOptions:  r.URL.Query().Get("with_options") == "true",
	}
	if n, ok, err := queryInt(r, "limit"); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	} else if ok {
		f.Limit = n
	}
	if n, ok, err := queryInt(r, "offset"); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	} else if ok {
		f.Offset = n
	}

	questions, err := s.bank.Questions(r.Context(), f)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toQuestionViews(questions))
}

func (s *Server) handleGetQuestion(w http.ResponseWriter, r *http.Request) {
	q, err := s.bank.Question(r.Context(), chi.URLParam(r, "questionID"))
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toQuestionView(q))
}

func (s *Server) handleUpdateQuestion(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text        *string   `json:"text"`
		Explanation *string   `json:"explanation"`
		Difficulty  *string   `json:"difficulty"`
		Source      *string   `json:"source"`
		PatternTags *[]string `json:"pattern_tags"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	q, err := s.bank.UpdateQuestion(r.Context(), store.QuestionUpdate{
		ID:          chi.URLParam(r, "questionID"),
		Text:        req.Text,
		Explanation: req.Explanation,
		Difficulty:  req.Difficulty,
		Source:      req.Source,
		PatternTags: req.PatternTags,
	})
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toQuestionView(q))
}

func (s *Server) handleUpdateOptions(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Options []struct {
			ID               string  `json:"id"`
			Text             *string `json:"text"`
			IsCorrect        *bool   `json:"is_correct"`
			DistractorReason *string `json:"distractor_reason"`
		} `json:"options"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	updates := make([]store.OptionUpdate, len(req.Options))
	for i, o := range req.Options {
		updates[i] = store.OptionUpdate{
			ID:               o.ID,
			Text:             o.Text,
			IsCorrect:        o.IsCorrect,
			DistractorReason: o.DistractorReason,
		}
	}

	result, err := s.bank.UpdateOptions(r.Context(), chi.URLParam(r, "questionID"), updates)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, struct {
		Question questionView `json:"question"`
		Report   bias.Report  `json:"report"`
	}{
		Question: toQuestionView(result.Question),
		Report:   result.Report,
	})
}

func (s *Server) handleDeleteQuestion(w http.ResponseWriter, r *http.Request) {
	if err := s.bank.DeleteQuestion(r.Context(), chi.URLParam(r, "questionID")); err != nil {
		s.writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSearchQuestions(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if n, ok, err := queryInt(r, "limit"); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	} else if ok {
		limit = n
	}

	results, err := s.bank.Search(r.Context(), r.URL.Query().Get("exam_id"), r.URL.Query().Get("q"), limit)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	out := make([]searchResultView, 0, len(results))
	for _, res := range results {
		out = append(out, searchResultView{
			Question: toQuestionView(res.Question),
			Snippet:  res.Snippet,
		})
	}
	respondJSON(w, http.StatusOK, out)
}

func (s *Server) handleQuestionQuality(w http.ResponseWriter, r *http.Request) {
	quality, err := s.bank.QuestionQuality(r.Context(), chi.URLParam(r, "questionID"))
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, quality)
}

func (s *Server) handleAnalyzeAnswers(w http.ResponseWriter, r *http.Request) {
	var req struct {
		QuestionType string          `json:"question_type"`
		ChooseCount  int             `json:"choose_count"`
		Options      []optionPayload `json:"options"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	result := s.bank.AnalyzeProposal(bank.ProposalInput{
		QuestionType: req.QuestionType,
		ChooseCount:  req.ChooseCount,
		Options:      toOptionInputs(req.Options),
	})
	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleExamBiasReport(w http.ResponseWriter, r *http.Request) {
	quality, err := s.bank.ExamBiasReport(r.Context(), chi.URLParam(r, "examID"))
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, struct {
		Exam   examView        `json:"exam"`
		Report bias.ExamReport `json:"report"`
	}{
		Exam:   toExamView(quality.Exam),
		Report: quality.Report,
	})
}

func (s *Server) handleGuidelines(w http.ResponseWriter, r *http.Request) {
	numAnswers, _, err := queryInt(r, "num_answers")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	targetLength, _, err := queryInt(r, "target_length")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, s.bank.Guidelines(numAnswers, targetLength))
}
