package httpapi

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jfarleigh/certrun/internal/practice"
	"github.com/jfarleigh/certrun/internal/store"
)

func (s *Server) handleStartSession(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ExamID  string `json:"exam_id"`
		TopicID string `json:"topic_id"`
		Mode    string `json:"mode"`
		Size    int    `json:"size"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.ExamID == "" {
		respondError(w, http.StatusBadRequest, "exam_id is required")
		return
	}
	if req.Mode != "" && req.Mode != store.ModePractice && req.Mode != store.ModeSpeedrun {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("unknown session mode %q", req.Mode))
		return
	}

	size := req.Size
	if size <= 0 {
		size = s.sessionSize
	}

	sess, err := s.practice.Start(r.Context(), practice.StartInput{
		ExamID:  req.ExamID,
		TopicID: req.TopicID,
		Mode:    req.Mode,
		Size:    size,
	})
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, toSessionView(sess))
}

func (s *Server) handleNextQuestion(w http.ResponseWriter, r *http.Request) {
	next, err := s.practice.Next(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, nextQuestionView{
		Position: next.Position,
		Total:    next.Total,
		Question: toDisplayQuestionView(next.Question),
	})
}

func (s *Server) handleRecordAnswer(w http.ResponseWriter, r *http.Request) {
	var req struct {
		QuestionID        string   `json:"question_id"`
		SelectedOptionIDs []string `json:"selected_option_ids"`
		ElapsedSeconds    float64  `json:"elapsed_seconds"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.QuestionID == "" {
		respondError(w, http.StatusBadRequest, "question_id is required")
		return
	}

	result, err := s.practice.Record(r.Context(), practice.RecordInput{
		SessionID:        chi.URLParam(r, "sessionID"),
		QuestionID:       req.QuestionID,
		SubmittedOptions: req.SelectedOptionIDs,
		ElapsedSeconds:   req.ElapsedSeconds,
	})
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, answerResultView{
		IsCorrect:        result.IsCorrect,
		CorrectOptionIDs: result.CorrectOptionIDs,
		Explanation:      result.Explanation,
		Stat:             toStatView(result.Stat),
		SessionComplete:  result.SessionComplete,
	})
}

func (s *Server) handleEndSession(w http.ResponseWriter, r *http.Request) {
	reason := store.SessionAbandoned
	if r.ContentLength != 0 {
		var req struct {
			Reason string `json:"reason"`
		}
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		if req.Reason != "" {
			reason = req.Reason
		}
	}
	if reason != store.SessionCompleted && reason != store.SessionAbandoned {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("unknown end reason %q", reason))
		return
	}

	sess, err := s.practice.End(r.Context(), chi.URLParam(r, "sessionID"), reason)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toSessionView(sess))
}

func (s *Server) handleSessionResults(w http.ResponseWriter, r *http.Request) {
	summary, err := s.practice.Results(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toSummaryView(summary))
}

func (s *Server) handleExamStats(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if n, ok, err := queryInt(r, "limit"); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	} else if ok {
		limit = n
	}

	stats, err := s.practice.Stats(r.Context(), chi.URLParam(r, "examID"), limit)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toExamStatsView(stats))
}
