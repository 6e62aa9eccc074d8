package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jfarleigh/certrun/internal/bank"
	"github.com/jfarleigh/certrun/internal/bias"
	"github.com/jfarleigh/certrun/internal/practice"
)

type errorBody struct {
	Error    string   `json:"error"`
	Problems []string `json:"problems,omitempty"`
}

type biasedBody struct {
	Error  string      `json:"error"`
	Report bias.Report `json:"report"`
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, errorBody{Error: msg})
}

// writeServiceError maps the service error taxonomy onto HTTP status
// codes. Storage failures are logged here because the client only
// gets a generic unavailable message.
func (s *Server) writeServiceError(w http.ResponseWriter, err error) {
	var (
		validation  *bank.ErrValidation
		badImport   *bank.ErrInvalidImport
		conflict    *bank.ErrConflict
		biased      *bank.ErrBiased
		bankMissing *bank.ErrNotFound
		bankStorage *bank.ErrStorage

		emptyPool  *practice.ErrEmptyPool
		missing    *practice.ErrNotFound
		closed     *practice.ErrSessionClosed
		outOfOrder *practice.ErrOutOfOrder
		busy       *practice.ErrBusy
		storage    *practice.ErrStorage
	)

	switch {
	case errors.As(err, &validation):
		respondJSON(w, http.StatusBadRequest, errorBody{Error: "invalid input", Problems: validation.Problems})
	case errors.As(err, &badImport):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &bankMissing), errors.As(err, &missing):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.As(err, &conflict), errors.As(err, &closed), errors.As(err, &outOfOrder):
		respondError(w, http.StatusConflict, err.Error())
	case errors.As(err, &biased):
		respondJSON(w, http.StatusUnprocessableEntity, biasedBody{
			Error:  "answer set failed bias validation",
			Report: biased.Report,
		})
	case errors.As(err, &emptyPool):
		respondError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.As(err, &busy):
		respondError(w, http.StatusTooManyRequests, err.Error())
	case errors.As(err, &bankStorage), errors.As(err, &storage):
		s.log.WithError(err).Error("storage failure")
		respondError(w, http.StatusServiceUnavailable, "storage unavailable")
	default:
		s.log.WithError(err).Error("unhandled service error")
		respondError(w, http.StatusInternalServerError, "internal error")
	}
}
