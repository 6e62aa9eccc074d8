// Package httpapi exposes the question bank and practice engine over
// a JSON HTTP API.
package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"

	"github.com/jfarleigh/certrun/internal/bank"
	"github.com/jfarleigh/certrun/internal/practice"
)

// Options tunes the server surface. The zero value serves every
// origin and uses the practice service's default session size.
type Options struct {
	CORSOrigins []string
	SessionSize int
}

// Server routes HTTP requests to the bank and practice services.
type Server struct {
	bank     *bank.Service
	practice *practice.Service
	log      *logrus.Entry

	corsOrigins []string
	sessionSize int
}

// NewServer wires the services behind the API surface.
func NewServer(bankSvc *bank.Service, practiceSvc *practice.Service, log *logrus.Entry, opts Options) *Server {
	origins := opts.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return &Server{
		bank:        bankSvc,
		practice:    practiceSvc,
		log:         log,
		corsOrigins: origins,
		sessionSize: opts.SessionSize,
	}
}

// Router builds the chi router with the full middleware stack and
// every API route mounted.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, s.requestLogger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.corsOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		ExposedHeaders: []string{"Content-Length"},
		MaxAge:         300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Route("/api", func(api chi.Router) {
		api.Route("/exams", func(er chi.Router) {
			er.Post("/", s.handleCreateExam)
			er.Get("/", s.handleListExams)
			er.Route("/{examID}", func(xr chi.Router) {
				xr.Get("/", s.handleGetExam)
				xr.Post("/topics", s.handleCreateTopic)
				xr.Get("/topics", s.handleListTopics)
				xr.Get("/bias-report", s.handleExamBiasReport)
				xr.Get("/stats", s.handleExamStats)
			})
		})

		api.Route("/questions", func(qr chi.Router) {
			qr.Post("/", s.handleCreateQuestion)
			qr.Get("/", s.handleListQuestions)
			qr.Get("/search", s.handleSearchQuestions)
			qr.Route("/{questionID}", func(q chi.Router) {
				q.Get("/", s.handleGetQuestion)
				q.Patch("/", s.handleUpdateQuestion)
				q.Delete("/", s.handleDeleteQuestion)
				q.Patch("/options", s.handleUpdateOptions)
				q.Get("/quality", s.handleQuestionQuality)
			})
		})

		api.Post("/analysis/answers", s.handleAnalyzeAnswers)
		api.Get("/guidelines", s.handleGuidelines)

		api.Route("/sessions", func(sr chi.Router) {
			sr.Post("/", s.handleStartSession)
			sr.Route("/{sessionID}", func(one chi.Router) {
				one.Get("/next", s.handleNextQuestion)
				one.Post("/answers", s.handleRecordAnswer)
				one.Post("/end", s.handleEndSession)
				one.Get("/results", s.handleSessionResults)
			})
		})
	})

	return r
}

// requestLogger emits one structured access record per request.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		s.log.WithFields(logrus.Fields{
			"method":     r.Method,
			"path":       r.URL.Path,
			"status":     ww.Status(),
			"bytes":      ww.BytesWritten(),
			"elapsed_ms": time.Since(start).Milliseconds(),
			"request_id": middleware.GetReqID(r.Context()),
		}).Info("http request")
	})
}
