package httpapi

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfarleigh/certrun/internal/bank"
	"github.com/jfarleigh/certrun/internal/bias"
	"github.com/jfarleigh/certrun/internal/practice"
	"github.com/jfarleigh/certrun/internal/store"
)

// newTestServer stands up the whole stack over an in-memory database:
// real store, real services, real router. Tests drive it exactly the
// way a client would.
func newTestServer(t *testing.T, opts Options) *httptest.Server {
	t.Helper()

	st, err := store.Open("file::memory:?cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	srv := NewServer(
		bank.NewService(st.BankRepo()),
		practice.NewService(st.BankRepo(), st.HistoryRepo(), st.SessionRepo()),
		logger.WithField("service", "certrun"),
		opts,
	)
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	return ts
}

// doJSON sends one request and decodes the JSON reply into out when
// out is non-nil. Returns the response status code.
func doJSON(t *testing.T, method, url string, in, out any) int {
	t.Helper()

	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func createExam(t *testing.T, base, name string) examView {
	t.Helper()
	var exam examView
	status := doJSON(t, http.MethodPost, base+"/api/exams", map[string]any{
		"name":               name,
		"vendor":             "AWS",
		"exam_code":          "SAA-C03",
		"description":        "associate level architecture exam",
		"passing_score":      72,
		"time_limit_minutes": 130,
	}, &exam)
	require.Equal(t, http.StatusCreated, status)
	return exam
}

func createTopic(t *testing.T, base, examID, name string, weight int) topicView {
	t.Helper()
	var topic topicView
	status := doJSON(t, http.MethodPost, base+"/api/exams/"+examID+"/topics", map[string]any{
		"name":           name,
		"weight_percent": weight,
	}, &topic)
	require.Equal(t, http.StatusCreated, status)
	return topic
}

// balancedOptions passes the bias gate: even lengths, reasons past the
// minimum, exactly one correct answer.
func balancedOptions() []optionPayload {
	return []optionPayload{
		{Text: "Use Amazon S3 for object storage", IsCorrect: true},
		{Text: "Use Amazon EBS for block storage", DistractorReason: "EBS volumes attach to one instance"},
		{Text: "Use Amazon EFS for shared files", DistractorReason: "EFS is shared POSIX file storage"},
		{Text: "Use Amazon FSx for Windows files", DistractorReason: "FSx targets Windows file workloads"},
	}
}

// biasedOptions fails the gate: the correct answer dwarfs the
// distractors, tripping both the ratio and the variance checks.
func biasedOptions() []optionPayload {
	return []optionPayload{
		{Text: "Use Amazon S3 with cross-region replication and lifecycle rules for durable archival", IsCorrect: true},
		{Text: "Use local disk"},
		{Text: "Use tape drives"},
		{Text: "Use a USB stick"},
	}
}

func createQuestion(t *testing.T, base, examID, text string, topicIDs []string) questionView {
	t.Helper()
	var q questionView
	status := doJSON(t, http.MethodPost, base+"/api/questions", map[string]any{
		"exam_id":       examID,
		"text":          text,
		"question_type": store.QuestionSingle,
		"difficulty":    store.DifficultyMedium,
		"explanation":   "the first option matches the scenario constraints",
		"topic_ids":     topicIDs,
		"options":       balancedOptions(),
	}, &q)
	require.Equal(t, http.StatusCreated, status)
	return q
}

func correctIDs(q questionView) []string {
	var ids []string
	for _, o := range q.Options {
		if o.IsCorrect {
			ids = append(ids, o.ID)
		}
	}
	return ids
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t, Options{})

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestExamRoutes(t *testing.T) {
	ts := newTestServer(t, Options{})

	t.Run("create and fetch", func(t *testing.T) {
		created := createExam(t, ts.URL, "AWS Solutions Architect Associate")
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, "SAA-C03", created.ExamCode)
		assert.Equal(t, 72, created.PassingScore)
		assert.Equal(t, 130, created.TimeLimitMinutes)
		assert.Zero(t, created.QuestionCount)
		assert.False(t, created.CreatedAt.IsZero())

		var got examView
		status := doJSON(t, http.MethodGet, ts.URL+"/api/exams/"+created.ID, nil, &got)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, created.Name, got.Name)
	})

	t.Run("list", func(t *testing.T) {
		createExam(t, ts.URL, "AWS Developer Associate")

		var exams []examView
		status := doJSON(t, http.MethodGet, ts.URL+"/api/exams", nil, &exams)
		require.Equal(t, http.StatusOK, status)
		assert.Len(t, exams, 2)
	})

	t.Run("duplicate name conflicts", func(t *testing.T) {
		var e errorBody
		status := doJSON(t, http.MethodPost, ts.URL+"/api/exams",
			map[string]any{"name": "AWS Solutions Architect Associate"}, &e)
		assert.Equal(t, http.StatusConflict, status)
		assert.Contains(t, e.Error, "already exists")
	})

	t.Run("validation problems", func(t *testing.T) {
		var e errorBody
		status := doJSON(t, http.MethodPost, ts.URL+"/api/exams",
			map[string]any{"name": "   ", "passing_score": 130}, &e)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "invalid input", e.Error)
		assert.NotEmpty(t, e.Problems)
	})

	t.Run("malformed body", func(t *testing.T) {
		resp, err := http.Post(ts.URL+"/api/exams", "application/json", strings.NewReader("{"))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("unknown exam", func(t *testing.T) {
		status := doJSON(t, http.MethodGet, ts.URL+"/api/exams/no-such-exam", nil, nil)
		assert.Equal(t, http.StatusNotFound, status)
	})
}

func TestTopicRoutes(t *testing.T) {
	ts := newTestServer(t, Options{})
	exam := createExam(t, ts.URL, "AWS Solutions Architect Associate")

	t.Run("create", func(t *testing.T) {
		topic := createTopic(t, ts.URL, exam.ID, "Storage", 18)
		assert.NotEmpty(t, topic.ID)
		assert.Equal(t, exam.ID, topic.ExamID)
		assert.Equal(t, 18, topic.WeightPercent)
	})

	t.Run("list orders by blueprint weight", func(t *testing.T) {
		createTopic(t, ts.URL, exam.ID, "Networking", 22)

		var topics []topicView
		status := doJSON(t, http.MethodGet, ts.URL+"/api/exams/"+exam.ID+"/topics", nil, &topics)
		require.Equal(t, http.StatusOK, status)
		require.Len(t, topics, 2)
		assert.Equal(t, "Networking", topics[0].Name)
		assert.Equal(t, "Storage", topics[1].Name)
	})

	t.Run("duplicate name conflicts", func(t *testing.T) {
		var e errorBody
		status := doJSON(t, http.MethodPost, ts.URL+"/api/exams/"+exam.ID+"/topics",
			map[string]any{"name": "Storage", "weight_percent": 10}, &e)
		assert.Equal(t, http.StatusConflict, status)
		assert.Contains(t, e.Error, "already exists")
	})

	t.Run("weight out of range", func(t *testing.T) {
		var e errorBody
		status := doJSON(t, http.MethodPost, ts.URL+"/api/exams/"+exam.ID+"/topics",
			map[string]any{"name": "Compute", "weight_percent": 150}, &e)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.NotEmpty(t, e.Problems)
	})

	t.Run("unknown exam", func(t *testing.T) {
		status := doJSON(t, http.MethodPost, ts.URL+"/api/exams/no-such-exam/topics",
			map[string]any{"name": "Compute", "weight_percent": 20}, nil)
		assert.Equal(t, http.StatusNotFound, status)
	})
}

func TestQuestionRoutes(t *testing.T) {
	ts := newTestServer(t, Options{})
	exam := createExam(t, ts.URL, "AWS Solutions Architect Associate")
	topic := createTopic(t, ts.URL, exam.ID, "Storage", 18)

	t.Run("create and fetch", func(t *testing.T) {
		created := createQuestion(t, ts.URL, exam.ID, "Which service stores objects durably?", []string{topic.ID})
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, store.QuestionSingle, created.QuestionType)
		assert.Equal(t, store.DifficultyMedium, created.Difficulty)
		require.Len(t, created.Options, 4)
		for i, o := range created.Options {
			assert.NotEmpty(t, o.ID)
			assert.Equal(t, i, o.Position)
		}
		assert.True(t, created.Options[0].IsCorrect)
		assert.False(t, created.Options[1].IsCorrect)

		var got questionView
		status := doJSON(t, http.MethodGet, ts.URL+"/api/questions/"+created.ID, nil, &got)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, created.Text, got.Text)
		assert.Equal(t, []string{topic.ID}, got.TopicIDs)
		require.Len(t, got.Options, 4)
		assert.Equal(t, created.Options[0].ID, got.Options[0].ID)
	})

	t.Run("list filters", func(t *testing.T) {
		createQuestion(t, ts.URL, exam.ID, "Which database offers single-digit latency?", nil)
		status := doJSON(t, http.MethodPost, ts.URL+"/api/questions", map[string]any{
			"exam_id":       exam.ID,
			"text":          "Which cache engine supports replication?",
			"question_type": store.QuestionSingle,
			"difficulty":    store.DifficultyEasy,
			"options":       balancedOptions(),
		}, nil)
		require.Equal(t, http.StatusCreated, status)

		var all []questionView
		status = doJSON(t, http.MethodGet, ts.URL+"/api/questions?exam_id="+exam.ID, nil, &all)
		require.Equal(t, http.StatusOK, status)
		assert.Len(t, all, 3)
		assert.Empty(t, all[0].Options, "listing should not load options by default")

		var easy []questionView
		status = doJSON(t, http.MethodGet, ts.URL+"/api/questions?exam_id="+exam.ID+"&difficulty=easy", nil, &easy)
		require.Equal(t, http.StatusOK, status)
		require.Len(t, easy, 1)
		assert.Equal(t, "Which cache engine supports replication?", easy[0].Text)

		var withOptions []questionView
		status = doJSON(t, http.MethodGet, ts.URL+"/api/questions?exam_id="+exam.ID+"&with_options=true", nil, &withOptions)
		require.Equal(t, http.StatusOK, status)
		for _, q := range withOptions {
			assert.Len(t, q.Options, 4)
		}

		var limited []questionView
		status = doJSON(t, http.MethodGet, ts.URL+"/api/questions?exam_id="+exam.ID+"&limit=2", nil, &limited)
		require.Equal(t, http.StatusOK, status)
		assert.Len(t, limited, 2)

		var e errorBody
		status = doJSON(t, http.MethodGet, ts.URL+"/api/questions?limit=abc", nil, &e)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "limit must be an integer", e.Error)
	})

	t.Run("update question", func(t *testing.T) {
		q := createQuestion(t, ts.URL, exam.ID, "Which queue decouples producers from consumers?", nil)

		var got questionView
		status := doJSON(t, http.MethodPatch, ts.URL+"/api/questions/"+q.ID, map[string]any{
			"text":       "Which queue buffers work between producers and consumers?",
			"difficulty": store.DifficultyHard,
		}, &got)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "Which queue buffers work between producers and consumers?", got.Text)
		assert.Equal(t, store.DifficultyHard, got.Difficulty)
		assert.Equal(t, q.Explanation, got.Explanation, "unsent fields stay untouched")
	})

	t.Run("update options reanalyzes", func(t *testing.T) {
		q := createQuestion(t, ts.URL, exam.ID, "Which storage class fits infrequent access?", nil)

		var resp struct {
			Question questionView `json:"question"`
			Report   bias.Report  `json:"report"`
		}
		status := doJSON(t, http.MethodPatch, ts.URL+"/api/questions/"+q.ID+"/options", map[string]any{
			"options": []map[string]any{
				{"id": q.Options[0].ID, "is_correct": false, "distractor_reason": "Standard is for hot data access"},
				{"id": q.Options[1].ID, "is_correct": true},
			},
		}, &resp)
		require.Equal(t, http.StatusOK, status)
		assert.True(t, resp.Report.Valid)
		for _, o := range resp.Question.Options {
			switch o.ID {
			case q.Options[0].ID:
				assert.False(t, o.IsCorrect)
			case q.Options[1].ID:
				assert.True(t, o.IsCorrect)
			}
		}

		// A flip that leaves a single-choice question with two correct
		// options must be rejected before anything is written.
		var e errorBody
		status = doJSON(t, http.MethodPatch, ts.URL+"/api/questions/"+q.ID+"/options", map[string]any{
			"options": []map[string]any{
				{"id": q.Options[2].ID, "is_correct": true},
			},
		}, &e)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.NotEmpty(t, e.Problems)

		var got questionView
		status = doJSON(t, http.MethodGet, ts.URL+"/api/questions/"+q.ID, nil, &got)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, []string{q.Options[1].ID}, correctIDs(got), "rejected edit left stored options alone")
	})

	t.Run("delete", func(t *testing.T) {
		q := createQuestion(t, ts.URL, exam.ID, "Which gateway terminates TLS at the edge?", nil)

		status := doJSON(t, http.MethodDelete, ts.URL+"/api/questions/"+q.ID, nil, nil)
		assert.Equal(t, http.StatusNoContent, status)

		status = doJSON(t, http.MethodGet, ts.URL+"/api/questions/"+q.ID, nil, nil)
		assert.Equal(t, http.StatusNotFound, status)

		status = doJSON(t, http.MethodDelete, ts.URL+"/api/questions/"+q.ID, nil, nil)
		assert.Equal(t, http.StatusNotFound, status)
	})

	t.Run("unknown exam", func(t *testing.T) {
		status := doJSON(t, http.MethodPost, ts.URL+"/api/questions", map[string]any{
			"exam_id":       "no-such-exam",
			"text":          "Which service hosts containers?",
			"question_type": store.QuestionSingle,
			"options":       balancedOptions(),
		}, nil)
		assert.Equal(t, http.StatusNotFound, status)
	})
}

func TestCreateQuestionBiasGate(t *testing.T) {
	ts := newTestServer(t, Options{})
	exam := createExam(t, ts.URL, "AWS Solutions Architect Associate")

	payload := map[string]any{
		"exam_id":       exam.ID,
		"text":          "How should the data be archived durably?",
		"question_type": store.QuestionSingle,
		"options":       biasedOptions(),
	}

	var blocked biasedBody
	status := doJSON(t, http.MethodPost, ts.URL+"/api/questions", payload, &blocked)
	require.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "answer set failed bias validation", blocked.Error)
	assert.False(t, blocked.Report.Valid)
	assert.NotEmpty(t, blocked.Report.Issues)
	assert.Greater(t, blocked.Report.Metrics.CorrectDistractorRatio, 1.3)

	payload["allow_biased"] = true
	var stored questionView
	status = doJSON(t, http.MethodPost, ts.URL+"/api/questions", payload, &stored)
	require.Equal(t, http.StatusCreated, status)

	// The override stores the question but its quality standing still
	// reports the imbalance.
	var quality bank.QualityResult
	status = doJSON(t, http.MethodGet, ts.URL+"/api/questions/"+stored.ID+"/quality", nil, &quality)
	require.Equal(t, http.StatusOK, status)
	assert.False(t, quality.Report.Valid)
}

func TestSearchRoute(t *testing.T) {
	ts := newTestServer(t, Options{})
	exam := createExam(t, ts.URL, "AWS Solutions Architect Associate")
	q := createQuestion(t, ts.URL, exam.ID,
		"Which RDS deployment keeps a standby replica in another Availability Zone?", nil)
	createQuestion(t, ts.URL, exam.ID, "Which service stores objects durably?", nil)

	t.Run("match with snippet", func(t *testing.T) {
		var results []searchResultView
		status := doJSON(t, http.MethodGet,
			ts.URL+"/api/questions/search?exam_id="+exam.ID+"&q=standby+replica", nil, &results)
		require.Equal(t, http.StatusOK, status)
		require.Len(t, results, 1)
		assert.Equal(t, q.ID, results[0].Question.ID)
		assert.Contains(t, results[0].Snippet, "standby replica")
	})

	t.Run("case insensitive", func(t *testing.T) {
		var results []searchResultView
		status := doJSON(t, http.MethodGet, ts.URL+"/api/questions/search?q=STANDBY", nil, &results)
		require.Equal(t, http.StatusOK, status)
		assert.Len(t, results, 1)
	})

	t.Run("no match serves empty list", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/api/questions/search?q=kubernetes")
		require.NoError(t, err)
		defer resp.Body.Close()
		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "[]", strings.TrimSpace(string(raw)))
	})

	t.Run("missing query", func(t *testing.T) {
		var e errorBody
		status := doJSON(t, http.MethodGet, ts.URL+"/api/questions/search", nil, &e)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Contains(t, e.Problems, "search query is required")
	})
}

func TestAnalysisRoute(t *testing.T) {
	ts := newTestServer(t, Options{})

	t.Run("balanced proposal", func(t *testing.T) {
		var result bank.ProposalResult
		status := doJSON(t, http.MethodPost, ts.URL+"/api/analysis/answers", map[string]any{
			"question_type": store.QuestionSingle,
			"options":       balancedOptions(),
		}, &result)
		require.Equal(t, http.StatusOK, status)
		assert.True(t, result.Valid)
		require.NotNil(t, result.Report)
		assert.True(t, result.Report.Valid)
		assert.Contains(t, result.Recommendation, "Proceed")
	})

	t.Run("biased proposal", func(t *testing.T) {
		var result bank.ProposalResult
		status := doJSON(t, http.MethodPost, ts.URL+"/api/analysis/answers", map[string]any{
			"question_type": store.QuestionSingle,
			"options":       biasedOptions(),
		}, &result)
		require.Equal(t, http.StatusOK, status)
		assert.False(t, result.Valid)
		require.NotNil(t, result.Report)
		assert.NotEmpty(t, result.Report.Issues)
	})

	t.Run("structural problems come first", func(t *testing.T) {
		options := balancedOptions()
		options[0].IsCorrect = false

		var result bank.ProposalResult
		status := doJSON(t, http.MethodPost, ts.URL+"/api/analysis/answers", map[string]any{
			"question_type": store.QuestionSingle,
			"options":       options,
		}, &result)
		require.Equal(t, http.StatusOK, status)
		assert.False(t, result.Valid)
		assert.NotEmpty(t, result.StructuralProblems)
		assert.Nil(t, result.Report, "length metrics over a malformed set would mislead")
	})
}

func TestGuidelinesRoute(t *testing.T) {
	ts := newTestServer(t, Options{})

	var g bias.LengthGuidelines
	status := doJSON(t, http.MethodGet, ts.URL+"/api/guidelines", nil, &g)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, bias.DefaultTargetLength, g.TargetLength)
	assert.Greater(t, g.MaxLength, g.MinLength)
	assert.NotEmpty(t, g.Constraints)
	assert.NotEmpty(t, g.Tips)

	status = doJSON(t, http.MethodGet, ts.URL+"/api/guidelines?num_answers=6&target_length=120", nil, &g)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 120, g.TargetLength)

	var e errorBody
	status = doJSON(t, http.MethodGet, ts.URL+"/api/guidelines?num_answers=many", nil, &e)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "num_answers must be an integer", e.Error)
}

func TestQuestionQualityRoute(t *testing.T) {
	ts := newTestServer(t, Options{})
	exam := createExam(t, ts.URL, "AWS Solutions Architect Associate")
	q := createQuestion(t, ts.URL, exam.ID, "Which service stores objects durably?", nil)

	var quality bank.QualityResult
	status := doJSON(t, http.MethodGet, ts.URL+"/api/questions/"+q.ID+"/quality", nil, &quality)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, q.ID, quality.QuestionID)
	assert.NotEmpty(t, quality.Preview)
	assert.True(t, quality.Report.Valid)
	require.Len(t, quality.Options, 4)
	assert.True(t, quality.Options[0].IsCorrect)
	assert.False(t, quality.Options[0].HasDistractorReason)
	assert.True(t, quality.Options[1].HasDistractorReason)

	status = doJSON(t, http.MethodGet, ts.URL+"/api/questions/no-such-question/quality", nil, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestExamBiasReportRoute(t *testing.T) {
	ts := newTestServer(t, Options{})
	exam := createExam(t, ts.URL, "AWS Solutions Architect Associate")
	createQuestion(t, ts.URL, exam.ID, "Which service stores objects durably?", nil)

	var biasedQ questionView
	status := doJSON(t, http.MethodPost, ts.URL+"/api/questions", map[string]any{
		"exam_id":       exam.ID,
		"text":          "How should the data be archived durably?",
		"question_type": store.QuestionSingle,
		"options":       biasedOptions(),
		"allow_biased":  true,
	}, &biasedQ)
	require.Equal(t, http.StatusCreated, status)

	var report struct {
		Exam   examView        `json:"exam"`
		Report bias.ExamReport `json:"report"`
	}
	status = doJSON(t, http.MethodGet, ts.URL+"/api/exams/"+exam.ID+"/bias-report", nil, &report)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, exam.ID, report.Exam.ID)
	assert.Equal(t, 2, report.Report.QuestionCount)
	assert.Equal(t, []string{biasedQ.ID}, report.Report.FlaggedIDs)
	assert.NotEmpty(t, report.Report.WorstOffenders)
	assert.NotEmpty(t, report.Report.Recommendations)

	status = doJSON(t, http.MethodGet, ts.URL+"/api/exams/no-such-exam/bias-report", nil, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestSessionLifecycle(t *testing.T) {
	ts := newTestServer(t, Options{})
	exam := createExam(t, ts.URL, "AWS Solutions Architect Associate")
	topic := createTopic(t, ts.URL, exam.ID, "Storage", 18)

	created := make(map[string]bool, 3)
	for _, text := range []string{
		"Which service stores objects durably?",
		"Which database offers single-digit latency?",
		"Which cache engine supports replication?",
	} {
		q := createQuestion(t, ts.URL, exam.ID, text, []string{topic.ID})
		created[q.ID] = true
	}

	var sess sessionView
	status := doJSON(t, http.MethodPost, ts.URL+"/api/sessions", map[string]any{
		"exam_id": exam.ID,
		"mode":    store.ModePractice,
		"size":    3,
	}, &sess)
	require.Equal(t, http.StatusCreated, status)
	assert.NotEmpty(t, sess.ID)
	assert.Equal(t, store.SessionActive, sess.Status)
	assert.Equal(t, store.ModePractice, sess.Mode)
	assert.Equal(t, 3, sess.QuestionCount)
	assert.Nil(t, sess.EndedAt)

	served := make(map[string]bool, 3)
	for i := 0; i < 3; i++ {
		var next nextQuestionView
		status := doJSON(t, http.MethodGet, ts.URL+"/api/sessions/"+sess.ID+"/next", nil, &next)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, i+1, next.Position)
		assert.Equal(t, 3, next.Total)
		require.Len(t, next.Question.Options, 4)
		served[next.Question.ID] = true

		// The authoring view tells the test which options are correct;
		// grading works on the same ids the learner view serves.
		var authored questionView
		status = doJSON(t, http.MethodGet, ts.URL+"/api/questions/"+next.Question.ID, nil, &authored)
		require.Equal(t, http.StatusOK, status)
		answer := correctIDs(authored)
		require.NotEmpty(t, answer)

		var result answerResultView
		status = doJSON(t, http.MethodPost, ts.URL+"/api/sessions/"+sess.ID+"/answers", map[string]any{
			"question_id":         next.Question.ID,
			"selected_option_ids": answer,
			"elapsed_seconds":     12.5,
		}, &result)
		require.Equal(t, http.StatusOK, status)
		assert.True(t, result.IsCorrect)
		assert.ElementsMatch(t, answer, result.CorrectOptionIDs)
		assert.NotEmpty(t, result.Explanation)
		assert.Equal(t, 1, result.Stat.AttemptCount)
		assert.Equal(t, 1, result.Stat.CorrectCount)
		assert.Equal(t, i == 2, result.SessionComplete)
	}
	assert.Equal(t, created, served, "the session serves exactly the frozen questions")

	// The final answer closed the session in the same transaction.
	status = doJSON(t, http.MethodGet, ts.URL+"/api/sessions/"+sess.ID+"/next", nil, nil)
	assert.Equal(t, http.StatusConflict, status)
	status = doJSON(t, http.MethodPost, ts.URL+"/api/sessions/"+sess.ID+"/answers", map[string]any{
		"question_id":         "any",
		"selected_option_ids": []string{"any"},
	}, nil)
	assert.Equal(t, http.StatusConflict, status)

	var sum summaryView
	status = doJSON(t, http.MethodGet, ts.URL+"/api/sessions/"+sess.ID+"/results", nil, &sum)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "completed", sum.State)
	assert.Equal(t, store.SessionCompleted, sum.Session.Status)
	assert.NotNil(t, sum.Session.EndedAt)
	assert.Equal(t, 3, sum.Total)
	assert.Equal(t, 3, sum.Answered)
	assert.Equal(t, 3, sum.Correct)
	assert.InDelta(t, 1.0, sum.Accuracy, 1e-9)
	assert.InDelta(t, 37.5, sum.TotalElapsedSeconds, 1e-9)
	require.Len(t, sum.Results, 3)
	for _, r := range sum.Results {
		assert.True(t, r.Answered)
		assert.True(t, r.IsCorrect)
	}
}

func TestSessionValidation(t *testing.T) {
	ts := newTestServer(t, Options{})
	exam := createExam(t, ts.URL, "AWS Solutions Architect Associate")
	topic := createTopic(t, ts.URL, exam.ID, "Storage", 18)
	emptyTopic := createTopic(t, ts.URL, exam.ID, "Networking", 22)
	q1 := createQuestion(t, ts.URL, exam.ID, "Which service stores objects durably?", []string{topic.ID})
	createQuestion(t, ts.URL, exam.ID, "Which database offers single-digit latency?", []string{topic.ID})

	t.Run("missing exam id", func(t *testing.T) {
		var e errorBody
		status := doJSON(t, http.MethodPost, ts.URL+"/api/sessions", map[string]any{"mode": "practice"}, &e)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "exam_id is required", e.Error)
	})

	t.Run("unknown mode", func(t *testing.T) {
		var e errorBody
		status := doJSON(t, http.MethodPost, ts.URL+"/api/sessions",
			map[string]any{"exam_id": exam.ID, "mode": "cram"}, &e)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Contains(t, e.Error, "unknown session mode")
	})

	t.Run("unknown exam", func(t *testing.T) {
		status := doJSON(t, http.MethodPost, ts.URL+"/api/sessions",
			map[string]any{"exam_id": "no-such-exam"}, nil)
		assert.Equal(t, http.StatusNotFound, status)
	})

	t.Run("unknown topic", func(t *testing.T) {
		status := doJSON(t, http.MethodPost, ts.URL+"/api/sessions",
			map[string]any{"exam_id": exam.ID, "topic_id": "no-such-topic"}, nil)
		assert.Equal(t, http.StatusNotFound, status)
	})

	t.Run("empty pool", func(t *testing.T) {
		var e errorBody
		status := doJSON(t, http.MethodPost, ts.URL+"/api/sessions",
			map[string]any{"exam_id": exam.ID, "topic_id": emptyTopic.ID}, &e)
		assert.Equal(t, http.StatusUnprocessableEntity, status)
		assert.Contains(t, e.Error, "no questions")
	})

	t.Run("answers must follow frozen order", func(t *testing.T) {
		var sess sessionView
		status := doJSON(t, http.MethodPost, ts.URL+"/api/sessions",
			map[string]any{"exam_id": exam.ID, "size": 2}, &sess)
		require.Equal(t, http.StatusCreated, status)

		var next nextQuestionView
		status = doJSON(t, http.MethodGet, ts.URL+"/api/sessions/"+sess.ID+"/next", nil, &next)
		require.Equal(t, http.StatusOK, status)

		wrong := q1.ID
		if wrong == next.Question.ID {
			wrong = "no-such-question"
		}
		var e errorBody
		status = doJSON(t, http.MethodPost, ts.URL+"/api/sessions/"+sess.ID+"/answers", map[string]any{
			"question_id":         wrong,
			"selected_option_ids": []string{"x"},
		}, &e)
		assert.Equal(t, http.StatusConflict, status)
		assert.Contains(t, e.Error, "expects an answer for question")

		// The rejected submission did not consume the position.
		var again nextQuestionView
		status = doJSON(t, http.MethodGet, ts.URL+"/api/sessions/"+sess.ID+"/next", nil, &again)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, next.Question.ID, again.Question.ID)
	})

	t.Run("missing question id", func(t *testing.T) {
		var sess sessionView
		status := doJSON(t, http.MethodPost, ts.URL+"/api/sessions",
			map[string]any{"exam_id": exam.ID, "size": 1}, &sess)
		require.Equal(t, http.StatusCreated, status)

		var e errorBody
		status = doJSON(t, http.MethodPost, ts.URL+"/api/sessions/"+sess.ID+"/answers",
			map[string]any{"selected_option_ids": []string{"x"}}, &e)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "question_id is required", e.Error)
	})

	t.Run("unknown session", func(t *testing.T) {
		status := doJSON(t, http.MethodGet, ts.URL+"/api/sessions/no-such-session/next", nil, nil)
		assert.Equal(t, http.StatusNotFound, status)
		status = doJSON(t, http.MethodGet, ts.URL+"/api/sessions/no-such-session/results", nil, nil)
		assert.Equal(t, http.StatusNotFound, status)
	})
}

func TestEndSessionRoute(t *testing.T) {
	ts := newTestServer(t, Options{})
	exam := createExam(t, ts.URL, "AWS Solutions Architect Associate")
	createQuestion(t, ts.URL, exam.ID, "Which service stores objects durably?", nil)
	createQuestion(t, ts.URL, exam.ID, "Which database offers single-digit latency?", nil)

	startSession := func(t *testing.T) sessionView {
		t.Helper()
		var sess sessionView
		status := doJSON(t, http.MethodPost, ts.URL+"/api/sessions",
			map[string]any{"exam_id": exam.ID, "size": 2}, &sess)
		require.Equal(t, http.StatusCreated, status)
		return sess
	}

	t.Run("no body abandons", func(t *testing.T) {
		sess := startSession(t)

		var ended sessionView
		status := doJSON(t, http.MethodPost, ts.URL+"/api/sessions/"+sess.ID+"/end", nil, &ended)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, store.SessionAbandoned, ended.Status)
		assert.NotNil(t, ended.EndedAt)

		// Ending again is a harmless no-op.
		status = doJSON(t, http.MethodPost, ts.URL+"/api/sessions/"+sess.ID+"/end", nil, &ended)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, store.SessionAbandoned, ended.Status)

		status = doJSON(t, http.MethodGet, ts.URL+"/api/sessions/"+sess.ID+"/next", nil, nil)
		assert.Equal(t, http.StatusConflict, status)

		var sum summaryView
		status = doJSON(t, http.MethodGet, ts.URL+"/api/sessions/"+sess.ID+"/results", nil, &sum)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "abandoned", sum.State)
		assert.Equal(t, 2, sum.Total)
		assert.Zero(t, sum.Answered)
		assert.Zero(t, sum.Accuracy)
		require.Len(t, sum.Results, 2)
		assert.False(t, sum.Results[0].Answered)
	})

	t.Run("explicit completed reason", func(t *testing.T) {
		sess := startSession(t)

		var ended sessionView
		status := doJSON(t, http.MethodPost, ts.URL+"/api/sessions/"+sess.ID+"/end",
			map[string]any{"reason": store.SessionCompleted}, &ended)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, store.SessionCompleted, ended.Status)
	})

	t.Run("unknown reason", func(t *testing.T) {
		sess := startSession(t)

		var e errorBody
		status := doJSON(t, http.MethodPost, ts.URL+"/api/sessions/"+sess.ID+"/end",
			map[string]any{"reason": "paused"}, &e)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Contains(t, e.Error, "unknown end reason")
	})

	t.Run("unknown session", func(t *testing.T) {
		status := doJSON(t, http.MethodPost, ts.URL+"/api/sessions/no-such-session/end", nil, nil)
		assert.Equal(t, http.StatusNotFound, status)
	})
}

func TestNextQuestionHidesAnswers(t *testing.T) {
	ts := newTestServer(t, Options{})
	exam := createExam(t, ts.URL, "AWS Solutions Architect Associate")
	createQuestion(t, ts.URL, exam.ID, "Which service stores objects durably?", nil)

	var sess sessionView
	status := doJSON(t, http.MethodPost, ts.URL+"/api/sessions",
		map[string]any{"exam_id": exam.ID, "size": 1}, &sess)
	require.Equal(t, http.StatusCreated, status)

	resp, err := http.Get(ts.URL + "/api/sessions/" + sess.ID + "/next")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var raw struct {
		Question struct {
			Options []map[string]any `json:"options"`
		} `json:"question"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&raw))
	require.Len(t, raw.Question.Options, 4)

	letters := make([]string, 0, 4)
	for _, o := range raw.Question.Options {
		keys := make([]string, 0, len(o))
		for k := range o {
			keys = append(keys, k)
		}
		assert.ElementsMatch(t, []string{"id", "letter", "text"}, keys,
			"learner options carry nothing that gives the answer away")
		letters = append(letters, o["letter"].(string))
	}
	assert.Equal(t, []string{"A", "B", "C", "D"}, letters, "letters follow serving order")
}

func TestStartSessionServerDefaults(t *testing.T) {
	ts := newTestServer(t, Options{SessionSize: 2})
	exam := createExam(t, ts.URL, "AWS Solutions Architect Associate")
	for _, text := range []string{
		"Which service stores objects durably?",
		"Which database offers single-digit latency?",
		"Which cache engine supports replication?",
	} {
		createQuestion(t, ts.URL, exam.ID, text, nil)
	}

	var sess sessionView
	status := doJSON(t, http.MethodPost, ts.URL+"/api/sessions", map[string]any{"exam_id": exam.ID}, &sess)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, 2, sess.QuestionCount, "server session size fills in when the client sends none")
	assert.Equal(t, store.ModePractice, sess.Mode, "mode defaults to practice")

	status = doJSON(t, http.MethodPost, ts.URL+"/api/sessions",
		map[string]any{"exam_id": exam.ID, "size": 1}, &sess)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, 1, sess.QuestionCount, "an explicit size wins over the server default")
}

func TestSpeedrunSessionFlow(t *testing.T) {
	ts := newTestServer(t, Options{})
	exam := createExam(t, ts.URL, "AWS Solutions Architect Associate")
	for _, text := range []string{
		"Which service stores objects durably?",
		"Which database offers single-digit latency?",
		"Which cache engine supports replication?",
	} {
		createQuestion(t, ts.URL, exam.ID, text, nil)
	}

	var sess sessionView
	status := doJSON(t, http.MethodPost, ts.URL+"/api/sessions", map[string]any{
		"exam_id": exam.ID,
		"mode":    store.ModeSpeedrun,
		"size":    2,
	}, &sess)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, store.ModeSpeedrun, sess.Mode)
	require.Equal(t, 2, sess.QuestionCount)

	for i := 0; i < 2; i++ {
		var next nextQuestionView
		status := doJSON(t, http.MethodGet, ts.URL+"/api/sessions/"+sess.ID+"/next", nil, &next)
		require.Equal(t, http.StatusOK, status)

		var authored questionView
		status = doJSON(t, http.MethodGet, ts.URL+"/api/questions/"+next.Question.ID, nil, &authored)
		require.Equal(t, http.StatusOK, status)

		var result answerResultView
		status = doJSON(t, http.MethodPost, ts.URL+"/api/sessions/"+sess.ID+"/answers", map[string]any{
			"question_id":         next.Question.ID,
			"selected_option_ids": correctIDs(authored),
		}, &result)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, i == 1, result.SessionComplete)
	}
}

func TestExamStatsRoute(t *testing.T) {
	ts := newTestServer(t, Options{})
	exam := createExam(t, ts.URL, "AWS Solutions Architect Associate")
	topic := createTopic(t, ts.URL, exam.ID, "Storage", 18)
	createTopic(t, ts.URL, exam.ID, "Networking", 22)
	for _, text := range []string{
		"Which service stores objects durably?",
		"Which database offers single-digit latency?",
		"Which cache engine supports replication?",
	} {
		createQuestion(t, ts.URL, exam.ID, text, []string{topic.ID})
	}

	var sess sessionView
	status := doJSON(t, http.MethodPost, ts.URL+"/api/sessions",
		map[string]any{"exam_id": exam.ID, "size": 3}, &sess)
	require.Equal(t, http.StatusCreated, status)

	var missed string
	for i := 0; i < 3; i++ {
		var next nextQuestionView
		status := doJSON(t, http.MethodGet, ts.URL+"/api/sessions/"+sess.ID+"/next", nil, &next)
		require.Equal(t, http.StatusOK, status)

		var authored questionView
		status = doJSON(t, http.MethodGet, ts.URL+"/api/questions/"+next.Question.ID, nil, &authored)
		require.Equal(t, http.StatusOK, status)

		answer := correctIDs(authored)
		if i == 1 {
			// Miss the second question on purpose.
			missed = next.Question.ID
			for _, o := range authored.Options {
				if !o.IsCorrect {
					answer = []string{o.ID}
					break
				}
			}
		}
		status = doJSON(t, http.MethodPost, ts.URL+"/api/sessions/"+sess.ID+"/answers", map[string]any{
			"question_id":         next.Question.ID,
			"selected_option_ids": answer,
		}, nil)
		require.Equal(t, http.StatusOK, status)
	}

	var stats examStatsView
	status = doJSON(t, http.MethodGet, ts.URL+"/api/exams/"+exam.ID+"/stats", nil, &stats)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, exam.ID, stats.Exam.ID)

	require.Len(t, stats.Topics, 2)
	assert.Equal(t, "Storage", stats.Topics[0].TopicName, "attempted topics sort before untouched ones")
	assert.Equal(t, 3, stats.Topics[0].QuestionCount)
	assert.Equal(t, 3, stats.Topics[0].AttemptCount)
	assert.Equal(t, 2, stats.Topics[0].CorrectCount)
	assert.InDelta(t, 2.0/3.0, stats.Topics[0].Accuracy, 1e-9)
	assert.Zero(t, stats.Topics[1].AttemptCount)

	require.Len(t, stats.Weakest, 3)
	assert.Equal(t, missed, stats.Weakest[0].QuestionID, "the missed question ranks weakest")
	assert.Zero(t, stats.Weakest[0].Accuracy)
	assert.Equal(t, 1, stats.Weakest[0].AttemptCount)

	var limited examStatsView
	status = doJSON(t, http.MethodGet, ts.URL+"/api/exams/"+exam.ID+"/stats?limit=1", nil, &limited)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, limited.Weakest, 1)

	status = doJSON(t, http.MethodGet, ts.URL+"/api/exams/no-such-exam/stats", nil, nil)
	assert.Equal(t, http.StatusNotFound, status)
}
