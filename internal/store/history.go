package store

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"time"

	"github.com/jfarleigh/certrun/ent"
	"github.com/jfarleigh/certrun/ent/practicesession"
	"github.com/jfarleigh/certrun/ent/questionattempt"
	"github.com/jfarleigh/certrun/ent/questionstat"
)

// historyRepo implements HistoryRepo using the ent client, dropping to
// raw SQL for the aggregation reports.
type historyRepo struct {
	client *ent.Client
	db     *sql.DB
}

func (r *historyRepo) Stat(ctx context.Context, questionID string) (*Stat, error) {
	s, err := r.client.QuestionStat.Query().
		Where(questionstat.QuestionID(questionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query stat: %w", err)
	}
	return statFromEnt(s), nil
}

func (r *historyRepo) Stats(ctx context.Context, questionIDs []string) (map[string]*Stat, error) {
	if len(questionIDs) == 0 {
		return map[string]*Stat{}, nil
	}
	rows, err := r.client.QuestionStat.Query().
		Where(questionstat.QuestionIDIn(questionIDs...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query stats: %w", err)
	}

	stats := make(map[string]*Stat, len(rows))
	for _, s := range rows {
		stats[s.QuestionID] = statFromEnt(s)
	}
	return stats, nil
}

// RecordAttempt is the engine's single mutating write: the attempt
// insert, the derived-stat update and any session completion commit
// together or not at all.
func (r *historyRepo) RecordAttempt(ctx context.Context, in RecordAttemptInput) (*Stat, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin record attempt: %w", err)
	}
	now := time.Now().UTC()

	create := tx.QuestionAttempt.Create().
		SetSessionID(in.SessionID).
		SetQuestionID(in.QuestionID).
		SetIsCorrect(in.IsCorrect).
		SetElapsedSeconds(in.ElapsedSeconds)
	if len(in.SubmittedOptions) > 0 {
		create = create.SetSubmittedOptions(in.SubmittedOptions)
	}
	if _, err := create.Save(ctx); err != nil {
		return nil, rollback(tx, fmt.Errorf("append attempt: %w", err))
	}

	correctDelta := 0
	if in.IsCorrect {
		correctDelta = 1
	}

	var updated *ent.QuestionStat
	existing, err := tx.QuestionStat.Query().
		Where(questionstat.QuestionID(in.QuestionID)).
		Only(ctx)
	switch {
	case err == nil:
		updated, err = existing.Update().
			AddAttemptCount(1).
			AddCorrectCount(correctDelta).
			AddTotalElapsedSeconds(in.ElapsedSeconds).
			SetLastAttemptedAt(now).
			Save(ctx)
	case ent.IsNotFound(err):
		updated, err = tx.QuestionStat.Create().
			SetQuestionID(in.QuestionID).
			SetAttemptCount(1).
			SetCorrectCount(correctDelta).
			SetTotalElapsedSeconds(in.ElapsedSeconds).
			SetLastAttemptedAt(now).
			Save(ctx)
	default:
		return nil, rollback(tx, fmt.Errorf("query stat: %w", err))
	}
	if err != nil {
		return nil, rollback(tx, fmt.Errorf("update stat: %w", err))
	}

	if in.CompleteSession {
		if _, err := tx.PracticeSession.Update().
			Where(practicesession.ID(in.SessionID), practicesession.Status(SessionActive)).
			SetStatus(SessionCompleted).
			SetEndedAt(now).
			Save(ctx); err != nil {
			return nil, rollback(tx, fmt.Errorf("complete session: %w", err))
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit record attempt: %w", err)
	}
	return statFromEnt(updated), nil
}

func (r *historyRepo) AttemptsBySession(ctx context.Context, sessionID string) ([]*Attempt, error) {
	rows, err := r.client.QuestionAttempt.Query().
		Where(questionattempt.SessionID(sessionID)).
		Order(ent.Asc(questionattempt.FieldCreatedAt), ent.Asc(questionattempt.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session attempts: %w", err)
	}

	attempts := make([]*Attempt, 0, len(rows))
	for _, a := range rows {
		attempts = append(attempts, attemptFromEnt(a))
	}
	return attempts, nil
}

const topicAccuracySQL = `
SELECT t.id, t.name,
       COUNT(DISTINCT qt.question_id) AS question_count,
       COALESCE(SUM(s.attempt_count), 0) AS attempts,
       COALESCE(SUM(s.correct_count), 0) AS correct
FROM topics t
LEFT JOIN question_topics qt ON qt.topic_id = t.id
LEFT JOIN question_stats s ON s.question_id = qt.question_id
WHERE t.exam_id = ?
GROUP BY t.id, t.name`

func (r *historyRepo) TopicAccuracy(ctx context.Context, examID string) ([]*TopicAccuracy, error) {
	rows, err := r.db.QueryContext(ctx, topicAccuracySQL, examID)
	if err != nil {
		return nil, fmt.Errorf("query topic accuracy: %w", err)
	}
	defer rows.Close()

	var out []*TopicAccuracy
	for rows.Next() {
		ta := &TopicAccuracy{}
		if err := rows.Scan(&ta.TopicID, &ta.TopicName, &ta.QuestionCount, &ta.AttemptCount, &ta.CorrectCount); err != nil {
			return nil, fmt.Errorf("scan topic accuracy: %w", err)
		}
		out = append(out, ta)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate topic accuracy: %w", err)
	}

	// Weakest topics first; topics never attempted go last.
	sort.Slice(out, func(i, j int) bool {
		ai, aj := out[i], out[j]
		if (ai.AttemptCount > 0) != (aj.AttemptCount > 0) {
			return ai.AttemptCount > 0
		}
		if a1, a2 := ai.Accuracy(), aj.Accuracy(); a1 != a2 {
			return a1 < a2
		}
		return ai.TopicName < aj.TopicName
	})
	return out, nil
}

const weakestQuestionsSQL = `
SELECT q.id, q.text, s.attempt_count, s.correct_count,
       CAST(s.correct_count AS REAL) / s.attempt_count AS accuracy
FROM questions q
JOIN question_stats s ON s.question_id = q.id
WHERE q.exam_id = ? AND s.attempt_count > 0
ORDER BY accuracy ASC, s.attempt_count DESC, q.id ASC
LIMIT ?`

func (r *historyRepo) WeakestQuestions(ctx context.Context, examID string, limit int) ([]*QuestionAccuracy, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := r.db.QueryContext(ctx, weakestQuestionsSQL, examID, limit)
	if err != nil {
		return nil, fmt.Errorf("query weakest questions: %w", err)
	}
	defer rows.Close()

	var out []*QuestionAccuracy
	for rows.Next() {
		qa := &QuestionAccuracy{}
		if err := rows.Scan(&qa.QuestionID, &qa.Text, &qa.AttemptCount, &qa.CorrectCount, &qa.Accuracy); err != nil {
			return nil, fmt.Errorf("scan weakest question: %w", err)
		}
		out = append(out, qa)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate weakest questions: %w", err)
	}
	return out, nil
}

func (r *historyRepo) RebuildStats(ctx context.Context) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin rebuild stats: %w", err)
	}

	attempts, err := tx.QuestionAttempt.Query().
		Order(ent.Asc(questionattempt.FieldCreatedAt), ent.Asc(questionattempt.FieldID)).
		All(ctx)
	if err != nil {
		return rollback(tx, fmt.Errorf("query attempts: %w", err))
	}

	type fold struct {
		attempts int
		correct  int
		elapsed  float64
		last     time.Time
	}
	folded := make(map[string]*fold)
	for _, a := range attempts {
		f := folded[a.QuestionID]
		if f == nil {
			f = &fold{}
			folded[a.QuestionID] = f
		}
		f.attempts++
		if a.IsCorrect {
			f.correct++
		}
		f.elapsed += a.ElapsedSeconds
		if a.CreatedAt.After(f.last) {
			f.last = a.CreatedAt
		}
	}

	if _, err := tx.QuestionStat.Delete().Exec(ctx); err != nil {
		return rollback(tx, fmt.Errorf("clear stats: %w", err))
	}
	for qid, f := range folded {
		if _, err := tx.QuestionStat.Create().
			SetQuestionID(qid).
			SetAttemptCount(f.attempts).
			SetCorrectCount(f.correct).
			SetTotalElapsedSeconds(f.elapsed).
			SetLastAttemptedAt(f.last).
			Save(ctx); err != nil {
			return rollback(tx, fmt.Errorf("rebuild stat for %s: %w", qid, err))
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit rebuild stats: %w", err)
	}
	return nil
}

// statFromEnt converts an ent QuestionStat row to the store type.
func statFromEnt(s *ent.QuestionStat) *Stat {
	return &Stat{
		QuestionID:          s.QuestionID,
		AttemptCount:        s.AttemptCount,
		CorrectCount:        s.CorrectCount,
		TotalElapsedSeconds: s.TotalElapsedSeconds,
		LastAttemptedAt:     s.LastAttemptedAt,
	}
}

// attemptFromEnt converts an ent QuestionAttempt row to the store type.
func attemptFromEnt(a *ent.QuestionAttempt) *Attempt {
	return &Attempt{
		ID:               a.ID,
		SessionID:        a.SessionID,
		QuestionID:       a.QuestionID,
		IsCorrect:        a.IsCorrect,
		ElapsedSeconds:   a.ElapsedSeconds,
		SubmittedOptions: a.SubmittedOptions,
		AnsweredAt:       a.CreatedAt,
	}
}
