package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jfarleigh/certrun/ent"
	"github.com/jfarleigh/certrun/ent/practicesession"
)

// sessionRepo implements SessionRepo using the ent client.
type sessionRepo struct {
	client *ent.Client
}

func (r *sessionRepo) CreateSession(ctx context.Context, s Session) (*Session, error) {
	created, err := r.client.PracticeSession.Create().
		SetExamID(s.ExamID).
		SetTopicID(s.TopicID).
		SetMode(s.Mode).
		SetQuestions(s.Questions).
		SetSelectionSeed(s.SelectionSeed).
		SetStatus(SessionActive).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return sessionFromEnt(created), nil
}

func (r *sessionRepo) SessionByID(ctx context.Context, id string) (*Session, error) {
	s, err := r.client.PracticeSession.Query().
		Where(practicesession.ID(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query session: %w", err)
	}
	return sessionFromEnt(s), nil
}

func (r *sessionRepo) EndSession(ctx context.Context, id, status string, at time.Time) (bool, error) {
	n, err := r.client.PracticeSession.Update().
		Where(practicesession.ID(id), practicesession.Status(SessionActive)).
		SetStatus(status).
		SetEndedAt(at).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("end session: %w", err)
	}
	return n > 0, nil
}

func (r *sessionRepo) RecentSessions(ctx context.Context, examID string, limit int) ([]*Session, error) {
	qb := r.client.PracticeSession.Query()
	if examID != "" {
		qb = qb.Where(practicesession.ExamID(examID))
	}
	qb = qb.Order(ent.Desc(practicesession.FieldCreatedAt), ent.Desc(practicesession.FieldID))
	if limit > 0 {
		qb = qb.Limit(limit)
	}

	rows, err := qb.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	sessions := make([]*Session, 0, len(rows))
	for _, s := range rows {
		sessions = append(sessions, sessionFromEnt(s))
	}
	return sessions, nil
}

// sessionFromEnt converts an ent PracticeSession row to the store type.
func sessionFromEnt(s *ent.PracticeSession) *Session {
	return &Session{
		ID:            s.ID,
		ExamID:        s.ExamID,
		TopicID:       s.TopicID,
		Mode:          s.Mode,
		Status:        s.Status,
		Questions:     s.Questions,
		SelectionSeed: s.SelectionSeed,
		StartedAt:     s.CreatedAt,
		EndedAt:       s.EndedAt,
	}
}
