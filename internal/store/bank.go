package store

import (
	"context"
	"fmt"

	"github.com/jfarleigh/certrun/ent"
	"github.com/jfarleigh/certrun/ent/answeroption"
	"github.com/jfarleigh/certrun/ent/exam"
	"github.com/jfarleigh/certrun/ent/question"
	"github.com/jfarleigh/certrun/ent/questionattempt"
	"github.com/jfarleigh/certrun/ent/questionstat"
	"github.com/jfarleigh/certrun/ent/topic"
)

// bankRepo implements BankRepo using the ent client.
type bankRepo struct {
	client *ent.Client
}

func (r *bankRepo) CreateExam(ctx context.Context, e Exam) (*Exam, error) {
	created, err := r.client.Exam.Create().
		SetName(e.Name).
		SetVendor(e.Vendor).
		SetExamCode(e.ExamCode).
		SetDescription(e.Description).
		SetPassingScore(e.PassingScore).
		SetTimeLimitMinutes(e.TimeLimitMinutes).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create exam: %w", err)
	}
	return examFromEnt(created, 0), nil
}

func (r *bankRepo) ExamByID(ctx context.Context, id string) (*Exam, error) {
	e, err := r.client.Exam.Query().
		Where(exam.ID(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query exam: %w", err)
	}
	count, err := r.client.Question.Query().
		Where(question.ExamID(id)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count exam questions: %w", err)
	}
	return examFromEnt(e, count), nil
}

func (r *bankRepo) ExamByName(ctx context.Context, name string) (*Exam, error) {
	e, err := r.client.Exam.Query().
		Where(exam.Name(name)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query exam by name: %w", err)
	}
	return examFromEnt(e, 0), nil
}

func (r *bankRepo) Exams(ctx context.Context) ([]*Exam, error) {
	rows, err := r.client.Exam.Query().
		Order(ent.Asc(exam.FieldCreatedAt), ent.Asc(exam.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list exams: %w", err)
	}

	exams := make([]*Exam, 0, len(rows))
	for _, e := range rows {
		count, err := r.client.Question.Query().
			Where(question.ExamID(e.ID)).
			Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("count exam questions: %w", err)
		}
		exams = append(exams, examFromEnt(e, count))
	}
	return exams, nil
}

func (r *bankRepo) CreateTopic(ctx context.Context, t Topic) (*Topic, error) {
	created, err := r.client.Topic.Create().
		SetExamID(t.ExamID).
		SetName(t.Name).
		SetDescription(t.Description).
		SetWeightPercent(t.WeightPercent).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create topic: %w", err)
	}
	return topicFromEnt(created), nil
}

func (r *bankRepo) TopicByID(ctx context.Context, id string) (*Topic, error) {
	t, err := r.client.Topic.Query().
		Where(topic.ID(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query topic: %w", err)
	}
	return topicFromEnt(t), nil
}

func (r *bankRepo) Topics(ctx context.Context, examID string) ([]*Topic, error) {
	// Heaviest blueprint share first; unweighted topics carry 0 and
	// land at the end.
	rows, err := r.client.Topic.Query().
		Where(topic.ExamID(examID)).
		Order(ent.Desc(topic.FieldWeightPercent), ent.Asc(topic.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}

	topics := make([]*Topic, 0, len(rows))
	for _, t := range rows {
		topics = append(topics, topicFromEnt(t))
	}
	return topics, nil
}

func (r *bankRepo) CreateQuestion(ctx context.Context, q Question) (*Question, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin create question: %w", err)
	}

	builder := tx.Question.Create().
		SetExamID(q.ExamID).
		SetText(q.Text).
		SetQuestionType(q.QuestionType).
		SetChooseCount(q.ChooseCount).
		SetDifficulty(q.Difficulty).
		SetExplanation(q.Explanation).
		SetSource(q.Source)
	if len(q.PatternTags) > 0 {
		builder = builder.SetPatternTags(q.PatternTags)
	}
	if len(q.TopicIDs) > 0 {
		builder = builder.AddTopicIDs(q.TopicIDs...)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		return nil, rollback(tx, fmt.Errorf("create question: %w", err))
	}

	for i, opt := range q.Options {
		_, err := tx.AnswerOption.Create().
			SetQuestionID(created.ID).
			SetText(opt.Text).
			SetIsCorrect(opt.IsCorrect).
			SetDistractorReason(opt.DistractorReason).
			SetPosition(i).
			Save(ctx)
		if err != nil {
			return nil, rollback(tx, fmt.Errorf("create option %d: %w", i, err))
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit create question: %w", err)
	}
	return r.QuestionByID(ctx, created.ID)
}

func (r *bankRepo) QuestionByID(ctx context.Context, id string) (*Question, error) {
	q, err := r.client.Question.Query().
		Where(question.ID(id)).
		WithOptions(func(oq *ent.AnswerOptionQuery) {
			oq.Order(ent.Asc(answeroption.FieldPosition), ent.Asc(answeroption.FieldCreatedAt))
		}).
		WithTopics().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query question: %w", err)
	}
	return questionFromEnt(q), nil
}

func (r *bankRepo) Questions(ctx context.Context, f QuestionFilter) ([]*Question, error) {
	qb := r.client.Question.Query()
	if f.ExamID != "" {
		qb = qb.Where(question.ExamID(f.ExamID))
	}
	if f.TopicID != "" {
		qb = qb.Where(question.HasTopicsWith(topic.ID(f.TopicID)))
	}
	if f.Difficulty != "" {
		qb = qb.Where(question.Difficulty(f.Difficulty))
	}
	if f.QuestionType != "" {
		qb = qb.Where(question.QuestionType(f.QuestionType))
	}
	if f.WithOptions {
		qb = qb.WithOptions(func(oq *ent.AnswerOptionQuery) {
			oq.Order(ent.Asc(answeroption.FieldPosition), ent.Asc(answeroption.FieldCreatedAt))
		})
	}
	qb = qb.Order(ent.Asc(question.FieldCreatedAt), ent.Asc(question.FieldID))
	if f.Limit > 0 {
		qb = qb.Limit(f.Limit)
	}
	if f.Offset > 0 {
		qb = qb.Offset(f.Offset)
	}

	rows, err := qb.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}

	questions := make([]*Question, 0, len(rows))
	for _, q := range rows {
		questions = append(questions, questionFromEnt(q))
	}
	return questions, nil
}

func (r *bankRepo) UpdateQuestion(ctx context.Context, u QuestionUpdate) (*Question, error) {
	ub := r.client.Question.UpdateOneID(u.ID)
	if u.Text != nil {
		ub = ub.SetText(*u.Text)
	}
	if u.Explanation != nil {
		ub = ub.SetExplanation(*u.Explanation)
	}
	if u.Difficulty != nil {
		ub = ub.SetDifficulty(*u.Difficulty)
	}
	if u.Source != nil {
		ub = ub.SetSource(*u.Source)
	}
	if u.PatternTags != nil {
		ub = ub.SetPatternTags(*u.PatternTags)
	}

	if _, err := ub.Save(ctx); err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("update question: %w", err)
	}
	return r.QuestionByID(ctx, u.ID)
}

func (r *bankRepo) UpdateOptions(ctx context.Context, questionID string, updates []OptionUpdate) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin update options: %w", err)
	}

	owned, err := tx.AnswerOption.Query().
		Where(answeroption.QuestionID(questionID)).
		All(ctx)
	if err != nil {
		return rollback(tx, fmt.Errorf("query options: %w", err))
	}
	ownedIDs := make(map[string]bool, len(owned))
	for _, o := range owned {
		ownedIDs[o.ID] = true
	}

	for _, up := range updates {
		if !ownedIDs[up.ID] {
			return rollback(tx, fmt.Errorf("option %s does not belong to question %s", up.ID, questionID))
		}
		ob := tx.AnswerOption.UpdateOneID(up.ID)
		if up.Text != nil {
			ob = ob.SetText(*up.Text)
		}
		if up.IsCorrect != nil {
			ob = ob.SetIsCorrect(*up.IsCorrect)
		}
		if up.DistractorReason != nil {
			ob = ob.SetDistractorReason(*up.DistractorReason)
		}
		if _, err := ob.Save(ctx); err != nil {
			return rollback(tx, fmt.Errorf("update option %s: %w", up.ID, err))
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit update options: %w", err)
	}
	return nil
}

func (r *bankRepo) DeleteQuestion(ctx context.Context, id string) (bool, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return false, fmt.Errorf("begin delete question: %w", err)
	}

	n, err := tx.Question.Delete().
		Where(question.ID(id)).
		Exec(ctx)
	if err != nil {
		return false, rollback(tx, fmt.Errorf("delete question: %w", err))
	}
	if n == 0 {
		return false, rollback(tx, nil)
	}

	// Options cascade away with the question via the FK; the derived
	// stat and the attempt log rows are removed explicitly.
	if _, err := tx.QuestionStat.Delete().
		Where(questionstat.QuestionID(id)).
		Exec(ctx); err != nil {
		return false, rollback(tx, fmt.Errorf("delete question stat: %w", err))
	}
	if _, err := tx.QuestionAttempt.Delete().
		Where(questionattempt.QuestionID(id)).
		Exec(ctx); err != nil {
		return false, rollback(tx, fmt.Errorf("delete question attempts: %w", err))
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit delete question: %w", err)
	}
	return true, nil
}

func (r *bankRepo) SearchQuestions(ctx context.Context, examID, query string, limit int) ([]*Question, error) {
	qb := r.client.Question.Query().
		Where(question.Or(
			question.TextContainsFold(query),
			question.ExplanationContainsFold(query),
		))
	if examID != "" {
		qb = qb.Where(question.ExamID(examID))
	}
	qb = qb.
		WithOptions(func(oq *ent.AnswerOptionQuery) {
			oq.Order(ent.Asc(answeroption.FieldPosition), ent.Asc(answeroption.FieldCreatedAt))
		}).
		WithTopics().
		Order(ent.Asc(question.FieldCreatedAt), ent.Asc(question.FieldID))
	if limit > 0 {
		qb = qb.Limit(limit)
	}

	rows, err := qb.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("search questions: %w", err)
	}

	questions := make([]*Question, 0, len(rows))
	for _, q := range rows {
		questions = append(questions, questionFromEnt(q))
	}
	return questions, nil
}

func (r *bankRepo) ImportBundle(ctx context.Context, b Bundle) (*Exam, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin import: %w", err)
	}

	exam, err := tx.Exam.Create().
		SetName(b.Exam.Name).
		SetVendor(b.Exam.Vendor).
		SetExamCode(b.Exam.ExamCode).
		SetDescription(b.Exam.Description).
		SetPassingScore(b.Exam.PassingScore).
		SetTimeLimitMinutes(b.Exam.TimeLimitMinutes).
		Save(ctx)
	if err != nil {
		return nil, rollback(tx, fmt.Errorf("import exam: %w", err))
	}

	topicIDs := make(map[string]string, len(b.Topics))
	for _, t := range b.Topics {
		created, err := tx.Topic.Create().
			SetExamID(exam.ID).
			SetName(t.Name).
			SetDescription(t.Description).
			SetWeightPercent(t.WeightPercent).
			Save(ctx)
		if err != nil {
			return nil, rollback(tx, fmt.Errorf("import topic %q: %w", t.Name, err))
		}
		topicIDs[t.Name] = created.ID
	}

	for i, q := range b.Questions {
		builder := tx.Question.Create().
			SetExamID(exam.ID).
			SetText(q.Text).
			SetQuestionType(q.QuestionType).
			SetChooseCount(q.ChooseCount).
			SetDifficulty(q.Difficulty).
			SetExplanation(q.Explanation).
			SetSource(q.Source)
		if len(q.PatternTags) > 0 {
			builder = builder.SetPatternTags(q.PatternTags)
		}
		for _, name := range q.TopicNames {
			id, ok := topicIDs[name]
			if !ok {
				return nil, rollback(tx, fmt.Errorf("import question %d: unknown topic %q", i, name))
			}
			builder = builder.AddTopicIDs(id)
		}

		created, err := builder.Save(ctx)
		if err != nil {
			return nil, rollback(tx, fmt.Errorf("import question %d: %w", i, err))
		}
		for j, opt := range q.Options {
			if _, err := tx.AnswerOption.Create().
				SetQuestionID(created.ID).
				SetText(opt.Text).
				SetIsCorrect(opt.IsCorrect).
				SetDistractorReason(opt.DistractorReason).
				SetPosition(j).
				Save(ctx); err != nil {
				return nil, rollback(tx, fmt.Errorf("import question %d option %d: %w", i, j, err))
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit import: %w", err)
	}
	return r.ExamByID(ctx, exam.ID)
}

// rollback rolls tx back and folds any rollback failure into err.
func rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		if err == nil {
			return fmt.Errorf("rollback: %w", rerr)
		}
		return fmt.Errorf("%w (rollback: %v)", err, rerr)
	}
	return err
}

// examFromEnt converts an ent Exam row to the store type.
func examFromEnt(e *ent.Exam, questionCount int) *Exam {
	return &Exam{
		ID:               e.ID,
		Name:             e.Name,
		Vendor:           e.Vendor,
		ExamCode:         e.ExamCode,
		Description:      e.Description,
		PassingScore:     e.PassingScore,
		TimeLimitMinutes: e.TimeLimitMinutes,
		QuestionCount:    questionCount,
		CreatedAt:        e.CreatedAt,
	}
}

// topicFromEnt converts an ent Topic row to the store type.
func topicFromEnt(t *ent.Topic) *Topic {
	return &Topic{
		ID:            t.ID,
		ExamID:        t.ExamID,
		Name:          t.Name,
		Description:   t.Description,
		WeightPercent: t.WeightPercent,
		CreatedAt:     t.CreatedAt,
	}
}

// questionFromEnt converts an ent Question row, mapping loaded edges.
func questionFromEnt(q *ent.Question) *Question {
	out := &Question{
		ID:           q.ID,
		ExamID:       q.ExamID,
		Text:         q.Text,
		QuestionType: q.QuestionType,
		ChooseCount:  q.ChooseCount,
		Difficulty:   q.Difficulty,
		Explanation:  q.Explanation,
		Source:       q.Source,
		PatternTags:  q.PatternTags,
		CreatedAt:    q.CreatedAt,
	}
	for _, t := range q.Edges.Topics {
		out.TopicIDs = append(out.TopicIDs, t.ID)
	}
	for _, o := range q.Edges.Options {
		out.Options = append(out.Options, optionFromEnt(o))
	}
	return out
}

// optionFromEnt converts an ent AnswerOption row to the store type.
func optionFromEnt(o *ent.AnswerOption) AnswerOption {
	return AnswerOption{
		ID:               o.ID,
		QuestionID:       o.QuestionID,
		Text:             o.Text,
		IsCorrect:        o.IsCorrect,
		DistractorReason: o.DistractorReason,
		Position:         o.Position,
	}
}
