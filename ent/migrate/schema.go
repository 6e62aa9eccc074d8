// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnswerOptionsColumns holds the columns for the "answer_options" table.
	AnswerOptionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "text", Type: field.TypeString, Size: 2147483647},
		{Name: "is_correct", Type: field.TypeBool, Default: false},
		{Name: "distractor_reason", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "position", Type: field.TypeInt, Default: 0},
		{Name: "question_id", Type: field.TypeString},
	}
	// AnswerOptionsTable holds the schema information for the "answer_options" table.
	AnswerOptionsTable = &schema.Table{
		Name:       "answer_options",
		Columns:    AnswerOptionsColumns,
		PrimaryKey: []*schema.Column{AnswerOptionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "answer_options_questions_options",
				Columns:    []*schema.Column{AnswerOptionsColumns[6]},
				RefColumns: []*schema.Column{QuestionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "answeroption_question_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerOptionsColumns[6]},
			},
		},
	}
	// ExamsColumns holds the columns for the "exams" table.
	ExamsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "vendor", Type: field.TypeString, Default: ""},
		{Name: "exam_code", Type: field.TypeString, Default: ""},
		{Name: "description", Type: field.TypeString, Default: ""},
		{Name: "passing_score", Type: field.TypeInt, Default: 0},
		{Name: "time_limit_minutes", Type: field.TypeInt, Default: 0},
	}
	// ExamsTable holds the schema information for the "exams" table.
	ExamsTable = &schema.Table{
		Name:       "exams",
		Columns:    ExamsColumns,
		PrimaryKey: []*schema.Column{ExamsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "exam_name",
				Unique:  false,
				Columns: []*schema.Column{ExamsColumns[2]},
			},
		},
	}
	// PracticeSessionsColumns holds the columns for the "practice_sessions" table.
	PracticeSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "exam_id", Type: field.TypeString},
		{Name: "topic_id", Type: field.TypeString, Default: ""},
		{Name: "mode", Type: field.TypeString},
		{Name: "questions", Type: field.TypeJSON},
		{Name: "selection_seed", Type: field.TypeInt64, Default: 0},
		{Name: "status", Type: field.TypeString, Default: "active"},
		{Name: "ended_at", Type: field.TypeTime, Nullable: true},
	}
	// PracticeSessionsTable holds the schema information for the "practice_sessions" table.
	PracticeSessionsTable = &schema.Table{
		Name:       "practice_sessions",
		Columns:    PracticeSessionsColumns,
		PrimaryKey: []*schema.Column{PracticeSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "practicesession_exam_id",
				Unique:  false,
				Columns: []*schema.Column{PracticeSessionsColumns[2]},
			},
			{
				Name:    "practicesession_status",
				Unique:  false,
				Columns: []*schema.Column{PracticeSessionsColumns[7]},
			},
		},
	}
	// QuestionsColumns holds the columns for the "questions" table.
	QuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "exam_id", Type: field.TypeString},
		{Name: "text", Type: field.TypeString, Size: 2147483647},
		{Name: "question_type", Type: field.TypeString},
		{Name: "choose_count", Type: field.TypeInt, Default: 0},
		{Name: "difficulty", Type: field.TypeString, Default: "medium"},
		{Name: "explanation", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "source", Type: field.TypeString, Default: ""},
		{Name: "pattern_tags", Type: field.TypeJSON, Nullable: true},
	}
	// QuestionsTable holds the schema information for the "questions" table.
	QuestionsTable = &schema.Table{
		Name:       "questions",
		Columns:    QuestionsColumns,
		PrimaryKey: []*schema.Column{QuestionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "question_exam_id",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[2]},
			},
			{
				Name:    "question_created_at",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[1]},
			},
		},
	}
	// QuestionAttemptsColumns holds the columns for the "question_attempts" table.
	QuestionAttemptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeString},
		{Name: "is_correct", Type: field.TypeBool},
		{Name: "elapsed_seconds", Type: field.TypeFloat64, Default: 0},
		{Name: "submitted_options", Type: field.TypeJSON, Nullable: true},
	}
	// QuestionAttemptsTable holds the schema information for the "question_attempts" table.
	QuestionAttemptsTable = &schema.Table{
		Name:       "question_attempts",
		Columns:    QuestionAttemptsColumns,
		PrimaryKey: []*schema.Column{QuestionAttemptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "questionattempt_session_id",
				Unique:  false,
				Columns: []*schema.Column{QuestionAttemptsColumns[2]},
			},
			{
				Name:    "questionattempt_question_id",
				Unique:  false,
				Columns: []*schema.Column{QuestionAttemptsColumns[3]},
			},
			{
				Name:    "questionattempt_session_id_question_id",
				Unique:  true,
				Columns: []*schema.Column{QuestionAttemptsColumns[2], QuestionAttemptsColumns[3]},
			},
		},
	}
	// QuestionStatsColumns holds the columns for the "question_stats" table.
	QuestionStatsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "question_id", Type: field.TypeString, Unique: true},
		{Name: "attempt_count", Type: field.TypeInt, Default: 0},
		{Name: "correct_count", Type: field.TypeInt, Default: 0},
		{Name: "total_elapsed_seconds", Type: field.TypeFloat64, Default: 0},
		{Name: "last_attempted_at", Type: field.TypeTime, Nullable: true},
	}
	// QuestionStatsTable holds the schema information for the "question_stats" table.
	QuestionStatsTable = &schema.Table{
		Name:       "question_stats",
		Columns:    QuestionStatsColumns,
		PrimaryKey: []*schema.Column{QuestionStatsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "questionstat_question_id",
				Unique:  false,
				Columns: []*schema.Column{QuestionStatsColumns[2]},
			},
		},
	}
	// TopicsColumns holds the columns for the "topics" table.
	TopicsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "exam_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Default: ""},
		{Name: "weight_percent", Type: field.TypeInt, Default: 0},
	}
	// TopicsTable holds the schema information for the "topics" table.
	TopicsTable = &schema.Table{
		Name:       "topics",
		Columns:    TopicsColumns,
		PrimaryKey: []*schema.Column{TopicsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "topic_exam_id",
				Unique:  false,
				Columns: []*schema.Column{TopicsColumns[2]},
			},
			{
				Name:    "topic_exam_id_name",
				Unique:  true,
				Columns: []*schema.Column{TopicsColumns[2], TopicsColumns[3]},
			},
		},
	}
	// QuestionTopicsColumns holds the columns for the "question_topics" table.
	QuestionTopicsColumns = []*schema.Column{
		{Name: "question_id", Type: field.TypeString},
		{Name: "topic_id", Type: field.TypeString},
	}
	// QuestionTopicsTable holds the schema information for the "question_topics" table.
	QuestionTopicsTable = &schema.Table{
		Name:       "question_topics",
		Columns:    QuestionTopicsColumns,
		PrimaryKey: []*schema.Column{QuestionTopicsColumns[0], QuestionTopicsColumns[1]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "question_topics_question_id",
				Columns:    []*schema.Column{QuestionTopicsColumns[0]},
				RefColumns: []*schema.Column{QuestionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "question_topics_topic_id",
				Columns:    []*schema.Column{QuestionTopicsColumns[1]},
				RefColumns: []*schema.Column{TopicsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnswerOptionsTable,
		ExamsTable,
		PracticeSessionsTable,
		QuestionsTable,
		QuestionAttemptsTable,
		QuestionStatsTable,
		TopicsTable,
		QuestionTopicsTable,
	}
)

func init() {
	AnswerOptionsTable.ForeignKeys[0].RefTable = QuestionsTable
	QuestionTopicsTable.ForeignKeys[0].RefTable = QuestionsTable
	QuestionTopicsTable.ForeignKeys[1].RefTable = TopicsTable
}
