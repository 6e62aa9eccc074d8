package bank

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jfarleigh/certrun/internal/store"
)

const validImportJSON = `{
  "exam": {
    "name": "AWS Solutions Architect Associate",
    "vendor": "AWS",
    "exam_code": "SAA-C03",
    "passing_score": 72,
    "time_limit_minutes": 130
  },
  "topics": [
    {"name": "Storage", "weight_percent": 30},
    {"name": "Networking", "weight_percent": 24}
  ],
  "questions": [
    {
      "text": "Which service stores objects durably?",
      "type": "single",
      "topics": ["Storage"],
      "options": [
        {"text": "Use Amazon S3 for object storage", "correct": true},
        {"text": "Use Amazon EBS for block storage", "correct": false, "distractor_reason": "EBS volumes attach to one instance"},
        {"text": "Use Amazon EFS for shared files", "correct": false, "distractor_reason": "EFS is shared POSIX file storage"},
        {"text": "Use Amazon FSx for Windows files", "correct": false, "distractor_reason": "FSx targets Windows file workloads"}
      ]
    },
    {
      "text": "Which features reduce cross-region latency?",
      "type": "choose_n",
      "choose_count": 2,
      "difficulty": "hard",
      "topics": ["Networking"],
      "options": [
        {"text": "Use CloudFront edge locations", "correct": true},
        {"text": "Use Global Accelerator routing", "correct": true},
        {"text": "Use larger EC2 instance sizes", "correct": false, "distractor_reason": "Instance size does not change path latency"},
        {"text": "Use a second NAT gateway here", "correct": false, "distractor_reason": "NAT placement does not shorten routes"}
      ]
    }
  ]
}`

func TestParseImportRejectsBadJSON(t *testing.T) {
	_, err := ParseImport([]byte(`{not json`))
	var inv *ErrInvalidImport
	if !errors.As(err, &inv) {
		t.Fatalf("err = %v, want ErrInvalidImport", err)
	}
}

func TestParseImportRejectsSchemaViolations(t *testing.T) {
	cases := map[string]string{
		"missing exam name": `{
			"exam": {"vendor": "AWS"},
			"questions": []
		}`,
		"too few options": `{
			"exam": {"name": "X"},
			"questions": [{
				"text": "Which one?",
				"type": "single",
				"options": [{"text": "Only choice", "correct": true}]
			}]
		}`,
		"unknown question type": `{
			"exam": {"name": "X"},
			"questions": [{
				"text": "Which one?",
				"type": "essay",
				"options": [
					{"text": "First choice", "correct": true},
					{"text": "Second choice", "correct": false}
				]
			}]
		}`,
		"unknown top-level key": `{
			"exam": {"name": "X"},
			"questions": [],
			"extra": true
		}`,
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseImport([]byte(raw))
			var inv *ErrInvalidImport
			if !errors.As(err, &inv) {
				t.Fatalf("err = %v, want ErrInvalidImport", err)
			}
		})
	}
}

func TestParseImportDecodes(t *testing.T) {
	file, err := ParseImport([]byte(validImportJSON))
	if err != nil {
		t.Fatalf("ParseImport: %v", err)
	}
	if file.Exam.Name != "AWS Solutions Architect Associate" || file.Exam.PassingScore != 72 {
		t.Errorf("exam = %+v", file.Exam)
	}
	if len(file.Topics) != 2 || len(file.Questions) != 2 {
		t.Fatalf("topics/questions = %d/%d, want 2/2", len(file.Topics), len(file.Questions))
	}
	if file.Questions[1].ChooseCount != 2 || file.Questions[1].Difficulty != store.DifficultyHard {
		t.Errorf("question 2 = %+v", file.Questions[1])
	}
}

func TestImportStoresBundle(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	exam, err := svc.Import(ctx, []byte(validImportJSON), false)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if exam.QuestionCount != 2 {
		t.Errorf("QuestionCount = %d, want 2", exam.QuestionCount)
	}

	topics, err := svc.Topics(ctx, exam.ID)
	if err != nil {
		t.Fatalf("Topics: %v", err)
	}
	if len(topics) != 2 || topics[0].Name != "Storage" {
		t.Errorf("topics = %+v, want Storage first by weight", topics)
	}

	questions, err := svc.Questions(ctx, store.QuestionFilter{ExamID: exam.ID, WithOptions: true})
	if err != nil {
		t.Fatalf("Questions: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("len(questions) = %d, want 2", len(questions))
	}
	for _, q := range questions {
		if len(q.Options) != 4 {
			t.Errorf("question %s has %d options", q.ID, len(q.Options))
		}
		if len(q.TopicIDs) != 1 {
			t.Errorf("question %s topic links = %v, want one resolved id", q.ID, q.TopicIDs)
		}
	}

	// Default difficulty fills in where the file stayed silent.
	if questions[0].Difficulty != store.DifficultyMedium {
		t.Errorf("difficulty = %q, want medium default", questions[0].Difficulty)
	}
}

func TestImportCollectsProblems(t *testing.T) {
	svc, _ := newTestService()

	raw := `{
		"exam": {"name": "Flawed Exam"},
		"topics": [{"name": "Storage"}],
		"questions": [
			{
				"text": "Which service stores objects durably?",
				"type": "single",
				"topics": ["Ghost"],
				"options": [
					{"text": "Use Amazon S3 for object storage", "correct": true},
					{"text": "Use Amazon EBS for block storage", "correct": true},
					{"text": "Use Amazon EFS for shared files", "correct": false},
					{"text": "Use Amazon FSx for Windows files", "correct": false}
				]
			},
			{
				"text": "Where should archives go?",
				"type": "single",
				"options": [
					{"text": "Use Amazon S3 with cross-region replication and lifecycle rules for durable archival", "correct": true},
					{"text": "Use local disk", "correct": false},
					{"text": "Use tape drives", "correct": false},
					{"text": "Use a USB stick", "correct": false}
				]
			}
		]
	}`

	_, err := svc.Import(context.Background(), []byte(raw), false)
	var verr *ErrValidation
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
	joined := strings.Join(verr.Problems, "; ")
	if !strings.Contains(joined, "question 1: ") || !strings.Contains(joined, "question 2: ") {
		t.Errorf("problems not keyed by position: %v", verr.Problems)
	}
	if !strings.Contains(joined, `unknown topic "Ghost"`) {
		t.Errorf("problems %v missing topic reference check", verr.Problems)
	}
	if !strings.Contains(joined, "exactly 1 correct") {
		t.Errorf("problems %v missing answer-set check", verr.Problems)
	}
	if !strings.Contains(joined, "longer than distractors") {
		t.Errorf("problems %v missing bias findings", verr.Problems)
	}
}

func TestImportAllowBiasedWaivesGateOnly(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	biasedFile := `{
		"exam": {"name": "Archive Exam"},
		"questions": [{
			"text": "Where should archives go?",
			"type": "single",
			"options": [
				{"text": "Use Amazon S3 with cross-region replication and lifecycle rules for durable archival", "correct": true},
				{"text": "Use local disk", "correct": false},
				{"text": "Use tape drives", "correct": false},
				{"text": "Use a USB stick", "correct": false}
			]
		}]
	}`

	if _, err := svc.Import(ctx, []byte(biasedFile), false); err == nil {
		t.Fatal("biased file imported without waiver")
	}
	if _, err := svc.Import(ctx, []byte(biasedFile), true); err != nil {
		t.Fatalf("Import with waiver: %v", err)
	}

	// The waiver never covers structural problems.
	brokenFile := `{
		"exam": {"name": "Broken Exam"},
		"questions": [{
			"text": "Which service stores objects durably?",
			"type": "single",
			"options": [
				{"text": "Use Amazon S3 for object storage", "correct": true},
				{"text": "Use Amazon EBS for block storage", "correct": true},
				{"text": "Use Amazon EFS for shared files", "correct": false},
				{"text": "Use Amazon FSx for Windows files", "correct": false}
			]
		}]
	}`
	_, err := svc.Import(ctx, []byte(brokenFile), true)
	var verr *ErrValidation
	if !errors.As(err, &verr) {
		t.Fatalf("structural problems with waiver: err = %v, want ErrValidation", err)
	}
}

func TestImportDuplicateExamName(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	mustExam(t, svc)

	_, err := svc.Import(ctx, []byte(validImportJSON), false)
	var conflict *ErrConflict
	if !errors.As(err, &conflict) {
		t.Fatalf("err = %v, want ErrConflict", err)
	}
}

func TestImportDuplicateTopicName(t *testing.T) {
	svc, _ := newTestService()

	raw := `{
		"exam": {"name": "Doubled Topics"},
		"topics": [{"name": "Storage"}, {"name": "Storage"}],
		"questions": []
	}`
	_, err := svc.Import(context.Background(), []byte(raw), false)
	var verr *ErrValidation
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
	if !strings.Contains(strings.Join(verr.Problems, "; "), "appears twice") {
		t.Errorf("problems = %v, want duplicate topic message", verr.Problems)
	}
}
