package store

import (
	"context"
	"testing"
)

func TestCreateExamAndLookup(t *testing.T) {
	s := openTestStore(t)
	bank := s.BankRepo()
	ctx := context.Background()

	exam, err := bank.CreateExam(ctx, Exam{
		Name:             "AWS SAA-C03",
		Vendor:           "AWS",
		ExamCode:         "SAA-C03",
		Description:      "associate architect",
		PassingScore:     72,
		TimeLimitMinutes: 130,
	})
	if err != nil {
		t.Fatalf("CreateExam: %v", err)
	}
	if exam.ID == "" {
		t.Fatal("expected generated exam id")
	}
	if exam.CreatedAt.IsZero() {
		t.Error("expected created_at to be set")
	}

	byID, err := bank.ExamByID(ctx, exam.ID)
	if err != nil {
		t.Fatalf("ExamByID: %v", err)
	}
	if byID == nil || byID.Name != "AWS SAA-C03" {
		t.Fatalf("ExamByID = %+v, want name 'AWS SAA-C03'", byID)
	}
	if byID.ExamCode != "SAA-C03" || byID.PassingScore != 72 || byID.TimeLimitMinutes != 130 {
		t.Errorf("exam metadata = %q/%d/%d, want SAA-C03/72/130",
			byID.ExamCode, byID.PassingScore, byID.TimeLimitMinutes)
	}

	byName, err := bank.ExamByName(ctx, "AWS SAA-C03")
	if err != nil {
		t.Fatalf("ExamByName: %v", err)
	}
	if byName == nil || byName.ID != exam.ID {
		t.Errorf("ExamByName = %+v, want id %s", byName, exam.ID)
	}

	missing, err := bank.ExamByID(ctx, "no-such-exam")
	if err != nil {
		t.Fatalf("ExamByID (missing): %v", err)
	}
	if missing != nil {
		t.Errorf("ExamByID (missing) = %+v, want nil", missing)
	}
}

func TestExamNameIsUnique(t *testing.T) {
	s := openTestStore(t)
	bank := s.BankRepo()
	ctx := context.Background()

	mustCreateExam(t, ctx, bank, "CKA")
	if _, err := bank.CreateExam(ctx, Exam{Name: "CKA"}); err == nil {
		t.Error("duplicate exam name accepted, want constraint error")
	}
}

func TestExamsListIncludesQuestionCounts(t *testing.T) {
	s := openTestStore(t)
	bank := s.BankRepo()
	ctx := context.Background()

	first := mustCreateExam(t, ctx, bank, "first exam")
	second := mustCreateExam(t, ctx, bank, "second exam")
	mustCreateQuestion(t, ctx, bank, first.ID, "q one")
	mustCreateQuestion(t, ctx, bank, first.ID, "q two")

	exams, err := bank.Exams(ctx)
	if err != nil {
		t.Fatalf("Exams: %v", err)
	}
	if len(exams) != 2 {
		t.Fatalf("len(exams) = %d, want 2", len(exams))
	}
	if exams[0].ID != first.ID || exams[1].ID != second.ID {
		t.Errorf("exam order = [%s %s], want creation order", exams[0].Name, exams[1].Name)
	}
	if exams[0].QuestionCount != 2 {
		t.Errorf("first exam question count = %d, want 2", exams[0].QuestionCount)
	}
	if exams[1].QuestionCount != 0 {
		t.Errorf("second exam question count = %d, want 0", exams[1].QuestionCount)
	}
}

func TestTopicsOrderedByBlueprintWeight(t *testing.T) {
	s := openTestStore(t)
	bank := s.BankRepo()
	ctx := context.Background()

	exam := mustCreateExam(t, ctx, bank, "topic exam")
	add := func(name string, weight int) {
		t.Helper()
		if _, err := bank.CreateTopic(ctx, Topic{ExamID: exam.ID, Name: name, WeightPercent: weight}); err != nil {
			t.Fatalf("create topic %q: %v", name, err)
		}
	}
	add("Monitoring", 0)
	add("Storage", 30)
	add("Networking", 24)
	add("Security", 30)

	topics, err := bank.Topics(ctx, exam.ID)
	if err != nil {
		t.Fatalf("Topics: %v", err)
	}
	want := []string{"Security", "Storage", "Networking", "Monitoring"}
	if len(topics) != len(want) {
		t.Fatalf("len(topics) = %d, want %d", len(topics), len(want))
	}
	for i, name := range want {
		if topics[i].Name != name {
			t.Errorf("topics[%d] = %s, want %s (heaviest weight first, ties by name)", i, topics[i].Name, name)
		}
	}

	missing, err := bank.TopicByID(ctx, "no-such-topic")
	if err != nil {
		t.Fatalf("TopicByID (missing): %v", err)
	}
	if missing != nil {
		t.Errorf("TopicByID (missing) = %+v, want nil", missing)
	}
}

func TestCreateQuestionRoundTrip(t *testing.T) {
	s := openTestStore(t)
	bank := s.BankRepo()
	ctx := context.Background()

	exam := mustCreateExam(t, ctx, bank, "round trip exam")
	t1 := mustCreateTopic(t, ctx, bank, exam.ID, "networking")
	t2 := mustCreateTopic(t, ctx, bank, exam.ID, "storage")

	created, err := bank.CreateQuestion(ctx, Question{
		ExamID:       exam.ID,
		Text:         "Which storage class suits infrequent access with millisecond retrieval?",
		QuestionType: QuestionChooseN,
		ChooseCount:  2,
		Difficulty:   DifficultyHard,
		Explanation:  "Standard-IA keeps millisecond latency at a lower storage price.",
		Source:       "practice-set-3",
		PatternTags:  []string{"cost-vs-latency", "storage-class"},
		TopicIDs:     []string{t1.ID, t2.ID},
		Options: []AnswerOption{
			{Text: "S3 Standard-IA", IsCorrect: true},
			{Text: "S3 Glacier Deep Archive", DistractorReason: "retrieval takes hours"},
			{Text: "S3 One Zone-IA", IsCorrect: true},
			{Text: "EBS st1", DistractorReason: "block storage, not object"},
		},
	})
	if err != nil {
		t.Fatalf("CreateQuestion: %v", err)
	}

	got, err := bank.QuestionByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("QuestionByID: %v", err)
	}
	if got == nil {
		t.Fatal("QuestionByID returned nil for stored question")
	}
	if got.QuestionType != QuestionChooseN || got.ChooseCount != 2 {
		t.Errorf("type/choose_count = %s/%d, want choose_n/2", got.QuestionType, got.ChooseCount)
	}
	if got.Difficulty != DifficultyHard {
		t.Errorf("difficulty = %s, want hard", got.Difficulty)
	}
	if len(got.PatternTags) != 2 || got.PatternTags[0] != "cost-vs-latency" {
		t.Errorf("pattern tags = %v, want [cost-vs-latency storage-class]", got.PatternTags)
	}
	if len(got.TopicIDs) != 2 {
		t.Errorf("len(topic ids) = %d, want 2", len(got.TopicIDs))
	}

	if len(got.Options) != 4 {
		t.Fatalf("len(options) = %d, want 4", len(got.Options))
	}
	for i, opt := range got.Options {
		if opt.Position != i {
			t.Errorf("option %d position = %d, want %d", i, opt.Position, i)
		}
		if opt.QuestionID != created.ID {
			t.Errorf("option %d question id = %s, want %s", i, opt.QuestionID, created.ID)
		}
	}
	if !got.Options[0].IsCorrect || got.Options[1].IsCorrect || !got.Options[2].IsCorrect {
		t.Error("is_correct flags did not survive the round trip in authoring order")
	}
	if got.Options[1].DistractorReason != "retrieval takes hours" {
		t.Errorf("distractor reason = %q, want 'retrieval takes hours'", got.Options[1].DistractorReason)
	}
}

func TestQuestionsFilters(t *testing.T) {
	s := openTestStore(t)
	bank := s.BankRepo()
	ctx := context.Background()

	exam := mustCreateExam(t, ctx, bank, "filter exam")
	other := mustCreateExam(t, ctx, bank, "other exam")
	net := mustCreateTopic(t, ctx, bank, exam.ID, "networking")

	q1 := mustCreateQuestion(t, ctx, bank, exam.ID, "first", net.ID)
	q2 := mustCreateQuestion(t, ctx, bank, exam.ID, "second")
	q3 := mustCreateQuestion(t, ctx, bank, exam.ID, "third", net.ID)
	mustCreateQuestion(t, ctx, bank, other.ID, "foreign")

	all, err := bank.Questions(ctx, QuestionFilter{ExamID: exam.ID})
	if err != nil {
		t.Fatalf("Questions (exam): %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("len(questions) = %d, want 3", len(all))
	}
	if all[0].ID != q1.ID || all[1].ID != q2.ID || all[2].ID != q3.ID {
		t.Error("questions not in creation order")
	}

	byTopic, err := bank.Questions(ctx, QuestionFilter{ExamID: exam.ID, TopicID: net.ID})
	if err != nil {
		t.Fatalf("Questions (topic): %v", err)
	}
	if len(byTopic) != 2 {
		t.Errorf("len(topic questions) = %d, want 2", len(byTopic))
	}

	paged, err := bank.Questions(ctx, QuestionFilter{ExamID: exam.ID, Limit: 1, Offset: 1})
	if err != nil {
		t.Fatalf("Questions (paged): %v", err)
	}
	if len(paged) != 1 || paged[0].ID != q2.ID {
		t.Errorf("paged result = %v, want just %s", paged, q2.ID)
	}
}

func TestUpdateQuestionPartial(t *testing.T) {
	s := openTestStore(t)
	bank := s.BankRepo()
	ctx := context.Background()

	exam := mustCreateExam(t, ctx, bank, "update exam")
	q := mustCreateQuestion(t, ctx, bank, exam.ID, "original text")

	newText := "revised text"
	updated, err := bank.UpdateQuestion(ctx, QuestionUpdate{ID: q.ID, Text: &newText})
	if err != nil {
		t.Fatalf("UpdateQuestion: %v", err)
	}
	if updated.Text != newText {
		t.Errorf("text = %q, want %q", updated.Text, newText)
	}
	if updated.Explanation != q.Explanation {
		t.Errorf("explanation changed to %q, want untouched", updated.Explanation)
	}
	if updated.Difficulty != q.Difficulty {
		t.Errorf("difficulty changed to %q, want untouched", updated.Difficulty)
	}

	missing, err := bank.UpdateQuestion(ctx, QuestionUpdate{ID: "no-such-question", Text: &newText})
	if err != nil {
		t.Fatalf("UpdateQuestion (missing): %v", err)
	}
	if missing != nil {
		t.Errorf("UpdateQuestion (missing) = %+v, want nil", missing)
	}
}

func TestUpdateOptionsRejectsForeignOption(t *testing.T) {
	s := openTestStore(t)
	bank := s.BankRepo()
	ctx := context.Background()

	exam := mustCreateExam(t, ctx, bank, "options exam")
	mine := mustCreateQuestion(t, ctx, bank, exam.ID, "mine")
	theirs := mustCreateQuestion(t, ctx, bank, exam.ID, "theirs")

	newText := "hijacked"
	err := bank.UpdateOptions(ctx, mine.ID, []OptionUpdate{
		{ID: theirs.Options[0].ID, Text: &newText},
	})
	if err == nil {
		t.Fatal("updating another question's option succeeded, want error")
	}

	reread, err := bank.QuestionByID(ctx, theirs.ID)
	if err != nil {
		t.Fatalf("QuestionByID: %v", err)
	}
	if reread.Options[0].Text == newText {
		t.Error("foreign option was modified despite rejected update")
	}
}

func TestUpdateOptionsAppliesPartialEdits(t *testing.T) {
	s := openTestStore(t)
	bank := s.BankRepo()
	ctx := context.Background()

	exam := mustCreateExam(t, ctx, bank, "edit options exam")
	q := mustCreateQuestion(t, ctx, bank, exam.ID, "editable")

	flip := true
	reason := "sounds right but ignores the latency requirement"
	err := bank.UpdateOptions(ctx, q.ID, []OptionUpdate{
		{ID: q.Options[1].ID, IsCorrect: &flip},
		{ID: q.Options[2].ID, DistractorReason: &reason},
	})
	if err != nil {
		t.Fatalf("UpdateOptions: %v", err)
	}

	got, err := bank.QuestionByID(ctx, q.ID)
	if err != nil {
		t.Fatalf("QuestionByID: %v", err)
	}
	if !got.Options[1].IsCorrect {
		t.Error("option 1 is_correct not flipped")
	}
	if got.Options[1].Text != q.Options[1].Text {
		t.Error("option 1 text changed, want untouched")
	}
	if got.Options[2].DistractorReason != reason {
		t.Errorf("option 2 reason = %q, want %q", got.Options[2].DistractorReason, reason)
	}
}

func TestDeleteQuestionRemovesDependents(t *testing.T) {
	s := openTestStore(t)
	bank := s.BankRepo()
	history := s.HistoryRepo()
	sessions := s.SessionRepo()
	ctx := context.Background()

	exam := mustCreateExam(t, ctx, bank, "delete exam")
	q := mustCreateQuestion(t, ctx, bank, exam.ID, "doomed")

	sess, err := sessions.CreateSession(ctx, Session{
		ExamID:    exam.ID,
		Mode:      ModePractice,
		Questions: []string{q.ID},
	})
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	if _, err := history.RecordAttempt(ctx, RecordAttemptInput{
		SessionID:  sess.ID,
		QuestionID: q.ID,
		IsCorrect:  true,
	}); err != nil {
		t.Fatalf("RecordAttempt: %v", err)
	}

	deleted, err := bank.DeleteQuestion(ctx, q.ID)
	if err != nil {
		t.Fatalf("DeleteQuestion: %v", err)
	}
	if !deleted {
		t.Fatal("DeleteQuestion = false, want true")
	}

	gone, err := bank.QuestionByID(ctx, q.ID)
	if err != nil {
		t.Fatalf("QuestionByID: %v", err)
	}
	if gone != nil {
		t.Error("question still present after delete")
	}

	var optCount int
	if err := s.DB().QueryRow(
		"SELECT COUNT(*) FROM answer_options WHERE question_id = ?", q.ID,
	).Scan(&optCount); err != nil {
		t.Fatalf("count options: %v", err)
	}
	if optCount != 0 {
		t.Errorf("orphan options = %d, want 0", optCount)
	}

	stat, err := history.Stat(ctx, q.ID)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if stat != nil {
		t.Error("stat row survived question delete")
	}

	attempts, err := history.AttemptsBySession(ctx, sess.ID)
	if err != nil {
		t.Fatalf("AttemptsBySession: %v", err)
	}
	if len(attempts) != 0 {
		t.Errorf("len(attempts) = %d after delete, want 0", len(attempts))
	}

	again, err := bank.DeleteQuestion(ctx, q.ID)
	if err != nil {
		t.Fatalf("DeleteQuestion (again): %v", err)
	}
	if again {
		t.Error("second delete returned true, want false")
	}
}

func TestImportBundleAtomic(t *testing.T) {
	s := openTestStore(t)
	bank := s.BankRepo()
	ctx := context.Background()

	bundle := Bundle{
		Exam: Exam{Name: "bundle exam", Vendor: "acme"},
		Topics: []Topic{
			{Name: "compute", WeightPercent: 60},
			{Name: "storage", WeightPercent: 40},
		},
		Questions: []BundleQuestion{
			{
				Question: Question{
					Text:         "first imported",
					QuestionType: QuestionSingle,
					Difficulty:   DifficultyEasy,
					Options: []AnswerOption{
						{Text: "yes", IsCorrect: true},
						{Text: "no"},
					},
				},
				TopicNames: []string{"compute"},
			},
			{
				Question: Question{
					Text:         "second imported",
					QuestionType: QuestionSingle,
					Difficulty:   DifficultyHard,
					Options: []AnswerOption{
						{Text: "left", IsCorrect: true},
						{Text: "right"},
					},
				},
				TopicNames: []string{"compute", "storage"},
			},
		},
	}

	exam, err := bank.ImportBundle(ctx, bundle)
	if err != nil {
		t.Fatalf("ImportBundle: %v", err)
	}
	if exam.QuestionCount != 2 {
		t.Errorf("question count = %d, want 2", exam.QuestionCount)
	}

	topics, err := bank.Topics(ctx, exam.ID)
	if err != nil {
		t.Fatalf("Topics: %v", err)
	}
	if len(topics) != 2 {
		t.Fatalf("len(topics) = %d, want 2", len(topics))
	}

	questions, err := bank.Questions(ctx, QuestionFilter{ExamID: exam.ID})
	if err != nil {
		t.Fatalf("Questions: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("len(questions) = %d, want 2", len(questions))
	}
	second, err := bank.QuestionByID(ctx, questions[1].ID)
	if err != nil {
		t.Fatalf("QuestionByID: %v", err)
	}
	if len(second.TopicIDs) != 2 {
		t.Errorf("second question topics = %d, want 2", len(second.TopicIDs))
	}
	if len(second.Options) != 2 {
		t.Errorf("second question options = %d, want 2", len(second.Options))
	}
}

func TestImportBundleRollsBackOnBadTopicRef(t *testing.T) {
	s := openTestStore(t)
	bank := s.BankRepo()
	ctx := context.Background()

	_, err := bank.ImportBundle(ctx, Bundle{
		Exam:   Exam{Name: "doomed bundle"},
		Topics: []Topic{{Name: "real"}},
		Questions: []BundleQuestion{
			{
				Question: Question{
					Text:         "references a missing topic",
					QuestionType: QuestionSingle,
					Difficulty:   DifficultyEasy,
					Options: []AnswerOption{
						{Text: "a", IsCorrect: true},
						{Text: "b"},
					},
				},
				TopicNames: []string{"imaginary"},
			},
		},
	})
	if err == nil {
		t.Fatal("import with unknown topic reference succeeded, want error")
	}

	// Nothing from the failed bundle may remain.
	exam, err := bank.ExamByName(ctx, "doomed bundle")
	if err != nil {
		t.Fatalf("ExamByName: %v", err)
	}
	if exam != nil {
		t.Error("exam row survived a rolled-back import")
	}
}

func TestSearchQuestions(t *testing.T) {
	s := openTestStore(t)
	bank := s.BankRepo()
	ctx := context.Background()

	exam := mustCreateExam(t, ctx, bank, "search exam")
	other := mustCreateExam(t, ctx, bank, "search other")

	q1, err := bank.CreateQuestion(ctx, Question{
		ExamID:       exam.ID,
		Text:         "Which service provides a managed NAT Gateway?",
		QuestionType: QuestionSingle,
		Difficulty:   DifficultyEasy,
		Options: []AnswerOption{
			{Text: "VPC", IsCorrect: true},
			{Text: "Route 53"},
		},
	})
	if err != nil {
		t.Fatalf("CreateQuestion: %v", err)
	}
	q2, err := bank.CreateQuestion(ctx, Question{
		ExamID:       exam.ID,
		Text:         "Pick the lowest cost archival tier.",
		QuestionType: QuestionSingle,
		Difficulty:   DifficultyEasy,
		Explanation:  "Deep Archive is the cheapest tier; a NAT gateway is unrelated.",
		Options: []AnswerOption{
			{Text: "Deep Archive", IsCorrect: true},
			{Text: "Standard"},
		},
	})
	if err != nil {
		t.Fatalf("CreateQuestion: %v", err)
	}
	if _, err := bank.CreateQuestion(ctx, Question{
		ExamID:       other.ID,
		Text:         "NAT instances versus NAT gateways?",
		QuestionType: QuestionSingle,
		Difficulty:   DifficultyEasy,
		Options: []AnswerOption{
			{Text: "gateway", IsCorrect: true},
			{Text: "instance"},
		},
	}); err != nil {
		t.Fatalf("CreateQuestion: %v", err)
	}

	got, err := bank.SearchQuestions(ctx, exam.ID, "nat", 10)
	if err != nil {
		t.Fatalf("SearchQuestions: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len(results) = %d, want 2 (text match and explanation match)", len(got))
	}
	if got[0].ID != q1.ID || got[1].ID != q2.ID {
		t.Error("search results not in creation order")
	}
	if len(got[0].Options) == 0 {
		t.Error("search results missing options")
	}

	none, err := bank.SearchQuestions(ctx, exam.ID, "kubernetes", 10)
	if err != nil {
		t.Fatalf("SearchQuestions (no match): %v", err)
	}
	if len(none) != 0 {
		t.Errorf("len(results) = %d, want 0", len(none))
	}
}
