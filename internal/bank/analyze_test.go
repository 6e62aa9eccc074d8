package bank

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jfarleigh/certrun/internal/bias"
	"github.com/jfarleigh/certrun/internal/store"
)

func TestAnalyzeProposalStructureFirst(t *testing.T) {
	svc, _ := newTestService()

	res := svc.AnalyzeProposal(ProposalInput{
		QuestionType: store.QuestionSingle,
		Options: []OptionInput{
			{Text: "Only one option here", IsCorrect: true},
		},
	})
	if res.Valid {
		t.Error("malformed set reported valid")
	}
	if res.Report != nil {
		t.Error("structural failure still produced a bias report")
	}
	if len(res.StructuralProblems) == 0 {
		t.Fatal("no structural problems reported")
	}
}

func TestAnalyzeProposalPasses(t *testing.T) {
	svc, _ := newTestService()

	res := svc.AnalyzeProposal(ProposalInput{QuestionType: store.QuestionSingle, Options: balancedInputs()})
	if !res.Valid {
		t.Fatalf("balanced set invalid: %+v", res.Report)
	}
	if res.Report == nil || res.Report.Grade == "" {
		t.Fatal("missing bias report")
	}
	if !strings.Contains(res.Recommendation, "Proceed") {
		t.Errorf("Recommendation = %q", res.Recommendation)
	}
}

func TestAnalyzeProposalFlagsBias(t *testing.T) {
	svc, _ := newTestService()

	res := svc.AnalyzeProposal(ProposalInput{QuestionType: store.QuestionSingle, Options: biasedInputs()})
	if res.Valid {
		t.Error("biased set reported valid")
	}
	if res.Report == nil || len(res.Report.Issues) == 0 {
		t.Fatal("expected issues in report")
	}
	if !strings.Contains(res.Recommendation, "Address") {
		t.Errorf("Recommendation = %q", res.Recommendation)
	}
}

func TestAnalyzeProposalChooseN(t *testing.T) {
	svc, _ := newTestService()

	options := balancedInputs()
	options[1].IsCorrect = true
	options[1].DistractorReason = ""

	res := svc.AnalyzeProposal(ProposalInput{
		QuestionType: store.QuestionChooseN,
		ChooseCount:  2,
		Options:      options,
	})
	if !res.Valid {
		t.Fatalf("choose_n set invalid: %+v", res.Report)
	}

	// Wrong correct count is a structural failure, not a bias finding.
	res = svc.AnalyzeProposal(ProposalInput{
		QuestionType: store.QuestionChooseN,
		ChooseCount:  3,
		Options:      options,
	})
	if res.Valid || len(res.StructuralProblems) == 0 {
		t.Errorf("mismatched choose_count passed: %+v", res)
	}
}

func TestQuestionQualityBreakdown(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	exam := mustExam(t, svc)
	q := mustQuestion(t, svc, exam.ID)

	res, err := svc.QuestionQuality(ctx, q.ID)
	if err != nil {
		t.Fatalf("QuestionQuality: %v", err)
	}
	if res.QuestionID != q.ID {
		t.Errorf("QuestionID = %q, want %q", res.QuestionID, q.ID)
	}
	if res.Preview != q.Text {
		t.Errorf("Preview = %q, want full text for a short question", res.Preview)
	}
	if !res.Report.Valid {
		t.Errorf("balanced question invalid: %+v", res.Report.Issues)
	}
	if len(res.Options) != 4 {
		t.Fatalf("len(Options) = %d, want 4", len(res.Options))
	}

	first := res.Options[0]
	if first.ID != q.Options[0].ID {
		t.Errorf("option id = %q, want %q", first.ID, q.Options[0].ID)
	}
	if !first.IsCorrect || first.HasDistractorReason {
		t.Errorf("first option flags = %+v, want correct without reason", first)
	}
	if second := res.Options[1]; !second.HasDistractorReason || second.Length != 32 {
		t.Errorf("second option breakdown = %+v", second)
	}
}

func TestQuestionQualityNotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.QuestionQuality(context.Background(), "ghost")
	var nf *ErrNotFound
	if !errors.As(err, &nf) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestExamBiasReportAggregates(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	exam := mustExam(t, svc)
	mustQuestion(t, svc, exam.ID)
	flagged, err := svc.CreateQuestion(ctx, CreateQuestionInput{
		ExamID:       exam.ID,
		Text:         "Where should archives go?",
		QuestionType: store.QuestionSingle,
		Options:      biasedInputs(),
		AllowBiased:  true,
	})
	if err != nil {
		t.Fatalf("CreateQuestion: %v", err)
	}

	res, err := svc.ExamBiasReport(ctx, exam.ID)
	if err != nil {
		t.Fatalf("ExamBiasReport: %v", err)
	}
	if res.Exam.ID != exam.ID {
		t.Errorf("Exam.ID = %q, want %q", res.Exam.ID, exam.ID)
	}
	if res.Report.QuestionCount != 2 {
		t.Errorf("QuestionCount = %d, want 2", res.Report.QuestionCount)
	}
	if len(res.Report.FlaggedIDs) != 1 || res.Report.FlaggedIDs[0] != flagged.ID {
		t.Errorf("FlaggedIDs = %v, want [%s]", res.Report.FlaggedIDs, flagged.ID)
	}
	if res.Report.CountsByCode[bias.CodeCorrectTooLong] == 0 {
		t.Errorf("CountsByCode = %v, want correct_too_long counted", res.Report.CountsByCode)
	}
}

func TestExamBiasReportUnknownExam(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.ExamBiasReport(context.Background(), "ghost")
	var nf *ErrNotFound
	if !errors.As(err, &nf) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestGuidelinesFollowServiceThresholds(t *testing.T) {
	svc, _ := newTestService()

	g := svc.Guidelines(4, 0)
	if g.TargetLength != bias.DefaultTargetLength {
		t.Errorf("TargetLength = %d, want %d", g.TargetLength, bias.DefaultTargetLength)
	}
	if g.MinLength >= g.MaxLength {
		t.Errorf("band = [%d, %d], want min < max", g.MinLength, g.MaxLength)
	}
}
