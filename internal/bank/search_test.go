package bank

import (
	"context"
	"strings"
	"testing"

	"github.com/jfarleigh/certrun/internal/store"
)

func TestMatchSnippetWindowsAroundHit(t *testing.T) {
	text := strings.Repeat("a", 60) + "NEEDLE" + strings.Repeat("b", 60)
	got := matchSnippet(text, "needle")

	if !strings.HasPrefix(got, "...") || !strings.HasSuffix(got, "...") {
		t.Errorf("snippet %q missing ellipses", got)
	}
	if !strings.Contains(got, "NEEDLE") {
		t.Errorf("snippet %q lost the match", got)
	}
	want := 3 + snippetWindowRunes + len("NEEDLE") + snippetWindowRunes + 3
	if len(got) != want {
		t.Errorf("len = %d, want %d", len(got), want)
	}
}

func TestMatchSnippetAtTextStart(t *testing.T) {
	text := "NEEDLE at the very start " + strings.Repeat("x", 80)
	got := matchSnippet(text, "needle")

	if strings.HasPrefix(got, "...") {
		t.Errorf("snippet %q has a leading marker for a hit at offset 0", got)
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("snippet %q missing trailing marker", got)
	}
}

func TestMatchSnippetShortText(t *testing.T) {
	if got := matchSnippet("short question", "question"); got != "short question" {
		t.Errorf("got %q, want the full text", got)
	}
}

func TestMatchSnippetFallback(t *testing.T) {
	long := strings.Repeat("y", 200)
	got := matchSnippet(long, "absent term")
	if len(got) != snippetFallbackRunes+3 || !strings.HasSuffix(got, "...") {
		t.Errorf("fallback = %q (%d chars), want %d plus marker", got, len(got), snippetFallbackRunes)
	}

	if got := matchSnippet("short text", "absent"); got != "short text" {
		t.Errorf("short fallback = %q, want full text", got)
	}
}

func TestSearchValidatesInput(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.Search(ctx, "", "  ", 0); err == nil {
		t.Error("blank query accepted")
	}
	if _, err := svc.Search(ctx, "", "s3", MaxSearchLimit+1); err == nil {
		t.Error("limit above cap accepted")
	}
}

func TestSearchReturnsSnippets(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	exam := mustExam(t, svc)
	q := mustQuestion(t, svc, exam.ID)

	results, err := svc.Search(ctx, exam.ID, "objects", 0)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 1 || results[0].Question.ID != q.ID {
		t.Fatalf("results = %+v, want the stored question", results)
	}
	if !strings.Contains(results[0].Snippet, "objects") {
		t.Errorf("snippet %q missing the query", results[0].Snippet)
	}

	// A hit in the explanation falls back to the opening of the text.
	expl := "Durability comes from replication across zones."
	if _, err := svc.UpdateQuestion(ctx, store.QuestionUpdate{ID: q.ID, Explanation: &expl}); err != nil {
		t.Fatalf("UpdateQuestion: %v", err)
	}
	results, err = svc.Search(ctx, "", "replication", 0)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("explanation search results = %d, want 1", len(results))
	}
	if results[0].Snippet != q.Text {
		t.Errorf("fallback snippet = %q, want question text", results[0].Snippet)
	}
}
