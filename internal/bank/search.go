package bank

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jfarleigh/certrun/internal/store"
)

// Search listing bounds, mirrored by the HTTP layer.
const (
	DefaultSearchLimit = 20
	MaxSearchLimit     = 100
)

// Snippet geometry in runes: the window kept on each side of a hit,
// and the fallback excerpt length when the match was in the
// explanation rather than the question text.
const (
	snippetWindowRunes   = 50
	snippetFallbackRunes = 150
)

// SearchResult is one search hit with an excerpt around the match.
type SearchResult struct {
	Question *store.Question
	Snippet  string
}

// Search matches the query case-insensitively against question text
// and explanations. An empty examID searches the whole bank. An
// unknown examID simply matches nothing.
func (s *Service) Search(ctx context.Context, examID, query string, limit int) ([]SearchResult, error) {
	if limit == 0 {
		limit = DefaultSearchLimit
	}

	var problems []string
	if strings.TrimSpace(query) == "" {
		problems = append(problems, "search query is required")
	}
	if limit < 0 || limit > MaxSearchLimit {
		problems = append(problems, fmt.Sprintf("limit must be between 1 and %d", MaxSearchLimit))
	}
	if len(problems) > 0 {
		return nil, &ErrValidation{Problems: problems}
	}

	questions, err := s.repo.SearchQuestions(ctx, examID, query, limit)
	if err != nil {
		return nil, &ErrStorage{Op: "search questions", Err: err}
	}

	results := make([]SearchResult, 0, len(questions))
	for _, q := range questions {
		results = append(results, SearchResult{Question: q, Snippet: matchSnippet(q.Text, query)})
	}
	return results, nil
}

// matchSnippet excerpts the question text around the first match, or
// the opening of the text when the hit was elsewhere.
func matchSnippet(text, query string) string {
	lower := strings.ToLower(text)
	idx := strings.Index(lower, strings.ToLower(query))
	if idx < 0 {
		return preview(text, snippetFallbackRunes)
	}

	runes := []rune(text)
	at := utf8.RuneCountInString(lower[:idx])
	start := at - snippetWindowRunes
	if start < 0 {
		start = 0
	}
	end := at + utf8.RuneCountInString(query) + snippetWindowRunes
	if end > len(runes) {
		end = len(runes)
	}

	out := string(runes[start:end])
	if start > 0 {
		out = "..." + out
	}
	if end < len(runes) {
		out += "..."
	}
	return out
}
