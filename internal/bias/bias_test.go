package bias

import (
	"strings"
	"testing"
)

func correct(text string) Option {
	return Option{Text: text, IsCorrect: true}
}

func distractor(text, reason string) Option {
	return Option{Text: text, DistractorReason: reason}
}

// balancedOptions is a clean set: equal-ish lengths, reasons past the
// minimum, one correct answer.
func balancedOptions() []Option {
	return []Option{
		correct("Use Amazon S3 for object storage"),
		distractor("Use Amazon EBS for block storage", "EBS volumes attach to one instance"),
		distractor("Use Amazon EFS for shared files", "EFS is shared POSIX file storage"),
		distractor("Use Amazon FSx for Windows files", "FSx targets Windows file workloads"),
	}
}

func TestAnalyzeLengths_Basic(t *testing.T) {
	m := AnalyzeLengths(balancedOptions())

	if m.MeanLength <= 0 {
		t.Errorf("MeanLength = %v, want > 0", m.MeanLength)
	}
	if m.MinLength > m.MaxLength {
		t.Errorf("MinLength %d > MaxLength %d", m.MinLength, m.MaxLength)
	}
	if m.CorrectAvgLength <= 0 || m.DistractorAvgLength <= 0 {
		t.Errorf("averages = %v correct, %v distractor, want both > 0", m.CorrectAvgLength, m.DistractorAvgLength)
	}
	if len(m.Lengths) != 4 {
		t.Errorf("len(Lengths) = %d, want 4", len(m.Lengths))
	}
}

func TestAnalyzeLengths_CorrectLonger(t *testing.T) {
	m := AnalyzeLengths([]Option{
		correct("This is a much longer correct answer with lots of detail"),
		distractor("Short wrong", ""),
		distractor("Also short", ""),
		distractor("Brief one", ""),
	})

	if m.CorrectDistractorRatio <= 1.0 {
		t.Errorf("ratio = %v, want > 1.0", m.CorrectDistractorRatio)
	}
	if m.CorrectAvgLength <= m.DistractorAvgLength {
		t.Errorf("correct avg %v <= distractor avg %v", m.CorrectAvgLength, m.DistractorAvgLength)
	}
}

func TestAnalyzeLengths_BalancedIsNeutral(t *testing.T) {
	m := AnalyzeLengths([]Option{
		correct("Answer option A here"),
		distractor("Answer option B here", ""),
		distractor("Answer option C here", ""),
		distractor("Answer option D here", ""),
	})

	if m.CorrectDistractorRatio != 1.0 {
		t.Errorf("ratio = %v, want 1.0 for equal lengths", m.CorrectDistractorRatio)
	}
	if m.LengthVariancePercent != 0 {
		t.Errorf("variance = %v, want 0 for equal lengths", m.LengthVariancePercent)
	}
}

func TestAnalyzeLengths_Empty(t *testing.T) {
	m := AnalyzeLengths(nil)

	if m.MeanLength != 0 || m.MinLength != 0 || m.MaxLength != 0 {
		t.Errorf("empty set lengths = %v/%d/%d, want zeros", m.MeanLength, m.MinLength, m.MaxLength)
	}
	if m.CorrectDistractorRatio != 1.0 {
		t.Errorf("empty set ratio = %v, want neutral 1.0", m.CorrectDistractorRatio)
	}
}

func TestAnalyzeLengths_CountsRunesNotBytes(t *testing.T) {
	m := AnalyzeLengths([]Option{correct("naïve café te")})

	if m.Lengths[0].Length != 13 {
		t.Errorf("Length = %d, want 13 runes", m.Lengths[0].Length)
	}
}

func TestAnalyzeLengths_PreviewTruncates(t *testing.T) {
	long := strings.Repeat("x", 60)
	m := AnalyzeLengths([]Option{correct(long)})

	want := strings.Repeat("x", 50) + "..."
	if m.Lengths[0].Preview != want {
		t.Errorf("Preview = %q, want %q", m.Lengths[0].Preview, want)
	}
	if m.Lengths[0].Length != 60 {
		t.Errorf("Length = %d, want 60", m.Lengths[0].Length)
	}
}

func findCode(findings []Finding, code Code) bool {
	for _, f := range findings {
		if f.Code == code {
			return true
		}
	}
	return false
}

func TestAnalyze_BalancedPasses(t *testing.T) {
	r := Analyze(balancedOptions(), DefaultThresholds())

	if !r.Valid {
		t.Fatalf("balanced set invalid, issues: %+v", r.Issues)
	}
	if len(r.Issues) != 0 || len(r.Warnings) != 0 {
		t.Errorf("findings = %d issues, %d warnings, want none", len(r.Issues), len(r.Warnings))
	}
	if r.Grade != "A" {
		t.Errorf("Grade = %q (score %v), want A", r.Grade, r.Score)
	}
}

func TestAnalyze_CorrectTooLong(t *testing.T) {
	r := Analyze([]Option{
		correct("This is a very long and detailed correct answer that provides extensive information about the topic"),
		distractor("Short wrong A", ""),
		distractor("Short wrong B", ""),
		distractor("Short wrong C", ""),
	}, DefaultThresholds())

	if r.Valid {
		t.Fatal("length-biased set passed validation")
	}
	if !findCode(r.Issues, CodeCorrectTooLong) {
		t.Errorf("issues = %+v, want %s", r.Issues, CodeCorrectTooLong)
	}
}

func TestAnalyze_LengthVarianceAlone(t *testing.T) {
	// Ratio stays 1.0 and every option clears the minimum length, so
	// the spread is the only offense.
	r := Analyze([]Option{
		distractor(strings.Repeat("a", 10), ""),
		correct(strings.Repeat("b", 30)),
		distractor(strings.Repeat("c", 30), ""),
		distractor(strings.Repeat("d", 50), ""),
	}, DefaultThresholds())

	if r.Valid {
		t.Fatal("high-variance set passed validation")
	}
	if len(r.Issues) != 1 || r.Issues[0].Code != CodeLengthVarianceHigh {
		t.Errorf("issues = %+v, want exactly one %s", r.Issues, CodeLengthVarianceHigh)
	}
}

func TestAnalyze_AnswerTooShort(t *testing.T) {
	r := Analyze([]Option{
		correct("Good answer here"),
		distractor("OK", ""),
		distractor("Also good here", ""),
		distractor("Another option", ""),
	}, DefaultThresholds())

	if r.Valid {
		t.Fatal("set with a two-char option passed validation")
	}
	if !findCode(r.Issues, CodeAnswerTooShort) {
		t.Errorf("issues = %+v, want %s", r.Issues, CodeAnswerTooShort)
	}
	for _, f := range r.Issues {
		if f.Code == CodeAnswerTooShort && !strings.Contains(f.Message, "option 2") {
			t.Errorf("message %q does not name option 2", f.Message)
		}
	}
}

func TestAnalyze_MissingReasonOnlyWhenRequired(t *testing.T) {
	options := []Option{
		correct("Correct answer here"),
		distractor("Wrong answer A here", ""),
		distractor("Wrong answer B here", ""),
		distractor("Wrong answer C here", ""),
	}

	r := Analyze(options, DefaultThresholds())
	if findCode(r.Issues, CodeMissingDistractorReason) {
		t.Errorf("missing reason flagged with RequireDistractorReason off: %+v", r.Issues)
	}
	if !r.Valid {
		t.Errorf("set invalid without required reasons, issues: %+v", r.Issues)
	}

	strict := DefaultThresholds()
	strict.RequireDistractorReason = true
	r = Analyze(options, strict)
	if r.Valid {
		t.Fatal("missing reasons passed with RequireDistractorReason on")
	}
	if !findCode(r.Issues, CodeMissingDistractorReason) {
		t.Errorf("issues = %+v, want %s", r.Issues, CodeMissingDistractorReason)
	}
}

func TestAnalyze_ShortReasonWarns(t *testing.T) {
	r := Analyze([]Option{
		correct("Correct answer here"),
		distractor("Wrong answer A here", "Bad"),
		distractor("Wrong answer B here", "Also bad"),
		distractor("Wrong answer C here", "Short"),
	}, DefaultThresholds())

	if !r.Valid {
		t.Fatalf("warnings alone invalidated the set, issues: %+v", r.Issues)
	}
	count := 0
	for _, w := range r.Warnings {
		if w.Code == CodeDistractorReasonTooShort {
			count++
		}
	}
	if count != 3 {
		t.Errorf("short-reason warnings = %d, want 3 (one per distractor)", count)
	}
}

func TestAnalyze_NoDistractors(t *testing.T) {
	r := Analyze([]Option{
		correct("Correct answer option A"),
		correct("Correct answer option B"),
	}, DefaultThresholds())

	if !r.Valid {
		t.Errorf("all-correct set invalid, issues: %+v", r.Issues)
	}
	if r.Metrics.CorrectDistractorRatio != 1.0 {
		t.Errorf("ratio = %v, want neutral 1.0 with no distractors", r.Metrics.CorrectDistractorRatio)
	}
}

func TestAnalyze_CustomThresholds(t *testing.T) {
	relaxed := Thresholds{
		MaxLengthVariancePercent:  100,
		MinCorrectDistractorRatio: 0.5,
		MaxCorrectDistractorRatio: 2.0,
		MinAnswerLength:           5,
		MinDistractorReasonLength: 20,
	}
	r := Analyze([]Option{
		correct("Correct A"),
		distractor("Wrong B longer", ""),
		distractor("Wrong C longer", ""),
		distractor("Wrong D longer", ""),
	}, relaxed)

	if !r.Valid {
		t.Errorf("set invalid under relaxed thresholds, issues: %+v", r.Issues)
	}
}

func TestAnalyze_ScoreDegradesWithIssues(t *testing.T) {
	r := Analyze([]Option{
		correct("This is a very long correct answer with extensive detail"),
		distractor("Short", ""),
		distractor("Short", ""),
		distractor("Short", ""),
	}, DefaultThresholds())

	if r.Score >= 0.7 {
		t.Errorf("Score = %v, want < 0.7 for a heavily biased set", r.Score)
	}
	if r.Grade != "D" && r.Grade != "F" {
		t.Errorf("Grade = %q, want D or F", r.Grade)
	}
}

func TestGrade_Boundaries(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{0.95, "A"},
		{0.90, "A"},
		{0.85, "B"},
		{0.80, "B"},
		{0.75, "C"},
		{0.70, "C"},
		{0.65, "D"},
		{0.60, "D"},
		{0.55, "F"},
		{0, "F"},
	}
	for _, tt := range tests {
		if got := Grade(tt.score); got != tt.want {
			t.Errorf("Grade(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestAnalyze_ChooseNBalanced(t *testing.T) {
	r := Analyze([]Option{
		correct("Correct answer option A"),
		correct("Correct answer option B"),
		distractor("Incorrect answer opt C", ""),
		distractor("Incorrect answer opt D", ""),
	}, DefaultThresholds())

	if !r.Valid {
		t.Errorf("balanced choose-two set invalid, issues: %+v", r.Issues)
	}
	if r.Metrics.CorrectAvgLength <= 0 || r.Metrics.DistractorAvgLength <= 0 {
		t.Errorf("averages = %v/%v, want both > 0", r.Metrics.CorrectAvgLength, r.Metrics.DistractorAvgLength)
	}
}

func TestAnalyze_SelectAllWithBias(t *testing.T) {
	r := Analyze([]Option{
		correct("This is a very long and detailed correct answer A"),
		correct("This is a very long and detailed correct answer B"),
		distractor("Short C", ""),
		distractor("Short D", ""),
	}, DefaultThresholds())

	if r.Valid {
		t.Fatal("length-biased select-all set passed validation")
	}
}
