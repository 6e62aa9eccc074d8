package bias

import (
	"strings"
	"testing"
)

func TestGuidelines_Defaults(t *testing.T) {
	g := Guidelines(0, 0, DefaultThresholds())

	if g.TargetLength != DefaultTargetLength {
		t.Errorf("TargetLength = %d, want %d", g.TargetLength, DefaultTargetLength)
	}
	if g.MinLength != 40 || g.MaxLength != 120 {
		t.Errorf("length band = [%d, %d], want [40, 120] around 80", g.MinLength, g.MaxLength)
	}
	if len(g.Constraints) == 0 || len(g.AntiPatterns) == 0 || len(g.Tips) == 0 {
		t.Fatalf("guidance sections empty: %+v", g)
	}
	if !strings.Contains(g.Constraints[0], "4 answers") {
		t.Errorf("first constraint %q does not name the default option count", g.Constraints[0])
	}
	joined := strings.ToLower(strings.Join(g.AntiPatterns, " "))
	if !strings.Contains(joined, "longer") && !strings.Contains(joined, "detailed") {
		t.Errorf("anti-patterns do not mention length bias: %v", g.AntiPatterns)
	}
}

func TestGuidelines_CustomTarget(t *testing.T) {
	g := Guidelines(5, 100, DefaultThresholds())

	if g.TargetLength != 100 {
		t.Errorf("TargetLength = %d, want 100", g.TargetLength)
	}
	if g.MinLength >= 100 || g.MaxLength <= 100 {
		t.Errorf("length band = [%d, %d], want a band around 100", g.MinLength, g.MaxLength)
	}
	if !strings.Contains(g.Constraints[0], "5 answers") {
		t.Errorf("first constraint %q does not name 5 answers", g.Constraints[0])
	}
}

func TestGuidelines_FloorsAtMinAnswerLength(t *testing.T) {
	g := Guidelines(4, 10, DefaultThresholds())

	// 50% below a 10-char target would allow 5, under the hard
	// per-option minimum.
	if g.MinLength != DefaultThresholds().MinAnswerLength {
		t.Errorf("MinLength = %d, want floor %d", g.MinLength, DefaultThresholds().MinAnswerLength)
	}
}
