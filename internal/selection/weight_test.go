package selection

import (
	"testing"
	"time"
)

func TestWeight_ColdStart(t *testing.T) {
	now := time.Now()
	cfg := DefaultConfig()

	if got := Weight(nil, now, cfg); got != cfg.BaseWeight {
		t.Errorf("Weight(nil) = %v, want %v", got, cfg.BaseWeight)
	}
	stat := &Stat{AttemptCount: 0}
	if got := Weight(stat, now, cfg); got != cfg.BaseWeight {
		t.Errorf("Weight(zero attempts) = %v, want %v", got, cfg.BaseWeight)
	}
}

func TestWeight_ColdStartDominatesAttempted(t *testing.T) {
	now := time.Now()
	cfg := DefaultConfig()
	cold := Weight(nil, now, cfg)

	// Any question answered correctly at least once, attempted just
	// now, must weigh strictly less than a never-seen question.
	tests := []struct {
		attempts int
		correct  int
	}{
		{1, 1},
		{10, 9},
		{10, 5},
		{10, 1},
		{100, 1},
	}
	for _, tt := range tests {
		stat := &Stat{AttemptCount: tt.attempts, CorrectCount: tt.correct, LastAttempted: now}
		got := Weight(stat, now, cfg)
		if got >= cold {
			t.Errorf("Weight(%d/%d attempts correct) = %v, want < cold-start %v", tt.correct, tt.attempts, got, cold)
		}
	}

	// A fully failed question at fresh recency meets the cold-start
	// weight exactly, never exceeds it.
	failed := &Stat{AttemptCount: 10, CorrectCount: 0, LastAttempted: now}
	if got := Weight(failed, now, cfg); got != cold {
		t.Errorf("Weight(all wrong, fresh) = %v, want %v", got, cold)
	}
}

func TestWeight_MonotonicInErrorRate(t *testing.T) {
	now := time.Now()
	cfg := DefaultConfig()

	prev := 0.0
	for correct := 10; correct >= 0; correct-- {
		stat := &Stat{AttemptCount: 10, CorrectCount: correct, LastAttempted: now}
		got := Weight(stat, now, cfg)
		if got <= prev {
			t.Fatalf("Weight not increasing: %d/10 correct gave %v, previous %v", correct, got, prev)
		}
		prev = got
	}
}

func TestWeight_WeakOutweighsStrong(t *testing.T) {
	now := time.Now()
	last := now.Add(-24 * time.Hour)
	cfg := DefaultConfig()

	weak := &Stat{AttemptCount: 10, CorrectCount: 2, LastAttempted: last}
	strong := &Stat{AttemptCount: 10, CorrectCount: 9, LastAttempted: last}

	if wq, wr := Weight(weak, now, cfg), Weight(strong, now, cfg); wq <= wr {
		t.Errorf("weak question weight %v, strong %v, want weak > strong", wq, wr)
	}
}

func TestWeight_StalenessGrowsAndClamps(t *testing.T) {
	now := time.Now()
	cfg := DefaultConfig()
	stat := func(age time.Duration) *Stat {
		return &Stat{AttemptCount: 4, CorrectCount: 1, LastAttempted: now.Add(-age)}
	}

	fresh := Weight(stat(0), now, cfg)
	week := Weight(stat(7*24*time.Hour), now, cfg)
	year := Weight(stat(365*24*time.Hour), now, cfg)
	decade := Weight(stat(10*365*24*time.Hour), now, cfg)

	if !(fresh < week && week < year) {
		t.Errorf("staleness not monotone: fresh %v, week %v, year %v", fresh, week, year)
	}
	if year != decade {
		t.Errorf("staleness not clamped: year %v, decade %v", year, decade)
	}
	if max := fresh * cfg.RecencyCap; year > max+1e-9 {
		t.Errorf("clamped weight %v exceeds fresh*cap %v", year, max)
	}
}

func TestWeight_StrictlyPositive(t *testing.T) {
	now := time.Now()
	cfg := DefaultConfig()

	// Worst case: perfect accuracy, attempted this instant.
	stat := &Stat{AttemptCount: 1000, CorrectCount: 1000, LastAttempted: now}
	if got := Weight(stat, now, cfg); got <= 0 {
		t.Errorf("Weight(perfect accuracy) = %v, want > 0", got)
	}
}

func TestErrorRate(t *testing.T) {
	tests := []struct {
		attempts int
		correct  int
		want     float64
	}{
		{0, 0, 0},
		{10, 10, 0},
		{10, 5, 0.5},
		{10, 0, 1},
		{4, 3, 0.25},
	}
	for _, tt := range tests {
		s := &Stat{AttemptCount: tt.attempts, CorrectCount: tt.correct}
		if got := s.ErrorRate(); got != tt.want {
			t.Errorf("ErrorRate(%d/%d) = %v, want %v", tt.correct, tt.attempts, got, tt.want)
		}
	}
	var nilStat *Stat
	if got := nilStat.ErrorRate(); got != 0 {
		t.Errorf("nil ErrorRate() = %v, want 0", got)
	}
}
