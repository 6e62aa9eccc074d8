package selection

import (
	"math"
	"time"
)

// Stat is the aggregated attempt history for one question. A nil Stat
// or a zero AttemptCount marks a never-attempted question.
type Stat struct {
	AttemptCount  int
	CorrectCount  int
	LastAttempted time.Time
}

// ErrorRate returns the fraction of attempts answered incorrectly.
func (s *Stat) ErrorRate() float64 {
	if s == nil || s.AttemptCount == 0 {
		return 0
	}
	return 1 - float64(s.CorrectCount)/float64(s.AttemptCount)
}

// Weight maps a question's attempt history to a selection weight.
// Never-attempted questions get the full BaseWeight so the bank is
// covered before repetition. Attempted questions are discounted by
// accuracy and regain weight as the error rate climbs or the last
// attempt goes stale. At a 100% error rate and fresh recency the
// weight meets BaseWeight exactly, so at equal recency no question
// the learner has ever answered correctly outweighs an unseen one.
//
// Pure and deterministic for a given stat snapshot and clock.
func Weight(stat *Stat, now time.Time, cfg Config) float64 {
	if stat == nil || stat.AttemptCount == 0 {
		return cfg.BaseWeight
	}
	struggle := (1 + stat.ErrorRate()*cfg.StruggleFactor) / (1 + cfg.StruggleFactor)
	return cfg.BaseWeight * struggle * recencyFactor(now.Sub(stat.LastAttempted), cfg)
}

// recencyFactor grows linearly with days since the last attempt,
// clamped to [1, RecencyCap].
func recencyFactor(elapsed time.Duration, cfg Config) float64 {
	if elapsed <= 0 {
		return 1
	}
	days := elapsed.Hours() / 24.0
	return math.Min(1+days*cfg.RecencyRatePerDay, cfg.RecencyCap)
}
