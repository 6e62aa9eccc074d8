package selection

// DefaultBaseWeight is the cold-start weight given to questions with
// no attempt history.
const DefaultBaseWeight = 100.0

// DefaultStruggleFactor scales how strongly a question's error rate
// raises its weight.
const DefaultStruggleFactor = 3.0

// DefaultRecencyRatePerDay is the per-day growth of the staleness
// factor for attempted questions.
const DefaultRecencyRatePerDay = 0.01

// DefaultRecencyCap bounds the staleness factor so very old attempts
// cannot grow a weight without limit.
const DefaultRecencyCap = 1.5

// Config holds the weighting curve parameters.
type Config struct {
	BaseWeight        float64
	StruggleFactor    float64
	RecencyRatePerDay float64
	RecencyCap        float64
}

// DefaultConfig returns the standard weighting parameters.
func DefaultConfig() Config {
	return Config{
		BaseWeight:        DefaultBaseWeight,
		StruggleFactor:    DefaultStruggleFactor,
		RecencyRatePerDay: DefaultRecencyRatePerDay,
		RecencyCap:        DefaultRecencyCap,
	}
}
