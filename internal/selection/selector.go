package selection

import "math/rand"

// Candidate pairs a question id with its selection weight. Callers
// build candidate slices in ascending creation order; together with a
// caller-owned rng this makes every draw reproducible, and equal
// weights resolve toward the earlier id for a given rng state.
type Candidate struct {
	ID     string
	Weight float64
}

// Draw picks one candidate with probability proportional to weight,
// in a single cumulative pass over the slice. Returns false when the
// slice is empty (pool exhausted).
func Draw(eligible []Candidate, rng *rand.Rand) (string, bool) {
	if len(eligible) == 0 {
		return "", false
	}
	totalWeight := 0.0
	for _, c := range eligible {
		totalWeight += c.Weight
	}
	if totalWeight <= 0 {
		return eligible[0].ID, true
	}

	r := rng.Float64() * totalWeight
	cumulative := 0.0
	for _, c := range eligible {
		cumulative += c.Weight
		if r <= cumulative {
			return c.ID, true
		}
	}
	// Float accumulation can land a hair past the total.
	return eligible[len(eligible)-1].ID, true
}

// DrawSequence draws up to n ids without replacement, stopping early
// when the pool is exhausted.
func DrawSequence(eligible []Candidate, n int, rng *rand.Rand) []string {
	if n <= 0 {
		return nil
	}
	if n > len(eligible) {
		n = len(eligible)
	}

	ids := make([]string, 0, n)
	remaining := make([]Candidate, len(eligible))
	copy(remaining, eligible)

	for len(ids) < n && len(remaining) > 0 {
		id, ok := Draw(remaining, rng)
		if !ok {
			break
		}
		ids = append(ids, id)
		for idx, c := range remaining {
			if c.ID == id {
				remaining = append(remaining[:idx], remaining[idx+1:]...)
				break
			}
		}
	}
	return ids
}

// SequentialIDs returns the first n ids in the given order. This is
// the practice-mode draw: full-pool coverage, no weighting.
func SequentialIDs(eligible []Candidate, n int) []string {
	if n <= 0 {
		return nil
	}
	if n > len(eligible) {
		n = len(eligible)
	}
	ids := make([]string, n)
	for i := range ids {
		ids[i] = eligible[i].ID
	}
	return ids
}
