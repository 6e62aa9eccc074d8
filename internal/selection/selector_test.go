package selection

import (
	"math/rand"
	"testing"
)

func pool(ids ...string) []Candidate {
	cs := make([]Candidate, len(ids))
	for i, id := range ids {
		cs[i] = Candidate{ID: id, Weight: 1}
	}
	return cs
}

func TestDraw_EmptyPool(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if id, ok := Draw(nil, rng); ok {
		t.Errorf("Draw(empty) returned %q, want exhausted", id)
	}
}

func TestDraw_SingleCandidate(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	id, ok := Draw(pool("q1"), rng)
	if !ok || id != "q1" {
		t.Errorf("Draw(single) = %q, %v, want q1, true", id, ok)
	}
}

func TestDraw_DeterministicForSeed(t *testing.T) {
	candidates := []Candidate{
		{ID: "q1", Weight: 10},
		{ID: "q2", Weight: 30},
		{ID: "q3", Weight: 60},
	}

	first := make([]string, 0, 20)
	for i := 0; i < 20; i++ {
		rng := rand.New(rand.NewSource(int64(i)))
		id, _ := Draw(candidates, rng)
		first = append(first, id)
	}
	for i := 0; i < 20; i++ {
		rng := rand.New(rand.NewSource(int64(i)))
		id, _ := Draw(candidates, rng)
		if id != first[i] {
			t.Fatalf("seed %d: second run drew %q, first run drew %q", i, id, first[i])
		}
	}
}

func TestDraw_ProportionalToWeight(t *testing.T) {
	candidates := []Candidate{
		{ID: "heavy", Weight: 90},
		{ID: "light", Weight: 10},
	}
	rng := rand.New(rand.NewSource(42))

	counts := map[string]int{}
	for i := 0; i < 10000; i++ {
		id, _ := Draw(candidates, rng)
		counts[id]++
	}
	if counts["heavy"] <= counts["light"] {
		t.Errorf("heavy drawn %d times, light %d, want heavy dominant", counts["heavy"], counts["light"])
	}
	if counts["light"] == 0 {
		t.Error("light never drawn, every positive weight must stay reachable")
	}
}

func TestDrawSequence_NoDuplicates(t *testing.T) {
	candidates := pool("q1", "q2", "q3", "q4", "q5")
	rng := rand.New(rand.NewSource(7))

	ids := DrawSequence(candidates, 5, rng)
	if len(ids) != 5 {
		t.Fatalf("DrawSequence returned %d ids, want 5", len(ids))
	}
	seen := map[string]bool{}
	for _, id := range ids {
		if seen[id] {
			t.Errorf("id %q drawn twice", id)
		}
		seen[id] = true
	}
}

func TestDrawSequence_ExhaustsSmallPool(t *testing.T) {
	candidates := pool("q1", "q2", "q3")
	rng := rand.New(rand.NewSource(3))

	ids := DrawSequence(candidates, 10, rng)
	if len(ids) != 3 {
		t.Fatalf("DrawSequence over 3-question pool returned %d ids, want 3", len(ids))
	}
	seen := map[string]bool{}
	for _, id := range ids {
		seen[id] = true
	}
	for _, want := range []string{"q1", "q2", "q3"} {
		if !seen[want] {
			t.Errorf("pool member %q missing from drawn sequence", want)
		}
	}
}

func TestDrawSequence_SameSeedSameOrder(t *testing.T) {
	candidates := []Candidate{
		{ID: "q1", Weight: 5},
		{ID: "q2", Weight: 5},
		{ID: "q3", Weight: 50},
		{ID: "q4", Weight: 5},
	}

	a := DrawSequence(candidates, 4, rand.New(rand.NewSource(99)))
	b := DrawSequence(candidates, 4, rand.New(rand.NewSource(99)))
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("position %d: %q vs %q, draws must replay identically for one seed", i, a[i], b[i])
		}
	}
}

func TestDrawSequence_ZeroCount(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if ids := DrawSequence(pool("q1"), 0, rng); len(ids) != 0 {
		t.Errorf("DrawSequence(n=0) returned %v, want empty", ids)
	}
}

func TestSequentialIDs_PreservesOrder(t *testing.T) {
	candidates := pool("q1", "q2", "q3", "q4")

	ids := SequentialIDs(candidates, 3)
	want := []string{"q1", "q2", "q3"}
	if len(ids) != len(want) {
		t.Fatalf("SequentialIDs returned %d ids, want %d", len(ids), len(want))
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("position %d = %q, want %q", i, ids[i], want[i])
		}
	}
}

func TestSequentialIDs_CapsAtPoolSize(t *testing.T) {
	ids := SequentialIDs(pool("q1", "q2"), 10)
	if len(ids) != 2 {
		t.Errorf("SequentialIDs returned %d ids, want 2", len(ids))
	}
}
