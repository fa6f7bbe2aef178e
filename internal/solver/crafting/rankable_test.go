package crafting

import "testing"

func TestNextRankCost(t *testing.T) {
	tests := []struct {
		name  string
		price float64
		rate  float64
		rank  int
		want  float64
	}{
		{"rank 0 costs initial price", 10, 1.0, 0, 10},
		{"doubling", 10, 1.0, 1, 20},
		{"doubling rank 9", 10, 1.0, 9, 5120},
		{"zero rate stays flat", 25, 0, 7, 25},
		{"fractional growth rounds up", 10, 0.07, 1, 11},
		{"fractional price rounds up", 2.5, 0, 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRankable(product("p", tt.price, 1, tt.rate, 1), 0)
			r.CurrentRank = tt.rank
			if got := r.NextRankCost(); got != tt.want {
				t.Errorf("NextRankCost() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNextRankCostMonotonic(t *testing.T) {
	for _, rate := range []float64{0, 0.01, 0.07, 0.5, 1, 3} {
		r := NewRankable(product("p", 13, 1, rate, 1), 0)
		prev := r.NextRankCost()
		for rank := 1; rank < 60; rank++ {
			r.AdvanceRank()
			cost := r.NextRankCost()
			if cost < prev {
				t.Fatalf("rate %v: cost dropped at rank %d: %v < %v", rate, rank, cost, prev)
			}
			prev = cost
		}
	}
}

func TestWantsMoreRanks(t *testing.T) {
	r := NewRankable(product("p", 10, 1, 0, 1), 2)
	if !r.WantsMoreRanks() {
		t.Fatal("rank 0 of 2 should want more ranks")
	}
	r.AdvanceRank()
	r.AdvanceRank()
	if r.WantsMoreRanks() {
		t.Errorf("rank %d of %d should be satisfied", r.CurrentRank, r.DesiredRank)
	}
}
