package crafting

import (
	"errors"
	"math"
	"testing"

	"github.com/napolitain/solver-cic/internal/models"
)

// FuzzSolve builds a two-level chain from fuzzed numbers and checks the
// planner either reaches every desired rank or reports an unreachable target
func FuzzSolve(f *testing.F) {
	f.Add(uint8(10), uint8(40), uint8(1), uint8(6), uint16(10), uint8(2), uint8(5), uint8(1))
	f.Add(uint8(1), uint8(1), uint8(0), uint8(0), uint16(0), uint8(1), uint8(1), uint8(10))
	f.Add(uint8(255), uint8(255), uint8(255), uint8(255), uint16(100), uint8(9), uint8(20), uint8(3))
	f.Add(uint8(5), uint8(200), uint8(2), uint8(0), uint16(50), uint8(3), uint8(0), uint8(1))
	f.Add(uint8(9), uint8(0), uint8(1), uint8(1), uint16(65535), uint8(0), uint8(10), uint8(1))
	f.Add(uint8(6), uint8(3), uint8(1), uint8(1), uint16(100), uint8(0), uint8(100), uint8(1))

	f.Fuzz(func(t *testing.T, orePrice, barExtra, oreRevenue, barRevenue uint8, rateTenths uint16, quantity, target, step uint8) {
		ore := float64(orePrice) + 1
		bar := ore + float64(barExtra)
		rate := float64(rateTenths%10001) / 10

		catalog := newCatalog(t,
			product("ore", ore, float64(oreRevenue), rate, 1),
			product("bar", bar, float64(barRevenue), rate, 1, "ore", int(quantity%5)+1),
		)
		targets := models.TargetRanks{"bar": int(target % 101)}

		s, err := NewSolver(catalog, targets, WithRankStep(int(step%12)))
		if err != nil {
			t.Fatalf("NewSolver: %v", err)
		}
		state, err := s.Prepare()
		if err != nil {
			t.Fatalf("Prepare: %v", err)
		}

		for !state.Done() {
			next, cost := state.NextDesiredRankable()
			if math.IsNaN(cost) || cost < next.Product.InitialPrice {
				t.Fatalf("%s cost %v below initial price %v", next.Product.Name, cost, next.Product.InitialPrice)
			}

			ticks := state.TickCount
			err := s.Step(state, next, cost)
			if errors.Is(err, models.ErrUnreachableTarget) {
				return
			}
			if err != nil {
				t.Fatalf("Step: %v", err)
			}
			if state.TickCount < ticks {
				t.Fatalf("tick count went back: %d -> %d", ticks, state.TickCount)
			}
			if state.LeftoverMoney < 0 || state.LeftoverMoney >= models.MaxExact {
				t.Fatalf("money out of range: %v", state.LeftoverMoney)
			}
			if float64(state.TickCount) >= models.MaxExact {
				t.Fatalf("tick count out of range: %d", state.TickCount)
			}
		}

		for _, r := range state.Rankables {
			if r.CurrentRank != r.DesiredRank {
				t.Errorf("%s finished at %d, want %d", r.Product.Name, r.CurrentRank, r.DesiredRank)
			}
			if r.Product.Name == "bar" && r.DesiredRank < targets["bar"] {
				t.Errorf("bar desired %d below target %d", r.DesiredRank, targets["bar"])
			}
		}
	})
}

// FuzzNextRankCost checks the cost curve is non-decreasing and starts at the
// initial price
func FuzzNextRankCost(f *testing.F) {
	f.Add(10.0, 0.07, uint8(30))
	f.Add(1.0, 0.0, uint8(5))
	f.Add(2500.0, 1.0, uint8(40))

	f.Fuzz(func(t *testing.T, price, rate float64, ranks uint8) {
		if math.IsNaN(price) || math.IsNaN(rate) || price < 0 || price > 1e9 || rate < 0 || rate > 10 {
			t.Skip()
		}

		r := NewRankable(product("p", price, 1, rate, 1), int(ranks))
		if got, want := r.NextRankCost(), math.Ceil(price); got != want {
			t.Fatalf("rank 0 cost = %v, want %v", got, want)
		}

		last := r.NextRankCost()
		for r.WantsMoreRanks() {
			r.AdvanceRank()
			cost := r.NextRankCost()
			if cost < last {
				t.Fatalf("cost dropped at rank %d: %v -> %v", r.CurrentRank, last, cost)
			}
			last = cost
		}
	})
}
