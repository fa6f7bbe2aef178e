package crafting

import "github.com/napolitain/solver-cic/internal/models"

// State represents the complete planning state
type State struct {
	TickCount     int
	LeftoverMoney float64

	// Rankables in topological order (inputs first, then by ascending price)
	Rankables []*Rankable

	Purchases []models.PurchaseAction
}

// NewState creates a rankable per product, in the given order, with the
// caller's target rank as desired rank
func NewState(order []*models.Product, targets models.TargetRanks, seedMoney float64) *State {
	s := &State{
		LeftoverMoney: seedMoney,
		Rankables:     make([]*Rankable, 0, len(order)),
	}
	for _, p := range order {
		s.Rankables = append(s.Rankables, NewRankable(p, targets[p.Name]))
	}
	return s
}

// NextDesiredRankable returns the still-wanted rankable with the cheapest
// next rank. The first one in planning order wins ties. Returns nil when
// every target is reached.
func (s *State) NextDesiredRankable() (*Rankable, float64) {
	var cheapest *Rankable
	var cheapestCost float64

	for _, r := range s.Rankables {
		if !r.WantsMoreRanks() {
			continue
		}
		cost := r.NextRankCost()
		if cheapest == nil || cost < cheapestCost {
			cheapest = r
			cheapestCost = cost
		}
	}

	return cheapest, cheapestCost
}

// Done reports whether no rankable wants more ranks
func (s *State) Done() bool {
	next, _ := s.NextDesiredRankable()
	return next == nil
}

// Rankable returns the rankable of a product, or nil
func (s *State) Rankable(name string) *Rankable {
	for _, r := range s.Rankables {
		if r.Product.Name == name {
			return r
		}
	}
	return nil
}

// ToSolution snapshots the state as a solution
func (s *State) ToSolution(targets models.TargetRanks) *models.Solution {
	sol := &models.Solution{
		TickCount:     s.TickCount,
		LeftoverMoney: s.LeftoverMoney,
		Purchases:     make([]models.PurchaseAction, len(s.Purchases)),
		Ranks:         make([]models.RankSummary, 0, len(s.Rankables)),
	}
	copy(sol.Purchases, s.Purchases)

	for _, r := range s.Rankables {
		sol.Ranks = append(sol.Ranks, models.RankSummary{
			Product:     r.Product.Name,
			TargetRank:  targets[r.Product.Name],
			DesiredRank: r.DesiredRank,
			FinalRank:   r.CurrentRank,
		})
	}

	return sol
}
