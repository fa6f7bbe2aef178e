package crafting

import (
	"math"

	"github.com/napolitain/solver-cic/internal/models"
)

// Rankable tracks upgrade progress of one product
type Rankable struct {
	Product     *models.Product
	DesiredRank int
	CurrentRank int
}

// NewRankable creates a rankable at rank 0
func NewRankable(product *models.Product, desiredRank int) *Rankable {
	return &Rankable{
		Product:     product,
		DesiredRank: desiredRank,
	}
}

// NextRankCost returns the price of the next rank:
// ceil(initial_price * (1 + price_increase_rate) ^ current_rank)
func (r *Rankable) NextRankCost() float64 {
	growth := math.Pow(1+r.Product.PriceIncreaseRate, float64(r.CurrentRank))
	return math.Ceil(r.Product.InitialPrice * growth)
}

// AdvanceRank moves to the next rank
func (r *Rankable) AdvanceRank() {
	r.CurrentRank++
}

// WantsMoreRanks reports whether the desired rank is not reached yet
func (r *Rankable) WantsMoreRanks() bool {
	return r.DesiredRank > r.CurrentRank
}
