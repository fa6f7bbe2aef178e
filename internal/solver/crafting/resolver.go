package crafting

import (
	"fmt"
	"sort"

	"github.com/napolitain/solver-cic/internal/models"
)

// DefaultRankStep is the granularity desired ranks are rounded up to
const DefaultRankStep = 10

// TopologicalOrder returns the catalog products with every input ahead of
// its consumers. Among products that are ready, the cheapest goes first and
// equal prices keep catalog order, so a valid catalog comes out sorted by
// ascending initial price.
func TopologicalOrder(catalog *models.Catalog) ([]*models.Product, error) {
	if err := catalog.Check(); err != nil {
		return nil, err
	}

	byPrice := catalog.Products()
	sort.SliceStable(byPrice, func(i, j int) bool {
		return byPrice[i].InitialPrice < byPrice[j].InitialPrice
	})

	placed := make(map[string]bool, len(byPrice))
	order := make([]*models.Product, 0, len(byPrice))

	for len(order) < len(byPrice) {
		next := -1
		for i, p := range byPrice {
			if placed[p.Name] || !inputsPlaced(p, placed) {
				continue
			}
			next = i
			break
		}
		if next < 0 {
			var stuck []string
			for _, p := range byPrice {
				if !placed[p.Name] {
					stuck = append(stuck, p.Name)
				}
			}
			return nil, &models.CycleError{Products: stuck}
		}
		placed[byPrice[next].Name] = true
		order = append(order, byPrice[next])
	}

	return order, nil
}

func inputsPlaced(p *models.Product, placed map[string]bool) bool {
	for _, in := range p.UsedInputs() {
		if !placed[in.Name] {
			return false
		}
	}
	return true
}

// ResolveDesiredRanks raises desired ranks so that upstream products can feed
// downstream ones. rankables must be in topological order; the walk goes from
// the last consumer back to the raw products in a single pass.
func ResolveDesiredRanks(rankables []*Rankable, step int) error {
	additionalRanksNeeded := make(map[string]int)

	for i := len(rankables) - 1; i >= 0; i-- {
		r := rankables[i]
		name := r.Product.Name

		if needed, ok := additionalRanksNeeded[name]; ok {
			r.DesiredRank = max(r.DesiredRank, needed)
			delete(additionalRanksNeeded, name)
		}

		r.DesiredRank = roundUpToStep(r.DesiredRank, step)

		for _, in := range r.Product.UsedInputs() {
			additionalRanksNeeded[in.Name] += r.DesiredRank * in.Quantity
		}
	}

	// Demand left over means an input was visited before its consumer
	// or is missing altogether.
	if len(additionalRanksNeeded) > 0 {
		names := make([]string, 0, len(additionalRanksNeeded))
		for name := range additionalRanksNeeded {
			names = append(names, name)
		}
		sort.Strings(names)
		return fmt.Errorf("%w: demand for %v could not be propagated", models.ErrInvalidCatalog, names)
	}

	return nil
}

func roundUpToStep(rank, step int) int {
	if step <= 1 || rank <= 0 {
		return max(rank, 0)
	}
	return (rank + step - 1) / step * step
}
