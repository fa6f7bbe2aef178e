package crafting

import (
	"fmt"

	"github.com/napolitain/solver-cic/internal/models"
)

// produce runs CurrentRank batches of a product, limited by the input stock
func produce(r *Rankable, inv *Inventory) error {
	p := r.Product
	batches := r.CurrentRank

	for _, in := range p.UsedInputs() {
		stock, ok := inv.Units(in.Name)
		if !ok {
			return &models.UnknownProductError{Name: in.Name, ReferencedBy: p.Name}
		}
		batches = min(batches, stock/in.Quantity)
	}
	if batches <= 0 {
		return nil
	}

	for _, in := range p.UsedInputs() {
		inv.add(in.Name, -batches*in.Quantity)
	}
	inv.add(p.Name, batches*p.OutputQuantity)
	return nil
}

// SimulateTick runs one produce pass and one sell pass over rankables,
// which must be in topological order, and returns the inventory afterwards.
func SimulateTick(rankables []*Rankable) (*Inventory, error) {
	inv := NewInventory(rankables)

	for _, r := range rankables {
		if err := produce(r, inv); err != nil {
			return nil, fmt.Errorf("failed to simulate tick: %w", err)
		}
	}
	for _, r := range rankables {
		inv.sell(r.Product)
	}

	return inv, nil
}

// ProfitPerTick returns the money one tick earns at the current ranks
func (s *State) ProfitPerTick() (float64, error) {
	inv, err := SimulateTick(s.Rankables)
	if err != nil {
		return 0, err
	}
	return inv.Money(), nil
}
