package crafting

import "github.com/napolitain/solver-cic/internal/models"

// Inventory holds unit counts for a single simulated tick.
// A fresh Inventory is allocated per tick and never reused.
type Inventory struct {
	units map[string]int
	money float64
}

// NewInventory creates an empty inventory with a zero slot per product
func NewInventory(rankables []*Rankable) *Inventory {
	inv := &Inventory{units: make(map[string]int, len(rankables))}
	for _, r := range rankables {
		inv.units[r.Product.Name] = 0
	}
	return inv
}

// Units returns the stock of a product. ok is false for names without a slot.
func (inv *Inventory) Units(name string) (units int, ok bool) {
	units, ok = inv.units[name]
	return units, ok
}

// Money returns the money collected so far
func (inv *Inventory) Money() float64 {
	return inv.money
}

func (inv *Inventory) add(name string, units int) {
	inv.units[name] += units
}

// sell converts the whole stock of a product into money
func (inv *Inventory) sell(p *models.Product) {
	inv.money += float64(inv.units[p.Name]) * p.Revenue
	inv.units[p.Name] = 0
}

// Empty reports whether every product slot is zero
func (inv *Inventory) Empty() bool {
	for _, u := range inv.units {
		if u != 0 {
			return false
		}
	}
	return true
}
