package models

import (
	"errors"
	"fmt"
)

// Input is one crafting ingredient. A zero Quantity marks an unused slot.
type Input struct {
	Name     string
	Quantity int
}

// Used reports whether the slot takes part in crafting
func (in Input) Used() bool {
	return in.Quantity > 0
}

// Product is the immutable economic configuration of a craftable product
type Product struct {
	Name              string
	InitialPrice      float64 // cost of rank 1
	Revenue           float64 // money per unit sold
	PriceIncreaseRate float64 // geometric growth of upgrade cost
	OutputQuantity    int     // units produced per batch
	Inputs            [2]Input
}

// UsedInputs returns the non-empty input slots in slot order
func (p *Product) UsedInputs() []Input {
	used := make([]Input, 0, len(p.Inputs))
	for _, in := range p.Inputs {
		if in.Used() {
			used = append(used, in)
		}
	}
	return used
}

// Catalog holds products keyed by name, preserving insertion order
type Catalog struct {
	products []*Product
	index    map[string]int
}

// NewCatalog builds a catalog from products in the given order
func NewCatalog(products ...*Product) (*Catalog, error) {
	c := &Catalog{
		products: make([]*Product, 0, len(products)),
		index:    make(map[string]int, len(products)),
	}
	for _, p := range products {
		if err := c.Add(p); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Add appends a product; names must be unique
func (c *Catalog) Add(p *Product) error {
	if p == nil || p.Name == "" {
		return fmt.Errorf("%w: product without a name", ErrInvalidCatalog)
	}
	if c.index == nil {
		c.index = make(map[string]int)
	}
	if _, exists := c.index[p.Name]; exists {
		return fmt.Errorf("%w: duplicate product %q", ErrInvalidCatalog, p.Name)
	}
	c.index[p.Name] = len(c.products)
	c.products = append(c.products, p)
	return nil
}

// Get returns the product with the given name
func (c *Catalog) Get(name string) (*Product, bool) {
	idx, ok := c.index[name]
	if !ok {
		return nil, false
	}
	return c.products[idx], true
}

// Position returns the insertion index of a product, or -1
func (c *Catalog) Position(name string) int {
	if idx, ok := c.index[name]; ok {
		return idx
	}
	return -1
}

// Products returns the products in insertion order
func (c *Catalog) Products() []*Product {
	out := make([]*Product, len(c.products))
	copy(out, c.products)
	return out
}

// Len returns the number of products
func (c *Catalog) Len() int {
	return len(c.products)
}

// TargetRanks maps product name to the rank requested by the caller.
// Products missing from the map default to rank 0.
type TargetRanks map[string]int

// Check verifies every input exists and is not priced above its consumer.
// All violations are reported together.
func (c *Catalog) Check() error {
	var errs []error
	for _, p := range c.products {
		for _, in := range p.UsedInputs() {
			input, ok := c.Get(in.Name)
			if !ok {
				errs = append(errs, &UnknownProductError{Name: in.Name, ReferencedBy: p.Name})
				continue
			}
			if input.InitialPrice > p.InitialPrice {
				errs = append(errs, &InputPriceError{
					Product:      p.Name,
					Input:        input.Name,
					ProductPrice: p.InitialPrice,
					InputPrice:   input.InitialPrice,
				})
			}
		}
	}
	return errors.Join(errs...)
}
