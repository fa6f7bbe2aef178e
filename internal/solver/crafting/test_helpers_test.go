package crafting

import (
	"path/filepath"
	"testing"

	"github.com/napolitain/solver-cic/internal/loader"
	"github.com/napolitain/solver-cic/internal/models"
)

const dataDir = "../../../data"

// product builds a catalog entry with up to two inputs given as name/quantity pairs
func product(name string, price, revenue, rate float64, output int, inputs ...any) *models.Product {
	p := &models.Product{
		Name:              name,
		InitialPrice:      price,
		Revenue:           revenue,
		PriceIncreaseRate: rate,
		OutputQuantity:    output,
	}
	for i := 0; i+1 < len(inputs) && i/2 < len(p.Inputs); i += 2 {
		p.Inputs[i/2] = models.Input{Name: inputs[i].(string), Quantity: inputs[i+1].(int)}
	}
	return p
}

func newCatalog(t testing.TB, products ...*models.Product) *models.Catalog {
	t.Helper()
	c, err := models.NewCatalog(products...)
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	return c
}

func solve(t *testing.T, catalog *models.Catalog, targets models.TargetRanks, opts ...Option) *models.Solution {
	t.Helper()
	s, err := NewSolver(catalog, targets, opts...)
	if err != nil {
		t.Fatalf("NewSolver: %v", err)
	}
	sol, err := s.Solve()
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	return sol
}

func oreBarCatalog(t testing.TB) *models.Catalog {
	return newCatalog(t,
		product("ore", 10, 1, 0.1, 1),
		product("bar", 40, 6, 0.1, 1, "ore", 2),
	)
}

func loadSampleCatalog(t testing.TB) *models.Catalog {
	t.Helper()
	catalog, err := loader.LoadProducts(filepath.Join(dataDir, "products.json"))
	if err != nil {
		t.Fatalf("Failed to load products: %v", err)
	}
	return catalog
}

func loadSampleTargets(t testing.TB) models.TargetRanks {
	t.Helper()
	targets, err := loader.LoadTargets(filepath.Join(dataDir, "targets.json"))
	if err != nil {
		t.Fatalf("Failed to load targets: %v", err)
	}
	return targets
}
