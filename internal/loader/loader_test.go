package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/napolitain/solver-cic/internal/models"
)

const dataDir = "../../data"

func TestLoadProducts(t *testing.T) {
	catalog, err := LoadProducts(filepath.Join(dataDir, "products.json"))
	require.NoError(t, err)

	assert.Equal(t, 6, catalog.Len())
	assert.Equal(t, 0, catalog.Position("wood"), "file order is preserved")
	assert.Equal(t, 5, catalog.Position("house"))

	house, ok := catalog.Get("house")
	require.True(t, ok)
	assert.Equal(t, 2500.0, house.InitialPrice)
	assert.Equal(t, []models.Input{{Name: "brick", Quantity: 4}, {Name: "plank", Quantity: 3}}, house.UsedInputs())

	wood, ok := catalog.Get("wood")
	require.True(t, ok)
	assert.Empty(t, wood.UsedInputs())

	assert.NoError(t, catalog.Check())
}

func TestLoadTargets(t *testing.T) {
	targets, err := LoadTargets(filepath.Join(dataDir, "targets.json"))
	require.NoError(t, err)
	assert.Equal(t, models.TargetRanks{"chair": 10, "house": 10}, targets)
}

func TestParseProductsYAML(t *testing.T) {
	data := []byte(`
- name: ore
  initial_price: 10
  revenue: 1
  price_increase_rate: 0.1
  output_quantity: 1
- name: bar
  initial_price: 40
  revenue: 6
  price_increase_rate: 0.1
  output_quantity: 1
  input1_name: ore
  input1_quantity: 2
`)
	catalog, err := ParseProducts(data, FormatYAML)
	require.NoError(t, err)
	require.Equal(t, 2, catalog.Len())

	bar, ok := catalog.Get("bar")
	require.True(t, ok)
	assert.Equal(t, models.Input{Name: "ore", Quantity: 2}, bar.Inputs[0])
	assert.False(t, bar.Inputs[1].Used())
}

func TestParseProductsRejectsBadRecords(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"missing name", `[{"initial_price": 1, "revenue": 1, "output_quantity": 1}]`},
		{"zero output", `[{"name": "a", "initial_price": 1, "revenue": 1, "output_quantity": 0}]`},
		{"negative rate", `[{"name": "a", "initial_price": 1, "revenue": 1, "price_increase_rate": -0.5, "output_quantity": 1}]`},
		{"input quantity without name", `[{"name": "a", "initial_price": 1, "revenue": 1, "output_quantity": 1, "input1_quantity": 2}]`},
		{"duplicate", `[{"name": "a", "initial_price": 1, "revenue": 1, "output_quantity": 1},
			{"name": "a", "initial_price": 2, "revenue": 1, "output_quantity": 1}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseProducts([]byte(tt.data), FormatJSON)
			assert.ErrorIs(t, err, models.ErrInvalidCatalog)
		})
	}
}

func TestParseProductsMalformed(t *testing.T) {
	_, err := ParseProducts([]byte(`{"name": "not a list"}`), FormatJSON)
	assert.Error(t, err)

	_, err = ParseProducts([]byte(`[]`), Format("toml"))
	assert.Error(t, err)
}

func TestParseTargets(t *testing.T) {
	targets, err := ParseTargets([]byte("gear: 5\nore: 3\n"), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, models.TargetRanks{"gear": 5, "ore": 3}, targets)

	_, err = ParseTargets([]byte(`{"gear": -1}`), FormatJSON)
	assert.ErrorIs(t, err, models.ErrInvalidTarget)
}

func TestLoadProductsMissingFile(t *testing.T) {
	_, err := LoadProducts(filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadProductsFromYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.yml")
	require.NoError(t, os.WriteFile(path, []byte("- name: ore\n  initial_price: 10\n  revenue: 1\n  output_quantity: 1\n"), 0o644))

	catalog, err := LoadProducts(path)
	require.NoError(t, err)
	assert.Equal(t, 1, catalog.Len())
}

func TestRecordRoundTrip(t *testing.T) {
	rec := ProductRecord{
		Name: "bar", InitialPrice: 40, Revenue: 6, PriceIncreaseRate: 0.1, OutputQuantity: 1,
		Input1Name: "ore", Input1Quantity: 2,
	}
	assert.Equal(t, rec, RecordFromProduct(rec.ToProduct()))
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, FormatYAML, FormatFromPath("a/b.YAML"))
	assert.Equal(t, FormatYAML, FormatFromPath("b.yml"))
	assert.Equal(t, FormatJSON, FormatFromPath("b.json"))
	assert.Equal(t, FormatJSON, FormatFromPath("b"))
}

func TestExampleYAMLMatchesJSON(t *testing.T) {
	fromJSON, err := LoadProducts(filepath.Join(dataDir, "products.json"))
	require.NoError(t, err)
	fromYAML, err := LoadProducts("../../examples/products.yaml")
	require.NoError(t, err)

	assert.Equal(t, fromJSON.Products(), fromYAML.Products())

	targets, err := LoadTargets("../../examples/targets.yaml")
	require.NoError(t, err)
	assert.Equal(t, models.TargetRanks{"chair": 10, "house": 10}, targets)
}
