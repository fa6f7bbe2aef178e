package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/napolitain/solver-cic/internal/models"
)

// Format is the encoding of a data file
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the format from the file extension, defaulting to JSON
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

var validate = validator.New()

// ProductRecord is the flat per-product record of a catalog file
type ProductRecord struct {
	Name              string  `json:"name" yaml:"name" validate:"required"`
	InitialPrice      float64 `json:"initial_price" yaml:"initial_price" validate:"gte=0"`
	Revenue           float64 `json:"revenue" yaml:"revenue" validate:"gte=0"`
	PriceIncreaseRate float64 `json:"price_increase_rate" yaml:"price_increase_rate" validate:"gte=0"`
	OutputQuantity    int     `json:"output_quantity" yaml:"output_quantity" validate:"gt=0"`
	Input1Name        string  `json:"input1_name" yaml:"input1_name" validate:"required_with=Input1Quantity"`
	Input1Quantity    int     `json:"input1_quantity" yaml:"input1_quantity" validate:"gte=0"`
	Input2Name        string  `json:"input2_name" yaml:"input2_name" validate:"required_with=Input2Quantity"`
	Input2Quantity    int     `json:"input2_quantity" yaml:"input2_quantity" validate:"gte=0"`
}

// ToProduct converts a record into a catalog product
func (r ProductRecord) ToProduct() *models.Product {
	return &models.Product{
		Name:              r.Name,
		InitialPrice:      r.InitialPrice,
		Revenue:           r.Revenue,
		PriceIncreaseRate: r.PriceIncreaseRate,
		OutputQuantity:    r.OutputQuantity,
		Inputs: [2]models.Input{
			{Name: r.Input1Name, Quantity: r.Input1Quantity},
			{Name: r.Input2Name, Quantity: r.Input2Quantity},
		},
	}
}

// RecordFromProduct converts a catalog product back into its flat record
func RecordFromProduct(p *models.Product) ProductRecord {
	return ProductRecord{
		Name:              p.Name,
		InitialPrice:      p.InitialPrice,
		Revenue:           p.Revenue,
		PriceIncreaseRate: p.PriceIncreaseRate,
		OutputQuantity:    p.OutputQuantity,
		Input1Name:        p.Inputs[0].Name,
		Input1Quantity:    p.Inputs[0].Quantity,
		Input2Name:        p.Inputs[1].Name,
		Input2Quantity:    p.Inputs[1].Quantity,
	}
}

// BuildCatalog validates records and assembles them into a catalog in
// record order. The price ordering of inputs is not checked here; see
// models.Catalog.Check.
func BuildCatalog(records []ProductRecord) (*models.Catalog, error) {
	catalog := &models.Catalog{}
	for i, rec := range records {
		if err := validate.Struct(rec); err != nil {
			return nil, fmt.Errorf("%w: record %d (%s): %s",
				models.ErrInvalidCatalog, i, rec.Name, formatValidationError(err))
		}
		if err := catalog.Add(rec.ToProduct()); err != nil {
			return nil, err
		}
	}
	return catalog, nil
}

// ParseProducts decodes a list of product records
func ParseProducts(data []byte, format Format) (*models.Catalog, error) {
	var records []ProductRecord
	if err := unmarshal(data, format, &records); err != nil {
		return nil, fmt.Errorf("failed to parse products: %w", err)
	}
	return BuildCatalog(records)
}

// LoadProducts loads a product catalog from a JSON or YAML file
func LoadProducts(path string) (*models.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}
	return ParseProducts(data, FormatFromPath(path))
}

// ParseTargets decodes a product name to target rank mapping
func ParseTargets(data []byte, format Format) (models.TargetRanks, error) {
	targets := models.TargetRanks{}
	if err := unmarshal(data, format, &targets); err != nil {
		return nil, fmt.Errorf("failed to parse targets: %w", err)
	}
	for name, rank := range targets {
		if rank < 0 {
			return nil, fmt.Errorf("%w: %s rank %d", models.ErrInvalidTarget, name, rank)
		}
	}
	return targets, nil
}

// LoadTargets loads target ranks from a JSON or YAML file
func LoadTargets(path string) (models.TargetRanks, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}
	return ParseTargets(data, FormatFromPath(path))
}

func unmarshal(data []byte, format Format, v any) error {
	switch format {
	case FormatYAML:
		return yaml.Unmarshal(data, v)
	case FormatJSON:
		return json.Unmarshal(data, v)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

// formatValidationError turns validator errors into one readable line
func formatValidationError(err error) string {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	messages := make([]string, 0, len(validationErrs))
	for _, e := range validationErrs {
		messages = append(messages, fmt.Sprintf("field '%s' failed validation: %s (value: '%v')",
			e.Field(), e.Tag(), e.Value()))
	}
	return strings.Join(messages, "; ")
}
