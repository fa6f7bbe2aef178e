package models

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidCatalog is returned when the catalog breaks the
	// inputs-cheaper-than-outputs rule or cannot be ordered.
	ErrInvalidCatalog = errors.New("invalid catalog")
	// ErrUnknownProduct is returned when an input or target names no catalog product.
	ErrUnknownProduct = errors.New("unknown product")
	// ErrInvalidTarget is returned for negative target ranks.
	ErrInvalidTarget = errors.New("invalid target")
	// ErrUnreachableTarget is returned when money is short and nothing earns any.
	ErrUnreachableTarget = errors.New("unreachable target")
	// ErrOverflow is returned when money or ticks leave the range float64
	// holds exactly.
	ErrOverflow = errors.New("plan exceeds exact arithmetic range")
)

// MaxExact is the first integer float64 cannot tell apart from its successor.
// Money and tick counts must stay below it.
const MaxExact = 1 << 53

// InputPriceError reports an input priced higher than the product consuming it
type InputPriceError struct {
	Product      string
	Input        string
	ProductPrice float64
	InputPrice   float64
}

func (e *InputPriceError) Error() string {
	return fmt.Sprintf("input %s (price %g) costs more than product %s (price %g)",
		e.Input, e.InputPrice, e.Product, e.ProductPrice)
}

func (e *InputPriceError) Unwrap() error { return ErrInvalidCatalog }

// CycleError reports products whose inputs depend on each other
type CycleError struct {
	Products []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("dependency cycle between products: %s", strings.Join(e.Products, ", "))
}

func (e *CycleError) Unwrap() error { return ErrInvalidCatalog }

// UnknownProductError reports a reference to a product missing from the catalog.
// ReferencedBy is empty when the reference comes from the target ranks.
type UnknownProductError struct {
	Name         string
	ReferencedBy string
}

func (e *UnknownProductError) Error() string {
	if e.ReferencedBy == "" {
		return fmt.Sprintf("target references unknown product %s", e.Name)
	}
	return fmt.Sprintf("product %s uses unknown input %s", e.ReferencedBy, e.Name)
}

func (e *UnknownProductError) Unwrap() error { return ErrUnknownProduct }

// UnreachableTargetError reports a rank that can never be paid for
type UnreachableTargetError struct {
	Product       string
	Rank          int
	Cost          float64
	Money         float64
	ProfitPerTick float64
}

func (e *UnreachableTargetError) Error() string {
	return fmt.Sprintf("cannot reach %s rank %d: cost %g, money %g, profit per tick %g",
		e.Product, e.Rank, e.Cost, e.Money, e.ProfitPerTick)
}

func (e *UnreachableTargetError) Unwrap() error { return ErrUnreachableTarget }

// OverflowError reports a purchase whose wait, money or tick count would
// reach MaxExact. It counts as an unreachable target.
type OverflowError struct {
	Product string
	Rank    int
	Cost    float64
	Ticks   float64
	Money   float64
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("cannot plan %s rank %d: cost %g needs %g ticks ending with money %g, beyond %d",
		e.Product, e.Rank, e.Cost, e.Ticks, e.Money, int64(MaxExact))
}

func (e *OverflowError) Unwrap() []error { return []error{ErrOverflow, ErrUnreachableTarget} }
