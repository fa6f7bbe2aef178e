package converter

import (
	"errors"
	"fmt"
	"math"
	"net/http"

	"github.com/napolitain/solver-cic/internal/models"
)

// ErrBadRequest marks a request body that could not be decoded or validated
var ErrBadRequest = errors.New("bad request")

// Error kinds, also used as the result label of plan metrics
const (
	KindOK             = "ok"
	KindBadRequest     = "bad_request"
	KindInvalidCatalog = "invalid_catalog"
	KindUnknownProduct = "unknown_product"
	KindInvalidTarget  = "invalid_target"
	KindUnreachable    = "unreachable"
	KindRateLimited    = "rate_limited"
	KindInternal       = "internal"
)

// ErrorResponse is the body of a failed call
type ErrorResponse struct {
	Kind    string         `json:"kind"`
	Error   string         `json:"error"`
	Details map[string]any `json:"details,omitempty"`
}

// ErrorKind classifies an error; nil is KindOK
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return KindOK
	case errors.Is(err, ErrBadRequest):
		return KindBadRequest
	case errors.Is(err, models.ErrInvalidCatalog):
		return KindInvalidCatalog
	case errors.Is(err, models.ErrUnknownProduct):
		return KindUnknownProduct
	case errors.Is(err, models.ErrInvalidTarget):
		return KindInvalidTarget
	case errors.Is(err, models.ErrUnreachableTarget):
		return KindUnreachable
	default:
		return KindInternal
	}
}

// HTTPStatus maps an error kind to a response status
func HTTPStatus(kind string) int {
	switch kind {
	case KindOK:
		return http.StatusOK
	case KindBadRequest:
		return http.StatusBadRequest
	case KindInvalidCatalog, KindUnknownProduct, KindInvalidTarget, KindUnreachable:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// ErrorToResponse converts a planning error into a status and body. Typed
// errors contribute their fields as details.
func ErrorToResponse(err error) (int, *ErrorResponse) {
	kind := ErrorKind(err)
	resp := &ErrorResponse{Kind: kind, Error: err.Error()}

	var (
		unreachable *models.UnreachableTargetError
		overflow    *models.OverflowError
		unknown     *models.UnknownProductError
		price       *models.InputPriceError
		cycle       *models.CycleError
	)
	switch {
	case errors.As(err, &unreachable):
		resp.Details = map[string]any{
			"product":         unreachable.Product,
			"rank":            unreachable.Rank,
			"cost":            jsonNumber(unreachable.Cost),
			"money":           unreachable.Money,
			"profit_per_tick": unreachable.ProfitPerTick,
		}
	case errors.As(err, &overflow):
		resp.Details = map[string]any{
			"product": overflow.Product,
			"rank":    overflow.Rank,
			"cost":    jsonNumber(overflow.Cost),
			"ticks":   jsonNumber(overflow.Ticks),
			"money":   jsonNumber(overflow.Money),
		}
	case errors.As(err, &unknown):
		resp.Details = map[string]any{"product": unknown.Name}
		if unknown.ReferencedBy != "" {
			resp.Details["referenced_by"] = unknown.ReferencedBy
		}
	case errors.As(err, &price):
		resp.Details = map[string]any{"product": price.Product, "input": price.Input}
	case errors.As(err, &cycle):
		resp.Details = map[string]any{"products": cycle.Products}
	}

	return HTTPStatus(kind), resp
}

// jsonNumber keeps infinite costs encodable
func jsonNumber(v float64) any {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return fmt.Sprint(v)
	}
	return v
}
