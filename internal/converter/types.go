// Package converter provides conversions between plan API messages and model types
package converter

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/napolitain/solver-cic/internal/loader"
	"github.com/napolitain/solver-cic/internal/models"
	"github.com/napolitain/solver-cic/internal/solver/crafting"
)

var validate = validator.New()

// PlanRequest is the body of a plan call. Products use the same flat record
// schema as catalog files; when absent the server's own catalog is used.
type PlanRequest struct {
	Products  []loader.ProductRecord `json:"products,omitempty" validate:"dive"`
	Targets   map[string]int         `json:"targets" validate:"dive,gte=0"`
	SeedMoney *float64               `json:"seed_money,omitempty" validate:"omitempty,gte=0"`
	RankStep  *int                   `json:"rank_step,omitempty" validate:"omitempty,gte=1"`
}

// PurchaseDTO is one rank purchase of a plan
type PurchaseDTO struct {
	Product       string  `json:"product"`
	DisplayName   string  `json:"display_name"`
	FromRank      int     `json:"from_rank"`
	ToRank        int     `json:"to_rank"`
	Cost          float64 `json:"cost"`
	Tick          int     `json:"tick"`
	WaitedTicks   int     `json:"waited_ticks"`
	ProfitPerTick float64 `json:"profit_per_tick"`
	MoneyAfter    float64 `json:"money_after"`
}

// RankDTO compares requested, resolved and reached rank of a product
type RankDTO struct {
	Product     string `json:"product"`
	TargetRank  int    `json:"target_rank"`
	DesiredRank int    `json:"desired_rank"`
	FinalRank   int    `json:"final_rank"`
}

// PlanResponse is the result of a successful plan call
type PlanResponse struct {
	RunID         string        `json:"run_id"`
	Cached        bool          `json:"cached"`
	TickCount     int           `json:"tick_count"`
	LeftoverMoney float64       `json:"leftover_money"`
	Purchases     []PurchaseDTO `json:"purchases"`
	Ranks         []RankDTO     `json:"ranks"`
}

// Validate checks the request shape. Catalog consistency is left to the planner.
func (r *PlanRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("%w: %v", ErrBadRequest, err)
	}
	return nil
}

// RequestToCatalog builds the catalog and targets described by a request
func RequestToCatalog(req *PlanRequest) (*models.Catalog, models.TargetRanks, error) {
	catalog, err := loader.BuildCatalog(req.Products)
	if err != nil {
		return nil, nil, err
	}

	targets := make(models.TargetRanks, len(req.Targets))
	for name, rank := range req.Targets {
		targets[name] = rank
	}
	return catalog, targets, nil
}

// RequestOptions returns solver options for the overrides a request carries
func RequestOptions(req *PlanRequest) []crafting.Option {
	var opts []crafting.Option
	if req.SeedMoney != nil {
		opts = append(opts, crafting.WithSeedMoney(*req.SeedMoney))
	}
	if req.RankStep != nil {
		opts = append(opts, crafting.WithRankStep(*req.RankStep))
	}
	return opts
}

// PurchaseToDTO converts a model PurchaseAction
func PurchaseToDTO(p models.PurchaseAction) PurchaseDTO {
	return PurchaseDTO{
		Product:       p.Product,
		DisplayName:   models.DisplayName(p.Product),
		FromRank:      p.FromRank,
		ToRank:        p.ToRank,
		Cost:          p.Cost,
		Tick:          p.Tick,
		WaitedTicks:   p.WaitedTicks,
		ProfitPerTick: p.ProfitPerTick,
		MoneyAfter:    p.MoneyAfter,
	}
}

// SolutionToResponse converts a solution into the API response
func SolutionToResponse(sol *models.Solution, runID string, cached bool) *PlanResponse {
	resp := &PlanResponse{
		RunID:         runID,
		Cached:        cached,
		TickCount:     sol.TickCount,
		LeftoverMoney: sol.LeftoverMoney,
		Purchases:     make([]PurchaseDTO, 0, len(sol.Purchases)),
		Ranks:         make([]RankDTO, 0, len(sol.Ranks)),
	}
	for _, p := range sol.Purchases {
		resp.Purchases = append(resp.Purchases, PurchaseToDTO(p))
	}
	for _, r := range sol.Ranks {
		resp.Ranks = append(resp.Ranks, RankDTO{
			Product:     r.Product,
			TargetRank:  r.TargetRank,
			DesiredRank: r.DesiredRank,
			FinalRank:   r.FinalRank,
		})
	}
	return resp
}
