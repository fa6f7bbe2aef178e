package crafting

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/napolitain/solver-cic/internal/models"
)

// DefaultSeedMoney is the money every new game starts with
const DefaultSeedMoney = 10

// Solver plans the cheapest-next-rank purchase order for a catalog
type Solver struct {
	Catalog   *models.Catalog
	Targets   models.TargetRanks
	SeedMoney float64
	RankStep  int

	logger *slog.Logger
}

// Option customises a Solver
type Option func(*Solver)

// WithSeedMoney overrides the starting money
func WithSeedMoney(money float64) Option {
	return func(s *Solver) { s.SeedMoney = money }
}

// WithRankStep overrides the rounding of desired ranks
func WithRankStep(step int) Option {
	return func(s *Solver) { s.RankStep = step }
}

// WithLogger sets the logger used for planning progress
func WithLogger(logger *slog.Logger) Option {
	return func(s *Solver) { s.logger = logger }
}

// NewSolver creates a solver. Every target must name a catalog product and
// be non-negative.
func NewSolver(catalog *models.Catalog, targets models.TargetRanks, opts ...Option) (*Solver, error) {
	for name, rank := range targets {
		if _, ok := catalog.Get(name); !ok {
			return nil, &models.UnknownProductError{Name: name}
		}
		if rank < 0 {
			return nil, fmt.Errorf("%w: %s rank %d", models.ErrInvalidTarget, name, rank)
		}
	}

	s := &Solver{
		Catalog:   catalog,
		Targets:   targets,
		SeedMoney: DefaultSeedMoney,
		RankStep:  DefaultRankStep,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Prepare orders the catalog and resolves desired ranks, returning the
// initial planning state
func (s *Solver) Prepare() (*State, error) {
	order, err := TopologicalOrder(s.Catalog)
	if err != nil {
		return nil, err
	}

	state := NewState(order, s.Targets, s.SeedMoney)
	if err := ResolveDesiredRanks(state.Rankables, s.RankStep); err != nil {
		return nil, err
	}

	for _, r := range state.Rankables {
		if r.DesiredRank != s.Targets[r.Product.Name] {
			s.logger.Debug("desired rank adjusted",
				"product", r.Product.Name,
				"target", s.Targets[r.Product.Name],
				"desired", r.DesiredRank)
		}
	}

	return state, nil
}

// Solve runs the planner to completion
func (s *Solver) Solve() (*models.Solution, error) {
	state, err := s.Prepare()
	if err != nil {
		return nil, err
	}

	for {
		next, cost := state.NextDesiredRankable()
		if next == nil {
			break
		}
		if err := s.Step(state, next, cost); err != nil {
			return nil, err
		}
	}

	s.logger.Debug("plan complete",
		"ticks", state.TickCount,
		"purchases", len(state.Purchases),
		"leftover_money", state.LeftoverMoney)

	return state.ToSolution(s.Targets), nil
}

// Step buys the next rank of r, skipping forward in time if the money is
// not there yet. Profit is constant between purchases so the wait is
// computed in one division. Waits that would push money or ticks to
// models.MaxExact fail with an OverflowError.
func (s *Solver) Step(state *State, r *Rankable, cost float64) error {
	action := models.PurchaseAction{
		Product:  r.Product.Name,
		FromRank: r.CurrentRank,
		ToRank:   r.CurrentRank + 1,
		Cost:     cost,
	}

	if state.LeftoverMoney < cost {
		profit, err := state.ProfitPerTick()
		if err != nil {
			return err
		}
		if profit <= 0 || math.IsInf(cost, 1) {
			return &models.UnreachableTargetError{
				Product:       r.Product.Name,
				Rank:          r.CurrentRank + 1,
				Cost:          cost,
				Money:         state.LeftoverMoney,
				ProfitPerTick: profit,
			}
		}

		remaining := cost - state.LeftoverMoney
		wait := math.Ceil(remaining / profit)

		tickCount := float64(state.TickCount) + wait
		money := state.LeftoverMoney + profit*wait
		if profit >= models.MaxExact || tickCount >= models.MaxExact || money >= models.MaxExact {
			return &models.OverflowError{
				Product: r.Product.Name,
				Rank:    r.CurrentRank + 1,
				Cost:    cost,
				Ticks:   tickCount,
				Money:   money,
			}
		}

		ticks := int(wait)
		state.TickCount += ticks
		state.LeftoverMoney = money
		action.WaitedTicks = ticks
		action.ProfitPerTick = profit
	}

	state.LeftoverMoney -= cost
	r.AdvanceRank()

	action.Tick = state.TickCount
	action.MoneyAfter = state.LeftoverMoney
	state.Purchases = append(state.Purchases, action)

	s.logger.Debug("rank purchased",
		"product", action.Product,
		"rank", action.ToRank,
		"cost", action.Cost,
		"waited_ticks", action.WaitedTicks,
		"tick", action.Tick)

	return nil
}
