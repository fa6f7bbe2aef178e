package models

// PurchaseAction records a single rank purchase
type PurchaseAction struct {
	Product       string
	FromRank      int
	ToRank        int
	Cost          float64
	Tick          int     // tick at which the purchase happened
	WaitedTicks   int     // ticks skipped to afford it (0 = bought instantly)
	ProfitPerTick float64 // profit rate used for the skip, 0 when instant
	MoneyAfter    float64
}

// RankSummary compares the requested, resolved and reached rank of a product
type RankSummary struct {
	Product     string
	TargetRank  int // as requested by the caller
	DesiredRank int // after dependency resolution
	FinalRank   int
}

// Solution represents a complete purchase plan
type Solution struct {
	TickCount     int
	LeftoverMoney float64
	Purchases     []PurchaseAction
	Ranks         []RankSummary // in planning order
}

// FinalRank returns the reached rank of a product, 0 if unknown
func (s *Solution) FinalRank(name string) int {
	for _, r := range s.Ranks {
		if r.Product == name {
			return r.FinalRank
		}
	}
	return 0
}

// DesiredRank returns the resolved rank of a product, 0 if unknown
func (s *Solution) DesiredRank(name string) int {
	for _, r := range s.Ranks {
		if r.Product == name {
			return r.DesiredRank
		}
	}
	return 0
}

// NextPurchase returns the first purchase of the plan, or nil
func (s *Solution) NextPurchase() *PurchaseAction {
	if len(s.Purchases) == 0 {
		return nil
	}
	return &s.Purchases[0]
}
