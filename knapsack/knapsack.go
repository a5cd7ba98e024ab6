package knapsack

import (
	"fmt"

	"github.com/Jachtabahn/busroutes-tokyo/model"
)

// Solve chooses how many buses to buy on each route to maximize total
// benefit subject to budget, via a forward dynamic-programming pass
// over a collapsed budget grid followed by a backtracking
// reconstruction pass.
//
// Every route with MaxBuses() > 0 must already have Benefits populated
// by intersector.Run, with len(Benefits) == MaxBuses(); routes with
// MaxBuses() == 0 are treated as unpurchasable and excluded from the
// allocation rather than rejected.
//
// The returned allocation maps OutputID to the number of buses bought;
// routes assigned zero buses are omitted. For each route, ties between
// purchase counts yielding equal total benefit favor the smaller count
// (only a strictly larger benefit replaces the current best). Across
// routes, an allocation found earlier in route order is kept over an
// equal-benefit one, which is not necessarily the cheapest.
//
// Complexity: O(numPurchasableRoutes * gridSize * maxBusesPerRoute)
// time, O(numPurchasableRoutes * gridSize) memory, where gridSize is
// budget/costGcd + 1.
func Solve(routes []*model.Route, budget float64, opts ...Option) (allocation map[string]int, totalBenefit float64, err error) {
	o := gatherOptions(opts)

	if len(routes) == 0 {
		return map[string]int{}, 0, nil
	}
	if budget < 0 {
		return nil, 0, ErrNegativeBudget
	}

	var purchasable []*model.Route
	for _, r := range routes {
		m := r.MaxBuses()
		if m == 0 {
			continue
		}
		if r.Benefits == nil {
			return nil, 0, fmt.Errorf("%w: route %s", ErrMissingBenefits, r.OutputID)
		}
		if len(r.Benefits) != m {
			return nil, 0, fmt.Errorf("%w: route %s", ErrBenefitLevelMismatch, r.OutputID)
		}
		purchasable = append(purchasable, r)
	}
	if len(purchasable) == 0 {
		return map[string]int{}, 0, nil
	}

	costs := make([]float64, len(purchasable))
	for i, r := range purchasable {
		costs[i] = r.Cost
	}
	costGcd, costSteps := buildCostGrid(costs, o.eps)

	totalSteps := int64(budget / costGcd)
	gridSize := totalSteps + 1
	n := len(purchasable)

	// dp[i][g] = best benefit using the first i routes at budget-step g.
	// choice[i][g] = number of buses of route i-1 chosen to reach dp[i][g].
	dp := make([][]float64, n+1)
	choice := make([][]int, n+1)
	for i := range dp {
		dp[i] = make([]float64, gridSize)
		choice[i] = make([]int, gridSize)
	}

	lastCompleteRow := 0
	for i := 1; i <= n; i++ {
		select {
		case <-o.ctx.Done():
			alloc, benefit := reconstruct(purchasable, dp, choice, costSteps, lastCompleteRow, gridSize-1)
			return alloc, benefit, fmt.Errorf("knapsack: forward pass interrupted at route %d/%d: %w", i, n, o.ctx.Err())
		default:
		}

		route := purchasable[i-1]
		step := costSteps[i-1]
		maxBuses := len(route.Benefits)

		for g := int64(0); g < gridSize; g++ {
			best := dp[i-1][g]
			bestT := 0
			for t := 1; t <= maxBuses; t++ {
				cost := int64(t) * step
				if cost > g {
					break
				}
				candidate := dp[i-1][g-cost] + route.Benefits[t-1]
				if candidate > best {
					best = candidate
					bestT = t
				}
			}
			dp[i][g] = best
			choice[i][g] = bestT
		}
		lastCompleteRow = i
	}

	alloc, benefit := reconstruct(purchasable, dp, choice, costSteps, lastCompleteRow, gridSize-1)
	return alloc, benefit, nil
}

// reconstruct walks choice backward from (usedRoutes, g) to recover the
// purchase count for every route with a non-zero allocation.
func reconstruct(purchasable []*model.Route, dp [][]float64, choice [][]int, costSteps []int64, usedRoutes int, g int64) (map[string]int, float64) {
	benefit := dp[usedRoutes][g]
	allocation := make(map[string]int)
	for i := usedRoutes; i >= 1; i-- {
		t := choice[i][g]
		if t > 0 {
			allocation[purchasable[i-1].OutputID] = t
			g -= int64(t) * costSteps[i-1]
		}
	}
	return allocation, benefit
}
