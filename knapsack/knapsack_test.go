package knapsack_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Jachtabahn/busroutes-tokyo/knapsack"
	"github.com/Jachtabahn/busroutes-tokyo/model"
)

func mustRoute(t *testing.T, id string, cost float64, maxBuses int, benefits []float64) *model.Route {
	t.Helper()
	buses := [model.TimeSlots]int{maxBuses, 0, 0}
	r, err := model.NewRoute(id, cost, buses)
	require.NoError(t, err)
	r.Benefits = benefits
	return r
}

func TestSolveEmptyRoutesReturnsEmptyAllocation(t *testing.T) {
	alloc, benefit, err := knapsack.Solve(nil, 100)
	require.NoError(t, err)
	require.Empty(t, alloc)
	require.Zero(t, benefit)
}

func TestSolveRejectsNegativeBudget(t *testing.T) {
	r := mustRoute(t, "R1", 10, 2, []float64{5, 9})
	_, _, err := knapsack.Solve([]*model.Route{r}, -1)
	require.ErrorIs(t, err, knapsack.ErrNegativeBudget)
}

func TestSolveRejectsMissingBenefits(t *testing.T) {
	r, err := model.NewRoute("R1", 10, [model.TimeSlots]int{2, 0, 0})
	require.NoError(t, err)
	_, _, err = knapsack.Solve([]*model.Route{r}, 100)
	require.ErrorIs(t, err, knapsack.ErrMissingBenefits)
}

func TestSolveBudgetBelowMinCostReturnsEmptyAllocation(t *testing.T) {
	r := mustRoute(t, "R1", 50, 1, []float64{10})
	alloc, benefit, err := knapsack.Solve([]*model.Route{r}, 10)
	require.NoError(t, err)
	require.Empty(t, alloc)
	require.Zero(t, benefit)
}

func TestSolveSkipsRouteWithZeroMaxBuses(t *testing.T) {
	zero, err := model.NewRoute("R0", 10, [model.TimeSlots]int{0, 0, 0})
	require.NoError(t, err)
	productive := mustRoute(t, "R1", 10, 1, []float64{7})

	alloc, benefit, err := knapsack.Solve([]*model.Route{zero, productive}, 10)
	require.NoError(t, err)
	require.Equal(t, map[string]int{"R1": 1}, alloc)
	require.InDelta(t, 7, benefit, 1e-6)
}

func TestSolveBuysSingleAffordableRoute(t *testing.T) {
	r := mustRoute(t, "R1", 10, 3, []float64{5, 9, 12})
	alloc, benefit, err := knapsack.Solve([]*model.Route{r}, 25)
	require.NoError(t, err)
	require.Equal(t, map[string]int{"R1": 2}, alloc)
	require.InDelta(t, 9, benefit, 1e-6)
}

func TestSolveTieBreakFavorsFewerBuses(t *testing.T) {
	// Buying 1 or 2 buses yields the same total benefit; Solve must
	// prefer the cheaper (fewer-bus) allocation.
	r := mustRoute(t, "R1", 10, 2, []float64{12, 12})
	alloc, benefit, err := knapsack.Solve([]*model.Route{r}, 100)
	require.NoError(t, err)
	require.Equal(t, map[string]int{"R1": 1}, alloc)
	require.InDelta(t, 12, benefit, 1e-6)
}

func TestSolveAllocatesAcrossMultipleRoutesWithinBudget(t *testing.T) {
	r1 := mustRoute(t, "R1", 10, 2, []float64{8, 13})
	r2 := mustRoute(t, "R2", 5, 3, []float64{4, 7, 9})

	alloc, benefit, err := knapsack.Solve([]*model.Route{r1, r2}, 20)
	require.NoError(t, err)

	spent := 0.0
	for id, count := range alloc {
		switch id {
		case "R1":
			spent += float64(count) * r1.Cost
		case "R2":
			spent += float64(count) * r2.Cost
		default:
			t.Fatalf("unexpected route in allocation: %s", id)
		}
	}
	require.LessOrEqual(t, spent, 20.0+1e-6)
	require.Greater(t, benefit, 0.0)
}

func TestSolveIsIdempotent(t *testing.T) {
	r1 := mustRoute(t, "R1", 10, 2, []float64{8, 13})
	r2 := mustRoute(t, "R2", 5, 3, []float64{4, 7, 9})

	alloc1, benefit1, err := knapsack.Solve([]*model.Route{r1, r2}, 20)
	require.NoError(t, err)
	alloc2, benefit2, err := knapsack.Solve([]*model.Route{r1, r2}, 20)
	require.NoError(t, err)

	require.Equal(t, alloc1, alloc2)
	require.Equal(t, benefit1, benefit2)
}

func TestSolveRespectsCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := mustRoute(t, "R1", 10, 2, []float64{8, 13})
	alloc, _, err := knapsack.Solve([]*model.Route{r}, 100, knapsack.WithContext(ctx))
	require.Error(t, err)
	require.NotNil(t, alloc)
}

func TestSolveIrreducibleCostsFallBackToUnitGrid(t *testing.T) {
	// 1/3 has no exact 2-decimal representation, so buildCostGrid cannot
	// treat every cost as integral at its default scale and must fall
	// back to a unit grid step instead of guessing a coarser one.
	r1 := mustRoute(t, "R1", 1.0/3.0, 2, []float64{6, 10})
	r2 := mustRoute(t, "R2", 0.5, 2, []float64{4, 9})

	alloc, benefit, err := knapsack.Solve([]*model.Route{r1, r2}, 1)
	require.NoError(t, err)
	require.NotEmpty(t, alloc)
	require.Greater(t, benefit, 0.0)
}
