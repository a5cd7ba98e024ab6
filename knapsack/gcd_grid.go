package knapsack

import "math"

// gridScale is the fixed-point scale used to test route costs for
// integrality before taking their GCD. A cost within eps of an exact
// multiple of 1/gridScale is treated as integral at that scale.
const gridScale = 100

// buildCostGrid derives the budget grid step (costGcd) and each route's
// cost expressed as a whole number of steps (costSteps).
//
// Route costs are scaled by gridScale and rounded to the nearest
// integer; if every scaled cost is within eps of its rounded value,
// their Euclidean GCD (in scaled units) becomes the grid step, converted
// back to float. This lets the DP index budget positions by an integer
// step k (spend k*costGcd, starting from zero) instead of accumulating
// floating additions, so grid positions carry no drift.
//
// When any cost is not integral at this scale, costGcd falls back to 1
// scaled unit (1/gridScale), and every route's step count is its cost
// rounded to the nearest 1/gridScale; the grid simply becomes as fine as
// the smallest representable unit, at the cost of a larger DP table.
func buildCostGrid(costs []float64, eps float64) (costGcd float64, steps []int64) {
	scaled := make([]int64, len(costs))
	allIntegral := true
	for i, c := range costs {
		f := c * gridScale
		r := math.Round(f)
		if math.Abs(f-r) > eps*gridScale {
			allIntegral = false
		}
		scaled[i] = int64(r)
	}

	var g int64
	if allIntegral {
		g = scaled[0]
		for _, s := range scaled[1:] {
			g = gcdInt64(g, s)
		}
		if g <= 0 {
			g = 1
		}
	} else {
		g = 1
	}

	steps = make([]int64, len(costs))
	for i, s := range scaled {
		steps[i] = s / g
	}
	return float64(g) / gridScale, steps
}

// gcdInt64 computes the Euclidean GCD of two non-negative int64 values.
func gcdInt64(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
