// Package knapsack solves the bounded-multiplicity allocation problem:
// given a fixed budget and a set of routes, each with a per-bus cost and
// a non-decreasing per-purchase-level benefit curve (Route.Benefits,
// populated by intersector.Run), choose how many buses to buy on each
// route to maximize total benefit without exceeding the budget.
//
// The solver builds a budget grid of step costGcd (the greatest common
// divisor of every route's cost scaled to hundredths, falling back to
// 0.01 when some cost is not a whole number of hundredths — see
// gcd_grid.go) and runs a forward dynamic
// program followed by a backtracking reconstruction pass, in the style
// of matrix/ops' triple-nested-loop numeric routines (ops.FloydWarshall).
package knapsack
