package knapsack

import "errors"

// ErrMissingBenefits is returned when a route reaches Solve with a nil
// Benefits slice, meaning intersector.Run was never called on it.
var ErrMissingBenefits = errors.New("knapsack: route has no Benefits; intersector.Run was not applied")

// ErrBenefitLevelMismatch is returned when a route's Benefits length
// does not match its own MaxBuses(), which would indicate Benefits was
// computed against a different Buses configuration than the one Solve
// now sees.
var ErrBenefitLevelMismatch = errors.New("knapsack: route Benefits length does not match MaxBuses")

// ErrNegativeBudget is returned when budget < 0.
var ErrNegativeBudget = errors.New("knapsack: negative budget")
