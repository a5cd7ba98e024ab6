package knapsack

import "context"

// DefaultEpsilon is the non-negative tolerance used when collapsing
// route costs onto the integer budget grid (see gcd_grid.go).
const DefaultEpsilon = 1e-6

// Option configures Solve. options stores the effective configuration
// after applying every Option; it is unexported so public entry points
// only ever interact with it through ...Option, mirroring matrix's
// functional-options discipline.
type Option func(*options)

type options struct {
	eps float64
	ctx context.Context
}

func defaultOptions() options {
	return options{
		eps: DefaultEpsilon,
		ctx: context.Background(),
	}
}

// WithEpsilon overrides the tolerance used to detect non-integral route
// costs when building the budget grid. eps must be >= 0; a negative
// value panics, matching matrix's WithEpsilon policy of rejecting
// nonsensical parameters at configuration time rather than at solve
// time.
func WithEpsilon(eps float64) Option {
	if eps < 0 {
		panic("knapsack: WithEpsilon: negative epsilon")
	}
	return func(o *options) { o.eps = eps }
}

// WithContext attaches a context whose deadline or cancellation bounds
// the DP's forward pass. When ctx is done before the pass completes,
// Solve returns the best allocation found among the budget-grid
// positions already filled, together with a non-nil error wrapping
// ctx.Err(), rather than blocking until the whole grid is computed.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic("knapsack: WithContext: nil context")
	}
	return func(o *options) { o.ctx = ctx }
}

func gatherOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
