package intersector

import (
	"runtime"
	"sync"

	"github.com/Jachtabahn/busroutes-tokyo/geom"
	"github.com/Jachtabahn/busroutes-tokyo/model"
)

// Run computes Benefits for every route in routes by accumulating
// contributions from every region it intersects, following spec.md
// §4.2 exactly:
//
//  1. m := route.MaxBuses(); routes with m == 0 are skipped (no-op).
//  2. For each region, skip unless route.Box and region.Box overlap AND
//     the route's polylines precisely intersect the region's polygon.
//  3. For each active timeslot s and each purchase level k in [0, m),
//     Benefits[k] += min(k+1, route.Buses[s]) * region.Targets[s].
//
// Run is sequential and its floating-point reduction order (route-major,
// then region-major, then slot-major) is fixed, so repeated calls on
// the same inputs are bit-for-bit idempotent — required for the
// round-trip property in spec.md §8. Use RunConcurrent for the
// per-route parallel axis spec.md §5 permits; each route is still
// computed by a single goroutine in the same region-then-slot order, so
// it produces the same Benefits as Run regardless of scheduling.
func Run(routes []*model.Route, regions []*model.Region) error {
	for _, route := range routes {
		if err := intersectOne(route, regions); err != nil {
			return err
		}
	}
	return nil
}

// RunConcurrent is the per-route parallelism axis spec.md §5 calls out
// as safe: routes are independent, so each route's Benefits slice can
// be computed by its own goroutine without any cross-route aliasing.
// workers <= 0 defaults to runtime.GOMAXPROCS(0). Region data is only
// ever read, never mutated, so no locking is required around regions;
// this mirrors core's own discipline of guarding only genuinely shared
// mutable state rather than introducing locks defensively.
func RunConcurrent(routes []*model.Route, regions []*model.Region, workers int) error {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(routes) {
		workers = len(routes)
	}
	if workers <= 1 {
		return Run(routes, regions)
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	next := make(chan int)
	go func() {
		defer close(next)
		for i := range routes {
			next <- i
		}
	}()

	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range next {
				if err := intersectOne(routes[i], regions); err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()
				}
			}
		}()
	}
	wg.Wait()
	return firstErr
}

// intersectOne populates a single route's Benefits vector in place.
func intersectOne(route *model.Route, regions []*model.Region) error {
	m := route.MaxBuses()
	if m == 0 {
		return nil
	}
	benefits := make([]float64, m)

	for _, region := range regions {
		if !geom.BoxesOverlap(route.Box, region.Box) {
			continue
		}
		if !geom.MultiPolylineIntersectsPolygon(route.Polylines, region.Polygon) {
			continue
		}
		for s := 0; s < model.TimeSlots; s++ {
			cap := route.Buses[s]
			if cap <= 0 {
				continue
			}
			target := region.Targets[s]
			if target == 0 {
				continue
			}
			for k := 0; k < m; k++ {
				take := k + 1
				if take > cap {
					take = cap
				}
				benefits[k] += float64(take) * target
			}
		}
	}

	route.Benefits = benefits
	return nil
}
