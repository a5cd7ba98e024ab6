package model

import (
	"fmt"
	"math"

	"github.com/Jachtabahn/busroutes-tokyo/geom"
)

// Route is a bus line, the unit of purchase.
//
// Cost is the price of a single bus on this route; Buses holds the
// per-timeslot cap on how many wrapped buses may be deployed. Benefits
// is populated exactly once by Intersector: Benefits[k] is the expected
// impressions obtained by buying k+1 buses on this route. Benefits is
// nil until Intersector runs.
type Route struct {
	OutputID  string
	Cost      float64
	Buses     [TimeSlots]int
	Polylines [][]geom.Point
	Box       geom.Box
	Benefits  []float64
}

// NewRoute creates a Route with the given output id, per-bus cost, and
// per-timeslot caps. Polylines must be added afterward via AddPolyline.
func NewRoute(outputID string, cost float64, buses [TimeSlots]int) (*Route, error) {
	if outputID == "" {
		return nil, ErrEmptyOutputID
	}
	if math.IsNaN(cost) || math.IsInf(cost, 0) || cost <= 0 {
		return nil, fmt.Errorf("model: route %s: %w", outputID, ErrNonPositiveCost)
	}
	for slot, cap := range buses {
		if cap < 0 {
			return nil, fmt.Errorf("model: route %s: timeslot %d: %w", outputID, slot, ErrNegativeBusCap)
		}
	}
	return &Route{
		OutputID: outputID,
		Cost:     cost,
		Buses:    buses,
		Box:      geom.EmptyBox(),
	}, nil
}

// AddPolyline appends one polyline (a single LineString of the route's
// MultiLineString geometry) and extends r.Box to cover its points.
// polyline must have at least 2 points.
func (r *Route) AddPolyline(polyline []geom.Point) error {
	if len(polyline) < 2 {
		return fmt.Errorf("model: route %s: %w", r.OutputID, ErrTooFewPolylinePoints)
	}
	for _, p := range polyline {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			return fmt.Errorf("model: route %s: %w", r.OutputID, ErrNonFiniteCoordinate)
		}
		r.Box.Extend(p)
	}
	r.Polylines = append(r.Polylines, polyline)
	return nil
}

// MaxBuses returns max(Buses[0..TimeSlots-1]), the number of distinct
// purchase levels Intersector must compute a benefit for.
func (r *Route) MaxBuses() int {
	m := 0
	for _, b := range r.Buses {
		if b > m {
			m = b
		}
	}
	return m
}

// Validate confirms r is ready to be handed to Intersector: non-empty
// output id, positive cost, non-negative bus caps, and at least one
// polyline of at least 2 points.
func (r *Route) Validate() error {
	if r.OutputID == "" {
		return ErrEmptyOutputID
	}
	if math.IsNaN(r.Cost) || math.IsInf(r.Cost, 0) || r.Cost <= 0 {
		return fmt.Errorf("model: route %s: %w", r.OutputID, ErrNonPositiveCost)
	}
	if len(r.Polylines) == 0 {
		return fmt.Errorf("model: route %s: %w", r.OutputID, ErrNoPolylines)
	}
	for _, polyline := range r.Polylines {
		if len(polyline) < 2 {
			return fmt.Errorf("model: route %s: %w", r.OutputID, ErrTooFewPolylinePoints)
		}
	}
	for slot, cap := range r.Buses {
		if cap < 0 {
			return fmt.Errorf("model: route %s: timeslot %d: %w", r.OutputID, slot, ErrNegativeBusCap)
		}
	}
	return nil
}
