package model

import (
	"fmt"
	"math"
	"strings"

	"github.com/Jachtabahn/busroutes-tokyo/geom"
)

// Region is a demographic grid cell with a closed polygon footprint.
//
// Targets holds the per-timeslot expected-impression contribution,
// already pre-multiplied by activity factor and timeslot length (see
// AddDemographic). Polygon and Box are built once at construction time
// and never mutated again; Region is read-only for the lifetime of an
// optimization run.
type Region struct {
	MeshID  string
	Targets [TimeSlots]float64
	Polygon []geom.Point
	Box     geom.Box
}

// NewRegion creates an empty Region with the given mesh id. Targets
// starts at zero and Box starts at geom.EmptyBox(); callers must call
// AddDemographic and SetPolygon to populate it, then Validate before
// handing it to Intersector.
func NewRegion(meshID string) (*Region, error) {
	if meshID == "" {
		return nil, ErrEmptyMeshID
	}
	return &Region{
		MeshID: meshID,
		Box:    geom.EmptyBox(),
	}, nil
}

// AddDemographic folds one (ageGroup, timeslot, count) demographic
// record into r.Targets, following spec.md §4.2's precomputation rule:
//
//	if ageGroup is not in targetAges, skip
//	if slotRaw is the always-zero sentinel slot (1), skip
//	else Targets[slotRaw-2] += count * activeFactors[slotRaw-2] * SlotLength[slotRaw-2]
//
// slotRaw is the 1-based raw timeslot identifier from the source record
// (slot 1 is always ignored; slots 2..4 map to internal indices 0..2).
func (r *Region) AddDemographic(ageGroup byte, slotRaw int, count float64, targetAges string, activeFactors [TimeSlots]float64) error {
	if !strings.ContainsRune(targetAges, rune(ageGroup)) {
		return nil
	}
	slot := slotRaw - 2
	if slot < 0 {
		// The first timeslot is always-zero and intentionally ignored.
		return nil
	}
	if slot >= TimeSlots {
		return fmt.Errorf("model: region %s: timeslot %d out of range", r.MeshID, slotRaw)
	}
	if math.IsNaN(count) || math.IsInf(count, 0) {
		return fmt.Errorf("model: region %s: %w", r.MeshID, ErrNonFiniteCoordinate)
	}
	r.Targets[slot] += count * activeFactors[slot] * SlotLength[slot]
	return nil
}

// SetPolygon installs the region's closed polygon ring and derives Box
// from its points. polygon must have at least 4 points with
// polygon[0] == polygon[len(polygon)-1] (within geom.Epsilon).
func (r *Region) SetPolygon(polygon []geom.Point) error {
	if len(polygon) < 4 {
		return fmt.Errorf("model: region %s: %w", r.MeshID, ErrTooFewPolygonPoints)
	}
	for _, p := range polygon {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			return fmt.Errorf("model: region %s: %w", r.MeshID, ErrNonFiniteCoordinate)
		}
	}
	first, last := polygon[0], polygon[len(polygon)-1]
	if geom.Sign(first.X-last.X) != 0 || geom.Sign(first.Y-last.Y) != 0 {
		return fmt.Errorf("model: region %s: %w", r.MeshID, ErrOpenPolygon)
	}

	box := geom.EmptyBox()
	for _, p := range polygon {
		box.Extend(p)
	}
	r.Polygon = polygon
	r.Box = box
	return nil
}

// Validate confirms r is ready to be handed to Intersector: non-empty
// mesh id and a closed polygon of at least 4 points.
func (r *Region) Validate() error {
	if r.MeshID == "" {
		return ErrEmptyMeshID
	}
	if len(r.Polygon) < 4 {
		return fmt.Errorf("model: region %s: %w", r.MeshID, ErrTooFewPolygonPoints)
	}
	first, last := r.Polygon[0], r.Polygon[len(r.Polygon)-1]
	if geom.Sign(first.X-last.X) != 0 || geom.Sign(first.Y-last.Y) != 0 {
		return fmt.Errorf("model: region %s: %w", r.MeshID, ErrOpenPolygon)
	}
	return nil
}
