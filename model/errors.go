package model

import "errors"

// Sentinel errors for Region/Route construction and validation.
var (
	// ErrEmptyMeshID indicates a Region was built without a MeshID.
	ErrEmptyMeshID = errors.New("model: region mesh id is empty")

	// ErrEmptyOutputID indicates a Route was built without an OutputID.
	ErrEmptyOutputID = errors.New("model: route output id is empty")

	// ErrTooFewPolygonPoints indicates a polygon has fewer than 4 points
	// (the minimum to close a non-degenerate ring).
	ErrTooFewPolygonPoints = errors.New("model: region polygon needs at least 4 points")

	// ErrOpenPolygon indicates a polygon's first and last points differ.
	ErrOpenPolygon = errors.New("model: region polygon is not closed")

	// ErrTooFewPolylinePoints indicates a route polyline has fewer than 2 points.
	ErrTooFewPolylinePoints = errors.New("model: route polyline needs at least 2 points")

	// ErrNoPolylines indicates a route has no polylines at all.
	ErrNoPolylines = errors.New("model: route has no polylines")

	// ErrNonPositiveCost indicates a route's cost is not a finite positive number.
	ErrNonPositiveCost = errors.New("model: route cost must be a finite positive number")

	// ErrNegativeBusCap indicates a negative per-timeslot bus cap.
	ErrNegativeBusCap = errors.New("model: route bus cap must be non-negative")

	// ErrNonFiniteCoordinate indicates a NaN or infinite point coordinate.
	ErrNonFiniteCoordinate = errors.New("model: point coordinate is not finite")
)
