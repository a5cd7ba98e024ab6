package model_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Jachtabahn/busroutes-tokyo/geom"
	"github.com/Jachtabahn/busroutes-tokyo/model"
)

func TestNewRegionRejectsEmptyMeshID(t *testing.T) {
	_, err := model.NewRegion("")
	require.ErrorIs(t, err, model.ErrEmptyMeshID)
}

func TestRegionAddDemographicSkipsSlot1AndOtherAges(t *testing.T) {
	r, err := model.NewRegion("M1")
	require.NoError(t, err)

	activeFactors := [model.TimeSlots]float64{0.5, 0.25, 0.1}

	// Slot 1 (raw) is the always-ignored sentinel.
	require.NoError(t, r.AddDemographic('1', 1, 100, "1,2", activeFactors))
	require.Equal(t, [model.TimeSlots]float64{0, 0, 0}, r.Targets)

	// Age group not in targetAges is skipped.
	require.NoError(t, r.AddDemographic('9', 2, 100, "1,2", activeFactors))
	require.Equal(t, [model.TimeSlots]float64{0, 0, 0}, r.Targets)

	// Raw slot 2 -> internal index 0.
	require.NoError(t, r.AddDemographic('1', 2, 10, "1,2", activeFactors))
	require.InDelta(t, 10*0.5*model.SlotLength[0], r.Targets[0], 1e-9)
}

func TestRegionSetPolygonRequiresClosedRingAndMinPoints(t *testing.T) {
	r, err := model.NewRegion("M1")
	require.NoError(t, err)

	open := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	require.ErrorIs(t, r.SetPolygon(open), model.ErrOpenPolygon)

	tooShort := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 0}}
	require.ErrorIs(t, r.SetPolygon(tooShort), model.ErrTooFewPolygonPoints)

	closed := []geom.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}, {X: 0, Y: 0}}
	require.NoError(t, r.SetPolygon(closed))
	require.Equal(t, geom.Point{X: 0, Y: 0}, r.Box.Min)
	require.Equal(t, geom.Point{X: 2, Y: 2}, r.Box.Max)
	require.NoError(t, r.Validate())
}

func TestNewRouteValidation(t *testing.T) {
	_, err := model.NewRoute("", 10, [model.TimeSlots]int{1, 1, 1})
	require.ErrorIs(t, err, model.ErrEmptyOutputID)

	_, err = model.NewRoute("R1", -1, [model.TimeSlots]int{1, 1, 1})
	require.ErrorIs(t, err, model.ErrNonPositiveCost)

	_, err = model.NewRoute("R1", 10, [model.TimeSlots]int{-1, 1, 1})
	require.ErrorIs(t, err, model.ErrNegativeBusCap)

	r, err := model.NewRoute("R1", 10, [model.TimeSlots]int{2, 0, 4})
	require.NoError(t, err)
	require.Equal(t, 4, r.MaxBuses())
}

func TestRouteAddPolylineAndValidate(t *testing.T) {
	r, err := model.NewRoute("R1", 10, [model.TimeSlots]int{1, 1, 1})
	require.NoError(t, err)

	require.ErrorIs(t, r.Validate(), model.ErrNoPolylines)

	require.ErrorIs(t, r.AddPolyline([]geom.Point{{X: 0, Y: 0}}), model.ErrTooFewPolylinePoints)

	require.NoError(t, r.AddPolyline([]geom.Point{{X: 0, Y: 0}, {X: 5, Y: 5}}))
	require.NoError(t, r.Validate())
	require.Equal(t, geom.Point{X: 0, Y: 0}, r.Box.Min)
	require.Equal(t, geom.Point{X: 5, Y: 5}, r.Box.Max)

	// A second polyline (MultiLineString) extends the box further.
	require.NoError(t, r.AddPolyline([]geom.Point{{X: -3, Y: 1}, {X: 1, Y: 9}}))
	require.Equal(t, geom.Point{X: -3, Y: 0}, r.Box.Min)
	require.Equal(t, geom.Point{X: 5, Y: 9}, r.Box.Max)
}
