package ingest_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Jachtabahn/busroutes-tokyo/geom"
	"github.com/Jachtabahn/busroutes-tokyo/ingest"
	"github.com/Jachtabahn/busroutes-tokyo/model"
)

func TestTokenizeReplacesPunctuationWithSpaces(t *testing.T) {
	tokens := ingest.Tokenize(`{"type":"Feature","MESH_ID":"M1_01"}`)
	require.Contains(t, tokens, "type")
	require.Contains(t, tokens, "Feature")
	require.Contains(t, tokens, "MESH_ID")
	require.Contains(t, tokens, "M1_01")
}

const regionLine = `{"type":"Feature","properties":{"MESH_ID":"M1","G1_TZ2":"10","G1_TZ3":"20","G9_TZ2":"999"},"geometry":{"coordinates":[[[0,0],[2,0],[2,2],[0,2],[0,0]]]}}`

func TestParseRegionsReader(t *testing.T) {
	activeFactors := [model.TimeSlots]float64{0.5, 0.25, 0.1}
	regions, err := ingest.ParseRegionsReader(strings.NewReader(regionLine), "1", activeFactors)
	require.NoError(t, err)
	require.Len(t, regions, 1)

	r := regions[0]
	require.Equal(t, "M1", r.MeshID)
	// G9_TZ2 is filtered out by targetAges="1".
	require.InDelta(t, 10*0.5*model.SlotLength[0], r.Targets[0], 1e-9)
	require.InDelta(t, 20*0.25*model.SlotLength[1], r.Targets[1], 1e-9)
	require.Equal(t, geom.Point{X: 0, Y: 0}, r.Box.Min)
	require.Equal(t, geom.Point{X: 2, Y: 2}, r.Box.Max)
}

const routeLine = `{"type":"Feature","properties":{"RouteID":"R1","Cost":"12.5","TZ2_Max":"3","TZ3_Max":"0","TZ4_Max":"2"},"geometry":{"coordinates":[[[0,0],[1,1]],[[5,5],[6,6],[7,7]]]}}`

func TestParseRoutesReader(t *testing.T) {
	routes, err := ingest.ParseRoutesReader(strings.NewReader(routeLine))
	require.NoError(t, err)
	require.Len(t, routes, 1)

	r := routes[0]
	require.Equal(t, "R1", r.OutputID)
	require.InDelta(t, 12.5, r.Cost, 1e-9)
	require.Equal(t, [model.TimeSlots]int{3, 0, 2}, r.Buses)
	require.Len(t, r.Polylines, 2)
	require.Len(t, r.Polylines[0], 2)
	require.Len(t, r.Polylines[1], 3)
}

func TestParseRegionsReaderRejectsDuplicateMeshID(t *testing.T) {
	data := regionLine + "\n" + regionLine
	_, err := ingest.ParseRegionsReader(strings.NewReader(data), "1", [model.TimeSlots]float64{1, 1, 1})
	require.ErrorIs(t, err, ingest.ErrDuplicateMeshID)
}

func TestParseActivityCSV(t *testing.T) {
	csv := "tz2,tz3,tz4\n0.5,0.25,0.1\n"
	factors, err := ingest.ParseActivityCSV(strings.NewReader(csv))
	require.NoError(t, err)
	require.Equal(t, [model.TimeSlots]float64{0.5, 0.25, 0.1}, factors)
}

func TestParseActivityCSVRejectsOutOfRangeValue(t *testing.T) {
	csv := "tz2,tz3,tz4\n0.5,1.5,0.1\n"
	_, err := ingest.ParseActivityCSV(strings.NewReader(csv))
	require.ErrorIs(t, err, ingest.ErrActivityCSVShape)
}

func TestWriteAllocationSortsAscendingAndSkipsZero(t *testing.T) {
	var buf bytes.Buffer
	err := ingest.WriteAllocation(&buf, map[string]int{"R2": 1, "R1": 3, "R3": 0})
	require.NoError(t, err)
	require.Equal(t, "R1,3\nR2,1\n", buf.String())
}
