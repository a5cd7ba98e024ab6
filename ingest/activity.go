package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/Jachtabahn/busroutes-tokyo/model"
)

// ParseActivityCSV reads a header row followed by exactly one data row
// of model.TimeSlots comma-separated decimals in (0, 1], interpreted as
// activityFactor[0..TimeSlots-1].
func ParseActivityCSV(r io.Reader) ([model.TimeSlots]float64, error) {
	var factors [model.TimeSlots]float64

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	if _, err := reader.Read(); err != nil {
		return factors, fmt.Errorf("%w: reading header: %v", ErrActivityCSVShape, err)
	}

	record, err := reader.Read()
	if err != nil {
		return factors, fmt.Errorf("%w: reading data row: %v", ErrActivityCSVShape, err)
	}
	if len(record) != model.TimeSlots {
		return factors, fmt.Errorf("%w: expected %d columns, got %d", ErrActivityCSVShape, model.TimeSlots, len(record))
	}

	if _, err := reader.Read(); err != io.EOF {
		return factors, fmt.Errorf("%w: more than one data row", ErrActivityCSVShape)
	}

	for i, field := range record {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return factors, fmt.Errorf("%w: column %d value %q: %v", ErrActivityCSVShape, i, field, err)
		}
		if v <= 0 || v > 1 {
			return factors, fmt.Errorf("%w: column %d value %v out of (0,1]", ErrActivityCSVShape, i, v)
		}
		factors[i] = v
	}
	return factors, nil
}
