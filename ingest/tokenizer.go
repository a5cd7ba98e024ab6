package ingest

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode"

	"github.com/Jachtabahn/busroutes-tokyo/geom"
)

// Tokenize replicates the reference parser's clean()+split convention:
// every rune that is not a letter, digit, '.', or '_' becomes a space,
// then the line is split on whitespace. "coordinates" values are not
// reliably tokenizable this way (the brackets that distinguish a single
// ring from a MultiLineString are thrown away), so coordinates are
// extracted separately by coordinateGroups.
func Tokenize(line string) []string {
	cleaned := make([]rune, 0, len(line))
	for _, r := range line {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '.' || r == '_' {
			cleaned = append(cleaned, r)
		} else {
			cleaned = append(cleaned, ' ')
		}
	}
	return strings.Fields(string(cleaned))
}

// coordinateGroups locates the "coordinates" key in the raw (uncleaned)
// line, extracts the balanced bracket span that follows it, and decodes
// it as a list of point lists: [[[x,y],...], [[x,y],...], ...] or the
// shallower [[x,y],...] form a single-ring polygon uses.
//
// A GeoJSON Polygon's coordinates is a list of rings (outer ring first,
// any remainder are holes this system does not model); a route's
// coordinates is a list of polylines. Both shapes are "list of list of
// [x,y]", so one decoder serves both — callers pick how many groups to
// keep.
func coordinateGroups(line string) ([][]geom.Point, error) {
	keyIdx := strings.Index(line, "coordinates")
	if keyIdx < 0 {
		return nil, ErrMissingCoordinates
	}
	openIdx := strings.IndexByte(line[keyIdx:], '[')
	if openIdx < 0 {
		return nil, ErrMissingCoordinates
	}
	openIdx += keyIdx

	closeIdx, err := matchingBracket(line, openIdx)
	if err != nil {
		return nil, err
	}
	span := line[openIdx : closeIdx+1]

	// The shallow [[x,y],...] form decodes directly as one point list.
	var single [][2]float64
	if err := json.Unmarshal([]byte(span), &single); err == nil && len(single) > 0 {
		points := make([]geom.Point, len(single))
		for i, p := range single {
			points[i] = geom.Point{X: p[0], Y: p[1]}
		}
		return [][]geom.Point{points}, nil
	}

	var rawGroups []json.RawMessage
	if err := json.Unmarshal([]byte(span), &rawGroups); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedCoordinates, err)
	}

	groups := make([][]geom.Point, 0, len(rawGroups))
	for _, raw := range rawGroups {
		var positions [][2]float64
		if err := json.Unmarshal(raw, &positions); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedCoordinates, err)
		}
		points := make([]geom.Point, len(positions))
		for i, p := range positions {
			points[i] = geom.Point{X: p[0], Y: p[1]}
		}
		groups = append(groups, points)
	}
	return groups, nil
}

// matchingBracket returns the index of the ']' that closes the '[' at
// openIdx, accounting for nested brackets.
func matchingBracket(s string, openIdx int) (int, error) {
	depth := 0
	for i := openIdx; i < len(s); i++ {
		switch s[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return i, nil
			}
		}
	}
	return -1, fmt.Errorf("%w: unbalanced brackets", ErrMalformedCoordinates)
}
