package ingest

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/Jachtabahn/busroutes-tokyo/model"
)

// ParseRoutesReader reads one feature per line from r and builds a
// Route for every "type Feature" line.
func ParseRoutesReader(r io.Reader) ([]*model.Route, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 10*1024*1024)

	seen := make(map[string]bool)
	var routes []*model.Route

	for scanner.Scan() {
		line := scanner.Text()
		tokens := Tokenize(line)
		if len(tokens) < 2 || tokens[0] != "type" || tokens[1] != "Feature" {
			continue
		}

		route, err := parseRouteFeature(line, tokens)
		if err != nil {
			return nil, err
		}
		if seen[route.OutputID] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateRouteID, route.OutputID)
		}
		seen[route.OutputID] = true
		routes = append(routes, route)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("ingest: scanning routes: %w", err)
	}
	return routes, nil
}

func parseRouteFeature(line string, tokens []string) (*model.Route, error) {
	var outputID string
	var cost float64
	var buses [model.TimeSlots]int
	haveCost := false

	for i := 0; i+1 < len(tokens); i++ {
		switch tokens[i] {
		case "RouteID":
			outputID = tokens[i+1]
		case "Cost":
			c, err := strconv.ParseFloat(tokens[i+1], 64)
			if err != nil {
				return nil, fmt.Errorf("%w: route %s cost %q: %v", ErrMalformedNumber, outputID, tokens[i+1], err)
			}
			cost = c
			haveCost = true
		case "TZ2_Max":
			b, err := strconv.Atoi(tokens[i+1])
			if err != nil {
				return nil, fmt.Errorf("%w: route %s TZ2_Max %q: %v", ErrMalformedNumber, outputID, tokens[i+1], err)
			}
			buses[0] = b
		case "TZ3_Max":
			b, err := strconv.Atoi(tokens[i+1])
			if err != nil {
				return nil, fmt.Errorf("%w: route %s TZ3_Max %q: %v", ErrMalformedNumber, outputID, tokens[i+1], err)
			}
			buses[1] = b
		case "TZ4_Max":
			b, err := strconv.Atoi(tokens[i+1])
			if err != nil {
				return nil, fmt.Errorf("%w: route %s TZ4_Max %q: %v", ErrMalformedNumber, outputID, tokens[i+1], err)
			}
			buses[2] = b
		}
	}
	if outputID == "" {
		return nil, ErrMissingRouteID
	}
	if !haveCost {
		return nil, fmt.Errorf("ingest: route %s: missing Cost", outputID)
	}

	route, err := model.NewRoute(outputID, cost, buses)
	if err != nil {
		return nil, fmt.Errorf("ingest: route %s: %w", outputID, err)
	}

	groups, err := coordinateGroups(line)
	if err != nil {
		return nil, fmt.Errorf("ingest: route %s: %w", outputID, err)
	}
	for _, polyline := range groups {
		if err := route.AddPolyline(polyline); err != nil {
			return nil, fmt.Errorf("ingest: route %s: %w", outputID, err)
		}
	}

	return route, nil
}
