package ingest

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/Jachtabahn/busroutes-tokyo/model"
)

// ParseRegionsReader reads one feature per line from r and builds a
// Region for every "type Feature" line, filtering demographic counts
// to targetAges and scaling them by activeFactors (see
// model.Region.AddDemographic).
func ParseRegionsReader(r io.Reader, targetAges string, activeFactors [model.TimeSlots]float64) ([]*model.Region, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 10*1024*1024)

	seen := make(map[string]bool)
	var regions []*model.Region

	for scanner.Scan() {
		line := scanner.Text()
		tokens := Tokenize(line)
		if len(tokens) < 2 || tokens[0] != "type" || tokens[1] != "Feature" {
			continue
		}

		region, err := parseRegionFeature(line, tokens, targetAges, activeFactors)
		if err != nil {
			return nil, err
		}
		if seen[region.MeshID] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateMeshID, region.MeshID)
		}
		seen[region.MeshID] = true
		regions = append(regions, region)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("ingest: scanning regions: %w", err)
	}
	return regions, nil
}

func parseRegionFeature(line string, tokens []string, targetAges string, activeFactors [model.TimeSlots]float64) (*model.Region, error) {
	var meshID string
	for i := 0; i+1 < len(tokens); i++ {
		if tokens[i] == "MESH_ID" {
			meshID = tokens[i+1]
			break
		}
	}
	if meshID == "" {
		return nil, ErrMissingMeshID
	}

	region, err := model.NewRegion(meshID)
	if err != nil {
		return nil, err
	}

	// Demographic keys have the shape G<age>_TZ<slot>, e.g. "G1_TZ2".
	for i := 0; i+1 < len(tokens); i++ {
		token := tokens[i]
		if len(token) < 6 || token[0] != 'G' || token[3] != 'T' || token[4] != 'Z' {
			continue
		}
		count, perr := strconv.ParseFloat(tokens[i+1], 64)
		if perr != nil {
			return nil, fmt.Errorf("%w: region %s demographic %q: %v", ErrMalformedNumber, meshID, token, perr)
		}
		slotRaw := int(token[5] - '0')
		if err := region.AddDemographic(token[1], slotRaw, count, targetAges, activeFactors); err != nil {
			return nil, fmt.Errorf("ingest: region %s: %w", meshID, err)
		}
	}

	groups, err := coordinateGroups(line)
	if err != nil {
		return nil, fmt.Errorf("ingest: region %s: %w", meshID, err)
	}
	if len(groups) == 0 {
		return nil, fmt.Errorf("ingest: region %s: %w", meshID, ErrMissingCoordinates)
	}
	if err := region.SetPolygon(groups[0]); err != nil {
		return nil, fmt.Errorf("ingest: region %s: %w", meshID, err)
	}

	return region, nil
}
