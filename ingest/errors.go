package ingest

import "errors"

// ErrMissingMeshID is returned when a region feature has no MESH_ID token.
var ErrMissingMeshID = errors.New("ingest: missing MESH_ID")

// ErrMissingRouteID is returned when a route feature has no RouteID token.
var ErrMissingRouteID = errors.New("ingest: missing RouteID")

// ErrMissingCoordinates is returned when a feature line has no
// recognizable "coordinates" array.
var ErrMissingCoordinates = errors.New("ingest: missing coordinates")

// ErrMalformedCoordinates is returned when the coordinates array's
// brackets are unbalanced or its contents do not decode as nested
// [x, y] pairs.
var ErrMalformedCoordinates = errors.New("ingest: malformed coordinates")

// ErrMalformedNumber is returned when a numeric field fails to parse.
var ErrMalformedNumber = errors.New("ingest: malformed number")

// ErrDuplicateMeshID is returned when two region features share a MESH_ID.
var ErrDuplicateMeshID = errors.New("ingest: duplicate MESH_ID")

// ErrDuplicateRouteID is returned when two route features share a RouteID.
var ErrDuplicateRouteID = errors.New("ingest: duplicate RouteID")

// ErrActivityCSVShape is returned when the activity CSV does not have
// exactly a header row followed by one data row of 3 decimals.
var ErrActivityCSVShape = errors.New("ingest: activity CSV must have a header row and exactly one data row of 3 decimals")
