// Package ingest is the concrete external-collaborator implementation
// of driver.Ingester: it reads the line-oriented GeoJSON-like regions
// and routes files and the activity-factors CSV, and writes the final
// allocation. No package under geom, model, intersector, or knapsack
// imports ingest; it sits only behind the driver.Ingester boundary.
//
// Key/value tokens are extracted with the same permissive tokenizer
// the reference parser uses (replace everything but letters, digits,
// '.', and '_' with a space, then split on whitespace) so that feature
// lines need not be strictly valid JSON. The "coordinates" array is the
// one exception: because it may nest one or two levels deep depending
// on whether it encodes a single polygon ring or a MultiLineString,
// coordinates are extracted by locating the balanced bracket span after
// the coordinates key and decoding that span with encoding/json, which
// is simpler and more robust than hand-rolling a second bracket-depth
// tokenizer for numbers alone.
package ingest
