package driver

import "errors"

// ErrMalformedConfig is returned by ParseStdinConfig when the 5-line
// protocol is missing lines or a line fails validation.
var ErrMalformedConfig = errors.New("driver: malformed stdin configuration")

// ErrInvalidAgeGroup is returned when an age-group token in line 1 is
// not exactly one character.
var ErrInvalidAgeGroup = errors.New("driver: age group token must be exactly one character")

// ErrNoRegions is returned when ingestion yields zero regions.
var ErrNoRegions = errors.New("driver: no regions ingested")

// ErrNoRoutes is returned when ingestion yields zero routes.
var ErrNoRoutes = errors.New("driver: no routes ingested")
