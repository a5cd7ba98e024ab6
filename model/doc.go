// Package model defines Region and Route, the two entity types the
// optimizer reasons about, and the invariants that must hold before
// Intersector or Knapsack may consume them.
//
// Regions and Routes are built once during parsing (see the ingest
// package) and never mutated again, except for Route.Benefits, which
// Intersector populates exactly once. Neither type is a type hierarchy:
// both are concrete records, there is no polymorphism or dynamic
// dispatch anywhere in this package.
package model

// SlotLength is the fixed duration, in hours, of each of the three
// active timeslots. It is declared as a package variable; no code in
// this module writes to it.
var SlotLength = [TimeSlots]float64{2, 8, 4}

// TimeSlots is the number of active per-route/per-region timeslots.
const TimeSlots = 3
