// Package intersector orchestrates the route x region pass: a bounding-box
// prefilter followed by precise polyline/polygon intersection, accumulating
// each matching region's contribution into the touching route's Benefits
// vector.
//
// On the representative dataset the bbox prefilter eliminates the large
// majority of precise geometry tests, which is the performance lever that
// makes the full route x region comparison tractable (spec.md §4.2).
package intersector
