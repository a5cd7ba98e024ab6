// Package geom provides the primitive 2D types and predicates the rest of
// busroutes-tokyo is built on: points, axis-aligned bounding boxes, and the
// segment/polyline/polygon intersection tests used to decide which bus
// routes physically touch which demographic regions.
//
// Everything here is pure and stateless: no allocation beyond return
// values, no shared state, total on all finite inputs. Tolerances are
// fixed compile-time constants (Epsilon), never mutable configuration.
package geom
