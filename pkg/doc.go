// Package pkg provides the core libraries for eegpos electrode positioning.
//
// # Overview
//
// Eegpos derives the standard positions of the 10-20, 10-10 and 10-05 EEG
// electrode placement systems on a unit sphere. The pkg directory is
// organized into the following areas:
//
//  1. [sphere] - Spherical geometry (great-circle interpolation, projection)
//  2. [montage] - Placement systems (label grammar, derivation plans, rosters)
//  3. [export] - Coordinate table serialization (TSV, JSON)
//  4. [render] - 2D head map rendering via graphviz
//  5. [cache] - Result caching (file, redis, null backends)
//  6. [pipeline] - Orchestration (compute → project → serialize, cached)
//
// # Architecture
//
// The typical data flow:
//
//	Density + Equator convention
//	         ↓
//	montage.Compute  (contour subdivision on the unit sphere)
//	         ↓
//	export / render  (TSV, JSON tables or SVG/PNG head maps)
//	         ↓
//	cache            (keyed by the full request options)
//
// The CLI and the HTTP API both drive this flow through [pipeline.Runner].
package pkg
