// SPDX-License-Identifier: MIT

// Package osmload turns an OpenStreetMap extract into a routable core.Graph.
//
// Load scans nodes and ways with paulmach/osm (XML or PBF), keeps ways
// tagged highway=* (optionally restricted to a set of classes), and emits
// one edge per consecutive node pair. Edge weights are great-circle metres.
// oneway=yes|true|1 and junction=roundabout keep only the forward direction,
// oneway=-1|reverse only the backward one.
//
// Vertex ids are dense: the n-th distinct OSM node seen on a kept way
// becomes vertex n-1. Network maps in both directions.
package osmload
