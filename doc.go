// Package hroute routes over a named, weighted, directed multigraph and
// remembers the answers.
//
// 🚀 What is hroute?
//
//	A small routing toolkit built from four layers:
//		• Store: vertices and parallel edges addressed by name and index
//		• Routing: Dijkstra over edges blended between two weights by α
//		• Cache: open-addressing path table with tombstones and LRU eviction
//		• Planner: memoized route queries with cache invalidation on edits
//
// ✨ Why two weights?
//
//   - Weight0 and Weight1 are the two extremes of an edge cost (off-peak and
//     rush hour, distance and toll). A query picks α in [0, 1] and every edge
//     costs Weight0*(1-α) + Weight1*α.
//   - The same graph answers both "cheapest" and "fastest" without rebuilding.
//
// Under the hood, everything is organized under these subpackages:
//
//	multigraph/ : Graph, Vertex, Edge; insert/remove with index-shifting cascade
//	routing/    : ShortestPath, FilteredShortestPath, MaxDepthViaEdgeName, BiDirectionalEdgeCount
//	pathcache/  : Table, PrimeHash/XXHash, RemoveLRU, Prometheus Collector
//	loader/     : line-oriented graph descriptions
//	render/     : console dumps of graphs, paths and cache slots
//	planner/    : Route/RouteFiltered with OpenTelemetry spans and counters
//	config/     : YAML configuration
//	cmd/hroute  : the command line front end
//	examples/   : runnable playground scenarios
//
// Quick ASCII example:
//
//	    A ──fast(1|9)──▶ C
//	    │                ▲
//	   x(3|1)          y(3|1)
//	    ▼                │
//	    B ───────────────┘
//
//	α=0 takes the direct edge (cost 1); α=1 takes the detour (cost 2).
//
//	go install github.com/katalvlaran/hroute/cmd/hroute@latest
package hroute
