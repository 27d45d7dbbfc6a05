// Package pathfind is a small toolkit for single-source shortest paths
// over weighted directed graphs, built around an indexed binary heap.
//
// 🚀 What is pathfind?
//
//	A compact, dependency-free library that brings together:
//		• core     — immutable Graph and Edge primitives with derived vertex & adjacency views
//		• ipq      — generic indexed min-heap with O(log n) decrease-key and remove-by-value
//		• dijkstra — Dijkstra's algorithm driven by the indexed heap (true decrease-key,
//		             not the lazy duplicate-push variant)
//
// ✨ Why choose pathfind?
//
//   - Minimal API, clear naming — a Graph is built once from an edge list and
//     never mutated, so any number of queries may read it concurrently
//   - Deterministic — vertex orderings and heap tie-breaks are fixed, so two
//     runs over the same graph always agree
//   - Pure Go — no cgo, no hidden deps
//
// Quick ASCII example:
//
//	    0───▶1
//	    │    │
//	    ▼    ▼
//	    2───▶3
//
//	four vertices, four weighted directed edges; dijkstra.ShortestPath
//	walks the cheapest chain of edges from 0 to 3.
//
// Dive into the per-package docs (core, ipq, dijkstra) for contracts,
// complexity notes and runnable examples.
package pathfind
