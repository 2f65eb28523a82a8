// SPDX-License-Identifier: MIT

// Package algoviz produces step-by-step traces of Kruskal's minimum spanning
// forest for graph visualizers.
//
// A visualizer sends a weighted undirected graph as an adjacency document
//
//	{"A":[{"toNode":"B","weight":1}], "B":[{"toNode":"A","weight":1}]}
//
// and gets back the ordered decisions the algorithm made:
//
//	[{"type":"consider","source":"A","target":"B"},
//	 {"type":"add","source":"A","target":"B"}]
//
// Every edge is considered exactly once, in ascending weight order, and is
// then either added to the forest or rejected because it would close a
// cycle. Replaying the trace reproduces the animation.
//
// Everything is organized under these subpackages:
//
//	core/        ordered weighted Graph, validation and the JSON/YAML codec
//	disjointset/ union-find with path compression and union by rank
//	kruskal/     the step generator: Simulate, Run, Edges, Summarize
//	builder/     seeded random connected graphs
//	replay/      paced, cancellable delivery of a trace
//	cmd/algoviz  the CLI: trace, random, serve
//
// Quick ASCII example:
//
//	    A──1──B
//	     \    |
//	      3   2
//	       \  |
//	        C─┘
//
// yields consider/add A-B, consider/add B-C, consider/reject A-C.
//
//	go install github.com/katalvlaran/algoviz/cmd/algoviz@latest
package algoviz
