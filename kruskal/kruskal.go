// SPDX-License-Identifier: MIT

package kruskal

import (
	"fmt"

	"github.com/katalvlaran/algoviz/core"
	"github.com/katalvlaran/algoviz/disjointset"
)

// Simulate runs Kruskal over graph and returns the decision trace.
// It is Run without the forest bookkeeping exposed.
//
// Error Conditions:
//   - ErrNilGraph        : graph is nil.
//   - ErrOptionViolation : an Option carried an unsupported value.
//   - disjointset.ErrUnknownElement (wrapped): an incident names a non-node.
func Simulate(graph *core.Graph, opts ...Option) ([]Step, error) {
	res, err := Run(graph, opts...)
	if err != nil {
		return nil, err
	}

	return res.Steps, nil
}

// Run computes the minimum spanning forest of graph while recording every
// accept/reject decision.
//
// Steps:
//  1. Snapshot graph (Clone) so concurrent writers cannot tear the run and
//     the caller's graph is never touched.
//  2. Build a fresh disjoint-set over exactly the node ids of the snapshot.
//  3. Collect deduplicated edges and stable-sort them by weight.
//  4. For each edge: emit consider; if endpoints are disjoint, union them and
//     emit add, otherwise emit reject.
//  5. Return after the last edge. The loop never stops early.
//
// Complexity: O(E log E + α(V)·E). Memory: O(V + E).
func Run(graph *core.Graph, opts ...Option) (Result, error) {
	// 1. Validate arguments and options.
	if graph == nil {
		return Result{}, ErrNilGraph
	}
	o, err := resolve(opts)
	if err != nil {
		return Result{}, err
	}
	snap := graph.Clone()

	// 2. One disjoint-set per run; Nodes() never repeats an id.
	ds, err := disjointset.New(snap.Nodes())
	if err != nil {
		return Result{}, fmt.Errorf("kruskal: %w", err)
	}

	// 3. Processing order.
	edges := sortedEdges(snap, o.TieBreak)

	res := Result{
		Steps:  make([]Step, 0, 2*len(edges)),
		Forest: make([]Edge, 0),
	}
	emit := func(t StepType, e Edge) {
		s := Step{Type: t, Source: e.Source, Target: e.Target}
		res.Steps = append(res.Steps, s)
		o.OnStep(s)
	}

	// 4. Replay decisions.
	for _, e := range edges {
		emit(StepConsider, e)
		joined, err := ds.Connected(e.Source, e.Target)
		if err != nil {
			return Result{}, fmt.Errorf("kruskal: edge %s-%s: %w", e.Source, e.Target, err)
		}
		if joined {
			emit(StepReject, e)
			continue
		}
		if err := ds.Union(e.Source, e.Target); err != nil {
			return Result{}, fmt.Errorf("kruskal: edge %s-%s: %w", e.Source, e.Target, err)
		}
		res.Forest = append(res.Forest, e)
		res.TotalWeight += e.Weight
		emit(StepAdd, e)
	}

	// 5. Every edge processed.
	res.Components = ds.Count()

	return res, nil
}

// Summarize counts the decisions of a trace and collects its add steps.
// It works on any trace, including one received over the wire.
func Summarize(steps []Step) Summary {
	sum := Summary{Tree: make([]Step, 0)}
	for _, s := range steps {
		switch s.Type {
		case StepConsider:
			sum.Considered++
		case StepAdd:
			sum.Added++
			sum.Tree = append(sum.Tree, s)
		case StepReject:
			sum.Rejected++
		}
	}

	return sum
}
