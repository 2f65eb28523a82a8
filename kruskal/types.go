// SPDX-License-Identifier: MIT

package kruskal

import (
	"errors"
	"fmt"
)

// ErrNilGraph is returned when a nil graph pointer is passed.
var ErrNilGraph = errors.New("kruskal: graph is nil")

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("kruskal: invalid option supplied")

// StepType discriminates the animation behavior of a Step.
type StepType string

const (
	// StepConsider puts an edge under evaluation.
	StepConsider StepType = "consider"

	// StepAdd accepts the edge into the spanning forest.
	StepAdd StepType = "add"

	// StepReject discards the edge because its endpoints are already connected.
	StepReject StepType = "reject"
)

// Step is one entry of the trace.
type Step struct {
	Type   StepType `json:"type"`
	Source string   `json:"source"`
	Target string   `json:"target"`
}

// Edge is a deduplicated undirected edge, oriented as first discovered.
type Edge struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Weight int64  `json:"weight"`
}

// TieBreak selects the order among edges of equal weight.
type TieBreak string

const (
	// TieBreakDiscovery keeps the order in which edges were first seen.
	TieBreakDiscovery TieBreak = "discovery"

	// TieBreakCanonical orders equal weights by the lexicographically
	// sorted endpoint pair.
	TieBreakCanonical TieBreak = "canonical"
)

// ParseTieBreak converts a configuration string into a TieBreak.
// The empty string selects TieBreakDiscovery.
func ParseTieBreak(s string) (TieBreak, error) {
	switch TieBreak(s) {
	case "", TieBreakDiscovery:
		return TieBreakDiscovery, nil
	case TieBreakCanonical:
		return TieBreakCanonical, nil
	default:
		return "", fmt.Errorf("%w: unknown tie-break %q", ErrOptionViolation, s)
	}
}

// Options holds parameters and callbacks for a run.
type Options struct {
	// TieBreak orders edges of equal weight.
	TieBreak TieBreak

	// OnStep is called for every step right after it is appended.
	OnStep func(Step)

	// internal error recorded during option parsing
	err error
}

// Option configures Options via functional arguments. An invalid value is
// recorded and surfaced as ErrOptionViolation when the run starts.
type Option func(*Options)

// DefaultOptions returns discovery-order tie-break and a no-op OnStep.
func DefaultOptions() Options {
	return Options{
		TieBreak: TieBreakDiscovery,
		OnStep:   func(Step) {},
	}
}

// WithTieBreak selects the equal-weight ordering.
func WithTieBreak(tb TieBreak) Option {
	return func(o *Options) {
		switch tb {
		case TieBreakDiscovery, TieBreakCanonical:
			o.TieBreak = tb
		default:
			o.err = fmt.Errorf("%w: unknown tie-break %q", ErrOptionViolation, tb)
		}
	}
}

// WithOnStep registers a callback run for each emitted step.
func WithOnStep(fn func(Step)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// Result is the outcome of Run: the trace plus the forest it builds.
type Result struct {
	// Steps is the full trace, 2·len(Edges considered) entries.
	Steps []Step `json:"steps"`

	// Forest lists accepted edges in acceptance order.
	Forest []Edge `json:"forest"`

	// TotalWeight is the sum of Forest weights.
	TotalWeight int64 `json:"totalWeight"`

	// Components is the number of trees in the forest, isolated nodes included.
	Components int `json:"components"`
}

// Summary counts the decisions of a trace.
type Summary struct {
	Considered int    `json:"considered"`
	Added      int    `json:"added"`
	Rejected   int    `json:"rejected"`
	Tree       []Step `json:"tree"`
}
