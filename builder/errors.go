// SPDX-License-Identifier: MIT
// Package: algoviz/builder
//
// errors.go: sentinel errors for the builder package.
//
// Callers branch with errors.Is; implementations attach context with %w.

package builder

import "errors"

// ErrTooFewNodes indicates n is below the minimum of one node.
var ErrTooFewNodes = errors.New("builder: too few nodes")

// ErrTooManyNodes indicates n exceeds MaxNodes.
var ErrTooManyNodes = errors.New("builder: too many nodes")

// ErrNegativeExtra indicates a negative count of extra edges.
var ErrNegativeExtra = errors.New("builder: extra edge count is negative")

// ErrInvalidWeightRange indicates a weight range that is empty or not positive.
var ErrInvalidWeightRange = errors.New("builder: invalid weight range")

// ErrNeedRandSource indicates a stochastic construction without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrDuplicateID indicates an ID scheme that mapped two indices to one id.
var ErrDuplicateID = errors.New("builder: id scheme produced a duplicate id")
