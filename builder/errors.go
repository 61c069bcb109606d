// SPDX-License-Identifier: MIT
// Package: routeplan/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w.

package builder

import (
	"errors"
)

// ErrTooFewPoints indicates that a size parameter (n, rows, cols) is smaller
// than the constructor allows.
var ErrTooFewPoints = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a
// non-nil *rand.Rand (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that a constructor could not complete, for
// instance because a nil constructor was passed or the map rejected an
// insertion (duplicate IDs from two constructors).
var ErrConstructFailed = errors.New("builder: construction failed")
