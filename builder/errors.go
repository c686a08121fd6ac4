// SPDX-License-Identifier: MIT
package builder

import "errors"

// ErrTooFewVertices indicates a constructor's size parameter (n, rows*cols,
// n1+n2, ...) is below the minimum the requested shape needs.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrSizeMismatch indicates a constructor's implied vertex count does not
// match the graph's actual g.N(), set once by BuildGraph's InitGraph call.
var ErrSizeMismatch = errors.New("builder: shape size does not match graph vertex count")

// ErrInvalidProbability indicates a probability argument outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (supply one via WithSeed/WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a constructor could not build its target
// topology without violating an invariant (e.g. exhausted retries).
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownSolid indicates an unrecognized PlatonicName.
var ErrUnknownSolid = errors.New("builder: unknown platonic solid")
