// SPDX-License-Identifier: MIT

package builder

import "errors"

var (
	// ErrTooFewVertices indicates a size parameter below a constructor's minimum.
	ErrTooFewVertices = errors.New("builder: too few vertices")

	// ErrInvalidProbability indicates an edge probability outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrConstructFailed indicates a nil constructor.
	ErrConstructFailed = errors.New("builder: construction failed")

	// ErrUnknownShape indicates a shape name Parse does not recognize.
	ErrUnknownShape = errors.New("builder: unknown shape")
)
