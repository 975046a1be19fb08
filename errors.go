// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package thorup

import (
	"errors"
)

var (
	// ErrInvalidSource is returned by FindShortestPaths when the source
	// vertex is outside [0, V).
	ErrInvalidSource = errors.New("thorup: source vertex out of range")

	// ErrMSTNotConstructed is returned by ConstructOtherDataStructures or
	// FindShortestPaths when ConstructMinimumSpanningTree has not yet run.
	ErrMSTNotConstructed = errors.New("thorup: minimum spanning tree not constructed")

	// ErrNotInitialized is returned by FindShortestPaths when
	// ConstructOtherDataStructures has not yet run.
	ErrNotInitialized = errors.New("thorup: component tree and unvisited structure not constructed")
)
