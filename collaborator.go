// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package thorup

import (
	"golang.org/x/exp/constraints"
)

// Ordered constrains the keys callers may address graph vertices by
// before lowering them into the engine's contiguous int ids (see
// [github.com/sixafter/thorup/simple.Builder]). Ordering fixes the key
// enumeration, so a given input graph always lowers to the same vertex
// numbering.
type Ordered interface {
	comparable // Ensures equality (`==`, `!=`) is supported.
	constraints.Ordered
}

// Neighbor is one weighted adjacency exposed by a Graph: the vertex id on
// the other end of an edge and its non-negative integer weight.
type Neighbor struct {
	Vertex int
	Weight int
}

// Graph is the external collaborator the engine consumes: vertex
// ids are a contiguous range [0,VertexCount()), each vertex's neighbours
// are enumerable with their weights, and nothing here is mutated by the
// engine. [github.com/sixafter/thorup/simple.Graph] is the concrete
// implementation; callers may supply any type with this shape.
type Graph interface {
	// VertexCount returns the number of vertices V. Valid vertex ids are
	// 0..V-1.
	VertexCount() int

	// Neighbors returns vertex's adjacent vertices and the weight of each
	// connecting edge. The order is not significant to the engine.
	Neighbors(vertex int) []Neighbor
}

// MSTAlgorithm is the MST collaborator: a single capability, spawning a
// spanning tree of g in the same Graph shape.
// [github.com/sixafter/thorup/mst.Kruskal] is the default, msb-bucketed
// implementation.
type MSTAlgorithm interface {
	SpawnTree(g Graph) (Graph, error)
}
