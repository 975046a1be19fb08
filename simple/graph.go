// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package simple

import (
	"fmt"

	"github.com/sixafter/thorup"
)

// Graph is the concrete, int-indexed undirected weighted adjacency-list
// collaborator the engine consumes. Unlike the key-addressed [Builder],
// vertex ids are always the contiguous range [0,VertexCount()); this is
// the shape [component], [splitfindmin], and the root engine's data
// model are array-indexed against.
type Graph struct {
	adjacency [][]thorup.Neighbor
}

// NewGraph creates an empty undirected graph over vertices 0..v-1.
func NewGraph(v int) *Graph {
	return &Graph{adjacency: make([][]thorup.Neighbor, v)}
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	return len(g.adjacency)
}

// Neighbors returns vertex's adjacent vertices and edge weights.
func (g *Graph) Neighbors(vertex int) []thorup.Neighbor {
	return g.adjacency[vertex]
}

// AddEdge records an undirected edge of the given weight between source
// and target, appending each to the other's adjacency list.
func (g *Graph) AddEdge(source, target, weight int) error {
	if source < 0 || source >= len(g.adjacency) {
		return fmt.Errorf("simple: source vertex %d out of range [0,%d)", source, len(g.adjacency))
	}
	if target < 0 || target >= len(g.adjacency) {
		return fmt.Errorf("simple: target vertex %d out of range [0,%d)", target, len(g.adjacency))
	}
	if weight <= 0 {
		return fmt.Errorf("simple: edge weight must be positive, got %d", weight)
	}

	g.adjacency[source] = append(g.adjacency[source], thorup.Neighbor{Vertex: target, Weight: weight})
	g.adjacency[target] = append(g.adjacency[target], thorup.Neighbor{Vertex: source, Weight: weight})
	return nil
}
