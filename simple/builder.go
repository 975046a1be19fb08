// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package simple

import (
	"errors"
	"fmt"
	"sort"

	"github.com/sixafter/thorup"
)

var (
	// ErrVertexAlreadyExists is returned by Builder.AddVertex for a key
	// that was already added.
	ErrVertexAlreadyExists = errors.New("simple: vertex already exists")

	// ErrVertexNotFound is returned by Builder.AddEdge when an endpoint
	// key was never added.
	ErrVertexNotFound = errors.New("simple: vertex not found")

	// ErrEdgeAlreadyExists is returned by Builder.AddEdge for an endpoint
	// pair that is already connected.
	ErrEdgeAlreadyExists = errors.New("simple: edge already exists")

	// ErrSameSourceAndTarget is returned by Builder.AddEdge for a
	// self-loop; a self-loop can never lie on a shortest path under
	// positive weights.
	ErrSameSourceAndTarget = errors.New("simple: source and target vertices are the same")
)

// Builder accumulates an undirected graph with positive integer edge
// weights, addressed by arbitrary ordered keys, and lowers it into the
// contiguous int-indexed [Graph] the engine consumes. Directed edges,
// self-loops, and parallel edges are rejected at insertion; what Lower
// hands the engine is always a well-formed engine input.
type Builder[K thorup.Ordered] struct {
	adjacency map[K]map[K]int
}

// NewBuilder creates an empty builder.
func NewBuilder[K thorup.Ordered]() *Builder[K] {
	return &Builder[K]{adjacency: make(map[K]map[K]int)}
}

// AddVertex registers key as a vertex.
func (b *Builder[K]) AddVertex(key K) error {
	if _, ok := b.adjacency[key]; ok {
		return fmt.Errorf("simple: vertex %v: %w", key, ErrVertexAlreadyExists)
	}

	b.adjacency[key] = make(map[K]int)
	return nil
}

// AddEdge records an undirected edge of the given weight between two
// previously added vertices.
func (b *Builder[K]) AddEdge(source, target K, weight int) error {
	if source == target {
		return fmt.Errorf("simple: edge (%v,%v): %w", source, target, ErrSameSourceAndTarget)
	}
	for _, key := range []K{source, target} {
		if _, ok := b.adjacency[key]; !ok {
			return fmt.Errorf("simple: vertex %v: %w", key, ErrVertexNotFound)
		}
	}
	if _, ok := b.adjacency[source][target]; ok {
		return fmt.Errorf("simple: edge (%v,%v): %w", source, target, ErrEdgeAlreadyExists)
	}
	if weight <= 0 {
		return fmt.Errorf("simple: edge (%v,%v): weight must be positive, got %d", source, target, weight)
	}

	b.adjacency[source][target] = weight
	b.adjacency[target][source] = weight
	return nil
}

// Lower flattens the accumulated graph into the engine's int-indexed
// [Graph], returning the mapping from caller keys to assigned vertex
// ids. Keys are assigned ids in ascending order, so the mapping (and
// therefore the engine's output ordering) is deterministic for a fixed
// input graph.
func (b *Builder[K]) Lower() (*Graph, map[K]int) {
	keys := make([]K, 0, len(b.adjacency))
	for k := range b.adjacency {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	index := make(map[K]int, len(keys))
	for i, k := range keys {
		index[k] = i
	}

	out := NewGraph(len(keys))
	for _, source := range keys {
		u := index[source]
		for target, weight := range b.adjacency[source] {
			if v := index[target]; u < v {
				// AddEdge validated endpoints and weight at insertion.
				_ = out.AddEdge(u, v, weight)
			}
		}
	}

	return out, index
}
