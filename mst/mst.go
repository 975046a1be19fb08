// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

// Package mst builds the msb-minimum spanning tree the Thorup engine
// runs its component tree over: a Kruskal variant that
// buckets edges by msb(weight) rather than sorting by raw weight, so
// that every non-tree edge's msb is at least the maximum msb on its
// tree path.
package mst

import (
	"github.com/sixafter/thorup"
	"github.com/sixafter/thorup/internal/msb"
	"github.com/sixafter/thorup/internal/unionfind"
	"github.com/sixafter/thorup/simple"
)

// Kruskal is the default [thorup.MSTAlgorithm]: msb-bucketed Kruskal.
type Kruskal struct{}

// SpawnTree satisfies [thorup.MSTAlgorithm].
func (Kruskal) SpawnTree(g thorup.Graph) (thorup.Graph, error) {
	return SpawnTree(g)
}

type edge struct {
	source, target, weight int
}

// SpawnTree computes the msb-MST of g using a Kruskal variant: edges are
// sorted into buckets by msb(weight) (one bucket per bit position up to
// the maximum edge weight present), processed in ascending bucket order,
// and kept whenever their endpoints are in different Union-Find
// components. Ties within a bucket follow enumeration order: by the
// lower endpoint's id, then by that vertex's Neighbors order; the order
// in which edges were added to g is not consulted. Each kept edge is
// emitted in both directions.
func SpawnTree(g thorup.Graph) (thorup.Graph, error) {
	v := g.VertexCount()
	tree := simple.NewGraph(v)
	if v <= 1 {
		return tree, nil
	}

	maxWeightMSB := 0
	for u := 0; u < v; u++ {
		for _, n := range g.Neighbors(u) {
			if n.Vertex <= u {
				continue
			}
			if m := msb.Of(n.Weight); m > maxWeightMSB {
				maxWeightMSB = m
			}
		}
	}

	buckets := make([][]edge, maxWeightMSB+1)
	for u := 0; u < v; u++ {
		for _, n := range g.Neighbors(u) {
			if n.Vertex <= u {
				continue
			}
			b := msb.Of(n.Weight)
			buckets[b] = append(buckets[b], edge{source: u, target: n.Vertex, weight: n.Weight})
		}
	}

	subtrees := unionfind.NewForest(v)
	for _, bucket := range buckets {
		for _, e := range bucket {
			if unionfind.Find(subtrees[e.source]) == unionfind.Find(subtrees[e.target]) {
				continue
			}
			unionfind.Union(subtrees[e.source], subtrees[e.target])

			if err := tree.AddEdge(e.source, e.target, e.weight); err != nil {
				return nil, err
			}
		}
	}

	return tree, nil
}
