// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

// Package unvisited wraps a component tree and a split-findmin list over
// the leaf permutation that tree induces, exposing the super-distance
// operations the Thorup engine's visit procedure needs.
package unvisited

import (
	"math"

	"github.com/sixafter/thorup/component"
	"github.com/sixafter/thorup/splitfindmin"
)

// Structure maps component-tree leaves to split-findmin state: each
// vertex's tentative distance ("super-distance") lives in the Element at
// its assigned leaf-permutation position.
type Structure struct {
	vertexIndex []int
	containers  []*splitfindmin.Element
	list        *splitfindmin.List
}

// New builds the leaf permutation of tree via a left-to-right DFS,
// instantiates a split-findmin list over len(containers) positions (each
// initially cost +Inf), and closes it.
func New(verticesNumber int, tree *component.Tree) *Structure {
	s := &Structure{
		vertexIndex: make([]int, verticesNumber),
		containers:  make([]*splitfindmin.Element, verticesNumber),
	}

	if tree.Root != nil {
		s.initializeMapping(tree.Root, 0)
	}

	s.list = splitfindmin.New(verticesNumber, verticesNumber)
	for i := 0; i < verticesNumber; i++ {
		e, _ := s.list.Add(i, math.Inf(1))
		s.containers[i] = e
	}
	_ = s.list.InitializeHead()

	return s
}

// initializeMapping assigns each leaf under node its position in the
// leaf permutation (a contiguous, left-to-right DFS order) and, for
// every internal node, its MaxUnvisitedVertexIndex — the rightmost
// position under it.
func (s *Structure) initializeMapping(node *component.Node, nextIndex int) int {
	if len(node.Children) == 0 {
		s.vertexIndex[node.Index] = nextIndex
		node.MaxUnvisitedVertexIndex = nextIndex
		return nextIndex + 1
	}

	idx := nextIndex
	for _, child := range node.Children {
		idx = s.initializeMapping(child, idx)
	}
	node.MaxUnvisitedVertexIndex = idx - 1
	return idx
}

// GetMinDviMinus returns the minimum tentative distance among leaves
// under node, or -1 if every such leaf is still at +Inf.
func (s *Structure) GetMinDviMinus(node *component.Node) int {
	cost := s.containers[node.MaxUnvisitedVertexIndex].GetListCost()
	if math.IsInf(cost, 1) {
		return -1
	}
	return int(cost)
}

// DecreaseSuperDistance lowers vertex's tentative distance to newLower
// if that improves on its current value.
func (s *Structure) DecreaseSuperDistance(vertex, newLower int) {
	s.containers[s.vertexIndex[vertex]].DecreaseCost(float64(newLower))
}

// Infinity is the tentative distance of a vertex no relaxation has
// reached yet. Converting the split-findmin's +Inf cost straight to int
// is not portable, so the sentinel is pinned to MaxInt explicitly.
const Infinity = math.MaxInt

// GetSuperDistance returns vertex's current tentative distance, or
// Infinity if no relaxation has reached it.
func (s *Structure) GetSuperDistance(vertex int) int {
	cost := s.containers[s.vertexIndex[vertex]].Cost
	if math.IsInf(cost, 1) {
		return Infinity
	}
	return int(cost)
}

// GetUnvisitedRoot walks from the leaf for leafIndex up through parents
// while the parent is not yet visited, returning the highest ancestor
// that is still unvisited.
func (s *Structure) GetUnvisitedRoot(tree *component.Tree, leafIndex int) *component.Node {
	current := tree.Leaves[leafIndex]
	for current.Parent != nil && !current.Parent.Visited {
		current = current.Parent
	}
	return current
}

// DeleteRoot splits the split-findmin list at each of node's non-last
// children, so that after this call every child's GetMinDviMinus queries
// a disjoint list.
func (s *Structure) DeleteRoot(node *component.Node) {
	for i, child := range node.Children {
		if i == len(node.Children)-1 {
			continue
		}
		s.containers[child.MaxUnvisitedVertexIndex].Split()
	}
}
