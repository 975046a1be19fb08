// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildSingleVertexTreeIsItsOwnRoot(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	tree := Build(1, nil)
	is.Same(tree.Leaves[0], tree.Root)
	is.True(tree.Root.Leaf)
}

// leafSet returns the set of leaf vertex ids reachable under n.
func leafSet(n *Node) map[int]bool {
	out := make(map[int]bool)
	var walk func(*Node)
	walk = func(cur *Node) {
		if cur.Leaf {
			out[cur.Index] = true
			return
		}
		for _, c := range cur.Children {
			walk(c)
		}
	}
	walk(n)
	return out
}

func allNodes(root *Node) []*Node {
	var out []*Node
	var walk func(*Node)
	walk = func(cur *Node) {
		out = append(out, cur)
		for _, c := range cur.Children {
			walk(c)
		}
	}
	walk(root)
	return out
}

func leafSetSubset(a, b map[int]bool) bool {
	for k := range a {
		if !b[k] {
			return false
		}
	}
	return true
}

// fiveVertexEdges is a diamond with a tail over three msb levels
// (weights 1, 2 and 4). The diamond closes a cycle, so not every edge is
// a tree edge; the tests using it check only the tree's shape.
func fiveVertexEdges() []Edge {
	return []Edge{
		{Source: 0, Target: 1, Weight: 2},
		{Source: 0, Target: 2, Weight: 2},
		{Source: 1, Target: 3, Weight: 4},
		{Source: 2, Target: 3, Weight: 4},
		{Source: 3, Target: 4, Weight: 1},
	}
}

func TestBuildProducesLaminarTreeOverAllLeaves(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	tree := Build(5, fiveVertexEdges())
	is.NotNil(tree.Root)

	covered := leafSet(tree.Root)
	is.Len(covered, 5)

	var internals []*Node
	for _, n := range allNodes(tree.Root) {
		if !n.Leaf {
			internals = append(internals, n)
		}
	}

	for i, a := range internals {
		for j, b := range internals {
			if i == j {
				continue
			}
			la, lb := leafSet(a), leafSet(b)
			disjoint := true
			for k := range la {
				if lb[k] {
					disjoint = false
					break
				}
			}
			is.True(disjoint || leafSetSubset(la, lb) || leafSetSubset(lb, la),
				"node pair %d,%d neither disjoint nor nested", i, j)
		}
	}
}

func TestBuildLevelsStrictlyIncreaseTowardTheRoot(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	tree := Build(5, fiveVertexEdges())
	for _, n := range allNodes(tree.Root) {
		if n.Leaf || n.Parent == nil {
			continue
		}
		is.Greater(n.Parent.HierarchyLevel, n.HierarchyLevel)
	}
}

func TestBuildSetsDeltaAndLevelOnEveryInternalNode(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	tree := Build(4, []Edge{
		{Source: 0, Target: 1, Weight: 1},
		{Source: 1, Target: 2, Weight: 1},
		{Source: 2, Target: 3, Weight: 1},
	})

	for _, n := range allNodes(tree.Root) {
		if n.Leaf {
			continue
		}
		is.Greater(n.Delta, 0)
		is.GreaterOrEqual(n.HierarchyLevel, 1)
	}
}

func TestNodeBucketLifecycle(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	parent := &Node{Index: 10, LowestBucketIndex: 3, Delta: 2}
	parent.InitializeBuckets()

	a := &Node{Index: 1, Leaf: true}
	b := &Node{Index: 2, Leaf: true}

	parent.InsertToBucket(a, 3)
	parent.InsertToBucket(b, 4)
	is.Equal([]*Node{a}, parent.GetBucket(3))
	is.Equal([]*Node{b}, parent.GetBucket(4))

	a.RemoveFromParentBucket()
	is.Empty(parent.GetBucket(3))

	other := &Node{Index: 11, LowestBucketIndex: 3, Delta: 2}
	other.InitializeBuckets()
	b.MoveToBucket(other, 3)
	is.Empty(parent.GetBucket(4))
	is.Equal([]*Node{b}, other.GetBucket(3))
}
