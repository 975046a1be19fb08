// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package unvisited

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sixafter/thorup/component"
)

// threeLeafTree builds a root with three leaf children (indices 0,1,2)
// in that left-to-right order, without going through component.Build.
func threeLeafTree() *component.Tree {
	leaves := []*component.Node{
		{Index: 0, Leaf: true},
		{Index: 1, Leaf: true},
		{Index: 2, Leaf: true},
	}
	root := &component.Node{Index: 3, HierarchyLevel: 1}
	for _, leaf := range leaves {
		leaf.Parent = root
		root.Children = append(root.Children, leaf)
	}

	return &component.Tree{Leaves: leaves, Root: root}
}

func TestNewAssignsLeftToRightPermutation(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	tree := threeLeafTree()
	s := New(3, tree)

	is.Equal(0, s.vertexIndex[0])
	is.Equal(1, s.vertexIndex[1])
	is.Equal(2, s.vertexIndex[2])
	is.Equal(2, tree.Root.MaxUnvisitedVertexIndex)
}

func TestSuperDistanceDecreaseIsMonotone(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	tree := threeLeafTree()
	s := New(3, tree)

	is.Equal(-1, s.GetMinDviMinus(tree.Root))

	s.DecreaseSuperDistance(1, 5)
	is.Equal(5, s.GetSuperDistance(1))
	is.Equal(5, s.GetMinDviMinus(tree.Root))

	s.DecreaseSuperDistance(1, 10)
	is.Equal(5, s.GetSuperDistance(1), "decrease with a higher cost is a no-op")

	s.DecreaseSuperDistance(0, 3)
	is.Equal(3, s.GetMinDviMinus(tree.Root))
}

func TestDeleteRootIsolatesChildren(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	tree := threeLeafTree()
	s := New(3, tree)

	s.DecreaseSuperDistance(0, 7)
	s.DecreaseSuperDistance(1, 4)
	s.DecreaseSuperDistance(2, 9)

	s.DeleteRoot(tree.Root)

	is.Equal(7, s.GetMinDviMinus(tree.Root.Children[0]))
	is.Equal(4, s.GetMinDviMinus(tree.Root.Children[1]))
	is.Equal(9, s.GetMinDviMinus(tree.Root.Children[2]))
}

func TestGetUnvisitedRootWalksToHighestUnvisitedAncestor(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	tree := threeLeafTree()
	s := New(3, tree)

	is.Same(tree.Root, s.GetUnvisitedRoot(tree, 0))

	tree.Root.Visited = true
	is.Same(tree.Leaves[0], s.GetUnvisitedRoot(tree, 0))
}
