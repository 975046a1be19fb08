// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

// Package unionfind implements Tarjan's disjoint-set forest with
// union-by-size and full path compression, addressed by integer payload
// rather than by hash.
package unionfind

// Node is a single disjoint-set forest node carrying an integer payload.
// Parent is nil at the root. Size is only meaningful at the root and
// tracks the number of nodes in the tree rooted at this node.
type Node struct {
	Item   int
	parent *Node
	size   int
}

// New creates a fresh singleton set holding item.
func New(item int) *Node {
	return &Node{Item: item, size: 1}
}

// NewForest creates one singleton set per item in 0..n-1, indexed by
// item value. This is the shape component.Build and the msb-MST driver
// both need: an array of forest nodes addressed by vertex id.
func NewForest(n int) []*Node {
	nodes := make([]*Node, n)
	for i := range nodes {
		nodes[i] = New(i)
	}
	return nodes
}

// Find returns the root of the set containing n, applying path
// compression along the walk. Amortised O(alpha(n)).
func Find(n *Node) *Node {
	root := n
	for root.parent != nil {
		root = root.parent
	}

	current := n
	for current != root {
		next := current.parent
		current.parent = root
		current = next
	}

	return root
}

// Union merges the sets containing a and b by attaching the smaller
// root to the larger one (ties favour the first root). A no-op if a and
// b are already in the same set.
func Union(a, b *Node) {
	rootA := Find(a)
	rootB := Find(b)

	if rootA == rootB {
		return
	}

	if rootA.size < rootB.size {
		rootA.parent = rootB
		rootB.size += rootA.size
	} else {
		rootB.parent = rootA
		rootA.size += rootB.size
	}
}
