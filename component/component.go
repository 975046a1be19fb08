// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

// Package component builds the laminar component tree Thorup's visit
// procedure descends: a hierarchy of vertex
// groups, indexed by msb(weight), constructed by replaying the msb-MST's
// edges through a Union-Find forest in ascending msb order.
package component

import (
	"math"
	"sort"

	"github.com/sixafter/thorup/internal/msb"
	"github.com/sixafter/thorup/internal/unionfind"
)

// Node is either a leaf (one per source-graph vertex, Index = vertex id)
// or an internal node formed when Build closes a level. Bucket fields
// are only meaningful on internal nodes once the traversal expands them.
type Node struct {
	Index int
	Leaf  bool

	Delta          int
	HierarchyLevel int

	Visited bool

	BucketIndexOffset       int
	LowestBucketIndex       int
	HighestBucketIndex      int
	NextBucketIndex         int
	MaxUnvisitedVertexIndex int

	UnvisitedCount   int
	UnvisitedInitial int

	Parent   *Node
	Children []*Node
	Buckets  [][]*Node

	containingBucketOwner *Node
	containingBucketIndex int
}

func (n *Node) setParent(parent *Node) {
	n.Parent = parent
	parent.Children = append(parent.Children, n)
}

// InitializeBuckets allocates Delta+1 empty buckets, indexed
// [LowestBucketIndex, LowestBucketIndex+Delta]. Delta bounds the
// DIFFERENCE between the highest and lowest shifted distance inside the
// component (floor((m+S)/2^msb) - floor(m/2^msb) <= ceil(S/2^msb)), so
// the index range is inclusive at both ends and needs one bucket more
// than Delta.
func (n *Node) InitializeBuckets() {
	n.BucketIndexOffset = n.LowestBucketIndex
	n.Buckets = make([][]*Node, n.Delta+1)
}

// InsertToBucket places child into the bucket at index (absolute, not
// offset-relative) and records the back-pointer child needs to remove
// itself later.
func (n *Node) InsertToBucket(child *Node, index int) {
	k := index - n.BucketIndexOffset
	if k < 0 || k >= len(n.Buckets) {
		return
	}

	n.Buckets[k] = append(n.Buckets[k], child)
	child.containingBucketOwner = n
	child.containingBucketIndex = index
}

// GetBucket returns the bucket at absolute index, or nil when index is
// outside the allocated range. The visit procedure's bucket scan may
// step past the last allocated bucket while a component still waits for
// a distance relaxation; those reads see an empty bucket.
func (n *Node) GetBucket(index int) []*Node {
	k := index - n.BucketIndexOffset
	if k < 0 || k >= len(n.Buckets) {
		return nil
	}
	return n.Buckets[k]
}

// RemoveFromParentBucket removes n from whatever bucket currently holds
// it. A no-op if n is not presently in a bucket.
func (n *Node) RemoveFromParentBucket() {
	owner := n.containingBucketOwner
	if owner == nil {
		return
	}

	k := n.containingBucketIndex - owner.BucketIndexOffset
	bucket := owner.Buckets[k]
	for i, candidate := range bucket {
		if candidate == n {
			owner.Buckets[k] = append(bucket[:i], bucket[i+1:]...)
			break
		}
	}
	n.containingBucketOwner = nil
}

// ResetTraversal restores n to its pre-traversal state: the unvisited
// counter returns to its construction-time snapshot, the visited flag
// clears, and all bucket state (allocation, scan position, membership
// back-pointer) is dropped so the next expansion starts clean.
func (n *Node) ResetTraversal() {
	n.UnvisitedCount = n.UnvisitedInitial
	n.Visited = false
	n.Buckets = nil
	n.BucketIndexOffset = 0
	n.LowestBucketIndex = 0
	n.HighestBucketIndex = 0
	n.NextBucketIndex = 0
	n.containingBucketOwner = nil
	n.containingBucketIndex = 0
}

// MoveToBucket removes n from its current bucket, if any, and inserts it
// into parent's bucket at index.
func (n *Node) MoveToBucket(parent *Node, index int) {
	if n.containingBucketOwner != nil {
		n.RemoveFromParentBucket()
	}
	parent.InsertToBucket(n, index)
}

// Tree is the laminar component tree built by Build. Leaves and
// internal node ids share the same integer namespace [0,V) — which
// array a given id resolves against depends on whether the id was ever
// promoted to represent an internal node.
type Tree struct {
	Leaves        []*Node
	internalNodes []*Node
	Root          *Node
}

// NewTree creates a tree with v unattached leaves and no internal nodes
// yet.
func NewTree(v int) *Tree {
	t := &Tree{
		Leaves:        make([]*Node, v),
		internalNodes: make([]*Node, v),
	}
	for i := range t.Leaves {
		t.Leaves[i] = &Node{Index: i, Leaf: true}
	}
	return t
}

func (t *Tree) internalNode(index int) *Node {
	if t.internalNodes[index] == nil {
		t.internalNodes[index] = &Node{Index: index}
		t.Root = t.internalNodes[index]
	}
	return t.internalNodes[index]
}

// SetBucketsInternalNodeNumber sets δ for the internal node identified
// by internalNodeIndex.
func (t *Tree) SetBucketsInternalNodeNumber(internalNodeIndex, bucketsNumber int) {
	t.internalNodes[internalNodeIndex].Delta = bucketsNumber
}

// SetComponentHierarchyLevel sets h for the internal node identified by
// internalNodeIndex.
func (t *Tree) SetComponentHierarchyLevel(internalNodeIndex, level int) {
	t.internalNodes[internalNodeIndex].HierarchyLevel = level
}

// SetParentOfLeaf attaches leaf as a child of the internal node
// identified by parent, creating that internal node on first use. Every
// newly created internal node becomes the tree's Root, so once Build
// finishes Root is the last internal node created.
func (t *Tree) SetParentOfLeaf(leaf, parent int) {
	p := t.internalNode(parent)
	t.Leaves[leaf].setParent(p)
	p.UnvisitedCount++
	p.UnvisitedInitial++
}

// SetParentOfInternalNode attaches the internal node identified by
// internalNode as a child of the internal node identified by parent,
// folding the child's unvisited counters into the parent's.
func (t *Tree) SetParentOfInternalNode(internalNode, parent int) {
	child := t.internalNodes[internalNode]
	p := t.internalNode(parent)
	child.setParent(p)
	p.UnvisitedCount += child.UnvisitedCount
	p.UnvisitedInitial += child.UnvisitedInitial
}

// Edge is one undirected msb-MST edge, as handed to Build. Source and
// Target are vertex ids. The caller need not sort by msb — Build does —
// but must pass each undirected edge once: Build does not dedupe
// directions.
type Edge struct {
	Source, Target, Weight int
}

func sortedByMSB(edges []Edge) []Edge {
	out := make([]Edge, len(edges))
	copy(out, edges)
	sort.SliceStable(out, func(i, j int) bool {
		return msb.Of(out[i].Weight) < msb.Of(out[j].Weight)
	})
	return out
}

// Build runs Algorithm G over the msb-MST's edges, in
// ascending msb(weight) order, to produce the component tree. A sentinel
// edge of weight math.MaxInt is appended so the "close a level" test at
// the last real edge needs no separate branch.
func Build(v int, edges []Edge) *Tree {
	tree := NewTree(v)
	if v <= 1 {
		if v == 1 {
			tree.Root = tree.Leaves[0]
		}
		return tree
	}

	edges = sortedByMSB(edges)
	edges = append(edges, Edge{Weight: math.MaxInt})

	forest := unionfind.NewForest(v)
	c := make([]int, v)
	s := make([]int, v)
	newC := make([]int, v)
	representsInternal := make([]bool, v)
	for i := range c {
		c[i] = i
	}

	comp := 0

	var x []int
	touched := make(map[int]bool)
	addTouched := func(root int) {
		if !touched[root] {
			touched[root] = true
			x = append(x, root)
		}
	}

	for i := 0; i < len(edges)-1; i++ {
		e := edges[i]

		srcRoot := unionfind.Find(forest[e.Source]).Item
		tgtRoot := unionfind.Find(forest[e.Target]).Item
		addTouched(srcRoot)
		addTouched(tgtRoot)

		newS := s[srcRoot] + s[tgtRoot] + e.Weight
		unionfind.Union(forest[e.Source], forest[e.Target])
		mergedRoot := unionfind.Find(forest[e.Source]).Item
		s[mergedRoot] = newS

		if msb.Of(e.Weight) < msb.Of(edges[i+1].Weight) {
			var newX []int
			newXSeen := make(map[int]bool)
			for _, v0 := range x {
				r := unionfind.Find(forest[v0]).Item
				if !newXSeen[r] {
					newXSeen[r] = true
					newX = append(newX, r)
				}
			}

			for _, v0 := range newX {
				comp++
				newC[v0] = comp
			}

			for _, v0 := range x {
				r := unionfind.Find(forest[v0]).Item
				if !representsInternal[v0] {
					tree.SetParentOfLeaf(c[v0], newC[r])
				} else {
					tree.SetParentOfInternalNode(c[v0], newC[r])
				}
			}

			for _, v0 := range newX {
				c[v0] = newC[v0]
				representsInternal[v0] = true
				tree.SetBucketsInternalNodeNumber(c[v0], int(math.Ceil(float64(s[v0])/math.Pow(2, float64(msb.Of(e.Weight))))))
				tree.SetComponentHierarchyLevel(c[v0], msb.Of(e.Weight)+1)
			}

			x = nil
			touched = make(map[int]bool)
		}
	}

	return tree
}
