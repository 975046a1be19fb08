// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package thorup

import (
	"github.com/sixafter/thorup/component"
	"github.com/sixafter/thorup/internal/msb"
	"github.com/sixafter/thorup/unvisited"
)

// Engine orchestrates Thorup's deterministic single-source
// shortest-paths algorithm over an undirected, non-negative-integer-
// weighted Graph: an msb-minimum spanning tree, a hierarchical
// component tree built from it, and an unvisited structure
// that maintains tentative distances under the recursive visit
// procedure.
//
// Engine is single-threaded and stateful: ConstructMinimumSpanningTree
// and ConstructOtherDataStructures must each run once, in order, before
// the first FindShortestPaths call; a second FindShortestPaths call
// against the same engine must be preceded by CleanUpBetweenQueries.
type Engine struct {
	graph Graph
	mst   Graph

	tree      *component.Tree
	unvisited *unvisited.Structure

	visited []bool
	source  int
}

// New creates an engine over graph. No MST or component tree exists yet
// until ConstructMinimumSpanningTree and ConstructOtherDataStructures
// are called.
func New(graph Graph) *Engine {
	return &Engine{
		graph:   graph,
		visited: make([]bool, graph.VertexCount()),
	}
}

// ConstructMinimumSpanningTree runs alg over the engine's source graph
// and keeps the result as the msb-MST.
func (e *Engine) ConstructMinimumSpanningTree(alg MSTAlgorithm) error {
	mst, err := alg.SpawnTree(e.graph)
	if err != nil {
		return err
	}
	e.mst = mst
	return nil
}

// ConstructOtherDataStructures builds the component tree (Algorithm G)
// from the msb-MST and wraps it in an unvisited structure.
// ConstructMinimumSpanningTree must have already run.
func (e *Engine) ConstructOtherDataStructures() error {
	if e.mst == nil {
		return ErrMSTNotConstructed
	}

	v := e.graph.VertexCount()
	e.tree = component.Build(v, mstEdges(e.mst))
	e.unvisited = unvisited.New(v, e.tree)
	return nil
}

func mstEdges(mst Graph) []component.Edge {
	v := mst.VertexCount()
	var edges []component.Edge
	for u := 0; u < v; u++ {
		for _, n := range mst.Neighbors(u) {
			if n.Vertex <= u {
				continue
			}
			edges = append(edges, component.Edge{Source: u, Target: n.Vertex, Weight: n.Weight})
		}
	}
	return edges
}

// FindShortestPaths computes, for every vertex, the weight of a shortest
// path from source. Both ConstructMinimumSpanningTree and
// ConstructOtherDataStructures must have already run. Unreachable
// vertices report [unvisited.Infinity]; for a connected graph every
// entry is finite.
func (e *Engine) FindShortestPaths(source int) ([]int, error) {
	v := e.graph.VertexCount()
	if source < 0 || source >= v {
		return nil, ErrInvalidSource
	}
	if e.mst == nil {
		return nil, ErrMSTNotConstructed
	}
	if e.tree == nil || e.unvisited == nil {
		return nil, ErrNotInitialized
	}

	e.source = source
	e.visited[source] = true

	for _, n := range e.graph.Neighbors(source) {
		e.unvisited.DecreaseSuperDistance(n.Vertex, n.Weight)
	}

	e.visitNode(e.tree.Root)

	d := make([]int, v)
	for i := 0; i < v; i++ {
		d[i] = e.unvisited.GetSuperDistance(i)
	}
	d[source] = 0

	return d, nil
}

// CleanUpBetweenQueries resets the engine so FindShortestPaths can be
// called again: every component-tree node's visited flag and unvisited
// count are restored from their construction-time snapshot, and the
// unvisited structure's split-findmin is rebuilt from scratch.
func (e *Engine) CleanUpBetweenQueries() error {
	if e.tree == nil {
		return ErrNotInitialized
	}

	v := e.graph.VertexCount()
	e.visited = make([]bool, v)
	deepCleanUp(e.tree.Root)
	e.unvisited = unvisited.New(v, e.tree)
	return nil
}

func deepCleanUp(node *component.Node) {
	node.ResetTraversal()
	for _, child := range node.Children {
		deepCleanUp(child)
	}
}

// visitNode is the heart of the algorithm.
func (e *Engine) visitNode(u *component.Node) {
	// msb.Max, the msb of math.MaxInt, stands in for the parent hierarchy
	// level when u has none; it is at least the level of any node built
	// from edge weights below 2^62.
	j := msb.Max
	if u.Parent != nil {
		j = u.Parent.HierarchyLevel
	}

	// F.1. Leaf case.
	if u.HierarchyLevel == 0 {
		e.visit(u.Index)
		for cur := u.Parent; cur != nil; cur = cur.Parent {
			cur.UnvisitedCount--
		}
		u.RemoveFromParentBucket()
		return
	}

	// F.2.
	if !u.Visited {
		e.expand(u)
		u.NextBucketIndex = u.LowestBucketIndex
	}

	// F.3.
	shift := j - u.HierarchyLevel
	old := u.NextBucketIndex >> shift
	for u.UnvisitedCount > 0 && u.NextBucketIndex>>shift == old {
		for len(u.GetBucket(u.NextBucketIndex)) > 0 {
			w := u.GetBucket(u.NextBucketIndex)[0]
			e.visitNode(w)
		}
		u.NextBucketIndex++
	}

	// F.4 / F.5. NextBucketIndex is in u's own granularity 2^(h(u)-1);
	// shifting by j-h(u) converts it to the parent's, landing u in the
	// parent bucket holding u's next unvisited group.
	if u.UnvisitedCount > 0 {
		u.MoveToBucket(u.Parent, u.NextBucketIndex>>shift)
	} else if u.Parent != nil {
		u.RemoveFromParentBucket()
	}
}

// expand lazily allocates u's buckets and distributes its children into
// them by their current minimum tentative distance.
func (e *Engine) expand(u *component.Node) {
	u.LowestBucketIndex = e.unvisited.GetMinDviMinus(u) >> (u.HierarchyLevel - 1)
	u.HighestBucketIndex = u.LowestBucketIndex + u.Delta
	u.InitializeBuckets()
	e.unvisited.DeleteRoot(u)

	for _, w := range u.Children {
		// The source's leaf never carries a tentative distance and is
		// never bucketed; it is accounted for here, once, when its
		// parent expands.
		if len(w.Children) == 0 && w.Index == e.source {
			for cur := u; cur != nil; cur = cur.Parent {
				cur.UnvisitedCount--
			}
			continue
		}

		if minimum := e.unvisited.GetMinDviMinus(w); minimum != -1 {
			u.InsertToBucket(w, minimum>>(u.HierarchyLevel-1))
		}
	}

	u.Visited = true
}

// visit settles vertex and relaxes its neighbours in the source graph.
func (e *Engine) visit(vertex int) {
	if vertex == e.source {
		return
	}
	e.visited[vertex] = true

	for _, n := range e.graph.Neighbors(vertex) {
		if n.Vertex == e.source {
			continue
		}

		newD := e.unvisited.GetSuperDistance(vertex) + n.Weight
		if newD <= 0 || newD >= e.unvisited.GetSuperDistance(n.Vertex) {
			continue
		}

		wh := e.unvisited.GetUnvisitedRoot(e.tree, n.Vertex)
		wi := wh.Parent

		old := e.unvisited.GetMinDviMinus(wh) >> (wi.HierarchyLevel - 1)
		e.unvisited.DecreaseSuperDistance(n.Vertex, newD)
		updated := e.unvisited.GetMinDviMinus(wh) >> (wi.HierarchyLevel - 1)

		if old == -1 || updated < old {
			wh.MoveToBucket(wi, updated)
		}
	}
}
