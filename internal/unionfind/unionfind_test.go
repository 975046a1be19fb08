// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package unionfind

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnionFind(t *testing.T) {
	t.Parallel()

	t.Run("singleton roots itself", func(t *testing.T) {
		t.Parallel()
		is := assert.New(t)

		nodes := NewForest(4)
		is.Same(nodes[0], Find(nodes[0]))
		is.Same(nodes[3], Find(nodes[3]))
	})

	t.Run("union merges sets", func(t *testing.T) {
		t.Parallel()
		is := assert.New(t)

		nodes := NewForest(4)
		Union(nodes[0], nodes[1])
		is.Same(Find(nodes[0]), Find(nodes[1]))
	})

	t.Run("union is idempotent on the same set", func(t *testing.T) {
		t.Parallel()
		is := assert.New(t)

		nodes := NewForest(3)
		Union(nodes[0], nodes[1])
		root := Find(nodes[0])
		Union(nodes[0], nodes[1])
		is.Same(root, Find(nodes[0]))
	})

	t.Run("transitive union joins chains", func(t *testing.T) {
		t.Parallel()
		is := assert.New(t)

		nodes := NewForest(5)
		Union(nodes[0], nodes[1])
		Union(nodes[1], nodes[2])
		Union(nodes[3], nodes[4])

		is.Same(Find(nodes[0]), Find(nodes[2]))
		is.NotSame(Find(nodes[0]), Find(nodes[3]))

		Union(nodes[2], nodes[3])
		is.Same(Find(nodes[0]), Find(nodes[4]))
	})

	t.Run("union by size favours the larger tree as root", func(t *testing.T) {
		t.Parallel()
		is := assert.New(t)

		nodes := NewForest(6)
		Union(nodes[0], nodes[1])
		Union(nodes[0], nodes[2]) // {0,1,2} size 3
		Union(nodes[3], nodes[4]) // {3,4} size 2

		bigRoot := Find(nodes[0])
		Union(nodes[0], nodes[3])
		is.Same(bigRoot, Find(nodes[3]), "the size-3 tree's root should absorb the size-2 tree")
	})
}
