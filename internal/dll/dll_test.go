// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package dll

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func items[T any](l *List[T]) []T {
	out := make([]T, 0)
	l.Each(func(v T) { out = append(out, v) })
	return out
}

func TestAppendAndIterate(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	l := New[int]()
	is.True(l.IsEmpty())

	l.Append(1)
	l.Append(2)
	l.Append(3)

	is.False(l.IsEmpty())
	is.Equal([]int{1, 2, 3}, items(l))
}

func TestAppendFirst(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	l := New[int]()
	l.Append(2)
	l.Append(3)
	l.AppendFirst(1)

	is.Equal([]int{1, 2, 3}, items(l))
}

func TestInsertAfter(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	l := New[int]()
	a := l.Append(1)
	l.Append(3)
	l.Insert(a, 2)

	is.Equal([]int{1, 2, 3}, items(l))
}

func TestRemove(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	l := New[int]()
	l.Append(1)
	b := l.Append(2)
	l.Append(3)

	l.Remove(b)

	is.Equal([]int{1, 3}, items(l))
}

func TestRemoveLastUpdatesLast(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	l := New[int]()
	a := l.Append(1)
	b := l.Append(2)

	l.Remove(b)

	is.Same(a, l.Last())
	c := l.Append(3)
	is.Equal([]int{1, 3}, items(l))
	is.Same(c, l.Last())
}

func TestCutSplitsListInPlace(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	l := New[int]()
	l.Append(1)
	b := l.Append(2)
	l.Append(3)
	l.Append(4)

	suffix := l.Cut(b)

	is.Equal([]int{1, 2}, items(l))
	is.Equal([]int{3, 4}, items(suffix))
}

func TestCutAtLastReturnsEmptySuffix(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	l := New[int]()
	l.Append(1)
	last := l.Append(2)

	suffix := l.Cut(last)

	is.True(suffix.IsEmpty())
	is.Equal([]int{1, 2}, items(l))
}

func TestInsertListSplicesInPlace(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	l := New[int]()
	a := l.Append(1)
	l.Append(4)

	other := New[int]()
	other.Append(2)
	other.Append(3)

	l.InsertList(a, other)

	is.Equal([]int{1, 2, 3, 4}, items(l))
	is.True(other.IsEmpty())
}

func TestInsertListAtEndUpdatesLast(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	l := New[int]()
	a := l.Append(1)

	other := New[int]()
	other.Append(2)
	other.Append(3)

	l.InsertList(a, other)

	is.Equal([]int{1, 2, 3}, items(l))
	tail := l.Append(4)
	is.Same(tail, l.Last())
}

func TestExtendAppendsAllItems(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	l := New[int]()
	l.Append(1)
	l.Append(2)

	other := New[int]()
	other.Append(3)
	other.Append(4)

	l.Extend(other)

	is.Equal([]int{1, 2, 3, 4}, items(l))
	is.True(other.IsEmpty())
}

func TestInsertListOnEmptyOtherIsNoop(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	l := New[int]()
	a := l.Append(1)

	other := New[int]()
	pos := l.InsertList(a, other)

	is.Same(a, pos)
	is.Equal([]int{1}, items(l))
}
