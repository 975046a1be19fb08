// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package splitfindmin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func buildList(t *testing.T, n int, head bool) (*List, []*Element) {
	t.Helper()
	is := assert.New(t)

	l := New(n, n)
	elems := make([]*Element, n)
	for i := 0; i < n; i++ {
		e, err := l.Add(i, float64(i))
		is.NoError(err)
		elems[i] = e
	}

	var err error
	if head {
		err = l.InitializeHead()
	} else {
		err = l.InitializeTail()
	}
	is.NoError(err)

	return l, elems
}

func TestAddAfterInitializeFails(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	l := New(4, 4)
	_, _ = l.Add(0, 0)
	is.NoError(l.InitializeHead())

	_, err := l.Add(1, 1)
	is.ErrorIs(err, ErrAlreadyInitialized)

	is.ErrorIs(l.InitializeHead(), ErrDoubleInitialize)
}

func TestListCostIsMinimumAcrossAllElements(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	for _, head := range []bool{true, false} {
		l, elems := buildList(t, 40, head)
		is.Equal(0.0, l.GetCost())
		for _, e := range elems {
			is.Equal(l.GetCost(), e.GetListCost())
		}
	}
}

func TestDecreaseCostLowersListMinimum(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	l, elems := buildList(t, 40, true)
	is.Equal(0.0, l.GetCost())

	elems[39].DecreaseCost(-5)
	is.Equal(-5.0, l.GetCost())
	is.Equal(-5.0, elems[39].GetListCost())
	is.Equal(-5.0, elems[0].GetListCost())
}

func TestDecreaseCostIsNoopWhenHigher(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	l, elems := buildList(t, 40, true)
	elems[10].DecreaseCost(1000)
	is.Equal(10.0, elems[10].Cost)
	is.Equal(0.0, l.GetCost())
}

func TestSplitPartitionsAllElements(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	for _, head := range []bool{true, false} {
		for n := 2; n <= 60; n += 7 {
			l, elems := buildList(t, n, head)

			pivot := n / 2
			l2 := elems[pivot].Split()

			var prefix, suffix []any
			collectAll(l, &prefix)
			collectAll(l2, &suffix)

			is.Equal(pivot+1, len(prefix), "n=%d head=%v", n, head)
			is.Equal(n-pivot-1, len(suffix), "n=%d head=%v", n, head)

			seen := make(map[int]bool)
			for _, v := range prefix {
				seen[v.(int)] = true
			}
			for _, v := range suffix {
				is.False(seen[v.(int)])
				seen[v.(int)] = true
			}
			for i := 0; i < n; i++ {
				is.True(seen[i], "missing vertex %d", i)
			}
		}
	}
}

func TestSplitAtLastElementIsNoop(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	l, elems := buildList(t, 10, true)
	l2 := elems[len(elems)-1].Split()

	var all []any
	collectAll(l, &all)
	is.Equal(10, len(all))

	var suffix []any
	collectAll(l2, &suffix)
	is.Empty(suffix)
}

func TestSplitThenDecreaseCostStaysWithinHalf(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	l, elems := buildList(t, 50, true)
	l2 := elems[25].Split()

	elems[49].DecreaseCost(-100)
	is.Equal(-100.0, l2.GetCost())
	is.Equal(0.0, l.GetCost())
}

// collectAll walks every element reachable from a list's decomposition —
// its singleton elements, the elements inside its singleton
// superelements, and (recursively) the elements inside its sublists —
// flattening down to leaf payloads (the ints originally passed to Add).
// Collection order is not asserted; only completeness and partition
// correctness are.
func collectAll(l *List, out *[]any) {
	l.singletonElements.Each(func(e *Element) { appendPayloads(e, out) })
	l.singletonSuperelements.Each(func(se *Superelement) { appendRun(se, out) })
	l.sublists.Each(func(s *List) { collectAll(s, out) })
}

func appendRun(se *Superelement, out *[]any) {
	for c := se.firstContaining.containingContainer; ; c = c.Successor() {
		appendPayloads(c.Item, out)
		if c.Item == se.lastContaining {
			return
		}
	}
}

func appendPayloads(e *Element, out *[]any) {
	if se, ok := e.Item.(*Superelement); ok {
		appendRun(se, out)
		return
	}
	*out = append(*out, e.Item)
}
