// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package splitfindmin

import (
	"math"

	"github.com/sixafter/thorup/internal/dll"
)

// boundaries records, relative to some position in the raw spine, the
// nearest preceding singleton element, singleton superelement, and
// sublist — the three points Split needs to know where to cut.
type boundaries struct {
	elem   *dll.Container[*Element]
	elemOK bool
	se     *dll.Container[*Superelement]
	seOK   bool
	sub    *dll.Container[*List]
	subOK  bool
}

// findBoundaries walks the raw spine backward starting at before,
// classifying each raw element until all three categories have been
// found or the sentinel is reached.
func findBoundaries(l *List, before *dll.Container[*Element]) boundaries {
	var b boundaries

	for c := before; c != l.elements.Sentinel(); c = c.Predecessor() {
		item := c.Item

		if !b.elemOK && item.containingList != nil {
			b.elem, b.elemOK = item.containingContainerSingletonElements, true
		}

		if se := item.superelement; se != nil {
			if se.isSingleton() {
				if !b.seOK {
					b.se, b.seOK = se.containingContainerSingletonSuperelements, true
				}
			} else if !b.subOK {
				b.sub, b.subOK = se.containingSublist.containingContainerSublists, true
			}
		}

		if b.elemOK && b.seOK && b.subOK {
			break
		}
	}

	return b
}

// cutAt cuts d immediately after c (moving everything after c to the
// returned suffix), or — if ok is false, meaning no boundary was found —
// moves the whole of d to the suffix.
func cutAt[T any](d *dll.List[T], c *dll.Container[T], ok bool) *dll.List[T] {
	anchor := c
	if !ok {
		anchor = d.Sentinel()
	}
	return d.Cut(anchor)
}

// spliceAfter inserts pieces into d immediately after c (or at the front,
// if ok is false), returning the position a subsequent cutAt should use
// to separate the freshly-inserted pieces from whatever followed them.
func spliceAfter[T any](d *dll.List[T], c *dll.Container[T], ok bool, pieces *dll.List[T]) *dll.Container[T] {
	anchor := c
	if !ok {
		anchor = d.Sentinel()
	}
	return d.InsertList(anchor, pieces)
}

func reparentMoved(l2 *List) {
	l2.singletonElements.Each(func(e *Element) { e.containingList = l2 })
	l2.singletonSuperelements.Each(func(se *Superelement) { se.containingList = l2 })
	l2.sublists.Each(func(s *List) { s.containingList = l2 })
}

func reparentSublistElements(moved *List) {
	moved.elements.Each(func(e *Element) {
		if se, ok := e.Item.(*Superelement); ok {
			se.containingSublist = moved
		}
	})
}

func (l *List) recomputeCost() {
	cost := math.Inf(1)
	l.singletonElements.Each(func(e *Element) {
		if e.Cost < cost {
			cost = e.Cost
		}
	})
	l.singletonSuperelements.Each(func(se *Superelement) {
		if se.Cost < cost {
			cost = se.Cost
		}
	})
	l.sublists.Each(func(s *List) {
		if s.cost < cost {
			cost = s.cost
		}
	})
	l.cost = cost
}

// Split divides the list into a prefix retained in place (up to and
// including e) and a suffix returned as a new list. If e is already the
// last element of the list, the list is left unchanged and an empty list
// is returned.
func (e *Element) Split() *List {
	switch {
	case e.superelement == nil:
		l := e.containingList
		if e.containingContainer == l.elements.Last() {
			return newPeer(l.ackermannTable, l.listIndex)
		}
		return e.splitLeftover(l)

	case e.superelement.isSingleton():
		l := e.superelement.containingList
		if e.containingContainer == l.elements.Last() {
			return newPeer(l.ackermannTable, l.listIndex)
		}
		return e.splitSingletonSuperelement(l)

	default:
		l := e.superelement.containingSublist.containingList
		if e.containingContainer == l.elements.Last() {
			return newPeer(l.ackermannTable, l.listIndex)
		}
		return e.splitNestedSuperelement()
	}
}

// splitLeftover handles an x with no superelement at all: only the
// singleton-elements spine needs an exact cut, the other two categories
// are cut at whatever boundary precedes x.
func (x *Element) splitLeftover(l *List) *List {
	b := findBoundaries(l, x.containingContainer.Predecessor())

	l2 := newPeer(l.ackermannTable, l.listIndex)
	l2.containingList = l.containingList

	l2.singletonElements = l.singletonElements.Cut(x.containingContainerSingletonElements)
	l2.singletonSuperelements = cutAt(l.singletonSuperelements, b.se, b.seOK)
	l2.sublists = cutAt(l.sublists, b.sub, b.subOK)
	l2.elements = l.elements.Cut(x.containingContainer)

	reparentMoved(l2)
	l.recomputeCost()
	l2.recomputeCost()
	return l2
}

// splitSingletonSuperelement handles an x whose superelement is a
// singleton entry directly in l.singletonSuperelements.
func (x *Element) splitSingletonSuperelement(l *List) *List {
	se := x.superelement

	if x == se.lastContaining {
		b := findBoundaries(l, se.firstContaining.containingContainer.Predecessor())

		l2 := newPeer(l.ackermannTable, l.listIndex)
		l2.containingList = l.containingList

		l2.singletonElements = cutAt(l.singletonElements, b.elem, b.elemOK)
		l2.singletonSuperelements = l.singletonSuperelements.Cut(se.containingContainerSingletonSuperelements)
		l2.sublists = cutAt(l.sublists, b.sub, b.subOK)
		l2.elements = l.elements.Cut(x.containingContainer)

		reparentMoved(l2)
		l.recomputeCost()
		l2.recomputeCost()
		return l2
	}

	b := findBoundaries(l, se.firstContaining.containingContainer.Predecessor())
	l.singletonSuperelements.Remove(se.containingContainerSingletonSuperelements)
	return dismantleAndSplit(l, se, x, b)
}

// splitNestedSuperelement handles an x whose superelement lives inside a
// sublist. It first isolates that superelement into its own one-element
// sublist (by splitting the sublist's own spine at the superelement's
// wrapper element, and again at the wrapper's predecessor if one exists),
// then dismantles it exactly as splitSingletonSuperelement does, anchored
// among l.sublists instead of l.singletonSuperelements.
func (x *Element) splitNestedSuperelement() *List {
	se := x.superelement
	sub := se.containingSublist
	l := sub.containingList

	wrapper := se.sublistElement
	insertAfter := sub.containingContainerSublists
	isolated := sub.containingContainerSublists

	suffixSub := wrapper.Split()
	reparentSublistElements(suffixSub)

	if pred := wrapper.containingContainer.Predecessor(); pred != sub.elements.Sentinel() {
		loneSub := pred.Item.Split()
		reparentSublistElements(loneSub)

		c := l.sublists.Insert(insertAfter, loneSub)
		loneSub.containingContainerSublists = c
		loneSub.containingList = l
		insertAfter = c
		isolated = c
	}

	if !suffixSub.IsEmpty() {
		c := l.sublists.Insert(insertAfter, suffixSub)
		suffixSub.containingContainerSublists = c
		suffixSub.containingList = l
	}

	if x == se.lastContaining {
		b := findBoundaries(l, se.firstContaining.containingContainer.Predecessor())

		l2 := newPeer(l.ackermannTable, l.listIndex)
		l2.containingList = l.containingList

		l2.singletonElements = cutAt(l.singletonElements, b.elem, b.elemOK)
		l2.singletonSuperelements = cutAt(l.singletonSuperelements, b.se, b.seOK)
		l2.sublists = l.sublists.Cut(isolated)
		l2.elements = l.elements.Cut(x.containingContainer)

		reparentMoved(l2)
		l.recomputeCost()
		l2.recomputeCost()
		return l2
	}

	b := findBoundaries(l, se.firstContaining.containingContainer.Predecessor())
	l.sublists.Remove(isolated)
	return dismantleAndSplit(l, se, x, b)
}

// dismantleAndSplit rebuilds the raw-element run covered by se (whose
// first/last containing elements bound it) via head/tail
// reinitialization anchored at the split pivot x, splices the rebuilt
// pieces into l at the boundaries in b, and returns the suffix list. The
// caller must already have removed se's own single-unit entry (a
// singleton superelement, or a one-element sublist isolating it) from l.
func dismantleAndSplit(l *List, se *Superelement, x *Element, b boundaries) *List {
	first := se.firstContaining
	last := se.lastContaining

	headElems, headSEs, headSubs := l.decomposeHead(x.containingContainer, first.containingContainer.Predecessor())
	tailElems, tailSEs, tailSubs := l.decomposeTail(x.containingContainer.Successor(), successorOrNil(last.containingContainer))

	lastElemPos := spliceAfter(l.singletonElements, b.elem, b.elemOK, headElems)
	lastSEPos := spliceAfter(l.singletonSuperelements, b.se, b.seOK, headSEs)
	lastSubPos := spliceAfter(l.sublists, b.sub, b.subOK, headSubs)

	l2 := newPeer(l.ackermannTable, l.listIndex)
	l2.containingList = l.containingList

	l2.singletonElements = l.singletonElements.Cut(lastElemPos)
	l2.singletonSuperelements = l.singletonSuperelements.Cut(lastSEPos)
	l2.sublists = l.sublists.Cut(lastSubPos)

	tailElems.Extend(l2.singletonElements)
	tailSEs.Extend(l2.singletonSuperelements)
	tailSubs.Extend(l2.sublists)

	l2.singletonElements = tailElems
	l2.singletonSuperelements = tailSEs
	l2.sublists = tailSubs
	l2.elements = l.elements.Cut(x.containingContainer)

	reparentMoved(l2)
	l.recomputeCost()
	l2.recomputeCost()
	return l2
}

func successorOrNil(c *dll.Container[*Element]) *dll.Container[*Element] {
	return c.Successor()
}
