// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

// Package splitfindmin implements Harold N. Gabow's split-findmin
// structure: an ordered list of elements that supports decreasing an
// element's cost and splitting the list in two, while always answering
// "what is the minimum cost in my enclosing list" in amortised
// O(alpha(m,n)) time.
//
// A list is, internally, a laminar recursion: once closed by
// InitializeHead or InitializeTail, its elements are partitioned into
// singleton elements, singleton superelements (maximal runs of
// same-level elements too short to be worth a sublist), and sublists
// (runs long enough to be recursively split-findmin structures one
// alpha-level down). Add/AddFirst populate a list before it is closed;
// everything else operates on the closed decomposition.
package splitfindmin

import (
	"errors"
	"math"

	"github.com/sixafter/thorup/internal/ackermann"
	"github.com/sixafter/thorup/internal/dll"
)

var (
	// ErrAlreadyInitialized is returned by Add/AddFirst once the list has
	// been closed by InitializeHead or InitializeTail.
	ErrAlreadyInitialized = errors.New("splitfindmin: add after initialization")

	// ErrDoubleInitialize is returned by InitializeHead/InitializeTail
	// when the list has already been closed.
	ErrDoubleInitialize = errors.New("splitfindmin: list already initialized")
)

// List is a single level of Gabow's split-findmin structure. The zero
// value is not ready to use; construct one with New.
type List struct {
	ackermannTable *ackermann.Table
	listIndex      int
	cost           float64
	initialized    bool

	// elements is the raw insertion-order spine. It is never reordered
	// after construction and is the backbone every backward/forward
	// boundary search in Split walks.
	elements *dll.List[*Element]

	singletonElements      *dll.List[*Element]
	singletonSuperelements *dll.List[*Superelement]
	sublists               *dll.List[*List]

	// containingList is non-nil when this List is itself a sublist of
	// another List (one alpha-level up).
	containingList               *List
	containingContainerSublists  *dll.Container[*List]
}

// Element is a single item held by a List. Item is the payload: either
// the caller's own value (for a top-level list) or a *Superelement one
// level up the recursion (for an element living inside a sublist).
type Element struct {
	Cost float64
	Item any

	superelement *Superelement

	// containingList is set when this element is a "left-over" singleton
	// sitting directly in some List's singletonElements, with no
	// superelement grouping at all.
	containingList *List

	containingContainer                  *dll.Container[*Element]
	containingContainerSingletonElements *dll.Container[*Element]
}

// Superelement groups a maximal run of same-level elements together so
// the run's minimum cost can be tracked as a single unit.
type Superelement struct {
	Level int
	Cost  float64

	firstContaining *Element
	lastContaining  *Element

	// containingList is set when this superelement is itself a singleton
	// (a run of length 1) sitting directly in some List's
	// singletonSuperelements.
	containingList                            *List
	containingContainerSingletonSuperelements *dll.Container[*Superelement]

	// sublistElement/containingSublist are set when this superelement
	// instead belongs to a run of length > 1, realised as a sublist one
	// alpha-level down. sublistElement is this superelement's own
	// wrapper Element inside that sublist.
	sublistElement   *Element
	containingSublist *List
}

// New creates an empty, open list sized for elementsNumber elements and
// decreaseCostsNumber anticipated decrease-cost calls. elementsNumber
// caps the Ackermann table built to size superelements; together the
// two select the list's alpha-level.
func New(elementsNumber, decreaseCostsNumber int) *List {
	table := ackermann.New(elementsNumber)
	listIndex := table.Inverse(decreaseCostsNumber, elementsNumber)
	return newList(table, listIndex)
}

func newList(table *ackermann.Table, listIndex int) *List {
	return &List{
		ackermannTable:         table,
		listIndex:              listIndex,
		elements:               dll.New[*Element](),
		singletonElements:      dll.New[*Element](),
		singletonSuperelements: dll.New[*Superelement](),
		sublists:               dll.New[*List](),
	}
}

// newPeer creates an already-initialized empty list sharing the same
// Ackermann table and alpha-level as an existing one. It is used for the
// lists produced by Split.
func newPeer(table *ackermann.Table, listIndex int) *List {
	l := newList(table, listIndex)
	l.initialized = true
	return l
}

// Add appends item with initial cost to the list. Valid only before
// InitializeHead/InitializeTail.
func (l *List) Add(item any, cost float64) (*Element, error) {
	if l.initialized {
		return nil, ErrAlreadyInitialized
	}

	e := &Element{Item: item, Cost: cost}
	e.containingContainer = l.elements.Append(e)
	return e, nil
}

// AddFirst prepends item with initial cost to the list. Valid only
// before InitializeHead/InitializeTail.
func (l *List) AddFirst(item any, cost float64) (*Element, error) {
	if l.initialized {
		return nil, ErrAlreadyInitialized
	}

	e := &Element{Item: item, Cost: cost}
	e.containingContainer = l.elements.AppendFirst(e)
	return e, nil
}

func (l *List) addSuperelement(se *Superelement, prepend bool) *Element {
	e := &Element{Item: se, Cost: se.Cost}
	if prepend {
		e.containingContainer = l.elements.AppendFirst(e)
	} else {
		e.containingContainer = l.elements.Append(e)
	}
	return e
}

// InitializeHead closes the list, decomposing it by walking from the
// tail backward.
func (l *List) InitializeHead() error {
	if l.initialized {
		return ErrDoubleInitialize
	}
	l.initialized = true

	l.cost = math.Inf(1)
	for c := l.elements.Last(); c != l.elements.Sentinel(); c = c.Predecessor() {
		if c.Item.Cost < l.cost {
			l.cost = c.Item.Cost
		}
	}

	l.singletonElements, l.singletonSuperelements, l.sublists =
		l.decomposeHead(l.elements.Last(), l.elements.Sentinel())
	return nil
}

// InitializeTail closes the list, decomposing it by walking from the
// head forward.
func (l *List) InitializeTail() error {
	if l.initialized {
		return ErrDoubleInitialize
	}
	l.initialized = true

	l.cost = math.Inf(1)
	for c := l.elements.Sentinel().Successor(); c != nil; c = c.Successor() {
		if c.Item.Cost < l.cost {
			l.cost = c.Item.Cost
		}
	}

	l.singletonElements, l.singletonSuperelements, l.sublists =
		l.decomposeTail(l.elements.Sentinel().Successor(), nil)
	return nil
}

// GetCost returns the minimum cost of the list that ultimately encloses
// this one (itself, if it is not a sublist of anything).
func (l *List) GetCost() float64 {
	return l.outermostList().cost
}

// IsEmpty reports whether the list holds no elements.
func (l *List) IsEmpty() bool {
	return l.elements.IsEmpty()
}

func (l *List) outermostList() *List {
	cur := l
	for cur.containingList != nil {
		cur = cur.containingList
	}
	return cur
}

// GetListCost returns the minimum cost of the list currently enclosing
// e, following whatever chain of superelement/sublist wrapping e is
// presently part of. O(alpha(m,n)).
func (e *Element) GetListCost() float64 {
	return e.enclosingList().cost
}

func (e *Element) enclosingList() *List {
	if e.containingList != nil {
		return e.containingList
	}
	return e.superelement.enclosingList()
}

func (se *Superelement) enclosingList() *List {
	if se.containingList != nil {
		return se.containingList
	}
	return se.containingSublist.outermostList()
}

func (e *Element) isSingleton() bool {
	return e.containingList != nil || (e.superelement != nil && e.superelement.isSingleton())
}

func (se *Superelement) isSingleton() bool {
	return se.containingList != nil
}

// DecreaseCost sets e's cost to min(e.Cost, newCost), propagating the
// decrease through every enclosing superelement and sublist, and returns
// the list that now encloses e. A newCost that does not improve on the
// current cost is a no-op at every level.
func (e *Element) DecreaseCost(newCost float64) *List {
	if e.isSingleton() {
		if newCost < e.Cost {
			e.Cost = newCost
		}

		if e.superelement != nil {
			se := e.superelement
			if newCost < se.Cost {
				se.Cost = newCost
			}
			if newCost < se.containingList.cost {
				se.containingList.cost = newCost
			}
			return se.containingList
		}

		if newCost < e.containingList.cost {
			e.containingList.cost = newCost
		}
		return e.containingList
	}

	se := e.superelement
	inner := se.sublistElement.DecreaseCost(newCost)

	if newCost < se.Cost {
		se.Cost = newCost
	}
	if newCost < e.Cost {
		e.Cost = newCost
	}

	parent := inner.containingList
	if newCost < parent.cost {
		parent.cost = newCost
	}
	return parent
}
