package paving

import "github.com/google/uuid"

// CellIterator walks the enabled leaves of a GridTreeSubset in
// left-first depth-first order. Per spec §9's design note, the cursor
// is an explicit stack of frames (node, whether the cursor already
// descended into its left child), not back-pointers stored in the
// tree itself, so the tree stays a plain owning binary structure.
//
// A CellIterator borrows its subset's tree; it never owns or mutates
// it. Per spec §9's open question resolution, any structural mutation
// of the underlying GridTreeSet invalidates every outstanding
// iterator taken from it or from a subset borrowed from it — enforced
// by comparing the owning set's generation token on every Next call.
type CellIterator struct {
	subset     GridTreeSubset
	owner      *GridTreeSet
	generation generationToken
	stack      []iterFrame
	current    GridCell
	done       bool
	started    bool
}

type generationToken struct {
	valid bool
	id    uuid.UUID
}

type iterFrame struct {
	node      *BinaryTreeNode
	word      BinaryWord
	wentRight bool
}

// NewCellIterator returns an iterator over the enabled leaves of
// subset. owner is the GridTreeSet subset was borrowed from (subset
// itself if it is already a GridTreeSet); its generation is captured
// for invalidation checks.
func NewCellIterator(subset GridTreeSubset, owner *GridTreeSet) *CellIterator {
	it := &CellIterator{subset: subset, owner: owner}
	if owner != nil {
		it.generation = generationToken{valid: true, id: owner.generation}
	}
	it.stack = []iterFrame{{node: subset.root, word: BinaryWord{}}}
	return it
}

// stale reports whether the owning set has been structurally mutated
// since this iterator was created.
func (it *CellIterator) stale() bool {
	return it.generation.valid && it.owner != nil && it.owner.generation != it.generation.id
}

// Next advances the iterator to the next enabled leaf, descending
// left-first and backtracking up the stack whenever the current frame
// is exhausted. It returns false once every enabled leaf has been
// visited, or once the underlying set has been mutated.
func (it *CellIterator) Next() bool {
	if it.done || it.stale() {
		it.done = true
		return false
	}
	for len(it.stack) > 0 {
		top := &it.stack[len(it.stack)-1]
		node := top.node
		switch {
		case node.IsLeaf():
			it.stack = it.stack[:len(it.stack)-1]
			if node.IsEnabledLeaf() {
				it.current = GridCell{
					grid:   it.subset.rootCell.grid,
					height: it.subset.rootCell.height,
					word:   it.subset.rootCell.word.Concat(top.word),
				}
				it.started = true
				return true
			}
		case !top.wentRight:
			top.wentRight = true
			it.stack = append(it.stack, iterFrame{node: node.Left(), word: top.word.Push(false)})
		default:
			it.stack = it.stack[:len(it.stack)-1]
			it.stack = append(it.stack, iterFrame{node: node.Right(), word: top.word.Push(true)})
		}
	}
	it.done = true
	return false
}

// Cell returns the cell found by the most recent call to Next. Calling
// it before the first Next, or after Next has returned false, is a
// caller bug; it returns the zero GridCell.
func (it *CellIterator) Cell() GridCell {
	if !it.started || it.done {
		return GridCell{}
	}
	return it.current
}

// Iterator returns a generation-checked CellIterator over s's enabled
// leaves, invalidated by any subsequent structural mutation of s.
func (s *GridTreeSet) Iterator() *CellIterator {
	return NewCellIterator(s.GridTreeSubset, s)
}
