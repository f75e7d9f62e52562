package paving

import (
	"log"

	"github.com/google/uuid"
)

// GridTreeSet is a GridTreeSubset that owns its tree independently —
// its root cell's word is always empty. It is the only type that can
// be structurally mutated; a GridTreeSubset borrowed from it is
// invalidated (per its iterator's generation check) by every mutation
// below.
type GridTreeSet struct {
	GridTreeSubset
	generation uuid.UUID
}

// NewGridTreeSet returns an empty paving at height 0 on grid.
func NewGridTreeSet(grid Grid) *GridTreeSet {
	return &GridTreeSet{
		GridTreeSubset: GridTreeSubset{
			rootCell: GridCell{grid: grid, height: 0, word: BinaryWord{}},
			root:     NewDisabledLeaf(),
		},
		generation: uuid.New(),
	}
}

// Generation returns the current mutation token, used by CellIterator
// to detect invalidation.
func (s *GridTreeSet) Generation() uuid.UUID { return s.generation }

func (s *GridTreeSet) bumpGeneration() { s.generation = uuid.New() }

// Clone returns a deep, independent copy of s.
func (s *GridTreeSet) Clone() *GridTreeSet {
	return &GridTreeSet{
		GridTreeSubset: GridTreeSubset{rootCell: s.rootCell, root: s.root.Clone()},
		generation:     uuid.New(),
	}
}

// Clear replaces s with an empty tree at height 0 on the same grid.
func (s *GridTreeSet) Clear() {
	s.rootCell = GridCell{grid: s.rootCell.grid, height: 0, word: BinaryWord{}}
	s.root = NewDisabledLeaf()
	s.bumpGeneration()
}

// UpToPrimaryCell re-roots s to a taller primary cell, prepending the
// deterministic path of length d*(toHeight-height). It is a no-op if
// toHeight is not taller than the current height. Per spec §8's
// "re-rooting preserves denotation" invariant, the denoted real-space
// set is unchanged.
func (s *GridTreeSet) UpToPrimaryCell(toHeight int) {
	if toHeight <= s.rootCell.height {
		return
	}
	d := s.rootCell.grid.Dimension()
	path := PrimaryCellPath(d, toHeight, s.rootCell.height)
	s.root = PrependTree(path, s.root)
	s.rootCell = GridCell{grid: s.rootCell.grid, height: toHeight, word: BinaryWord{}}
	s.bumpGeneration()
}

// alignWithCell descends from s's root along the primary-cell path to
// otherHeight, splitting leaves as it goes, early-stopping (and
// reporting hasStopped) if it meets an enabled leaf when stopOnEnabled
// or a disabled leaf when stopOnDisabled. If s is shorter than
// otherHeight it re-roots first via UpToPrimaryCell.
func (s *GridTreeSet) alignWithCell(otherHeight int, stopOnEnabled, stopOnDisabled bool) (node *BinaryTreeNode, hasStopped bool) {
	if otherHeight > s.rootCell.height {
		s.UpToPrimaryCell(otherHeight)
		return s.root, false
	}
	if otherHeight == s.rootCell.height {
		return s.root, false
	}
	d := s.rootCell.grid.Dimension()
	path := PrimaryCellPath(d, s.rootCell.height, otherHeight)
	cur := s.root
	for _, bit := range path {
		if stopOnEnabled && cur.IsEnabledLeaf() {
			return cur, true
		}
		if stopOnDisabled && cur.IsDisabledLeaf() {
			return cur, true
		}
		if cur.IsLeaf() {
			cur.Split()
		}
		if bit {
			cur = cur.Right()
		} else {
			cur = cur.Left()
		}
	}
	return cur, false
}

// Adjoin adds the single cell to s.
func (s *GridTreeSet) Adjoin(cell GridCell) {
	node, stopped := s.alignWithCell(cell.height, true, false)
	if stopped {
		return
	}
	node.AddEnabledPath(cell.word)
	s.bumpGeneration()
}

// AdjoinSubset adds every enabled leaf of other to s.
func (s *GridTreeSet) AdjoinSubset(other GridTreeSubset) {
	node, stopped := s.alignWithCell(other.rootCell.height, true, false)
	if stopped {
		return
	}
	node.AddEnabledSubtree(other.rootCell.word, other.root)
	s.bumpGeneration()
}

// AdjoinOpenCell adds the base cells covered by an open cell's closure to s.
func (s *GridTreeSet) AdjoinOpenCell(oc GridOpenCell) {
	closure := oc.Closure()
	s.AdjoinSubset(closure.GridTreeSubset)
}

// RemoveCell removes the single cell from s.
func (s *GridTreeSet) RemoveCell(cell GridCell) {
	node, stopped := s.alignWithCell(cell.height, false, true)
	if stopped {
		return
	}
	cur := node
	word := cell.word
	i := 0
	for i < len(word) {
		if cur.IsLeaf() {
			break
		}
		if word[i] {
			cur = cur.Right()
		} else {
			cur = cur.Left()
		}
		i++
	}
	if i == len(word) {
		if cur.IsLeaf() {
			cur.SetDisabled()
		} else {
			cur.MakeLeaf(DefinitelyFalse)
		}
		s.bumpGeneration()
		return
	}
	if cur.IsDisabledLeaf() {
		return
	}
	for i < len(word) {
		cur.Split()
		if word[i] {
			cur = cur.Right()
		} else {
			cur = cur.Left()
		}
		i++
	}
	cur.SetDisabled()
	s.bumpGeneration()
}

// restrictOrRemoveToLower locates the node in s's tree corresponding
// to other's root cell and applies op (RestrictTree or RemoveTree)
// between it and other's borrowed tree root. s must already be at
// least as tall as other.
func (s *GridTreeSet) restrictOrRemoveToLower(other GridTreeSubset, op func(a, b *BinaryTreeNode)) {
	d := s.rootCell.grid.Dimension()
	path := PrimaryCellPath(d, s.rootCell.height, other.rootCell.height).Concat(other.rootCell.word)
	cur := s.root
	for _, bit := range path {
		if cur.IsDisabledLeaf() {
			return
		}
		if cur.IsEnabledLeaf() {
			cur.Split()
		}
		if bit {
			cur = cur.Right()
		} else {
			cur = cur.Left()
		}
	}
	op(cur, other.root)
	s.bumpGeneration()
}

// RestrictSubset mutates s to s ∩ other.
func (s *GridTreeSet) RestrictSubset(other GridTreeSubset) {
	if s.rootCell.height < other.rootCell.height {
		s.UpToPrimaryCell(other.rootCell.height)
	}
	s.restrictOrRemoveToLower(other, RestrictTree)
}

// RemoveSubset mutates s to s \ other.
func (s *GridTreeSet) RemoveSubset(other GridTreeSubset) {
	if s.rootCell.height < other.rootCell.height {
		s.UpToPrimaryCell(other.rootCell.height)
	}
	s.restrictOrRemoveToLower(other, RemoveTree)
}

// RestrictToHeight disables every subtree that does not lie within the
// primary cell at height, then re-roots s down to that height.
func (s *GridTreeSet) RestrictToHeight(height int) {
	if s.rootCell.height <= height {
		return
	}
	d := s.rootCell.grid.Dimension()
	path := PrimaryCellPath(d, s.rootCell.height, height)
	log.Printf("paving: restricting paving from primary-cell height %d to %d", s.rootCell.height, height)
	cur := s.root
	for _, bit := range path {
		if cur.IsDisabledLeaf() {
			break
		}
		if cur.IsEnabledLeaf() {
			cur.Split()
		}
		if bit {
			cur.Left().MakeLeaf(DefinitelyFalse)
			cur = cur.Right()
		} else {
			cur.Right().MakeLeaf(DefinitelyFalse)
			cur = cur.Left()
		}
	}
	s.root = cur
	s.rootCell = GridCell{grid: s.rootCell.grid, height: height, word: BinaryWord{}}
	s.bumpGeneration()
}

// MinceToTreeDepth delegates to BinaryTreeNode.Mince.
func (s *GridTreeSet) MinceToTreeDepth(k int) {
	s.root.Mince(k)
	s.bumpGeneration()
}

// Recombine delegates to BinaryTreeNode.Recombine.
func (s *GridTreeSet) Recombine() {
	s.root.Recombine()
	s.bumpGeneration()
}
