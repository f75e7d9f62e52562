package paving

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
)

// Export and Import implement a bespoke, non-portable persistence
// format: dimension, grid origin and lengths, primary-cell height, the
// root word (count, then one byte per bit), the pre-order tree-shape
// bits (count, then one byte per bit), and the leaf enabledness values
// (count, then one byte per leaf). Shape bits and leaf bytes are two
// separate sequences, not interleaved node by node. There is no magic
// number or version field —
// a reader must already know it is reading a paving stream. Unlike the
// original, Import/Export take io.Reader/io.Writer rather than a
// filename, and Import never deletes anything (spec §9 REDESIGN note).
func Export(s GridTreeSubset, w io.Writer) error {
	grid := s.rootCell.grid
	d := grid.Dimension()
	if err := binary.Write(w, binary.BigEndian, uint32(d)); err != nil {
		return fmt.Errorf("%w: writing dimension: %v", ErrIO, err)
	}
	for _, v := range grid.Origin() {
		if err := binary.Write(w, binary.BigEndian, v); err != nil {
			return fmt.Errorf("%w: writing origin: %v", ErrIO, err)
		}
	}
	for _, v := range grid.Lengths() {
		if err := binary.Write(w, binary.BigEndian, v); err != nil {
			return fmt.Errorf("%w: writing lengths: %v", ErrIO, err)
		}
	}
	if err := binary.Write(w, binary.BigEndian, int64(s.rootCell.height)); err != nil {
		return fmt.Errorf("%w: writing height: %v", ErrIO, err)
	}
	rootWord := s.rootCell.word
	if err := binary.Write(w, binary.BigEndian, uint32(len(rootWord))); err != nil {
		return fmt.Errorf("%w: writing root word length: %v", ErrIO, err)
	}
	if err := writeBits(w, rootWord); err != nil {
		return err
	}

	var treeBits BinaryWord
	var leafBits []Tribool
	s.root.TreeToWords(&treeBits, &leafBits)

	if err := binary.Write(w, binary.BigEndian, uint32(len(treeBits))); err != nil {
		return fmt.Errorf("%w: writing tree bit count: %v", ErrIO, err)
	}
	if err := writeBits(w, treeBits); err != nil {
		return err
	}
	if err := binary.Write(w, binary.BigEndian, uint32(len(leafBits))); err != nil {
		return fmt.Errorf("%w: writing leaf count: %v", ErrIO, err)
	}
	for _, lb := range leafBits {
		if err := binary.Write(w, binary.BigEndian, triboolByte(lb)); err != nil {
			return fmt.Errorf("%w: writing leaf byte: %v", ErrIO, err)
		}
	}
	return nil
}

// Import reads a paving written by Export and returns it as a fresh
// GridTreeSet on the grid recorded in the stream; it takes no grid
// argument of its own.
func Import(r io.Reader) (*GridTreeSet, error) {
	var d uint32
	if err := binary.Read(r, binary.BigEndian, &d); err != nil {
		return nil, fmt.Errorf("%w: reading dimension: %v", ErrIO, err)
	}
	origin := make([]float64, d)
	for i := range origin {
		if err := binary.Read(r, binary.BigEndian, &origin[i]); err != nil {
			return nil, fmt.Errorf("%w: reading origin: %v", ErrIO, err)
		}
	}
	lengths := make([]float64, d)
	for i := range lengths {
		if err := binary.Read(r, binary.BigEndian, &lengths[i]); err != nil {
			return nil, fmt.Errorf("%w: reading lengths: %v", ErrIO, err)
		}
	}
	grid := NewGrid(origin, lengths)

	var height int64
	if err := binary.Read(r, binary.BigEndian, &height); err != nil {
		return nil, fmt.Errorf("%w: reading height: %v", ErrIO, err)
	}

	rootWord, err := readBitsCounted(r)
	if err != nil {
		return nil, err
	}

	treeBits, err := readBitsCounted(r)
	if err != nil {
		return nil, err
	}

	var leafCount uint32
	if err := binary.Read(r, binary.BigEndian, &leafCount); err != nil {
		return nil, fmt.Errorf("%w: reading leaf count: %v", ErrIO, err)
	}
	leafBits := make([]Tribool, leafCount)
	for i := range leafBits {
		var b byte
		if err := binary.Read(r, binary.BigEndian, &b); err != nil {
			return nil, fmt.Errorf("%w: reading leaf byte: %v", ErrIO, err)
		}
		leafBits[i] = byteTribool(b)
	}

	root, treeBitsTail, leafBitsTail := WordsToTree(treeBits, leafBits)
	if len(treeBitsTail) != 0 || len(leafBitsTail) != 0 {
		return nil, invalidStatef("tree stream has %d unconsumed tree bits and %d unconsumed leaf bits", len(treeBitsTail), len(leafBitsTail))
	}

	return &GridTreeSet{
		GridTreeSubset: GridTreeSubset{
			rootCell: GridCell{grid: grid, height: int(height), word: rootWord},
			root:     root,
		},
		generation: uuid.New(),
	}, nil
}

func writeBits(w io.Writer, bits BinaryWord) error {
	for _, b := range bits {
		var v byte
		if b {
			v = 1
		}
		if err := binary.Write(w, binary.BigEndian, v); err != nil {
			return fmt.Errorf("%w: writing bit: %v", ErrIO, err)
		}
	}
	return nil
}

func readBitsCounted(r io.Reader) (BinaryWord, error) {
	var n uint32
	if err := binary.Read(r, binary.BigEndian, &n); err != nil {
		return nil, fmt.Errorf("%w: reading bit count: %v", ErrIO, err)
	}
	out := make(BinaryWord, n)
	for i := range out {
		var v byte
		if err := binary.Read(r, binary.BigEndian, &v); err != nil {
			return nil, fmt.Errorf("%w: reading bit: %v", ErrIO, err)
		}
		out[i] = v != 0
	}
	return out, nil
}

func triboolByte(t Tribool) byte {
	switch t {
	case DefinitelyTrue:
		return 2
	case Possibly:
		return 1
	default:
		return 0
	}
}

func byteTribool(b byte) Tribool {
	switch b {
	case 2:
		return DefinitelyTrue
	case 1:
		return Possibly
	default:
		return DefinitelyFalse
	}
}

// ExportFile and ImportFile are thin file-handle convenience wrappers
// around Export/Import. Unlike the original, ImportFile never removes
// the file it reads.
func ExportFile(s GridTreeSubset, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	defer f.Close()
	return Export(s, f)
}

func ImportFile(path string) (*GridTreeSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	defer f.Close()
	return Import(f)
}
