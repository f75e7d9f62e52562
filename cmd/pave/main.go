// Command pave drives the approximation engine from the command line:
// approximate a box or a scripted predicate to a chosen accuracy, then
// export the result as a persisted paving stream, an SVG sketch, or a
// DXF file. It exists to exercise the library end to end the same way
// the Wails frontend does, without a GUI in the loop.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/chazu/paving/pkg/oracle/script"
	"github.com/chazu/paving/pkg/paving"
	"github.com/chazu/paving/pkg/render2d"
)

func main() {
	var (
		boxFlag     = flag.String("box", "", "comma-separated lo,hi pairs per axis, e.g. 0,1,0,1")
		predicate   = flag.String("predicate", "", "zygomys expression deciding membership from xlo/xhi/ylo/yhi/...")
		accuracy    = flag.Int("n", 4, "subdivisions per unit cell")
		exportPath  = flag.String("export", "", "write the resulting paving to this file")
		svgPath     = flag.String("svg", "", "write an SVG sketch of the resulting paving to this file")
		dxfPath     = flag.String("dxf", "", "write a DXF export of the resulting paving to this file")
	)
	flag.Parse()

	if *boxFlag == "" {
		log.Fatal("pave: -box is required (e.g. -box 0,1,0,1)")
	}
	box, err := parseBox(*boxFlag)
	if err != nil {
		log.Fatalf("pave: %v", err)
	}

	grid := paving.UnitGrid(box.Dimension())
	s := paving.NewGridTreeSet(grid)

	if *predicate != "" {
		checker := script.New(*predicate)
		if err := approximateWithChecker(s, box, checker, *accuracy); err != nil {
			log.Fatalf("pave: %v", err)
		}
	} else {
		if err := paving.AdjoinOverApproximation(s, box, *accuracy); err != nil {
			log.Fatalf("pave: %v", err)
		}
	}

	log.Printf("pave: approximated %d enabled cells, measure %.6g", s.Size(), s.Measure())

	if *exportPath != "" {
		if err := paving.ExportFile(s.GridTreeSubset, *exportPath); err != nil {
			log.Fatalf("pave: exporting: %v", err)
		}
	}
	if *svgPath != "" {
		if err := writeSVG(*svgPath, s); err != nil {
			log.Fatalf("pave: writing svg: %v", err)
		}
	}
	if *dxfPath != "" {
		if err := render2d.WriteDXF(*dxfPath, s.GridTreeSubset); err != nil {
			log.Fatalf("pave: writing dxf: %v", err)
		}
	}
}

// checkerSet adapts a paving.SetChecker into the CompactSet shape
// AdjoinOuterApproximation expects, bounding it to bounds.
type checkerSet struct {
	checker paving.SetChecker
	bounds  paving.Box
}

func (c checkerSet) BoundingBox() paving.Box { return c.bounds }
func (c checkerSet) Disjoint(box paving.Box) paving.Tribool {
	return paving.Not(c.checker.Check(box))
}

func approximateWithChecker(s *paving.GridTreeSet, bounds paving.Box, checker paving.SetChecker, n int) error {
	return paving.AdjoinOuterApproximation(s, checkerSet{checker: checker, bounds: bounds}, n)
}

func writeSVG(path string, s *paving.GridTreeSet) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return render2d.WriteSVG(f, s.GridTreeSubset, render2d.DefaultOptions())
}

// parseBox parses "lo,hi,lo,hi,..." into a Box.
func parseBox(s string) (paving.Box, error) {
	fields := strings.Split(s, ",")
	if len(fields)%2 != 0 {
		return paving.Box{}, fmt.Errorf("box must have an even number of comma-separated values, got %d", len(fields))
	}
	ivs := make([]paving.Interval, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		var lo, hi float64
		if _, err := fmt.Sscanf(fields[i], "%g", &lo); err != nil {
			return paving.Box{}, fmt.Errorf("parsing lower bound %q: %w", fields[i], err)
		}
		if _, err := fmt.Sscanf(fields[i+1], "%g", &hi); err != nil {
			return paving.Box{}, fmt.Errorf("parsing upper bound %q: %w", fields[i+1], err)
		}
		ivs = append(ivs, paving.Interval{Lower: lo, Upper: hi})
	}
	return paving.NewBox(ivs...), nil
}
