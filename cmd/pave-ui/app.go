package main

import (
	"bytes"
	"context"
	"log"

	"github.com/chazu/paving/pkg/oracle/script"
	"github.com/chazu/paving/pkg/paving"
	"github.com/chazu/paving/pkg/render2d"
)

// CellData is the JSON-serializable form of one enabled cell's box,
// sent to the frontend for sketching.
type CellData struct {
	Lower []float64 `json:"lower"`
	Upper []float64 `json:"upper"`
}

// ApproximateResult is the full result returned to the frontend.
type ApproximateResult struct {
	Cells   []CellData `json:"cells"`
	Measure float64    `json:"measure"`
	Error   string     `json:"error,omitempty"`
}

// App is the Wails backend. It exposes methods to the frontend via bindings.
type App struct {
	ctx     context.Context
	current *paving.GridTreeSet
}

// NewApp creates a new App with no paving loaded yet.
func NewApp() *App {
	return &App{}
}

// startup is called by Wails on app startup. The context is saved so
// we can call Wails runtime methods later if needed.
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
}

// Approximate takes a zygomys predicate and the bounding box to
// approximate it within, runs the outer-approximation engine, and
// returns the resulting cells for the frontend to sketch.
// This is the primary binding called by the frontend editor.
func (a *App) Approximate(predicate string, lower, upper []float64, accuracy int) ApproximateResult {
	if len(lower) != len(upper) {
		return ApproximateResult{Error: "lower and upper must have the same length"}
	}
	ivs := make([]paving.Interval, len(lower))
	for i := range lower {
		ivs[i] = paving.Interval{Lower: lower[i], Upper: upper[i]}
	}
	bounds := paving.NewBox(ivs...)

	grid := paving.UnitGrid(bounds.Dimension())
	s := paving.NewGridTreeSet(grid)

	checker := script.New(predicate)
	set := boundedChecker{checker: checker, bounds: bounds}
	if err := paving.AdjoinOuterApproximation(s, set, accuracy); err != nil {
		log.Printf("Approximate: %v", err)
		return ApproximateResult{Error: err.Error()}
	}

	a.current = s
	return ApproximateResult{Cells: toCellData(s.Cells()), Measure: s.Measure()}
}

// ExportSVG renders the most recently approximated paving as an SVG
// document and returns it as a string for the frontend to download.
func (a *App) ExportSVG() (string, error) {
	if a.current == nil {
		return "", nil
	}
	var buf bytes.Buffer
	if err := render2d.WriteSVG(&buf, a.current.GridTreeSubset, render2d.DefaultOptions()); err != nil {
		return "", err
	}
	return buf.String(), nil
}

type boundedChecker struct {
	checker paving.SetChecker
	bounds  paving.Box
}

func (b boundedChecker) BoundingBox() paving.Box { return b.bounds }
func (b boundedChecker) Disjoint(box paving.Box) paving.Tribool {
	return paving.Not(b.checker.Check(box))
}

func toCellData(cells []paving.GridCell) []CellData {
	out := make([]CellData, 0, len(cells))
	for _, c := range cells {
		box := c.Box()
		lower := make([]float64, box.Dimension())
		upper := make([]float64, box.Dimension())
		for i := 0; i < box.Dimension(); i++ {
			lower[i] = box.Axis(i).Lower
			upper[i] = box.Axis(i).Upper
		}
		out = append(out, CellData{Lower: lower, Upper: upper})
	}
	return out
}
