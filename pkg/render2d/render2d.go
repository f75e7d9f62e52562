// Package render2d exports a 2-dimensional paving to the vector and
// raster formats the desktop shell and CLI offer: SVG (github.com/
// ajstarks/svgo), rasterized PNG (github.com/llgcode/draw2d), and DXF
// for CAD interchange (github.com/yofu/dxf). Every exporter walks the
// same GridTreeSubset.Cells() snapshot, so the three outputs always
// agree on which cells are drawn.
package render2d

import (
	"fmt"
	"image"
	"image/color"
	"io"

	svg "github.com/ajstarks/svgo"
	"github.com/chazu/paving/pkg/paving"
	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/yofu/dxf"
	"golang.org/x/image/draw"
)

// Options controls the pixel/unit scaling shared by every exporter.
type Options struct {
	// PixelsPerUnit converts a real-space coordinate into device
	// pixels (SVG/PNG) or drawing units (DXF).
	PixelsPerUnit float64
	// Stroke is the SVG/PNG outline color, as a CSS/hex string.
	Stroke string
	// Fill is the SVG/PNG fill color for enabled cells.
	Fill string
}

// DefaultOptions returns a 100-pixels-per-unit scale with a light grey
// fill and black outline, suitable for a quick preview.
func DefaultOptions() Options {
	return Options{PixelsPerUnit: 100, Stroke: "#000000", Fill: "#cccccc"}
}

func requireDimension2(subset paving.GridTreeSubset) error {
	if subset.Grid().Dimension() != 2 {
		return fmt.Errorf("render2d: subset has dimension %d, want 2", subset.Grid().Dimension())
	}
	return nil
}

// boundingExtent returns the pixel-space width and height that fit
// every cell in cells, given opts.PixelsPerUnit, and the box those
// cells occupy.
func boundingExtent(subset paving.GridTreeSubset, opts Options) (w, h int, origin paving.Box) {
	origin = subset.Cell().Box()
	for _, c := range subset.Cells() {
		origin = origin.Hull(c.Box())
	}
	w = int(origin.Axis(0).Width()*opts.PixelsPerUnit) + 1
	h = int(origin.Axis(1).Width()*opts.PixelsPerUnit) + 1
	return
}

// toPixelRect maps box into integer pixel coordinates relative to
// origin's lower corner, with the Y axis flipped so real-space "up" is
// rendered up rather than down.
func toPixelRect(box, origin paving.Box, opts Options) (x, y, w, hgt int) {
	ox, oy := origin.Axis(0).Lower, origin.Axis(1).Lower
	oh := origin.Axis(1).Width()
	bx, by := box.Axis(0).Lower-ox, box.Axis(1).Lower-oy
	bw, bh := box.Axis(0).Width(), box.Axis(1).Width()
	x = int(bx * opts.PixelsPerUnit)
	w = int(bw*opts.PixelsPerUnit) + 1
	hgt = int(bh*opts.PixelsPerUnit) + 1
	y = int((oh-by-bh) * opts.PixelsPerUnit)
	return
}

// WriteSVG renders every enabled cell of subset as an SVG rectangle.
func WriteSVG(w io.Writer, subset paving.GridTreeSubset, opts Options) error {
	if err := requireDimension2(subset); err != nil {
		return err
	}
	width, height, origin := boundingExtent(subset, opts)
	canvas := svg.New(w)
	canvas.Start(width, height)
	style := fmt.Sprintf("fill:%s;stroke:%s", opts.Fill, opts.Stroke)
	for _, cell := range subset.Cells() {
		x, y, cw, ch := toPixelRect(cell.Box(), origin, opts)
		canvas.Rect(x, y, cw, ch, style)
	}
	canvas.End()
	return nil
}

// RenderPNG rasterizes subset into an RGBA image via draw2d.
func RenderPNG(subset paving.GridTreeSubset, opts Options) (*image.RGBA, error) {
	if err := requireDimension2(subset); err != nil {
		return nil, err
	}
	width, height, origin := boundingExtent(subset, opts)
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	gc := draw2dimg.NewGraphicContext(img)

	fillColor := parseHexColor(opts.Fill)
	strokeColor := parseHexColor(opts.Stroke)

	for _, cell := range subset.Cells() {
		x, y, cw, ch := toPixelRect(cell.Box(), origin, opts)
		gc.BeginPath()
		gc.MoveTo(float64(x), float64(y))
		gc.LineTo(float64(x+cw), float64(y))
		gc.LineTo(float64(x+cw), float64(y+ch))
		gc.LineTo(float64(x), float64(y+ch))
		gc.Close()
		gc.SetFillColor(fillColor)
		gc.SetStrokeColor(strokeColor)
		gc.FillStroke()
	}
	return img, nil
}

// SavePNG renders subset and writes it as a PNG to path.
func SavePNG(path string, subset paving.GridTreeSubset, opts Options) error {
	img, err := RenderPNG(subset, opts)
	if err != nil {
		return err
	}
	return draw2dimg.SaveToPngFile(path, img)
}

// SavePNGScaled renders subset, then resamples it to exactly
// width x height pixels before saving — useful when the frontend asks
// for a fixed-size thumbnail rather than whatever size boundingExtent
// computes.
func SavePNGScaled(path string, subset paving.GridTreeSubset, opts Options, width, height int) error {
	img, err := RenderPNG(subset, opts)
	if err != nil {
		return err
	}
	scaled := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), img, img.Bounds(), draw.Over, nil)
	return draw2dimg.SaveToPngFile(path, scaled)
}

// parseHexColor parses a "#rrggbb" string into an opaque color.RGBA,
// falling back to black on any malformed input.
func parseHexColor(s string) color.RGBA {
	var r, g, b uint8
	if len(s) == 7 && s[0] == '#' {
		fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// WriteDXF exports every enabled cell of subset as four line segments
// tracing its outline, for CAD interchange.
func WriteDXF(path string, subset paving.GridTreeSubset) error {
	if err := requireDimension2(subset); err != nil {
		return err
	}
	d := dxf.NewDrawing()
	for _, cell := range subset.Cells() {
		box := cell.Box()
		x0, y0 := box.Axis(0).Lower, box.Axis(1).Lower
		x1, y1 := box.Axis(0).Upper, box.Axis(1).Upper
		d.Line(x0, y0, 0, x1, y0, 0)
		d.Line(x1, y0, 0, x1, y1, 0)
		d.Line(x1, y1, 0, x0, y1, 0)
		d.Line(x0, y1, 0, x0, y0, 0)
	}
	return d.SaveAs(path)
}
