package render

import (
	"bufio"
	"fmt"
	"image/color"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/ironsheep/image-mosaic/internal/mosaic"
)

// SVGCanvas is a vector Canvas that writes one <rect> element per fill.
//
// Callers must call Start before drawing and End afterwards.
type SVGCanvas struct {
	doc    *svg.SVG
	fill   string
	stroke bool
}

// NewSVGCanvas returns a canvas writing SVG markup to w.
func NewSVGCanvas(w io.Writer) *SVGCanvas {
	return &SVGCanvas{doc: svg.New(w), fill: "fill:rgb(0,0,0)", stroke: true}
}

// Start writes the document header for a width×height drawing.
func (s *SVGCanvas) Start(width, height int) {
	s.doc.Start(width, height, `shape-rendering="crispEdges"`)
}

// End closes the document.
func (s *SVGCanvas) End() {
	s.doc.End()
}

// SetFillColor implements Canvas.
func (s *SVGCanvas) SetFillColor(c color.Color) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 255 {
		s.fill = fmt.Sprintf("fill:rgb(%d,%d,%d)", n.R, n.G, n.B)
		return
	}
	s.fill = fmt.Sprintf("fill:rgb(%d,%d,%d);fill-opacity:%.3f", n.R, n.G, n.B, float64(n.A)/255.0)
}

// NoStroke implements Canvas.
func (s *SVGCanvas) NoStroke() {
	s.stroke = false
}

// FillRect implements Canvas.
func (s *SVGCanvas) FillRect(x, y, w, h int) {
	style := s.fill
	if !s.stroke {
		style += ";stroke:none"
	}
	s.doc.Rect(x, y, w, h, style)
}

// WriteSVG writes m as a standalone SVG document to w.
//
// svgo discards write errors, so output goes through a bufio.Writer, which
// keeps the first one and reports it from Flush.
func WriteSVG(w io.Writer, m *mosaic.Mosaic, background color.Color) error {
	bw := bufio.NewWriter(w)
	sc := NewSVGCanvas(bw)
	sc.Start(m.Width(), m.Height())
	Draw(sc, background, m)
	sc.End()
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write svg: %w", err)
	}
	return nil
}
