// Implements a PDF backend to render scenes,
// by wrapping github.com/jung-kurt/gofpdf.
package svgpdf

import (
	"errors"
	"image/color"
	"io"

	"github.com/benoitkugler/svgscene/svggeom"
	"github.com/benoitkugler/svgscene/svgscene"
	"github.com/jung-kurt/gofpdf"
)

var _ svgscene.Driver = Renderer{} // assert interface conformance

// ErrEmptyCanvas is returned when the document has no size and
// nothing to draw.
var ErrEmptyCanvas = errors.New("empty canvas")

// Renderer writes shapes to the current page of a PDF document.
// One document unit is mapped to one PDF unit.
type Renderer struct {
	pdf         *gofpdf.Fpdf
	strokeWidth float64
}

// NewRenderer return a renderer which will
// write to the given `pdf`, with lines `strokeWidth` units wide.
func NewRenderer(pdf *gofpdf.Fpdf, strokeWidth float64) Renderer {
	return Renderer{pdf: pdf, strokeWidth: strokeWidth}
}

func (rd Renderer) setFill(c color.RGBA) {
	rd.pdf.SetFillColor(int(c.R), int(c.G), int(c.B))
	rd.pdf.SetAlpha(float64(c.A)/255, "Normal")
}

func (rd Renderer) FillEllipse(center, radius svggeom.Point, fill color.RGBA) {
	if fill.A == 0 {
		return
	}
	rd.setFill(fill)
	rd.pdf.Ellipse(float64(center.X), float64(center.Y), float64(radius.X), float64(radius.Y), 0, "F")
}

func (rd Renderer) FillPolygon(points []svggeom.Point, fill color.RGBA) {
	if fill.A == 0 || len(points) == 0 {
		return
	}
	rd.setFill(fill)
	pts := make([]gofpdf.PointType, len(points))
	for i, p := range points {
		pts[i] = gofpdf.PointType{X: float64(p.X), Y: float64(p.Y)}
	}
	rd.pdf.Polygon(pts, "F")
}

func (rd Renderer) StrokeLine(from, to svggeom.Point, stroke color.RGBA) {
	if stroke.A == 0 || rd.strokeWidth <= 0 {
		return
	}
	rd.pdf.SetDrawColor(int(stroke.R), int(stroke.G), int(stroke.B))
	rd.pdf.SetAlpha(float64(stroke.A)/255, "Normal")
	rd.pdf.SetLineWidth(rd.strokeWidth)
	rd.pdf.SetLineCapStyle("butt")
	rd.pdf.Line(float64(from.X), float64(from.Y), float64(to.X), float64(to.Y))
}

// Options tunes the PDF output.
type Options struct {
	StrokeWidth float64    // 0 disables strokes
	Background  color.RGBA // painted before the shapes; zero means none
	Compress    bool       // compress the page content streams
}

// NewDocumentPDF returns a one page PDF sized by the document
// (see Document.Size), with the document drawn on it.
func NewDocumentPDF(doc *svgscene.Document, opts Options) (*gofpdf.Fpdf, error) {
	w, h := doc.Size()
	if w <= 0 || h <= 0 {
		return nil, ErrEmptyCanvas
	}
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: float64(w), Ht: float64(h)},
	})
	pdf.SetCompression(opts.Compress)
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	rd := NewRenderer(pdf, opts.StrokeWidth)
	if opts.Background.A != 0 {
		rd.FillPolygon([]svggeom.Point{{}, {X: w}, {X: w, Y: h}, {Y: h}}, opts.Background)
	}
	doc.Draw(rd)
	return pdf, pdf.Error()
}

// RenderDocument writes the document as PDF to `out`.
func RenderDocument(doc *svgscene.Document, out io.Writer, opts Options) error {
	pdf, err := NewDocumentPDF(doc, opts)
	if err != nil {
		return err
	}
	return pdf.Output(out)
}

// RenderToPDF reads the document from `stream` and writes it as
// PDF to the file `outFile`, with default options.
func RenderToPDF(stream io.Reader, errMode svgscene.ErrorMode, outFile string) error {
	doc, err := svgscene.ReadDocumentStream(stream, errMode)
	if err != nil {
		return err
	}
	pdf, err := NewDocumentPDF(doc, Options{StrokeWidth: 1, Compress: true})
	if err != nil {
		return err
	}
	return pdf.OutputFileAndClose(outFile)
}
