// Alternative implementation of PDF rendering, writing the
// content stream directly with github.com/benoitkugler/pdf.
package alt

import (
	"image/color"

	"github.com/benoitkugler/pdf/contentstream"
	"github.com/benoitkugler/pdf/model"
	"github.com/benoitkugler/svgscene/svggeom"
	"github.com/benoitkugler/svgscene/svgpdf"
	"github.com/benoitkugler/svgscene/svgscene"
)

var _ svgscene.Driver = Renderer{} // assert interface conformance

// kappa is the control point distance of the cubic approximation
// of a quarter of circle.
const kappa = 0.5522847498

type Renderer struct {
	pdf                 *contentstream.Appearance
	strokeWidth         float64
	fillOpacityStates   map[float64]*model.GraphicState
	strokeOpacityStates map[float64]*model.GraphicState
}

// NewRenderer return a renderer which will
// write to the given content stream, with lines `strokeWidth` units wide.
func NewRenderer(cs *contentstream.Appearance, strokeWidth float64) Renderer {
	return Renderer{
		pdf:                 cs,
		strokeWidth:         strokeWidth,
		fillOpacityStates:   make(map[float64]*model.GraphicState),
		strokeOpacityStates: make(map[float64]*model.GraphicState),
	}
}

// setFill selects the color and caches the opacity states
func (r Renderer) setFill(c color.RGBA) {
	r.pdf.SetColorFill(color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff})
	opacity := float64(c.A) / 255
	gs, ok := r.fillOpacityStates[opacity]
	if !ok {
		gs = &model.GraphicState{Ca: model.ObjFloat(opacity), BM: []model.Name{"Normal"}}
		r.fillOpacityStates[opacity] = gs
	}
	name := r.pdf.AddExtGState(gs)
	r.pdf.Ops(contentstream.OpSetExtGState{Dict: name})
}

func (r Renderer) setStroke(c color.RGBA) {
	r.pdf.SetColorStroke(color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff})
	opacity := float64(c.A) / 255
	gs, ok := r.strokeOpacityStates[opacity]
	if !ok {
		gs = &model.GraphicState{CA: model.ObjFloat(opacity), BM: []model.Name{"Normal"}}
		r.strokeOpacityStates[opacity] = gs
	}
	name := r.pdf.AddExtGState(gs)
	r.pdf.Ops(contentstream.OpSetExtGState{Dict: name})
}

func (r Renderer) FillEllipse(center, radius svggeom.Point, fill color.RGBA) {
	if fill.A == 0 || radius.X == 0 || radius.Y == 0 {
		return
	}
	r.setFill(fill)
	cx, cy := float64(center.X), float64(center.Y)
	rx, ry := float64(radius.X), float64(radius.Y)
	kx, ky := kappa*rx, kappa*ry
	r.pdf.Ops(
		contentstream.OpMoveTo{X: cx + rx, Y: cy},
		contentstream.OpCubicTo{X1: cx + rx, Y1: cy + ky, X2: cx + kx, Y2: cy + ry, X3: cx, Y3: cy + ry},
		contentstream.OpCubicTo{X1: cx - kx, Y1: cy + ry, X2: cx - rx, Y2: cy + ky, X3: cx - rx, Y3: cy},
		contentstream.OpCubicTo{X1: cx - rx, Y1: cy - ky, X2: cx - kx, Y2: cy - ry, X3: cx, Y3: cy - ry},
		contentstream.OpCubicTo{X1: cx + kx, Y1: cy - ry, X2: cx + rx, Y2: cy - ky, X3: cx + rx, Y3: cy},
		contentstream.OpClosePath{},
		contentstream.OpFill{},
	)
}

func (r Renderer) FillPolygon(points []svggeom.Point, fill color.RGBA) {
	if fill.A == 0 || len(points) == 0 {
		return
	}
	r.setFill(fill)
	r.pdf.Ops(contentstream.OpMoveTo{X: float64(points[0].X), Y: float64(points[0].Y)})
	for _, p := range points[1:] {
		r.pdf.Ops(contentstream.OpLineTo{X: float64(p.X), Y: float64(p.Y)})
	}
	r.pdf.Ops(contentstream.OpClosePath{}, contentstream.OpFill{})
}

func (r Renderer) StrokeLine(from, to svggeom.Point, stroke color.RGBA) {
	if stroke.A == 0 || r.strokeWidth <= 0 {
		return
	}
	r.setStroke(stroke)
	r.pdf.Ops(
		contentstream.OpSetLineWidth{W: r.strokeWidth},
		contentstream.OpSetLineCap{Style: 0}, // butt
		contentstream.OpMoveTo{X: float64(from.X), Y: float64(from.Y)},
		contentstream.OpLineTo{X: float64(to.X), Y: float64(to.Y)},
		contentstream.OpStroke{},
	)
}

// NewPage returns a page sized by the document (see Document.Size),
// with the document drawn on it.
// Document coordinates have the y axis pointing down: the page
// content is flipped accordingly.
func NewPage(doc *svgscene.Document, opts svgpdf.Options) (*model.PageObject, error) {
	w, h := doc.Size()
	if w <= 0 || h <= 0 {
		return nil, svgpdf.ErrEmptyCanvas
	}
	page := contentstream.NewAppearance(float64(w), float64(h))
	renderer := NewRenderer(&page, opts.StrokeWidth)
	page.Ops(
		contentstream.OpSave{},
		contentstream.OpConcat{Matrix: model.Matrix{1, 0, 0, -1, 0, float64(h)}},
	)
	if opts.Background.A != 0 {
		renderer.FillPolygon([]svggeom.Point{{}, {X: w}, {X: w, Y: h}, {Y: h}}, opts.Background)
	}
	doc.Draw(renderer)
	page.Ops(contentstream.OpRestore{})
	var out model.PageObject
	page.ApplyToPageObject(&out, opts.Compress)
	return &out, nil
}

// RenderDocumentFile writes the document as a one page PDF file.
func RenderDocumentFile(doc *svgscene.Document, pdfName string, opts svgpdf.Options) error {
	page, err := NewPage(doc, opts)
	if err != nil {
		return err
	}
	var out model.Document
	out.Catalog.Pages.Kids = append(out.Catalog.Pages.Kids, page)
	return out.WriteFile(pdfName, nil)
}
