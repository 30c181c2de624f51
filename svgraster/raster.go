// Implements a raster backend to render scenes,
// by wrapping rasterx.
package svgraster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"

	"github.com/benoitkugler/svgscene/svggeom"
	"github.com/benoitkugler/svgscene/svgscene"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

var _ svgscene.Driver = (*Renderer)(nil) // assert interface conformance

var (
	// ErrEmptyCanvas is returned when the document has no size and
	// nothing to draw.
	ErrEmptyCanvas = errors.New("empty canvas")

	// ErrCanvasTooLarge is returned when the canvas exceeds Options.MaxPixels.
	ErrCanvasTooLarge = errors.New("canvas too large")
)

// Renderer paints shapes with a rasterx scanner.
type Renderer struct {
	dasher *rasterx.Dasher // strokes lines
	filler *rasterx.Filler // fills ellipses and polygons

	strokeWidth fixed.Int26_6
}

// NewRenderer returns a renderer drawing with `scanner`, with
// lines `strokeWidth` pixels wide.
// If scanner is nil, a default scanner rasterx.ScannerGV targeting
// `img` is used.
func NewRenderer(img draw.Image, scanner rasterx.Scanner, strokeWidth float64) *Renderer {
	b := img.Bounds()
	if scanner == nil {
		scanner = rasterx.NewScannerGV(b.Dx(), b.Dy(), img, b)
	}
	return &Renderer{
		dasher:      rasterx.NewDasher(b.Dx(), b.Dy(), scanner),
		filler:      rasterx.NewFiller(b.Dx(), b.Dy(), scanner),
		strokeWidth: fixed.Int26_6(strokeWidth * 64),
	}
}

func toFixed(p svggeom.Point) fixed.Point26_6 {
	return rasterx.ToFixedP(float64(p.X), float64(p.Y))
}

func (rd *Renderer) FillEllipse(center, radius svggeom.Point, fill color.RGBA) {
	if fill.A == 0 || radius.X == 0 || radius.Y == 0 {
		return
	}
	rd.filler.Clear()
	rasterx.AddEllipse(float64(center.X), float64(center.Y), float64(radius.X), float64(radius.Y), 0, rd.filler)
	rd.filler.SetColor(fill)
	rd.filler.Draw()
}

func (rd *Renderer) FillPolygon(points []svggeom.Point, fill color.RGBA) {
	if fill.A == 0 || len(points) == 0 {
		return
	}
	rd.filler.Clear()
	rd.filler.Start(toFixed(points[0]))
	for _, p := range points[1:] {
		rd.filler.Line(toFixed(p))
	}
	rd.filler.Stop(true)
	rd.filler.SetColor(fill)
	rd.filler.Draw()
}

func (rd *Renderer) StrokeLine(from, to svggeom.Point, stroke color.RGBA) {
	if stroke.A == 0 || rd.strokeWidth <= 0 {
		return
	}
	rd.dasher.Clear()
	rd.dasher.SetStroke(rd.strokeWidth, 4*64, rasterx.ButtCap, rasterx.ButtCap, rasterx.FlatGap, rasterx.Bevel, nil, 0)
	rd.dasher.Start(toFixed(from))
	rd.dasher.Line(toFixed(to))
	rd.dasher.Stop(false)
	rd.dasher.SetColor(stroke)
	rd.dasher.Draw()
}

// Options tunes the rasterization.
type Options struct {
	StrokeWidth float64    // in pixels; 0 disables strokes
	Background  color.RGBA // painted before the shapes; zero means transparent
	MaxPixels   int64      // upper bound on width * height; 0 means unbounded
}

// DefaultOptions draws 1 pixel wide lines on a transparent, unbounded canvas.
var DefaultOptions = Options{StrokeWidth: 1}

// RasterDocument renders the document into a new image, sized
// by the document (see Document.Size).
func RasterDocument(doc *svgscene.Document, opts Options) (*image.RGBA, error) {
	w, h := doc.Size()
	if w <= 0 || h <= 0 {
		return nil, ErrEmptyCanvas
	}
	if opts.MaxPixels > 0 && int64(w)*int64(h) > opts.MaxPixels {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrCanvasTooLarge, w, h, opts.MaxPixels)
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if opts.Background.A != 0 {
		draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)
	}
	doc.Draw(NewRenderer(img, nil, opts.StrokeWidth))
	return img, nil
}

// RasterToImage reads the document from `stream` and renders it
// with DefaultOptions.
func RasterToImage(stream io.Reader, errMode svgscene.ErrorMode) (*image.RGBA, error) {
	doc, err := svgscene.ReadDocumentStream(stream, errMode)
	if err != nil {
		return nil, err
	}
	img, err := RasterDocument(doc, DefaultOptions)
	if err != nil {
		return nil, fmt.Errorf("can't raster document: %w", err)
	}
	return img, nil
}
