// Package svgscene builds an in-memory scene graph from
// declarative vector documents (a subset of SVG):
// ellipses, circles, rectangles, polygons, polylines and lines,
// nested in groups and reused through `use` elements.
//
// Transforms are resolved once, while building: the resulting
// shapes hold their final geometry and can be handed to any Driver.
// See for example svgscene/svgraster or svgscene/svgpdf .
package svgscene

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Document holds the scene graph built from a document.
// See the `Draw` method to use it.
type Document struct {
	Width, Height int     // top level width and height attributes
	Shapes        []Shape // top level shapes, in document order

	ids map[string]Shape
}

// Lookup returns the shape registered under `id`.
// The shape is owned by the document and must be treated as read-only.
func (doc *Document) Lookup(id string) (Shape, bool) {
	s, ok := doc.ids[id]
	return s, ok
}

// ReadDocumentStream reads the document from the given io.Reader.
// errMode determines if the builder ignores, errors out, or logs a warning
// when a `use` element can't be resolved.
func ReadDocumentStream(stream io.Reader, errMode ErrorMode) (*Document, error) {
	return ReadDocumentStreamLogger(stream, errMode, nil)
}

// ReadDocumentStreamLogger is like ReadDocumentStream, but reports
// the skipped elements to `logger` (slog.Default() if nil).
func ReadDocumentStreamLogger(stream io.Reader, errMode ErrorMode, logger *slog.Logger) (*Document, error) {
	root, err := decodeTree(stream)
	if err != nil {
		return nil, err
	}
	return Build(root, errMode, logger)
}

// ReadDocument reads the document from the named file.
// Errors are prefixed by the file name.
func ReadDocument(file string, errMode ErrorMode) (*Document, error) {
	fin, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("unable to load %s: %w", file, err)
	}
	defer fin.Close()
	doc, err := ReadDocumentStream(fin, errMode)
	if err != nil {
		return nil, fmt.Errorf("unable to load %s: %w", file, err)
	}
	return doc, nil
}

// Build walks an already parsed tree. `root` is the document
// element: its width and height are read, and its children are built.
// Warnings go to `logger`, or slog.Default() if nil.
func Build(root *Node, errMode ErrorMode, logger *slog.Logger) (*Document, error) {
	if logger == nil {
		logger = slog.Default()
	}
	doc := &Document{
		Width:  attrInt(root, "width"),
		Height: attrInt(root, "height"),
		ids:    make(map[string]Shape),
	}
	cursor := &buildCursor{ids: doc.ids, errorMode: errMode, logger: logger}
	shapes, err := cursor.readChildren(root)
	if err != nil {
		return nil, err
	}
	doc.Shapes = shapes
	return doc, nil
}
