package svgpdf

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/benoitkugler/svgscene/svgscene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadShapes(t *testing.T) *svgscene.Document {
	t.Helper()
	doc, err := svgscene.ReadDocument(filepath.Join("testdata", "shapes.svg"), svgscene.StrictErrorMode)
	require.NoError(t, err)
	return doc
}

func TestRenderDocument(t *testing.T) {
	var buf bytes.Buffer
	err := RenderDocument(loadShapes(t), &buf, Options{StrokeWidth: 1})
	require.NoError(t, err)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "%PDF-"))
	assert.Contains(t, out, "/MediaBox [0 0 40.00 30.00]")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "%%EOF"))
}

func TestRenderSizeFromBounds(t *testing.T) {
	doc, err := svgscene.ReadDocumentStream(strings.NewReader(
		`<svg><rect x="0" y="0" width="20" height="10" fill="red"/></svg>`), svgscene.WarnErrorMode)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, RenderDocument(doc, &buf, Options{}))
	assert.Contains(t, buf.String(), "/MediaBox [0 0 20.00 10.00]")

	empty, err := svgscene.ReadDocumentStream(strings.NewReader(`<svg/>`), svgscene.WarnErrorMode)
	require.NoError(t, err)
	assert.ErrorIs(t, RenderDocument(empty, &buf, Options{}), ErrEmptyCanvas)
}

func TestRenderToPDF(t *testing.T) {
	f, err := os.Open(filepath.Join("testdata", "shapes.svg"))
	require.NoError(t, err)
	defer f.Close()

	out := filepath.Join(t.TempDir(), "shapes.pdf")
	require.NoError(t, RenderToPDF(f, svgscene.WarnErrorMode, out))

	content, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(content, []byte("%PDF-")))
}

func TestRenderToPDFInvalid(t *testing.T) {
	err := RenderToPDF(strings.NewReader(""), svgscene.WarnErrorMode, filepath.Join(t.TempDir(), "x.pdf"))
	assert.ErrorIs(t, err, svgscene.ErrEmptyDocument)
}

func TestRenderZeroStrokeWidth(t *testing.T) {
	doc := loadShapes(t)

	var stroked, plain bytes.Buffer
	require.NoError(t, RenderDocument(doc, &stroked, Options{StrokeWidth: 1}))
	require.NoError(t, RenderDocument(doc, &plain, Options{}))

	// uncompressed streams: the line operators are only written when stroking
	assert.Greater(t, stroked.Len(), plain.Len())
}
