package alt

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/benoitkugler/pdf/contentstream"
	"github.com/benoitkugler/svgscene/svgpdf"
	"github.com/benoitkugler/svgscene/svgscene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadShapes(t *testing.T) *svgscene.Document {
	t.Helper()
	doc, err := svgscene.ReadDocument(filepath.Join("..", "testdata", "shapes.svg"), svgscene.StrictErrorMode)
	require.NoError(t, err)
	return doc
}

func TestRenderDocumentFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "shapes.pdf")
	require.NoError(t, RenderDocumentFile(loadShapes(t), out, svgpdf.Options{StrokeWidth: 1, Compress: true}))

	content, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(content, []byte("%PDF-")))
}

func TestRenderEmpty(t *testing.T) {
	doc, err := svgscene.ReadDocumentStream(strings.NewReader("<svg/>"), svgscene.WarnErrorMode)
	require.NoError(t, err)
	_, err = NewPage(doc, svgpdf.Options{})
	assert.ErrorIs(t, err, svgpdf.ErrEmptyCanvas)
}

func TestOpacityStatesAreShared(t *testing.T) {
	page := contentstream.NewAppearance(40, 30)
	r := NewRenderer(&page, 1)
	loadShapes(t).Draw(r)

	// every shape of the fixture is opaque
	assert.Len(t, r.fillOpacityStates, 1)
	assert.Len(t, r.strokeOpacityStates, 1)
}

func TestZeroStrokeWidth(t *testing.T) {
	page := contentstream.NewAppearance(40, 30)
	r := NewRenderer(&page, 0)
	loadShapes(t).Draw(r)

	assert.Len(t, r.fillOpacityStates, 1)
	assert.Empty(t, r.strokeOpacityStates)
}
