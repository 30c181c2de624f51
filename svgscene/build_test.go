package svgscene

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/benoitkugler/svgscene/svggeom"
	"github.com/cheekybits/is"
)

func readString(t *testing.T, src string, mode ErrorMode) (*Document, error) {
	t.Helper()
	return ReadDocumentStream(strings.NewReader(src), mode)
}

func TestReadScene(t *testing.T) {
	is := is.New(t)

	doc, err := ReadDocument("testdata/scene.svg", StrictErrorMode)
	is.NoErr(err)
	is.Equal(doc.Width, 200)
	is.Equal(doc.Height, 120)
	is.Equal(len(doc.Shapes), 7)

	box, ok := doc.Lookup("box")
	is.True(ok)
	rect := box.(*Rectangle)
	is.Equal(rect.Points()[0], pt(5, 5))
	is.Equal(rect.Points()[2], pt(14, 9))

	dot, _ := doc.Lookup("dot")
	is.Equal(dot.(*Circle).Radius(), pt(6, 6))

	egg, _ := doc.Lookup("egg")
	is.Equal(egg.(*Ellipse).Center(), pt(10, 10))

	// the group transform reached the nested children
	bar, _ := doc.Lookup("bar")
	from, to := bar.(*Line).Ends()
	is.Equal(from, pt(0, 50))
	is.Equal(to, pt(10, 50))
	tri, _ := doc.Lookup("tri")
	is.Equal(tri.(*Polygon).Points()[2], pt(3, 54))

	pair, _ := doc.Lookup("pair")
	is.Equal(pair.(*Group).Len(), 3)
}

func TestReadSceneUse(t *testing.T) {
	is := is.New(t)

	doc, err := ReadDocument("testdata/scene.svg", StrictErrorMode)
	is.NoErr(err)

	dot, _ := doc.Lookup("dot")
	dot2, ok := doc.Lookup("dot2")
	is.True(ok)
	is.Equal(dot.(*Circle).Center(), pt(0, 0))
	is.Equal(dot2.(*Circle).Center(), pt(100, 0))
	is.Equal(dot2.(*Circle).Radius(), pt(6, 6))
	is.True(dot != dot2)

	// id defined inside a group, used outside of it
	triClone := doc.Shapes[5].(*Polygon)
	is.Equal(triClone.Points(), []svggeom.Point{pt(0, 60), pt(6, 60), pt(3, 64)})

	// a use of a use, with x and y
	is.Equal(doc.Shapes[6].(*Circle).Center(), pt(101, 2))
}

func TestUseInsideGroupSeesOuterIDs(t *testing.T) {
	is := is.New(t)
	doc, err := readString(t, `<svg>
		<circle id="a" cx="1" cy="1" r="1" fill="red"/>
		<g id="g1">
			<rect id="inner" x="0" y="0" width="2" height="2" fill="blue"/>
			<use href="#a" transform="translate(10 0)"/>
		</g>
		<g>
			<use href="#inner"/>
			<use href="#g1" transform="translate(0 10)"/>
		</g>
	</svg>`, StrictErrorMode)
	is.NoErr(err)
	is.Equal(len(doc.Shapes), 3)

	g1, _ := doc.Lookup("g1")
	is.Equal(g1.(*Group).Children()[1].(*Circle).Center(), pt(11, 1))

	second := doc.Shapes[2].(*Group)
	is.Equal(second.Len(), 2)
	is.Equal(second.Children()[0].(*Rectangle).Points()[0], pt(0, 0))
	groupClone := second.Children()[1].(*Group)
	is.Equal(groupClone.Children()[1].(*Circle).Center(), pt(11, 11))
	// the source group is unaffected
	is.Equal(g1.(*Group).Children()[0].(*Rectangle).Points()[0], pt(0, 0))
}

func TestUseCloneIsIndependent(t *testing.T) {
	is := is.New(t)
	doc, err := readString(t, `<svg>
		<circle id="a" cx="0" cy="0" r="5" fill="red"/>
		<use href="#a" transform="translate(100 0)"/>
	</svg>`, StrictErrorMode)
	is.NoErr(err)
	is.Equal(len(doc.Shapes), 2)

	orig, _ := doc.Lookup("a")
	is.Equal(orig.(*Circle).Center(), pt(0, 0))
	is.Equal(doc.Shapes[1].(*Circle).Center(), pt(100, 0))

	doc.Shapes[1].Transform("scale(2)", "")
	is.Equal(orig.(*Circle).Radius(), pt(5, 5))
}

func TestUnresolvedReference(t *testing.T) {
	is := is.New(t)

	_, err := ReadDocument("testdata/unresolved.svg", StrictErrorMode)
	is.Err(err)
	is.True(errors.Is(err, ErrUnresolvedReference))
	is.True(strings.Contains(err.Error(), "testdata/unresolved.svg"))

	for _, mode := range []ErrorMode{WarnErrorMode, IgnoreErrorMode} {
		doc, err := ReadDocument("testdata/unresolved.svg", mode)
		is.NoErr(err)
		is.Equal(len(doc.Shapes), 1) // both use elements are skipped
	}

	_, err = readString(t, `<svg><use transform="translate(1 1)"/></svg>`, StrictErrorMode)
	is.True(errors.Is(err, ErrUnresolvedReference))
}

func TestTolerantIngestion(t *testing.T) {
	is := is.New(t)
	doc, err := readString(t, `<svg width="10px" height="abc">
		<polygon id="bad" points="0,0 5,5" fill="red"/>
		<polyline points="1" stroke="red"/>
		<polygon points="0,0 5,0 5,5 7" fill="not-a-color"/>
		<path d="M0 0 L 10 10"/>
		<foreignObject><circle cx="1" cy="1" r="1"/></foreignObject>
		<rect x="1.6" y="oops" width="3" height="3" fill="red" transform="skewX(10)"/>
	</svg>`, StrictErrorMode)
	is.NoErr(err)
	is.Equal(doc.Width, 10)
	is.Equal(doc.Height, 0)
	is.Equal(len(doc.Shapes), 2)

	_, ok := doc.Lookup("bad")
	is.False(ok)

	poly := doc.Shapes[0].(*Polygon)
	is.Equal(len(poly.Points()), 3)
	is.Equal(poly.Fill(), black)
	is.Equal(doc.Shapes[1].(*Rectangle).Points()[0], pt(2, 0))
}

func TestLoadFailure(t *testing.T) {
	is := is.New(t)

	_, err := ReadDocument("testdata/does-not-exist.svg", WarnErrorMode)
	is.Err(err)
	is.True(errors.Is(err, os.ErrNotExist))
	is.True(strings.Contains(err.Error(), "does-not-exist.svg"))

	_, err = readString(t, "", WarnErrorMode)
	is.True(errors.Is(err, ErrEmptyDocument))

	_, err = readString(t, `<svg><rect></svg>`, WarnErrorMode)
	is.Err(err)

	_, err = readString(t, `<svg/><svg/>`, WarnErrorMode)
	is.Err(err)
}

func TestReadCharset(t *testing.T) {
	is := is.New(t)
	doc, err := ReadDocument("testdata/latin1.svg", StrictErrorMode)
	is.NoErr(err)
	is.Equal(len(doc.Shapes), 2)
	_, ok := doc.Lookup("café")
	is.True(ok)
}

func TestDocumentDraw(t *testing.T) {
	is := is.New(t)
	doc, err := ReadDocument("testdata/scene.svg", StrictErrorMode)
	is.NoErr(err)

	var want []string
	for _, s := range doc.Shapes {
		for _, c := range record(s) {
			want = append(want, c.String())
		}
	}
	var got []string
	for _, c := range record(NewGroup(doc.Shapes)) {
		got = append(got, c.String())
	}
	is.Equal(got, want)
	is.Equal(len(got), 10)
	is.Equal(got[0], "polygon (5,5) (14,5) (14,9) (5,9) #ff0000")
}

func TestParseErrorMode(t *testing.T) {
	is := is.New(t)
	for _, mode := range []ErrorMode{IgnoreErrorMode, WarnErrorMode, StrictErrorMode} {
		got, err := ParseErrorMode(mode.String())
		is.NoErr(err)
		is.Equal(got, mode)
	}
	_, err := ParseErrorMode("loud")
	is.Err(err)
}

func TestDocumentSize(t *testing.T) {
	is := is.New(t)

	doc, err := ReadDocument("testdata/scene.svg", WarnErrorMode)
	is.NoErr(err)
	w, h := doc.Size()
	is.Equal(w, 200)
	is.Equal(h, 120)

	doc, err = readString(t, `<svg width="30"><rect x="2" y="2" width="10" height="5" fill="red"/></svg>`, WarnErrorMode)
	is.NoErr(err)
	w, h = doc.Size()
	is.Equal(w, 30)
	is.Equal(h, 7)

	doc, err = readString(t, `<svg></svg>`, WarnErrorMode)
	is.NoErr(err)
	w, h = doc.Size()
	is.Equal(w, 0)
	is.Equal(h, 0)
}

func TestEmptyRectangleIsSkipped(t *testing.T) {
	is := is.New(t)
	doc, err := readString(t, `<svg>
		<rect id="flat" x="0" y="0" width="0" height="5" fill="red"/>
		<rect x="0" y="0" width="4" height="-1" fill="red"/>
		<rect id="ok" x="0" y="0" width="1" height="1" fill="red"/>
	</svg>`, StrictErrorMode)
	is.NoErr(err)
	is.Equal(len(doc.Shapes), 1)
	_, ok := doc.Lookup("flat")
	is.False(ok)

	ok1, _ := doc.Lookup("ok")
	is.Equal(ok1.(*Rectangle).Points(), []svggeom.Point{pt(0, 0), pt(0, 0), pt(0, 0), pt(0, 0)})
}

func TestBuildLogger(t *testing.T) {
	is := is.New(t)
	const src = `<svg><use href="#missing"/><rect width="0" height="0"/></svg>`

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil)).With("request_id", "abc")
	doc, err := ReadDocumentStreamLogger(strings.NewReader(src), WarnErrorMode, logger)
	is.NoErr(err)
	is.Equal(len(doc.Shapes), 0)
	is.True(strings.Contains(buf.String(), "request_id=abc"))
	is.True(strings.Contains(buf.String(), "unresolved reference"))
	is.True(strings.Contains(buf.String(), "empty rectangle"))

	buf.Reset()
	_, err = ReadDocumentStreamLogger(strings.NewReader(src), IgnoreErrorMode, logger)
	is.NoErr(err)
	is.Equal(buf.Len(), 0)
}
