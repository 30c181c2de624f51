package svgscene

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseColor(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want color.RGBA
	}{
		{"#ff0000", color.RGBA{R: 0xff, A: 0xff}},
		{"#00FF7f", color.RGBA{G: 0xff, B: 0x7f, A: 0xff}},
		{"#0f0", color.RGBA{G: 0xff, A: 0xff}},
		{"red", color.RGBA{R: 0xff, A: 0xff}},
		{" Blue ", color.RGBA{B: 0xff, A: 0xff}},
		{"rgb(10, 20, 300)", color.RGBA{R: 10, G: 20, B: 255, A: 0xff}},
		{"none", color.RGBA{}},
	} {
		got, err := ParseColor(tc.in)
		assert.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	for _, in := range []string{"", "#12", "#zzzzzz", "rgb(1,2)", "not-a-color"} {
		got, err := ParseColor(in)
		assert.Error(t, err, in)
		assert.Equal(t, black, got, in)
	}
}
