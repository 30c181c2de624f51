package svgscene

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/benoitkugler/svgscene/svggeom"
	"golang.org/x/image/colornames"
)

var black = color.RGBA{A: 0xff}

// ParseColor reads a color attribute: `#rrggbb`, `#rgb`, `rgb(r, g, b)`,
// an SVG color keyword, or `none` (fully transparent).
// On failure, opaque black is returned together with the error.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "":
		return black, fmt.Errorf("missing color")
	case s == "none" || s == "transparent":
		return color.RGBA{}, nil
	case strings.HasPrefix(s, "#"):
		return parseHexColor(s)
	case strings.HasPrefix(s, "rgb("):
		nums := svggeom.ScanNumbers(s[len("rgb("):])
		if len(nums) < 3 {
			return black, fmt.Errorf("invalid color %q", s)
		}
		return color.RGBA{R: clampByte(nums[0]), G: clampByte(nums[1]), B: clampByte(nums[2]), A: 0xff}, nil
	}
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	return black, fmt.Errorf("unsupported color %q", s)
}

func parseHexColor(s string) (color.RGBA, error) {
	hex := s[1:]
	if len(hex) == 3 { // #rgb is a shorthand for #rrggbb
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return black, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return black, fmt.Errorf("invalid color %q", s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

func clampByte(f float64) uint8 {
	switch {
	case f < 0:
		return 0
	case f > 255:
		return 255
	default:
		return uint8(svggeom.Round(f))
	}
}
