package svggeom

import "strconv"

// ScanNumbers extracts every decimal number found in `s`.
// Any other character acts as a separator, so that
// "10,20", "10 20" and "10;20" are equivalent. Exponents are not supported.
func ScanNumbers(s string) []float64 {
	var out []float64
	for i := 0; i < len(s); {
		j := numberEnd(s, i)
		if j == i {
			i++
			continue
		}
		if f, err := strconv.ParseFloat(s[i:j], 64); err == nil {
			out = append(out, f)
		}
		i = j
	}
	return out
}

// numberEnd returns the end of the number starting at `i`,
// or `i` if no number starts there.
func numberEnd(s string, i int) int {
	j := i
	if j < len(s) && (s[j] == '-' || s[j] == '+') {
		j++
	}
	digits := 0
	for j < len(s) && isDigit(s[j]) {
		j++
		digits++
	}
	if j < len(s) && s[j] == '.' {
		k := j + 1
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k > j+1 {
			digits += k - j - 1
			j = k
		}
	}
	if digits == 0 {
		return i
	}
	return j
}

func isDigit(b byte) bool { return '0' <= b && b <= '9' }

// ParsePair reads the first two numbers of `s` as a point.
// Missing coordinates default to 0.
func ParsePair(s string) Point {
	var p Point
	nums := ScanNumbers(s)
	if len(nums) >= 1 {
		p.X = Round(nums[0])
	}
	if len(nums) >= 2 {
		p.Y = Round(nums[1])
	}
	return p
}

// ParsePoints reads a flat coordinate list such as "0,0 10,0 10,10".
// Numbers are consumed pairwise; an incomplete trailing pair is dropped.
func ParsePoints(s string) []Point {
	nums := ScanNumbers(s)
	out := make([]Point, 0, len(nums)/2)
	for i := 0; i+1 < len(nums); i += 2 {
		out = append(out, Point{X: Round(nums[i]), Y: Round(nums[i+1])})
	}
	return out
}
