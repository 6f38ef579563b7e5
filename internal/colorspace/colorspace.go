// Package colorspace converts between hex, rgb()/rgba(), and hsl()/hsla()
// color notations through one internal RGB(+alpha) tuple. Parsing accepts any
// supported notation; projection renders any target notation, so every
// conversion is parse-then-project.
package colorspace

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Color is the internal tuple: 8-bit channels plus alpha as a 0-1 fraction.
// Alpha is only rendered into hex as a rounded 0-255 byte; rgb/hsl keep the
// fraction.
type Color struct {
	R, G, B int
	A       float64
}

var (
	hexRe = regexp.MustCompile(`^#?([0-9a-fA-F]{3}|[0-9a-fA-F]{4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
	rgbRe = regexp.MustCompile(`^rgba?\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*(?:,\s*([0-9]*\.?[0-9]+)\s*)?\)$`)
	hslRe = regexp.MustCompile(`^hsla?\(\s*(\d{1,3})\s*,\s*(\d{1,3})%\s*,\s*(\d{1,3})%\s*(?:,\s*([0-9]*\.?[0-9]+)\s*)?\)$`)
)

// Parse reads any supported notation into the internal tuple.
func Parse(raw string) (Color, bool) {
	s := strings.TrimSpace(strings.ToLower(raw))
	if s == "" {
		return Color{}, false
	}
	if m := hexRe.FindStringSubmatch(s); m != nil {
		return parseHex(m[1])
	}
	if m := rgbRe.FindStringSubmatch(s); m != nil {
		return parseRGB(m)
	}
	if m := hslRe.FindStringSubmatch(s); m != nil {
		return parseHSL(m)
	}
	return Color{}, false
}

// Valid reports whether raw parses as a color.
func Valid(raw string) bool {
	_, ok := Parse(raw)
	return ok
}

// Convert parses raw and projects it to the target format: "hex", "rgb", or
// "hsl".
func Convert(raw, target string) (string, bool) {
	c, ok := Parse(raw)
	if !ok {
		return "", false
	}
	switch target {
	case "hex":
		return c.Hex(), true
	case "rgb":
		return c.RGB(), true
	case "hsl":
		return c.HSL(), true
	default:
		return "", false
	}
}

// parseHex expands shorthand notations by duplicating each digit, then reads
// channel pairs.
func parseHex(digits string) (Color, bool) {
	if len(digits) == 3 || len(digits) == 4 {
		var b strings.Builder
		for _, r := range digits {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		digits = b.String()
	}
	byteAt := func(i int) int {
		n, _ := strconv.ParseInt(digits[i:i+2], 16, 32)
		return int(n)
	}
	c := Color{R: byteAt(0), G: byteAt(2), B: byteAt(4), A: 1}
	if len(digits) == 8 {
		c.A = float64(byteAt(6)) / 255
	}
	return c, true
}

func parseRGB(m []string) (Color, bool) {
	ch := func(s string) (int, bool) {
		n, err := strconv.Atoi(s)
		return n, err == nil && n >= 0 && n <= 255
	}
	r, okR := ch(m[1])
	g, okG := ch(m[2])
	b, okB := ch(m[3])
	if !okR || !okG || !okB {
		return Color{}, false
	}
	a := 1.0
	if m[4] != "" {
		parsed, err := strconv.ParseFloat(m[4], 64)
		if err != nil || parsed < 0 || parsed > 1 {
			return Color{}, false
		}
		a = parsed
	}
	return Color{R: r, G: g, B: b, A: a}, true
}

func parseHSL(m []string) (Color, bool) {
	h, err := strconv.Atoi(m[1])
	if err != nil || h < 0 || h > 360 {
		return Color{}, false
	}
	s, err := strconv.Atoi(m[2])
	if err != nil || s < 0 || s > 100 {
		return Color{}, false
	}
	l, err := strconv.Atoi(m[3])
	if err != nil || l < 0 || l > 100 {
		return Color{}, false
	}
	a := 1.0
	if m[4] != "" {
		parsed, err := strconv.ParseFloat(m[4], 64)
		if err != nil || parsed < 0 || parsed > 1 {
			return Color{}, false
		}
		a = parsed
	}
	c := fromHSL(float64(h), float64(s)/100, float64(l)/100)
	c.A = a
	return c, true
}

// Hex renders the canonical upper-case hex form, appending the alpha byte
// only when alpha is below 1.
func (c Color) Hex() string {
	if c.A < 1 {
		return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, int(math.Round(c.A*255)))
	}
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// RGB renders rgb(r, g, b), switching to rgba when alpha is below 1.
func (c Color) RGB() string {
	if c.A < 1 {
		return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, trimFloat(c.A))
	}
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// HSL renders hsl(h, s%, l%) with hue rounded to whole degrees and
// saturation/lightness to whole percent.
func (c Color) HSL() string {
	h, s, l := c.toHSL()
	if c.A < 1 {
		return fmt.Sprintf("hsla(%d, %d%%, %d%%, %s)", h, s, l, trimFloat(c.A))
	}
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", h, s, l)
}

// toHSL follows the standard max/min/delta hue-sector formulas.
func (c Color) toHSL() (int, int, int) {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	delta := max - min
	l := (max + min) / 2

	var h, s float64
	if delta != 0 {
		if l > 0.5 {
			s = delta / (2 - max - min)
		} else {
			s = delta / (max + min)
		}
		switch max {
		case r:
			h = (g - b) / delta
			if g < b {
				h += 6
			}
		case g:
			h = (b-r)/delta + 2
		default:
			h = (r-g)/delta + 4
		}
		h *= 60
	}

	return int(math.Round(h)), int(math.Round(s * 100)), int(math.Round(l * 100))
}

// fromHSL is the inverse projection; h in degrees, s and l as fractions.
func fromHSL(h, s, l float64) Color {
	if s == 0 {
		v := int(math.Round(l * 255))
		return Color{R: v, G: v, B: v, A: 1}
	}
	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	hk := h / 360

	channel := func(t float64) int {
		if t < 0 {
			t++
		}
		if t > 1 {
			t--
		}
		var v float64
		switch {
		case t < 1.0/6:
			v = p + (q-p)*6*t
		case t < 1.0/2:
			v = q
		case t < 2.0/3:
			v = p + (q-p)*(2.0/3-t)*6
		default:
			v = p
		}
		return int(math.Round(v * 255))
	}

	return Color{
		R: channel(hk + 1.0/3),
		G: channel(hk),
		B: channel(hk - 1.0/3),
		A: 1,
	}
}

func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
