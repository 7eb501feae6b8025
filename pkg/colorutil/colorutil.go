// Package colorutil converts 8-bit RGB colors into the CMYK and HLS models.
package colorutil

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidHex is returned by ParseHex for anything that is not #rgb or #rrggbb.
var ErrInvalidHex = errors.New("invalid hex color")

// Common reference colors.
var (
	Black   = RGB{0, 0, 0}
	White   = RGB{255, 255, 255}
	Red     = RGB{255, 0, 0}
	Green   = RGB{0, 255, 0}
	Blue    = RGB{0, 0, 255}
	Cyan    = RGB{0, 255, 255}
	Magenta = RGB{255, 0, 255}
	Yellow  = RGB{255, 255, 0}
)

// RGB is an additive color with each channel in 0-255.
type RGB struct {
	R, G, B int
}

// CMYK is a subtractive color with each component in 0-1.
type CMYK struct {
	C, M, Y, K float64
}

// HLS is a cylindrical color: H in degrees 0-360, L and S in percent 0-100.
type HLS struct {
	H, L, S float64
}

// Clamp8 limits v to the 8-bit channel range.
func Clamp8(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// Clamped returns c with every channel limited to 0-255.
func (c RGB) Clamped() RGB {
	return RGB{Clamp8(c.R), Clamp8(c.G), Clamp8(c.B)}
}

// CMYK converts c to CMYK.
func (c RGB) CMYK() CMYK {
	return RGBToCMYK(c.R, c.G, c.B)
}

// HLS converts c to HLS.
func (c RGB) HLS() HLS {
	return RGBToHLS(c.R, c.G, c.B)
}

// NRGBA returns c as an opaque image/color value.
func (c RGB) NRGBA() color.NRGBA {
	c = c.Clamped()
	return color.NRGBA{R: uint8(c.R), G: uint8(c.G), B: uint8(c.B), A: 0xFF}
}

// Hex returns c in #rrggbb notation.
func (c RGB) Hex() string {
	c = c.Clamped()
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// FromColor converts any image/color value to 8-bit RGB. Alpha is discarded.
func FromColor(c color.Color) RGB {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB{int(n.R), int(n.G), int(n.B)}
}

// ParseHex parses #rrggbb or #rgb; the leading '#' is optional.
func ParseHex(s string) (RGB, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if len(s) != 4 && len(s) != 7 {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	// Sscanf inside colorful.Hex tolerates trailing junk.
	if strings.IndexFunc(s[1:], func(r rune) bool { return !isHexDigit(r) }) >= 0 {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	c, err := colorful.Hex(strings.ToLower(s))
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	r, g, b := c.RGB255()
	return RGB{int(r), int(g), int(b)}, nil
}

// RGBToCMYK converts RGB (0-255) to CMYK fractions (0-1).
// Pure black yields C=M=Y=0, K=1.
func RGBToCMYK(r, g, b int) CMYK {
	c := 1 - float64(r)/255.0
	m := 1 - float64(g)/255.0
	y := 1 - float64(b)/255.0

	k := math.Min(c, math.Min(m, y))

	if k < 1 {
		c = (c - k) / (1 - k)
		m = (m - k) / (1 - k)
		y = (y - k) / (1 - k)
	} else {
		c, m, y = 0, 0, 0
	}

	return CMYK{C: c, M: m, Y: y, K: k}
}

// RGBToHLS converts RGB (0-255) to HLS (H 0-360 degrees, L and S 0-100 percent).
func RGBToHLS(r, g, b int) HLS {
	rf := float64(r) / 255.0
	gf := float64(g) / 255.0
	bf := float64(b) / 255.0

	maxC := math.Max(rf, math.Max(gf, bf))
	minC := math.Min(rf, math.Min(gf, bf))
	l := (maxC + minC) / 2

	// Achromatic: delta is zero, so neither hue nor saturation is defined.
	if maxC == minC {
		return HLS{H: 0, L: l * 100, S: 0}
	}

	delta := maxC - minC
	var h float64
	switch maxC {
	case rf:
		h = (gf - bf) / delta
		if gf < bf {
			h += 6
		}
	case gf:
		h = (bf-rf)/delta + 2
	default:
		h = (rf-gf)/delta + 4
	}
	h *= 60

	var s float64
	if l != 0 && l != 1 {
		s = (maxC - l) / math.Min(l, 1-l)
	}

	return HLS{H: h, L: l * 100, S: s * 100}
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}
