package app

import (
	"fmt"
	"strconv"
)

// Display is the text rendering of a Snapshot: RGB as integers, CMYK and HLS
// with two decimals.
type Display struct {
	R, G, B    string
	C, M, Y, K string
	H, L, S    string
	Hex        string
}

// NewDisplay formats a snapshot.
func NewDisplay(s Snapshot) Display {
	return Display{
		R:   strconv.Itoa(s.RGB.R),
		G:   strconv.Itoa(s.RGB.G),
		B:   strconv.Itoa(s.RGB.B),
		C:   fmt.Sprintf("%.2f", s.CMYK.C),
		M:   fmt.Sprintf("%.2f", s.CMYK.M),
		Y:   fmt.Sprintf("%.2f", s.CMYK.Y),
		K:   fmt.Sprintf("%.2f", s.CMYK.K),
		H:   fmt.Sprintf("%.2f", s.HLS.H),
		L:   fmt.Sprintf("%.2f", s.HLS.L),
		S:   fmt.Sprintf("%.2f", s.HLS.S),
		Hex: s.RGB.Hex(),
	}
}

// RGBFields returns R, G, B in display order.
func (d Display) RGBFields() []string { return []string{d.R, d.G, d.B} }

// CMYKFields returns C, M, Y, K in display order.
func (d Display) CMYKFields() []string { return []string{d.C, d.M, d.Y, d.K} }

// HLSFields returns H, L, S in display order.
func (d Display) HLSFields() []string { return []string{d.H, d.L, d.S} }
