package letter

import (
	"fmt"
	"strconv"
	"strings"
)

// Unit conversion constants. The engine's configuration is authored in
// inches; all internal layout math runs in points; backends that prefer
// millimeters (the PDF surface does) convert at their boundary.
const (
	PtPerIn = 72.0
	MmPerIn = 25.4

	PtToMm = 0.352777
	MmToPt = 1.0 / PtToMm
)

// US Letter page dimensions in points.
const (
	PageWidthPt  = 8.5 * PtPerIn
	PageHeightPt = 11.0 * PtPerIn
)

// InToPt converts inches to points.
func InToPt(in float64) float64 { return in * PtPerIn }

// Color uses 0-255 RGB components.
type Color struct {
	R int
	G int
	B int
}

// Black is the default ink color.
var Black = Color{0, 0, 0}

// ParseColor parses #RGB, #RRGGBB or #RRGGBBAA hex notation (alpha ignored).
func ParseColor(value string) (Color, error) {
	hex, ok := strings.CutPrefix(value, "#")
	if !ok {
		return Color{}, fmt.Errorf("cannot parse color value %q", value)
	}
	switch len(hex) {
	case 3:
		r, er := hexByte(strings.Repeat(string(hex[0]), 2))
		g, eg := hexByte(strings.Repeat(string(hex[1]), 2))
		b, eb := hexByte(strings.Repeat(string(hex[2]), 2))
		if er != nil || eg != nil || eb != nil {
			return Color{}, fmt.Errorf("cannot parse color value %q", value)
		}
		return Color{R: r, G: g, B: b}, nil
	case 6, 8:
		r, er := hexByte(hex[0:2])
		g, eg := hexByte(hex[2:4])
		b, eb := hexByte(hex[4:6])
		if er != nil || eg != nil || eb != nil {
			return Color{}, fmt.Errorf("cannot parse color value %q", value)
		}
		return Color{R: r, G: g, B: b}, nil
	default:
		return Color{}, fmt.Errorf("cannot parse color value %q", value)
	}
}

func hexByte(s string) (int, error) {
	v, err := strconv.ParseInt(s, 16, 64)
	return int(v), err
}
