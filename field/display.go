package field

import (
	"strings"
)

// glyph returns the two-character marker used by the text rendering.
func glyph(k PanelKind) string {
	switch k {
	case Empty:
		return "  "
	case Neutral:
		return "[]"
	case Home:
		return "@@"
	case Encounter:
		return "en"
	case Bonus:
		return "bs"
	case Draw:
		return "da"
	case Drop:
		return "dr"
	case Warp:
		return "wa"
	case WarpMove:
		return "wm"
	case Move:
		return "mo"
	case Bonus2x:
		return "BS"
	case Deck:
		return "__"
	default:
		return "??"
	}
}

// String renders the field as text, two lines per panel row: one line of
// kind glyphs with horizontal connectors, one line of vertical
// connectors. A connector is drawn when the neighbor exits back toward
// the panel, or failing that when the panel exits toward the neighbor.
//
// This is a debugging aid, not an interchange format; the output is not
// meant to round-trip.
func (f *Field) String() string {
	var b strings.Builder

	for y := 0; y < f.height; y++ {
		b.WriteString("\n")

		for x := 0; x < f.width; x++ {
			cur := f.Cur(x, y)
			b.WriteString(glyph(cur.Panel().Kind))

			if next, ok := cur.Offset(1, 0); ok {
				switch {
				case next.Panel().Exits.Has(West):
					b.WriteString("<")
				case cur.Panel().Exits.Has(East):
					b.WriteString(">")
				default:
					b.WriteString(" ")
				}
			}
		}

		b.WriteString("\n")

		for x := 0; x < f.width; x++ {
			cur := f.Cur(x, y)

			if next, ok := cur.Offset(0, 1); ok {
				switch {
				case next.Panel().Exits.Has(North):
					b.WriteString("/\\")
				case cur.Panel().Exits.Has(South):
					b.WriteString("\\/")
				default:
					b.WriteString("  ")
				}
			}

			b.WriteString(" ")
		}
	}

	return b.String()
}
