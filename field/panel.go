package field

import (
	"fmt"
)

// Exits is a set of directions a panel can be left through, stored as a
// 4-bit mask. The upper four bits are reserved and always zero.
type Exits uint8

const (
	West  Exits = 0b0001
	North Exits = 0b0010
	East  Exits = 0b0100
	South Exits = 0b1000
)

// NoExits is the empty exit set.
const NoExits Exits = 0

// Has reports whether any direction of mask is present in e.
func (e Exits) Has(mask Exits) bool {
	return e&mask != 0
}

// Union returns the exit set containing every direction of e and mask.
func (e Exits) Union(mask Exits) Exits {
	return e | mask
}

// Opposite returns the reverse of a single direction
// (North↔South, East↔West). Sets with more than one direction are not
// meaningful here; Opposite of a combined mask reverses each bit.
func (e Exits) Opposite() Exits {
	var o Exits
	if e.Has(West) {
		o |= East
	}
	if e.Has(East) {
		o |= West
	}
	if e.Has(North) {
		o |= South
	}
	if e.Has(South) {
		o |= North
	}
	return o
}

// String returns the directions as a compact "WNES" subset, or "-" for
// the empty set.
func (e Exits) String() string {
	if e == 0 {
		return "-"
	}
	buf := make([]byte, 0, 4)
	if e.Has(West) {
		buf = append(buf, 'W')
	}
	if e.Has(North) {
		buf = append(buf, 'N')
	}
	if e.Has(East) {
		buf = append(buf, 'E')
	}
	if e.Has(South) {
		buf = append(buf, 'S')
	}
	return string(buf)
}

// PanelKind is a panel's type. The numeric values are the single-byte
// codes of the legacy .fld file format and must not be renumbered.
type PanelKind uint8

const (
	Empty       PanelKind = 0x00
	Neutral     PanelKind = 0x01
	Home        PanelKind = 0x02
	Encounter   PanelKind = 0x03
	Draw        PanelKind = 0x04
	Bonus       PanelKind = 0x05
	Drop        PanelKind = 0x06
	Warp        PanelKind = 0x07
	Draw2x      PanelKind = 0x08
	Bonus2x     PanelKind = 0x09
	Drop2x      PanelKind = 0x0A
	Deck        PanelKind = 0x12
	Encounter2x PanelKind = 0x14
	Move        PanelKind = 0x15
	Move2x      PanelKind = 0x16
	WarpMove    PanelKind = 0x17

	// WarpMove2x and Heal2x have not been confirmed against real game
	// data; the codes follow the community format notes.
	WarpMove2x PanelKind = 0x18
	Ice        PanelKind = 0x19
	Heal       PanelKind = 0x1B
	Heal2x     PanelKind = 0x1C
	Damage     PanelKind = 0x20
	Damage2x   PanelKind = 0x21
)

// Valid reports whether k is one of the defined panel kinds.
func (k PanelKind) Valid() bool {
	switch k {
	case Empty, Neutral, Home, Encounter, Draw, Bonus, Drop, Warp,
		Draw2x, Bonus2x, Drop2x, Deck, Encounter2x, Move, Move2x,
		WarpMove, WarpMove2x, Ice, Heal, Heal2x, Damage, Damage2x:
		return true
	default:
		return false
	}
}

// String returns the kind name.
func (k PanelKind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Neutral:
		return "neutral"
	case Home:
		return "home"
	case Encounter:
		return "encounter"
	case Draw:
		return "draw"
	case Bonus:
		return "bonus"
	case Drop:
		return "drop"
	case Warp:
		return "warp"
	case Draw2x:
		return "draw2x"
	case Bonus2x:
		return "bonus2x"
	case Drop2x:
		return "drop2x"
	case Deck:
		return "deck"
	case Encounter2x:
		return "encounter2x"
	case Move:
		return "move"
	case Move2x:
		return "move2x"
	case WarpMove:
		return "warpmove"
	case WarpMove2x:
		return "warpmove2x"
	case Ice:
		return "ice"
	case Heal:
		return "heal"
	case Heal2x:
		return "heal2x"
	case Damage:
		return "damage"
	case Damage2x:
		return "damage2x"
	default:
		return fmt.Sprintf("unknown(0x%02X)", uint8(k))
	}
}

// UnknownKindError reports a byte that maps to no defined panel kind.
type UnknownKindError struct {
	Code byte
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("unknown panel kind 0x%02X", e.Code)
}

// KindFromByte converts a wire byte to a PanelKind. Unassigned codes are
// a hard error, never coerced to a default kind.
func KindFromByte(b byte) (PanelKind, error) {
	k := PanelKind(b)
	if !k.Valid() {
		return 0, &UnknownKindError{Code: b}
	}
	return k, nil
}

// Panel is a single tile of the board. It is a plain value: copying a
// Panel copies all of its state.
type Panel struct {
	// Kind is the panel's type.
	Kind PanelKind

	// Exits are the directions a piece may leave through.
	Exits Exits

	// ExitsBacktrack are the exits available while Backtrack is active.
	// Sometimes called "entrances", which is misleading: a panel can
	// have an entrance and an exit in the same direction.
	ExitsBacktrack Exits
}

// NewPanel returns a panel of the given kind with no exits.
func NewPanel(kind PanelKind) Panel {
	return Panel{Kind: kind}
}

// newPanelPacked builds a panel from a kind and the packed exit byte of
// the file formats.
func newPanelPacked(kind PanelKind, packed byte) Panel {
	return Panel{
		Kind:           kind,
		Exits:          Exits(packed & 0xF),
		ExitsBacktrack: Exits((packed >> 4) & 0xF),
	}
}

// PackedExits returns both exit sets packed into one byte: forward exits
// in the low nibble, backtrack exits in the high nibble. This is the
// layout both file formats use; unpacking it reproduces the exits
// exactly.
func (p Panel) PackedExits() byte {
	return byte(p.ExitsBacktrack)<<4 | byte(p.Exits)
}

// PanelFromPacked builds a panel from a raw kind byte and a packed exit
// byte, as read from a file. The kind byte is validated.
func PanelFromPacked(kindByte, packed byte) (Panel, error) {
	kind, err := KindFromByte(kindByte)
	if err != nil {
		return Panel{}, err
	}
	return newPanelPacked(kind, packed), nil
}
