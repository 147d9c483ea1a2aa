package field

import (
	"fmt"
	"iter"
)

// MalformedConstructionError reports field construction input that does
// not describe a rectangular grid.
type MalformedConstructionError struct {
	// Row is the index of the offending row, or -1 for flat buffers.
	Row int

	// Want and Got are panel counts: the row width (or width*height for
	// flat buffers) versus what was supplied.
	Want, Got int

	// Width and Height are the requested dimensions, for flat buffers.
	Width, Height int
}

func (e *MalformedConstructionError) Error() string {
	switch {
	case e.Row >= 0:
		return fmt.Sprintf("row %d has %d panels, want %d", e.Row, e.Got, e.Want)
	case e.Width < 0 || e.Height < 0:
		return fmt.Sprintf("negative dimensions %dx%d", e.Width, e.Height)
	default:
		return fmt.Sprintf("buffer has %d panels, want width*height = %d", e.Got, e.Want)
	}
}

// Field is a rectangular grid of panels, stored row-major in a flat
// buffer (index = y*width + x). The dimensions are fixed at construction;
// there is no resize operation, and len(data) == width*height always
// holds.
type Field struct {
	data          []Panel
	width, height int
}

// New returns an empty 0x0 field. It is valid and iterates as empty.
func New() *Field {
	return &Field{}
}

// NewBuffer builds a field from a row-major flat buffer. The buffer is
// owned by the field afterwards; callers must not retain it.
func NewBuffer(data []Panel, width, height int) (*Field, error) {
	if width < 0 || height < 0 {
		return nil, &MalformedConstructionError{Row: -1, Got: len(data), Width: width, Height: height}
	}
	if len(data) != width*height {
		return nil, &MalformedConstructionError{Row: -1, Want: width * height, Got: len(data), Width: width, Height: height}
	}
	return &Field{data: data, width: width, height: height}, nil
}

// NewRows builds a field from nested rows. Every row must have the same
// length; the width and height are taken from the input. An empty input
// yields the 0x0 field.
func NewRows(rows [][]Panel) (*Field, error) {
	if len(rows) == 0 {
		return New(), nil
	}
	width := len(rows[0])
	data := make([]Panel, 0, width*len(rows))
	for y, row := range rows {
		if len(row) != width {
			return nil, &MalformedConstructionError{Row: y, Want: width, Got: len(row)}
		}
		data = append(data, row...)
	}
	return &Field{data: data, width: width, height: len(rows)}, nil
}

// Width returns the field's width in panels.
func (f *Field) Width() int { return f.width }

// Height returns the field's height in panels.
func (f *Field) Height() int { return f.height }

// Len returns the total number of panels.
func (f *Field) Len() int { return len(f.data) }

func (f *Field) index(x, y int) int {
	if x < 0 || x >= f.width {
		panic(fmt.Sprintf("field: x (%d) out of bounds, width %d", x, f.width))
	}
	if y < 0 || y >= f.height {
		panic(fmt.Sprintf("field: y (%d) out of bounds, height %d", y, f.height))
	}
	return y*f.width + x
}

// At returns a pointer to the panel at (x, y). Coordinates are
// bounds-checked; out-of-range access panics. Callers walking relatively
// should use Offset or a Cursor instead, which stay put at the edges.
//
// The returned pointer aliases the field's storage: writes through it
// edit the field in place, and it must not outlive the field.
func (f *Field) At(x, y int) *Panel {
	return &f.data[f.index(x, y)]
}

// Offset resolves the coordinates reached by walking (dx, dy) from
// (x, y). If the destination is inside the grid it returns the new
// coordinates and ok=true; otherwise it returns the original coordinates
// and ok=false ("stayed put"). The starting coordinates themselves must
// be in bounds.
func (f *Field) Offset(x, y, dx, dy int) (nx, ny int, ok bool) {
	f.index(x, y)
	nx, ny = x+dx, y+dy
	if nx < 0 || nx >= f.width || ny < 0 || ny >= f.height {
		return x, y, false
	}
	return nx, ny, true
}

// Equal reports whether two fields have the same dimensions and the same
// panel sequence.
func (f *Field) Equal(g *Field) bool {
	if f.width != g.width || f.height != g.height {
		return false
	}
	for i := range f.data {
		if f.data[i] != g.data[i] {
			return false
		}
	}
	return true
}

// Cursor is a read-only position on a field. It is a plain value; any
// number of cursors may exist at once. Mutation goes through Field.At
// with the cursor's coordinates.
type Cursor struct {
	f    *Field
	x, y int
}

// Cur returns a cursor at (x, y). Coordinates are bounds-checked;
// out-of-range access panics.
func (f *Field) Cur(x, y int) Cursor {
	f.index(x, y)
	return Cursor{f: f, x: x, y: y}
}

// X returns the cursor's column.
func (c Cursor) X() int { return c.x }

// Y returns the cursor's row.
func (c Cursor) Y() int { return c.y }

// Panel returns a copy of the panel under the cursor.
func (c Cursor) Panel() Panel {
	return c.f.data[c.f.index(c.x, c.y)]
}

// Offset walks (dx, dy) from the cursor. If the destination is inside
// the grid it returns a cursor there and ok=true; otherwise it returns
// the receiver unchanged and ok=false, so walks can be chained without
// re-deriving indices by hand.
func (c Cursor) Offset(dx, dy int) (Cursor, bool) {
	nx, ny, ok := c.f.Offset(c.x, c.y, dx, dy)
	if !ok {
		return c, false
	}
	return Cursor{f: c.f, x: nx, y: ny}, true
}

// Positions yields every (x, y) position row-major, top row first.
func (f *Field) Positions() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for y := 0; y < f.height; y++ {
			for x := 0; x < f.width; x++ {
				if !yield(x, y) {
					return
				}
			}
		}
	}
}

// PositionsReverse yields every (x, y) position in reverse row-major
// order.
func (f *Field) PositionsReverse() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for y := f.height - 1; y >= 0; y-- {
			for x := f.width - 1; x >= 0; x-- {
				if !yield(x, y) {
					return
				}
			}
		}
	}
}

// Row yields cursors over row y, left to right. The row has exactly
// Width() entries.
func (f *Field) Row(y int) iter.Seq[Cursor] {
	return func(yield func(Cursor) bool) {
		for x := 0; x < f.width; x++ {
			if !yield(f.Cur(x, y)) {
				return
			}
		}
	}
}

// RowReverse yields cursors over row y, right to left.
func (f *Field) RowReverse(y int) iter.Seq[Cursor] {
	return func(yield func(Cursor) bool) {
		for x := f.width - 1; x >= 0; x-- {
			if !yield(f.Cur(x, y)) {
				return
			}
		}
	}
}

// Column yields cursors over column x, top to bottom. The column has
// exactly Height() entries.
func (f *Field) Column(x int) iter.Seq[Cursor] {
	return func(yield func(Cursor) bool) {
		for y := 0; y < f.height; y++ {
			if !yield(f.Cur(x, y)) {
				return
			}
		}
	}
}

// ColumnReverse yields cursors over column x, bottom to top.
func (f *Field) ColumnReverse(x int) iter.Seq[Cursor] {
	return func(yield func(Cursor) bool) {
		for y := f.height - 1; y >= 0; y-- {
			if !yield(f.Cur(x, y)) {
				return
			}
		}
	}
}

// Rows yields each row of the field as its own cursor sequence.
func (f *Field) Rows() iter.Seq[iter.Seq[Cursor]] {
	return func(yield func(iter.Seq[Cursor]) bool) {
		for y := 0; y < f.height; y++ {
			if !yield(f.Row(y)) {
				return
			}
		}
	}
}

// RowsReverse yields the rows bottom-up; each row still runs left to
// right.
func (f *Field) RowsReverse() iter.Seq[iter.Seq[Cursor]] {
	return func(yield func(iter.Seq[Cursor]) bool) {
		for y := f.height - 1; y >= 0; y-- {
			if !yield(f.Row(y)) {
				return
			}
		}
	}
}

// Columns yields each column of the field as its own cursor sequence.
func (f *Field) Columns() iter.Seq[iter.Seq[Cursor]] {
	return func(yield func(iter.Seq[Cursor]) bool) {
		for x := 0; x < f.width; x++ {
			if !yield(f.Column(x)) {
				return
			}
		}
	}
}

// ColumnsReverse yields the columns right to left; each column still
// runs top to bottom.
func (f *Field) ColumnsReverse() iter.Seq[iter.Seq[Cursor]] {
	return func(yield func(iter.Seq[Cursor]) bool) {
		for x := f.width - 1; x >= 0; x-- {
			if !yield(f.Column(x)) {
				return
			}
		}
	}
}
