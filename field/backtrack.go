package field

// backtrackSteps maps each direction to the position delta of the panel
// it exits into. North points toward increasing y, matching the file
// formats' row order.
var backtrackSteps = [...]struct {
	dir    Exits
	dx, dy int
}{
	{South, 0, -1},
	{North, 0, 1},
	{West, -1, 0},
	{East, 1, 0},
}

// BuildBacktrack rebuilds every panel's backtrack exits from the forward
// exits. For each direction a panel exits toward, the panel it exits
// into gains the opposite direction in its backtrack set ("you can walk
// back the way you came"). Exits that point off the grid contribute
// nothing.
//
// The pass first clears all backtrack exits, so it is idempotent and
// never accumulates stale bits from earlier runs or edits.
func (f *Field) BuildBacktrack() {
	for i := range f.data {
		f.data[i].ExitsBacktrack = NoExits
	}

	for x, y := range f.Positions() {
		exits := f.At(x, y).Exits
		for _, s := range backtrackSteps {
			if !exits.Has(s.dir) {
				continue
			}
			nx, ny, ok := f.Offset(x, y, s.dx, s.dy)
			if !ok {
				continue
			}
			adj := f.At(nx, ny)
			adj.ExitsBacktrack |= s.dir.Opposite()
		}
	}
}
