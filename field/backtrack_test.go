package field

import (
	"testing"
)

func TestBuildBacktrackEast(t *testing.T) {
	f, err := NewRows([][]Panel{
		{NewPanel(Home), NewPanel(Neutral)},
		{NewPanel(Neutral), NewPanel(Neutral)},
	})
	if err != nil {
		t.Fatalf("NewRows: %v", err)
	}
	f.At(0, 0).Exits = East

	f.BuildBacktrack()

	if got := f.At(1, 0).ExitsBacktrack; got != West {
		t.Errorf("(1,0) backtrack = %v, want %v", got, West)
	}
	for x, y := range f.Positions() {
		if x == 1 && y == 0 {
			continue
		}
		if got := f.At(x, y).ExitsBacktrack; got != NoExits {
			t.Errorf("(%d,%d) backtrack = %v, want none", x, y, got)
		}
	}
}

func TestBuildBacktrackVertical(t *testing.T) {
	// North points toward increasing y: a North exit on (0,0) lands on
	// (0,1), which gains a South backtrack exit.
	f, _ := NewRows([][]Panel{
		{NewPanel(Neutral)},
		{NewPanel(Neutral)},
	})
	f.At(0, 0).Exits = North

	f.BuildBacktrack()

	if got := f.At(0, 1).ExitsBacktrack; got != South {
		t.Errorf("(0,1) backtrack = %v, want %v", got, South)
	}
	if got := f.At(0, 0).ExitsBacktrack; got != NoExits {
		t.Errorf("(0,0) backtrack = %v, want none", got)
	}

	// And a South exit on (0,1) lands back on (0,0).
	f.At(0, 1).Exits = South
	f.BuildBacktrack()
	if got := f.At(0, 0).ExitsBacktrack; got != North {
		t.Errorf("(0,0) backtrack = %v, want %v", got, North)
	}
}

func TestBuildBacktrackIdempotent(t *testing.T) {
	f, _ := NewRows([][]Panel{
		{NewPanel(Home), NewPanel(Draw), NewPanel(Warp)},
		{NewPanel(Bonus), NewPanel(Neutral), NewPanel(Drop)},
	})
	f.At(0, 0).Exits = East | North
	f.At(1, 0).Exits = East | West
	f.At(2, 0).Exits = North
	f.At(0, 1).Exits = South | East
	f.At(2, 1).Exits = West

	f.BuildBacktrack()
	once := snapshot(f)

	f.BuildBacktrack()
	twice := snapshot(f)

	for i := range once {
		if once[i] != twice[i] {
			t.Fatalf("panel %d changed on the second run: %v -> %v", i, once[i], twice[i])
		}
	}
}

func TestBuildBacktrackClearsStale(t *testing.T) {
	f, _ := NewRows([][]Panel{{NewPanel(Home), NewPanel(Neutral)}})
	f.At(0, 0).ExitsBacktrack = North | South | East | West
	f.At(1, 0).ExitsBacktrack = North

	f.BuildBacktrack()

	for x, y := range f.Positions() {
		if got := f.At(x, y).ExitsBacktrack; got != NoExits {
			t.Errorf("(%d,%d) kept stale backtrack bits: %v", x, y, got)
		}
	}
}

func TestBuildBacktrackEdgeExits(t *testing.T) {
	// Exits pointing off the grid contribute nothing.
	f, _ := NewRows([][]Panel{{NewPanel(Home)}})
	f.At(0, 0).Exits = North | South | East | West

	f.BuildBacktrack()

	if got := f.At(0, 0).ExitsBacktrack; got != NoExits {
		t.Errorf("edge exits produced backtrack bits: %v", got)
	}
}

func snapshot(f *Field) []Panel {
	out := make([]Panel, 0, f.Len())
	for x, y := range f.Positions() {
		out = append(out, *f.At(x, y))
	}
	return out
}
