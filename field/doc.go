// Package field models the playing field of 100% Orange Juice boards.
//
// A field is a rectangular grid of panels. Each panel has:
//   - A kind (Home, Draw, Encounter, ...), one byte on the wire
//   - Forward exits: the directions a piece may leave through
//   - Backtrack exits: the reverse connectivity used by the Backtrack
//     game mode, derived from neighboring panels' forward exits
//
// Panels never reference their neighbors directly; adjacency is computed
// from coordinates, so a Field can be copied and moved freely.
//
// # Addressing
//
// Absolute access goes through At, which is bounds-checked and panics on
// violation: passing coordinates outside the grid is a programming error,
// not a runtime condition. Relative walking goes through Cursor.Offset
// (or the coordinate form Field.Offset), which never panics; stepping off
// the grid reports ok=false and stays put.
//
// # Backtrack reconstruction
//
// BuildBacktrack rebuilds every panel's backtrack exits from scratch in a
// full-grid pass. There is no incremental variant: after editing any
// panel's forward exits, the whole pass must run again before backtrack
// data can be trusted.
package field
