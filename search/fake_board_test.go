package search_test

import (
	"github.com/plus3/blockroyale/board"
	"github.com/plus3/blockroyale/piece"
)

// fakeBoard is a minimal Board: no gravity, no scoring, hard drop locks immediately.
type fakeBoard struct {
	grid    *board.Grid
	current piece.Piece
	next    piece.Type
	locked  []piece.Piece
	cleared int
	holds   int
	over    bool
}

func newFakeBoard(g *board.Grid, current, next piece.Type) *fakeBoard {
	return &fakeBoard{
		grid:    g,
		current: piece.Spawned(current, g.Width()),
		next:    next,
	}
}

func (f *fakeBoard) Grid() *board.Grid            { return f.grid }
func (f *fakeBoard) Current() (piece.Piece, bool) { return f.current, !f.over }
func (f *fakeBoard) Next() piece.Type             { return f.next }
func (f *fakeBoard) GameOver() bool               { return f.over }

func (f *fakeBoard) MovePiece(dx, dy int) bool {
	moved := f.current.Translated(dx, dy)
	if f.grid.Collides(moved) {
		return false
	}
	f.current = moved
	return true
}

func (f *fakeBoard) RotatePiece(dir piece.Direction) bool {
	to := piece.Rotate(f.current.Type, f.current.Rotation, dir)
	for _, kick := range piece.WallKicks(f.current.Type, f.current.Rotation, to) {
		candidate := f.current
		candidate.Rotation = to
		candidate.X += kick.DX
		candidate.Y += kick.DY
		if !f.grid.Collides(candidate) {
			f.current = candidate
			return true
		}
	}
	return false
}

func (f *fakeBoard) HardDrop() int {
	from := f.current.Y
	f.current.Y = f.grid.DropY(f.current)
	dropped := f.current.Y - from
	f.grid.Place(f.current)
	f.cleared += f.grid.ClearFullRows()
	f.locked = append(f.locked, f.current)
	f.current = piece.Spawned(f.next, f.grid.Width())
	if f.grid.Collides(f.current) {
		f.over = true
	}
	return dropped
}

func (f *fakeBoard) HoldPiece() bool {
	f.holds++
	return true
}
