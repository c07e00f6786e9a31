package board

import (
	"image/color"

	"github.com/plus3/blockroyale/piece"
)

// Cell is one board square: empty, a locked piece cell, or garbage.
type Cell uint8

const (
	Empty   Cell = 0
	Garbage Cell = piece.NumTypes + 1
)

// PieceCell returns the cell left behind by a locked piece of type t.
func PieceCell(t piece.Type) Cell {
	return Cell(t) + 1
}

// Filled reports whether the cell is occupied.
func (c Cell) Filled() bool {
	return c != Empty
}

// Type returns the piece type that produced the cell. Empty and garbage cells have none.
func (c Cell) Type() (piece.Type, bool) {
	if c == Empty || c == Garbage {
		return 0, false
	}
	return piece.Type(c - 1), true
}

// Color returns the display color of a filled cell.
func (c Cell) Color() color.RGBA {
	if t, ok := c.Type(); ok {
		return piece.Color(t)
	}
	if c == Garbage {
		return piece.GarbageColor
	}
	return color.RGBA{}
}

func (c Cell) rune() byte {
	switch c {
	case Empty:
		return '.'
	case Garbage:
		return 'G'
	}
	t, _ := c.Type()
	return t.String()[0]
}

func cellFromRune(r byte) (Cell, bool) {
	switch r {
	case '.', ' ':
		return Empty, true
	case 'G', 'X', '#':
		return Garbage, true
	}
	for _, t := range piece.All() {
		if t.String()[0] == r {
			return PieceCell(t), true
		}
	}
	return Empty, false
}
