// Package piece holds the static tetromino data (shapes, colors, wall kicks) and the
// bag randomizer that feeds pieces to a board.
package piece

//go:generate go tool stringer -type=Type

// Type identifies one of the seven tetrominoes.
type Type int

const (
	I Type = iota
	O
	T
	S
	Z
	J
	L
)

// NumTypes is the number of distinct tetrominoes.
const NumTypes = 7

// All returns every piece type in catalog order.
func All() [NumTypes]Type {
	return [NumTypes]Type{I, O, T, S, Z, J, L}
}

// Valid reports whether t is one of the seven tetrominoes.
func (t Type) Valid() bool {
	return t >= I && t <= L
}

// Direction is a rotation step.
type Direction int

const (
	Clockwise        Direction = 1
	CounterClockwise Direction = -1
)

// Point is a board coordinate. Y grows downward; row 0 is the top of the board.
type Point struct {
	X, Y int
}

// Piece is a tetromino placed on a board. X and Y are the top-left corner of its 4x4
// bounding box. Pieces are plain values and can be copied freely for simulation.
type Piece struct {
	Type     Type
	X, Y     int
	Rotation int
}

// New returns a piece of the given type in its spawn rotation at the origin.
func New(t Type) Piece {
	return Piece{Type: t}
}

// SpawnX is the column at which new pieces enter a board of the given width.
func SpawnX(width int) int {
	return (width - BoxSize) / 2
}

// Spawned returns a piece of type t at the spawn position of a board of the given width.
func Spawned(t Type, width int) Piece {
	return Piece{Type: t, X: SpawnX(width)}
}

// Shape returns the occupancy grid of the piece's current rotation.
func (p Piece) Shape() Shape {
	return ShapeAt(p.Type, p.Rotation)
}

// Cells returns the absolute board coordinates covered by the piece.
func (p Piece) Cells() [CellCount]Point {
	var cells [CellCount]Point
	i := 0
	shape := p.Shape()
	for row := range BoxSize {
		for col := range BoxSize {
			if shape[row][col] {
				cells[i] = Point{X: p.X + col, Y: p.Y + row}
				i++
			}
		}
	}
	return cells
}

// Translated returns a copy of the piece moved by (dx, dy).
func (p Piece) Translated(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

// Rotated returns a copy of the piece with its rotation index stepped once in dir.
// Position is unchanged; wall kicks are the board's concern.
func (p Piece) Rotated(dir Direction) Piece {
	p.Rotation = Rotate(p.Type, p.Rotation, dir)
	return p
}

// Rotate steps a rotation index of type t once in dir, wrapping around the number of
// rotation states the type has.
func Rotate(t Type, rotation int, dir Direction) int {
	n := Rotations(t)
	return ((rotation+int(dir))%n + n) % n
}
