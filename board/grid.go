package board

import (
	"fmt"
	"strings"

	"github.com/plus3/blockroyale/piece"
)

// Grid is a fixed-size rectangular field of cells stored row-major, row 0 at the top.
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// NewGrid returns an empty grid.
func NewGrid(width, height int) *Grid {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("board: invalid grid size %dx%d", width, height))
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

// ParseGrid builds a grid from rows of text, top row first. '.' is empty, 'G' is
// garbage and piece letters are locked piece cells. All rows must share one width.
func ParseGrid(rows ...string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("board: empty grid")
	}
	g := NewGrid(len(rows[0]), len(rows))
	for y, row := range rows {
		if len(row) != g.width {
			return nil, fmt.Errorf("board: row %d has width %d, want %d", y, len(row), g.width)
		}
		for x := 0; x < len(row); x++ {
			c, ok := cellFromRune(row[x])
			if !ok {
				return nil, fmt.Errorf("board: unknown cell %q at (%d,%d)", row[x], x, y)
			}
			g.cells[y*g.width+x] = c
		}
	}
	return g, nil
}

// MustParseGrid is ParseGrid that panics on malformed input.
func MustParseGrid(rows ...string) *Grid {
	g, err := ParseGrid(rows...)
	if err != nil {
		panic(err)
	}
	return g
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (x, y) lies on the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At returns the cell at (x, y). Out of range coordinates read as Empty.
func (g *Grid) At(x, y int) Cell {
	if !g.InBounds(x, y) {
		return Empty
	}
	return g.cells[y*g.width+x]
}

// Set writes a cell. Out of range writes are ignored.
func (g *Grid) Set(x, y int, c Cell) {
	if g.InBounds(x, y) {
		g.cells[y*g.width+x] = c
	}
}

// Blocked reports whether (x, y) is out of bounds or filled.
func (g *Grid) Blocked(x, y int) bool {
	return !g.InBounds(x, y) || g.cells[y*g.width+x].Filled()
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	out := &Grid{width: g.width, height: g.height, cells: make([]Cell, len(g.cells))}
	copy(out.cells, g.cells)
	return out
}

// CopyFrom overwrites g with the contents of src. Both grids must have the same size.
func (g *Grid) CopyFrom(src *Grid) {
	if g.width != src.width || g.height != src.height {
		panic(fmt.Sprintf("board: copy %dx%d into %dx%d", src.width, src.height, g.width, g.height))
	}
	copy(g.cells, src.cells)
}

// ColumnHeight returns the number of rows from the bottom up to and including the
// topmost filled cell of column x, or 0 if the column is empty.
func (g *Grid) ColumnHeight(x int) int {
	for y := 0; y < g.height; y++ {
		if g.cells[y*g.width+x].Filled() {
			return g.height - y
		}
	}
	return 0
}

// Equal reports whether both grids have the same size and contents.
func (g *Grid) Equal(o *Grid) bool {
	if g.width != o.width || g.height != o.height {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// Collides reports whether any cell of p is outside the grid or overlaps a filled cell.
func (g *Grid) Collides(p piece.Piece) bool {
	for _, c := range p.Cells() {
		if g.Blocked(c.X, c.Y) {
			return true
		}
	}
	return false
}

// Place writes the cells of p into the grid. Cells outside the grid are dropped.
func (g *Grid) Place(p piece.Piece) {
	cell := PieceCell(p.Type)
	for _, c := range p.Cells() {
		g.Set(c.X, c.Y, cell)
	}
}

// DropY returns the lowest Y that p can fall to from its current position without
// colliding. If p already collides its own Y is returned.
func (g *Grid) DropY(p piece.Piece) int {
	if g.Collides(p) {
		return p.Y
	}
	for !g.Collides(p.Translated(0, 1)) {
		p.Y++
	}
	return p.Y
}

// RowFull reports whether every cell of row y is filled.
func (g *Grid) RowFull(y int) bool {
	row := g.cells[y*g.width : (y+1)*g.width]
	for _, c := range row {
		if !c.Filled() {
			return false
		}
	}
	return true
}

// ClearFullRows removes every full row, shifts the rows above down and pads the top with
// empty rows. It returns how many rows were removed.
func (g *Grid) ClearFullRows() int {
	cleared := 0
	write := g.height - 1
	for read := g.height - 1; read >= 0; read-- {
		if g.RowFull(read) {
			cleared++
			continue
		}
		if write != read {
			copy(g.cells[write*g.width:(write+1)*g.width], g.cells[read*g.width:(read+1)*g.width])
		}
		write--
	}
	for ; write >= 0; write-- {
		clear(g.cells[write*g.width : (write+1)*g.width])
	}
	return cleared
}

// IsEmpty reports whether no cell is filled.
func (g *Grid) IsEmpty() bool {
	for _, c := range g.cells {
		if c.Filled() {
			return false
		}
	}
	return true
}

// InjectGarbage drops len(holes) rows off the top, shifts everything up and appends one
// garbage row per entry at the bottom, leaving the column named by the entry empty.
func (g *Grid) InjectGarbage(holes []int) {
	n := min(len(holes), g.height)
	if n == 0 {
		return
	}
	copy(g.cells, g.cells[n*g.width:])
	for i := 0; i < n; i++ {
		y := g.height - n + i
		row := g.cells[y*g.width : (y+1)*g.width]
		for x := range row {
			row[x] = Garbage
		}
		if holes[i] >= 0 && holes[i] < g.width {
			row[holes[i]] = Empty
		}
	}
}

// String renders the grid one text row per board row, in the ParseGrid format.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			b.WriteByte(g.cells[y*g.width+x].rune())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
