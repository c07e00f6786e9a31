package board_test

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/plus3/blockroyale/board"
	"github.com/plus3/blockroyale/piece"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func emptyRows(n, width int) []string {
	rows := make([]string, n)
	for i := range rows {
		rows[i] = strings.Repeat(".", width)
	}
	return rows
}

func TestParseGrid(t *testing.T) {
	g, err := board.ParseGrid(
		"..T.",
		"G..I",
	)
	require.NoError(t, err)
	assert.Equal(t, 4, g.Width())
	assert.Equal(t, 2, g.Height())
	assert.Equal(t, board.PieceCell(piece.T), g.At(2, 0))
	assert.Equal(t, board.Garbage, g.At(0, 1))
	assert.Equal(t, "..T.\nG..I\n", g.String())

	_, err = board.ParseGrid("...", "....")
	assert.Error(t, err)
	_, err = board.ParseGrid("..?")
	assert.Error(t, err)
	_, err = board.ParseGrid()
	assert.Error(t, err)
}

func TestCellKinds(t *testing.T) {
	assert.False(t, board.Empty.Filled())
	assert.True(t, board.Garbage.Filled())

	_, ok := board.Garbage.Type()
	assert.False(t, ok, "garbage is not a piece type")

	for _, typ := range piece.All() {
		got, ok := board.PieceCell(typ).Type()
		assert.True(t, ok)
		assert.Equal(t, typ, got)
		assert.Equal(t, piece.Color(typ), board.PieceCell(typ).Color())
	}
	assert.Equal(t, piece.GarbageColor, board.Garbage.Color())
}

// collidesByDefinition restates the collision rule cell by cell.
func collidesByDefinition(g *board.Grid, p piece.Piece) bool {
	shape := p.Shape()
	for row := range piece.BoxSize {
		for col := range piece.BoxSize {
			if !shape[row][col] {
				continue
			}
			x, y := p.X+col, p.Y+row
			if x < 0 || x >= g.Width() || y < 0 || y >= g.Height() {
				return true
			}
			if g.At(x, y) != board.Empty {
				return true
			}
		}
	}
	return false
}

func TestCollidesMatchesDefinition(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for trial := 0; trial < 500; trial++ {
		g := board.NewGrid(10, 20)
		for y := 0; y < g.Height(); y++ {
			for x := 0; x < g.Width(); x++ {
				if rng.Float64() < 0.3 {
					g.Set(x, y, board.Garbage)
				}
			}
		}
		for probe := 0; probe < 20; probe++ {
			p := piece.Piece{
				Type:     piece.Type(rng.IntN(piece.NumTypes)),
				X:        rng.IntN(16) - 4,
				Y:        rng.IntN(26) - 4,
				Rotation: rng.IntN(4),
			}
			require.Equal(t, collidesByDefinition(g, p), g.Collides(p), "piece %+v on\n%s", p, g)
		}
	}
}

func TestCollidesKnownOverlaps(t *testing.T) {
	g := board.MustParseGrid(
		"....",
		"....",
		"....",
		".G..",
	)
	o := piece.New(piece.O) // cells at columns 1-2, rows 0-1 of its box
	assert.False(t, g.Collides(o))
	assert.False(t, g.Collides(o.Translated(0, 1)))
	assert.True(t, g.Collides(o.Translated(0, 2)), "overlaps the garbage cell")
	assert.True(t, g.Collides(o.Translated(0, -1)), "above the top edge")
	assert.True(t, g.Collides(o.Translated(2, 0)), "past the right edge")
	assert.True(t, g.Collides(o.Translated(-2, 0)), "past the left edge")
}

func TestClearFullRows(t *testing.T) {
	g := board.MustParseGrid(
		"..I..",
		"GGGGG",
		"T.T.T",
		"GGGGG",
	)
	assert.Equal(t, 2, g.ClearFullRows())
	assert.Equal(t, 4, g.Height())
	assert.Equal(t, ".....\n.....\n..I..\nT.T.T\n", g.String())

	assert.Equal(t, 0, g.ClearFullRows())
}

func TestInjectGarbage(t *testing.T) {
	g := board.MustParseGrid(
		"T....",
		".....",
		"..S..",
	)
	g.InjectGarbage([]int{1, 4})
	assert.Equal(t, "..S..\nG.GGG\nGGGG.\n", g.String())

	before := g.Clone()
	g.InjectGarbage(nil)
	assert.True(t, before.Equal(g))
}

func TestDropY(t *testing.T) {
	g := board.MustParseGrid(append(emptyRows(5, 4), "GG.G")...)
	o := piece.New(piece.O)
	assert.Equal(t, 3, g.DropY(o))

	g.Set(1, 2, board.Garbage)
	assert.Equal(t, 0, g.DropY(o))
}

func TestCloneIsDeep(t *testing.T) {
	g := board.NewGrid(3, 3)
	c := g.Clone()
	c.Set(1, 1, board.Garbage)
	assert.True(t, g.IsEmpty())
	assert.False(t, c.IsEmpty())
	assert.False(t, g.Equal(c))
}

func TestColumnHeightAndCopyFrom(t *testing.T) {
	g := board.MustParseGrid(
		"....",
		".G..",
		".G.G",
		"GG.G",
	)
	assert.Equal(t, []int{1, 3, 0, 2}, []int{g.ColumnHeight(0), g.ColumnHeight(1), g.ColumnHeight(2), g.ColumnHeight(3)})

	scratch := board.NewGrid(4, 4)
	scratch.CopyFrom(g)
	assert.True(t, scratch.Equal(g))
	assert.Panics(t, func() { board.NewGrid(3, 4).CopyFrom(g) })
}
