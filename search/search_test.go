package search_test

import (
	"strings"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/plus3/blockroyale/board"
	"github.com/plus3/blockroyale/piece"
	"github.com/plus3/blockroyale/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wellGrid is a 10x20 board whose bottom six rows are full except for column 9.
func wellGrid() *board.Grid {
	rows := make([]string, 0, board.DefaultHeight)
	for len(rows) < board.DefaultHeight-6 {
		rows = append(rows, strings.Repeat(".", board.DefaultWidth))
	}
	for len(rows) < board.DefaultHeight {
		rows = append(rows, "GGGGGGGGG.")
	}
	return board.MustParseGrid(rows...)
}

func TestBestDropsIntoWell(t *testing.T) {
	for _, name := range []string{"medium", "expert"} {
		t.Run(name, func(t *testing.T) {
			profile, ok := search.ProfileByName(name)
			require.True(t, ok)
			g := wellGrid()
			before := g.Clone()

			move, ok := search.New(profile).Best(g, piece.Spawned(piece.I, g.Width()), piece.O)
			require.True(t, ok)

			assert.Equal(t, 1, move.Rotation)
			assert.Equal(t, 7, move.X)
			assert.Equal(t, 16, move.Y)
			placed := piece.Piece{Type: piece.I, X: move.X, Y: move.Y, Rotation: move.Rotation}
			for _, c := range placed.Cells() {
				assert.Equal(t, 9, c.X)
			}
			assert.Equal(t, 4, move.Metrics.Lines)
			assert.Equal(t, 0, move.Metrics.Holes)
			assert.True(t, before.Equal(g), "search must not touch the live grid")
		})
	}
}

func TestChooseAndExecuteMoveFillsWell(t *testing.T) {
	fb := newFakeBoard(wellGrid(), piece.I, piece.O)

	move, ok := search.New(search.DefaultProfile()).ChooseAndExecuteMove(fb)
	require.True(t, ok)
	assert.False(t, move.Blocked)

	require.Len(t, fb.locked, 1)
	assert.Equal(t, piece.Piece{Type: piece.I, X: move.X, Y: move.Y, Rotation: move.Rotation}, fb.locked[0])
	assert.Equal(t, 4, fb.cleared)

	rows := make([]string, 0, board.DefaultHeight)
	for len(rows) < board.DefaultHeight-2 {
		rows = append(rows, strings.Repeat(".", board.DefaultWidth))
	}
	rows = append(rows, "GGGGGGGGG.", "GGGGGGGGG.")
	assert.Equal(t, board.MustParseGrid(rows...).String(), fb.grid.String())
}

func TestNoPlacement(t *testing.T) {
	rows := make([]string, board.DefaultHeight)
	for i := range rows {
		rows[i] = strings.Repeat("G", board.DefaultWidth)
	}
	g := board.MustParseGrid(rows...)
	s := search.New(search.DefaultProfile())

	_, ok := s.Best(g, piece.Spawned(piece.T, g.Width()), piece.I)
	assert.False(t, ok)

	fb := newFakeBoard(g, piece.T, piece.I)
	_, ok = s.ChooseAndExecuteMove(fb)
	assert.False(t, ok)
	assert.Empty(t, fb.locked)
}

func TestBestKeepsFirstOfEqualScores(t *testing.T) {
	g := board.NewGrid(4, 4)

	move, ok := search.New(search.DefaultProfile()).Best(g, piece.Spawned(piece.O, 4), piece.O)
	require.True(t, ok)

	// resting against either wall scores the same; the left one is enumerated first
	assert.Equal(t, -1, move.X)
	assert.Equal(t, 2, move.Y)
	assert.InDelta(t, -20.0*2-18.4*2-51.0*4, move.Score, 1e-9)
}

func TestAnalyze(t *testing.T) {
	t.Run("surface metrics", func(t *testing.T) {
		g := board.MustParseGrid(
			"....",
			"....",
			".G..",
			"G..G",
		)
		before := g.Clone()

		m := search.Analyze(g, board.NewGrid(4, 4), piece.Piece{Type: piece.O, X: 1})

		assert.Equal(t, search.Metrics{
			MaxHeight:       4,
			AggregateHeight: 11,
			Holes:           4,
			Bumpiness:       3,
		}, m)
		assert.True(t, before.Equal(g))
	})

	t.Run("perfect clear", func(t *testing.T) {
		g := board.MustParseGrid(
			"....",
			"....",
			"GG..",
			"GG..",
		)
		m := search.Analyze(g, board.NewGrid(4, 4), piece.Piece{Type: piece.O, X: 1, Y: 2})

		assert.Equal(t, search.Metrics{Lines: 2, Perfect: true}, m)
		assert.InDelta(t, 76.0*4+1000, search.DefaultProfile().Score(m), 1e-9)
	})

	t.Run("spin", func(t *testing.T) {
		g := board.MustParseGrid(
			"GGG.GGGGG.",
			"GG...GGGGG",
			"GGG.GGGGGG",
		)
		m := search.Analyze(g, board.NewGrid(10, 3), piece.Piece{Type: piece.T, X: 2, Rotation: 2})

		assert.True(t, m.Spin)
		assert.Equal(t, 2, m.Lines)
		assert.False(t, m.Perfect)

		profile := search.DefaultProfile()
		noSpin := m
		noSpin.Spin = false
		assert.InDelta(t, profile.SpinBonus, profile.Score(m)-profile.Score(noSpin), 1e-9)
	})
}

func TestProfiles(t *testing.T) {
	assert.Equal(t, []string{"easy", "expert", "hard", "medium"}, search.ProfileNames())

	for _, name := range search.ProfileNames() {
		p, ok := search.ProfileByName(name)
		require.True(t, ok)
		assert.Equal(t, name, p.Name)
		assert.NoError(t, p.Validate(), name)
	}

	expert, _ := search.ProfileByName("expert")
	assert.Equal(t, 2, expert.LookAhead)

	_, ok := search.ProfileByName("impossible")
	assert.False(t, ok)

	err := search.Profile{}.Validate()
	require.Error(t, err)
	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	assert.Len(t, merr.Errors, 3)
}

func TestLookAheadChangesChoice(t *testing.T) {
	medium, _ := search.ProfileByName("medium")
	expert, _ := search.ProfileByName("expert")
	g := board.NewGrid(4, 4)
	current := piece.Spawned(piece.O, 4)

	greedy, ok := search.New(medium).Best(g, current, piece.S)
	require.True(t, ok)
	assert.Equal(t, -1, greedy.X, "both walls tie, the left one comes first")

	// an S after the O fits better when the O sits against the right wall
	ahead, ok := search.New(expert).Best(g, current, piece.S)
	require.True(t, ok)
	assert.Equal(t, 1, ahead.X)
	assert.Equal(t, 2, ahead.Y)
	assert.InDelta(t, -553.9, ahead.Score, 1e-9)
	assert.Equal(t, greedy.Metrics, ahead.Metrics)
}

func TestLookAheadDeadEnd(t *testing.T) {
	expert, _ := search.ProfileByName("expert")
	g := board.NewGrid(4, 2)

	// no I fits on a two row board whatever the O does
	move, ok := search.New(expert).Best(g, piece.Spawned(piece.O, 4), piece.I)
	require.True(t, ok)
	assert.Equal(t, -1, move.X)
	assert.Equal(t, 0, move.Y)
	assert.InDelta(t, -1e9-280.8, move.Score, 1e-3)
}

func TestChooseAndExecuteMoveReportsBlockedPath(t *testing.T) {
	g := board.NewGrid(board.DefaultWidth, board.DefaultHeight)
	for y := 0; y < g.Height(); y++ {
		g.Set(7, y, board.Garbage)
	}
	fb := newFakeBoard(g, piece.O, piece.I)

	move, ok := search.New(search.DefaultProfile()).ChooseAndExecuteMove(fb)
	require.True(t, ok)

	// the best spot is right of the wall but the O cannot get past it
	assert.Equal(t, 7, move.X)
	assert.True(t, move.Blocked)
	require.Len(t, fb.locked, 1)
	assert.Equal(t, piece.Piece{Type: piece.O, X: 4, Y: 18}, fb.locked[0])
}
