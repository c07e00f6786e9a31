// Package search chooses where an AI competitor places its piece. It enumerates every
// rotation and column, scores the resulting boards with a weighted surface heuristic
// and drives the board engine to the best placement.
package search

import (
	"math"

	"github.com/plus3/blockroyale/board"
	"github.com/plus3/blockroyale/piece"
)

// sideReach is how many columns past each wall a piece origin may be tried from.
const sideReach = 2

// deadEnd is added to a look-ahead line whose follow-up piece cannot be placed at all.
const deadEnd = -1e9

// Board is the part of a board engine the search reads and drives.
// *board.Engine implements it.
type Board interface {
	Grid() *board.Grid
	Current() (piece.Piece, bool)
	Next() piece.Type
	GameOver() bool
	MovePiece(dx, dy int) bool
	RotatePiece(dir piece.Direction) bool
	HardDrop() int
	HoldPiece() bool
}

// Move is a candidate final placement of the current piece.
type Move struct {
	Rotation int
	X        int
	Y        int
	Score    float64
	Metrics  Metrics
	// Blocked is set by ChooseAndExecuteMove when a rotation or shift was refused and
	// the piece was dropped somewhere other than planned.
	Blocked bool
}

// Searcher evaluates placements for one difficulty profile. It keeps scratch grids
// between calls and is not safe for concurrent use.
type Searcher struct {
	profile Profile
	scratch [2]*board.Grid
}

// New returns a searcher for profile.
func New(profile Profile) *Searcher {
	return &Searcher{profile: profile}
}

func (s *Searcher) Profile() Profile { return s.profile }

// Best returns the highest scoring placement of current on g. Rotations are tried in
// the outer loop and columns left to right in the inner loop; ties keep the first
// maximum. When the profile looks ahead, each placement is also scored by the best
// follow-up placement of next. ok is false when no placement exists.
func (s *Searcher) Best(g *board.Grid, current piece.Piece, next piece.Type) (best Move, ok bool) {
	s.ensureScratch(g)
	best.Score = math.Inf(-1)
	s.enumerate(g, current, func(p piece.Piece) {
		m := Analyze(g, s.scratch[0], p)
		score := s.profile.Score(m)
		if s.profile.LookAhead > 1 {
			score += s.followUp(s.scratch[0], next)
		}
		if !ok || score > best.Score {
			best = Move{Rotation: p.Rotation, X: p.X, Y: p.Y, Score: score, Metrics: m}
			ok = true
		}
	})
	return best, ok
}

// followUp scores the best placement of next spawned on after.
func (s *Searcher) followUp(after *board.Grid, next piece.Type) float64 {
	best := math.Inf(-1)
	found := false
	s.enumerate(after, piece.Spawned(next, after.Width()), func(p piece.Piece) {
		score := s.profile.Score(Analyze(after, s.scratch[1], p))
		if !found || score > best {
			best = score
			found = true
		}
	})
	if !found {
		return deadEnd
	}
	return best
}

// enumerate calls visit with every resting placement of from's type reachable by a
// straight drop from from's row.
func (s *Searcher) enumerate(g *board.Grid, from piece.Piece, visit func(piece.Piece)) {
	for rot := 0; rot < piece.Rotations(from.Type); rot++ {
		for x := -sideReach; x < g.Width()+sideReach; x++ {
			p := piece.Piece{Type: from.Type, X: x, Y: from.Y, Rotation: rot}
			p.Y = g.DropY(p)
			if g.Collides(p) {
				continue
			}
			visit(p)
		}
	}
}

func (s *Searcher) ensureScratch(g *board.Grid) {
	for i, sc := range s.scratch {
		if sc == nil || sc.Width() != g.Width() || sc.Height() != g.Height() {
			s.scratch[i] = board.NewGrid(g.Width(), g.Height())
		}
	}
}

// ChooseAndExecuteMove searches b's current piece and steers it to the best
// placement: rotate one step at a time, shift to the target column, hard drop. A
// rotation or shift blocked by the board is absorbed and the piece is dropped from
// wherever it ended up, and the returned move is marked Blocked. Nothing happens when
// no placement exists.
func (s *Searcher) ChooseAndExecuteMove(b Board) (Move, bool) {
	if b.GameOver() {
		return Move{}, false
	}
	cur, ok := b.Current()
	if !ok {
		return Move{}, false
	}
	move, ok := s.Best(b.Grid(), cur, b.Next())
	if !ok {
		return Move{}, false
	}

	n := piece.Rotations(cur.Type)
	turns := ((move.Rotation-cur.Rotation)%n + n) % n
	dir := piece.Clockwise
	if turns == 3 {
		turns, dir = 1, piece.CounterClockwise
	}
	for i := 0; i < turns; i++ {
		b.RotatePiece(dir)
	}

	cur, _ = b.Current()
	dx := move.X - cur.X
	step := 1
	if dx < 0 {
		step = -1
	}
	for i := 0; i < abs(dx); i++ {
		if !b.MovePiece(step, 0) {
			break
		}
	}

	cur, _ = b.Current()
	move.Blocked = cur.X != move.X || cur.Rotation != move.Rotation
	b.HardDrop()
	return move, true
}
