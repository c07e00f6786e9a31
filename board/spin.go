package board

import "github.com/plus3/blockroyale/piece"

// spinBox is the edge of the square whose corners decide a spin.
const spinBox = 3

// IsSpin reports whether p, resting on g, qualifies for the spin bonus: the type must be
// spin capable and at least three of the four corners of its 3x3 box must be filled or
// outside the grid. The facing the piece entered with is not considered.
func IsSpin(g *Grid, p piece.Piece) bool {
	if !piece.SupportsSpin(p.Type) {
		return false
	}
	blocked := 0
	for _, c := range [4]piece.Point{
		{X: p.X, Y: p.Y},
		{X: p.X + spinBox - 1, Y: p.Y},
		{X: p.X, Y: p.Y + spinBox - 1},
		{X: p.X + spinBox - 1, Y: p.Y + spinBox - 1},
	} {
		if g.Blocked(c.X, c.Y) {
			blocked++
		}
	}
	return blocked >= 3
}
