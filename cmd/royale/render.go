package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/blockroyale/board"
	"github.com/plus3/blockroyale/match"
	"github.com/plus3/blockroyale/piece"
)

const (
	mainCell  = 28
	smallCell = 8
	margin    = 40
	smallCols = 6
)

var (
	background = color.RGBA{18, 18, 24, 255}
	well       = color.RGBA{30, 30, 40, 255}
	gridLine   = color.RGBA{50, 50, 64, 255}
	ghost      = color.RGBA{255, 255, 255, 60}
	eliminated = color.RGBA{0, 0, 0, 170}
)

func fillCell(dst *ebiten.Image, ox, oy, size float32, x, y int, clr color.Color) {
	vector.DrawFilledRect(dst, ox+float32(x)*size, oy+float32(y)*size, size-1, size-1, clr, false)
}

// drawBoard draws s with its top left corner at (ox, oy).
func drawBoard(dst *ebiten.Image, s board.Snapshot, ox, oy, size float32) {
	w, h := s.Grid.Width(), s.Grid.Height()
	vector.DrawFilledRect(dst, ox, oy, float32(w)*size, float32(h)*size, well, false)
	vector.StrokeRect(dst, ox-1, oy-1, float32(w)*size+2, float32(h)*size+2, 1, gridLine, false)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if c := s.Grid.At(x, y); c.Filled() {
				fillCell(dst, ox, oy, size, x, y, c.Color())
			}
		}
	}

	if !s.HasCurrent {
		return
	}
	landed := s.Current
	landed.Y = s.GhostY
	for _, p := range landed.Cells() {
		if p.Y >= 0 {
			fillCell(dst, ox, oy, size, p.X, p.Y, ghost)
		}
	}
	for _, p := range s.Current.Cells() {
		if p.Y >= 0 {
			fillCell(dst, ox, oy, size, p.X, p.Y, piece.Color(s.Current.Type))
		}
	}
}

func drawPanel(dst *ebiten.Image, c match.Competitor, s board.Snapshot, x, y int) {
	stats := c.Stats()
	held := "-"
	if s.HasHeld {
		held = s.Held.String()
	}
	text := fmt.Sprintf(
		"%s\n\nSCORE  %d\nLEVEL  %d\nLINES  %d\nCOMBO  %d\n\nNEXT   %s\nHOLD   %s\n\nSENT   %d\nINCOMING %d\nKOs    %d",
		c.Name(), s.Score, s.Level, s.Lines, s.Combo,
		s.Next, held, stats.LinesSent, c.PendingLines(), stats.KOs,
	)
	ebitenutil.DebugPrintAt(dst, text, x, y)
}

// drawMatch lays the human board out large and every AI board in a grid beside it.
func drawMatch(dst *ebiten.Image, m *match.Match) {
	dst.Fill(background)

	cfg := m.Config()
	smallX := margin
	if human, ok := m.Human(); ok {
		s := human.Engine().Snapshot()
		drawBoard(dst, s, margin, margin, mainCell)
		drawPanel(dst, human, s, margin+cfg.Width*mainCell+20, margin)
		if !human.Alive() {
			dim(dst, margin, margin, cfg.Width*mainCell, cfg.Height*mainCell)
		}
		smallX = margin + cfg.Width*mainCell + 180
	}

	slotW := cfg.Width*smallCell + 16
	slotH := cfg.Height*smallCell + 28
	i := 0
	for c := range m.Roster().All() {
		if _, ok := c.(*match.Human); ok {
			continue
		}
		x := smallX + (i%smallCols)*slotW
		y := margin + (i/smallCols)*slotH
		drawBoard(dst, c.Engine().Snapshot(), float32(x), float32(y), smallCell)
		label := c.Name()
		if !c.Alive() {
			dim(dst, x, y, cfg.Width*smallCell, cfg.Height*smallCell)
			label = fmt.Sprintf("%s #%d", label, c.Rank())
		}
		ebitenutil.DebugPrintAt(dst, label, x, y+cfg.Height*smallCell+2)
		i++
	}

	if m.Over() {
		msg := "MATCH OVER - press R to play again"
		if winner, ok := m.Winner(); ok {
			msg = fmt.Sprintf("%s WINS - press R to play again", winner.Name())
		}
		ebitenutil.DebugPrintAt(dst, msg, margin, margin+cfg.Height*mainCell+12)
	}
}

func dim(dst *ebiten.Image, x, y, w, h int) {
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), eliminated, false)
}
