package match

import (
	"github.com/plus3/blockroyale/board"
	"github.com/plus3/blockroyale/piece"
	"github.com/plus3/blockroyale/search"
)

//go:generate go tool stringer -type=Input

// Input is one human control press.
type Input int

const (
	InputLeft Input = iota
	InputRight
	InputSoftDrop
	InputHardDrop
	InputRotateCW
	InputRotateCCW
	InputHold
)

// Stats counts what a competitor has done during a match.
type Stats struct {
	Pieces         int
	LinesCleared   int
	LinesSent      int
	LinesReceived  int
	LinesCancelled int
	KOs            int
	MaxCombo       int
	Spins          int
	Quads          int
	PerfectClears  int
	Holds          int
}

// Garbage is an attack waiting to enter a board.
type Garbage struct {
	From  int
	Lines int
}

// Competitor is one board in a match. It is implemented by *Human and *AI only.
type Competitor interface {
	ID() int
	Name() string
	Engine() *board.Engine
	Alive() bool
	// Rank is 0 while alive and the final placing, 1 being the winner, once decided.
	Rank() int
	Stats() Stats
	// PendingLines is the total garbage queued against this competitor.
	PendingLines() int

	state() *player
}

// player is the state shared by every competitor kind.
type player struct {
	id           int
	name         string
	engine       *board.Engine
	alive        bool
	rank         int
	stats        Stats
	pending      []Garbage
	lastAttacker int
	locked       bool
	// clears holds every clear since the attack system last ran, oldest first.
	clears []board.Clear
}

func newPlayer(id int, name string) player {
	return player{
		id:    id,
		name:  name,
		alive: true,
		stats: Stats{},
	}
}

func (p *player) ID() int               { return p.id }
func (p *player) Name() string          { return p.name }
func (p *player) Engine() *board.Engine { return p.engine }
func (p *player) Alive() bool           { return p.alive }
func (p *player) Rank() int             { return p.rank }
func (p *player) Stats() Stats          { return p.stats }
func (p *player) state() *player        { return p }

func (p *player) PendingLines() int {
	total := 0
	for _, g := range p.pending {
		total += g.Lines
	}
	return total
}

// HandleEvent keeps stats in step with the board engine.
func (p *player) HandleEvent(ev board.Event) {
	switch ev.Kind {
	case board.PieceLocked:
		p.stats.Pieces++
		p.locked = true
		if ev.Spin {
			p.stats.Spins++
		}
	case board.LinesCleared:
		p.clears = append(p.clears, board.Clear{
			Lines:   ev.Lines,
			Spin:    ev.Spin,
			Perfect: ev.Perfect,
			Combo:   ev.Combo,
		})
		p.stats.LinesCleared += ev.Lines
		p.stats.MaxCombo = max(p.stats.MaxCombo, ev.Combo)
		if ev.Lines == 4 {
			p.stats.Quads++
		}
		if ev.Perfect {
			p.stats.PerfectClears++
		}
	case board.GarbageReceived:
		p.stats.LinesReceived += ev.Lines
	case board.PieceHeld:
		p.stats.Holds++
	}
}

func (p *player) queueGarbage(g Garbage) {
	p.pending = append(p.pending, g)
}

// cancelGarbage removes up to lines of pending garbage, oldest first, and returns how
// many lines were cancelled.
func (p *player) cancelGarbage(lines int) int {
	cancelled := 0
	for len(p.pending) > 0 && lines > 0 {
		n := min(lines, p.pending[0].Lines)
		p.pending[0].Lines -= n
		lines -= n
		cancelled += n
		if p.pending[0].Lines == 0 {
			p.pending = p.pending[1:]
		}
	}
	p.stats.LinesCancelled += cancelled
	return cancelled
}

// deliverGarbage pushes each pending attack into the board as one injection and
// returns the number of lines received. Delivery stops if the board tops out.
func (p *player) deliverGarbage() int {
	received := 0
	for len(p.pending) > 0 && !p.engine.GameOver() {
		g := p.pending[0]
		p.pending = p.pending[1:]
		p.engine.ReceiveAttack(g.Lines)
		p.lastAttacker = g.From
		received += g.Lines
	}
	p.pending = p.pending[:0]
	return received
}

// Human is a competitor driven by queued key presses.
type Human struct {
	player
	inputs []Input
}

func newHuman(id int, name string) *Human {
	return &Human{player: newPlayer(id, name)}
}

// Press queues an input for the next tick.
func (h *Human) Press(in Input) {
	h.inputs = append(h.inputs, in)
}

func (h *Human) applyInputs() {
	for _, in := range h.inputs {
		apply(h.engine, in)
	}
	h.inputs = h.inputs[:0]
}

func apply(e *board.Engine, in Input) {
	switch in {
	case InputLeft:
		e.MovePiece(-1, 0)
	case InputRight:
		e.MovePiece(1, 0)
	case InputSoftDrop:
		e.SoftDrop()
	case InputHardDrop:
		e.HardDrop()
	case InputRotateCW:
		e.RotatePiece(piece.Clockwise)
	case InputRotateCCW:
		e.RotatePiece(piece.CounterClockwise)
	case InputHold:
		e.HoldPiece()
	}
}

// AI is a competitor driven by a search controller.
type AI struct {
	player
	controller *search.Controller
}

func newAI(id int, name string, controller *search.Controller) *AI {
	return &AI{player: newPlayer(id, name), controller: controller}
}

func (a *AI) Controller() *search.Controller { return a.controller }
