package match

import (
	"github.com/plus3/blockroyale/board"
	"go.uber.org/zap"
)

// InputSystem applies the keys a human pressed since the last tick.
type InputSystem struct{}

func (s *InputSystem) Execute(frame *UpdateFrame) {
	for c := range frame.Match.roster.Alive() {
		if h, ok := c.(*Human); ok {
			h.applyInputs()
		}
	}
}

// GravitySystem advances every live board's gravity and lock delay.
type GravitySystem struct{}

func (s *GravitySystem) Execute(frame *UpdateFrame) {
	for c := range frame.Match.roster.Alive() {
		c.Engine().Update(frame.DeltaTime)
	}
}

// AISystem advances AI decision clocks and lets due controllers act. At most
// MaxDecisions searches run per tick; a due controller that misses out keeps its turn
// and the next tick starts with it.
type AISystem struct {
	MaxDecisions int
	Decisions    int64
	Deferred     int64

	// next is the id of the AI that goes first next tick, or the first live AI after it.
	next int
}

func (s *AISystem) Execute(frame *UpdateFrame) {
	var ais []*AI
	start := -1
	for c := range frame.Match.roster.Alive() {
		if ai, ok := c.(*AI); ok {
			ai.controller.Advance(frame.DeltaTime)
			// roster order is ascending id
			if start < 0 && ai.id >= s.next {
				start = len(ais)
			}
			ais = append(ais, ai)
		}
	}
	if len(ais) == 0 {
		return
	}
	if start < 0 {
		start = 0
	}

	next := (start + 1) % len(ais)
	made := 0
	for i := range ais {
		idx := (start + i) % len(ais)
		ai := ais[idx]
		if !ai.controller.Due() {
			continue
		}
		if s.MaxDecisions > 0 && made == s.MaxDecisions {
			s.Deferred++
			next = idx
			break
		}
		ai.controller.Decide(ai.engine)
		made++
	}
	s.next = ais[next].id
	s.Decisions += int64(made)
}

// AttackSystem turns every line clear made this tick into an attack, in the order the
// clears happened. An attack first cancels the sender's own pending garbage; the rest is
// sent to a target. A board that locked without clearing takes its pending garbage.
type AttackSystem struct {
	Targeting Targeting
}

func (s *AttackSystem) Execute(frame *UpdateFrame) {
	for c := range frame.Match.roster.Alive() {
		p := c.state()
		p.engine.ConsumeClear()
		clears := p.clears
		p.clears = p.clears[:0]
		locked := p.locked
		p.locked = false

		for _, clear := range clears {
			s.send(frame, c, clear)
		}
		if len(clears) == 0 && locked && len(p.pending) > 0 {
			frame.Commands.Deliver(p.id)
		}
	}
}

// send converts clear into garbage, cancels from's pending garbage with it and queues
// the remainder against a target. It returns the lines queued.
func (s *AttackSystem) send(frame *UpdateFrame, from Competitor, clear board.Clear) int {
	lines := board.AttackLines(clear.Lines, clear.Spin, clear.Combo, clear.Perfect)
	lines -= from.state().cancelGarbage(lines)
	if lines <= 0 {
		return 0
	}
	m := frame.Match
	target, ok := s.Targeting.pick(m.roster, from, m.rng)
	if !ok {
		return 0
	}
	frame.Commands.Attack(from.ID(), target.ID(), lines)
	return lines
}

// RankingSystem eliminates topped out boards once the tick's attacks have landed and
// ends the match when at most one competitor remains.
type RankingSystem struct{}

func (s *RankingSystem) Execute(frame *UpdateFrame) {
	m := frame.Match
	frame.Commands.Defer(func() {
		for c := range m.roster.All() {
			if c.Alive() && c.Engine().GameOver() {
				m.eliminate(c)
			}
		}
		if m.roster.AliveCount() <= m.survivors {
			m.finish()
		}
	})
}

func (m *Match) eliminate(c Competitor) {
	rank := m.roster.eliminate(c)
	fields := []zap.Field{
		zap.String("competitor", c.Name()),
		zap.Int("rank", rank),
		zap.Int64("tick", m.tick),
	}
	if attacker, ok := m.roster.Get(c.state().lastAttacker); ok {
		attacker.state().stats.KOs++
		fields = append(fields, zap.String("attacker", attacker.Name()))
	}
	m.log.Info("competitor eliminated", fields...)
}
