package match

import (
	"math"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/plus3/blockroyale/board"
	"github.com/plus3/blockroyale/piece"
	"github.com/plus3/blockroyale/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestMatch builds a human plus n medium AIs with a fixed seed.
func newTestMatch(t *testing.T, n int, targeting Targeting) *Match {
	t.Helper()
	cfg := DefaultConfig()
	cfg.AIs = make([]search.Profile, n)
	for i := range cfg.AIs {
		cfg.AIs[i] = search.DefaultProfile()
	}
	cfg.Seed = 99
	cfg.Targeting = targeting
	m, err := New(cfg)
	require.NoError(t, err)
	return m
}

func competitor(t *testing.T, m *Match, id int) Competitor {
	t.Helper()
	c, ok := m.roster.Get(id)
	require.True(t, ok)
	return c
}

// orderedSource makes every shuffle the identity, so a bag deals I O T S Z J L forever.
type orderedSource struct{}

func (orderedSource) Uint64() uint64 { return math.MaxUint64 }

func TestEveryClearInATickAttacks(t *testing.T) {
	m := newTestMatch(t, 1, TargetRandom)
	human, ai := competitor(t, m, 1), competitor(t, m, 2)
	p := human.state()
	p.engine = board.New(m.cfg.Width, m.cfg.Height,
		board.WithBag(piece.NewBag(rand.New(orderedSource{}))),
		board.WithEvents(p),
	)

	rows := make([]string, 0, m.cfg.Height)
	for len(rows) < m.cfg.Height-5 {
		rows = append(rows, strings.Repeat(".", m.cfg.Width))
	}
	rows = append(rows,
		".........G",
		".GGG..GGGG",
		".GGG..GGGG",
		".GGGGGGGGG",
		".GGGGGGGGG",
	)
	p.engine.Grid().CopyFrom(board.MustParseGrid(rows...))

	// an upright I down the left column clears two rows, then the O clears the next two
	h := human.(*Human)
	h.Press(InputRotateCW)
	for i := 0; i < 6; i++ {
		h.Press(InputLeft)
	}
	h.Press(InputHardDrop)
	h.Press(InputHardDrop)
	m.Once(time.Millisecond)

	assert.Equal(t, 4, human.Stats().LinesCleared)
	assert.Equal(t, 2, human.Stats().MaxCombo)
	assert.Equal(t, 3, human.Stats().LinesSent, "a double, then a double with a combo")
	assert.Equal(t, []Garbage{{From: 1, Lines: 1}, {From: 1, Lines: 2}}, ai.state().pending)
	assert.Empty(t, p.clears)
}

func TestAIRoundRobinSurvivesElimination(t *testing.T) {
	m := newTestMatch(t, 3, TargetRandom)
	m.ai.MaxDecisions = 1

	// every controller is due each tick; one decides, the next is deferred
	m.Once(time.Second)
	m.Once(time.Second)
	m.roster.eliminate(competitor(t, m, 3))
	m.Once(time.Second)

	for id := 2; id <= 4; id++ {
		ai := competitor(t, m, id).(*AI)
		assert.Equal(t, 1, ai.Controller().Stats().Decisions, "ai %d", id)
	}
}

func TestCancelGarbage(t *testing.T) {
	p := newPlayer(1, "p")
	p.queueGarbage(Garbage{From: 2, Lines: 3})
	p.queueGarbage(Garbage{From: 3, Lines: 2})

	assert.Equal(t, 4, p.cancelGarbage(4))
	assert.Equal(t, []Garbage{{From: 3, Lines: 1}}, p.pending)
	assert.Equal(t, 1, p.PendingLines())

	assert.Equal(t, 1, p.cancelGarbage(5))
	assert.Empty(t, p.pending)
	assert.Equal(t, 5, p.stats.LinesCancelled)
	assert.Zero(t, p.cancelGarbage(2))
}

func TestAttackCancelsPendingThenSends(t *testing.T) {
	m := newTestMatch(t, 1, TargetLeader)
	human, ai := competitor(t, m, 1), competitor(t, m, 2)
	human.state().queueGarbage(Garbage{From: ai.ID(), Lines: 1})

	frame := newUpdateFrame(time.Millisecond, 1, m)
	sent := (&AttackSystem{Targeting: TargetLeader}).send(frame, human, board.Clear{Lines: 4, Combo: 1})
	assert.Equal(t, 3, sent)
	assert.Zero(t, human.PendingLines(), "sent nothing before flush but cancelled at once")

	frame.Commands.Flush(m)
	assert.Equal(t, 3, human.Stats().LinesSent)
	assert.Equal(t, 1, human.Stats().LinesCancelled)
	assert.Equal(t, []Garbage{{From: human.ID(), Lines: 3}}, ai.state().pending)
	assert.Equal(t, 3, ai.PendingLines())
}

func TestAttackFullyCancelled(t *testing.T) {
	m := newTestMatch(t, 1, TargetRandom)
	human, ai := competitor(t, m, 1), competitor(t, m, 2)
	human.state().queueGarbage(Garbage{From: ai.ID(), Lines: 6})

	frame := newUpdateFrame(time.Millisecond, 1, m)
	sent := (&AttackSystem{Targeting: TargetRandom}).send(frame, human, board.Clear{Lines: 2, Combo: 1})
	frame.Commands.Flush(m)

	assert.Zero(t, sent)
	assert.Equal(t, 5, human.PendingLines())
	assert.Zero(t, ai.PendingLines())
}

func TestPendingGarbageEntersOnLockWithoutClear(t *testing.T) {
	m := newTestMatch(t, 1, TargetRandom)
	human := competitor(t, m, 1)
	p := human.state()
	p.queueGarbage(Garbage{From: 2, Lines: 2})
	p.queueGarbage(Garbage{From: 2, Lines: 1})

	frame := newUpdateFrame(time.Millisecond, 1, m)
	(&AttackSystem{}).Execute(frame)
	frame.Commands.Flush(m)
	assert.Equal(t, 3, human.PendingLines(), "no lock yet")

	p.locked = true
	frame = newUpdateFrame(time.Millisecond, 2, m)
	(&AttackSystem{}).Execute(frame)
	frame.Commands.Flush(m)

	assert.Zero(t, human.PendingLines())
	assert.Equal(t, 3, human.Stats().LinesReceived)
	assert.Equal(t, 2, p.lastAttacker)
	assert.False(t, p.locked)

	g := human.Engine().Grid()
	for y := g.Height() - 3; y < g.Height(); y++ {
		filled := 0
		for x := 0; x < g.Width(); x++ {
			if g.At(x, y) == board.Garbage {
				filled++
			}
		}
		assert.Equal(t, g.Width()-1, filled, "row %d", y)
	}
}

func TestEliminationRanksAndCredits(t *testing.T) {
	m := newTestMatch(t, 2, TargetRandom)
	human, first, second := competitor(t, m, 1), competitor(t, m, 2), competitor(t, m, 3)

	second.state().queueGarbage(Garbage{From: human.ID(), Lines: m.cfg.Height})
	second.state().deliverGarbage()
	require.True(t, second.Engine().GameOver())

	m.Once(time.Millisecond)
	assert.False(t, second.Alive())
	assert.Equal(t, 3, second.Rank())
	assert.Equal(t, 1, human.Stats().KOs)
	assert.Equal(t, 2, m.roster.AliveCount())
	assert.False(t, m.Over())

	first.Engine().ReceiveAttack(m.cfg.Height)
	m.Once(time.Millisecond)

	assert.Equal(t, 2, first.Rank())
	assert.Equal(t, 1, human.Stats().KOs, "untracked garbage credits nobody")
	require.True(t, m.Over())
	winner, ok := m.Winner()
	require.True(t, ok)
	assert.Equal(t, human.ID(), winner.ID())
	assert.Equal(t, 1, human.Rank())

	standings := m.Standings()
	require.Len(t, standings, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{standings[0].ID(), standings[1].ID(), standings[2].ID()})
}

func TestSimultaneousEliminations(t *testing.T) {
	m := newTestMatch(t, 3, TargetRandom)
	b, c := competitor(t, m, 2), competitor(t, m, 3)
	b.Engine().ReceiveAttack(m.cfg.Height)
	c.Engine().ReceiveAttack(m.cfg.Height)

	m.Once(time.Millisecond)

	assert.Equal(t, 4, b.Rank())
	assert.Equal(t, 3, c.Rank())
	assert.Equal(t, 2, m.roster.AliveCount())
	assert.False(t, m.Over())
}

func TestTargeting(t *testing.T) {
	m := newTestMatch(t, 3, TargetRandom)
	human := competitor(t, m, 1)

	t.Run("random never picks the sender", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			target, ok := TargetRandom.pick(m.roster, human, m.rng)
			require.True(t, ok)
			assert.NotEqual(t, human.ID(), target.ID())
		}
	})

	t.Run("leader ties go to the earliest", func(t *testing.T) {
		target, ok := TargetLeader.pick(m.roster, human, m.rng)
		require.True(t, ok)
		assert.Equal(t, 2, target.ID())
	})

	t.Run("weakest has the tallest stack", func(t *testing.T) {
		competitor(t, m, 3).Engine().ReceiveAttack(5)
		target, ok := TargetWeakest.pick(m.roster, human, m.rng)
		require.True(t, ok)
		assert.Equal(t, 3, target.ID())
	})

	t.Run("no opponents", func(t *testing.T) {
		for id := 2; id <= 4; id++ {
			m.roster.eliminate(competitor(t, m, id))
		}
		_, ok := TargetRandom.pick(m.roster, human, m.rng)
		assert.False(t, ok)
	})
}

func TestCommandsFlushOrder(t *testing.T) {
	m := newTestMatch(t, 1, TargetRandom)
	ai := competitor(t, m, 2)

	var pendingAtDefer int
	cmds := newCommands()
	cmds.Defer(func() { pendingAtDefer = ai.PendingLines() })
	cmds.Attack(1, 2, 4)
	cmds.Attack(1, 99, 4)
	cmds.Flush(m)

	assert.Equal(t, 4, pendingAtDefer, "deferred functions see applied attacks")

	cmds.Flush(m)
	assert.Equal(t, 4, ai.PendingLines(), "flush resets the buffer")
}
