// Package match runs a battle between many boards: it ticks every board engine, lets
// AI controllers act, routes line clears into garbage attacks and ranks competitors as
// they top out. Systems run in a fixed order each tick: human input, gravity, AI
// decisions, attacks, ranking.
package match

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/plus3/blockroyale/board"
	"github.com/plus3/blockroyale/search"
	"go.uber.org/zap"
)

// Match is one battle. It is driven from a single goroutine.
type Match struct {
	id        uuid.UUID
	cfg       Config
	seed      uint64
	log       *zap.Logger
	rng       *rand.Rand
	roster    *Roster
	human     *Human
	scheduler *Scheduler
	ai        *AISystem

	tick      int64
	elapsed   time.Duration
	survivors int
	over      bool
	winner    Competitor
}

// Option configures a Match.
type Option func(*Match)

// WithLogger sets the logger for match lifecycle events.
func WithLogger(log *zap.Logger) Option {
	return func(m *Match) { m.log = log }
}

// New validates cfg and builds a match with every competitor spawned.
func New(cfg Config, opts ...Option) (*Match, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid match config")
	}

	m := &Match{
		id:   uuid.New(),
		cfg:  cfg,
		seed: cfg.Seed,
		log:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.seed == 0 {
		m.seed = rand.Uint64()
	}
	m.rng = rand.New(rand.NewPCG(m.seed, m.seed^0x6a09e667f3bcc909))
	m.log = m.log.With(zap.String("match", m.id.String()))

	m.roster = newRoster(cfg.Competitors())
	id := 1
	if cfg.Human {
		m.human = newHuman(id, cfg.HumanName)
		m.human.engine = m.newEngine(&m.human.player)
		m.roster.add(m.human)
		id++
	}
	for i, profile := range cfg.AIs {
		controller := search.NewController(profile, m.childRand())
		ai := newAI(id, fmt.Sprintf("%s-%02d", profile.Name, i+1), controller)
		ai.engine = m.newEngine(&ai.player)
		m.roster.add(ai)
		id++
	}

	// a solo board plays until it tops out
	m.survivors = 1
	if m.roster.Len() == 1 {
		m.survivors = 0
	}

	m.ai = &AISystem{MaxDecisions: cfg.MaxDecisionsPerTick}
	m.scheduler = NewScheduler(m)
	m.scheduler.Register(&InputSystem{})
	m.scheduler.Register(&GravitySystem{})
	m.scheduler.Register(m.ai)
	m.scheduler.Register(&AttackSystem{Targeting: cfg.Targeting})
	m.scheduler.Register(&RankingSystem{})

	m.log.Info("match started",
		zap.Int("competitors", m.roster.Len()),
		zap.Uint64("seed", m.seed),
		zap.String("targeting", string(cfg.Targeting)),
	)
	return m, nil
}

func (m *Match) childRand() *rand.Rand {
	return rand.New(rand.NewPCG(m.rng.Uint64(), m.rng.Uint64()))
}

func (m *Match) newEngine(p *player) *board.Engine {
	return board.New(m.cfg.Width, m.cfg.Height,
		board.WithRand(m.childRand()),
		board.WithEvents(p),
	)
}

func (m *Match) ID() uuid.UUID              { return m.id }
func (m *Match) Config() Config             { return m.cfg }
func (m *Match) Seed() uint64               { return m.seed }
func (m *Match) Roster() *Roster            { return m.roster }
func (m *Match) Scheduler() *Scheduler      { return m.scheduler }
func (m *Match) AI() *AISystem              { return m.ai }
func (m *Match) Tick() int64                { return m.tick }
func (m *Match) Elapsed() time.Duration     { return m.elapsed }
func (m *Match) Over() bool                 { return m.over }
func (m *Match) Logger() *zap.Logger        { return m.log }
func (m *Match) Human() (*Human, bool)      { return m.human, m.human != nil }
func (m *Match) Winner() (Competitor, bool) { return m.winner, m.winner != nil }

// Once advances the match by one tick of length dt. It does nothing once the match is
// over.
func (m *Match) Once(dt time.Duration) {
	if m.over {
		return
	}
	m.tick++
	m.elapsed += dt
	m.scheduler.Once(dt, m.tick)
}

// Run ticks the match at the given interval until it is over or ctx is cancelled.
func (m *Match) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	for !m.over {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			m.Once(dt)
		}
	}
}

// Standings orders competitors for display: survivors by score, then eliminated
// competitors by final rank.
func (m *Match) Standings() []Competitor {
	out := make([]Competitor, 0, m.roster.Len())
	for c := range m.roster.All() {
		out = append(out, c)
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Alive() != b.Alive() {
			return a.Alive()
		}
		if a.Alive() {
			return a.Engine().Score() > b.Engine().Score()
		}
		return a.Rank() < b.Rank()
	})
	return out
}

func (m *Match) finish() {
	if m.over {
		return
	}
	m.over = true
	for c := range m.roster.Alive() {
		p := c.state()
		p.rank = 1
		m.winner = c
	}
	if m.winner == nil {
		for c := range m.roster.All() {
			if c.Rank() == 1 {
				m.winner = c
			}
		}
	}

	fields := []zap.Field{
		zap.Int64("ticks", m.tick),
		zap.Duration("elapsed", m.elapsed),
	}
	if m.winner != nil {
		fields = append(fields, zap.String("winner", m.winner.Name()))
	}
	m.log.Info("match over", fields...)
}
