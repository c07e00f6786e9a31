package search

import (
	"math/rand/v2"
	"time"

	"github.com/plus3/blockroyale/piece"
)

//go:generate go tool stringer -type=Action

// Action is what a controller did on a decision tick.
type Action int

const (
	ActionNone Action = iota
	ActionPlace
	ActionShiftLeft
	ActionShiftRight
	ActionRotate
	ActionHardDrop
	ActionHold
)

var mistakes = [...]Action{ActionShiftLeft, ActionShiftRight, ActionRotate, ActionHardDrop, ActionHold}

// ControllerStats counts what a controller has done.
type ControllerStats struct {
	Decisions int
	Placed    int
	Mistakes  int
	Stalled   int
	// Blocked counts searched moves the board refused, dropped short of the target.
	Blocked int
}

// Controller paces one AI competitor: it waits a randomized interval between
// decisions and sometimes makes a random move instead of searching.
type Controller struct {
	searcher *Searcher
	rng      *rand.Rand
	elapsed  time.Duration
	interval time.Duration
	stats    ControllerStats
}

// NewController returns a controller for profile. rng drives the decision interval and
// mistakes.
func NewController(profile Profile, rng *rand.Rand) *Controller {
	c := &Controller{
		searcher: New(profile),
		rng:      rng,
	}
	c.interval = c.nextInterval()
	return c
}

func (c *Controller) Profile() Profile         { return c.searcher.profile }
func (c *Controller) Stats() ControllerStats   { return c.stats }
func (c *Controller) Interval() time.Duration  { return c.interval }
func (c *Controller) Searcher() *Searcher      { return c.searcher }
func (c *Controller) Elapsed() time.Duration   { return c.elapsed }
func (c *Controller) Remaining() time.Duration { return max(0, c.interval-c.elapsed) }

// Advance moves the controller's clock forward by dt.
func (c *Controller) Advance(dt time.Duration) {
	c.elapsed += dt
}

// Due reports whether the decision interval has elapsed.
func (c *Controller) Due() bool {
	return c.elapsed >= c.interval
}

// Decide acts on b once and starts a new randomized interval. With the profile's
// error probability it performs one random primitive action, otherwise it places the
// current piece with the searcher.
func (c *Controller) Decide(b Board) Action {
	c.elapsed = 0
	c.interval = c.nextInterval()
	c.stats.Decisions++

	if c.rng.Float64() < c.searcher.profile.MoveErrorProbability {
		c.stats.Mistakes++
		action := mistakes[c.rng.IntN(len(mistakes))]
		perform(b, action)
		return action
	}

	move, ok := c.searcher.ChooseAndExecuteMove(b)
	switch {
	case !ok:
		c.stats.Stalled++
		return ActionNone
	case move.Blocked:
		c.stats.Blocked++
	default:
		c.stats.Placed++
	}
	return ActionPlace
}

func perform(b Board, action Action) {
	switch action {
	case ActionShiftLeft:
		b.MovePiece(-1, 0)
	case ActionShiftRight:
		b.MovePiece(1, 0)
	case ActionRotate:
		b.RotatePiece(piece.Clockwise)
	case ActionHardDrop:
		b.HardDrop()
	case ActionHold:
		b.HoldPiece()
	}
}

func (c *Controller) nextInterval() time.Duration {
	lo := c.searcher.profile.MinDecisionInterval
	hi := c.searcher.profile.MaxDecisionInterval
	if hi <= lo {
		return lo
	}
	return lo + time.Duration(c.rng.Int64N(int64(hi-lo)+1))
}
