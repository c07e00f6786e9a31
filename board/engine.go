// Package board simulates a single falling-block board: collision, rotation with wall
// kicks, gravity and lock delay, line clears, scoring and garbage.
package board

import (
	"math/rand/v2"
	"time"

	"github.com/plus3/blockroyale/piece"
)

const (
	DefaultWidth  = 10
	DefaultHeight = 20
)

// Clear describes the line clear produced by the most recent lock that cleared rows.
type Clear struct {
	Lines   int
	Spin    bool
	Perfect bool
	Combo   int
}

// Engine is the authoritative state machine of one competitor's board. It is not safe
// for concurrent use; a single driver calls it once per tick.
type Engine struct {
	grid   *Grid
	rng    *rand.Rand
	bag    *piece.Bag
	events EventSink

	current    piece.Piece
	hasCurrent bool
	next       piece.Type
	held       piece.Type
	hasHeld    bool
	canHold    bool

	score     int
	level     int
	lines     int
	combo     int
	pieces    int
	lastClear Clear
	gameOver  bool
	gravity   time.Duration
	lockTimer time.Duration
	isLocking bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand sets the source used for garbage holes and, unless WithBag is given, for the
// piece bag.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) { e.rng = rng }
}

// WithBag sets the piece generator.
func WithBag(bag *piece.Bag) Option {
	return func(e *Engine) { e.bag = bag }
}

// WithEvents sets the sink that receives board events.
func WithEvents(sink EventSink) Option {
	return func(e *Engine) { e.events = sink }
}

// New creates an engine for a width x height board and spawns its first piece.
func New(width, height int, opts ...Option) *Engine {
	e := &Engine{
		grid:   NewGrid(width, height),
		events: nopSink{},
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if e.bag == nil {
		e.bag = piece.NewBag(e.rng)
	}
	if e.events == nil {
		e.events = nopSink{}
	}
	e.Reset()
	return e
}

// Reset clears the board and all counters and spawns a fresh piece. The bag keeps
// dealing from where it was.
func (e *Engine) Reset() {
	e.grid = NewGrid(e.grid.width, e.grid.height)
	e.hasCurrent = false
	e.hasHeld = false
	e.score = 0
	e.level = 1
	e.lines = 0
	e.combo = 0
	e.pieces = 0
	e.lastClear = Clear{}
	e.gameOver = false
	e.next = e.bag.NextType()
	e.spawnNext()
}

func (e *Engine) Width() int  { return e.grid.width }
func (e *Engine) Height() int { return e.grid.height }

// Grid returns the live board. Callers must treat it as read-only; use Snapshot or
// Grid().Clone() for a copy.
func (e *Engine) Grid() *Grid { return e.grid }

// Current returns the falling piece. It is absent only after the board topped out.
func (e *Engine) Current() (piece.Piece, bool) { return e.current, e.hasCurrent }

// Next returns the type that will spawn after the current piece locks.
func (e *Engine) Next() piece.Type { return e.next }

// Held returns the held piece type, if any.
func (e *Engine) Held() (piece.Type, bool) { return e.held, e.hasHeld }

// Preview returns the next n types to spawn, starting with Next.
func (e *Engine) Preview(n int) []piece.Type {
	if n <= 0 {
		return nil
	}
	return append([]piece.Type{e.next}, e.bag.Preview(n-1)...)
}

func (e *Engine) CanHold() bool   { return e.canHold }
func (e *Engine) Score() int      { return e.score }
func (e *Engine) Level() int      { return e.level }
func (e *Engine) Lines() int      { return e.lines }
func (e *Engine) Combo() int      { return e.combo }
func (e *Engine) PieceCount() int { return e.pieces }
func (e *Engine) GameOver() bool  { return e.gameOver }
func (e *Engine) IsLocking() bool { return e.isLocking }

// LastClear returns the most recent unconsumed line clear. The zero value means none.
func (e *Engine) LastClear() Clear { return e.lastClear }

// ConsumeClear returns the most recent line clear and forgets it. The engine keeps only
// one clear, so the driver should consume it every tick.
func (e *Engine) ConsumeClear() Clear {
	c := e.lastClear
	e.lastClear = Clear{}
	return c
}

// IsColliding reports whether p would overlap filled cells or leave the board.
func (e *Engine) IsColliding(p piece.Piece) bool {
	return e.grid.Collides(p)
}

// GhostY returns the row the current piece would land on if hard dropped.
func (e *Engine) GhostY() int {
	return e.grid.DropY(e.current)
}

// MovePiece translates the current piece. It returns false and leaves the piece in place
// if the move collides. A successful sideways move refreshes the lock delay.
func (e *Engine) MovePiece(dx, dy int) bool {
	if e.gameOver || !e.hasCurrent {
		return false
	}
	moved := e.current.Translated(dx, dy)
	if e.grid.Collides(moved) {
		return false
	}
	e.current = moved
	if dy == 0 {
		e.lockTimer = 0
	} else {
		e.isLocking = false
		e.lockTimer = 0
	}
	return true
}

// RotatePiece turns the current piece one step in dir, trying each wall kick in order.
// If every kick collides the piece is left exactly as it was and false is returned.
func (e *Engine) RotatePiece(dir piece.Direction) bool {
	if e.gameOver || !e.hasCurrent {
		return false
	}
	from := e.current.Rotation
	to := piece.Rotate(e.current.Type, from, dir)
	for _, kick := range piece.WallKicks(e.current.Type, from, to) {
		candidate := e.current
		candidate.Rotation = to
		candidate.X += kick.DX
		candidate.Y += kick.DY
		if e.grid.Collides(candidate) {
			continue
		}
		e.current = candidate
		e.lockTimer = 0
		return true
	}
	return false
}

// SoftDrop moves the current piece down one row.
func (e *Engine) SoftDrop() bool {
	return e.MovePiece(0, 1)
}

// HardDrop drops the current piece as far as it goes, awards two points per row and
// locks it. It returns the number of rows dropped.
func (e *Engine) HardDrop() int {
	if e.gameOver || !e.hasCurrent {
		return 0
	}
	dropped := 0
	for e.MovePiece(0, 1) {
		dropped++
	}
	e.score += hardDropPerCell * dropped
	e.LockPiece()
	return dropped
}

// HoldPiece stashes the current piece, swapping in the held one or the next piece. It is
// allowed once per spawned piece.
func (e *Engine) HoldPiece() bool {
	if e.gameOver || !e.hasCurrent || !e.canHold {
		return false
	}
	current := e.current.Type
	if e.hasHeld {
		swapped := e.held
		e.held = current
		e.spawn(swapped)
	} else {
		e.held = current
		e.hasHeld = true
		e.spawnNext()
	}
	e.canHold = false
	e.events.HandleEvent(Event{Kind: PieceHeld, Piece: current})
	return true
}

// LockPiece commits the current piece to the board, clears rows, scores the lock and
// spawns the next piece.
func (e *Engine) LockPiece() {
	if e.gameOver || !e.hasCurrent {
		return
	}
	locked := e.current
	spin := IsSpin(e.grid, locked)
	e.grid.Place(locked)
	e.hasCurrent = false
	e.pieces++

	cleared := e.ClearLines()
	perfect := cleared > 0 && e.grid.IsEmpty()
	gained := LockScore(cleared, spin, e.combo, e.level, perfect)
	e.score += gained
	e.lines += cleared
	e.level = LevelFor(e.lines)

	e.events.HandleEvent(Event{Kind: PieceLocked, Piece: locked.Type, Spin: spin, Score: gained})
	if cleared > 0 {
		e.lastClear = Clear{Lines: cleared, Spin: spin, Perfect: perfect, Combo: e.combo}
		e.events.HandleEvent(Event{
			Kind:    LinesCleared,
			Piece:   locked.Type,
			Lines:   cleared,
			Spin:    spin,
			Perfect: perfect,
			Combo:   e.combo,
			Score:   gained,
		})
	}

	e.spawnNext()
}

// ClearLines removes full rows and updates the combo counter: any clear extends the
// combo, a lock without a clear resets it.
func (e *Engine) ClearLines() int {
	cleared := e.grid.ClearFullRows()
	if cleared > 0 {
		e.combo++
	} else {
		e.combo = 0
	}
	return cleared
}

// AttackLines converts a clear on this board into garbage lines, using the board's
// current combo and whether the board is now empty.
func (e *Engine) AttackLines(cleared int, spin bool) int {
	return AttackLines(cleared, spin, e.combo, cleared > 0 && e.grid.IsEmpty())
}

// ReceiveAttack pushes n garbage rows in from the bottom, each with one random hole. If
// the falling piece then overlaps the board, the game is over.
func (e *Engine) ReceiveAttack(n int) {
	if n <= 0 || e.gameOver {
		return
	}
	n = min(n, e.grid.height)
	holes := make([]int, n)
	for i := range holes {
		holes[i] = e.rng.IntN(e.grid.width)
	}
	e.grid.InjectGarbage(holes)
	e.events.HandleEvent(Event{Kind: GarbageReceived, Lines: n})

	if e.hasCurrent && e.grid.Collides(e.current) {
		e.topOut()
	}
}

// Update advances gravity and lock delay by dt. A piece that cannot fall starts the lock
// delay; once it has rested for LockDelay it is locked.
func (e *Engine) Update(dt time.Duration) {
	if e.gameOver || !e.hasCurrent {
		return
	}

	e.gravity += dt
	interval := DropInterval(e.level)
	grounded := false
	for e.gravity >= interval {
		e.gravity -= interval
		if !e.MovePiece(0, 1) {
			grounded = true
			e.gravity = 0
			break
		}
	}
	if grounded && !e.isLocking {
		// the lock delay counts from the first blocked step
		e.isLocking = true
		e.lockTimer = 0
		return
	}

	if !e.isLocking {
		return
	}
	if !e.grid.Collides(e.current.Translated(0, 1)) {
		e.isLocking = false
		e.lockTimer = 0
		return
	}
	e.lockTimer += dt
	if e.lockTimer >= LockDelay {
		e.LockPiece()
	}
}

func (e *Engine) spawnNext() {
	t := e.next
	e.next = e.bag.NextType()
	e.spawn(t)
	e.canHold = true
}

func (e *Engine) spawn(t piece.Type) {
	e.current = piece.Spawned(t, e.grid.width)
	e.hasCurrent = true
	e.gravity = 0
	e.lockTimer = 0
	e.isLocking = false
	if e.grid.Collides(e.current) {
		e.topOut()
	}
}

func (e *Engine) topOut() {
	e.gameOver = true
	e.isLocking = false
	e.events.HandleEvent(Event{Kind: ToppedOut})
}

// Snapshot is a deep, read-only copy of an engine's observable state.
type Snapshot struct {
	Grid       *Grid
	Current    piece.Piece
	HasCurrent bool
	GhostY     int
	Next       piece.Type
	Held       piece.Type
	HasHeld    bool
	Score      int
	Level      int
	Lines      int
	Combo      int
	GameOver   bool
}

// Snapshot copies the engine state for renderers.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Grid:       e.grid.Clone(),
		Current:    e.current,
		HasCurrent: e.hasCurrent,
		Next:       e.next,
		Held:       e.held,
		HasHeld:    e.hasHeld,
		Score:      e.score,
		Level:      e.level,
		Lines:      e.lines,
		Combo:      e.combo,
		GameOver:   e.gameOver,
	}
	if e.hasCurrent {
		s.GhostY = e.GhostY()
	}
	return s
}
