package match

import "go.uber.org/zap"

// Commands buffers cross-board operations produced while systems run. They are applied
// at the end of the tick so no system observes a half-delivered attack.
type Commands struct {
	deliveries []int
	attacks    []attackCommand
	defers     []func()
}

type attackCommand struct {
	from, to int
	lines    int
}

func newCommands() *Commands {
	return &Commands{}
}

// Attack queues lines of garbage from one competitor onto another's pending queue.
func (c *Commands) Attack(from, to, lines int) {
	c.attacks = append(c.attacks, attackCommand{from: from, to: to, lines: lines})
}

// Deliver queues pushing a competitor's pending garbage into its board.
func (c *Commands) Deliver(id int) {
	c.deliveries = append(c.deliveries, id)
}

// Defer queues a function to run after all deliveries and attacks are applied.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Flush applies buffered commands to m in order: deliveries, then attacks, then
// deferred functions. The buffer is reset afterwards.
func (c *Commands) Flush(m *Match) {
	for _, id := range c.deliveries {
		target, ok := m.roster.Get(id)
		if !ok || !target.Alive() {
			continue
		}
		received := target.state().deliverGarbage()
		m.log.Debug("garbage delivered",
			zap.String("competitor", target.Name()),
			zap.Int("lines", received),
		)
	}

	for _, cmd := range c.attacks {
		from, ok := m.roster.Get(cmd.from)
		if !ok {
			continue
		}
		to, ok := m.roster.Get(cmd.to)
		if !ok || !to.Alive() {
			continue
		}
		from.state().stats.LinesSent += cmd.lines
		to.state().queueGarbage(Garbage{From: cmd.from, Lines: cmd.lines})
		m.log.Debug("attack",
			zap.String("from", from.Name()),
			zap.String("to", to.Name()),
			zap.Int("lines", cmd.lines),
		)
	}

	for _, fn := range c.defers {
		fn()
	}

	c.deliveries = c.deliveries[:0]
	c.attacks = c.attacks[:0]
	c.defers = c.defers[:0]
}
