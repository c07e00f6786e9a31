package match

import "time"

// System is one step of a match tick. Systems run in registration order and may keep
// state between ticks.
type System interface {
	Execute(frame *UpdateFrame)
}

// UpdateFrame is passed to every system during one tick.
type UpdateFrame struct {
	DeltaTime time.Duration
	Tick      int64
	Commands  *Commands
	Match     *Match
}

func newUpdateFrame(dt time.Duration, tick int64, m *Match) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Tick:      tick,
		Commands:  newCommands(),
		Match:     m,
	}
}
