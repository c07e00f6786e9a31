package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/blockroyale/match"
)

const (
	repeatDelay = 170 * time.Millisecond
	repeatRate  = 50 * time.Millisecond
)

// repeatKey fires once on press and then repeatedly while held.
type repeatKey struct {
	key   ebiten.Key
	input match.Input
	held  time.Duration
	delay time.Duration
}

type tapKey struct {
	keys  []ebiten.Key
	input match.Input
}

// keyboard maps key state to human inputs.
type keyboard struct {
	repeat []*repeatKey
	taps   []tapKey
}

func newKeyboard() *keyboard {
	return &keyboard{
		repeat: []*repeatKey{
			{key: ebiten.KeyArrowLeft, input: match.InputLeft, delay: repeatDelay},
			{key: ebiten.KeyArrowRight, input: match.InputRight, delay: repeatDelay},
			{key: ebiten.KeyArrowDown, input: match.InputSoftDrop, delay: repeatRate},
		},
		taps: []tapKey{
			{keys: []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyX}, input: match.InputRotateCW},
			{keys: []ebiten.Key{ebiten.KeyZ, ebiten.KeyControlLeft}, input: match.InputRotateCCW},
			{keys: []ebiten.Key{ebiten.KeySpace}, input: match.InputHardDrop},
			{keys: []ebiten.Key{ebiten.KeyC, ebiten.KeyShiftLeft}, input: match.InputHold},
		},
	}
}

func (k *keyboard) poll(h *match.Human, dt time.Duration) {
	for _, r := range k.repeat {
		switch {
		case inpututil.IsKeyJustPressed(r.key):
			r.held = 0
			h.Press(r.input)
		case ebiten.IsKeyPressed(r.key):
			r.held += dt
			if r.held > r.delay {
				r.held -= repeatRate
				h.Press(r.input)
			}
		default:
			r.held = 0
		}
	}

	for _, t := range k.taps {
		for _, key := range t.keys {
			if inpututil.IsKeyJustPressed(key) {
				h.Press(t.input)
				break
			}
		}
	}
}
