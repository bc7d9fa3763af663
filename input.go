package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"roomcrawler/sim"
)

// Input polls the keyboard into a simulation snapshot once per frame.
// WASD moves, arrow keys shoot, R restarts a finished run, Esc quits.
type Input struct {
	snap sim.Snapshot
}

func NewInput() *Input {
	return &Input{}
}

// Update samples the current key state.
func (i *Input) Update() {
	i.snap = sim.Snapshot{
		MoveUp:    ebiten.IsKeyPressed(ebiten.KeyW),
		MoveDown:  ebiten.IsKeyPressed(ebiten.KeyS),
		MoveLeft:  ebiten.IsKeyPressed(ebiten.KeyA),
		MoveRight: ebiten.IsKeyPressed(ebiten.KeyD),

		ShootUp:    ebiten.IsKeyPressed(ebiten.KeyUp),
		ShootDown:  ebiten.IsKeyPressed(ebiten.KeyDown),
		ShootLeft:  ebiten.IsKeyPressed(ebiten.KeyLeft),
		ShootRight: ebiten.IsKeyPressed(ebiten.KeyRight),

		Restart: inpututil.IsKeyJustPressed(ebiten.KeyR),
		Quit:    inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
}

// Snapshot returns the most recent sample.
func (i *Input) Snapshot() sim.Snapshot {
	return i.snap
}
