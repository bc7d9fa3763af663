package main

import (
	"log"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"

	"roomcrawler/balance"
	"roomcrawler/sim"
)

const (
	screenWidth  = 960
	screenHeight = 540

	// The shell hands the simulation one render frame of wall time per
	// Update; the simulation sub-steps at its own fixed tick rate.
	frameSeconds = 1.0 / 60.0
)

type Game struct {
	sim   *sim.Sim
	input *Input

	debug       bool
	balancePath string
	watcher     *balance.Watcher

	overlay      *ebitenui.UI
	overlayTitle *widget.Text
	uiRestart    bool
}

func NewGame(seed int64, balancePath string, debug bool) *Game {
	tun := sim.DefaultTuning()
	if balancePath != "" {
		spec, err := balance.Load(balancePath)
		if err != nil {
			log.Printf("balance: falling back to defaults: %v", err)
		} else {
			spec.Apply(&tun)
		}
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &Game{
		sim:         sim.New(seed, tun),
		input:       NewInput(),
		debug:       debug,
		balancePath: balancePath,
	}
	g.overlay = NewRunOverUI(g)

	if debug && balancePath != "" {
		w, err := balance.NewWatcher(balancePath)
		if err != nil {
			log.Printf("balance: watch disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	return g
}

func (g *Game) Update() error {
	g.input.Update()
	snap := g.input.Snapshot()
	if g.uiRestart {
		snap.Restart = true
		g.uiRestart = false
	}
	if snap.Quit {
		return ebiten.Termination
	}

	g.applyBalanceReloads()

	g.sim.Advance(frameSeconds, snap)

	if g.sim.RunOver() {
		g.updateOverlayTitle()
		g.overlay.Update()
	}
	return nil
}

// applyBalanceReloads re-applies the balance file onto the live tuning
// when the watcher signals a change. Runs between frames, never
// mid-tick.
func (g *Game) applyBalanceReloads() {
	if g.watcher == nil {
		return
	}
	select {
	case _, ok := <-g.watcher.Reloads:
		if !ok {
			g.watcher = nil
			return
		}
		spec, err := balance.Load(g.balancePath)
		if err != nil {
			log.Printf("balance: reload skipped: %v", err)
			return
		}
		spec.Apply(g.sim.Tuning())
		log.Printf("balance: reloaded %s", g.balancePath)
	case err, ok := <-g.watcher.Errors:
		if ok && err != nil {
			log.Printf("balance: watch error: %v", err)
		}
	default:
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	frame := g.sim.Frame()
	drawFrame(screen, frame)
	if frame.RunOver {
		g.overlay.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}
