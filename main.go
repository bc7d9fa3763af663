package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	seed := flag.Int64("seed", 0, "dungeon seed (0 = time-based)")
	debug := flag.Bool("debug", false, "enable debug mode (balance hot reload)")
	balancePath := flag.String("balance", "", "balance yaml overriding the default tuning")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("roomcrawler")

	game := NewGame(*seed, *balancePath, *debug)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
