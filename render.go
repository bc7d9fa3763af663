package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	etext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"roomcrawler/sim"
)

var (
	colBackdrop   = color.RGBA{R: 15, G: 15, B: 18, A: 255}
	colFloor      = color.RGBA{R: 20, G: 20, B: 25, A: 255}
	colWall       = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	colBossGlow   = color.RGBA{R: 200, G: 80, B: 200, A: 255}
	colDoorLocked = color.RGBA{R: 180, G: 60, B: 60, A: 255}
	colDoorOpen   = color.RGBA{R: 100, G: 220, B: 120, A: 255}

	colPlayer  = color.RGBA{R: 180, G: 220, B: 255, A: 255}
	colBullet  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colChaser  = color.RGBA{R: 240, G: 180, B: 60, A: 255}
	colPatrol  = color.RGBA{R: 120, G: 200, B: 255, A: 255}
	colWounded = color.RGBA{R: 255, G: 120, B: 120, A: 255}

	colHeart   = color.RGBA{R: 220, G: 40, B: 40, A: 255}
	colHUDLine = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colMapRoom = color.RGBA{R: 120, G: 120, B: 120, A: 255}
	colMapBoss = color.RGBA{R: 200, G: 90, B: 200, A: 255}
	colMapHere = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colHint    = color.RGBA{R: 150, G: 150, B: 160, A: 255}
)

var hudFace = etext.NewGoXFace(basicfont.Face7x13)

// drawFrame renders one simulation snapshot: room, doors, entities, and
// the HUD strip above the room.
func drawFrame(screen *ebiten.Image, f sim.Frame) {
	screen.Fill(colBackdrop)

	b := f.Bounds
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), colFloor, false)
	vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 1, colWall, false)
	if f.Boss {
		vector.StrokeRect(screen, float32(b.X)+3, float32(b.Y)+3, float32(b.W)-6, float32(b.H)-6, 1, colBossGlow, false)
	}

	for _, d := range f.Doors {
		col := colDoorLocked
		if d.Open {
			col = colDoorOpen
		}
		vector.DrawFilledRect(screen, float32(d.Rect.X), float32(d.Rect.Y), float32(d.Rect.W), float32(d.Rect.H), col, false)
	}

	for _, e := range f.Enemies {
		col := colChaser
		if e.Kind == sim.Patroller {
			col = colPatrol
		}
		if e.LowHealth {
			col = colWounded
		}
		vector.DrawFilledCircle(screen, float32(e.Pos.X), float32(e.Pos.Y), float32(e.Radius), col, false)
	}

	for _, bl := range f.Bullets {
		vector.DrawFilledCircle(screen, float32(bl.Pos.X), float32(bl.Pos.Y), float32(bl.Radius), colBullet, false)
	}

	vector.DrawFilledCircle(screen, float32(f.Player.Pos.X), float32(f.Player.Pos.Y), float32(f.Player.Radius), colPlayer, false)

	drawHUD(screen, f)
}

func drawHUD(screen *ebiten.Image, f sim.Frame) {
	b := f.Bounds

	// Hearts row, one square per half heart.
	for i := 0; i < f.HP; i++ {
		vector.DrawFilledRect(screen, float32(b.X)+float32(i)*16, float32(b.Y)-28, 14, 14, colHeart, false)
	}

	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y)-34, float32(b.W), 1, colHUDLine, false)

	// Minimap dots in the top-right corner of the HUD strip.
	mx := b.X + b.W - 120
	my := b.Y - 26
	for _, cell := range f.Map {
		col := colMapRoom
		if cell.Boss {
			col = colMapBoss
		}
		if cell.Current {
			col = colMapHere
		}
		vector.DrawFilledRect(screen, float32(mx)+float32(cell.X)*8, float32(my)+float32(cell.Y)*8, 6, 6, col, false)
	}

	op := &etext.DrawOptions{}
	op.GeoM.Translate(b.X, b.Bottom()+14)
	op.ColorScale.ScaleWithColor(colHint)
	etext.Draw(screen, "WASD move | Arrows shoot | R restart | ESC quit", hudFace, op)
}
