package sim

import "github.com/jakecoffman/cp"

// Frame is the read-only render feed: a value snapshot of everything a
// renderer needs, taken once per rendered frame after all ticks for the
// frame have run.
type Frame struct {
	Bounds Rect
	Boss   bool
	Doors  []DoorView

	Enemies []EnemyView
	Bullets []BulletView
	Player  PlayerView

	HP    int
	MaxHP int

	GridW, GridH int
	Map          []MapCell

	RunOver bool
	Outcome Outcome
}

// DoorView is one door of the current room.
type DoorView struct {
	Dir  Direction
	Rect Rect
	Open bool
}

type EnemyView struct {
	Pos       cp.Vector
	Radius    float64
	Kind      EnemyKind
	LowHealth bool
}

type BulletView struct {
	Pos    cp.Vector
	Radius float64
}

type PlayerView struct {
	Pos    cp.Vector
	Radius float64
}

// MapCell is one existing room on the minimap.
type MapCell struct {
	X, Y    int
	Boss    bool
	Current bool
	Cleared bool
}

// Frame snapshots the current state for rendering.
func (s *Sim) Frame() Frame {
	room := s.CurrentRoom()

	f := Frame{
		Bounds:  s.tun.RoomBounds,
		Boss:    room.Boss,
		HP:      s.player.HP,
		MaxHP:   s.tun.PlayerMaxHP,
		GridW:   s.grid.W,
		GridH:   s.grid.H,
		RunOver: s.runOver,
		Outcome: s.Outcome(),
		Player:  PlayerView{Pos: s.player.Pos, Radius: s.player.Radius},
	}

	for d := Direction(0); d < DirCount; d++ {
		if !room.Doors[d] {
			continue
		}
		f.Doors = append(f.Doors, DoorView{
			Dir:  d,
			Rect: DoorRect(d, &s.tun),
			Open: room.Cleared,
		})
	}

	for _, e := range room.Enemies {
		if e.Dead {
			continue
		}
		f.Enemies = append(f.Enemies, EnemyView{
			Pos:       e.Pos,
			Radius:    e.Radius,
			Kind:      e.Kind,
			LowHealth: e.lowHealth(),
		})
	}

	for _, b := range s.player.Bullets {
		if b.Dead {
			continue
		}
		f.Bullets = append(f.Bullets, BulletView{Pos: b.Pos, Radius: b.Radius})
	}

	for y := 0; y < s.grid.H; y++ {
		for x := 0; x < s.grid.W; x++ {
			cell := s.grid.At(x, y)
			if !cell.Exists {
				continue
			}
			f.Map = append(f.Map, MapCell{
				X:       x,
				Y:       y,
				Boss:    cell.Boss,
				Current: x == s.current.X && y == s.current.Y,
				Cleared: cell.Cleared,
			})
		}
	}

	return f
}
