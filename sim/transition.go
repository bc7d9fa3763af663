package sim

import "github.com/jakecoffman/cp"

// transitionOrder is the fixed door evaluation priority. At most one
// transition happens per tick.
var transitionOrder = [DirCount]Direction{Up, Down, Left, Right}

// DoorRect returns the nominal door slab for a direction on the room
// walls: DoorW wide along the wall, DoorH deep, with a small outward
// bleed past the wall line.
func DoorRect(d Direction, t *Tuning) Rect {
	b := t.RoomBounds
	switch d {
	case Up:
		return Rect{X: b.X + (b.W-t.DoorW)/2, Y: b.Y - t.DoorBleed, W: t.DoorW, H: t.DoorH + t.DoorBleed}
	case Down:
		return Rect{X: b.X + (b.W-t.DoorW)/2, Y: b.Y + b.H - t.DoorH, W: t.DoorW, H: t.DoorH + t.DoorBleed}
	case Left:
		return Rect{X: b.X - t.DoorBleed, Y: b.Y + (b.H-t.DoorW)/2, W: t.DoorH + t.DoorBleed, H: t.DoorW}
	case Right:
		return Rect{X: b.X + b.W - t.DoorH, Y: b.Y + (b.H-t.DoorW)/2, W: t.DoorH + t.DoorBleed, H: t.DoorW}
	}
	return Rect{}
}

// exitPos is where the player lands after walking through a door in
// direction d: near the opposite wall of the new room.
func exitPos(d Direction, t *Tuning) cp.Vector {
	b := t.RoomBounds
	switch d {
	case Up:
		return cp.Vector{X: b.X + b.W/2, Y: b.Bottom() - t.ExitOffset}
	case Down:
		return cp.Vector{X: b.X + b.W/2, Y: b.Y + t.ExitOffset}
	case Left:
		return cp.Vector{X: b.Right() - t.ExitOffset, Y: b.Y + b.H/2}
	case Right:
		return cp.Vector{X: b.X + t.ExitOffset, Y: b.Y + b.H/2}
	}
	return b.Center()
}

// checkTransitions moves the player to the neighboring room when the
// current room is unlocked and the player overlaps an enlarged door hit
// zone. Doors stay impassable while the room is uncleared.
func (s *Sim) checkTransitions() {
	room := s.CurrentRoom()
	if !room.Cleared {
		return
	}
	for _, d := range transitionOrder {
		if !room.Doors[d] {
			continue
		}
		dx, dy := d.Delta()
		nx, ny := s.current.X+dx, s.current.Y+dy
		if !s.grid.InBounds(nx, ny) || !s.grid.At(nx, ny).Exists {
			continue
		}
		zone := DoorRect(d, &s.tun).Expand(s.tun.DoorHitMargin)
		if !CircleRectOverlap(s.player.Pos, s.player.Radius, zone) {
			continue
		}
		s.current = Coord{X: nx, Y: ny}
		s.player.Pos = exitPos(d, &s.tun)
		return
	}
}
