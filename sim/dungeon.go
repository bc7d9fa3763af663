package sim

import "github.com/jakecoffman/cp"

// Coord addresses a cell on the dungeon grid.
type Coord struct {
	X, Y int
}

// Room is one grid cell: its doors, clear state, and enemy population.
// A door flag is always paired with the reciprocal flag on the neighbor.
type Room struct {
	Exists  bool
	Cleared bool
	Boss    bool
	Doors   [DirCount]bool
	Enemies []*Enemy
}

// Grid is the dense room container. It owns every room and, through
// them, every enemy.
type Grid struct {
	W, H  int
	rooms []Room
}

func newGrid(w, h int) *Grid {
	return &Grid{W: w, H: h, rooms: make([]Room, w*h)}
}

// At returns the room at (x, y). The caller must stay in bounds.
func (g *Grid) At(x, y int) *Room {
	return &g.rooms[y*g.W+x]
}

func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.W && y < g.H
}

// Generator carves a floor layout and populates it with enemies. It
// holds the run's random source; reusing a generator across resets keeps
// drawing from the same seeded stream.
type Generator struct {
	rng *rng
	tun *Tuning
}

func newGenerator(rng *rng, tun *Tuning) *Generator {
	return &Generator{rng: rng, tun: tun}
}

// Generate builds a fully populated grid and returns it with the start
// and boss coordinates. It always succeeds: the carve loop is bounded by
// the grid size and the target room count.
func (g *Generator) Generate() (*Grid, Coord, Coord) {
	t := g.tun
	grid := newGrid(t.GridW, t.GridH)
	start := Coord{X: t.GridW / 2, Y: t.GridH / 2}

	g.carve(grid, start)
	boss := g.pickBoss(grid, start)
	grid.At(boss.X, boss.Y).Boss = true

	for y := 0; y < grid.H; y++ {
		for x := 0; x < grid.W; x++ {
			room := grid.At(x, y)
			if !room.Exists {
				continue
			}
			if x == start.X && y == start.Y {
				// The spawn room is always safe.
				room.Cleared = true
				continue
			}
			g.populate(room)
		}
	}

	return grid, start, boss
}

// carve runs a randomized depth-first walk from the start cell, opening
// reciprocal doors as it goes. The result is a tree: a new cell is only
// ever reached through exactly one door pair.
func (g *Generator) carve(grid *Grid, start Coord) {
	target := g.rng.IntRange(g.tun.MinRooms, g.tun.MaxRooms)

	grid.At(start.X, start.Y).Exists = true
	stack := []Coord{start}
	made := 1

	for made < target && len(stack) > 0 {
		cur := stack[len(stack)-1]
		extended := false
		for _, d := range g.rng.Directions() {
			dx, dy := d.Delta()
			nx, ny := cur.X+dx, cur.Y+dy
			if !grid.InBounds(nx, ny) || grid.At(nx, ny).Exists {
				continue
			}
			grid.At(nx, ny).Exists = true
			grid.At(cur.X, cur.Y).Doors[d] = true
			grid.At(nx, ny).Doors[d.Opposite()] = true
			stack = append(stack, Coord{X: nx, Y: ny})
			made++
			extended = true
			break
		}
		if !extended {
			stack = stack[:len(stack)-1]
		}
	}
}

// pickBoss returns the existing room farthest (squared grid distance)
// from the start. Ties keep the first room found scanning row-major.
func (g *Generator) pickBoss(grid *Grid, start Coord) Coord {
	boss := start
	best := -1
	for y := 0; y < grid.H; y++ {
		for x := 0; x < grid.W; x++ {
			if !grid.At(x, y).Exists {
				continue
			}
			dx, dy := x-start.X, y-start.Y
			if d := dx*dx + dy*dy; d > best {
				best = d
				boss = Coord{X: x, Y: y}
			}
		}
	}
	return boss
}

// populate fills a room with its enemy squad and sets the cleared flag
// from the result.
func (g *Generator) populate(room *Room) {
	t := g.tun
	count := g.rng.IntRange(t.MinSquad, t.MaxSquad)
	if room.Boss {
		count = t.BossSquad
	}

	inner := t.RoomBounds.Inset(t.SpawnInset)
	for i := 0; i < count; i++ {
		e := &Enemy{
			Pos: cp.Vector{
				X: g.rng.FloatRange(inner.X, inner.Right()),
				Y: g.rng.FloatRange(inner.Y, inner.Bottom()),
			},
			Radius:    t.EnemyRadius,
			HP:        t.EnemyHP,
			Speed:     t.EnemySpeed,
			PatrolDir: cp.Vector{X: 1, Y: 0},
		}
		if room.Boss {
			e.Kind = EnemyKind(i % 2)
			e.HP = t.BossHP
			e.Radius = t.BossRadius
			e.Speed = t.BossSpeed
		} else if g.rng.Chance(0.5) {
			e.Kind = Patroller
		}
		room.Enemies = append(room.Enemies, e)
	}

	room.Cleared = len(room.Enemies) == 0
}
