package sim

import "testing"

func generateForTest(t *testing.T, seed int64) (*Grid, Coord, Coord, Tuning) {
	t.Helper()
	tun := DefaultTuning()
	gen := newGenerator(newRNG(seed), &tun)
	grid, start, boss := gen.Generate()
	return grid, start, boss, tun
}

func existingRooms(grid *Grid) []Coord {
	var out []Coord
	for y := 0; y < grid.H; y++ {
		for x := 0; x < grid.W; x++ {
			if grid.At(x, y).Exists {
				out = append(out, Coord{X: x, Y: y})
			}
		}
	}
	return out
}

func TestGenerateLayoutInvariants(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		grid, start, boss, tun := generateForTest(t, seed)
		rooms := existingRooms(grid)

		if len(rooms) < tun.MinRooms || len(rooms) > tun.MaxRooms {
			t.Fatalf("seed %d: %d rooms, want %d..%d", seed, len(rooms), tun.MinRooms, tun.MaxRooms)
		}

		// Doors are always paired with an existing neighbor.
		doorPairs := 0
		for _, c := range rooms {
			room := grid.At(c.X, c.Y)
			for d := Direction(0); d < DirCount; d++ {
				if !room.Doors[d] {
					continue
				}
				doorPairs++
				dx, dy := d.Delta()
				nx, ny := c.X+dx, c.Y+dy
				if !grid.InBounds(nx, ny) {
					t.Fatalf("seed %d: door at %v/%v leads out of bounds", seed, c, d)
				}
				n := grid.At(nx, ny)
				if !n.Exists {
					t.Fatalf("seed %d: door at %v/%v leads to a missing room", seed, c, d)
				}
				if !n.Doors[d.Opposite()] {
					t.Fatalf("seed %d: door at %v/%v has no reciprocal", seed, c, d)
				}
			}
		}
		if doorPairs%2 != 0 {
			t.Fatalf("seed %d: unpaired door flags", seed)
		}

		// Connected and acyclic: BFS reaches every room and the edge
		// count is rooms-1 (a tree).
		edges := doorPairs / 2
		if edges != len(rooms)-1 {
			t.Fatalf("seed %d: %d edges for %d rooms, want a tree", seed, edges, len(rooms))
		}
		visited := map[Coord]bool{start: true}
		queue := []Coord{start}
		for len(queue) > 0 {
			c := queue[0]
			queue = queue[1:]
			room := grid.At(c.X, c.Y)
			for d := Direction(0); d < DirCount; d++ {
				if !room.Doors[d] {
					continue
				}
				dx, dy := d.Delta()
				n := Coord{X: c.X + dx, Y: c.Y + dy}
				if !visited[n] {
					visited[n] = true
					queue = append(queue, n)
				}
			}
		}
		if len(visited) != len(rooms) {
			t.Fatalf("seed %d: reached %d of %d rooms from start", seed, len(visited), len(rooms))
		}

		// Exactly one boss, at maximal squared distance, first in
		// row-major order among ties.
		bossCount := 0
		best := -1
		for _, c := range rooms {
			if grid.At(c.X, c.Y).Boss {
				bossCount++
			}
			dx, dy := c.X-start.X, c.Y-start.Y
			if d := dx*dx + dy*dy; d > best {
				best = d
			}
		}
		if bossCount != 1 {
			t.Fatalf("seed %d: %d boss rooms", seed, bossCount)
		}
		bdx, bdy := boss.X-start.X, boss.Y-start.Y
		if bdx*bdx+bdy*bdy != best {
			t.Fatalf("seed %d: boss %v not at maximal distance %d", seed, boss, best)
		}
		for _, c := range rooms {
			dx, dy := c.X-start.X, c.Y-start.Y
			if dx*dx+dy*dy == best {
				if c != boss {
					t.Fatalf("seed %d: boss tie should resolve to %v, got %v", seed, c, boss)
				}
				break
			}
		}
	}
}

func TestGenerateStartRoomAlwaysSafe(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		grid, start, _, _ := generateForTest(t, seed)
		room := grid.At(start.X, start.Y)
		if !room.Cleared {
			t.Fatalf("seed %d: start room not cleared", seed)
		}
		if len(room.Enemies) != 0 {
			t.Fatalf("seed %d: start room has %d enemies", seed, len(room.Enemies))
		}
	}
}

func TestGeneratePopulation(t *testing.T) {
	for seed := int64(1); seed <= 30; seed++ {
		grid, start, boss, tun := generateForTest(t, seed)
		spawn := tun.RoomBounds.Inset(tun.SpawnInset)

		for _, c := range existingRooms(grid) {
			room := grid.At(c.X, c.Y)
			if room.Cleared != (len(room.Enemies) == 0) {
				t.Fatalf("seed %d: room %v cleared=%v with %d enemies", seed, c, room.Cleared, len(room.Enemies))
			}
			if c == start {
				continue
			}
			if room.Boss {
				if len(room.Enemies) != tun.BossSquad {
					t.Fatalf("seed %d: boss room has %d enemies, want %d", seed, len(room.Enemies), tun.BossSquad)
				}
				for i, e := range room.Enemies {
					if e.Kind != EnemyKind(i%2) {
						t.Fatalf("seed %d: boss enemy %d kind %v", seed, i, e.Kind)
					}
					if e.HP != tun.BossHP || e.Radius != tun.BossRadius || e.Speed != tun.BossSpeed {
						t.Fatalf("seed %d: boss enemy %d has stats %v/%v/%v", seed, i, e.HP, e.Radius, e.Speed)
					}
				}
			} else {
				if len(room.Enemies) < tun.MinSquad || len(room.Enemies) > tun.MaxSquad {
					t.Fatalf("seed %d: room %v has %d enemies, want %d..%d", seed, c, len(room.Enemies), tun.MinSquad, tun.MaxSquad)
				}
				for i, e := range room.Enemies {
					if e.HP != tun.EnemyHP || e.Radius != tun.EnemyRadius || e.Speed != tun.EnemySpeed {
						t.Fatalf("seed %d: enemy %d has stats %v/%v/%v", seed, i, e.HP, e.Radius, e.Speed)
					}
				}
			}
			for i, e := range room.Enemies {
				if !spawn.Contains(e.Pos) {
					t.Fatalf("seed %d: enemy %d spawned at %v outside %+v", seed, i, e.Pos, spawn)
				}
			}
		}

		if c := grid.At(boss.X, boss.Y); !c.Boss {
			t.Fatalf("seed %d: boss coord %v not flagged", seed, boss)
		}
	}
}

func TestDirectionTables(t *testing.T) {
	cases := []struct {
		d        Direction
		opposite Direction
		dx, dy   int
	}{
		{Up, Down, 0, -1},
		{Right, Left, 1, 0},
		{Down, Up, 0, 1},
		{Left, Right, -1, 0},
	}
	for _, c := range cases {
		t.Run(c.d.String(), func(t *testing.T) {
			if got := c.d.Opposite(); got != c.opposite {
				t.Fatalf("Opposite = %v, want %v", got, c.opposite)
			}
			dx, dy := c.d.Delta()
			if dx != c.dx || dy != c.dy {
				t.Fatalf("Delta = (%d,%d), want (%d,%d)", dx, dy, c.dx, c.dy)
			}
			v := c.d.Vec()
			if int(v.X) != c.dx || int(v.Y) != c.dy {
				t.Fatalf("Vec = %v", v)
			}
		})
	}
}
