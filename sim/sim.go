// Package sim is the dungeon-run simulation engine: procedural floor
// generation, per-room entity state, combat, door transitions, and the
// fixed-timestep loop that advances them. It is single-threaded and
// deterministic for a given seed and input sequence; rendering and input
// plumbing live with the caller.
package sim

// Outcome says how a run ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeDeath
	OutcomeCleared
)

// Sim owns one complete run: the dungeon grid, the player, and the run
// flags. All mutable state hangs off this struct; there are no package
// globals, so multiple instances can run side by side.
type Sim struct {
	tun Tuning
	rng *rng
	gen *Generator

	grid    *Grid
	player  *Player
	current Coord
	start   Coord
	boss    Coord

	runOver    bool
	allCleared bool

	acc float64
}

// New builds a simulation from a seed and tuning and generates the
// first floor.
func New(seed int64, tun Tuning) *Sim {
	s := &Sim{tun: tun, rng: newRNG(seed)}
	s.gen = newGenerator(s.rng, &s.tun)
	s.Reset()
	return s
}

// Reset starts a fresh run: a newly carved floor (next draw from the
// same seeded stream, so layouts generally differ between runs), a full
// health player at the start room's center, and cleared run flags.
func (s *Sim) Reset() {
	s.grid, s.start, s.boss = s.gen.Generate()
	s.current = s.start
	s.player = newPlayer(&s.tun)
	s.runOver = false
	s.allCleared = false
	s.acc = 0
}

// Advance feeds elapsed wall time into the fixed-step loop; leftover
// fractional time carries to the next call. The snapshot applies to
// every tick run this frame. While the run is over the simulation is
// frozen and only the restart intent is honored.
func (s *Sim) Advance(elapsed float64, in Snapshot) {
	if s.runOver {
		if in.Restart {
			s.Reset()
		}
		return
	}
	s.acc += elapsed
	dt := 1 / s.tun.TickRate
	for s.acc >= dt && !s.runOver {
		s.acc -= dt
		s.Step(in, dt)
	}
}

// Step runs one fixed tick: player move, shoot, enemy AI, bullet
// advance, combat, cleanup, door transition, then the clear/death
// check. Each phase runs to completion before the next.
func (s *Sim) Step(in Snapshot, dt float64) {
	if s.runOver {
		return
	}
	room := s.CurrentRoom()

	s.player.move(in, &s.tun, dt)
	s.player.shoot(in, &s.tun, dt)

	for _, e := range room.Enemies {
		if !e.Dead {
			e.step(s.player.Pos, &s.tun, dt)
		}
	}

	for _, b := range s.player.Bullets {
		b.advance(&s.tun, dt)
	}
	resolveBullets(s.player.Bullets, room.Enemies)
	resolveContact(s.player, room.Enemies, &s.tun, dt)
	cull(s.player, room)

	s.checkTransitions()
	s.checkRunOver()
}

// checkRunOver recomputes the derived allCleared flag and latches
// runOver on floor-clear or death. runOver never un-latches within a
// run.
func (s *Sim) checkRunOver() {
	all := true
	for y := 0; y < s.grid.H; y++ {
		for x := 0; x < s.grid.W; x++ {
			room := s.grid.At(x, y)
			if room.Exists && !room.Cleared {
				all = false
			}
		}
	}
	s.allCleared = all
	if s.allCleared {
		s.runOver = true
	}
	if s.player.HP <= 0 {
		s.runOver = true
	}
}

// Outcome reports how the run ended; death wins when the last hit and
// the final room clear land on the same tick.
func (s *Sim) Outcome() Outcome {
	if !s.runOver {
		return OutcomeNone
	}
	if s.player.HP <= 0 {
		return OutcomeDeath
	}
	return OutcomeCleared
}

func (s *Sim) RunOver() bool { return s.runOver }

// CurrentRoom returns the room the player is in. Lookup goes through
// the current coordinate; nothing stores room pointers.
func (s *Sim) CurrentRoom() *Room {
	return s.grid.At(s.current.X, s.current.Y)
}

func (s *Sim) Current() Coord  { return s.current }
func (s *Sim) Start() Coord    { return s.start }
func (s *Sim) BossCoord() Coord { return s.boss }
func (s *Sim) Player() *Player { return s.player }
func (s *Sim) Grid() *Grid     { return s.grid }

// Tuning exposes the live tuning for balance hot-reload. Mutations take
// effect between frames; entities keep the stats they spawned with.
func (s *Sim) Tuning() *Tuning { return &s.tun }
