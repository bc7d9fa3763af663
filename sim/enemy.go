package sim

import "github.com/jakecoffman/cp"

// EnemyKind selects one of the two behavior variants.
type EnemyKind int

const (
	// Chaser walks straight at the player.
	Chaser EnemyKind = iota
	// Patroller bounces inside an inset band and blends in a chase
	// impulse when the player is close.
	Patroller
)

// Enemy is one hostile in a room. Rooms own their enemies; an enemy
// never references its room back.
type Enemy struct {
	Pos       cp.Vector
	Radius    float64
	HP        float64
	Speed     float64
	Kind      EnemyKind
	PatrolDir cp.Vector
	Dead      bool
}

// step advances the enemy by dt seconds against a player position, then
// clamps it back into the walkable interior.
func (e *Enemy) step(playerPos cp.Vector, t *Tuning, dt float64) {
	toPlayer := playerPos.Sub(e.Pos)

	switch e.Kind {
	case Chaser:
		e.Pos = e.Pos.Add(toPlayer.Normalize().Mult(e.Speed * dt))
	case Patroller:
		e.Pos = e.Pos.Add(e.PatrolDir.Mult(e.Speed * t.PatrolFactor * dt))
		// Axis-independent bounce, re-triggered on every tick the
		// position sits outside the band.
		band := t.RoomBounds.Inset(t.PatrolInset)
		if e.Pos.X < band.X || e.Pos.X > band.Right() {
			e.PatrolDir.X *= -1
		}
		if e.Pos.Y < band.Y || e.Pos.Y > band.Bottom() {
			e.PatrolDir.Y *= -1
		}
		if toPlayer.Length() < t.ProximityRange {
			// Chase impulse on top of the patrol movement. This can
			// overshoot the band; the wall clamp below corrects it.
			e.Pos = e.Pos.Add(toPlayer.Normalize().Mult(e.Speed * t.ChaseBlend * dt))
		}
	}

	walls := t.RoomBounds.Inset(t.WallMargin + e.Radius)
	e.Pos = walls.ClampVec(e.Pos)
}

// lowHealth reports whether the enemy should render with the hurt tint.
func (e *Enemy) lowHealth() bool {
	return e.HP <= 1
}
