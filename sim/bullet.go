package sim

import "github.com/jakecoffman/cp"

// Bullet is a player shot in flight. The player owns its bullets.
type Bullet struct {
	Pos    cp.Vector
	Vel    cp.Vector
	Radius float64
	TTL    float64
	Dead   bool
}

// advance integrates one fixed step and expires the bullet when its
// lifetime runs out or it reaches the walkable interior's edge. Both
// edges are inclusive: exactly zero lifetime or exactly on the bound
// kills the bullet that tick.
func (b *Bullet) advance(t *Tuning, dt float64) {
	if b.Dead {
		return
	}
	b.Pos = b.Pos.Add(b.Vel.Mult(dt))
	b.TTL -= dt
	if b.TTL <= 0 {
		b.Dead = true
		return
	}
	inner := t.RoomBounds.Inset(t.WallMargin)
	if b.Pos.X <= inner.X || b.Pos.X >= inner.Right() ||
		b.Pos.Y <= inner.Y || b.Pos.Y >= inner.Bottom() {
		b.Dead = true
	}
}
