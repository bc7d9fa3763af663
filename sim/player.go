package sim

import "github.com/jakecoffman/cp"

// Player is the singleton run avatar. HP is counted in half-heart
// units. HurtCooldown is the shared contact-damage window: the field
// lives here so reset semantics are visible (a new player starts with a
// clean window).
type Player struct {
	Pos          cp.Vector
	Radius       float64
	Speed        float64
	HP           int
	ShotCooldown float64
	HurtCooldown float64
	Bullets      []*Bullet
}

func newPlayer(t *Tuning) *Player {
	return &Player{
		Pos:    t.RoomBounds.Center(),
		Radius: t.PlayerRadius,
		Speed:  t.PlayerSpeed,
		HP:     t.PlayerMaxHP,
	}
}

// move applies the movement intent for one tick and clamps the player to
// the walkable interior. Doors are overlay zones, never gaps in the
// clamp.
func (p *Player) move(in Snapshot, t *Tuning, dt float64) {
	mv := in.moveVec()
	if mv.X != 0 || mv.Y != 0 {
		mv = mv.Normalize()
	}
	p.Pos = p.Pos.Add(mv.Mult(p.Speed * dt))

	walls := t.RoomBounds.Inset(t.WallMargin + p.Radius)
	p.Pos = walls.ClampVec(p.Pos)
}

// shoot spawns a bullet at the player's edge when there is a shoot
// intent and the fire window is open. The cooldown ticks down every
// step whether or not the trigger is held.
func (p *Player) shoot(in Snapshot, t *Tuning, dt float64) {
	dir := in.shootVec()
	if (dir.X != 0 || dir.Y != 0) && p.ShotCooldown <= 0 {
		dir = dir.Normalize()
		p.Bullets = append(p.Bullets, &Bullet{
			Pos:    p.Pos.Add(dir.Mult(p.Radius + t.MuzzleGap)),
			Vel:    dir.Mult(t.BulletSpeed),
			Radius: t.BulletRadius,
			TTL:    t.BulletTTL,
		})
		p.ShotCooldown = t.FireInterval
	}
	if p.ShotCooldown > 0 {
		p.ShotCooldown -= dt
	}
}
