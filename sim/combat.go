package sim

import "math"

// resolveBullets tests every live bullet against the room's live enemies
// in stored order. A bullet lands at most one hit per tick: the first
// overlapping enemy takes one unit of damage and the bullet dies.
func resolveBullets(bullets []*Bullet, enemies []*Enemy) {
	for _, b := range bullets {
		if b.Dead {
			continue
		}
		for _, e := range enemies {
			if e.Dead {
				continue
			}
			if !CirclesOverlap(b.Pos, b.Radius, e.Pos, e.Radius) {
				continue
			}
			e.HP--
			b.Dead = true
			if e.HP <= 0 {
				e.Dead = true
			}
			break
		}
	}
}

// resolveContact applies touch damage from overlapping enemies. The hurt
// cooldown is a single shared window, so at most one unit of damage
// lands per window no matter how many enemies overlap at once. The
// window ticks down every step.
func resolveContact(p *Player, enemies []*Enemy, t *Tuning, dt float64) {
	for _, e := range enemies {
		if e.Dead {
			continue
		}
		if !CirclesOverlap(p.Pos, p.Radius, e.Pos, e.Radius) {
			continue
		}
		if p.HurtCooldown > 0 {
			continue
		}
		p.HP--
		p.HurtCooldown = t.HurtInterval
		kb := p.Pos.Sub(e.Pos).Normalize()
		p.Pos = p.Pos.Add(kb.Mult(t.Knockback))
	}
	p.HurtCooldown = math.Max(0, p.HurtCooldown-dt)
}

// cull drops dead bullets and enemies at the end of the tick and
// restores the invariant that cleared mirrors an empty enemy list.
func cull(p *Player, room *Room) {
	bullets := p.Bullets[:0]
	for _, b := range p.Bullets {
		if !b.Dead {
			bullets = append(bullets, b)
		}
	}
	p.Bullets = bullets

	enemies := room.Enemies[:0]
	for _, e := range room.Enemies {
		if !e.Dead {
			enemies = append(enemies, e)
		}
	}
	room.Enemies = enemies

	if len(room.Enemies) == 0 {
		room.Cleared = true
	}
}
